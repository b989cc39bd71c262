package osc

import "math"

const defaultSampleRate = 44100

// Phasor is a phase accumulator producing a ramp in [0, 1).
//
// The zero value runs at 44.1 kHz with frequency 0.
type Phasor struct {
	sampleRate float32
	frequency  float32
	phase      float32
	delta      float32
	newCycle   bool
}

// SetSampleRate sets the sample rate in Hz and recomputes the phase increment.
// Non-positive or non-finite rates are ignored.
func (p *Phasor) SetSampleRate(sampleRate float64) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return
	}

	p.sampleRate = float32(sampleRate)
	p.updateDelta()
}

// SampleRate returns the sample rate in Hz.
func (p *Phasor) SampleRate() float64 {
	if p.sampleRate == 0 {
		return defaultSampleRate
	}

	return float64(p.sampleRate)
}

// SetFrequency sets the frequency in Hz. Non-finite values are treated as 0.
func (p *Phasor) SetFrequency(frequency float64) {
	if math.IsNaN(frequency) || math.IsInf(frequency, 0) {
		frequency = 0
	}

	p.frequency = float32(frequency)
	p.updateDelta()
}

// Frequency returns the frequency in Hz.
func (p *Phasor) Frequency() float64 { return float64(p.frequency) }

// SetPhase moves the phase. Values outside [0, 1) are wrapped into range.
func (p *Phasor) SetPhase(phase float64) {
	if math.IsNaN(phase) || math.IsInf(phase, 0) {
		phase = 0
	}

	phase -= math.Floor(phase)
	if phase >= 1 {
		phase = 0
	}

	p.phase = float32(phase)
}

// Phase returns the current phase in [0, 1).
func (p *Phasor) Phase() float32 { return p.phase }

// Delta returns the per-sample phase increment.
func (p *Phasor) Delta() float32 { return p.delta }

// NewCycleStarted reports whether the most recent Process call wrapped.
func (p *Phasor) NewCycleStarted() bool { return p.newCycle }

// Process advances the phase by one sample and returns it.
func (p *Phasor) Process() float32 {
	p.phase += p.delta

	switch {
	case p.phase >= 1:
		p.phase--
		p.newCycle = true
	case p.phase < 0:
		p.phase++
		p.newCycle = true
	default:
		p.newCycle = false
	}

	return p.phase
}

func (p *Phasor) updateDelta() {
	sr := p.sampleRate
	if sr == 0 {
		sr = defaultSampleRate
	}

	p.delta = p.frequency / sr
}
