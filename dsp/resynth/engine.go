package resynth

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-granular/dsp/core"
	"github.com/cwbudde/algo-granular/dsp/fftsynth"
	"github.com/cwbudde/algo-granular/dsp/grain"
)

const (
	// MaxBufferSeconds is the longest loop the grain buffer can hold.
	MaxBufferSeconds = 5.0

	defaultHighPassHz = 100.0
	defaultSeed       = 1
)

// ErrNotPrepared is returned when processing an engine that has not been
// prepared or has been released.
var ErrNotPrepared = errors.New("resynth: engine not prepared")

// Engine is the granular resynthesis processor.
type Engine struct {
	newPreFilter PreFilterFactory
	newReverb    StereoEffectFactory
	seed         int64
	fftSize      int

	prepared   bool
	sampleRate float64
	controls   Controls
	active     float64

	buffer  grain.Buffer
	manager *grain.Manager
	grains  []*grain.Grain
	synths  []*fftsynth.Synth
	filterL PreFilter
	filterR PreFilter
	reverb  StereoEffect
}

// New returns an unprepared engine holding the default controls.
func New(opts ...Option) *Engine {
	e := &Engine{
		newPreFilter: defaultPreFilter,
		newReverb:    defaultReverb,
		seed:         defaultSeed,
		fftSize:      fftsynth.FFTSize,
		controls:     DefaultControls(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Prepare allocates every buffer, filter, FFT plan and voice for the given
// sample rate and grain pool size. maxGrains must be in [1, core.MaxGrains].
// Preparing a prepared engine releases the previous allocation first.
func (e *Engine) Prepare(sampleRate float64, maxGrains int) error {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return fmt.Errorf("resynth: sample rate must be > 0: %f", sampleRate)
	}

	if maxGrains < 1 || maxGrains > core.MaxGrains {
		return fmt.Errorf("resynth: max grains must be in [1, %d]: %d", core.MaxGrains, maxGrains)
	}

	e.Release()

	if err := e.buffer.Initialise(MaxBufferSeconds, sampleRate); err != nil {
		return fmt.Errorf("resynth: %w", err)
	}

	manager, err := grain.NewManager(maxGrains)
	if err != nil {
		return fmt.Errorf("resynth: %w", err)
	}

	grains := make([]*grain.Grain, maxGrains)
	synths := make([]*fftsynth.Synth, maxGrains)

	for i := range grains {
		grains[i] = grain.NewGrain(sampleRate, e.seed+int64(i))

		synths[i], err = fftsynth.New(sampleRate,
			fftsynth.WithFFTSize(e.fftSize),
			fftsynth.WithSeed(e.seed+int64(maxGrains+i)))
		if err != nil {
			e.buffer.Release()
			return fmt.Errorf("resynth: voice %d: %w", i, err)
		}
	}

	filterL, err := e.newPreFilter(sampleRate)
	if err != nil {
		e.buffer.Release()
		return fmt.Errorf("resynth: pre-filter: %w", err)
	}

	filterR, err := e.newPreFilter(sampleRate)
	if err != nil {
		e.buffer.Release()
		return fmt.Errorf("resynth: pre-filter: %w", err)
	}

	var fx StereoEffect
	if e.newReverb != nil {
		if fx, err = e.newReverb(sampleRate); err != nil {
			e.buffer.Release()
			return fmt.Errorf("resynth: reverb: %w", err)
		}
	}

	e.sampleRate = sampleRate
	e.manager = manager
	e.grains = grains
	e.synths = synths
	e.filterL = filterL
	e.filterR = filterR
	e.reverb = fx
	e.active = math.NaN()
	e.prepared = true

	e.apply()

	return nil
}

// Release drops every allocation made by Prepare. The controls are kept.
func (e *Engine) Release() {
	e.buffer.Release()
	e.manager = nil
	e.grains = nil
	e.synths = nil
	e.filterL = nil
	e.filterR = nil
	e.reverb = nil
	e.sampleRate = 0
	e.prepared = false
}

// SetControls clamps c and applies it. Call it once per block, before
// processing the block.
func (e *Engine) SetControls(c Controls) {
	e.controls = c.Clamped()

	if e.prepared {
		e.apply()
	}
}

// Controls returns the clamped controls in effect.
func (e *Engine) Controls() Controls { return e.controls }

func (e *Engine) apply() {
	c := &e.controls

	if c.ActiveGrains != e.active {
		e.active = c.ActiveGrains
		e.manager.ManagePhases(c.ActiveGrains)

		for i, g := range e.grains {
			g.SetGrainPhase(e.manager.PhaseForGrain(i))
		}
	}

	e.buffer.SetBufferSize(c.BufferSizeSeconds)

	for _, s := range e.synths {
		s.SetPrecision(c.TuningPrecision, c.ReferenceA)
		s.SetOscillatorSelect(c.OscillatorSelect)
		s.SetAnalysisBand(c.AnalysisLowCutHz, c.AnalysisHighCutHz)
		s.SetEnvelopeParams(c.SynthEnvelopeShape, c.GrainLengthSeconds)
	}

	e.filterL.SetCutoff(c.HighPassHz)
	e.filterR.SetCutoff(c.HighPassHz)

	if e.reverb != nil {
		wet, dry, room := reverbParameters(c.ReverbAmount)
		e.reverb.SetParameters(wet, dry, room, c.StereoRandomness)
	}
}

// ProcessSample runs one stereo frame through the filter, buffer, grains
// and voices. The reverb is not applied; see ProcessBlock. An unprepared
// engine returns silence.
func (e *Engine) ProcessSample(inL, inR float64) (outL, outR float64) {
	if !e.prepared {
		return 0, 0
	}

	c := &e.controls

	e.buffer.Write(e.filterL.ProcessSample(inL), e.filterR.ProcessSample(inR))
	e.buffer.SetBufferSize(c.BufferSizeSeconds)

	gain := grainGain(e.manager.Active())
	maxRead := e.buffer.MaxReadPos()

	for i, g := range e.grains {
		g.Process(c.GrainLengthSeconds, maxRead, c.GrainRandomisation, c.GrainShape, c.ChanceToSkip, c.StereoRandomness)

		vol := e.manager.VolumeForGrain(i)
		pos := g.ReadPos()
		rawL := e.buffer.ReadL(pos) * vol
		rawR := e.buffer.ReadR(pos) * vol

		s := e.synths[i]
		s.WriteInSamples(rawL, rawR, g.NewGrainStarted(), c.SynthOnsetThreshold, c.ChanceToSkip, c.StereoRandomness)
		voice := s.ProcessSynth() * c.SynthVolume

		env := gain * g.Envelope()
		outL += rawL*env*g.StereoVolumeLeft() + voice*s.StereoVolumeLeft()
		outR += rawR*env*g.StereoVolumeRight() + voice*s.StereoVolumeRight()
	}

	return core.FlushDenormals(outL), core.FlushDenormals(outR)
}

// ProcessBlock processes a block frame by frame and then runs the reverb
// over outL and outR. All four slices must have the same length; outputs
// may alias inputs.
func (e *Engine) ProcessBlock(inL, inR, outL, outR []float64) error {
	if !e.prepared {
		return ErrNotPrepared
	}

	n := len(inL)
	if len(inR) != n || len(outL) != n || len(outR) != n {
		return fmt.Errorf("resynth: block length mismatch: inL=%d inR=%d outL=%d outR=%d",
			len(inL), len(inR), len(outL), len(outR))
	}

	for i := range n {
		outL[i], outR[i] = e.ProcessSample(inL[i], inR[i])
	}

	if e.reverb != nil {
		e.reverb.ProcessStereo(outL, outR)
	}

	return nil
}

// Reset clears the audio state of the filters and voices without
// reallocating. The grain buffer keeps its contents.
func (e *Engine) Reset() {
	if !e.prepared {
		return
	}

	e.filterL.Reset()
	e.filterR.Reset()

	for i, g := range e.grains {
		g.Reset()
		g.SetGrainPhase(e.manager.PhaseForGrain(i))
		e.synths[i].Reset()
	}
}

// Prepared reports whether the engine is ready to process.
func (e *Engine) Prepared() bool { return e.prepared }

// SampleRate returns the prepared sample rate, or 0.
func (e *Engine) SampleRate() float64 { return e.sampleRate }

// MaxGrains returns the size of the grain pool, or 0 when unprepared.
func (e *Engine) MaxGrains() int { return len(e.grains) }

// Grain returns grain i for inspection.
func (e *Engine) Grain(i int) *grain.Grain { return e.grains[i] }

// Voice returns the resynthesis voice of grain i for inspection.
func (e *Engine) Voice(i int) *fftsynth.Synth { return e.synths[i] }

// GrainVolume returns the mix volume of grain i.
func (e *Engine) GrainVolume(i int) float64 { return e.manager.VolumeForGrain(i) }
