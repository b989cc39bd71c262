package osc

const defaultPulseWidth = 0.5

// Oscillator is a [Phasor] whose output is shaped by a [Waveform].
type Oscillator struct {
	Phasor

	waveform Waveform
	width    float32
}

// New returns an oscillator of the given waveform at sampleRate Hz. An
// unknown waveform falls back to [Sine].
func New(w Waveform, sampleRate float64) Oscillator {
	if !w.Valid() {
		w = Sine
	}

	o := Oscillator{waveform: w, width: defaultPulseWidth}
	o.SetSampleRate(sampleRate)

	return o
}

// Waveform returns the selected waveform.
func (o *Oscillator) Waveform() Waveform { return o.waveform }

// SetWaveform selects the output shape. Unknown waveforms are ignored.
func (o *Oscillator) SetWaveform(w Waveform) {
	if w.Valid() {
		o.waveform = w
	}
}

// PulseWidth returns the pulse width used by the square shapes.
func (o *Oscillator) PulseWidth() float64 { return float64(o.width) }

// SetPulseWidth sets the pulse width in [0, 1] used by the square shapes.
func (o *Oscillator) SetPulseWidth(width float64) {
	switch {
	case width < 0:
		width = 0
	case width > 1:
		width = 1
	case width != width:
		width = defaultPulseWidth
	}

	o.width = float32(width)
}

// Process advances the phase by one sample and returns the shaped output.
func (o *Oscillator) Process() float64 {
	phase := o.Phasor.Process()
	return shapes[o.waveform](phase, o.delta, o.width)
}

// Output evaluates the current phase without advancing it.
func (o *Oscillator) Output() float64 {
	return shapes[o.waveform](o.phase, o.delta, o.width)
}
