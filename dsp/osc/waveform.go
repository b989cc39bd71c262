package osc

import (
	"fmt"
	"math"
)

// Waveform selects the shape an [Oscillator] maps its phase through.
type Waveform int

const (
	// Ramp outputs the raw phase in [0, 1).
	Ramp Waveform = iota
	// TriRamp rises 0→1 over the first half cycle and falls back to 0.
	TriRamp
	// Triangle is a bipolar triangle in [-1, 1] starting at +1.
	Triangle
	// Sine is a bipolar sine.
	Sine
	// HardSquare is -1 below the pulse width and +1 above it.
	HardSquare
	// SoftSquare is a tanh-saturated sine biased by the pulse width.
	SoftSquare
	// Saw is a naive bipolar sawtooth.
	Saw
	// PolyBLEPSaw is a sawtooth with a polyBLEP correction at the wrap.
	PolyBLEPSaw

	numWaveforms
)

var waveformNames = [numWaveforms]string{
	Ramp:        "ramp",
	TriRamp:     "tri-ramp",
	Triangle:    "triangle",
	Sine:        "sine",
	HardSquare:  "hard-square",
	SoftSquare:  "soft-square",
	Saw:         "saw",
	PolyBLEPSaw: "polyblep-saw",
}

func (w Waveform) String() string {
	if w < 0 || w >= numWaveforms {
		return fmt.Sprintf("Waveform(%d)", int(w))
	}

	return waveformNames[w]
}

// Valid reports whether w names a known waveform.
func (w Waveform) Valid() bool {
	return w >= 0 && w < numWaveforms
}

// shapeFunc maps a phase to a sample. delta is the phase increment and
// width the pulse width; shapes that do not need them ignore them.
type shapeFunc func(phase, delta, width float32) float64

var shapes = [numWaveforms]shapeFunc{
	Ramp:        rampShape,
	TriRamp:     triRampShape,
	Triangle:    triangleShape,
	Sine:        sineShape,
	HardSquare:  hardSquareShape,
	SoftSquare:  softSquareShape,
	Saw:         sawShape,
	PolyBLEPSaw: polyBLEPSawShape,
}

// Shape evaluates waveform w at phase without advancing any state.
// Unknown waveforms evaluate to 0.
func Shape(w Waveform, phase, delta, width float32) float64 {
	if !w.Valid() {
		return 0
	}

	return shapes[w](phase, delta, width)
}

func rampShape(phase, _, _ float32) float64 {
	return float64(phase)
}

func triRampShape(phase, _, _ float32) float64 {
	if phase <= 0.5 {
		return float64(2 * phase)
	}

	return float64(2 * (1 - phase))
}

func triangleShape(phase, _, _ float32) float64 {
	return float64(4 * (float32(math.Abs(float64(phase-0.5))) - 0.25))
}

func sineShape(phase, _, _ float32) float64 {
	return math.Sin(2 * math.Pi * float64(phase))
}

func hardSquareShape(phase, _, width float32) float64 {
	if phase < width {
		return -1
	}

	return 1
}

func softSquareShape(phase, _, width float32) float64 {
	bias := 2 * math.Abs(0.5-float64(width))
	return -math.Tanh(50 * (bias + math.Sin(2*math.Pi*float64(phase))))
}

func sawShape(phase, _, _ float32) float64 {
	return float64(2*phase - 1)
}

func polyBLEPSawShape(phase, delta, _ float32) float64 {
	return float64(2*phase-1) - polyBLEP(phase, delta)
}

// polyBLEP returns the two-sample polynomial band-limited step residual
// for a discontinuity at phase 0.
func polyBLEP(t, dt float32) float64 {
	if dt < 0 {
		dt = -dt
	}

	if dt == 0 {
		return 0
	}

	switch {
	case t < dt:
		u := float64(t / dt)
		return u + u - u*u - 1
	case t > 1-dt:
		u := float64((t - 1) / dt)
		return u*u + u + u + 1
	default:
		return 0
	}
}
