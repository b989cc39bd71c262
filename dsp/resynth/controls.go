package resynth

import (
	"math"

	"github.com/cwbudde/algo-granular/dsp/core"
)

// Controls are the user-facing parameters, read once per block.
type Controls struct {
	BufferSizeSeconds   float64 // loop length of the grain buffer
	GrainLengthSeconds  float64 // grain period
	GrainRandomisation  float64 // read-head jump at each grain, 0..1
	GrainShape          float64 // grain envelope steepness, 0..1
	ActiveGrains        float64 // fractional number of sounding grains
	ChanceToSkip        float64 // probability a grain is muted
	StereoRandomness    float64 // pan spread of grains, voices and reverb
	SynthVolume         float64 // level of the resynthesised voices
	SynthEnvelopeShape  float64 // attack share of the voice envelope
	SynthOnsetThreshold float64 // grain peak needed to trigger a voice
	TuningPrecision     float64 // 0 free pitch, 1 snapped to notes
	ReferenceA          float64 // A4 in Hz
	OscillatorSelect    float64 // 1 sine, 2 triangle, 3 saw
	HighPassHz          float64 // input high-pass cutoff
	ReverbAmount        float64 // reverb send, 0..0.99
	AnalysisLowCutHz    float64 // pitch analysis high-pass, 0 = off
	AnalysisHighCutHz   float64 // pitch analysis low-pass, 0 = off
}

// ControlRange describes the valid range and default of one control.
type ControlRange struct {
	Name    string
	Min     float64
	Max     float64
	Default float64
}

var controlRanges = [...]ControlRange{
	{"BufferSizeSeconds", 1, 4.99, 2},
	{"GrainLengthSeconds", 0.02, 0.5, 0.1},
	{"GrainRandomisation", 0, 1, 0.3},
	{"GrainShape", 0, 1, 0.6},
	{"ActiveGrains", 1, 4.99, 2},
	{"ChanceToSkip", 0, 1, 0.05},
	{"StereoRandomness", 0, 1, 0.2},
	{"SynthVolume", 0, 1, 0.2},
	{"SynthEnvelopeShape", 0.01, 0.99, 0.1},
	{"SynthOnsetThreshold", 0.01, 0.9, 0.2},
	{"TuningPrecision", 0, 1, 0.6},
	{"ReferenceA", 400, 500, 440},
	{"OscillatorSelect", 1, 3, 1},
	{"HighPassHz", 20, 2500, 100},
	{"ReverbAmount", 0, 0.99, 0.4},
	{"AnalysisLowCutHz", 0, 20000, 0},
	{"AnalysisHighCutHz", 0, 20000, 0},
}

// ControlRanges returns the range of every field of [Controls] in
// declaration order.
func ControlRanges() []ControlRange {
	out := make([]ControlRange, len(controlRanges))
	copy(out, controlRanges[:])

	return out
}

// DefaultControls returns the default of every control.
func DefaultControls() Controls {
	var c Controls
	for i, r := range controlRanges {
		*c.field(i) = r.Default
	}

	return c
}

// Clamped returns c with every field limited to its range. NaN fields take
// their default.
func (c Controls) Clamped() Controls {
	for i, r := range controlRanges {
		p := c.field(i)
		*p = core.Sanitize(*p, r.Min, r.Max, r.Default)
	}

	return c
}

// field returns a pointer to the i-th control in ControlRanges order.
func (c *Controls) field(i int) *float64 {
	return [...]*float64{
		&c.BufferSizeSeconds,
		&c.GrainLengthSeconds,
		&c.GrainRandomisation,
		&c.GrainShape,
		&c.ActiveGrains,
		&c.ChanceToSkip,
		&c.StereoRandomness,
		&c.SynthVolume,
		&c.SynthEnvelopeShape,
		&c.SynthOnsetThreshold,
		&c.TuningPrecision,
		&c.ReferenceA,
		&c.OscillatorSelect,
		&c.HighPassHz,
		&c.ReverbAmount,
		&c.AnalysisLowCutHz,
		&c.AnalysisHighCutHz,
	}[i]
}

// reverbParameters maps a reverb amount onto wet, dry and room size.
func reverbParameters(amount float64) (wet, dry, roomSize float64) {
	wet = 0.8 * amount
	dry = 1 - wet
	roomSize = 0.5 + 0.3*amount*amount

	return wet, dry, roomSize
}

// grainGain is the gain applied to each raw grain so that the sum stays
// near unity as grains are added.
func grainGain(active float64) float64 {
	if active <= 0 || math.IsNaN(active) {
		return 0
	}

	return 2 / active
}
