package biquad

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-granular/dsp/core"
)

// Kind selects the response a [Filter] designs.
type Kind int

const (
	// KindLowpass passes frequencies below the cutoff.
	KindLowpass Kind = iota
	// KindHighpass passes frequencies above the cutoff.
	KindHighpass
)

func (k Kind) String() string {
	switch k {
	case KindLowpass:
		return "lowpass"
	case KindHighpass:
		return "highpass"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Filter is a [Section] whose coefficients follow a cutoff and Q.
//
// SetCutoff and SetQ redesign the coefficients only when the value changes
// and keep the delay-line state, so they are safe to call once per block.
type Filter struct {
	Section

	kind       Kind
	sampleRate float64
	cutoff     float64
	q          float64
}

// NewFilter returns a filter of the given kind with Q = [DefaultQ].
func NewFilter(kind Kind, sampleRate, cutoffHz float64) (*Filter, error) {
	if kind != KindLowpass && kind != KindHighpass {
		return nil, fmt.Errorf("biquad: unknown filter kind: %v", kind)
	}

	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return nil, fmt.Errorf("biquad: sample rate must be > 0: %f", sampleRate)
	}

	f := &Filter{
		kind:       kind,
		sampleRate: sampleRate,
		cutoff:     cutoffHz,
		q:          DefaultQ,
	}
	f.design()

	return f, nil
}

// Kind returns the filter response.
func (f *Filter) Kind() Kind { return f.kind }

// Cutoff returns the cutoff frequency in Hz.
func (f *Filter) Cutoff() float64 { return f.cutoff }

// Q returns the quality factor.
func (f *Filter) Q() float64 { return f.q }

// SampleRate returns the sample rate in Hz.
func (f *Filter) SampleRate() float64 { return f.sampleRate }

// SetCutoff changes the cutoff frequency. Values are limited to just below
// Nyquist when designing.
func (f *Filter) SetCutoff(hz float64) {
	if hz == f.cutoff || math.IsNaN(hz) {
		return
	}

	f.cutoff = hz
	f.design()
}

// SetQ changes the quality factor. Non-positive values select [DefaultQ].
func (f *Filter) SetQ(q float64) {
	if q <= 0 || math.IsNaN(q) {
		q = DefaultQ
	}

	if q == f.q {
		return
	}

	f.q = q
	f.design()
}

// SetSampleRate redesigns the filter for a new rate and clears its state.
func (f *Filter) SetSampleRate(sampleRate float64) error {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return fmt.Errorf("biquad: sample rate must be > 0: %f", sampleRate)
	}

	f.sampleRate = sampleRate
	f.design()
	f.Reset()

	return nil
}

func (f *Filter) design() {
	switch f.kind {
	case KindHighpass:
		f.Coefficients = Highpass(f.cutoff, f.q, f.sampleRate)
	default:
		f.Coefficients = Lowpass(f.cutoff, f.q, f.sampleRate)
	}
}
