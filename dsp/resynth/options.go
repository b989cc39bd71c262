package resynth

import (
	"github.com/cwbudde/algo-granular/dsp/filter/biquad"
	"github.com/cwbudde/algo-granular/dsp/reverb"
)

// PreFilter is the per-channel input filter in front of the grain buffer.
type PreFilter interface {
	ProcessSample(x float64) float64
	SetCutoff(hz float64)
	SetQ(q float64)
	Reset()
}

// StereoEffect is the post-processing stage run over each finished block.
type StereoEffect interface {
	SetParameters(wet, dry, roomSize, width float64)
	ProcessStereo(left, right []float64)
}

// PreFilterFactory builds one pre-filter for the given sample rate.
type PreFilterFactory func(sampleRate float64) (PreFilter, error)

// StereoEffectFactory builds the post effect for the given sample rate.
type StereoEffectFactory func(sampleRate float64) (StereoEffect, error)

// Option configures an [Engine].
type Option func(*Engine)

// WithPreFilter replaces the default high-pass input filter. The factory is
// called once per channel in Prepare.
func WithPreFilter(factory PreFilterFactory) Option {
	return func(e *Engine) {
		if factory != nil {
			e.newPreFilter = factory
		}
	}
}

// WithReverb replaces the default stereo reverb. A nil factory disables the
// post effect.
func WithReverb(factory StereoEffectFactory) Option {
	return func(e *Engine) {
		e.newReverb = factory
	}
}

// WithSeed sets the seed all grain and voice random sources derive from.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.seed = seed
	}
}

// WithFFTSize sets the pitch analysis length of every voice.
func WithFFTSize(size int) Option {
	return func(e *Engine) {
		e.fftSize = size
	}
}

func defaultPreFilter(sampleRate float64) (PreFilter, error) {
	f, err := biquad.NewFilter(biquad.KindHighpass, sampleRate, defaultHighPassHz)
	if err != nil {
		return nil, err
	}

	return f, nil
}

func defaultReverb(sampleRate float64) (StereoEffect, error) {
	r, err := reverb.New(sampleRate)
	if err != nil {
		return nil, err
	}

	return r, nil
}
