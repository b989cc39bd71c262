package fftsynth

import "fmt"

// FFTSize is the default analysis length. It holds 0.5 s grains at rates up
// to 131 kHz.
const FFTSize = 1 << 16

type config struct {
	fftSize int
	seed    int64
}

// Option configures a [Synth].
type Option func(*config) error

// WithFFTSize sets the analysis length. size must be a power of two >= 2.
func WithFFTSize(size int) Option {
	return func(c *config) error {
		if size < 2 || size&(size-1) != 0 {
			return fmt.Errorf("fftsynth: fft size must be a power of two >= 2: %d", size)
		}

		c.fftSize = size

		return nil
	}
}

// WithSeed seeds the synth's random source used for skip and pan draws.
func WithSeed(seed int64) Option {
	return func(c *config) error {
		c.seed = seed
		return nil
	}
}
