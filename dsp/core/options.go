package core

import (
	"fmt"
	"time"
)

// MaxGrains is the largest number of concurrent grains an engine runs.
const MaxGrains = 5

// ProcessorConfig holds the stream settings a host negotiates before it
// prepares an engine.
type ProcessorConfig struct {
	SampleRate float64
	BlockSize  int
	MaxGrains  int
	Seed       int64
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns 44.1 kHz, 512-frame blocks, a full grain
// pool and seed 1.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 44100,
		BlockSize:  512,
		MaxGrains:  MaxGrains,
		Seed:       1,
	}
}

// WithSampleRate sets the processing sample rate. Non-positive or
// non-finite rates are ignored.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 && IsFinite(sampleRate) {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBlockSize sets the processing block size.
func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// WithMaxGrains sets the number of grain voices, limited to [1, MaxGrains].
func WithMaxGrains(n int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if n > 0 {
			cfg.MaxGrains = ClampInt(n, 1, MaxGrains)
		}
	}
}

// WithSeed sets the seed the engine's random sources derive from.
func WithSeed(seed int64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		cfg.Seed = seed
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Validate reports the first setting an engine would reject.
func (c ProcessorConfig) Validate() error {
	switch {
	case c.SampleRate <= 0 || !IsFinite(c.SampleRate):
		return fmt.Errorf("sample rate must be > 0: %f", c.SampleRate)
	case c.BlockSize < 1:
		return fmt.Errorf("block size must be > 0: %d", c.BlockSize)
	case c.MaxGrains < 1 || c.MaxGrains > MaxGrains:
		return fmt.Errorf("max grains must be in [1, %d]: %d", MaxGrains, c.MaxGrains)
	}

	return nil
}

// BlockDuration returns the wall-clock length of one block.
func (c ProcessorConfig) BlockDuration() time.Duration {
	if c.SampleRate <= 0 {
		return 0
	}

	return time.Duration(float64(c.BlockSize) / c.SampleRate * float64(time.Second))
}
