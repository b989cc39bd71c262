package core

import (
	"testing"
	"time"
)

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(96000), WithBlockSize(2048), WithMaxGrains(3))
	if cfg.SampleRate != 96000 {
		t.Fatalf("sample rate = %v, want 96000", cfg.SampleRate)
	}
	if cfg.BlockSize != 2048 {
		t.Fatalf("block size = %d, want 2048", cfg.BlockSize)
	}
	if cfg.MaxGrains != 3 {
		t.Fatalf("max grains = %d, want 3", cfg.MaxGrains)
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(0), WithBlockSize(-1), WithMaxGrains(0), nil)
	def := DefaultProcessorConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}

func TestMaxGrainsLimited(t *testing.T) {
	cfg := ApplyProcessorOptions(WithMaxGrains(64))
	if cfg.MaxGrains != MaxGrains {
		t.Fatalf("max grains = %d, want %d", cfg.MaxGrains, MaxGrains)
	}
}

func TestWithSeed(t *testing.T) {
	if got := ApplyProcessorOptions().Seed; got != 1 {
		t.Fatalf("default seed = %d, want 1", got)
	}

	if got := ApplyProcessorOptions(WithSeed(-7)).Seed; got != -7 {
		t.Fatalf("seed = %d, want -7", got)
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultProcessorConfig().Validate(); err != nil {
		t.Fatalf("default config: %v", err)
	}

	bad := []ProcessorConfig{
		{SampleRate: 0, BlockSize: 512, MaxGrains: 1},
		{SampleRate: 44100, BlockSize: 0, MaxGrains: 1},
		{SampleRate: 44100, BlockSize: 512, MaxGrains: 0},
		{SampleRate: 44100, BlockSize: 512, MaxGrains: MaxGrains + 1},
	}

	for i, cfg := range bad {
		if err := cfg.Validate(); err == nil {
			t.Fatalf("case %d: expected error for %#v", i, cfg)
		}
	}
}

func TestBlockDuration(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(48000), WithBlockSize(480))
	if got := cfg.BlockDuration(); got != 10*time.Millisecond {
		t.Fatalf("block duration = %v, want 10ms", got)
	}

	if got := (ProcessorConfig{BlockSize: 64}).BlockDuration(); got != 0 {
		t.Fatalf("zero-rate block duration = %v, want 0", got)
	}
}
