package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-granular/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(44100),
		core.WithBlockSize(256),
	)

	fmt.Printf("sampleRate=%.0f blockSize=%d grains=%d\n", cfg.SampleRate, cfg.BlockSize, cfg.MaxGrains)

	// Output:
	// sampleRate=44100 blockSize=256 grains=5
}

func ExampleInterleave() {
	frames := make([]float64, 4)
	core.Interleave(frames, []float64{1, 2}, []float64{3, 4})
	fmt.Println(frames)

	// Output:
	// [1 3 2 4]
}
