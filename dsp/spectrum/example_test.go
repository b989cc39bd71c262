package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-granular/dsp/spectrum"
)

func ExamplePeakBin() {
	bin, peak := spectrum.PeakBin([]float64{0.1, 0.4, 2.5, 0.3})
	fmt.Println(bin, peak)
	// Output:
	// 2 2.5
}

func ExampleResolution() {
	fmt.Printf("%.3f Hz\n", spectrum.Resolution(44100, 65536))
	// Output:
	// 0.673 Hz
}
