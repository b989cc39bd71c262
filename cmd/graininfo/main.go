// Command graininfo prints how a grain pool is laid out for a number of
// active grains, and the pitch resolution of the voice analysis.
//
// Usage:
//
//	graininfo [flags] [active-grains ...]
//
// Without arguments it prints the layout for 1, 1.5, 2, ... up to the pool
// size.
//
// Examples:
//
//	graininfo 2.5
//	graininfo -rate 48000 -fft 8192 1 3.25 4.99
//	graininfo -grains 3
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-granular/dsp/core"
	"github.com/cwbudde/algo-granular/dsp/fftsynth"
	"github.com/cwbudde/algo-granular/dsp/grain"
	"github.com/cwbudde/algo-granular/dsp/spectrum"
)

func main() {
	rate := flag.Float64("rate", 44100, "sample rate in Hz")
	fftSize := flag.Int("fft", fftsynth.FFTSize, "pitch analysis FFT size (power of two)")
	pool := flag.Int("grains", core.MaxGrains, "size of the grain pool")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: graininfo [flags] [active-grains ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints per-grain start phase and volume for fractional active grain counts.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  graininfo 2.5\n")
		fmt.Fprintf(os.Stderr, "  graininfo -rate 48000 -fft 8192 1 3.25 4.99\n")
	}
	flag.Parse()

	if *rate <= 0 {
		fmt.Fprintf(os.Stderr, "error: sample rate must be > 0: %g\n", *rate)
		os.Exit(1)
	}

	if *fftSize < 2 || *fftSize&(*fftSize-1) != 0 {
		fmt.Fprintf(os.Stderr, "error: fft size must be a power of two: %d\n", *fftSize)
		os.Exit(1)
	}

	m, err := grain.NewManager(core.ClampInt(*pool, 1, core.MaxGrains))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	counts := parseCounts(flag.Args(), m.MaxGrains())
	if len(counts) == 0 {
		fmt.Fprintf(os.Stderr, "error: no valid active grain counts\n")
		os.Exit(1)
	}

	printLayout(m, counts)
	fmt.Printf("\nFFT %d at %g Hz: %.4f Hz per bin, %.1f ms window\n",
		*fftSize, *rate, spectrum.Resolution(*rate, *fftSize), 1000*float64(*fftSize) / *rate)
}

func parseCounts(args []string, pool int) []float64 {
	if len(args) == 0 {
		var counts []float64
		for a := 1.0; a <= float64(pool); a += 0.5 {
			counts = append(counts, a)
		}

		return counts
	}

	var counts []float64
	for _, arg := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: ignoring %q: %v\n", arg, err)
			continue
		}

		counts = append(counts, v)
	}

	return counts
}

func printLayout(m *grain.Manager, counts []float64) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	header := "Active\tClamped\tGain"
	rule := "------\t-------\t----"
	for i := range m.MaxGrains() {
		header += fmt.Sprintf("\tG%d phase\tG%d vol", i, i)
		rule += "\t--------\t------"
	}

	if _, err := fmt.Fprintln(tw, header+"\n"+rule); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, a := range counts {
		m.ManagePhases(a)

		row := fmt.Sprintf("%g\t%.2f\t%.3f", a, m.Active(), 2/m.Active())
		for i := range m.MaxGrains() {
			row += fmt.Sprintf("\t%.3f\t%.2f", m.PhaseForGrain(i), m.VolumeForGrain(i))
		}

		if _, err := fmt.Fprintln(tw, row); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}

	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
