// Command grainplay runs the granular resynthesis engine in real time.
//
// Usage:
//
//	grainplay [flags]
//
// The input is a WAV file looped forever, or a test tone when -in is empty.
// The engine output is streamed to the default sound card.
//
// Examples:
//
//	grainplay -tone 330
//	grainplay -in voice.wav -grains 4.5 -grain-length 0.2 -synth-volume 0.6
//	grainplay -in drums.wav -skip 0.3 -reverb 0.8 -seconds 30
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/cwbudde/algo-granular/dsp/core"
	"github.com/cwbudde/algo-granular/dsp/resynth"
)

func main() {
	c := resynth.DefaultControls()

	in := flag.String("in", "", "input WAV file, looped (empty plays a test tone)")
	tone := flag.Float64("tone", 220, "test tone frequency in Hz when -in is empty")
	rate := flag.Float64("rate", 44100, "sample rate for the test tone")
	seconds := flag.Float64("seconds", 0, "stop after this many seconds (0 runs until interrupted)")
	block := flag.Int("block", 512, "processing block size in frames")
	voices := flag.Int("voices", core.MaxGrains, "size of the grain pool")
	seed := flag.Int64("seed", 1, "random seed for grains and voices")

	flag.Float64Var(&c.BufferSizeSeconds, "buffer", c.BufferSizeSeconds, "grain buffer loop length in seconds")
	flag.Float64Var(&c.GrainLengthSeconds, "grain-length", c.GrainLengthSeconds, "grain length in seconds")
	flag.Float64Var(&c.GrainRandomisation, "random", c.GrainRandomisation, "read position randomisation, 0..1")
	flag.Float64Var(&c.GrainShape, "shape", c.GrainShape, "grain envelope steepness, 0..1")
	flag.Float64Var(&c.ActiveGrains, "grains", c.ActiveGrains, "fractional number of active grains")
	flag.Float64Var(&c.ChanceToSkip, "skip", c.ChanceToSkip, "probability that a grain is muted")
	flag.Float64Var(&c.StereoRandomness, "stereo", c.StereoRandomness, "pan spread, 0..1")
	flag.Float64Var(&c.SynthVolume, "synth-volume", c.SynthVolume, "resynthesised voice level, 0..1")
	flag.Float64Var(&c.SynthEnvelopeShape, "synth-shape", c.SynthEnvelopeShape, "voice attack share, 0.01..0.99")
	flag.Float64Var(&c.SynthOnsetThreshold, "threshold", c.SynthOnsetThreshold, "grain peak needed to trigger a voice")
	flag.Float64Var(&c.TuningPrecision, "precision", c.TuningPrecision, "pull towards the nearest note, 0..1")
	flag.Float64Var(&c.ReferenceA, "ref-a", c.ReferenceA, "tuning reference for A4 in Hz")
	flag.Float64Var(&c.OscillatorSelect, "osc", c.OscillatorSelect, "oscillator blend: 1 sine, 2 triangle, 3 saw")
	flag.Float64Var(&c.HighPassHz, "highpass", c.HighPassHz, "input high-pass cutoff in Hz")
	flag.Float64Var(&c.ReverbAmount, "reverb", c.ReverbAmount, "reverb amount, 0..0.99")
	flag.Float64Var(&c.AnalysisLowCutHz, "analysis-low", c.AnalysisLowCutHz, "pitch analysis low cut in Hz (0 = off)")
	flag.Float64Var(&c.AnalysisHighCutHz, "analysis-high", c.AnalysisHighCutHz, "pitch analysis high cut in Hz (0 = off)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: grainplay [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Plays a looped WAV file or a test tone through the granular resynthesis engine.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  grainplay -tone 330\n")
		fmt.Fprintf(os.Stderr, "  grainplay -in voice.wav -grains 4.5 -synth-volume 0.6\n")
	}
	flag.Parse()

	var (
		src source
		err error
	)

	if *in != "" {
		var wavRate float64

		src, wavRate, err = loadWAV(*in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		*rate = wavRate
	} else {
		src = newTone(*tone, *rate)
	}

	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(*rate),
		core.WithBlockSize(*block),
		core.WithMaxGrains(*voices),
		core.WithSeed(*seed),
	)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	e := resynth.New(resynth.WithSeed(cfg.Seed))
	if err := e.Prepare(cfg.SampleRate, cfg.MaxGrains); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer e.Release()

	e.SetControls(c)
	r := newRenderer(e, src, c, cfg.BlockSize)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *seconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(*seconds*float64(time.Second)))
		defer cancel()
	}

	fmt.Fprintf(os.Stderr, "grainplay: %s at %.0f Hz, %d voices, block %d (%v)\n",
		src, cfg.SampleRate, cfg.MaxGrains, cfg.BlockSize, cfg.BlockDuration())

	if err := play(ctx, r, int(cfg.SampleRate)); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "grainplay: rendered %.1f s\n", float64(r.Frames())/cfg.SampleRate)
	printVoices(e)
}

func printVoices(e *resynth.Engine) {
	for i := range e.MaxGrains() {
		v := e.Voice(i)
		fmt.Fprintf(os.Stderr, "  voice %d: %-7s %8.2f Hz (detected %.2f Hz)\n",
			i, v.State(), v.Frequency(), v.DetectedFrequency())
	}
}
