// Package resynth is the granular resynthesis engine.
//
// Every input frame is high-pass filtered and written into a rolling
// [grain.Buffer]. Up to [core.MaxGrains] grains read enveloped, randomly
// offset windows back from it. Each grain also feeds its own
// [fftsynth.Synth], which tracks the pitch of the grain it just heard and
// replays it on an oscillator bank. The raw grains and the resynthesised
// voices are panned and summed, and a stereo reverb runs over the finished
// block.
//
// Typical use from an audio callback:
//
//	e := resynth.New(resynth.WithSeed(1))
//	if err := e.Prepare(48000, core.MaxGrains); err != nil {
//		return err
//	}
//	defer e.Release()
//
//	// once per block
//	e.SetControls(controls)
//	if err := e.ProcessBlock(inL, inR, outL, outR); err != nil {
//		return err
//	}
//
// An Engine must only be used from one goroutine. ProcessSample and
// ProcessBlock do not allocate.
package resynth
