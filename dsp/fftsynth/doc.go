// Package fftsynth implements a pitch-following resynthesis voice.
//
// A [Synth] listens to one grain of audio at a time through a Hann window
// timed to the grain length. At the start of the next grain it takes the
// FFT of what it captured, picks the strongest bin in the lower half of the
// spectrum as the pitch, optionally snaps that pitch towards the nearest
// equal-tempered note and replays it on a small oscillator bank under its
// own attack/decay envelope.
//
// Capture and playback overlap: while one grain is being captured the
// previous one is still sounding. Playback moves between three states:
//
//	StateIdle    --trigger--> StatePlaying
//	StatePlaying --envelope ends--> StateSilent
//	StateSilent  --trigger--> StatePlaying
//
// A grain whose peak level is below the onset threshold, that loses the
// skip draw, or whose spectrum has no usable peak does not trigger.
package fftsynth
