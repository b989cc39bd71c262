package main

import (
	"encoding/binary"
	"math"

	"github.com/cwbudde/algo-granular/dsp/core"
	"github.com/cwbudde/algo-granular/dsp/resynth"
)

const bytesPerFrame = 2 * 4

// renderer pulls blocks through the engine and serves them as interleaved
// little-endian float32 stereo. It is an io.Reader for the audio backend.
type renderer struct {
	engine   *resynth.Engine
	src      source
	controls resynth.Controls

	inL, inR   []float64
	outL, outR []float64
	frames     []float64 // interleaved out
	next       int       // first unread frame of out
	rendered   int64
}

func newRenderer(e *resynth.Engine, src source, c resynth.Controls, block int) *renderer {
	r := &renderer{
		engine:   e,
		src:      src,
		controls: c,
		inL:      make([]float64, block),
		inR:      make([]float64, block),
		outL:     make([]float64, block),
		outR:     make([]float64, block),
		frames:   make([]float64, 2*block),
	}
	r.next = block

	return r
}

// Read fills p with whole frames. It never fails; processing errors are
// reported as silence.
func (r *renderer) Read(p []byte) (int, error) {
	n := 0
	for n+bytesPerFrame <= len(p) {
		if r.next == len(r.outL) {
			r.render()
		}

		binary.LittleEndian.PutUint32(p[n:], math.Float32bits(float32(r.frames[2*r.next])))
		binary.LittleEndian.PutUint32(p[n+4:], math.Float32bits(float32(r.frames[2*r.next+1])))
		r.next++
		n += bytesPerFrame
	}

	return n, nil
}

func (r *renderer) render() {
	r.src.Read(r.inL, r.inR)
	r.engine.SetControls(r.controls)

	if err := r.engine.ProcessBlock(r.inL, r.inR, r.outL, r.outR); err != nil {
		clear(r.outL)
		clear(r.outR)
	}

	core.Interleave(r.frames, r.outL, r.outR)
	r.next = 0
	r.rendered += int64(len(r.outL))
}

// Frames returns the number of frames rendered so far.
func (r *renderer) Frames() int64 { return r.rendered }
