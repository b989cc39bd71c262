// Package reverb provides a stereo Schroeder/Freeverb-style reverb.
package reverb

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-granular/dsp/core"
)

const (
	numCombs     = 8
	numAllpasses = 4

	fixedGain       = 0.015
	allpassFeedback = 0.5
	stereoSpread    = 23
	tuningRate      = 44100.0

	// Room size r maps to comb feedback roomOffset + roomScale*r.
	roomScale  = 0.28
	roomOffset = 0.7

	defaultWet      = 1.0 / 3
	defaultDry      = 1.0
	defaultRoomSize = 0.5
	defaultDamp     = 0.5
	defaultWidth    = 1.0
)

// Delay lengths in samples at 44.1 kHz; the right channel adds stereoSpread.
var (
	combTuning    = [numCombs]int{1116, 1188, 1277, 1356, 1422, 1491, 1557, 1617}
	allpassTuning = [numAllpasses]int{556, 441, 341, 225}
)

type allpass struct {
	buffer []float64
	index  int
}

func (a *allpass) process(input float64) float64 {
	bufOut := a.buffer[a.index]
	a.buffer[a.index] = input + bufOut*allpassFeedback

	a.index++
	if a.index >= len(a.buffer) {
		a.index = 0
	}

	return bufOut - input
}

type comb struct {
	buffer      []float64
	index       int
	feedback    float64
	filterStore float64
	dampA       float64
	dampB       float64
}

func (c *comb) setDamp(v float64) {
	c.dampA = v
	c.dampB = 1 - v
}

func (c *comb) process(input float64) float64 {
	output := c.buffer[c.index]

	c.filterStore = output*c.dampB + c.filterStore*c.dampA
	if math.Abs(c.filterStore) < 1e-23 {
		c.filterStore = 0
	}

	c.buffer[c.index] = input + c.filterStore*c.feedback

	c.index++
	if c.index >= len(c.buffer) {
		c.index = 0
	}

	return output
}

type channel struct {
	combs   [numCombs]comb
	allpass [numAllpasses]allpass
}

func newChannel(scale float64, spread int) channel {
	var ch channel

	for i, n := range combTuning {
		ch.combs[i].buffer = make([]float64, scaledLength(n+spread, scale))
	}

	for i, n := range allpassTuning {
		ch.allpass[i].buffer = make([]float64, scaledLength(n+spread, scale))
	}

	return ch
}

func scaledLength(n int, scale float64) int {
	return max(1, int(math.Round(float64(n)*scale)))
}

func (ch *channel) process(x float64) float64 {
	var acc float64
	for i := range ch.combs {
		acc += ch.combs[i].process(x)
	}

	for i := range ch.allpass {
		acc = ch.allpass[i].process(acc)
	}

	return acc
}

func (ch *channel) reset() {
	for i := range ch.combs {
		clear(ch.combs[i].buffer)
		ch.combs[i].index = 0
		ch.combs[i].filterStore = 0
	}

	for i := range ch.allpass {
		clear(ch.allpass[i].buffer)
		ch.allpass[i].index = 0
	}
}

// Stereo is a two-channel reverb fed by the mono sum of its inputs. Width
// crossfades between a fully decorrelated (1) and a mono (0) wet signal.
type Stereo struct {
	sampleRate float64

	wet      float64
	dry      float64
	roomSize float64
	damp     float64
	width    float64

	wet1 float64
	wet2 float64

	left  channel
	right channel
}

// New returns a reverb whose delay lines are scaled for sampleRate.
func New(sampleRate float64) (*Stereo, error) {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return nil, fmt.Errorf("reverb sample rate must be > 0: %f", sampleRate)
	}

	scale := sampleRate / tuningRate
	r := &Stereo{
		sampleRate: sampleRate,
		left:       newChannel(scale, 0),
		right:      newChannel(scale, stereoSpread),
	}

	r.SetDamp(defaultDamp)
	r.SetParameters(defaultWet, defaultDry, defaultRoomSize, defaultWidth)

	return r, nil
}

// SetParameters sets the wet and dry gains, the room size and the stereo
// width. All four are limited to [0, 1]; room size 1 gives the longest tail.
func (r *Stereo) SetParameters(wet, dry, roomSize, width float64) {
	r.wet = core.Sanitize(wet, 0, 1, defaultWet)
	r.dry = core.Sanitize(dry, 0, 1, defaultDry)
	r.roomSize = core.Sanitize(roomSize, 0, 1, defaultRoomSize)
	r.width = core.Sanitize(width, 0, 1, defaultWidth)

	r.wet1 = r.wet * (r.width/2 + 0.5)
	r.wet2 = r.wet * (1 - r.width) / 2

	feedback := roomOffset + roomScale*r.roomSize
	for i := range r.left.combs {
		r.left.combs[i].feedback = feedback
		r.right.combs[i].feedback = feedback
	}
}

// SetDamp sets the high-frequency damping of the comb feedback in [0, 1].
func (r *Stereo) SetDamp(damp float64) {
	r.damp = core.Sanitize(damp, 0, 1, defaultDamp)

	for i := range r.left.combs {
		r.left.combs[i].setDamp(r.damp)
		r.right.combs[i].setDamp(r.damp)
	}
}

// ProcessSample processes one stereo frame.
func (r *Stereo) ProcessSample(inL, inR float64) (outL, outR float64) {
	x := (inL + inR) * fixedGain

	wetL := r.left.process(x)
	wetR := r.right.process(x)

	outL = wetL*r.wet1 + wetR*r.wet2 + inL*r.dry
	outR = wetR*r.wet1 + wetL*r.wet2 + inR*r.dry

	return outL, outR
}

// ProcessStereo processes left and right in place. Samples beyond the
// shorter slice are left untouched.
func (r *Stereo) ProcessStereo(left, right []float64) {
	n := min(len(left), len(right))

	for i := range n {
		left[i], right[i] = r.ProcessSample(left[i], right[i])
	}
}

// Reset clears all delay and filter state.
func (r *Stereo) Reset() {
	r.left.reset()
	r.right.reset()
}

// SampleRate returns the rate the delay lines were scaled for.
func (r *Stereo) SampleRate() float64 { return r.sampleRate }

// Wet returns the wet gain.
func (r *Stereo) Wet() float64 { return r.wet }

// Dry returns the dry gain.
func (r *Stereo) Dry() float64 { return r.dry }

// RoomSize returns the room size in [0, 1].
func (r *Stereo) RoomSize() float64 { return r.roomSize }

// Width returns the stereo width.
func (r *Stereo) Width() float64 { return r.width }

// Damp returns the comb damping.
func (r *Stereo) Damp() float64 { return r.damp }
