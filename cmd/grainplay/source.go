package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/cwbudde/algo-granular/dsp/core"
	"github.com/cwbudde/algo-granular/dsp/osc"
	"github.com/go-audio/wav"
)

// source fills stereo input blocks.
type source interface {
	fmt.Stringer
	Read(left, right []float64)
}

// loop replays a decoded file from its start whenever it runs out.
type loop struct {
	name  string
	left  []float64
	right []float64
	pos   int
}

func (l *loop) String() string { return l.name }

func (l *loop) Read(left, right []float64) {
	for i := range left {
		left[i] = l.left[l.pos]
		right[i] = l.right[l.pos]

		l.pos++
		if l.pos == len(l.left) {
			l.pos = 0
		}
	}
}

// loadWAV decodes a PCM WAV file into a stereo loop. Mono files are copied
// to both channels; channels beyond the second are ignored.
func loadWAV(path string) (*loop, float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("%s: not a valid WAV file", path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}

	channels := buf.Format.NumChannels
	if channels < 1 || buf.SourceBitDepth < 1 {
		return nil, 0, fmt.Errorf("%s: unsupported format: %d channels, %d bit", path, channels, buf.SourceBitDepth)
	}

	frames := len(buf.Data) / channels
	if frames == 0 {
		return nil, 0, errors.New(path + ": no audio frames")
	}

	// 8-bit PCM is unsigned around 128.
	offset := 0.0
	if buf.SourceBitDepth == 8 {
		offset = 128
	}

	scale := 1 / float64(int64(1)<<(buf.SourceBitDepth-1))
	pcm := make([]float64, frames*channels)
	for i := range pcm {
		pcm[i] = (float64(buf.Data[i]) - offset) * scale
	}

	l := &loop{
		name:  path,
		left:  make([]float64, frames),
		right: make([]float64, frames),
	}

	switch channels {
	case 1:
		copy(l.left, pcm)
		copy(l.right, pcm)
	case 2:
		core.Deinterleave(l.left, l.right, pcm)
	default:
		for i := range frames {
			l.left[i] = pcm[i*channels]
			l.right[i] = pcm[i*channels+1]
		}
	}

	return l, float64(dec.SampleRate), nil
}

// tone is a sine test signal on both channels.
type tone struct {
	hz  float64
	osc osc.Oscillator
}

func newTone(hz, sampleRate float64) *tone {
	t := &tone{hz: hz, osc: osc.New(osc.Sine, sampleRate)}
	t.osc.SetFrequency(hz)

	return t
}

func (t *tone) String() string { return fmt.Sprintf("%.1f Hz tone", t.hz) }

func (t *tone) Read(left, right []float64) {
	for i := range left {
		x := 0.5 * t.osc.Process()
		left[i] = x
		right[i] = x
	}
}
