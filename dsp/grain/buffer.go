package grain

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-granular/dsp/core"
)

// Buffer is a rolling two-channel sample store.
//
// Both channels live in one arena of 2*capacity samples. The loop length used
// by the write head is changed by SetBufferSize, but the new length only
// takes effect when the write head next wraps, at which point the length of
// the loop just completed becomes the readable region (MaxReadPos).
type Buffer struct {
	data       []float64
	capacity   int
	maxSeconds float64
	sampleRate float64

	writePos    int
	writeSize   int
	pendingSize int
	maxReadPos  int
}

// Initialise allocates room for maxSeconds of audio at sampleRate Hz and
// zeroes the contents. Any previous allocation is dropped.
func (b *Buffer) Initialise(maxSeconds, sampleRate float64) error {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return fmt.Errorf("grain buffer sample rate must be > 0: %f", sampleRate)
	}

	if maxSeconds <= 0 || !core.IsFinite(maxSeconds) {
		return fmt.Errorf("grain buffer length must be > 0: %f", maxSeconds)
	}

	capacity := int(maxSeconds * sampleRate)
	if capacity < 1 {
		return fmt.Errorf("grain buffer holds no samples: %f s at %f Hz", maxSeconds, sampleRate)
	}

	b.data = make([]float64, 2*capacity)
	b.capacity = capacity
	b.maxSeconds = maxSeconds
	b.sampleRate = sampleRate
	b.writePos = 0
	b.writeSize = 0
	b.pendingSize = capacity
	b.maxReadPos = 0

	return nil
}

// Release drops the arena. The buffer must be initialised again before use.
func (b *Buffer) Release() {
	*b = Buffer{}
}

// SetBufferSize stages a new loop length in seconds. The value is clamped to
// (0, maxSeconds] and then to [1, capacity] samples. NaN leaves the staged
// length unchanged.
func (b *Buffer) SetBufferSize(seconds float64) {
	if b.capacity == 0 || math.IsNaN(seconds) {
		return
	}

	if seconds > b.maxSeconds {
		seconds = b.maxSeconds
	}

	size := int(seconds * b.sampleRate)
	switch {
	case size < 1:
		size = 1
	case size > b.capacity:
		size = b.capacity
	}

	b.pendingSize = size
}

// Write appends one stereo frame, wrapping the write head when it reaches
// the end of the current loop. Writes to an uninitialised buffer are
// dropped.
func (b *Buffer) Write(left, right float64) {
	if b.capacity == 0 {
		return
	}

	b.writePos++
	if b.writePos >= b.writeSize || b.writePos >= b.capacity {
		b.writePos = 0

		if b.writeSize == 0 {
			b.maxReadPos = b.pendingSize
		} else {
			b.maxReadPos = b.writeSize
		}

		b.writeSize = b.pendingSize
	}

	b.data[b.writePos] = left
	b.data[b.capacity+b.writePos] = right
}

// ReadL returns the left sample at index i. i must be in [0, Capacity).
func (b *Buffer) ReadL(i int) float64 { return b.data[i] }

// ReadR returns the right sample at index i. i must be in [0, Capacity).
func (b *Buffer) ReadR(i int) float64 { return b.data[b.capacity+i] }

// MaxReadPos returns the length of the most recently completed loop.
func (b *Buffer) MaxReadPos() int { return b.maxReadPos }

// WritePos returns the index of the last written frame.
func (b *Buffer) WritePos() int { return b.writePos }

// WriteSize returns the loop length the write head is currently using.
func (b *Buffer) WriteSize() int { return b.writeSize }

// PendingSize returns the staged loop length.
func (b *Buffer) PendingSize() int { return b.pendingSize }

// Capacity returns the number of frames per channel.
func (b *Buffer) Capacity() int { return b.capacity }

// SampleRate returns the sample rate the buffer was initialised with.
func (b *Buffer) SampleRate() float64 { return b.sampleRate }
