package main

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-granular/dsp/resynth"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

func writeWAV(t *testing.T, channels, bitDepth int, data []int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "in.wav")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, 22050, bitDepth, channels, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: 22050},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		t.Fatal(err)
	}

	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestLoadWAVStereo(t *testing.T) {
	path := writeWAV(t, 2, 16, []int{16384, -16384, 0, 8192, -32768, 32767})

	l, rate, err := loadWAV(path)
	if err != nil {
		t.Fatalf("loadWAV: %v", err)
	}

	if rate != 22050 {
		t.Fatalf("rate=%v want=22050", rate)
	}

	wantL := []float64{0.5, 0, -1}
	wantR := []float64{-0.5, 0.25, 32767.0 / 32768}

	for i := range wantL {
		if l.left[i] != wantL[i] || l.right[i] != wantR[i] {
			t.Fatalf("frame %d: got=(%v, %v) want=(%v, %v)", i, l.left[i], l.right[i], wantL[i], wantR[i])
		}
	}
}

func TestLoadWAVMono(t *testing.T) {
	path := writeWAV(t, 1, 16, []int{16384, -8192})

	l, _, err := loadWAV(path)
	if err != nil {
		t.Fatalf("loadWAV: %v", err)
	}

	if len(l.left) != 2 || l.right[1] != -0.25 || l.left[1] != -0.25 {
		t.Fatalf("mono frames: left=%v right=%v", l.left, l.right)
	}
}

func TestLoadWAV8BitIsCentred(t *testing.T) {
	path := writeWAV(t, 1, 8, []int{192, 128, 0, 255})

	l, _, err := loadWAV(path)
	if err != nil {
		t.Fatalf("loadWAV: %v", err)
	}

	want := []float64{0.5, 0, -1, 127.0 / 128}
	for i := range want {
		if l.left[i] != want[i] {
			t.Fatalf("frame %d: got=%v want=%v", i, l.left[i], want[i])
		}
	}
}

func TestLoadWAVRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.wav")
	if err := os.WriteFile(path, []byte("not a wav file"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, _, err := loadWAV(path); err == nil {
		t.Fatal("expected error")
	}

	if _, _, err := loadWAV(filepath.Join(t.TempDir(), "missing.wav")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoopWraps(t *testing.T) {
	l := &loop{left: []float64{1, 2, 3}, right: []float64{-1, -2, -3}}

	left := make([]float64, 7)
	right := make([]float64, 7)
	l.Read(left, right)

	want := []float64{1, 2, 3, 1, 2, 3, 1}
	for i := range want {
		if left[i] != want[i] || right[i] != -want[i] {
			t.Fatalf("frame %d: got=(%v, %v) want=(%v, %v)", i, left[i], right[i], want[i], -want[i])
		}
	}
}

func TestRendererInterleavesFloat32(t *testing.T) {
	e := resynth.New(resynth.WithFFTSize(1024), resynth.WithReverb(nil))
	if err := e.Prepare(44100, 2); err != nil {
		t.Fatal(err)
	}
	defer e.Release()

	c := resynth.DefaultControls()
	r := newRenderer(e, newTone(440, 44100), c, 64)

	// 100 frames spans two blocks; the trailing bytes do not form a frame.
	p := make([]byte, 100*bytesPerFrame+3)

	n, err := r.Read(p)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if n != 100*bytesPerFrame {
		t.Fatalf("n=%d want=%d", n, 100*bytesPerFrame)
	}

	if r.Frames() != 128 {
		t.Fatalf("frames=%d want=128", r.Frames())
	}

	for i := 0; i < 100; i++ {
		l := math.Float32frombits(binary.LittleEndian.Uint32(p[i*bytesPerFrame:]))
		rr := math.Float32frombits(binary.LittleEndian.Uint32(p[i*bytesPerFrame+4:]))

		if i >= 64 && l != float32(r.outL[i-64]) {
			t.Fatalf("frame %d left=%v want=%v", i, l, r.outL[i-64])
		}

		if math.IsNaN(float64(l)) || math.IsNaN(float64(rr)) {
			t.Fatalf("frame %d is NaN", i)
		}
	}
}
