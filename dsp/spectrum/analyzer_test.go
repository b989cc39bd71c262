package spectrum

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-granular/internal/testutil"
)

func TestNewAnalyzerValidation(t *testing.T) {
	for _, size := range []int{0, 1, 3, 1000, -8} {
		if _, err := NewAnalyzer(size); err == nil {
			t.Fatalf("size %d: expected error", size)
		}
	}

	a, err := NewAnalyzer(1024)
	if err != nil {
		t.Fatalf("NewAnalyzer(1024): %v", err)
	}

	if a.Size() != 1024 || a.Bins() != 512 {
		t.Fatalf("size=%d bins=%d", a.Size(), a.Bins())
	}
}

func TestAnalyzerFindsBinAlignedSine(t *testing.T) {
	const (
		size = 4096
		sr   = 48000.0
		bin  = 137
	)

	a, err := NewAnalyzer(size)
	if err != nil {
		t.Fatalf("NewAnalyzer: %v", err)
	}

	freq := BinFrequency(bin, sr, size)
	frame := testutil.DeterministicSine(freq, sr, 0.7, size)

	got, peak, err := a.Peak(frame)
	if err != nil {
		t.Fatalf("Peak: %v", err)
	}

	if got != bin {
		t.Fatalf("peak bin=%d want=%d", got, bin)
	}

	// A bin-centred real sine of amplitude A has |X[k]| = A*N/2.
	if want := 0.7 * size / 2; math.Abs(peak-want) > 1e-6*want {
		t.Fatalf("peak magnitude=%v want=%v", peak, want)
	}
}

func TestAnalyzerZeroPadsShortFrames(t *testing.T) {
	a, err := NewAnalyzer(256)
	if err != nil {
		t.Fatalf("NewAnalyzer: %v", err)
	}

	mag, err := a.Magnitudes(testutil.Impulse(16, 0))
	if err != nil {
		t.Fatalf("Magnitudes: %v", err)
	}

	for i, m := range mag {
		if math.Abs(m-1) > 1e-12 {
			t.Fatalf("impulse bin %d magnitude=%v want=1", i, m)
		}
	}
}

func TestAnalyzerSilenceHasNoPeak(t *testing.T) {
	a, err := NewAnalyzer(512)
	if err != nil {
		t.Fatalf("NewAnalyzer: %v", err)
	}

	bin, _, err := a.Peak(make([]float64, 512))
	if err != nil {
		t.Fatalf("Peak: %v", err)
	}

	if bin != -1 {
		t.Fatalf("bin=%d want=-1", bin)
	}
}

func TestAnalyzerRejectsLongFrame(t *testing.T) {
	a, err := NewAnalyzer(64)
	if err != nil {
		t.Fatalf("NewAnalyzer: %v", err)
	}

	if _, err := a.Magnitudes(make([]float64, 65)); err == nil {
		t.Fatal("expected error")
	}
}

func TestAnalyzerDoesNotAllocate(t *testing.T) {
	a, err := NewAnalyzer(2048)
	if err != nil {
		t.Fatalf("NewAnalyzer: %v", err)
	}

	frame := testutil.DeterministicNoise(1, 0.5, 2048)

	allocs := testing.AllocsPerRun(20, func() {
		if _, _, err := a.Peak(frame); err != nil {
			t.Fatal(err)
		}
	})

	if allocs != 0 {
		t.Fatalf("allocs per Peak=%v want=0", allocs)
	}
}

func BenchmarkAnalyzerPeak65536(b *testing.B) {
	a, err := NewAnalyzer(65536)
	if err != nil {
		b.Fatal(err)
	}

	frame := testutil.DeterministicSine(1000, 44100, 0.5, 65536)
	b.ReportAllocs()
	b.SetBytes(int64(len(frame) * 8))
	b.ResetTimer()

	for range b.N {
		if _, _, err := a.Peak(frame); err != nil {
			b.Fatal(err)
		}
	}
}
