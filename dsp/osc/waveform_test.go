package osc

import (
	"math"
	"testing"
)

func TestShapeValues(t *testing.T) {
	tests := []struct {
		name  string
		w     Waveform
		phase float32
		width float32
		want  float64
	}{
		{"ramp", Ramp, 0.3, 0, 0.3},
		{"tri-ramp rising", TriRamp, 0.25, 0, 0.5},
		{"tri-ramp peak", TriRamp, 0.5, 0, 1},
		{"tri-ramp falling", TriRamp, 0.75, 0, 0.5},
		{"triangle start", Triangle, 0, 0, 1},
		{"triangle quarter", Triangle, 0.25, 0, 0},
		{"triangle half", Triangle, 0.5, 0, -1},
		{"sine quarter", Sine, 0.25, 0, 1},
		{"hard square low", HardSquare, 0.2, 0.5, -1},
		{"hard square high", HardSquare, 0.7, 0.5, 1},
		{"saw start", Saw, 0, 0, -1},
		{"saw mid", Saw, 0.5, 0, 0},
		{"soft square first half", SoftSquare, 0.25, 0.5, -1},
		{"soft square second half", SoftSquare, 0.75, 0.5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Shape(tt.w, tt.phase, 0.01, tt.width)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Fatalf("got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestShapeUnknownWaveform(t *testing.T) {
	if got := Shape(Waveform(99), 0.5, 0.01, 0.5); got != 0 {
		t.Fatalf("got=%v want=0", got)
	}

	if Waveform(-1).Valid() || numWaveforms.Valid() {
		t.Fatal("out-of-range waveform reported valid")
	}
}

func TestPolyBLEPSawMatchesNaiveAwayFromWrap(t *testing.T) {
	const dt = 0.01

	for _, p := range []float32{0.1, 0.3, 0.5, 0.8, 0.95} {
		blep := Shape(PolyBLEPSaw, p, dt, 0)
		naive := Shape(Saw, p, dt, 0)

		if blep != naive {
			t.Fatalf("phase %v: polyblep=%v naive=%v", p, blep, naive)
		}
	}
}

func TestPolyBLEPSawSmoothsDiscontinuity(t *testing.T) {
	o := New(PolyBLEPSaw, 44100)
	o.SetFrequency(1000)

	naive := New(Saw, 44100)
	naive.SetFrequency(1000)

	maxStep := 0.0
	maxNaiveStep := 0.0
	prev := o.Process()
	prevNaive := naive.Process()

	for i := 0; i < 44100; i++ {
		y := o.Process()
		yn := naive.Process()

		maxStep = math.Max(maxStep, math.Abs(y-prev))
		maxNaiveStep = math.Max(maxNaiveStep, math.Abs(yn-prevNaive))
		prev, prevNaive = y, yn
	}

	if maxNaiveStep < 1.9 {
		t.Fatalf("naive saw max step=%v, expected a full-scale jump", maxNaiveStep)
	}

	if maxStep >= maxNaiveStep {
		t.Fatalf("polyblep max step=%v not smaller than naive=%v", maxStep, maxNaiveStep)
	}
}

func TestPolyBLEPCorrectionContinuousAtWrap(t *testing.T) {
	const dt = float32(0.125)

	// Correction approaches 0 at both edges of the correction band.
	if got := polyBLEP(dt, dt); got != 0 {
		t.Fatalf("polyBLEP at t=dt: got=%v want=0", got)
	}

	if got := polyBLEP(0, dt); got != -1 {
		t.Fatalf("polyBLEP at t=0: got=%v want=-1", got)
	}

	if got := polyBLEP(1-dt/1024, dt); math.Abs(got-1) > 0.01 {
		t.Fatalf("polyBLEP just before wrap: got=%v want≈1", got)
	}
}

func TestOscillatorSineFrequency(t *testing.T) {
	const (
		sr   = 48000.0
		freq = 480.0
	)

	o := New(Sine, sr)
	o.SetFrequency(freq)

	for i := 1; i <= 1000; i++ {
		got := o.Process()
		want := math.Sin(2 * math.Pi * freq * float64(i) / sr)

		if math.Abs(got-want) > 1e-3 {
			t.Fatalf("sample %d: got=%v want=%v", i, got, want)
		}
	}
}

func TestOscillatorSetters(t *testing.T) {
	o := New(Sine, 44100)

	o.SetWaveform(Waveform(42))
	if o.Waveform() != Sine {
		t.Fatalf("waveform=%v want=%v", o.Waveform(), Sine)
	}

	o.SetPulseWidth(2)
	if o.PulseWidth() != 1 {
		t.Fatalf("pulse width=%v want=1", o.PulseWidth())
	}

	o.SetPulseWidth(math.NaN())
	if o.PulseWidth() != defaultPulseWidth {
		t.Fatalf("pulse width=%v want=%v", o.PulseWidth(), defaultPulseWidth)
	}

	o.SetWaveform(HardSquare)
	o.SetPhase(0.75)

	if got := o.Output(); got != 1 {
		t.Fatalf("output=%v want=1", got)
	}
}

func TestNewUnknownWaveformFallsBackToSine(t *testing.T) {
	o := New(Waveform(42), 44100)
	if o.Waveform() != Sine {
		t.Fatalf("waveform=%v want=%v", o.Waveform(), Sine)
	}

	o.SetFrequency(441)
	for i := 0; i < 200; i++ {
		if got := o.Process(); math.IsNaN(got) || got < -1 || got > 1 {
			t.Fatalf("sample %d: got=%v", i, got)
		}
	}
}

func TestWaveformString(t *testing.T) {
	if got := PolyBLEPSaw.String(); got != "polyblep-saw" {
		t.Fatalf("got=%q", got)
	}

	if got := Waveform(17).String(); got != "Waveform(17)" {
		t.Fatalf("got=%q", got)
	}
}

func BenchmarkOscillatorPolyBLEPSaw(b *testing.B) {
	o := New(PolyBLEPSaw, 48000)
	o.SetFrequency(440)
	b.ReportAllocs()

	var sink float64
	for i := 0; i < b.N; i++ {
		sink += o.Process()
	}

	_ = sink
}
