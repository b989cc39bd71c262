package resynth

import (
	"math"
	"testing"
)

func TestDefaultControlsMatchRanges(t *testing.T) {
	c := DefaultControls()

	for i, r := range ControlRanges() {
		if got := *c.field(i); got != r.Default {
			t.Fatalf("%s=%v want=%v", r.Name, got, r.Default)
		}

		if r.Default < r.Min || r.Default > r.Max {
			t.Fatalf("%s default %v outside [%v, %v]", r.Name, r.Default, r.Min, r.Max)
		}
	}

	if c.GrainLengthSeconds != 0.1 || c.ReferenceA != 440 || c.HighPassHz != 100 {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestControlRangesCoverEveryField(t *testing.T) {
	var c Controls

	seen := map[*float64]bool{}
	for i := range ControlRanges() {
		p := c.field(i)
		if seen[p] {
			t.Fatalf("field %d maps to a field already seen", i)
		}

		seen[p] = true
	}

	if want := 17; len(seen) != want {
		t.Fatalf("ranges cover %d fields want=%d", len(seen), want)
	}
}

func TestControlsClamped(t *testing.T) {
	c := Controls{
		BufferSizeSeconds:  100,
		GrainLengthSeconds: -1,
		ActiveGrains:       7,
		ReferenceA:         math.NaN(),
		OscillatorSelect:   0,
		ReverbAmount:       1,
		HighPassHz:         math.Inf(1),
	}.Clamped()

	tests := []struct {
		name      string
		got, want float64
	}{
		{"BufferSizeSeconds", c.BufferSizeSeconds, 4.99},
		{"GrainLengthSeconds", c.GrainLengthSeconds, 0.02},
		{"ActiveGrains", c.ActiveGrains, 4.99},
		{"ReferenceA", c.ReferenceA, 440},
		{"OscillatorSelect", c.OscillatorSelect, 1},
		{"ReverbAmount", c.ReverbAmount, 0.99},
		{"HighPassHz", c.HighPassHz, 2500},
		{"SynthEnvelopeShape", c.SynthEnvelopeShape, 0.01},
		{"SynthOnsetThreshold", c.SynthOnsetThreshold, 0.01},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Fatalf("%s=%v want=%v", tt.name, tt.got, tt.want)
		}
	}

	if again := c.Clamped(); again != c {
		t.Fatal("Clamped is not idempotent")
	}
}

func TestControlRangesReturnsCopy(t *testing.T) {
	r := ControlRanges()
	r[0].Default = -1

	if ControlRanges()[0].Default != 2 {
		t.Fatal("ControlRanges exposed shared state")
	}
}

func TestReverbParameters(t *testing.T) {
	wet, dry, room := reverbParameters(0.5)

	if !near(wet, 0.4) || !near(dry, 0.6) || !near(room, 0.575) {
		t.Fatalf("wet=%v dry=%v room=%v", wet, dry, room)
	}

	wet, dry, room = reverbParameters(0)
	if wet != 0 || dry != 1 || room != 0.5 {
		t.Fatalf("zero amount: wet=%v dry=%v room=%v", wet, dry, room)
	}
}

func TestGrainGain(t *testing.T) {
	if got := grainGain(2); got != 1 {
		t.Fatalf("gain(2)=%v want=1", got)
	}

	if got := grainGain(0); got != 0 {
		t.Fatalf("gain(0)=%v want=0", got)
	}
}
