package main

import "testing"

func TestParseCountsDefault(t *testing.T) {
	got := parseCounts(nil, 3)
	want := []float64{1, 1.5, 2, 2.5, 3}

	if len(got) != len(want) {
		t.Fatalf("got=%v want=%v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got=%v want=%v", got, want)
		}
	}
}

func TestParseCountsSkipsInvalid(t *testing.T) {
	got := parseCounts([]string{"2.5", "abc", " 4 "}, 5)

	if len(got) != 2 || got[0] != 2.5 || got[1] != 4 {
		t.Fatalf("got=%v want=[2.5 4]", got)
	}
}
