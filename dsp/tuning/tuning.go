// Package tuning converts between frequency and MIDI note numbers and pulls
// detected frequencies towards equal-tempered pitches.
package tuning

import (
	"math"
	"strconv"
)

const (
	// DefaultReferenceA is the concert pitch of A4 in Hz.
	DefaultReferenceA = 440.0

	referenceNote = 69
)

// FrequencyToMIDI returns the fractional MIDI note number of frequency for
// the given A4 reference. Non-positive inputs return NaN.
func FrequencyToMIDI(frequency, referenceA float64) float64 {
	if frequency <= 0 || referenceA <= 0 {
		return math.NaN()
	}

	return 12*math.Log2(frequency/referenceA) + referenceNote
}

// MIDIToFrequency returns the frequency of a fractional MIDI note number for
// the given A4 reference.
func MIDIToFrequency(note, referenceA float64) float64 {
	return referenceA * math.Exp2((note-referenceNote)/12)
}

// NearestNote returns the MIDI note closest to frequency.
func NearestNote(frequency, referenceA float64) int {
	return int(math.Round(FrequencyToMIDI(frequency, referenceA)))
}

// AdjustedFrequency moves frequency towards the nearest equal-tempered note.
//
// precision 0 returns frequency unchanged, precision 1 returns the exact
// frequency of the nearest note, and values in between interpolate in the
// MIDI (log-frequency) domain. precision is clamped to [0, 1]. Non-positive
// or non-finite frequencies are returned unchanged.
func AdjustedFrequency(frequency, precision, referenceA float64) float64 {
	if frequency <= 0 || math.IsNaN(frequency) || math.IsInf(frequency, 0) {
		return frequency
	}

	if precision <= 0 || math.IsNaN(precision) {
		return frequency
	}

	if referenceA <= 0 || math.IsNaN(referenceA) {
		referenceA = DefaultReferenceA
	}

	note := FrequencyToMIDI(frequency, referenceA)
	target := math.Round(note)

	if precision >= 1 {
		return MIDIToFrequency(target, referenceA)
	}

	return MIDIToFrequency(note+(target-note)*precision, referenceA)
}

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteName returns the scientific pitch name of a MIDI note, e.g. "A4" for 69.
func NoteName(note int) string {
	octave := note/12 - 1
	idx := note % 12

	if idx < 0 {
		idx += 12
		octave--
	}

	return noteNames[idx] + strconv.Itoa(octave)
}

