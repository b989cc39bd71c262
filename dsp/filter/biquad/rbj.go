package biquad

import "math"

// DefaultQ is the Butterworth quality factor, 1/sqrt(2).
const DefaultQ = 1 / math.Sqrt2

// maxNormalizedFreq keeps designs below Nyquist, where the cookbook
// formulas degenerate.
const maxNormalizedFreq = 0.49

// Lowpass designs a second-order low-pass filter.
func Lowpass(freqHz, q, sampleRate float64) Coefficients {
	cosW, alpha := prewarp(freqHz, q, sampleRate)

	b1 := 1 - cosW
	b0 := b1 / 2

	return normalize(b0, b1, b0, 1+alpha, -2*cosW, 1-alpha)
}

// Highpass designs a second-order high-pass filter.
func Highpass(freqHz, q, sampleRate float64) Coefficients {
	cosW, alpha := prewarp(freqHz, q, sampleRate)

	b0 := (1 + cosW) / 2

	return normalize(b0, -(1 + cosW), b0, 1+alpha, -2*cosW, 1-alpha)
}

func prewarp(freqHz, q, sampleRate float64) (cosW, alpha float64) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) {
		sampleRate = 44100
	}

	nyq := maxNormalizedFreq * sampleRate
	switch {
	case math.IsNaN(freqHz) || freqHz < 1e-3:
		freqHz = 1e-3
	case freqHz > nyq:
		freqHz = nyq
	}

	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		q = DefaultQ
	}

	w0 := 2 * math.Pi * freqHz / sampleRate
	sinW, cosW := math.Sincos(w0)

	return cosW, sinW / (2 * q)
}

func normalize(b0, b1, b2, a0, a1, a2 float64) Coefficients {
	inv := 1 / a0

	return Coefficients{
		B0: b0 * inv,
		B1: b1 * inv,
		B2: b2 * inv,
		A1: a1 * inv,
		A2: a2 * inv,
	}
}
