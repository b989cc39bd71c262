package spectrum

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// MagnitudeFromParts computes |X[k]| = sqrt(re[k]^2 + im[k]^2) into dst.
// All three slices must have the same length.
func MagnitudeFromParts(dst, re, im []float64) {
	vecmath.Magnitude(dst, re, im)
}

// PowerFromParts computes |X[k]|^2 = re[k]^2 + im[k]^2 into dst.
// All three slices must have the same length.
func PowerFromParts(dst, re, im []float64) {
	vecmath.Power(dst, re, im)
}

// PeakBin returns the index and value of the largest magnitude.
//
// It returns (-1, 0) for an empty or all-zero spectrum and (-1, NaN) if any
// magnitude is NaN or infinite. Ties resolve to the lowest bin.
func PeakBin(mag []float64) (int, float64) {
	bin := -1
	peak := 0.0

	for i, m := range mag {
		if math.IsNaN(m) || math.IsInf(m, 0) {
			return -1, math.NaN()
		}

		if m > peak {
			peak = m
			bin = i
		}
	}

	return bin, peak
}

// BinFrequency returns the centre frequency of bin for an FFT of fftSize
// points at sampleRate Hz.
func BinFrequency(bin int, sampleRate float64, fftSize int) float64 {
	if fftSize <= 0 {
		return 0
	}

	return float64(bin) * sampleRate / float64(fftSize)
}

// Resolution returns the bin spacing in Hz.
func Resolution(sampleRate float64, fftSize int) float64 {
	return BinFrequency(1, sampleRate, fftSize)
}

func splitComplex(re, im []float64, in []complex128) {
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
}
