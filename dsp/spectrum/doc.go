// Package spectrum provides the spectral analysis used for pitch tracking.
//
// [Analyzer] owns a forward FFT plan and every scratch slice it needs, so a
// frame can be analysed on the audio goroutine without allocating. The
// magnitude helpers run on algo-vecmath's SIMD kernels where available.
//
// Pitch is estimated from the single largest bin of the first half of the
// spectrum, with no sub-bin interpolation. The resolution is therefore
// sampleRate/size Hz; at 44.1 kHz and 65536 points that is about 0.67 Hz.
package spectrum
