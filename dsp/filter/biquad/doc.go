// Package biquad provides second-order IIR filters.
//
// A [Section] runs Direct Form II Transposed with [Coefficients] normalised
// so that a0 = 1. [Lowpass] and [Highpass] design coefficients from the RBJ
// audio EQ cookbook, and [Filter] wraps a section with a cutoff and Q that
// can be changed while audio is running.
package biquad
