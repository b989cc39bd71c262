// Package osc provides phase-accumulator oscillators.
//
// A [Phasor] advances a single-precision phase in [0, 1) by
// frequency/sampleRate on every call to Process and reports the tick on
// which the phase wrapped. An [Oscillator] maps that phase through a
// [Waveform] shape looked up in a fixed function table, so selecting a
// shape costs one indexed call per sample.
//
// The wrap test is an exact comparison against 1.0. A phase increment
// that lands exactly on 1.0 wraps to 0 on that tick; there is no epsilon
// band around the boundary.
//
// Oscillators are not thread-safe. Each instance is owned by the component
// that embeds it and must be processed once per sample.
package osc
