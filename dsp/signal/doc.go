// Package signal synthesizes deterministic periodic sample sequences.
//
// A [Sample] is a vector in phase-amplitude space: for phase θ and amplitude
// A it holds (A·cos θ, A·sin θ). Its Y component is the familiar sine value
// plotted on a time-domain strip; the pair is what a radial plot draws.
//
// [Generate] and [Generator.Phasor] are pure: sample k of a buffer has phase
// θ_0 + k·2π·f/sampleRate. [Oscillator] adds the running state of one
// generator: a phase accumulator that persists across regenerations, a color
// tag, a fixed-length buffer and a circular playback cursor.
package signal
