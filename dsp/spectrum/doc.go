// Package spectrum estimates per-band levels of a composite buffer.
//
// The buffer is treated as the complex sequence X + iY. For a sum of
// generators this is a sum of positive-frequency phasors, so a single
// Hann-windowed FFT yields a one-sided spectrum whose peaks sit at the
// generator frequencies with heights equal to their amplitudes.
package spectrum
