// Package band partitions an audio-range spectrum into bands named after a
// musical octave/semitone grid and assigns each band a blended color.
//
// The partition is linear over [minFreq, maxFreq]: band n spans
//
//	[minFreq + n·span/count, minFreq + (n+1)·span/count)
//
// with span = maxFreq - minFreq. The number of bands comes from a
// [Resolution]. Band colors blend the octave color of n/12 with the
// pitch-class color of n%12.
package band
