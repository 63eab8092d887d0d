// Package time computes time-domain statistics of phase-amplitude signals.
//
// [Calculate] summarizes a whole [signal.Buffer] in one pass. [Accumulator]
// builds the same summary incrementally as samples are emitted one tick at
// a time, and yields results identical to [Calculate] over the same sample
// sequence.
//
// Each summary carries per-axis moments for the horizontal (cosine) and
// vertical (sine) components and radius statistics for the vector length.
package time
