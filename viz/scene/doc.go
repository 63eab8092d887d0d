// Package scene drives the three synchronized views of the visualizer.
//
// An [Engine] owns the oscillators, their superposition, the playback
// scheduler, the band mapper and the three panel frames. A driver feeds it
// elapsed time through [Engine.Tick] and renders the snapshot returned by
// [Engine.Primitives]. The engine never touches a window or a clock, so a
// fixed delta sequence reproduces identical output.
package scene
