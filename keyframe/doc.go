// Package keyframe evaluates animated properties along piecewise keyframe
// curves.
//
// A Sequence is an immutable, ordered list of Keyframes, each spanning a
// sub-range of global progress in [0, 1]. An Animation wraps one Sequence and
// tracks the last global progress it was given. On every progress change it
// finds the active keyframe, turns global progress into a local factor
// (honouring easing, static keyframes and discrete mode), resolves a typed
// value through a Resolver and notifies its listeners.
//
// Animations are single-owner and not safe for concurrent use. Sequences are
// never mutated after construction and may be shared between Animations.
package keyframe
