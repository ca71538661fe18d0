package keyframe

import (
	"fmt"
	"math"
)

// A Sequence is an ordered, immutable list of keyframes. The zero Sequence
// is empty; looking up progress in an empty sequence panics.
type Sequence[K any] struct {
	keyframes []*Keyframe[K]
}

// NewSequence validates keyframes and wraps them in a Sequence. Keyframes
// must be non-empty, lie within [0, 1], have start <= end and be ordered by
// non-decreasing start progress.
func NewSequence[K any](keyframes ...*Keyframe[K]) (Sequence[K], error) {
	if len(keyframes) == 0 {
		return Sequence[K]{}, ErrNoKeyframes
	}

	prevStart := math.Inf(-1)
	for i, k := range keyframes {
		if k == nil {
			return Sequence[K]{}, fmt.Errorf("keyframe %d: %w", i, ErrNilKeyframe)
		}
		if !validProgress(k.startProgress) || !validProgress(k.endProgress) || k.startProgress > k.endProgress {
			return Sequence[K]{}, fmt.Errorf("keyframe %d [%g, %g]: %w", i, k.startProgress, k.endProgress, ErrInvalidRange)
		}
		if k.startProgress < prevStart {
			return Sequence[K]{}, fmt.Errorf("keyframe %d starts at %g before %g: %w", i, k.startProgress, prevStart, ErrUnordered)
		}
		prevStart = k.startProgress
	}

	kfs := make([]*Keyframe[K], len(keyframes))
	copy(kfs, keyframes)
	return Sequence[K]{keyframes: kfs}, nil
}

// MustSequence is like NewSequence but panics on invalid input.
func MustSequence[K any](keyframes ...*Keyframe[K]) Sequence[K] {
	s, err := NewSequence(keyframes...)
	if err != nil {
		panic(err)
	}
	return s
}

func validProgress(p float64) bool {
	return p >= 0 && p <= 1
}

// Len returns the number of keyframes.
func (s Sequence[K]) Len() int { return len(s.keyframes) }

// At returns keyframe i.
func (s Sequence[K]) At(i int) *Keyframe[K] { return s.keyframes[i] }

// StartProgress is the first keyframe's start, or 0 for an empty sequence.
func (s Sequence[K]) StartProgress() float64 {
	if len(s.keyframes) == 0 {
		return 0
	}
	return s.keyframes[0].startProgress
}

// EndProgress is the last keyframe's end, or 1 for an empty sequence.
func (s Sequence[K]) EndProgress() float64 {
	if len(s.keyframes) == 0 {
		return 1
	}
	return s.keyframes[len(s.keyframes)-1].endProgress
}

// covers reports whether keyframe i is the active keyframe at p: the last
// keyframe starting at or before p, or the first keyframe when p precedes
// them all. For contiguous keyframes this is ContainsProgress, with the last
// keyframe also claiming anything past its end.
func (s Sequence[K]) covers(i int, p float64) bool {
	if p < s.keyframes[i].startProgress {
		return i == 0
	}
	return i == len(s.keyframes)-1 || p < s.keyframes[i+1].startProgress
}

// locate returns the index of the active keyframe at p, walking from anchor
// (the previously active index, or -1), and the number of steps the walk
// took. Walking in both directions from the anchor keeps small moves cheap
// for forward playback and backward scrubbing alike, while an arbitrary seek
// still lands on the right keyframe.
func (s Sequence[K]) locate(p float64, anchor int) (int, int) {
	n := len(s.keyframes)
	if n == 0 {
		panic(fmt.Errorf("keyframe: lookup at progress %g: %w", p, ErrNoKeyframes))
	}

	if anchor >= 0 && anchor < n && s.covers(anchor, p) {
		return anchor, 0
	}

	if p < s.keyframes[0].startProgress {
		return 0, 0
	}

	i := anchor
	if i < 0 || i >= n {
		i = 0
	}

	steps := 0
	for i+1 < n && s.keyframes[i+1].startProgress <= p {
		i++
		steps++
	}
	for i > 0 && s.keyframes[i].startProgress > p {
		i--
		steps++
	}
	return i, steps
}
