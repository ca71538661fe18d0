package keyframe

import (
	"reflect"

	"github.com/matt-g-everett/keyframer/easing"
)

// A Keyframe covers a sub-range of global progress and carries the values
// blended across it. Keyframes are immutable once built.
type Keyframe[K any] struct {
	startProgress    float64
	endProgress      float64
	durationProgress float64
	startValue       K
	endValue         K
	hasEnd           bool
	easing           easing.Func
	static           bool
}

// NewKeyframe creates a keyframe blending from one value to another between
// two progress points. A nil easing is linear. The keyframe is static when
// both values are equal. Values are kept as given; reference-typed values
// must not be modified by the caller afterwards.
func NewKeyframe[K any](start, end float64, from, to K, ease easing.Func) *Keyframe[K] {
	k := new(Keyframe[K])
	k.startProgress = start
	k.endProgress = end
	k.durationProgress = end - start
	k.startValue = from
	k.endValue = to
	k.hasEnd = true
	k.easing = ease
	k.static = reflect.DeepEqual(from, to)
	return k
}

// NewHoldKeyframe creates a static keyframe that holds a single value.
func NewHoldKeyframe[K any](start, end float64, value K) *Keyframe[K] {
	k := new(Keyframe[K])
	k.startProgress = start
	k.endProgress = end
	k.durationProgress = end - start
	k.startValue = value
	k.endValue = value
	k.static = true
	return k
}

// StartProgress is where the keyframe begins in global progress.
func (k *Keyframe[K]) StartProgress() float64 { return k.startProgress }

// EndProgress is where the keyframe ends in global progress.
func (k *Keyframe[K]) EndProgress() float64 { return k.endProgress }

// DurationProgress is EndProgress - StartProgress.
func (k *Keyframe[K]) DurationProgress() float64 { return k.durationProgress }

// StartValue returns the value at local factor 0.
func (k *Keyframe[K]) StartValue() K { return k.startValue }

// EndValue returns the value the keyframe blends towards. Keyframes without
// an end value report their start value.
func (k *Keyframe[K]) EndValue() K { return k.endValue }

// HasEndValue reports whether the keyframe was built with an end value.
func (k *Keyframe[K]) HasEndValue() bool { return k.hasEnd }

// Easing returns the keyframe's easing, or nil for linear.
func (k *Keyframe[K]) Easing() easing.Func { return k.easing }

// IsStatic reports whether the keyframe has nothing to interpolate.
func (k *Keyframe[K]) IsStatic() bool { return k.static }

// ContainsProgress reports whether p lies in [StartProgress, EndProgress).
func (k *Keyframe[K]) ContainsProgress(p float64) bool {
	return p >= k.startProgress && p < k.endProgress
}
