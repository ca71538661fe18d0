package keyframe

import (
	"math"
)

// A Listener is told that an Animation's value changed. It carries no
// payload; listeners read the new value through Animation.Value.
type Listener func()

type listener struct {
	fn Listener
}

// Option configures an Animation.
type Option func(*options)

type options struct {
	discrete bool
}

// WithDiscrete makes the animation step: every keyframe resolves to its
// start value with no blending.
func WithDiscrete() Option {
	return func(o *options) {
		o.discrete = true
	}
}

// An Animation evaluates one keyframe sequence at a global progress and
// caches the result.
type Animation[K, A any] struct {
	sequence Sequence[K]
	resolver Resolver[K, A]
	discrete bool

	progress float64
	// current is the index of the last active keyframe, or -1. It only
	// seeds the next lookup and is validated before use.
	current    int
	value      A
	valueValid bool

	listeners []*listener

	// scans counts keyframe steps taken by lookups. It is instrumentation
	// for tests that check scrubbing stays linear in the keyframe count.
	scans int
}

// New creates an Animation over sequence, resolving values with resolver.
func New[K, A any](sequence Sequence[K], resolver Resolver[K, A], opts ...Option) *Animation[K, A] {
	if resolver == nil {
		panic(ErrNilResolver)
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	a := new(Animation[K, A])
	a.sequence = sequence
	a.resolver = resolver
	a.discrete = o.discrete
	a.current = -1
	return a
}

// SetDiscrete switches the animation to step mode.
func (a *Animation[K, A]) SetDiscrete() {
	if a.discrete {
		return
	}
	a.discrete = true
	a.invalidate()
}

// IsDiscrete reports whether the animation is in step mode.
func (a *Animation[K, A]) IsDiscrete() bool {
	return a.discrete
}

// Sequence returns the keyframes the animation evaluates.
func (a *Animation[K, A]) Sequence() Sequence[K] {
	return a.sequence
}

// AddListener registers fn to be called after every progress change.
// Listeners run in registration order; registering the same function twice
// calls it twice. The returned func unregisters this registration.
func (a *Animation[K, A]) AddListener(fn Listener) (remove func()) {
	l := &listener{fn: fn}
	a.listeners = append(a.listeners, l)

	return func() {
		kept := make([]*listener, 0, len(a.listeners))
		for _, other := range a.listeners {
			if other != l {
				kept = append(kept, other)
			}
		}
		a.listeners = kept
	}
}

// SetProgress moves the animation to global progress p. Progress before the
// first keyframe is treated as 0 and progress after the last as 1. Setting
// the current progress again does nothing; otherwise the value is recomputed
// and every listener is notified once.
func (a *Animation[K, A]) SetProgress(p float64) {
	p = a.clamp(p)
	if p == a.progress {
		return
	}

	a.progress = p
	a.invalidate()
	a.Value()

	// Removal swaps in a new slice, so this snapshot is stable even when a
	// listener unregisters itself or others.
	snapshot := a.listeners
	for _, l := range snapshot {
		l.fn()
	}
}

// Progress returns the last stored global progress.
func (a *Animation[K, A]) Progress() float64 {
	return a.progress
}

// Value returns the value at the current progress, resolving it if needed.
// It panics if the sequence is empty.
func (a *Animation[K, A]) Value() A {
	if !a.valueValid {
		k := a.Keyframe()
		a.value = a.resolver.Resolve(k, a.localFactor(k))
		a.valueValid = true
	}
	return a.value
}

// Keyframe returns the keyframe active at the current progress.
// It panics if the sequence is empty.
func (a *Animation[K, A]) Keyframe() *Keyframe[K] {
	i, steps := a.sequence.locate(a.progress, a.current)
	a.current = i
	a.scans += steps
	return a.sequence.keyframes[i]
}

func (a *Animation[K, A]) invalidate() {
	var zero A
	a.value = zero
	a.valueValid = false
}

func (a *Animation[K, A]) clamp(p float64) float64 {
	switch {
	case math.IsNaN(p):
		return 0
	case p < a.sequence.StartProgress():
		return 0
	case p > a.sequence.EndProgress():
		return 1
	}
	return p
}

// localFactor maps global progress into k's own [0, 1] range and eases it.
// Progress outside the keyframe (before the first keyframe, in a gap, after
// the last) holds the nearest end.
func (a *Animation[K, A]) localFactor(k *Keyframe[K]) float64 {
	if a.discrete || k.static {
		return 0
	}

	d := k.durationProgress
	if !(d > 0) {
		return 0
	}

	into := a.progress - k.startProgress
	if into < 0 {
		into = 0
	} else if into > d {
		into = d
	}

	t := into / d
	if k.easing != nil {
		t = k.easing(t)
	}
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return 0
	}
	return t
}
