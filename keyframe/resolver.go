package keyframe

// A Resolver turns the active keyframe and a local factor into a value. The
// factor is 0 at the keyframe's start and 1 at its end, but eased factors may
// fall outside [0, 1]; resolvers extrapolate rather than fail.
type Resolver[K, A any] interface {
	Resolve(k *Keyframe[K], t float64) A
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc[K, A any] func(k *Keyframe[K], t float64) A

// Resolve calls f(k, t).
func (f ResolverFunc[K, A]) Resolve(k *Keyframe[K], t float64) A {
	return f(k, t)
}
