package value

import (
	"math"

	"github.com/matt-g-everett/keyframer/keyframe"
)

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// endpoints returns the values a keyframe blends between and whether there
// is anything to blend.
func endpoints[K any](k *keyframe.Keyframe[K]) (K, K, bool) {
	return k.StartValue(), k.EndValue(), k.HasEndValue() && !k.IsStatic()
}

// Float resolves scalar keyframes by linear blend.
func Float() keyframe.Resolver[float64, float64] {
	return keyframe.ResolverFunc[float64, float64](func(k *keyframe.Keyframe[float64], t float64) float64 {
		from, to, blend := endpoints(k)
		if !blend {
			return from
		}
		return lerp(from, to, t)
	})
}

// Int resolves integer keyframes by linear blend rounded to the nearest
// integer.
func Int() keyframe.Resolver[int, int] {
	return keyframe.ResolverFunc[int, int](func(k *keyframe.Keyframe[int], t float64) int {
		from, to, blend := endpoints(k)
		if !blend {
			return from
		}
		return int(math.Round(lerp(float64(from), float64(to), t)))
	})
}

// Discrete resolves values that cannot be blended: the start value until the
// local factor reaches 1, then the end value. Values are returned as stored
// in the keyframe, so reference-typed values are shared with it and must be
// treated as read-only.
func Discrete[K any]() keyframe.Resolver[K, K] {
	return keyframe.ResolverFunc[K, K](func(k *keyframe.Keyframe[K], t float64) K {
		from, to, blend := endpoints(k)
		if !blend || t < 1 {
			return from
		}
		return to
	})
}

// NewFloat creates a scalar animation.
func NewFloat(seq keyframe.Sequence[float64], opts ...keyframe.Option) *keyframe.Animation[float64, float64] {
	return keyframe.New(seq, Float(), opts...)
}
