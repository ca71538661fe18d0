package value

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/keyframer/keyframe"
)

// Stop is a colour at a position along a gradient.
type Stop struct {
	Pos   float64
	Color colorful.Color
}

// Gradient is a list of colour stops ordered by position.
type Gradient []Stop

// Clone returns a copy of g that shares no storage with it.
func (g Gradient) Clone() Gradient {
	if g == nil {
		return nil
	}
	return append(make(Gradient, 0, len(g)), g...)
}

// At gets the colour at position x along the gradient, blending the two
// stops either side of it in space. Positions before the first stop or after
// the last take that stop's colour.
func (g Gradient) At(x float64, space ColorSpace) colorful.Color {
	if len(g) == 0 {
		return colorful.Color{}
	}
	if x <= g[0].Pos {
		return g[0].Color
	}

	for i := 0; i < len(g)-1; i++ {
		s1 := g[i]
		s2 := g[i+1]
		if s1.Pos <= x && x <= s2.Pos {
			span := s2.Pos - s1.Pos
			if span <= 0 {
				return s2.Color
			}
			return space.Blend(s1.Color, s2.Color, (x-s1.Pos)/span)
		}
	}

	// Nothing found means we're at (or past) the last stop.
	return g[len(g)-1].Color
}

// Lerp blends each stop of g towards the matching stop of h, both position
// and colour. Gradients with different stop counts snap like Path.Lerp.
func (g Gradient) Lerp(h Gradient, t float64, space ColorSpace) Gradient {
	if len(g) != len(h) {
		if t < 1 {
			return g.Clone()
		}
		return h.Clone()
	}

	out := make(Gradient, len(g))
	for i := range g {
		out[i] = Stop{
			Pos:   lerp(g[i].Pos, h[i].Pos, t),
			Color: space.Blend(g[i].Color, h[i].Color, t),
		}
	}
	return out
}

// GradientResolver resolves gradient keyframes, blending stop colours in
// space. Resolved gradients never alias the keyframe's own stops.
func GradientResolver(space ColorSpace) keyframe.Resolver[Gradient, Gradient] {
	return keyframe.ResolverFunc[Gradient, Gradient](func(k *keyframe.Keyframe[Gradient], t float64) Gradient {
		from, to, blend := endpoints(k)
		if !blend {
			return from.Clone()
		}
		return from.Lerp(to, t, space)
	})
}
