package value

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/keyframer/keyframe"
)

// ColorSpace selects the space colours are blended in.
type ColorSpace int

const (
	RGB ColorSpace = iota
	HSV
	Lab
	Luv
	HCL
)

var colorSpaceNames = map[string]ColorSpace{
	"rgb": RGB,
	"hsv": HSV,
	"lab": Lab,
	"luv": Luv,
	"hcl": HCL,
}

// ParseColorSpace converts a name such as "rgb" or "hcl" to a ColorSpace.
// The empty name is RGB.
func ParseColorSpace(name string) (ColorSpace, error) {
	if name == "" {
		return RGB, nil
	}
	s, ok := colorSpaceNames[name]
	if !ok {
		return RGB, fmt.Errorf("%w: %q", ErrUnknownColorSpace, name)
	}
	return s, nil
}

// Blend mixes c1 towards c2 by t. Factors outside [0, 1] extrapolate; call
// Clamped on the result before converting to device values.
func (s ColorSpace) Blend(c1, c2 colorful.Color, t float64) colorful.Color {
	switch s {
	case HSV:
		return c1.BlendHsv(c2, t)
	case Lab:
		return c1.BlendLab(c2, t)
	case Luv:
		return c1.BlendLuv(c2, t)
	case HCL:
		return c1.BlendHcl(c2, t)
	default:
		return c1.BlendRgb(c2, t)
	}
}

// Color resolves colour keyframes by blending in space.
func Color(space ColorSpace) keyframe.Resolver[colorful.Color, colorful.Color] {
	return keyframe.ResolverFunc[colorful.Color, colorful.Color](func(k *keyframe.Keyframe[colorful.Color], t float64) colorful.Color {
		from, to, blend := endpoints(k)
		if !blend {
			return from
		}
		return space.Blend(from, to, t)
	})
}

// NewColor creates a colour animation blending in space.
func NewColor(seq keyframe.Sequence[colorful.Color], space ColorSpace, opts ...keyframe.Option) *keyframe.Animation[colorful.Color, colorful.Color] {
	return keyframe.New(seq, Color(space), opts...)
}
