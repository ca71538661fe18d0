package stream

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/keyframer/easing"
	"github.com/matt-g-everett/keyframer/keyframe"
	"github.com/matt-g-everett/keyframer/value"
	"github.com/spf13/cast"
)

// bezierLutSize is the number of samples taken of a bezier easing.
const bezierLutSize = 256

// NewClipFromConfig builds a Clip and its tracks from cc.
func NewClipFromConfig(cc ClipConfig, numPixels int) (*Clip, error) {
	space, err := value.ParseColorSpace(cc.ColorSpace)
	if err != nil {
		return nil, fmt.Errorf("clip %q: %w", cc.Name, err)
	}

	c := NewClip(cc.Name, numPixels, cc.DurationMs, !cc.Once, space)

	if cc.Colour != nil {
		seq, err := buildSequence(cc.Colour, toColour)
		if err != nil {
			return nil, fmt.Errorf("clip %q colour: %w", cc.Name, err)
		}
		c.SetColour(keyframe.New(seq, value.Color(space), trackOptions(cc.Colour)...))
	}

	if cc.Gradient != nil {
		seq, err := buildSequence(cc.Gradient, toGradient)
		if err != nil {
			return nil, fmt.Errorf("clip %q gradient: %w", cc.Name, err)
		}
		c.SetGradient(keyframe.New(seq, value.GradientResolver(space), trackOptions(cc.Gradient)...))
	}

	if cc.Brightness != nil {
		seq, err := buildSequence(cc.Brightness, cast.ToFloat64E)
		if err != nil {
			return nil, fmt.Errorf("clip %q brightness: %w", cc.Name, err)
		}
		c.SetBrightness(keyframe.New(seq, value.Float(), trackOptions(cc.Brightness)...))
	}

	return c, nil
}

// NewClipsFromConfig builds every clip in config.
func NewClipsFromConfig(config Config) ([]*Clip, error) {
	clips := make([]*Clip, 0, len(config.Clips))
	for _, cc := range config.Clips {
		c, err := NewClipFromConfig(cc, config.Pixels)
		if err != nil {
			return nil, err
		}
		clips = append(clips, c)
	}
	return clips, nil
}

func trackOptions(tc *TrackConfig) []keyframe.Option {
	if tc.Discrete {
		return []keyframe.Option{keyframe.WithDiscrete()}
	}
	return nil
}

func buildSequence[K any](tc *TrackConfig, convert func(interface{}) (K, error)) (keyframe.Sequence[K], error) {
	kfs := make([]*keyframe.Keyframe[K], 0, len(tc.Keyframes))
	for i, kc := range tc.Keyframes {
		kf, err := buildKeyframe(kc, convert)
		if err != nil {
			return keyframe.Sequence[K]{}, fmt.Errorf("keyframe %d: %w", i, err)
		}
		kfs = append(kfs, kf)
	}
	return keyframe.NewSequence(kfs...)
}

func buildKeyframe[K any](kc KeyframeConfig, convert func(interface{}) (K, error)) (*keyframe.Keyframe[K], error) {
	from, err := convert(kc.From)
	if err != nil {
		return nil, fmt.Errorf("from: %w", err)
	}

	if kc.Hold || kc.To == nil {
		return keyframe.NewHoldKeyframe(kc.Start, kc.End, from), nil
	}

	to, err := convert(kc.To)
	if err != nil {
		return nil, fmt.Errorf("to: %w", err)
	}

	ease, err := buildEasing(kc)
	if err != nil {
		return nil, err
	}

	return keyframe.NewKeyframe(kc.Start, kc.End, from, to, ease), nil
}

func buildEasing(kc KeyframeConfig) (easing.Func, error) {
	if len(kc.Bezier) == 0 {
		return easing.Lookup(kc.Easing)
	}

	if len(kc.Bezier) != 4 {
		return nil, fmt.Errorf("%w: want 4 values, got %d", easing.ErrInvalidBezier, len(kc.Bezier))
	}
	fn, err := easing.CubicBezier(kc.Bezier[0], kc.Bezier[1], kc.Bezier[2], kc.Bezier[3])
	if err != nil {
		return nil, err
	}
	lut, err := easing.NewLut(fn, bezierLutSize)
	if err != nil {
		return nil, err
	}
	return lut.Func(), nil
}

func toColour(v interface{}) (colorful.Color, error) {
	s, err := cast.ToStringE(v)
	if err != nil {
		return colorful.Color{}, err
	}
	return colorful.Hex(s)
}

func toGradient(v interface{}) (value.Gradient, error) {
	items, err := cast.ToSliceE(v)
	if err != nil {
		return nil, err
	}

	g := make(value.Gradient, 0, len(items))
	for i, item := range items {
		m, err := cast.ToStringMapE(item)
		if err != nil {
			return nil, fmt.Errorf("stop %d: %w", i, err)
		}
		pos, err := cast.ToFloat64E(m["pos"])
		if err != nil {
			return nil, fmt.Errorf("stop %d pos: %w", i, err)
		}
		colour, err := toColour(m["colour"])
		if err != nil {
			return nil, fmt.Errorf("stop %d colour: %w", i, err)
		}
		g = append(g, value.Stop{Pos: pos, Color: colour})
	}
	return g, nil
}
