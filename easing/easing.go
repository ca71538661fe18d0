// Package easing provides the easing curves applied to keyframe segments.
//
// Curves come from github.com/fogleman/ease and are addressed by name so that
// clip descriptions can refer to them. Cubic bezier curves and sampled
// look-up tables cover the cases the named set does not.
package easing

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fogleman/ease"
)

// Func maps a linear factor in [0, 1] to an eased factor. The result may
// leave [0, 1] for curves with anticipation or overshoot.
type Func func(t float64) float64

const mirrorPrefix = "mirror:"

var named = map[string]Func{
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inCubic":    ease.InCubic,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"inQuart":    ease.InQuart,
	"outQuart":   ease.OutQuart,
	"inOutQuart": ease.InOutQuart,
	"inQuint":    ease.InQuint,
	"outQuint":   ease.OutQuint,
	"inOutQuint": ease.InOutQuint,
	"inSine":     ease.InSine,
	"outSine":    ease.OutSine,
	"inOutSine":  ease.InOutSine,
	"inExpo":     ease.InExpo,
	"outExpo":    ease.OutExpo,
	"inOutExpo":  ease.InOutExpo,
	"inCirc":     ease.InCirc,
	"outCirc":    ease.OutCirc,
	"inOutCirc":  ease.InOutCirc,
	"inElastic":  ease.InElastic,
	"outElastic": ease.OutElastic,
	"inBack":     ease.InBack,
	"outBack":    ease.OutBack,
	"inOutBack":  ease.InOutBack,
	"inBounce":   ease.InBounce,
	"outBounce":  ease.OutBounce,
}

// Lookup returns the easing registered under name. The empty name is linear.
// A name of the form "mirror:<name>" plays the named curve forwards over the
// first half and backwards over the second.
func Lookup(name string) (Func, error) {
	if name == "" {
		return ease.Linear, nil
	}

	if strings.HasPrefix(name, mirrorPrefix) {
		fn, err := Lookup(strings.TrimPrefix(name, mirrorPrefix))
		if err != nil {
			return nil, err
		}
		return Mirror(fn), nil
	}

	fn, ok := named[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEasing, name)
	}
	return fn, nil
}

// Names lists the registered easing names in sorted order.
func Names() []string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Mirror turns fn into a rise-and-fall curve: fn(2t) up to the midpoint, then
// fn(2-2t) back down, so the result starts and ends at fn(0).
func Mirror(fn Func) Func {
	return func(t float64) float64 {
		if t <= 0.5 {
			return fn(2 * t)
		}
		return fn(2 - 2*t)
	}
}
