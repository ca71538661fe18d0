package easing

import (
	"fmt"
	"math"
)

const (
	bezierEpsilon    = 1e-7
	newtonIterations = 8
)

// unitBezier is a cubic bezier from (0,0) to (1,1) in polynomial form.
type unitBezier struct {
	ax, bx, cx float64
	ay, by, cy float64
}

// CubicBezier returns the easing described by the control points (x1, y1)
// and (x2, y2), as used by CSS timing functions and After Effects keyframes.
// The x coordinates must lie in [0, 1] so the curve is a function of time;
// the y coordinates are free and produce overshoot outside [0, 1].
func CubicBezier(x1, y1, x2, y2 float64) (Func, error) {
	for _, v := range []float64{x1, y1, x2, y2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: non-finite coordinate", ErrInvalidBezier)
		}
	}
	if x1 < 0 || x1 > 1 || x2 < 0 || x2 > 1 {
		return nil, fmt.Errorf("%w: x1=%g x2=%g outside [0, 1]", ErrInvalidBezier, x1, x2)
	}

	b := new(unitBezier)
	b.cx = 3 * x1
	b.bx = 3*(x2-x1) - b.cx
	b.ax = 1 - b.cx - b.bx
	b.cy = 3 * y1
	b.by = 3*(y2-y1) - b.cy
	b.ay = 1 - b.cy - b.by

	return b.ease, nil
}

func (b *unitBezier) sampleX(t float64) float64 {
	return ((b.ax*t+b.bx)*t + b.cx) * t
}

func (b *unitBezier) sampleY(t float64) float64 {
	return ((b.ay*t+b.by)*t + b.cy) * t
}

func (b *unitBezier) sampleDerivativeX(t float64) float64 {
	return (3*b.ax*t+2*b.bx)*t + b.cx
}

// solveX finds the curve parameter whose x coordinate is x. Newton's method
// converges in a few steps for most curves; bisection catches flat spots.
func (b *unitBezier) solveX(x float64) float64 {
	t := x
	for i := 0; i < newtonIterations; i++ {
		dx := b.sampleX(t) - x
		if math.Abs(dx) < bezierEpsilon {
			return t
		}
		d := b.sampleDerivativeX(t)
		if math.Abs(d) < 1e-6 {
			break
		}
		t -= dx / d
	}

	lo, hi := 0.0, 1.0
	t = x
	for lo < hi {
		v := b.sampleX(t)
		if math.Abs(v-x) < bezierEpsilon {
			return t
		}
		if x > v {
			lo = t
		} else {
			hi = t
		}
		next := (hi-lo)/2 + lo
		if next == t {
			break
		}
		t = next
	}
	return t
}

func (b *unitBezier) ease(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	return b.sampleY(b.solveX(x))
}
