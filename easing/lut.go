package easing

import (
	"fmt"
	"math"
)

// Lut is an easing sampled at evenly spaced points and linearly interpolated
// between them. Sampling trades a little accuracy for a constant evaluation
// cost, which matters for bezier curves evaluated every frame.
type Lut []float64

// NewLut samples fn at size+1 evenly spaced points over [0, 1].
func NewLut(fn Func, size int) (Lut, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLut, size)
	}

	lut := make(Lut, size+1)
	for i := range lut {
		lut[i] = fn(float64(i) / float64(size))
	}
	return lut, nil
}

// At returns the interpolated table value at t. t is clamped to [0, 1].
func (l Lut) At(t float64) float64 {
	if len(l) == 0 {
		return t
	}
	if t <= 0 || math.IsNaN(t) {
		return l[0]
	}
	last := len(l) - 1
	if t >= 1 || last == 0 {
		return l[last]
	}

	pos := t * float64(last)
	i := int(pos)
	frac := pos - float64(i)
	return l[i] + (l[i+1]-l[i])*frac
}

// Func exposes the table as an easing.
func (l Lut) Func() Func {
	return l.At
}

// GenerateLut builds a symmetric rise-and-fall table of the given length:
// the first half climbs along fn and the second half mirrors it back down.
// Odd lengths put fn(1) in the middle. A nil fn uses inOutQuad.
func GenerateLut(length int, fn Func) Lut {
	if fn == nil {
		fn = named["inOutQuad"]
	}
	if length <= 0 {
		return Lut{}
	}

	lut := make(Lut, length)
	half := length / 2
	if half == 0 {
		lut[0] = fn(1)
		return lut
	}

	increment := 1.0 / float64(half)
	for i, j := 0, length-1; i < half; i, j = i+1, j-1 {
		value := fn(float64(i) * increment)
		lut[i] = value
		lut[j] = value
	}
	if length%2 == 1 {
		lut[half] = fn(1)
	}
	return lut
}
