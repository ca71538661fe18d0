package value

import "github.com/matt-g-everett/keyframer/keyframe"

// Point is a 2D coordinate.
type Point struct {
	X float64
	Y float64
}

// Lerp blends p towards q by t.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: lerp(p.X, q.X, t), Y: lerp(p.Y, q.Y, t)}
}

// Path is an ordered list of vertices.
type Path []Point

// Clone returns a copy of p that shares no storage with it.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	return append(make(Path, 0, len(p)), p...)
}

// Lerp blends each vertex of p towards the matching vertex of q. Paths with
// different vertex counts cannot be blended and snap: p below t = 1, q from
// there on.
func (p Path) Lerp(q Path, t float64) Path {
	if len(p) != len(q) {
		if t < 1 {
			return p.Clone()
		}
		return q.Clone()
	}

	out := make(Path, len(p))
	for i := range p {
		out[i] = p[i].Lerp(q[i], t)
	}
	return out
}

// PointResolver resolves point keyframes by coordinate blend.
func PointResolver() keyframe.Resolver[Point, Point] {
	return keyframe.ResolverFunc[Point, Point](func(k *keyframe.Keyframe[Point], t float64) Point {
		from, to, blend := endpoints(k)
		if !blend {
			return from
		}
		return from.Lerp(to, t)
	})
}

// PathResolver resolves path keyframes by per-vertex blend. Resolved paths
// never alias the keyframe's own vertices.
func PathResolver() keyframe.Resolver[Path, Path] {
	return keyframe.ResolverFunc[Path, Path](func(k *keyframe.Keyframe[Path], t float64) Path {
		from, to, blend := endpoints(k)
		if !blend {
			return from.Clone()
		}
		return from.Lerp(to, t)
	})
}
