// Package value provides the concrete keyframe resolvers for each kind of
// animated property: scalars, colours, points, paths, gradients and values
// that cannot be blended at all.
package value
