// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import "math"

// Vec2 is a 2D vector, used for screen-space pointer and touch coordinates.
type Vec2 [2]float32

// Vec3 is a 3D vector in world space. Y is up.
type Vec3 [3]float32

// Add returns v + a.
func (v Vec2) Add(a Vec2) Vec2 {
	return Vec2{v[0] + a[0], v[1] + a[1]}
}

// Sub returns v - a.
func (v Vec2) Sub(a Vec2) Vec2 {
	return Vec2{v[0] - a[0], v[1] - a[1]}
}

// Dot returns the dot product of v and a.
func (v Vec2) Dot(a Vec2) float32 {
	return v[0]*a[0] + v[1]*a[1]
}

// Len returns the euclidean length of v.
func (v Vec2) Len() float32 {
	return float32(math.Hypot(float64(v[0]), float64(v[1])))
}

// Normalized returns v scaled to unit length.
// The second return value is false when v has no usable direction (zero length or non-finite),
// in which case the zero vector is returned.
//
// Returns:
//   - Vec2: the unit vector, or zero
//   - bool: true if v could be normalized
func (v Vec2) Normalized() (Vec2, bool) {
	l := v.Len()
	if l == 0 || !IsFinite(l) {
		return Vec2{}, false
	}
	return Vec2{v[0] / l, v[1] / l}, true
}

// Distance returns the euclidean distance between v and a.
func (v Vec2) Distance(a Vec2) float32 {
	return v.Sub(a).Len()
}

func (v Vec3) Add(a Vec3) Vec3 {
	return Vec3{v[0] + a[0], v[1] + a[1], v[2] + a[2]}
}

func (v Vec3) Sub(a Vec3) Vec3 {
	return Vec3{v[0] - a[0], v[1] - a[1], v[2] - a[2]}
}

func (v Vec3) Mul(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

func (v Vec3) Dot(a Vec3) float32 {
	return v[0]*a[0] + v[1]*a[1] + v[2]*a[2]
}

func (v Vec3) Len() float32 {
	return float32(math.Sqrt(float64(v.Dot(v))))
}

// XYZ unpacks the vector into its components, matching the (x, y, z float32) accessor style of the engine.
func (v Vec3) XYZ() (x, y, z float32) {
	return v[0], v[1], v[2]
}
