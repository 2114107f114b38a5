package common

import "math"

const twoPi = 2 * math.Pi

// Clamp01 clamps v to the [0, 1] range.
func Clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Lerp linearly interpolates from a to b. The factor t is clamped to [0, 1],
// so a damping step of rate*dt never overshoots the destination.
//
// Parameters:
//   - a: start value
//   - b: destination value
//   - t: interpolation factor
//
// Returns:
//   - float32: the interpolated value
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*Clamp01(t)
}

// Repeat wraps v into [0, length).
func Repeat(v, length float32) float32 {
	r := v - float32(math.Floor(float64(v/length)))*length
	if r >= length {
		r = 0
	}
	return r
}

// DeltaAngle returns the shortest signed difference from current to target in radians, in (-pi, pi].
func DeltaAngle(current, target float32) float32 {
	d := Repeat(target-current, twoPi)
	if d > math.Pi {
		d -= twoPi
	}
	return d
}

// LerpAngle interpolates between two angles in radians along the shortest arc.
// The factor t is clamped to [0, 1]. The result is not wrapped, so callers
// accumulating yaw can grow past 2*pi without visible effect.
//
// Parameters:
//   - a: current angle in radians
//   - b: destination angle in radians
//   - t: interpolation factor
//
// Returns:
//   - float32: the interpolated angle in radians
func LerpAngle(a, b, t float32) float32 {
	return a + DeltaAngle(a, b)*Clamp01(t)
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ForwardFromYawPitch returns the unit forward vector of an orientation built from a rotation
// of pitch around X followed by yaw around Y. Positive pitch tilts the view downward, yaw 0 faces +Z.
//
// Parameters:
//   - yaw: rotation around the Y axis in radians
//   - pitch: downward tilt in radians
//
// Returns:
//   - Vec3: the unit forward vector
func ForwardFromYawPitch(yaw, pitch float32) Vec3 {
	sy, cy := math.Sincos(float64(yaw))
	sp, cp := math.Sincos(float64(pitch))
	return Vec3{float32(sy * cp), float32(-sp), float32(cy * cp)}
}

// YawPitchFromDirection is the inverse of ForwardFromYawPitch for a non-zero direction.
// The boolean is false for a zero-length or non-finite direction. When the direction is
// vertical the yaw is reported as 0 and callers should keep their previous yaw.
//
// Parameters:
//   - dir: direction to face
//
// Returns:
//   - yaw, pitch: orientation in radians
//   - ok: false if dir has no usable direction
func YawPitchFromDirection(dir Vec3) (yaw, pitch float32, ok bool) {
	l := dir.Len()
	if l == 0 || !IsFinite(l) {
		return 0, 0, false
	}
	horizontal := math.Hypot(float64(dir[0]), float64(dir[2]))
	pitch = float32(math.Atan2(float64(-dir[1]), horizontal))
	if horizontal > 1e-9 {
		yaw = float32(math.Atan2(float64(dir[0]), float64(dir[2])))
	}
	return yaw, pitch, true
}
