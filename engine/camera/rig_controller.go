package camera

import (
	"github.com/Carmen-Shannon/oxy-rig/engine/config"
	"github.com/Carmen-Shannon/oxy-rig/engine/input"
	"github.com/Carmen-Shannon/oxy-rig/engine/target"
)

// Mode selects which half of the rig drives the camera transform.
type Mode int

const (
	// ModeFree moves the camera from pointer, touch and wheel gestures.
	ModeFree Mode = iota
	// ModeFollow trails a bound target with damped yaw and height.
	ModeFollow
)

func (m Mode) String() string {
	switch m {
	case ModeFree:
		return "free"
	case ModeFollow:
		return "follow"
	default:
		return "unknown"
	}
}

// RigController defines the union interface of the camera rig.
// The rig owns the camera transform and runs in two ordered phases per tick:
// Update interprets gestures in Free mode, LateUpdate trails the target in Follow mode.
// Embeds gestureRig and followRig so both halves share one transform.
type RigController interface {
	gestureRig
	followRig

	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - x, y, z: world-space camera position
	Position() (x, y, z float32)

	// SetPosition places the camera directly. The zoom distance is not changed.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetPosition(x, y, z float32)

	// Yaw returns the heading around the world Y axis in radians. Yaw 0 faces +Z.
	//
	// Returns:
	//   - float32: yaw in radians
	Yaw() float32

	// Pitch returns the downward tilt in radians.
	//
	// Returns:
	//   - float32: pitch in radians
	Pitch() float32

	// SetOrientation sets yaw and pitch directly.
	//
	// Parameters:
	//   - yaw: heading in radians
	//   - pitch: downward tilt in radians
	SetOrientation(yaw, pitch float32)

	// Forward returns the unit view direction.
	//
	// Returns:
	//   - x, y, z: forward vector
	Forward() (x, y, z float32)

	// LookPoint returns the point one unit ahead of the camera along Forward.
	// The Camera uses it as the look-at target of the view matrix.
	//
	// Returns:
	//   - x, y, z: world-space look point
	LookPoint() (x, y, z float32)

	// Mode returns the active mode.
	//
	// Returns:
	//   - Mode: ModeFree or ModeFollow
	Mode() Mode

	// Following reports whether Follow mode is active.
	//
	// Returns:
	//   - bool: true in Follow mode
	Following() bool

	// SetFollowing switches between Free and Follow mode. Neither mode's state is reset.
	//
	// Parameters:
	//   - following: true for Follow mode
	SetFollowing(following bool)

	// Config returns the rig tuning fixed at construction.
	//
	// Returns:
	//   - config.RigConfig: the tuning
	Config() config.RigConfig

	// MoveSpeed returns the pan speed selected at construction.
	//
	// Returns:
	//   - float32: world units per screen pixel
	MoveSpeed() float32
}

// gestureRig defines the Free mode half: pan, pinch and wheel zoom, plus the zoom buttons.
type gestureRig interface {
	// Update runs the gesture phase for one tick. It is a no-op in Follow mode.
	//
	// Parameters:
	//   - dt: elapsed time in seconds
	//   - s: input observed during this tick
	Update(dt float32, s input.Snapshot)

	// ZoomInStep lowers the camera by the zoom button step, ignoring limits and damping.
	ZoomInStep()

	// ZoomOutStep raises the camera by the zoom button step, ignoring limits and damping.
	ZoomOutStep()

	// ZoomDistance returns the camera height recorded after the last zoom move.
	// Zoom limits are checked against this value.
	//
	// Returns:
	//   - float32: the zoom distance
	ZoomDistance() float32

	// ZoomSpeed returns the displacement applied by the last zoom move.
	//
	// Returns:
	//   - float32: zoom speed in world units
	ZoomSpeed() float32

	// OrbitWeight returns where the zoom distance sits between the near and far limits, in [0, 1].
	// It is only maintained while a two-finger gesture is in progress and is 0 otherwise.
	//
	// Returns:
	//   - float32: orbit weight
	OrbitWeight() float32
}

// followRig defines the Follow mode half.
type followRig interface {
	// LateUpdate runs the follow phase for one tick. It must run after everything
	// that moves the target. It is a no-op in Free mode or without a resolvable target.
	//
	// Parameters:
	//   - dt: elapsed time in seconds
	LateUpdate(dt float32)

	// BindTarget selects the followed transform by handle.
	//
	// Parameters:
	//   - h: handle into the rig's registry
	BindTarget(h target.Handle)

	// ClearTarget drops the bound handle.
	ClearTarget()

	// Target returns the bound handle, or the zero Handle.
	//
	// Returns:
	//   - target.Handle: the bound handle
	Target() target.Handle

	// Registry returns the registry targets are resolved in, or nil.
	//
	// Returns:
	//   - target.Registry: the registry
	Registry() target.Registry

	// SetRegistry replaces the registry targets are resolved in.
	//
	// Parameters:
	//   - r: the registry
	SetRegistry(r target.Registry)
}
