package camera

import (
	"log/slog"

	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/Carmen-Shannon/oxy-rig/engine/config"
	"github.com/Carmen-Shannon/oxy-rig/engine/target"
)

// RigControllerOption is a functional option for configuring a RigController during construction.
type RigControllerOption func(*rigControllerImpl)

// WithConfig sets the rig tuning. The struct is used as given, zero fields included,
// so partial tunings should start from config.DefaultRig.
//
// Parameters:
//   - cfg: the rig tuning
//
// Returns:
//   - RigControllerOption: functional option to set the tuning
func WithConfig(cfg config.RigConfig) RigControllerOption {
	return func(rc *rigControllerImpl) {
		rc.cfg = cfg
	}
}

// WithProfile selects which configured move speed the rig pans with.
//
// Parameters:
//   - p: the deployment profile
//
// Returns:
//   - RigControllerOption: functional option to set the profile
func WithProfile(p config.Profile) RigControllerOption {
	return func(rc *rigControllerImpl) {
		rc.profile = p
	}
}

// WithMoveSpeed overrides the pan speed regardless of profile. Zero is honoured and disables panning.
//
// Parameters:
//   - speed: world units per screen pixel
//
// Returns:
//   - RigControllerOption: functional option to set the move speed
func WithMoveSpeed(speed float32) RigControllerOption {
	return func(rc *rigControllerImpl) {
		rc.moveSpeed = speed
		rc.moveSpeedSet = true
	}
}

// WithPosition sets the starting camera position. Its height becomes the starting zoom distance.
//
// Parameters:
//   - x, y, z: world-space position
//
// Returns:
//   - RigControllerOption: functional option to set the position
func WithPosition(x, y, z float32) RigControllerOption {
	return func(rc *rigControllerImpl) {
		rc.position = common.Vec3{x, y, z}
	}
}

// WithOrientation sets the starting yaw and pitch.
//
// Parameters:
//   - yaw: heading in radians
//   - pitch: downward tilt in radians
//
// Returns:
//   - RigControllerOption: functional option to set the orientation
func WithOrientation(yaw, pitch float32) RigControllerOption {
	return func(rc *rigControllerImpl) {
		rc.yaw = yaw
		rc.pitch = pitch
	}
}

// WithRegistry sets the registry follow targets are resolved in.
//
// Parameters:
//   - r: the target registry
//
// Returns:
//   - RigControllerOption: functional option to set the registry
func WithRegistry(r target.Registry) RigControllerOption {
	return func(rc *rigControllerImpl) {
		rc.registry = r
	}
}

// WithTarget binds a follow target handle.
//
// Parameters:
//   - h: handle into the registry
//
// Returns:
//   - RigControllerOption: functional option to bind the target
func WithTarget(h target.Handle) RigControllerOption {
	return func(rc *rigControllerImpl) {
		rc.target = h
	}
}

// WithFollowing starts the rig in Follow mode when true.
//
// Parameters:
//   - following: true for Follow mode
//
// Returns:
//   - RigControllerOption: functional option to set the mode
func WithFollowing(following bool) RigControllerOption {
	return func(rc *rigControllerImpl) {
		rc.following = following
	}
}

// WithLogger sets the logger the rig reports mode changes and malformed gestures to.
//
// Parameters:
//   - l: the logger; nil keeps slog.Default
//
// Returns:
//   - RigControllerOption: functional option to set the logger
func WithLogger(l *slog.Logger) RigControllerOption {
	return func(rc *rigControllerImpl) {
		rc.logger = common.Coalesce(l, rc.logger)
	}
}
