package game_object

import "github.com/Carmen-Shannon/oxy-rig/common"

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithID sets the ID of the GameObject.
//
// Parameters:
//   - id: unique identifier for the GameObject
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the ID
func WithID(id uint64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.id = id
	}
}

// WithEnabled sets whether the GameObject moves when stepped.
//
// Parameters:
//   - enabled: true to let the object move, false to freeze it
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Enabled state
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.enabled.Store(enabled)
	}
}

// WithPosition sets the starting position of the GameObject.
//
// Parameters:
//   - x, y, z: world-space position
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the position
func WithPosition(x, y, z float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.position = common.Vec3{x, y, z}
	}
}

// WithYaw sets the starting heading of the GameObject.
//
// Parameters:
//   - yaw: heading around the world Y axis in radians
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the heading
func WithYaw(yaw float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.yaw = yaw
	}
}

// WithSpeed sets the forward speed of the GameObject.
//
// Parameters:
//   - speed: units per second along the heading
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the speed
func WithSpeed(speed float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.speed = speed
	}
}

// WithClimb sets the vertical speed of the GameObject.
//
// Parameters:
//   - climb: units per second along world Y
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the vertical speed
func WithClimb(climb float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.climb = climb
	}
}

// WithTurnRate sets the yaw rate of the GameObject.
//
// Parameters:
//   - rate: radians per second
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the turn rate
func WithTurnRate(rate float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.turnRate = rate
	}
}
