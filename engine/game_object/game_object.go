package game_object

import (
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/Carmen-Shannon/oxy-rig/engine/target"
)

type gameObject struct {
	mu *sync.Mutex

	id      uint64
	enabled atomic.Bool

	position common.Vec3
	yaw      float32

	// speed is along the object's own heading, climb is world-space vertical
	speed    float32
	climb    float32
	turnRate float32
}

// GameObject defines the interface for a moving scene entity that the camera rig can follow.
// The object advances itself along its heading on every Step and turns at a constant rate.
// Every GameObject satisfies target.Transform, so it can be registered in a target.Registry.
type GameObject interface {
	target.Transform

	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// SetID sets the object's identifier. Called by the scene when the object is added.
	//
	// Parameters:
	//   - id: the identifier to assign
	SetID(id uint64)

	// Enabled returns whether this object moves when stepped.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetEnabled toggles whether Step advances the object.
	//
	// Parameters:
	//   - enabled: true to let the object move
	SetEnabled(enabled bool)

	// SetPosition teleports the object.
	//
	// Parameters:
	//   - x, y, z: new world-space position
	SetPosition(x, y, z float32)

	// SetYaw sets the heading around the world Y axis.
	//
	// Parameters:
	//   - yaw: heading in radians
	SetYaw(yaw float32)

	// Speed returns the forward speed along the object's heading in units per second.
	//
	// Returns:
	//   - float32: forward speed
	Speed() float32

	// SetSpeed sets the forward speed in units per second.
	//
	// Parameters:
	//   - speed: forward speed
	SetSpeed(speed float32)

	// Climb returns the vertical speed in units per second.
	//
	// Returns:
	//   - float32: vertical speed
	Climb() float32

	// SetClimb sets the vertical speed in units per second.
	//
	// Parameters:
	//   - climb: vertical speed
	SetClimb(climb float32)

	// TurnRate returns the yaw rate in radians per second.
	//
	// Returns:
	//   - float32: yaw rate
	TurnRate() float32

	// SetTurnRate sets the yaw rate in radians per second.
	//
	// Parameters:
	//   - rate: yaw rate
	SetTurnRate(rate float32)

	// Step advances the object by dt seconds: heading first, then translation along the new heading.
	// Disabled objects are left untouched.
	//
	// Parameters:
	//   - dt: elapsed time in seconds
	Step(dt float32)
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject configured with the given options.
// Objects are enabled by default.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		mu: &sync.Mutex{},
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.id
}

func (g *gameObject) SetID(id uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.id = id
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) Position() (x, y, z float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.position.XYZ()
}

func (g *gameObject) SetPosition(x, y, z float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.position = common.Vec3{x, y, z}
}

func (g *gameObject) Yaw() float32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.yaw
}

func (g *gameObject) SetYaw(yaw float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.yaw = yaw
}

func (g *gameObject) Speed() float32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.speed
}

func (g *gameObject) SetSpeed(speed float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.speed = speed
}

func (g *gameObject) Climb() float32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.climb
}

func (g *gameObject) SetClimb(climb float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.climb = climb
}

func (g *gameObject) TurnRate() float32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.turnRate
}

func (g *gameObject) SetTurnRate(rate float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.turnRate = rate
}

func (g *gameObject) Step(dt float32) {
	if !g.enabled.Load() || dt <= 0 {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.yaw += g.turnRate * dt
	heading := common.ForwardFromYawPitch(g.yaw, 0)
	g.position = g.position.Add(heading.Mul(g.speed * dt))
	g.position[1] += g.climb * dt
}
