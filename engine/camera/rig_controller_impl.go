package camera

import (
	"log/slog"
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/Carmen-Shannon/oxy-rig/engine/config"
	"github.com/Carmen-Shannon/oxy-rig/engine/input"
	"github.com/Carmen-Shannon/oxy-rig/engine/target"
)

// rigControllerImpl is the single implementation of RigController.
// Free mode state (pan reference, pinch sample, zoom bookkeeping) and Follow mode
// state (registry, handle) live side by side and write the same transform.
type rigControllerImpl struct {
	mu     *sync.Mutex
	logger *slog.Logger

	cfg          config.RigConfig
	profile      config.Profile
	moveSpeed    float32
	moveSpeedSet bool

	// Camera transform
	position common.Vec3
	yaw      float32
	pitch    float32

	following bool
	registry  target.Registry
	target    target.Handle

	// Pan
	lastPoint    common.Vec2
	hasLastPoint bool

	// Zoom
	prevFingerDistance float32
	zoomDistance       float32
	zoomSpeed          float32
	orbitWeight        float32
}

var _ RigController = &rigControllerImpl{}

// NewRigController creates a rig in Free mode, hovering above the origin and tilted 45 degrees down.
// The zoom distance starts at the initial camera height. Without WithMoveSpeed the pan speed
// comes from the configured profile, production unless WithProfile says otherwise.
// Panics if the configuration fails validation.
//
// Parameters:
//   - options: functional options to configure the rig
//
// Returns:
//   - RigController: the newly created rig
func NewRigController(options ...RigControllerOption) RigController {
	rc := &rigControllerImpl{
		mu:       &sync.Mutex{},
		logger:   slog.Default(),
		cfg:      config.DefaultRig(),
		profile:  config.ProfileProduction,
		position: common.Vec3{0, 1000, 0},
		pitch:    math.Pi / 4,
	}
	for _, option := range options {
		option(rc)
	}
	if err := rc.cfg.Validate(); err != nil {
		panic(err)
	}
	if !rc.moveSpeedSet {
		rc.moveSpeed = rc.cfg.MoveSpeedFor(rc.profile)
	}
	rc.zoomDistance = rc.position[1]
	return rc
}

func (rc *rigControllerImpl) Position() (x, y, z float32) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.position.XYZ()
}

func (rc *rigControllerImpl) SetPosition(x, y, z float32) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.position = common.Vec3{x, y, z}
}

func (rc *rigControllerImpl) Yaw() float32 {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.yaw
}

func (rc *rigControllerImpl) Pitch() float32 {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.pitch
}

func (rc *rigControllerImpl) SetOrientation(yaw, pitch float32) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.yaw = yaw
	rc.pitch = pitch
}

func (rc *rigControllerImpl) Forward() (x, y, z float32) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.forward().XYZ()
}

func (rc *rigControllerImpl) LookPoint() (x, y, z float32) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.position.Add(rc.forward()).XYZ()
}

func (rc *rigControllerImpl) Mode() Mode {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if rc.following {
		return ModeFollow
	}
	return ModeFree
}

func (rc *rigControllerImpl) Following() bool {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.following
}

func (rc *rigControllerImpl) SetFollowing(following bool) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if rc.following == following {
		return
	}
	rc.following = following
	rc.logger.Debug("camera rig mode changed", "following", following, "target", uint64(rc.target))
}

func (rc *rigControllerImpl) Config() config.RigConfig {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.cfg
}

func (rc *rigControllerImpl) MoveSpeed() float32 {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.moveSpeed
}

func (rc *rigControllerImpl) ZoomDistance() float32 {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.zoomDistance
}

func (rc *rigControllerImpl) ZoomSpeed() float32 {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.zoomSpeed
}

func (rc *rigControllerImpl) OrbitWeight() float32 {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.orbitWeight
}

func (rc *rigControllerImpl) BindTarget(h target.Handle) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.target = h
}

func (rc *rigControllerImpl) ClearTarget() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.target = 0
}

func (rc *rigControllerImpl) Target() target.Handle {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.target
}

func (rc *rigControllerImpl) Registry() target.Registry {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.registry
}

func (rc *rigControllerImpl) SetRegistry(r target.Registry) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.registry = r
}

func (rc *rigControllerImpl) Update(dt float32, s input.Snapshot) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if rc.following {
		return
	}
	if s.TouchCount() > 0 {
		rc.touchGesture(dt, s.Touches)
		return
	}
	rc.pointerGesture(dt, s)
}

func (rc *rigControllerImpl) LateUpdate(dt float32) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if !rc.following {
		return
	}
	rc.follow(dt)
}

func (rc *rigControllerImpl) ZoomInStep() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.position[1] -= rc.cfg.ZoomButtonStep
}

func (rc *rigControllerImpl) ZoomOutStep() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.position[1] += rc.cfg.ZoomButtonStep
}

// forward returns the unit view direction. Caller must hold the mutex.
func (rc *rigControllerImpl) forward() common.Vec3 {
	return common.ForwardFromYawPitch(rc.yaw, rc.pitch)
}
