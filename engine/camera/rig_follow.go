package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-rig/common"
)

// follow trails the bound target: yaw and height are damped toward the target's heading and
// height plus the follow offset, the camera sits FollowDistance behind the target along the
// damped yaw, and the gaze snaps onto the target. Caller must hold the mutex.
func (rc *rigControllerImpl) follow(dt float32) {
	if rc.registry == nil {
		return
	}
	t, ok := rc.registry.Lookup(rc.target)
	if !ok {
		return
	}

	tx, ty, tz := t.Position()
	targetPos := common.Vec3{tx, ty, tz}
	desiredHeight := ty + rc.cfg.FollowHeight

	rc.yaw = common.LerpAngle(rc.yaw, t.Yaw(), rc.cfg.RotationDamping*dt)
	height := common.Lerp(rc.position[1], desiredHeight, rc.cfg.HeightDamping*dt)

	behind := common.ForwardFromYawPitch(rc.yaw, 0).Mul(rc.cfg.FollowDistance)
	rc.position = targetPos.Sub(behind)
	rc.position[1] = height

	rc.lookAt(targetPos)
}

// lookAt points the camera at p. When p is straight above or below, only the pitch changes.
func (rc *rigControllerImpl) lookAt(p common.Vec3) {
	dir := p.Sub(rc.position)
	yaw, pitch, ok := common.YawPitchFromDirection(dir)
	if !ok {
		return
	}
	rc.pitch = pitch
	if math.Hypot(float64(dir[0]), float64(dir[2])) > 1e-6 {
		rc.yaw = yaw
	}
}
