package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/Carmen-Shannon/oxy-rig/engine/input"
)

// pinchGain scales the finger distance change into zoom speed.
const pinchGain = 1.25

// pointerGesture handles a tick without touches. Button transitions take precedence
// over the wheel, so scrolling while dragging does nothing.
// Caller must hold the mutex.
func (rc *rigControllerImpl) pointerGesture(dt float32, s input.Snapshot) {
	rc.resetPinch()

	p := s.Pointer
	switch {
	case p.Pressed:
		rc.beginPan(p.Position)
	case p.Held:
		rc.pan(p.Position)
	case p.Released:
		rc.endPan()
	case s.Wheel != 0:
		rc.wheelZoom(dt, s.Wheel)
	}
}

// touchGesture handles a tick with at least one touch. Caller must hold the mutex.
func (rc *rigControllerImpl) touchGesture(dt float32, touches []input.Touch) {
	switch len(touches) {
	case 1:
		rc.resetPinch()
		rc.touchPan(touches[0])
	case 2:
		rc.endPan()
		rc.pinch(dt, touches[0], touches[1])
	default:
		rc.endPan()
		rc.resetPinch()
	}
}

func (rc *rigControllerImpl) touchPan(t input.Touch) {
	switch t.Phase {
	case input.PhaseBegan:
		rc.beginPan(t.Position)
	case input.PhaseMoved:
		rc.pan(t.Position)
	case input.PhaseStationary:
		if !rc.hasLastPoint {
			rc.beginPan(t.Position)
		}
	case input.PhaseEnded, input.PhaseCancelled:
		rc.endPan()
	}
}

func (rc *rigControllerImpl) beginPan(p common.Vec2) {
	rc.lastPoint = p
	rc.hasLastPoint = true
}

func (rc *rigControllerImpl) endPan() {
	rc.lastPoint = common.Vec2{}
	rc.hasLastPoint = false
}

// pan moves the camera by the screen delta since the reference point, then re-bases the reference.
// Screen Y maps to world X and screen X maps to world -Z.
func (rc *rigControllerImpl) pan(p common.Vec2) {
	if !rc.hasLastPoint {
		rc.logger.Debug("pan moved without a reference point", "x", p[0], "y", p[1])
		rc.beginPan(p)
		return
	}
	d := p.Sub(rc.lastPoint)
	rc.position = rc.position.Add(common.Vec3{d[1], 0, -d[0]}.Mul(rc.moveSpeed))
	rc.lastPoint = p
}

// pinch zooms along the view direction when two moving touches travel in opposite directions.
// The finger distance sample is refreshed on every tick where both touches moved.
// Zoom speed accumulates across the ticks of one gesture and is only cleared by resetPinch,
// so after fingers move apart a short pinch back together slows the forward motion
// before it reverses it.
func (rc *rigControllerImpl) pinch(dt float32, a, b input.Touch) {
	if a.Phase != input.PhaseMoved || b.Phase != input.PhaseMoved {
		rc.resetPinch()
		return
	}

	dist := a.Position.Distance(b.Position)
	if rc.isPinch(a.Delta, b.Delta) && rc.prevFingerDistance != 0 {
		pinchDelta := dist - rc.prevFingerDistance
		if float32(math.Abs(float64(pinchDelta))) > rc.cfg.PinchNoise {
			// fingers apart zooms in, together zooms out
			zoomIn := pinchDelta > 0
			if rc.zoomAllowed(zoomIn) {
				rc.zoomSpeed += pinchDelta * pinchGain * dt * rc.cfg.ZoomScreenToWorld
				rc.moveForward(rc.zoomSpeed)
			}
		}
	}
	rc.prevFingerDistance = dist
	rc.orbitWeight = common.Clamp01((rc.zoomDistance - rc.cfg.ZoomNear) / (rc.cfg.ZoomFar - rc.cfg.ZoomNear))
}

// isPinch reports whether two per-tick touch deltas point in sufficiently opposite directions.
// A zero or non-finite delta is never a pinch.
func (rc *rigControllerImpl) isPinch(da, db common.Vec2) bool {
	na, okA := da.Normalized()
	nb, okB := db.Normalized()
	if !okA || !okB {
		return false
	}
	dot := na.Dot(nb)
	return common.IsFinite(dot) && dot < rc.cfg.PinchThreshold
}

func (rc *rigControllerImpl) resetPinch() {
	rc.prevFingerDistance = 0
	rc.zoomSpeed = 0
	rc.orbitWeight = 0
}

func (rc *rigControllerImpl) wheelZoom(dt, wheel float32) {
	if !rc.zoomAllowed(wheel > 0) {
		return
	}
	rc.zoomSpeed = wheel * rc.cfg.WheelMultiplier * dt * rc.cfg.ZoomScreenToWorld
	rc.moveForward(rc.zoomSpeed)
}

// zoomAllowed gates a zoom move on the zoom distance recorded before the move,
// so one large step may end past a limit.
func (rc *rigControllerImpl) zoomAllowed(zoomIn bool) bool {
	if zoomIn {
		return rc.zoomDistance > rc.cfg.ZoomNear
	}
	return rc.zoomDistance < rc.cfg.ZoomFar
}

func (rc *rigControllerImpl) moveForward(amount float32) {
	rc.position = rc.position.Add(rc.forward().Mul(amount))
	rc.zoomDistance = rc.position[1]
}
