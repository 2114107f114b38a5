package camera

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/Carmen-Shannon/oxy-rig/engine/config"
	"github.com/Carmen-Shannon/oxy-rig/engine/input"
	"github.com/Carmen-Shannon/oxy-rig/engine/target"
)

const tol = 1e-3

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < tol
}

func assertPosition(t *testing.T, rc RigController, want common.Vec3) {
	t.Helper()
	x, y, z := rc.Position()
	if !approx(x, want[0]) || !approx(y, want[1]) || !approx(z, want[2]) {
		t.Fatalf("position=(%v,%v,%v) want %v", x, y, z, want)
	}
}

type stubTarget struct {
	x, y, z, yaw float32
}

func (s *stubTarget) Position() (x, y, z float32) { return s.x, s.y, s.z }
func (s *stubTarget) Yaw() float32                { return s.yaw }

func quietRig(options ...RigControllerOption) RigController {
	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRigController(append([]RigControllerOption{WithLogger(l)}, options...)...)
}

func pressed(x, y float32) input.Snapshot {
	return input.Snapshot{Pointer: input.Pointer{Position: common.Vec2{x, y}, Pressed: true, Held: true}}
}

func held(x, y float32) input.Snapshot {
	return input.Snapshot{Pointer: input.Pointer{Position: common.Vec2{x, y}, Held: true}}
}

func released(x, y float32) input.Snapshot {
	return input.Snapshot{Pointer: input.Pointer{Position: common.Vec2{x, y}, Released: true}}
}

func touch(id int, phase input.Phase, pos, delta common.Vec2) input.Touch {
	return input.Touch{ID: id, Position: pos, Delta: delta, Phase: phase}
}

func touches(ts ...input.Touch) input.Snapshot {
	return input.Snapshot{Touches: ts}
}

func TestNewRigControllerDefaults(t *testing.T) {
	rc := quietRig()

	assertPosition(t, rc, common.Vec3{0, 1000, 0})
	if rc.Mode() != ModeFree || rc.Following() {
		t.Fatalf("mode=%v want free", rc.Mode())
	}
	if !approx(rc.Pitch(), math.Pi/4) {
		t.Fatalf("pitch=%v want pi/4", rc.Pitch())
	}
	if rc.ZoomDistance() != 1000 {
		t.Fatalf("zoom distance=%v want starting height 1000", rc.ZoomDistance())
	}
	if rc.Config() != config.DefaultRig() {
		t.Fatalf("config=%+v want defaults", rc.Config())
	}
	if rc.Target().Valid() || rc.Registry() != nil {
		t.Fatal("new rig must not have a target")
	}
}

func TestMoveSpeedSelection(t *testing.T) {
	tests := []struct {
		name    string
		options []RigControllerOption
		want    float32
	}{
		{"default is production", nil, 0.4},
		{"development profile", []RigControllerOption{WithProfile(config.ProfileDevelopment)}, 0.1},
		{"production profile", []RigControllerOption{WithProfile(config.ProfileProduction)}, 0.4},
		{"explicit override wins", []RigControllerOption{WithProfile(config.ProfileDevelopment), WithMoveSpeed(2)}, 2},
		{"explicit zero is kept", []RigControllerOption{WithProfile(config.ProfileDevelopment), WithMoveSpeed(0)}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := quietRig(tt.options...).MoveSpeed(); got != tt.want {
				t.Fatalf("move speed=%v want %v", got, tt.want)
			}
		})
	}
}

func TestZeroMoveSpeedDisablesPan(t *testing.T) {
	rc := quietRig(WithMoveSpeed(0))
	rc.Update(0.1, pressed(100, 100))
	rc.Update(0.1, held(120, 130))
	assertPosition(t, rc, common.Vec3{0, 1000, 0})
}

func TestWithConfigKeepsZeroFields(t *testing.T) {
	cfg := config.DefaultRig()
	cfg.ZoomNear = 0
	rc := quietRig(WithConfig(cfg), WithPosition(0, 50, 0))

	rc.Update(0.1, input.Snapshot{Wheel: 1})

	_, y, _ := rc.Position()
	if !approx(y, 50-15*float32(math.Sqrt2/2)) {
		t.Fatalf("y=%v want a zoom step below 50 with near at 0", y)
	}
}

func TestNewRigControllerPanicsOnInvertedLimits(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for near >= far")
		}
	}()
	cfg := config.DefaultRig()
	cfg.ZoomNear, cfg.ZoomFar = 500, 100
	quietRig(WithConfig(cfg))
}

func TestPointerPan(t *testing.T) {
	tests := []struct {
		name  string
		ticks []input.Snapshot
		want  common.Vec3
	}{
		{
			name:  "press then drag",
			ticks: []input.Snapshot{pressed(100, 100), held(120, 130)},
			want:  common.Vec3{12, 1000, -8},
		},
		{
			name:  "press alone does not move",
			ticks: []input.Snapshot{pressed(100, 100)},
			want:  common.Vec3{0, 1000, 0},
		},
		{
			name:  "reference re-bases every tick",
			ticks: []input.Snapshot{pressed(0, 0), held(10, 0), held(10, 10)},
			want:  common.Vec3{4, 1000, -4},
		},
		{
			name:  "held without reference yields zero delta",
			ticks: []input.Snapshot{held(50, 50)},
			want:  common.Vec3{0, 1000, 0},
		},
		{
			name:  "no stale reference after release",
			ticks: []input.Snapshot{pressed(0, 0), released(0, 0), held(500, 500), held(510, 500)},
			want:  common.Vec3{0, 1000, -4},
		},
		{
			name: "wheel ignored while dragging",
			ticks: []input.Snapshot{
				pressed(0, 0),
				{Pointer: input.Pointer{Position: common.Vec2{0, 10}, Held: true}, Wheel: 3},
			},
			want: common.Vec3{4, 1000, 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := quietRig(WithMoveSpeed(0.4))
			for _, s := range tt.ticks {
				rc.Update(0.016, s)
			}
			assertPosition(t, rc, tt.want)
		})
	}
}

func TestTouchPan(t *testing.T) {
	p := func(x, y float32) common.Vec2 { return common.Vec2{x, y} }
	tests := []struct {
		name  string
		ticks []input.Snapshot
		want  common.Vec3
	}{
		{
			name: "began then moved",
			ticks: []input.Snapshot{
				touches(touch(0, input.PhaseBegan, p(10, 10), p(0, 0))),
				touches(touch(0, input.PhaseMoved, p(20, 10), p(10, 0))),
			},
			want: common.Vec3{0, 1000, -4},
		},
		{
			name: "moved after ended starts fresh",
			ticks: []input.Snapshot{
				touches(touch(0, input.PhaseBegan, p(10, 10), p(0, 0))),
				touches(touch(0, input.PhaseEnded, p(10, 10), p(0, 0))),
				touches(touch(1, input.PhaseMoved, p(300, 300), p(5, 5))),
			},
			want: common.Vec3{0, 1000, 0},
		},
		{
			name: "cancelled clears reference",
			ticks: []input.Snapshot{
				touches(touch(0, input.PhaseBegan, p(0, 0), p(0, 0))),
				touches(touch(0, input.PhaseCancelled, p(0, 0), p(0, 0))),
				touches(touch(0, input.PhaseMoved, p(0, 50), p(0, 50))),
			},
			want: common.Vec3{0, 1000, 0},
		},
		{
			name: "stationary keeps existing reference",
			ticks: []input.Snapshot{
				touches(touch(0, input.PhaseBegan, p(0, 0), p(0, 0))),
				touches(touch(0, input.PhaseStationary, p(0, 0), p(0, 0))),
				touches(touch(0, input.PhaseMoved, p(0, 10), p(0, 10))),
			},
			want: common.Vec3{4, 1000, 0},
		},
		{
			name: "second finger cancels pan",
			ticks: []input.Snapshot{
				touches(touch(0, input.PhaseBegan, p(0, 0), p(0, 0))),
				touches(
					touch(0, input.PhaseStationary, p(0, 0), p(0, 0)),
					touch(1, input.PhaseBegan, p(100, 100), p(0, 0)),
				),
				touches(touch(0, input.PhaseMoved, p(0, 10), p(0, 10))),
			},
			want: common.Vec3{0, 1000, 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := quietRig(WithMoveSpeed(0.4))
			for _, s := range tt.ticks {
				rc.Update(0.016, s)
			}
			assertPosition(t, rc, tt.want)
		})
	}
}

func TestWheelZoom(t *testing.T) {
	s45 := float32(math.Sqrt2 / 2)
	tests := []struct {
		name      string
		startY    float32
		wheel     float32
		wantY     float32
		wantZ     float32
		wantSpeed float32
	}{
		{"zoom in", 1000, 1, 1000 - 15*s45, 15 * s45, 15},
		{"zoom out", 1000, -1, 1000 + 15*s45, -15 * s45, -15},
		{"zoom in refused at near", 100, 1, 100, 0, 0},
		{"zoom out allowed at near", 100, -1, 100 + 15*s45, -15 * s45, -15},
		{"zoom out refused at far", 4500, -1, 4500, 0, 0},
		{"zoom in allowed at far", 4500, 1, 4500 - 15*s45, 15 * s45, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := quietRig(WithPosition(0, tt.startY, 0))
			rc.Update(0.1, input.Snapshot{Wheel: tt.wheel})

			assertPosition(t, rc, common.Vec3{0, tt.wantY, tt.wantZ})
			if !approx(rc.ZoomDistance(), tt.wantY) {
				t.Fatalf("zoom distance=%v want %v", rc.ZoomDistance(), tt.wantY)
			}
			if !approx(rc.ZoomSpeed(), tt.wantSpeed) {
				t.Fatalf("zoom speed=%v want %v", rc.ZoomSpeed(), tt.wantSpeed)
			}
		})
	}
}

func TestWheelZoomCanOvershootNear(t *testing.T) {
	rc := quietRig(WithPosition(0, 105, 0))
	rc.Update(0.1, input.Snapshot{Wheel: 1})

	if rc.ZoomDistance() >= 100 {
		t.Fatalf("zoom distance=%v want a single step past near", rc.ZoomDistance())
	}
	rc.Update(0.1, input.Snapshot{Wheel: 1})
	_, y, _ := rc.Position()
	if !approx(y, rc.ZoomDistance()) {
		t.Fatalf("second zoom-in past near moved the camera to y=%v", y)
	}
}

func pinchTicks(gap0, gap1 float32, phaseB input.Phase) []input.Snapshot {
	c := float32(500)
	a0, b0 := common.Vec2{c - gap0/2, 300}, common.Vec2{c + gap0/2, 300}
	a1, b1 := common.Vec2{c - gap1/2, 300}, common.Vec2{c + gap1/2, 300}
	return []input.Snapshot{
		touches(
			touch(0, input.PhaseMoved, a0, common.Vec2{-10, 0}),
			touch(1, input.PhaseMoved, b0, common.Vec2{10, 0}),
		),
		touches(
			touch(0, input.PhaseMoved, a1, a1.Sub(a0)),
			touch(1, phaseB, b1, b1.Sub(b0)),
		),
	}
}

func TestPinchZoom(t *testing.T) {
	s45 := float32(math.Sqrt2 / 2)
	// 20px apart over dt 0.1: 20 * 1.25 * 0.1 * 25
	step := float32(62.5)

	t.Run("first sample only records distance", func(t *testing.T) {
		rc := quietRig()
		rc.Update(0.1, pinchTicks(200, 220, input.PhaseMoved)[0])
		assertPosition(t, rc, common.Vec3{0, 1000, 0})
		if !approx(rc.OrbitWeight(), 900.0/4400.0) {
			t.Fatalf("orbit weight=%v", rc.OrbitWeight())
		}
	})

	t.Run("fingers apart zooms in", func(t *testing.T) {
		rc := quietRig()
		for _, s := range pinchTicks(200, 220, input.PhaseMoved) {
			rc.Update(0.1, s)
		}
		wantY := 1000 - step*s45
		assertPosition(t, rc, common.Vec3{0, wantY, step * s45})
		if !approx(rc.ZoomSpeed(), step) {
			t.Fatalf("zoom speed=%v want %v", rc.ZoomSpeed(), step)
		}
		if !approx(rc.ZoomDistance(), wantY) {
			t.Fatalf("zoom distance=%v want %v", rc.ZoomDistance(), wantY)
		}
		if !approx(rc.OrbitWeight(), (wantY-100)/4400) {
			t.Fatalf("orbit weight=%v want %v", rc.OrbitWeight(), (wantY-100)/4400)
		}
	})

	t.Run("fingers together zooms out", func(t *testing.T) {
		rc := quietRig()
		ticks := pinchTicks(220, 200, input.PhaseMoved)
		ticks[1].Touches[0].Delta = common.Vec2{10, 0}
		ticks[1].Touches[1].Delta = common.Vec2{-10, 0}
		for _, s := range ticks {
			rc.Update(0.1, s)
		}
		assertPosition(t, rc, common.Vec3{0, 1000 + step*s45, -step * s45})
	})

	t.Run("zoom speed accumulates", func(t *testing.T) {
		rc := quietRig()
		for _, s := range pinchTicks(200, 220, input.PhaseMoved) {
			rc.Update(0.1, s)
		}
		rc.Update(0.1, touches(
			touch(0, input.PhaseMoved, common.Vec2{380, 300}, common.Vec2{-10, 0}),
			touch(1, input.PhaseMoved, common.Vec2{620, 300}, common.Vec2{10, 0}),
		))
		if !approx(rc.ZoomSpeed(), 2*step) {
			t.Fatalf("zoom speed=%v want %v", rc.ZoomSpeed(), 2*step)
		}
		_, y, _ := rc.Position()
		if !approx(y, 1000-3*step*s45) {
			t.Fatalf("y=%v want %v", y, 1000-3*step*s45)
		}
	})

	t.Run("change below noise is ignored", func(t *testing.T) {
		rc := quietRig()
		for _, s := range pinchTicks(200, 201, input.PhaseMoved) {
			rc.Update(0.1, s)
		}
		assertPosition(t, rc, common.Vec3{0, 1000, 0})
	})

	t.Run("parallel motion is not a pinch", func(t *testing.T) {
		rc := quietRig()
		ticks := pinchTicks(200, 220, input.PhaseMoved)
		ticks[1].Touches[0].Delta = common.Vec2{10, 0}
		ticks[1].Touches[1].Delta = common.Vec2{10, 0}
		for _, s := range ticks {
			rc.Update(0.1, s)
		}
		assertPosition(t, rc, common.Vec3{0, 1000, 0})
	})

	t.Run("zero delta is not a pinch", func(t *testing.T) {
		rc := quietRig()
		ticks := pinchTicks(200, 220, input.PhaseMoved)
		ticks[1].Touches[0].Delta = common.Vec2{}
		for _, s := range ticks {
			rc.Update(0.1, s)
		}
		assertPosition(t, rc, common.Vec3{0, 1000, 0})
	})

	t.Run("non-finite delta is not a pinch", func(t *testing.T) {
		rc := quietRig()
		ticks := pinchTicks(200, 220, input.PhaseMoved)
		ticks[1].Touches[0].Delta = common.Vec2{float32(math.Inf(1)), 0}
		for _, s := range ticks {
			rc.Update(0.1, s)
		}
		assertPosition(t, rc, common.Vec3{0, 1000, 0})
	})

	t.Run("one stationary finger resets state", func(t *testing.T) {
		rc := quietRig()
		for _, s := range pinchTicks(200, 220, input.PhaseStationary) {
			rc.Update(0.1, s)
		}
		assertPosition(t, rc, common.Vec3{0, 1000, 0})
		if rc.OrbitWeight() != 0 || rc.ZoomSpeed() != 0 {
			t.Fatalf("orbit=%v speed=%v want reset", rc.OrbitWeight(), rc.ZoomSpeed())
		}
	})

	t.Run("first pinch tick after re-entry does not zoom", func(t *testing.T) {
		rc := quietRig()
		ticks := pinchTicks(200, 220, input.PhaseMoved)
		rc.Update(0.1, ticks[0])
		rc.Update(0.1, touches(touch(0, input.PhaseStationary, common.Vec2{400, 300}, common.Vec2{})))
		rc.Update(0.1, ticks[1])
		assertPosition(t, rc, common.Vec3{0, 1000, 0})
	})

	t.Run("fingers apart refused at near", func(t *testing.T) {
		rc := quietRig(WithPosition(0, 100, 0))
		for _, s := range pinchTicks(200, 220, input.PhaseMoved) {
			rc.Update(0.1, s)
		}
		assertPosition(t, rc, common.Vec3{0, 100, 0})
		if rc.OrbitWeight() != 0 {
			t.Fatalf("orbit weight=%v want 0 at near", rc.OrbitWeight())
		}
	})

	t.Run("fingers together refused at far", func(t *testing.T) {
		rc := quietRig(WithPosition(0, 4500, 0))
		for _, s := range pinchTicks(220, 200, input.PhaseMoved) {
			rc.Update(0.1, s)
		}
		assertPosition(t, rc, common.Vec3{0, 4500, 0})
		if rc.ZoomSpeed() != 0 {
			t.Fatalf("zoom speed=%v want 0 at far", rc.ZoomSpeed())
		}
		if rc.OrbitWeight() != 1 {
			t.Fatalf("orbit weight=%v want 1 at far", rc.OrbitWeight())
		}
	})

	t.Run("speed carries over when the pinch reverses", func(t *testing.T) {
		rc := quietRig(WithPosition(0, 2000, 0))
		for _, s := range pinchTicks(200, 220, input.PhaseMoved) {
			rc.Update(0.1, s)
		}
		// fingers close by 10px, subtracting 31.25 from the 62.5 already built up
		rc.Update(0.1, touches(
			touch(0, input.PhaseMoved, common.Vec2{395, 300}, common.Vec2{5, 0}),
			touch(1, input.PhaseMoved, common.Vec2{605, 300}, common.Vec2{-5, 0}),
		))
		if !approx(rc.ZoomSpeed(), step/2) {
			t.Fatalf("zoom speed=%v want %v", rc.ZoomSpeed(), step/2)
		}
		_, y, _ := rc.Position()
		if !approx(y, 2000-1.5*step*s45) {
			t.Fatalf("y=%v want %v", y, 2000-1.5*step*s45)
		}
	})

	t.Run("pointer tick resets pinch", func(t *testing.T) {
		rc := quietRig()
		for _, s := range pinchTicks(200, 220, input.PhaseMoved) {
			rc.Update(0.1, s)
		}
		rc.Update(0.1, input.Snapshot{})
		if rc.ZoomSpeed() != 0 || rc.OrbitWeight() != 0 {
			t.Fatalf("speed=%v orbit=%v want reset", rc.ZoomSpeed(), rc.OrbitWeight())
		}
	})
}

func TestZoomButtons(t *testing.T) {
	rc := quietRig()

	rc.ZoomInStep()
	assertPosition(t, rc, common.Vec3{0, 950, 0})
	rc.ZoomOutStep()
	rc.ZoomOutStep()
	assertPosition(t, rc, common.Vec3{0, 1050, 0})
	if rc.ZoomDistance() != 1000 {
		t.Fatalf("zoom distance=%v want untouched 1000", rc.ZoomDistance())
	}

	// buttons bypass the limits
	low := quietRig(WithPosition(0, 100, 0))
	low.ZoomInStep()
	assertPosition(t, low, common.Vec3{0, 50, 0})
}

func followRigWith(tgt *stubTarget, options ...RigControllerOption) (RigController, target.Handle) {
	reg := target.NewRegistry()
	h := reg.Register(tgt)
	base := []RigControllerOption{WithRegistry(reg), WithTarget(h), WithFollowing(true)}
	return quietRig(append(base, options...)...), h
}

func TestFollowHeightDamping(t *testing.T) {
	tests := []struct {
		name    string
		startY  float32
		dt      float32
		targetY float32
		wantY   float32
	}{
		{"one tenth of a second", 400, 0.1, 0, 480},
		{"factor clamps at one", 400, 1, 0, 800},
		{"target above", 400, 0.1, 100, 500},
		{"zero dt holds height", 400, 0, 0, 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc, _ := followRigWith(&stubTarget{y: tt.targetY}, WithPosition(0, tt.startY, -30))
			rc.LateUpdate(tt.dt)

			assertPosition(t, rc, common.Vec3{0, tt.wantY, -30})
		})
	}
}

func TestFollowRotationDamping(t *testing.T) {
	tests := []struct {
		name      string
		startYaw  float32
		targetYaw float32
		dt        float32
	}{
		{"quarter turn", 0, math.Pi / 2, 0.1},
		{"shortest arc across pi", 3, -3, 0.1},
		{"already aligned", 1, 1, 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tgt := &stubTarget{x: 10, z: 20, yaw: tt.targetYaw}
			rc, _ := followRigWith(tgt, WithOrientation(tt.startYaw, 0))
			rc.LateUpdate(tt.dt)

			wantYaw := common.LerpAngle(tt.startYaw, tt.targetYaw, 3*tt.dt)
			if d := common.DeltaAngle(rc.Yaw(), wantYaw); !approx(d, 0) {
				t.Fatalf("yaw=%v want %v", rc.Yaw(), wantYaw)
			}
			behind := common.ForwardFromYawPitch(wantYaw, 0).Mul(30)
			x, _, z := rc.Position()
			if !approx(x, 10-behind[0]) || !approx(z, 20-behind[2]) {
				t.Fatalf("position=(%v,%v) want (%v,%v)", x, z, 10-behind[0], 20-behind[2])
			}
		})
	}
}

func TestFollowLooksAtTarget(t *testing.T) {
	tgt := &stubTarget{x: 5, y: 2, z: -7, yaw: 0.4}
	rc, _ := followRigWith(tgt)
	for range 5 {
		rc.LateUpdate(0.05)
	}

	px, py, pz := rc.Position()
	fx, fy, fz := rc.Forward()
	toTarget := common.Vec3{tgt.x - px, tgt.y - py, tgt.z - pz}
	dir := toTarget.Mul(1 / toTarget.Len())
	if !approx(fx, dir[0]) || !approx(fy, dir[1]) || !approx(fz, dir[2]) {
		t.Fatalf("forward=(%v,%v,%v) want %v", fx, fy, fz, dir)
	}
}

func TestFollowTracksTargetAcrossTicks(t *testing.T) {
	tgt := &stubTarget{}
	rc, _ := followRigWith(tgt, WithPosition(0, 800, -30))

	tgt.z = 100
	rc.LateUpdate(0.1)
	_, _, z := rc.Position()
	if !approx(z, 70) {
		t.Fatalf("z=%v want 70", z)
	}
}

func TestFollowWithoutTargetIsNoop(t *testing.T) {
	reg := target.NewRegistry()
	gone := reg.Register(&stubTarget{y: 1})
	reg.Unregister(gone)

	tests := []struct {
		name    string
		options []RigControllerOption
	}{
		{"no registry", []RigControllerOption{WithTarget(1)}},
		{"zero handle", []RigControllerOption{WithRegistry(reg)}},
		{"unregistered handle", []RigControllerOption{WithRegistry(reg), WithTarget(gone)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := quietRig(append(tt.options, WithFollowing(true), WithPosition(1, 2, 3), WithOrientation(0.5, 0.25))...)
			rc.LateUpdate(0.1)

			assertPosition(t, rc, common.Vec3{1, 2, 3})
			if rc.Yaw() != 0.5 || rc.Pitch() != 0.25 {
				t.Fatalf("orientation=(%v,%v) changed", rc.Yaw(), rc.Pitch())
			}
		})
	}
}

func TestModesGateTheirPhase(t *testing.T) {
	tgt := &stubTarget{y: 0}
	rc, h := followRigWith(tgt, WithPosition(0, 400, -30))

	rc.Update(0.1, pressed(0, 0))
	rc.Update(0.1, held(100, 100))
	assertPosition(t, rc, common.Vec3{0, 400, -30})

	rc.SetFollowing(false)
	if rc.Mode() != ModeFree {
		t.Fatalf("mode=%v want free", rc.Mode())
	}
	rc.LateUpdate(0.1)
	assertPosition(t, rc, common.Vec3{0, 400, -30})

	rc.ClearTarget()
	if rc.Target().Valid() {
		t.Fatal("target still bound after ClearTarget")
	}
	rc.BindTarget(h)
	rc.SetFollowing(true)
	rc.LateUpdate(0.1)
	assertPosition(t, rc, common.Vec3{0, 480, -30})
}

func TestModeSwitchKeepsState(t *testing.T) {
	rc := quietRig(WithMoveSpeed(1))
	rc.Update(0.016, pressed(0, 0))
	rc.SetFollowing(true)
	rc.SetFollowing(false)
	rc.Update(0.016, held(10, 0))

	assertPosition(t, rc, common.Vec3{0, 1000, -10})
}

func TestLookPoint(t *testing.T) {
	rc := quietRig(WithPosition(1, 2, 3), WithOrientation(math.Pi/2, 0))
	x, y, z := rc.LookPoint()
	if !approx(x, 2) || !approx(y, 2) || !approx(z, 3) {
		t.Fatalf("look point=(%v,%v,%v) want (2,2,3)", x, y, z)
	}
}

func TestModeString(t *testing.T) {
	if ModeFree.String() != "free" || ModeFollow.String() != "follow" {
		t.Fatalf("got %q, %q", ModeFree, ModeFollow)
	}
}
