package ebiteninput

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/Carmen-Shannon/oxy-rig/engine/input"
)

func positions(m map[ebiten.TouchID][2]int) positionFunc {
	return func(id ebiten.TouchID) (int, int) {
		p := m[id]
		return p[0], p[1]
	}
}

func TestNewReaderWheelScale(t *testing.T) {
	tests := []struct {
		scale float32
		want  float32
	}{
		{2, 2},
		{0, 1},
		{-3, 1},
	}
	for _, tt := range tests {
		if got := NewReader(tt.scale).wheelScale; got != tt.want {
			t.Errorf("NewReader(%v).wheelScale = %v, want %v", tt.scale, got, tt.want)
		}
	}
}

func TestAppendTouches(t *testing.T) {
	tests := []struct {
		name        string
		active      []ebiten.TouchID
		justPressed []ebiten.TouchID
		released    []ebiten.TouchID
		current     map[ebiten.TouchID][2]int
		previous    map[ebiten.TouchID][2]int
		want        []input.Touch
	}{
		{
			name: "none",
		},
		{
			name:        "just pressed is began without delta",
			active:      []ebiten.TouchID{1},
			justPressed: []ebiten.TouchID{1},
			current:     map[ebiten.TouchID][2]int{1: {50, 60}},
			previous:    map[ebiten.TouchID][2]int{1: {0, 0}},
			want:        []input.Touch{{ID: 1, Position: common.Vec2{50, 60}, Phase: input.PhaseBegan}},
		},
		{
			name:     "moved carries delta",
			active:   []ebiten.TouchID{2},
			current:  map[ebiten.TouchID][2]int{2: {110, 95}},
			previous: map[ebiten.TouchID][2]int{2: {100, 100}},
			want:     []input.Touch{{ID: 2, Position: common.Vec2{110, 95}, Delta: common.Vec2{10, -5}, Phase: input.PhaseMoved}},
		},
		{
			name:     "unchanged is stationary",
			active:   []ebiten.TouchID{3},
			current:  map[ebiten.TouchID][2]int{3: {40, 40}},
			previous: map[ebiten.TouchID][2]int{3: {40, 40}},
			want:     []input.Touch{{ID: 3, Position: common.Vec2{40, 40}, Phase: input.PhaseStationary}},
		},
		{
			name:     "released is ended at previous position after active touches",
			active:   []ebiten.TouchID{4},
			released: []ebiten.TouchID{5},
			current:  map[ebiten.TouchID][2]int{4: {10, 10}},
			previous: map[ebiten.TouchID][2]int{4: {10, 10}, 5: {70, 80}},
			want: []input.Touch{
				{ID: 4, Position: common.Vec2{10, 10}, Phase: input.PhaseStationary},
				{ID: 5, Position: common.Vec2{70, 80}, Phase: input.PhaseEnded},
			},
		},
		{
			name:     "two fingers pinching",
			active:   []ebiten.TouchID{0, 1},
			current:  map[ebiten.TouchID][2]int{0: {390, 300}, 1: {610, 300}},
			previous: map[ebiten.TouchID][2]int{0: {400, 300}, 1: {600, 300}},
			want: []input.Touch{
				{ID: 0, Position: common.Vec2{390, 300}, Delta: common.Vec2{-10, 0}, Phase: input.PhaseMoved},
				{ID: 1, Position: common.Vec2{610, 300}, Delta: common.Vec2{10, 0}, Phase: input.PhaseMoved},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := appendTouches(nil, tt.active, tt.justPressed, tt.released, positions(tt.current), positions(tt.previous))
			if len(got) != len(tt.want) {
				t.Fatalf("got %d touches %+v, want %d", len(got), got, len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("touch %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestAppendTouchesReusesBuffer(t *testing.T) {
	buf := make([]input.Touch, 0, 4)
	pos := positions(map[ebiten.TouchID][2]int{1: {5, 5}})

	buf = appendTouches(buf[:0], []ebiten.TouchID{1}, nil, nil, pos, pos)
	first := &buf[0]
	buf = appendTouches(buf[:0], []ebiten.TouchID{1}, nil, nil, pos, pos)

	if &buf[0] != first {
		t.Fatal("buffer reallocated between ticks")
	}
}
