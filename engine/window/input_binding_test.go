package window

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/Carmen-Shannon/oxy-rig/engine/input"
)

func TestBindInput(t *testing.T) {
	w := &engineWindow{}
	c := input.NewCollector()
	BindInput(w, c)

	w.onMouseDown(MouseButtonRight, 5, 5)
	if s := c.Frame(); s.HasPointerActivity() {
		t.Fatalf("right button reached the collector: %+v", s.Pointer)
	}

	w.onMouseDown(MouseButtonLeft, 100, 100)
	s := c.Frame()
	if !s.Pointer.Pressed || s.Pointer.Position != (common.Vec2{100, 100}) {
		t.Fatalf("press frame pointer=%+v", s.Pointer)
	}

	w.onMouseMove(120, 130)
	w.onScroll(2)
	s = c.Frame()
	if !s.Pointer.Held || s.Pointer.Position != (common.Vec2{120, 130}) {
		t.Fatalf("drag frame pointer=%+v", s.Pointer)
	}
	if s.Wheel != 2 {
		t.Fatalf("wheel=%v want 2", s.Wheel)
	}

	w.onMouseUp(MouseButtonMiddle, 120, 130)
	if s := c.Frame(); !s.Pointer.Held {
		t.Fatal("middle release ended the left drag")
	}
	w.onMouseUp(MouseButtonLeft, 120, 130)
	if s := c.Frame(); !s.Pointer.Released || s.Pointer.Held {
		t.Fatalf("release frame pointer=%+v", s.Pointer)
	}
}
