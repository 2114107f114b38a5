package input

import "github.com/Carmen-Shannon/oxy-rig/common"

// Phase describes where a touch is in its lifecycle during a single frame.
type Phase int

const (
	// PhaseBegan means the touch made contact this frame.
	PhaseBegan Phase = iota
	// PhaseMoved means the touch changed position since the previous frame.
	PhaseMoved
	// PhaseStationary means the touch is down but did not move since the previous frame.
	PhaseStationary
	// PhaseEnded means the touch was lifted this frame.
	PhaseEnded
	// PhaseCancelled means the platform aborted the touch this frame.
	PhaseCancelled
)

func (p Phase) String() string {
	switch p {
	case PhaseBegan:
		return "began"
	case PhaseMoved:
		return "moved"
	case PhaseStationary:
		return "stationary"
	case PhaseEnded:
		return "ended"
	case PhaseCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Touch is one contact point as observed during a frame.
type Touch struct {
	// ID identifies the contact for as long as it stays down.
	ID int
	// Position is the current screen-space position in pixels.
	Position common.Vec2
	// Delta is the movement since the previous frame in pixels.
	Delta common.Vec2
	// Phase is the lifecycle phase of the touch this frame.
	Phase Phase
}

// Pointer is the primary mouse button state for a frame.
type Pointer struct {
	// Position is the cursor position in pixels.
	Position common.Vec2
	// Pressed is true on the frame the button went down.
	Pressed bool
	// Held is true while the button is down, including the frame it was pressed.
	Held bool
	// Released is true on the frame the button went up.
	Released bool
}

// Snapshot is the input state handed to the camera rig once per frame.
// A snapshot with touches is interpreted as touch input; otherwise the pointer and wheel are used.
type Snapshot struct {
	Pointer Pointer
	Touches []Touch
	// Wheel is the scroll delta accumulated this frame. Positive scrolls up (zoom in).
	Wheel float32
}

// TouchCount returns the number of touches present in the snapshot, ended ones included.
func (s Snapshot) TouchCount() int {
	return len(s.Touches)
}

// HasPointerActivity reports whether the primary button was pressed, held or released this frame.
func (s Snapshot) HasPointerActivity() bool {
	return s.Pointer.Pressed || s.Pointer.Held || s.Pointer.Released
}
