// Package ebiteninput reads ebiten's mouse, wheel and touch state into an input.Snapshot.
// It is meant to be called once from an ebiten Game's Update.
package ebiteninput

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/Carmen-Shannon/oxy-rig/engine/input"
)

// Reader keeps reusable touch ID buffers so reading a frame does not allocate once warmed up.
type Reader struct {
	active      []ebiten.TouchID
	justPressed []ebiten.TouchID
	released    []ebiten.TouchID
	touches     []input.Touch

	wheelScale float32
}

// NewReader creates a Reader. wheelScale multiplies ebiten's wheel offset; values <= 0 mean 1.
//
// Parameters:
//   - wheelScale: multiplier applied to the vertical wheel offset
//
// Returns:
//   - *Reader: the new reader
func NewReader(wheelScale float32) *Reader {
	if wheelScale <= 0 {
		wheelScale = 1
	}
	return &Reader{wheelScale: wheelScale}
}

// Read captures this tick's input. The returned snapshot's Touches slice is reused on the next call.
//
// Returns:
//   - input.Snapshot: the current input
func (r *Reader) Read() input.Snapshot {
	mx, my := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()

	s := input.Snapshot{
		Pointer: input.Pointer{
			Position: common.Vec2{float32(mx), float32(my)},
			Pressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
			Held:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
			Released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		},
		Wheel: float32(wy) * r.wheelScale,
	}

	r.active = ebiten.AppendTouchIDs(r.active[:0])
	r.justPressed = inpututil.AppendJustPressedTouchIDs(r.justPressed[:0])
	r.released = inpututil.AppendJustReleasedTouchIDs(r.released[:0])
	r.touches = appendTouches(r.touches[:0], r.active, r.justPressed, r.released,
		ebiten.TouchPosition, inpututil.TouchPositionInPreviousTick)

	if len(r.touches) > 0 {
		s.Touches = r.touches
	}
	return s
}

// positionFunc reports a touch position in pixels, as ebiten.TouchPosition does.
type positionFunc func(id ebiten.TouchID) (int, int)

// appendTouches classifies the touches of one tick and appends them to dst.
// A just-pressed touch is Began with no delta, a touch whose position changed since
// the previous tick is Moved, any other active touch is Stationary. Released touches
// are appended last as Ended at their previous-tick position.
func appendTouches(dst []input.Touch, active, justPressed, released []ebiten.TouchID, current, previous positionFunc) []input.Touch {
	for _, id := range active {
		x, y := current(id)
		px, py := previous(id)
		pos := common.Vec2{float32(x), float32(y)}
		touch := input.Touch{
			ID:       int(id),
			Position: pos,
			Delta:    pos.Sub(common.Vec2{float32(px), float32(py)}),
		}
		switch {
		case containsTouch(justPressed, id):
			touch.Phase = input.PhaseBegan
			touch.Delta = common.Vec2{}
		case touch.Delta != (common.Vec2{}):
			touch.Phase = input.PhaseMoved
		default:
			touch.Phase = input.PhaseStationary
		}
		dst = append(dst, touch)
	}

	for _, id := range released {
		x, y := previous(id)
		dst = append(dst, input.Touch{
			ID:       int(id),
			Position: common.Vec2{float32(x), float32(y)},
			Phase:    input.PhaseEnded,
		})
	}
	return dst
}

func containsTouch(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
