package window

import "github.com/Carmen-Shannon/oxy-rig/engine/input"

// BindInput routes the window's cursor, left mouse button and scroll wheel events into c.
// Callbacks previously set for those events are replaced. Key, resize and update callbacks are left alone.
//
// Parameters:
//   - w: the window producing events
//   - c: the collector accumulating them into per-tick snapshots
func BindInput(w Window, c *input.Collector) {
	w.SetMouseMoveCallback(c.CursorMoved)
	w.SetMouseDownCallback(func(button MouseButton, x, y float32) {
		if button == MouseButtonLeft {
			c.ButtonDown(x, y)
		}
	})
	w.SetMouseUpCallback(func(button MouseButton, x, y float32) {
		if button == MouseButtonLeft {
			c.ButtonUp(x, y)
		}
	})
	w.SetScrollCallback(c.Scrolled)
}
