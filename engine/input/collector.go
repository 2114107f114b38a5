package input

import (
	"sort"
	"sync"

	"github.com/Carmen-Shannon/oxy-rig/common"
)

type touchState struct {
	position  common.Vec2
	lastFrame common.Vec2
	began     bool
	ended     bool
	cancelled bool
}

// Collector accumulates platform input events between frames and folds them into one Snapshot per frame.
// Event methods are safe to call from the window thread while Frame is called from the tick goroutine.
type Collector struct {
	mu *sync.Mutex

	cursor   common.Vec2
	held     bool
	pressed  bool
	released bool
	wheel    float32

	touches map[int]*touchState
}

// NewCollector creates an empty Collector.
//
// Returns:
//   - *Collector: the new collector
func NewCollector() *Collector {
	return &Collector{
		mu:      &sync.Mutex{},
		touches: make(map[int]*touchState),
	}
}

// CursorMoved records the latest cursor position.
func (c *Collector) CursorMoved(x, y float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cursor = common.Vec2{x, y}
}

// ButtonDown records a primary button press at the given position.
func (c *Collector) ButtonDown(x, y float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cursor = common.Vec2{x, y}
	c.held = true
	c.pressed = true
}

// ButtonUp records a primary button release at the given position.
func (c *Collector) ButtonUp(x, y float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cursor = common.Vec2{x, y}
	c.held = false
	c.released = true
}

// Scrolled adds a wheel delta. Multiple scroll events in one frame are summed.
func (c *Collector) Scrolled(delta float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.wheel += delta
}

// TouchBegan registers a new contact.
func (c *Collector) TouchBegan(id int, x, y float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p := common.Vec2{x, y}
	c.touches[id] = &touchState{position: p, lastFrame: p, began: true}
}

// TouchMoved updates a contact position. Unknown IDs are treated as a new contact.
func (c *Collector) TouchMoved(id int, x, y float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	t, ok := c.touches[id]
	if !ok {
		p := common.Vec2{x, y}
		c.touches[id] = &touchState{position: p, lastFrame: p, began: true}
		return
	}
	t.position = common.Vec2{x, y}
}

// TouchEnded marks a contact as lifted. It is reported once with PhaseEnded and then dropped.
func (c *Collector) TouchEnded(id int, x, y float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok := c.touches[id]; ok {
		t.position = common.Vec2{x, y}
		t.ended = true
	}
}

// TouchCancelled marks a contact as aborted by the platform.
func (c *Collector) TouchCancelled(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok := c.touches[id]; ok {
		t.cancelled = true
	}
}

// Frame produces the Snapshot for the current frame and resets per-frame edges
// (press/release flags, wheel accumulation, ended touches).
//
// Returns:
//   - Snapshot: the input observed since the previous Frame call
func (c *Collector) Frame() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Snapshot{
		Pointer: Pointer{
			Position: c.cursor,
			Pressed:  c.pressed,
			Held:     c.held,
			Released: c.released,
		},
		Wheel: c.wheel,
	}

	ids := make([]int, 0, len(c.touches))
	for id := range c.touches {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		t := c.touches[id]
		touch := Touch{
			ID:       id,
			Position: t.position,
			Delta:    t.position.Sub(t.lastFrame),
		}
		switch {
		case t.cancelled:
			touch.Phase = PhaseCancelled
		case t.ended:
			touch.Phase = PhaseEnded
		case t.began:
			touch.Phase = PhaseBegan
			touch.Delta = common.Vec2{}
		case touch.Delta != (common.Vec2{}):
			touch.Phase = PhaseMoved
		default:
			touch.Phase = PhaseStationary
		}
		s.Touches = append(s.Touches, touch)

		if t.ended || t.cancelled {
			delete(c.touches, id)
			continue
		}
		t.began = false
		t.lastFrame = t.position
	}

	c.pressed = false
	c.released = false
	c.wheel = 0
	return s
}
