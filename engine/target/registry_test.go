package target

import "testing"

type fixedTransform struct {
	x, y, z, yaw float32
}

func (f fixedTransform) Position() (x, y, z float32) { return f.x, f.y, f.z }
func (f fixedTransform) Yaw() float32                { return f.yaw }

func TestRegistryLifecycle(t *testing.T) {
	r := NewRegistry()

	a := r.Register(fixedTransform{x: 1})
	b := r.Register(fixedTransform{x: 2})
	if a != 1 || b != 2 {
		t.Fatalf("handles=%d,%d want 1,2", a, b)
	}
	if r.Len() != 2 {
		t.Fatalf("len=%d want 2", r.Len())
	}

	got, ok := r.Lookup(b)
	if !ok {
		t.Fatal("lookup of registered handle failed")
	}
	if x, _, _ := got.Position(); x != 2 {
		t.Fatalf("x=%v want 2", x)
	}

	r.Unregister(a)
	if _, ok := r.Lookup(a); ok {
		t.Fatal("unregistered handle still resolves")
	}

	c := r.Register(fixedTransform{x: 3})
	if c == a {
		t.Fatalf("handle %d was reused", c)
	}
}

func TestRegistryRejectsInvalid(t *testing.T) {
	r := NewRegistry()
	if h := r.Register(nil); h.Valid() {
		t.Fatalf("nil transform got handle %d", h)
	}
	if _, ok := r.Lookup(0); ok {
		t.Fatal("zero handle resolved")
	}
	if _, ok := r.Lookup(99); ok {
		t.Fatal("unknown handle resolved")
	}
	r.Unregister(99)
}

func TestRegistryEachOrder(t *testing.T) {
	r := NewRegistry()
	for i := 0; i < 5; i++ {
		r.Register(fixedTransform{yaw: float32(i)})
	}
	r.Unregister(3)

	var seen []Handle
	r.Each(func(h Handle, _ Transform) {
		seen = append(seen, h)
	})
	want := []Handle{1, 2, 4, 5}
	if len(seen) != len(want) {
		t.Fatalf("seen=%v want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("seen=%v want %v", seen, want)
		}
	}
	if hs := r.Handles(); len(hs) != 4 || hs[0] != 1 {
		t.Fatalf("handles=%v", hs)
	}
}
