package target

import (
	"sort"
	"sync"
)

// Handle addresses a Transform inside a Registry. The zero Handle never refers to anything.
type Handle uint64

// Valid reports whether h could refer to a registered transform.
func (h Handle) Valid() bool {
	return h != 0
}

// Transform is the read-only view the camera rig needs of something it follows.
type Transform interface {
	// Position returns the world-space position.
	//
	// Returns:
	//   - x, y, z: world-space position
	Position() (x, y, z float32)

	// Yaw returns the heading around the world Y axis in radians.
	//
	// Returns:
	//   - float32: yaw in radians
	Yaw() float32
}

// Registry owns the set of followable transforms. Consumers keep Handles, never the transforms
// themselves, so a transform removed from the registry simply stops resolving.
// Handles are never reused within a Registry.
type Registry interface {
	// Register adds a transform and returns its handle.
	//
	// Parameters:
	//   - t: the transform to register (nil is ignored and yields the zero Handle)
	//
	// Returns:
	//   - Handle: the new handle
	Register(t Transform) Handle

	// Unregister removes the transform addressed by h. Unknown handles are ignored.
	//
	// Parameters:
	//   - h: the handle to remove
	Unregister(h Handle)

	// Lookup resolves a handle.
	//
	// Parameters:
	//   - h: the handle to resolve
	//
	// Returns:
	//   - Transform: the registered transform, or nil
	//   - bool: true if h is registered
	Lookup(h Handle) (Transform, bool)

	// Len returns the number of registered transforms.
	Len() int

	// Handles returns all registered handles in ascending order.
	Handles() []Handle

	// Each calls fn for every registered transform in ascending handle order.
	// fn must not call back into the registry.
	//
	// Parameters:
	//   - fn: the visitor
	Each(fn func(h Handle, t Transform))
}

type registryImpl struct {
	mu     *sync.RWMutex
	items  map[Handle]Transform
	nextID Handle
}

var _ Registry = &registryImpl{}

// NewRegistry creates an empty Registry. The first handle issued is 1.
//
// Returns:
//   - Registry: the new registry
func NewRegistry() Registry {
	return &registryImpl{
		mu:     &sync.RWMutex{},
		items:  make(map[Handle]Transform),
		nextID: 1,
	}
}

func (r *registryImpl) Register(t Transform) Handle {
	if t == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	h := r.nextID
	r.nextID++
	r.items[h] = t
	return h
}

func (r *registryImpl) Unregister(h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, h)
}

func (r *registryImpl) Lookup(h Handle) (Transform, bool) {
	if !h.Valid() {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.items[h]
	return t, ok
}

func (r *registryImpl) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

func (r *registryImpl) Handles() []Handle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedHandles()
}

func (r *registryImpl) Each(fn func(h Handle, t Transform)) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, h := range r.sortedHandles() {
		fn(h, r.items[h])
	}
}

// sortedHandles returns the registered handles in ascending order.
// Caller must hold the read lock.
func (r *registryImpl) sortedHandles() []Handle {
	hs := make([]Handle, 0, len(r.items))
	for h := range r.items {
		hs = append(hs, h)
	}
	sort.Slice(hs, func(i, j int) bool { return hs[i] < hs[j] })
	return hs
}
