package scene

import (
	"log/slog"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-rig/engine/camera"
	"github.com/Carmen-Shannon/oxy-rig/engine/game_object"
	"github.com/Carmen-Shannon/oxy-rig/engine/input"
	"github.com/Carmen-Shannon/oxy-rig/engine/target"
)

// Scene owns the followable GameObjects, the registry they are published in, and the Camera
// whose rig watches them. A frame is two ordered calls: Update moves the objects and feeds input
// to the rig, LateUpdate runs the rig's follow phase and refreshes the camera matrices, so follow
// always sees where its target ended up this frame.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether this scene is currently ticked and rendered.
	Active() bool

	// SetActive sets whether this scene is ticked and rendered.
	SetActive(active bool)

	// Paused returns whether object stepping is suspended. The rig keeps running while paused.
	Paused() bool

	// SetPaused suspends or resumes object stepping.
	//
	// Parameters:
	//   - paused: true to freeze all objects in place
	SetPaused(paused bool)

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// Rig returns the camera's rig controller.
	Rig() camera.RigController

	// Registry returns the registry the scene publishes its objects in.
	Registry() target.Registry

	// Count returns the number of objects in the scene.
	//
	// Returns:
	//   - int: count of GameObjects
	Count() int

	// Add adds a GameObject to the scene and registers it as a follow target.
	// Objects without an ID are assigned the next free one.
	//
	// Parameters:
	//   - obj: the GameObject to add (nil is ignored)
	//
	// Returns:
	//   - target.Handle: the handle the object is registered under
	Add(obj game_object.GameObject) target.Handle

	// Get retrieves a GameObject by its ID.
	// Returns nil if not found.
	//
	// Parameters:
	//   - id: the object's unique ID
	//
	// Returns:
	//   - game_object.GameObject: the object or nil
	Get(id uint64) game_object.GameObject

	// Handle returns the registry handle of the object with the given ID, or the zero Handle.
	//
	// Parameters:
	//   - id: the object's unique ID
	//
	// Returns:
	//   - target.Handle: the object's handle
	Handle(id uint64) target.Handle

	// Remove drops a GameObject from the scene and unregisters it. A rig following it
	// stops moving until it is given another target.
	//
	// Parameters:
	//   - id: the object's unique ID
	Remove(id uint64)

	// Clear removes every object from the scene and the registry.
	Clear()

	// CycleTarget binds the rig to the registered object after the current target,
	// wrapping to the first one. Returns the zero Handle when the scene is empty.
	//
	// Returns:
	//   - target.Handle: the newly bound handle
	CycleTarget() target.Handle

	// Update steps every enabled object in parallel on the scene's worker pool, waits for all
	// of them, then hands the input snapshot to the rig.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the last tick in seconds
	//   - snapshot: input observed this tick
	Update(deltaTime float32, snapshot input.Snapshot)

	// LateUpdate runs the rig's follow phase and recomputes the camera matrices.
	// Must be called after Update for the same tick.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the last tick in seconds
	LateUpdate(deltaTime float32)

	// Release stops the scene's worker pool. The scene must not be updated afterwards.
	Release()
}

type scene struct {
	mu     *sync.RWMutex
	logger *slog.Logger

	name   string
	active bool
	paused bool

	cam      camera.Camera
	registry target.Registry

	objects map[uint64]game_object.GameObject
	handles map[uint64]target.Handle
	nextID  uint64

	// stepPool runs the per-object Step calls. Workers persist across ticks.
	stepPool    worker.DynamicWorkerPool
	stepWorkers int

	pendingObjects []game_object.GameObject
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a new Scene around the given camera. The camera must carry a rig and NewScene
// panics otherwise. When the rig has no registry the scene's registry is attached to it;
// when it already has one, the scene publishes its objects there.
//
// Parameters:
//   - name: the name of the scene
//   - cam: the camera to attach (must not be nil and must have a rig)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, cam camera.Camera, options ...SceneBuilderOption) Scene {
	if cam == nil {
		panic("scene: NewScene requires a non-nil Camera")
	}
	rig := cam.Rig()
	if rig == nil {
		panic("scene: NewScene requires a Camera with a RigController")
	}

	s := &scene{
		mu:          &sync.RWMutex{},
		logger:      slog.Default(),
		name:        name,
		cam:         cam,
		objects:     make(map[uint64]game_object.GameObject),
		handles:     make(map[uint64]target.Handle),
		nextID:      1,
		stepWorkers: max(runtime.NumCPU()-1, 1),
	}

	for _, option := range options {
		option(s)
	}

	switch {
	case s.registry == nil && rig.Registry() != nil:
		s.registry = rig.Registry()
	case s.registry == nil:
		s.registry = target.NewRegistry()
		rig.SetRegistry(s.registry)
	case rig.Registry() == nil:
		rig.SetRegistry(s.registry)
	}

	// Queue size of 256 covers typical object counts; submits beyond it block until a worker frees a slot.
	s.stepPool = worker.NewDynamicWorkerPool(s.stepWorkers, 256, 1*time.Second)

	for _, obj := range s.pendingObjects {
		s.add(obj)
	}
	s.pendingObjects = nil

	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Paused() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.paused
}

func (s *scene) SetPaused(paused bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = paused
}

func (s *scene) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *scene) Rig() camera.RigController {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam.Rig()
}

func (s *scene) Registry() target.Registry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

func (s *scene) Add(obj game_object.GameObject) target.Handle {
	if obj == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(obj)
}

// add assigns an ID if needed and registers the object.
// Caller must hold the write lock.
func (s *scene) add(obj game_object.GameObject) target.Handle {
	if obj.ID() == 0 {
		obj.SetID(s.nextID)
		s.nextID++
	} else if obj.ID() >= s.nextID {
		s.nextID = obj.ID() + 1
	}
	id := obj.ID()
	if old, ok := s.handles[id]; ok {
		s.registry.Unregister(old)
	}

	h := s.registry.Register(obj)
	s.objects[id] = obj
	s.handles[id] = h
	s.logger.Debug("object added", "scene", s.name, "id", id, "handle", uint64(h))
	return h
}

func (s *scene) Get(id uint64) game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.objects[id]
}

func (s *scene) Handle(id uint64) target.Handle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.handles[id]
}

func (s *scene) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.handles[id]
	if !ok {
		return
	}
	s.registry.Unregister(h)
	delete(s.handles, id)
	delete(s.objects, id)
	s.logger.Debug("object removed", "scene", s.name, "id", id, "handle", uint64(h))
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, h := range s.handles {
		s.registry.Unregister(h)
		delete(s.handles, id)
	}
	s.objects = make(map[uint64]game_object.GameObject)
}

func (s *scene) CycleTarget() target.Handle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hs := make([]target.Handle, 0, len(s.handles))
	for _, h := range s.handles {
		hs = append(hs, h)
	}
	if len(hs) == 0 {
		return 0
	}
	sort.Slice(hs, func(i, j int) bool { return hs[i] < hs[j] })

	rig := s.cam.Rig()
	current := rig.Target()
	next := hs[0]
	for _, h := range hs {
		if h > current {
			next = h
			break
		}
	}
	rig.BindTarget(next)
	s.logger.Debug("follow target changed", "scene", s.name, "handle", uint64(next))
	return next
}

func (s *scene) Update(deltaTime float32, snapshot input.Snapshot) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.paused {
		s.stepObjects(deltaTime)
	}
	s.cam.Rig().Update(deltaTime, snapshot)
}

func (s *scene) LateUpdate(deltaTime float32) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	s.cam.Rig().LateUpdate(deltaTime)
	s.cam.Update()
}

// stepObjects advances every object on the step pool.
// A WaitGroup gives a per-tick barrier; the pool's own Wait only returns once workers idle out.
// Caller must hold the read lock.
func (s *scene) stepObjects(deltaTime float32) {
	var wg sync.WaitGroup
	taskID := 0
	for _, obj := range s.objects {
		if !obj.Enabled() {
			continue
		}
		wg.Add(1)
		o := obj
		id := taskID
		taskID++
		s.stepPool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				o.Step(deltaTime)
				return nil, nil
			},
		})
	}
	wg.Wait()
}

func (s *scene) Release() {
	s.stepPool.Stop()
}
