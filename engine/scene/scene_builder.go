package scene

import (
	"log/slog"

	"github.com/Carmen-Shannon/oxy-rig/engine/game_object"
	"github.com/Carmen-Shannon/oxy-rig/engine/target"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene is active.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithPaused starts the scene with object stepping suspended.
//
// Parameters:
//   - paused: true to freeze all objects
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithPaused(paused bool) SceneBuilderOption {
	return func(s *scene) {
		s.paused = paused
	}
}

// WithObjects adds initial objects to the scene once its registry is resolved.
// Objects without IDs will be assigned new IDs.
//
// Parameters:
//   - objects: the objects to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithObjects(objects ...game_object.GameObject) SceneBuilderOption {
	return func(s *scene) {
		for _, obj := range objects {
			if obj != nil {
				s.pendingObjects = append(s.pendingObjects, obj)
			}
		}
	}
}

// WithRegistry publishes the scene's objects in an existing registry instead of a new one.
//
// Parameters:
//   - r: the registry to share
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithRegistry(r target.Registry) SceneBuilderOption {
	return func(s *scene) {
		s.registry = r
	}
}

// WithStepWorkers sets the number of worker goroutines that step objects each tick.
// Defaults to runtime.NumCPU()-1.
//
// Parameters:
//   - n: the number of step workers (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithStepWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		if n < 1 {
			n = 1
		}
		s.stepWorkers = n
	}
}

// WithLogger sets the logger for object and target changes. Nil keeps slog.Default.
//
// Parameters:
//   - l: the logger
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLogger(l *slog.Logger) SceneBuilderOption {
	return func(s *scene) {
		if l != nil {
			s.logger = l
		}
	}
}
