package renderer

import "fmt"

// RendererBackendType identifies the GPU backend the Renderer draws with.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames reach the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for vertical blank. This is the default.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents immediately and may tear.
	PresentModeUncapped
)

func (m PresentMode) String() string {
	switch m {
	case PresentModeVSync:
		return "vsync"
	case PresentModeUncapped:
		return "uncapped"
	default:
		return fmt.Sprintf("PresentMode(%d)", int(m))
	}
}

// MSAASampleCount is the sample count of the grid pass. WebGPU only guarantees 1 and 4,
// so those are the only counts the renderer accepts.
type MSAASampleCount uint32

const (
	// MSAAOff draws single-sampled.
	MSAAOff MSAASampleCount = 1

	// MSAA4x resolves four samples per pixel. This is the default.
	MSAA4x MSAASampleCount = 4
)

// resolveMSAA picks the sample count for a new renderer: MSAA4x when none was requested.
func resolveMSAA(requested *MSAASampleCount) (MSAASampleCount, error) {
	if requested == nil {
		return MSAA4x, nil
	}
	switch *requested {
	case MSAAOff, MSAA4x:
		return *requested, nil
	default:
		return 0, fmt.Errorf("unsupported MSAA sample count %d", *requested)
	}
}

// RendererBackend is what the Renderer needs from a GPU backend.
type RendererBackend interface {
	wgpuRendererBackend
}
