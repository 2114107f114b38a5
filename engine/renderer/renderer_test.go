package renderer

import (
	"errors"
	"regexp"
	"strconv"
	"sync"
	"testing"

	"github.com/Carmen-Shannon/oxy-rig/engine/camera"
	"github.com/cogentcore/webgpu/wgpu"
)

type recordingBackend struct {
	written  []camera.GPUCameraUniform
	drawErr  error
	released bool
}

func (b *recordingBackend) ConfigureSurface(width, height int) error { return nil }
func (b *recordingBackend) SetPresentMode(mode PresentMode)          {}
func (b *recordingBackend) SetClearColor(r, g, bl, a float64)        {}
func (b *recordingBackend) WriteCamera(u camera.GPUCameraUniform) {
	b.written = append(b.written, u)
}
func (b *recordingBackend) DrawFrame() error { return b.drawErr }
func (b *recordingBackend) Release()         { b.released = true }

func TestRenderFrameCountsPresentedFrames(t *testing.T) {
	backend := &recordingBackend{}
	r := &renderer{mu: &sync.Mutex{}, backend: backend}

	u := camera.GPUCameraUniform{CameraPosition: [3]float32{1, 2, 3}}
	if err := r.RenderFrame(u); err != nil {
		t.Fatalf("RenderFrame() error = %v", err)
	}
	backend.drawErr = errors.New("surface lost")
	if err := r.RenderFrame(u); err == nil {
		t.Fatal("RenderFrame() error = nil, want surface lost")
	}

	if r.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", r.Frames())
	}
	if len(backend.written) != 2 || backend.written[0].CameraPosition != u.CameraPosition {
		t.Errorf("written uniforms = %+v", backend.written)
	}

	r.Release()
	if !backend.released {
		t.Error("Release() did not reach the backend")
	}
}

func TestSetPresentMode(t *testing.T) {
	tests := []struct {
		mode PresentMode
		want wgpu.PresentMode
	}{
		{PresentModeVSync, wgpu.PresentModeFifo},
		{PresentModeUncapped, wgpu.PresentModeImmediate},
		{PresentMode(99), wgpu.PresentModeFifo},
	}
	for _, tt := range tests {
		b := &wgpuRendererBackendImpl{mu: &sync.Mutex{}}
		b.SetPresentMode(tt.mode)
		if b.presentMode != tt.want {
			t.Errorf("SetPresentMode(%d) = %v, want %v", tt.mode, b.presentMode, tt.want)
		}
	}
}

func TestSetClearColorBeforeConfigure(t *testing.T) {
	b := &wgpuRendererBackendImpl{mu: &sync.Mutex{}}
	b.SetClearColor(0.5, 0.25, 0, 1)
	if b.clearColor != (wgpu.Color{R: 0.5, G: 0.25, B: 0, A: 1}) {
		t.Errorf("clearColor = %+v", b.clearColor)
	}
}

func TestGridVertexCountMatchesShader(t *testing.T) {
	m := regexp.MustCompile(`GRID_LINES: u32 = (\d+)u`).FindStringSubmatch(gridShaderSource)
	if m == nil {
		t.Fatal("GRID_LINES not found in grid shader")
	}
	lines, err := strconv.Atoi(m[1])
	if err != nil {
		t.Fatal(err)
	}
	if want := lines * 2 * 2; gridVertexCount != want {
		t.Errorf("gridVertexCount = %d, want %d", gridVertexCount, want)
	}
}

func TestResolveMSAA(t *testing.T) {
	count := func(c MSAASampleCount) *MSAASampleCount { return &c }
	tests := []struct {
		name      string
		requested *MSAASampleCount
		want      MSAASampleCount
		wantErr   bool
	}{
		{"default", nil, MSAA4x, false},
		{"off", count(MSAAOff), MSAAOff, false},
		{"4x", count(MSAA4x), MSAA4x, false},
		{"8x unsupported", count(8), 0, true},
		{"zero", count(0), 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveMSAA(tt.requested)
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolveMSAA() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("resolveMSAA() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPresentModeString(t *testing.T) {
	tests := []struct {
		mode PresentMode
		want string
	}{
		{PresentModeVSync, "vsync"},
		{PresentModeUncapped, "uncapped"},
		{PresentMode(7), "PresentMode(7)"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
