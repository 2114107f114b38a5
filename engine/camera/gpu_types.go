package camera

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUCameraUniformSource declares the WGSL CameraUniform struct that GPUCameraUniform fills.
// Shaders prepend it to their own source.
//
//go:embed assets/camera_uniform.wgsl
var GPUCameraUniformSource string

// GPUCameraUniform is the 80-byte camera block uploaded once per rendered frame.
type GPUCameraUniform struct {
	ViewProj       [16]float32 // offset  0: mat4x4<f32>, column-major
	CameraPosition [3]float32  // offset 64: rig position
	OrbitWeight    float32     // offset 76: rig orbit weight, fills the vec3 padding slot
}

// Size returns the uniform size in bytes.
//
// Returns:
//   - int: 80
func (g *GPUCameraUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal encodes the uniform little-endian in WGSL field order.
//
// Returns:
//   - []byte: Size() bytes ready for a buffer write
func (g *GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, 0, g.Size())
	for _, v := range g.ViewProj {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
	}
	for _, v := range g.CameraPosition {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
	}
	return binary.LittleEndian.AppendUint32(buf, math.Float32bits(g.OrbitWeight))
}
