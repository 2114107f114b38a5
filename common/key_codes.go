package common

// Key codes the rig demos bind. Values match GLFW key codes, which use ASCII for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyF     = 70 // toggle follow mode
	KeyT     = 84 // cycle follow target
	KeyR     = 82 // reset camera
	KeyMinus = 45 // zoom out step
	KeyEqual = 61 // zoom in step

	KeySpace = 32  // pause targets
	KeyEsc   = 256 // Escape key (GLFW)
)
