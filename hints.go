package glfw

import "runtime"

// Hint names a window creation hint. Values equal the native constants.
type Hint int

// Window and context hints.
const (
	Focused      Hint = 0x00020001
	Resizable    Hint = 0x00020003
	Visible      Hint = 0x00020004
	Decorated    Hint = 0x00020005
	Samples      Hint = 0x0002100D
	DoubleBuffer Hint = 0x00021010

	ClientAPI           Hint = 0x00022001
	ContextVersionMajor Hint = 0x00022002
	ContextVersionMinor Hint = 0x00022003
	OpenGLForwardCompat Hint = 0x00022006
	OpenGLDebugContext  Hint = 0x00022007
	OpenGLProfile       Hint = 0x00022008
)

// Hint values.
const (
	False = 0
	True  = 1

	OpenGLAPI   = 0x00030001
	OpenGLESAPI = 0x00030002
	NoAPI       = 0

	OpenGLAnyProfile    = 0
	OpenGLCoreProfile   = 0x00032001
	OpenGLCompatProfile = 0x00032002
)

// WindowHint sets a hint for the next window created. Hints persist until
// changed or reset with DefaultWindowHints.
func (c *Context) WindowHint(h Hint, value int) {
	c.lib.WindowHint(int32(h), int32(value))
}

// DefaultWindowHints resets every hint to its default.
func (c *Context) DefaultWindowHints() {
	c.lib.DefaultWindowHints()
}

// GLVersion requests an OpenGL major.minor core profile context for windows
// created afterwards. On macOS it also requests a forward-compatible
// context, without which core profiles above 3.0 are refused.
//
// Call it before CreateWindow; windows that already exist are unaffected.
func (c *Context) GLVersion(major, minor int) {
	c.WindowHint(ContextVersionMajor, major)
	c.WindowHint(ContextVersionMinor, minor)
	c.WindowHint(OpenGLProfile, OpenGLCoreProfile)
	if runtime.GOOS == "darwin" {
		c.WindowHint(OpenGLForwardCompat, True)
	}
}
