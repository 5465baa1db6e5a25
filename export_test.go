package glfw

import (
	"testing"

	"github.com/gogpu/glfw/internal/native"
	"github.com/gogpu/glfw/internal/nativetest"
)

// withLibrary injects an already opened library, bypassing the loaders.
func withLibrary(lib native.Library) InitOption {
	return func(o *initOptions) {
		o.library = lib
	}
}

// resetContext drops the singleton so the next Init starts from scratch.
func resetContext() {
	instanceMu.Lock()
	instance.Store(nil)
	terminated.Store(false)
	instanceMu.Unlock()
}

// newTestContext initializes a fresh context over a stub library and
// terminates it when the test ends.
func newTestContext(t *testing.T) (*Context, *nativetest.Library) {
	t.Helper()
	resetContext()
	lib := nativetest.New()
	c, err := Init(withLibrary(lib))
	if err != nil {
		t.Fatalf("Init() = %v", err)
	}
	t.Cleanup(func() {
		c.Terminate()
		resetContext()
	})
	return c, lib
}

// mustCreate creates a 640x480 window or fails the test.
func mustCreate(t *testing.T, c *Context) *Window {
	t.Helper()
	w, ok := c.CreateWindow("test", 640, 480)
	if !ok {
		t.Fatal("CreateWindow reported absent")
	}
	return w
}
