package glfw

import (
	"testing"
)

func TestDefaultInitOptions(t *testing.T) {
	o := defaultInitOptions()
	if o.loader != "" {
		t.Errorf("loader = %q, want empty (best registered)", o.loader)
	}
	if o.libraryPath != "" {
		t.Errorf("libraryPath = %q, want empty (platform default)", o.libraryPath)
	}
	if o.library != nil {
		t.Error("library should not be injected by default")
	}
	if o.errorHandler != nil {
		t.Error("errorHandler should be nil by default")
	}
}

func TestInitOptions(t *testing.T) {
	called := false
	opts := []InitOption{
		WithLibraryPath("/usr/local/lib/libglfw.so.3"),
		WithLoader("dynamic"),
		WithErrorHandler(func(error) { called = true }),
	}

	o := defaultInitOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.libraryPath != "/usr/local/lib/libglfw.so.3" {
		t.Errorf("libraryPath = %q", o.libraryPath)
	}
	if o.loader != "dynamic" {
		t.Errorf("loader = %q, want dynamic", o.loader)
	}
	if o.errorHandler == nil {
		t.Fatal("errorHandler not set")
	}
	o.errorHandler(nil)
	if !called {
		t.Error("errorHandler is not the function passed to WithErrorHandler")
	}
}

// TestInitOptionsIgnoredAfterInit verifies that options of later calls do
// not reach the live context.
func TestInitOptionsIgnoredAfterInit(t *testing.T) {
	c, lib := newTestContext(t)

	var called bool
	got, err := Init(WithErrorHandler(func(error) { called = true }), WithLoader("no-such-loader"))
	if err != nil {
		t.Fatalf("Init() = %v", err)
	}
	if got != c {
		t.Fatal("Init() returned a different context")
	}

	lib.EmitError(int32(InvalidValue), "ignored")
	if called {
		t.Error("handler passed to a later Init was installed")
	}
}
