package glfw

import "github.com/gogpu/glfw/internal/native"

// InitOption configures the first successful Init call. Options passed to
// later calls are ignored because the context already exists.
//
// Example:
//
//	ctx, err := glfw.Init(
//	    glfw.WithLibraryPath("/opt/glfw/lib/libglfw.so.3"),
//	    glfw.WithErrorHandler(func(err error) { log.Println(err) }),
//	)
type InitOption func(*initOptions)

// initOptions holds the configuration used to bring up the native library.
type initOptions struct {
	loader       string
	libraryPath  string
	library      native.Library
	errorHandler ErrorHandler
}

func defaultInitOptions() initOptions {
	return initOptions{
		loader:      "", // highest-priority registered loader
		libraryPath: "", // platform default or $GOGPU_GLFW_LIBRARY
	}
}

// WithLibraryPath loads the native library from path instead of the
// platform default search.
func WithLibraryPath(path string) InitOption {
	return func(o *initOptions) {
		o.libraryPath = path
	}
}

// WithLoader selects a registered native loader by name.
func WithLoader(name string) InitOption {
	return func(o *initOptions) {
		o.loader = name
	}
}

// WithErrorHandler installs h before native initialization, so errors raised
// by init itself are delivered too.
func WithErrorHandler(h ErrorHandler) InitOption {
	return func(o *initOptions) {
		o.errorHandler = h
	}
}
