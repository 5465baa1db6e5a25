// Package glfw is an ownership and type-safety layer over the native GLFW 3
// library, loaded at runtime without cgo.
//
// # Overview
//
// The native library does the windowing, event delivery and OpenGL context
// management. This package decides who releases what:
//
//   - Context is a process-wide singleton. Init loads and initializes the
//     native library once; Terminate shuts it down once.
//   - Window is either owned (returned by a create call, released by
//     Destroy) or borrowed (recovered from a raw address inside a callback,
//     never released).
//   - SetUserData and UserData attach one typed value to a window and
//     retrieve it with an exact type check.
//   - Native errors arrive as *Error values with a closed ErrorCode set.
//
// # Quick Start
//
//	func init() { runtime.LockOSThread() }
//
//	func main() {
//	    ctx := glfw.MustInit()
//	    defer ctx.Terminate()
//
//	    ctx.GLVersion(3, 3)
//	    win, ok := ctx.CreateWindow("demo", 800, 600)
//	    if !ok {
//	        log.Fatal("window creation failed")
//	    }
//	    defer win.Destroy()
//
//	    win.MakeCurrent()
//	    gl.InitWithProcAddrFunc(win.SafeLoadProc())
//	    for !win.ShouldClose() {
//	        ctx.PollEvents()
//	        // draw
//	        win.Update()
//	    }
//	}
//
// # Callbacks
//
// Key and mouse callbacks receive a RawWindow. Convert it with FromRaw to
// reach the window and its user data:
//
//	win.SetKeyCallback(func(w glfw.RawWindow, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
//	    if st, ok := glfw.UserData[state](glfw.FromRaw(w)); ok && action == glfw.Press {
//	        st.pressed = key
//	    }
//	})
//
// Callbacks run synchronously on the thread calling PollEvents or
// WaitEvents.
//
// # Threading
//
// GLFW must be driven from the main thread. Lock it in an init function and
// call every function in this package from main, except PostEmptyEvent.
//
// # Library Loading
//
// Init opens the shared library from, in order, WithLibraryPath, the
// GOGPU_GLFW_LIBRARY environment variable, and the platform default names
// (libglfw.so.3, libglfw.3.dylib, glfw3.dll).
//
// # Logging
//
// The package logs through log/slog and is silent by default. See
// SetLogger.
package glfw
