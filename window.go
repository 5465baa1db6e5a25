package glfw

import (
	"math"
	"strings"
	"unsafe"

	"github.com/gogpu/gpucontext"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/glfw/internal/cache"
	"github.com/gogpu/glfw/internal/native"
)

// RawWindow is the native window address handed to callbacks. Convert it
// with FromRaw before calling any window or attachment operation.
type RawWindow uintptr

// LoadProc resolves a graphics API entry point from a NUL-terminated name.
// It returns nil for unknown names. This is the shape GL loaders expect.
type LoadProc func(name *byte) unsafe.Pointer

// SafeLoadProc resolves a graphics API entry point by name. It returns nil
// for unknown names and for names containing NUL.
type SafeLoadProc func(name string) unsafe.Pointer

// procCacheSize bounds the per-window proc address memo. A GL 4.6 core
// loader resolves roughly 650 names.
const procCacheSize = 1024

// Window is a native window with its OpenGL context.
//
// A Window is either owned or borrowed. Owned windows come from
// CreateWindow and CreateFullscreenWindow; Destroy releases them. Borrowed
// windows come from FromRaw and CurrentWindow; Destroy does nothing to them.
// Both kinds share the native window's attachment slot.
type Window struct {
	ctx       *Context
	raw       native.Window
	owned     bool
	destroyed bool

	procs *cache.Cache[string, unsafe.Pointer]
}

var _ gpucontext.WindowProvider = (*Window)(nil)

func borrow(c *Context, raw native.Window) *Window {
	return &Window{ctx: c, raw: raw}
}

// FromRaw returns a borrowed wrapper of raw. It exists for callbacks, which
// receive only the raw address; the caller guarantees raw is a live window
// for as long as the wrapper is used. FromRaw returns nil for a zero raw
// and panics when no context is initialized.
func FromRaw(raw RawWindow) *Window {
	if raw == 0 {
		return nil
	}
	c, ok := Get()
	if !ok {
		panic("glfw: FromRaw called without an initialized context")
	}
	return borrow(c, native.Window(raw))
}

// CreateWindow creates a windowed-mode window and its context using the
// current window hints. It reports false when width or height is not in
// [1, math.MaxInt32], when title contains NUL, or when the native library
// refuses (unavailable context version, for one).
func (c *Context) CreateWindow(title string, width, height int) (*Window, bool) {
	return c.createWindow(title, width, height, 0)
}

// CreateFullscreenWindow creates a full screen window on the primary
// monitor sized to its current video mode. It reports false when there is
// no primary monitor or its mode cannot be queried.
func (c *Context) CreateFullscreenWindow(title string) (*Window, bool) {
	m, ok := c.PrimaryMonitor()
	if !ok {
		Logger().Warn("glfw: no primary monitor for fullscreen window")
		return nil, false
	}
	mode, ok := m.VideoMode()
	if !ok {
		Logger().Warn("glfw: primary monitor has no video mode")
		return nil, false
	}
	return c.createWindow(title, mode.Width, mode.Height, m.raw)
}

func (c *Context) createWindow(title string, width, height int, monitor native.Monitor) (*Window, bool) {
	if !validWindowSize(width) || !validWindowSize(height) {
		Logger().Warn("glfw: invalid window size", "width", width, "height", height)
		return nil, false
	}
	title, ok := nativeTitle(title)
	if !ok {
		return nil, false
	}
	raw := c.lib.CreateWindow(int32(width), int32(height), title, monitor, 0)
	if raw == 0 {
		Logger().Warn("glfw: window creation failed", "title", title, "width", width, "height", height)
		return nil, false
	}
	w := &Window{ctx: c, raw: raw, owned: true}
	c.track(w)
	Logger().Debug("glfw: window created", "window", raw, "fullscreen", monitor != 0)
	return w, true
}

// validWindowSize reports whether n survives the conversion to a native
// int and is a usable dimension.
func validWindowSize(n int) bool {
	return n > 0 && int64(n) <= math.MaxInt32
}

// nativeTitle returns title in the form handed to the native library.
func nativeTitle(title string) (string, bool) {
	if strings.IndexByte(title, 0) >= 0 {
		return "", false
	}
	return norm.NFC.String(title), true
}

// Owned reports whether Destroy releases the native window.
func (w *Window) Owned() bool { return w.owned }

// Raw returns the native window address.
func (w *Window) Raw() RawWindow { return RawWindow(w.raw) }

// Destroy releases an owned window: first its attachment, then its key
// and mouse callbacks, then the native window. It does nothing for borrowed windows and
// on repeated calls.
func (w *Window) Destroy() {
	if !w.owned || w.destroyed {
		return
	}
	w.destroyed = true
	w.ClearUserData()
	w.ctx.lib.SetKeyCallback(w.raw, nil)
	w.ctx.lib.SetCursorPosCallback(w.raw, nil)
	w.ctx.forget(w)
	w.ctx.lib.DestroyWindow(w.raw)
	if w.procs != nil {
		w.procs.Clear()
	}
	Logger().Debug("glfw: window destroyed", "window", w.raw)
}

// MakeCurrent makes the window's context current on the calling thread,
// replacing whatever context was current.
func (w *Window) MakeCurrent() {
	w.ctx.lib.MakeContextCurrent(w.raw)
}

// LoadProc returns a resolver for the current context's entry points.
func (w *Window) LoadProc() LoadProc {
	lib := w.ctx.lib
	return func(name *byte) unsafe.Pointer {
		if name == nil {
			return nil
		}
		return lib.GetProcAddress(name)
	}
}

// SafeLoadProc returns a string-based resolver. Names resolve against
// whichever context is current, like LoadProc. An address is memoized for
// this window only when it was resolved while this window's context was
// current; misses are never memoized.
func (w *Window) SafeLoadProc() SafeLoadProc {
	if w.procs == nil {
		w.procs = cache.New[string, unsafe.Pointer](procCacheSize)
	}
	procs, lib, raw := w.procs, w.ctx.lib, w.raw
	return func(name string) unsafe.Pointer {
		if name == "" || strings.IndexByte(name, 0) >= 0 {
			return nil
		}
		if p, ok := procs.Get(name); ok {
			return p
		}
		buf := append([]byte(name), 0)
		p := lib.GetProcAddress(&buf[0])
		if p != nil && lib.GetCurrentContext() == raw {
			procs.Set(name, p)
		}
		return p
	}
}

// Update swaps the front and back buffers.
func (w *Window) Update() {
	w.ctx.lib.SwapBuffers(w.raw)
}

// ShouldClose reports the window's close flag.
func (w *Window) ShouldClose() bool {
	return w.ctx.lib.WindowShouldClose(w.raw)
}

// SetShouldClose sets the close flag.
func (w *Window) SetShouldClose(v bool) {
	w.ctx.lib.SetWindowShouldClose(w.raw, v)
}

// SetTitle changes the window title. Titles containing NUL are ignored.
func (w *Window) SetTitle(title string) {
	title, ok := nativeTitle(title)
	if !ok {
		Logger().Warn("glfw: title contains NUL", "window", w.raw)
		return
	}
	w.ctx.lib.SetWindowTitle(w.raw, title)
}

// Size returns the size of the content area in screen coordinates.
func (w *Window) Size() (width, height int) {
	x, y := w.ctx.lib.GetWindowSize(w.raw)
	return int(x), int(y)
}

// ScaleFactor returns the horizontal content scale, 1.0 on standard DPI.
func (w *Window) ScaleFactor() float64 {
	x, _ := w.ctx.lib.GetWindowContentScale(w.raw)
	if x <= 0 {
		return 1
	}
	return float64(x)
}

// RequestRedraw wakes the event loop so a waiting application redraws.
func (w *Window) RequestRedraw() {
	w.ctx.lib.PostEmptyEvent()
}
