package glfw

import (
	"unsafe"

	"github.com/gogpu/glfw/internal/native"
)

// KeyCallback receives keyboard events for one window. It runs on the
// thread that called PollEvents or WaitEvents. Use FromRaw(w) to reach the
// window and its user data.
type KeyCallback func(w RawWindow, key Key, scancode int, action Action, mods ModifierKey)

// MouseCallback receives cursor positions in screen coordinates relative to
// the top-left corner of the content area.
type MouseCallback func(w RawWindow, x, y float64)

// ErrorHandler receives asynchronous native errors.
type ErrorHandler func(err error)

// SetKeyCallback replaces the window's key callback. nil removes it.
func (w *Window) SetKeyCallback(cb KeyCallback) {
	if cb == nil {
		w.ctx.lib.SetKeyCallback(w.raw, nil)
		return
	}
	w.ctx.lib.SetKeyCallback(w.raw, func(raw native.Window, key, scancode, action, mods int32) {
		cb(RawWindow(raw), Key(key), int(scancode), Action(action), ModifierKey(mods))
	})
	Logger().Debug("glfw: key callback set", "window", w.raw)
}

// SetMouseCallback replaces the window's cursor position callback. nil
// removes it.
func (w *Window) SetMouseCallback(cb MouseCallback) {
	if cb == nil {
		w.ctx.lib.SetCursorPosCallback(w.raw, nil)
		return
	}
	w.ctx.lib.SetCursorPosCallback(w.raw, func(raw native.Window, x, y float64) {
		cb(RawWindow(raw), x, y)
	})
	Logger().Debug("glfw: mouse callback set", "window", w.raw)
}

// dispatchError is installed as the native error callback for the lifetime
// of the context.
func (c *Context) dispatchError(code int32, description unsafe.Pointer) {
	var err error
	e, perr := ParseError(code, description)
	if perr != nil {
		err = perr
	} else {
		err = e
	}

	c.mu.Lock()
	h := c.handler
	c.mu.Unlock()

	if h == nil {
		Logger().Warn("glfw: unhandled native error", "error", err)
		return
	}
	h(err)
}
