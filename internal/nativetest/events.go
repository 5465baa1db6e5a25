// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package nativetest

import (
	"unsafe"

	"github.com/gogpu/glfw/internal/native"
)

// EmitKey invokes the key callback registered for w, as the native event
// pump would. It reports whether a callback was registered.
func (l *Library) EmitKey(w native.Window, key, scancode, action, mods int32) bool {
	l.mu.Lock()
	var fn native.KeyFunc
	if win, ok := l.windows[w]; ok {
		fn = win.keyFn
	}
	l.mu.Unlock()

	if fn == nil {
		return false
	}
	fn(w, key, scancode, action, mods)
	return true
}

// EmitCursorPos invokes the cursor position callback registered for w.
func (l *Library) EmitCursorPos(w native.Window, x, y float64) bool {
	l.mu.Lock()
	var fn native.CursorPosFunc
	if win, ok := l.windows[w]; ok {
		fn = win.cursorFn
	}
	l.mu.Unlock()

	if fn == nil {
		return false
	}
	fn(w, x, y)
	return true
}

// EmitError invokes the error callback with description passed as a
// NUL-terminated buffer, the way the native library hands it over.
func (l *Library) EmitError(code int32, description string) bool {
	l.mu.Lock()
	fn := l.errorFn
	l.mu.Unlock()

	if fn == nil {
		return false
	}
	buf := append([]byte(description), 0)
	fn(code, unsafe.Pointer(&buf[0]))
	return true
}

// HasKeyCallback reports whether a key callback is registered for w.
func (l *Library) HasKeyCallback(w native.Window) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	win, ok := l.windows[w]
	return ok && win.keyFn != nil
}

// HasCursorPosCallback reports whether a cursor callback is registered for w.
func (l *Library) HasCursorPosCallback(w native.Window) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	win, ok := l.windows[w]
	return ok && win.cursorFn != nil
}

// HasErrorCallback reports whether an error callback is installed.
func (l *Library) HasErrorCallback() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.errorFn != nil
}
