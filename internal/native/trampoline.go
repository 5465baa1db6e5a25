// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package native

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
)

// goffi never releases a callback slot, so each callback kind gets exactly
// one trampoline per process. The trampolines forward to the library that
// is currently active, which looks up the per-window Go function.
var (
	trampolineOnce sync.Once
	trampolines    struct {
		key       uintptr
		cursorPos uintptr
		errorFn   uintptr
	}
	active atomic.Pointer[dynamic]
)

func installTrampolines() {
	trampolineOnce.Do(func() {
		trampolines.key = ffi.NewCallback(keyTrampoline)
		trampolines.cursorPos = ffi.NewCallback(cursorPosTrampoline)
		trampolines.errorFn = ffi.NewCallback(errorTrampoline)
	})
}

func keyTrampoline(w uintptr, key, scancode, action, mods int32) {
	if l := active.Load(); l != nil {
		l.dispatchKey(Window(w), key, scancode, action, mods)
	}
}

func cursorPosTrampoline(w uintptr, x, y float64) {
	if l := active.Load(); l != nil {
		l.dispatchCursorPos(Window(w), x, y)
	}
}

func errorTrampoline(code int32, description unsafe.Pointer) {
	if l := active.Load(); l != nil {
		l.dispatchError(code, description)
	}
}
