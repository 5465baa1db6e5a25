// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package native

import "unsafe"

// Window is the address of a native GLFWwindow. Zero means no window.
type Window uintptr

// Monitor is the address of a native GLFWmonitor. Zero means no monitor.
type Monitor uintptr

// VidMode mirrors the native GLFWvidmode struct field for field.
type VidMode struct {
	Width       int32
	Height      int32
	RedBits     int32
	GreenBits   int32
	BlueBits    int32
	RefreshRate int32
}

// Image is one icon candidate: Width*Height*4 bytes of non-premultiplied RGBA.
type Image struct {
	Width  int32
	Height int32
	Pixels []byte
}

// KeyFunc matches GLFWkeyfun.
type KeyFunc func(w Window, key, scancode, action, mods int32)

// CursorPosFunc matches GLFWcursorposfun.
type CursorPosFunc func(w Window, x, y float64)

// ErrorFunc matches GLFWerrorfun. The description points at a NUL-terminated
// string owned by the native library and valid only during the call.
type ErrorFunc func(code int32, description unsafe.Pointer)

// Library is the flat native boundary. Every method maps onto one native
// entry point; callbacks are Go functions, the implementation is in charge
// of exposing them to native code.
//
// Implementations are not safe for concurrent use; the native library must
// only be driven from the thread that called Init.
type Library interface {
	// Name identifies the implementation in logs.
	Name() string

	Init() bool
	Terminate()

	WindowHint(hint, value int32)
	DefaultWindowHints()
	SetErrorCallback(fn ErrorFunc)

	// CreateWindow returns zero when the native call fails.
	CreateWindow(width, height int32, title string, monitor Monitor, share Window) Window
	DestroyWindow(w Window)

	PollEvents()
	WaitEvents()
	WaitEventsTimeout(timeout float64)
	PostEmptyEvent()

	SwapBuffers(w Window)
	SwapInterval(interval int32)
	MakeContextCurrent(w Window)
	GetCurrentContext() Window
	GetProcAddress(name *byte) unsafe.Pointer

	SetWindowUserPointer(w Window, ptr uintptr)
	GetWindowUserPointer(w Window) uintptr

	SetKeyCallback(w Window, fn KeyFunc)
	SetCursorPosCallback(w Window, fn CursorPosFunc)

	GetPrimaryMonitor() Monitor
	// GetVideoMode reports false when the native call returns NULL.
	GetVideoMode(m Monitor) (VidMode, bool)

	WindowShouldClose(w Window) bool
	SetWindowShouldClose(w Window, value bool)
	GetWindowSize(w Window) (width, height int32)
	GetWindowContentScale(w Window) (x, y float32)
	SetWindowTitle(w Window, title string)
	SetWindowIcon(w Window, images []Image)

	GetTime() float64
	SetTime(t float64)
}

// Boolean values used by the native API.
const (
	False int32 = 0
	True  int32 = 1
)
