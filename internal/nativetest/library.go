// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package nativetest provides an in-memory native.Library for tests.
//
// The stub never touches a real windowing system. It records every call
// that matters to the ownership layer (init, destroy, hints, user pointer
// writes) and lets tests drive the event loop by emitting callbacks.
package nativetest

import (
	"log/slog"
	"sync"
	"unsafe"

	"github.com/gogpu/glfw/internal/native"
)

// firstWindow is the address handed out for the first window. Addresses are
// never zero and never reused.
const firstWindow native.Window = 0x1000

// Window is the stub state of one native window.
type Window struct {
	Title       string
	Width       int32
	Height      int32
	Monitor     native.Monitor
	Share       native.Window
	UserPointer uintptr
	ShouldClose bool
	Swaps       int
	Destroyed   bool
	Icons       []native.Image
	ScaleX      float32
	ScaleY      float32

	keyFn    native.KeyFunc
	cursorFn native.CursorPosFunc
}

// Library is a native.Library double. The zero value is not usable; call New.
type Library struct {
	mu sync.Mutex

	// FailInit makes Init report failure.
	FailInit bool
	// FailCreate makes CreateWindow return zero.
	FailCreate bool
	// PrimaryMonitor is returned by GetPrimaryMonitor. Zero means none.
	PrimaryMonitor native.Monitor
	// Modes holds the current video mode per monitor.
	Modes map[native.Monitor]native.VidMode
	// Procs resolves names passed to GetProcAddress.
	Procs map[string]unsafe.Pointer

	InitCalls      int
	TerminateCalls int
	DestroyCalls   int
	PollCalls      int
	WaitCalls      int
	WaitTimeouts   []float64
	EmptyEvents    int
	ProcLookups    int
	CallbackClears int
	Hints          map[int32]int32
	HintResets     int
	Interval       int32
	Current        native.Window
	Time           float64
	Logger         *slog.Logger

	windows map[native.Window]*Window
	order   []native.Window
	next    native.Window
	errorFn native.ErrorFunc
}

var _ native.Library = (*Library)(nil)

// New returns a stub with a 1920x1080@60 primary monitor.
func New() *Library {
	const monitor native.Monitor = 0x10
	return &Library{
		PrimaryMonitor: monitor,
		Modes: map[native.Monitor]native.VidMode{
			monitor: {Width: 1920, Height: 1080, RedBits: 8, GreenBits: 8, BlueBits: 8, RefreshRate: 60},
		},
		Procs:   make(map[string]unsafe.Pointer),
		Hints:   make(map[int32]int32),
		windows: make(map[native.Window]*Window),
		next:    firstWindow,
	}
}

// SetLogger records the logger handed down by the glfw package.
func (l *Library) SetLogger(logger *slog.Logger) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Logger = logger
}

// Name implements native.Library.
func (l *Library) Name() string { return "nativetest" }

// Init implements native.Library.
func (l *Library) Init() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.InitCalls++
	return !l.FailInit
}

// Terminate implements native.Library.
func (l *Library) Terminate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.TerminateCalls++
}

// WindowHint implements native.Library.
func (l *Library) WindowHint(hint, value int32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Hints[hint] = value
}

// DefaultWindowHints implements native.Library.
func (l *Library) DefaultWindowHints() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Hints = make(map[int32]int32)
	l.HintResets++
}

// SetErrorCallback implements native.Library.
func (l *Library) SetErrorCallback(fn native.ErrorFunc) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errorFn = fn
}

// CreateWindow implements native.Library.
func (l *Library) CreateWindow(width, height int32, title string, monitor native.Monitor, share native.Window) native.Window {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.FailCreate {
		return 0
	}
	w := l.next
	l.next += 0x100
	l.windows[w] = &Window{
		Title:   title,
		Width:   width,
		Height:  height,
		Monitor: monitor,
		Share:   share,
		ScaleX:  1,
		ScaleY:  1,
	}
	l.order = append(l.order, w)
	return w
}

// DestroyWindow implements native.Library.
func (l *Library) DestroyWindow(w native.Window) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.DestroyCalls++
	if win, ok := l.windows[w]; ok {
		win.Destroyed = true
		win.keyFn = nil
		win.cursorFn = nil
	}
	if l.Current == w {
		l.Current = 0
	}
}

// PollEvents implements native.Library.
func (l *Library) PollEvents() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.PollCalls++
}

// WaitEvents implements native.Library.
func (l *Library) WaitEvents() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.WaitCalls++
}

// WaitEventsTimeout implements native.Library.
func (l *Library) WaitEventsTimeout(timeout float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.WaitTimeouts = append(l.WaitTimeouts, timeout)
}

// PostEmptyEvent implements native.Library.
func (l *Library) PostEmptyEvent() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.EmptyEvents++
}

// SwapBuffers implements native.Library.
func (l *Library) SwapBuffers(w native.Window) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if win, ok := l.windows[w]; ok {
		win.Swaps++
	}
}

// SwapInterval implements native.Library.
func (l *Library) SwapInterval(interval int32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Interval = interval
}

// MakeContextCurrent implements native.Library.
func (l *Library) MakeContextCurrent(w native.Window) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Current = w
}

// GetCurrentContext implements native.Library.
func (l *Library) GetCurrentContext() native.Window {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.Current
}

// GetProcAddress implements native.Library.
func (l *Library) GetProcAddress(name *byte) unsafe.Pointer {
	if name == nil {
		return nil
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(name), n)) != 0 {
		n++
	}
	key := string(unsafe.Slice(name, n))

	l.mu.Lock()
	defer l.mu.Unlock()
	l.ProcLookups++
	return l.Procs[key]
}

// SetWindowUserPointer implements native.Library.
func (l *Library) SetWindowUserPointer(w native.Window, ptr uintptr) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if win, ok := l.windows[w]; ok {
		win.UserPointer = ptr
	}
}

// GetWindowUserPointer implements native.Library.
func (l *Library) GetWindowUserPointer(w native.Window) uintptr {
	l.mu.Lock()
	defer l.mu.Unlock()
	if win, ok := l.windows[w]; ok {
		return win.UserPointer
	}
	return 0
}

// SetKeyCallback implements native.Library.
func (l *Library) SetKeyCallback(w native.Window, fn native.KeyFunc) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if fn == nil {
		l.CallbackClears++
	}
	if win, ok := l.windows[w]; ok {
		win.keyFn = fn
	}
}

// SetCursorPosCallback implements native.Library.
func (l *Library) SetCursorPosCallback(w native.Window, fn native.CursorPosFunc) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if fn == nil {
		l.CallbackClears++
	}
	if win, ok := l.windows[w]; ok {
		win.cursorFn = fn
	}
}

// GetPrimaryMonitor implements native.Library.
func (l *Library) GetPrimaryMonitor() native.Monitor {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.PrimaryMonitor
}

// GetVideoMode implements native.Library.
func (l *Library) GetVideoMode(m native.Monitor) (native.VidMode, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	mode, ok := l.Modes[m]
	return mode, ok
}

// WindowShouldClose implements native.Library.
func (l *Library) WindowShouldClose(w native.Window) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if win, ok := l.windows[w]; ok {
		return win.ShouldClose
	}
	return false
}

// SetWindowShouldClose implements native.Library.
func (l *Library) SetWindowShouldClose(w native.Window, value bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if win, ok := l.windows[w]; ok {
		win.ShouldClose = value
	}
}

// GetWindowSize implements native.Library.
func (l *Library) GetWindowSize(w native.Window) (width, height int32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if win, ok := l.windows[w]; ok {
		return win.Width, win.Height
	}
	return 0, 0
}

// GetWindowContentScale implements native.Library.
func (l *Library) GetWindowContentScale(w native.Window) (x, y float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if win, ok := l.windows[w]; ok {
		return win.ScaleX, win.ScaleY
	}
	return 0, 0
}

// SetWindowTitle implements native.Library.
func (l *Library) SetWindowTitle(w native.Window, title string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if win, ok := l.windows[w]; ok {
		win.Title = title
	}
}

// SetWindowIcon implements native.Library.
func (l *Library) SetWindowIcon(w native.Window, images []native.Image) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if win, ok := l.windows[w]; ok {
		win.Icons = images
	}
}

// GetTime implements native.Library.
func (l *Library) GetTime() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.Time
}

// SetTime implements native.Library.
func (l *Library) SetTime(t float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Time = t
}

// Window returns the stub state of w, or nil if w was never created.
func (l *Library) Window(w native.Window) *Window {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.windows[w]
}

// Windows returns every window created so far, in creation order.
func (l *Library) Windows() []native.Window {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]native.Window(nil), l.order...)
}
