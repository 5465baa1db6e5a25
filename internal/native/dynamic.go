// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package native

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"
)

// EnvLibraryPath overrides the shared library searched by the dynamic loader.
const EnvLibraryPath = "GOGPU_GLFW_LIBRARY"

// ErrLibraryNotFound is returned when no candidate shared library could be loaded.
var ErrLibraryNotFound = errors.New("native: GLFW shared library not found")

func init() {
	RegisterLoader(LoaderDynamic, OpenDynamic)
}

// libraryCandidates returns the shared library names tried in order.
func libraryCandidates(path string) []string {
	if path != "" {
		return []string{path}
	}
	if env := os.Getenv(EnvLibraryPath); env != "" {
		return []string{env}
	}
	switch runtime.GOOS {
	case "windows":
		return []string{"glfw3.dll", "glfw.dll"}
	case "darwin":
		return []string{
			"libglfw.3.dylib",
			"libglfw.dylib",
			"/opt/homebrew/lib/libglfw.3.dylib",
			"/usr/local/lib/libglfw.3.dylib",
		}
	default:
		return []string{"libglfw.so.3", "libglfw.so"}
	}
}

// proc is one bound native entry point with its prepared call interface.
type proc struct {
	name string
	fn   unsafe.Pointer
	cif  types.CallInterface
}

// dynamic implements Library by calling into the GLFW shared library
// through goffi. No cgo is involved.
type dynamic struct {
	handle unsafe.Pointer
	path   string
	logger atomic.Pointer[slog.Logger]
	closed bool

	glfwInit                  proc
	glfwTerminate             proc
	glfwWindowHint            proc
	glfwDefaultWindowHints    proc
	glfwSetErrorCallback      proc
	glfwCreateWindow          proc
	glfwDestroyWindow         proc
	glfwPollEvents            proc
	glfwWaitEvents            proc
	glfwWaitEventsTimeout     proc
	glfwPostEmptyEvent        proc
	glfwSwapBuffers           proc
	glfwSwapInterval          proc
	glfwMakeContextCurrent    proc
	glfwGetCurrentContext     proc
	glfwGetProcAddress        proc
	glfwSetWindowUserPointer  proc
	glfwGetWindowUserPointer  proc
	glfwSetKeyCallback        proc
	glfwSetCursorPosCallback  proc
	glfwGetPrimaryMonitor     proc
	glfwGetVideoMode          proc
	glfwWindowShouldClose     proc
	glfwSetWindowShouldClose  proc
	glfwGetWindowSize         proc
	glfwGetWindowContentScale proc
	glfwSetWindowTitle        proc
	glfwSetWindowIcon         proc
	glfwGetTime               proc
	glfwSetTime               proc

	mu        sync.Mutex
	keyFns    map[Window]KeyFunc
	cursorFns map[Window]CursorPosFunc
	errorFn   ErrorFunc
}

var _ Library = (*dynamic)(nil)

// OpenDynamic loads the GLFW shared library and binds every entry point the
// Library interface needs. A missing symbol fails the whole load.
func OpenDynamic(path string) (Library, error) {
	var (
		handle unsafe.Pointer
		loaded string
		errs   []error
	)
	for _, name := range libraryCandidates(path) {
		h, err := ffi.LoadLibrary(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		handle, loaded = h, name
		break
	}
	if handle == nil {
		return nil, fmt.Errorf("%w: %w", ErrLibraryNotFound, errors.Join(errs...))
	}

	l := &dynamic{
		handle:    handle,
		path:      loaded,
		keyFns:    make(map[Window]KeyFunc),
		cursorFns: make(map[Window]CursorPosFunc),
	}
	l.logger.Store(slog.New(slog.DiscardHandler))
	if err := l.bindAll(); err != nil {
		_ = ffi.FreeLibrary(handle)
		return nil, err
	}
	return l, nil
}

var (
	ptrT    = types.PointerTypeDescriptor
	intT    = types.SInt32TypeDescriptor
	doubleT = types.DoubleTypeDescriptor
	voidT   = types.VoidTypeDescriptor
)

func (l *dynamic) bindAll() error {
	table := []struct {
		p    *proc
		name string
		ret  *types.TypeDescriptor
		args []*types.TypeDescriptor
	}{
		{&l.glfwInit, "glfwInit", intT, nil},
		{&l.glfwTerminate, "glfwTerminate", voidT, nil},
		{&l.glfwWindowHint, "glfwWindowHint", voidT, []*types.TypeDescriptor{intT, intT}},
		{&l.glfwDefaultWindowHints, "glfwDefaultWindowHints", voidT, nil},
		{&l.glfwSetErrorCallback, "glfwSetErrorCallback", ptrT, []*types.TypeDescriptor{ptrT}},
		{&l.glfwCreateWindow, "glfwCreateWindow", ptrT, []*types.TypeDescriptor{intT, intT, ptrT, ptrT, ptrT}},
		{&l.glfwDestroyWindow, "glfwDestroyWindow", voidT, []*types.TypeDescriptor{ptrT}},
		{&l.glfwPollEvents, "glfwPollEvents", voidT, nil},
		{&l.glfwWaitEvents, "glfwWaitEvents", voidT, nil},
		{&l.glfwWaitEventsTimeout, "glfwWaitEventsTimeout", voidT, []*types.TypeDescriptor{doubleT}},
		{&l.glfwPostEmptyEvent, "glfwPostEmptyEvent", voidT, nil},
		{&l.glfwSwapBuffers, "glfwSwapBuffers", voidT, []*types.TypeDescriptor{ptrT}},
		{&l.glfwSwapInterval, "glfwSwapInterval", voidT, []*types.TypeDescriptor{intT}},
		{&l.glfwMakeContextCurrent, "glfwMakeContextCurrent", voidT, []*types.TypeDescriptor{ptrT}},
		{&l.glfwGetCurrentContext, "glfwGetCurrentContext", ptrT, nil},
		{&l.glfwGetProcAddress, "glfwGetProcAddress", ptrT, []*types.TypeDescriptor{ptrT}},
		{&l.glfwSetWindowUserPointer, "glfwSetWindowUserPointer", voidT, []*types.TypeDescriptor{ptrT, ptrT}},
		{&l.glfwGetWindowUserPointer, "glfwGetWindowUserPointer", ptrT, []*types.TypeDescriptor{ptrT}},
		{&l.glfwSetKeyCallback, "glfwSetKeyCallback", ptrT, []*types.TypeDescriptor{ptrT, ptrT}},
		{&l.glfwSetCursorPosCallback, "glfwSetCursorPosCallback", ptrT, []*types.TypeDescriptor{ptrT, ptrT}},
		{&l.glfwGetPrimaryMonitor, "glfwGetPrimaryMonitor", ptrT, nil},
		{&l.glfwGetVideoMode, "glfwGetVideoMode", ptrT, []*types.TypeDescriptor{ptrT}},
		{&l.glfwWindowShouldClose, "glfwWindowShouldClose", intT, []*types.TypeDescriptor{ptrT}},
		{&l.glfwSetWindowShouldClose, "glfwSetWindowShouldClose", voidT, []*types.TypeDescriptor{ptrT, intT}},
		{&l.glfwGetWindowSize, "glfwGetWindowSize", voidT, []*types.TypeDescriptor{ptrT, ptrT, ptrT}},
		{&l.glfwGetWindowContentScale, "glfwGetWindowContentScale", voidT, []*types.TypeDescriptor{ptrT, ptrT, ptrT}},
		{&l.glfwSetWindowTitle, "glfwSetWindowTitle", voidT, []*types.TypeDescriptor{ptrT, ptrT}},
		{&l.glfwSetWindowIcon, "glfwSetWindowIcon", voidT, []*types.TypeDescriptor{ptrT, intT, ptrT}},
		{&l.glfwGetTime, "glfwGetTime", doubleT, nil},
		{&l.glfwSetTime, "glfwSetTime", voidT, []*types.TypeDescriptor{doubleT}},
	}

	for _, e := range table {
		sym, err := ffi.GetSymbol(l.handle, e.name)
		if err != nil {
			return fmt.Errorf("native: bind %s: %w", e.name, err)
		}
		e.p.name = e.name
		e.p.fn = sym
		if err := ffi.PrepareCallInterface(&e.p.cif, types.DefaultCall, e.ret, e.args); err != nil {
			return fmt.Errorf("native: prepare %s: %w", e.name, err)
		}
	}
	return nil
}

// call invokes p. Failures are logged; the native API has no error returns
// at this level, problems surface through the error callback instead.
func (l *dynamic) call(p *proc, ret unsafe.Pointer, args ...unsafe.Pointer) {
	if l.closed {
		return
	}
	if err := ffi.CallFunction(&p.cif, p.fn, ret, args); err != nil {
		l.logger.Load().Warn("native: call failed", "symbol", p.name, "error", err)
	}
}

// SetLogger implements the logger propagation hook used by package glfw.
func (l *dynamic) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	l.logger.Store(logger)
}

func (l *dynamic) Name() string { return "dynamic:" + l.path }

func (l *dynamic) Init() bool {
	installTrampolines()
	active.Store(l)
	var ok int32
	l.call(&l.glfwInit, unsafe.Pointer(&ok))
	if ok != True {
		return false
	}
	l.logger.Load().Info("native: GLFW initialized", "library", l.path)
	return true
}

func (l *dynamic) Terminate() {
	l.call(&l.glfwTerminate, nil)
	active.CompareAndSwap(l, nil)
	l.closed = true
	if err := ffi.FreeLibrary(l.handle); err != nil {
		l.logger.Load().Warn("native: unload failed", "library", l.path, "error", err)
	}
}

func (l *dynamic) WindowHint(hint, value int32) {
	l.call(&l.glfwWindowHint, nil, unsafe.Pointer(&hint), unsafe.Pointer(&value))
}

func (l *dynamic) DefaultWindowHints() {
	l.call(&l.glfwDefaultWindowHints, nil)
}

func (l *dynamic) SetErrorCallback(fn ErrorFunc) {
	l.mu.Lock()
	l.errorFn = fn
	l.mu.Unlock()

	installTrampolines()
	active.Store(l)
	cb := uintptr(0)
	if fn != nil {
		cb = trampolines.errorFn
	}
	var prev unsafe.Pointer
	l.call(&l.glfwSetErrorCallback, unsafe.Pointer(&prev), unsafe.Pointer(&cb))
}

func (l *dynamic) CreateWindow(width, height int32, title string, monitor Monitor, share Window) Window {
	ctitle := cString(title)
	titlePtr := unsafe.Pointer(&ctitle[0])
	var w uintptr
	l.call(&l.glfwCreateWindow, unsafe.Pointer(&w),
		unsafe.Pointer(&width), unsafe.Pointer(&height), unsafe.Pointer(&titlePtr),
		unsafe.Pointer(&monitor), unsafe.Pointer(&share))
	runtime.KeepAlive(ctitle)
	return Window(w)
}

func (l *dynamic) DestroyWindow(w Window) {
	l.mu.Lock()
	delete(l.keyFns, w)
	delete(l.cursorFns, w)
	l.mu.Unlock()
	l.call(&l.glfwDestroyWindow, nil, unsafe.Pointer(&w))
}

func (l *dynamic) PollEvents() { l.call(&l.glfwPollEvents, nil) }

func (l *dynamic) WaitEvents() { l.call(&l.glfwWaitEvents, nil) }

func (l *dynamic) WaitEventsTimeout(timeout float64) {
	l.call(&l.glfwWaitEventsTimeout, nil, unsafe.Pointer(&timeout))
}

func (l *dynamic) PostEmptyEvent() { l.call(&l.glfwPostEmptyEvent, nil) }

func (l *dynamic) SwapBuffers(w Window) {
	l.call(&l.glfwSwapBuffers, nil, unsafe.Pointer(&w))
}

func (l *dynamic) SwapInterval(interval int32) {
	l.call(&l.glfwSwapInterval, nil, unsafe.Pointer(&interval))
}

func (l *dynamic) MakeContextCurrent(w Window) {
	l.call(&l.glfwMakeContextCurrent, nil, unsafe.Pointer(&w))
}

func (l *dynamic) GetCurrentContext() Window {
	var w uintptr
	l.call(&l.glfwGetCurrentContext, unsafe.Pointer(&w))
	return Window(w)
}

func (l *dynamic) GetProcAddress(name *byte) unsafe.Pointer {
	if name == nil {
		return nil
	}
	namePtr := unsafe.Pointer(name)
	var fn unsafe.Pointer
	l.call(&l.glfwGetProcAddress, unsafe.Pointer(&fn), unsafe.Pointer(&namePtr))
	return fn
}

func (l *dynamic) SetWindowUserPointer(w Window, ptr uintptr) {
	l.call(&l.glfwSetWindowUserPointer, nil, unsafe.Pointer(&w), unsafe.Pointer(&ptr))
}

func (l *dynamic) GetWindowUserPointer(w Window) uintptr {
	var ptr uintptr
	l.call(&l.glfwGetWindowUserPointer, unsafe.Pointer(&ptr), unsafe.Pointer(&w))
	return ptr
}

func (l *dynamic) SetKeyCallback(w Window, fn KeyFunc) {
	l.mu.Lock()
	if fn == nil {
		delete(l.keyFns, w)
	} else {
		l.keyFns[w] = fn
	}
	l.mu.Unlock()

	installTrampolines()
	cb := uintptr(0)
	if fn != nil {
		cb = trampolines.key
	}
	var prev unsafe.Pointer
	l.call(&l.glfwSetKeyCallback, unsafe.Pointer(&prev), unsafe.Pointer(&w), unsafe.Pointer(&cb))
}

func (l *dynamic) SetCursorPosCallback(w Window, fn CursorPosFunc) {
	l.mu.Lock()
	if fn == nil {
		delete(l.cursorFns, w)
	} else {
		l.cursorFns[w] = fn
	}
	l.mu.Unlock()

	installTrampolines()
	cb := uintptr(0)
	if fn != nil {
		cb = trampolines.cursorPos
	}
	var prev unsafe.Pointer
	l.call(&l.glfwSetCursorPosCallback, unsafe.Pointer(&prev), unsafe.Pointer(&w), unsafe.Pointer(&cb))
}

func (l *dynamic) GetPrimaryMonitor() Monitor {
	var m uintptr
	l.call(&l.glfwGetPrimaryMonitor, unsafe.Pointer(&m))
	return Monitor(m)
}

func (l *dynamic) GetVideoMode(m Monitor) (VidMode, bool) {
	if m == 0 {
		return VidMode{}, false
	}
	var mode unsafe.Pointer
	l.call(&l.glfwGetVideoMode, unsafe.Pointer(&mode), unsafe.Pointer(&m))
	if mode == nil {
		return VidMode{}, false
	}
	return *(*VidMode)(mode), true
}

func (l *dynamic) WindowShouldClose(w Window) bool {
	var v int32
	l.call(&l.glfwWindowShouldClose, unsafe.Pointer(&v), unsafe.Pointer(&w))
	return v == True
}

func (l *dynamic) SetWindowShouldClose(w Window, value bool) {
	v := False
	if value {
		v = True
	}
	l.call(&l.glfwSetWindowShouldClose, nil, unsafe.Pointer(&w), unsafe.Pointer(&v))
}

func (l *dynamic) GetWindowSize(w Window) (width, height int32) {
	pw, ph := unsafe.Pointer(&width), unsafe.Pointer(&height)
	l.call(&l.glfwGetWindowSize, nil, unsafe.Pointer(&w), unsafe.Pointer(&pw), unsafe.Pointer(&ph))
	return width, height
}

func (l *dynamic) GetWindowContentScale(w Window) (x, y float32) {
	px, py := unsafe.Pointer(&x), unsafe.Pointer(&y)
	l.call(&l.glfwGetWindowContentScale, nil, unsafe.Pointer(&w), unsafe.Pointer(&px), unsafe.Pointer(&py))
	return x, y
}

func (l *dynamic) SetWindowTitle(w Window, title string) {
	ctitle := cString(title)
	titlePtr := unsafe.Pointer(&ctitle[0])
	l.call(&l.glfwSetWindowTitle, nil, unsafe.Pointer(&w), unsafe.Pointer(&titlePtr))
	runtime.KeepAlive(ctitle)
}

// cImage mirrors GLFWimage.
type cImage struct {
	width  int32
	height int32
	pixels unsafe.Pointer
}

func (l *dynamic) SetWindowIcon(w Window, images []Image) {
	var pinner runtime.Pinner
	defer pinner.Unpin()

	count := int32(0)
	var first unsafe.Pointer
	if len(images) > 0 {
		arr := make([]cImage, 0, len(images))
		for _, img := range images {
			if len(img.Pixels) == 0 {
				continue
			}
			pinner.Pin(&img.Pixels[0])
			arr = append(arr, cImage{
				width:  img.Width,
				height: img.Height,
				pixels: unsafe.Pointer(&img.Pixels[0]),
			})
		}
		if len(arr) > 0 {
			pinner.Pin(&arr[0])
			first = unsafe.Pointer(&arr[0])
			count = int32(len(arr))
		}
	}
	l.call(&l.glfwSetWindowIcon, nil, unsafe.Pointer(&w), unsafe.Pointer(&count), unsafe.Pointer(&first))
}

func (l *dynamic) GetTime() float64 {
	var t float64
	l.call(&l.glfwGetTime, unsafe.Pointer(&t))
	return t
}

func (l *dynamic) SetTime(t float64) {
	l.call(&l.glfwSetTime, nil, unsafe.Pointer(&t))
}

func (l *dynamic) dispatchKey(w Window, key, scancode, action, mods int32) {
	l.mu.Lock()
	fn := l.keyFns[w]
	l.mu.Unlock()
	if fn != nil {
		fn(w, key, scancode, action, mods)
	}
}

func (l *dynamic) dispatchCursorPos(w Window, x, y float64) {
	l.mu.Lock()
	fn := l.cursorFns[w]
	l.mu.Unlock()
	if fn != nil {
		fn(w, x, y)
	}
}

func (l *dynamic) dispatchError(code int32, description unsafe.Pointer) {
	l.mu.Lock()
	fn := l.errorFn
	l.mu.Unlock()
	if fn != nil {
		fn(code, description)
	}
}

// cString returns s as a NUL-terminated byte slice.
func cString(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}
