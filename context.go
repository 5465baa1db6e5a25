package glfw

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gogpu/glfw/internal/native"
)

// Context marks the native library as initialized. At most one exists per
// process; every window is created through it.
//
// Context methods, like the rest of the package, must be called from the
// goroutine that ran Init, locked to its OS thread:
//
//	func init() { runtime.LockOSThread() }
type Context struct {
	lib native.Library

	mu      sync.Mutex
	handler ErrorHandler
	owned   map[native.Window]*Window

	terminateOnce sync.Once
}

var (
	// instance holds the live context. Reads take the fast path; Init and
	// Terminate serialize on instanceMu.
	instance   atomic.Pointer[Context]
	instanceMu sync.Mutex
	terminated atomic.Bool
)

// Init returns the process-wide context, loading and initializing the
// native library on the first successful call. Later calls return the same
// context without touching the native library again; their options are
// ignored. Init is safe for concurrent use.
//
// A failed Init leaves nothing behind, so it may be retried (for example
// with a different WithLibraryPath). After Terminate, Init returns
// ErrTerminated.
func Init(opts ...InitOption) (*Context, error) {
	if c := instance.Load(); c != nil {
		return c, nil
	}

	instanceMu.Lock()
	defer instanceMu.Unlock()

	if c := instance.Load(); c != nil {
		return c, nil
	}
	if terminated.Load() {
		return nil, ErrTerminated
	}

	o := defaultInitOptions()
	for _, opt := range opts {
		opt(&o)
	}

	lib := o.library
	if lib == nil {
		l, err := native.Open(o.loader, o.libraryPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLibraryUnavailable, err)
		}
		lib = l
	}

	c := &Context{
		lib:     lib,
		handler: o.errorHandler,
		owned:   make(map[native.Window]*Window),
	}
	propagateLogger(c, Logger())

	// Installed before init so init errors reach the handler.
	lib.SetErrorCallback(c.dispatchError)
	if !lib.Init() {
		lib.SetErrorCallback(nil)
		// Terminate is valid on an uninitialized library and unloads it.
		lib.Terminate()
		Logger().Warn("glfw: native init failed", "library", lib.Name())
		return nil, ErrInitFailed
	}

	instance.Store(c)
	Logger().Info("glfw: initialized", "library", lib.Name())
	return c, nil
}

// MustInit is like Init but panics on error.
func MustInit(opts ...InitOption) *Context {
	c, err := Init(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns the context if Init has succeeded and Terminate has not run.
// It never initializes.
func Get() (*Context, bool) {
	c := instance.Load()
	return c, c != nil
}

// Terminate destroys every remaining owned window and shuts the native
// library down. It runs at most once; later calls do nothing. Windows,
// monitors and loaders obtained from c must not be used afterwards.
func (c *Context) Terminate() {
	c.terminateOnce.Do(func() {
		instanceMu.Lock()
		terminated.Store(true)
		instance.CompareAndSwap(c, nil)
		instanceMu.Unlock()

		c.mu.Lock()
		remaining := make([]*Window, 0, len(c.owned))
		for _, w := range c.owned {
			remaining = append(remaining, w)
		}
		c.mu.Unlock()
		for _, w := range remaining {
			w.Destroy()
		}

		c.lib.SetErrorCallback(nil)
		c.lib.Terminate()
		Logger().Info("glfw: terminated", "destroyed", len(remaining))
	})
}

// SetErrorHandler installs h as the receiver of asynchronous native errors,
// replacing any previous handler. h gets an *Error, or an error matching
// ErrUnknownErrorCode for codes outside the defined set. A nil h removes the
// handler; errors are then logged at warn level.
func (c *Context) SetErrorHandler(h ErrorHandler) {
	c.mu.Lock()
	c.handler = h
	c.mu.Unlock()
}

// PollEvents processes pending events and returns immediately. Callbacks
// run synchronously inside the call.
func (c *Context) PollEvents() {
	c.lib.PollEvents()
}

// WaitEvents blocks until at least one event arrives, then processes all
// pending events.
func (c *Context) WaitEvents() {
	c.lib.WaitEvents()
}

// WaitEventsTimeout is like WaitEvents but returns after d even when no
// event arrived. d must be positive.
func (c *Context) WaitEventsTimeout(d time.Duration) {
	c.lib.WaitEventsTimeout(d.Seconds())
}

// PostEmptyEvent wakes a WaitEvents call. Unlike the rest of the API it may
// be called from any goroutine.
func (c *Context) PostEmptyEvent() {
	c.lib.PostEmptyEvent()
}

// SetSwapInterval sets how many screen refreshes Update waits for before
// swapping. It applies to the current window's context. Negative values
// request adaptive vsync where supported; n is clamped to the native int
// range.
func (c *Context) SetSwapInterval(n int) {
	c.lib.SwapInterval(int32(min(max(int64(n), math.MinInt32), math.MaxInt32)))
}

// Time returns the native timer in seconds since Init, or since the last
// SetTime.
func (c *Context) Time() float64 {
	return c.lib.GetTime()
}

// SetTime resets the native timer to t seconds.
func (c *Context) SetTime(t float64) {
	c.lib.SetTime(t)
}

// CurrentWindow returns a borrowed wrapper of the window whose context is
// current on the calling thread.
func (c *Context) CurrentWindow() (*Window, bool) {
	raw := c.lib.GetCurrentContext()
	if raw == 0 {
		return nil, false
	}
	return borrow(c, raw), true
}

// ClearCurrent detaches any current context from the calling thread.
func (c *Context) ClearCurrent() {
	c.lib.MakeContextCurrent(0)
}

func (c *Context) track(w *Window) {
	c.mu.Lock()
	c.owned[w.raw] = w
	c.mu.Unlock()
}

func (c *Context) forget(w *Window) {
	c.mu.Lock()
	delete(c.owned, w.raw)
	c.mu.Unlock()
}
