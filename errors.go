package glfw

import "errors"

// Package errors.
var (
	// ErrLibraryUnavailable is returned by Init when the native library
	// cannot be loaded.
	ErrLibraryUnavailable = errors.New("glfw: native library unavailable")

	// ErrInitFailed is returned by Init when native initialization reports failure.
	ErrInitFailed = errors.New("glfw: initialization failed")

	// ErrTerminated is returned by Init after Terminate has run. The native
	// library is initialized at most once per process.
	ErrTerminated = errors.New("glfw: context terminated")

	// ErrUnknownErrorCode is matched by errors reported with a code outside
	// the defined ErrorCode set.
	ErrUnknownErrorCode = errors.New("glfw: unknown error code")
)
