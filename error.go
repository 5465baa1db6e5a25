package glfw

import (
	"fmt"
	"unsafe"
)

// ErrorCode is the closed set of error categories reported by GLFW.
// Values equal the native GLFW_* constants.
type ErrorCode int32

const (
	// NotInitialized: a function was called before init or after terminate.
	NotInitialized ErrorCode = 0x00010001
	// NoCurrentContext: the call needs a current OpenGL context.
	NoCurrentContext ErrorCode = 0x00010002
	// InvalidEnum: an enum argument was not a valid value.
	InvalidEnum ErrorCode = 0x00010003
	// InvalidValue: an argument value was out of range.
	InvalidValue ErrorCode = 0x00010004
	// OutOfMemory: a memory allocation failed.
	OutOfMemory ErrorCode = 0x00010005
	// APIUnavailable: the requested client API is not supported.
	APIUnavailable ErrorCode = 0x00010006
	// VersionUnavailable: the requested context version is not available.
	VersionUnavailable ErrorCode = 0x00010007
	// PlatformError: a platform-specific error occurred.
	PlatformError ErrorCode = 0x00010008
	// FormatUnavailable: the requested pixel or clipboard format is not available.
	FormatUnavailable ErrorCode = 0x00010009
	// NoWindowContext: the window has no OpenGL or OpenGL ES context.
	NoWindowContext ErrorCode = 0x0001000A
	// CursorUnavailable: the requested standard cursor shape is not available.
	CursorUnavailable ErrorCode = 0x0001000B
	// FeatureUnavailable: the platform does not provide the requested feature.
	FeatureUnavailable ErrorCode = 0x0001000C
	// FeatureUnimplemented: GLFW does not implement the feature on this platform.
	FeatureUnimplemented ErrorCode = 0x0001000D
	// PlatformUnavailable: no supported platform was found.
	PlatformUnavailable ErrorCode = 0x0001000E
)

var errorCodeNames = map[ErrorCode]string{
	NotInitialized:       "NotInitialized",
	NoCurrentContext:     "NoCurrentContext",
	InvalidEnum:          "InvalidEnum",
	InvalidValue:         "InvalidValue",
	OutOfMemory:          "OutOfMemory",
	APIUnavailable:       "APIUnavailable",
	VersionUnavailable:   "VersionUnavailable",
	PlatformError:        "PlatformError",
	FormatUnavailable:    "FormatUnavailable",
	NoWindowContext:      "NoWindowContext",
	CursorUnavailable:    "CursorUnavailable",
	FeatureUnavailable:   "FeatureUnavailable",
	FeatureUnimplemented: "FeatureUnimplemented",
	PlatformUnavailable:  "PlatformUnavailable",
}

// Valid reports whether c is one of the defined codes.
func (c ErrorCode) Valid() bool {
	_, ok := errorCodeNames[c]
	return ok
}

// String returns the code name, or a hex form for unknown codes.
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ErrorCode(0x%08X)", int32(c))
}

// Error is one asynchronous error reported by the native library.
type Error struct {
	Code        ErrorCode
	Description string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Description == "" {
		return "glfw: " + e.Code.String()
	}
	return "glfw: " + e.Code.String() + ": " + e.Description
}

// Is matches another *Error with the same code, so callers can write
// errors.Is(err, &glfw.Error{Code: glfw.PlatformError}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// UnknownCodeError is returned by ParseError for codes outside the defined set.
type UnknownCodeError struct {
	Code        int32
	Description string
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("glfw: unknown error code 0x%08X: %s", e.Code, e.Description)
}

// Unwrap lets errors.Is match ErrUnknownErrorCode.
func (e *UnknownCodeError) Unwrap() error { return ErrUnknownErrorCode }

// ParseError decodes the arguments the native error callback receives.
// description must be nil or point at a NUL-terminated string valid for the
// duration of the call; the returned value owns a copy of it.
//
// Codes outside the defined set yield an *UnknownCodeError, never a
// fabricated ErrorCode.
func ParseError(code int32, description unsafe.Pointer) (*Error, error) {
	desc := goString(description)
	c := ErrorCode(code)
	if !c.Valid() {
		return nil, &UnknownCodeError{Code: code, Description: desc}
	}
	return &Error{Code: c, Description: desc}, nil
}

// goString copies a NUL-terminated native string.
func goString(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(p), n))
}
