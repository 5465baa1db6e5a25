package glfw

import (
	"errors"
	"testing"
	"unsafe"
)

func cstr(s string) unsafe.Pointer {
	b := append([]byte(s), 0)
	return unsafe.Pointer(&b[0])
}

func TestParseError_AllCodes(t *testing.T) {
	tests := []struct {
		raw  int32
		want ErrorCode
		name string
	}{
		{0x00010001, NotInitialized, "NotInitialized"},
		{0x00010002, NoCurrentContext, "NoCurrentContext"},
		{0x00010003, InvalidEnum, "InvalidEnum"},
		{0x00010004, InvalidValue, "InvalidValue"},
		{0x00010005, OutOfMemory, "OutOfMemory"},
		{0x00010006, APIUnavailable, "APIUnavailable"},
		{0x00010007, VersionUnavailable, "VersionUnavailable"},
		{0x00010008, PlatformError, "PlatformError"},
		{0x00010009, FormatUnavailable, "FormatUnavailable"},
		{0x0001000A, NoWindowContext, "NoWindowContext"},
		{0x0001000B, CursorUnavailable, "CursorUnavailable"},
		{0x0001000C, FeatureUnavailable, "FeatureUnavailable"},
		{0x0001000D, FeatureUnimplemented, "FeatureUnimplemented"},
		{0x0001000E, PlatformUnavailable, "PlatformUnavailable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := ParseError(tt.raw, cstr("desc "+tt.name))
			if err != nil {
				t.Fatalf("ParseError(%#x) = %v", tt.raw, err)
			}
			if e.Code != tt.want {
				t.Errorf("Code = %v, want %v", e.Code, tt.want)
			}
			if e.Description != "desc "+tt.name {
				t.Errorf("Description = %q", e.Description)
			}
			if e.Code.String() != tt.name {
				t.Errorf("String() = %q, want %q", e.Code.String(), tt.name)
			}
		})
	}
}

func TestParseError_UnknownCode(t *testing.T) {
	for _, code := range []int32{0, 1, 0x00010000, 0x0001000F, -1} {
		e, err := ParseError(code, cstr("x"))
		if e != nil {
			t.Errorf("ParseError(%#x) returned %v, want nil", code, e)
		}
		if !errors.Is(err, ErrUnknownErrorCode) {
			t.Errorf("ParseError(%#x) error = %v, want ErrUnknownErrorCode", code, err)
		}
		var u *UnknownCodeError
		if !errors.As(err, &u) || u.Code != code {
			t.Errorf("ParseError(%#x) error does not carry the raw code", code)
		}
	}
}

func TestParseError_NilDescription(t *testing.T) {
	e, err := ParseError(int32(InvalidValue), nil)
	if err != nil {
		t.Fatal(err)
	}
	if e.Description != "" {
		t.Errorf("Description = %q, want empty", e.Description)
	}
	if e.Error() != "glfw: InvalidValue" {
		t.Errorf("Error() = %q", e.Error())
	}
}

func TestParseError_CopiesDescription(t *testing.T) {
	buf := []byte("volatile\x00")
	e, err := ParseError(int32(PlatformError), unsafe.Pointer(&buf[0]))
	if err != nil {
		t.Fatal(err)
	}
	copy(buf, "XXXXXXXX")
	if e.Description != "volatile" {
		t.Errorf("Description = %q after the native buffer changed", e.Description)
	}
}

func TestError_Format(t *testing.T) {
	e := &Error{Code: VersionUnavailable, Description: "GL 4.6 requested"}
	if got, want := e.Error(), "glfw: VersionUnavailable: GL 4.6 requested"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if got := ErrorCode(0x1234).String(); got != "ErrorCode(0x00001234)" {
		t.Errorf("unknown String() = %q", got)
	}
}

func TestError_Is(t *testing.T) {
	err := error(&Error{Code: NoCurrentContext, Description: "a"})
	if !errors.Is(err, &Error{Code: NoCurrentContext}) {
		t.Error("same code does not match")
	}
	if errors.Is(err, &Error{Code: InvalidEnum}) {
		t.Error("different code matches")
	}
}
