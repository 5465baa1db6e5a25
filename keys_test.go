package glfw

import (
	"testing"

	"github.com/gogpu/gpucontext"
)

func TestKey_GPUKey(t *testing.T) {
	tests := []struct {
		key  Key
		want gpucontext.Key
	}{
		{KeyA, gpucontext.KeyA},
		{KeyM, gpucontext.KeyM},
		{KeyZ, gpucontext.KeyZ},
		{Key0, gpucontext.Key0},
		{Key9, gpucontext.Key9},
		{KeyF1, gpucontext.KeyF1},
		{KeyF12, gpucontext.KeyF12},
		{KeyKP0, gpucontext.KeyNumpad0},
		{KeyKP9, gpucontext.KeyNumpad9},
		{KeyKPEnter, gpucontext.KeyNumpadEnter},
		{KeyEscape, gpucontext.KeyEscape},
		{KeySpace, gpucontext.KeySpace},
		{KeyGraveAccent, gpucontext.KeyGrave},
		{KeyLeft, gpucontext.KeyLeft},
		{KeyRightSuper, gpucontext.KeyRightSuper},
		{KeyF25, gpucontext.KeyUnknown},
		{KeyKPEqual, gpucontext.KeyUnknown},
		{KeyMenu, gpucontext.KeyUnknown},
		{KeyUnknown, gpucontext.KeyUnknown},
	}
	for _, tt := range tests {
		if got := tt.key.GPUKey(); got != tt.want {
			t.Errorf("Key(%d).GPUKey() = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestModifierKey_Modifiers(t *testing.T) {
	m := ModShift | ModAlt | ModNumLock
	got := m.Modifiers()
	want := gpucontext.ModShift | gpucontext.ModAlt | gpucontext.ModNumLock
	if got != want {
		t.Errorf("Modifiers() = %v, want %v", got, want)
	}
	if got := ModifierKey(0x40).Modifiers(); got != 0 {
		t.Errorf("unknown bit kept: %v", got)
	}
}

func TestAction_String(t *testing.T) {
	for a, want := range map[Action]string{Release: "Release", Press: "Press", Repeat: "Repeat", 9: "Action(?)"} {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, want %q", int(a), got, want)
		}
	}
}
