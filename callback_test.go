package glfw

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/glfw/internal/native"
	"github.com/gogpu/glfw/internal/nativetest"
)

func TestKeyCallback(t *testing.T) {
	c, lib := newTestContext(t)
	w := mustCreate(t, c)
	raw := native.Window(w.Raw())

	type event struct {
		w        RawWindow
		key      Key
		scancode int
		action   Action
		mods     ModifierKey
	}
	var got []event
	w.SetKeyCallback(func(w RawWindow, key Key, scancode int, action Action, mods ModifierKey) {
		got = append(got, event{w, key, scancode, action, mods})
	})

	lib.EmitKey(raw, int32(KeyEscape), 9, int32(Press), int32(ModShift|ModControl))
	lib.EmitKey(raw, int32(KeyA), 38, int32(Release), 0)

	want := []event{
		{w.Raw(), KeyEscape, 9, Press, ModShift | ModControl},
		{w.Raw(), KeyA, 38, Release, 0},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d events, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestKeyCallback_ReachesUserData(t *testing.T) {
	c, lib := newTestContext(t)
	w := mustCreate(t, c)

	st := appState{}
	SetUserData(w, &st)
	w.SetKeyCallback(func(raw RawWindow, _ Key, _ int, action Action, _ ModifierKey) {
		s, ok := UserData[appState](FromRaw(raw))
		if ok && action == Press {
			s.frames++
		}
	})

	lib.EmitKey(native.Window(w.Raw()), int32(KeySpace), 65, int32(Press), 0)
	lib.EmitKey(native.Window(w.Raw()), int32(KeySpace), 65, int32(Repeat), 0)

	if st.frames != 1 {
		t.Errorf("frames = %d, want 1", st.frames)
	}
}

func TestKeyCallback_Overwrite(t *testing.T) {
	c, lib := newTestContext(t)
	w := mustCreate(t, c)
	raw := native.Window(w.Raw())

	var first, second int
	w.SetKeyCallback(func(RawWindow, Key, int, Action, ModifierKey) { first++ })
	w.SetKeyCallback(func(RawWindow, Key, int, Action, ModifierKey) { second++ })
	lib.EmitKey(raw, int32(KeyB), 0, int32(Press), 0)

	if first != 0 || second != 1 {
		t.Errorf("first, second = %d, %d, want 0, 1", first, second)
	}

	w.SetKeyCallback(nil)
	if lib.HasKeyCallback(raw) {
		t.Error("key callback still registered after SetKeyCallback(nil)")
	}
}

func TestMouseCallback(t *testing.T) {
	c, lib := newTestContext(t)
	w := mustCreate(t, c)
	raw := native.Window(w.Raw())

	var gotW RawWindow
	var gotX, gotY float64
	w.SetMouseCallback(func(w RawWindow, x, y float64) {
		gotW, gotX, gotY = w, x, y
	})

	if !lib.EmitCursorPos(raw, 12.5, 40) {
		t.Fatal("no cursor callback registered")
	}
	if gotW != w.Raw() || gotX != 12.5 || gotY != 40 {
		t.Errorf("callback got (%#x, %v, %v), want (%#x, 12.5, 40)", gotW, gotX, gotY, w.Raw())
	}

	w.SetMouseCallback(nil)
	if lib.HasCursorPosCallback(raw) {
		t.Error("cursor callback still registered after SetMouseCallback(nil)")
	}
}

func TestCallbacks_DroppedOnDestroy(t *testing.T) {
	c, lib := newTestContext(t)
	w := mustCreate(t, c)
	raw := native.Window(w.Raw())

	w.SetKeyCallback(func(RawWindow, Key, int, Action, ModifierKey) {})
	w.SetMouseCallback(func(RawWindow, float64, float64) {})

	FromRaw(w.Raw()).Destroy()
	if lib.CallbackClears != 0 || !lib.HasKeyCallback(raw) || !lib.HasCursorPosCallback(raw) {
		t.Fatal("destroying a borrowed wrapper cleared the callbacks")
	}

	w.Destroy()
	if lib.CallbackClears != 2 {
		t.Errorf("Destroy cleared %d callbacks, want key and mouse", lib.CallbackClears)
	}
	if lib.HasKeyCallback(raw) || lib.HasCursorPosCallback(raw) {
		t.Error("callbacks survived Destroy")
	}

	w.Destroy()
	if lib.CallbackClears != 2 {
		t.Errorf("second Destroy cleared callbacks again (%d clears)", lib.CallbackClears)
	}
}

func TestErrorHandler(t *testing.T) {
	c, lib := newTestContext(t)

	var got []error
	c.SetErrorHandler(func(err error) { got = append(got, err) })

	lib.EmitError(int32(PlatformError), "X11: display lost")
	lib.EmitError(0x7fff, "mystery")

	if len(got) != 2 {
		t.Fatalf("handler called %d times, want 2", len(got))
	}

	var e *Error
	if !errors.As(got[0], &e) {
		t.Fatalf("first error = %T, want *Error", got[0])
	}
	if e.Code != PlatformError || e.Description != "X11: display lost" {
		t.Errorf("first error = %+v", e)
	}
	if !errors.Is(got[0], &Error{Code: PlatformError}) {
		t.Error("errors.Is does not match by code")
	}

	if !errors.Is(got[1], ErrUnknownErrorCode) {
		t.Errorf("second error = %v, want ErrUnknownErrorCode", got[1])
	}
}

func TestErrorHandler_Replace(t *testing.T) {
	c, lib := newTestContext(t)

	var first, second int
	c.SetErrorHandler(func(error) { first++ })
	c.SetErrorHandler(func(error) { second++ })
	lib.EmitError(int32(InvalidEnum), "")

	if first != 0 || second != 1 {
		t.Errorf("first, second = %d, %d, want 0, 1", first, second)
	}
}

func TestErrorHandler_FromOption(t *testing.T) {
	resetContext()
	lib := nativetest.New()

	var got error
	c, err := Init(withLibrary(lib), WithErrorHandler(func(err error) { got = err }))
	if err != nil {
		t.Fatalf("Init() = %v", err)
	}
	t.Cleanup(func() {
		c.Terminate()
		resetContext()
	})

	lib.EmitError(int32(APIUnavailable), "no GL")
	if !errors.Is(got, &Error{Code: APIUnavailable}) {
		t.Errorf("handler got %v, want APIUnavailable", got)
	}
}

func TestErrorHandler_UnhandledIsLogged(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))

	c, lib := newTestContext(t)
	c.SetErrorHandler(nil)
	lib.EmitError(int32(OutOfMemory), "allocation failed")

	out := buf.String()
	if !strings.Contains(out, "unhandled native error") || !strings.Contains(out, "allocation failed") {
		t.Errorf("log output = %q, want the unhandled error", out)
	}
}
