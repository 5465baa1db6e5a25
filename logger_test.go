package glfw

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// captureLogs installs a text logger at level for the duration of the test.
func captureLogs(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})))
	return &buf
}

func assertLogged(t *testing.T, buf *bytes.Buffer, msgs ...string) {
	t.Helper()
	out := buf.String()
	for _, msg := range msgs {
		if !strings.Contains(out, msg) {
			t.Errorf("log output missing %q:\n%s", msg, out)
		}
	}
}

func TestNopHandler(t *testing.T) {
	var h slog.Handler = nopHandler{}
	ctx := context.Background()

	if h.Enabled(ctx, slog.LevelError) {
		t.Error("nopHandler enabled at error level")
	}
	if err := h.Handle(ctx, slog.Record{}); err != nil {
		t.Errorf("Handle() = %v", err)
	}
	if _, ok := h.WithAttrs([]slog.Attr{slog.Int("window", 1)}).(nopHandler); !ok {
		t.Error("WithAttrs did not return a nopHandler")
	}
	if _, ok := h.WithGroup("glfw").(nopHandler); !ok {
		t.Error("WithGroup did not return a nopHandler")
	}
}

func TestLogger_SilentByDefaultAndAfterNil(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)

	l := Logger()
	if l == nil {
		t.Fatal("Logger() = nil after SetLogger(nil)")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelWarn, slog.LevelError} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("silent logger enabled at %v", level)
		}
	}
}

func TestSetLogger_PropagatesToLibrary(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	_, lib := newTestContext(t)

	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	SetLogger(custom)
	if Logger() != custom {
		t.Error("Logger() is not the logger passed to SetLogger")
	}
	if lib.Logger != custom {
		t.Error("SetLogger did not reach the loaded library")
	}
}

func TestInit_PropagatesCurrentLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	SetLogger(custom)

	_, lib := newTestContext(t)
	if lib.Logger != custom {
		t.Error("Init did not hand the current logger to the library")
	}
}

func TestLogs_Lifecycle(t *testing.T) {
	buf := captureLogs(t, slog.LevelInfo)

	c, _ := newTestContext(t)
	mustCreate(t, c)
	c.Terminate()

	assertLogged(t, buf, "glfw: initialized", "library=nativetest", "glfw: terminated", "destroyed=1")
	if strings.Contains(buf.String(), "window created") {
		t.Error("debug record emitted at info level")
	}
}

func TestLogs_WindowEvents(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)

	c, lib := newTestContext(t)
	w := mustCreate(t, c)
	SetUserData(w, &appState{})
	w.SetKeyCallback(func(RawWindow, Key, int, Action, ModifierKey) {})
	w.Destroy()

	lib.FailCreate = true
	c.CreateWindow("broken", 10, 10)

	assertLogged(t, buf,
		"glfw: window created",
		"glfw: user data attached",
		"glfw: key callback set",
		"glfw: window destroyed",
		"glfw: window creation failed",
		"title=broken",
	)
}

func TestLogger_ConcurrentSwap(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			Logger().Debug("glfw: concurrent read")
		}()
		go func() {
			defer wg.Done()
			SetLogger(slog.Default())
			SetLogger(nil)
		}()
	}
	wg.Wait()
}

func BenchmarkLogger_Disabled(b *testing.B) {
	l := Logger()
	b.ReportAllocs()
	for b.Loop() {
		l.Debug("glfw: window created", "window", 1)
	}
}
