// Command glfwdemo opens a window through package glfw and draws a triangle
// whose shaders are written in WGSL and translated to GLSL at startup.
//
// Escape or Ctrl+Q closes the window. The background tint follows the
// cursor; space pauses it.
package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/glfw"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

// state is attached to the window and updated from its callbacks.
type state struct {
	cursorX, cursorY float64
	paused           bool
}

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file")
		frames     = flag.Int("frames", 0, "exit after n frames (0 runs until the window closes)")
		verbose    = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Parse()

	if *verbose {
		glfw.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := run(cfg, *frames); err != nil {
		log.Fatal(err)
	}
}

func run(cfg Config, maxFrames int) error {
	opts := []glfw.InitOption{
		glfw.WithErrorHandler(func(err error) { log.Printf("glfwdemo: %v", err) }),
	}
	if cfg.Library != "" {
		opts = append(opts, glfw.WithLibraryPath(cfg.Library))
	}
	ctx, err := glfw.Init(opts...)
	if err != nil {
		return err
	}
	defer ctx.Terminate()

	ctx.GLVersion(cfg.GL.Major, cfg.GL.Minor)
	ctx.WindowHint(glfw.Resizable, boolHint(cfg.Resizable))

	var (
		win *glfw.Window
		ok  bool
	)
	if cfg.Fullscreen {
		win, ok = ctx.CreateFullscreenWindow(cfg.Title)
	} else {
		win, ok = ctx.CreateWindow(cfg.Title, cfg.Width, cfg.Height)
	}
	if !ok {
		return errors.New("glfwdemo: window creation failed")
	}
	defer win.Destroy()

	win.SetIcon(paintIcons()...)

	st := &state{}
	glfw.SetUserData(win, st)
	win.SetKeyCallback(onKey)
	win.SetMouseCallback(onMouse)

	win.MakeCurrent()
	ctx.SetSwapInterval(boolHint(cfg.VSync))

	gl, err := loadGL(win.SafeLoadProc())
	if err != nil {
		return err
	}
	src, err := translateWGSL(triangleWGSL, glslVersion(cfg.GL))
	if err != nil {
		return err
	}
	program, err := gl.buildProgram(src)
	if err != nil {
		return err
	}
	vao := gl.GenVertexArray()

	n := 0
	for !win.ShouldClose() {
		ctx.PollEvents()

		w, h := win.Size()
		scale := win.ScaleFactor()
		gl.Viewport(0, 0, int32(float64(w)*scale), int32(float64(h)*scale))

		c := backgroundColor(cfg, st, w, h)
		gl.ClearColor(float32(c.R), float32(c.G), float32(c.B), float32(c.A))
		gl.Clear(glColorBufferBit)

		gl.UseProgram(program)
		gl.BindVertexArray(vao)
		gl.DrawArrays(glTriangles, 0, 3)

		win.Update()
		n++
		if maxFrames > 0 && n >= maxFrames {
			win.SetShouldClose(true)
		}
	}
	log.Printf("glfwdemo: %d frames in %.2fs", n, ctx.Time())
	return nil
}

// command is what a key press asks the demo to do.
type command int

const (
	cmdNone command = iota
	cmdClose
	cmdTogglePause
)

// keyCommand maps a key event to a command: Escape or Ctrl+Q closes, space
// toggles the tint.
func keyCommand(key glfw.Key, action glfw.Action, mods glfw.ModifierKey) command {
	if action != glfw.Press {
		return cmdNone
	}
	switch key.GPUKey() {
	case gpucontext.KeyEscape:
		return cmdClose
	case gpucontext.KeyQ:
		if mods.Modifiers()&gpucontext.ModControl != 0 {
			return cmdClose
		}
	case gpucontext.KeySpace:
		return cmdTogglePause
	}
	return cmdNone
}

func onKey(raw glfw.RawWindow, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
	w := glfw.FromRaw(raw)
	switch keyCommand(key, action, mods) {
	case cmdClose:
		w.SetShouldClose(true)
	case cmdTogglePause:
		if st, ok := glfw.UserData[state](w); ok {
			st.paused = !st.paused
		}
	}
}

func onMouse(raw glfw.RawWindow, x, y float64) {
	if st, ok := glfw.UserData[state](glfw.FromRaw(raw)); ok && !st.paused {
		st.cursorX, st.cursorY = x, y
	}
}

func boolHint(v bool) int {
	if v {
		return glfw.True
	}
	return glfw.False
}
