package glfw

import "github.com/gogpu/glfw/internal/native"

// Monitor is a connected display. Monitors are owned by the native library
// and stay valid until they are disconnected or the context terminates.
type Monitor struct {
	ctx *Context
	raw native.Monitor
}

// VideoMode describes a monitor's display mode.
type VideoMode struct {
	Width       int
	Height      int
	RedBits     int
	GreenBits   int
	BlueBits    int
	RefreshRate int
}

// PrimaryMonitor returns the user's primary monitor, usually the one with
// the taskbar or global menu bar.
func (c *Context) PrimaryMonitor() (*Monitor, bool) {
	raw := c.lib.GetPrimaryMonitor()
	if raw == 0 {
		return nil, false
	}
	return &Monitor{ctx: c, raw: raw}, true
}

// VideoMode returns the monitor's current mode. It reports false when the
// native library cannot query it.
func (m *Monitor) VideoMode() (VideoMode, bool) {
	mode, ok := m.ctx.lib.GetVideoMode(m.raw)
	if !ok {
		return VideoMode{}, false
	}
	return VideoMode{
		Width:       int(mode.Width),
		Height:      int(mode.Height),
		RedBits:     int(mode.RedBits),
		GreenBits:   int(mode.GreenBits),
		BlueBits:    int(mode.BlueBits),
		RefreshRate: int(mode.RefreshRate),
	}, true
}
