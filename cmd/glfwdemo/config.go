package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/gogpu/gputypes"
	"gopkg.in/yaml.v3"
)

// Config is the demo configuration, read from YAML:
//
//	title: glfw demo
//	width: 1024
//	height: 768
//	gl: {major: 4, minor: 1}
//	vsync: true
//	clear: {r: 0.08, g: 0.08, b: 0.12, a: 1}
type Config struct {
	Title      string         `yaml:"title"`
	Width      int            `yaml:"width"`
	Height     int            `yaml:"height"`
	Fullscreen bool           `yaml:"fullscreen"`
	Resizable  bool           `yaml:"resizable"`
	VSync      bool           `yaml:"vsync"`
	GL         GLVersion      `yaml:"gl"`
	Clear      gputypes.Color `yaml:"clear"`

	// Library overrides the GLFW shared library path.
	Library string `yaml:"library"`
}

// GLVersion is the requested OpenGL core profile version.
type GLVersion struct {
	Major int `yaml:"major"`
	Minor int `yaml:"minor"`
}

var errInvalidConfig = errors.New("glfwdemo: invalid config")

func defaultConfig() Config {
	return Config{
		Title:     "glfw demo",
		Width:     800,
		Height:    600,
		Resizable: true,
		VSync:     true,
		GL:        GLVersion{Major: 3, Minor: 3},
		Clear:     gputypes.Color{R: 0.08, G: 0.08, B: 0.12, A: 1},
	}
}

// loadConfig reads path over the defaults. An empty path yields the
// defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("glfwdemo: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("glfwdemo: parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if !c.Fullscreen && (c.Width <= 0 || c.Height <= 0) {
		return fmt.Errorf("%w: window size %dx%d", errInvalidConfig, c.Width, c.Height)
	}
	if c.GL.Major < 3 || (c.GL.Major == 3 && c.GL.Minor < 3) {
		return fmt.Errorf("%w: OpenGL %d.%d, need 3.3 or later", errInvalidConfig, c.GL.Major, c.GL.Minor)
	}
	return nil
}

// backgroundColor tints the configured clear color by the cursor position
// within a width x height window.
func backgroundColor(cfg Config, st *state, width, height int) gputypes.Color {
	c := cfg.Clear
	if width <= 0 || height <= 0 {
		return c
	}
	fx := clamp01(st.cursorX / float64(width))
	fy := clamp01(st.cursorY / float64(height))
	c.R = clamp01(c.R + 0.25*fx)
	c.B = clamp01(c.B + 0.25*fy)
	return c
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
