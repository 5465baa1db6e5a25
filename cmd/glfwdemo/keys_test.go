package main

import (
	"testing"

	"github.com/gogpu/glfw"
)

func TestKeyCommand(t *testing.T) {
	tests := []struct {
		name   string
		key    glfw.Key
		action glfw.Action
		mods   glfw.ModifierKey
		want   command
	}{
		{"escape", glfw.KeyEscape, glfw.Press, 0, cmdClose},
		{"ctrl+q", glfw.KeyQ, glfw.Press, glfw.ModControl, cmdClose},
		{"ctrl+shift+q", glfw.KeyQ, glfw.Press, glfw.ModControl | glfw.ModShift, cmdClose},
		{"plain q", glfw.KeyQ, glfw.Press, 0, cmdNone},
		{"alt+q", glfw.KeyQ, glfw.Press, glfw.ModAlt, cmdNone},
		{"space", glfw.KeySpace, glfw.Press, 0, cmdTogglePause},
		{"escape release", glfw.KeyEscape, glfw.Release, 0, cmdNone},
		{"space repeat", glfw.KeySpace, glfw.Repeat, 0, cmdNone},
		{"other key", glfw.KeyA, glfw.Press, glfw.ModControl, cmdNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keyCommand(tt.key, tt.action, tt.mods); got != tt.want {
				t.Errorf("keyCommand() = %d, want %d", got, tt.want)
			}
		})
	}
}
