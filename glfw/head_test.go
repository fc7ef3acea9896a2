package glfw

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestControlKey(t *testing.T) {
	tests := []struct {
		key  glfw.Key
		want byte
		ok   bool
	}{
		{glfw.KeyEscape, 0x1b, true},
		{glfw.KeyEnter, '\r', true},
		{glfw.KeyKPEnter, '\r', true},
		{glfw.KeyTab, '\t', true},
		{glfw.KeyBackspace, 0x08, true},
		{glfw.KeyDelete, 0x7f, true},
		{glfw.KeyF1, 0, false},
		{glfw.KeyA, 0, false},
	}
	for _, tt := range tests {
		got, ok := controlKey(tt.key)
		if got != tt.want || ok != tt.ok {
			t.Errorf("controlKey(%v) = %d, %v; want %d, %v", tt.key, got, ok, tt.want, tt.ok)
		}
	}
}

func TestButtonState(t *testing.T) {
	if buttonState(glfw.Press) != stateDown || buttonState(glfw.Repeat) != stateDown {
		t.Error("pressed buttons must report down")
	}
	if buttonState(glfw.Release) != stateUp {
		t.Error("released buttons must report up")
	}
}

func TestGameModeStringRejectsGarbage(t *testing.T) {
	tk := New()
	tk.GameModeString("fullscreen please")
	if tk.modeOK {
		t.Fatal("garbage mode string accepted")
	}
	if tk.GameModePossible() {
		t.Fatal("garbage mode reported possible")
	}

	tk.GameModeString("1024x768@60")
	if !tk.modeOK || tk.mode.Width != 1024 || tk.mode.Refresh != 60 {
		t.Fatalf("mode %+v ok %v", tk.mode, tk.modeOK)
	}
}
