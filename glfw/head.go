package glfw

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/ignite-laboratories/aperture"
)

// head is one native GLFW window and the callbacks bound to it.
type head struct {
	handle    aperture.Handle
	window    *glfw.Window
	callbacks aperture.Callbacks
	redisplay bool
}

func (h *head) destroy() {
	h.window.Destroy()
	h.window = nil
}

func (h *head) display() {
	if h.window == nil || h.callbacks.Display == nil {
		return
	}
	h.window.MakeContextCurrent()
	h.callbacks.Display()
}

func (h *head) bind(cb aperture.Callbacks) {
	h.callbacks = cb
	w := h.window

	w.SetRefreshCallback(func(*glfw.Window) {
		h.display()
	})
	w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		if h.callbacks.Reshape != nil {
			h.callbacks.Reshape(width, height)
		}
	})
	w.SetCharCallback(func(_ *glfw.Window, char rune) {
		if char > 0xff || h.callbacks.Keyboard == nil {
			return
		}
		x, y := cursor(w)
		h.callbacks.Keyboard(byte(char), x, y)
	})
	w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Release {
			return
		}
		x, y := cursor(w)
		if b, ok := controlKey(key); ok {
			if h.callbacks.Keyboard != nil {
				h.callbacks.Keyboard(b, x, y)
			}
			return
		}
		if key >= glfw.KeyEscape && h.callbacks.Special != nil {
			h.callbacks.Special(int(key), x, y)
		}
	})
	w.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if h.callbacks.Mouse == nil {
			return
		}
		x, y := cursor(w)
		h.callbacks.Mouse(int(button), buttonState(action), x, y)
	})
	w.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		x, y := int(xpos), int(ypos)
		if dragging(w) {
			if h.callbacks.Motion != nil {
				h.callbacks.Motion(x, y)
			}
		} else if h.callbacks.PassiveMotion != nil {
			h.callbacks.PassiveMotion(x, y)
		}
	})
	w.SetCloseCallback(func(cw *glfw.Window) {
		if h.callbacks.Close == nil {
			return
		}
		// The window stays open until aperture destroys it.
		cw.SetShouldClose(false)
		h.callbacks.Close()
	})
}

func cursor(w *glfw.Window) (int, int) {
	x, y := w.GetCursorPos()
	return int(x), int(y)
}

func dragging(w *glfw.Window) bool {
	for _, b := range []glfw.MouseButton{glfw.MouseButtonLeft, glfw.MouseButtonRight, glfw.MouseButtonMiddle} {
		if w.GetMouseButton(b) == glfw.Press {
			return true
		}
	}
	return false
}

// Button states as reported to aperture: 0 is down, 1 is up.
const (
	stateDown = 0
	stateUp   = 1
)

func buttonState(action glfw.Action) int {
	if action == glfw.Release {
		return stateUp
	}
	return stateDown
}

// controlKey maps the keys that have an ASCII control code but no char event.
func controlKey(key glfw.Key) (byte, bool) {
	switch key {
	case glfw.KeyEscape:
		return 0x1b, true
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return '\r', true
	case glfw.KeyTab:
		return '\t', true
	case glfw.KeyBackspace:
		return 0x08, true
	case glfw.KeyDelete:
		return 0x7f, true
	}
	return 0, false
}
