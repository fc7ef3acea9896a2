package sdl2

import (
	"github.com/ignite-laboratories/aperture"
	"github.com/veandco/go-sdl2/sdl"
)

// head is one native SDL window, its GL context and the callbacks bound to it.
type head struct {
	Definition SDLDefinition
	handle     aperture.Handle
	windowID   uint32
	callbacks  aperture.Callbacks
	redisplay  bool
}

func (h *head) destroy() {
	if h.Definition.Context != nil {
		sdl.GLDeleteContext(h.Definition.Context)
	}
	h.Definition.Handle.Destroy()
	h.Definition = SDLDefinition{}
}

func (h *head) display() {
	if h.Definition.Handle == nil || h.callbacks.Display == nil {
		return
	}
	h.Definition.Handle.GLMakeCurrent(h.Definition.Context)
	h.callbacks.Display()
}

// Button states as reported to aperture: 0 is down, 1 is up.
const (
	stateDown = 0
	stateUp   = 1
)

// button converts SDL's one-based button index to a zero-based one.
func button(b uint8) int {
	return int(b) - 1
}

// asciiKey reports whether the keycode is a plain ASCII key.
func asciiKey(sym sdl.Keycode) (byte, bool) {
	if sym > 0 && sym < 0x80 {
		return byte(sym), true
	}
	return 0, false
}
