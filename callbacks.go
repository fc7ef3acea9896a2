package aperture

import (
	"github.com/ignite-laboratories/core"
)

// callbacks builds the trampolines for a surface. Each one resolves the handle
// it was bound with and does nothing once that handle is no longer registered.
func (d *Display) callbacks(h Handle) Callbacks {
	with := func(fn func(w *Window)) {
		if w := d.Lookup(h); w != nil {
			fn(w)
		}
	}

	return Callbacks{
		Display: func() {
			with(func(w *Window) { w.draw() })
		},
		Reshape: func(width, height int) {
			with(func(w *Window) { w.reshape(width, height) })
		},
		Keyboard: func(key byte, x, y int) {
			with(func(w *Window) { w.input(InputEvent{Kind: InputKeyboard, Key: int(key), X: x, Y: y}) })
		},
		Special: func(key int, x, y int) {
			with(func(w *Window) { w.input(InputEvent{Kind: InputSpecial, Key: key, X: x, Y: y}) })
		},
		Mouse: func(button, state, x, y int) {
			with(func(w *Window) {
				w.input(InputEvent{Kind: InputMouse, Button: button, State: state, X: x, Y: y})
			})
		},
		PassiveMotion: func(x, y int) {
			with(func(w *Window) { w.input(InputEvent{Kind: InputPassiveMotion, X: x, Y: y}) })
		},
		Motion: func(x, y int) {
			with(func(w *Window) { w.input(InputEvent{Kind: InputMotion, X: x, Y: y}) })
		},
		Close: func() {
			with(func(w *Window) { w.requestClose() })
		},
	}
}

// tick is the frame timer. It carries its handle as the timer value because no
// window is current when a timer fires.
func (d *Display) tick(h Handle, gen uint64) {
	w := d.Lookup(h)
	if w == nil || w.gen != gen || w.stop.Load() {
		return
	}
	d.toolkit.PostRedisplay(h)
	w.schedule(h, gen)
}

func (w *Window) draw() {
	if w.canvas == nil {
		return
	}
	if w.info.Draw != nil {
		w.info.Draw(w, w.canvas)
	}
	w.display.toolkit.SwapBuffers(w.handle)
}

func (w *Window) reshape(width, height int) {
	if width > WidthMax || height > HeightMax {
		w.display.log.Info("reshape rejected", "window", w.id, "width", width, "height", height)
		return
	}
	// minimized
	if width <= 0 || height <= 0 {
		return
	}

	core.Verbosef(ModuleName, "window [%d.%d] reshape: %dx%d\n", w.handle, w.id, width, height)
	w.width = width
	w.height = height

	if w.canvas == nil {
		return
	}
	if dev := w.canvas.Device(); dev != nil {
		dev.Resize(width, height)
	}
	if w.info.Resize != nil {
		w.info.Resize(w, w.canvas)
	}
}

func (w *Window) input(e InputEvent) {
	if e.Kind != InputPassiveMotion {
		core.Verbosef(ModuleName, "window [%d.%d] %s: key %d button %d state %d at %d, %d\n",
			w.handle, w.id, e.Kind, e.Key, e.Button, e.State, e.X, e.Y)
	}
	if w.info.Input != nil {
		w.info.Input(w, e)
	}
}

func (w *Window) requestClose() {
	core.Verbosef(ModuleName, "window [%d.%d] close requested\n", w.handle, w.id)
	w.stop.Store(true)
	if w.info.Close != nil {
		w.info.Close(w)
	}
}
