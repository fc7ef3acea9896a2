package aperture

import "time"

// Handle identifies a native window or game mode surface. Zero means no surface.
type Handle int

// Callbacks are bound to a single native surface by Toolkit.Bind.
//
// A nil callback is left unbound.
type Callbacks struct {
	Display       func()
	Reshape       func(width, height int)
	Keyboard      func(key byte, x, y int)
	Special       func(key int, x, y int)
	Mouse         func(button, state, x, y int)
	PassiveMotion func(x, y int)
	Motion        func(x, y int)
	Close         func()
}

// Toolkit is the legacy windowing API a Display drives.
//
// Every method is called from the event pump thread.
type Toolkit interface {
	Init() error
	Terminate()

	// ScreenSize reports the current resolution of the primary display.
	ScreenSize() (width, height int)

	CreateWindow(title string, width, height int) (Handle, error)
	// DestroyWindow must ignore handles it no longer knows.
	DestroyWindow(h Handle)

	GameModeString(mode string)
	GameModePossible() bool
	GameModeActive() bool
	EnterGameMode() (Handle, error)
	LeaveGameMode()

	// Bind replaces the callbacks of a surface and then reports the surface's
	// current drawable size through cb.Reshape, as a freshly created window would.
	Bind(h Handle, cb Callbacks)
	// AddTimer fires fn once with value after the delay.
	AddTimer(after time.Duration, fn func(value int), value int)
	PostRedisplay(h Handle)
	SwapBuffers(h Handle)
	HideCursor(h Handle)

	// CheckLoop processes pending events, waiting at most timeout for one to arrive.
	CheckLoop(timeout time.Duration)
}

// Device is the drawing target of a canvas.
type Device interface {
	Resize(width, height int)
}

// Canvas is the rendering surface bound to a window.
type Canvas interface {
	Device() Device
	Close() error
}

// CanvasFunc creates the canvas for a window once it has a native surface.
type CanvasFunc func(w *Window) (Canvas, error)

// InputKind tags an InputEvent.
type InputKind int

const (
	InputKeyboard InputKind = iota
	InputSpecial
	InputMouse
	InputPassiveMotion
	InputMotion
)

func (k InputKind) String() string {
	switch k {
	case InputKeyboard:
		return "keyboard"
	case InputSpecial:
		return "special"
	case InputMouse:
		return "mouse"
	case InputPassiveMotion:
		return "passive_motion"
	case InputMotion:
		return "motion"
	}
	return "unknown"
}

// InputEvent is a raw toolkit input event forwarded to Info.Input.
type InputEvent struct {
	Kind   InputKind
	Key    int
	Button int
	State  int
	X, Y   int
}
