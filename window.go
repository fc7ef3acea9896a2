package aperture

import (
	"fmt"
	"time"

	"github.com/ignite-laboratories/core"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
)

// Info describes a window and the caller's callbacks. Every callback is optional.
type Info struct {
	Title     string
	Framerate int

	Draw   func(w *Window, c Canvas)
	Resize func(w *Window, c Canvas)
	Close  func(w *Window)
	Input  func(w *Window, e InputEvent)
}

// Window adapts one toolkit surface at a time to a canvas.
//
// A window is not bound to a native surface until Run or SetFullscreen opens one.
type Window struct {
	display *Display
	id      uint64
	info    Info

	width, height int
	flags         Flag
	startFull     bool
	pixfmt        PixelFormat

	// restoreW and restoreH hold the windowed size while in game mode.
	restoreW, restoreH int

	handle Handle
	// gen invalidates timer chains scheduled for earlier surfaces.
	gen uint64

	stop    *atomic.Bool
	running bool
	closed  bool

	canvas Canvas
}

// CreateWindow validates the configuration and returns an unopened window.
func (d *Display) CreateWindow(info Info, width, height int, flags Flag) (*Window, error) {
	if info.Framerate <= 0 {
		return nil, fmt.Errorf("%w: framerate %d", ErrInvalidInfo, info.Framerate)
	}
	if width <= 0 || width > WidthMax || height <= 0 || height > HeightMax {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if flags&FlagUnsupported != 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFlag, flags&FlagUnsupported)
	}

	w := &Window{
		display:   d,
		id:        core.NextID(),
		info:      info,
		width:     width,
		height:    height,
		flags:     flags &^ FlagFullscreen,
		startFull: flags&FlagFullscreen != 0,
		pixfmt:    d.quality.PixelFormat(),
		stop:      atomic.NewBool(false),
	}
	core.Verbosef(ModuleName, "window [%d] created %dx%d %s\n", w.id, width, height, w.pixfmt)
	return w, nil
}

func (w *Window) ID() uint64               { return w.id }
func (w *Window) Info() Info               { return w.info }
func (w *Window) Handle() Handle           { return w.handle }
func (w *Window) Width() int               { return w.width }
func (w *Window) Height() int              { return w.height }
func (w *Window) Flags() Flag              { return w.flags }
func (w *Window) Framerate() int           { return w.info.Framerate }
func (w *Window) PixelFormat() PixelFormat { return w.pixfmt }
func (w *Window) Canvas() Canvas           { return w.canvas }
func (w *Window) Fullscreen() bool         { return w.flags&FlagFullscreen != 0 }
func (w *Window) Stopped() bool            { return w.stop.Load() }

func (w *Window) interval() time.Duration {
	return time.Second / time.Duration(w.info.Framerate)
}

// Run opens the window, creates its canvas and pumps toolkit events until the
// window is stopped by its close callback, Close or Destroy.
func (w *Window) Run() error {
	if w.closed {
		return ErrClosed
	}
	if w.running {
		return ErrRunning
	}
	w.running = true
	defer func() { w.running = false }()

	d := w.display
	if w.handle == 0 {
		if err := w.open(); err != nil {
			return err
		}
	}

	if w.canvas == nil {
		c, err := d.newCanvas(w)
		if err != nil {
			return fmt.Errorf("aperture: canvas for window [%d]: %w", w.id, err)
		}
		w.canvas = c
	}

	core.Verbosef(ModuleName, "window [%d.%d] running\n", w.handle, w.id)
	for !w.stop.Load() {
		d.Synchro.Engage() // Listen for external execution
		if w.stop.Load() {
			break
		}
		if w.handle == 0 {
			w.stop.Store(true)
			return fmt.Errorf("%w: window [%d]", ErrNoSurface, w.id)
		}
		d.toolkit.CheckLoop(d.poll)
	}
	core.Verbosef(ModuleName, "window [%d.%d] stopped\n", w.handle, w.id)
	return nil
}

// Close requests the run loop to return. Resources are kept until Destroy.
func (w *Window) Close() {
	w.stop.Store(true)
}

func (w *Window) open() error {
	if w.startFull {
		err := w.enterFullscreen()
		if w.handle != 0 {
			return nil
		}
		core.Verbosef(ModuleName, "window [%d] falling back to windowed: %v\n", w.id, err)
	}
	return w.enterWindowed()
}

// SetFullscreen moves the window into or out of the toolkit's game mode.
// Requesting the current state is a no-op.
//
// When the screen resolution cannot be used as a game mode, ErrModeUnavailable
// is returned and the window stays as it was. If the toolkit fails after the
// old surface is gone, the window falls back to an ordinary window and the
// failure is still returned.
func (w *Window) SetFullscreen(on bool) error {
	if w.closed {
		return ErrClosed
	}
	if w.handle != 0 && on == w.Fullscreen() {
		return nil
	}
	if on {
		return w.enterFullscreen()
	}
	return w.enterWindowed()
}

func (w *Window) enterFullscreen() error {
	d := w.display
	tk := d.toolkit

	sw, sh := tk.ScreenSize()
	mode := Mode{Width: sw, Height: sh}
	core.Verbosef(ModuleName, "window [%d] mode: %s\n", w.id, mode)

	tk.GameModeString(mode.String())
	if !tk.GameModePossible() {
		err := fmt.Errorf("%w: %s", ErrModeUnavailable, mode)
		d.log.Error(err, "cannot enter fullscreen", "window", w.id, "mode", mode.String())
		return err
	}

	restoreW, restoreH := w.windowedSize()
	w.release()
	h, err := tk.EnterGameMode()
	if err == nil {
		if err = w.attach(h, false); err != nil {
			tk.LeaveGameMode()
		}
	}
	if err != nil {
		d.log.Error(err, "enter game mode failed", "window", w.id, "mode", mode.String())
		err = fmt.Errorf("aperture: enter game mode %s: %w", mode, err)
		w.flags &^= FlagFullscreen
		return multierr.Append(err, w.enterWindowed())
	}

	w.restoreW, w.restoreH = restoreW, restoreH
	w.flags |= FlagFullscreen
	core.Verbosef(ModuleName, "window [%d.%d] fullscreen: enter\n", h, w.id)
	return nil
}

func (w *Window) enterWindowed() error {
	d := w.display
	tk := d.toolkit

	width, height := w.windowedSize()
	if w.Fullscreen() && tk.GameModeActive() {
		tk.LeaveGameMode()
		core.Verbosef(ModuleName, "window [%d.%d] fullscreen: leave\n", w.handle, w.id)
	}
	w.release()
	w.flags &^= FlagFullscreen
	w.width, w.height = width, height

	h, err := tk.CreateWindow(w.info.Title, width, height)
	if err == nil {
		err = w.attach(h, true)
	}
	if err != nil {
		d.log.Error(err, "create window failed", "window", w.id, "title", w.info.Title)
		return fmt.Errorf("aperture: create window %q: %w", w.info.Title, err)
	}

	core.Verbosef(ModuleName, "window [%d.%d] windowed\n", h, w.id)
	return nil
}

// attach registers a fresh surface, binds its callbacks and starts its frame timer.
func (w *Window) attach(h Handle, closable bool) error {
	d := w.display
	if err := d.register(h, w); err != nil {
		d.toolkit.DestroyWindow(h)
		return err
	}
	w.handle = h
	w.gen++

	cb := d.callbacks(h)
	if !closable {
		cb.Close = nil
	}
	d.toolkit.Bind(h, cb)
	if w.flags&FlagHideCursor != 0 {
		d.toolkit.HideCursor(h)
	}
	w.schedule(h, w.gen)
	return nil
}

// windowedSize is the size an ordinary window is (re)created with.
func (w *Window) windowedSize() (int, int) {
	if w.Fullscreen() {
		return w.restoreW, w.restoreH
	}
	return w.width, w.height
}

// release unregisters and destroys the current surface, if any.
func (w *Window) release() {
	if w.handle == 0 {
		return
	}
	h := w.handle
	w.display.unregister(h, w)
	w.handle = 0
	w.display.toolkit.DestroyWindow(h)
}

func (w *Window) schedule(h Handle, gen uint64) {
	w.display.toolkit.AddTimer(w.interval(), func(value int) {
		w.display.tick(Handle(value), gen)
	}, int(h))
}

// Destroy stops the window, closes its canvas and destroys its native surface.
func (w *Window) Destroy() error {
	if w.closed {
		return ErrClosed
	}
	w.closed = true
	w.stop.Store(true)

	var err error
	if w.canvas != nil {
		err = multierr.Append(err, w.canvas.Close())
		w.canvas = nil
	}
	w.release()

	core.Verbosef(ModuleName, "window [%d] cleaned up\n", w.id)
	return err
}
