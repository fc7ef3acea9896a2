package sdl2

import (
	"fmt"
	"sort"
	"time"

	"github.com/ignite-laboratories/aperture"
	"github.com/ignite-laboratories/aperture/internal/timer"
	"github.com/ignite-laboratories/core"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	GLVersion.Major = 3
	GLVersion.Minor = 1
	GLVersion.Core = false
}

var GLVersion struct {
	Major int
	Minor int
	Core  bool
}

// Toolkit drives SDL2 through the aperture.Toolkit contract. Game mode is a
// fullscreen window switched to the matching display mode.
type Toolkit struct {
	// EventHandler, when set, receives every SDL event before it is dispatched.
	EventHandler func(event sdl.Event)

	heads  map[aperture.Handle]*head
	byID   map[uint32]*head
	next   aperture.Handle
	timers *timer.Queue

	mode   aperture.Mode
	modeOK bool
	game   aperture.Handle

	mouseX, mouseY int
}

var _ aperture.Toolkit = (*Toolkit)(nil)

func New() *Toolkit {
	return &Toolkit{
		heads:  make(map[aperture.Handle]*head),
		byID:   make(map[uint32]*head),
		timers: timer.New(nil),
	}
}

func (t *Toolkit) Init() error {
	core.Verbosef(ModuleName, "sparking SDL2 integration\n")

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_TIMER | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("failed to initialize SDL2: %w", err)
	}

	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, GLVersion.Major)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, GLVersion.Minor)
	if GLVersion.Core {
		sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	} else {
		sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_COMPATIBILITY)
	}
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)
	sdl.GLSetAttribute(sdl.GL_STENCIL_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_MULTISAMPLEBUFFERS, 1)
	sdl.GLSetAttribute(sdl.GL_MULTISAMPLESAMPLES, 4)

	driver, _ := sdl.GetCurrentVideoDriver()
	core.Verbosef(ModuleName, "SDL video driver: %s\n", driver)
	return nil
}

func (t *Toolkit) Terminate() {
	for _, h := range t.handles() {
		t.DestroyWindow(h)
	}
	t.timers.Clear()
	sdl.Quit()
	core.Verbosef(ModuleName, "SDL2 integration stopped\n")
}

func (t *Toolkit) ScreenSize() (int, int) {
	dm, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		return 0, 0
	}
	return int(dm.W), int(dm.H)
}

func (t *Toolkit) CreateWindow(title string, width, height int) (aperture.Handle, error) {
	w, err := sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height),
		sdl.WINDOW_OPENGL|sdl.WINDOW_RESIZABLE,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create SDL window: %w", err)
	}
	return t.add(w)
}

func (t *Toolkit) add(w *sdl.Window) (aperture.Handle, error) {
	id, err := w.GetID()
	if err != nil {
		w.Destroy()
		return 0, fmt.Errorf("failed to identify SDL window: %w", err)
	}
	ctx, err := w.GLCreateContext()
	if err != nil {
		w.Destroy()
		return 0, fmt.Errorf("failed to create OpenGL context: %w", err)
	}
	sdl.GLSetSwapInterval(1)

	t.next++
	h := &head{handle: t.next, windowID: id}
	h.Definition.Handle = w
	h.Definition.Context = ctx
	t.heads[h.handle] = h
	t.byID[id] = h

	core.Verbosef(ModuleName, "window [%d.%d] created\n", id, h.handle)
	return h.handle, nil
}

func (t *Toolkit) DestroyWindow(handle aperture.Handle) {
	h, ok := t.heads[handle]
	if !ok {
		return
	}
	delete(t.heads, handle)
	delete(t.byID, h.windowID)
	if t.game == handle {
		t.game = 0
	}
	h.destroy()
	core.Verbosef(ModuleName, "window [%d.%d] cleaned up\n", h.windowID, handle)
}

func (t *Toolkit) GameModeString(mode string) {
	m, err := aperture.ParseMode(mode)
	t.mode, t.modeOK = m, err == nil
}

// displayMode finds the first display mode satisfying the game mode string.
func (t *Toolkit) displayMode() (sdl.DisplayMode, bool) {
	if !t.modeOK {
		return sdl.DisplayMode{}, false
	}
	n, err := sdl.GetNumDisplayModes(0)
	if err != nil {
		return sdl.DisplayMode{}, false
	}
	for i := 0; i < n; i++ {
		dm, err := sdl.GetDisplayMode(0, i)
		if err != nil {
			continue
		}
		if t.mode.Matches(int(dm.W), int(dm.H), 0, int(dm.RefreshRate)) {
			return dm, true
		}
	}
	return sdl.DisplayMode{}, false
}

func (t *Toolkit) GameModePossible() bool {
	_, ok := t.displayMode()
	return ok
}

func (t *Toolkit) GameModeActive() bool { return t.game != 0 }

func (t *Toolkit) EnterGameMode() (aperture.Handle, error) {
	dm, ok := t.displayMode()
	if !ok {
		return 0, fmt.Errorf("game mode %s is not available", t.mode)
	}
	if t.game != 0 {
		t.DestroyWindow(t.game)
	}

	w, err := sdl.CreateWindow(
		"",
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		dm.W, dm.H,
		sdl.WINDOW_OPENGL|sdl.WINDOW_FULLSCREEN,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to enter game mode %s: %w", t.mode, err)
	}
	if err := w.SetDisplayMode(&dm); err != nil {
		w.Destroy()
		return 0, fmt.Errorf("failed to switch display to %s: %w", t.mode, err)
	}

	h, err := t.add(w)
	if err != nil {
		return 0, err
	}
	t.game = h
	return h, nil
}

func (t *Toolkit) LeaveGameMode() {
	if t.game != 0 {
		t.DestroyWindow(t.game)
	}
}

func (t *Toolkit) Bind(handle aperture.Handle, cb aperture.Callbacks) {
	h, ok := t.heads[handle]
	if !ok {
		return
	}
	h.callbacks = cb
	if cb.Reshape != nil {
		width, height := h.Definition.Handle.GLGetDrawableSize()
		cb.Reshape(int(width), int(height))
	}
}

func (t *Toolkit) AddTimer(after time.Duration, fn func(int), value int) {
	t.timers.Add(after, fn, value)
}

func (t *Toolkit) PostRedisplay(handle aperture.Handle) {
	if h, ok := t.heads[handle]; ok {
		h.redisplay = true
	}
}

func (t *Toolkit) SwapBuffers(handle aperture.Handle) {
	if h, ok := t.heads[handle]; ok {
		h.Definition.Handle.GLSwap()
	}
}

func (t *Toolkit) HideCursor(aperture.Handle) {
	sdl.ShowCursor(sdl.DISABLE)
}

func (t *Toolkit) CheckLoop(timeout time.Duration) {
	wait := timeout
	if next, ok := t.timers.Next(); ok && next < wait {
		wait = next
	}

	var event sdl.Event
	if wait > 0 {
		event = sdl.WaitEventTimeout(int(wait / time.Millisecond))
	} else {
		event = sdl.PollEvent()
	}
	for ; event != nil; event = sdl.PollEvent() {
		t.handle(event)
	}

	t.timers.Fire()

	for _, handle := range t.handles() {
		h, ok := t.heads[handle]
		if !ok || !h.redisplay {
			continue
		}
		h.redisplay = false
		h.display()
	}
}

func (t *Toolkit) handle(event sdl.Event) {
	if t.EventHandler != nil {
		t.EventHandler(event)
	}
	t.dispatch(event)
}

func (t *Toolkit) dispatch(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.WindowEvent:
		h, ok := t.byID[e.WindowID]
		if !ok {
			return
		}
		switch e.Event {
		case sdl.WINDOWEVENT_SIZE_CHANGED:
			if h.callbacks.Reshape != nil {
				h.callbacks.Reshape(int(e.Data1), int(e.Data2))
			}
		case sdl.WINDOWEVENT_EXPOSED:
			h.redisplay = true
		case sdl.WINDOWEVENT_CLOSE:
			if h.callbacks.Close != nil {
				h.callbacks.Close()
			}
		}
	case *sdl.KeyboardEvent:
		h, ok := t.byID[e.WindowID]
		if !ok || e.Type != sdl.KEYDOWN {
			return
		}
		if b, ok := asciiKey(e.Keysym.Sym); ok {
			if h.callbacks.Keyboard != nil {
				h.callbacks.Keyboard(b, t.mouseX, t.mouseY)
			}
		} else if h.callbacks.Special != nil {
			h.callbacks.Special(int(e.Keysym.Sym), t.mouseX, t.mouseY)
		}
	case *sdl.MouseButtonEvent:
		h, ok := t.byID[e.WindowID]
		if !ok || h.callbacks.Mouse == nil {
			return
		}
		state := stateUp
		if e.Type == sdl.MOUSEBUTTONDOWN {
			state = stateDown
		}
		h.callbacks.Mouse(button(e.Button), state, int(e.X), int(e.Y))
	case *sdl.MouseMotionEvent:
		t.mouseX, t.mouseY = int(e.X), int(e.Y)
		h, ok := t.byID[e.WindowID]
		if !ok {
			return
		}
		if e.State != 0 {
			if h.callbacks.Motion != nil {
				h.callbacks.Motion(t.mouseX, t.mouseY)
			}
		} else if h.callbacks.PassiveMotion != nil {
			h.callbacks.PassiveMotion(t.mouseX, t.mouseY)
		}
	}
}

func (t *Toolkit) handles() []aperture.Handle {
	hs := make([]aperture.Handle, 0, len(t.heads))
	for h := range t.heads {
		hs = append(hs, h)
	}
	sort.Slice(hs, func(i, j int) bool { return hs[i] < hs[j] })
	return hs
}
