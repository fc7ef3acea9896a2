package glfw

import (
	"fmt"
	"sort"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/ignite-laboratories/aperture"
	"github.com/ignite-laboratories/aperture/internal/timer"
	"github.com/ignite-laboratories/core"
)

func init() {
	GLVersion.Major = 3
	GLVersion.Minor = 1
	GLVersion.Core = false
}

// GLVersion selects the context requested for every window.
var GLVersion struct {
	Major int
	Minor int
	Core  bool
}

// Toolkit drives GLFW through the aperture.Toolkit contract. Game mode is an
// exclusive fullscreen window on the primary monitor.
type Toolkit struct {
	heads  map[aperture.Handle]*head
	next   aperture.Handle
	timers *timer.Queue

	mode   aperture.Mode
	modeOK bool
	game   aperture.Handle
}

var _ aperture.Toolkit = (*Toolkit)(nil)

func New() *Toolkit {
	return &Toolkit{
		heads:  make(map[aperture.Handle]*head),
		timers: timer.New(nil),
	}
}

func (t *Toolkit) Init() error {
	core.Verbosef(ModuleName, "sparking GLFW integration\n")
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, GLVersion.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, GLVersion.Minor)
	if GLVersion.Core {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	} else {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLAnyProfile)
	}
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.StencilBits, 8)
	glfw.WindowHint(glfw.Samples, 4)

	core.Verbosef(ModuleName, "GLFW %s\n", glfw.GetVersionString())
	return nil
}

func (t *Toolkit) Terminate() {
	for _, h := range t.handles() {
		t.DestroyWindow(h)
	}
	t.timers.Clear()
	glfw.Terminate()
	core.Verbosef(ModuleName, "GLFW integration stopped\n")
}

func (t *Toolkit) ScreenSize() (int, int) {
	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return 0, 0
	}
	vm := monitor.GetVideoMode()
	return vm.Width, vm.Height
}

func (t *Toolkit) CreateWindow(title string, width, height int) (aperture.Handle, error) {
	glfw.WindowHint(glfw.RefreshRate, glfw.DontCare)
	w, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create GLFW window: %w", err)
	}
	return t.add(w), nil
}

func (t *Toolkit) add(w *glfw.Window) aperture.Handle {
	t.next++
	h := &head{handle: t.next, window: w}
	t.heads[h.handle] = h
	w.MakeContextCurrent()
	core.Verbosef(ModuleName, "window [%d] created\n", h.handle)
	return h.handle
}

func (t *Toolkit) DestroyWindow(handle aperture.Handle) {
	h, ok := t.heads[handle]
	if !ok {
		return
	}
	delete(t.heads, handle)
	if t.game == handle {
		t.game = 0
	}
	h.destroy()
	core.Verbosef(ModuleName, "window [%d] destroyed\n", handle)
}

func (t *Toolkit) GameModeString(mode string) {
	m, err := aperture.ParseMode(mode)
	t.mode, t.modeOK = m, err == nil
}

func (t *Toolkit) GameModePossible() bool {
	if !t.modeOK {
		return false
	}
	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return false
	}
	for _, vm := range monitor.GetVideoModes() {
		if t.mode.Matches(vm.Width, vm.Height, vm.RedBits+vm.GreenBits+vm.BlueBits, vm.RefreshRate) {
			return true
		}
	}
	return false
}

func (t *Toolkit) GameModeActive() bool { return t.game != 0 }

func (t *Toolkit) EnterGameMode() (aperture.Handle, error) {
	if !t.GameModePossible() {
		return 0, fmt.Errorf("game mode %s is not available", t.mode)
	}
	if t.game != 0 {
		t.DestroyWindow(t.game)
	}

	refresh := glfw.DontCare
	if t.mode.Refresh > 0 {
		refresh = t.mode.Refresh
	}
	glfw.WindowHint(glfw.RefreshRate, refresh)

	w, err := glfw.CreateWindow(t.mode.Width, t.mode.Height, "", glfw.GetPrimaryMonitor(), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to enter game mode %s: %w", t.mode, err)
	}
	t.game = t.add(w)
	return t.game, nil
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
	h.bind(cb)
	if cb.Reshape != nil {
		cb.Reshape(h.window.GetFramebufferSize())
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
		h.window.SwapBuffers()
	}
}

func (t *Toolkit) HideCursor(handle aperture.Handle) {
	if h, ok := t.heads[handle]; ok {
		h.window.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
	}
}

func (t *Toolkit) CheckLoop(timeout time.Duration) {
	wait := timeout
	if next, ok := t.timers.Next(); ok && next < wait {
		wait = next
	}
	if wait > 0 {
		glfw.WaitEventsTimeout(wait.Seconds())
	} else {
		glfw.PollEvents()
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

func (t *Toolkit) handles() []aperture.Handle {
	hs := make([]aperture.Handle, 0, len(t.heads))
	for h := range t.heads {
		hs = append(hs, h)
	}
	sort.Slice(hs, func(i, j int) bool { return hs[i] < hs[j] })
	return hs
}
