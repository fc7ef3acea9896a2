package aperture

import (
	"fmt"
	"time"

	"github.com/ignite-laboratories/aperture/internal/timer"
)

// fakeToolkit is a scripted, single-threaded stand-in for a windowing toolkit.
type fakeToolkit struct {
	now  time.Time
	next Handle

	windows map[Handle]string
	sizes   map[Handle][2]int
	bound   map[Handle]Callbacks
	timers  *timer.Queue

	screenW, screenH int
	possible         bool
	mode             string
	game             Handle

	redisplay map[Handle]bool
	created   []Handle
	destroyed []Handle
	swaps     []Handle
	hidden    []Handle
	left      int

	loops  int
	onLoop func(loop int)

	// reuse hands out the lowest free handle, as GLUT does.
	reuse bool
	// force, when set, is returned by the next surface creation.
	force     Handle
	createErr error
	gameErr   error

	initErr    error
	inited     bool
	terminated bool
}

func newFakeToolkit() *fakeToolkit {
	tk := &fakeToolkit{
		now:       time.Unix(1000, 0),
		windows:   make(map[Handle]string),
		sizes:     make(map[Handle][2]int),
		bound:     make(map[Handle]Callbacks),
		screenW:   1920,
		screenH:   1080,
		possible:  true,
		redisplay: make(map[Handle]bool),
	}
	tk.timers = timer.New(func() time.Time { return tk.now })
	return tk
}

func (tk *fakeToolkit) Init() error {
	tk.inited = true
	return tk.initErr
}

func (tk *fakeToolkit) Terminate() { tk.terminated = true }

func (tk *fakeToolkit) ScreenSize() (int, int) { return tk.screenW, tk.screenH }

func (tk *fakeToolkit) CreateWindow(title string, width, height int) (Handle, error) {
	if tk.createErr != nil {
		return 0, tk.createErr
	}
	return tk.newSurface(title, width, height), nil
}

func (tk *fakeToolkit) newSurface(title string, width, height int) Handle {
	var h Handle
	switch {
	case tk.force != 0:
		h, tk.force = tk.force, 0
	case tk.reuse:
		h = 1
		for {
			if _, ok := tk.windows[h]; !ok {
				break
			}
			h++
		}
	default:
		tk.next++
		h = tk.next
	}
	tk.windows[h] = title
	tk.sizes[h] = [2]int{width, height}
	tk.created = append(tk.created, h)
	return h
}

func (tk *fakeToolkit) DestroyWindow(h Handle) {
	if _, ok := tk.windows[h]; !ok {
		return
	}
	delete(tk.windows, h)
	delete(tk.sizes, h)
	delete(tk.bound, h)
	if tk.game == h {
		tk.game = 0
	}
	tk.destroyed = append(tk.destroyed, h)
}

func (tk *fakeToolkit) GameModeString(mode string) { tk.mode = mode }
func (tk *fakeToolkit) GameModePossible() bool     { return tk.possible }
func (tk *fakeToolkit) GameModeActive() bool       { return tk.game != 0 }

func (tk *fakeToolkit) EnterGameMode() (Handle, error) {
	if !tk.possible {
		return 0, fmt.Errorf("mode %s not possible", tk.mode)
	}
	if tk.gameErr != nil {
		return 0, tk.gameErr
	}
	h := tk.newSurface("game", tk.screenW, tk.screenH)
	tk.game = h
	return h, nil
}

func (tk *fakeToolkit) LeaveGameMode() {
	tk.left++
	tk.DestroyWindow(tk.game)
	tk.game = 0
}

func (tk *fakeToolkit) Bind(h Handle, cb Callbacks) {
	tk.bound[h] = cb
	if size, ok := tk.sizes[h]; ok && cb.Reshape != nil {
		cb.Reshape(size[0], size[1])
	}
}

func (tk *fakeToolkit) AddTimer(after time.Duration, fn func(int), value int) {
	tk.timers.Add(after, fn, value)
}

func (tk *fakeToolkit) PostRedisplay(h Handle) { tk.redisplay[h] = true }
func (tk *fakeToolkit) SwapBuffers(h Handle)   { tk.swaps = append(tk.swaps, h) }
func (tk *fakeToolkit) HideCursor(h Handle)    { tk.hidden = append(tk.hidden, h) }

func (tk *fakeToolkit) CheckLoop(timeout time.Duration) {
	tk.loops++
	tk.now = tk.now.Add(timeout)
	tk.timers.Fire()

	pending := tk.redisplay
	tk.redisplay = make(map[Handle]bool)
	for h := range pending {
		if cb, ok := tk.bound[h]; ok && cb.Display != nil {
			cb.Display()
		}
	}

	if tk.onLoop != nil {
		tk.onLoop(tk.loops)
	}
}

type fakeDevice struct {
	sizes [][2]int
}

func (d *fakeDevice) Resize(width, height int) {
	d.sizes = append(d.sizes, [2]int{width, height})
}

type fakeCanvas struct {
	device *fakeDevice
	closed int
	err    error
}

func (c *fakeCanvas) Device() Device { return c.device }

func (c *fakeCanvas) Close() error {
	c.closed++
	return c.err
}

// canvases records every canvas handed out by its CanvasFunc.
type canvases struct {
	made []*fakeCanvas
	err  error
}

func (cs *canvases) new(w *Window) (Canvas, error) {
	if cs.err != nil {
		return nil, cs.err
	}
	c := &fakeCanvas{device: &fakeDevice{}}
	cs.made = append(cs.made, c)
	return c, nil
}
