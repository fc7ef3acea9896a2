package aperture

import (
	"fmt"
	"sort"
	"time"

	"github.com/go-logr/logr"
	"github.com/ignite-laboratories/core"
	"github.com/ignite-laboratories/core/std"
	"go.uber.org/multierr"
)

// DefaultPollInterval bounds how long Run waits on the toolkit between stop checks.
const DefaultPollInterval = 10 * time.Millisecond

// Display owns a toolkit and the registry of its live windows.
type Display struct {
	// Synchro executes actions sent from other goroutines on the event pump thread.
	Synchro std.Synchro

	toolkit   Toolkit
	newCanvas CanvasFunc
	log       logr.Logger
	quality   Quality
	poll      time.Duration

	windows map[Handle]*Window
}

// Option configures a Display.
type Option func(*Display)

func WithLogger(log logr.Logger) Option {
	return func(d *Display) { d.log = log }
}

func WithQuality(q Quality) Option {
	return func(d *Display) { d.quality = q }
}

func WithPollInterval(interval time.Duration) Option {
	return func(d *Display) {
		if interval > 0 {
			d.poll = interval
		}
	}
}

// New initializes the toolkit and returns a display with an empty registry.
func New(tk Toolkit, newCanvas CanvasFunc, opts ...Option) (*Display, error) {
	if tk == nil || newCanvas == nil {
		return nil, fmt.Errorf("aperture: toolkit and canvas constructor are required")
	}

	d := &Display{
		Synchro:   make(std.Synchro),
		toolkit:   tk,
		newCanvas: newCanvas,
		log:       logr.Discard(),
		quality:   QualityNormal,
		poll:      DefaultPollInterval,
		windows:   make(map[Handle]*Window),
	}
	for _, opt := range opts {
		opt(d)
	}

	if err := tk.Init(); err != nil {
		return nil, fmt.Errorf("aperture: toolkit init: %w", err)
	}
	core.Verbosef(ModuleName, "display initialized\n")
	return d, nil
}

// Toolkit returns the toolkit driven by this display.
func (d *Display) Toolkit() Toolkit { return d.toolkit }

// Lookup resolves a handle to its window, or nil when nothing is registered under it.
func (d *Display) Lookup(h Handle) *Window {
	if h == 0 {
		return nil
	}
	return d.windows[h]
}

// Len reports the number of registered handles.
func (d *Display) Len() int { return len(d.windows) }

func (d *Display) register(h Handle, w *Window) error {
	if h <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidHandle, h)
	}
	if other, ok := d.windows[h]; ok && other != w {
		return fmt.Errorf("%w: %d already bound to window [%d]", ErrInvalidHandle, h, other.id)
	}
	d.windows[h] = w
	return nil
}

func (d *Display) unregister(h Handle, w *Window) {
	if d.windows[h] == w {
		delete(d.windows, h)
	}
}

// Close destroys every window still registered and terminates the toolkit.
func (d *Display) Close() error {
	handles := make([]Handle, 0, len(d.windows))
	for h := range d.windows {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })

	var err error
	for _, h := range handles {
		if w := d.windows[h]; w != nil {
			err = multierr.Append(err, w.Destroy())
		}
	}
	d.toolkit.Terminate()
	core.Verbosef(ModuleName, "display terminated\n")
	return err
}
