package glcanvas

import (
	"fmt"
	"sync"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/ignite-laboratories/aperture"
	"github.com/ignite-laboratories/core"
)

var initOnce sync.Once
var initErr error

// Color is a normalized RGBA clear colour.
type Color [4]float32

// Device tracks the GL viewport of a window.
type Device struct {
	Width, Height int
	PixelFormat   aperture.PixelFormat

	viewport func(x, y, width, height int32)
}

func (d *Device) Resize(width, height int) {
	d.Width, d.Height = width, height
	d.viewport(0, 0, int32(width), int32(height))
}

// Canvas is a window's GL drawing surface. The window's context must be
// current whenever it is used, which aperture guarantees inside callbacks.
type Canvas struct {
	device *Device
	closed bool
}

// New is an aperture.CanvasFunc.
func New(w *aperture.Window) (aperture.Canvas, error) {
	initOnce.Do(func() {
		initErr = gl.Init()
		if initErr == nil {
			core.Verbosef(ModuleName, "initialized with %s\n", gl.GoStr(gl.GetString(gl.VERSION)))
		}
	})
	if initErr != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", initErr)
	}

	c := newCanvas(w.Width(), w.Height(), w.PixelFormat(), gl.Viewport)
	core.Verbosef(ModuleName, "canvas for window [%d] %dx%d %s\n", w.ID(), w.Width(), w.Height(), w.PixelFormat())
	return c, nil
}

func newCanvas(width, height int, pixfmt aperture.PixelFormat, viewport func(x, y, width, height int32)) *Canvas {
	c := &Canvas{device: &Device{PixelFormat: pixfmt, viewport: viewport}}
	c.device.Resize(width, height)
	return c
}

func (c *Canvas) Device() aperture.Device { return c.device }

// Clear fills the whole viewport with a colour.
func (c *Canvas) Clear(color Color) {
	if c.closed {
		return
	}
	gl.ClearColor(color[0], color[1], color[2], color[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)
}

func (c *Canvas) Close() error {
	if c.closed {
		return fmt.Errorf("glcanvas: already closed")
	}
	c.closed = true
	return nil
}
