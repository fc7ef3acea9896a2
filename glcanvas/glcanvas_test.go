package glcanvas

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ignite-laboratories/aperture"
)

func TestResizeUpdatesViewport(t *testing.T) {
	var viewports [][4]int32
	record := func(x, y, w, h int32) {
		viewports = append(viewports, [4]int32{x, y, w, h})
	}

	c := newCanvas(640, 480, aperture.PixelFormatRGB565, record)
	c.Device().Resize(1024, 768)

	want := [][4]int32{{0, 0, 640, 480}, {0, 0, 1024, 768}}
	if diff := cmp.Diff(want, viewports); diff != "" {
		t.Errorf("viewport mismatch (-want, +got):\n%s", diff)
	}
	dev := c.Device().(*Device)
	if dev.Width != 1024 || dev.Height != 768 {
		t.Errorf("device size %dx%d", dev.Width, dev.Height)
	}
}

func TestCloseTwice(t *testing.T) {
	c := newCanvas(1, 1, aperture.PixelFormatRGB565, func(x, y, w, h int32) {})
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	if err := c.Close(); err == nil {
		t.Fatal("expected second close to fail")
	}
}
