package aperture

import (
	"strings"

	"github.com/ignite-laboratories/core/std"
)

// DefaultSize sets the default window size for new windows.
//
// If not overridden, it defaults to 640x480px
var DefaultSize = std.XY[int]{
	X: 640,
	Y: 480,
}

// The largest surface a window may be created with or reshaped to.
const (
	WidthMax  = 8192
	HeightMax = 8192
)

// Flag declares window capabilities.
type Flag uint32

const (
	FlagFullscreen Flag = 1 << iota
	FlagHideCursor
	FlagMaximum
	FlagMinimum
	FlagHide
	FlagHideTitle
	FlagNotResize
)

// FlagUnsupported is every capability the toolkit adapter cannot provide.
const FlagUnsupported = FlagMaximum | FlagMinimum | FlagHide | FlagHideTitle | FlagNotResize

var flagNames = []struct {
	flag Flag
	name string
}{
	{FlagFullscreen, "fullscreen"},
	{FlagHideCursor, "hide_cursor"},
	{FlagMaximum, "maximum"},
	{FlagMinimum, "minimum"},
	{FlagHide, "hide"},
	{FlagHideTitle, "hide_title"},
	{FlagNotResize, "not_resize"},
}

// ParseFlag resolves a flag from its configuration name.
func ParseFlag(name string) (Flag, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, f := range flagNames {
		if f.name == name {
			return f.flag, true
		}
	}
	return 0, false
}

func (f Flag) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	for _, n := range flagNames {
		if f&n.flag != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// PixelFormat describes the layout the canvas should render with.
type PixelFormat uint32

const (
	PixelFormatRGB565 PixelFormat = iota + 1
	PixelFormatRGBA8888

	// PixelFormatBigEndian is OR'd onto a base format.
	PixelFormatBigEndian PixelFormat = 1 << 8
)

func (p PixelFormat) String() string {
	var s string
	switch p &^ PixelFormatBigEndian {
	case PixelFormatRGB565:
		s = "rgb565"
	case PixelFormatRGBA8888:
		s = "rgba8888"
	default:
		s = "unknown"
	}
	if p&PixelFormatBigEndian != 0 {
		return s + "_be"
	}
	return s + "_le"
}

// Quality is the rendering quality setting used to pick a pixel format.
type Quality int

const (
	QualityLow Quality = iota
	QualityNormal
	QualityTop
)

// ParseQuality resolves a quality from its configuration name.
func ParseQuality(name string) (Quality, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "low":
		return QualityLow, true
	case "", "normal":
		return QualityNormal, true
	case "top":
		return QualityTop, true
	}
	return 0, false
}

// PixelFormat returns the canvas format for this quality.
func (q Quality) PixelFormat() PixelFormat {
	if q < QualityTop {
		return PixelFormatRGB565
	}
	return PixelFormatRGBA8888 | PixelFormatBigEndian
}
