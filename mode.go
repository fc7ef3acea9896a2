package aperture

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode is a game mode descriptor in the form "<width>x<height>[:<bpp>][@<hz>]".
//
// Depth and Refresh are zero when the descriptor leaves them unspecified.
type Mode struct {
	Width   int
	Height  int
	Depth   int
	Refresh int
}

func (m Mode) String() string {
	s := fmt.Sprintf("%dx%d", m.Width, m.Height)
	if m.Depth > 0 {
		s += ":" + strconv.Itoa(m.Depth)
	}
	if m.Refresh > 0 {
		s += "@" + strconv.Itoa(m.Refresh)
	}
	return s
}

// ParseMode parses a game mode descriptor.
func ParseMode(s string) (Mode, error) {
	var m Mode
	rest := strings.TrimSpace(s)

	if i := strings.IndexByte(rest, '@'); i >= 0 {
		hz, err := strconv.Atoi(rest[i+1:])
		if err != nil || hz <= 0 {
			return Mode{}, fmt.Errorf("%w: bad refresh in %q", ErrInvalidMode, s)
		}
		m.Refresh = hz
		rest = rest[:i]
	}
	if i := strings.IndexByte(rest, ':'); i >= 0 {
		bpp, err := strconv.Atoi(rest[i+1:])
		if err != nil || bpp <= 0 {
			return Mode{}, fmt.Errorf("%w: bad depth in %q", ErrInvalidMode, s)
		}
		m.Depth = bpp
		rest = rest[:i]
	}

	w, h, ok := strings.Cut(rest, "x")
	if !ok {
		return Mode{}, fmt.Errorf("%w: missing size in %q", ErrInvalidMode, s)
	}
	width, err := strconv.Atoi(w)
	if err != nil || width <= 0 {
		return Mode{}, fmt.Errorf("%w: bad width in %q", ErrInvalidMode, s)
	}
	height, err := strconv.Atoi(h)
	if err != nil || height <= 0 {
		return Mode{}, fmt.Errorf("%w: bad height in %q", ErrInvalidMode, s)
	}
	m.Width, m.Height = width, height
	return m, nil
}

// Matches reports whether a concrete display mode satisfies the descriptor.
// Unspecified depth or refresh match anything.
func (m Mode) Matches(width, height, depth, refresh int) bool {
	if m.Width != width || m.Height != height {
		return false
	}
	if m.Depth > 0 && depth > 0 && m.Depth != depth {
		return false
	}
	if m.Refresh > 0 && m.Refresh != refresh {
		return false
	}
	return true
}
