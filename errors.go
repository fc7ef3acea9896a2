package aperture

import "errors"

var (
	ErrInvalidInfo     = errors.New("invalid window info")
	ErrInvalidSize     = errors.New("invalid window size")
	ErrUnsupportedFlag = errors.New("unsupported window flag")
	ErrInvalidMode     = errors.New("invalid game mode")
	ErrModeUnavailable = errors.New("game mode unavailable")
	ErrInvalidHandle   = errors.New("invalid window handle")
	ErrClosed          = errors.New("window closed")
	ErrRunning         = errors.New("window already running")
	ErrNoSurface       = errors.New("window has no native surface")
)
