// Package sdl2 provides an aperture toolkit backed by SDL2
package sdl2

import (
	"github.com/ignite-laboratories/aperture"
	"github.com/ignite-laboratories/core"
)

var ModuleName = "sdl2"

func init() {
	aperture.Report()
	core.SubmoduleReport(aperture.ModuleName, ModuleName)
}

func Report() {}
