// Package aperture binds a generic window and canvas pair to a legacy windowing toolkit.
//
// A Display owns the toolkit and the registry of live windows. Each Window tracks
// the toolkit handle of its current native surface and moves between a windowed
// surface and the toolkit's exclusive fullscreen "game mode" by destroying and
// recreating that surface.
package aperture

import (
	"github.com/ignite-laboratories/core"
)

var ModuleName = "aperture"

func init() {
	core.ModuleReport(ModuleName)
}

func Report() {}
