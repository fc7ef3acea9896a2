// Package glcanvas provides an OpenGL backed aperture canvas.
package glcanvas

import (
	"github.com/ignite-laboratories/aperture"
	"github.com/ignite-laboratories/core"
)

var ModuleName = "glcanvas"

func init() {
	aperture.Report()
	core.SubmoduleReport(aperture.ModuleName, ModuleName)
}
