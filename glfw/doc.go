// Package glfw provides an aperture toolkit backed by GLFW.
//
// GLFW must be driven from the process's main thread; callers should lock it
// with runtime.LockOSThread from an init function before creating a display.
package glfw

import (
	"github.com/ignite-laboratories/aperture"
	"github.com/ignite-laboratories/core"
)

var ModuleName = "glfw"

func init() {
	aperture.Report()
	core.SubmoduleReport(aperture.ModuleName, ModuleName)
}

func Report() {}
