package main

import (
	"flag"
	"log"
	"math"
	"os"
	"runtime"
	"time"

	"github.com/go-logr/stdr"
	"github.com/ignite-laboratories/aperture"
	"github.com/ignite-laboratories/aperture/config"
	"github.com/ignite-laboratories/aperture/glcanvas"
	"github.com/ignite-laboratories/aperture/glfw"
	"github.com/ignite-laboratories/aperture/sdl2"
)

func init() {
	// Both toolkits require the main thread.
	runtime.LockOSThread()
}

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	configPath := fs.String("config", "aperture.yaml", "path to the window config")
	toolkit := fs.String("toolkit", "", "override the configured toolkit (glfw or sdl2)")
	fullscreen := fs.Bool("fullscreen", false, "start in fullscreen")

	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatalf("parse flags: %v", err)
	}

	cfg, err := config.LoadFromPath(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *toolkit != "" {
		cfg.Toolkit = *toolkit
		if err := cfg.Validate(); err != nil {
			log.Fatalf("config: %v", err)
		}
	}
	flags, _ := cfg.WindowFlags()
	if *fullscreen {
		flags |= aperture.FlagFullscreen
	}

	var tk aperture.Toolkit
	switch cfg.Toolkit {
	case config.ToolkitSDL2:
		tk = sdl2.New()
	default:
		tk = glfw.New()
	}

	logger := stdr.New(log.New(os.Stderr, "", log.LstdFlags))
	d, err := aperture.New(tk, glcanvas.New,
		aperture.WithLogger(logger.WithName(aperture.ModuleName)),
		aperture.WithQuality(cfg.WindowQuality()),
		aperture.WithPollInterval(cfg.PollInterval),
	)
	if err != nil {
		log.Fatalf("display: %v", err)
	}

	start := time.Now()
	info := cfg.Info()
	info.Draw = func(w *aperture.Window, c aperture.Canvas) {
		phase := time.Since(start).Seconds()
		c.(*glcanvas.Canvas).Clear(glcanvas.Color{
			float32(0.5 + 0.5*math.Sin(phase)),
			0.12,
			float32(0.5 + 0.5*math.Cos(phase)),
			1,
		})
	}
	info.Resize = func(w *aperture.Window, _ aperture.Canvas) {
		logger.V(1).Info("resized", "width", w.Width(), "height", w.Height())
	}
	info.Close = func(w *aperture.Window) {
		logger.Info("window closed", "window", w.ID())
	}
	info.Input = func(w *aperture.Window, e aperture.InputEvent) {
		if e.Kind != aperture.InputKeyboard {
			return
		}
		switch e.Key {
		case 0x1b:
			w.Close()
		case 'f':
			// Surfaces must not be replaced from inside their own callbacks.
			go d.Synchro.Send(func() {
				if err := w.SetFullscreen(!w.Fullscreen()); err != nil {
					logger.Error(err, "fullscreen toggle failed")
				}
			})
		}
	}

	w, err := d.CreateWindow(info, cfg.Width, cfg.Height, flags)
	if err != nil {
		log.Fatalf("window: %v", err)
	}
	if err := w.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
	if err := d.Close(); err != nil {
		log.Fatalf("close: %v", err)
	}
}
