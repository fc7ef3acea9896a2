// Package config loads window settings from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ignite-laboratories/aperture"
	"gopkg.in/yaml.v3"
)

const (
	ToolkitGLFW = "glfw"
	ToolkitSDL2 = "sdl2"
)

type Config struct {
	Title        string        `yaml:"title"`
	Framerate    int           `yaml:"framerate"`
	Width        int           `yaml:"width"`
	Height       int           `yaml:"height"`
	Flags        []string      `yaml:"flags"`
	Quality      string        `yaml:"quality"`
	Toolkit      string        `yaml:"toolkit"`
	PollInterval time.Duration `yaml:"poll_interval"`
}

func DefaultConfig() *Config {
	return &Config{
		Title:        "aperture",
		Framerate:    60,
		Width:        aperture.DefaultSize.X,
		Height:       aperture.DefaultSize.Y,
		Quality:      "normal",
		Toolkit:      ToolkitGLFW,
		PollInterval: aperture.DefaultPollInterval,
	}
}

// LoadFromPath reads a config file over the defaults. A missing file yields the defaults.
func LoadFromPath(path string) (*Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes YAML over the defaults and validates the result.
func Load(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the config and normalizes the toolkit and quality names.
func (c *Config) Validate() error {
	c.Toolkit = strings.ToLower(strings.TrimSpace(c.Toolkit))
	c.Quality = strings.ToLower(strings.TrimSpace(c.Quality))

	if c.Framerate <= 0 {
		return fmt.Errorf("framerate must be positive, got %d", c.Framerate)
	}
	if c.Width <= 0 || c.Width > aperture.WidthMax {
		return fmt.Errorf("width must be within 1..%d, got %d", aperture.WidthMax, c.Width)
	}
	if c.Height <= 0 || c.Height > aperture.HeightMax {
		return fmt.Errorf("height must be within 1..%d, got %d", aperture.HeightMax, c.Height)
	}
	if _, err := c.WindowFlags(); err != nil {
		return err
	}
	if _, ok := aperture.ParseQuality(c.Quality); !ok {
		return fmt.Errorf("unknown quality %q", c.Quality)
	}
	switch c.Toolkit {
	case ToolkitGLFW, ToolkitSDL2:
	default:
		return fmt.Errorf("unknown toolkit %q (want %s or %s)", c.Toolkit, ToolkitGLFW, ToolkitSDL2)
	}
	if c.PollInterval < 0 {
		return fmt.Errorf("poll_interval must not be negative, got %s", c.PollInterval)
	}
	return nil
}

// WindowFlags converts the configured flag names. Only flags the adapter supports are accepted.
func (c *Config) WindowFlags() (aperture.Flag, error) {
	var flags aperture.Flag
	for _, name := range c.Flags {
		f, ok := aperture.ParseFlag(name)
		if !ok {
			return 0, fmt.Errorf("unknown window flag %q", name)
		}
		if f&aperture.FlagUnsupported != 0 {
			return 0, fmt.Errorf("window flag %q is not supported", name)
		}
		flags |= f
	}
	return flags, nil
}

// WindowQuality returns the parsed quality; call Validate first.
func (c *Config) WindowQuality() aperture.Quality {
	q, _ := aperture.ParseQuality(c.Quality)
	return q
}

// Info returns the window info for this config without callbacks.
func (c *Config) Info() aperture.Info {
	return aperture.Info{
		Title:     c.Title,
		Framerate: c.Framerate,
	}
}
