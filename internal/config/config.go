// Package config holds the runtime settings of the board.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	CustomURLScheme = "polyboard://"
	DefaultPort     = 8888
)

// Config is loaded from an optional TOML file; zero fields keep defaults.
type Config struct {
	Width            int     `toml:"width"`
	Height           int     `toml:"height"`
	RedrawIntervalMS int     `toml:"redraw_interval_ms"`
	PinRadius        float64 `toml:"pin_radius"`
	SharePort        int     `toml:"share_port"`
	Share            bool    `toml:"share"`
	Advertise        bool    `toml:"advertise"`
	Verbose          bool    `toml:"verbose"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Width:            600,
		Height:           400,
		RedrawIntervalMS: 200,
		PinRadius:        10,
		SharePort:        DefaultPort,
		Share:            true,
		Advertise:        true,
	}
}

// RedrawInterval returns the scripted redraw cadence.
func (c Config) RedrawInterval() time.Duration {
	return time.Duration(c.RedrawIntervalMS) * time.Millisecond
}

// Validate rejects settings the editor cannot work with.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("canvas size %dx%d must be positive", c.Width, c.Height)
	}
	if c.RedrawIntervalMS <= 0 {
		return fmt.Errorf("redraw_interval_ms %d must be positive", c.RedrawIntervalMS)
	}
	if c.PinRadius <= 0 {
		return fmt.Errorf("pin_radius %v must be positive", c.PinRadius)
	}
	if c.SharePort <= 0 || c.SharePort > 65535 {
		return fmt.Errorf("share_port %d out of range", c.SharePort)
	}
	return nil
}

// Parse overlays TOML data on the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Load reads path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}
