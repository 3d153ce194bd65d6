package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 600, cfg.Width)
	assert.Equal(t, 400, cfg.Height)
	assert.Equal(t, 200*time.Millisecond, cfg.RedrawInterval())
	assert.Equal(t, 10.0, cfg.PinRadius)
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte("width = 800\nredraw_interval_ms = 50\nadvertise = false\n"))
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 400, cfg.Height)
	assert.Equal(t, 50*time.Millisecond, cfg.RedrawInterval())
	assert.False(t, cfg.Advertise)
	assert.True(t, cfg.Share)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("width = "))
	assert.Error(t, err)

	_, err = Parse([]byte("height = -1"))
	assert.ErrorContains(t, err, "canvas size")

	_, err = Parse([]byte("share_port = 70000"))
	assert.ErrorContains(t, err, "share_port")
}

func TestLoad(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "board.toml")
	require.NoError(t, os.WriteFile(path, []byte("pin_radius = 6.5\n"), 0o644))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6.5, cfg.PinRadius)
}
