package config

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 2223.0, cfg.Viewer.WindowWidth)
	assert.Equal(t, 1112.0, cfg.Viewer.WindowCenter)
	assert.Equal(t, 1.0, cfg.Viewer.Zoom)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dicomview.yaml")
	data := []byte(`
viewer:
  windowWidth: 400
  windowCenter: 40
  intercept: -1024
image:
  source: https://example.org/ct.raw
  byteOrder: big
  autoWindow: true
log:
  level: debug
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 400.0, cfg.Viewer.WindowWidth)
	assert.Equal(t, 40.0, cfg.Viewer.WindowCenter)
	assert.Equal(t, -1024.0, cfg.Viewer.Intercept)
	assert.Equal(t, 1.54163614163614, cfg.Viewer.Slope)
	assert.True(t, cfg.Image.AutoWindow)
	assert.Equal(t, "debug", cfg.Log.Level)

	opts, err := cfg.RawOptions()
	require.NoError(t, err)
	assert.Equal(t, binary.BigEndian, opts.ByteOrder)
	assert.Equal(t, 512, opts.Width)
}

func TestLoadConfigInvalid(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("viewer: [1, 2"), 0o600))
	_, err := LoadConfig(bad)
	assert.Error(t, err)

	order := filepath.Join(dir, "order.yaml")
	require.NoError(t, os.WriteFile(order, []byte("image:\n  byteOrder: middle\n"), 0o600))
	_, err = LoadConfig(order)
	assert.Error(t, err)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "dicomview.yaml")
	cfg := DefaultConfig()
	cfg.Viewer.Zoom = 2.5

	require.NoError(t, SaveConfig(cfg, path))
	got, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
