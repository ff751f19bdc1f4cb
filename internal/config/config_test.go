package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ":8000", cfg.ListenAddr)
	require.Equal(t, "uploads", cfg.UploadDir)
	require.Equal(t, 500, cfg.MaxImageDim)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "listen_addr: \":9100\"\nupload_dir: /var/lib/fitometrics\nmax_image_dim: 800\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":9100", cfg.ListenAddr)
	require.Equal(t, "/var/lib/fitometrics", cfg.UploadDir)
	require.Equal(t, 800, cfg.MaxImageDim)
}

func TestLoad_PartialYAMLKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_image_dim: 256\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 256, cfg.MaxImageDim)
	require.Equal(t, ":8000", cfg.ListenAddr)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_image_dim: 256\n"), 0o644))

	t.Setenv("FITOMETRICS_MAX_DIM", "320")
	t.Setenv("FITOMETRICS_ADDR", ":7000")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 320, cfg.MaxImageDim)
	require.Equal(t, ":7000", cfg.ListenAddr)
}

func TestLoad_InvalidMaxDim(t *testing.T) {
	t.Setenv("FITOMETRICS_MAX_DIM", "zero")

	_, err := Load("")
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
