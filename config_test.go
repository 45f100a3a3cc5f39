package rowmat

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rowmat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
transfer_buffer_size: 8192
max_value_size: 1048576
debug: true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 8192, cfg.TransferBufferSize)
	require.Equal(t, 1048576, cfg.MaxValueSize)
	require.True(t, cfg.Debug)
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, `debug: false`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 4096, cfg.TransferBufferSize)
	require.Equal(t, 0, cfg.MaxValueSize)
	require.False(t, cfg.Debug)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
