package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vire-review.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "StockReviewer", cfg.Server.Name)
	assert.Equal(t, 4250, cfg.Server.Port)
	assert.Equal(t, StorageMock, cfg.Storage.Backend)
	assert.Equal(t, []string{"AAPL", "TSLA"}, cfg.Portfolio.Symbols)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfig_MissingFileIsSkipped(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, 4250, cfg.Server.Port)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
port = 9000

[storage]
backend = " FILE "
data_file = "data/book.toml"

[portfolio]
symbols = ["BABA"]
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "StockReviewer", cfg.Server.Name)
	assert.Equal(t, StorageFile, cfg.Storage.Backend)
	assert.Equal(t, "data/book.toml", cfg.Storage.DataFile)
	assert.Equal(t, []string{"BABA"}, cfg.Portfolio.Symbols)
}

func TestLoadConfig_LaterFilesWin(t *testing.T) {
	base := writeConfig(t, "[server]\nport = 9000\nname = \"Base\"\n")
	override := writeConfig(t, "[server]\nport = 9100\n")

	cfg, err := LoadConfig(base, override)
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "Base", cfg.Server.Name)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "[server]\nport = 9000\n[logging]\nlevel = \"warn\"\n")

	t.Setenv("VIRE_REVIEW_PORT", "9200")
	t.Setenv("VIRE_REVIEW_LOG_LEVEL", "debug")
	t.Setenv("VIRE_REVIEW_STORAGE", "file")
	t.Setenv("VIRE_REVIEW_DATA_FILE", "/tmp/book.toml")
	t.Setenv("VIRE_REVIEW_SYMBOLS", "aapl, ,baba")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9200, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, StorageFile, cfg.Storage.Backend)
	assert.Equal(t, "/tmp/book.toml", cfg.Storage.DataFile)
	assert.Equal(t, []string{"aapl", "baba"}, cfg.Portfolio.Symbols)
}

func TestLoadConfig_InvalidPortEnvIgnored(t *testing.T) {
	t.Setenv("VIRE_REVIEW_PORT", "not-a-port")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 4250, cfg.Server.Port)
}

func TestLoadConfig_ParseError(t *testing.T) {
	path := writeConfig(t, "[server\nport = ")

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
