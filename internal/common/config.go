package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Storage backends
const (
	StorageMock = "mock"
	StorageFile = "file"
)

// Config holds all configuration for vire-review
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Storage   StorageConfig   `toml:"storage"`
	Portfolio PortfolioConfig `toml:"portfolio"`
	Logging   LoggingConfig   `toml:"logging"`
}

// ServerConfig holds MCP server settings
type ServerConfig struct {
	Name string `toml:"name"`
	Port int    `toml:"port"`
}

// StorageConfig selects where positions and quotes come from.
// Backend is "mock" (built-in tables, default) or "file" (TOML data file).
type StorageConfig struct {
	Backend  string `toml:"backend"`
	DataFile string `toml:"data_file"`
}

// PortfolioConfig lists the symbols reviewed when none are requested explicitly
type PortfolioConfig struct {
	Symbols []string `toml:"symbols"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level      string   `toml:"level"`
	Outputs    []string `toml:"outputs"`
	FilePath   string   `toml:"file_path"`
	MaxSizeMB  int      `toml:"max_size_mb"`
	MaxBackups int      `toml:"max_backups"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Name: "StockReviewer",
			Port: 4250,
		},
		Storage: StorageConfig{
			Backend: StorageMock,
		},
		Portfolio: PortfolioConfig{
			Symbols: []string{"AAPL", "TSLA"},
		},
		Logging: LoggingConfig{
			Level:      "info",
			Outputs:    []string{"console"},
			FilePath:   "logs/vire-review.log",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// LoadConfig loads configuration with priority: defaults -> files -> env.
// Later files override earlier ones; missing files are skipped.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	config.Storage.Backend = strings.ToLower(strings.TrimSpace(config.Storage.Backend))
	if config.Storage.Backend == "" {
		config.Storage.Backend = StorageMock
	}

	return config, nil
}

// applyEnvOverrides applies VIRE_REVIEW_* environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if port := os.Getenv("VIRE_REVIEW_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("VIRE_REVIEW_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if backend := os.Getenv("VIRE_REVIEW_STORAGE"); backend != "" {
		config.Storage.Backend = backend
	}

	if file := os.Getenv("VIRE_REVIEW_DATA_FILE"); file != "" {
		config.Storage.DataFile = file
	}

	if symbols := os.Getenv("VIRE_REVIEW_SYMBOLS"); symbols != "" {
		config.Portfolio.Symbols = SplitSymbols(symbols)
	}
}

// SplitSymbols parses a comma-separated symbol list, dropping blanks.
func SplitSymbols(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if sym := strings.TrimSpace(part); sym != "" {
			out = append(out, sym)
		}
	}
	return out
}
