package config

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config with TOML tags. Pointers distinguish unset booleans.
type FileConfig struct {
	Material      string  `toml:"material"`
	YieldStrength float64 `toml:"yield_strength"`
	SafetyFactor  float64 `toml:"safety_factor"`
	Segments      int     `toml:"segments"`
	StockCount    int     `toml:"stock_count"`
	Format        string  `toml:"format"`
	LogLevel      string  `toml:"log_level"`
	NoColor       *bool   `toml:"no_color"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.goshaft/config.toml, or "" without a home directory.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".goshaft", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setMaterial(fc.Material, fc.YieldStrength, cfg)
	s.setString("format", fc.Format, &cfg.Format)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	s.setFloat("sf", fc.SafetyFactor, &cfg.SafetyFactor)

	s.setInt("segments", fc.Segments, &cfg.Segments)
	s.setInt("stock", fc.StockCount, &cfg.StockCount)

	s.setBool("no-color", fc.NoColor, &cfg.NoColor)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
