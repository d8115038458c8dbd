package config

import "os"

// ApplyEnvConfig applies configuration from environment variables (GOSHAFT_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	fy, err := parseFloat("fy", os.Getenv("GOSHAFT_YIELD_STRENGTH"))
	if err != nil {
		return err
	}
	s.setMaterial(os.Getenv("GOSHAFT_MATERIAL"), fy, cfg)

	s.setString("format", os.Getenv("GOSHAFT_FORMAT"), &cfg.Format)
	s.setString("log-level", os.Getenv("GOSHAFT_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setFloatFromString("sf", os.Getenv("GOSHAFT_SAFETY_FACTOR"), &cfg.SafetyFactor); err != nil {
		return err
	}

	if err := s.setIntFromString("segments", os.Getenv("GOSHAFT_SEGMENTS"), &cfg.Segments); err != nil {
		return err
	}
	if err := s.setIntFromString("stock", os.Getenv("GOSHAFT_STOCK_COUNT"), &cfg.StockCount); err != nil {
		return err
	}

	s.setBoolFromString("no-color", os.Getenv("GOSHAFT_NO_COLOR"), &cfg.NoColor)

	return nil
}
