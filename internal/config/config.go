package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexiusacademia/goshaft/internal/geometry"
	"github.com/alexiusacademia/goshaft/internal/material"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds CLI configuration for goshaft.
type Config struct {
	// Material grade from the catalog
	Material string
	// YieldStrength overrides the grade's yield strength when non-zero (N/mm²)
	YieldStrength float64
	SafetyFactor  float64

	Segments   int
	StockCount int
	Format     string
	LogLevel   string
	NoColor    bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Material:     material.DefaultGrade,
		SafetyFactor: material.DefaultSafetyFactor,
		Segments:     geometry.DefaultSegments,
		StockCount:   3,
		Format:       FormatText,
		LogLevel:     "warn",
	}
}

// Validate checks the configuration for errors and normalizes values.
// Numeric design inputs are checked by the calculator, not here.
func (c *Config) Validate() error {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unsupported format %q (use text, json or yaml)", c.Format)
	}

	if c.Segments < 3 {
		return fmt.Errorf("segments must be at least 3, got %d", c.Segments)
	}
	if c.StockCount < 0 {
		return fmt.Errorf("stock count must not be negative, got %d", c.StockCount)
	}

	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}

	if c.YieldStrength == 0 {
		if _, err := material.Lookup(c.Material); err != nil {
			return err
		}
	}
	return nil
}

// ResolveMaterial returns the design material. An explicit yield strength wins over the grade.
func (c *Config) ResolveMaterial() (material.Material, error) {
	if c.YieldStrength != 0 {
		return material.Custom(c.YieldStrength), nil
	}
	return material.Lookup(c.Material)
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets the destination if the value is non-empty and the flag wasn't changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets the destination if the value is positive and the flag wasn't changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setFloat sets the destination if the value is positive and the flag wasn't changed.
func (s *configSetter) setFloat(flag string, value float64, dst *float64) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets the destination if the value is non-nil and the flag wasn't changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setMaterial applies the grade and yield strength of one config layer.
// Both describe the same material: an explicit --material blocks a layered
// yield strength, and a layered grade clears the yield strength of a lower layer.
// Within one layer a positive yield strength wins over the grade.
func (s *configSetter) setMaterial(grade string, fy float64, cfg *Config) {
	if grade != "" && !s.changed["material"] {
		cfg.Material = grade
		if !s.changed["fy"] {
			cfg.YieldStrength = 0
		}
	}
	if s.changed["material"] {
		return
	}
	s.setFloat("fy", fy, &cfg.YieldStrength)
}

// parseFloat parses an environment value; empty means unset.
func parseFloat(name, value string) (float64, error) {
	if value == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", name, err)
	}
	return f, nil
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	s.setInt(flag, i, dst)
	return nil
}

// setFloatFromString parses a string to float64 and sets the destination if valid.
func (s *configSetter) setFloatFromString(flag, value string, dst *float64) error {
	if s.changed[flag] {
		return nil
	}
	f, err := parseFloat(flag, value)
	if err != nil {
		return err
	}
	s.setFloat(flag, f, dst)
	return nil
}

// setBoolFromString accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
