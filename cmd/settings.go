package cmd

import (
	"fmt"

	"github.com/alexiusacademia/goshaft/internal/config"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// addMaterialFlags registers the flags shared by design and check.
func addMaterialFlags(cmd *cobra.Command, cfg *config.Config) {
	cmd.Flags().StringVar(&cfg.Material, "material", cfg.Material, "Material grade (see 'goshaft materials')")
	cmd.Flags().Float64Var(&cfg.YieldStrength, "fy", cfg.YieldStrength, "Yield strength fy (N/mm²), overrides --material when non-zero")
	cmd.Flags().Float64Var(&cfg.SafetyFactor, "sf", cfg.SafetyFactor, "Safety factor n applied to fy")
}

func addOutputFlags(cmd *cobra.Command, cfg *config.Config) {
	cmd.Flags().StringVarP(&cfg.Format, "format", "f", cfg.Format, "Output format: text, json or yaml")
	cmd.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	cmd.Flags().BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colored output")
}

// resolveConfig layers the config file and GOSHAFT_* environment under the
// explicitly set flags, validates the result and builds the command logger.
func resolveConfig(cmd *cobra.Command, cfg *config.Config) (zerolog.Logger, error) {
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	cfgFile, _ := cmd.Flags().GetString("config")
	explicit := cfgFile != ""
	if !explicit {
		cfgFile = config.DefaultConfigPath()
	}

	if cfgFile != "" && (explicit || config.FileExists(cfgFile)) {
		fc, err := config.LoadFileConfig(cfgFile)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("load config: %w", err)
		}
		config.ApplyFileConfig(cfg, fc, changed)
	}

	if err := config.ApplyEnvConfig(cfg, changed); err != nil {
		return zerolog.Nop(), err
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return zerolog.Nop(), err
	}

	if cfg.NoColor {
		color.NoColor = true
	}

	log, err := config.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.NoColor)
	if err != nil {
		return zerolog.Nop(), err
	}
	log.Debug().Str("config_file", cfgFile).Interface("config", cfg).Msg("configuration")
	return log, nil
}
