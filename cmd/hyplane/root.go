// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	defaultModelTag = "UHP"
	defaultDigits   = 6

	formatText = "text"
	formatYAML = "yaml"
)

// config carries the settings every subcommand shares. Precedence is the
// viper one: explicit flag, then config file, then built-in default.
type config struct {
	Model  string `mapstructure:"model"`
	Digits int    `mapstructure:"digits"`
	Format string `mapstructure:"format"`
}

var (
	cfgFile string
	verbose bool
	cfg     config

	// logger is replaced in initConfig once the verbosity flag is known.
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
)

var rootCmd = &cobra.Command{
	Use:   "hyplane",
	Short: "Inspect isometries of the hyperbolic plane",
	Long: `hyplane classifies and converts isometries of the hyperbolic plane
across its four coordinate models: the upper half-plane (UHP), the
Poincare disk (PD), the Klein disk (KM) and the hyperboloid (HM).

Matrices are row-major entries in the conventions of their model: four
entries for the 2x2 models (UHP, PD), nine for the 3x3 models (KM, HM).
Entries use Go number syntax ("1.5", "2i", "0.5+0.5i") and may arrive as
separate arguments or inside one comma separated argument.

Negative entries look like flags to the parser, so either quote the whole
matrix as one argument or put -- before the entries:

  hyplane classify "0,1,-1,0"
  hyplane classify -- 0 1 -1 0

Settings live in ~/.config/hyplane/config.yaml (keys: model, digits,
format) and every key can be overridden per run with the matching flag.`,
	Version:      version,
	SilenceUsage: true,
}

// Execute runs the command tree. Split from main so tests can drive it.
func Execute() error { return rootCmd.Execute() }

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/hyplane/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log progress to stderr")
	rootCmd.PersistentFlags().StringP("model", "m", defaultModelTag,
		"model the matrix lives in (UHP, PD, KM, HM)")
	rootCmd.PersistentFlags().Int("digits", defaultDigits,
		"significant digits in numeric output")
	rootCmd.PersistentFlags().String("format", formatText,
		"output format (text or yaml)")

	// Bind flags to viper
	_ = viper.BindPFlag("model", rootCmd.PersistentFlags().Lookup("model"))
	_ = viper.BindPFlag("digits", rootCmd.PersistentFlags().Lookup("digits"))
	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
}

func initConfig() {
	var level = slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	viper.SetDefault("model", defaultModelTag)
	viper.SetDefault("digits", defaultDigits)
	viper.SetDefault("format", formatText)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "hyplane"))
		}
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		// Running without a config file is the normal case; anything
		// else (unreadable file, bad YAML) deserves a warning.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			logger.Warn("config file unreadable", "path", viper.ConfigFileUsed(), "err", err)
		}
	} else {
		logger.Debug("config file loaded", "path", viper.ConfigFileUsed())
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		logger.Warn("config did not unmarshal, using defaults", "err", err)
		cfg = config{Model: defaultModelTag, Digits: defaultDigits, Format: formatText}
	}
}
