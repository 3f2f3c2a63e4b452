// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paper-formatter CLI.
// Implements: prd001-structure through prd007-correction (CLI surface).
// See docs/ARCHITECTURE § Pipeline Interface, § Project Structure.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-formatter/internal/correct"
	"github.com/pdiddy/paper-formatter/internal/secrets"
	"github.com/pdiddy/paper-formatter/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns the secret value for key if it exists, or fallback otherwise.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the paper-formatter CLI.
var rootCmd = &cobra.Command{
	Use:   "paper-formatter",
	Short: "Format academic manuscripts to the IEEE conference style",
	Long: `paper-formatter restructures academic manuscripts into the IEEE conference
format: it classifies sections, reorders them canonically, converts citations
to numeric style, applies IEEE typography, detects compliance issues, scores
the result, and tracks every change it made.

Use format for a report, render for docx/html artifacts, and serve to run
the HTTP service.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paper-formatter.yaml or ~/.config/paper-formatter/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paper-formatter")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paper-formatter"))
		}
	}

	viper.SetEnvPrefix("PAPER_FORMATTER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// formatterConfig assembles the effective config from defaults, the config
// file, and environment overrides.
func formatterConfig() types.FormatterConfig {
	cfg := types.DefaultConfig()

	if v := viper.GetString("correction.model"); v != "" {
		cfg.Correction.Model = v
	}
	if v := viper.GetInt("correction.workers"); v > 0 {
		cfg.Correction.Workers = v
	}
	if v := viper.GetDuration("correction.timeout"); v > 0 {
		cfg.Correction.Timeout = v
	}
	if v := viper.GetString("store.dir"); v != "" {
		cfg.Store.Dir = v
	}
	if v := viper.GetString("server.addr"); v != "" {
		cfg.Server.Addr = v
	}
	if v := viper.GetInt64("server.max_upload_bytes"); v > 0 {
		cfg.Server.MaxUploadBytes = v
	}

	cfg.Correction.APIKey = secretDefault(secrets.KeyGemini, viper.GetString("gemini_api_key"))
	return cfg
}

// newCorrector builds the Gemini corrector when a key is configured and
// correction is not disabled. A nil return disables grammar correction.
func newCorrector(ctx context.Context, cfg types.FormatterConfig, disabled bool) (correct.Corrector, func(), error) {
	if disabled || cfg.Correction.APIKey == "" {
		return nil, func() {}, nil
	}
	g, err := correct.NewGemini(ctx, cfg.Correction)
	if err != nil {
		return nil, nil, err
	}
	if g == nil {
		return nil, func() {}, nil
	}
	return g, func() { _ = g.Close() }, nil
}

func durationOrZero(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0
	}
	return d
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
