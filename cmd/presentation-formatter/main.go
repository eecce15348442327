// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the presentation-formatter CLI.
// It converts JSON or CSV presentation content into HackMD Markdown.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/presentation-formatter/internal/config"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the presentation-formatter CLI.
var rootCmd = &cobra.Command{
	Use:   "presentation-formatter",
	Short: "Convert presentation content into HackMD Markdown",
	Long: `presentation-formatter reads a presentation (a title plus ordered sections
of introduction, code file and details) from JSON or CSV and writes a single
HackMD Markdown document with each referenced code file embedded as a fenced
block.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./presentation-formatter.yaml or ~/.config/presentation-formatter/presentation-formatter.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "console", "log format: console, json, pretty")

	_ = viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag(config.KeyLogFormat, rootCmd.PersistentFlags().Lookup("log-format"))
}

func initConfig() {
	// A missing .env is fine; anything else is worth a warning.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: could not load .env: %v\n", err)
	}

	config.SetDefaults(viper.GetViper())

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("presentation-formatter")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "presentation-formatter"))
		}
	}

	viper.SetEnvPrefix("PRESENTATION_FORMATTER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
