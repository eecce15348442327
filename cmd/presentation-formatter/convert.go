// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/presentation-formatter/internal/config"
	"github.com/pdiddy/presentation-formatter/internal/convert"
	"github.com/pdiddy/presentation-formatter/internal/format"
	"github.com/pdiddy/presentation-formatter/internal/logging"
	"github.com/pdiddy/presentation-formatter/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a JSON or CSV presentation into HackMD Markdown",
	Long: `Convert reads a presentation document in the selected input format and
writes it as HackMD Markdown. Sections are emitted in order; each section's
code file is read in full and embedded as a fenced code block, and every
section ends with a horizontal rule.

Input formats: json, jsonc, csv. Output formats: hackmd.`,
	Args: cobra.NoArgs,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("input-file", "", "input file path (required)")
	convertCmd.Flags().String("output-file", types.DefaultOutputFile, "output file path")
	convertCmd.Flags().String("input-format", types.InputJSON, "input file format: json, jsonc or csv")
	convertCmd.Flags().String("output-format", types.OutputHackMD, "output file format: hackmd")
	convertCmd.Flags().String("code-language", "", "fence language for code blocks (default: derived from the file extension)")
	convertCmd.Flags().Bool("line-numbers", true, "mark code blocks for HackMD line numbers")
	convertCmd.Flags().Int("source-cache-size", 64, "maximum number of code files held in memory")

	for key, flag := range map[string]string{
		config.KeyInputFile:       "input-file",
		config.KeyOutputFile:      "output-file",
		config.KeyInputFormat:     "input-format",
		config.KeyOutputFormat:    "output-format",
		config.KeyCodeLanguage:    "code-language",
		config.KeyLineNumbers:     "line-numbers",
		config.KeySourceCacheSize: "source-cache-size",
	} {
		_ = viper.BindPFlag(key, convertCmd.Flags().Lookup(flag))
	}

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := config.Load(viper.GetViper())
	if err := config.Validate(cfg); err != nil {
		return err
	}

	log, err := logging.New(cfg.Log, "convert", cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	reg, err := format.NewDefaultRegistry(cfg.HackMD)
	if err != nil {
		return err
	}

	if _, err := convert.Run(reg, cfg, log); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "done!!")
	return nil
}
