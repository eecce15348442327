// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/presentation-formatter/internal/convert"
	"github.com/pdiddy/presentation-formatter/internal/format"
	"github.com/pdiddy/presentation-formatter/internal/links"
	"github.com/pdiddy/presentation-formatter/pkg/types"
)

var linksCmd = &cobra.Command{
	Use:   "links [text...]",
	Short: "Extract (title)(url) link pairs from text or a presentation",
	Long: `Links scans text for "(title)(url)" markup and prints the pairs in order
of occurrence. Text comes from the arguments, or from the title,
introductions and details of a presentation given with --input-file.`,
	RunE: runLinks,
}

func init() {
	linksCmd.Flags().String("input-file", "", "presentation file to scan instead of arguments")
	linksCmd.Flags().String("input-format", types.InputJSON, "input file format: json, jsonc or csv")
	linksCmd.Flags().String("format", "yaml", "output format: yaml or json")

	rootCmd.AddCommand(linksCmd)
}

func runLinks(cmd *cobra.Command, args []string) error {
	inputFile, _ := cmd.Flags().GetString("input-file")
	inputFormat, _ := cmd.Flags().GetString("input-format")
	outFormat, _ := cmd.Flags().GetString("format")

	var found []links.Link
	switch {
	case inputFile != "":
		reg, err := format.NewDefaultRegistry(types.HackMDConfig{})
		if err != nil {
			return err
		}
		doc, err := convert.ReadDocument(reg, types.ConvertConfig{InputFile: inputFile, InputFormat: inputFormat})
		if err != nil {
			return err
		}
		found = links.FromDocument(doc)
	case len(args) > 0:
		found = links.Extract(strings.Join(args, " "))
	default:
		return fmt.Errorf("provide text to scan or --input-file")
	}

	return writeLinks(cmd.OutOrStdout(), found, outFormat)
}

// writeLinks prints found as YAML or JSON.
func writeLinks(w io.Writer, found []links.Link, outFormat string) error {
	switch outFormat {
	case "yaml", "":
		data, err := yaml.Marshal(found)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(found)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", outFormat)
	}
}
