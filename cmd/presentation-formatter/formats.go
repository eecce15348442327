// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/presentation-formatter/internal/format"
	"github.com/pdiddy/presentation-formatter/pkg/types"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the supported input and output formats",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := format.NewDefaultRegistry(types.HackMDConfig{})
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "input:  %s\n", strings.Join(reg.ReaderNames(), ", "))
		fmt.Fprintf(out, "output: %s\n", strings.Join(reg.WriterNames(), ", "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
