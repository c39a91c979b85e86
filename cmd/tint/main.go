// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tint",
	Short: "tintkit - palette derivation from a few anchor colors",
	Long: `tint turns one to three anchor colors into a complete palette: a tonal
scale per anchor, a gradient through the anchors, and status colors that
stay legible on your background.

Palettes can be exported as CSS variables, a Tailwind config, or design
tokens in JSON or YAML, saved to a local library, and shared as signed tokens.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	// A missing .env is fine, the environment may already be set
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
