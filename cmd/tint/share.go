// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/tintkit/internal/config"
	"github.com/thatcatcamp/tintkit/internal/engine"
	"github.com/thatcatcamp/tintkit/internal/library"
	"github.com/thatcatcamp/tintkit/internal/palette"
	"github.com/thatcatcamp/tintkit/internal/share"
	"github.com/thatcatcamp/tintkit/internal/ui"
	"github.com/thatcatcamp/tintkit/internal/validator"
)

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Encode and decode signed share tokens",
	Long:  "Share tokens carry a palette's anchors, signed with share.secret",
}

var shareEncodeCmd = &cobra.Command{
	Use:   "encode [color...]",
	Short: "Create a share token from colors or a saved theme",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		name, _ := cmd.Flags().GetString("name")
		themeName, _ := cmd.Flags().GetString("theme")

		var anchors palette.AnchorSet
		switch {
		case themeName != "":
			theme, err := mustLibrary().GetTheme(themeName)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			req, _, err := library.Request(theme)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			anchors = req.Anchors
			if name == "" {
				name = theme.Name
			}
		case len(args) > 0:
			outcome, err := validator.Normalize(args)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			ui.PrintRejections(os.Stderr, outcome.Rejections)
			ui.PrintWarnings(os.Stderr, outcome.Warnings)
			anchors = outcome.Anchors
		default:
			fmt.Fprintln(os.Stderr, "Error: give colors or --theme")
			os.Exit(1)
		}

		token, err := share.Encode(name, anchors, config.GetString("share.secret"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(token)
	},
}

var shareDecodeCmd = &cobra.Command{
	Use:   "decode <token>",
	Short: "Verify a share token and show its palette",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustEngineConfig(cmd)

		theme, err := share.Decode(args[0], config.GetString("share.secret"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if theme.Name != "" {
			fmt.Fprintln(os.Stderr, ui.Heading("%s", theme.Name))
		}
		ui.PrintWarnings(os.Stderr, theme.Warnings)

		result, err := engine.Derive(palette.Request{Anchors: theme.Anchors, Config: cfg})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		writeResult(cmd, result)
	},
}

func init() {
	shareEncodeCmd.Flags().String("name", "", "name carried in the token")
	shareEncodeCmd.Flags().String("theme", "", "encode a saved theme instead of colors")
	addEngineFlags(shareDecodeCmd)
	addOutputFlags(shareDecodeCmd, "")

	shareCmd.AddCommand(shareEncodeCmd)
	shareCmd.AddCommand(shareDecodeCmd)
	rootCmd.AddCommand(shareCmd)
}
