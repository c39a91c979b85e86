package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/tintkit/internal/config"
	"github.com/thatcatcamp/tintkit/internal/db"
	"github.com/thatcatcamp/tintkit/internal/engine"
	"github.com/thatcatcamp/tintkit/internal/library"
	"github.com/thatcatcamp/tintkit/internal/ui"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage saved themes",
	Long:  "Save, list, show, and delete named palettes in the local library",
}

var themeSaveCmd = &cobra.Command{
	Use:   "save <name> <color> [color] [color]",
	Short: "Derive a palette and save it under a name",
	Args:  cobra.RangeArgs(2, 4),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustEngineConfig(cmd)
		lib := mustLibrary()

		result, outcome, err := engine.DeriveEntries(args[1:], cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		ui.PrintRejections(os.Stderr, outcome.Rejections)
		ui.PrintWarnings(os.Stderr, result.Warnings)

		dark, _ := cmd.Flags().GetBool("dark")
		theme, err := lib.SaveTheme(args[0], result, dark)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error saving theme: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Theme saved: %s (%s)\n", theme.Name, strings.Join(theme.Hexes(), " "))
		fmt.Printf("Share ID: %s\n", theme.ShareID)
	},
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved themes",
	Run: func(cmd *cobra.Command, args []string) {
		lib := mustLibrary()

		list, err := lib.ListThemes()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing themes: %v\n", err)
			os.Exit(1)
		}

		if len(list) == 0 {
			fmt.Println("No saved themes")
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tCOLORS\tDARK\tSHARE ID\tUPDATED")
		for _, t := range list {
			fmt.Fprintf(w, "%s\t%s\t%v\t%s\t%s\n", t.Name, strings.Join(t.Hexes(), " "), t.DarkMode, t.ShareID, t.UpdatedAt.Format("2006-01-02"))
		}
		w.Flush()
	},
}

var themeShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Re-derive and show a saved theme",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		lib := mustLibrary()

		theme, err := lib.GetTheme(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		req, outcome, err := library.Request(theme)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		ui.PrintWarnings(os.Stderr, outcome.Warnings)

		result, err := engine.Derive(req)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if !cmd.Flags().Changed("dark") {
			cmd.Flags().Set("dark", fmt.Sprintf("%v", theme.DarkMode))
		}
		writeResult(cmd, result)
	},
}

var themeDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved theme",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		lib := mustLibrary()

		if err := lib.DeleteTheme(args[0]); err != nil {
			if errors.Is(err, library.ErrThemeNotFound) {
				fmt.Fprintf(os.Stderr, "Error: theme %q not found\n", args[0])
			} else {
				fmt.Fprintf(os.Stderr, "Error deleting theme: %v\n", err)
			}
			os.Exit(1)
		}

		fmt.Printf("Theme deleted: %s\n", args[0])
	},
}

func init() {
	addEngineFlags(themeSaveCmd)
	themeSaveCmd.Flags().Bool("dark", false, "mark the theme as dark mode")
	addOutputFlags(themeShowCmd, "")

	themeCmd.AddCommand(themeSaveCmd)
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeShowCmd)
	themeCmd.AddCommand(themeDeleteCmd)
	rootCmd.AddCommand(themeCmd)
}

// initSystemDB opens the theme library database
func initSystemDB() error {
	if err := initConfig(); err != nil {
		return err
	}

	dbType := config.GetString("database.type")
	dbPath := config.GetString("database.path")

	if dbType == "sqlite" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	return db.InitDB(dbType, dbPath)
}

func mustLibrary() *library.Library {
	if err := initSystemDB(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return library.New(db.GetDB())
}
