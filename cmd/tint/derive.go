// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/tintkit/internal/colorspace"
	"github.com/thatcatcamp/tintkit/internal/config"
	"github.com/thatcatcamp/tintkit/internal/engine"
	"github.com/thatcatcamp/tintkit/internal/harmony"
	"github.com/thatcatcamp/tintkit/internal/palette"
	"github.com/thatcatcamp/tintkit/internal/suggest"
	"github.com/thatcatcamp/tintkit/internal/themes"
	"github.com/thatcatcamp/tintkit/internal/ui"
	"github.com/thatcatcamp/tintkit/internal/validator"
)

var deriveCmd = &cobra.Command{
	Use:   "derive <color> [color] [color]",
	Short: "Derive a palette from up to three anchor colors",
	Long: `Derive scales, a gradient and status colors from anchor colors.
Colors may be hex (#3b82f6, 3b82f6, #38f), rgb(), hsl() or CSS names.
Unparsable colors are skipped; if none are usable the default palette is shown.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustEngineConfig(cmd)

		result := deriveOrFallback(args, cfg)
		writeResult(cmd, result)
	},
}

var checkCmd = &cobra.Command{
	Use:   "check <color>...",
	Short: "Validate colors without deriving a palette",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		outcome, err := validator.Normalize(args)
		if outcome != nil {
			printAnchors(outcome.Anchors)
			ui.PrintWarnings(os.Stdout, outcome.Warnings)
			ui.PrintRejections(os.Stdout, outcome.Rejections)
		}
		if err != nil {
			var noValid *validator.NoValidColorsError
			if errors.As(err, &noValid) {
				ui.PrintRejections(os.Stdout, noValid.Rejections)
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <color> [color] [color]",
	Short: "Export a derived palette as CSS, Tailwind, JSON or YAML",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustEngineConfig(cmd)

		result := deriveOrFallback(args, cfg)
		writeResult(cmd, result)
	},
}

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Derive a palette from randomly sampled harmonious anchors",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustEngineConfig(cmd)

		n, _ := cmd.Flags().GetInt("count")
		ruleName, _ := cmd.Flags().GetString("rule")
		if ruleName == "" {
			ruleName = config.GetString("engine.harmony_rule")
		}
		rule, err := harmony.ParseRule(ruleName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		var seed *int64
		if cmd.Flags().Changed("seed") {
			s, _ := cmd.Flags().GetInt64("seed")
			seed = &s
		}

		anchors, err := harmony.Generate(n, rule, harmony.NewRand(seed))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		result, err := engine.Derive(palette.Request{Anchors: anchors, Config: cfg})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		writeResult(cmd, result)
	},
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List built-in palettes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, p := range themes.ListPalettes() {
			var swatches strings.Builder
			for _, hex := range p.Hexes() {
				swatches.WriteString(ui.Swatch(colorspace.MustParse(hex), "    "))
			}
			name := p.Name
			if name == themes.DefaultPaletteName {
				name += " (default)"
			}
			fmt.Printf("%-20s %s  %s\n", name, swatches.String(), strings.Join(p.Hexes(), " "))
		}
	},
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <prompt>",
	Short: "Ask the suggestion service for colors and derive a palette",
	Long: `Send a text prompt to the service at suggest.url. Whatever comes back is
validated like any other input before a palette is derived.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustEngineConfig(cmd)

		client := suggest.NewClient(config.GetString("suggest.url"), config.GetDuration("suggest.timeout"))
		outcome, err := client.SuggestPalette(context.Background(), strings.Join(args, " "))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			if !errors.Is(err, palette.ErrPaletteGenerationFailed) {
				os.Exit(1)
			}
			fmt.Fprintln(os.Stderr, ui.Warn("Using the %s palette instead", themes.DefaultPaletteName))
			writeResult(cmd, deriveOrFallback(themes.DefaultPalette().Hexes(), cfg))
			return
		}
		ui.PrintRejections(os.Stderr, outcome.Rejections)

		result, err := engine.Derive(palette.Request{Anchors: outcome.Anchors, Config: cfg})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		result.Warnings = append(append([]palette.Warning{}, outcome.Warnings...), result.Warnings...)
		writeResult(cmd, result)
	},
}

// addEngineFlags registers the per-run overrides of the engine.* config keys
func addEngineFlags(cmd *cobra.Command) {
	cmd.Flags().Int("steps", 0, "scale steps per anchor (3-21)")
	cmd.Flags().Int("stops", 0, "gradient stops (2-64)")
	cmd.Flags().Float64("contrast", 0, "minimum status color contrast ratio (1-21)")
	cmd.Flags().String("background", "", "background color status colors must be legible on")
	cmd.Flags().Float64("bias", 0, "pull status hues toward the primary hue (0-1)")
}

// addOutputFlags registers --format and --dark
func addOutputFlags(cmd *cobra.Command, defaultFormat string) {
	cmd.Flags().StringP("format", "f", defaultFormat, "output format: css, tailwind, json or yaml (default: terminal swatches)")
	cmd.Flags().Bool("dark", false, "export semantic colors for dark mode")
}

// engineConfig layers command flags over the configured engine defaults
func engineConfig(cmd *cobra.Command) (palette.Config, error) {
	if err := initConfig(); err != nil {
		return palette.Config{}, err
	}
	cfg, err := config.EngineConfig()
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("steps") {
		cfg.ScaleSteps, _ = flags.GetInt("steps")
	}
	if flags.Changed("stops") {
		cfg.GradientStops, _ = flags.GetInt("stops")
	}
	if flags.Changed("contrast") {
		cfg.ContrastTarget, _ = flags.GetFloat64("contrast")
	}
	if flags.Changed("bias") {
		cfg.StatusHueBias, _ = flags.GetFloat64("bias")
	}
	if flags.Changed("background") {
		s, _ := flags.GetString("background")
		bg, err := colorspace.Parse(s)
		if err != nil {
			return cfg, fmt.Errorf("--background: %w", err)
		}
		cfg.Background = bg
	}

	return cfg, cfg.Validate()
}

func mustEngineConfig(cmd *cobra.Command) palette.Config {
	cfg, err := engineConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// deriveOrFallback derives from raw entries, switching to the default
// palette when none of them is usable
func deriveOrFallback(entries []string, cfg palette.Config) *palette.Result {
	result, outcome, err := engine.DeriveEntries(entries, cfg)
	if err == nil {
		ui.PrintRejections(os.Stderr, outcome.Rejections)
		return result
	}

	if !errors.Is(err, palette.ErrPaletteGenerationFailed) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var noValid *validator.NoValidColorsError
	if errors.As(err, &noValid) {
		ui.PrintRejections(os.Stderr, noValid.Rejections)
	}
	fmt.Fprintln(os.Stderr, ui.Warn("No usable colors, using the %s palette", themes.DefaultPaletteName))

	anchors, err := themes.DefaultPalette().Anchors()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	result, err = engine.Derive(palette.Request{Anchors: anchors, Config: cfg})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return result
}

// writeResult prints swatches, or the export named by --format
func writeResult(cmd *cobra.Command, result *palette.Result) {
	formatName, _ := cmd.Flags().GetString("format")
	if formatName == "" {
		ui.PrintResult(os.Stdout, result)
		return
	}

	format, err := themes.ParseFormat(formatName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	dark, _ := cmd.Flags().GetBool("dark")
	data, err := themes.Export(result, format, dark)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// exports go to stdout, so warnings stay on stderr
	ui.PrintWarnings(os.Stderr, result.Warnings)
	os.Stdout.Write(data)
}

// printAnchors shows each role with its swatch
func printAnchors(anchors palette.AnchorSet) {
	for _, a := range anchors.Anchors() {
		fmt.Printf("%-10s %s %s\n", a.Role, ui.Swatch(a.Color, "      "), a.Color.Hex())
	}
}

func init() {
	for _, cmd := range []*cobra.Command{deriveCmd, exportCmd, randomCmd, suggestCmd} {
		addEngineFlags(cmd)
	}
	addOutputFlags(deriveCmd, "")
	addOutputFlags(exportCmd, string(themes.FormatCSS))
	addOutputFlags(randomCmd, "")
	addOutputFlags(suggestCmd, "")

	randomCmd.Flags().IntP("count", "n", palette.MaxAnchors, "number of anchors (1-3)")
	randomCmd.Flags().Int64("seed", 0, "seed for a reproducible palette")
	randomCmd.Flags().String("rule", "", "harmony rule: complementary, analogous, triadic or split-complementary (default from engine.harmony_rule)")

	rootCmd.AddCommand(deriveCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(suggestCmd)
}
