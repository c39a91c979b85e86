// SPDX-License-Identifier: MIT
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/thatcatcamp/tintkit/internal/colorspace"
	"github.com/thatcatcamp/tintkit/internal/contrast"
	"github.com/thatcatcamp/tintkit/internal/palette"
	"github.com/thatcatcamp/tintkit/internal/validator"
)

// Swatch renders text on a truecolor background of c, with black or white
// foreground, whichever reads better
func Swatch(c colorspace.Color, text string) string {
	r, g, b := c.RGB255()
	fr, fg, fb := contrast.ReadableOn(c).RGB255()
	return color.RGB(int(fr), int(fg), int(fb)).AddBgRGB(int(r), int(g), int(b)).Sprint(text)
}

// PrintScale prints one scale as a column of labelled swatches
func PrintScale(w io.Writer, role palette.Role, s palette.Scale) {
	fmt.Fprintln(w, Heading("%s", role))
	for i, step := range s.Steps {
		marker := " "
		if i == s.BaseIndex {
			marker = "*"
		}
		fmt.Fprintf(w, " %s %s %4d  %s\n", marker, Swatch(step.Color, "      "), step.Label, step.Color.Hex())
	}
}

// PrintGradient prints the gradient as a single strip followed by its stops
func PrintGradient(w io.Writer, g palette.Gradient) {
	fmt.Fprintln(w, Heading("gradient"))
	var strip strings.Builder
	for _, stop := range g.Stops {
		strip.WriteString(Swatch(stop.Color, "   "))
	}
	fmt.Fprintf(w, "   %s\n", strip.String())
	for _, stop := range g.Stops {
		fmt.Fprintf(w, "   %6.2f%%  %s\n", stop.Position*100, stop.Color.Hex())
	}
}

// PrintStatus prints each status color with its contrast and WCAG level
func PrintStatus(w io.Writer, set palette.StatusColorSet) {
	fmt.Fprintln(w, Heading("status on %s (target %.1f:1)", set.Background.Hex(), set.Target))
	for _, role := range palette.StatusRoles {
		sc := set.Colors[role]
		level := contrast.Level(sc.Contrast)
		styled := Success("%s", level)
		if sc.Contrast < set.Target {
			styled = Error("%s", level)
		}
		fmt.Fprintf(w, "   %s %-8s %s  %5.2f:1  %s\n",
			Swatch(sc.Color, "      "), role, sc.Color.Hex(), sc.Contrast, styled)
	}
}

// PrintWarnings prints warnings, one per line
func PrintWarnings(w io.Writer, warnings []palette.Warning) {
	for _, warn := range warnings {
		fmt.Fprintln(w, Warn("warning: %s", warn))
	}
}

// PrintRejections lists inputs the validator dropped
func PrintRejections(w io.Writer, rejections []validator.Rejection) {
	for _, r := range rejections {
		fmt.Fprintln(w, Muted("skipped %q: %s", r.Input, r.Reason))
	}
}

// PrintResult prints every part of a derived palette
func PrintResult(w io.Writer, result *palette.Result) {
	for _, role := range result.Anchors.Roles() {
		PrintScale(w, role, result.Scales[role])
		fmt.Fprintln(w)
	}
	PrintGradient(w, result.Gradient)
	fmt.Fprintln(w)
	PrintStatus(w, result.Status)
	if len(result.Warnings) > 0 {
		fmt.Fprintln(w)
		PrintWarnings(w, result.Warnings)
	}
}
