package ui

import (
	"os"
	"strings"

	"github.com/fatih/color"
)

// Styled text helpers for CLI output.
// Respects NO_COLOR and FORCE_COLOR environment variables.

func init() {
	if isForceColor() {
		color.NoColor = false
	} else if os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}
}

func isForceColor() bool {
	fc := strings.TrimSpace(os.Getenv("FORCE_COLOR"))
	return fc != "" && fc != "0"
}

// IsRich returns true if the terminal supports colors
func IsRich() bool {
	return !color.NoColor
}

// Heading returns bold text for section headers
func Heading(format string, a ...interface{}) string {
	return color.New(color.FgHiWhite, color.Bold).Sprintf(format, a...)
}

// Success returns success-styled text
func Success(format string, a ...interface{}) string {
	return color.New(color.FgGreen).Sprintf(format, a...)
}

// Warn returns warning-styled text
func Warn(format string, a ...interface{}) string {
	return color.New(color.FgYellow).Sprintf(format, a...)
}

// Error returns error-styled text
func Error(format string, a ...interface{}) string {
	return color.New(color.FgRed).Sprintf(format, a...)
}

// Muted returns secondary/hint text
func Muted(format string, a ...interface{}) string {
	return color.New(color.FgHiBlack).Sprintf(format, a...)
}
