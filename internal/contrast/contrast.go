// SPDX-License-Identifier: MIT

// Package contrast computes WCAG contrast and derives status colors that stay
// legible on a given background.
package contrast

import (
	"github.com/thatcatcamp/tintkit/internal/colorspace"
)

// WCAG thresholds
const (
	AALarge = 3.0
	AA      = 4.5
	AAA     = 7.0
)

var (
	Black = colorspace.FromRGB255(0, 0, 0)
	White = colorspace.FromRGB255(255, 255, 255)
)

// Luminance returns WCAG relative luminance in [0,1]
func Luminance(c colorspace.Color) float64 {
	r, g, b := c.LinearRGB()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Ratio returns the contrast ratio between two colors, 1 to 21
func Ratio(a, b colorspace.Color) float64 {
	l1 := Luminance(a)
	l2 := Luminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// ReadableOn returns black or white, whichever contrasts more with bg
func ReadableOn(bg colorspace.Color) colorspace.Color {
	if Ratio(Black, bg) >= Ratio(White, bg) {
		return Black
	}
	return White
}

// Level names the WCAG conformance a ratio reaches for normal text
func Level(ratio float64) string {
	switch {
	case ratio >= AAA:
		return "AAA"
	case ratio >= AA:
		return "AA"
	case ratio >= AALarge:
		return "AA Large"
	default:
		return "Fail"
	}
}
