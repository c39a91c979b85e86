// SPDX-License-Identifier: MIT

// Package colorspace holds the canonical Color value shared by every
// derivation step. A Color is one sRGB value with two views: a hex string
// and an HSL triple. All derived math reads the HSL view.
package colorspace

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an immutable sRGB color
type Color struct {
	c colorful.Color
}

// FromHSL builds a color from hue in degrees and saturation/lightness in [0,1].
// Out-of-range saturation and lightness are clamped, hue wraps.
func FromHSL(h, s, l float64) Color {
	return Color{c: colorful.Hsl(NormalizeHue(h), clamp01(s), clamp01(l)).Clamped()}
}

// FromRGB255 builds a color from 8-bit channels
func FromRGB255(r, g, b uint8) Color {
	return Color{c: colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}}
}

// Hex returns the lowercase #rrggbb form
func (c Color) Hex() string {
	return c.c.Clamped().Hex()
}

// HSL returns hue in [0,360), saturation and lightness in [0,1]
func (c Color) HSL() (h, s, l float64) {
	h, s, l = c.c.Clamped().Hsl()
	return NormalizeHue(h), clamp01(s), clamp01(l)
}

// Hue returns the HSL hue in degrees
func (c Color) Hue() float64 {
	h, _, _ := c.HSL()
	return h
}

// Saturation returns the HSL saturation
func (c Color) Saturation() float64 {
	_, s, _ := c.HSL()
	return s
}

// Lightness returns the HSL lightness
func (c Color) Lightness() float64 {
	_, _, l := c.HSL()
	return l
}

// RGB255 returns the 8-bit channels, rounded
func (c Color) RGB255() (r, g, b uint8) {
	return c.c.Clamped().RGB255()
}

// LinearRGB returns the gamma-expanded sRGB channels used for luminance
func (c Color) LinearRGB() (r, g, b float64) {
	return c.c.Clamped().LinearRgb()
}

// Quantize snaps the color onto the 8-bit grid so that what is rendered
// as hex is exactly what later math sees.
func (c Color) Quantize() Color {
	r, g, b := c.RGB255()
	return FromRGB255(r, g, b)
}

// WithLightness keeps hue and saturation and replaces lightness
func (c Color) WithLightness(l float64) Color {
	h, s, _ := c.HSL()
	return FromHSL(h, s, l)
}

// IsAchromatic reports whether the hue carries no visible information
func (c Color) IsAchromatic() bool {
	_, s, l := c.HSL()
	return s < AchromaticSaturation || l <= 0.01 || l >= 0.99
}

// Equal compares the rendered 8-bit values
func (c Color) Equal(other Color) bool {
	return c.Hex() == other.Hex()
}

// ChannelDistance returns the largest per-channel difference in 8-bit units
func (c Color) ChannelDistance(other Color) int {
	r1, g1, b1 := c.RGB255()
	r2, g2, b2 := other.RGB255()
	d := absDiff(r1, r2)
	d = max(d, absDiff(g1, g2))
	return max(d, absDiff(b1, b2))
}

// String implements fmt.Stringer
func (c Color) String() string {
	return c.Hex()
}

// MarshalText encodes the color as its hex string
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText accepts anything Parse accepts
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// CSSRGB renders the color as rgb(r, g, b)
func (c Color) CSSRGB() string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}

// CSSHSL renders the color as hsl(h, s%, l%) with rounded components
func (c Color) CSSHSL() string {
	h, s, l := c.HSL()
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)",
		int(math.Round(h))%360, int(math.Round(s*100)), int(math.Round(l*100)))
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 1
	}
	return v
}
