// SPDX-License-Identifier: MIT
package colorspace

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalidColorFormat is returned for any input that is not a well-formed
// hex, rgb(), hsl() or CSS named color
var ErrInvalidColorFormat = errors.New("invalid color format")

// hexPattern matches 3 or 6 hex digits with an optional leading '#'
var hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// rgbPattern matches rgb(r, g, b) with integer channels
var rgbPattern = regexp.MustCompile(`^rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)$`)

// hslPattern matches hsl(h, s%, l%); hue may carry a deg suffix
var hslPattern = regexp.MustCompile(`^hsl\(\s*(\d{1,3}(?:\.\d+)?)(?:deg)?\s*,\s*(\d{1,3}(?:\.\d+)?)%\s*,\s*(\d{1,3}(?:\.\d+)?)%\s*\)$`)

// Parse converts user or service supplied text into a Color.
//
// Accepted forms: "#3b82f6", "3B82F6", "#fff", "fff", "rgb(59, 130, 246)",
// "hsl(217, 91%, 60%)" and CSS named colors such as "rebeccapurple".
// Matching is case-insensitive and surrounding whitespace is ignored.
func Parse(input string) (Color, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return Color{}, fmt.Errorf("%w: empty input", ErrInvalidColorFormat)
	}

	if m := hexPattern.FindStringSubmatch(s); m != nil {
		digits := strings.ToLower(m[1])
		if len(digits) == 3 {
			digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
		}
		c, err := colorful.Hex("#" + digits)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidColorFormat, input, err)
		}
		return Color{c: c}, nil
	}

	lower := strings.ToLower(s)

	if m := rgbPattern.FindStringSubmatch(lower); m != nil {
		var channels [3]uint8
		for i := 0; i < 3; i++ {
			v, err := strconv.Atoi(m[i+1])
			if err != nil || v > 255 {
				return Color{}, fmt.Errorf("%w: %q: channel out of range", ErrInvalidColorFormat, input)
			}
			channels[i] = uint8(v)
		}
		return FromRGB255(channels[0], channels[1], channels[2]), nil
	}

	if m := hslPattern.FindStringSubmatch(lower); m != nil {
		var parts [3]float64
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseFloat(m[i+1], 64)
			if err != nil {
				return Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidColorFormat, input, err)
			}
			parts[i] = v
		}
		if parts[0] > 360 || parts[1] > 100 || parts[2] > 100 {
			return Color{}, fmt.Errorf("%w: %q: component out of range", ErrInvalidColorFormat, input)
		}
		return FromHSL(parts[0], parts[1]/100, parts[2]/100).Quantize(), nil
	}

	if named, ok := colornames.Map[lower]; ok {
		return FromRGB255(named.R, named.G, named.B), nil
	}

	return Color{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, input)
}

// MustParse is Parse for compile-time constants; it panics on bad input
func MustParse(input string) Color {
	c, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return c
}
