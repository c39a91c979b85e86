// SPDX-License-Identifier: MIT

// Package validator turns untrusted color lists into well-formed anchor sets.
package validator

import (
	"fmt"
	"math"

	"github.com/thatcatcamp/tintkit/internal/colorspace"
	"github.com/thatcatcamp/tintkit/internal/harmony"
	"github.com/thatcatcamp/tintkit/internal/palette"
)

// Two anchors collide when both their hues and lightness are this close
const (
	HueTolerance       = harmony.MinHueSeparation
	LightnessTolerance = 0.10
)

const (
	// nudgeMargin keeps nudged hues clear of the tolerance after 8-bit rounding
	nudgeMargin   = 1.0
	lightnessStep = LightnessTolerance + 0.01
	maxLightSteps = 9
)

// Rejection records one entry that did not parse
type Rejection struct {
	Index  int    `json:"index"`
	Input  string `json:"input"`
	Reason string `json:"reason"`
}

// Outcome is a normalized anchor set and everything that was changed or
// dropped on the way
type Outcome struct {
	Anchors    palette.AnchorSet `json:"anchors"`
	Warnings   []palette.Warning `json:"warnings,omitempty"`
	Rejections []Rejection       `json:"rejections,omitempty"`
}

// NoValidColorsError is returned when no entry survives parsing.
// It matches palette.ErrPaletteGenerationFailed with errors.Is.
type NoValidColorsError struct {
	Rejections []Rejection
}

func (e *NoValidColorsError) Error() string {
	return fmt.Sprintf("%v: none of %d entries is a valid color", palette.ErrPaletteGenerationFailed, len(e.Rejections))
}

func (e *NoValidColorsError) Unwrap() error {
	return palette.ErrPaletteGenerationFailed
}

// Normalize parses every entry, drops the ones that fail, keeps at most three
// and separates near-duplicates. It either returns a role-contiguous set of
// 1 to 3 anchors or an error matching palette.ErrPaletteGenerationFailed.
func Normalize(entries []string) (*Outcome, error) {
	out := &Outcome{}

	var colors []colorspace.Color
	for i, entry := range entries {
		c, err := colorspace.Parse(entry)
		if err != nil {
			out.Rejections = append(out.Rejections, Rejection{Index: i, Input: entry, Reason: err.Error()})
			continue
		}
		colors = append(colors, c)
	}

	if len(colors) == 0 {
		return nil, &NoValidColorsError{Rejections: out.Rejections}
	}

	if len(colors) > palette.MaxAnchors {
		out.Warnings = append(out.Warnings, palette.Warning{
			Code:    palette.WarnAnchorsTruncated,
			Message: fmt.Sprintf("kept the first %d of %d valid colors", palette.MaxAnchors, len(colors)),
		})
		colors = colors[:palette.MaxAnchors]
	}

	for i := 1; i < len(colors); i++ {
		if !collidesAny(colors[i], colors[:i]) {
			continue
		}
		nudged, ok := separate(colors[i], colors[:i])
		if !ok {
			continue
		}
		out.Warnings = append(out.Warnings, palette.Warning{
			Code:    palette.WarnAnchorNudged,
			Subject: string(palette.Roles[i]),
			Message: fmt.Sprintf("%s is too close to an earlier anchor, using %s", colors[i].Hex(), nudged.Hex()),
		})
		colors[i] = nudged
	}

	set, err := palette.NewAnchorSet(colors...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", palette.ErrPaletteGenerationFailed, err)
	}
	out.Anchors = set
	return out, nil
}

// NormalizePayload decodes a raw payload and normalizes its entries
func NormalizePayload(raw []byte) (*Outcome, error) {
	entries, err := DecodeEntries(raw)
	if err != nil {
		return nil, err
	}
	return Normalize(entries)
}

// Collides reports whether two colors are too similar to serve as separate
// anchors. A gray never collides with a chromatic color.
func Collides(a, b colorspace.Color) bool {
	if math.Abs(a.Lightness()-b.Lightness()) >= LightnessTolerance {
		return false
	}
	achroA, achroB := a.IsAchromatic(), b.IsAchromatic()
	if achroA || achroB {
		return achroA && achroB
	}
	return colorspace.HueDistance(a.Hue(), b.Hue()) < HueTolerance
}

func collidesAny(c colorspace.Color, earlier []colorspace.Color) bool {
	for _, e := range earlier {
		if Collides(c, e) {
			return true
		}
	}
	return false
}

// separate moves c away from earlier anchors. Chromatic colors rotate hue
// using the harmony nudge; grays, and anything hue rotation cannot free,
// step lightness instead.
func separate(c colorspace.Color, earlier []colorspace.Color) (colorspace.Color, bool) {
	h, s, l := c.HSL()

	if !c.IsAchromatic() {
		var taken []float64
		for _, e := range earlier {
			if !e.IsAchromatic() {
				taken = append(taken, e.Hue())
			}
		}
		if nh, ok := harmony.NudgeHue(h, taken, HueTolerance+nudgeMargin); ok {
			candidate := colorspace.FromHSL(nh, s, l).Quantize()
			if !collidesAny(candidate, earlier) {
				return candidate, true
			}
		}
	}

	for k := 1; k <= maxLightSteps; k++ {
		for _, nl := range []float64{l + float64(k)*lightnessStep, l - float64(k)*lightnessStep} {
			if nl < 0 || nl > 1 {
				continue
			}
			candidate := colorspace.FromHSL(h, s, nl).Quantize()
			if !collidesAny(candidate, earlier) {
				return candidate, true
			}
		}
	}
	return c, false
}
