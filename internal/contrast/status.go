// SPDX-License-Identifier: MIT
package contrast

import (
	"fmt"
	"math"

	"github.com/thatcatcamp/tintkit/internal/colorspace"
	"github.com/thatcatcamp/tintkit/internal/palette"
)

const (
	// searchIterations caps the lightness binary search
	searchIterations = 24

	// maxBiasShift keeps biased status hues recognisable
	maxBiasShift = 20.0
)

// seed is the canonical starting point for one status role
type seed struct {
	hue, saturation, lightness float64
}

// canonicalStatus holds the conventional green/amber/red/blue starting points
var canonicalStatus = map[palette.StatusRole]seed{
	palette.StatusSuccess: {hue: 142, saturation: 0.71, lightness: 0.45},
	palette.StatusWarning: {hue: 38, saturation: 0.92, lightness: 0.50},
	palette.StatusError:   {hue: 0, saturation: 0.84, lightness: 0.60},
	palette.StatusInfo:    {hue: 217, saturation: 0.91, lightness: 0.60},
}

// StatusColors derives success, warning, error and info colors that meet the
// target contrast against bg. Bias in [0,1] rotates each canonical hue toward
// the primary anchor's hue by at most 20 degrees. When a target cannot be met
// at any lightness the best achievable color is returned together with a
// ContrastUnattainable warning.
func StatusColors(bg colorspace.Color, anchors palette.AnchorSet, target, bias float64) (palette.StatusColorSet, []palette.Warning, error) {
	if math.IsNaN(target) || target < palette.MinContrastTarget || target > palette.MaxContrastTarget {
		return palette.StatusColorSet{}, nil, fmt.Errorf("%w: contrast target must be %.0f-%.0f, got %v",
			palette.ErrInvalidConfig, palette.MinContrastTarget, palette.MaxContrastTarget, target)
	}
	if math.IsNaN(bias) || bias < 0 || bias > 1 {
		return palette.StatusColorSet{}, nil, fmt.Errorf("%w: status hue bias must be 0-1, got %v", palette.ErrInvalidConfig, bias)
	}

	primaryHue, biased := 0.0, false
	if !anchors.IsEmpty() && bias > 0 && !anchors.Primary().IsAchromatic() {
		primaryHue, biased = anchors.Primary().Hue(), true
	}

	set := palette.StatusColorSet{
		Background: bg,
		Target:     target,
		Colors:     make(map[palette.StatusRole]palette.StatusColor, len(palette.StatusRoles)),
	}

	var warnings []palette.Warning
	for _, role := range palette.StatusRoles {
		s := canonicalStatus[role]
		hue := s.hue
		if biased {
			shift := colorspace.HueDelta(hue, primaryHue) * bias
			hue += math.Max(-maxBiasShift, math.Min(maxBiasShift, shift))
		}

		c, ratio, ok := FitLightness(hue, s.saturation, s.lightness, bg, target)
		if !ok {
			warnings = append(warnings, palette.Warning{
				Code:    palette.WarnContrastUnattainable,
				Subject: string(role),
				Message: fmt.Sprintf("target %.2f unreachable against %s, best is %.2f with %s", target, bg.Hex(), ratio, c.Hex()),
			})
		}
		set.Colors[role] = palette.StatusColor{Color: c, Contrast: ratio}
	}

	return set, warnings, nil
}

// FitLightness holds hue and saturation fixed and moves lightness from start
// toward black or white until the color reaches target contrast against bg.
// It returns the color closest to start that passes. Contrast is measured on
// the 8-bit color so the guarantee holds for the rendered hex. If no
// lightness passes, the highest-contrast extreme is returned with ok false.
func FitLightness(hue, saturation, start float64, bg colorspace.Color, target float64) (colorspace.Color, float64, bool) {
	at := func(l float64) colorspace.Color {
		return colorspace.FromHSL(hue, saturation, l).Quantize()
	}

	c := at(start)
	if r := Ratio(c, bg); r >= target {
		return c, r, true
	}

	// Ratio is monotone on the way to whichever extreme contrasts more,
	// so the passing region is one contiguous interval ending there
	extremeL := 0.0
	extreme := at(0)
	if light := at(1); Ratio(light, bg) > Ratio(extreme, bg) {
		extremeL, extreme = 1.0, light
	}
	if r := Ratio(extreme, bg); r < target {
		return extreme, r, false
	}

	failing, passing := start, extremeL
	for i := 0; i < searchIterations; i++ {
		mid := (failing + passing) / 2
		if Ratio(at(mid), bg) >= target {
			passing = mid
		} else {
			failing = mid
		}
	}

	c = at(passing)
	return c, Ratio(c, bg), true
}
