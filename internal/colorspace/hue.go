// SPDX-License-Identifier: MIT
package colorspace

import "math"

// AchromaticSaturation is the saturation below which hue is treated as noise
const AchromaticSaturation = 0.04

// NormalizeHue wraps any angle into [0,360)
func NormalizeHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

// HueDelta returns the signed rotation from one hue to another along the
// shorter arc, in (-180,180]. Positive is clockwise on the color wheel.
func HueDelta(from, to float64) float64 {
	d := math.Mod(NormalizeHue(to)-NormalizeHue(from), 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}

// HueDistance returns the unsigned angular distance in [0,180]
func HueDistance(a, b float64) float64 {
	return math.Abs(HueDelta(a, b))
}

// LerpHue interpolates between two hues along the shorter arc
func LerpHue(from, to, t float64) float64 {
	return NormalizeHue(from + HueDelta(from, to)*t)
}

// Lerp interpolates two colors in HSL, taking the shorter hue arc.
// An achromatic endpoint borrows the other endpoint's hue so a fade to
// gray or white does not sweep through unrelated hues.
func Lerp(a, b Color, t float64) Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}

	h1, s1, l1 := a.HSL()
	h2, s2, l2 := b.HSL()

	switch {
	case a.IsAchromatic() && !b.IsAchromatic():
		h1 = h2
	case b.IsAchromatic() && !a.IsAchromatic():
		h2 = h1
	}

	return FromHSL(
		LerpHue(h1, h2, t),
		s1+(s2-s1)*t,
		l1+(l2-l1)*t,
	)
}
