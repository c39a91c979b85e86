// SPDX-License-Identifier: MIT
package harmony

import (
	"math"

	"github.com/thatcatcamp/tintkit/internal/colorspace"
)

// Separate walks hues in order and moves any hue closer than minDist to an
// earlier one. Earlier hues win, so the primary never moves. It returns the
// adjusted hues and the indexes that were moved.
func Separate(hues []float64, minDist float64) ([]float64, []int) {
	out := make([]float64, len(hues))
	copy(out, hues)

	var moved []int
	for i := 1; i < len(out); i++ {
		h, ok := NudgeHue(out[i], out[:i], minDist)
		if ok && h != out[i] {
			out[i] = h
			moved = append(moved, i)
		}
	}
	return out, moved
}

// NudgeHue returns h unchanged when it is at least minDist from every taken
// hue. Otherwise it tries h±minDist, h±2·minDist and so on, preferring the
// smaller move and the clockwise side on ties. ok is false if no free hue
// exists.
func NudgeHue(h float64, taken []float64, minDist float64) (float64, bool) {
	if isClear(h, taken, minDist) {
		return h, true
	}
	steps := int(math.Ceil(180 / minDist))
	for k := 1; k <= steps; k++ {
		for _, c := range []float64{h + float64(k)*minDist, h - float64(k)*minDist} {
			c = colorspace.NormalizeHue(c)
			if isClear(c, taken, minDist) {
				return c, true
			}
		}
	}
	return h, false
}

func isClear(h float64, taken []float64, minDist float64) bool {
	for _, t := range taken {
		if colorspace.HueDistance(h, t) < minDist {
			return false
		}
	}
	return true
}
