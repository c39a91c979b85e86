// SPDX-License-Identifier: MIT

// Package gradient interpolates evenly spaced stops through a theme's anchors.
package gradient

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/thatcatcamp/tintkit/internal/colorspace"
	"github.com/thatcatcamp/tintkit/internal/palette"
	"github.com/thatcatcamp/tintkit/internal/scale"
)

// singleAnchorOffset is how many scale steps either side of the base the
// endpoints of a one-anchor gradient sit (300 and 700 on an 11-step scale)
const singleAnchorOffset = 2

// Generate builds a gradient with the requested number of stops.
//
// One anchor: the gradient runs from a lighter to a darker step of the
// anchor's own scale, so it is never flat. Two or three anchors: stops are
// spread evenly and interpolated through the anchors in order, in HSL, along
// the shorter hue arc.
func Generate(anchors palette.AnchorSet, stops int, opts scale.Options) (palette.Gradient, error) {
	if stops < palette.MinGradientStops || stops > palette.MaxGradientStops {
		return palette.Gradient{}, fmt.Errorf("%w: gradient stops must be %d-%d, got %d",
			palette.ErrInvalidConfig, palette.MinGradientStops, palette.MaxGradientStops, stops)
	}
	if anchors.IsEmpty() {
		return palette.Gradient{}, fmt.Errorf("%w: gradient needs at least one anchor", palette.ErrPaletteGenerationFailed)
	}

	keys := anchors.Colors()
	if len(keys) == 1 {
		s, _, err := scale.Generate(keys[0], opts)
		if err != nil {
			return palette.Gradient{}, err
		}
		keys = []colorspace.Color{
			s.At(s.BaseIndex - singleAnchorOffset).Color,
			s.At(s.BaseIndex + singleAnchorOffset).Color,
		}
	}

	out := palette.Gradient{Stops: make([]palette.Stop, stops)}
	segments := float64(len(keys) - 1)
	for i := 0; i < stops; i++ {
		pos := float64(i) / float64(stops-1)

		seg := pos * segments
		idx := int(math.Floor(seg))
		if idx >= len(keys)-1 {
			idx = len(keys) - 2
		}
		t := seg - float64(idx)

		out.Stops[i] = palette.Stop{
			Position: pos,
			Color:    colorspace.Lerp(keys[idx], keys[idx+1], t).Quantize(),
		}
	}
	return out, nil
}

// LinearCSS renders the gradient as a CSS linear-gradient at the given angle
func LinearCSS(g palette.Gradient, angle int) string {
	var b strings.Builder
	b.WriteString("linear-gradient(")
	b.WriteString(strconv.Itoa(angle))
	b.WriteString("deg")
	for _, stop := range g.Stops {
		b.WriteString(", ")
		b.WriteString(stop.Color.Hex())
		b.WriteString(" ")
		b.WriteString(strconv.FormatFloat(math.Round(stop.Position*10000)/100, 'f', -1, 64))
		b.WriteString("%")
	}
	b.WriteString(")")
	return b.String()
}
