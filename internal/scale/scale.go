// SPDX-License-Identifier: MIT

// Package scale derives a tint-to-shade ramp from a single anchor color.
package scale

import (
	"fmt"
	"math"

	"github.com/thatcatcamp/tintkit/internal/colorspace"
	"github.com/thatcatcamp/tintkit/internal/palette"
)

const (
	// DefaultFloor keeps the darkest step off pure black
	DefaultFloor = 0.05
	// DefaultCeiling keeps the lightest step off pure white
	DefaultCeiling = 0.97

	// minStepGap is the smallest lightness difference allowed between
	// adjacent steps before 8-bit rounding. Rounding moves HSL lightness by
	// at most lightnessQuantum per color, so two steps this far apart can
	// never collapse or swap.
	minStepGap = 0.005

	// lightnessQuantum is the largest lightness shift 8-bit rounding causes
	lightnessQuantum = 0.5 / 255

	// maxEasing is the weight of the sine ease-in-out when there is room for it
	maxEasing = 0.5

	// extremeDesaturation is how much saturation the outermost steps lose
	extremeDesaturation = 0.12
)

// standardLabels is the familiar 50..950 naming for 11 steps
var standardLabels = []int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950}

// Options control one scale derivation
type Options struct {
	Steps   int
	Floor   float64
	Ceiling float64
}

// DefaultOptions returns 11 steps between 0.05 and 0.97 lightness
func DefaultOptions() Options {
	return Options{
		Steps:   palette.DefaultScaleSteps,
		Floor:   DefaultFloor,
		Ceiling: DefaultCeiling,
	}
}

// OptionsFor returns the default curve bounds with the given step count
func OptionsFor(steps int) Options {
	opts := DefaultOptions()
	opts.Steps = steps
	return opts
}

func (o Options) validate() error {
	if o.Steps < palette.MinScaleSteps || o.Steps > palette.MaxScaleSteps {
		return fmt.Errorf("%w: scale steps must be %d-%d, got %d",
			palette.ErrInvalidConfig, palette.MinScaleSteps, palette.MaxScaleSteps, o.Steps)
	}
	if o.Floor < 0 || o.Ceiling > 1 || o.Floor >= o.Ceiling {
		return fmt.Errorf("%w: lightness bounds must satisfy 0 <= floor < ceiling <= 1", palette.ErrInvalidConfig)
	}
	if o.Ceiling-o.Floor < float64(o.Steps-1)*minStepGap+4*lightnessQuantum {
		return fmt.Errorf("%w: lightness band too narrow for %d steps", palette.ErrInvalidConfig, o.Steps)
	}
	return nil
}

// BaseIndex is the designated base step for a scale of k steps
func BaseIndex(k int) int {
	return k / 2
}

// Labels names the steps of a k-step scale. Eleven steps use 50..950;
// other counts are spread evenly over 0..1000 in tens, with the middle of
// an odd count landing on 500.
func Labels(k int) []int {
	if k == len(standardLabels) {
		return append([]int(nil), standardLabels...)
	}
	labels := make([]int, k)
	for i := range labels {
		raw := float64(i+1) * 1000 / float64(k+1)
		labels[i] = int(math.Round(raw/10)) * 10
	}
	return labels
}

// Generate derives a scale whose lightness strictly decreases with step
// index and whose base step is the anchor. An anchor outside [floor,
// ceiling], or so close to an edge that its steps on that side could not be
// told apart in 8-bit color, is clamped and reported with ClampedAnchor.
func Generate(anchor colorspace.Color, opts Options) (palette.Scale, []palette.Warning, error) {
	if err := opts.validate(); err != nil {
		return palette.Scale{}, nil, err
	}

	k := opts.Steps
	base := BaseIndex(k)
	lighter := base
	darker := k - 1 - base

	h, s, l := anchor.HSL()
	lo, hi := anchorBand(opts, lighter, darker)

	var warnings []palette.Warning
	baseColor := anchor
	if l < lo || l > hi {
		clamped := math.Min(math.Max(l, lo), hi)
		warnings = append(warnings, palette.Warning{
			Code:    palette.WarnClampedAnchor,
			Message: fmt.Sprintf("anchor %s lightness %.3f clamped to %.3f", anchor.Hex(), l, clamped),
		})
		baseColor = colorspace.FromHSL(h, s, clamped).Quantize()
		l = baseColor.Lightness()
	}

	lightRoom := opts.Ceiling - l
	darkRoom := l - opts.Floor
	lightEase := easing(lightRoom, lighter)
	darkEase := easing(darkRoom, darker)

	labels := Labels(k)
	steps := make([]palette.Step, k)
	for i := 0; i < k; i++ {
		var c colorspace.Color
		switch {
		case i == base:
			c = baseColor
		case i < base:
			t := float64(base-i) / float64(lighter)
			c = colorspace.FromHSL(h, desaturate(s, t), l+lightRoom*ease(t, lightEase)).Quantize()
		default:
			t := float64(i-base) / float64(darker)
			c = colorspace.FromHSL(h, desaturate(s, t), l-darkRoom*ease(t, darkEase)).Quantize()
		}
		steps[i] = palette.Step{Label: labels[i], Color: c}
	}

	return palette.Scale{
		Anchor:    anchor,
		BaseIndex: base,
		Steps:     steps,
	}, warnings, nil
}

// anchorBand is the lightness range an anchor may keep unchanged: inside
// [floor, ceiling] with at least minStepGap per step toward each edge. The
// extra lightnessQuantum covers rounding of a clamped base.
func anchorBand(opts Options, lighter, darker int) (lo, hi float64) {
	lo = opts.Floor
	if darker > 0 {
		lo += float64(darker)*minStepGap + lightnessQuantum
	}
	hi = opts.Ceiling
	if lighter > 0 {
		hi -= float64(lighter)*minStepGap + lightnessQuantum
	}
	return lo, hi
}

// easing picks how much sine easing a side can afford. The curve's slope
// never drops below 1-w, so every step on the side keeps minStepGap.
func easing(room float64, n int) float64 {
	if n == 0 || room <= 0 {
		return 0
	}
	w := 1 - minStepGap*float64(n)/room
	return math.Max(0, math.Min(maxEasing, w))
}

// ease blends a linear ramp with a sine ease-in-out of weight w
func ease(t, w float64) float64 {
	return (1-w)*t + w*0.5*(1-math.Cos(math.Pi*t))
}

// desaturate trims saturation toward the extremes to avoid washed-out
// tints and muddy shades
func desaturate(s, t float64) float64 {
	return s * (1 - extremeDesaturation*t*t)
}
