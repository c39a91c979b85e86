// SPDX-License-Identifier: MIT
package palette

import (
	"fmt"
	"math"

	"github.com/thatcatcamp/tintkit/internal/colorspace"
)

// Configuration bounds and defaults
const (
	DefaultScaleSteps     = 11
	MinScaleSteps         = 3
	MaxScaleSteps         = 21
	DefaultGradientStops  = 5
	MinGradientStops      = 2
	MaxGradientStops      = 64
	DefaultContrastTarget = 4.5
	MinContrastTarget     = 1.0
	MaxContrastTarget     = 21.0
)

// DefaultBackground is white
var DefaultBackground = colorspace.FromRGB255(255, 255, 255)

// Config holds every knob a derivation reads. There are no hidden
// defaults: callers start from DefaultConfig and override fields.
type Config struct {
	ScaleSteps     int              `json:"scaleSteps"`
	GradientStops  int              `json:"gradientStops"`
	ContrastTarget float64          `json:"contrastTarget"`
	Background     colorspace.Color `json:"backgroundColor"`

	// StatusHueBias pulls status hues toward the primary hue, 0 disables
	StatusHueBias float64 `json:"statusHueBias,omitempty"`
}

// DefaultConfig returns 11 scale steps, 5 gradient stops, a 4.5 contrast
// target and a white background
func DefaultConfig() Config {
	return Config{
		ScaleSteps:     DefaultScaleSteps,
		GradientStops:  DefaultGradientStops,
		ContrastTarget: DefaultContrastTarget,
		Background:     DefaultBackground,
	}
}

// Validate checks every field against its accepted range
func (c Config) Validate() error {
	if c.ScaleSteps < MinScaleSteps || c.ScaleSteps > MaxScaleSteps {
		return fmt.Errorf("%w: scale steps must be %d-%d, got %d", ErrInvalidConfig, MinScaleSteps, MaxScaleSteps, c.ScaleSteps)
	}
	if c.GradientStops < MinGradientStops || c.GradientStops > MaxGradientStops {
		return fmt.Errorf("%w: gradient stops must be %d-%d, got %d", ErrInvalidConfig, MinGradientStops, MaxGradientStops, c.GradientStops)
	}
	if math.IsNaN(c.ContrastTarget) || c.ContrastTarget < MinContrastTarget || c.ContrastTarget > MaxContrastTarget {
		return fmt.Errorf("%w: contrast target must be %.0f-%.0f, got %v", ErrInvalidConfig, MinContrastTarget, MaxContrastTarget, c.ContrastTarget)
	}
	if math.IsNaN(c.StatusHueBias) || c.StatusHueBias < 0 || c.StatusHueBias > 1 {
		return fmt.Errorf("%w: status hue bias must be 0-1, got %v", ErrInvalidConfig, c.StatusHueBias)
	}
	return nil
}

// Request is the validated input to a derivation
type Request struct {
	Anchors AnchorSet `json:"anchors"`
	Config  Config    `json:"config"`
}

// Result is everything derived from one request
type Result struct {
	Anchors  AnchorSet      `json:"anchors"`
	Config   Config         `json:"config"`
	Scales   map[Role]Scale `json:"scales"`
	Gradient Gradient       `json:"gradient"`
	Status   StatusColorSet `json:"status"`
	Warnings []Warning      `json:"warnings"`
}

// Scale returns the scale for a role if that role is present
func (r *Result) Scale(role Role) (Scale, bool) {
	s, ok := r.Scales[role]
	return s, ok
}
