// SPDX-License-Identifier: MIT
package palette

import (
	"errors"
	"fmt"

	"github.com/thatcatcamp/tintkit/internal/colorspace"
)

// ErrPaletteGenerationFailed means no valid anchor could be assembled.
// Callers fall back to a default palette.
var ErrPaletteGenerationFailed = errors.New("palette generation failed")

// ErrInvalidConfig is returned for configuration outside accepted ranges
var ErrInvalidConfig = errors.New("invalid palette configuration")

// Step is one entry of a tonal scale
type Step struct {
	Label int              `json:"label"`
	Color colorspace.Color `json:"color"`
}

// Scale is a light-to-dark ramp derived from one anchor.
// Steps[BaseIndex] carries the anchor itself.
type Scale struct {
	Anchor    colorspace.Color `json:"anchor"`
	BaseIndex int              `json:"baseIndex"`
	Steps     []Step           `json:"steps"`
}

// Base returns the designated base step
func (s Scale) Base() Step {
	return s.Steps[s.BaseIndex]
}

// Lookup finds a step by label
func (s Scale) Lookup(label int) (colorspace.Color, bool) {
	for _, step := range s.Steps {
		if step.Label == label {
			return step.Color, true
		}
	}
	return colorspace.Color{}, false
}

// At returns the step at index i clamped into range
func (s Scale) At(i int) Step {
	if i < 0 {
		i = 0
	}
	if i >= len(s.Steps) {
		i = len(s.Steps) - 1
	}
	return s.Steps[i]
}

// Stop is one gradient color at a normalized position
type Stop struct {
	Position float64          `json:"position"`
	Color    colorspace.Color `json:"color"`
}

// Gradient is an ordered run of stops from position 0 to 1
type Gradient struct {
	Stops []Stop `json:"stops"`
}

// Validate checks the stop invariants
func (g Gradient) Validate() error {
	if len(g.Stops) < 2 {
		return fmt.Errorf("gradient needs at least 2 stops, got %d", len(g.Stops))
	}
	if g.Stops[0].Position != 0 || g.Stops[len(g.Stops)-1].Position != 1 {
		return errors.New("gradient must start at 0 and end at 1")
	}
	for i := 1; i < len(g.Stops); i++ {
		if g.Stops[i].Position <= g.Stops[i-1].Position {
			return fmt.Errorf("gradient positions must strictly increase at stop %d", i)
		}
	}
	return nil
}

// StatusRole is a semantic UI state
type StatusRole string

const (
	StatusSuccess StatusRole = "success"
	StatusWarning StatusRole = "warning"
	StatusError   StatusRole = "error"
	StatusInfo    StatusRole = "info"
)

// StatusRoles lists status roles in display order
var StatusRoles = []StatusRole{StatusSuccess, StatusWarning, StatusError, StatusInfo}

// StatusColor is a derived status color and its contrast against the background
type StatusColor struct {
	Color    colorspace.Color `json:"color"`
	Contrast float64          `json:"contrast"`
}

// StatusColorSet maps each status role to a legible color
type StatusColorSet struct {
	Background colorspace.Color           `json:"background"`
	Target     float64                    `json:"target"`
	Colors     map[StatusRole]StatusColor `json:"colors"`
}

// Get returns the color for a role; every derived set carries all four
func (s StatusColorSet) Get(role StatusRole) colorspace.Color {
	return s.Colors[role].Color
}

// WarningCode classifies a non-fatal derivation issue
type WarningCode string

const (
	WarnClampedAnchor        WarningCode = "ClampedAnchor"
	WarnContrastUnattainable WarningCode = "ContrastUnattainable"
	WarnAnchorNudged         WarningCode = "AnchorNudged"
	WarnAnchorsTruncated     WarningCode = "AnchorsTruncated"
)

// Warning reports a best-effort adjustment. Subject is the anchor or status
// role the warning applies to.
type Warning struct {
	Code    WarningCode `json:"code"`
	Subject string      `json:"subject,omitempty"`
	Message string      `json:"message"`
}

func (w Warning) String() string {
	if w.Subject == "" {
		return fmt.Sprintf("%s: %s", w.Code, w.Message)
	}
	return fmt.Sprintf("%s [%s]: %s", w.Code, w.Subject, w.Message)
}

// HasWarning reports whether code appears in ws, optionally for one subject
func HasWarning(ws []Warning, code WarningCode, subject string) bool {
	for _, w := range ws {
		if w.Code == code && (subject == "" || w.Subject == subject) {
			return true
		}
	}
	return false
}
