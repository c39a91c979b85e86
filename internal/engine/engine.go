// SPDX-License-Identifier: MIT

// Package engine derives a complete palette from anchor colors. It is pure:
// the same request always yields the same result, and nothing is logged or
// retained between calls.
package engine

import (
	"fmt"

	"github.com/thatcatcamp/tintkit/internal/contrast"
	"github.com/thatcatcamp/tintkit/internal/gradient"
	"github.com/thatcatcamp/tintkit/internal/palette"
	"github.com/thatcatcamp/tintkit/internal/scale"
	"github.com/thatcatcamp/tintkit/internal/validator"
)

// Derive builds a scale per present anchor role, one gradient across all
// anchors and a status color set. Non-fatal adjustments are reported as
// warnings on the result.
func Derive(req palette.Request) (*palette.Result, error) {
	if err := req.Config.Validate(); err != nil {
		return nil, err
	}
	if req.Anchors.IsEmpty() {
		return nil, fmt.Errorf("%w: no anchors", palette.ErrPaletteGenerationFailed)
	}

	cfg := req.Config
	opts := scale.OptionsFor(cfg.ScaleSteps)

	result := &palette.Result{
		Anchors:  req.Anchors,
		Config:   cfg,
		Scales:   make(map[palette.Role]palette.Scale, req.Anchors.Len()),
		Warnings: []palette.Warning{},
	}

	for _, a := range req.Anchors.Anchors() {
		s, warnings, err := scale.Generate(a.Color, opts)
		if err != nil {
			return nil, fmt.Errorf("%s scale: %w", a.Role, err)
		}
		for _, w := range warnings {
			w.Subject = string(a.Role)
			result.Warnings = append(result.Warnings, w)
		}
		result.Scales[a.Role] = s
	}

	g, err := gradient.Generate(req.Anchors, cfg.GradientStops, opts)
	if err != nil {
		return nil, fmt.Errorf("gradient: %w", err)
	}
	result.Gradient = g

	status, warnings, err := contrast.StatusColors(cfg.Background, req.Anchors, cfg.ContrastTarget, cfg.StatusHueBias)
	if err != nil {
		return nil, fmt.Errorf("status colors: %w", err)
	}
	result.Status = status
	result.Warnings = append(result.Warnings, warnings...)

	return result, nil
}

// DeriveEntries validates raw color strings and derives from whatever
// survives. Validator warnings come first in the result.
func DeriveEntries(entries []string, cfg palette.Config) (*palette.Result, *validator.Outcome, error) {
	outcome, err := validator.Normalize(entries)
	if err != nil {
		return nil, nil, err
	}
	result, err := Derive(palette.Request{Anchors: outcome.Anchors, Config: cfg})
	if err != nil {
		return nil, outcome, err
	}
	merged := make([]palette.Warning, 0, len(outcome.Warnings)+len(result.Warnings))
	merged = append(merged, outcome.Warnings...)
	result.Warnings = append(merged, result.Warnings...)
	return result, outcome, nil
}
