// SPDX-License-Identifier: MIT
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/tintkit/internal/engine"
	"github.com/thatcatcamp/tintkit/internal/metrics"
	"github.com/thatcatcamp/tintkit/internal/palette"
	"github.com/thatcatcamp/tintkit/internal/suggest"
	"github.com/thatcatcamp/tintkit/internal/themes"
)

type suggestRequest struct {
	Prompt   string           `json:"prompt"`
	Config   *configOverrides `json:"config"`
	DarkMode bool             `json:"darkMode"`
}

// suggestOutcome labels a suggestion call for metrics
func suggestOutcome(err error) string {
	if errors.Is(err, suggest.ErrUnavailable) {
		return metrics.OutcomeUnavailable
	}
	return metrics.Outcome(err)
}

// SuggestHandler asks the suggestion service for colors, validates them and
// derives a palette. Nothing the service returns reaches the engine unchecked.
func SuggestHandler(opts Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		if opts.Suggest == nil || opts.Suggest.URL == "" {
			respondError(c, suggest.ErrDisabled, opts.Engine)
			return
		}

		var req suggestRequest
		if err := json.NewDecoder(io.LimitReader(c.Request.Body, maxBodyBytes)).Decode(&req); err != nil {
			respondError(c, fmt.Errorf("%w: malformed request body: %v", palette.ErrInvalidConfig, err), opts.Engine)
			return
		}

		cfg, err := req.Config.apply(opts.Engine)
		if err != nil {
			respondError(c, err, opts.Engine)
			return
		}

		outcome, err := opts.Suggest.SuggestPalette(c.Request.Context(), req.Prompt)
		metrics.MetricSuggestions.WithLabelValues(suggestOutcome(err)).Inc()
		if err != nil {
			respondError(c, err, cfg)
			return
		}

		start := time.Now()
		result, err := engine.Derive(palette.Request{Anchors: outcome.Anchors, Config: cfg})
		if err != nil {
			metrics.ObserveDerivation(start, nil, err)
			respondError(c, err, cfg)
			return
		}
		result.Warnings = append(append([]palette.Warning{}, outcome.Warnings...), result.Warnings...)
		metrics.ObserveDerivation(start, result.Warnings, nil)
		logWarnings("suggest", result.Warnings)

		c.JSON(http.StatusOK, deriveResponse{
			Result:     result,
			Theme:      themes.GenerateColors(result, req.DarkMode),
			Rejections: outcome.Rejections,
		})
	}
}
