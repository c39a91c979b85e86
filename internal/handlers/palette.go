// SPDX-License-Identifier: MIT
package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/tintkit/internal/colorspace"
	"github.com/thatcatcamp/tintkit/internal/engine"
	"github.com/thatcatcamp/tintkit/internal/harmony"
	"github.com/thatcatcamp/tintkit/internal/metrics"
	"github.com/thatcatcamp/tintkit/internal/palette"
	"github.com/thatcatcamp/tintkit/internal/themes"
	"github.com/thatcatcamp/tintkit/internal/validator"
)

// maxBodyBytes caps request bodies
const maxBodyBytes = 64 << 10

// configOverrides are the per-request changes to the server's engine config
type configOverrides struct {
	ScaleSteps     *int     `json:"scaleSteps"`
	GradientStops  *int     `json:"gradientStops"`
	ContrastTarget *float64 `json:"contrastTarget"`
	Background     *string  `json:"backgroundColor"`
	StatusHueBias  *float64 `json:"statusHueBias"`
}

func (o *configOverrides) apply(base palette.Config) (palette.Config, error) {
	cfg := base
	if o == nil {
		return cfg, cfg.Validate()
	}
	if o.ScaleSteps != nil {
		cfg.ScaleSteps = *o.ScaleSteps
	}
	if o.GradientStops != nil {
		cfg.GradientStops = *o.GradientStops
	}
	if o.ContrastTarget != nil {
		cfg.ContrastTarget = *o.ContrastTarget
	}
	if o.StatusHueBias != nil {
		cfg.StatusHueBias = *o.StatusHueBias
	}
	if o.Background != nil {
		bg, err := colorspace.Parse(*o.Background)
		if err != nil {
			return cfg, fmt.Errorf("backgroundColor: %w", err)
		}
		cfg.Background = bg
	}
	return cfg, cfg.Validate()
}

// deriveRequest is the body of /api/derive and /api/export/:format.
// Colors takes any shape the validator decodes.
type deriveRequest struct {
	Colors   json.RawMessage  `json:"colors"`
	Config   *configOverrides `json:"config"`
	DarkMode bool             `json:"darkMode"`
}

type deriveResponse struct {
	Result     *palette.Result       `json:"result"`
	Theme      *themes.Colors        `json:"theme"`
	Rejections []validator.Rejection `json:"rejections,omitempty"`
}

// readDerive decodes the body and runs validation plus derivation.
// It returns the effective config even on error so a fallback can use it.
func readDerive(c *gin.Context, opts Options) (*deriveRequest, *palette.Result, *validator.Outcome, palette.Config, error) {
	cfg := opts.Engine

	var req deriveRequest
	if err := json.NewDecoder(io.LimitReader(c.Request.Body, maxBodyBytes)).Decode(&req); err != nil {
		return nil, nil, nil, cfg, fmt.Errorf("%w: malformed request body: %v", palette.ErrInvalidConfig, err)
	}

	cfg, err := req.Config.apply(opts.Engine)
	if err != nil {
		return &req, nil, nil, opts.Engine, err
	}

	entries, err := validator.DecodeEntries(req.Colors)
	if err != nil {
		return &req, nil, nil, cfg, err
	}

	start := time.Now()
	result, outcome, err := engine.DeriveEntries(entries, cfg)
	if result != nil {
		metrics.ObserveDerivation(start, result.Warnings, err)
	} else {
		metrics.ObserveDerivation(start, nil, err)
	}
	return &req, result, outcome, cfg, err
}

// DeriveHandler derives a full palette from 1..3 colors
func DeriveHandler(opts Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, result, outcome, cfg, err := readDerive(c, opts)
		if err != nil {
			respondError(c, err, cfg)
			return
		}
		logWarnings("derive", result.Warnings)

		c.JSON(http.StatusOK, deriveResponse{
			Result:     result,
			Theme:      themes.GenerateColors(result, req.DarkMode),
			Rejections: outcome.Rejections,
		})
	}
}

// ValidateHandler normalizes any color payload into an anchor set without
// deriving anything
func ValidateHandler(opts Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body"})
			return
		}

		outcome, err := validator.NormalizePayload(raw)
		if err != nil {
			respondError(c, err, opts.Engine)
			return
		}
		logWarnings("validate", outcome.Warnings)

		c.JSON(http.StatusOK, outcome)
	}
}

// RandomHandler derives a palette from harmony-sampled anchors.
// The seed used is echoed so the palette can be reproduced.
func RandomHandler(opts Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		n := palette.MaxAnchors
		if s := c.Query("n"); s != "" {
			v, err := strconv.Atoi(s)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "n must be an integer"})
				return
			}
			n = v
		}

		seed := time.Now().UnixNano()
		if s := c.Query("seed"); s != "" {
			v, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "seed must be an integer"})
				return
			}
			seed = v
		}

		rule := opts.Rule
		if s := c.Query("rule"); s != "" {
			r, err := harmony.ParseRule(s)
			if err != nil {
				respondError(c, err, opts.Engine)
				return
			}
			rule = r
		}

		anchors, err := harmony.Generate(n, rule, harmony.NewRand(&seed))
		if err != nil {
			respondError(c, err, opts.Engine)
			return
		}

		start := time.Now()
		result, err := engine.Derive(palette.Request{Anchors: anchors, Config: opts.Engine})
		if err != nil {
			metrics.ObserveDerivation(start, nil, err)
			respondError(c, err, opts.Engine)
			return
		}
		metrics.ObserveDerivation(start, result.Warnings, nil)
		logWarnings("random", result.Warnings)

		c.JSON(http.StatusOK, gin.H{
			"seed":   strconv.FormatInt(seed, 10),
			"rule":   rule,
			"result": result,
		})
	}
}

// ExportHandler derives a palette and returns it in the requested format
func ExportHandler(opts Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		format, err := themes.ParseFormat(c.Param("format"))
		if err != nil {
			respondError(c, err, opts.Engine)
			return
		}

		req, result, _, cfg, err := readDerive(c, opts)
		if err != nil {
			respondError(c, err, cfg)
			return
		}
		logWarnings("export", result.Warnings)

		data, err := themes.Export(result, format, req.DarkMode)
		if err != nil {
			respondError(c, err, cfg)
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", format.Filename()))
		c.Data(http.StatusOK, format.ContentType(), data)
	}
}

// PresetsHandler lists the built-in palettes
func PresetsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"default":  themes.DefaultPaletteName,
		"palettes": themes.ListPalettes(),
	})
}
