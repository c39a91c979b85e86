// SPDX-License-Identifier: MIT
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/tintkit/internal/colorspace"
	"github.com/thatcatcamp/tintkit/internal/engine"
	"github.com/thatcatcamp/tintkit/internal/palette"
	"github.com/thatcatcamp/tintkit/internal/suggest"
	"github.com/thatcatcamp/tintkit/internal/themes"
	"github.com/thatcatcamp/tintkit/internal/validator"
)

// statusFor maps an error onto an HTTP status
func statusFor(err error) int {
	switch {
	case errors.Is(err, suggest.ErrDisabled):
		return http.StatusServiceUnavailable
	case errors.Is(err, suggest.ErrUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, palette.ErrInvalidConfig),
		errors.Is(err, colorspace.ErrInvalidColorFormat),
		errors.Is(err, suggest.ErrEmptyPrompt),
		errors.Is(err, themes.ErrUnknownFormat):
		return http.StatusBadRequest
	case errors.Is(err, palette.ErrPaletteGenerationFailed):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// respondError writes the error body. Generation failures carry the
// default palette derived with cfg as "fallback", plus any rejections.
func respondError(c *gin.Context, err error, cfg palette.Config) {
	status := statusFor(err)
	body := gin.H{"error": err.Error()}

	if status == http.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		body["error"] = "internal error"
	}

	var noValid *validator.NoValidColorsError
	if errors.As(err, &noValid) {
		body["rejections"] = noValid.Rejections
	}

	if errors.Is(err, palette.ErrPaletteGenerationFailed) {
		if fallback, ferr := fallbackResult(cfg); ferr == nil {
			body["fallback"] = fallback
		} else {
			log.Printf("fallback palette failed: %v", ferr)
		}
	}

	c.JSON(status, body)
}

// fallbackResult derives the default preset so clients always get a palette
func fallbackResult(cfg palette.Config) (*palette.Result, error) {
	anchors, err := themes.DefaultPalette().Anchors()
	if err != nil {
		return nil, err
	}
	if cfg.Validate() != nil {
		cfg = palette.DefaultConfig()
	}
	return engine.Derive(palette.Request{Anchors: anchors, Config: cfg})
}

// logWarnings records every non-fatal adjustment in the server log
func logWarnings(route string, warnings []palette.Warning) {
	for _, w := range warnings {
		log.Printf("%s: %s", route, w)
	}
}
