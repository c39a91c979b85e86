// SPDX-License-Identifier: MIT
package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/tintkit/internal/harmony"
	"github.com/thatcatcamp/tintkit/internal/metrics"
	"github.com/thatcatcamp/tintkit/internal/middleware"
	"github.com/thatcatcamp/tintkit/internal/palette"
	"github.com/thatcatcamp/tintkit/internal/suggest"
)

// Options carries everything the API handlers read
type Options struct {
	// Engine is the base config; requests override individual fields
	Engine palette.Config

	// Rule is the harmony rule used when /api/random names none
	Rule harmony.Rule

	// Suggest may be nil, /api/suggest then answers 503
	Suggest *suggest.Client

	// SuggestRateLimit is calls per minute per client IP, 0 disables limiting
	SuggestRateLimit int

	// TrustedProxies are the addresses or CIDRs whose X-Forwarded-For is
	// believed. Empty means the connecting address is the client.
	TrustedProxies []string

	HSTS bool
}

// NewRouter builds the gin engine with every API route mounted
func NewRouter(opts Options) (*gin.Engine, error) {
	if opts.Rule == "" {
		opts.Rule = harmony.DefaultRule
	}

	r := gin.New()
	if err := r.SetTrustedProxies(opts.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.SecurityHeadersMiddleware(opts.HSTS))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "tintkit",
		})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	suggestLimiter := middleware.NewRateLimiter(opts.SuggestRateLimit, time.Minute)

	api := r.Group("/api")
	{
		api.GET("/presets", PresetsHandler)
		api.POST("/derive", DeriveHandler(opts))
		api.POST("/validate", ValidateHandler(opts))
		api.GET("/random", RandomHandler(opts))
		api.POST("/export/:format", ExportHandler(opts))
		api.POST("/suggest", middleware.RateLimitMiddleware(suggestLimiter), SuggestHandler(opts))
	}

	return r, nil
}
