// SPDX-License-Identifier: MIT
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/thatcatcamp/tintkit/internal/colorspace"
	"github.com/thatcatcamp/tintkit/internal/palette"
)

// Outcome labels
const (
	OutcomeOK            = "ok"
	OutcomeInvalidInput  = "invalid_input"
	OutcomeNoValidColors = "no_valid_colors"
	OutcomeUnavailable   = "unavailable"
	OutcomeError         = "error"
)

var (
	// MetricDerivations counts derivations by outcome
	MetricDerivations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tintkit_derivations_total",
		Help: "Total palette derivations by outcome",
	}, []string{"outcome"})

	// MetricWarnings counts non-fatal warnings by code
	MetricWarnings = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tintkit_warnings_total",
		Help: "Total derivation warnings by code",
	}, []string{"code"})

	// MetricSuggestions counts suggestion service calls by outcome
	MetricSuggestions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tintkit_suggestions_total",
		Help: "Total suggestion service calls by outcome",
	}, []string{"outcome"})

	// MetricDerivationDuration tracks how long a derivation takes
	MetricDerivationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tintkit_derivation_duration_seconds",
		Help:    "Palette derivation duration in seconds",
		Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
	})
)

// Outcome classifies an engine error for the outcome label
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, palette.ErrInvalidConfig), errors.Is(err, colorspace.ErrInvalidColorFormat):
		return OutcomeInvalidInput
	case errors.Is(err, palette.ErrPaletteGenerationFailed):
		return OutcomeNoValidColors
	}
	return OutcomeError
}

// ObserveDerivation records one derivation's outcome, warnings and duration
func ObserveDerivation(start time.Time, warnings []palette.Warning, err error) {
	MetricDerivationDuration.Observe(time.Since(start).Seconds())
	MetricDerivations.WithLabelValues(Outcome(err)).Inc()
	for _, w := range warnings {
		MetricWarnings.WithLabelValues(string(w.Code)).Inc()
	}
}

// Handler serves the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
