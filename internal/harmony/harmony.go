// SPDX-License-Identifier: MIT

// Package harmony generates random anchor sets whose hues follow a color
// harmony rule.
package harmony

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/thatcatcamp/tintkit/internal/colorspace"
	"github.com/thatcatcamp/tintkit/internal/palette"
)

// Rule is a fixed angular relationship between anchor hues
type Rule string

const (
	Complementary      Rule = "complementary"
	Analogous          Rule = "analogous"
	Triadic            Rule = "triadic"
	SplitComplementary Rule = "split-complementary"

	DefaultRule = Triadic
)

// MinHueSeparation is the smallest hue distance two anchors may share
const MinHueSeparation = 15.0

// Sampling bounds keep anchors away from white, black and gray
const (
	minSaturation         = 0.30
	maxSaturation         = 0.95
	vividSaturation       = 0.45
	maxSaturationAttempts = 16
	minLightness          = 0.38
	maxLightness          = 0.62
)

// hue offsets from the base hue for primary, secondary, accent
var offsets = map[Rule][palette.MaxAnchors]float64{
	Complementary:      {0, 180, 30},
	Analogous:          {0, 30, -30},
	Triadic:            {0, 120, 240},
	SplitComplementary: {0, 150, 210},
}

// Rules lists the supported rules alphabetically
func Rules() []Rule {
	rules := make([]Rule, 0, len(offsets))
	for r := range offsets {
		rules = append(rules, r)
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i] < rules[j] })
	return rules
}

// ParseRule accepts a rule name case-insensitively, empty means DefaultRule
func ParseRule(s string) (Rule, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultRule, nil
	}
	r := Rule(s)
	if _, ok := offsets[r]; !ok {
		return "", fmt.Errorf("%w: unknown harmony rule %q", palette.ErrInvalidConfig, s)
	}
	return r, nil
}

// NewRand returns a source seeded with seed, or with the clock when seed is nil
func NewRand(seed *int64) *rand.Rand {
	s := time.Now().UnixNano()
	if seed != nil {
		s = *seed
	}
	return rand.New(rand.NewSource(s))
}

// Generate draws n anchors (1..3) from rng. The same rng state always gives
// the same anchors.
func Generate(n int, rule Rule, rng *rand.Rand) (palette.AnchorSet, error) {
	if n < 1 || n > palette.MaxAnchors {
		return palette.AnchorSet{}, fmt.Errorf("%w: anchor count must be 1-%d, got %d", palette.ErrInvalidConfig, palette.MaxAnchors, n)
	}
	off, ok := offsets[rule]
	if !ok {
		return palette.AnchorSet{}, fmt.Errorf("%w: unknown harmony rule %q", palette.ErrInvalidConfig, rule)
	}

	base := rng.Float64() * 360
	hues := make([]float64, n)
	for i := range hues {
		hues[i] = colorspace.NormalizeHue(base + off[i])
	}
	hues, _ = Separate(hues, MinHueSeparation)

	colors := make([]colorspace.Color, n)
	for i, h := range hues {
		s := sampleSaturation(rng)
		l := minLightness + rng.Float64()*(maxLightness-minLightness)
		colors[i] = colorspace.FromHSL(h, s, l).Quantize()
	}
	return palette.NewAnchorSet(colors...)
}

// sampleSaturation rejects washed-out draws, giving up after a bounded number
// of attempts so generation always terminates
func sampleSaturation(rng *rand.Rand) float64 {
	for i := 0; i < maxSaturationAttempts; i++ {
		s := minSaturation + rng.Float64()*(maxSaturation-minSaturation)
		if s >= vividSaturation {
			return s
		}
	}
	return vividSaturation
}
