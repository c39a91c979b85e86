package themes

import (
	"github.com/thatcatcamp/tintkit/internal/colorspace"
	"github.com/thatcatcamp/tintkit/internal/contrast"
	"github.com/thatcatcamp/tintkit/internal/palette"
)

// mutedSaturation tints muted text toward the primary hue without reading as a color
const mutedSaturation = 0.12

// Colors represents all semantic colors for a theme
type Colors struct {
	Primary         string `json:"primary"`         // Main brand color
	PrimaryContrast string `json:"primaryContrast"` // Text drawn on primary
	Secondary       string `json:"secondary"`       // Supporting color
	Accent          string `json:"accent"`          // Highlight color
	Background      string `json:"background"`      // Page background
	Surface         string `json:"surface"`         // Card/container background
	Text            string `json:"text"`            // Main text color
	TextMuted       string `json:"textMuted"`       // Secondary/muted text
	Border          string `json:"border"`          // Border/divider color
	Success         string `json:"success"`
	Warning         string `json:"warning"`
	Error           string `json:"error"`
	Info            string `json:"info"`

	// Warnings from re-deriving status colors for dark mode
	Warnings []palette.Warning `json:"warnings,omitempty"`
}

// GenerateColors maps a derived palette onto UI roles for light or dark mode
func GenerateColors(result *palette.Result, darkMode bool) *Colors {
	if darkMode {
		return generateDarkColors(result)
	}
	return generateLightColors(result)
}

// generateLightColors uses the configured background and the anchors as-is
func generateLightColors(result *palette.Result) *Colors {
	primary := result.Scales[palette.RolePrimary]
	bg := result.Config.Background

	colors := &Colors{
		Background: bg.Hex(),
		Surface:    primary.At(0).Color.Hex(),
		Text:       contrast.ReadableOn(bg).Hex(),
		TextMuted:  mutedOn(result, bg).Hex(),
		Border:     primary.At(1).Color.Hex(),
	}
	setAnchors(colors, result, func(s palette.Scale) colorspace.Color { return s.Base().Color })
	setStatus(colors, result.Status)
	return colors
}

// generateDarkColors moves the background to the darkest primary step and
// lifts anchors to lighter steps so they read on it
func generateDarkColors(result *palette.Result) *Colors {
	primary := result.Scales[palette.RolePrimary]
	last := len(primary.Steps) - 1
	bg := primary.At(last).Color

	colors := &Colors{
		Background: bg.Hex(),
		Surface:    primary.At(last - 1).Color.Hex(),
		Text:       contrast.ReadableOn(bg).Hex(),
		TextMuted:  mutedOn(result, bg).Hex(),
		Border:     primary.At(last - 2).Color.Hex(),
	}
	setAnchors(colors, result, func(s palette.Scale) colorspace.Color { return s.At(s.BaseIndex - 2).Color })

	status, warnings, err := contrast.StatusColors(bg, result.Anchors, result.Config.ContrastTarget, result.Config.StatusHueBias)
	if err != nil {
		// the result was derived from this config, so only a hand-built
		// result can get here; keep the light status colors
		status = result.Status
	}
	setStatus(colors, status)
	colors.Warnings = warnings
	return colors
}

// setAnchors fills primary, secondary and accent. Missing roles fall back
// to the previous role so every slot is populated.
func setAnchors(colors *Colors, result *palette.Result, pick func(palette.Scale) colorspace.Color) {
	primary := pick(result.Scales[palette.RolePrimary])
	secondary := primary
	if s, ok := result.Scale(palette.RoleSecondary); ok {
		secondary = pick(s)
	}
	accent := secondary
	if s, ok := result.Scale(palette.RoleAccent); ok {
		accent = pick(s)
	}

	colors.Primary = primary.Hex()
	colors.PrimaryContrast = contrast.ReadableOn(primary).Hex()
	colors.Secondary = secondary.Hex()
	colors.Accent = accent.Hex()
}

func setStatus(colors *Colors, status palette.StatusColorSet) {
	colors.Success = status.Get(palette.StatusSuccess).Hex()
	colors.Warning = status.Get(palette.StatusWarning).Hex()
	colors.Error = status.Get(palette.StatusError).Hex()
	colors.Info = status.Get(palette.StatusInfo).Hex()
}

// mutedOn returns a faintly tinted gray that still meets the contrast target
func mutedOn(result *palette.Result, bg colorspace.Color) colorspace.Color {
	start := 0.45
	if contrast.Luminance(bg) < 0.18 {
		start = 0.65
	}
	c, _, _ := contrast.FitLightness(result.Anchors.Primary().Hue(), mutedSaturation, start, bg, result.Config.ContrastTarget)
	return c
}
