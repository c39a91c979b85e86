// SPDX-License-Identifier: MIT
package themes

import (
	"strconv"

	"github.com/thatcatcamp/tintkit/internal/gradient"
	"github.com/thatcatcamp/tintkit/internal/palette"
)

// Token is one design token in the $value/$type format
type Token struct {
	Value       any    `json:"$value" yaml:"$value"`
	Type        string `json:"$type" yaml:"$type"`
	Description string `json:"$description,omitempty" yaml:"$description,omitempty"`
}

// GradientStop is the value shape of a gradient token
type GradientStop struct {
	Color    string  `json:"color" yaml:"color"`
	Position float64 `json:"position" yaml:"position"`
}

// Tokens builds a design token tree:
//
//	color.<role>.<label>   every scale step
//	color.status.<role>    status colors, with their contrast ratio
//	color.theme.<name>     semantic UI colors for the chosen mode
//	gradient.brand         the anchor gradient
func Tokens(result *palette.Result, darkMode bool) map[string]any {
	colorGroup := map[string]any{}

	for _, role := range result.Anchors.Roles() {
		group := map[string]any{}
		for _, step := range result.Scales[role].Steps {
			group[strconv.Itoa(step.Label)] = Token{Value: step.Color.Hex(), Type: "color"}
		}
		colorGroup[string(role)] = group
	}

	status := map[string]any{}
	for _, role := range palette.StatusRoles {
		sc := result.Status.Colors[role]
		status[string(role)] = Token{
			Value:       sc.Color.Hex(),
			Type:        "color",
			Description: "contrast " + strconv.FormatFloat(sc.Contrast, 'f', 2, 64) + ":1 on " + result.Status.Background.Hex(),
		}
	}
	colorGroup["status"] = status

	c := GenerateColors(result, darkMode)
	colorGroup["theme"] = map[string]any{
		"primary":         Token{Value: c.Primary, Type: "color"},
		"primaryContrast": Token{Value: c.PrimaryContrast, Type: "color"},
		"secondary":       Token{Value: c.Secondary, Type: "color"},
		"accent":          Token{Value: c.Accent, Type: "color"},
		"background":      Token{Value: c.Background, Type: "color"},
		"surface":         Token{Value: c.Surface, Type: "color"},
		"text":            Token{Value: c.Text, Type: "color"},
		"textMuted":       Token{Value: c.TextMuted, Type: "color"},
		"border":          Token{Value: c.Border, Type: "color"},
	}

	stops := make([]GradientStop, len(result.Gradient.Stops))
	for i, s := range result.Gradient.Stops {
		stops[i] = GradientStop{Color: s.Color.Hex(), Position: s.Position}
	}

	return map[string]any{
		"color": colorGroup,
		"gradient": map[string]any{
			"brand": Token{
				Value:       stops,
				Type:        "gradient",
				Description: gradient.LinearCSS(result.Gradient, gradientAngle),
			},
		},
	}
}
