// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"
	"strings"

	"github.com/thatcatcamp/tintkit/internal/gradient"
	"github.com/thatcatcamp/tintkit/internal/palette"
)

// gradientAngle is the direction of the exported gradient
const gradientAngle = 90

// GenerateCSS renders the semantic colors as --color-* variables plus
// status utility classes. Bare elements are left unstyled.
func GenerateCSS(colors *Colors) string {
	return fmt.Sprintf(`:root {
  --color-primary: %s;
  --color-primary-contrast: %s;
  --color-secondary: %s;
  --color-accent: %s;
  --color-bg: %s;
  --color-surface: %s;
  --color-text: %s;
  --color-text-muted: %s;
  --color-border: %s;
  --color-success: %s;
  --color-error: %s;
  --color-warning: %s;
  --color-info: %s;
}

.text-success { color: var(--color-success); }
.text-error { color: var(--color-error); }
.text-warning { color: var(--color-warning); }
.text-info { color: var(--color-info); }
.text-muted { color: var(--color-text-muted); }
`, colors.Primary, colors.PrimaryContrast, colors.Secondary, colors.Accent, colors.Background,
		colors.Surface, colors.Text, colors.TextMuted, colors.Border,
		colors.Success, colors.Error, colors.Warning, colors.Info)
}

// GenerateScaleCSS renders every scale step and the gradient as variables,
// e.g. --primary-500 and --gradient
func GenerateScaleCSS(result *palette.Result) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, role := range result.Anchors.Roles() {
		for _, step := range result.Scales[role].Steps {
			fmt.Fprintf(&b, "  --%s-%d: %s;\n", role, step.Label, step.Color.Hex())
		}
	}
	for _, role := range palette.StatusRoles {
		fmt.Fprintf(&b, "  --status-%s: %s;\n", role, result.Status.Get(role).Hex())
	}
	fmt.Fprintf(&b, "  --gradient: %s;\n", gradient.LinearCSS(result.Gradient, gradientAngle))
	b.WriteString("}\n")
	return b.String()
}
