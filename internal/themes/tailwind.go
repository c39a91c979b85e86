// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"
	"strings"

	"github.com/thatcatcamp/tintkit/internal/gradient"
	"github.com/thatcatcamp/tintkit/internal/palette"
)

// GenerateTailwind renders a tailwind.config.js that extends the default
// theme with the derived scales, status colors and gradient
func GenerateTailwind(result *palette.Result) string {
	var b strings.Builder
	b.WriteString("/** @type {import('tailwindcss').Config} */\n")
	b.WriteString("module.exports = {\n  theme: {\n    extend: {\n      colors: {\n")

	for _, role := range result.Anchors.Roles() {
		s := result.Scales[role]
		fmt.Fprintf(&b, "        %s: {\n", role)
		for _, step := range s.Steps {
			fmt.Fprintf(&b, "          %d: '%s',\n", step.Label, step.Color.Hex())
		}
		fmt.Fprintf(&b, "          DEFAULT: '%s',\n", s.Base().Color.Hex())
		b.WriteString("        },\n")
	}
	for _, role := range palette.StatusRoles {
		fmt.Fprintf(&b, "        %s: '%s',\n", role, result.Status.Get(role).Hex())
	}

	b.WriteString("      },\n      backgroundImage: {\n")
	fmt.Fprintf(&b, "        brand: '%s',\n", gradient.LinearCSS(result.Gradient, gradientAngle))
	b.WriteString("      },\n    },\n  },\n}\n")
	return b.String()
}
