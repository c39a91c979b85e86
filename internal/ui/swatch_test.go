// SPDX-License-Identifier: MIT
package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/thatcatcamp/tintkit/internal/colorspace"
	"github.com/thatcatcamp/tintkit/internal/engine"
	"github.com/thatcatcamp/tintkit/internal/palette"
	"github.com/thatcatcamp/tintkit/internal/validator"
)

func withColor(t *testing.T, enabled bool) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = !enabled
	t.Cleanup(func() { color.NoColor = prev })
}

func TestSwatchTruecolor(t *testing.T) {
	withColor(t, true)

	out := Swatch(colorspace.MustParse("#3b82f6"), "x")
	// 48;2 is a truecolor background escape
	if !strings.Contains(out, "48;2;59;130;246") {
		t.Errorf("expected truecolor background for #3b82f6, got %q", out)
	}
	if !strings.Contains(out, "x") {
		t.Errorf("swatch lost its text: %q", out)
	}
}

func TestSwatchPlainWhenColorDisabled(t *testing.T) {
	withColor(t, false)

	if out := Swatch(colorspace.MustParse("#3b82f6"), "x"); out != "x" {
		t.Errorf("expected plain text, got %q", out)
	}
}

func TestPrintResult(t *testing.T) {
	withColor(t, false)

	set := palette.MustAnchorSet(colorspace.MustParse("#3b82f6"), colorspace.MustParse("#ffffff"))
	result, err := engine.Derive(palette.Request{Anchors: set, Config: palette.DefaultConfig()})
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}

	var buf bytes.Buffer
	PrintResult(&buf, result)
	out := buf.String()

	for _, want := range []string{"primary", "secondary", "#3b82f6", "gradient", "status on #ffffff", "error", "ClampedAnchor [secondary]"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintRejections(t *testing.T) {
	withColor(t, false)

	var buf bytes.Buffer
	PrintRejections(&buf, []validator.Rejection{{Index: 0, Input: "blurple", Reason: "invalid color format"}})
	if !strings.Contains(buf.String(), `skipped "blurple"`) {
		t.Errorf("unexpected output %q", buf.String())
	}
}
