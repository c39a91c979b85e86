// SPDX-License-Identifier: MIT
package colorspace

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestParseHexForms(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"#3B82F6", "#3b82f6"},
		{"3b82f6", "#3b82f6"},
		{"#fff", "#ffffff"},
		{"FFF", "#ffffff"},
		{"#a1C", "#aa11cc"},
		{"  #10B981 ", "#10b981"},
		{"rgb(59, 130, 246)", "#3b82f6"},
		{"RGB(0,0,0)", "#000000"},
		{"hsl(0, 100%, 50%)", "#ff0000"},
		{"hsl(120, 100%, 25%)", "#008000"},
		{"HSL(240deg,100%,50%)", "#0000ff"},
		{"hsl(360, 0%, 100%)", "#ffffff"},
		{"rebeccapurple", "#663399"},
		{"White", "#ffffff"},
	}

	for _, tt := range tests {
		c, err := Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tt.input, err)
			continue
		}
		if c.Hex() != tt.want {
			t.Errorf("Parse(%q).Hex() = %s, want %s", tt.input, c.Hex(), tt.want)
		}
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"#",
		"#12",
		"#1234",
		"#12345",
		"#1234567",
		"#12345g",
		"##123456",
		"not-a-color",
		"rgb(256, 0, 0)",
		"rgb(1,2)",
		"hsl(120, 50%, 150%)",
		"hsl(361, 50%, 50%)",
		"hsl(120, 50, 50)",
		"blurple",
	}

	for _, input := range inputs {
		_, err := Parse(input)
		if err == nil {
			t.Errorf("Parse(%q) should fail", input)
			continue
		}
		if !errors.Is(err, ErrInvalidColorFormat) {
			t.Errorf("Parse(%q) error should wrap ErrInvalidColorFormat, got %v", input, err)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	// Sweep the 8-bit cube on a coarse grid in both cases
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 15 {
				hex := fmt.Sprintf("#%02X%02X%02X", r, g, b)
				c, err := Parse(hex)
				if err != nil {
					t.Fatalf("Parse(%s) failed: %v", hex, err)
				}
				if !strings.EqualFold(c.Hex(), hex) {
					t.Fatalf("round trip %s -> %s", hex, c.Hex())
				}
			}
		}
	}
}

func TestHSLRoundTripWithinOneUnit(t *testing.T) {
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 17 {
				c := FromRGB255(uint8(r), uint8(g), uint8(b))
				h, s, l := c.HSL()
				back := FromHSL(h, s, l)
				if d := c.ChannelDistance(back); d > 1 {
					t.Fatalf("%s -> hsl(%.3f, %.3f, %.3f) -> %s drifted by %d", c.Hex(), h, s, l, back.Hex(), d)
				}
			}
		}
	}
}

func TestHSLRanges(t *testing.T) {
	c := MustParse("#3B82F6")
	h, s, l := c.HSL()
	if h < 0 || h >= 360 {
		t.Errorf("hue out of range: %f", h)
	}
	if math.Abs(h-217.2) > 0.5 {
		t.Errorf("expected hue near 217, got %f", h)
	}
	if s < 0 || s > 1 || l < 0 || l > 1 {
		t.Errorf("saturation/lightness out of range: %f %f", s, l)
	}
}

func TestTextMarshalling(t *testing.T) {
	c := MustParse("#10B981")
	text, err := c.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}
	if string(text) != "#10b981" {
		t.Errorf("expected #10b981, got %s", text)
	}

	var decoded Color
	if err := decoded.UnmarshalText([]byte("rgb(16, 185, 129)")); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if !decoded.Equal(c) {
		t.Errorf("expected %s, got %s", c, decoded)
	}

	if err := decoded.UnmarshalText([]byte("nope")); !errors.Is(err, ErrInvalidColorFormat) {
		t.Errorf("expected ErrInvalidColorFormat, got %v", err)
	}
}

func TestQuantizeIsStable(t *testing.T) {
	c := FromHSL(217.3, 0.913, 0.4123)
	q := c.Quantize()
	if q.Hex() != c.Hex() {
		t.Errorf("quantize changed rendering: %s vs %s", q.Hex(), c.Hex())
	}
	if q.Quantize() != q {
		t.Error("quantize should be idempotent")
	}
}

func TestCSSRenderings(t *testing.T) {
	c := MustParse("#ff0000")
	if got := c.CSSRGB(); got != "rgb(255, 0, 0)" {
		t.Errorf("CSSRGB = %s", got)
	}
	if got := c.CSSHSL(); got != "hsl(0, 100%, 50%)" {
		t.Errorf("CSSHSL = %s", got)
	}
}
