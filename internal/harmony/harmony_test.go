// SPDX-License-Identifier: MIT
package harmony

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/thatcatcamp/tintkit/internal/colorspace"
	"github.com/thatcatcamp/tintkit/internal/palette"
)

func seeded(seed int64) *rand.Rand {
	return NewRand(&seed)
}

func TestSeedIsRepeatable(t *testing.T) {
	for _, rule := range Rules() {
		a, err := Generate(3, rule, seeded(42))
		if err != nil {
			t.Fatalf("Generate(%s) failed: %v", rule, err)
		}
		b, _ := Generate(3, rule, seeded(42))
		if !reflect.DeepEqual(a.Hexes(), b.Hexes()) {
			t.Errorf("%s: seed 42 gave %v then %v", rule, a.Hexes(), b.Hexes())
		}
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	a, _ := Generate(3, Triadic, seeded(1))
	b, _ := Generate(3, Triadic, seeded(2))
	if reflect.DeepEqual(a.Hexes(), b.Hexes()) {
		t.Errorf("seeds 1 and 2 both gave %v", a.Hexes())
	}
}

func TestHueSeparation(t *testing.T) {
	for _, rule := range Rules() {
		for n := 2; n <= palette.MaxAnchors; n++ {
			for seed := int64(0); seed < 200; seed++ {
				set, err := Generate(n, rule, seeded(seed))
				if err != nil {
					t.Fatalf("Generate(%d, %s, %d) failed: %v", n, rule, seed, err)
				}
				if set.Len() != n {
					t.Fatalf("expected %d anchors, got %d", n, set.Len())
				}
				colors := set.Colors()
				for i := 0; i < len(colors); i++ {
					for j := i + 1; j < len(colors); j++ {
						if d := colorspace.HueDistance(colors[i].Hue(), colors[j].Hue()); d < MinHueSeparation {
							t.Fatalf("%s seed %d: anchors %s and %s only %.1f degrees apart",
								rule, seed, colors[i], colors[j], d)
						}
					}
				}
			}
		}
	}
}

func TestSamplingBounds(t *testing.T) {
	rng := seeded(7)
	for i := 0; i < 300; i++ {
		set, err := Generate(3, Analogous, rng)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		for _, c := range set.Colors() {
			// 8-bit quantization moves HSL by well under 0.01
			if s := c.Saturation(); s < vividSaturation-0.01 || s > maxSaturation+0.01 {
				t.Fatalf("%s saturation %.3f out of bounds", c, s)
			}
			if l := c.Lightness(); l < minLightness-0.01 || l > maxLightness+0.01 {
				t.Fatalf("%s lightness %.3f out of bounds", c, l)
			}
			if c.IsAchromatic() {
				t.Fatalf("%s is achromatic", c)
			}
		}
	}
}

func TestGenerateRejectsBadInput(t *testing.T) {
	for _, n := range []int{0, 4} {
		if _, err := Generate(n, Triadic, seeded(1)); !errors.Is(err, palette.ErrInvalidConfig) {
			t.Errorf("n=%d: expected ErrInvalidConfig, got %v", n, err)
		}
	}
	if _, err := Generate(2, Rule("tetradic"), seeded(1)); !errors.Is(err, palette.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for unknown rule, got %v", err)
	}
}

func TestParseRule(t *testing.T) {
	cases := map[string]Rule{
		"":                    Triadic,
		"triadic":             Triadic,
		" Analogous ":         Analogous,
		"COMPLEMENTARY":       Complementary,
		"split-complementary": SplitComplementary,
	}
	for in, want := range cases {
		got, err := ParseRule(in)
		if err != nil {
			t.Errorf("ParseRule(%q) failed: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseRule(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseRule("rainbow"); err == nil {
		t.Error("expected error for unknown rule")
	}
}

func TestSeparate(t *testing.T) {
	hues, moved := Separate([]float64{200, 205, 120}, MinHueSeparation)
	if hues[0] != 200 {
		t.Errorf("primary hue moved to %.1f", hues[0])
	}
	if !reflect.DeepEqual(moved, []int{1}) {
		t.Errorf("expected only index 1 moved, got %v", moved)
	}
	if d := colorspace.HueDistance(hues[0], hues[1]); d < MinHueSeparation {
		t.Errorf("hues still %.1f apart", d)
	}
	if hues[2] != 120 {
		t.Errorf("well separated hue moved to %.1f", hues[2])
	}

	// wraps around 0 and avoids both neighbours
	hues, _ = Separate([]float64{355, 5, 0}, MinHueSeparation)
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if d := colorspace.HueDistance(hues[i], hues[j]); d < MinHueSeparation {
				t.Errorf("hues %v: %d and %d only %.1f apart", hues, i, j, d)
			}
		}
	}
}
