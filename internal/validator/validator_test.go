// SPDX-License-Identifier: MIT
package validator

import (
	"encoding/json"
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/thatcatcamp/tintkit/internal/colorspace"
	"github.com/thatcatcamp/tintkit/internal/palette"
)

func TestDropsUnparsableEntries(t *testing.T) {
	out, err := Normalize([]string{"not-a-color", "#10B981"})
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if out.Anchors.Len() != 1 {
		t.Fatalf("expected 1 anchor, got %d", out.Anchors.Len())
	}
	if got := out.Anchors.Primary().Hex(); got != "#10b981" {
		t.Errorf("primary = %s, want #10b981", got)
	}
	if len(out.Rejections) != 1 || out.Rejections[0].Index != 0 || out.Rejections[0].Input != "not-a-color" {
		t.Errorf("unexpected rejections: %+v", out.Rejections)
	}

	data, _ := json.Marshal(out.Anchors)
	if string(data) != `{"primary":"#10b981"}` {
		t.Errorf("anchors JSON = %s", data)
	}
}

func TestNothingValidFails(t *testing.T) {
	for _, entries := range [][]string{nil, {}, {"", "nope", "#12345"}} {
		out, err := Normalize(entries)
		if !errors.Is(err, palette.ErrPaletteGenerationFailed) {
			t.Fatalf("%v: expected ErrPaletteGenerationFailed, got %v", entries, err)
		}
		if out != nil {
			t.Errorf("%v: expected nil outcome on failure", entries)
		}
		var nv *NoValidColorsError
		if !errors.As(err, &nv) || len(nv.Rejections) != len(entries) {
			t.Errorf("%v: expected %d rejections in error, got %v", entries, len(entries), err)
		}
	}
}

func TestTruncatesToThree(t *testing.T) {
	out, err := Normalize([]string{"#ef4444", "#22c55e", "#3b82f6", "#a855f7", "#f59e0b"})
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if out.Anchors.Len() != palette.MaxAnchors {
		t.Errorf("expected %d anchors, got %d", palette.MaxAnchors, out.Anchors.Len())
	}
	if !palette.HasWarning(out.Warnings, palette.WarnAnchorsTruncated, "") {
		t.Error("expected AnchorsTruncated warning")
	}
	want := []string{"#ef4444", "#22c55e", "#3b82f6"}
	if !reflect.DeepEqual(out.Anchors.Hexes(), want) {
		t.Errorf("anchors = %v, want %v", out.Anchors.Hexes(), want)
	}
}

func TestNudgesDuplicates(t *testing.T) {
	out, err := Normalize([]string{"#3b82f6", "#3B82F6", "rgb(59, 130, 246)"})
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if out.Anchors.Len() != 3 {
		t.Fatalf("expected 3 anchors, got %d", out.Anchors.Len())
	}
	if got := out.Anchors.Primary().Hex(); got != "#3b82f6" {
		t.Errorf("primary should never move, got %s", got)
	}
	for _, role := range []palette.Role{palette.RoleSecondary, palette.RoleAccent} {
		if !palette.HasWarning(out.Warnings, palette.WarnAnchorNudged, string(role)) {
			t.Errorf("expected AnchorNudged for %s", role)
		}
	}
	assertNoCollisions(t, out.Anchors)
}

func TestNudgesGrays(t *testing.T) {
	out, err := Normalize([]string{"#808080", "gray"})
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if !palette.HasWarning(out.Warnings, palette.WarnAnchorNudged, string(palette.RoleSecondary)) {
		t.Error("expected AnchorNudged for secondary")
	}
	assertNoCollisions(t, out.Anchors)
}

func TestDistinctColorsUntouched(t *testing.T) {
	// same lightness, but gray and blue are visually distinct
	out, err := Normalize([]string{"#3b82f6", "#8f8f8f", "#10b981"})
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if len(out.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", out.Warnings)
	}
	if !reflect.DeepEqual(out.Anchors.Hexes(), []string{"#3b82f6", "#8f8f8f", "#10b981"}) {
		t.Errorf("anchors changed: %v", out.Anchors.Hexes())
	}
}

// Any list of 0-10 strings gives a contiguous 1-3 anchor set or a
// generation failure, never anything in between.
func TestNormalizeIsTotal(t *testing.T) {
	pool := []string{
		"#3b82f6", "#3B82F6", "#fff", "000", "red", "Teal", "rgb(1,2,3)", "rgb(300,0,0)",
		"", " ", "#", "#ggg", "blue-ish", "#10b981", "#11b982", "hsl(0,0,0)", "#7f7f7f",
		"#808080", "white", "whitesmoke", "null", "#abcd", "💥", "#ef4444",
	}
	rng := rand.New(rand.NewSource(99))
	for iter := 0; iter < 2000; iter++ {
		n := rng.Intn(11)
		entries := make([]string, n)
		for i := range entries {
			entries[i] = pool[rng.Intn(len(pool))]
		}

		out, err := Normalize(entries)
		if err != nil {
			if !errors.Is(err, palette.ErrPaletteGenerationFailed) {
				t.Fatalf("%q: unexpected error %v", entries, err)
			}
			continue
		}
		if l := out.Anchors.Len(); l < 1 || l > palette.MaxAnchors {
			t.Fatalf("%q: %d anchors", entries, l)
		}

		data, err := json.Marshal(out.Anchors)
		if err != nil {
			t.Fatalf("%q: marshal failed: %v", entries, err)
		}
		var back palette.AnchorSet
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("%q: anchors %s are not role-contiguous: %v", entries, data, err)
		}
		assertNoCollisions(t, out.Anchors)
	}
}

func TestDecodeEntries(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{"strings", `["#3b82f6", "teal"]`, []string{"#3b82f6", "teal"}},
		{"objects", `[{"value": "#3b82f6"}, {"hex": "#10b981"}]`, []string{"#3b82f6", "#10b981"}},
		{"mixed", `["#3b82f6", {"hex": "#10b981"}, 42]`, []string{"#3b82f6", "#10b981", "42"}},
		{"wrapped", `{"colors": ["#3b82f6"]}`, []string{"#3b82f6"}},
		{"anchor set", `{"primary": "#3b82f6", "secondary": {"value": "teal"}}`, []string{"#3b82f6", "teal"}},
		{"single", ` "#3b82f6" `, []string{"#3b82f6"}},
		{"empty list", `[]`, []string{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := DecodeEntries([]byte(c.raw))
			if err != nil {
				t.Fatalf("DecodeEntries failed: %v", err)
			}
			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("got %q, want %q", got, c.want)
			}
		})
	}
}

func TestDecodeEntriesRejectsShapes(t *testing.T) {
	for _, raw := range []string{``, `42`, `{"foo": 1}`, `[1, 2`, `true`} {
		if _, err := DecodeEntries([]byte(raw)); !errors.Is(err, palette.ErrPaletteGenerationFailed) {
			t.Errorf("%q: expected ErrPaletteGenerationFailed, got %v", raw, err)
		}
	}
}

func TestNormalizePayload(t *testing.T) {
	out, err := NormalizePayload([]byte(`{"colors": ["not-a-color", {"value": "#10B981"}]}`))
	if err != nil {
		t.Fatalf("NormalizePayload failed: %v", err)
	}
	if !out.Anchors.Primary().Equal(colorspace.MustParse("#10b981")) {
		t.Errorf("primary = %s", out.Anchors.Primary())
	}
}

func assertNoCollisions(t *testing.T, set palette.AnchorSet) {
	t.Helper()
	colors := set.Colors()
	for i := 0; i < len(colors); i++ {
		for j := i + 1; j < len(colors); j++ {
			if Collides(colors[i], colors[j]) {
				t.Fatalf("anchors %s and %s still collide", colors[i], colors[j])
			}
		}
	}
}
