// SPDX-License-Identifier: MIT
package share

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/thatcatcamp/tintkit/internal/colorspace"
	"github.com/thatcatcamp/tintkit/internal/palette"
)

const testSecret = "test-secret"

func TestEncodeDecode(t *testing.T) {
	anchors := palette.MustAnchorSet(colorspace.MustParse("#3b82f6"), colorspace.MustParse("#f97316"))

	token, err := Encode("ocean", anchors, testSecret)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	// Token should have 3 parts separated by dots
	if len(strings.Split(token, ".")) != 3 {
		t.Errorf("expected a three part JWT, got %s", token)
	}

	theme, err := Decode(token, testSecret)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if theme.Name != "ocean" {
		t.Errorf("Expected name ocean, got %s", theme.Name)
	}
	if !reflect.DeepEqual(theme.Anchors.Hexes(), anchors.Hexes()) {
		t.Errorf("anchors = %v, want %v", theme.Anchors.Hexes(), anchors.Hexes())
	}
	if theme.IssuedAt.IsZero() {
		t.Error("IssuedAt should be set")
	}
}

func TestDecodeWrongSecret(t *testing.T) {
	token, _ := Encode("x", palette.MustAnchorSet(colorspace.MustParse("#3b82f6")), testSecret)

	if _, err := Decode(token, "other-secret"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestDecodeTamperedToken(t *testing.T) {
	token, _ := Encode("x", palette.MustAnchorSet(colorspace.MustParse("#3b82f6")), testSecret)
	parts := strings.Split(token, ".")
	suffix := "AA"
	if strings.HasSuffix(parts[1], suffix) {
		suffix = "BB"
	}
	parts[1] = parts[1][:len(parts[1])-2] + suffix

	if _, err := Decode(strings.Join(parts, "."), testSecret); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestDecodeEmpty(t *testing.T) {
	if _, err := Decode("", testSecret); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
	if _, err := Decode("abc", ""); !errors.Is(err, ErrEmptySecret) {
		t.Errorf("expected ErrEmptySecret, got %v", err)
	}
	if _, err := Encode("x", palette.AnchorSet{}, testSecret); !errors.Is(err, palette.ErrPaletteGenerationFailed) {
		t.Errorf("expected ErrPaletteGenerationFailed, got %v", err)
	}
}

// signed(t, claims) mints a token with arbitrary anchors, as a third party
// holding the secret could
func signed(t *testing.T, claims Claims) string {
	t.Helper()
	claims.Issuer = issuer
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign: %v", err)
	}
	return token
}

func TestSignedGarbageStillValidated(t *testing.T) {
	token := signed(t, Claims{Anchors: []string{"nonsense", "#10B981", "#10b981", "red", "blue"}})

	theme, err := Decode(token, testSecret)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if theme.Anchors.Len() != palette.MaxAnchors {
		t.Errorf("expected %d anchors, got %d", palette.MaxAnchors, theme.Anchors.Len())
	}
	if !palette.HasWarning(theme.Warnings, palette.WarnAnchorsTruncated, "") {
		t.Error("expected AnchorsTruncated warning")
	}
	if !palette.HasWarning(theme.Warnings, palette.WarnAnchorNudged, string(palette.RoleSecondary)) {
		t.Error("expected AnchorNudged warning for the duplicate")
	}

	empty := signed(t, Claims{Anchors: []string{"nope"}})
	if _, err := Decode(empty, testSecret); !errors.Is(err, palette.ErrPaletteGenerationFailed) {
		t.Errorf("expected ErrPaletteGenerationFailed, got %v", err)
	}
}

func TestDecodeRejectsForeignIssuer(t *testing.T) {
	claims := Claims{Anchors: []string{"#3b82f6"}}
	claims.Issuer = "someone-else"
	token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))

	if _, err := Decode(token, testSecret); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}
