// SPDX-License-Identifier: MIT

// Package share encodes themes as signed tokens that can be pasted or put in
// a URL and decoded elsewhere.
package share

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/thatcatcamp/tintkit/internal/palette"
	"github.com/thatcatcamp/tintkit/internal/validator"
)

// issuer identifies tokens minted by this tool
const issuer = "tintkit"

var (
	ErrEmptySecret  = errors.New("share secret is empty")
	ErrInvalidToken = errors.New("invalid share token")
)

// Claims carries a theme inside a share token
type Claims struct {
	Name    string   `json:"name,omitempty"`
	Anchors []string `json:"anchors"`
	jwt.RegisteredClaims
}

// Theme is a decoded share token
type Theme struct {
	Name     string
	Anchors  palette.AnchorSet
	Warnings []palette.Warning
	IssuedAt time.Time
}

// Encode signs name and anchors with HS256
func Encode(name string, anchors palette.AnchorSet, secret string) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	if anchors.IsEmpty() {
		return "", fmt.Errorf("%w: nothing to share", palette.ErrPaletteGenerationFailed)
	}

	claims := Claims{
		Name:    name,
		Anchors: anchors.Hexes(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Decode verifies a token and rebuilds its anchor set. The anchors pass
// through the validator, so even a correctly signed token with bad colors
// cannot produce a malformed set.
func Decode(tokenString, secret string) (*Theme, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if tokenString == "" {
		return nil, fmt.Errorf("%w: token is empty", ErrInvalidToken)
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	outcome, err := validator.Normalize(claims.Anchors)
	if err != nil {
		return nil, err
	}

	theme := &Theme{
		Name:     claims.Name,
		Anchors:  outcome.Anchors,
		Warnings: outcome.Warnings,
	}
	if claims.IssuedAt != nil {
		theme.IssuedAt = claims.IssuedAt.Time
	}
	return theme, nil
}
