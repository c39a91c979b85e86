// SPDX-License-Identifier: MIT

// Package palette defines the value objects that flow through a derivation:
// anchor sets, scales, gradients, status colors, requests and results.
package palette

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/thatcatcamp/tintkit/internal/colorspace"
)

// Role names an anchor position in a theme
type Role string

const (
	RolePrimary   Role = "primary"
	RoleSecondary Role = "secondary"
	RoleAccent    Role = "accent"
)

// MaxAnchors is the largest theme the engine derives from
const MaxAnchors = 3

// Roles lists anchor roles in their fixed order
var Roles = []Role{RolePrimary, RoleSecondary, RoleAccent}

// ErrNonContiguousRoles is returned when accent is present without secondary,
// or when no primary is given
var ErrNonContiguousRoles = errors.New("anchor roles must be contiguous: primary, then secondary, then accent")

// Anchor is one role/color pair
type Anchor struct {
	Role  Role
	Color colorspace.Color
}

// AnchorSet is an ordered, role-contiguous set of 1 to 3 anchors.
// The zero value is empty and invalid; build one with NewAnchorSet.
type AnchorSet struct {
	colors []colorspace.Color
}

// NewAnchorSet assigns primary, secondary and accent in order
func NewAnchorSet(colors ...colorspace.Color) (AnchorSet, error) {
	if len(colors) == 0 {
		return AnchorSet{}, fmt.Errorf("%w: no anchors", ErrNonContiguousRoles)
	}
	if len(colors) > MaxAnchors {
		return AnchorSet{}, fmt.Errorf("anchor set holds at most %d colors, got %d", MaxAnchors, len(colors))
	}
	return AnchorSet{colors: append([]colorspace.Color(nil), colors...)}, nil
}

// MustAnchorSet is NewAnchorSet for fixed inputs
func MustAnchorSet(colors ...colorspace.Color) AnchorSet {
	set, err := NewAnchorSet(colors...)
	if err != nil {
		panic(err)
	}
	return set
}

// Len returns the number of anchors
func (a AnchorSet) Len() int {
	return len(a.colors)
}

// IsEmpty reports whether the set was never built
func (a AnchorSet) IsEmpty() bool {
	return len(a.colors) == 0
}

// Primary returns the primary anchor; it is always present on a built set
func (a AnchorSet) Primary() colorspace.Color {
	if len(a.colors) == 0 {
		return colorspace.Color{}
	}
	return a.colors[0]
}

// Get returns the color for a role if present
func (a AnchorSet) Get(role Role) (colorspace.Color, bool) {
	for i, r := range Roles {
		if r == role && i < len(a.colors) {
			return a.colors[i], true
		}
	}
	return colorspace.Color{}, false
}

// Colors returns a copy of the anchors in role order
func (a AnchorSet) Colors() []colorspace.Color {
	return append([]colorspace.Color(nil), a.colors...)
}

// Roles returns the present roles in order
func (a AnchorSet) Roles() []Role {
	return append([]Role(nil), Roles[:len(a.colors)]...)
}

// Anchors returns role/color pairs in order
func (a AnchorSet) Anchors() []Anchor {
	out := make([]Anchor, len(a.colors))
	for i, c := range a.colors {
		out[i] = Anchor{Role: Roles[i], Color: c}
	}
	return out
}

// Hexes returns the anchors as hex strings in role order
func (a AnchorSet) Hexes() []string {
	out := make([]string, len(a.colors))
	for i, c := range a.colors {
		out[i] = c.Hex()
	}
	return out
}

// anchorSetJSON is the wire shape: {"primary": "#..", "secondary": "#.."}
type anchorSetJSON struct {
	Primary   *colorspace.Color `json:"primary,omitempty"`
	Secondary *colorspace.Color `json:"secondary,omitempty"`
	Accent    *colorspace.Color `json:"accent,omitempty"`
}

// MarshalJSON encodes present roles only
func (a AnchorSet) MarshalJSON() ([]byte, error) {
	var out anchorSetJSON
	for i := range a.colors {
		c := a.colors[i]
		switch Roles[i] {
		case RolePrimary:
			out.Primary = &c
		case RoleSecondary:
			out.Secondary = &c
		case RoleAccent:
			out.Accent = &c
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON rejects non-contiguous role sets
func (a *AnchorSet) UnmarshalJSON(data []byte) error {
	var in anchorSetJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if in.Primary == nil || (in.Accent != nil && in.Secondary == nil) {
		return ErrNonContiguousRoles
	}

	colors := []colorspace.Color{*in.Primary}
	if in.Secondary != nil {
		colors = append(colors, *in.Secondary)
	}
	if in.Accent != nil {
		colors = append(colors, *in.Accent)
	}
	a.colors = colors
	return nil
}
