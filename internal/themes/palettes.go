package themes

import (
	"fmt"

	"github.com/thatcatcamp/tintkit/internal/colorspace"
	"github.com/thatcatcamp/tintkit/internal/palette"
)

// DefaultPaletteName is used whenever a palette cannot be generated
const DefaultPaletteName = "slate"

// Palette is a named preset of anchor colors
type Palette struct {
	Name      string `json:"name"`             // "slate", "indigo", etc.
	Primary   string `json:"primary"`          // hex color #RRGGBB
	Secondary string `json:"secondary"`        // hex color #RRGGBB
	Accent    string `json:"accent,omitempty"` // optional third anchor
}

var presets = map[string]*Palette{
	"slate": {
		Name:      "slate",
		Primary:   "#64748b",
		Secondary: "#0f172a",
	},
	"indigo": {
		Name:      "indigo",
		Primary:   "#4f46e5",
		Secondary: "#f97316",
		Accent:    "#14b8a6",
	},
	"rose": {
		Name:      "rose",
		Primary:   "#e11d48",
		Secondary: "#64748b",
	},
	"emerald": {
		Name:      "emerald",
		Primary:   "#059669",
		Secondary: "#f59e0b",
		Accent:    "#6366f1",
	},
	"navy": {
		Name:      "navy",
		Primary:   "#000080",
		Secondary: "#fbbf24",
	},
	"purple": {
		Name:      "purple",
		Primary:   "#a855f7",
		Secondary: "#ec4899",
		Accent:    "#22d3ee",
	},
	"teal": {
		Name:      "teal",
		Primary:   "#14b8a6",
		Secondary: "#f87171",
	},
	"amber": {
		Name:      "amber",
		Primary:   "#f59e0b",
		Secondary: "#6366f1",
		Accent:    "#10b981",
	},
	"rose-mono": {
		Name:      "rose-mono",
		Primary:   "#e11d48",
		Secondary: "#881337",
	},
	"green-mono": {
		Name:      "green-mono",
		Primary:   "#22c55e",
		Secondary: "#14532d",
	},
	"blue-mono": {
		Name:      "blue-mono",
		Primary:   "#3b82f6",
		Secondary: "#1e3a8a",
	},
	"neutral": {
		Name:      "neutral",
		Primary:   "#6b7280",
		Secondary: "#1f2937",
	},
}

var presetOrder = []string{
	"slate", "indigo", "rose", "emerald", "navy", "purple",
	"teal", "amber", "rose-mono", "green-mono", "blue-mono", "neutral",
}

// GetPalette returns a palette by name
func GetPalette(name string) *Palette {
	return presets[name]
}

// ListPalettes returns all available palettes in order
func ListPalettes() []*Palette {
	var palettes []*Palette
	for _, name := range presetOrder {
		if p := GetPalette(name); p != nil {
			palettes = append(palettes, p)
		}
	}
	return palettes
}

// DefaultPalette is the fallback when palette generation fails
func DefaultPalette() *Palette {
	return GetPalette(DefaultPaletteName)
}

// Hexes returns the palette's anchors in role order
func (p *Palette) Hexes() []string {
	hexes := []string{p.Primary}
	if p.Secondary == "" {
		return hexes
	}
	hexes = append(hexes, p.Secondary)
	if p.Accent != "" {
		hexes = append(hexes, p.Accent)
	}
	return hexes
}

// Anchors parses the palette into an anchor set
func (p *Palette) Anchors() (palette.AnchorSet, error) {
	hexes := p.Hexes()
	colors := make([]colorspace.Color, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorspace.Parse(h)
		if err != nil {
			return palette.AnchorSet{}, fmt.Errorf("palette %s: %w", p.Name, err)
		}
		colors = append(colors, c)
	}
	return palette.NewAnchorSet(colors...)
}
