package models

import (
	"time"
)

// SavedTheme is a named set of anchors kept in the local theme library
type SavedTheme struct {
	ID             uint   `gorm:"primaryKey"`
	Name           string `gorm:"uniqueIndex;not null"`
	ShareID        string `gorm:"uniqueIndex;not null"` // uuid, stable across re-saves
	PrimaryColor   string `gorm:"not null"`
	SecondaryColor string
	AccentColor    string
	DarkMode       bool   `gorm:"default:false"`
	Config         string `gorm:"type:text"` // JSON derivation config
	Gradient       string `gorm:"type:text"` // JSON gradient stops from the last save
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Hexes returns the stored anchors in role order, skipping empty roles
func (t *SavedTheme) Hexes() []string {
	hexes := []string{t.PrimaryColor}
	for _, h := range []string{t.SecondaryColor, t.AccentColor} {
		if h == "" {
			break
		}
		hexes = append(hexes, h)
	}
	return hexes
}

// TableName overrides for consistent naming
func (SavedTheme) TableName() string {
	return "saved_themes"
}
