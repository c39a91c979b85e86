// SPDX-License-Identifier: MIT

// Package library stores named themes in the local database.
package library

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/thatcatcamp/tintkit/internal/models"
	"github.com/thatcatcamp/tintkit/internal/palette"
	"github.com/thatcatcamp/tintkit/internal/validator"
	"gorm.io/gorm"
)

// maxNameLength bounds theme names
const maxNameLength = 64

var (
	ErrThemeNotFound = errors.New("theme not found")
	ErrInvalidName   = errors.New("invalid theme name")
)

// Library wraps a gorm connection
type Library struct {
	db *gorm.DB
}

// New returns a library backed by db, which must already be migrated
func New(db *gorm.DB) *Library {
	return &Library{db: db}
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxNameLength {
		return "", fmt.Errorf("%w: must be 1-%d characters", ErrInvalidName, maxNameLength)
	}
	return name, nil
}

// SaveTheme stores a derived palette under name, replacing any theme with
// the same name. A replaced theme keeps its share id.
func (l *Library) SaveTheme(name string, result *palette.Result, darkMode bool) (*models.SavedTheme, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}

	cfgJSON, err := json.Marshal(result.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	gradientJSON, err := json.Marshal(result.Gradient)
	if err != nil {
		return nil, fmt.Errorf("failed to encode gradient: %w", err)
	}

	var theme models.SavedTheme
	err = l.db.Where("name = ?", name).First(&theme).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		theme = models.SavedTheme{Name: name, ShareID: uuid.NewString()}
	case err != nil:
		return nil, fmt.Errorf("failed to look up theme: %w", err)
	}

	hexes := result.Anchors.Hexes()
	theme.PrimaryColor = hexes[0]
	theme.SecondaryColor = ""
	theme.AccentColor = ""
	if len(hexes) > 1 {
		theme.SecondaryColor = hexes[1]
	}
	if len(hexes) > 2 {
		theme.AccentColor = hexes[2]
	}
	theme.DarkMode = darkMode
	theme.Config = string(cfgJSON)
	theme.Gradient = string(gradientJSON)

	if err := l.db.Save(&theme).Error; err != nil {
		return nil, fmt.Errorf("failed to save theme: %w", err)
	}
	return &theme, nil
}

// GetTheme loads a theme by name
func (l *Library) GetTheme(name string) (*models.SavedTheme, error) {
	return l.first("name = ?", strings.TrimSpace(name))
}

// GetThemeByShareID loads a theme by its share id
func (l *Library) GetThemeByShareID(shareID string) (*models.SavedTheme, error) {
	return l.first("share_id = ?", strings.TrimSpace(shareID))
}

func (l *Library) first(query string, arg string) (*models.SavedTheme, error) {
	var theme models.SavedTheme
	if err := l.db.Where(query, arg).First(&theme).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrThemeNotFound, arg)
		}
		return nil, fmt.Errorf("failed to load theme: %w", err)
	}
	return &theme, nil
}

// ListThemes returns every theme ordered by name
func (l *Library) ListThemes() ([]models.SavedTheme, error) {
	var themes []models.SavedTheme
	if err := l.db.Order("name").Find(&themes).Error; err != nil {
		return nil, fmt.Errorf("failed to list themes: %w", err)
	}
	return themes, nil
}

// DeleteTheme removes a theme by name
func (l *Library) DeleteTheme(name string) error {
	res := l.db.Where("name = ?", strings.TrimSpace(name)).Delete(&models.SavedTheme{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete theme: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrThemeNotFound, name)
	}
	return nil
}

// Request rebuilds a derivation request from a stored theme. The stored
// anchors go back through the validator so a hand-edited row cannot yield
// a malformed anchor set.
func Request(theme *models.SavedTheme) (palette.Request, *validator.Outcome, error) {
	cfg := palette.DefaultConfig()
	if theme.Config != "" {
		if err := json.Unmarshal([]byte(theme.Config), &cfg); err != nil {
			return palette.Request{}, nil, fmt.Errorf("%w: stored config: %v", palette.ErrInvalidConfig, err)
		}
	}

	outcome, err := validator.Normalize(theme.Hexes())
	if err != nil {
		return palette.Request{}, nil, err
	}
	return palette.Request{Anchors: outcome.Anchors, Config: cfg}, outcome, nil
}
