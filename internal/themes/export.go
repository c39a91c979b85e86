// SPDX-License-Identifier: MIT
package themes

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/thatcatcamp/tintkit/internal/palette"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for an export format we do not write
var ErrUnknownFormat = errors.New("unknown export format")

// Format is an export target
type Format string

const (
	FormatCSS      Format = "css"
	FormatTailwind Format = "tailwind"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// Formats lists every supported export format
var Formats = []Format{FormatCSS, FormatTailwind, FormatJSON, FormatYAML}

// ParseFormat accepts a format name case-insensitively; "yml" means yaml
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "yml" {
		s = string(FormatYAML)
	}
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ContentType returns the HTTP content type for a format
func (f Format) ContentType() string {
	switch f {
	case FormatCSS:
		return "text/css; charset=utf-8"
	case FormatTailwind:
		return "text/javascript; charset=utf-8"
	case FormatJSON:
		return "application/json; charset=utf-8"
	case FormatYAML:
		return "application/yaml; charset=utf-8"
	}
	return "text/plain; charset=utf-8"
}

// Filename suggests a file name for an export
func (f Format) Filename() string {
	switch f {
	case FormatTailwind:
		return "tailwind.config.js"
	case FormatJSON:
		return "tokens.json"
	case FormatYAML:
		return "tokens.yaml"
	}
	return "palette.css"
}

// Export serializes a derived palette
func Export(result *palette.Result, format Format, darkMode bool) ([]byte, error) {
	switch format {
	case FormatCSS:
		css := GenerateScaleCSS(result) + "\n" + GenerateCSS(GenerateColors(result, darkMode))
		return []byte(css), nil
	case FormatTailwind:
		return []byte(GenerateTailwind(result)), nil
	case FormatJSON:
		data, err := json.MarshalIndent(Tokens(result, darkMode), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode tokens: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(Tokens(result, darkMode))
		if err != nil {
			return nil, fmt.Errorf("failed to encode tokens: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
