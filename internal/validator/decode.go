// SPDX-License-Identifier: MIT
package validator

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/thatcatcamp/tintkit/internal/palette"
)

// DecodeEntries flattens the shapes clients and suggestion services send into
// a plain list of color strings. Accepted payloads:
//
//	["#3b82f6", "teal"]
//	[{"value": "#3b82f6"}, {"hex": "#10b981"}]
//	{"colors": [...]}                       any of the list forms above
//	{"primary": "...", "secondary": "..."}  an anchor set
//	"#3b82f6"                               a single color
//
// Entries of any other type are kept as their JSON text so Normalize can
// report them as rejections.
func DecodeEntries(raw []byte) ([]string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty payload", palette.ErrPaletteGenerationFailed)
	}

	switch raw[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("%w: malformed color list: %v", palette.ErrPaletteGenerationFailed, err)
		}
		entries := make([]string, len(items))
		for i, item := range items {
			entries[i] = entryText(item)
		}
		return entries, nil

	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, fmt.Errorf("%w: malformed payload: %v", palette.ErrPaletteGenerationFailed, err)
		}
		if colors, ok := obj["colors"]; ok {
			return DecodeEntries(colors)
		}
		var entries []string
		for _, role := range palette.Roles {
			v, ok := obj[string(role)]
			if !ok {
				break
			}
			entries = append(entries, entryText(v))
		}
		if len(entries) == 0 {
			return nil, fmt.Errorf("%w: payload has neither colors nor primary", palette.ErrPaletteGenerationFailed)
		}
		return entries, nil

	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("%w: malformed string: %v", palette.ErrPaletteGenerationFailed, err)
		}
		return []string{s}, nil
	}

	return nil, fmt.Errorf("%w: unsupported payload", palette.ErrPaletteGenerationFailed)
}

// entryText reads one list element as a string or a {value|hex} object
func entryText(item json.RawMessage) string {
	var s string
	if err := json.Unmarshal(item, &s); err == nil {
		return s
	}
	var obj struct {
		Value *string `json:"value"`
		Hex   *string `json:"hex"`
	}
	if err := json.Unmarshal(item, &obj); err == nil {
		if obj.Value != nil {
			return *obj.Value
		}
		if obj.Hex != nil {
			return *obj.Hex
		}
	}
	return string(item)
}
