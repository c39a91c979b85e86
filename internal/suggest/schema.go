// SPDX-License-Identifier: MIT
package suggest

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// responseSchemaJSON accepts a list of up to 10 colors, or an object
// wrapping one under "colors". Each entry is a string or a {value|hex}
// object. The validator later keeps at most three.
const responseSchemaJSON = `{
  "definitions": {
    "entry": {
      "oneOf": [
        {"type": "string", "maxLength": 64},
        {
          "type": "object",
          "properties": {
            "value": {"type": "string", "maxLength": 64},
            "hex": {"type": "string", "maxLength": 64}
          },
          "anyOf": [{"required": ["value"]}, {"required": ["hex"]}]
        }
      ]
    },
    "list": {
      "type": "array",
      "maxItems": 10,
      "items": {"$ref": "#/definitions/entry"}
    }
  },
  "oneOf": [
    {"$ref": "#/definitions/list"},
    {
      "type": "object",
      "required": ["colors"],
      "properties": {"colors": {"$ref": "#/definitions/list"}}
    }
  ]
}`

var responseSchema *gojsonschema.Schema

func init() {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(responseSchemaJSON))
	if err != nil {
		panic(fmt.Sprintf("suggest: bad response schema: %v", err))
	}
	responseSchema = schema
}

// validateResponse checks a raw response body against the schema
func validateResponse(body []byte) error {
	result, err := responseSchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("response is not JSON: %w", err)
	}
	if !result.Valid() {
		errors := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errors[i] = desc.String()
		}
		return fmt.Errorf("response does not match schema: %v", errors)
	}
	return nil
}
