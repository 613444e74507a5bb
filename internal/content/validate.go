package content

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ayahSchema guards against a misbehaving content service handing the
// quiz builder empty glosses or a malformed words array.
const ayahSchema = `{
	"type": "object",
	"required": ["arabic", "english", "words"],
	"properties": {
		"arabic":  {"type": "string", "minLength": 1},
		"english": {"type": "string", "minLength": 1},
		"urdu":    {"type": "string"},
		"words": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["arabic", "english"],
				"properties": {
					"arabic":          {"type": "string", "minLength": 1},
					"english":         {"type": "string", "minLength": 1},
					"transliteration": {"type": "string"}
				}
			}
		}
	}
}`

var (
	compileOnce   sync.Once
	compiledAyah  *jsonschema.Schema
	compileFailed error
)

// validateAyah checks raw against the ayah schema before it is decoded
// into the typed struct. Returns *InvalidPayloadError on failure.
func validateAyah(raw json.RawMessage) error {
	compileOnce.Do(func() {
		parsed, err := jsonschema.UnmarshalJSON(strings.NewReader(ayahSchema))
		if err != nil {
			compileFailed = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://ayah.json", parsed); err != nil {
			compileFailed = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledAyah, compileFailed = c.Compile("schema://ayah.json")
	})
	if compileFailed != nil {
		return &InvalidPayloadError{Err: compileFailed}
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &InvalidPayloadError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if err := compiledAyah.Validate(parsed); err != nil {
		return &InvalidPayloadError{Err: err}
	}
	return nil
}
