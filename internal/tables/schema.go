package tables

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// documentSchema constrains the document envelope. Semantic checks,
// version compatibility and table contents, happen after parsing.
const documentSchema = `{
  "type": "object",
  "required": ["version", "scoring", "compatibility", "thresholds"],
  "properties": {
    "version": {"type": "string", "pattern": "^[0-9]+\\.[0-9]+\\.[0-9]+$"},
    "scoring": {
      "type": "object",
      "patternProperties": {
        "^[0-9]+$": {
          "type": "object",
          "additionalProperties": {
            "type": "object",
            "additionalProperties": {"type": "integer", "minimum": 0}
          }
        }
      },
      "additionalProperties": false
    },
    "compatibility": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "additionalProperties": {"type": "integer", "minimum": 0, "maximum": 100}
      }
    },
    "thresholds": {
      "type": "object",
      "required": ["secondary", "intensityMedium", "intensityHigh", "levelMedium", "levelHigh", "levelVeryHigh"],
      "additionalProperties": {"type": "integer", "minimum": 0, "maximum": 100}
    }
  }
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiled returns the compiled document schema, compiling it once.
func compiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var parsed any
		if err := json.Unmarshal([]byte(documentSchema), &parsed); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://tables.json"
		if err := c.AddResource(schemaURL, parsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// validateDocument checks raw JSON against the document schema.
func validateDocument(data []byte) error {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiled()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
