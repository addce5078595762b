package subject

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/edtech-ng/question-bank/constants"
)

// buildConfigJSONSchema returns the JSON-Schema (draft 2020-12 subset) a
// subject override file must satisfy before any of its patterns compile.
func buildConfigJSONSchema() map[string]any {
	patternList := map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string", "minLength": 1},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"subject": map[string]any{
				"type": "string",
				"enum": constants.SubjectStrings(),
			},
			"min_stem_length":         map[string]any{"type": "integer", "minimum": 1},
			"number_format":           map[string]any{"type": "string"},
			"question_start_patterns": patternList,
			"option_patterns":         patternList,
			"answer_line_patterns":    patternList,
			"checkmarks":              patternList,
			"classifier": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"fallback": map[string]any{"type": "string", "minLength": 1},
					"rules": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type":                 "object",
							"additionalProperties": false,
							"properties": map[string]any{
								"pattern": map[string]any{"type": "string", "minLength": 1},
								"label":   map[string]any{"type": "string", "minLength": 1},
							},
							"required": []string{"pattern", "label"},
						},
					},
				},
				"required": []string{"fallback", "rules"},
			},
		},
		"required": []string{"subject"},
	}
}

// validateConfigJSON validates raw file bytes against the config schema.
func validateConfigJSON(data []byte) error {
	b, err := json.Marshal(buildConfigJSONSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("subject-config.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("subject-config.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("config does not match schema: %w", err)
	}
	return nil
}
