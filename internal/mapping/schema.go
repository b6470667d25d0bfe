package mapping

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/laitim2001/ai-document-extraction/internal/entity"
	"github.com/laitim2001/ai-document-extraction/internal/transform"
)

// configDocumentSchema validates config documents submitted through
// the admin surface before they are decoded into entities.
var configDocumentSchema = map[string]any{
	"type":     "object",
	"required": []any{"name", "mappings"},
	"properties": map[string]any{
		"name":            map[string]any{"type": "string", "minLength": 1},
		"organization_id": map[string]any{"type": "string", "format": "uuid"},
		"format_id":       map[string]any{"type": "string", "format": "uuid"},
		"priority":        map[string]any{"type": "integer"},
		"is_active":       map[string]any{"type": "boolean"},
		"mappings": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":     "object",
				"required": []any{"source_field", "target_field"},
				"properties": map[string]any{
					"source_field": map[string]any{"type": "string", "minLength": 1},
					"target_field": map[string]any{"type": "string", "minLength": 1},
					"required":     map[string]any{"type": "boolean"},
					"default":      map[string]any{"type": "string"},
					"transform":    map[string]any{"type": "string"},
					"options":      map[string]any{"type": "object"},
					"is_line_item": map[string]any{"type": "boolean"},
				},
			},
		},
	},
}

// ValidateConfigDocument checks a raw JSON config document against the
// schema. Structural problems are reported here; semantic checks run
// in ValidateConfig after decoding.
func ValidateConfigDocument(data []byte) error {
	b, err := json.Marshal(configDocumentSchema)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("config.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("config.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal config document: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("config document does not match schema: %w", err)
	}
	return nil
}

// DecodeConfigDocument parses a schema-valid JSON config document into
// an entity. Callers run ValidateConfigDocument first and ValidateConfig
// on the result.
func DecodeConfigDocument(data []byte) (*entity.FieldMappingConfig, error) {
	var cfg entity.FieldMappingConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode config document: %w", err)
	}
	return &cfg, nil
}

// ValidateConfig enforces the semantic rules a stored config must
// hold: unique target fields, known transformation kinds, and options
// complete enough for each kind. Runs at write time so documents are
// never processed against a bad config.
func ValidateConfig(cfg *entity.FieldMappingConfig, engine *transform.Engine) error {
	if cfg.Name == "" {
		return fmt.Errorf("config name is required")
	}
	if len(cfg.Mappings) == 0 {
		return fmt.Errorf("config %q has no mappings", cfg.Name)
	}
	// top-level and line-item outputs are separate namespaces, so
	// target uniqueness is tracked per level
	topTargets := make(map[string]struct{}, len(cfg.Mappings))
	lineTargets := make(map[string]struct{})
	for i, m := range cfg.Mappings {
		if m.SourceField == "" || m.TargetField == "" {
			return fmt.Errorf("mapping %d: source and target fields are required", i)
		}
		targets := topTargets
		if m.IsLineItem {
			targets = lineTargets
		}
		if _, dup := targets[m.TargetField]; dup {
			return fmt.Errorf("mapping %d: duplicate target field %q", i, m.TargetField)
		}
		targets[m.TargetField] = struct{}{}
		if err := engine.ValidateMapping(kindOrNone(m.Transform), m.Options); err != nil {
			return fmt.Errorf("mapping %d (%s): %w", i, m.TargetField, err)
		}
	}
	return nil
}
