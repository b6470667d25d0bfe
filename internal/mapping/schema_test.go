package mapping

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laitim2001/ai-document-extraction/internal/entity"
	"github.com/laitim2001/ai-document-extraction/internal/transform"
)

func TestValidateConfigDocument(t *testing.T) {
	valid := []byte(`{
		"name": "dhl specific",
		"priority": 10,
		"mappings": [
			{"source_field": "vendor_name", "target_field": "companyName", "transform": "trim"},
			{"source_field": "total", "target_field": "totalAmount", "required": true}
		]
	}`)
	assert.NoError(t, ValidateConfigDocument(valid))

	tests := []struct {
		name string
		doc  string
	}{
		{name: "missing name", doc: `{"mappings": [{"source_field": "a", "target_field": "b"}]}`},
		{name: "empty mappings", doc: `{"name": "x", "mappings": []}`},
		{name: "mapping without target", doc: `{"name": "x", "mappings": [{"source_field": "a"}]}`},
		{name: "wrong mapping type", doc: `{"name": "x", "mappings": "nope"}`},
		{name: "not json", doc: `{{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, ValidateConfigDocument([]byte(tt.doc)))
		})
	}
}

func TestDecodeConfigDocument(t *testing.T) {
	orgID := uuid.New()
	doc := []byte(`{
		"name": "acme company config",
		"organization_id": "` + orgID.String() + `",
		"priority": 5,
		"mappings": [
			{"source_field": "vendor_name", "target_field": "companyName", "transform": "trim"},
			{"source_field": "items[].description", "target_field": "description", "is_line_item": true}
		]
	}`)

	// the full import path: schema check, decode, semantic check
	require.NoError(t, ValidateConfigDocument(doc))
	cfg, err := DecodeConfigDocument(doc)
	require.NoError(t, err)
	require.NoError(t, ValidateConfig(cfg, transform.NewEngine()))

	require.NotNil(t, cfg.OrganizationID)
	assert.Equal(t, orgID, *cfg.OrganizationID)
	assert.Nil(t, cfg.FormatID)
	assert.Equal(t, "acme company config", cfg.Name)
	assert.Equal(t, 5, cfg.Priority)
	require.Len(t, cfg.Mappings, 2)
	assert.Equal(t, transform.KindTrim, cfg.Mappings[0].Transform)
	assert.True(t, cfg.Mappings[1].IsLineItem)
}

func TestDecodeConfigDocument_SchemaGatesBadDocuments(t *testing.T) {
	// documents the schema rejects never reach the store
	bad := []byte(`{"name": "x", "mappings": [{"source_field": "a"}]}`)
	require.Error(t, ValidateConfigDocument(bad))

	notJSON := []byte(`{{`)
	_, err := DecodeConfigDocument(notJSON)
	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	engine := transform.NewEngine()

	ok := configOf(
		entity.FieldMapping{SourceField: "a", TargetField: "x", Transform: transform.KindTrim},
		entity.FieldMapping{SourceField: "b", TargetField: "y"},
	)
	assert.NoError(t, ValidateConfig(ok, engine))

	dup := configOf(
		entity.FieldMapping{SourceField: "a", TargetField: "x"},
		entity.FieldMapping{SourceField: "b", TargetField: "x"},
	)
	assert.ErrorContains(t, ValidateConfig(dup, engine), "duplicate target")

	badKind := configOf(entity.FieldMapping{SourceField: "a", TargetField: "x", Transform: "rot13"})
	assert.ErrorContains(t, ValidateConfig(badKind, engine), "unsupported transform kind")

	badOptions := configOf(entity.FieldMapping{
		SourceField: "a", TargetField: "x", Transform: transform.KindSplit,
	})
	assert.ErrorContains(t, ValidateConfig(badOptions, engine), "delimiter")

	empty := configOf()
	assert.Error(t, ValidateConfig(empty, engine))
}
