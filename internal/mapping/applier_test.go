package mapping

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laitim2001/ai-document-extraction/constants"
	"github.com/laitim2001/ai-document-extraction/internal/entity"
	"github.com/laitim2001/ai-document-extraction/internal/transform"
)

func newTestApplier() *Applier {
	return NewApplier(transform.NewEngine(), nil)
}

func configOf(mappings ...entity.FieldMapping) *entity.FieldMappingConfig {
	return &entity.FieldMappingConfig{
		ID:       uuid.New(),
		Name:     "test",
		Mappings: mappings,
		IsActive: true,
	}
}

func auditFor(record *entity.MappedRecord, target string, lineItem int) (entity.FieldAudit, bool) {
	for _, a := range record.Audit {
		if a.TargetField == target && a.LineItem == lineItem {
			return a, true
		}
	}
	return entity.FieldAudit{}, false
}

func TestApply_TrimSuccess(t *testing.T) {
	cfg := configOf(entity.FieldMapping{
		SourceField: "vendor_name", TargetField: "companyName", Transform: transform.KindTrim,
	})
	raw := &entity.RawExtraction{
		DocumentID: uuid.New(),
		Fields:     map[string]any{"vendor_name": "  Acme Co  "},
	}

	record := newTestApplier().Apply(raw, cfg, constants.TierCompany)
	assert.Equal(t, "Acme Co", record.Fields["companyName"])
	assert.Equal(t, constants.TierCompany, record.Tier)
	assert.Equal(t, constants.DocumentIdentified, record.Status)

	entry, ok := auditFor(record, "companyName", 0)
	require.True(t, ok)
	assert.Equal(t, entity.AuditSuccess, entry.Status)
	assert.Equal(t, "  Acme Co  ", entry.RawValue)
	assert.Equal(t, "Acme Co", entry.Value)
}

func TestApply_RequiredAbsentWithDefault(t *testing.T) {
	fallback := "USD"
	cfg := configOf(entity.FieldMapping{
		SourceField: "currency", TargetField: "currency", Required: true, Default: &fallback,
	})
	raw := &entity.RawExtraction{DocumentID: uuid.New(), Fields: map[string]any{}}

	record := newTestApplier().Apply(raw, cfg, constants.TierDefault)
	assert.Equal(t, "USD", record.Fields["currency"])
	assert.Equal(t, constants.DocumentIdentified, record.Status)

	entry, ok := auditFor(record, "currency", 0)
	require.True(t, ok)
	assert.Equal(t, entity.AuditDefaultValue, entry.Status)
	assert.Equal(t, "USD", entry.Value)
}

func TestApply_RequiredAbsentWithoutDefault(t *testing.T) {
	cfg := configOf(
		entity.FieldMapping{SourceField: "invoice_number", TargetField: "invoiceNumber", Required: true},
		entity.FieldMapping{SourceField: "vendor_name", TargetField: "companyName"},
	)
	raw := &entity.RawExtraction{
		DocumentID: uuid.New(),
		Fields:     map[string]any{"vendor_name": "Acme"},
	}

	record := newTestApplier().Apply(raw, cfg, constants.TierGlobal)

	// the document is still emitted in full
	assert.Equal(t, "Acme", record.Fields["companyName"])
	assert.Equal(t, constants.DocumentNeedsReview, record.Status)
	assert.Equal(t, 1, record.FailureCount())

	entry, ok := auditFor(record, "invoiceNumber", 0)
	require.True(t, ok)
	assert.Equal(t, entity.AuditMissingRequired, entry.Status)
	assert.NotContains(t, record.Fields, "invoiceNumber")
}

func TestApply_OptionalAbsentIsNotAFailure(t *testing.T) {
	cfg := configOf(entity.FieldMapping{SourceField: "po_number", TargetField: "poNumber"})
	raw := &entity.RawExtraction{DocumentID: uuid.New(), Fields: map[string]any{}}

	record := newTestApplier().Apply(raw, cfg, constants.TierDefault)
	assert.Zero(t, record.FailureCount())
	assert.Empty(t, record.Audit)
	assert.Equal(t, constants.DocumentIdentified, record.Status)
}

func TestApply_TransformationFailureKeepsRawValue(t *testing.T) {
	cfg := configOf(entity.FieldMapping{
		SourceField: "invoice_date", TargetField: "invoiceDate",
		Transform: transform.KindFormatDate,
		Options:   transform.Options{DateFormat: "2006-01-02"},
	})
	raw := &entity.RawExtraction{
		DocumentID: uuid.New(),
		Fields:     map[string]any{"invoice_date": "not a date"},
	}

	record := newTestApplier().Apply(raw, cfg, constants.TierSpecific)
	assert.Equal(t, "not a date", record.Fields["invoiceDate"])
	assert.Equal(t, constants.DocumentNeedsReview, record.Status)

	entry, ok := auditFor(record, "invoiceDate", 0)
	require.True(t, ok)
	assert.Equal(t, entity.AuditTransformationFailed, entry.Status)
	assert.NotEmpty(t, entry.Error)
}

func TestApply_NestedAndIndexedPaths(t *testing.T) {
	cfg := configOf(
		entity.FieldMapping{SourceField: "vendor.name", TargetField: "companyName", Transform: transform.KindTrim},
		entity.FieldMapping{SourceField: "references[1]", TargetField: "reference"},
	)
	raw := &entity.RawExtraction{
		DocumentID: uuid.New(),
		Fields: map[string]any{
			"vendor":     map[string]any{"name": " DHL Express "},
			"references": []any{"REF-1", "REF-2"},
		},
	}

	record := newTestApplier().Apply(raw, cfg, constants.TierSpecific)
	assert.Equal(t, "DHL Express", record.Fields["companyName"])
	assert.Equal(t, "REF-2", record.Fields["reference"])
}

func TestApply_LineItems(t *testing.T) {
	cfg := configOf(
		entity.FieldMapping{SourceField: "invoice_number", TargetField: "invoiceNumber"},
		entity.FieldMapping{SourceField: "description", TargetField: "description", Transform: transform.KindTrim, IsLineItem: true},
		entity.FieldMapping{SourceField: "amount", TargetField: "amount", Transform: transform.KindExtractNumber, IsLineItem: true},
	)
	raw := &entity.RawExtraction{
		DocumentID: uuid.New(),
		Fields:     map[string]any{"invoice_number": "INV-100"},
		LineItems: []map[string]any{
			{"description": " Ocean Freight - FCL ", "amount": "USD 1,200.00"},
			{"description": "Fuel Surcharge", "amount": 85.5},
		},
	}

	record := newTestApplier().Apply(raw, cfg, constants.TierDefault)
	require.Len(t, record.LineItems, 2)
	assert.Equal(t, "Ocean Freight - FCL", record.LineItems[0]["description"])
	assert.Equal(t, "1200", record.LineItems[0]["amount"])
	assert.Equal(t, "85.5", record.LineItems[1]["amount"])

	entry, ok := auditFor(record, "description", 2)
	require.True(t, ok)
	assert.Equal(t, entity.AuditSuccess, entry.Status)
	assert.Equal(t, 5, record.Stats.TotalFields)
	assert.Equal(t, 5, record.Stats.MappedFields)
}

func TestApply_Stats(t *testing.T) {
	fallback := "N/A"
	cfg := configOf(
		entity.FieldMapping{SourceField: "a", TargetField: "a"},
		entity.FieldMapping{SourceField: "b", TargetField: "b", Required: true},
		entity.FieldMapping{SourceField: "c", TargetField: "c", Required: true, Default: &fallback},
	)
	raw := &entity.RawExtraction{
		DocumentID: uuid.New(),
		Fields:     map[string]any{"a": "1"},
	}

	record := newTestApplier().Apply(raw, cfg, constants.TierGlobal)
	assert.Equal(t, 3, record.Stats.TotalFields)
	assert.Equal(t, 2, record.Stats.MappedFields)
	assert.Equal(t, 1, record.Stats.FailedFields)
	assert.GreaterOrEqual(t, record.Stats.ProcessingMs, int64(0))
}
