package entity

import (
	"github.com/google/uuid"

	"github.com/laitim2001/ai-document-extraction/constants"
)

// RawExtraction is the untyped output of the external extraction
// service for one document: a key→value bag plus layout features used
// for classification. Keys in Fields may be dotted/indexed paths into
// nested structures.
type RawExtraction struct {
	DocumentID       uuid.UUID        `json:"document_id"`
	Fields           map[string]any   `json:"fields"`
	LineItems        []map[string]any `json:"line_items,omitempty"`
	IssuerName       string           `json:"issuer_name,omitempty"`
	IssuerConfidence float64          `json:"issuer_confidence,omitempty"`

	HeaderText        string   `json:"header_text,omitempty"`
	LogoSignature     string   `json:"logo_signature,omitempty"`
	LayoutFingerprint string   `json:"layout_fingerprint,omitempty"`
	DetectedFields    []string `json:"detected_fields,omitempty"`
}

// AuditStatus is the outcome recorded for one field mapping.
type AuditStatus string

const (
	AuditSuccess              AuditStatus = "success"
	AuditDefaultValue         AuditStatus = "default_value"
	AuditMissingRequired      AuditStatus = "missing_required"
	AuditTransformationFailed AuditStatus = "transformation_failed"
)

// FieldAudit is one entry of the per-document audit trail. Every
// mapping outcome lands here; nothing is logged-and-dropped.
type FieldAudit struct {
	TargetField string      `json:"target_field"`
	SourceField string      `json:"source_field"`
	Status      AuditStatus `json:"status"`
	RawValue    string      `json:"raw_value,omitempty"`
	Value       string      `json:"value,omitempty"`
	LineItem    int         `json:"line_item,omitempty"` // 1-based; 0 = top-level
	Error       string      `json:"error,omitempty"`
}

// ExtractionStats summarizes one mapping run.
type ExtractionStats struct {
	TotalFields  int   `json:"total_fields"`
	MappedFields int   `json:"mapped_fields"`
	FailedFields int   `json:"failed_fields"`
	ProcessingMs int64 `json:"processing_ms"`
}

// MappedRecord is the final output for one document: mapped values,
// line items, and the full audit trail. A record with failure entries
// is still a complete record; severity routing belongs to the caller.
type MappedRecord struct {
	DocumentID     uuid.UUID                `json:"document_id"`
	OrganizationID *uuid.UUID               `json:"organization_id,omitempty"`
	FormatID       *uuid.UUID               `json:"format_id,omitempty"`
	Fields         map[string]string        `json:"fields"`
	LineItems      []map[string]string      `json:"line_items,omitempty"`
	Audit          []FieldAudit             `json:"audit"`
	Tier           constants.ResolutionTier `json:"tier"`
	Status         constants.DocumentStatus `json:"status"`
	Stats          ExtractionStats          `json:"stats"`
}

// FailureCount returns the number of audit entries that represent a
// degraded outcome (missing required or failed transformation).
func (r *MappedRecord) FailureCount() int {
	n := 0
	for _, a := range r.Audit {
		if a.Status == AuditMissingRequired || a.Status == AuditTransformationFailed {
			n++
		}
	}
	return n
}
