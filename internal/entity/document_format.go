package entity

import (
	"time"

	"github.com/google/uuid"
)

// DocumentFormat is a canonical layout/template under one organization.
// Fingerprints are scoped to the owning organization only.
type DocumentFormat struct {
	ID                uuid.UUID  `json:"id"`
	OrganizationID    uuid.UUID  `json:"organization_id"`
	Name              string     `json:"name"`
	HeaderPattern     string     `json:"header_pattern,omitempty"`
	LogoSignature     string     `json:"logo_signature,omitempty"`
	LayoutFingerprint string     `json:"layout_fingerprint,omitempty"`
	DetectedFields    []string   `json:"detected_fields,omitempty"`
	Fingerprint       string     `json:"fingerprint"`
	AutoCreated       bool       `json:"auto_created"`
	SourceDocumentID  *uuid.UUID `json:"source_document_id,omitempty"`
	IsActive          bool       `json:"is_active"`
	MatchCount        int        `json:"match_count"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
