package entity

import (
	"time"

	"github.com/google/uuid"
)

// Organization is a canonical issuer/vendor for data transfer between layers.
type Organization struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	Code             string     `json:"code"`
	NormalizedName   string     `json:"normalized_name"`
	Aliases          []string   `json:"aliases,omitempty"`
	AutoCreated      bool       `json:"auto_created"`
	SourceDocumentID *uuid.UUID `json:"source_document_id,omitempty"`
	IsActive         bool       `json:"is_active"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
