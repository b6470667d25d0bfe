package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/laitim2001/ai-document-extraction/constants"
	"github.com/laitim2001/ai-document-extraction/internal/transform"
)

// FieldMapping is one source→target rule inside a config. Target field
// names are unique within a config.
type FieldMapping struct {
	SourceField string            `json:"source_field"`
	TargetField string            `json:"target_field"`
	Required    bool              `json:"required,omitempty"`
	Default     *string           `json:"default,omitempty"`
	Transform   transform.Kind    `json:"transform,omitempty"`
	Options     transform.Options `json:"options,omitempty"`
	IsLineItem  bool              `json:"is_line_item,omitempty"`
}

// FieldMappingConfig is an ordered rule set scoped at one of four
// specificity tiers. A nil OrganizationID/FormatID means "unscoped on
// that axis"; both nil means fully global.
type FieldMappingConfig struct {
	ID             uuid.UUID      `json:"id"`
	OrganizationID *uuid.UUID     `json:"organization_id,omitempty"`
	FormatID       *uuid.UUID     `json:"format_id,omitempty"`
	Name           string         `json:"name"`
	Mappings       []FieldMapping `json:"mappings"`
	IsActive       bool           `json:"is_active"`
	Priority       int            `json:"priority"`
	CreatedBy      string         `json:"created_by,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// PromptConfig is a prompt template with the same scoping rules as
// FieldMappingConfig, keyed by a closed purpose tag.
type PromptConfig struct {
	ID             uuid.UUID               `json:"id"`
	OrganizationID *uuid.UUID              `json:"organization_id,omitempty"`
	FormatID       *uuid.UUID              `json:"format_id,omitempty"`
	Purpose        constants.PromptPurpose `json:"purpose"`
	Template       string                  `json:"template"`
	Version        int                     `json:"version"`
	IsActive       bool                    `json:"is_active"`
	Priority       int                     `json:"priority"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}
