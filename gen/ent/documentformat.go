// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/laitim2001/ai-document-extraction/gen/ent/documentformat"
	"github.com/laitim2001/ai-document-extraction/gen/ent/organization"
)

// DocumentFormat is the model entity for the DocumentFormat schema.
type DocumentFormat struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// OrganizationID holds the value of the "organization_id" field.
	OrganizationID uuid.UUID `json:"organization_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// HeaderPattern holds the value of the "header_pattern" field.
	HeaderPattern string `json:"header_pattern,omitempty"`
	// LogoSignature holds the value of the "logo_signature" field.
	LogoSignature string `json:"logo_signature,omitempty"`
	// LayoutFingerprint holds the value of the "layout_fingerprint" field.
	LayoutFingerprint string `json:"layout_fingerprint,omitempty"`
	// DetectedFields holds the value of the "detected_fields" field.
	DetectedFields []string `json:"detected_fields,omitempty"`
	// Fingerprint holds the value of the "fingerprint" field.
	Fingerprint string `json:"fingerprint,omitempty"`
	// AutoCreated holds the value of the "auto_created" field.
	AutoCreated bool `json:"auto_created,omitempty"`
	// SourceDocumentID holds the value of the "source_document_id" field.
	SourceDocumentID *uuid.UUID `json:"source_document_id,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// MatchCount holds the value of the "match_count" field.
	MatchCount int `json:"match_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DocumentFormatQuery when eager-loading is set.
	Edges        DocumentFormatEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DocumentFormatEdges holds the relations/edges for other nodes in the graph.
type DocumentFormatEdges struct {
	// Organization holds the value of the organization edge.
	Organization *Organization `json:"organization,omitempty"`
	// Terms holds the value of the terms edge.
	Terms []*VocabularyTerm `json:"terms,omitempty"`
	// MappingConfigs holds the value of the mapping_configs edge.
	MappingConfigs []*FieldMappingConfig `json:"mapping_configs,omitempty"`
	// PromptConfigs holds the value of the prompt_configs edge.
	PromptConfigs []*PromptConfig `json:"prompt_configs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// OrganizationOrErr returns the Organization value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DocumentFormatEdges) OrganizationOrErr() (*Organization, error) {
	if e.Organization != nil {
		return e.Organization, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: organization.Label}
	}
	return nil, &NotLoadedError{edge: "organization"}
}

// TermsOrErr returns the Terms value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentFormatEdges) TermsOrErr() ([]*VocabularyTerm, error) {
	if e.loadedTypes[1] {
		return e.Terms, nil
	}
	return nil, &NotLoadedError{edge: "terms"}
}

// MappingConfigsOrErr returns the MappingConfigs value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentFormatEdges) MappingConfigsOrErr() ([]*FieldMappingConfig, error) {
	if e.loadedTypes[2] {
		return e.MappingConfigs, nil
	}
	return nil, &NotLoadedError{edge: "mapping_configs"}
}

// PromptConfigsOrErr returns the PromptConfigs value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentFormatEdges) PromptConfigsOrErr() ([]*PromptConfig, error) {
	if e.loadedTypes[3] {
		return e.PromptConfigs, nil
	}
	return nil, &NotLoadedError{edge: "prompt_configs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DocumentFormat) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case documentformat.FieldSourceDocumentID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case documentformat.FieldDetectedFields:
			values[i] = new([]byte)
		case documentformat.FieldAutoCreated, documentformat.FieldIsActive:
			values[i] = new(sql.NullBool)
		case documentformat.FieldMatchCount:
			values[i] = new(sql.NullInt64)
		case documentformat.FieldName, documentformat.FieldHeaderPattern, documentformat.FieldLogoSignature, documentformat.FieldLayoutFingerprint, documentformat.FieldFingerprint:
			values[i] = new(sql.NullString)
		case documentformat.FieldCreatedAt, documentformat.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case documentformat.FieldID, documentformat.FieldOrganizationID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DocumentFormat fields.
func (_m *DocumentFormat) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case documentformat.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case documentformat.FieldOrganizationID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field organization_id", values[i])
			} else if value != nil {
				_m.OrganizationID = *value
			}
		case documentformat.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case documentformat.FieldHeaderPattern:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field header_pattern", values[i])
			} else if value.Valid {
				_m.HeaderPattern = value.String
			}
		case documentformat.FieldLogoSignature:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field logo_signature", values[i])
			} else if value.Valid {
				_m.LogoSignature = value.String
			}
		case documentformat.FieldLayoutFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field layout_fingerprint", values[i])
			} else if value.Valid {
				_m.LayoutFingerprint = value.String
			}
		case documentformat.FieldDetectedFields:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field detected_fields", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DetectedFields); err != nil {
					return fmt.Errorf("unmarshal field detected_fields: %w", err)
				}
			}
		case documentformat.FieldFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fingerprint", values[i])
			} else if value.Valid {
				_m.Fingerprint = value.String
			}
		case documentformat.FieldAutoCreated:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field auto_created", values[i])
			} else if value.Valid {
				_m.AutoCreated = value.Bool
			}
		case documentformat.FieldSourceDocumentID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field source_document_id", values[i])
			} else if value.Valid {
				_m.SourceDocumentID = new(uuid.UUID)
				*_m.SourceDocumentID = *value.S.(*uuid.UUID)
			}
		case documentformat.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case documentformat.FieldMatchCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field match_count", values[i])
			} else if value.Valid {
				_m.MatchCount = int(value.Int64)
			}
		case documentformat.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case documentformat.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DocumentFormat.
// This includes values selected through modifiers, order, etc.
func (_m *DocumentFormat) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOrganization queries the "organization" edge of the DocumentFormat entity.
func (_m *DocumentFormat) QueryOrganization() *OrganizationQuery {
	return NewDocumentFormatClient(_m.config).QueryOrganization(_m)
}

// QueryTerms queries the "terms" edge of the DocumentFormat entity.
func (_m *DocumentFormat) QueryTerms() *VocabularyTermQuery {
	return NewDocumentFormatClient(_m.config).QueryTerms(_m)
}

// QueryMappingConfigs queries the "mapping_configs" edge of the DocumentFormat entity.
func (_m *DocumentFormat) QueryMappingConfigs() *FieldMappingConfigQuery {
	return NewDocumentFormatClient(_m.config).QueryMappingConfigs(_m)
}

// QueryPromptConfigs queries the "prompt_configs" edge of the DocumentFormat entity.
func (_m *DocumentFormat) QueryPromptConfigs() *PromptConfigQuery {
	return NewDocumentFormatClient(_m.config).QueryPromptConfigs(_m)
}

// Update returns a builder for updating this DocumentFormat.
// Note that you need to call DocumentFormat.Unwrap() before calling this method if this DocumentFormat
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DocumentFormat) Update() *DocumentFormatUpdateOne {
	return NewDocumentFormatClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DocumentFormat entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DocumentFormat) Unwrap() *DocumentFormat {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DocumentFormat is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DocumentFormat) String() string {
	var builder strings.Builder
	builder.WriteString("DocumentFormat(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("organization_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OrganizationID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("header_pattern=")
	builder.WriteString(_m.HeaderPattern)
	builder.WriteString(", ")
	builder.WriteString("logo_signature=")
	builder.WriteString(_m.LogoSignature)
	builder.WriteString(", ")
	builder.WriteString("layout_fingerprint=")
	builder.WriteString(_m.LayoutFingerprint)
	builder.WriteString(", ")
	builder.WriteString("detected_fields=")
	builder.WriteString(fmt.Sprintf("%v", _m.DetectedFields))
	builder.WriteString(", ")
	builder.WriteString("fingerprint=")
	builder.WriteString(_m.Fingerprint)
	builder.WriteString(", ")
	builder.WriteString("auto_created=")
	builder.WriteString(fmt.Sprintf("%v", _m.AutoCreated))
	builder.WriteString(", ")
	if v := _m.SourceDocumentID; v != nil {
		builder.WriteString("source_document_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("match_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.MatchCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DocumentFormats is a parsable slice of DocumentFormat.
type DocumentFormats []*DocumentFormat
