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
	"github.com/laitim2001/ai-document-extraction/gen/ent/organization"
)

// Organization is the model entity for the Organization schema.
type Organization struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Code holds the value of the "code" field.
	Code string `json:"code,omitempty"`
	// NormalizedName holds the value of the "normalized_name" field.
	NormalizedName string `json:"normalized_name,omitempty"`
	// Aliases holds the value of the "aliases" field.
	Aliases []string `json:"aliases,omitempty"`
	// AutoCreated holds the value of the "auto_created" field.
	AutoCreated bool `json:"auto_created,omitempty"`
	// SourceDocumentID holds the value of the "source_document_id" field.
	SourceDocumentID *uuid.UUID `json:"source_document_id,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the OrganizationQuery when eager-loading is set.
	Edges        OrganizationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// OrganizationEdges holds the relations/edges for other nodes in the graph.
type OrganizationEdges struct {
	// Formats holds the value of the formats edge.
	Formats []*DocumentFormat `json:"formats,omitempty"`
	// MappingConfigs holds the value of the mapping_configs edge.
	MappingConfigs []*FieldMappingConfig `json:"mapping_configs,omitempty"`
	// PromptConfigs holds the value of the prompt_configs edge.
	PromptConfigs []*PromptConfig `json:"prompt_configs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// FormatsOrErr returns the Formats value or an error if the edge
// was not loaded in eager-loading.
func (e OrganizationEdges) FormatsOrErr() ([]*DocumentFormat, error) {
	if e.loadedTypes[0] {
		return e.Formats, nil
	}
	return nil, &NotLoadedError{edge: "formats"}
}

// MappingConfigsOrErr returns the MappingConfigs value or an error if the edge
// was not loaded in eager-loading.
func (e OrganizationEdges) MappingConfigsOrErr() ([]*FieldMappingConfig, error) {
	if e.loadedTypes[1] {
		return e.MappingConfigs, nil
	}
	return nil, &NotLoadedError{edge: "mapping_configs"}
}

// PromptConfigsOrErr returns the PromptConfigs value or an error if the edge
// was not loaded in eager-loading.
func (e OrganizationEdges) PromptConfigsOrErr() ([]*PromptConfig, error) {
	if e.loadedTypes[2] {
		return e.PromptConfigs, nil
	}
	return nil, &NotLoadedError{edge: "prompt_configs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Organization) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case organization.FieldSourceDocumentID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case organization.FieldAliases:
			values[i] = new([]byte)
		case organization.FieldAutoCreated, organization.FieldIsActive:
			values[i] = new(sql.NullBool)
		case organization.FieldName, organization.FieldCode, organization.FieldNormalizedName:
			values[i] = new(sql.NullString)
		case organization.FieldCreatedAt, organization.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case organization.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Organization fields.
func (_m *Organization) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case organization.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case organization.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case organization.FieldCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field code", values[i])
			} else if value.Valid {
				_m.Code = value.String
			}
		case organization.FieldNormalizedName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field normalized_name", values[i])
			} else if value.Valid {
				_m.NormalizedName = value.String
			}
		case organization.FieldAliases:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field aliases", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Aliases); err != nil {
					return fmt.Errorf("unmarshal field aliases: %w", err)
				}
			}
		case organization.FieldAutoCreated:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field auto_created", values[i])
			} else if value.Valid {
				_m.AutoCreated = value.Bool
			}
		case organization.FieldSourceDocumentID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field source_document_id", values[i])
			} else if value.Valid {
				_m.SourceDocumentID = new(uuid.UUID)
				*_m.SourceDocumentID = *value.S.(*uuid.UUID)
			}
		case organization.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case organization.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case organization.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Organization.
// This includes values selected through modifiers, order, etc.
func (_m *Organization) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFormats queries the "formats" edge of the Organization entity.
func (_m *Organization) QueryFormats() *DocumentFormatQuery {
	return NewOrganizationClient(_m.config).QueryFormats(_m)
}

// QueryMappingConfigs queries the "mapping_configs" edge of the Organization entity.
func (_m *Organization) QueryMappingConfigs() *FieldMappingConfigQuery {
	return NewOrganizationClient(_m.config).QueryMappingConfigs(_m)
}

// QueryPromptConfigs queries the "prompt_configs" edge of the Organization entity.
func (_m *Organization) QueryPromptConfigs() *PromptConfigQuery {
	return NewOrganizationClient(_m.config).QueryPromptConfigs(_m)
}

// Update returns a builder for updating this Organization.
// Note that you need to call Organization.Unwrap() before calling this method if this Organization
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Organization) Update() *OrganizationUpdateOne {
	return NewOrganizationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Organization entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Organization) Unwrap() *Organization {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Organization is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Organization) String() string {
	var builder strings.Builder
	builder.WriteString("Organization(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("code=")
	builder.WriteString(_m.Code)
	builder.WriteString(", ")
	builder.WriteString("normalized_name=")
	builder.WriteString(_m.NormalizedName)
	builder.WriteString(", ")
	builder.WriteString("aliases=")
	builder.WriteString(fmt.Sprintf("%v", _m.Aliases))
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
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Organizations is a parsable slice of Organization.
type Organizations []*Organization
