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
	"github.com/laitim2001/ai-document-extraction/gen/ent/fieldmappingconfig"
	"github.com/laitim2001/ai-document-extraction/gen/ent/organization"
	"github.com/laitim2001/ai-document-extraction/internal/entity"
)

// FieldMappingConfig is the model entity for the FieldMappingConfig schema.
type FieldMappingConfig struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// OrganizationID holds the value of the "organization_id" field.
	OrganizationID *uuid.UUID `json:"organization_id,omitempty"`
	// FormatID holds the value of the "format_id" field.
	FormatID *uuid.UUID `json:"format_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Mappings holds the value of the "mappings" field.
	Mappings []entity.FieldMapping `json:"mappings,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority int `json:"priority,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy string `json:"created_by,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FieldMappingConfigQuery when eager-loading is set.
	Edges        FieldMappingConfigEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FieldMappingConfigEdges holds the relations/edges for other nodes in the graph.
type FieldMappingConfigEdges struct {
	// Organization holds the value of the organization edge.
	Organization *Organization `json:"organization,omitempty"`
	// Format holds the value of the format edge.
	Format *DocumentFormat `json:"format,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// OrganizationOrErr returns the Organization value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FieldMappingConfigEdges) OrganizationOrErr() (*Organization, error) {
	if e.Organization != nil {
		return e.Organization, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: organization.Label}
	}
	return nil, &NotLoadedError{edge: "organization"}
}

// FormatOrErr returns the Format value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FieldMappingConfigEdges) FormatOrErr() (*DocumentFormat, error) {
	if e.Format != nil {
		return e.Format, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: documentformat.Label}
	}
	return nil, &NotLoadedError{edge: "format"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FieldMappingConfig) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case fieldmappingconfig.FieldOrganizationID, fieldmappingconfig.FieldFormatID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case fieldmappingconfig.FieldMappings:
			values[i] = new([]byte)
		case fieldmappingconfig.FieldIsActive:
			values[i] = new(sql.NullBool)
		case fieldmappingconfig.FieldPriority:
			values[i] = new(sql.NullInt64)
		case fieldmappingconfig.FieldName, fieldmappingconfig.FieldCreatedBy:
			values[i] = new(sql.NullString)
		case fieldmappingconfig.FieldCreatedAt, fieldmappingconfig.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case fieldmappingconfig.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FieldMappingConfig fields.
func (_m *FieldMappingConfig) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case fieldmappingconfig.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case fieldmappingconfig.FieldOrganizationID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field organization_id", values[i])
			} else if value.Valid {
				_m.OrganizationID = new(uuid.UUID)
				*_m.OrganizationID = *value.S.(*uuid.UUID)
			}
		case fieldmappingconfig.FieldFormatID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field format_id", values[i])
			} else if value.Valid {
				_m.FormatID = new(uuid.UUID)
				*_m.FormatID = *value.S.(*uuid.UUID)
			}
		case fieldmappingconfig.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case fieldmappingconfig.FieldMappings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field mappings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Mappings); err != nil {
					return fmt.Errorf("unmarshal field mappings: %w", err)
				}
			}
		case fieldmappingconfig.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case fieldmappingconfig.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case fieldmappingconfig.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		case fieldmappingconfig.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case fieldmappingconfig.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the FieldMappingConfig.
// This includes values selected through modifiers, order, etc.
func (_m *FieldMappingConfig) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOrganization queries the "organization" edge of the FieldMappingConfig entity.
func (_m *FieldMappingConfig) QueryOrganization() *OrganizationQuery {
	return NewFieldMappingConfigClient(_m.config).QueryOrganization(_m)
}

// QueryFormat queries the "format" edge of the FieldMappingConfig entity.
func (_m *FieldMappingConfig) QueryFormat() *DocumentFormatQuery {
	return NewFieldMappingConfigClient(_m.config).QueryFormat(_m)
}

// Update returns a builder for updating this FieldMappingConfig.
// Note that you need to call FieldMappingConfig.Unwrap() before calling this method if this FieldMappingConfig
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FieldMappingConfig) Update() *FieldMappingConfigUpdateOne {
	return NewFieldMappingConfigClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FieldMappingConfig entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FieldMappingConfig) Unwrap() *FieldMappingConfig {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FieldMappingConfig is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FieldMappingConfig) String() string {
	var builder strings.Builder
	builder.WriteString("FieldMappingConfig(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.OrganizationID; v != nil {
		builder.WriteString("organization_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.FormatID; v != nil {
		builder.WriteString("format_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("mappings=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mappings))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FieldMappingConfigs is a parsable slice of FieldMappingConfig.
type FieldMappingConfigs []*FieldMappingConfig
