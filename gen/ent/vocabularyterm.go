// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/laitim2001/ai-document-extraction/gen/ent/documentformat"
	"github.com/laitim2001/ai-document-extraction/gen/ent/vocabularyterm"
)

// VocabularyTerm is the model entity for the VocabularyTerm schema.
type VocabularyTerm struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FormatID holds the value of the "format_id" field.
	FormatID uuid.UUID `json:"format_id,omitempty"`
	// RawText holds the value of the "raw_text" field.
	RawText string `json:"raw_text,omitempty"`
	// NormalizedText holds the value of the "normalized_text" field.
	NormalizedText string `json:"normalized_text,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// OccurrenceCount holds the value of the "occurrence_count" field.
	OccurrenceCount int `json:"occurrence_count,omitempty"`
	// FirstSeen holds the value of the "first_seen" field.
	FirstSeen time.Time `json:"first_seen,omitempty"`
	// LastSeen holds the value of the "last_seen" field.
	LastSeen time.Time `json:"last_seen,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VocabularyTermQuery when eager-loading is set.
	Edges        VocabularyTermEdges `json:"edges"`
	selectValues sql.SelectValues
}

// VocabularyTermEdges holds the relations/edges for other nodes in the graph.
type VocabularyTermEdges struct {
	// Format holds the value of the format edge.
	Format *DocumentFormat `json:"format,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// FormatOrErr returns the Format value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e VocabularyTermEdges) FormatOrErr() (*DocumentFormat, error) {
	if e.Format != nil {
		return e.Format, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: documentformat.Label}
	}
	return nil, &NotLoadedError{edge: "format"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VocabularyTerm) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case vocabularyterm.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case vocabularyterm.FieldOccurrenceCount:
			values[i] = new(sql.NullInt64)
		case vocabularyterm.FieldRawText, vocabularyterm.FieldNormalizedText, vocabularyterm.FieldCategory, vocabularyterm.FieldStatus:
			values[i] = new(sql.NullString)
		case vocabularyterm.FieldFirstSeen, vocabularyterm.FieldLastSeen, vocabularyterm.FieldCreatedAt, vocabularyterm.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case vocabularyterm.FieldID, vocabularyterm.FieldFormatID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VocabularyTerm fields.
func (_m *VocabularyTerm) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case vocabularyterm.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case vocabularyterm.FieldFormatID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field format_id", values[i])
			} else if value != nil {
				_m.FormatID = *value
			}
		case vocabularyterm.FieldRawText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_text", values[i])
			} else if value.Valid {
				_m.RawText = value.String
			}
		case vocabularyterm.FieldNormalizedText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field normalized_text", values[i])
			} else if value.Valid {
				_m.NormalizedText = value.String
			}
		case vocabularyterm.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case vocabularyterm.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case vocabularyterm.FieldOccurrenceCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field occurrence_count", values[i])
			} else if value.Valid {
				_m.OccurrenceCount = int(value.Int64)
			}
		case vocabularyterm.FieldFirstSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field first_seen", values[i])
			} else if value.Valid {
				_m.FirstSeen = value.Time
			}
		case vocabularyterm.FieldLastSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen", values[i])
			} else if value.Valid {
				_m.LastSeen = value.Time
			}
		case vocabularyterm.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case vocabularyterm.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case vocabularyterm.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the VocabularyTerm.
// This includes values selected through modifiers, order, etc.
func (_m *VocabularyTerm) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFormat queries the "format" edge of the VocabularyTerm entity.
func (_m *VocabularyTerm) QueryFormat() *DocumentFormatQuery {
	return NewVocabularyTermClient(_m.config).QueryFormat(_m)
}

// Update returns a builder for updating this VocabularyTerm.
// Note that you need to call VocabularyTerm.Unwrap() before calling this method if this VocabularyTerm
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *VocabularyTerm) Update() *VocabularyTermUpdateOne {
	return NewVocabularyTermClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the VocabularyTerm entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *VocabularyTerm) Unwrap() *VocabularyTerm {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: VocabularyTerm is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *VocabularyTerm) String() string {
	var builder strings.Builder
	builder.WriteString("VocabularyTerm(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("format_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FormatID))
	builder.WriteString(", ")
	builder.WriteString("raw_text=")
	builder.WriteString(_m.RawText)
	builder.WriteString(", ")
	builder.WriteString("normalized_text=")
	builder.WriteString(_m.NormalizedText)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("occurrence_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.OccurrenceCount))
	builder.WriteString(", ")
	builder.WriteString("first_seen=")
	builder.WriteString(_m.FirstSeen.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_seen=")
	builder.WriteString(_m.LastSeen.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// VocabularyTerms is a parsable slice of VocabularyTerm.
type VocabularyTerms []*VocabularyTerm
