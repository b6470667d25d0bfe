// Code generated by ent, DO NOT EDIT.

package vocabularyterm

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the vocabularyterm type in the database.
	Label = "vocabulary_term"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFormatID holds the string denoting the format_id field in the database.
	FieldFormatID = "format_id"
	// FieldRawText holds the string denoting the raw_text field in the database.
	FieldRawText = "raw_text"
	// FieldNormalizedText holds the string denoting the normalized_text field in the database.
	FieldNormalizedText = "normalized_text"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldOccurrenceCount holds the string denoting the occurrence_count field in the database.
	FieldOccurrenceCount = "occurrence_count"
	// FieldFirstSeen holds the string denoting the first_seen field in the database.
	FieldFirstSeen = "first_seen"
	// FieldLastSeen holds the string denoting the last_seen field in the database.
	FieldLastSeen = "last_seen"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeFormat holds the string denoting the format edge name in mutations.
	EdgeFormat = "format"
	// Table holds the table name of the vocabularyterm in the database.
	Table = "vocabulary_terms"
	// FormatTable is the table that holds the format relation/edge.
	FormatTable = "vocabulary_terms"
	// FormatInverseTable is the table name for the DocumentFormat entity.
	// It exists in this package in order to avoid circular dependency with the "documentformat" package.
	FormatInverseTable = "document_formats"
	// FormatColumn is the table column denoting the format relation/edge.
	FormatColumn = "format_id"
)

// Columns holds all SQL columns for vocabularyterm fields.
var Columns = []string{
	FieldID,
	FieldFormatID,
	FieldRawText,
	FieldNormalizedText,
	FieldCategory,
	FieldStatus,
	FieldOccurrenceCount,
	FieldFirstSeen,
	FieldLastSeen,
	FieldConfidence,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// RawTextValidator is a validator for the "raw_text" field. It is called by the builders before save.
	RawTextValidator func(string) error
	// NormalizedTextValidator is a validator for the "normalized_text" field. It is called by the builders before save.
	NormalizedTextValidator func(string) error
	// DefaultCategory holds the default value on creation for the "category" field.
	DefaultCategory string
	// CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	CategoryValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultOccurrenceCount holds the default value on creation for the "occurrence_count" field.
	DefaultOccurrenceCount int
	// DefaultFirstSeen holds the default value on creation for the "first_seen" field.
	DefaultFirstSeen func() time.Time
	// DefaultLastSeen holds the default value on creation for the "last_seen" field.
	DefaultLastSeen func() time.Time
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the VocabularyTerm queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFormatID orders the results by the format_id field.
func ByFormatID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFormatID, opts...).ToFunc()
}

// ByRawText orders the results by the raw_text field.
func ByRawText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawText, opts...).ToFunc()
}

// ByNormalizedText orders the results by the normalized_text field.
func ByNormalizedText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNormalizedText, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByOccurrenceCount orders the results by the occurrence_count field.
func ByOccurrenceCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOccurrenceCount, opts...).ToFunc()
}

// ByFirstSeen orders the results by the first_seen field.
func ByFirstSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstSeen, opts...).ToFunc()
}

// ByLastSeen orders the results by the last_seen field.
func ByLastSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeen, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByFormatField orders the results by format field.
func ByFormatField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFormatStep(), sql.OrderByField(field, opts...))
	}
}
func newFormatStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FormatInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FormatTable, FormatColumn),
	)
}
