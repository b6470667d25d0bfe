// Code generated by ent, DO NOT EDIT.

package documentformat

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the documentformat type in the database.
	Label = "document_format"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOrganizationID holds the string denoting the organization_id field in the database.
	FieldOrganizationID = "organization_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldHeaderPattern holds the string denoting the header_pattern field in the database.
	FieldHeaderPattern = "header_pattern"
	// FieldLogoSignature holds the string denoting the logo_signature field in the database.
	FieldLogoSignature = "logo_signature"
	// FieldLayoutFingerprint holds the string denoting the layout_fingerprint field in the database.
	FieldLayoutFingerprint = "layout_fingerprint"
	// FieldDetectedFields holds the string denoting the detected_fields field in the database.
	FieldDetectedFields = "detected_fields"
	// FieldFingerprint holds the string denoting the fingerprint field in the database.
	FieldFingerprint = "fingerprint"
	// FieldAutoCreated holds the string denoting the auto_created field in the database.
	FieldAutoCreated = "auto_created"
	// FieldSourceDocumentID holds the string denoting the source_document_id field in the database.
	FieldSourceDocumentID = "source_document_id"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldMatchCount holds the string denoting the match_count field in the database.
	FieldMatchCount = "match_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeOrganization holds the string denoting the organization edge name in mutations.
	EdgeOrganization = "organization"
	// EdgeTerms holds the string denoting the terms edge name in mutations.
	EdgeTerms = "terms"
	// EdgeMappingConfigs holds the string denoting the mapping_configs edge name in mutations.
	EdgeMappingConfigs = "mapping_configs"
	// EdgePromptConfigs holds the string denoting the prompt_configs edge name in mutations.
	EdgePromptConfigs = "prompt_configs"
	// Table holds the table name of the documentformat in the database.
	Table = "document_formats"
	// OrganizationTable is the table that holds the organization relation/edge.
	OrganizationTable = "document_formats"
	// OrganizationInverseTable is the table name for the Organization entity.
	// It exists in this package in order to avoid circular dependency with the "organization" package.
	OrganizationInverseTable = "organizations"
	// OrganizationColumn is the table column denoting the organization relation/edge.
	OrganizationColumn = "organization_id"
	// TermsTable is the table that holds the terms relation/edge.
	TermsTable = "vocabulary_terms"
	// TermsInverseTable is the table name for the VocabularyTerm entity.
	// It exists in this package in order to avoid circular dependency with the "vocabularyterm" package.
	TermsInverseTable = "vocabulary_terms"
	// TermsColumn is the table column denoting the terms relation/edge.
	TermsColumn = "format_id"
	// MappingConfigsTable is the table that holds the mapping_configs relation/edge.
	MappingConfigsTable = "field_mapping_configs"
	// MappingConfigsInverseTable is the table name for the FieldMappingConfig entity.
	// It exists in this package in order to avoid circular dependency with the "fieldmappingconfig" package.
	MappingConfigsInverseTable = "field_mapping_configs"
	// MappingConfigsColumn is the table column denoting the mapping_configs relation/edge.
	MappingConfigsColumn = "format_id"
	// PromptConfigsTable is the table that holds the prompt_configs relation/edge.
	PromptConfigsTable = "prompt_configs"
	// PromptConfigsInverseTable is the table name for the PromptConfig entity.
	// It exists in this package in order to avoid circular dependency with the "promptconfig" package.
	PromptConfigsInverseTable = "prompt_configs"
	// PromptConfigsColumn is the table column denoting the prompt_configs relation/edge.
	PromptConfigsColumn = "format_id"
)

// Columns holds all SQL columns for documentformat fields.
var Columns = []string{
	FieldID,
	FieldOrganizationID,
	FieldName,
	FieldHeaderPattern,
	FieldLogoSignature,
	FieldLayoutFingerprint,
	FieldDetectedFields,
	FieldFingerprint,
	FieldAutoCreated,
	FieldSourceDocumentID,
	FieldIsActive,
	FieldMatchCount,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// FingerprintValidator is a validator for the "fingerprint" field. It is called by the builders before save.
	FingerprintValidator func(string) error
	// DefaultAutoCreated holds the default value on creation for the "auto_created" field.
	DefaultAutoCreated bool
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultMatchCount holds the default value on creation for the "match_count" field.
	DefaultMatchCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the DocumentFormat queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOrganizationID orders the results by the organization_id field.
func ByOrganizationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrganizationID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByHeaderPattern orders the results by the header_pattern field.
func ByHeaderPattern(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeaderPattern, opts...).ToFunc()
}

// ByLogoSignature orders the results by the logo_signature field.
func ByLogoSignature(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLogoSignature, opts...).ToFunc()
}

// ByLayoutFingerprint orders the results by the layout_fingerprint field.
func ByLayoutFingerprint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLayoutFingerprint, opts...).ToFunc()
}

// ByFingerprint orders the results by the fingerprint field.
func ByFingerprint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFingerprint, opts...).ToFunc()
}

// ByAutoCreated orders the results by the auto_created field.
func ByAutoCreated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAutoCreated, opts...).ToFunc()
}

// BySourceDocumentID orders the results by the source_document_id field.
func BySourceDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceDocumentID, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByMatchCount orders the results by the match_count field.
func ByMatchCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatchCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByOrganizationField orders the results by organization field.
func ByOrganizationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOrganizationStep(), sql.OrderByField(field, opts...))
	}
}

// ByTermsCount orders the results by terms count.
func ByTermsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTermsStep(), opts...)
	}
}

// ByTerms orders the results by terms terms.
func ByTerms(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTermsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMappingConfigsCount orders the results by mapping_configs count.
func ByMappingConfigsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMappingConfigsStep(), opts...)
	}
}

// ByMappingConfigs orders the results by mapping_configs terms.
func ByMappingConfigs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMappingConfigsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPromptConfigsCount orders the results by prompt_configs count.
func ByPromptConfigsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPromptConfigsStep(), opts...)
	}
}

// ByPromptConfigs orders the results by prompt_configs terms.
func ByPromptConfigs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPromptConfigsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newOrganizationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OrganizationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, OrganizationTable, OrganizationColumn),
	)
}
func newTermsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TermsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TermsTable, TermsColumn),
	)
}
func newMappingConfigsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MappingConfigsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MappingConfigsTable, MappingConfigsColumn),
	)
}
func newPromptConfigsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PromptConfigsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PromptConfigsTable, PromptConfigsColumn),
	)
}
