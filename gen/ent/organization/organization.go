// Code generated by ent, DO NOT EDIT.

package organization

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the organization type in the database.
	Label = "organization"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldCode holds the string denoting the code field in the database.
	FieldCode = "code"
	// FieldNormalizedName holds the string denoting the normalized_name field in the database.
	FieldNormalizedName = "normalized_name"
	// FieldAliases holds the string denoting the aliases field in the database.
	FieldAliases = "aliases"
	// FieldAutoCreated holds the string denoting the auto_created field in the database.
	FieldAutoCreated = "auto_created"
	// FieldSourceDocumentID holds the string denoting the source_document_id field in the database.
	FieldSourceDocumentID = "source_document_id"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeFormats holds the string denoting the formats edge name in mutations.
	EdgeFormats = "formats"
	// EdgeMappingConfigs holds the string denoting the mapping_configs edge name in mutations.
	EdgeMappingConfigs = "mapping_configs"
	// EdgePromptConfigs holds the string denoting the prompt_configs edge name in mutations.
	EdgePromptConfigs = "prompt_configs"
	// Table holds the table name of the organization in the database.
	Table = "organizations"
	// FormatsTable is the table that holds the formats relation/edge.
	FormatsTable = "document_formats"
	// FormatsInverseTable is the table name for the DocumentFormat entity.
	// It exists in this package in order to avoid circular dependency with the "documentformat" package.
	FormatsInverseTable = "document_formats"
	// FormatsColumn is the table column denoting the formats relation/edge.
	FormatsColumn = "organization_id"
	// MappingConfigsTable is the table that holds the mapping_configs relation/edge.
	MappingConfigsTable = "field_mapping_configs"
	// MappingConfigsInverseTable is the table name for the FieldMappingConfig entity.
	// It exists in this package in order to avoid circular dependency with the "fieldmappingconfig" package.
	MappingConfigsInverseTable = "field_mapping_configs"
	// MappingConfigsColumn is the table column denoting the mapping_configs relation/edge.
	MappingConfigsColumn = "organization_id"
	// PromptConfigsTable is the table that holds the prompt_configs relation/edge.
	PromptConfigsTable = "prompt_configs"
	// PromptConfigsInverseTable is the table name for the PromptConfig entity.
	// It exists in this package in order to avoid circular dependency with the "promptconfig" package.
	PromptConfigsInverseTable = "prompt_configs"
	// PromptConfigsColumn is the table column denoting the prompt_configs relation/edge.
	PromptConfigsColumn = "organization_id"
)

// Columns holds all SQL columns for organization fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldCode,
	FieldNormalizedName,
	FieldAliases,
	FieldAutoCreated,
	FieldSourceDocumentID,
	FieldIsActive,
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
	// CodeValidator is a validator for the "code" field. It is called by the builders before save.
	CodeValidator func(string) error
	// NormalizedNameValidator is a validator for the "normalized_name" field. It is called by the builders before save.
	NormalizedNameValidator func(string) error
	// DefaultAutoCreated holds the default value on creation for the "auto_created" field.
	DefaultAutoCreated bool
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Organization queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByCode orders the results by the code field.
func ByCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCode, opts...).ToFunc()
}

// ByNormalizedName orders the results by the normalized_name field.
func ByNormalizedName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNormalizedName, opts...).ToFunc()
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

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByFormatsCount orders the results by formats count.
func ByFormatsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFormatsStep(), opts...)
	}
}

// ByFormats orders the results by formats terms.
func ByFormats(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFormatsStep(), append([]sql.OrderTerm{term}, terms...)...)
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
func newFormatsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FormatsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FormatsTable, FormatsColumn),
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
