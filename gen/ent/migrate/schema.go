// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentFormatsColumns holds the columns for the "document_formats" table.
	DocumentFormatsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "header_pattern", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "logo_signature", Type: field.TypeString, Nullable: true},
		{Name: "layout_fingerprint", Type: field.TypeString, Nullable: true},
		{Name: "detected_fields", Type: field.TypeJSON, Nullable: true},
		{Name: "fingerprint", Type: field.TypeString},
		{Name: "auto_created", Type: field.TypeBool, Default: false},
		{Name: "source_document_id", Type: field.TypeUUID, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "match_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "organization_id", Type: field.TypeUUID},
	}
	// DocumentFormatsTable holds the schema information for the "document_formats" table.
	DocumentFormatsTable = &schema.Table{
		Name:       "document_formats",
		Columns:    DocumentFormatsColumns,
		PrimaryKey: []*schema.Column{DocumentFormatsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "document_formats_organizations_formats",
				Columns:    []*schema.Column{DocumentFormatsColumns[13]},
				RefColumns: []*schema.Column{OrganizationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "documentformat_organization_id_fingerprint",
				Unique:  true,
				Columns: []*schema.Column{DocumentFormatsColumns[13], DocumentFormatsColumns[6]},
			},
			{
				Name:    "documentformat_organization_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{DocumentFormatsColumns[13], DocumentFormatsColumns[9]},
			},
		},
	}
	// FieldMappingConfigsColumns holds the columns for the "field_mapping_configs" table.
	FieldMappingConfigsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "mappings", Type: field.TypeJSON},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "format_id", Type: field.TypeUUID, Nullable: true},
		{Name: "organization_id", Type: field.TypeUUID, Nullable: true},
	}
	// FieldMappingConfigsTable holds the schema information for the "field_mapping_configs" table.
	FieldMappingConfigsTable = &schema.Table{
		Name:       "field_mapping_configs",
		Columns:    FieldMappingConfigsColumns,
		PrimaryKey: []*schema.Column{FieldMappingConfigsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "field_mapping_configs_document_formats_mapping_configs",
				Columns:    []*schema.Column{FieldMappingConfigsColumns[8]},
				RefColumns: []*schema.Column{DocumentFormatsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "field_mapping_configs_organizations_mapping_configs",
				Columns:    []*schema.Column{FieldMappingConfigsColumns[9]},
				RefColumns: []*schema.Column{OrganizationsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "fieldmappingconfig_organization_id_format_id",
				Unique:  true,
				Columns: []*schema.Column{FieldMappingConfigsColumns[9], FieldMappingConfigsColumns[8]},
				Annotation: &entsql.IndexAnnotation{
					Where: "is_active",
				},
			},
			{
				Name:    "fieldmappingconfig_is_active_priority",
				Unique:  false,
				Columns: []*schema.Column{FieldMappingConfigsColumns[3], FieldMappingConfigsColumns[4]},
			},
		},
	}
	// OrganizationsColumns holds the columns for the "organizations" table.
	OrganizationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "code", Type: field.TypeString},
		{Name: "normalized_name", Type: field.TypeString},
		{Name: "aliases", Type: field.TypeJSON, Nullable: true},
		{Name: "auto_created", Type: field.TypeBool, Default: false},
		{Name: "source_document_id", Type: field.TypeUUID, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// OrganizationsTable holds the schema information for the "organizations" table.
	OrganizationsTable = &schema.Table{
		Name:       "organizations",
		Columns:    OrganizationsColumns,
		PrimaryKey: []*schema.Column{OrganizationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "organization_normalized_name",
				Unique:  true,
				Columns: []*schema.Column{OrganizationsColumns[3]},
			},
			{
				Name:    "organization_code",
				Unique:  true,
				Columns: []*schema.Column{OrganizationsColumns[2]},
			},
		},
	}
	// PromptConfigsColumns holds the columns for the "prompt_configs" table.
	PromptConfigsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "purpose", Type: field.TypeString},
		{Name: "template", Type: field.TypeString, Size: 2147483647},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "format_id", Type: field.TypeUUID, Nullable: true},
		{Name: "organization_id", Type: field.TypeUUID, Nullable: true},
	}
	// PromptConfigsTable holds the schema information for the "prompt_configs" table.
	PromptConfigsTable = &schema.Table{
		Name:       "prompt_configs",
		Columns:    PromptConfigsColumns,
		PrimaryKey: []*schema.Column{PromptConfigsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "prompt_configs_document_formats_prompt_configs",
				Columns:    []*schema.Column{PromptConfigsColumns[8]},
				RefColumns: []*schema.Column{DocumentFormatsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "prompt_configs_organizations_prompt_configs",
				Columns:    []*schema.Column{PromptConfigsColumns[9]},
				RefColumns: []*schema.Column{OrganizationsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "promptconfig_organization_id_format_id_purpose",
				Unique:  true,
				Columns: []*schema.Column{PromptConfigsColumns[9], PromptConfigsColumns[8], PromptConfigsColumns[1]},
				Annotation: &entsql.IndexAnnotation{
					Where: "is_active",
				},
			},
		},
	}
	// VocabularyTermsColumns holds the columns for the "vocabulary_terms" table.
	VocabularyTermsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "raw_text", Type: field.TypeString, Size: 2147483647},
		{Name: "normalized_text", Type: field.TypeString},
		{Name: "category", Type: field.TypeString, Default: "OTHER"},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "occurrence_count", Type: field.TypeInt, Default: 1},
		{Name: "first_seen", Type: field.TypeTime},
		{Name: "last_seen", Type: field.TypeTime},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "format_id", Type: field.TypeUUID},
	}
	// VocabularyTermsTable holds the schema information for the "vocabulary_terms" table.
	VocabularyTermsTable = &schema.Table{
		Name:       "vocabulary_terms",
		Columns:    VocabularyTermsColumns,
		PrimaryKey: []*schema.Column{VocabularyTermsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "vocabulary_terms_document_formats_terms",
				Columns:    []*schema.Column{VocabularyTermsColumns[11]},
				RefColumns: []*schema.Column{DocumentFormatsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "vocabularyterm_format_id_normalized_text",
				Unique:  true,
				Columns: []*schema.Column{VocabularyTermsColumns[11], VocabularyTermsColumns[2]},
			},
			{
				Name:    "vocabularyterm_format_id_status",
				Unique:  false,
				Columns: []*schema.Column{VocabularyTermsColumns[11], VocabularyTermsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentFormatsTable,
		FieldMappingConfigsTable,
		OrganizationsTable,
		PromptConfigsTable,
		VocabularyTermsTable,
	}
)

func init() {
	DocumentFormatsTable.ForeignKeys[0].RefTable = OrganizationsTable
	DocumentFormatsTable.Annotation = &entsql.Annotation{
		Table: "document_formats",
	}
	FieldMappingConfigsTable.ForeignKeys[0].RefTable = DocumentFormatsTable
	FieldMappingConfigsTable.ForeignKeys[1].RefTable = OrganizationsTable
	FieldMappingConfigsTable.Annotation = &entsql.Annotation{
		Table: "field_mapping_configs",
	}
	OrganizationsTable.Annotation = &entsql.Annotation{
		Table: "organizations",
	}
	PromptConfigsTable.ForeignKeys[0].RefTable = DocumentFormatsTable
	PromptConfigsTable.ForeignKeys[1].RefTable = OrganizationsTable
	PromptConfigsTable.Annotation = &entsql.Annotation{
		Table: "prompt_configs",
	}
	VocabularyTermsTable.ForeignKeys[0].RefTable = DocumentFormatsTable
	VocabularyTermsTable.Annotation = &entsql.Annotation{
		Table: "vocabulary_terms",
	}
}
