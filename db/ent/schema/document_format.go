package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type DocumentFormat struct{ ent.Schema }

func (DocumentFormat) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "document_formats"},
	}
}

func (DocumentFormat) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("organization_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.Text("header_pattern").Optional(),
		field.String("logo_signature").Optional(),
		field.String("layout_fingerprint").Optional(),
		field.JSON("detected_fields", []string{}).Optional(),
		field.String("fingerprint").NotEmpty(),
		field.Bool("auto_created").Default(false),
		field.UUID("source_document_id", uuid.UUID{}).Optional().Nillable(),
		field.Bool("is_active").Default(true),
		field.Int("match_count").Default(0),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (DocumentFormat) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY formats -> ONE organization (FK: document_formats.organization_id)
		edge.From("organization", Organization.Type).
			Ref("formats").
			Field("organization_id").
			Required().
			Unique(),
		edge.To("terms", VocabularyTerm.Type),
		edge.To("mapping_configs", FieldMappingConfig.Type),
		edge.To("prompt_configs", PromptConfig.Type),
	}
}

func (DocumentFormat) Indexes() []ent.Index {
	return []ent.Index{
		// fingerprints are scoped to the owning organization
		index.Fields("organization_id", "fingerprint").Unique(),
		index.Fields("organization_id", "is_active"),
	}
}
