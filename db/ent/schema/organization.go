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

type Organization struct{ ent.Schema }

func (Organization) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "organizations"},
	}
}

func (Organization) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		field.String("code").NotEmpty(),
		field.String("normalized_name").NotEmpty(),
		field.JSON("aliases", []string{}).Optional(),
		field.Bool("auto_created").Default(false),
		field.UUID("source_document_id", uuid.UUID{}).Optional().Nillable(),
		field.Bool("is_active").Default(true),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Organization) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("formats", DocumentFormat.Type),
		edge.To("mapping_configs", FieldMappingConfig.Type),
		edge.To("prompt_configs", PromptConfig.Type),
	}
}

func (Organization) Indexes() []ent.Index {
	return []ent.Index{
		// one canonical organization per normalized identity; the
		// auto-create race resolves against this constraint
		index.Fields("normalized_name").Unique(),
		index.Fields("code").Unique(),
	}
}
