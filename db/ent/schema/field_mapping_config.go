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

	"github.com/laitim2001/ai-document-extraction/internal/entity"
)

type FieldMappingConfig struct{ ent.Schema }

func (FieldMappingConfig) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "field_mapping_configs"},
	}
}

func (FieldMappingConfig) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// both scope axes optional: (org, format), org-only, format-only,
		// or fully global when both are null
		field.UUID("organization_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("format_id", uuid.UUID{}).Optional().Nillable(),
		field.String("name").NotEmpty(),
		field.JSON("mappings", []entity.FieldMapping{}),
		field.Bool("is_active").Default(true),
		field.Int("priority").Default(0),
		field.String("created_by").Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (FieldMappingConfig) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("organization", Organization.Type).
			Ref("mapping_configs").
			Field("organization_id").
			Unique(),
		edge.From("format", DocumentFormat.Type).
			Ref("mapping_configs").
			Field("format_id").
			Unique(),
	}
}

func (FieldMappingConfig) Indexes() []ent.Index {
	return []ent.Index{
		// at most one active config per distinct scope pair
		index.Fields("organization_id", "format_id").
			Unique().
			Annotations(entsql.IndexWhere("is_active")),
		index.Fields("is_active", "priority"),
	}
}
