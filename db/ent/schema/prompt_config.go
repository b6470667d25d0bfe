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

	"github.com/laitim2001/ai-document-extraction/constants"
	"github.com/laitim2001/ai-document-extraction/db/ent/schema/utils"
)

type PromptConfig struct{ ent.Schema }

func (PromptConfig) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "prompt_configs"},
	}
}

func (PromptConfig) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("organization_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("format_id", uuid.UUID{}).Optional().Nillable(),
		field.String("purpose").NotEmpty().
			Validate(utils.EnumValidator(promptPurposes()...)),
		field.Text("template").NotEmpty(),
		field.Int("version").Default(1),
		field.Bool("is_active").Default(true),
		field.Int("priority").Default(0),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func promptPurposes() []string {
	out := make([]string, len(constants.AllPromptPurposes))
	for i, p := range constants.AllPromptPurposes {
		out[i] = string(p)
	}
	return out
}

func (PromptConfig) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("organization", Organization.Type).
			Ref("prompt_configs").
			Field("organization_id").
			Unique(),
		edge.From("format", DocumentFormat.Type).
			Ref("prompt_configs").
			Field("format_id").
			Unique(),
	}
}

func (PromptConfig) Indexes() []ent.Index {
	return []ent.Index{
		// one active prompt per scope pair and purpose
		index.Fields("organization_id", "format_id", "purpose").
			Unique().
			Annotations(entsql.IndexWhere("is_active")),
	}
}
