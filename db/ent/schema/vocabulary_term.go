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

type VocabularyTerm struct{ ent.Schema }

func (VocabularyTerm) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "vocabulary_terms"},
	}
}

func (VocabularyTerm) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("format_id", uuid.UUID{}),
		field.Text("raw_text").NotEmpty(),
		field.String("normalized_text").NotEmpty(),
		field.String("category").
			Default(string(constants.CategoryOther)).
			Validate(utils.EnumValidator(constants.TermCategoriesAsStrings()...)),
		field.String("status").
			Default(string(constants.TermStatusPending)).
			Validate(utils.EnumValidator(
				string(constants.TermStatusPending),
				string(constants.TermStatusConfirmed),
				string(constants.TermStatusRejected),
				string(constants.TermStatusAutoApproved),
			)),
		field.Int("occurrence_count").Default(1),
		field.Time("first_seen").Default(time.Now),
		field.Time("last_seen").Default(time.Now),
		field.Float("confidence").Default(0),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (VocabularyTerm) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY terms -> ONE format (FK: vocabulary_terms.format_id)
		edge.From("format", DocumentFormat.Type).
			Ref("terms").
			Field("format_id").
			Required().
			Unique(),
	}
}

func (VocabularyTerm) Indexes() []ent.Index {
	return []ent.Index{
		// near-duplicates are merged before insert; exact duplicates
		// are impossible by construction
		index.Fields("format_id", "normalized_text").Unique(),
		index.Fields("format_id", "status"),
	}
}
