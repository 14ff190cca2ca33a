package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/formshred/formshred/db/ent/schema/utils"
)

type DocumentError struct{ ent.Schema }

func (DocumentError) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "document_errors"},
	}
}

func (DocumentError) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("document_id", uuid.UUID{}),
		field.String("error_code").NotEmpty(),
		field.String("severity").NotEmpty().
			Validate(utils.EnumValidator("Observation", "Warning", "Terminal")),
		field.String("message").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
	}
}

func (DocumentError) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("shredding_errors").
			Field("document_id").
			Unique().
			Required(),
	}
}

func (DocumentError) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id"),
		index.Fields("error_code"),
	}
}
