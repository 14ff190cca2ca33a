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
)

type DocumentLineItem struct{ ent.Schema }

func (DocumentLineItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "document_line_items"},
	}
}

func (DocumentLineItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("document_id", uuid.UUID{}),
		// zero-padded positional suffix ("01".."49")
		field.String("line_number").NotEmpty().MaxLen(2),
		field.String("item_description").Optional().Nillable(),
		// quantity is carried as recognized text, not coerced to a number
		field.String("line_quantity").Optional().Nillable(),
		field.Float("unit_price").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,4)"}),
		field.Float("net_amount").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,4)"}),
		field.Float("calculated_quantity").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,4)"}),
		field.String("vat_code").Optional().Nillable(),
	}
}

func (DocumentLineItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("line_items").
			Field("document_id").
			Unique().
			Required(),
	}
}

func (DocumentLineItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "line_number"),
	}
}
