package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("file_name").NotEmpty(),
		field.String("document_format").Optional().Nillable(),
		field.String("recognizer_status").Optional().Nillable(),
		field.JSON("recognizer_errors", json.RawMessage{}).Optional(),
		field.String("po_number").Optional().Nillable(),
		field.String("invoice_number").Optional().Nillable(),
		field.String("account_number").Optional().Nillable(),
		field.Time("order_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("tax_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("tax_period").Optional().Nillable(),
		field.Float("net_total").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("vat_total").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("gross_total").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("delivery_post_code").Optional().Nillable(),
		field.String("unique_run_identifier").NotEmpty(),
		field.String("thumbprint").Optional().Nillable(),
		field.String("model_id").Optional().Nillable(),
		field.String("model_version").Optional().Nillable(),
		field.Bool("is_valid").Default(false),
		field.Int("terminal_error_count").Default(0),
		field.Int("warning_error_count").Default(0),
		field.Time("shredding_utc_time").Default(time.Now),
		field.Int64("time_to_shred_ms").Default(0),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE document -> MANY line items
		edge.To("line_items", DocumentLineItem.Type),
		// ONE document -> MANY recorded errors
		edge.To("shredding_errors", DocumentError.Type),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("unique_run_identifier"),
		index.Fields("document_format", "shredding_utc_time"),
		index.Fields("is_valid"),
	}
}
