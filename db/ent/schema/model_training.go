package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ModelTraining is the registry of trained recognition models: one row per
// training run, versions counting up per document format.
type ModelTraining struct{ ent.Schema }

func (ModelTraining) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "model_trainings"},
	}
}

func (ModelTraining) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("document_format").NotEmpty(),
		field.String("model_id").NotEmpty(),
		field.Int("model_version").Min(1),
		field.Float("average_model_accuracy").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,4)"}),
		field.JSON("training_documents", json.RawMessage{}).Optional(),
		field.Time("trained_at").Default(time.Now),
		field.Time("created_at").Default(time.Now),
	}
}

func (ModelTraining) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_format", "model_version").Unique(),
		index.Fields("model_id"),
	}
}
