// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/formshred/formshred/gen/ent/modeltraining"
	"github.com/google/uuid"
)

// ModelTraining is the model entity for the ModelTraining schema.
type ModelTraining struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DocumentFormat holds the value of the "document_format" field.
	DocumentFormat string `json:"document_format,omitempty"`
	// ModelID holds the value of the "model_id" field.
	ModelID string `json:"model_id,omitempty"`
	// ModelVersion holds the value of the "model_version" field.
	ModelVersion int `json:"model_version,omitempty"`
	// AverageModelAccuracy holds the value of the "average_model_accuracy" field.
	AverageModelAccuracy *float64 `json:"average_model_accuracy,omitempty"`
	// TrainingDocuments holds the value of the "training_documents" field.
	TrainingDocuments json.RawMessage `json:"training_documents,omitempty"`
	// TrainedAt holds the value of the "trained_at" field.
	TrainedAt time.Time `json:"trained_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ModelTraining) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case modeltraining.FieldTrainingDocuments:
			values[i] = new([]byte)
		case modeltraining.FieldAverageModelAccuracy:
			values[i] = new(sql.NullFloat64)
		case modeltraining.FieldModelVersion:
			values[i] = new(sql.NullInt64)
		case modeltraining.FieldDocumentFormat, modeltraining.FieldModelID:
			values[i] = new(sql.NullString)
		case modeltraining.FieldTrainedAt, modeltraining.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case modeltraining.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ModelTraining fields.
func (_m *ModelTraining) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case modeltraining.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case modeltraining.FieldDocumentFormat:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_format", values[i])
			} else if value.Valid {
				_m.DocumentFormat = value.String
			}
		case modeltraining.FieldModelID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_id", values[i])
			} else if value.Valid {
				_m.ModelID = value.String
			}
		case modeltraining.FieldModelVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field model_version", values[i])
			} else if value.Valid {
				_m.ModelVersion = int(value.Int64)
			}
		case modeltraining.FieldAverageModelAccuracy:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field average_model_accuracy", values[i])
			} else if value.Valid {
				_m.AverageModelAccuracy = new(float64)
				*_m.AverageModelAccuracy = value.Float64
			}
		case modeltraining.FieldTrainingDocuments:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field training_documents", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TrainingDocuments); err != nil {
					return fmt.Errorf("unmarshal field training_documents: %w", err)
				}
			}
		case modeltraining.FieldTrainedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field trained_at", values[i])
			} else if value.Valid {
				_m.TrainedAt = value.Time
			}
		case modeltraining.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ModelTraining.
// This includes values selected through modifiers, order, etc.
func (_m *ModelTraining) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ModelTraining.
// Note that you need to call ModelTraining.Unwrap() before calling this method if this ModelTraining
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ModelTraining) Update() *ModelTrainingUpdateOne {
	return NewModelTrainingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ModelTraining entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ModelTraining) Unwrap() *ModelTraining {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ModelTraining is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ModelTraining) String() string {
	var builder strings.Builder
	builder.WriteString("ModelTraining(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_format=")
	builder.WriteString(_m.DocumentFormat)
	builder.WriteString(", ")
	builder.WriteString("model_id=")
	builder.WriteString(_m.ModelID)
	builder.WriteString(", ")
	builder.WriteString("model_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.ModelVersion))
	builder.WriteString(", ")
	if v := _m.AverageModelAccuracy; v != nil {
		builder.WriteString("average_model_accuracy=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("training_documents=")
	builder.WriteString(fmt.Sprintf("%v", _m.TrainingDocuments))
	builder.WriteString(", ")
	builder.WriteString("trained_at=")
	builder.WriteString(_m.TrainedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ModelTrainings is a parsable slice of ModelTraining.
type ModelTrainings []*ModelTraining
