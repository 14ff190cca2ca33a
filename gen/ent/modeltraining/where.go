// Code generated by ent, DO NOT EDIT.

package modeltraining

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/formshred/formshred/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldLTE(FieldID, id))
}

// DocumentFormat applies equality check predicate on the "document_format" field. It's identical to DocumentFormatEQ.
func DocumentFormat(v string) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldEQ(FieldDocumentFormat, v))
}

// ModelID applies equality check predicate on the "model_id" field. It's identical to ModelIDEQ.
func ModelID(v string) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldEQ(FieldModelID, v))
}

// ModelVersion applies equality check predicate on the "model_version" field. It's identical to ModelVersionEQ.
func ModelVersion(v int) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldEQ(FieldModelVersion, v))
}

// AverageModelAccuracy applies equality check predicate on the "average_model_accuracy" field. It's identical to AverageModelAccuracyEQ.
func AverageModelAccuracy(v float64) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldEQ(FieldAverageModelAccuracy, v))
}

// TrainedAt applies equality check predicate on the "trained_at" field. It's identical to TrainedAtEQ.
func TrainedAt(v time.Time) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldEQ(FieldTrainedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldEQ(FieldCreatedAt, v))
}

// DocumentFormatEQ applies the EQ predicate on the "document_format" field.
func DocumentFormatEQ(v string) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldEQ(FieldDocumentFormat, v))
}

// DocumentFormatNEQ applies the NEQ predicate on the "document_format" field.
func DocumentFormatNEQ(v string) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldNEQ(FieldDocumentFormat, v))
}

// DocumentFormatIn applies the In predicate on the "document_format" field.
func DocumentFormatIn(vs ...string) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldIn(FieldDocumentFormat, vs...))
}

// DocumentFormatNotIn applies the NotIn predicate on the "document_format" field.
func DocumentFormatNotIn(vs ...string) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldNotIn(FieldDocumentFormat, vs...))
}

// DocumentFormatGT applies the GT predicate on the "document_format" field.
func DocumentFormatGT(v string) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldGT(FieldDocumentFormat, v))
}

// DocumentFormatGTE applies the GTE predicate on the "document_format" field.
func DocumentFormatGTE(v string) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldGTE(FieldDocumentFormat, v))
}

// DocumentFormatLT applies the LT predicate on the "document_format" field.
func DocumentFormatLT(v string) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldLT(FieldDocumentFormat, v))
}

// DocumentFormatLTE applies the LTE predicate on the "document_format" field.
func DocumentFormatLTE(v string) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldLTE(FieldDocumentFormat, v))
}

// DocumentFormatContains applies the Contains predicate on the "document_format" field.
func DocumentFormatContains(v string) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldContains(FieldDocumentFormat, v))
}

// DocumentFormatHasPrefix applies the HasPrefix predicate on the "document_format" field.
func DocumentFormatHasPrefix(v string) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldHasPrefix(FieldDocumentFormat, v))
}

// DocumentFormatHasSuffix applies the HasSuffix predicate on the "document_format" field.
func DocumentFormatHasSuffix(v string) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldHasSuffix(FieldDocumentFormat, v))
}

// DocumentFormatEqualFold applies the EqualFold predicate on the "document_format" field.
func DocumentFormatEqualFold(v string) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldEqualFold(FieldDocumentFormat, v))
}

// DocumentFormatContainsFold applies the ContainsFold predicate on the "document_format" field.
func DocumentFormatContainsFold(v string) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldContainsFold(FieldDocumentFormat, v))
}

// ModelIDEQ applies the EQ predicate on the "model_id" field.
func ModelIDEQ(v string) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldEQ(FieldModelID, v))
}

// ModelIDNEQ applies the NEQ predicate on the "model_id" field.
func ModelIDNEQ(v string) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldNEQ(FieldModelID, v))
}

// ModelIDIn applies the In predicate on the "model_id" field.
func ModelIDIn(vs ...string) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldIn(FieldModelID, vs...))
}

// ModelIDNotIn applies the NotIn predicate on the "model_id" field.
func ModelIDNotIn(vs ...string) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldNotIn(FieldModelID, vs...))
}

// ModelIDGT applies the GT predicate on the "model_id" field.
func ModelIDGT(v string) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldGT(FieldModelID, v))
}

// ModelIDGTE applies the GTE predicate on the "model_id" field.
func ModelIDGTE(v string) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldGTE(FieldModelID, v))
}

// ModelIDLT applies the LT predicate on the "model_id" field.
func ModelIDLT(v string) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldLT(FieldModelID, v))
}

// ModelIDLTE applies the LTE predicate on the "model_id" field.
func ModelIDLTE(v string) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldLTE(FieldModelID, v))
}

// ModelIDContains applies the Contains predicate on the "model_id" field.
func ModelIDContains(v string) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldContains(FieldModelID, v))
}

// ModelIDHasPrefix applies the HasPrefix predicate on the "model_id" field.
func ModelIDHasPrefix(v string) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldHasPrefix(FieldModelID, v))
}

// ModelIDHasSuffix applies the HasSuffix predicate on the "model_id" field.
func ModelIDHasSuffix(v string) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldHasSuffix(FieldModelID, v))
}

// ModelIDEqualFold applies the EqualFold predicate on the "model_id" field.
func ModelIDEqualFold(v string) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldEqualFold(FieldModelID, v))
}

// ModelIDContainsFold applies the ContainsFold predicate on the "model_id" field.
func ModelIDContainsFold(v string) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldContainsFold(FieldModelID, v))
}

// ModelVersionEQ applies the EQ predicate on the "model_version" field.
func ModelVersionEQ(v int) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldEQ(FieldModelVersion, v))
}

// ModelVersionNEQ applies the NEQ predicate on the "model_version" field.
func ModelVersionNEQ(v int) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldNEQ(FieldModelVersion, v))
}

// ModelVersionIn applies the In predicate on the "model_version" field.
func ModelVersionIn(vs ...int) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldIn(FieldModelVersion, vs...))
}

// ModelVersionNotIn applies the NotIn predicate on the "model_version" field.
func ModelVersionNotIn(vs ...int) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldNotIn(FieldModelVersion, vs...))
}

// ModelVersionGT applies the GT predicate on the "model_version" field.
func ModelVersionGT(v int) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldGT(FieldModelVersion, v))
}

// ModelVersionGTE applies the GTE predicate on the "model_version" field.
func ModelVersionGTE(v int) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldGTE(FieldModelVersion, v))
}

// ModelVersionLT applies the LT predicate on the "model_version" field.
func ModelVersionLT(v int) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldLT(FieldModelVersion, v))
}

// ModelVersionLTE applies the LTE predicate on the "model_version" field.
func ModelVersionLTE(v int) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldLTE(FieldModelVersion, v))
}

// AverageModelAccuracyEQ applies the EQ predicate on the "average_model_accuracy" field.
func AverageModelAccuracyEQ(v float64) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldEQ(FieldAverageModelAccuracy, v))
}

// AverageModelAccuracyNEQ applies the NEQ predicate on the "average_model_accuracy" field.
func AverageModelAccuracyNEQ(v float64) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldNEQ(FieldAverageModelAccuracy, v))
}

// AverageModelAccuracyIn applies the In predicate on the "average_model_accuracy" field.
func AverageModelAccuracyIn(vs ...float64) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldIn(FieldAverageModelAccuracy, vs...))
}

// AverageModelAccuracyNotIn applies the NotIn predicate on the "average_model_accuracy" field.
func AverageModelAccuracyNotIn(vs ...float64) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldNotIn(FieldAverageModelAccuracy, vs...))
}

// AverageModelAccuracyGT applies the GT predicate on the "average_model_accuracy" field.
func AverageModelAccuracyGT(v float64) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldGT(FieldAverageModelAccuracy, v))
}

// AverageModelAccuracyGTE applies the GTE predicate on the "average_model_accuracy" field.
func AverageModelAccuracyGTE(v float64) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldGTE(FieldAverageModelAccuracy, v))
}

// AverageModelAccuracyLT applies the LT predicate on the "average_model_accuracy" field.
func AverageModelAccuracyLT(v float64) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldLT(FieldAverageModelAccuracy, v))
}

// AverageModelAccuracyLTE applies the LTE predicate on the "average_model_accuracy" field.
func AverageModelAccuracyLTE(v float64) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldLTE(FieldAverageModelAccuracy, v))
}

// AverageModelAccuracyIsNil applies the IsNil predicate on the "average_model_accuracy" field.
func AverageModelAccuracyIsNil() predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldIsNull(FieldAverageModelAccuracy))
}

// AverageModelAccuracyNotNil applies the NotNil predicate on the "average_model_accuracy" field.
func AverageModelAccuracyNotNil() predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldNotNull(FieldAverageModelAccuracy))
}

// TrainingDocumentsIsNil applies the IsNil predicate on the "training_documents" field.
func TrainingDocumentsIsNil() predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldIsNull(FieldTrainingDocuments))
}

// TrainingDocumentsNotNil applies the NotNil predicate on the "training_documents" field.
func TrainingDocumentsNotNil() predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldNotNull(FieldTrainingDocuments))
}

// TrainedAtEQ applies the EQ predicate on the "trained_at" field.
func TrainedAtEQ(v time.Time) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldEQ(FieldTrainedAt, v))
}

// TrainedAtNEQ applies the NEQ predicate on the "trained_at" field.
func TrainedAtNEQ(v time.Time) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldNEQ(FieldTrainedAt, v))
}

// TrainedAtIn applies the In predicate on the "trained_at" field.
func TrainedAtIn(vs ...time.Time) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldIn(FieldTrainedAt, vs...))
}

// TrainedAtNotIn applies the NotIn predicate on the "trained_at" field.
func TrainedAtNotIn(vs ...time.Time) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldNotIn(FieldTrainedAt, vs...))
}

// TrainedAtGT applies the GT predicate on the "trained_at" field.
func TrainedAtGT(v time.Time) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldGT(FieldTrainedAt, v))
}

// TrainedAtGTE applies the GTE predicate on the "trained_at" field.
func TrainedAtGTE(v time.Time) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldGTE(FieldTrainedAt, v))
}

// TrainedAtLT applies the LT predicate on the "trained_at" field.
func TrainedAtLT(v time.Time) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldLT(FieldTrainedAt, v))
}

// TrainedAtLTE applies the LTE predicate on the "trained_at" field.
func TrainedAtLTE(v time.Time) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldLTE(FieldTrainedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ModelTraining {
	return predicate.ModelTraining(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ModelTraining) predicate.ModelTraining {
	return predicate.ModelTraining(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ModelTraining) predicate.ModelTraining {
	return predicate.ModelTraining(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ModelTraining) predicate.ModelTraining {
	return predicate.ModelTraining(sql.NotPredicates(p))
}
