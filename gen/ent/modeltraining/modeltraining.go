// Code generated by ent, DO NOT EDIT.

package modeltraining

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the modeltraining type in the database.
	Label = "model_training"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocumentFormat holds the string denoting the document_format field in the database.
	FieldDocumentFormat = "document_format"
	// FieldModelID holds the string denoting the model_id field in the database.
	FieldModelID = "model_id"
	// FieldModelVersion holds the string denoting the model_version field in the database.
	FieldModelVersion = "model_version"
	// FieldAverageModelAccuracy holds the string denoting the average_model_accuracy field in the database.
	FieldAverageModelAccuracy = "average_model_accuracy"
	// FieldTrainingDocuments holds the string denoting the training_documents field in the database.
	FieldTrainingDocuments = "training_documents"
	// FieldTrainedAt holds the string denoting the trained_at field in the database.
	FieldTrainedAt = "trained_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the modeltraining in the database.
	Table = "model_trainings"
)

// Columns holds all SQL columns for modeltraining fields.
var Columns = []string{
	FieldID,
	FieldDocumentFormat,
	FieldModelID,
	FieldModelVersion,
	FieldAverageModelAccuracy,
	FieldTrainingDocuments,
	FieldTrainedAt,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DocumentFormatValidator is a validator for the "document_format" field. It is called by the builders before save.
	DocumentFormatValidator func(string) error
	// ModelIDValidator is a validator for the "model_id" field. It is called by the builders before save.
	ModelIDValidator func(string) error
	// ModelVersionValidator is a validator for the "model_version" field. It is called by the builders before save.
	ModelVersionValidator func(int) error
	// DefaultTrainedAt holds the default value on creation for the "trained_at" field.
	DefaultTrainedAt func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ModelTraining queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocumentFormat orders the results by the document_format field.
func ByDocumentFormat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentFormat, opts...).ToFunc()
}

// ByModelID orders the results by the model_id field.
func ByModelID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelID, opts...).ToFunc()
}

// ByModelVersion orders the results by the model_version field.
func ByModelVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelVersion, opts...).ToFunc()
}

// ByAverageModelAccuracy orders the results by the average_model_accuracy field.
func ByAverageModelAccuracy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAverageModelAccuracy, opts...).ToFunc()
}

// ByTrainedAt orders the results by the trained_at field.
func ByTrainedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrainedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
