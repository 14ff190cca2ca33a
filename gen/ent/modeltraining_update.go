// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/formshred/formshred/gen/ent/modeltraining"
	"github.com/formshred/formshred/gen/ent/predicate"
)

// ModelTrainingUpdate is the builder for updating ModelTraining entities.
type ModelTrainingUpdate struct {
	config
	hooks    []Hook
	mutation *ModelTrainingMutation
}

// Where appends a list predicates to the ModelTrainingUpdate builder.
func (_u *ModelTrainingUpdate) Where(ps ...predicate.ModelTraining) *ModelTrainingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentFormat sets the "document_format" field.
func (_u *ModelTrainingUpdate) SetDocumentFormat(v string) *ModelTrainingUpdate {
	_u.mutation.SetDocumentFormat(v)
	return _u
}

// SetNillableDocumentFormat sets the "document_format" field if the given value is not nil.
func (_u *ModelTrainingUpdate) SetNillableDocumentFormat(v *string) *ModelTrainingUpdate {
	if v != nil {
		_u.SetDocumentFormat(*v)
	}
	return _u
}

// SetModelID sets the "model_id" field.
func (_u *ModelTrainingUpdate) SetModelID(v string) *ModelTrainingUpdate {
	_u.mutation.SetModelID(v)
	return _u
}

// SetNillableModelID sets the "model_id" field if the given value is not nil.
func (_u *ModelTrainingUpdate) SetNillableModelID(v *string) *ModelTrainingUpdate {
	if v != nil {
		_u.SetModelID(*v)
	}
	return _u
}

// SetModelVersion sets the "model_version" field.
func (_u *ModelTrainingUpdate) SetModelVersion(v int) *ModelTrainingUpdate {
	_u.mutation.ResetModelVersion()
	_u.mutation.SetModelVersion(v)
	return _u
}

// SetNillableModelVersion sets the "model_version" field if the given value is not nil.
func (_u *ModelTrainingUpdate) SetNillableModelVersion(v *int) *ModelTrainingUpdate {
	if v != nil {
		_u.SetModelVersion(*v)
	}
	return _u
}

// AddModelVersion adds value to the "model_version" field.
func (_u *ModelTrainingUpdate) AddModelVersion(v int) *ModelTrainingUpdate {
	_u.mutation.AddModelVersion(v)
	return _u
}

// SetAverageModelAccuracy sets the "average_model_accuracy" field.
func (_u *ModelTrainingUpdate) SetAverageModelAccuracy(v float64) *ModelTrainingUpdate {
	_u.mutation.ResetAverageModelAccuracy()
	_u.mutation.SetAverageModelAccuracy(v)
	return _u
}

// SetNillableAverageModelAccuracy sets the "average_model_accuracy" field if the given value is not nil.
func (_u *ModelTrainingUpdate) SetNillableAverageModelAccuracy(v *float64) *ModelTrainingUpdate {
	if v != nil {
		_u.SetAverageModelAccuracy(*v)
	}
	return _u
}

// AddAverageModelAccuracy adds value to the "average_model_accuracy" field.
func (_u *ModelTrainingUpdate) AddAverageModelAccuracy(v float64) *ModelTrainingUpdate {
	_u.mutation.AddAverageModelAccuracy(v)
	return _u
}

// ClearAverageModelAccuracy clears the value of the "average_model_accuracy" field.
func (_u *ModelTrainingUpdate) ClearAverageModelAccuracy() *ModelTrainingUpdate {
	_u.mutation.ClearAverageModelAccuracy()
	return _u
}

// SetTrainingDocuments sets the "training_documents" field.
func (_u *ModelTrainingUpdate) SetTrainingDocuments(v json.RawMessage) *ModelTrainingUpdate {
	_u.mutation.SetTrainingDocuments(v)
	return _u
}

// AppendTrainingDocuments appends value to the "training_documents" field.
func (_u *ModelTrainingUpdate) AppendTrainingDocuments(v json.RawMessage) *ModelTrainingUpdate {
	_u.mutation.AppendTrainingDocuments(v)
	return _u
}

// ClearTrainingDocuments clears the value of the "training_documents" field.
func (_u *ModelTrainingUpdate) ClearTrainingDocuments() *ModelTrainingUpdate {
	_u.mutation.ClearTrainingDocuments()
	return _u
}

// SetTrainedAt sets the "trained_at" field.
func (_u *ModelTrainingUpdate) SetTrainedAt(v time.Time) *ModelTrainingUpdate {
	_u.mutation.SetTrainedAt(v)
	return _u
}

// SetNillableTrainedAt sets the "trained_at" field if the given value is not nil.
func (_u *ModelTrainingUpdate) SetNillableTrainedAt(v *time.Time) *ModelTrainingUpdate {
	if v != nil {
		_u.SetTrainedAt(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ModelTrainingUpdate) SetCreatedAt(v time.Time) *ModelTrainingUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ModelTrainingUpdate) SetNillableCreatedAt(v *time.Time) *ModelTrainingUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the ModelTrainingMutation object of the builder.
func (_u *ModelTrainingUpdate) Mutation() *ModelTrainingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ModelTrainingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModelTrainingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ModelTrainingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModelTrainingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ModelTrainingUpdate) check() error {
	if v, ok := _u.mutation.DocumentFormat(); ok {
		if err := modeltraining.DocumentFormatValidator(v); err != nil {
			return &ValidationError{Name: "document_format", err: fmt.Errorf(`ent: validator failed for field "ModelTraining.document_format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModelID(); ok {
		if err := modeltraining.ModelIDValidator(v); err != nil {
			return &ValidationError{Name: "model_id", err: fmt.Errorf(`ent: validator failed for field "ModelTraining.model_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModelVersion(); ok {
		if err := modeltraining.ModelVersionValidator(v); err != nil {
			return &ValidationError{Name: "model_version", err: fmt.Errorf(`ent: validator failed for field "ModelTraining.model_version": %w`, err)}
		}
	}
	return nil
}

func (_u *ModelTrainingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(modeltraining.Table, modeltraining.Columns, sqlgraph.NewFieldSpec(modeltraining.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentFormat(); ok {
		_spec.SetField(modeltraining.FieldDocumentFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelID(); ok {
		_spec.SetField(modeltraining.FieldModelID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelVersion(); ok {
		_spec.SetField(modeltraining.FieldModelVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedModelVersion(); ok {
		_spec.AddField(modeltraining.FieldModelVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AverageModelAccuracy(); ok {
		_spec.SetField(modeltraining.FieldAverageModelAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageModelAccuracy(); ok {
		_spec.AddField(modeltraining.FieldAverageModelAccuracy, field.TypeFloat64, value)
	}
	if _u.mutation.AverageModelAccuracyCleared() {
		_spec.ClearField(modeltraining.FieldAverageModelAccuracy, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TrainingDocuments(); ok {
		_spec.SetField(modeltraining.FieldTrainingDocuments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTrainingDocuments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, modeltraining.FieldTrainingDocuments, value)
		})
	}
	if _u.mutation.TrainingDocumentsCleared() {
		_spec.ClearField(modeltraining.FieldTrainingDocuments, field.TypeJSON)
	}
	if value, ok := _u.mutation.TrainedAt(); ok {
		_spec.SetField(modeltraining.FieldTrainedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(modeltraining.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{modeltraining.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ModelTrainingUpdateOne is the builder for updating a single ModelTraining entity.
type ModelTrainingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ModelTrainingMutation
}

// SetDocumentFormat sets the "document_format" field.
func (_u *ModelTrainingUpdateOne) SetDocumentFormat(v string) *ModelTrainingUpdateOne {
	_u.mutation.SetDocumentFormat(v)
	return _u
}

// SetNillableDocumentFormat sets the "document_format" field if the given value is not nil.
func (_u *ModelTrainingUpdateOne) SetNillableDocumentFormat(v *string) *ModelTrainingUpdateOne {
	if v != nil {
		_u.SetDocumentFormat(*v)
	}
	return _u
}

// SetModelID sets the "model_id" field.
func (_u *ModelTrainingUpdateOne) SetModelID(v string) *ModelTrainingUpdateOne {
	_u.mutation.SetModelID(v)
	return _u
}

// SetNillableModelID sets the "model_id" field if the given value is not nil.
func (_u *ModelTrainingUpdateOne) SetNillableModelID(v *string) *ModelTrainingUpdateOne {
	if v != nil {
		_u.SetModelID(*v)
	}
	return _u
}

// SetModelVersion sets the "model_version" field.
func (_u *ModelTrainingUpdateOne) SetModelVersion(v int) *ModelTrainingUpdateOne {
	_u.mutation.ResetModelVersion()
	_u.mutation.SetModelVersion(v)
	return _u
}

// SetNillableModelVersion sets the "model_version" field if the given value is not nil.
func (_u *ModelTrainingUpdateOne) SetNillableModelVersion(v *int) *ModelTrainingUpdateOne {
	if v != nil {
		_u.SetModelVersion(*v)
	}
	return _u
}

// AddModelVersion adds value to the "model_version" field.
func (_u *ModelTrainingUpdateOne) AddModelVersion(v int) *ModelTrainingUpdateOne {
	_u.mutation.AddModelVersion(v)
	return _u
}

// SetAverageModelAccuracy sets the "average_model_accuracy" field.
func (_u *ModelTrainingUpdateOne) SetAverageModelAccuracy(v float64) *ModelTrainingUpdateOne {
	_u.mutation.ResetAverageModelAccuracy()
	_u.mutation.SetAverageModelAccuracy(v)
	return _u
}

// SetNillableAverageModelAccuracy sets the "average_model_accuracy" field if the given value is not nil.
func (_u *ModelTrainingUpdateOne) SetNillableAverageModelAccuracy(v *float64) *ModelTrainingUpdateOne {
	if v != nil {
		_u.SetAverageModelAccuracy(*v)
	}
	return _u
}

// AddAverageModelAccuracy adds value to the "average_model_accuracy" field.
func (_u *ModelTrainingUpdateOne) AddAverageModelAccuracy(v float64) *ModelTrainingUpdateOne {
	_u.mutation.AddAverageModelAccuracy(v)
	return _u
}

// ClearAverageModelAccuracy clears the value of the "average_model_accuracy" field.
func (_u *ModelTrainingUpdateOne) ClearAverageModelAccuracy() *ModelTrainingUpdateOne {
	_u.mutation.ClearAverageModelAccuracy()
	return _u
}

// SetTrainingDocuments sets the "training_documents" field.
func (_u *ModelTrainingUpdateOne) SetTrainingDocuments(v json.RawMessage) *ModelTrainingUpdateOne {
	_u.mutation.SetTrainingDocuments(v)
	return _u
}

// AppendTrainingDocuments appends value to the "training_documents" field.
func (_u *ModelTrainingUpdateOne) AppendTrainingDocuments(v json.RawMessage) *ModelTrainingUpdateOne {
	_u.mutation.AppendTrainingDocuments(v)
	return _u
}

// ClearTrainingDocuments clears the value of the "training_documents" field.
func (_u *ModelTrainingUpdateOne) ClearTrainingDocuments() *ModelTrainingUpdateOne {
	_u.mutation.ClearTrainingDocuments()
	return _u
}

// SetTrainedAt sets the "trained_at" field.
func (_u *ModelTrainingUpdateOne) SetTrainedAt(v time.Time) *ModelTrainingUpdateOne {
	_u.mutation.SetTrainedAt(v)
	return _u
}

// SetNillableTrainedAt sets the "trained_at" field if the given value is not nil.
func (_u *ModelTrainingUpdateOne) SetNillableTrainedAt(v *time.Time) *ModelTrainingUpdateOne {
	if v != nil {
		_u.SetTrainedAt(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ModelTrainingUpdateOne) SetCreatedAt(v time.Time) *ModelTrainingUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ModelTrainingUpdateOne) SetNillableCreatedAt(v *time.Time) *ModelTrainingUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the ModelTrainingMutation object of the builder.
func (_u *ModelTrainingUpdateOne) Mutation() *ModelTrainingMutation {
	return _u.mutation
}

// Where appends a list predicates to the ModelTrainingUpdate builder.
func (_u *ModelTrainingUpdateOne) Where(ps ...predicate.ModelTraining) *ModelTrainingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ModelTrainingUpdateOne) Select(field string, fields ...string) *ModelTrainingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ModelTraining entity.
func (_u *ModelTrainingUpdateOne) Save(ctx context.Context) (*ModelTraining, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModelTrainingUpdateOne) SaveX(ctx context.Context) *ModelTraining {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ModelTrainingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModelTrainingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ModelTrainingUpdateOne) check() error {
	if v, ok := _u.mutation.DocumentFormat(); ok {
		if err := modeltraining.DocumentFormatValidator(v); err != nil {
			return &ValidationError{Name: "document_format", err: fmt.Errorf(`ent: validator failed for field "ModelTraining.document_format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModelID(); ok {
		if err := modeltraining.ModelIDValidator(v); err != nil {
			return &ValidationError{Name: "model_id", err: fmt.Errorf(`ent: validator failed for field "ModelTraining.model_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModelVersion(); ok {
		if err := modeltraining.ModelVersionValidator(v); err != nil {
			return &ValidationError{Name: "model_version", err: fmt.Errorf(`ent: validator failed for field "ModelTraining.model_version": %w`, err)}
		}
	}
	return nil
}

func (_u *ModelTrainingUpdateOne) sqlSave(ctx context.Context) (_node *ModelTraining, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(modeltraining.Table, modeltraining.Columns, sqlgraph.NewFieldSpec(modeltraining.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ModelTraining.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, modeltraining.FieldID)
		for _, f := range fields {
			if !modeltraining.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != modeltraining.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentFormat(); ok {
		_spec.SetField(modeltraining.FieldDocumentFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelID(); ok {
		_spec.SetField(modeltraining.FieldModelID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelVersion(); ok {
		_spec.SetField(modeltraining.FieldModelVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedModelVersion(); ok {
		_spec.AddField(modeltraining.FieldModelVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AverageModelAccuracy(); ok {
		_spec.SetField(modeltraining.FieldAverageModelAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageModelAccuracy(); ok {
		_spec.AddField(modeltraining.FieldAverageModelAccuracy, field.TypeFloat64, value)
	}
	if _u.mutation.AverageModelAccuracyCleared() {
		_spec.ClearField(modeltraining.FieldAverageModelAccuracy, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TrainingDocuments(); ok {
		_spec.SetField(modeltraining.FieldTrainingDocuments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTrainingDocuments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, modeltraining.FieldTrainingDocuments, value)
		})
	}
	if _u.mutation.TrainingDocumentsCleared() {
		_spec.ClearField(modeltraining.FieldTrainingDocuments, field.TypeJSON)
	}
	if value, ok := _u.mutation.TrainedAt(); ok {
		_spec.SetField(modeltraining.FieldTrainedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(modeltraining.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &ModelTraining{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{modeltraining.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
