// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/formshred/formshred/gen/ent/modeltraining"
	"github.com/google/uuid"
)

// ModelTrainingCreate is the builder for creating a ModelTraining entity.
type ModelTrainingCreate struct {
	config
	mutation *ModelTrainingMutation
	hooks    []Hook
}

// SetDocumentFormat sets the "document_format" field.
func (_c *ModelTrainingCreate) SetDocumentFormat(v string) *ModelTrainingCreate {
	_c.mutation.SetDocumentFormat(v)
	return _c
}

// SetModelID sets the "model_id" field.
func (_c *ModelTrainingCreate) SetModelID(v string) *ModelTrainingCreate {
	_c.mutation.SetModelID(v)
	return _c
}

// SetModelVersion sets the "model_version" field.
func (_c *ModelTrainingCreate) SetModelVersion(v int) *ModelTrainingCreate {
	_c.mutation.SetModelVersion(v)
	return _c
}

// SetAverageModelAccuracy sets the "average_model_accuracy" field.
func (_c *ModelTrainingCreate) SetAverageModelAccuracy(v float64) *ModelTrainingCreate {
	_c.mutation.SetAverageModelAccuracy(v)
	return _c
}

// SetNillableAverageModelAccuracy sets the "average_model_accuracy" field if the given value is not nil.
func (_c *ModelTrainingCreate) SetNillableAverageModelAccuracy(v *float64) *ModelTrainingCreate {
	if v != nil {
		_c.SetAverageModelAccuracy(*v)
	}
	return _c
}

// SetTrainingDocuments sets the "training_documents" field.
func (_c *ModelTrainingCreate) SetTrainingDocuments(v json.RawMessage) *ModelTrainingCreate {
	_c.mutation.SetTrainingDocuments(v)
	return _c
}

// SetTrainedAt sets the "trained_at" field.
func (_c *ModelTrainingCreate) SetTrainedAt(v time.Time) *ModelTrainingCreate {
	_c.mutation.SetTrainedAt(v)
	return _c
}

// SetNillableTrainedAt sets the "trained_at" field if the given value is not nil.
func (_c *ModelTrainingCreate) SetNillableTrainedAt(v *time.Time) *ModelTrainingCreate {
	if v != nil {
		_c.SetTrainedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ModelTrainingCreate) SetCreatedAt(v time.Time) *ModelTrainingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ModelTrainingCreate) SetNillableCreatedAt(v *time.Time) *ModelTrainingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ModelTrainingCreate) SetID(v uuid.UUID) *ModelTrainingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ModelTrainingCreate) SetNillableID(v *uuid.UUID) *ModelTrainingCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ModelTrainingMutation object of the builder.
func (_c *ModelTrainingCreate) Mutation() *ModelTrainingMutation {
	return _c.mutation
}

// Save creates the ModelTraining in the database.
func (_c *ModelTrainingCreate) Save(ctx context.Context) (*ModelTraining, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ModelTrainingCreate) SaveX(ctx context.Context) *ModelTraining {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModelTrainingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModelTrainingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ModelTrainingCreate) defaults() {
	if _, ok := _c.mutation.TrainedAt(); !ok {
		v := modeltraining.DefaultTrainedAt()
		_c.mutation.SetTrainedAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := modeltraining.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := modeltraining.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ModelTrainingCreate) check() error {
	if _, ok := _c.mutation.DocumentFormat(); !ok {
		return &ValidationError{Name: "document_format", err: errors.New(`ent: missing required field "ModelTraining.document_format"`)}
	}
	if v, ok := _c.mutation.DocumentFormat(); ok {
		if err := modeltraining.DocumentFormatValidator(v); err != nil {
			return &ValidationError{Name: "document_format", err: fmt.Errorf(`ent: validator failed for field "ModelTraining.document_format": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModelID(); !ok {
		return &ValidationError{Name: "model_id", err: errors.New(`ent: missing required field "ModelTraining.model_id"`)}
	}
	if v, ok := _c.mutation.ModelID(); ok {
		if err := modeltraining.ModelIDValidator(v); err != nil {
			return &ValidationError{Name: "model_id", err: fmt.Errorf(`ent: validator failed for field "ModelTraining.model_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModelVersion(); !ok {
		return &ValidationError{Name: "model_version", err: errors.New(`ent: missing required field "ModelTraining.model_version"`)}
	}
	if v, ok := _c.mutation.ModelVersion(); ok {
		if err := modeltraining.ModelVersionValidator(v); err != nil {
			return &ValidationError{Name: "model_version", err: fmt.Errorf(`ent: validator failed for field "ModelTraining.model_version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TrainedAt(); !ok {
		return &ValidationError{Name: "trained_at", err: errors.New(`ent: missing required field "ModelTraining.trained_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ModelTraining.created_at"`)}
	}
	return nil
}

func (_c *ModelTrainingCreate) sqlSave(ctx context.Context) (*ModelTraining, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ModelTrainingCreate) createSpec() (*ModelTraining, *sqlgraph.CreateSpec) {
	var (
		_node = &ModelTraining{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(modeltraining.Table, sqlgraph.NewFieldSpec(modeltraining.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.DocumentFormat(); ok {
		_spec.SetField(modeltraining.FieldDocumentFormat, field.TypeString, value)
		_node.DocumentFormat = value
	}
	if value, ok := _c.mutation.ModelID(); ok {
		_spec.SetField(modeltraining.FieldModelID, field.TypeString, value)
		_node.ModelID = value
	}
	if value, ok := _c.mutation.ModelVersion(); ok {
		_spec.SetField(modeltraining.FieldModelVersion, field.TypeInt, value)
		_node.ModelVersion = value
	}
	if value, ok := _c.mutation.AverageModelAccuracy(); ok {
		_spec.SetField(modeltraining.FieldAverageModelAccuracy, field.TypeFloat64, value)
		_node.AverageModelAccuracy = &value
	}
	if value, ok := _c.mutation.TrainingDocuments(); ok {
		_spec.SetField(modeltraining.FieldTrainingDocuments, field.TypeJSON, value)
		_node.TrainingDocuments = value
	}
	if value, ok := _c.mutation.TrainedAt(); ok {
		_spec.SetField(modeltraining.FieldTrainedAt, field.TypeTime, value)
		_node.TrainedAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(modeltraining.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ModelTrainingCreateBulk is the builder for creating many ModelTraining entities in bulk.
type ModelTrainingCreateBulk struct {
	config
	err      error
	builders []*ModelTrainingCreate
}

// Save creates the ModelTraining entities in the database.
func (_c *ModelTrainingCreateBulk) Save(ctx context.Context) ([]*ModelTraining, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ModelTraining, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ModelTrainingMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ModelTrainingCreateBulk) SaveX(ctx context.Context) []*ModelTraining {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModelTrainingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModelTrainingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
