// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/formshred/formshred/gen/ent/modeltraining"
	"github.com/formshred/formshred/gen/ent/predicate"
)

// ModelTrainingDelete is the builder for deleting a ModelTraining entity.
type ModelTrainingDelete struct {
	config
	hooks    []Hook
	mutation *ModelTrainingMutation
}

// Where appends a list predicates to the ModelTrainingDelete builder.
func (_d *ModelTrainingDelete) Where(ps ...predicate.ModelTraining) *ModelTrainingDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ModelTrainingDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ModelTrainingDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ModelTrainingDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(modeltraining.Table, sqlgraph.NewFieldSpec(modeltraining.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ModelTrainingDeleteOne is the builder for deleting a single ModelTraining entity.
type ModelTrainingDeleteOne struct {
	_d *ModelTrainingDelete
}

// Where appends a list predicates to the ModelTrainingDelete builder.
func (_d *ModelTrainingDeleteOne) Where(ps ...predicate.ModelTraining) *ModelTrainingDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ModelTrainingDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{modeltraining.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ModelTrainingDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
