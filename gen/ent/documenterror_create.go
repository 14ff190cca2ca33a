// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/formshred/formshred/gen/ent/document"
	"github.com/formshred/formshred/gen/ent/documenterror"
	"github.com/google/uuid"
)

// DocumentErrorCreate is the builder for creating a DocumentError entity.
type DocumentErrorCreate struct {
	config
	mutation *DocumentErrorMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *DocumentErrorCreate) SetDocumentID(v uuid.UUID) *DocumentErrorCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetErrorCode sets the "error_code" field.
func (_c *DocumentErrorCreate) SetErrorCode(v string) *DocumentErrorCreate {
	_c.mutation.SetErrorCode(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *DocumentErrorCreate) SetSeverity(v string) *DocumentErrorCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *DocumentErrorCreate) SetMessage(v string) *DocumentErrorCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetID sets the "id" field.
func (_c *DocumentErrorCreate) SetID(v uuid.UUID) *DocumentErrorCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DocumentErrorCreate) SetNillableID(v *uuid.UUID) *DocumentErrorCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *DocumentErrorCreate) SetDocument(v *Document) *DocumentErrorCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the DocumentErrorMutation object of the builder.
func (_c *DocumentErrorCreate) Mutation() *DocumentErrorMutation {
	return _c.mutation
}

// Save creates the DocumentError in the database.
func (_c *DocumentErrorCreate) Save(ctx context.Context) (*DocumentError, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentErrorCreate) SaveX(ctx context.Context) *DocumentError {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentErrorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentErrorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentErrorCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := documenterror.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentErrorCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "DocumentError.document_id"`)}
	}
	if _, ok := _c.mutation.ErrorCode(); !ok {
		return &ValidationError{Name: "error_code", err: errors.New(`ent: missing required field "DocumentError.error_code"`)}
	}
	if v, ok := _c.mutation.ErrorCode(); ok {
		if err := documenterror.ErrorCodeValidator(v); err != nil {
			return &ValidationError{Name: "error_code", err: fmt.Errorf(`ent: validator failed for field "DocumentError.error_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "DocumentError.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := documenterror.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "DocumentError.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "DocumentError.message"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "DocumentError.document"`)}
	}
	return nil
}

func (_c *DocumentErrorCreate) sqlSave(ctx context.Context) (*DocumentError, error) {
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

func (_c *DocumentErrorCreate) createSpec() (*DocumentError, *sqlgraph.CreateSpec) {
	var (
		_node = &DocumentError{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(documenterror.Table, sqlgraph.NewFieldSpec(documenterror.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ErrorCode(); ok {
		_spec.SetField(documenterror.FieldErrorCode, field.TypeString, value)
		_node.ErrorCode = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(documenterror.FieldSeverity, field.TypeString, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(documenterror.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   documenterror.DocumentTable,
			Columns: []string{documenterror.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DocumentErrorCreateBulk is the builder for creating many DocumentError entities in bulk.
type DocumentErrorCreateBulk struct {
	config
	err      error
	builders []*DocumentErrorCreate
}

// Save creates the DocumentError entities in the database.
func (_c *DocumentErrorCreateBulk) Save(ctx context.Context) ([]*DocumentError, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DocumentError, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentErrorMutation)
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
func (_c *DocumentErrorCreateBulk) SaveX(ctx context.Context) []*DocumentError {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentErrorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentErrorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
