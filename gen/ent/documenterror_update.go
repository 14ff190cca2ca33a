// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/formshred/formshred/gen/ent/document"
	"github.com/formshred/formshred/gen/ent/documenterror"
	"github.com/formshred/formshred/gen/ent/predicate"
	"github.com/google/uuid"
)

// DocumentErrorUpdate is the builder for updating DocumentError entities.
type DocumentErrorUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentErrorMutation
}

// Where appends a list predicates to the DocumentErrorUpdate builder.
func (_u *DocumentErrorUpdate) Where(ps ...predicate.DocumentError) *DocumentErrorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *DocumentErrorUpdate) SetDocumentID(v uuid.UUID) *DocumentErrorUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *DocumentErrorUpdate) SetNillableDocumentID(v *uuid.UUID) *DocumentErrorUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *DocumentErrorUpdate) SetErrorCode(v string) *DocumentErrorUpdate {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *DocumentErrorUpdate) SetNillableErrorCode(v *string) *DocumentErrorUpdate {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *DocumentErrorUpdate) SetSeverity(v string) *DocumentErrorUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *DocumentErrorUpdate) SetNillableSeverity(v *string) *DocumentErrorUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *DocumentErrorUpdate) SetMessage(v string) *DocumentErrorUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *DocumentErrorUpdate) SetNillableMessage(v *string) *DocumentErrorUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *DocumentErrorUpdate) SetDocument(v *Document) *DocumentErrorUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the DocumentErrorMutation object of the builder.
func (_u *DocumentErrorUpdate) Mutation() *DocumentErrorMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *DocumentErrorUpdate) ClearDocument() *DocumentErrorUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentErrorUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentErrorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentErrorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentErrorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentErrorUpdate) check() error {
	if v, ok := _u.mutation.ErrorCode(); ok {
		if err := documenterror.ErrorCodeValidator(v); err != nil {
			return &ValidationError{Name: "error_code", err: fmt.Errorf(`ent: validator failed for field "DocumentError.error_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := documenterror.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "DocumentError.severity": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DocumentError.document"`)
	}
	return nil
}

func (_u *DocumentErrorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documenterror.Table, documenterror.Columns, sqlgraph.NewFieldSpec(documenterror.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(documenterror.FieldErrorCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(documenterror.FieldSeverity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(documenterror.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documenterror.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentErrorUpdateOne is the builder for updating a single DocumentError entity.
type DocumentErrorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentErrorMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *DocumentErrorUpdateOne) SetDocumentID(v uuid.UUID) *DocumentErrorUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *DocumentErrorUpdateOne) SetNillableDocumentID(v *uuid.UUID) *DocumentErrorUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *DocumentErrorUpdateOne) SetErrorCode(v string) *DocumentErrorUpdateOne {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *DocumentErrorUpdateOne) SetNillableErrorCode(v *string) *DocumentErrorUpdateOne {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *DocumentErrorUpdateOne) SetSeverity(v string) *DocumentErrorUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *DocumentErrorUpdateOne) SetNillableSeverity(v *string) *DocumentErrorUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *DocumentErrorUpdateOne) SetMessage(v string) *DocumentErrorUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *DocumentErrorUpdateOne) SetNillableMessage(v *string) *DocumentErrorUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *DocumentErrorUpdateOne) SetDocument(v *Document) *DocumentErrorUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the DocumentErrorMutation object of the builder.
func (_u *DocumentErrorUpdateOne) Mutation() *DocumentErrorMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *DocumentErrorUpdateOne) ClearDocument() *DocumentErrorUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the DocumentErrorUpdate builder.
func (_u *DocumentErrorUpdateOne) Where(ps ...predicate.DocumentError) *DocumentErrorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentErrorUpdateOne) Select(field string, fields ...string) *DocumentErrorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DocumentError entity.
func (_u *DocumentErrorUpdateOne) Save(ctx context.Context) (*DocumentError, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentErrorUpdateOne) SaveX(ctx context.Context) *DocumentError {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentErrorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentErrorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentErrorUpdateOne) check() error {
	if v, ok := _u.mutation.ErrorCode(); ok {
		if err := documenterror.ErrorCodeValidator(v); err != nil {
			return &ValidationError{Name: "error_code", err: fmt.Errorf(`ent: validator failed for field "DocumentError.error_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := documenterror.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "DocumentError.severity": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DocumentError.document"`)
	}
	return nil
}

func (_u *DocumentErrorUpdateOne) sqlSave(ctx context.Context) (_node *DocumentError, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documenterror.Table, documenterror.Columns, sqlgraph.NewFieldSpec(documenterror.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DocumentError.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, documenterror.FieldID)
		for _, f := range fields {
			if !documenterror.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != documenterror.FieldID {
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
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(documenterror.FieldErrorCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(documenterror.FieldSeverity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(documenterror.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DocumentError{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documenterror.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
