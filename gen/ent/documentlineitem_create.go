// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/formshred/formshred/gen/ent/document"
	"github.com/formshred/formshred/gen/ent/documentlineitem"
	"github.com/google/uuid"
)

// DocumentLineItemCreate is the builder for creating a DocumentLineItem entity.
type DocumentLineItemCreate struct {
	config
	mutation *DocumentLineItemMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *DocumentLineItemCreate) SetDocumentID(v uuid.UUID) *DocumentLineItemCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetLineNumber sets the "line_number" field.
func (_c *DocumentLineItemCreate) SetLineNumber(v string) *DocumentLineItemCreate {
	_c.mutation.SetLineNumber(v)
	return _c
}

// SetItemDescription sets the "item_description" field.
func (_c *DocumentLineItemCreate) SetItemDescription(v string) *DocumentLineItemCreate {
	_c.mutation.SetItemDescription(v)
	return _c
}

// SetNillableItemDescription sets the "item_description" field if the given value is not nil.
func (_c *DocumentLineItemCreate) SetNillableItemDescription(v *string) *DocumentLineItemCreate {
	if v != nil {
		_c.SetItemDescription(*v)
	}
	return _c
}

// SetLineQuantity sets the "line_quantity" field.
func (_c *DocumentLineItemCreate) SetLineQuantity(v string) *DocumentLineItemCreate {
	_c.mutation.SetLineQuantity(v)
	return _c
}

// SetNillableLineQuantity sets the "line_quantity" field if the given value is not nil.
func (_c *DocumentLineItemCreate) SetNillableLineQuantity(v *string) *DocumentLineItemCreate {
	if v != nil {
		_c.SetLineQuantity(*v)
	}
	return _c
}

// SetUnitPrice sets the "unit_price" field.
func (_c *DocumentLineItemCreate) SetUnitPrice(v float64) *DocumentLineItemCreate {
	_c.mutation.SetUnitPrice(v)
	return _c
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_c *DocumentLineItemCreate) SetNillableUnitPrice(v *float64) *DocumentLineItemCreate {
	if v != nil {
		_c.SetUnitPrice(*v)
	}
	return _c
}

// SetNetAmount sets the "net_amount" field.
func (_c *DocumentLineItemCreate) SetNetAmount(v float64) *DocumentLineItemCreate {
	_c.mutation.SetNetAmount(v)
	return _c
}

// SetNillableNetAmount sets the "net_amount" field if the given value is not nil.
func (_c *DocumentLineItemCreate) SetNillableNetAmount(v *float64) *DocumentLineItemCreate {
	if v != nil {
		_c.SetNetAmount(*v)
	}
	return _c
}

// SetCalculatedQuantity sets the "calculated_quantity" field.
func (_c *DocumentLineItemCreate) SetCalculatedQuantity(v float64) *DocumentLineItemCreate {
	_c.mutation.SetCalculatedQuantity(v)
	return _c
}

// SetNillableCalculatedQuantity sets the "calculated_quantity" field if the given value is not nil.
func (_c *DocumentLineItemCreate) SetNillableCalculatedQuantity(v *float64) *DocumentLineItemCreate {
	if v != nil {
		_c.SetCalculatedQuantity(*v)
	}
	return _c
}

// SetVatCode sets the "vat_code" field.
func (_c *DocumentLineItemCreate) SetVatCode(v string) *DocumentLineItemCreate {
	_c.mutation.SetVatCode(v)
	return _c
}

// SetNillableVatCode sets the "vat_code" field if the given value is not nil.
func (_c *DocumentLineItemCreate) SetNillableVatCode(v *string) *DocumentLineItemCreate {
	if v != nil {
		_c.SetVatCode(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DocumentLineItemCreate) SetID(v uuid.UUID) *DocumentLineItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DocumentLineItemCreate) SetNillableID(v *uuid.UUID) *DocumentLineItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *DocumentLineItemCreate) SetDocument(v *Document) *DocumentLineItemCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the DocumentLineItemMutation object of the builder.
func (_c *DocumentLineItemCreate) Mutation() *DocumentLineItemMutation {
	return _c.mutation
}

// Save creates the DocumentLineItem in the database.
func (_c *DocumentLineItemCreate) Save(ctx context.Context) (*DocumentLineItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentLineItemCreate) SaveX(ctx context.Context) *DocumentLineItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentLineItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentLineItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentLineItemCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := documentlineitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentLineItemCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "DocumentLineItem.document_id"`)}
	}
	if _, ok := _c.mutation.LineNumber(); !ok {
		return &ValidationError{Name: "line_number", err: errors.New(`ent: missing required field "DocumentLineItem.line_number"`)}
	}
	if v, ok := _c.mutation.LineNumber(); ok {
		if err := documentlineitem.LineNumberValidator(v); err != nil {
			return &ValidationError{Name: "line_number", err: fmt.Errorf(`ent: validator failed for field "DocumentLineItem.line_number": %w`, err)}
		}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "DocumentLineItem.document"`)}
	}
	return nil
}

func (_c *DocumentLineItemCreate) sqlSave(ctx context.Context) (*DocumentLineItem, error) {
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

func (_c *DocumentLineItemCreate) createSpec() (*DocumentLineItem, *sqlgraph.CreateSpec) {
	var (
		_node = &DocumentLineItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(documentlineitem.Table, sqlgraph.NewFieldSpec(documentlineitem.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.LineNumber(); ok {
		_spec.SetField(documentlineitem.FieldLineNumber, field.TypeString, value)
		_node.LineNumber = value
	}
	if value, ok := _c.mutation.ItemDescription(); ok {
		_spec.SetField(documentlineitem.FieldItemDescription, field.TypeString, value)
		_node.ItemDescription = &value
	}
	if value, ok := _c.mutation.LineQuantity(); ok {
		_spec.SetField(documentlineitem.FieldLineQuantity, field.TypeString, value)
		_node.LineQuantity = &value
	}
	if value, ok := _c.mutation.UnitPrice(); ok {
		_spec.SetField(documentlineitem.FieldUnitPrice, field.TypeFloat64, value)
		_node.UnitPrice = &value
	}
	if value, ok := _c.mutation.NetAmount(); ok {
		_spec.SetField(documentlineitem.FieldNetAmount, field.TypeFloat64, value)
		_node.NetAmount = &value
	}
	if value, ok := _c.mutation.CalculatedQuantity(); ok {
		_spec.SetField(documentlineitem.FieldCalculatedQuantity, field.TypeFloat64, value)
		_node.CalculatedQuantity = &value
	}
	if value, ok := _c.mutation.VatCode(); ok {
		_spec.SetField(documentlineitem.FieldVatCode, field.TypeString, value)
		_node.VatCode = &value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   documentlineitem.DocumentTable,
			Columns: []string{documentlineitem.DocumentColumn},
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

// DocumentLineItemCreateBulk is the builder for creating many DocumentLineItem entities in bulk.
type DocumentLineItemCreateBulk struct {
	config
	err      error
	builders []*DocumentLineItemCreate
}

// Save creates the DocumentLineItem entities in the database.
func (_c *DocumentLineItemCreateBulk) Save(ctx context.Context) ([]*DocumentLineItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DocumentLineItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentLineItemMutation)
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
func (_c *DocumentLineItemCreateBulk) SaveX(ctx context.Context) []*DocumentLineItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentLineItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentLineItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
