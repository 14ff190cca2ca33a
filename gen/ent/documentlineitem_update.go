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
	"github.com/formshred/formshred/gen/ent/documentlineitem"
	"github.com/formshred/formshred/gen/ent/predicate"
	"github.com/google/uuid"
)

// DocumentLineItemUpdate is the builder for updating DocumentLineItem entities.
type DocumentLineItemUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentLineItemMutation
}

// Where appends a list predicates to the DocumentLineItemUpdate builder.
func (_u *DocumentLineItemUpdate) Where(ps ...predicate.DocumentLineItem) *DocumentLineItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *DocumentLineItemUpdate) SetDocumentID(v uuid.UUID) *DocumentLineItemUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *DocumentLineItemUpdate) SetNillableDocumentID(v *uuid.UUID) *DocumentLineItemUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetLineNumber sets the "line_number" field.
func (_u *DocumentLineItemUpdate) SetLineNumber(v string) *DocumentLineItemUpdate {
	_u.mutation.SetLineNumber(v)
	return _u
}

// SetNillableLineNumber sets the "line_number" field if the given value is not nil.
func (_u *DocumentLineItemUpdate) SetNillableLineNumber(v *string) *DocumentLineItemUpdate {
	if v != nil {
		_u.SetLineNumber(*v)
	}
	return _u
}

// SetItemDescription sets the "item_description" field.
func (_u *DocumentLineItemUpdate) SetItemDescription(v string) *DocumentLineItemUpdate {
	_u.mutation.SetItemDescription(v)
	return _u
}

// SetNillableItemDescription sets the "item_description" field if the given value is not nil.
func (_u *DocumentLineItemUpdate) SetNillableItemDescription(v *string) *DocumentLineItemUpdate {
	if v != nil {
		_u.SetItemDescription(*v)
	}
	return _u
}

// ClearItemDescription clears the value of the "item_description" field.
func (_u *DocumentLineItemUpdate) ClearItemDescription() *DocumentLineItemUpdate {
	_u.mutation.ClearItemDescription()
	return _u
}

// SetLineQuantity sets the "line_quantity" field.
func (_u *DocumentLineItemUpdate) SetLineQuantity(v string) *DocumentLineItemUpdate {
	_u.mutation.SetLineQuantity(v)
	return _u
}

// SetNillableLineQuantity sets the "line_quantity" field if the given value is not nil.
func (_u *DocumentLineItemUpdate) SetNillableLineQuantity(v *string) *DocumentLineItemUpdate {
	if v != nil {
		_u.SetLineQuantity(*v)
	}
	return _u
}

// ClearLineQuantity clears the value of the "line_quantity" field.
func (_u *DocumentLineItemUpdate) ClearLineQuantity() *DocumentLineItemUpdate {
	_u.mutation.ClearLineQuantity()
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *DocumentLineItemUpdate) SetUnitPrice(v float64) *DocumentLineItemUpdate {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *DocumentLineItemUpdate) SetNillableUnitPrice(v *float64) *DocumentLineItemUpdate {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *DocumentLineItemUpdate) AddUnitPrice(v float64) *DocumentLineItemUpdate {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// ClearUnitPrice clears the value of the "unit_price" field.
func (_u *DocumentLineItemUpdate) ClearUnitPrice() *DocumentLineItemUpdate {
	_u.mutation.ClearUnitPrice()
	return _u
}

// SetNetAmount sets the "net_amount" field.
func (_u *DocumentLineItemUpdate) SetNetAmount(v float64) *DocumentLineItemUpdate {
	_u.mutation.ResetNetAmount()
	_u.mutation.SetNetAmount(v)
	return _u
}

// SetNillableNetAmount sets the "net_amount" field if the given value is not nil.
func (_u *DocumentLineItemUpdate) SetNillableNetAmount(v *float64) *DocumentLineItemUpdate {
	if v != nil {
		_u.SetNetAmount(*v)
	}
	return _u
}

// AddNetAmount adds value to the "net_amount" field.
func (_u *DocumentLineItemUpdate) AddNetAmount(v float64) *DocumentLineItemUpdate {
	_u.mutation.AddNetAmount(v)
	return _u
}

// ClearNetAmount clears the value of the "net_amount" field.
func (_u *DocumentLineItemUpdate) ClearNetAmount() *DocumentLineItemUpdate {
	_u.mutation.ClearNetAmount()
	return _u
}

// SetCalculatedQuantity sets the "calculated_quantity" field.
func (_u *DocumentLineItemUpdate) SetCalculatedQuantity(v float64) *DocumentLineItemUpdate {
	_u.mutation.ResetCalculatedQuantity()
	_u.mutation.SetCalculatedQuantity(v)
	return _u
}

// SetNillableCalculatedQuantity sets the "calculated_quantity" field if the given value is not nil.
func (_u *DocumentLineItemUpdate) SetNillableCalculatedQuantity(v *float64) *DocumentLineItemUpdate {
	if v != nil {
		_u.SetCalculatedQuantity(*v)
	}
	return _u
}

// AddCalculatedQuantity adds value to the "calculated_quantity" field.
func (_u *DocumentLineItemUpdate) AddCalculatedQuantity(v float64) *DocumentLineItemUpdate {
	_u.mutation.AddCalculatedQuantity(v)
	return _u
}

// ClearCalculatedQuantity clears the value of the "calculated_quantity" field.
func (_u *DocumentLineItemUpdate) ClearCalculatedQuantity() *DocumentLineItemUpdate {
	_u.mutation.ClearCalculatedQuantity()
	return _u
}

// SetVatCode sets the "vat_code" field.
func (_u *DocumentLineItemUpdate) SetVatCode(v string) *DocumentLineItemUpdate {
	_u.mutation.SetVatCode(v)
	return _u
}

// SetNillableVatCode sets the "vat_code" field if the given value is not nil.
func (_u *DocumentLineItemUpdate) SetNillableVatCode(v *string) *DocumentLineItemUpdate {
	if v != nil {
		_u.SetVatCode(*v)
	}
	return _u
}

// ClearVatCode clears the value of the "vat_code" field.
func (_u *DocumentLineItemUpdate) ClearVatCode() *DocumentLineItemUpdate {
	_u.mutation.ClearVatCode()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *DocumentLineItemUpdate) SetDocument(v *Document) *DocumentLineItemUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the DocumentLineItemMutation object of the builder.
func (_u *DocumentLineItemUpdate) Mutation() *DocumentLineItemMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *DocumentLineItemUpdate) ClearDocument() *DocumentLineItemUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentLineItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentLineItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentLineItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentLineItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentLineItemUpdate) check() error {
	if v, ok := _u.mutation.LineNumber(); ok {
		if err := documentlineitem.LineNumberValidator(v); err != nil {
			return &ValidationError{Name: "line_number", err: fmt.Errorf(`ent: validator failed for field "DocumentLineItem.line_number": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DocumentLineItem.document"`)
	}
	return nil
}

func (_u *DocumentLineItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documentlineitem.Table, documentlineitem.Columns, sqlgraph.NewFieldSpec(documentlineitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LineNumber(); ok {
		_spec.SetField(documentlineitem.FieldLineNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemDescription(); ok {
		_spec.SetField(documentlineitem.FieldItemDescription, field.TypeString, value)
	}
	if _u.mutation.ItemDescriptionCleared() {
		_spec.ClearField(documentlineitem.FieldItemDescription, field.TypeString)
	}
	if value, ok := _u.mutation.LineQuantity(); ok {
		_spec.SetField(documentlineitem.FieldLineQuantity, field.TypeString, value)
	}
	if _u.mutation.LineQuantityCleared() {
		_spec.ClearField(documentlineitem.FieldLineQuantity, field.TypeString)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(documentlineitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(documentlineitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if _u.mutation.UnitPriceCleared() {
		_spec.ClearField(documentlineitem.FieldUnitPrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NetAmount(); ok {
		_spec.SetField(documentlineitem.FieldNetAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNetAmount(); ok {
		_spec.AddField(documentlineitem.FieldNetAmount, field.TypeFloat64, value)
	}
	if _u.mutation.NetAmountCleared() {
		_spec.ClearField(documentlineitem.FieldNetAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CalculatedQuantity(); ok {
		_spec.SetField(documentlineitem.FieldCalculatedQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCalculatedQuantity(); ok {
		_spec.AddField(documentlineitem.FieldCalculatedQuantity, field.TypeFloat64, value)
	}
	if _u.mutation.CalculatedQuantityCleared() {
		_spec.ClearField(documentlineitem.FieldCalculatedQuantity, field.TypeFloat64)
	}
	if value, ok := _u.mutation.VatCode(); ok {
		_spec.SetField(documentlineitem.FieldVatCode, field.TypeString, value)
	}
	if _u.mutation.VatCodeCleared() {
		_spec.ClearField(documentlineitem.FieldVatCode, field.TypeString)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentlineitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentLineItemUpdateOne is the builder for updating a single DocumentLineItem entity.
type DocumentLineItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentLineItemMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *DocumentLineItemUpdateOne) SetDocumentID(v uuid.UUID) *DocumentLineItemUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *DocumentLineItemUpdateOne) SetNillableDocumentID(v *uuid.UUID) *DocumentLineItemUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetLineNumber sets the "line_number" field.
func (_u *DocumentLineItemUpdateOne) SetLineNumber(v string) *DocumentLineItemUpdateOne {
	_u.mutation.SetLineNumber(v)
	return _u
}

// SetNillableLineNumber sets the "line_number" field if the given value is not nil.
func (_u *DocumentLineItemUpdateOne) SetNillableLineNumber(v *string) *DocumentLineItemUpdateOne {
	if v != nil {
		_u.SetLineNumber(*v)
	}
	return _u
}

// SetItemDescription sets the "item_description" field.
func (_u *DocumentLineItemUpdateOne) SetItemDescription(v string) *DocumentLineItemUpdateOne {
	_u.mutation.SetItemDescription(v)
	return _u
}

// SetNillableItemDescription sets the "item_description" field if the given value is not nil.
func (_u *DocumentLineItemUpdateOne) SetNillableItemDescription(v *string) *DocumentLineItemUpdateOne {
	if v != nil {
		_u.SetItemDescription(*v)
	}
	return _u
}

// ClearItemDescription clears the value of the "item_description" field.
func (_u *DocumentLineItemUpdateOne) ClearItemDescription() *DocumentLineItemUpdateOne {
	_u.mutation.ClearItemDescription()
	return _u
}

// SetLineQuantity sets the "line_quantity" field.
func (_u *DocumentLineItemUpdateOne) SetLineQuantity(v string) *DocumentLineItemUpdateOne {
	_u.mutation.SetLineQuantity(v)
	return _u
}

// SetNillableLineQuantity sets the "line_quantity" field if the given value is not nil.
func (_u *DocumentLineItemUpdateOne) SetNillableLineQuantity(v *string) *DocumentLineItemUpdateOne {
	if v != nil {
		_u.SetLineQuantity(*v)
	}
	return _u
}

// ClearLineQuantity clears the value of the "line_quantity" field.
func (_u *DocumentLineItemUpdateOne) ClearLineQuantity() *DocumentLineItemUpdateOne {
	_u.mutation.ClearLineQuantity()
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *DocumentLineItemUpdateOne) SetUnitPrice(v float64) *DocumentLineItemUpdateOne {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *DocumentLineItemUpdateOne) SetNillableUnitPrice(v *float64) *DocumentLineItemUpdateOne {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *DocumentLineItemUpdateOne) AddUnitPrice(v float64) *DocumentLineItemUpdateOne {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// ClearUnitPrice clears the value of the "unit_price" field.
func (_u *DocumentLineItemUpdateOne) ClearUnitPrice() *DocumentLineItemUpdateOne {
	_u.mutation.ClearUnitPrice()
	return _u
}

// SetNetAmount sets the "net_amount" field.
func (_u *DocumentLineItemUpdateOne) SetNetAmount(v float64) *DocumentLineItemUpdateOne {
	_u.mutation.ResetNetAmount()
	_u.mutation.SetNetAmount(v)
	return _u
}

// SetNillableNetAmount sets the "net_amount" field if the given value is not nil.
func (_u *DocumentLineItemUpdateOne) SetNillableNetAmount(v *float64) *DocumentLineItemUpdateOne {
	if v != nil {
		_u.SetNetAmount(*v)
	}
	return _u
}

// AddNetAmount adds value to the "net_amount" field.
func (_u *DocumentLineItemUpdateOne) AddNetAmount(v float64) *DocumentLineItemUpdateOne {
	_u.mutation.AddNetAmount(v)
	return _u
}

// ClearNetAmount clears the value of the "net_amount" field.
func (_u *DocumentLineItemUpdateOne) ClearNetAmount() *DocumentLineItemUpdateOne {
	_u.mutation.ClearNetAmount()
	return _u
}

// SetCalculatedQuantity sets the "calculated_quantity" field.
func (_u *DocumentLineItemUpdateOne) SetCalculatedQuantity(v float64) *DocumentLineItemUpdateOne {
	_u.mutation.ResetCalculatedQuantity()
	_u.mutation.SetCalculatedQuantity(v)
	return _u
}

// SetNillableCalculatedQuantity sets the "calculated_quantity" field if the given value is not nil.
func (_u *DocumentLineItemUpdateOne) SetNillableCalculatedQuantity(v *float64) *DocumentLineItemUpdateOne {
	if v != nil {
		_u.SetCalculatedQuantity(*v)
	}
	return _u
}

// AddCalculatedQuantity adds value to the "calculated_quantity" field.
func (_u *DocumentLineItemUpdateOne) AddCalculatedQuantity(v float64) *DocumentLineItemUpdateOne {
	_u.mutation.AddCalculatedQuantity(v)
	return _u
}

// ClearCalculatedQuantity clears the value of the "calculated_quantity" field.
func (_u *DocumentLineItemUpdateOne) ClearCalculatedQuantity() *DocumentLineItemUpdateOne {
	_u.mutation.ClearCalculatedQuantity()
	return _u
}

// SetVatCode sets the "vat_code" field.
func (_u *DocumentLineItemUpdateOne) SetVatCode(v string) *DocumentLineItemUpdateOne {
	_u.mutation.SetVatCode(v)
	return _u
}

// SetNillableVatCode sets the "vat_code" field if the given value is not nil.
func (_u *DocumentLineItemUpdateOne) SetNillableVatCode(v *string) *DocumentLineItemUpdateOne {
	if v != nil {
		_u.SetVatCode(*v)
	}
	return _u
}

// ClearVatCode clears the value of the "vat_code" field.
func (_u *DocumentLineItemUpdateOne) ClearVatCode() *DocumentLineItemUpdateOne {
	_u.mutation.ClearVatCode()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *DocumentLineItemUpdateOne) SetDocument(v *Document) *DocumentLineItemUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the DocumentLineItemMutation object of the builder.
func (_u *DocumentLineItemUpdateOne) Mutation() *DocumentLineItemMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *DocumentLineItemUpdateOne) ClearDocument() *DocumentLineItemUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the DocumentLineItemUpdate builder.
func (_u *DocumentLineItemUpdateOne) Where(ps ...predicate.DocumentLineItem) *DocumentLineItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentLineItemUpdateOne) Select(field string, fields ...string) *DocumentLineItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DocumentLineItem entity.
func (_u *DocumentLineItemUpdateOne) Save(ctx context.Context) (*DocumentLineItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentLineItemUpdateOne) SaveX(ctx context.Context) *DocumentLineItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentLineItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentLineItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentLineItemUpdateOne) check() error {
	if v, ok := _u.mutation.LineNumber(); ok {
		if err := documentlineitem.LineNumberValidator(v); err != nil {
			return &ValidationError{Name: "line_number", err: fmt.Errorf(`ent: validator failed for field "DocumentLineItem.line_number": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DocumentLineItem.document"`)
	}
	return nil
}

func (_u *DocumentLineItemUpdateOne) sqlSave(ctx context.Context) (_node *DocumentLineItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documentlineitem.Table, documentlineitem.Columns, sqlgraph.NewFieldSpec(documentlineitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DocumentLineItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, documentlineitem.FieldID)
		for _, f := range fields {
			if !documentlineitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != documentlineitem.FieldID {
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
	if value, ok := _u.mutation.LineNumber(); ok {
		_spec.SetField(documentlineitem.FieldLineNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemDescription(); ok {
		_spec.SetField(documentlineitem.FieldItemDescription, field.TypeString, value)
	}
	if _u.mutation.ItemDescriptionCleared() {
		_spec.ClearField(documentlineitem.FieldItemDescription, field.TypeString)
	}
	if value, ok := _u.mutation.LineQuantity(); ok {
		_spec.SetField(documentlineitem.FieldLineQuantity, field.TypeString, value)
	}
	if _u.mutation.LineQuantityCleared() {
		_spec.ClearField(documentlineitem.FieldLineQuantity, field.TypeString)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(documentlineitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(documentlineitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if _u.mutation.UnitPriceCleared() {
		_spec.ClearField(documentlineitem.FieldUnitPrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NetAmount(); ok {
		_spec.SetField(documentlineitem.FieldNetAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNetAmount(); ok {
		_spec.AddField(documentlineitem.FieldNetAmount, field.TypeFloat64, value)
	}
	if _u.mutation.NetAmountCleared() {
		_spec.ClearField(documentlineitem.FieldNetAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CalculatedQuantity(); ok {
		_spec.SetField(documentlineitem.FieldCalculatedQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCalculatedQuantity(); ok {
		_spec.AddField(documentlineitem.FieldCalculatedQuantity, field.TypeFloat64, value)
	}
	if _u.mutation.CalculatedQuantityCleared() {
		_spec.ClearField(documentlineitem.FieldCalculatedQuantity, field.TypeFloat64)
	}
	if value, ok := _u.mutation.VatCode(); ok {
		_spec.SetField(documentlineitem.FieldVatCode, field.TypeString, value)
	}
	if _u.mutation.VatCodeCleared() {
		_spec.ClearField(documentlineitem.FieldVatCode, field.TypeString)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DocumentLineItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentlineitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
