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
	"github.com/formshred/formshred/gen/ent/document"
	"github.com/formshred/formshred/gen/ent/documenterror"
	"github.com/formshred/formshred/gen/ent/documentlineitem"
	"github.com/google/uuid"
)

// DocumentCreate is the builder for creating a Document entity.
type DocumentCreate struct {
	config
	mutation *DocumentMutation
	hooks    []Hook
}

// SetFileName sets the "file_name" field.
func (_c *DocumentCreate) SetFileName(v string) *DocumentCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetDocumentFormat sets the "document_format" field.
func (_c *DocumentCreate) SetDocumentFormat(v string) *DocumentCreate {
	_c.mutation.SetDocumentFormat(v)
	return _c
}

// SetNillableDocumentFormat sets the "document_format" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableDocumentFormat(v *string) *DocumentCreate {
	if v != nil {
		_c.SetDocumentFormat(*v)
	}
	return _c
}

// SetRecognizerStatus sets the "recognizer_status" field.
func (_c *DocumentCreate) SetRecognizerStatus(v string) *DocumentCreate {
	_c.mutation.SetRecognizerStatus(v)
	return _c
}

// SetNillableRecognizerStatus sets the "recognizer_status" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableRecognizerStatus(v *string) *DocumentCreate {
	if v != nil {
		_c.SetRecognizerStatus(*v)
	}
	return _c
}

// SetRecognizerErrors sets the "recognizer_errors" field.
func (_c *DocumentCreate) SetRecognizerErrors(v json.RawMessage) *DocumentCreate {
	_c.mutation.SetRecognizerErrors(v)
	return _c
}

// SetPoNumber sets the "po_number" field.
func (_c *DocumentCreate) SetPoNumber(v string) *DocumentCreate {
	_c.mutation.SetPoNumber(v)
	return _c
}

// SetNillablePoNumber sets the "po_number" field if the given value is not nil.
func (_c *DocumentCreate) SetNillablePoNumber(v *string) *DocumentCreate {
	if v != nil {
		_c.SetPoNumber(*v)
	}
	return _c
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_c *DocumentCreate) SetInvoiceNumber(v string) *DocumentCreate {
	_c.mutation.SetInvoiceNumber(v)
	return _c
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableInvoiceNumber(v *string) *DocumentCreate {
	if v != nil {
		_c.SetInvoiceNumber(*v)
	}
	return _c
}

// SetAccountNumber sets the "account_number" field.
func (_c *DocumentCreate) SetAccountNumber(v string) *DocumentCreate {
	_c.mutation.SetAccountNumber(v)
	return _c
}

// SetNillableAccountNumber sets the "account_number" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableAccountNumber(v *string) *DocumentCreate {
	if v != nil {
		_c.SetAccountNumber(*v)
	}
	return _c
}

// SetOrderDate sets the "order_date" field.
func (_c *DocumentCreate) SetOrderDate(v time.Time) *DocumentCreate {
	_c.mutation.SetOrderDate(v)
	return _c
}

// SetNillableOrderDate sets the "order_date" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableOrderDate(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetOrderDate(*v)
	}
	return _c
}

// SetTaxDate sets the "tax_date" field.
func (_c *DocumentCreate) SetTaxDate(v time.Time) *DocumentCreate {
	_c.mutation.SetTaxDate(v)
	return _c
}

// SetNillableTaxDate sets the "tax_date" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableTaxDate(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetTaxDate(*v)
	}
	return _c
}

// SetTaxPeriod sets the "tax_period" field.
func (_c *DocumentCreate) SetTaxPeriod(v string) *DocumentCreate {
	_c.mutation.SetTaxPeriod(v)
	return _c
}

// SetNillableTaxPeriod sets the "tax_period" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableTaxPeriod(v *string) *DocumentCreate {
	if v != nil {
		_c.SetTaxPeriod(*v)
	}
	return _c
}

// SetNetTotal sets the "net_total" field.
func (_c *DocumentCreate) SetNetTotal(v float64) *DocumentCreate {
	_c.mutation.SetNetTotal(v)
	return _c
}

// SetNillableNetTotal sets the "net_total" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableNetTotal(v *float64) *DocumentCreate {
	if v != nil {
		_c.SetNetTotal(*v)
	}
	return _c
}

// SetVatTotal sets the "vat_total" field.
func (_c *DocumentCreate) SetVatTotal(v float64) *DocumentCreate {
	_c.mutation.SetVatTotal(v)
	return _c
}

// SetNillableVatTotal sets the "vat_total" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableVatTotal(v *float64) *DocumentCreate {
	if v != nil {
		_c.SetVatTotal(*v)
	}
	return _c
}

// SetGrossTotal sets the "gross_total" field.
func (_c *DocumentCreate) SetGrossTotal(v float64) *DocumentCreate {
	_c.mutation.SetGrossTotal(v)
	return _c
}

// SetNillableGrossTotal sets the "gross_total" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableGrossTotal(v *float64) *DocumentCreate {
	if v != nil {
		_c.SetGrossTotal(*v)
	}
	return _c
}

// SetDeliveryPostCode sets the "delivery_post_code" field.
func (_c *DocumentCreate) SetDeliveryPostCode(v string) *DocumentCreate {
	_c.mutation.SetDeliveryPostCode(v)
	return _c
}

// SetNillableDeliveryPostCode sets the "delivery_post_code" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableDeliveryPostCode(v *string) *DocumentCreate {
	if v != nil {
		_c.SetDeliveryPostCode(*v)
	}
	return _c
}

// SetUniqueRunIdentifier sets the "unique_run_identifier" field.
func (_c *DocumentCreate) SetUniqueRunIdentifier(v string) *DocumentCreate {
	_c.mutation.SetUniqueRunIdentifier(v)
	return _c
}

// SetThumbprint sets the "thumbprint" field.
func (_c *DocumentCreate) SetThumbprint(v string) *DocumentCreate {
	_c.mutation.SetThumbprint(v)
	return _c
}

// SetNillableThumbprint sets the "thumbprint" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableThumbprint(v *string) *DocumentCreate {
	if v != nil {
		_c.SetThumbprint(*v)
	}
	return _c
}

// SetModelID sets the "model_id" field.
func (_c *DocumentCreate) SetModelID(v string) *DocumentCreate {
	_c.mutation.SetModelID(v)
	return _c
}

// SetNillableModelID sets the "model_id" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableModelID(v *string) *DocumentCreate {
	if v != nil {
		_c.SetModelID(*v)
	}
	return _c
}

// SetModelVersion sets the "model_version" field.
func (_c *DocumentCreate) SetModelVersion(v string) *DocumentCreate {
	_c.mutation.SetModelVersion(v)
	return _c
}

// SetNillableModelVersion sets the "model_version" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableModelVersion(v *string) *DocumentCreate {
	if v != nil {
		_c.SetModelVersion(*v)
	}
	return _c
}

// SetIsValid sets the "is_valid" field.
func (_c *DocumentCreate) SetIsValid(v bool) *DocumentCreate {
	_c.mutation.SetIsValid(v)
	return _c
}

// SetNillableIsValid sets the "is_valid" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableIsValid(v *bool) *DocumentCreate {
	if v != nil {
		_c.SetIsValid(*v)
	}
	return _c
}

// SetTerminalErrorCount sets the "terminal_error_count" field.
func (_c *DocumentCreate) SetTerminalErrorCount(v int) *DocumentCreate {
	_c.mutation.SetTerminalErrorCount(v)
	return _c
}

// SetNillableTerminalErrorCount sets the "terminal_error_count" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableTerminalErrorCount(v *int) *DocumentCreate {
	if v != nil {
		_c.SetTerminalErrorCount(*v)
	}
	return _c
}

// SetWarningErrorCount sets the "warning_error_count" field.
func (_c *DocumentCreate) SetWarningErrorCount(v int) *DocumentCreate {
	_c.mutation.SetWarningErrorCount(v)
	return _c
}

// SetNillableWarningErrorCount sets the "warning_error_count" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableWarningErrorCount(v *int) *DocumentCreate {
	if v != nil {
		_c.SetWarningErrorCount(*v)
	}
	return _c
}

// SetShreddingUtcTime sets the "shredding_utc_time" field.
func (_c *DocumentCreate) SetShreddingUtcTime(v time.Time) *DocumentCreate {
	_c.mutation.SetShreddingUtcTime(v)
	return _c
}

// SetNillableShreddingUtcTime sets the "shredding_utc_time" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableShreddingUtcTime(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetShreddingUtcTime(*v)
	}
	return _c
}

// SetTimeToShredMs sets the "time_to_shred_ms" field.
func (_c *DocumentCreate) SetTimeToShredMs(v int64) *DocumentCreate {
	_c.mutation.SetTimeToShredMs(v)
	return _c
}

// SetNillableTimeToShredMs sets the "time_to_shred_ms" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableTimeToShredMs(v *int64) *DocumentCreate {
	if v != nil {
		_c.SetTimeToShredMs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DocumentCreate) SetCreatedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableCreatedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DocumentCreate) SetUpdatedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableUpdatedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DocumentCreate) SetID(v uuid.UUID) *DocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableID(v *uuid.UUID) *DocumentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddLineItemIDs adds the "line_items" edge to the DocumentLineItem entity by IDs.
func (_c *DocumentCreate) AddLineItemIDs(ids ...uuid.UUID) *DocumentCreate {
	_c.mutation.AddLineItemIDs(ids...)
	return _c
}

// AddLineItems adds the "line_items" edges to the DocumentLineItem entity.
func (_c *DocumentCreate) AddLineItems(v ...*DocumentLineItem) *DocumentCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLineItemIDs(ids...)
}

// AddShreddingErrorIDs adds the "shredding_errors" edge to the DocumentError entity by IDs.
func (_c *DocumentCreate) AddShreddingErrorIDs(ids ...uuid.UUID) *DocumentCreate {
	_c.mutation.AddShreddingErrorIDs(ids...)
	return _c
}

// AddShreddingErrors adds the "shredding_errors" edges to the DocumentError entity.
func (_c *DocumentCreate) AddShreddingErrors(v ...*DocumentError) *DocumentCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddShreddingErrorIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_c *DocumentCreate) Mutation() *DocumentMutation {
	return _c.mutation
}

// Save creates the Document in the database.
func (_c *DocumentCreate) Save(ctx context.Context) (*Document, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentCreate) SaveX(ctx context.Context) *Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentCreate) defaults() {
	if _, ok := _c.mutation.IsValid(); !ok {
		v := document.DefaultIsValid
		_c.mutation.SetIsValid(v)
	}
	if _, ok := _c.mutation.TerminalErrorCount(); !ok {
		v := document.DefaultTerminalErrorCount
		_c.mutation.SetTerminalErrorCount(v)
	}
	if _, ok := _c.mutation.WarningErrorCount(); !ok {
		v := document.DefaultWarningErrorCount
		_c.mutation.SetWarningErrorCount(v)
	}
	if _, ok := _c.mutation.ShreddingUtcTime(); !ok {
		v := document.DefaultShreddingUtcTime()
		_c.mutation.SetShreddingUtcTime(v)
	}
	if _, ok := _c.mutation.TimeToShredMs(); !ok {
		v := document.DefaultTimeToShredMs
		_c.mutation.SetTimeToShredMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := document.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := document.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := document.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentCreate) check() error {
	if _, ok := _c.mutation.FileName(); !ok {
		return &ValidationError{Name: "file_name", err: errors.New(`ent: missing required field "Document.file_name"`)}
	}
	if v, ok := _c.mutation.FileName(); ok {
		if err := document.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "Document.file_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UniqueRunIdentifier(); !ok {
		return &ValidationError{Name: "unique_run_identifier", err: errors.New(`ent: missing required field "Document.unique_run_identifier"`)}
	}
	if v, ok := _c.mutation.UniqueRunIdentifier(); ok {
		if err := document.UniqueRunIdentifierValidator(v); err != nil {
			return &ValidationError{Name: "unique_run_identifier", err: fmt.Errorf(`ent: validator failed for field "Document.unique_run_identifier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsValid(); !ok {
		return &ValidationError{Name: "is_valid", err: errors.New(`ent: missing required field "Document.is_valid"`)}
	}
	if _, ok := _c.mutation.TerminalErrorCount(); !ok {
		return &ValidationError{Name: "terminal_error_count", err: errors.New(`ent: missing required field "Document.terminal_error_count"`)}
	}
	if _, ok := _c.mutation.WarningErrorCount(); !ok {
		return &ValidationError{Name: "warning_error_count", err: errors.New(`ent: missing required field "Document.warning_error_count"`)}
	}
	if _, ok := _c.mutation.ShreddingUtcTime(); !ok {
		return &ValidationError{Name: "shredding_utc_time", err: errors.New(`ent: missing required field "Document.shredding_utc_time"`)}
	}
	if _, ok := _c.mutation.TimeToShredMs(); !ok {
		return &ValidationError{Name: "time_to_shred_ms", err: errors.New(`ent: missing required field "Document.time_to_shred_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Document.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Document.updated_at"`)}
	}
	return nil
}

func (_c *DocumentCreate) sqlSave(ctx context.Context) (*Document, error) {
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

func (_c *DocumentCreate) createSpec() (*Document, *sqlgraph.CreateSpec) {
	var (
		_node = &Document{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(document.Table, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(document.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := _c.mutation.DocumentFormat(); ok {
		_spec.SetField(document.FieldDocumentFormat, field.TypeString, value)
		_node.DocumentFormat = &value
	}
	if value, ok := _c.mutation.RecognizerStatus(); ok {
		_spec.SetField(document.FieldRecognizerStatus, field.TypeString, value)
		_node.RecognizerStatus = &value
	}
	if value, ok := _c.mutation.RecognizerErrors(); ok {
		_spec.SetField(document.FieldRecognizerErrors, field.TypeJSON, value)
		_node.RecognizerErrors = value
	}
	if value, ok := _c.mutation.PoNumber(); ok {
		_spec.SetField(document.FieldPoNumber, field.TypeString, value)
		_node.PoNumber = &value
	}
	if value, ok := _c.mutation.InvoiceNumber(); ok {
		_spec.SetField(document.FieldInvoiceNumber, field.TypeString, value)
		_node.InvoiceNumber = &value
	}
	if value, ok := _c.mutation.AccountNumber(); ok {
		_spec.SetField(document.FieldAccountNumber, field.TypeString, value)
		_node.AccountNumber = &value
	}
	if value, ok := _c.mutation.OrderDate(); ok {
		_spec.SetField(document.FieldOrderDate, field.TypeTime, value)
		_node.OrderDate = &value
	}
	if value, ok := _c.mutation.TaxDate(); ok {
		_spec.SetField(document.FieldTaxDate, field.TypeTime, value)
		_node.TaxDate = &value
	}
	if value, ok := _c.mutation.TaxPeriod(); ok {
		_spec.SetField(document.FieldTaxPeriod, field.TypeString, value)
		_node.TaxPeriod = &value
	}
	if value, ok := _c.mutation.NetTotal(); ok {
		_spec.SetField(document.FieldNetTotal, field.TypeFloat64, value)
		_node.NetTotal = &value
	}
	if value, ok := _c.mutation.VatTotal(); ok {
		_spec.SetField(document.FieldVatTotal, field.TypeFloat64, value)
		_node.VatTotal = &value
	}
	if value, ok := _c.mutation.GrossTotal(); ok {
		_spec.SetField(document.FieldGrossTotal, field.TypeFloat64, value)
		_node.GrossTotal = &value
	}
	if value, ok := _c.mutation.DeliveryPostCode(); ok {
		_spec.SetField(document.FieldDeliveryPostCode, field.TypeString, value)
		_node.DeliveryPostCode = &value
	}
	if value, ok := _c.mutation.UniqueRunIdentifier(); ok {
		_spec.SetField(document.FieldUniqueRunIdentifier, field.TypeString, value)
		_node.UniqueRunIdentifier = value
	}
	if value, ok := _c.mutation.Thumbprint(); ok {
		_spec.SetField(document.FieldThumbprint, field.TypeString, value)
		_node.Thumbprint = &value
	}
	if value, ok := _c.mutation.ModelID(); ok {
		_spec.SetField(document.FieldModelID, field.TypeString, value)
		_node.ModelID = &value
	}
	if value, ok := _c.mutation.ModelVersion(); ok {
		_spec.SetField(document.FieldModelVersion, field.TypeString, value)
		_node.ModelVersion = &value
	}
	if value, ok := _c.mutation.IsValid(); ok {
		_spec.SetField(document.FieldIsValid, field.TypeBool, value)
		_node.IsValid = value
	}
	if value, ok := _c.mutation.TerminalErrorCount(); ok {
		_spec.SetField(document.FieldTerminalErrorCount, field.TypeInt, value)
		_node.TerminalErrorCount = value
	}
	if value, ok := _c.mutation.WarningErrorCount(); ok {
		_spec.SetField(document.FieldWarningErrorCount, field.TypeInt, value)
		_node.WarningErrorCount = value
	}
	if value, ok := _c.mutation.ShreddingUtcTime(); ok {
		_spec.SetField(document.FieldShreddingUtcTime, field.TypeTime, value)
		_node.ShreddingUtcTime = value
	}
	if value, ok := _c.mutation.TimeToShredMs(); ok {
		_spec.SetField(document.FieldTimeToShredMs, field.TypeInt64, value)
		_node.TimeToShredMs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.LineItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.LineItemsTable,
			Columns: []string{document.LineItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentlineitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ShreddingErrorsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ShreddingErrorsTable,
			Columns: []string{document.ShreddingErrorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documenterror.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DocumentCreateBulk is the builder for creating many Document entities in bulk.
type DocumentCreateBulk struct {
	config
	err      error
	builders []*DocumentCreate
}

// Save creates the Document entities in the database.
func (_c *DocumentCreateBulk) Save(ctx context.Context) ([]*Document, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Document, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentMutation)
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
func (_c *DocumentCreateBulk) SaveX(ctx context.Context) []*Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
