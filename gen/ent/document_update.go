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
	"github.com/formshred/formshred/gen/ent/document"
	"github.com/formshred/formshred/gen/ent/documenterror"
	"github.com/formshred/formshred/gen/ent/documentlineitem"
	"github.com/formshred/formshred/gen/ent/predicate"
	"github.com/google/uuid"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *DocumentUpdate) SetFileName(v string) *DocumentUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFileName(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetDocumentFormat sets the "document_format" field.
func (_u *DocumentUpdate) SetDocumentFormat(v string) *DocumentUpdate {
	_u.mutation.SetDocumentFormat(v)
	return _u
}

// SetNillableDocumentFormat sets the "document_format" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableDocumentFormat(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetDocumentFormat(*v)
	}
	return _u
}

// ClearDocumentFormat clears the value of the "document_format" field.
func (_u *DocumentUpdate) ClearDocumentFormat() *DocumentUpdate {
	_u.mutation.ClearDocumentFormat()
	return _u
}

// SetRecognizerStatus sets the "recognizer_status" field.
func (_u *DocumentUpdate) SetRecognizerStatus(v string) *DocumentUpdate {
	_u.mutation.SetRecognizerStatus(v)
	return _u
}

// SetNillableRecognizerStatus sets the "recognizer_status" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableRecognizerStatus(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetRecognizerStatus(*v)
	}
	return _u
}

// ClearRecognizerStatus clears the value of the "recognizer_status" field.
func (_u *DocumentUpdate) ClearRecognizerStatus() *DocumentUpdate {
	_u.mutation.ClearRecognizerStatus()
	return _u
}

// SetRecognizerErrors sets the "recognizer_errors" field.
func (_u *DocumentUpdate) SetRecognizerErrors(v json.RawMessage) *DocumentUpdate {
	_u.mutation.SetRecognizerErrors(v)
	return _u
}

// AppendRecognizerErrors appends value to the "recognizer_errors" field.
func (_u *DocumentUpdate) AppendRecognizerErrors(v json.RawMessage) *DocumentUpdate {
	_u.mutation.AppendRecognizerErrors(v)
	return _u
}

// ClearRecognizerErrors clears the value of the "recognizer_errors" field.
func (_u *DocumentUpdate) ClearRecognizerErrors() *DocumentUpdate {
	_u.mutation.ClearRecognizerErrors()
	return _u
}

// SetPoNumber sets the "po_number" field.
func (_u *DocumentUpdate) SetPoNumber(v string) *DocumentUpdate {
	_u.mutation.SetPoNumber(v)
	return _u
}

// SetNillablePoNumber sets the "po_number" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillablePoNumber(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetPoNumber(*v)
	}
	return _u
}

// ClearPoNumber clears the value of the "po_number" field.
func (_u *DocumentUpdate) ClearPoNumber() *DocumentUpdate {
	_u.mutation.ClearPoNumber()
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *DocumentUpdate) SetInvoiceNumber(v string) *DocumentUpdate {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableInvoiceNumber(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (_u *DocumentUpdate) ClearInvoiceNumber() *DocumentUpdate {
	_u.mutation.ClearInvoiceNumber()
	return _u
}

// SetAccountNumber sets the "account_number" field.
func (_u *DocumentUpdate) SetAccountNumber(v string) *DocumentUpdate {
	_u.mutation.SetAccountNumber(v)
	return _u
}

// SetNillableAccountNumber sets the "account_number" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableAccountNumber(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetAccountNumber(*v)
	}
	return _u
}

// ClearAccountNumber clears the value of the "account_number" field.
func (_u *DocumentUpdate) ClearAccountNumber() *DocumentUpdate {
	_u.mutation.ClearAccountNumber()
	return _u
}

// SetOrderDate sets the "order_date" field.
func (_u *DocumentUpdate) SetOrderDate(v time.Time) *DocumentUpdate {
	_u.mutation.SetOrderDate(v)
	return _u
}

// SetNillableOrderDate sets the "order_date" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableOrderDate(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetOrderDate(*v)
	}
	return _u
}

// ClearOrderDate clears the value of the "order_date" field.
func (_u *DocumentUpdate) ClearOrderDate() *DocumentUpdate {
	_u.mutation.ClearOrderDate()
	return _u
}

// SetTaxDate sets the "tax_date" field.
func (_u *DocumentUpdate) SetTaxDate(v time.Time) *DocumentUpdate {
	_u.mutation.SetTaxDate(v)
	return _u
}

// SetNillableTaxDate sets the "tax_date" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableTaxDate(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetTaxDate(*v)
	}
	return _u
}

// ClearTaxDate clears the value of the "tax_date" field.
func (_u *DocumentUpdate) ClearTaxDate() *DocumentUpdate {
	_u.mutation.ClearTaxDate()
	return _u
}

// SetTaxPeriod sets the "tax_period" field.
func (_u *DocumentUpdate) SetTaxPeriod(v string) *DocumentUpdate {
	_u.mutation.SetTaxPeriod(v)
	return _u
}

// SetNillableTaxPeriod sets the "tax_period" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableTaxPeriod(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetTaxPeriod(*v)
	}
	return _u
}

// ClearTaxPeriod clears the value of the "tax_period" field.
func (_u *DocumentUpdate) ClearTaxPeriod() *DocumentUpdate {
	_u.mutation.ClearTaxPeriod()
	return _u
}

// SetNetTotal sets the "net_total" field.
func (_u *DocumentUpdate) SetNetTotal(v float64) *DocumentUpdate {
	_u.mutation.ResetNetTotal()
	_u.mutation.SetNetTotal(v)
	return _u
}

// SetNillableNetTotal sets the "net_total" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableNetTotal(v *float64) *DocumentUpdate {
	if v != nil {
		_u.SetNetTotal(*v)
	}
	return _u
}

// AddNetTotal adds value to the "net_total" field.
func (_u *DocumentUpdate) AddNetTotal(v float64) *DocumentUpdate {
	_u.mutation.AddNetTotal(v)
	return _u
}

// ClearNetTotal clears the value of the "net_total" field.
func (_u *DocumentUpdate) ClearNetTotal() *DocumentUpdate {
	_u.mutation.ClearNetTotal()
	return _u
}

// SetVatTotal sets the "vat_total" field.
func (_u *DocumentUpdate) SetVatTotal(v float64) *DocumentUpdate {
	_u.mutation.ResetVatTotal()
	_u.mutation.SetVatTotal(v)
	return _u
}

// SetNillableVatTotal sets the "vat_total" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableVatTotal(v *float64) *DocumentUpdate {
	if v != nil {
		_u.SetVatTotal(*v)
	}
	return _u
}

// AddVatTotal adds value to the "vat_total" field.
func (_u *DocumentUpdate) AddVatTotal(v float64) *DocumentUpdate {
	_u.mutation.AddVatTotal(v)
	return _u
}

// ClearVatTotal clears the value of the "vat_total" field.
func (_u *DocumentUpdate) ClearVatTotal() *DocumentUpdate {
	_u.mutation.ClearVatTotal()
	return _u
}

// SetGrossTotal sets the "gross_total" field.
func (_u *DocumentUpdate) SetGrossTotal(v float64) *DocumentUpdate {
	_u.mutation.ResetGrossTotal()
	_u.mutation.SetGrossTotal(v)
	return _u
}

// SetNillableGrossTotal sets the "gross_total" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableGrossTotal(v *float64) *DocumentUpdate {
	if v != nil {
		_u.SetGrossTotal(*v)
	}
	return _u
}

// AddGrossTotal adds value to the "gross_total" field.
func (_u *DocumentUpdate) AddGrossTotal(v float64) *DocumentUpdate {
	_u.mutation.AddGrossTotal(v)
	return _u
}

// ClearGrossTotal clears the value of the "gross_total" field.
func (_u *DocumentUpdate) ClearGrossTotal() *DocumentUpdate {
	_u.mutation.ClearGrossTotal()
	return _u
}

// SetDeliveryPostCode sets the "delivery_post_code" field.
func (_u *DocumentUpdate) SetDeliveryPostCode(v string) *DocumentUpdate {
	_u.mutation.SetDeliveryPostCode(v)
	return _u
}

// SetNillableDeliveryPostCode sets the "delivery_post_code" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableDeliveryPostCode(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetDeliveryPostCode(*v)
	}
	return _u
}

// ClearDeliveryPostCode clears the value of the "delivery_post_code" field.
func (_u *DocumentUpdate) ClearDeliveryPostCode() *DocumentUpdate {
	_u.mutation.ClearDeliveryPostCode()
	return _u
}

// SetUniqueRunIdentifier sets the "unique_run_identifier" field.
func (_u *DocumentUpdate) SetUniqueRunIdentifier(v string) *DocumentUpdate {
	_u.mutation.SetUniqueRunIdentifier(v)
	return _u
}

// SetNillableUniqueRunIdentifier sets the "unique_run_identifier" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableUniqueRunIdentifier(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetUniqueRunIdentifier(*v)
	}
	return _u
}

// SetThumbprint sets the "thumbprint" field.
func (_u *DocumentUpdate) SetThumbprint(v string) *DocumentUpdate {
	_u.mutation.SetThumbprint(v)
	return _u
}

// SetNillableThumbprint sets the "thumbprint" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableThumbprint(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetThumbprint(*v)
	}
	return _u
}

// ClearThumbprint clears the value of the "thumbprint" field.
func (_u *DocumentUpdate) ClearThumbprint() *DocumentUpdate {
	_u.mutation.ClearThumbprint()
	return _u
}

// SetModelID sets the "model_id" field.
func (_u *DocumentUpdate) SetModelID(v string) *DocumentUpdate {
	_u.mutation.SetModelID(v)
	return _u
}

// SetNillableModelID sets the "model_id" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableModelID(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetModelID(*v)
	}
	return _u
}

// ClearModelID clears the value of the "model_id" field.
func (_u *DocumentUpdate) ClearModelID() *DocumentUpdate {
	_u.mutation.ClearModelID()
	return _u
}

// SetModelVersion sets the "model_version" field.
func (_u *DocumentUpdate) SetModelVersion(v string) *DocumentUpdate {
	_u.mutation.SetModelVersion(v)
	return _u
}

// SetNillableModelVersion sets the "model_version" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableModelVersion(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetModelVersion(*v)
	}
	return _u
}

// ClearModelVersion clears the value of the "model_version" field.
func (_u *DocumentUpdate) ClearModelVersion() *DocumentUpdate {
	_u.mutation.ClearModelVersion()
	return _u
}

// SetIsValid sets the "is_valid" field.
func (_u *DocumentUpdate) SetIsValid(v bool) *DocumentUpdate {
	_u.mutation.SetIsValid(v)
	return _u
}

// SetNillableIsValid sets the "is_valid" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableIsValid(v *bool) *DocumentUpdate {
	if v != nil {
		_u.SetIsValid(*v)
	}
	return _u
}

// SetTerminalErrorCount sets the "terminal_error_count" field.
func (_u *DocumentUpdate) SetTerminalErrorCount(v int) *DocumentUpdate {
	_u.mutation.ResetTerminalErrorCount()
	_u.mutation.SetTerminalErrorCount(v)
	return _u
}

// SetNillableTerminalErrorCount sets the "terminal_error_count" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableTerminalErrorCount(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetTerminalErrorCount(*v)
	}
	return _u
}

// AddTerminalErrorCount adds value to the "terminal_error_count" field.
func (_u *DocumentUpdate) AddTerminalErrorCount(v int) *DocumentUpdate {
	_u.mutation.AddTerminalErrorCount(v)
	return _u
}

// SetWarningErrorCount sets the "warning_error_count" field.
func (_u *DocumentUpdate) SetWarningErrorCount(v int) *DocumentUpdate {
	_u.mutation.ResetWarningErrorCount()
	_u.mutation.SetWarningErrorCount(v)
	return _u
}

// SetNillableWarningErrorCount sets the "warning_error_count" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableWarningErrorCount(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetWarningErrorCount(*v)
	}
	return _u
}

// AddWarningErrorCount adds value to the "warning_error_count" field.
func (_u *DocumentUpdate) AddWarningErrorCount(v int) *DocumentUpdate {
	_u.mutation.AddWarningErrorCount(v)
	return _u
}

// SetShreddingUtcTime sets the "shredding_utc_time" field.
func (_u *DocumentUpdate) SetShreddingUtcTime(v time.Time) *DocumentUpdate {
	_u.mutation.SetShreddingUtcTime(v)
	return _u
}

// SetNillableShreddingUtcTime sets the "shredding_utc_time" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableShreddingUtcTime(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetShreddingUtcTime(*v)
	}
	return _u
}

// SetTimeToShredMs sets the "time_to_shred_ms" field.
func (_u *DocumentUpdate) SetTimeToShredMs(v int64) *DocumentUpdate {
	_u.mutation.ResetTimeToShredMs()
	_u.mutation.SetTimeToShredMs(v)
	return _u
}

// SetNillableTimeToShredMs sets the "time_to_shred_ms" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableTimeToShredMs(v *int64) *DocumentUpdate {
	if v != nil {
		_u.SetTimeToShredMs(*v)
	}
	return _u
}

// AddTimeToShredMs adds value to the "time_to_shred_ms" field.
func (_u *DocumentUpdate) AddTimeToShredMs(v int64) *DocumentUpdate {
	_u.mutation.AddTimeToShredMs(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DocumentUpdate) SetCreatedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableCreatedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdate) SetUpdatedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddLineItemIDs adds the "line_items" edge to the DocumentLineItem entity by IDs.
func (_u *DocumentUpdate) AddLineItemIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.AddLineItemIDs(ids...)
	return _u
}

// AddLineItems adds the "line_items" edges to the DocumentLineItem entity.
func (_u *DocumentUpdate) AddLineItems(v ...*DocumentLineItem) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLineItemIDs(ids...)
}

// AddShreddingErrorIDs adds the "shredding_errors" edge to the DocumentError entity by IDs.
func (_u *DocumentUpdate) AddShreddingErrorIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.AddShreddingErrorIDs(ids...)
	return _u
}

// AddShreddingErrors adds the "shredding_errors" edges to the DocumentError entity.
func (_u *DocumentUpdate) AddShreddingErrors(v ...*DocumentError) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddShreddingErrorIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearLineItems clears all "line_items" edges to the DocumentLineItem entity.
func (_u *DocumentUpdate) ClearLineItems() *DocumentUpdate {
	_u.mutation.ClearLineItems()
	return _u
}

// RemoveLineItemIDs removes the "line_items" edge to DocumentLineItem entities by IDs.
func (_u *DocumentUpdate) RemoveLineItemIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.RemoveLineItemIDs(ids...)
	return _u
}

// RemoveLineItems removes "line_items" edges to DocumentLineItem entities.
func (_u *DocumentUpdate) RemoveLineItems(v ...*DocumentLineItem) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLineItemIDs(ids...)
}

// ClearShreddingErrors clears all "shredding_errors" edges to the DocumentError entity.
func (_u *DocumentUpdate) ClearShreddingErrors() *DocumentUpdate {
	_u.mutation.ClearShreddingErrors()
	return _u
}

// RemoveShreddingErrorIDs removes the "shredding_errors" edge to DocumentError entities by IDs.
func (_u *DocumentUpdate) RemoveShreddingErrorIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.RemoveShreddingErrorIDs(ids...)
	return _u
}

// RemoveShreddingErrors removes "shredding_errors" edges to DocumentError entities.
func (_u *DocumentUpdate) RemoveShreddingErrors(v ...*DocumentError) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveShreddingErrorIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.FileName(); ok {
		if err := document.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "Document.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UniqueRunIdentifier(); ok {
		if err := document.UniqueRunIdentifierValidator(v); err != nil {
			return &ValidationError{Name: "unique_run_identifier", err: fmt.Errorf(`ent: validator failed for field "Document.unique_run_identifier": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(document.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentFormat(); ok {
		_spec.SetField(document.FieldDocumentFormat, field.TypeString, value)
	}
	if _u.mutation.DocumentFormatCleared() {
		_spec.ClearField(document.FieldDocumentFormat, field.TypeString)
	}
	if value, ok := _u.mutation.RecognizerStatus(); ok {
		_spec.SetField(document.FieldRecognizerStatus, field.TypeString, value)
	}
	if _u.mutation.RecognizerStatusCleared() {
		_spec.ClearField(document.FieldRecognizerStatus, field.TypeString)
	}
	if value, ok := _u.mutation.RecognizerErrors(); ok {
		_spec.SetField(document.FieldRecognizerErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecognizerErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldRecognizerErrors, value)
		})
	}
	if _u.mutation.RecognizerErrorsCleared() {
		_spec.ClearField(document.FieldRecognizerErrors, field.TypeJSON)
	}
	if value, ok := _u.mutation.PoNumber(); ok {
		_spec.SetField(document.FieldPoNumber, field.TypeString, value)
	}
	if _u.mutation.PoNumberCleared() {
		_spec.ClearField(document.FieldPoNumber, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(document.FieldInvoiceNumber, field.TypeString, value)
	}
	if _u.mutation.InvoiceNumberCleared() {
		_spec.ClearField(document.FieldInvoiceNumber, field.TypeString)
	}
	if value, ok := _u.mutation.AccountNumber(); ok {
		_spec.SetField(document.FieldAccountNumber, field.TypeString, value)
	}
	if _u.mutation.AccountNumberCleared() {
		_spec.ClearField(document.FieldAccountNumber, field.TypeString)
	}
	if value, ok := _u.mutation.OrderDate(); ok {
		_spec.SetField(document.FieldOrderDate, field.TypeTime, value)
	}
	if _u.mutation.OrderDateCleared() {
		_spec.ClearField(document.FieldOrderDate, field.TypeTime)
	}
	if value, ok := _u.mutation.TaxDate(); ok {
		_spec.SetField(document.FieldTaxDate, field.TypeTime, value)
	}
	if _u.mutation.TaxDateCleared() {
		_spec.ClearField(document.FieldTaxDate, field.TypeTime)
	}
	if value, ok := _u.mutation.TaxPeriod(); ok {
		_spec.SetField(document.FieldTaxPeriod, field.TypeString, value)
	}
	if _u.mutation.TaxPeriodCleared() {
		_spec.ClearField(document.FieldTaxPeriod, field.TypeString)
	}
	if value, ok := _u.mutation.NetTotal(); ok {
		_spec.SetField(document.FieldNetTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNetTotal(); ok {
		_spec.AddField(document.FieldNetTotal, field.TypeFloat64, value)
	}
	if _u.mutation.NetTotalCleared() {
		_spec.ClearField(document.FieldNetTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.VatTotal(); ok {
		_spec.SetField(document.FieldVatTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVatTotal(); ok {
		_spec.AddField(document.FieldVatTotal, field.TypeFloat64, value)
	}
	if _u.mutation.VatTotalCleared() {
		_spec.ClearField(document.FieldVatTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.GrossTotal(); ok {
		_spec.SetField(document.FieldGrossTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGrossTotal(); ok {
		_spec.AddField(document.FieldGrossTotal, field.TypeFloat64, value)
	}
	if _u.mutation.GrossTotalCleared() {
		_spec.ClearField(document.FieldGrossTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DeliveryPostCode(); ok {
		_spec.SetField(document.FieldDeliveryPostCode, field.TypeString, value)
	}
	if _u.mutation.DeliveryPostCodeCleared() {
		_spec.ClearField(document.FieldDeliveryPostCode, field.TypeString)
	}
	if value, ok := _u.mutation.UniqueRunIdentifier(); ok {
		_spec.SetField(document.FieldUniqueRunIdentifier, field.TypeString, value)
	}
	if value, ok := _u.mutation.Thumbprint(); ok {
		_spec.SetField(document.FieldThumbprint, field.TypeString, value)
	}
	if _u.mutation.ThumbprintCleared() {
		_spec.ClearField(document.FieldThumbprint, field.TypeString)
	}
	if value, ok := _u.mutation.ModelID(); ok {
		_spec.SetField(document.FieldModelID, field.TypeString, value)
	}
	if _u.mutation.ModelIDCleared() {
		_spec.ClearField(document.FieldModelID, field.TypeString)
	}
	if value, ok := _u.mutation.ModelVersion(); ok {
		_spec.SetField(document.FieldModelVersion, field.TypeString, value)
	}
	if _u.mutation.ModelVersionCleared() {
		_spec.ClearField(document.FieldModelVersion, field.TypeString)
	}
	if value, ok := _u.mutation.IsValid(); ok {
		_spec.SetField(document.FieldIsValid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TerminalErrorCount(); ok {
		_spec.SetField(document.FieldTerminalErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTerminalErrorCount(); ok {
		_spec.AddField(document.FieldTerminalErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WarningErrorCount(); ok {
		_spec.SetField(document.FieldWarningErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWarningErrorCount(); ok {
		_spec.AddField(document.FieldWarningErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ShreddingUtcTime(); ok {
		_spec.SetField(document.FieldShreddingUtcTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TimeToShredMs(); ok {
		_spec.SetField(document.FieldTimeToShredMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeToShredMs(); ok {
		_spec.AddField(document.FieldTimeToShredMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LineItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLineItemsIDs(); len(nodes) > 0 && !_u.mutation.LineItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LineItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ShreddingErrorsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedShreddingErrorsIDs(); len(nodes) > 0 && !_u.mutation.ShreddingErrorsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ShreddingErrorsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetFileName sets the "file_name" field.
func (_u *DocumentUpdateOne) SetFileName(v string) *DocumentUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFileName(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetDocumentFormat sets the "document_format" field.
func (_u *DocumentUpdateOne) SetDocumentFormat(v string) *DocumentUpdateOne {
	_u.mutation.SetDocumentFormat(v)
	return _u
}

// SetNillableDocumentFormat sets the "document_format" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableDocumentFormat(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetDocumentFormat(*v)
	}
	return _u
}

// ClearDocumentFormat clears the value of the "document_format" field.
func (_u *DocumentUpdateOne) ClearDocumentFormat() *DocumentUpdateOne {
	_u.mutation.ClearDocumentFormat()
	return _u
}

// SetRecognizerStatus sets the "recognizer_status" field.
func (_u *DocumentUpdateOne) SetRecognizerStatus(v string) *DocumentUpdateOne {
	_u.mutation.SetRecognizerStatus(v)
	return _u
}

// SetNillableRecognizerStatus sets the "recognizer_status" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableRecognizerStatus(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetRecognizerStatus(*v)
	}
	return _u
}

// ClearRecognizerStatus clears the value of the "recognizer_status" field.
func (_u *DocumentUpdateOne) ClearRecognizerStatus() *DocumentUpdateOne {
	_u.mutation.ClearRecognizerStatus()
	return _u
}

// SetRecognizerErrors sets the "recognizer_errors" field.
func (_u *DocumentUpdateOne) SetRecognizerErrors(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.SetRecognizerErrors(v)
	return _u
}

// AppendRecognizerErrors appends value to the "recognizer_errors" field.
func (_u *DocumentUpdateOne) AppendRecognizerErrors(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.AppendRecognizerErrors(v)
	return _u
}

// ClearRecognizerErrors clears the value of the "recognizer_errors" field.
func (_u *DocumentUpdateOne) ClearRecognizerErrors() *DocumentUpdateOne {
	_u.mutation.ClearRecognizerErrors()
	return _u
}

// SetPoNumber sets the "po_number" field.
func (_u *DocumentUpdateOne) SetPoNumber(v string) *DocumentUpdateOne {
	_u.mutation.SetPoNumber(v)
	return _u
}

// SetNillablePoNumber sets the "po_number" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillablePoNumber(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetPoNumber(*v)
	}
	return _u
}

// ClearPoNumber clears the value of the "po_number" field.
func (_u *DocumentUpdateOne) ClearPoNumber() *DocumentUpdateOne {
	_u.mutation.ClearPoNumber()
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *DocumentUpdateOne) SetInvoiceNumber(v string) *DocumentUpdateOne {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableInvoiceNumber(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (_u *DocumentUpdateOne) ClearInvoiceNumber() *DocumentUpdateOne {
	_u.mutation.ClearInvoiceNumber()
	return _u
}

// SetAccountNumber sets the "account_number" field.
func (_u *DocumentUpdateOne) SetAccountNumber(v string) *DocumentUpdateOne {
	_u.mutation.SetAccountNumber(v)
	return _u
}

// SetNillableAccountNumber sets the "account_number" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableAccountNumber(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetAccountNumber(*v)
	}
	return _u
}

// ClearAccountNumber clears the value of the "account_number" field.
func (_u *DocumentUpdateOne) ClearAccountNumber() *DocumentUpdateOne {
	_u.mutation.ClearAccountNumber()
	return _u
}

// SetOrderDate sets the "order_date" field.
func (_u *DocumentUpdateOne) SetOrderDate(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetOrderDate(v)
	return _u
}

// SetNillableOrderDate sets the "order_date" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableOrderDate(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetOrderDate(*v)
	}
	return _u
}

// ClearOrderDate clears the value of the "order_date" field.
func (_u *DocumentUpdateOne) ClearOrderDate() *DocumentUpdateOne {
	_u.mutation.ClearOrderDate()
	return _u
}

// SetTaxDate sets the "tax_date" field.
func (_u *DocumentUpdateOne) SetTaxDate(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetTaxDate(v)
	return _u
}

// SetNillableTaxDate sets the "tax_date" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableTaxDate(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetTaxDate(*v)
	}
	return _u
}

// ClearTaxDate clears the value of the "tax_date" field.
func (_u *DocumentUpdateOne) ClearTaxDate() *DocumentUpdateOne {
	_u.mutation.ClearTaxDate()
	return _u
}

// SetTaxPeriod sets the "tax_period" field.
func (_u *DocumentUpdateOne) SetTaxPeriod(v string) *DocumentUpdateOne {
	_u.mutation.SetTaxPeriod(v)
	return _u
}

// SetNillableTaxPeriod sets the "tax_period" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableTaxPeriod(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetTaxPeriod(*v)
	}
	return _u
}

// ClearTaxPeriod clears the value of the "tax_period" field.
func (_u *DocumentUpdateOne) ClearTaxPeriod() *DocumentUpdateOne {
	_u.mutation.ClearTaxPeriod()
	return _u
}

// SetNetTotal sets the "net_total" field.
func (_u *DocumentUpdateOne) SetNetTotal(v float64) *DocumentUpdateOne {
	_u.mutation.ResetNetTotal()
	_u.mutation.SetNetTotal(v)
	return _u
}

// SetNillableNetTotal sets the "net_total" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableNetTotal(v *float64) *DocumentUpdateOne {
	if v != nil {
		_u.SetNetTotal(*v)
	}
	return _u
}

// AddNetTotal adds value to the "net_total" field.
func (_u *DocumentUpdateOne) AddNetTotal(v float64) *DocumentUpdateOne {
	_u.mutation.AddNetTotal(v)
	return _u
}

// ClearNetTotal clears the value of the "net_total" field.
func (_u *DocumentUpdateOne) ClearNetTotal() *DocumentUpdateOne {
	_u.mutation.ClearNetTotal()
	return _u
}

// SetVatTotal sets the "vat_total" field.
func (_u *DocumentUpdateOne) SetVatTotal(v float64) *DocumentUpdateOne {
	_u.mutation.ResetVatTotal()
	_u.mutation.SetVatTotal(v)
	return _u
}

// SetNillableVatTotal sets the "vat_total" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableVatTotal(v *float64) *DocumentUpdateOne {
	if v != nil {
		_u.SetVatTotal(*v)
	}
	return _u
}

// AddVatTotal adds value to the "vat_total" field.
func (_u *DocumentUpdateOne) AddVatTotal(v float64) *DocumentUpdateOne {
	_u.mutation.AddVatTotal(v)
	return _u
}

// ClearVatTotal clears the value of the "vat_total" field.
func (_u *DocumentUpdateOne) ClearVatTotal() *DocumentUpdateOne {
	_u.mutation.ClearVatTotal()
	return _u
}

// SetGrossTotal sets the "gross_total" field.
func (_u *DocumentUpdateOne) SetGrossTotal(v float64) *DocumentUpdateOne {
	_u.mutation.ResetGrossTotal()
	_u.mutation.SetGrossTotal(v)
	return _u
}

// SetNillableGrossTotal sets the "gross_total" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableGrossTotal(v *float64) *DocumentUpdateOne {
	if v != nil {
		_u.SetGrossTotal(*v)
	}
	return _u
}

// AddGrossTotal adds value to the "gross_total" field.
func (_u *DocumentUpdateOne) AddGrossTotal(v float64) *DocumentUpdateOne {
	_u.mutation.AddGrossTotal(v)
	return _u
}

// ClearGrossTotal clears the value of the "gross_total" field.
func (_u *DocumentUpdateOne) ClearGrossTotal() *DocumentUpdateOne {
	_u.mutation.ClearGrossTotal()
	return _u
}

// SetDeliveryPostCode sets the "delivery_post_code" field.
func (_u *DocumentUpdateOne) SetDeliveryPostCode(v string) *DocumentUpdateOne {
	_u.mutation.SetDeliveryPostCode(v)
	return _u
}

// SetNillableDeliveryPostCode sets the "delivery_post_code" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableDeliveryPostCode(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetDeliveryPostCode(*v)
	}
	return _u
}

// ClearDeliveryPostCode clears the value of the "delivery_post_code" field.
func (_u *DocumentUpdateOne) ClearDeliveryPostCode() *DocumentUpdateOne {
	_u.mutation.ClearDeliveryPostCode()
	return _u
}

// SetUniqueRunIdentifier sets the "unique_run_identifier" field.
func (_u *DocumentUpdateOne) SetUniqueRunIdentifier(v string) *DocumentUpdateOne {
	_u.mutation.SetUniqueRunIdentifier(v)
	return _u
}

// SetNillableUniqueRunIdentifier sets the "unique_run_identifier" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableUniqueRunIdentifier(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetUniqueRunIdentifier(*v)
	}
	return _u
}

// SetThumbprint sets the "thumbprint" field.
func (_u *DocumentUpdateOne) SetThumbprint(v string) *DocumentUpdateOne {
	_u.mutation.SetThumbprint(v)
	return _u
}

// SetNillableThumbprint sets the "thumbprint" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableThumbprint(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetThumbprint(*v)
	}
	return _u
}

// ClearThumbprint clears the value of the "thumbprint" field.
func (_u *DocumentUpdateOne) ClearThumbprint() *DocumentUpdateOne {
	_u.mutation.ClearThumbprint()
	return _u
}

// SetModelID sets the "model_id" field.
func (_u *DocumentUpdateOne) SetModelID(v string) *DocumentUpdateOne {
	_u.mutation.SetModelID(v)
	return _u
}

// SetNillableModelID sets the "model_id" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableModelID(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetModelID(*v)
	}
	return _u
}

// ClearModelID clears the value of the "model_id" field.
func (_u *DocumentUpdateOne) ClearModelID() *DocumentUpdateOne {
	_u.mutation.ClearModelID()
	return _u
}

// SetModelVersion sets the "model_version" field.
func (_u *DocumentUpdateOne) SetModelVersion(v string) *DocumentUpdateOne {
	_u.mutation.SetModelVersion(v)
	return _u
}

// SetNillableModelVersion sets the "model_version" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableModelVersion(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetModelVersion(*v)
	}
	return _u
}

// ClearModelVersion clears the value of the "model_version" field.
func (_u *DocumentUpdateOne) ClearModelVersion() *DocumentUpdateOne {
	_u.mutation.ClearModelVersion()
	return _u
}

// SetIsValid sets the "is_valid" field.
func (_u *DocumentUpdateOne) SetIsValid(v bool) *DocumentUpdateOne {
	_u.mutation.SetIsValid(v)
	return _u
}

// SetNillableIsValid sets the "is_valid" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableIsValid(v *bool) *DocumentUpdateOne {
	if v != nil {
		_u.SetIsValid(*v)
	}
	return _u
}

// SetTerminalErrorCount sets the "terminal_error_count" field.
func (_u *DocumentUpdateOne) SetTerminalErrorCount(v int) *DocumentUpdateOne {
	_u.mutation.ResetTerminalErrorCount()
	_u.mutation.SetTerminalErrorCount(v)
	return _u
}

// SetNillableTerminalErrorCount sets the "terminal_error_count" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableTerminalErrorCount(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetTerminalErrorCount(*v)
	}
	return _u
}

// AddTerminalErrorCount adds value to the "terminal_error_count" field.
func (_u *DocumentUpdateOne) AddTerminalErrorCount(v int) *DocumentUpdateOne {
	_u.mutation.AddTerminalErrorCount(v)
	return _u
}

// SetWarningErrorCount sets the "warning_error_count" field.
func (_u *DocumentUpdateOne) SetWarningErrorCount(v int) *DocumentUpdateOne {
	_u.mutation.ResetWarningErrorCount()
	_u.mutation.SetWarningErrorCount(v)
	return _u
}

// SetNillableWarningErrorCount sets the "warning_error_count" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableWarningErrorCount(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetWarningErrorCount(*v)
	}
	return _u
}

// AddWarningErrorCount adds value to the "warning_error_count" field.
func (_u *DocumentUpdateOne) AddWarningErrorCount(v int) *DocumentUpdateOne {
	_u.mutation.AddWarningErrorCount(v)
	return _u
}

// SetShreddingUtcTime sets the "shredding_utc_time" field.
func (_u *DocumentUpdateOne) SetShreddingUtcTime(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetShreddingUtcTime(v)
	return _u
}

// SetNillableShreddingUtcTime sets the "shredding_utc_time" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableShreddingUtcTime(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetShreddingUtcTime(*v)
	}
	return _u
}

// SetTimeToShredMs sets the "time_to_shred_ms" field.
func (_u *DocumentUpdateOne) SetTimeToShredMs(v int64) *DocumentUpdateOne {
	_u.mutation.ResetTimeToShredMs()
	_u.mutation.SetTimeToShredMs(v)
	return _u
}

// SetNillableTimeToShredMs sets the "time_to_shred_ms" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableTimeToShredMs(v *int64) *DocumentUpdateOne {
	if v != nil {
		_u.SetTimeToShredMs(*v)
	}
	return _u
}

// AddTimeToShredMs adds value to the "time_to_shred_ms" field.
func (_u *DocumentUpdateOne) AddTimeToShredMs(v int64) *DocumentUpdateOne {
	_u.mutation.AddTimeToShredMs(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DocumentUpdateOne) SetCreatedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableCreatedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdateOne) SetUpdatedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddLineItemIDs adds the "line_items" edge to the DocumentLineItem entity by IDs.
func (_u *DocumentUpdateOne) AddLineItemIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.AddLineItemIDs(ids...)
	return _u
}

// AddLineItems adds the "line_items" edges to the DocumentLineItem entity.
func (_u *DocumentUpdateOne) AddLineItems(v ...*DocumentLineItem) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLineItemIDs(ids...)
}

// AddShreddingErrorIDs adds the "shredding_errors" edge to the DocumentError entity by IDs.
func (_u *DocumentUpdateOne) AddShreddingErrorIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.AddShreddingErrorIDs(ids...)
	return _u
}

// AddShreddingErrors adds the "shredding_errors" edges to the DocumentError entity.
func (_u *DocumentUpdateOne) AddShreddingErrors(v ...*DocumentError) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddShreddingErrorIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearLineItems clears all "line_items" edges to the DocumentLineItem entity.
func (_u *DocumentUpdateOne) ClearLineItems() *DocumentUpdateOne {
	_u.mutation.ClearLineItems()
	return _u
}

// RemoveLineItemIDs removes the "line_items" edge to DocumentLineItem entities by IDs.
func (_u *DocumentUpdateOne) RemoveLineItemIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.RemoveLineItemIDs(ids...)
	return _u
}

// RemoveLineItems removes "line_items" edges to DocumentLineItem entities.
func (_u *DocumentUpdateOne) RemoveLineItems(v ...*DocumentLineItem) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLineItemIDs(ids...)
}

// ClearShreddingErrors clears all "shredding_errors" edges to the DocumentError entity.
func (_u *DocumentUpdateOne) ClearShreddingErrors() *DocumentUpdateOne {
	_u.mutation.ClearShreddingErrors()
	return _u
}

// RemoveShreddingErrorIDs removes the "shredding_errors" edge to DocumentError entities by IDs.
func (_u *DocumentUpdateOne) RemoveShreddingErrorIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.RemoveShreddingErrorIDs(ids...)
	return _u
}

// RemoveShreddingErrors removes "shredding_errors" edges to DocumentError entities.
func (_u *DocumentUpdateOne) RemoveShreddingErrors(v ...*DocumentError) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveShreddingErrorIDs(ids...)
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.FileName(); ok {
		if err := document.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "Document.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UniqueRunIdentifier(); ok {
		if err := document.UniqueRunIdentifierValidator(v); err != nil {
			return &ValidationError{Name: "unique_run_identifier", err: fmt.Errorf(`ent: validator failed for field "Document.unique_run_identifier": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
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
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(document.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentFormat(); ok {
		_spec.SetField(document.FieldDocumentFormat, field.TypeString, value)
	}
	if _u.mutation.DocumentFormatCleared() {
		_spec.ClearField(document.FieldDocumentFormat, field.TypeString)
	}
	if value, ok := _u.mutation.RecognizerStatus(); ok {
		_spec.SetField(document.FieldRecognizerStatus, field.TypeString, value)
	}
	if _u.mutation.RecognizerStatusCleared() {
		_spec.ClearField(document.FieldRecognizerStatus, field.TypeString)
	}
	if value, ok := _u.mutation.RecognizerErrors(); ok {
		_spec.SetField(document.FieldRecognizerErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecognizerErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldRecognizerErrors, value)
		})
	}
	if _u.mutation.RecognizerErrorsCleared() {
		_spec.ClearField(document.FieldRecognizerErrors, field.TypeJSON)
	}
	if value, ok := _u.mutation.PoNumber(); ok {
		_spec.SetField(document.FieldPoNumber, field.TypeString, value)
	}
	if _u.mutation.PoNumberCleared() {
		_spec.ClearField(document.FieldPoNumber, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(document.FieldInvoiceNumber, field.TypeString, value)
	}
	if _u.mutation.InvoiceNumberCleared() {
		_spec.ClearField(document.FieldInvoiceNumber, field.TypeString)
	}
	if value, ok := _u.mutation.AccountNumber(); ok {
		_spec.SetField(document.FieldAccountNumber, field.TypeString, value)
	}
	if _u.mutation.AccountNumberCleared() {
		_spec.ClearField(document.FieldAccountNumber, field.TypeString)
	}
	if value, ok := _u.mutation.OrderDate(); ok {
		_spec.SetField(document.FieldOrderDate, field.TypeTime, value)
	}
	if _u.mutation.OrderDateCleared() {
		_spec.ClearField(document.FieldOrderDate, field.TypeTime)
	}
	if value, ok := _u.mutation.TaxDate(); ok {
		_spec.SetField(document.FieldTaxDate, field.TypeTime, value)
	}
	if _u.mutation.TaxDateCleared() {
		_spec.ClearField(document.FieldTaxDate, field.TypeTime)
	}
	if value, ok := _u.mutation.TaxPeriod(); ok {
		_spec.SetField(document.FieldTaxPeriod, field.TypeString, value)
	}
	if _u.mutation.TaxPeriodCleared() {
		_spec.ClearField(document.FieldTaxPeriod, field.TypeString)
	}
	if value, ok := _u.mutation.NetTotal(); ok {
		_spec.SetField(document.FieldNetTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNetTotal(); ok {
		_spec.AddField(document.FieldNetTotal, field.TypeFloat64, value)
	}
	if _u.mutation.NetTotalCleared() {
		_spec.ClearField(document.FieldNetTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.VatTotal(); ok {
		_spec.SetField(document.FieldVatTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVatTotal(); ok {
		_spec.AddField(document.FieldVatTotal, field.TypeFloat64, value)
	}
	if _u.mutation.VatTotalCleared() {
		_spec.ClearField(document.FieldVatTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.GrossTotal(); ok {
		_spec.SetField(document.FieldGrossTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGrossTotal(); ok {
		_spec.AddField(document.FieldGrossTotal, field.TypeFloat64, value)
	}
	if _u.mutation.GrossTotalCleared() {
		_spec.ClearField(document.FieldGrossTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DeliveryPostCode(); ok {
		_spec.SetField(document.FieldDeliveryPostCode, field.TypeString, value)
	}
	if _u.mutation.DeliveryPostCodeCleared() {
		_spec.ClearField(document.FieldDeliveryPostCode, field.TypeString)
	}
	if value, ok := _u.mutation.UniqueRunIdentifier(); ok {
		_spec.SetField(document.FieldUniqueRunIdentifier, field.TypeString, value)
	}
	if value, ok := _u.mutation.Thumbprint(); ok {
		_spec.SetField(document.FieldThumbprint, field.TypeString, value)
	}
	if _u.mutation.ThumbprintCleared() {
		_spec.ClearField(document.FieldThumbprint, field.TypeString)
	}
	if value, ok := _u.mutation.ModelID(); ok {
		_spec.SetField(document.FieldModelID, field.TypeString, value)
	}
	if _u.mutation.ModelIDCleared() {
		_spec.ClearField(document.FieldModelID, field.TypeString)
	}
	if value, ok := _u.mutation.ModelVersion(); ok {
		_spec.SetField(document.FieldModelVersion, field.TypeString, value)
	}
	if _u.mutation.ModelVersionCleared() {
		_spec.ClearField(document.FieldModelVersion, field.TypeString)
	}
	if value, ok := _u.mutation.IsValid(); ok {
		_spec.SetField(document.FieldIsValid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TerminalErrorCount(); ok {
		_spec.SetField(document.FieldTerminalErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTerminalErrorCount(); ok {
		_spec.AddField(document.FieldTerminalErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WarningErrorCount(); ok {
		_spec.SetField(document.FieldWarningErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWarningErrorCount(); ok {
		_spec.AddField(document.FieldWarningErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ShreddingUtcTime(); ok {
		_spec.SetField(document.FieldShreddingUtcTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TimeToShredMs(); ok {
		_spec.SetField(document.FieldTimeToShredMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeToShredMs(); ok {
		_spec.AddField(document.FieldTimeToShredMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LineItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLineItemsIDs(); len(nodes) > 0 && !_u.mutation.LineItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LineItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ShreddingErrorsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedShreddingErrorsIDs(); len(nodes) > 0 && !_u.mutation.ShreddingErrorsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ShreddingErrorsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
