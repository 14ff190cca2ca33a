// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/formshred/formshred/gen/ent/document"
	"github.com/formshred/formshred/gen/ent/documenterror"
	"github.com/formshred/formshred/gen/ent/documentlineitem"
	"github.com/formshred/formshred/gen/ent/modeltraining"
	"github.com/formshred/formshred/gen/ent/predicate"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDocument         = "Document"
	TypeDocumentError    = "DocumentError"
	TypeDocumentLineItem = "DocumentLineItem"
	TypeModelTraining    = "ModelTraining"
)

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	file_name               *string
	document_format         *string
	recognizer_status       *string
	recognizer_errors       *json.RawMessage
	appendrecognizer_errors json.RawMessage
	po_number               *string
	invoice_number          *string
	account_number          *string
	order_date              *time.Time
	tax_date                *time.Time
	tax_period              *string
	net_total               *float64
	addnet_total            *float64
	vat_total               *float64
	addvat_total            *float64
	gross_total             *float64
	addgross_total          *float64
	delivery_post_code      *string
	unique_run_identifier   *string
	thumbprint              *string
	model_id                *string
	model_version           *string
	is_valid                *bool
	terminal_error_count    *int
	addterminal_error_count *int
	warning_error_count     *int
	addwarning_error_count  *int
	shredding_utc_time      *time.Time
	time_to_shred_ms        *int64
	addtime_to_shred_ms     *int64
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	line_items              map[uuid.UUID]struct{}
	removedline_items       map[uuid.UUID]struct{}
	clearedline_items       bool
	shredding_errors        map[uuid.UUID]struct{}
	removedshredding_errors map[uuid.UUID]struct{}
	clearedshredding_errors bool
	done                    bool
	oldValue                func(context.Context) (*Document, error)
	predicates              []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileName sets the "file_name" field.
func (m *DocumentMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *DocumentMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *DocumentMutation) ResetFileName() {
	m.file_name = nil
}

// SetDocumentFormat sets the "document_format" field.
func (m *DocumentMutation) SetDocumentFormat(s string) {
	m.document_format = &s
}

// DocumentFormat returns the value of the "document_format" field in the mutation.
func (m *DocumentMutation) DocumentFormat() (r string, exists bool) {
	v := m.document_format
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentFormat returns the old "document_format" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDocumentFormat(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentFormat: %w", err)
	}
	return oldValue.DocumentFormat, nil
}

// ClearDocumentFormat clears the value of the "document_format" field.
func (m *DocumentMutation) ClearDocumentFormat() {
	m.document_format = nil
	m.clearedFields[document.FieldDocumentFormat] = struct{}{}
}

// DocumentFormatCleared returns if the "document_format" field was cleared in this mutation.
func (m *DocumentMutation) DocumentFormatCleared() bool {
	_, ok := m.clearedFields[document.FieldDocumentFormat]
	return ok
}

// ResetDocumentFormat resets all changes to the "document_format" field.
func (m *DocumentMutation) ResetDocumentFormat() {
	m.document_format = nil
	delete(m.clearedFields, document.FieldDocumentFormat)
}

// SetRecognizerStatus sets the "recognizer_status" field.
func (m *DocumentMutation) SetRecognizerStatus(s string) {
	m.recognizer_status = &s
}

// RecognizerStatus returns the value of the "recognizer_status" field in the mutation.
func (m *DocumentMutation) RecognizerStatus() (r string, exists bool) {
	v := m.recognizer_status
	if v == nil {
		return
	}
	return *v, true
}

// OldRecognizerStatus returns the old "recognizer_status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldRecognizerStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecognizerStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecognizerStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecognizerStatus: %w", err)
	}
	return oldValue.RecognizerStatus, nil
}

// ClearRecognizerStatus clears the value of the "recognizer_status" field.
func (m *DocumentMutation) ClearRecognizerStatus() {
	m.recognizer_status = nil
	m.clearedFields[document.FieldRecognizerStatus] = struct{}{}
}

// RecognizerStatusCleared returns if the "recognizer_status" field was cleared in this mutation.
func (m *DocumentMutation) RecognizerStatusCleared() bool {
	_, ok := m.clearedFields[document.FieldRecognizerStatus]
	return ok
}

// ResetRecognizerStatus resets all changes to the "recognizer_status" field.
func (m *DocumentMutation) ResetRecognizerStatus() {
	m.recognizer_status = nil
	delete(m.clearedFields, document.FieldRecognizerStatus)
}

// SetRecognizerErrors sets the "recognizer_errors" field.
func (m *DocumentMutation) SetRecognizerErrors(jm json.RawMessage) {
	m.recognizer_errors = &jm
	m.appendrecognizer_errors = nil
}

// RecognizerErrors returns the value of the "recognizer_errors" field in the mutation.
func (m *DocumentMutation) RecognizerErrors() (r json.RawMessage, exists bool) {
	v := m.recognizer_errors
	if v == nil {
		return
	}
	return *v, true
}

// OldRecognizerErrors returns the old "recognizer_errors" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldRecognizerErrors(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecognizerErrors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecognizerErrors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecognizerErrors: %w", err)
	}
	return oldValue.RecognizerErrors, nil
}

// AppendRecognizerErrors adds jm to the "recognizer_errors" field.
func (m *DocumentMutation) AppendRecognizerErrors(jm json.RawMessage) {
	m.appendrecognizer_errors = append(m.appendrecognizer_errors, jm...)
}

// AppendedRecognizerErrors returns the list of values that were appended to the "recognizer_errors" field in this mutation.
func (m *DocumentMutation) AppendedRecognizerErrors() (json.RawMessage, bool) {
	if len(m.appendrecognizer_errors) == 0 {
		return nil, false
	}
	return m.appendrecognizer_errors, true
}

// ClearRecognizerErrors clears the value of the "recognizer_errors" field.
func (m *DocumentMutation) ClearRecognizerErrors() {
	m.recognizer_errors = nil
	m.appendrecognizer_errors = nil
	m.clearedFields[document.FieldRecognizerErrors] = struct{}{}
}

// RecognizerErrorsCleared returns if the "recognizer_errors" field was cleared in this mutation.
func (m *DocumentMutation) RecognizerErrorsCleared() bool {
	_, ok := m.clearedFields[document.FieldRecognizerErrors]
	return ok
}

// ResetRecognizerErrors resets all changes to the "recognizer_errors" field.
func (m *DocumentMutation) ResetRecognizerErrors() {
	m.recognizer_errors = nil
	m.appendrecognizer_errors = nil
	delete(m.clearedFields, document.FieldRecognizerErrors)
}

// SetPoNumber sets the "po_number" field.
func (m *DocumentMutation) SetPoNumber(s string) {
	m.po_number = &s
}

// PoNumber returns the value of the "po_number" field in the mutation.
func (m *DocumentMutation) PoNumber() (r string, exists bool) {
	v := m.po_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPoNumber returns the old "po_number" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldPoNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPoNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPoNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPoNumber: %w", err)
	}
	return oldValue.PoNumber, nil
}

// ClearPoNumber clears the value of the "po_number" field.
func (m *DocumentMutation) ClearPoNumber() {
	m.po_number = nil
	m.clearedFields[document.FieldPoNumber] = struct{}{}
}

// PoNumberCleared returns if the "po_number" field was cleared in this mutation.
func (m *DocumentMutation) PoNumberCleared() bool {
	_, ok := m.clearedFields[document.FieldPoNumber]
	return ok
}

// ResetPoNumber resets all changes to the "po_number" field.
func (m *DocumentMutation) ResetPoNumber() {
	m.po_number = nil
	delete(m.clearedFields, document.FieldPoNumber)
}

// SetInvoiceNumber sets the "invoice_number" field.
func (m *DocumentMutation) SetInvoiceNumber(s string) {
	m.invoice_number = &s
}

// InvoiceNumber returns the value of the "invoice_number" field in the mutation.
func (m *DocumentMutation) InvoiceNumber() (r string, exists bool) {
	v := m.invoice_number
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceNumber returns the old "invoice_number" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldInvoiceNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceNumber: %w", err)
	}
	return oldValue.InvoiceNumber, nil
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (m *DocumentMutation) ClearInvoiceNumber() {
	m.invoice_number = nil
	m.clearedFields[document.FieldInvoiceNumber] = struct{}{}
}

// InvoiceNumberCleared returns if the "invoice_number" field was cleared in this mutation.
func (m *DocumentMutation) InvoiceNumberCleared() bool {
	_, ok := m.clearedFields[document.FieldInvoiceNumber]
	return ok
}

// ResetInvoiceNumber resets all changes to the "invoice_number" field.
func (m *DocumentMutation) ResetInvoiceNumber() {
	m.invoice_number = nil
	delete(m.clearedFields, document.FieldInvoiceNumber)
}

// SetAccountNumber sets the "account_number" field.
func (m *DocumentMutation) SetAccountNumber(s string) {
	m.account_number = &s
}

// AccountNumber returns the value of the "account_number" field in the mutation.
func (m *DocumentMutation) AccountNumber() (r string, exists bool) {
	v := m.account_number
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountNumber returns the old "account_number" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldAccountNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountNumber: %w", err)
	}
	return oldValue.AccountNumber, nil
}

// ClearAccountNumber clears the value of the "account_number" field.
func (m *DocumentMutation) ClearAccountNumber() {
	m.account_number = nil
	m.clearedFields[document.FieldAccountNumber] = struct{}{}
}

// AccountNumberCleared returns if the "account_number" field was cleared in this mutation.
func (m *DocumentMutation) AccountNumberCleared() bool {
	_, ok := m.clearedFields[document.FieldAccountNumber]
	return ok
}

// ResetAccountNumber resets all changes to the "account_number" field.
func (m *DocumentMutation) ResetAccountNumber() {
	m.account_number = nil
	delete(m.clearedFields, document.FieldAccountNumber)
}

// SetOrderDate sets the "order_date" field.
func (m *DocumentMutation) SetOrderDate(t time.Time) {
	m.order_date = &t
}

// OrderDate returns the value of the "order_date" field in the mutation.
func (m *DocumentMutation) OrderDate() (r time.Time, exists bool) {
	v := m.order_date
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderDate returns the old "order_date" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldOrderDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderDate: %w", err)
	}
	return oldValue.OrderDate, nil
}

// ClearOrderDate clears the value of the "order_date" field.
func (m *DocumentMutation) ClearOrderDate() {
	m.order_date = nil
	m.clearedFields[document.FieldOrderDate] = struct{}{}
}

// OrderDateCleared returns if the "order_date" field was cleared in this mutation.
func (m *DocumentMutation) OrderDateCleared() bool {
	_, ok := m.clearedFields[document.FieldOrderDate]
	return ok
}

// ResetOrderDate resets all changes to the "order_date" field.
func (m *DocumentMutation) ResetOrderDate() {
	m.order_date = nil
	delete(m.clearedFields, document.FieldOrderDate)
}

// SetTaxDate sets the "tax_date" field.
func (m *DocumentMutation) SetTaxDate(t time.Time) {
	m.tax_date = &t
}

// TaxDate returns the value of the "tax_date" field in the mutation.
func (m *DocumentMutation) TaxDate() (r time.Time, exists bool) {
	v := m.tax_date
	if v == nil {
		return
	}
	return *v, true
}

// OldTaxDate returns the old "tax_date" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldTaxDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaxDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaxDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaxDate: %w", err)
	}
	return oldValue.TaxDate, nil
}

// ClearTaxDate clears the value of the "tax_date" field.
func (m *DocumentMutation) ClearTaxDate() {
	m.tax_date = nil
	m.clearedFields[document.FieldTaxDate] = struct{}{}
}

// TaxDateCleared returns if the "tax_date" field was cleared in this mutation.
func (m *DocumentMutation) TaxDateCleared() bool {
	_, ok := m.clearedFields[document.FieldTaxDate]
	return ok
}

// ResetTaxDate resets all changes to the "tax_date" field.
func (m *DocumentMutation) ResetTaxDate() {
	m.tax_date = nil
	delete(m.clearedFields, document.FieldTaxDate)
}

// SetTaxPeriod sets the "tax_period" field.
func (m *DocumentMutation) SetTaxPeriod(s string) {
	m.tax_period = &s
}

// TaxPeriod returns the value of the "tax_period" field in the mutation.
func (m *DocumentMutation) TaxPeriod() (r string, exists bool) {
	v := m.tax_period
	if v == nil {
		return
	}
	return *v, true
}

// OldTaxPeriod returns the old "tax_period" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldTaxPeriod(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaxPeriod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaxPeriod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaxPeriod: %w", err)
	}
	return oldValue.TaxPeriod, nil
}

// ClearTaxPeriod clears the value of the "tax_period" field.
func (m *DocumentMutation) ClearTaxPeriod() {
	m.tax_period = nil
	m.clearedFields[document.FieldTaxPeriod] = struct{}{}
}

// TaxPeriodCleared returns if the "tax_period" field was cleared in this mutation.
func (m *DocumentMutation) TaxPeriodCleared() bool {
	_, ok := m.clearedFields[document.FieldTaxPeriod]
	return ok
}

// ResetTaxPeriod resets all changes to the "tax_period" field.
func (m *DocumentMutation) ResetTaxPeriod() {
	m.tax_period = nil
	delete(m.clearedFields, document.FieldTaxPeriod)
}

// SetNetTotal sets the "net_total" field.
func (m *DocumentMutation) SetNetTotal(f float64) {
	m.net_total = &f
	m.addnet_total = nil
}

// NetTotal returns the value of the "net_total" field in the mutation.
func (m *DocumentMutation) NetTotal() (r float64, exists bool) {
	v := m.net_total
	if v == nil {
		return
	}
	return *v, true
}

// OldNetTotal returns the old "net_total" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldNetTotal(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNetTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNetTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNetTotal: %w", err)
	}
	return oldValue.NetTotal, nil
}

// AddNetTotal adds f to the "net_total" field.
func (m *DocumentMutation) AddNetTotal(f float64) {
	if m.addnet_total != nil {
		*m.addnet_total += f
	} else {
		m.addnet_total = &f
	}
}

// AddedNetTotal returns the value that was added to the "net_total" field in this mutation.
func (m *DocumentMutation) AddedNetTotal() (r float64, exists bool) {
	v := m.addnet_total
	if v == nil {
		return
	}
	return *v, true
}

// ClearNetTotal clears the value of the "net_total" field.
func (m *DocumentMutation) ClearNetTotal() {
	m.net_total = nil
	m.addnet_total = nil
	m.clearedFields[document.FieldNetTotal] = struct{}{}
}

// NetTotalCleared returns if the "net_total" field was cleared in this mutation.
func (m *DocumentMutation) NetTotalCleared() bool {
	_, ok := m.clearedFields[document.FieldNetTotal]
	return ok
}

// ResetNetTotal resets all changes to the "net_total" field.
func (m *DocumentMutation) ResetNetTotal() {
	m.net_total = nil
	m.addnet_total = nil
	delete(m.clearedFields, document.FieldNetTotal)
}

// SetVatTotal sets the "vat_total" field.
func (m *DocumentMutation) SetVatTotal(f float64) {
	m.vat_total = &f
	m.addvat_total = nil
}

// VatTotal returns the value of the "vat_total" field in the mutation.
func (m *DocumentMutation) VatTotal() (r float64, exists bool) {
	v := m.vat_total
	if v == nil {
		return
	}
	return *v, true
}

// OldVatTotal returns the old "vat_total" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldVatTotal(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVatTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVatTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVatTotal: %w", err)
	}
	return oldValue.VatTotal, nil
}

// AddVatTotal adds f to the "vat_total" field.
func (m *DocumentMutation) AddVatTotal(f float64) {
	if m.addvat_total != nil {
		*m.addvat_total += f
	} else {
		m.addvat_total = &f
	}
}

// AddedVatTotal returns the value that was added to the "vat_total" field in this mutation.
func (m *DocumentMutation) AddedVatTotal() (r float64, exists bool) {
	v := m.addvat_total
	if v == nil {
		return
	}
	return *v, true
}

// ClearVatTotal clears the value of the "vat_total" field.
func (m *DocumentMutation) ClearVatTotal() {
	m.vat_total = nil
	m.addvat_total = nil
	m.clearedFields[document.FieldVatTotal] = struct{}{}
}

// VatTotalCleared returns if the "vat_total" field was cleared in this mutation.
func (m *DocumentMutation) VatTotalCleared() bool {
	_, ok := m.clearedFields[document.FieldVatTotal]
	return ok
}

// ResetVatTotal resets all changes to the "vat_total" field.
func (m *DocumentMutation) ResetVatTotal() {
	m.vat_total = nil
	m.addvat_total = nil
	delete(m.clearedFields, document.FieldVatTotal)
}

// SetGrossTotal sets the "gross_total" field.
func (m *DocumentMutation) SetGrossTotal(f float64) {
	m.gross_total = &f
	m.addgross_total = nil
}

// GrossTotal returns the value of the "gross_total" field in the mutation.
func (m *DocumentMutation) GrossTotal() (r float64, exists bool) {
	v := m.gross_total
	if v == nil {
		return
	}
	return *v, true
}

// OldGrossTotal returns the old "gross_total" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldGrossTotal(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrossTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrossTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrossTotal: %w", err)
	}
	return oldValue.GrossTotal, nil
}

// AddGrossTotal adds f to the "gross_total" field.
func (m *DocumentMutation) AddGrossTotal(f float64) {
	if m.addgross_total != nil {
		*m.addgross_total += f
	} else {
		m.addgross_total = &f
	}
}

// AddedGrossTotal returns the value that was added to the "gross_total" field in this mutation.
func (m *DocumentMutation) AddedGrossTotal() (r float64, exists bool) {
	v := m.addgross_total
	if v == nil {
		return
	}
	return *v, true
}

// ClearGrossTotal clears the value of the "gross_total" field.
func (m *DocumentMutation) ClearGrossTotal() {
	m.gross_total = nil
	m.addgross_total = nil
	m.clearedFields[document.FieldGrossTotal] = struct{}{}
}

// GrossTotalCleared returns if the "gross_total" field was cleared in this mutation.
func (m *DocumentMutation) GrossTotalCleared() bool {
	_, ok := m.clearedFields[document.FieldGrossTotal]
	return ok
}

// ResetGrossTotal resets all changes to the "gross_total" field.
func (m *DocumentMutation) ResetGrossTotal() {
	m.gross_total = nil
	m.addgross_total = nil
	delete(m.clearedFields, document.FieldGrossTotal)
}

// SetDeliveryPostCode sets the "delivery_post_code" field.
func (m *DocumentMutation) SetDeliveryPostCode(s string) {
	m.delivery_post_code = &s
}

// DeliveryPostCode returns the value of the "delivery_post_code" field in the mutation.
func (m *DocumentMutation) DeliveryPostCode() (r string, exists bool) {
	v := m.delivery_post_code
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveryPostCode returns the old "delivery_post_code" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDeliveryPostCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveryPostCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveryPostCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveryPostCode: %w", err)
	}
	return oldValue.DeliveryPostCode, nil
}

// ClearDeliveryPostCode clears the value of the "delivery_post_code" field.
func (m *DocumentMutation) ClearDeliveryPostCode() {
	m.delivery_post_code = nil
	m.clearedFields[document.FieldDeliveryPostCode] = struct{}{}
}

// DeliveryPostCodeCleared returns if the "delivery_post_code" field was cleared in this mutation.
func (m *DocumentMutation) DeliveryPostCodeCleared() bool {
	_, ok := m.clearedFields[document.FieldDeliveryPostCode]
	return ok
}

// ResetDeliveryPostCode resets all changes to the "delivery_post_code" field.
func (m *DocumentMutation) ResetDeliveryPostCode() {
	m.delivery_post_code = nil
	delete(m.clearedFields, document.FieldDeliveryPostCode)
}

// SetUniqueRunIdentifier sets the "unique_run_identifier" field.
func (m *DocumentMutation) SetUniqueRunIdentifier(s string) {
	m.unique_run_identifier = &s
}

// UniqueRunIdentifier returns the value of the "unique_run_identifier" field in the mutation.
func (m *DocumentMutation) UniqueRunIdentifier() (r string, exists bool) {
	v := m.unique_run_identifier
	if v == nil {
		return
	}
	return *v, true
}

// OldUniqueRunIdentifier returns the old "unique_run_identifier" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUniqueRunIdentifier(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUniqueRunIdentifier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUniqueRunIdentifier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUniqueRunIdentifier: %w", err)
	}
	return oldValue.UniqueRunIdentifier, nil
}

// ResetUniqueRunIdentifier resets all changes to the "unique_run_identifier" field.
func (m *DocumentMutation) ResetUniqueRunIdentifier() {
	m.unique_run_identifier = nil
}

// SetThumbprint sets the "thumbprint" field.
func (m *DocumentMutation) SetThumbprint(s string) {
	m.thumbprint = &s
}

// Thumbprint returns the value of the "thumbprint" field in the mutation.
func (m *DocumentMutation) Thumbprint() (r string, exists bool) {
	v := m.thumbprint
	if v == nil {
		return
	}
	return *v, true
}

// OldThumbprint returns the old "thumbprint" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldThumbprint(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThumbprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThumbprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThumbprint: %w", err)
	}
	return oldValue.Thumbprint, nil
}

// ClearThumbprint clears the value of the "thumbprint" field.
func (m *DocumentMutation) ClearThumbprint() {
	m.thumbprint = nil
	m.clearedFields[document.FieldThumbprint] = struct{}{}
}

// ThumbprintCleared returns if the "thumbprint" field was cleared in this mutation.
func (m *DocumentMutation) ThumbprintCleared() bool {
	_, ok := m.clearedFields[document.FieldThumbprint]
	return ok
}

// ResetThumbprint resets all changes to the "thumbprint" field.
func (m *DocumentMutation) ResetThumbprint() {
	m.thumbprint = nil
	delete(m.clearedFields, document.FieldThumbprint)
}

// SetModelID sets the "model_id" field.
func (m *DocumentMutation) SetModelID(s string) {
	m.model_id = &s
}

// ModelID returns the value of the "model_id" field in the mutation.
func (m *DocumentMutation) ModelID() (r string, exists bool) {
	v := m.model_id
	if v == nil {
		return
	}
	return *v, true
}

// OldModelID returns the old "model_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldModelID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelID: %w", err)
	}
	return oldValue.ModelID, nil
}

// ClearModelID clears the value of the "model_id" field.
func (m *DocumentMutation) ClearModelID() {
	m.model_id = nil
	m.clearedFields[document.FieldModelID] = struct{}{}
}

// ModelIDCleared returns if the "model_id" field was cleared in this mutation.
func (m *DocumentMutation) ModelIDCleared() bool {
	_, ok := m.clearedFields[document.FieldModelID]
	return ok
}

// ResetModelID resets all changes to the "model_id" field.
func (m *DocumentMutation) ResetModelID() {
	m.model_id = nil
	delete(m.clearedFields, document.FieldModelID)
}

// SetModelVersion sets the "model_version" field.
func (m *DocumentMutation) SetModelVersion(s string) {
	m.model_version = &s
}

// ModelVersion returns the value of the "model_version" field in the mutation.
func (m *DocumentMutation) ModelVersion() (r string, exists bool) {
	v := m.model_version
	if v == nil {
		return
	}
	return *v, true
}

// OldModelVersion returns the old "model_version" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldModelVersion(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelVersion: %w", err)
	}
	return oldValue.ModelVersion, nil
}

// ClearModelVersion clears the value of the "model_version" field.
func (m *DocumentMutation) ClearModelVersion() {
	m.model_version = nil
	m.clearedFields[document.FieldModelVersion] = struct{}{}
}

// ModelVersionCleared returns if the "model_version" field was cleared in this mutation.
func (m *DocumentMutation) ModelVersionCleared() bool {
	_, ok := m.clearedFields[document.FieldModelVersion]
	return ok
}

// ResetModelVersion resets all changes to the "model_version" field.
func (m *DocumentMutation) ResetModelVersion() {
	m.model_version = nil
	delete(m.clearedFields, document.FieldModelVersion)
}

// SetIsValid sets the "is_valid" field.
func (m *DocumentMutation) SetIsValid(b bool) {
	m.is_valid = &b
}

// IsValid returns the value of the "is_valid" field in the mutation.
func (m *DocumentMutation) IsValid() (r bool, exists bool) {
	v := m.is_valid
	if v == nil {
		return
	}
	return *v, true
}

// OldIsValid returns the old "is_valid" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldIsValid(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsValid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsValid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsValid: %w", err)
	}
	return oldValue.IsValid, nil
}

// ResetIsValid resets all changes to the "is_valid" field.
func (m *DocumentMutation) ResetIsValid() {
	m.is_valid = nil
}

// SetTerminalErrorCount sets the "terminal_error_count" field.
func (m *DocumentMutation) SetTerminalErrorCount(i int) {
	m.terminal_error_count = &i
	m.addterminal_error_count = nil
}

// TerminalErrorCount returns the value of the "terminal_error_count" field in the mutation.
func (m *DocumentMutation) TerminalErrorCount() (r int, exists bool) {
	v := m.terminal_error_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTerminalErrorCount returns the old "terminal_error_count" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldTerminalErrorCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTerminalErrorCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTerminalErrorCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTerminalErrorCount: %w", err)
	}
	return oldValue.TerminalErrorCount, nil
}

// AddTerminalErrorCount adds i to the "terminal_error_count" field.
func (m *DocumentMutation) AddTerminalErrorCount(i int) {
	if m.addterminal_error_count != nil {
		*m.addterminal_error_count += i
	} else {
		m.addterminal_error_count = &i
	}
}

// AddedTerminalErrorCount returns the value that was added to the "terminal_error_count" field in this mutation.
func (m *DocumentMutation) AddedTerminalErrorCount() (r int, exists bool) {
	v := m.addterminal_error_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTerminalErrorCount resets all changes to the "terminal_error_count" field.
func (m *DocumentMutation) ResetTerminalErrorCount() {
	m.terminal_error_count = nil
	m.addterminal_error_count = nil
}

// SetWarningErrorCount sets the "warning_error_count" field.
func (m *DocumentMutation) SetWarningErrorCount(i int) {
	m.warning_error_count = &i
	m.addwarning_error_count = nil
}

// WarningErrorCount returns the value of the "warning_error_count" field in the mutation.
func (m *DocumentMutation) WarningErrorCount() (r int, exists bool) {
	v := m.warning_error_count
	if v == nil {
		return
	}
	return *v, true
}

// OldWarningErrorCount returns the old "warning_error_count" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldWarningErrorCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarningErrorCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarningErrorCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarningErrorCount: %w", err)
	}
	return oldValue.WarningErrorCount, nil
}

// AddWarningErrorCount adds i to the "warning_error_count" field.
func (m *DocumentMutation) AddWarningErrorCount(i int) {
	if m.addwarning_error_count != nil {
		*m.addwarning_error_count += i
	} else {
		m.addwarning_error_count = &i
	}
}

// AddedWarningErrorCount returns the value that was added to the "warning_error_count" field in this mutation.
func (m *DocumentMutation) AddedWarningErrorCount() (r int, exists bool) {
	v := m.addwarning_error_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetWarningErrorCount resets all changes to the "warning_error_count" field.
func (m *DocumentMutation) ResetWarningErrorCount() {
	m.warning_error_count = nil
	m.addwarning_error_count = nil
}

// SetShreddingUtcTime sets the "shredding_utc_time" field.
func (m *DocumentMutation) SetShreddingUtcTime(t time.Time) {
	m.shredding_utc_time = &t
}

// ShreddingUtcTime returns the value of the "shredding_utc_time" field in the mutation.
func (m *DocumentMutation) ShreddingUtcTime() (r time.Time, exists bool) {
	v := m.shredding_utc_time
	if v == nil {
		return
	}
	return *v, true
}

// OldShreddingUtcTime returns the old "shredding_utc_time" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldShreddingUtcTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShreddingUtcTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShreddingUtcTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShreddingUtcTime: %w", err)
	}
	return oldValue.ShreddingUtcTime, nil
}

// ResetShreddingUtcTime resets all changes to the "shredding_utc_time" field.
func (m *DocumentMutation) ResetShreddingUtcTime() {
	m.shredding_utc_time = nil
}

// SetTimeToShredMs sets the "time_to_shred_ms" field.
func (m *DocumentMutation) SetTimeToShredMs(i int64) {
	m.time_to_shred_ms = &i
	m.addtime_to_shred_ms = nil
}

// TimeToShredMs returns the value of the "time_to_shred_ms" field in the mutation.
func (m *DocumentMutation) TimeToShredMs() (r int64, exists bool) {
	v := m.time_to_shred_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeToShredMs returns the old "time_to_shred_ms" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldTimeToShredMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeToShredMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeToShredMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeToShredMs: %w", err)
	}
	return oldValue.TimeToShredMs, nil
}

// AddTimeToShredMs adds i to the "time_to_shred_ms" field.
func (m *DocumentMutation) AddTimeToShredMs(i int64) {
	if m.addtime_to_shred_ms != nil {
		*m.addtime_to_shred_ms += i
	} else {
		m.addtime_to_shred_ms = &i
	}
}

// AddedTimeToShredMs returns the value that was added to the "time_to_shred_ms" field in this mutation.
func (m *DocumentMutation) AddedTimeToShredMs() (r int64, exists bool) {
	v := m.addtime_to_shred_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeToShredMs resets all changes to the "time_to_shred_ms" field.
func (m *DocumentMutation) ResetTimeToShredMs() {
	m.time_to_shred_ms = nil
	m.addtime_to_shred_ms = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DocumentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DocumentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DocumentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddLineItemIDs adds the "line_items" edge to the DocumentLineItem entity by ids.
func (m *DocumentMutation) AddLineItemIDs(ids ...uuid.UUID) {
	if m.line_items == nil {
		m.line_items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.line_items[ids[i]] = struct{}{}
	}
}

// ClearLineItems clears the "line_items" edge to the DocumentLineItem entity.
func (m *DocumentMutation) ClearLineItems() {
	m.clearedline_items = true
}

// LineItemsCleared reports if the "line_items" edge to the DocumentLineItem entity was cleared.
func (m *DocumentMutation) LineItemsCleared() bool {
	return m.clearedline_items
}

// RemoveLineItemIDs removes the "line_items" edge to the DocumentLineItem entity by IDs.
func (m *DocumentMutation) RemoveLineItemIDs(ids ...uuid.UUID) {
	if m.removedline_items == nil {
		m.removedline_items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.line_items, ids[i])
		m.removedline_items[ids[i]] = struct{}{}
	}
}

// RemovedLineItems returns the removed IDs of the "line_items" edge to the DocumentLineItem entity.
func (m *DocumentMutation) RemovedLineItemsIDs() (ids []uuid.UUID) {
	for id := range m.removedline_items {
		ids = append(ids, id)
	}
	return
}

// LineItemsIDs returns the "line_items" edge IDs in the mutation.
func (m *DocumentMutation) LineItemsIDs() (ids []uuid.UUID) {
	for id := range m.line_items {
		ids = append(ids, id)
	}
	return
}

// ResetLineItems resets all changes to the "line_items" edge.
func (m *DocumentMutation) ResetLineItems() {
	m.line_items = nil
	m.clearedline_items = false
	m.removedline_items = nil
}

// AddShreddingErrorIDs adds the "shredding_errors" edge to the DocumentError entity by ids.
func (m *DocumentMutation) AddShreddingErrorIDs(ids ...uuid.UUID) {
	if m.shredding_errors == nil {
		m.shredding_errors = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.shredding_errors[ids[i]] = struct{}{}
	}
}

// ClearShreddingErrors clears the "shredding_errors" edge to the DocumentError entity.
func (m *DocumentMutation) ClearShreddingErrors() {
	m.clearedshredding_errors = true
}

// ShreddingErrorsCleared reports if the "shredding_errors" edge to the DocumentError entity was cleared.
func (m *DocumentMutation) ShreddingErrorsCleared() bool {
	return m.clearedshredding_errors
}

// RemoveShreddingErrorIDs removes the "shredding_errors" edge to the DocumentError entity by IDs.
func (m *DocumentMutation) RemoveShreddingErrorIDs(ids ...uuid.UUID) {
	if m.removedshredding_errors == nil {
		m.removedshredding_errors = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.shredding_errors, ids[i])
		m.removedshredding_errors[ids[i]] = struct{}{}
	}
}

// RemovedShreddingErrors returns the removed IDs of the "shredding_errors" edge to the DocumentError entity.
func (m *DocumentMutation) RemovedShreddingErrorsIDs() (ids []uuid.UUID) {
	for id := range m.removedshredding_errors {
		ids = append(ids, id)
	}
	return
}

// ShreddingErrorsIDs returns the "shredding_errors" edge IDs in the mutation.
func (m *DocumentMutation) ShreddingErrorsIDs() (ids []uuid.UUID) {
	for id := range m.shredding_errors {
		ids = append(ids, id)
	}
	return
}

// ResetShreddingErrors resets all changes to the "shredding_errors" edge.
func (m *DocumentMutation) ResetShreddingErrors() {
	m.shredding_errors = nil
	m.clearedshredding_errors = false
	m.removedshredding_errors = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 25)
	if m.file_name != nil {
		fields = append(fields, document.FieldFileName)
	}
	if m.document_format != nil {
		fields = append(fields, document.FieldDocumentFormat)
	}
	if m.recognizer_status != nil {
		fields = append(fields, document.FieldRecognizerStatus)
	}
	if m.recognizer_errors != nil {
		fields = append(fields, document.FieldRecognizerErrors)
	}
	if m.po_number != nil {
		fields = append(fields, document.FieldPoNumber)
	}
	if m.invoice_number != nil {
		fields = append(fields, document.FieldInvoiceNumber)
	}
	if m.account_number != nil {
		fields = append(fields, document.FieldAccountNumber)
	}
	if m.order_date != nil {
		fields = append(fields, document.FieldOrderDate)
	}
	if m.tax_date != nil {
		fields = append(fields, document.FieldTaxDate)
	}
	if m.tax_period != nil {
		fields = append(fields, document.FieldTaxPeriod)
	}
	if m.net_total != nil {
		fields = append(fields, document.FieldNetTotal)
	}
	if m.vat_total != nil {
		fields = append(fields, document.FieldVatTotal)
	}
	if m.gross_total != nil {
		fields = append(fields, document.FieldGrossTotal)
	}
	if m.delivery_post_code != nil {
		fields = append(fields, document.FieldDeliveryPostCode)
	}
	if m.unique_run_identifier != nil {
		fields = append(fields, document.FieldUniqueRunIdentifier)
	}
	if m.thumbprint != nil {
		fields = append(fields, document.FieldThumbprint)
	}
	if m.model_id != nil {
		fields = append(fields, document.FieldModelID)
	}
	if m.model_version != nil {
		fields = append(fields, document.FieldModelVersion)
	}
	if m.is_valid != nil {
		fields = append(fields, document.FieldIsValid)
	}
	if m.terminal_error_count != nil {
		fields = append(fields, document.FieldTerminalErrorCount)
	}
	if m.warning_error_count != nil {
		fields = append(fields, document.FieldWarningErrorCount)
	}
	if m.shredding_utc_time != nil {
		fields = append(fields, document.FieldShreddingUtcTime)
	}
	if m.time_to_shred_ms != nil {
		fields = append(fields, document.FieldTimeToShredMs)
	}
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, document.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldFileName:
		return m.FileName()
	case document.FieldDocumentFormat:
		return m.DocumentFormat()
	case document.FieldRecognizerStatus:
		return m.RecognizerStatus()
	case document.FieldRecognizerErrors:
		return m.RecognizerErrors()
	case document.FieldPoNumber:
		return m.PoNumber()
	case document.FieldInvoiceNumber:
		return m.InvoiceNumber()
	case document.FieldAccountNumber:
		return m.AccountNumber()
	case document.FieldOrderDate:
		return m.OrderDate()
	case document.FieldTaxDate:
		return m.TaxDate()
	case document.FieldTaxPeriod:
		return m.TaxPeriod()
	case document.FieldNetTotal:
		return m.NetTotal()
	case document.FieldVatTotal:
		return m.VatTotal()
	case document.FieldGrossTotal:
		return m.GrossTotal()
	case document.FieldDeliveryPostCode:
		return m.DeliveryPostCode()
	case document.FieldUniqueRunIdentifier:
		return m.UniqueRunIdentifier()
	case document.FieldThumbprint:
		return m.Thumbprint()
	case document.FieldModelID:
		return m.ModelID()
	case document.FieldModelVersion:
		return m.ModelVersion()
	case document.FieldIsValid:
		return m.IsValid()
	case document.FieldTerminalErrorCount:
		return m.TerminalErrorCount()
	case document.FieldWarningErrorCount:
		return m.WarningErrorCount()
	case document.FieldShreddingUtcTime:
		return m.ShreddingUtcTime()
	case document.FieldTimeToShredMs:
		return m.TimeToShredMs()
	case document.FieldCreatedAt:
		return m.CreatedAt()
	case document.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldFileName:
		return m.OldFileName(ctx)
	case document.FieldDocumentFormat:
		return m.OldDocumentFormat(ctx)
	case document.FieldRecognizerStatus:
		return m.OldRecognizerStatus(ctx)
	case document.FieldRecognizerErrors:
		return m.OldRecognizerErrors(ctx)
	case document.FieldPoNumber:
		return m.OldPoNumber(ctx)
	case document.FieldInvoiceNumber:
		return m.OldInvoiceNumber(ctx)
	case document.FieldAccountNumber:
		return m.OldAccountNumber(ctx)
	case document.FieldOrderDate:
		return m.OldOrderDate(ctx)
	case document.FieldTaxDate:
		return m.OldTaxDate(ctx)
	case document.FieldTaxPeriod:
		return m.OldTaxPeriod(ctx)
	case document.FieldNetTotal:
		return m.OldNetTotal(ctx)
	case document.FieldVatTotal:
		return m.OldVatTotal(ctx)
	case document.FieldGrossTotal:
		return m.OldGrossTotal(ctx)
	case document.FieldDeliveryPostCode:
		return m.OldDeliveryPostCode(ctx)
	case document.FieldUniqueRunIdentifier:
		return m.OldUniqueRunIdentifier(ctx)
	case document.FieldThumbprint:
		return m.OldThumbprint(ctx)
	case document.FieldModelID:
		return m.OldModelID(ctx)
	case document.FieldModelVersion:
		return m.OldModelVersion(ctx)
	case document.FieldIsValid:
		return m.OldIsValid(ctx)
	case document.FieldTerminalErrorCount:
		return m.OldTerminalErrorCount(ctx)
	case document.FieldWarningErrorCount:
		return m.OldWarningErrorCount(ctx)
	case document.FieldShreddingUtcTime:
		return m.OldShreddingUtcTime(ctx)
	case document.FieldTimeToShredMs:
		return m.OldTimeToShredMs(ctx)
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case document.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case document.FieldDocumentFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentFormat(v)
		return nil
	case document.FieldRecognizerStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecognizerStatus(v)
		return nil
	case document.FieldRecognizerErrors:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecognizerErrors(v)
		return nil
	case document.FieldPoNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPoNumber(v)
		return nil
	case document.FieldInvoiceNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceNumber(v)
		return nil
	case document.FieldAccountNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountNumber(v)
		return nil
	case document.FieldOrderDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderDate(v)
		return nil
	case document.FieldTaxDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaxDate(v)
		return nil
	case document.FieldTaxPeriod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaxPeriod(v)
		return nil
	case document.FieldNetTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNetTotal(v)
		return nil
	case document.FieldVatTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVatTotal(v)
		return nil
	case document.FieldGrossTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrossTotal(v)
		return nil
	case document.FieldDeliveryPostCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveryPostCode(v)
		return nil
	case document.FieldUniqueRunIdentifier:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUniqueRunIdentifier(v)
		return nil
	case document.FieldThumbprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThumbprint(v)
		return nil
	case document.FieldModelID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelID(v)
		return nil
	case document.FieldModelVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelVersion(v)
		return nil
	case document.FieldIsValid:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsValid(v)
		return nil
	case document.FieldTerminalErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTerminalErrorCount(v)
		return nil
	case document.FieldWarningErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarningErrorCount(v)
		return nil
	case document.FieldShreddingUtcTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShreddingUtcTime(v)
		return nil
	case document.FieldTimeToShredMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeToShredMs(v)
		return nil
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case document.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addnet_total != nil {
		fields = append(fields, document.FieldNetTotal)
	}
	if m.addvat_total != nil {
		fields = append(fields, document.FieldVatTotal)
	}
	if m.addgross_total != nil {
		fields = append(fields, document.FieldGrossTotal)
	}
	if m.addterminal_error_count != nil {
		fields = append(fields, document.FieldTerminalErrorCount)
	}
	if m.addwarning_error_count != nil {
		fields = append(fields, document.FieldWarningErrorCount)
	}
	if m.addtime_to_shred_ms != nil {
		fields = append(fields, document.FieldTimeToShredMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldNetTotal:
		return m.AddedNetTotal()
	case document.FieldVatTotal:
		return m.AddedVatTotal()
	case document.FieldGrossTotal:
		return m.AddedGrossTotal()
	case document.FieldTerminalErrorCount:
		return m.AddedTerminalErrorCount()
	case document.FieldWarningErrorCount:
		return m.AddedWarningErrorCount()
	case document.FieldTimeToShredMs:
		return m.AddedTimeToShredMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldNetTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNetTotal(v)
		return nil
	case document.FieldVatTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVatTotal(v)
		return nil
	case document.FieldGrossTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGrossTotal(v)
		return nil
	case document.FieldTerminalErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTerminalErrorCount(v)
		return nil
	case document.FieldWarningErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWarningErrorCount(v)
		return nil
	case document.FieldTimeToShredMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeToShredMs(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldDocumentFormat) {
		fields = append(fields, document.FieldDocumentFormat)
	}
	if m.FieldCleared(document.FieldRecognizerStatus) {
		fields = append(fields, document.FieldRecognizerStatus)
	}
	if m.FieldCleared(document.FieldRecognizerErrors) {
		fields = append(fields, document.FieldRecognizerErrors)
	}
	if m.FieldCleared(document.FieldPoNumber) {
		fields = append(fields, document.FieldPoNumber)
	}
	if m.FieldCleared(document.FieldInvoiceNumber) {
		fields = append(fields, document.FieldInvoiceNumber)
	}
	if m.FieldCleared(document.FieldAccountNumber) {
		fields = append(fields, document.FieldAccountNumber)
	}
	if m.FieldCleared(document.FieldOrderDate) {
		fields = append(fields, document.FieldOrderDate)
	}
	if m.FieldCleared(document.FieldTaxDate) {
		fields = append(fields, document.FieldTaxDate)
	}
	if m.FieldCleared(document.FieldTaxPeriod) {
		fields = append(fields, document.FieldTaxPeriod)
	}
	if m.FieldCleared(document.FieldNetTotal) {
		fields = append(fields, document.FieldNetTotal)
	}
	if m.FieldCleared(document.FieldVatTotal) {
		fields = append(fields, document.FieldVatTotal)
	}
	if m.FieldCleared(document.FieldGrossTotal) {
		fields = append(fields, document.FieldGrossTotal)
	}
	if m.FieldCleared(document.FieldDeliveryPostCode) {
		fields = append(fields, document.FieldDeliveryPostCode)
	}
	if m.FieldCleared(document.FieldThumbprint) {
		fields = append(fields, document.FieldThumbprint)
	}
	if m.FieldCleared(document.FieldModelID) {
		fields = append(fields, document.FieldModelID)
	}
	if m.FieldCleared(document.FieldModelVersion) {
		fields = append(fields, document.FieldModelVersion)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldDocumentFormat:
		m.ClearDocumentFormat()
		return nil
	case document.FieldRecognizerStatus:
		m.ClearRecognizerStatus()
		return nil
	case document.FieldRecognizerErrors:
		m.ClearRecognizerErrors()
		return nil
	case document.FieldPoNumber:
		m.ClearPoNumber()
		return nil
	case document.FieldInvoiceNumber:
		m.ClearInvoiceNumber()
		return nil
	case document.FieldAccountNumber:
		m.ClearAccountNumber()
		return nil
	case document.FieldOrderDate:
		m.ClearOrderDate()
		return nil
	case document.FieldTaxDate:
		m.ClearTaxDate()
		return nil
	case document.FieldTaxPeriod:
		m.ClearTaxPeriod()
		return nil
	case document.FieldNetTotal:
		m.ClearNetTotal()
		return nil
	case document.FieldVatTotal:
		m.ClearVatTotal()
		return nil
	case document.FieldGrossTotal:
		m.ClearGrossTotal()
		return nil
	case document.FieldDeliveryPostCode:
		m.ClearDeliveryPostCode()
		return nil
	case document.FieldThumbprint:
		m.ClearThumbprint()
		return nil
	case document.FieldModelID:
		m.ClearModelID()
		return nil
	case document.FieldModelVersion:
		m.ClearModelVersion()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldFileName:
		m.ResetFileName()
		return nil
	case document.FieldDocumentFormat:
		m.ResetDocumentFormat()
		return nil
	case document.FieldRecognizerStatus:
		m.ResetRecognizerStatus()
		return nil
	case document.FieldRecognizerErrors:
		m.ResetRecognizerErrors()
		return nil
	case document.FieldPoNumber:
		m.ResetPoNumber()
		return nil
	case document.FieldInvoiceNumber:
		m.ResetInvoiceNumber()
		return nil
	case document.FieldAccountNumber:
		m.ResetAccountNumber()
		return nil
	case document.FieldOrderDate:
		m.ResetOrderDate()
		return nil
	case document.FieldTaxDate:
		m.ResetTaxDate()
		return nil
	case document.FieldTaxPeriod:
		m.ResetTaxPeriod()
		return nil
	case document.FieldNetTotal:
		m.ResetNetTotal()
		return nil
	case document.FieldVatTotal:
		m.ResetVatTotal()
		return nil
	case document.FieldGrossTotal:
		m.ResetGrossTotal()
		return nil
	case document.FieldDeliveryPostCode:
		m.ResetDeliveryPostCode()
		return nil
	case document.FieldUniqueRunIdentifier:
		m.ResetUniqueRunIdentifier()
		return nil
	case document.FieldThumbprint:
		m.ResetThumbprint()
		return nil
	case document.FieldModelID:
		m.ResetModelID()
		return nil
	case document.FieldModelVersion:
		m.ResetModelVersion()
		return nil
	case document.FieldIsValid:
		m.ResetIsValid()
		return nil
	case document.FieldTerminalErrorCount:
		m.ResetTerminalErrorCount()
		return nil
	case document.FieldWarningErrorCount:
		m.ResetWarningErrorCount()
		return nil
	case document.FieldShreddingUtcTime:
		m.ResetShreddingUtcTime()
		return nil
	case document.FieldTimeToShredMs:
		m.ResetTimeToShredMs()
		return nil
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case document.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.line_items != nil {
		edges = append(edges, document.EdgeLineItems)
	}
	if m.shredding_errors != nil {
		edges = append(edges, document.EdgeShreddingErrors)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeLineItems:
		ids := make([]ent.Value, 0, len(m.line_items))
		for id := range m.line_items {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeShreddingErrors:
		ids := make([]ent.Value, 0, len(m.shredding_errors))
		for id := range m.shredding_errors {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedline_items != nil {
		edges = append(edges, document.EdgeLineItems)
	}
	if m.removedshredding_errors != nil {
		edges = append(edges, document.EdgeShreddingErrors)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeLineItems:
		ids := make([]ent.Value, 0, len(m.removedline_items))
		for id := range m.removedline_items {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeShreddingErrors:
		ids := make([]ent.Value, 0, len(m.removedshredding_errors))
		for id := range m.removedshredding_errors {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedline_items {
		edges = append(edges, document.EdgeLineItems)
	}
	if m.clearedshredding_errors {
		edges = append(edges, document.EdgeShreddingErrors)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeLineItems:
		return m.clearedline_items
	case document.EdgeShreddingErrors:
		return m.clearedshredding_errors
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeLineItems:
		m.ResetLineItems()
		return nil
	case document.EdgeShreddingErrors:
		m.ResetShreddingErrors()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// DocumentErrorMutation represents an operation that mutates the DocumentError nodes in the graph.
type DocumentErrorMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	error_code      *string
	severity        *string
	message         *string
	clearedFields   map[string]struct{}
	document        *uuid.UUID
	cleareddocument bool
	done            bool
	oldValue        func(context.Context) (*DocumentError, error)
	predicates      []predicate.DocumentError
}

var _ ent.Mutation = (*DocumentErrorMutation)(nil)

// documenterrorOption allows management of the mutation configuration using functional options.
type documenterrorOption func(*DocumentErrorMutation)

// newDocumentErrorMutation creates new mutation for the DocumentError entity.
func newDocumentErrorMutation(c config, op Op, opts ...documenterrorOption) *DocumentErrorMutation {
	m := &DocumentErrorMutation{
		config:        c,
		op:            op,
		typ:           TypeDocumentError,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentErrorID sets the ID field of the mutation.
func withDocumentErrorID(id uuid.UUID) documenterrorOption {
	return func(m *DocumentErrorMutation) {
		var (
			err   error
			once  sync.Once
			value *DocumentError
		)
		m.oldValue = func(ctx context.Context) (*DocumentError, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DocumentError.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocumentError sets the old DocumentError of the mutation.
func withDocumentError(node *DocumentError) documenterrorOption {
	return func(m *DocumentErrorMutation) {
		m.oldValue = func(context.Context) (*DocumentError, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentErrorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentErrorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DocumentError entities.
func (m *DocumentErrorMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentErrorMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentErrorMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DocumentError.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *DocumentErrorMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *DocumentErrorMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the DocumentError entity.
// If the DocumentError object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentErrorMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *DocumentErrorMutation) ResetDocumentID() {
	m.document = nil
}

// SetErrorCode sets the "error_code" field.
func (m *DocumentErrorMutation) SetErrorCode(s string) {
	m.error_code = &s
}

// ErrorCode returns the value of the "error_code" field in the mutation.
func (m *DocumentErrorMutation) ErrorCode() (r string, exists bool) {
	v := m.error_code
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCode returns the old "error_code" field's value of the DocumentError entity.
// If the DocumentError object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentErrorMutation) OldErrorCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCode: %w", err)
	}
	return oldValue.ErrorCode, nil
}

// ResetErrorCode resets all changes to the "error_code" field.
func (m *DocumentErrorMutation) ResetErrorCode() {
	m.error_code = nil
}

// SetSeverity sets the "severity" field.
func (m *DocumentErrorMutation) SetSeverity(s string) {
	m.severity = &s
}

// Severity returns the value of the "severity" field in the mutation.
func (m *DocumentErrorMutation) Severity() (r string, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the DocumentError entity.
// If the DocumentError object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentErrorMutation) OldSeverity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *DocumentErrorMutation) ResetSeverity() {
	m.severity = nil
}

// SetMessage sets the "message" field.
func (m *DocumentErrorMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *DocumentErrorMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the DocumentError entity.
// If the DocumentError object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentErrorMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *DocumentErrorMutation) ResetMessage() {
	m.message = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *DocumentErrorMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[documenterror.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *DocumentErrorMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *DocumentErrorMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *DocumentErrorMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the DocumentErrorMutation builder.
func (m *DocumentErrorMutation) Where(ps ...predicate.DocumentError) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentErrorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentErrorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DocumentError, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentErrorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentErrorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DocumentError).
func (m *DocumentErrorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentErrorMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.document != nil {
		fields = append(fields, documenterror.FieldDocumentID)
	}
	if m.error_code != nil {
		fields = append(fields, documenterror.FieldErrorCode)
	}
	if m.severity != nil {
		fields = append(fields, documenterror.FieldSeverity)
	}
	if m.message != nil {
		fields = append(fields, documenterror.FieldMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentErrorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case documenterror.FieldDocumentID:
		return m.DocumentID()
	case documenterror.FieldErrorCode:
		return m.ErrorCode()
	case documenterror.FieldSeverity:
		return m.Severity()
	case documenterror.FieldMessage:
		return m.Message()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentErrorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case documenterror.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case documenterror.FieldErrorCode:
		return m.OldErrorCode(ctx)
	case documenterror.FieldSeverity:
		return m.OldSeverity(ctx)
	case documenterror.FieldMessage:
		return m.OldMessage(ctx)
	}
	return nil, fmt.Errorf("unknown DocumentError field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentErrorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case documenterror.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case documenterror.FieldErrorCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCode(v)
		return nil
	case documenterror.FieldSeverity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case documenterror.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentError field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentErrorMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentErrorMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentErrorMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DocumentError numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentErrorMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentErrorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentErrorMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DocumentError nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentErrorMutation) ResetField(name string) error {
	switch name {
	case documenterror.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case documenterror.FieldErrorCode:
		m.ResetErrorCode()
		return nil
	case documenterror.FieldSeverity:
		m.ResetSeverity()
		return nil
	case documenterror.FieldMessage:
		m.ResetMessage()
		return nil
	}
	return fmt.Errorf("unknown DocumentError field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentErrorMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, documenterror.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentErrorMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case documenterror.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentErrorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentErrorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentErrorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, documenterror.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentErrorMutation) EdgeCleared(name string) bool {
	switch name {
	case documenterror.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentErrorMutation) ClearEdge(name string) error {
	switch name {
	case documenterror.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown DocumentError unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentErrorMutation) ResetEdge(name string) error {
	switch name {
	case documenterror.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown DocumentError edge %s", name)
}

// DocumentLineItemMutation represents an operation that mutates the DocumentLineItem nodes in the graph.
type DocumentLineItemMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	line_number            *string
	item_description       *string
	line_quantity          *string
	unit_price             *float64
	addunit_price          *float64
	net_amount             *float64
	addnet_amount          *float64
	calculated_quantity    *float64
	addcalculated_quantity *float64
	vat_code               *string
	clearedFields          map[string]struct{}
	document               *uuid.UUID
	cleareddocument        bool
	done                   bool
	oldValue               func(context.Context) (*DocumentLineItem, error)
	predicates             []predicate.DocumentLineItem
}

var _ ent.Mutation = (*DocumentLineItemMutation)(nil)

// documentlineitemOption allows management of the mutation configuration using functional options.
type documentlineitemOption func(*DocumentLineItemMutation)

// newDocumentLineItemMutation creates new mutation for the DocumentLineItem entity.
func newDocumentLineItemMutation(c config, op Op, opts ...documentlineitemOption) *DocumentLineItemMutation {
	m := &DocumentLineItemMutation{
		config:        c,
		op:            op,
		typ:           TypeDocumentLineItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentLineItemID sets the ID field of the mutation.
func withDocumentLineItemID(id uuid.UUID) documentlineitemOption {
	return func(m *DocumentLineItemMutation) {
		var (
			err   error
			once  sync.Once
			value *DocumentLineItem
		)
		m.oldValue = func(ctx context.Context) (*DocumentLineItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DocumentLineItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocumentLineItem sets the old DocumentLineItem of the mutation.
func withDocumentLineItem(node *DocumentLineItem) documentlineitemOption {
	return func(m *DocumentLineItemMutation) {
		m.oldValue = func(context.Context) (*DocumentLineItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentLineItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentLineItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DocumentLineItem entities.
func (m *DocumentLineItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentLineItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentLineItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DocumentLineItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *DocumentLineItemMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *DocumentLineItemMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the DocumentLineItem entity.
// If the DocumentLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentLineItemMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *DocumentLineItemMutation) ResetDocumentID() {
	m.document = nil
}

// SetLineNumber sets the "line_number" field.
func (m *DocumentLineItemMutation) SetLineNumber(s string) {
	m.line_number = &s
}

// LineNumber returns the value of the "line_number" field in the mutation.
func (m *DocumentLineItemMutation) LineNumber() (r string, exists bool) {
	v := m.line_number
	if v == nil {
		return
	}
	return *v, true
}

// OldLineNumber returns the old "line_number" field's value of the DocumentLineItem entity.
// If the DocumentLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentLineItemMutation) OldLineNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLineNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLineNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLineNumber: %w", err)
	}
	return oldValue.LineNumber, nil
}

// ResetLineNumber resets all changes to the "line_number" field.
func (m *DocumentLineItemMutation) ResetLineNumber() {
	m.line_number = nil
}

// SetItemDescription sets the "item_description" field.
func (m *DocumentLineItemMutation) SetItemDescription(s string) {
	m.item_description = &s
}

// ItemDescription returns the value of the "item_description" field in the mutation.
func (m *DocumentLineItemMutation) ItemDescription() (r string, exists bool) {
	v := m.item_description
	if v == nil {
		return
	}
	return *v, true
}

// OldItemDescription returns the old "item_description" field's value of the DocumentLineItem entity.
// If the DocumentLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentLineItemMutation) OldItemDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemDescription: %w", err)
	}
	return oldValue.ItemDescription, nil
}

// ClearItemDescription clears the value of the "item_description" field.
func (m *DocumentLineItemMutation) ClearItemDescription() {
	m.item_description = nil
	m.clearedFields[documentlineitem.FieldItemDescription] = struct{}{}
}

// ItemDescriptionCleared returns if the "item_description" field was cleared in this mutation.
func (m *DocumentLineItemMutation) ItemDescriptionCleared() bool {
	_, ok := m.clearedFields[documentlineitem.FieldItemDescription]
	return ok
}

// ResetItemDescription resets all changes to the "item_description" field.
func (m *DocumentLineItemMutation) ResetItemDescription() {
	m.item_description = nil
	delete(m.clearedFields, documentlineitem.FieldItemDescription)
}

// SetLineQuantity sets the "line_quantity" field.
func (m *DocumentLineItemMutation) SetLineQuantity(s string) {
	m.line_quantity = &s
}

// LineQuantity returns the value of the "line_quantity" field in the mutation.
func (m *DocumentLineItemMutation) LineQuantity() (r string, exists bool) {
	v := m.line_quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldLineQuantity returns the old "line_quantity" field's value of the DocumentLineItem entity.
// If the DocumentLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentLineItemMutation) OldLineQuantity(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLineQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLineQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLineQuantity: %w", err)
	}
	return oldValue.LineQuantity, nil
}

// ClearLineQuantity clears the value of the "line_quantity" field.
func (m *DocumentLineItemMutation) ClearLineQuantity() {
	m.line_quantity = nil
	m.clearedFields[documentlineitem.FieldLineQuantity] = struct{}{}
}

// LineQuantityCleared returns if the "line_quantity" field was cleared in this mutation.
func (m *DocumentLineItemMutation) LineQuantityCleared() bool {
	_, ok := m.clearedFields[documentlineitem.FieldLineQuantity]
	return ok
}

// ResetLineQuantity resets all changes to the "line_quantity" field.
func (m *DocumentLineItemMutation) ResetLineQuantity() {
	m.line_quantity = nil
	delete(m.clearedFields, documentlineitem.FieldLineQuantity)
}

// SetUnitPrice sets the "unit_price" field.
func (m *DocumentLineItemMutation) SetUnitPrice(f float64) {
	m.unit_price = &f
	m.addunit_price = nil
}

// UnitPrice returns the value of the "unit_price" field in the mutation.
func (m *DocumentLineItemMutation) UnitPrice() (r float64, exists bool) {
	v := m.unit_price
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitPrice returns the old "unit_price" field's value of the DocumentLineItem entity.
// If the DocumentLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentLineItemMutation) OldUnitPrice(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitPrice: %w", err)
	}
	return oldValue.UnitPrice, nil
}

// AddUnitPrice adds f to the "unit_price" field.
func (m *DocumentLineItemMutation) AddUnitPrice(f float64) {
	if m.addunit_price != nil {
		*m.addunit_price += f
	} else {
		m.addunit_price = &f
	}
}

// AddedUnitPrice returns the value that was added to the "unit_price" field in this mutation.
func (m *DocumentLineItemMutation) AddedUnitPrice() (r float64, exists bool) {
	v := m.addunit_price
	if v == nil {
		return
	}
	return *v, true
}

// ClearUnitPrice clears the value of the "unit_price" field.
func (m *DocumentLineItemMutation) ClearUnitPrice() {
	m.unit_price = nil
	m.addunit_price = nil
	m.clearedFields[documentlineitem.FieldUnitPrice] = struct{}{}
}

// UnitPriceCleared returns if the "unit_price" field was cleared in this mutation.
func (m *DocumentLineItemMutation) UnitPriceCleared() bool {
	_, ok := m.clearedFields[documentlineitem.FieldUnitPrice]
	return ok
}

// ResetUnitPrice resets all changes to the "unit_price" field.
func (m *DocumentLineItemMutation) ResetUnitPrice() {
	m.unit_price = nil
	m.addunit_price = nil
	delete(m.clearedFields, documentlineitem.FieldUnitPrice)
}

// SetNetAmount sets the "net_amount" field.
func (m *DocumentLineItemMutation) SetNetAmount(f float64) {
	m.net_amount = &f
	m.addnet_amount = nil
}

// NetAmount returns the value of the "net_amount" field in the mutation.
func (m *DocumentLineItemMutation) NetAmount() (r float64, exists bool) {
	v := m.net_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldNetAmount returns the old "net_amount" field's value of the DocumentLineItem entity.
// If the DocumentLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentLineItemMutation) OldNetAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNetAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNetAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNetAmount: %w", err)
	}
	return oldValue.NetAmount, nil
}

// AddNetAmount adds f to the "net_amount" field.
func (m *DocumentLineItemMutation) AddNetAmount(f float64) {
	if m.addnet_amount != nil {
		*m.addnet_amount += f
	} else {
		m.addnet_amount = &f
	}
}

// AddedNetAmount returns the value that was added to the "net_amount" field in this mutation.
func (m *DocumentLineItemMutation) AddedNetAmount() (r float64, exists bool) {
	v := m.addnet_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearNetAmount clears the value of the "net_amount" field.
func (m *DocumentLineItemMutation) ClearNetAmount() {
	m.net_amount = nil
	m.addnet_amount = nil
	m.clearedFields[documentlineitem.FieldNetAmount] = struct{}{}
}

// NetAmountCleared returns if the "net_amount" field was cleared in this mutation.
func (m *DocumentLineItemMutation) NetAmountCleared() bool {
	_, ok := m.clearedFields[documentlineitem.FieldNetAmount]
	return ok
}

// ResetNetAmount resets all changes to the "net_amount" field.
func (m *DocumentLineItemMutation) ResetNetAmount() {
	m.net_amount = nil
	m.addnet_amount = nil
	delete(m.clearedFields, documentlineitem.FieldNetAmount)
}

// SetCalculatedQuantity sets the "calculated_quantity" field.
func (m *DocumentLineItemMutation) SetCalculatedQuantity(f float64) {
	m.calculated_quantity = &f
	m.addcalculated_quantity = nil
}

// CalculatedQuantity returns the value of the "calculated_quantity" field in the mutation.
func (m *DocumentLineItemMutation) CalculatedQuantity() (r float64, exists bool) {
	v := m.calculated_quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldCalculatedQuantity returns the old "calculated_quantity" field's value of the DocumentLineItem entity.
// If the DocumentLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentLineItemMutation) OldCalculatedQuantity(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCalculatedQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCalculatedQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCalculatedQuantity: %w", err)
	}
	return oldValue.CalculatedQuantity, nil
}

// AddCalculatedQuantity adds f to the "calculated_quantity" field.
func (m *DocumentLineItemMutation) AddCalculatedQuantity(f float64) {
	if m.addcalculated_quantity != nil {
		*m.addcalculated_quantity += f
	} else {
		m.addcalculated_quantity = &f
	}
}

// AddedCalculatedQuantity returns the value that was added to the "calculated_quantity" field in this mutation.
func (m *DocumentLineItemMutation) AddedCalculatedQuantity() (r float64, exists bool) {
	v := m.addcalculated_quantity
	if v == nil {
		return
	}
	return *v, true
}

// ClearCalculatedQuantity clears the value of the "calculated_quantity" field.
func (m *DocumentLineItemMutation) ClearCalculatedQuantity() {
	m.calculated_quantity = nil
	m.addcalculated_quantity = nil
	m.clearedFields[documentlineitem.FieldCalculatedQuantity] = struct{}{}
}

// CalculatedQuantityCleared returns if the "calculated_quantity" field was cleared in this mutation.
func (m *DocumentLineItemMutation) CalculatedQuantityCleared() bool {
	_, ok := m.clearedFields[documentlineitem.FieldCalculatedQuantity]
	return ok
}

// ResetCalculatedQuantity resets all changes to the "calculated_quantity" field.
func (m *DocumentLineItemMutation) ResetCalculatedQuantity() {
	m.calculated_quantity = nil
	m.addcalculated_quantity = nil
	delete(m.clearedFields, documentlineitem.FieldCalculatedQuantity)
}

// SetVatCode sets the "vat_code" field.
func (m *DocumentLineItemMutation) SetVatCode(s string) {
	m.vat_code = &s
}

// VatCode returns the value of the "vat_code" field in the mutation.
func (m *DocumentLineItemMutation) VatCode() (r string, exists bool) {
	v := m.vat_code
	if v == nil {
		return
	}
	return *v, true
}

// OldVatCode returns the old "vat_code" field's value of the DocumentLineItem entity.
// If the DocumentLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentLineItemMutation) OldVatCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVatCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVatCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVatCode: %w", err)
	}
	return oldValue.VatCode, nil
}

// ClearVatCode clears the value of the "vat_code" field.
func (m *DocumentLineItemMutation) ClearVatCode() {
	m.vat_code = nil
	m.clearedFields[documentlineitem.FieldVatCode] = struct{}{}
}

// VatCodeCleared returns if the "vat_code" field was cleared in this mutation.
func (m *DocumentLineItemMutation) VatCodeCleared() bool {
	_, ok := m.clearedFields[documentlineitem.FieldVatCode]
	return ok
}

// ResetVatCode resets all changes to the "vat_code" field.
func (m *DocumentLineItemMutation) ResetVatCode() {
	m.vat_code = nil
	delete(m.clearedFields, documentlineitem.FieldVatCode)
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *DocumentLineItemMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[documentlineitem.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *DocumentLineItemMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *DocumentLineItemMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *DocumentLineItemMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the DocumentLineItemMutation builder.
func (m *DocumentLineItemMutation) Where(ps ...predicate.DocumentLineItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentLineItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentLineItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DocumentLineItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentLineItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentLineItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DocumentLineItem).
func (m *DocumentLineItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentLineItemMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.document != nil {
		fields = append(fields, documentlineitem.FieldDocumentID)
	}
	if m.line_number != nil {
		fields = append(fields, documentlineitem.FieldLineNumber)
	}
	if m.item_description != nil {
		fields = append(fields, documentlineitem.FieldItemDescription)
	}
	if m.line_quantity != nil {
		fields = append(fields, documentlineitem.FieldLineQuantity)
	}
	if m.unit_price != nil {
		fields = append(fields, documentlineitem.FieldUnitPrice)
	}
	if m.net_amount != nil {
		fields = append(fields, documentlineitem.FieldNetAmount)
	}
	if m.calculated_quantity != nil {
		fields = append(fields, documentlineitem.FieldCalculatedQuantity)
	}
	if m.vat_code != nil {
		fields = append(fields, documentlineitem.FieldVatCode)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentLineItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case documentlineitem.FieldDocumentID:
		return m.DocumentID()
	case documentlineitem.FieldLineNumber:
		return m.LineNumber()
	case documentlineitem.FieldItemDescription:
		return m.ItemDescription()
	case documentlineitem.FieldLineQuantity:
		return m.LineQuantity()
	case documentlineitem.FieldUnitPrice:
		return m.UnitPrice()
	case documentlineitem.FieldNetAmount:
		return m.NetAmount()
	case documentlineitem.FieldCalculatedQuantity:
		return m.CalculatedQuantity()
	case documentlineitem.FieldVatCode:
		return m.VatCode()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentLineItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case documentlineitem.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case documentlineitem.FieldLineNumber:
		return m.OldLineNumber(ctx)
	case documentlineitem.FieldItemDescription:
		return m.OldItemDescription(ctx)
	case documentlineitem.FieldLineQuantity:
		return m.OldLineQuantity(ctx)
	case documentlineitem.FieldUnitPrice:
		return m.OldUnitPrice(ctx)
	case documentlineitem.FieldNetAmount:
		return m.OldNetAmount(ctx)
	case documentlineitem.FieldCalculatedQuantity:
		return m.OldCalculatedQuantity(ctx)
	case documentlineitem.FieldVatCode:
		return m.OldVatCode(ctx)
	}
	return nil, fmt.Errorf("unknown DocumentLineItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentLineItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case documentlineitem.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case documentlineitem.FieldLineNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLineNumber(v)
		return nil
	case documentlineitem.FieldItemDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemDescription(v)
		return nil
	case documentlineitem.FieldLineQuantity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLineQuantity(v)
		return nil
	case documentlineitem.FieldUnitPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitPrice(v)
		return nil
	case documentlineitem.FieldNetAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNetAmount(v)
		return nil
	case documentlineitem.FieldCalculatedQuantity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCalculatedQuantity(v)
		return nil
	case documentlineitem.FieldVatCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVatCode(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentLineItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentLineItemMutation) AddedFields() []string {
	var fields []string
	if m.addunit_price != nil {
		fields = append(fields, documentlineitem.FieldUnitPrice)
	}
	if m.addnet_amount != nil {
		fields = append(fields, documentlineitem.FieldNetAmount)
	}
	if m.addcalculated_quantity != nil {
		fields = append(fields, documentlineitem.FieldCalculatedQuantity)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentLineItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case documentlineitem.FieldUnitPrice:
		return m.AddedUnitPrice()
	case documentlineitem.FieldNetAmount:
		return m.AddedNetAmount()
	case documentlineitem.FieldCalculatedQuantity:
		return m.AddedCalculatedQuantity()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentLineItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case documentlineitem.FieldUnitPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnitPrice(v)
		return nil
	case documentlineitem.FieldNetAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNetAmount(v)
		return nil
	case documentlineitem.FieldCalculatedQuantity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCalculatedQuantity(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentLineItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentLineItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(documentlineitem.FieldItemDescription) {
		fields = append(fields, documentlineitem.FieldItemDescription)
	}
	if m.FieldCleared(documentlineitem.FieldLineQuantity) {
		fields = append(fields, documentlineitem.FieldLineQuantity)
	}
	if m.FieldCleared(documentlineitem.FieldUnitPrice) {
		fields = append(fields, documentlineitem.FieldUnitPrice)
	}
	if m.FieldCleared(documentlineitem.FieldNetAmount) {
		fields = append(fields, documentlineitem.FieldNetAmount)
	}
	if m.FieldCleared(documentlineitem.FieldCalculatedQuantity) {
		fields = append(fields, documentlineitem.FieldCalculatedQuantity)
	}
	if m.FieldCleared(documentlineitem.FieldVatCode) {
		fields = append(fields, documentlineitem.FieldVatCode)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentLineItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentLineItemMutation) ClearField(name string) error {
	switch name {
	case documentlineitem.FieldItemDescription:
		m.ClearItemDescription()
		return nil
	case documentlineitem.FieldLineQuantity:
		m.ClearLineQuantity()
		return nil
	case documentlineitem.FieldUnitPrice:
		m.ClearUnitPrice()
		return nil
	case documentlineitem.FieldNetAmount:
		m.ClearNetAmount()
		return nil
	case documentlineitem.FieldCalculatedQuantity:
		m.ClearCalculatedQuantity()
		return nil
	case documentlineitem.FieldVatCode:
		m.ClearVatCode()
		return nil
	}
	return fmt.Errorf("unknown DocumentLineItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentLineItemMutation) ResetField(name string) error {
	switch name {
	case documentlineitem.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case documentlineitem.FieldLineNumber:
		m.ResetLineNumber()
		return nil
	case documentlineitem.FieldItemDescription:
		m.ResetItemDescription()
		return nil
	case documentlineitem.FieldLineQuantity:
		m.ResetLineQuantity()
		return nil
	case documentlineitem.FieldUnitPrice:
		m.ResetUnitPrice()
		return nil
	case documentlineitem.FieldNetAmount:
		m.ResetNetAmount()
		return nil
	case documentlineitem.FieldCalculatedQuantity:
		m.ResetCalculatedQuantity()
		return nil
	case documentlineitem.FieldVatCode:
		m.ResetVatCode()
		return nil
	}
	return fmt.Errorf("unknown DocumentLineItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentLineItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, documentlineitem.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentLineItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case documentlineitem.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentLineItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentLineItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentLineItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, documentlineitem.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentLineItemMutation) EdgeCleared(name string) bool {
	switch name {
	case documentlineitem.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentLineItemMutation) ClearEdge(name string) error {
	switch name {
	case documentlineitem.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown DocumentLineItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentLineItemMutation) ResetEdge(name string) error {
	switch name {
	case documentlineitem.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown DocumentLineItem edge %s", name)
}

// ModelTrainingMutation represents an operation that mutates the ModelTraining nodes in the graph.
type ModelTrainingMutation struct {
	config
	op                        Op
	typ                       string
	id                        *uuid.UUID
	document_format           *string
	model_id                  *string
	model_version             *int
	addmodel_version          *int
	average_model_accuracy    *float64
	addaverage_model_accuracy *float64
	training_documents        *json.RawMessage
	appendtraining_documents  json.RawMessage
	trained_at                *time.Time
	created_at                *time.Time
	clearedFields             map[string]struct{}
	done                      bool
	oldValue                  func(context.Context) (*ModelTraining, error)
	predicates                []predicate.ModelTraining
}

var _ ent.Mutation = (*ModelTrainingMutation)(nil)

// modeltrainingOption allows management of the mutation configuration using functional options.
type modeltrainingOption func(*ModelTrainingMutation)

// newModelTrainingMutation creates new mutation for the ModelTraining entity.
func newModelTrainingMutation(c config, op Op, opts ...modeltrainingOption) *ModelTrainingMutation {
	m := &ModelTrainingMutation{
		config:        c,
		op:            op,
		typ:           TypeModelTraining,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withModelTrainingID sets the ID field of the mutation.
func withModelTrainingID(id uuid.UUID) modeltrainingOption {
	return func(m *ModelTrainingMutation) {
		var (
			err   error
			once  sync.Once
			value *ModelTraining
		)
		m.oldValue = func(ctx context.Context) (*ModelTraining, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ModelTraining.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withModelTraining sets the old ModelTraining of the mutation.
func withModelTraining(node *ModelTraining) modeltrainingOption {
	return func(m *ModelTrainingMutation) {
		m.oldValue = func(context.Context) (*ModelTraining, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ModelTrainingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ModelTrainingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ModelTraining entities.
func (m *ModelTrainingMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ModelTrainingMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ModelTrainingMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ModelTraining.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentFormat sets the "document_format" field.
func (m *ModelTrainingMutation) SetDocumentFormat(s string) {
	m.document_format = &s
}

// DocumentFormat returns the value of the "document_format" field in the mutation.
func (m *ModelTrainingMutation) DocumentFormat() (r string, exists bool) {
	v := m.document_format
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentFormat returns the old "document_format" field's value of the ModelTraining entity.
// If the ModelTraining object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelTrainingMutation) OldDocumentFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentFormat: %w", err)
	}
	return oldValue.DocumentFormat, nil
}

// ResetDocumentFormat resets all changes to the "document_format" field.
func (m *ModelTrainingMutation) ResetDocumentFormat() {
	m.document_format = nil
}

// SetModelID sets the "model_id" field.
func (m *ModelTrainingMutation) SetModelID(s string) {
	m.model_id = &s
}

// ModelID returns the value of the "model_id" field in the mutation.
func (m *ModelTrainingMutation) ModelID() (r string, exists bool) {
	v := m.model_id
	if v == nil {
		return
	}
	return *v, true
}

// OldModelID returns the old "model_id" field's value of the ModelTraining entity.
// If the ModelTraining object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelTrainingMutation) OldModelID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelID: %w", err)
	}
	return oldValue.ModelID, nil
}

// ResetModelID resets all changes to the "model_id" field.
func (m *ModelTrainingMutation) ResetModelID() {
	m.model_id = nil
}

// SetModelVersion sets the "model_version" field.
func (m *ModelTrainingMutation) SetModelVersion(i int) {
	m.model_version = &i
	m.addmodel_version = nil
}

// ModelVersion returns the value of the "model_version" field in the mutation.
func (m *ModelTrainingMutation) ModelVersion() (r int, exists bool) {
	v := m.model_version
	if v == nil {
		return
	}
	return *v, true
}

// OldModelVersion returns the old "model_version" field's value of the ModelTraining entity.
// If the ModelTraining object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelTrainingMutation) OldModelVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelVersion: %w", err)
	}
	return oldValue.ModelVersion, nil
}

// AddModelVersion adds i to the "model_version" field.
func (m *ModelTrainingMutation) AddModelVersion(i int) {
	if m.addmodel_version != nil {
		*m.addmodel_version += i
	} else {
		m.addmodel_version = &i
	}
}

// AddedModelVersion returns the value that was added to the "model_version" field in this mutation.
func (m *ModelTrainingMutation) AddedModelVersion() (r int, exists bool) {
	v := m.addmodel_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetModelVersion resets all changes to the "model_version" field.
func (m *ModelTrainingMutation) ResetModelVersion() {
	m.model_version = nil
	m.addmodel_version = nil
}

// SetAverageModelAccuracy sets the "average_model_accuracy" field.
func (m *ModelTrainingMutation) SetAverageModelAccuracy(f float64) {
	m.average_model_accuracy = &f
	m.addaverage_model_accuracy = nil
}

// AverageModelAccuracy returns the value of the "average_model_accuracy" field in the mutation.
func (m *ModelTrainingMutation) AverageModelAccuracy() (r float64, exists bool) {
	v := m.average_model_accuracy
	if v == nil {
		return
	}
	return *v, true
}

// OldAverageModelAccuracy returns the old "average_model_accuracy" field's value of the ModelTraining entity.
// If the ModelTraining object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelTrainingMutation) OldAverageModelAccuracy(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAverageModelAccuracy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAverageModelAccuracy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAverageModelAccuracy: %w", err)
	}
	return oldValue.AverageModelAccuracy, nil
}

// AddAverageModelAccuracy adds f to the "average_model_accuracy" field.
func (m *ModelTrainingMutation) AddAverageModelAccuracy(f float64) {
	if m.addaverage_model_accuracy != nil {
		*m.addaverage_model_accuracy += f
	} else {
		m.addaverage_model_accuracy = &f
	}
}

// AddedAverageModelAccuracy returns the value that was added to the "average_model_accuracy" field in this mutation.
func (m *ModelTrainingMutation) AddedAverageModelAccuracy() (r float64, exists bool) {
	v := m.addaverage_model_accuracy
	if v == nil {
		return
	}
	return *v, true
}

// ClearAverageModelAccuracy clears the value of the "average_model_accuracy" field.
func (m *ModelTrainingMutation) ClearAverageModelAccuracy() {
	m.average_model_accuracy = nil
	m.addaverage_model_accuracy = nil
	m.clearedFields[modeltraining.FieldAverageModelAccuracy] = struct{}{}
}

// AverageModelAccuracyCleared returns if the "average_model_accuracy" field was cleared in this mutation.
func (m *ModelTrainingMutation) AverageModelAccuracyCleared() bool {
	_, ok := m.clearedFields[modeltraining.FieldAverageModelAccuracy]
	return ok
}

// ResetAverageModelAccuracy resets all changes to the "average_model_accuracy" field.
func (m *ModelTrainingMutation) ResetAverageModelAccuracy() {
	m.average_model_accuracy = nil
	m.addaverage_model_accuracy = nil
	delete(m.clearedFields, modeltraining.FieldAverageModelAccuracy)
}

// SetTrainingDocuments sets the "training_documents" field.
func (m *ModelTrainingMutation) SetTrainingDocuments(jm json.RawMessage) {
	m.training_documents = &jm
	m.appendtraining_documents = nil
}

// TrainingDocuments returns the value of the "training_documents" field in the mutation.
func (m *ModelTrainingMutation) TrainingDocuments() (r json.RawMessage, exists bool) {
	v := m.training_documents
	if v == nil {
		return
	}
	return *v, true
}

// OldTrainingDocuments returns the old "training_documents" field's value of the ModelTraining entity.
// If the ModelTraining object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelTrainingMutation) OldTrainingDocuments(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrainingDocuments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrainingDocuments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrainingDocuments: %w", err)
	}
	return oldValue.TrainingDocuments, nil
}

// AppendTrainingDocuments adds jm to the "training_documents" field.
func (m *ModelTrainingMutation) AppendTrainingDocuments(jm json.RawMessage) {
	m.appendtraining_documents = append(m.appendtraining_documents, jm...)
}

// AppendedTrainingDocuments returns the list of values that were appended to the "training_documents" field in this mutation.
func (m *ModelTrainingMutation) AppendedTrainingDocuments() (json.RawMessage, bool) {
	if len(m.appendtraining_documents) == 0 {
		return nil, false
	}
	return m.appendtraining_documents, true
}

// ClearTrainingDocuments clears the value of the "training_documents" field.
func (m *ModelTrainingMutation) ClearTrainingDocuments() {
	m.training_documents = nil
	m.appendtraining_documents = nil
	m.clearedFields[modeltraining.FieldTrainingDocuments] = struct{}{}
}

// TrainingDocumentsCleared returns if the "training_documents" field was cleared in this mutation.
func (m *ModelTrainingMutation) TrainingDocumentsCleared() bool {
	_, ok := m.clearedFields[modeltraining.FieldTrainingDocuments]
	return ok
}

// ResetTrainingDocuments resets all changes to the "training_documents" field.
func (m *ModelTrainingMutation) ResetTrainingDocuments() {
	m.training_documents = nil
	m.appendtraining_documents = nil
	delete(m.clearedFields, modeltraining.FieldTrainingDocuments)
}

// SetTrainedAt sets the "trained_at" field.
func (m *ModelTrainingMutation) SetTrainedAt(t time.Time) {
	m.trained_at = &t
}

// TrainedAt returns the value of the "trained_at" field in the mutation.
func (m *ModelTrainingMutation) TrainedAt() (r time.Time, exists bool) {
	v := m.trained_at
	if v == nil {
		return
	}
	return *v, true
}

// OldTrainedAt returns the old "trained_at" field's value of the ModelTraining entity.
// If the ModelTraining object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelTrainingMutation) OldTrainedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrainedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrainedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrainedAt: %w", err)
	}
	return oldValue.TrainedAt, nil
}

// ResetTrainedAt resets all changes to the "trained_at" field.
func (m *ModelTrainingMutation) ResetTrainedAt() {
	m.trained_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ModelTrainingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ModelTrainingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ModelTraining entity.
// If the ModelTraining object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelTrainingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ModelTrainingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ModelTrainingMutation builder.
func (m *ModelTrainingMutation) Where(ps ...predicate.ModelTraining) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ModelTrainingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ModelTrainingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ModelTraining, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ModelTrainingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ModelTrainingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ModelTraining).
func (m *ModelTrainingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ModelTrainingMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.document_format != nil {
		fields = append(fields, modeltraining.FieldDocumentFormat)
	}
	if m.model_id != nil {
		fields = append(fields, modeltraining.FieldModelID)
	}
	if m.model_version != nil {
		fields = append(fields, modeltraining.FieldModelVersion)
	}
	if m.average_model_accuracy != nil {
		fields = append(fields, modeltraining.FieldAverageModelAccuracy)
	}
	if m.training_documents != nil {
		fields = append(fields, modeltraining.FieldTrainingDocuments)
	}
	if m.trained_at != nil {
		fields = append(fields, modeltraining.FieldTrainedAt)
	}
	if m.created_at != nil {
		fields = append(fields, modeltraining.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ModelTrainingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case modeltraining.FieldDocumentFormat:
		return m.DocumentFormat()
	case modeltraining.FieldModelID:
		return m.ModelID()
	case modeltraining.FieldModelVersion:
		return m.ModelVersion()
	case modeltraining.FieldAverageModelAccuracy:
		return m.AverageModelAccuracy()
	case modeltraining.FieldTrainingDocuments:
		return m.TrainingDocuments()
	case modeltraining.FieldTrainedAt:
		return m.TrainedAt()
	case modeltraining.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ModelTrainingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case modeltraining.FieldDocumentFormat:
		return m.OldDocumentFormat(ctx)
	case modeltraining.FieldModelID:
		return m.OldModelID(ctx)
	case modeltraining.FieldModelVersion:
		return m.OldModelVersion(ctx)
	case modeltraining.FieldAverageModelAccuracy:
		return m.OldAverageModelAccuracy(ctx)
	case modeltraining.FieldTrainingDocuments:
		return m.OldTrainingDocuments(ctx)
	case modeltraining.FieldTrainedAt:
		return m.OldTrainedAt(ctx)
	case modeltraining.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ModelTraining field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModelTrainingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case modeltraining.FieldDocumentFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentFormat(v)
		return nil
	case modeltraining.FieldModelID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelID(v)
		return nil
	case modeltraining.FieldModelVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelVersion(v)
		return nil
	case modeltraining.FieldAverageModelAccuracy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAverageModelAccuracy(v)
		return nil
	case modeltraining.FieldTrainingDocuments:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrainingDocuments(v)
		return nil
	case modeltraining.FieldTrainedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrainedAt(v)
		return nil
	case modeltraining.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ModelTraining field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ModelTrainingMutation) AddedFields() []string {
	var fields []string
	if m.addmodel_version != nil {
		fields = append(fields, modeltraining.FieldModelVersion)
	}
	if m.addaverage_model_accuracy != nil {
		fields = append(fields, modeltraining.FieldAverageModelAccuracy)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ModelTrainingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case modeltraining.FieldModelVersion:
		return m.AddedModelVersion()
	case modeltraining.FieldAverageModelAccuracy:
		return m.AddedAverageModelAccuracy()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModelTrainingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case modeltraining.FieldModelVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddModelVersion(v)
		return nil
	case modeltraining.FieldAverageModelAccuracy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAverageModelAccuracy(v)
		return nil
	}
	return fmt.Errorf("unknown ModelTraining numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ModelTrainingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(modeltraining.FieldAverageModelAccuracy) {
		fields = append(fields, modeltraining.FieldAverageModelAccuracy)
	}
	if m.FieldCleared(modeltraining.FieldTrainingDocuments) {
		fields = append(fields, modeltraining.FieldTrainingDocuments)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ModelTrainingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ModelTrainingMutation) ClearField(name string) error {
	switch name {
	case modeltraining.FieldAverageModelAccuracy:
		m.ClearAverageModelAccuracy()
		return nil
	case modeltraining.FieldTrainingDocuments:
		m.ClearTrainingDocuments()
		return nil
	}
	return fmt.Errorf("unknown ModelTraining nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ModelTrainingMutation) ResetField(name string) error {
	switch name {
	case modeltraining.FieldDocumentFormat:
		m.ResetDocumentFormat()
		return nil
	case modeltraining.FieldModelID:
		m.ResetModelID()
		return nil
	case modeltraining.FieldModelVersion:
		m.ResetModelVersion()
		return nil
	case modeltraining.FieldAverageModelAccuracy:
		m.ResetAverageModelAccuracy()
		return nil
	case modeltraining.FieldTrainingDocuments:
		m.ResetTrainingDocuments()
		return nil
	case modeltraining.FieldTrainedAt:
		m.ResetTrainedAt()
		return nil
	case modeltraining.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ModelTraining field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ModelTrainingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ModelTrainingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ModelTrainingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ModelTrainingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ModelTrainingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ModelTrainingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ModelTrainingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ModelTraining unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ModelTrainingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ModelTraining edge %s", name)
}
