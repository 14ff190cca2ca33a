// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/formshred/formshred/gen/ent/document"
	"github.com/google/uuid"
)

// Document is the model entity for the Document schema.
type Document struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FileName holds the value of the "file_name" field.
	FileName string `json:"file_name,omitempty"`
	// DocumentFormat holds the value of the "document_format" field.
	DocumentFormat *string `json:"document_format,omitempty"`
	// RecognizerStatus holds the value of the "recognizer_status" field.
	RecognizerStatus *string `json:"recognizer_status,omitempty"`
	// RecognizerErrors holds the value of the "recognizer_errors" field.
	RecognizerErrors json.RawMessage `json:"recognizer_errors,omitempty"`
	// PoNumber holds the value of the "po_number" field.
	PoNumber *string `json:"po_number,omitempty"`
	// InvoiceNumber holds the value of the "invoice_number" field.
	InvoiceNumber *string `json:"invoice_number,omitempty"`
	// AccountNumber holds the value of the "account_number" field.
	AccountNumber *string `json:"account_number,omitempty"`
	// OrderDate holds the value of the "order_date" field.
	OrderDate *time.Time `json:"order_date,omitempty"`
	// TaxDate holds the value of the "tax_date" field.
	TaxDate *time.Time `json:"tax_date,omitempty"`
	// TaxPeriod holds the value of the "tax_period" field.
	TaxPeriod *string `json:"tax_period,omitempty"`
	// NetTotal holds the value of the "net_total" field.
	NetTotal *float64 `json:"net_total,omitempty"`
	// VatTotal holds the value of the "vat_total" field.
	VatTotal *float64 `json:"vat_total,omitempty"`
	// GrossTotal holds the value of the "gross_total" field.
	GrossTotal *float64 `json:"gross_total,omitempty"`
	// DeliveryPostCode holds the value of the "delivery_post_code" field.
	DeliveryPostCode *string `json:"delivery_post_code,omitempty"`
	// UniqueRunIdentifier holds the value of the "unique_run_identifier" field.
	UniqueRunIdentifier string `json:"unique_run_identifier,omitempty"`
	// Thumbprint holds the value of the "thumbprint" field.
	Thumbprint *string `json:"thumbprint,omitempty"`
	// ModelID holds the value of the "model_id" field.
	ModelID *string `json:"model_id,omitempty"`
	// ModelVersion holds the value of the "model_version" field.
	ModelVersion *string `json:"model_version,omitempty"`
	// IsValid holds the value of the "is_valid" field.
	IsValid bool `json:"is_valid,omitempty"`
	// TerminalErrorCount holds the value of the "terminal_error_count" field.
	TerminalErrorCount int `json:"terminal_error_count,omitempty"`
	// WarningErrorCount holds the value of the "warning_error_count" field.
	WarningErrorCount int `json:"warning_error_count,omitempty"`
	// ShreddingUtcTime holds the value of the "shredding_utc_time" field.
	ShreddingUtcTime time.Time `json:"shredding_utc_time,omitempty"`
	// TimeToShredMs holds the value of the "time_to_shred_ms" field.
	TimeToShredMs int64 `json:"time_to_shred_ms,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DocumentQuery when eager-loading is set.
	Edges        DocumentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DocumentEdges holds the relations/edges for other nodes in the graph.
type DocumentEdges struct {
	// LineItems holds the value of the line_items edge.
	LineItems []*DocumentLineItem `json:"line_items,omitempty"`
	// ShreddingErrors holds the value of the shredding_errors edge.
	ShreddingErrors []*DocumentError `json:"shredding_errors,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// LineItemsOrErr returns the LineItems value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentEdges) LineItemsOrErr() ([]*DocumentLineItem, error) {
	if e.loadedTypes[0] {
		return e.LineItems, nil
	}
	return nil, &NotLoadedError{edge: "line_items"}
}

// ShreddingErrorsOrErr returns the ShreddingErrors value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentEdges) ShreddingErrorsOrErr() ([]*DocumentError, error) {
	if e.loadedTypes[1] {
		return e.ShreddingErrors, nil
	}
	return nil, &NotLoadedError{edge: "shredding_errors"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Document) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case document.FieldRecognizerErrors:
			values[i] = new([]byte)
		case document.FieldIsValid:
			values[i] = new(sql.NullBool)
		case document.FieldNetTotal, document.FieldVatTotal, document.FieldGrossTotal:
			values[i] = new(sql.NullFloat64)
		case document.FieldTerminalErrorCount, document.FieldWarningErrorCount, document.FieldTimeToShredMs:
			values[i] = new(sql.NullInt64)
		case document.FieldFileName, document.FieldDocumentFormat, document.FieldRecognizerStatus, document.FieldPoNumber, document.FieldInvoiceNumber, document.FieldAccountNumber, document.FieldTaxPeriod, document.FieldDeliveryPostCode, document.FieldUniqueRunIdentifier, document.FieldThumbprint, document.FieldModelID, document.FieldModelVersion:
			values[i] = new(sql.NullString)
		case document.FieldOrderDate, document.FieldTaxDate, document.FieldShreddingUtcTime, document.FieldCreatedAt, document.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case document.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Document fields.
func (_m *Document) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case document.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case document.FieldFileName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_name", values[i])
			} else if value.Valid {
				_m.FileName = value.String
			}
		case document.FieldDocumentFormat:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_format", values[i])
			} else if value.Valid {
				_m.DocumentFormat = new(string)
				*_m.DocumentFormat = value.String
			}
		case document.FieldRecognizerStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recognizer_status", values[i])
			} else if value.Valid {
				_m.RecognizerStatus = new(string)
				*_m.RecognizerStatus = value.String
			}
		case document.FieldRecognizerErrors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recognizer_errors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RecognizerErrors); err != nil {
					return fmt.Errorf("unmarshal field recognizer_errors: %w", err)
				}
			}
		case document.FieldPoNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field po_number", values[i])
			} else if value.Valid {
				_m.PoNumber = new(string)
				*_m.PoNumber = value.String
			}
		case document.FieldInvoiceNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_number", values[i])
			} else if value.Valid {
				_m.InvoiceNumber = new(string)
				*_m.InvoiceNumber = value.String
			}
		case document.FieldAccountNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field account_number", values[i])
			} else if value.Valid {
				_m.AccountNumber = new(string)
				*_m.AccountNumber = value.String
			}
		case document.FieldOrderDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field order_date", values[i])
			} else if value.Valid {
				_m.OrderDate = new(time.Time)
				*_m.OrderDate = value.Time
			}
		case document.FieldTaxDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field tax_date", values[i])
			} else if value.Valid {
				_m.TaxDate = new(time.Time)
				*_m.TaxDate = value.Time
			}
		case document.FieldTaxPeriod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tax_period", values[i])
			} else if value.Valid {
				_m.TaxPeriod = new(string)
				*_m.TaxPeriod = value.String
			}
		case document.FieldNetTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field net_total", values[i])
			} else if value.Valid {
				_m.NetTotal = new(float64)
				*_m.NetTotal = value.Float64
			}
		case document.FieldVatTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field vat_total", values[i])
			} else if value.Valid {
				_m.VatTotal = new(float64)
				*_m.VatTotal = value.Float64
			}
		case document.FieldGrossTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field gross_total", values[i])
			} else if value.Valid {
				_m.GrossTotal = new(float64)
				*_m.GrossTotal = value.Float64
			}
		case document.FieldDeliveryPostCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field delivery_post_code", values[i])
			} else if value.Valid {
				_m.DeliveryPostCode = new(string)
				*_m.DeliveryPostCode = value.String
			}
		case document.FieldUniqueRunIdentifier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unique_run_identifier", values[i])
			} else if value.Valid {
				_m.UniqueRunIdentifier = value.String
			}
		case document.FieldThumbprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field thumbprint", values[i])
			} else if value.Valid {
				_m.Thumbprint = new(string)
				*_m.Thumbprint = value.String
			}
		case document.FieldModelID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_id", values[i])
			} else if value.Valid {
				_m.ModelID = new(string)
				*_m.ModelID = value.String
			}
		case document.FieldModelVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_version", values[i])
			} else if value.Valid {
				_m.ModelVersion = new(string)
				*_m.ModelVersion = value.String
			}
		case document.FieldIsValid:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_valid", values[i])
			} else if value.Valid {
				_m.IsValid = value.Bool
			}
		case document.FieldTerminalErrorCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field terminal_error_count", values[i])
			} else if value.Valid {
				_m.TerminalErrorCount = int(value.Int64)
			}
		case document.FieldWarningErrorCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field warning_error_count", values[i])
			} else if value.Valid {
				_m.WarningErrorCount = int(value.Int64)
			}
		case document.FieldShreddingUtcTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field shredding_utc_time", values[i])
			} else if value.Valid {
				_m.ShreddingUtcTime = value.Time
			}
		case document.FieldTimeToShredMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_to_shred_ms", values[i])
			} else if value.Valid {
				_m.TimeToShredMs = value.Int64
			}
		case document.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case document.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Document.
// This includes values selected through modifiers, order, etc.
func (_m *Document) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLineItems queries the "line_items" edge of the Document entity.
func (_m *Document) QueryLineItems() *DocumentLineItemQuery {
	return NewDocumentClient(_m.config).QueryLineItems(_m)
}

// QueryShreddingErrors queries the "shredding_errors" edge of the Document entity.
func (_m *Document) QueryShreddingErrors() *DocumentErrorQuery {
	return NewDocumentClient(_m.config).QueryShreddingErrors(_m)
}

// Update returns a builder for updating this Document.
// Note that you need to call Document.Unwrap() before calling this method if this Document
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Document) Update() *DocumentUpdateOne {
	return NewDocumentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Document entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Document) Unwrap() *Document {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Document is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Document) String() string {
	var builder strings.Builder
	builder.WriteString("Document(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("file_name=")
	builder.WriteString(_m.FileName)
	builder.WriteString(", ")
	if v := _m.DocumentFormat; v != nil {
		builder.WriteString("document_format=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RecognizerStatus; v != nil {
		builder.WriteString("recognizer_status=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("recognizer_errors=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecognizerErrors))
	builder.WriteString(", ")
	if v := _m.PoNumber; v != nil {
		builder.WriteString("po_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.InvoiceNumber; v != nil {
		builder.WriteString("invoice_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AccountNumber; v != nil {
		builder.WriteString("account_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.OrderDate; v != nil {
		builder.WriteString("order_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.TaxDate; v != nil {
		builder.WriteString("tax_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.TaxPeriod; v != nil {
		builder.WriteString("tax_period=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.NetTotal; v != nil {
		builder.WriteString("net_total=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.VatTotal; v != nil {
		builder.WriteString("vat_total=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.GrossTotal; v != nil {
		builder.WriteString("gross_total=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.DeliveryPostCode; v != nil {
		builder.WriteString("delivery_post_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("unique_run_identifier=")
	builder.WriteString(_m.UniqueRunIdentifier)
	builder.WriteString(", ")
	if v := _m.Thumbprint; v != nil {
		builder.WriteString("thumbprint=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ModelID; v != nil {
		builder.WriteString("model_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ModelVersion; v != nil {
		builder.WriteString("model_version=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_valid=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsValid))
	builder.WriteString(", ")
	builder.WriteString("terminal_error_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.TerminalErrorCount))
	builder.WriteString(", ")
	builder.WriteString("warning_error_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.WarningErrorCount))
	builder.WriteString(", ")
	builder.WriteString("shredding_utc_time=")
	builder.WriteString(_m.ShreddingUtcTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("time_to_shred_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeToShredMs))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Documents is a parsable slice of Document.
type Documents []*Document
