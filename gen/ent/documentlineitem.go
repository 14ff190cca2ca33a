// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/formshred/formshred/gen/ent/document"
	"github.com/formshred/formshred/gen/ent/documentlineitem"
	"github.com/google/uuid"
)

// DocumentLineItem is the model entity for the DocumentLineItem schema.
type DocumentLineItem struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// LineNumber holds the value of the "line_number" field.
	LineNumber string `json:"line_number,omitempty"`
	// ItemDescription holds the value of the "item_description" field.
	ItemDescription *string `json:"item_description,omitempty"`
	// LineQuantity holds the value of the "line_quantity" field.
	LineQuantity *string `json:"line_quantity,omitempty"`
	// UnitPrice holds the value of the "unit_price" field.
	UnitPrice *float64 `json:"unit_price,omitempty"`
	// NetAmount holds the value of the "net_amount" field.
	NetAmount *float64 `json:"net_amount,omitempty"`
	// CalculatedQuantity holds the value of the "calculated_quantity" field.
	CalculatedQuantity *float64 `json:"calculated_quantity,omitempty"`
	// VatCode holds the value of the "vat_code" field.
	VatCode *string `json:"vat_code,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DocumentLineItemQuery when eager-loading is set.
	Edges        DocumentLineItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DocumentLineItemEdges holds the relations/edges for other nodes in the graph.
type DocumentLineItemEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DocumentLineItemEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DocumentLineItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case documentlineitem.FieldUnitPrice, documentlineitem.FieldNetAmount, documentlineitem.FieldCalculatedQuantity:
			values[i] = new(sql.NullFloat64)
		case documentlineitem.FieldLineNumber, documentlineitem.FieldItemDescription, documentlineitem.FieldLineQuantity, documentlineitem.FieldVatCode:
			values[i] = new(sql.NullString)
		case documentlineitem.FieldID, documentlineitem.FieldDocumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DocumentLineItem fields.
func (_m *DocumentLineItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case documentlineitem.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case documentlineitem.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				_m.DocumentID = *value
			}
		case documentlineitem.FieldLineNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field line_number", values[i])
			} else if value.Valid {
				_m.LineNumber = value.String
			}
		case documentlineitem.FieldItemDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_description", values[i])
			} else if value.Valid {
				_m.ItemDescription = new(string)
				*_m.ItemDescription = value.String
			}
		case documentlineitem.FieldLineQuantity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field line_quantity", values[i])
			} else if value.Valid {
				_m.LineQuantity = new(string)
				*_m.LineQuantity = value.String
			}
		case documentlineitem.FieldUnitPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field unit_price", values[i])
			} else if value.Valid {
				_m.UnitPrice = new(float64)
				*_m.UnitPrice = value.Float64
			}
		case documentlineitem.FieldNetAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field net_amount", values[i])
			} else if value.Valid {
				_m.NetAmount = new(float64)
				*_m.NetAmount = value.Float64
			}
		case documentlineitem.FieldCalculatedQuantity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field calculated_quantity", values[i])
			} else if value.Valid {
				_m.CalculatedQuantity = new(float64)
				*_m.CalculatedQuantity = value.Float64
			}
		case documentlineitem.FieldVatCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vat_code", values[i])
			} else if value.Valid {
				_m.VatCode = new(string)
				*_m.VatCode = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DocumentLineItem.
// This includes values selected through modifiers, order, etc.
func (_m *DocumentLineItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the DocumentLineItem entity.
func (_m *DocumentLineItem) QueryDocument() *DocumentQuery {
	return NewDocumentLineItemClient(_m.config).QueryDocument(_m)
}

// Update returns a builder for updating this DocumentLineItem.
// Note that you need to call DocumentLineItem.Unwrap() before calling this method if this DocumentLineItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DocumentLineItem) Update() *DocumentLineItemUpdateOne {
	return NewDocumentLineItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DocumentLineItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DocumentLineItem) Unwrap() *DocumentLineItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DocumentLineItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DocumentLineItem) String() string {
	var builder strings.Builder
	builder.WriteString("DocumentLineItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("line_number=")
	builder.WriteString(_m.LineNumber)
	builder.WriteString(", ")
	if v := _m.ItemDescription; v != nil {
		builder.WriteString("item_description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LineQuantity; v != nil {
		builder.WriteString("line_quantity=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.UnitPrice; v != nil {
		builder.WriteString("unit_price=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.NetAmount; v != nil {
		builder.WriteString("net_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CalculatedQuantity; v != nil {
		builder.WriteString("calculated_quantity=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.VatCode; v != nil {
		builder.WriteString("vat_code=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// DocumentLineItems is a parsable slice of DocumentLineItem.
type DocumentLineItems []*DocumentLineItem
