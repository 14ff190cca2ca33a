// Code generated by ent, DO NOT EDIT.

package documentlineitem

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the documentlineitem type in the database.
	Label = "document_line_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldLineNumber holds the string denoting the line_number field in the database.
	FieldLineNumber = "line_number"
	// FieldItemDescription holds the string denoting the item_description field in the database.
	FieldItemDescription = "item_description"
	// FieldLineQuantity holds the string denoting the line_quantity field in the database.
	FieldLineQuantity = "line_quantity"
	// FieldUnitPrice holds the string denoting the unit_price field in the database.
	FieldUnitPrice = "unit_price"
	// FieldNetAmount holds the string denoting the net_amount field in the database.
	FieldNetAmount = "net_amount"
	// FieldCalculatedQuantity holds the string denoting the calculated_quantity field in the database.
	FieldCalculatedQuantity = "calculated_quantity"
	// FieldVatCode holds the string denoting the vat_code field in the database.
	FieldVatCode = "vat_code"
	// EdgeDocument holds the string denoting the document edge name in mutations.
	EdgeDocument = "document"
	// Table holds the table name of the documentlineitem in the database.
	Table = "document_line_items"
	// DocumentTable is the table that holds the document relation/edge.
	DocumentTable = "document_line_items"
	// DocumentInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentInverseTable = "documents"
	// DocumentColumn is the table column denoting the document relation/edge.
	DocumentColumn = "document_id"
)

// Columns holds all SQL columns for documentlineitem fields.
var Columns = []string{
	FieldID,
	FieldDocumentID,
	FieldLineNumber,
	FieldItemDescription,
	FieldLineQuantity,
	FieldUnitPrice,
	FieldNetAmount,
	FieldCalculatedQuantity,
	FieldVatCode,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// LineNumberValidator is a validator for the "line_number" field. It is called by the builders before save.
	LineNumberValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the DocumentLineItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByLineNumber orders the results by the line_number field.
func ByLineNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLineNumber, opts...).ToFunc()
}

// ByItemDescription orders the results by the item_description field.
func ByItemDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemDescription, opts...).ToFunc()
}

// ByLineQuantity orders the results by the line_quantity field.
func ByLineQuantity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLineQuantity, opts...).ToFunc()
}

// ByUnitPrice orders the results by the unit_price field.
func ByUnitPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitPrice, opts...).ToFunc()
}

// ByNetAmount orders the results by the net_amount field.
func ByNetAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNetAmount, opts...).ToFunc()
}

// ByCalculatedQuantity orders the results by the calculated_quantity field.
func ByCalculatedQuantity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCalculatedQuantity, opts...).ToFunc()
}

// ByVatCode orders the results by the vat_code field.
func ByVatCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVatCode, opts...).ToFunc()
}

// ByDocumentField orders the results by document field.
func ByDocumentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentStep(), sql.OrderByField(field, opts...))
	}
}
func newDocumentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
	)
}
