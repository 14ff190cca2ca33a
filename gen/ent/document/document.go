// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the document type in the database.
	Label = "document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFileName holds the string denoting the file_name field in the database.
	FieldFileName = "file_name"
	// FieldDocumentFormat holds the string denoting the document_format field in the database.
	FieldDocumentFormat = "document_format"
	// FieldRecognizerStatus holds the string denoting the recognizer_status field in the database.
	FieldRecognizerStatus = "recognizer_status"
	// FieldRecognizerErrors holds the string denoting the recognizer_errors field in the database.
	FieldRecognizerErrors = "recognizer_errors"
	// FieldPoNumber holds the string denoting the po_number field in the database.
	FieldPoNumber = "po_number"
	// FieldInvoiceNumber holds the string denoting the invoice_number field in the database.
	FieldInvoiceNumber = "invoice_number"
	// FieldAccountNumber holds the string denoting the account_number field in the database.
	FieldAccountNumber = "account_number"
	// FieldOrderDate holds the string denoting the order_date field in the database.
	FieldOrderDate = "order_date"
	// FieldTaxDate holds the string denoting the tax_date field in the database.
	FieldTaxDate = "tax_date"
	// FieldTaxPeriod holds the string denoting the tax_period field in the database.
	FieldTaxPeriod = "tax_period"
	// FieldNetTotal holds the string denoting the net_total field in the database.
	FieldNetTotal = "net_total"
	// FieldVatTotal holds the string denoting the vat_total field in the database.
	FieldVatTotal = "vat_total"
	// FieldGrossTotal holds the string denoting the gross_total field in the database.
	FieldGrossTotal = "gross_total"
	// FieldDeliveryPostCode holds the string denoting the delivery_post_code field in the database.
	FieldDeliveryPostCode = "delivery_post_code"
	// FieldUniqueRunIdentifier holds the string denoting the unique_run_identifier field in the database.
	FieldUniqueRunIdentifier = "unique_run_identifier"
	// FieldThumbprint holds the string denoting the thumbprint field in the database.
	FieldThumbprint = "thumbprint"
	// FieldModelID holds the string denoting the model_id field in the database.
	FieldModelID = "model_id"
	// FieldModelVersion holds the string denoting the model_version field in the database.
	FieldModelVersion = "model_version"
	// FieldIsValid holds the string denoting the is_valid field in the database.
	FieldIsValid = "is_valid"
	// FieldTerminalErrorCount holds the string denoting the terminal_error_count field in the database.
	FieldTerminalErrorCount = "terminal_error_count"
	// FieldWarningErrorCount holds the string denoting the warning_error_count field in the database.
	FieldWarningErrorCount = "warning_error_count"
	// FieldShreddingUtcTime holds the string denoting the shredding_utc_time field in the database.
	FieldShreddingUtcTime = "shredding_utc_time"
	// FieldTimeToShredMs holds the string denoting the time_to_shred_ms field in the database.
	FieldTimeToShredMs = "time_to_shred_ms"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeLineItems holds the string denoting the line_items edge name in mutations.
	EdgeLineItems = "line_items"
	// EdgeShreddingErrors holds the string denoting the shredding_errors edge name in mutations.
	EdgeShreddingErrors = "shredding_errors"
	// Table holds the table name of the document in the database.
	Table = "documents"
	// LineItemsTable is the table that holds the line_items relation/edge.
	LineItemsTable = "document_line_items"
	// LineItemsInverseTable is the table name for the DocumentLineItem entity.
	// It exists in this package in order to avoid circular dependency with the "documentlineitem" package.
	LineItemsInverseTable = "document_line_items"
	// LineItemsColumn is the table column denoting the line_items relation/edge.
	LineItemsColumn = "document_id"
	// ShreddingErrorsTable is the table that holds the shredding_errors relation/edge.
	ShreddingErrorsTable = "document_errors"
	// ShreddingErrorsInverseTable is the table name for the DocumentError entity.
	// It exists in this package in order to avoid circular dependency with the "documenterror" package.
	ShreddingErrorsInverseTable = "document_errors"
	// ShreddingErrorsColumn is the table column denoting the shredding_errors relation/edge.
	ShreddingErrorsColumn = "document_id"
)

// Columns holds all SQL columns for document fields.
var Columns = []string{
	FieldID,
	FieldFileName,
	FieldDocumentFormat,
	FieldRecognizerStatus,
	FieldRecognizerErrors,
	FieldPoNumber,
	FieldInvoiceNumber,
	FieldAccountNumber,
	FieldOrderDate,
	FieldTaxDate,
	FieldTaxPeriod,
	FieldNetTotal,
	FieldVatTotal,
	FieldGrossTotal,
	FieldDeliveryPostCode,
	FieldUniqueRunIdentifier,
	FieldThumbprint,
	FieldModelID,
	FieldModelVersion,
	FieldIsValid,
	FieldTerminalErrorCount,
	FieldWarningErrorCount,
	FieldShreddingUtcTime,
	FieldTimeToShredMs,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	FileNameValidator func(string) error
	// UniqueRunIdentifierValidator is a validator for the "unique_run_identifier" field. It is called by the builders before save.
	UniqueRunIdentifierValidator func(string) error
	// DefaultIsValid holds the default value on creation for the "is_valid" field.
	DefaultIsValid bool
	// DefaultTerminalErrorCount holds the default value on creation for the "terminal_error_count" field.
	DefaultTerminalErrorCount int
	// DefaultWarningErrorCount holds the default value on creation for the "warning_error_count" field.
	DefaultWarningErrorCount int
	// DefaultShreddingUtcTime holds the default value on creation for the "shredding_utc_time" field.
	DefaultShreddingUtcTime func() time.Time
	// DefaultTimeToShredMs holds the default value on creation for the "time_to_shred_ms" field.
	DefaultTimeToShredMs int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Document queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFileName orders the results by the file_name field.
func ByFileName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileName, opts...).ToFunc()
}

// ByDocumentFormat orders the results by the document_format field.
func ByDocumentFormat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentFormat, opts...).ToFunc()
}

// ByRecognizerStatus orders the results by the recognizer_status field.
func ByRecognizerStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecognizerStatus, opts...).ToFunc()
}

// ByPoNumber orders the results by the po_number field.
func ByPoNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPoNumber, opts...).ToFunc()
}

// ByInvoiceNumber orders the results by the invoice_number field.
func ByInvoiceNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInvoiceNumber, opts...).ToFunc()
}

// ByAccountNumber orders the results by the account_number field.
func ByAccountNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccountNumber, opts...).ToFunc()
}

// ByOrderDate orders the results by the order_date field.
func ByOrderDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrderDate, opts...).ToFunc()
}

// ByTaxDate orders the results by the tax_date field.
func ByTaxDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaxDate, opts...).ToFunc()
}

// ByTaxPeriod orders the results by the tax_period field.
func ByTaxPeriod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaxPeriod, opts...).ToFunc()
}

// ByNetTotal orders the results by the net_total field.
func ByNetTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNetTotal, opts...).ToFunc()
}

// ByVatTotal orders the results by the vat_total field.
func ByVatTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVatTotal, opts...).ToFunc()
}

// ByGrossTotal orders the results by the gross_total field.
func ByGrossTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrossTotal, opts...).ToFunc()
}

// ByDeliveryPostCode orders the results by the delivery_post_code field.
func ByDeliveryPostCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveryPostCode, opts...).ToFunc()
}

// ByUniqueRunIdentifier orders the results by the unique_run_identifier field.
func ByUniqueRunIdentifier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUniqueRunIdentifier, opts...).ToFunc()
}

// ByThumbprint orders the results by the thumbprint field.
func ByThumbprint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThumbprint, opts...).ToFunc()
}

// ByModelID orders the results by the model_id field.
func ByModelID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelID, opts...).ToFunc()
}

// ByModelVersion orders the results by the model_version field.
func ByModelVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelVersion, opts...).ToFunc()
}

// ByIsValid orders the results by the is_valid field.
func ByIsValid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsValid, opts...).ToFunc()
}

// ByTerminalErrorCount orders the results by the terminal_error_count field.
func ByTerminalErrorCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTerminalErrorCount, opts...).ToFunc()
}

// ByWarningErrorCount orders the results by the warning_error_count field.
func ByWarningErrorCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWarningErrorCount, opts...).ToFunc()
}

// ByShreddingUtcTime orders the results by the shredding_utc_time field.
func ByShreddingUtcTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShreddingUtcTime, opts...).ToFunc()
}

// ByTimeToShredMs orders the results by the time_to_shred_ms field.
func ByTimeToShredMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeToShredMs, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByLineItemsCount orders the results by line_items count.
func ByLineItemsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLineItemsStep(), opts...)
	}
}

// ByLineItems orders the results by line_items terms.
func ByLineItems(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLineItemsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByShreddingErrorsCount orders the results by shredding_errors count.
func ByShreddingErrorsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newShreddingErrorsStep(), opts...)
	}
}

// ByShreddingErrors orders the results by shredding_errors terms.
func ByShreddingErrors(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newShreddingErrorsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newLineItemsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LineItemsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LineItemsTable, LineItemsColumn),
	)
}
func newShreddingErrorsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ShreddingErrorsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ShreddingErrorsTable, ShreddingErrorsColumn),
	)
}
