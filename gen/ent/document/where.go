// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/formshred/formshred/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldID, id))
}

// FileName applies equality check predicate on the "file_name" field. It's identical to FileNameEQ.
func FileName(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileName, v))
}

// DocumentFormat applies equality check predicate on the "document_format" field. It's identical to DocumentFormatEQ.
func DocumentFormat(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDocumentFormat, v))
}

// RecognizerStatus applies equality check predicate on the "recognizer_status" field. It's identical to RecognizerStatusEQ.
func RecognizerStatus(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldRecognizerStatus, v))
}

// PoNumber applies equality check predicate on the "po_number" field. It's identical to PoNumberEQ.
func PoNumber(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPoNumber, v))
}

// InvoiceNumber applies equality check predicate on the "invoice_number" field. It's identical to InvoiceNumberEQ.
func InvoiceNumber(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldInvoiceNumber, v))
}

// AccountNumber applies equality check predicate on the "account_number" field. It's identical to AccountNumberEQ.
func AccountNumber(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldAccountNumber, v))
}

// OrderDate applies equality check predicate on the "order_date" field. It's identical to OrderDateEQ.
func OrderDate(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOrderDate, v))
}

// TaxDate applies equality check predicate on the "tax_date" field. It's identical to TaxDateEQ.
func TaxDate(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldTaxDate, v))
}

// TaxPeriod applies equality check predicate on the "tax_period" field. It's identical to TaxPeriodEQ.
func TaxPeriod(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldTaxPeriod, v))
}

// NetTotal applies equality check predicate on the "net_total" field. It's identical to NetTotalEQ.
func NetTotal(v float64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldNetTotal, v))
}

// VatTotal applies equality check predicate on the "vat_total" field. It's identical to VatTotalEQ.
func VatTotal(v float64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldVatTotal, v))
}

// GrossTotal applies equality check predicate on the "gross_total" field. It's identical to GrossTotalEQ.
func GrossTotal(v float64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldGrossTotal, v))
}

// DeliveryPostCode applies equality check predicate on the "delivery_post_code" field. It's identical to DeliveryPostCodeEQ.
func DeliveryPostCode(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDeliveryPostCode, v))
}

// UniqueRunIdentifier applies equality check predicate on the "unique_run_identifier" field. It's identical to UniqueRunIdentifierEQ.
func UniqueRunIdentifier(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUniqueRunIdentifier, v))
}

// Thumbprint applies equality check predicate on the "thumbprint" field. It's identical to ThumbprintEQ.
func Thumbprint(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldThumbprint, v))
}

// ModelID applies equality check predicate on the "model_id" field. It's identical to ModelIDEQ.
func ModelID(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldModelID, v))
}

// ModelVersion applies equality check predicate on the "model_version" field. It's identical to ModelVersionEQ.
func ModelVersion(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldModelVersion, v))
}

// IsValid applies equality check predicate on the "is_valid" field. It's identical to IsValidEQ.
func IsValid(v bool) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldIsValid, v))
}

// TerminalErrorCount applies equality check predicate on the "terminal_error_count" field. It's identical to TerminalErrorCountEQ.
func TerminalErrorCount(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldTerminalErrorCount, v))
}

// WarningErrorCount applies equality check predicate on the "warning_error_count" field. It's identical to WarningErrorCountEQ.
func WarningErrorCount(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldWarningErrorCount, v))
}

// ShreddingUtcTime applies equality check predicate on the "shredding_utc_time" field. It's identical to ShreddingUtcTimeEQ.
func ShreddingUtcTime(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldShreddingUtcTime, v))
}

// TimeToShredMs applies equality check predicate on the "time_to_shred_ms" field. It's identical to TimeToShredMsEQ.
func TimeToShredMs(v int64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldTimeToShredMs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUpdatedAt, v))
}

// FileNameEQ applies the EQ predicate on the "file_name" field.
func FileNameEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileName, v))
}

// FileNameNEQ applies the NEQ predicate on the "file_name" field.
func FileNameNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFileName, v))
}

// FileNameIn applies the In predicate on the "file_name" field.
func FileNameIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFileName, vs...))
}

// FileNameNotIn applies the NotIn predicate on the "file_name" field.
func FileNameNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFileName, vs...))
}

// FileNameGT applies the GT predicate on the "file_name" field.
func FileNameGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFileName, v))
}

// FileNameGTE applies the GTE predicate on the "file_name" field.
func FileNameGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFileName, v))
}

// FileNameLT applies the LT predicate on the "file_name" field.
func FileNameLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFileName, v))
}

// FileNameLTE applies the LTE predicate on the "file_name" field.
func FileNameLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFileName, v))
}

// FileNameContains applies the Contains predicate on the "file_name" field.
func FileNameContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldFileName, v))
}

// FileNameHasPrefix applies the HasPrefix predicate on the "file_name" field.
func FileNameHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldFileName, v))
}

// FileNameHasSuffix applies the HasSuffix predicate on the "file_name" field.
func FileNameHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldFileName, v))
}

// FileNameEqualFold applies the EqualFold predicate on the "file_name" field.
func FileNameEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldFileName, v))
}

// FileNameContainsFold applies the ContainsFold predicate on the "file_name" field.
func FileNameContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldFileName, v))
}

// DocumentFormatEQ applies the EQ predicate on the "document_format" field.
func DocumentFormatEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDocumentFormat, v))
}

// DocumentFormatNEQ applies the NEQ predicate on the "document_format" field.
func DocumentFormatNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldDocumentFormat, v))
}

// DocumentFormatIn applies the In predicate on the "document_format" field.
func DocumentFormatIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldDocumentFormat, vs...))
}

// DocumentFormatNotIn applies the NotIn predicate on the "document_format" field.
func DocumentFormatNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldDocumentFormat, vs...))
}

// DocumentFormatGT applies the GT predicate on the "document_format" field.
func DocumentFormatGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldDocumentFormat, v))
}

// DocumentFormatGTE applies the GTE predicate on the "document_format" field.
func DocumentFormatGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldDocumentFormat, v))
}

// DocumentFormatLT applies the LT predicate on the "document_format" field.
func DocumentFormatLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldDocumentFormat, v))
}

// DocumentFormatLTE applies the LTE predicate on the "document_format" field.
func DocumentFormatLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldDocumentFormat, v))
}

// DocumentFormatContains applies the Contains predicate on the "document_format" field.
func DocumentFormatContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldDocumentFormat, v))
}

// DocumentFormatHasPrefix applies the HasPrefix predicate on the "document_format" field.
func DocumentFormatHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldDocumentFormat, v))
}

// DocumentFormatHasSuffix applies the HasSuffix predicate on the "document_format" field.
func DocumentFormatHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldDocumentFormat, v))
}

// DocumentFormatIsNil applies the IsNil predicate on the "document_format" field.
func DocumentFormatIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldDocumentFormat))
}

// DocumentFormatNotNil applies the NotNil predicate on the "document_format" field.
func DocumentFormatNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldDocumentFormat))
}

// DocumentFormatEqualFold applies the EqualFold predicate on the "document_format" field.
func DocumentFormatEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldDocumentFormat, v))
}

// DocumentFormatContainsFold applies the ContainsFold predicate on the "document_format" field.
func DocumentFormatContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldDocumentFormat, v))
}

// RecognizerStatusEQ applies the EQ predicate on the "recognizer_status" field.
func RecognizerStatusEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldRecognizerStatus, v))
}

// RecognizerStatusNEQ applies the NEQ predicate on the "recognizer_status" field.
func RecognizerStatusNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldRecognizerStatus, v))
}

// RecognizerStatusIn applies the In predicate on the "recognizer_status" field.
func RecognizerStatusIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldRecognizerStatus, vs...))
}

// RecognizerStatusNotIn applies the NotIn predicate on the "recognizer_status" field.
func RecognizerStatusNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldRecognizerStatus, vs...))
}

// RecognizerStatusGT applies the GT predicate on the "recognizer_status" field.
func RecognizerStatusGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldRecognizerStatus, v))
}

// RecognizerStatusGTE applies the GTE predicate on the "recognizer_status" field.
func RecognizerStatusGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldRecognizerStatus, v))
}

// RecognizerStatusLT applies the LT predicate on the "recognizer_status" field.
func RecognizerStatusLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldRecognizerStatus, v))
}

// RecognizerStatusLTE applies the LTE predicate on the "recognizer_status" field.
func RecognizerStatusLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldRecognizerStatus, v))
}

// RecognizerStatusContains applies the Contains predicate on the "recognizer_status" field.
func RecognizerStatusContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldRecognizerStatus, v))
}

// RecognizerStatusHasPrefix applies the HasPrefix predicate on the "recognizer_status" field.
func RecognizerStatusHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldRecognizerStatus, v))
}

// RecognizerStatusHasSuffix applies the HasSuffix predicate on the "recognizer_status" field.
func RecognizerStatusHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldRecognizerStatus, v))
}

// RecognizerStatusIsNil applies the IsNil predicate on the "recognizer_status" field.
func RecognizerStatusIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldRecognizerStatus))
}

// RecognizerStatusNotNil applies the NotNil predicate on the "recognizer_status" field.
func RecognizerStatusNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldRecognizerStatus))
}

// RecognizerStatusEqualFold applies the EqualFold predicate on the "recognizer_status" field.
func RecognizerStatusEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldRecognizerStatus, v))
}

// RecognizerStatusContainsFold applies the ContainsFold predicate on the "recognizer_status" field.
func RecognizerStatusContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldRecognizerStatus, v))
}

// RecognizerErrorsIsNil applies the IsNil predicate on the "recognizer_errors" field.
func RecognizerErrorsIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldRecognizerErrors))
}

// RecognizerErrorsNotNil applies the NotNil predicate on the "recognizer_errors" field.
func RecognizerErrorsNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldRecognizerErrors))
}

// PoNumberEQ applies the EQ predicate on the "po_number" field.
func PoNumberEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPoNumber, v))
}

// PoNumberNEQ applies the NEQ predicate on the "po_number" field.
func PoNumberNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldPoNumber, v))
}

// PoNumberIn applies the In predicate on the "po_number" field.
func PoNumberIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldPoNumber, vs...))
}

// PoNumberNotIn applies the NotIn predicate on the "po_number" field.
func PoNumberNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldPoNumber, vs...))
}

// PoNumberGT applies the GT predicate on the "po_number" field.
func PoNumberGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldPoNumber, v))
}

// PoNumberGTE applies the GTE predicate on the "po_number" field.
func PoNumberGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldPoNumber, v))
}

// PoNumberLT applies the LT predicate on the "po_number" field.
func PoNumberLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldPoNumber, v))
}

// PoNumberLTE applies the LTE predicate on the "po_number" field.
func PoNumberLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldPoNumber, v))
}

// PoNumberContains applies the Contains predicate on the "po_number" field.
func PoNumberContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldPoNumber, v))
}

// PoNumberHasPrefix applies the HasPrefix predicate on the "po_number" field.
func PoNumberHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldPoNumber, v))
}

// PoNumberHasSuffix applies the HasSuffix predicate on the "po_number" field.
func PoNumberHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldPoNumber, v))
}

// PoNumberIsNil applies the IsNil predicate on the "po_number" field.
func PoNumberIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldPoNumber))
}

// PoNumberNotNil applies the NotNil predicate on the "po_number" field.
func PoNumberNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldPoNumber))
}

// PoNumberEqualFold applies the EqualFold predicate on the "po_number" field.
func PoNumberEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldPoNumber, v))
}

// PoNumberContainsFold applies the ContainsFold predicate on the "po_number" field.
func PoNumberContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldPoNumber, v))
}

// InvoiceNumberEQ applies the EQ predicate on the "invoice_number" field.
func InvoiceNumberEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldInvoiceNumber, v))
}

// InvoiceNumberNEQ applies the NEQ predicate on the "invoice_number" field.
func InvoiceNumberNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldInvoiceNumber, v))
}

// InvoiceNumberIn applies the In predicate on the "invoice_number" field.
func InvoiceNumberIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldInvoiceNumber, vs...))
}

// InvoiceNumberNotIn applies the NotIn predicate on the "invoice_number" field.
func InvoiceNumberNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldInvoiceNumber, vs...))
}

// InvoiceNumberGT applies the GT predicate on the "invoice_number" field.
func InvoiceNumberGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldInvoiceNumber, v))
}

// InvoiceNumberGTE applies the GTE predicate on the "invoice_number" field.
func InvoiceNumberGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldInvoiceNumber, v))
}

// InvoiceNumberLT applies the LT predicate on the "invoice_number" field.
func InvoiceNumberLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldInvoiceNumber, v))
}

// InvoiceNumberLTE applies the LTE predicate on the "invoice_number" field.
func InvoiceNumberLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldInvoiceNumber, v))
}

// InvoiceNumberContains applies the Contains predicate on the "invoice_number" field.
func InvoiceNumberContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldInvoiceNumber, v))
}

// InvoiceNumberHasPrefix applies the HasPrefix predicate on the "invoice_number" field.
func InvoiceNumberHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldInvoiceNumber, v))
}

// InvoiceNumberHasSuffix applies the HasSuffix predicate on the "invoice_number" field.
func InvoiceNumberHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldInvoiceNumber, v))
}

// InvoiceNumberIsNil applies the IsNil predicate on the "invoice_number" field.
func InvoiceNumberIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldInvoiceNumber))
}

// InvoiceNumberNotNil applies the NotNil predicate on the "invoice_number" field.
func InvoiceNumberNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldInvoiceNumber))
}

// InvoiceNumberEqualFold applies the EqualFold predicate on the "invoice_number" field.
func InvoiceNumberEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldInvoiceNumber, v))
}

// InvoiceNumberContainsFold applies the ContainsFold predicate on the "invoice_number" field.
func InvoiceNumberContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldInvoiceNumber, v))
}

// AccountNumberEQ applies the EQ predicate on the "account_number" field.
func AccountNumberEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldAccountNumber, v))
}

// AccountNumberNEQ applies the NEQ predicate on the "account_number" field.
func AccountNumberNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldAccountNumber, v))
}

// AccountNumberIn applies the In predicate on the "account_number" field.
func AccountNumberIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldAccountNumber, vs...))
}

// AccountNumberNotIn applies the NotIn predicate on the "account_number" field.
func AccountNumberNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldAccountNumber, vs...))
}

// AccountNumberGT applies the GT predicate on the "account_number" field.
func AccountNumberGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldAccountNumber, v))
}

// AccountNumberGTE applies the GTE predicate on the "account_number" field.
func AccountNumberGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldAccountNumber, v))
}

// AccountNumberLT applies the LT predicate on the "account_number" field.
func AccountNumberLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldAccountNumber, v))
}

// AccountNumberLTE applies the LTE predicate on the "account_number" field.
func AccountNumberLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldAccountNumber, v))
}

// AccountNumberContains applies the Contains predicate on the "account_number" field.
func AccountNumberContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldAccountNumber, v))
}

// AccountNumberHasPrefix applies the HasPrefix predicate on the "account_number" field.
func AccountNumberHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldAccountNumber, v))
}

// AccountNumberHasSuffix applies the HasSuffix predicate on the "account_number" field.
func AccountNumberHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldAccountNumber, v))
}

// AccountNumberIsNil applies the IsNil predicate on the "account_number" field.
func AccountNumberIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldAccountNumber))
}

// AccountNumberNotNil applies the NotNil predicate on the "account_number" field.
func AccountNumberNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldAccountNumber))
}

// AccountNumberEqualFold applies the EqualFold predicate on the "account_number" field.
func AccountNumberEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldAccountNumber, v))
}

// AccountNumberContainsFold applies the ContainsFold predicate on the "account_number" field.
func AccountNumberContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldAccountNumber, v))
}

// OrderDateEQ applies the EQ predicate on the "order_date" field.
func OrderDateEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOrderDate, v))
}

// OrderDateNEQ applies the NEQ predicate on the "order_date" field.
func OrderDateNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldOrderDate, v))
}

// OrderDateIn applies the In predicate on the "order_date" field.
func OrderDateIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldOrderDate, vs...))
}

// OrderDateNotIn applies the NotIn predicate on the "order_date" field.
func OrderDateNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldOrderDate, vs...))
}

// OrderDateGT applies the GT predicate on the "order_date" field.
func OrderDateGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldOrderDate, v))
}

// OrderDateGTE applies the GTE predicate on the "order_date" field.
func OrderDateGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldOrderDate, v))
}

// OrderDateLT applies the LT predicate on the "order_date" field.
func OrderDateLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldOrderDate, v))
}

// OrderDateLTE applies the LTE predicate on the "order_date" field.
func OrderDateLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldOrderDate, v))
}

// OrderDateIsNil applies the IsNil predicate on the "order_date" field.
func OrderDateIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldOrderDate))
}

// OrderDateNotNil applies the NotNil predicate on the "order_date" field.
func OrderDateNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldOrderDate))
}

// TaxDateEQ applies the EQ predicate on the "tax_date" field.
func TaxDateEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldTaxDate, v))
}

// TaxDateNEQ applies the NEQ predicate on the "tax_date" field.
func TaxDateNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldTaxDate, v))
}

// TaxDateIn applies the In predicate on the "tax_date" field.
func TaxDateIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldTaxDate, vs...))
}

// TaxDateNotIn applies the NotIn predicate on the "tax_date" field.
func TaxDateNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldTaxDate, vs...))
}

// TaxDateGT applies the GT predicate on the "tax_date" field.
func TaxDateGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldTaxDate, v))
}

// TaxDateGTE applies the GTE predicate on the "tax_date" field.
func TaxDateGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldTaxDate, v))
}

// TaxDateLT applies the LT predicate on the "tax_date" field.
func TaxDateLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldTaxDate, v))
}

// TaxDateLTE applies the LTE predicate on the "tax_date" field.
func TaxDateLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldTaxDate, v))
}

// TaxDateIsNil applies the IsNil predicate on the "tax_date" field.
func TaxDateIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldTaxDate))
}

// TaxDateNotNil applies the NotNil predicate on the "tax_date" field.
func TaxDateNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldTaxDate))
}

// TaxPeriodEQ applies the EQ predicate on the "tax_period" field.
func TaxPeriodEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldTaxPeriod, v))
}

// TaxPeriodNEQ applies the NEQ predicate on the "tax_period" field.
func TaxPeriodNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldTaxPeriod, v))
}

// TaxPeriodIn applies the In predicate on the "tax_period" field.
func TaxPeriodIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldTaxPeriod, vs...))
}

// TaxPeriodNotIn applies the NotIn predicate on the "tax_period" field.
func TaxPeriodNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldTaxPeriod, vs...))
}

// TaxPeriodGT applies the GT predicate on the "tax_period" field.
func TaxPeriodGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldTaxPeriod, v))
}

// TaxPeriodGTE applies the GTE predicate on the "tax_period" field.
func TaxPeriodGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldTaxPeriod, v))
}

// TaxPeriodLT applies the LT predicate on the "tax_period" field.
func TaxPeriodLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldTaxPeriod, v))
}

// TaxPeriodLTE applies the LTE predicate on the "tax_period" field.
func TaxPeriodLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldTaxPeriod, v))
}

// TaxPeriodContains applies the Contains predicate on the "tax_period" field.
func TaxPeriodContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldTaxPeriod, v))
}

// TaxPeriodHasPrefix applies the HasPrefix predicate on the "tax_period" field.
func TaxPeriodHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldTaxPeriod, v))
}

// TaxPeriodHasSuffix applies the HasSuffix predicate on the "tax_period" field.
func TaxPeriodHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldTaxPeriod, v))
}

// TaxPeriodIsNil applies the IsNil predicate on the "tax_period" field.
func TaxPeriodIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldTaxPeriod))
}

// TaxPeriodNotNil applies the NotNil predicate on the "tax_period" field.
func TaxPeriodNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldTaxPeriod))
}

// TaxPeriodEqualFold applies the EqualFold predicate on the "tax_period" field.
func TaxPeriodEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldTaxPeriod, v))
}

// TaxPeriodContainsFold applies the ContainsFold predicate on the "tax_period" field.
func TaxPeriodContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldTaxPeriod, v))
}

// NetTotalEQ applies the EQ predicate on the "net_total" field.
func NetTotalEQ(v float64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldNetTotal, v))
}

// NetTotalNEQ applies the NEQ predicate on the "net_total" field.
func NetTotalNEQ(v float64) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldNetTotal, v))
}

// NetTotalIn applies the In predicate on the "net_total" field.
func NetTotalIn(vs ...float64) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldNetTotal, vs...))
}

// NetTotalNotIn applies the NotIn predicate on the "net_total" field.
func NetTotalNotIn(vs ...float64) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldNetTotal, vs...))
}

// NetTotalGT applies the GT predicate on the "net_total" field.
func NetTotalGT(v float64) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldNetTotal, v))
}

// NetTotalGTE applies the GTE predicate on the "net_total" field.
func NetTotalGTE(v float64) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldNetTotal, v))
}

// NetTotalLT applies the LT predicate on the "net_total" field.
func NetTotalLT(v float64) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldNetTotal, v))
}

// NetTotalLTE applies the LTE predicate on the "net_total" field.
func NetTotalLTE(v float64) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldNetTotal, v))
}

// NetTotalIsNil applies the IsNil predicate on the "net_total" field.
func NetTotalIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldNetTotal))
}

// NetTotalNotNil applies the NotNil predicate on the "net_total" field.
func NetTotalNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldNetTotal))
}

// VatTotalEQ applies the EQ predicate on the "vat_total" field.
func VatTotalEQ(v float64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldVatTotal, v))
}

// VatTotalNEQ applies the NEQ predicate on the "vat_total" field.
func VatTotalNEQ(v float64) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldVatTotal, v))
}

// VatTotalIn applies the In predicate on the "vat_total" field.
func VatTotalIn(vs ...float64) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldVatTotal, vs...))
}

// VatTotalNotIn applies the NotIn predicate on the "vat_total" field.
func VatTotalNotIn(vs ...float64) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldVatTotal, vs...))
}

// VatTotalGT applies the GT predicate on the "vat_total" field.
func VatTotalGT(v float64) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldVatTotal, v))
}

// VatTotalGTE applies the GTE predicate on the "vat_total" field.
func VatTotalGTE(v float64) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldVatTotal, v))
}

// VatTotalLT applies the LT predicate on the "vat_total" field.
func VatTotalLT(v float64) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldVatTotal, v))
}

// VatTotalLTE applies the LTE predicate on the "vat_total" field.
func VatTotalLTE(v float64) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldVatTotal, v))
}

// VatTotalIsNil applies the IsNil predicate on the "vat_total" field.
func VatTotalIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldVatTotal))
}

// VatTotalNotNil applies the NotNil predicate on the "vat_total" field.
func VatTotalNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldVatTotal))
}

// GrossTotalEQ applies the EQ predicate on the "gross_total" field.
func GrossTotalEQ(v float64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldGrossTotal, v))
}

// GrossTotalNEQ applies the NEQ predicate on the "gross_total" field.
func GrossTotalNEQ(v float64) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldGrossTotal, v))
}

// GrossTotalIn applies the In predicate on the "gross_total" field.
func GrossTotalIn(vs ...float64) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldGrossTotal, vs...))
}

// GrossTotalNotIn applies the NotIn predicate on the "gross_total" field.
func GrossTotalNotIn(vs ...float64) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldGrossTotal, vs...))
}

// GrossTotalGT applies the GT predicate on the "gross_total" field.
func GrossTotalGT(v float64) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldGrossTotal, v))
}

// GrossTotalGTE applies the GTE predicate on the "gross_total" field.
func GrossTotalGTE(v float64) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldGrossTotal, v))
}

// GrossTotalLT applies the LT predicate on the "gross_total" field.
func GrossTotalLT(v float64) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldGrossTotal, v))
}

// GrossTotalLTE applies the LTE predicate on the "gross_total" field.
func GrossTotalLTE(v float64) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldGrossTotal, v))
}

// GrossTotalIsNil applies the IsNil predicate on the "gross_total" field.
func GrossTotalIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldGrossTotal))
}

// GrossTotalNotNil applies the NotNil predicate on the "gross_total" field.
func GrossTotalNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldGrossTotal))
}

// DeliveryPostCodeEQ applies the EQ predicate on the "delivery_post_code" field.
func DeliveryPostCodeEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDeliveryPostCode, v))
}

// DeliveryPostCodeNEQ applies the NEQ predicate on the "delivery_post_code" field.
func DeliveryPostCodeNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldDeliveryPostCode, v))
}

// DeliveryPostCodeIn applies the In predicate on the "delivery_post_code" field.
func DeliveryPostCodeIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldDeliveryPostCode, vs...))
}

// DeliveryPostCodeNotIn applies the NotIn predicate on the "delivery_post_code" field.
func DeliveryPostCodeNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldDeliveryPostCode, vs...))
}

// DeliveryPostCodeGT applies the GT predicate on the "delivery_post_code" field.
func DeliveryPostCodeGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldDeliveryPostCode, v))
}

// DeliveryPostCodeGTE applies the GTE predicate on the "delivery_post_code" field.
func DeliveryPostCodeGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldDeliveryPostCode, v))
}

// DeliveryPostCodeLT applies the LT predicate on the "delivery_post_code" field.
func DeliveryPostCodeLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldDeliveryPostCode, v))
}

// DeliveryPostCodeLTE applies the LTE predicate on the "delivery_post_code" field.
func DeliveryPostCodeLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldDeliveryPostCode, v))
}

// DeliveryPostCodeContains applies the Contains predicate on the "delivery_post_code" field.
func DeliveryPostCodeContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldDeliveryPostCode, v))
}

// DeliveryPostCodeHasPrefix applies the HasPrefix predicate on the "delivery_post_code" field.
func DeliveryPostCodeHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldDeliveryPostCode, v))
}

// DeliveryPostCodeHasSuffix applies the HasSuffix predicate on the "delivery_post_code" field.
func DeliveryPostCodeHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldDeliveryPostCode, v))
}

// DeliveryPostCodeIsNil applies the IsNil predicate on the "delivery_post_code" field.
func DeliveryPostCodeIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldDeliveryPostCode))
}

// DeliveryPostCodeNotNil applies the NotNil predicate on the "delivery_post_code" field.
func DeliveryPostCodeNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldDeliveryPostCode))
}

// DeliveryPostCodeEqualFold applies the EqualFold predicate on the "delivery_post_code" field.
func DeliveryPostCodeEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldDeliveryPostCode, v))
}

// DeliveryPostCodeContainsFold applies the ContainsFold predicate on the "delivery_post_code" field.
func DeliveryPostCodeContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldDeliveryPostCode, v))
}

// UniqueRunIdentifierEQ applies the EQ predicate on the "unique_run_identifier" field.
func UniqueRunIdentifierEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUniqueRunIdentifier, v))
}

// UniqueRunIdentifierNEQ applies the NEQ predicate on the "unique_run_identifier" field.
func UniqueRunIdentifierNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldUniqueRunIdentifier, v))
}

// UniqueRunIdentifierIn applies the In predicate on the "unique_run_identifier" field.
func UniqueRunIdentifierIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldUniqueRunIdentifier, vs...))
}

// UniqueRunIdentifierNotIn applies the NotIn predicate on the "unique_run_identifier" field.
func UniqueRunIdentifierNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldUniqueRunIdentifier, vs...))
}

// UniqueRunIdentifierGT applies the GT predicate on the "unique_run_identifier" field.
func UniqueRunIdentifierGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldUniqueRunIdentifier, v))
}

// UniqueRunIdentifierGTE applies the GTE predicate on the "unique_run_identifier" field.
func UniqueRunIdentifierGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldUniqueRunIdentifier, v))
}

// UniqueRunIdentifierLT applies the LT predicate on the "unique_run_identifier" field.
func UniqueRunIdentifierLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldUniqueRunIdentifier, v))
}

// UniqueRunIdentifierLTE applies the LTE predicate on the "unique_run_identifier" field.
func UniqueRunIdentifierLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldUniqueRunIdentifier, v))
}

// UniqueRunIdentifierContains applies the Contains predicate on the "unique_run_identifier" field.
func UniqueRunIdentifierContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldUniqueRunIdentifier, v))
}

// UniqueRunIdentifierHasPrefix applies the HasPrefix predicate on the "unique_run_identifier" field.
func UniqueRunIdentifierHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldUniqueRunIdentifier, v))
}

// UniqueRunIdentifierHasSuffix applies the HasSuffix predicate on the "unique_run_identifier" field.
func UniqueRunIdentifierHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldUniqueRunIdentifier, v))
}

// UniqueRunIdentifierEqualFold applies the EqualFold predicate on the "unique_run_identifier" field.
func UniqueRunIdentifierEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldUniqueRunIdentifier, v))
}

// UniqueRunIdentifierContainsFold applies the ContainsFold predicate on the "unique_run_identifier" field.
func UniqueRunIdentifierContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldUniqueRunIdentifier, v))
}

// ThumbprintEQ applies the EQ predicate on the "thumbprint" field.
func ThumbprintEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldThumbprint, v))
}

// ThumbprintNEQ applies the NEQ predicate on the "thumbprint" field.
func ThumbprintNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldThumbprint, v))
}

// ThumbprintIn applies the In predicate on the "thumbprint" field.
func ThumbprintIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldThumbprint, vs...))
}

// ThumbprintNotIn applies the NotIn predicate on the "thumbprint" field.
func ThumbprintNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldThumbprint, vs...))
}

// ThumbprintGT applies the GT predicate on the "thumbprint" field.
func ThumbprintGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldThumbprint, v))
}

// ThumbprintGTE applies the GTE predicate on the "thumbprint" field.
func ThumbprintGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldThumbprint, v))
}

// ThumbprintLT applies the LT predicate on the "thumbprint" field.
func ThumbprintLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldThumbprint, v))
}

// ThumbprintLTE applies the LTE predicate on the "thumbprint" field.
func ThumbprintLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldThumbprint, v))
}

// ThumbprintContains applies the Contains predicate on the "thumbprint" field.
func ThumbprintContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldThumbprint, v))
}

// ThumbprintHasPrefix applies the HasPrefix predicate on the "thumbprint" field.
func ThumbprintHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldThumbprint, v))
}

// ThumbprintHasSuffix applies the HasSuffix predicate on the "thumbprint" field.
func ThumbprintHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldThumbprint, v))
}

// ThumbprintIsNil applies the IsNil predicate on the "thumbprint" field.
func ThumbprintIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldThumbprint))
}

// ThumbprintNotNil applies the NotNil predicate on the "thumbprint" field.
func ThumbprintNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldThumbprint))
}

// ThumbprintEqualFold applies the EqualFold predicate on the "thumbprint" field.
func ThumbprintEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldThumbprint, v))
}

// ThumbprintContainsFold applies the ContainsFold predicate on the "thumbprint" field.
func ThumbprintContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldThumbprint, v))
}

// ModelIDEQ applies the EQ predicate on the "model_id" field.
func ModelIDEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldModelID, v))
}

// ModelIDNEQ applies the NEQ predicate on the "model_id" field.
func ModelIDNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldModelID, v))
}

// ModelIDIn applies the In predicate on the "model_id" field.
func ModelIDIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldModelID, vs...))
}

// ModelIDNotIn applies the NotIn predicate on the "model_id" field.
func ModelIDNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldModelID, vs...))
}

// ModelIDGT applies the GT predicate on the "model_id" field.
func ModelIDGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldModelID, v))
}

// ModelIDGTE applies the GTE predicate on the "model_id" field.
func ModelIDGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldModelID, v))
}

// ModelIDLT applies the LT predicate on the "model_id" field.
func ModelIDLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldModelID, v))
}

// ModelIDLTE applies the LTE predicate on the "model_id" field.
func ModelIDLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldModelID, v))
}

// ModelIDContains applies the Contains predicate on the "model_id" field.
func ModelIDContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldModelID, v))
}

// ModelIDHasPrefix applies the HasPrefix predicate on the "model_id" field.
func ModelIDHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldModelID, v))
}

// ModelIDHasSuffix applies the HasSuffix predicate on the "model_id" field.
func ModelIDHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldModelID, v))
}

// ModelIDIsNil applies the IsNil predicate on the "model_id" field.
func ModelIDIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldModelID))
}

// ModelIDNotNil applies the NotNil predicate on the "model_id" field.
func ModelIDNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldModelID))
}

// ModelIDEqualFold applies the EqualFold predicate on the "model_id" field.
func ModelIDEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldModelID, v))
}

// ModelIDContainsFold applies the ContainsFold predicate on the "model_id" field.
func ModelIDContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldModelID, v))
}

// ModelVersionEQ applies the EQ predicate on the "model_version" field.
func ModelVersionEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldModelVersion, v))
}

// ModelVersionNEQ applies the NEQ predicate on the "model_version" field.
func ModelVersionNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldModelVersion, v))
}

// ModelVersionIn applies the In predicate on the "model_version" field.
func ModelVersionIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldModelVersion, vs...))
}

// ModelVersionNotIn applies the NotIn predicate on the "model_version" field.
func ModelVersionNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldModelVersion, vs...))
}

// ModelVersionGT applies the GT predicate on the "model_version" field.
func ModelVersionGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldModelVersion, v))
}

// ModelVersionGTE applies the GTE predicate on the "model_version" field.
func ModelVersionGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldModelVersion, v))
}

// ModelVersionLT applies the LT predicate on the "model_version" field.
func ModelVersionLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldModelVersion, v))
}

// ModelVersionLTE applies the LTE predicate on the "model_version" field.
func ModelVersionLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldModelVersion, v))
}

// ModelVersionContains applies the Contains predicate on the "model_version" field.
func ModelVersionContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldModelVersion, v))
}

// ModelVersionHasPrefix applies the HasPrefix predicate on the "model_version" field.
func ModelVersionHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldModelVersion, v))
}

// ModelVersionHasSuffix applies the HasSuffix predicate on the "model_version" field.
func ModelVersionHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldModelVersion, v))
}

// ModelVersionIsNil applies the IsNil predicate on the "model_version" field.
func ModelVersionIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldModelVersion))
}

// ModelVersionNotNil applies the NotNil predicate on the "model_version" field.
func ModelVersionNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldModelVersion))
}

// ModelVersionEqualFold applies the EqualFold predicate on the "model_version" field.
func ModelVersionEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldModelVersion, v))
}

// ModelVersionContainsFold applies the ContainsFold predicate on the "model_version" field.
func ModelVersionContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldModelVersion, v))
}

// IsValidEQ applies the EQ predicate on the "is_valid" field.
func IsValidEQ(v bool) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldIsValid, v))
}

// IsValidNEQ applies the NEQ predicate on the "is_valid" field.
func IsValidNEQ(v bool) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldIsValid, v))
}

// TerminalErrorCountEQ applies the EQ predicate on the "terminal_error_count" field.
func TerminalErrorCountEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldTerminalErrorCount, v))
}

// TerminalErrorCountNEQ applies the NEQ predicate on the "terminal_error_count" field.
func TerminalErrorCountNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldTerminalErrorCount, v))
}

// TerminalErrorCountIn applies the In predicate on the "terminal_error_count" field.
func TerminalErrorCountIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldTerminalErrorCount, vs...))
}

// TerminalErrorCountNotIn applies the NotIn predicate on the "terminal_error_count" field.
func TerminalErrorCountNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldTerminalErrorCount, vs...))
}

// TerminalErrorCountGT applies the GT predicate on the "terminal_error_count" field.
func TerminalErrorCountGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldTerminalErrorCount, v))
}

// TerminalErrorCountGTE applies the GTE predicate on the "terminal_error_count" field.
func TerminalErrorCountGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldTerminalErrorCount, v))
}

// TerminalErrorCountLT applies the LT predicate on the "terminal_error_count" field.
func TerminalErrorCountLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldTerminalErrorCount, v))
}

// TerminalErrorCountLTE applies the LTE predicate on the "terminal_error_count" field.
func TerminalErrorCountLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldTerminalErrorCount, v))
}

// WarningErrorCountEQ applies the EQ predicate on the "warning_error_count" field.
func WarningErrorCountEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldWarningErrorCount, v))
}

// WarningErrorCountNEQ applies the NEQ predicate on the "warning_error_count" field.
func WarningErrorCountNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldWarningErrorCount, v))
}

// WarningErrorCountIn applies the In predicate on the "warning_error_count" field.
func WarningErrorCountIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldWarningErrorCount, vs...))
}

// WarningErrorCountNotIn applies the NotIn predicate on the "warning_error_count" field.
func WarningErrorCountNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldWarningErrorCount, vs...))
}

// WarningErrorCountGT applies the GT predicate on the "warning_error_count" field.
func WarningErrorCountGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldWarningErrorCount, v))
}

// WarningErrorCountGTE applies the GTE predicate on the "warning_error_count" field.
func WarningErrorCountGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldWarningErrorCount, v))
}

// WarningErrorCountLT applies the LT predicate on the "warning_error_count" field.
func WarningErrorCountLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldWarningErrorCount, v))
}

// WarningErrorCountLTE applies the LTE predicate on the "warning_error_count" field.
func WarningErrorCountLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldWarningErrorCount, v))
}

// ShreddingUtcTimeEQ applies the EQ predicate on the "shredding_utc_time" field.
func ShreddingUtcTimeEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldShreddingUtcTime, v))
}

// ShreddingUtcTimeNEQ applies the NEQ predicate on the "shredding_utc_time" field.
func ShreddingUtcTimeNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldShreddingUtcTime, v))
}

// ShreddingUtcTimeIn applies the In predicate on the "shredding_utc_time" field.
func ShreddingUtcTimeIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldShreddingUtcTime, vs...))
}

// ShreddingUtcTimeNotIn applies the NotIn predicate on the "shredding_utc_time" field.
func ShreddingUtcTimeNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldShreddingUtcTime, vs...))
}

// ShreddingUtcTimeGT applies the GT predicate on the "shredding_utc_time" field.
func ShreddingUtcTimeGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldShreddingUtcTime, v))
}

// ShreddingUtcTimeGTE applies the GTE predicate on the "shredding_utc_time" field.
func ShreddingUtcTimeGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldShreddingUtcTime, v))
}

// ShreddingUtcTimeLT applies the LT predicate on the "shredding_utc_time" field.
func ShreddingUtcTimeLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldShreddingUtcTime, v))
}

// ShreddingUtcTimeLTE applies the LTE predicate on the "shredding_utc_time" field.
func ShreddingUtcTimeLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldShreddingUtcTime, v))
}

// TimeToShredMsEQ applies the EQ predicate on the "time_to_shred_ms" field.
func TimeToShredMsEQ(v int64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldTimeToShredMs, v))
}

// TimeToShredMsNEQ applies the NEQ predicate on the "time_to_shred_ms" field.
func TimeToShredMsNEQ(v int64) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldTimeToShredMs, v))
}

// TimeToShredMsIn applies the In predicate on the "time_to_shred_ms" field.
func TimeToShredMsIn(vs ...int64) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldTimeToShredMs, vs...))
}

// TimeToShredMsNotIn applies the NotIn predicate on the "time_to_shred_ms" field.
func TimeToShredMsNotIn(vs ...int64) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldTimeToShredMs, vs...))
}

// TimeToShredMsGT applies the GT predicate on the "time_to_shred_ms" field.
func TimeToShredMsGT(v int64) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldTimeToShredMs, v))
}

// TimeToShredMsGTE applies the GTE predicate on the "time_to_shred_ms" field.
func TimeToShredMsGTE(v int64) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldTimeToShredMs, v))
}

// TimeToShredMsLT applies the LT predicate on the "time_to_shred_ms" field.
func TimeToShredMsLT(v int64) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldTimeToShredMs, v))
}

// TimeToShredMsLTE applies the LTE predicate on the "time_to_shred_ms" field.
func TimeToShredMsLTE(v int64) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldTimeToShredMs, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasLineItems applies the HasEdge predicate on the "line_items" edge.
func HasLineItems() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LineItemsTable, LineItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLineItemsWith applies the HasEdge predicate on the "line_items" edge with a given conditions (other predicates).
func HasLineItemsWith(preds ...predicate.DocumentLineItem) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newLineItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasShreddingErrors applies the HasEdge predicate on the "shredding_errors" edge.
func HasShreddingErrors() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ShreddingErrorsTable, ShreddingErrorsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasShreddingErrorsWith applies the HasEdge predicate on the "shredding_errors" edge with a given conditions (other predicates).
func HasShreddingErrorsWith(preds ...predicate.DocumentError) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newShreddingErrorsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Document) predicate.Document {
	return predicate.Document(sql.NotPredicates(p))
}
