package constants

// Field-bag keys produced by the recognition service for the default invoice
// layout. The shredder treats these as configuration, not as a fixed contract;
// see shred.DefaultFieldMap.
const (
	TaxDate       = "TaxDate"
	OrderNumber   = "OrderNO"
	OrderDate     = "OrderDate"
	InvoiceNumber = "Inv"
	Account       = "AccountNo"
	VatAmount     = "VAT"
	NetTotal      = "Total"
	GrandTotal    = "TotalIncVAT"
	PostCode      = "PostCode"
)

// Positional line-item prefixes. Field names are built as prefix + two-digit
// line index ("Drug01", "Unit01", ...).
const (
	LineItemPrefix  = "Drug"
	QuantityPrefix  = "Qty"
	UnitPricePrefix = "Unit"
	NetPricePrefix  = "Net"
	VatCodePrefix   = "Vat"
)

// MaxDocumentLines caps positional line discovery.
const MaxDocumentLines = 50

// Field-extraction error codes. Stable values, stored in document_error rows.
const (
	ErrStringMissing = "PRE0001"
	ErrNumberMissing = "PRE0002"
	ErrNumberNull    = "PRE0003"
	ErrNumberZero    = "PRE0004"
	ErrNumberFormat  = "PRE0005"
	ErrDateMissing   = "PRE0006"
	ErrDateFormat    = "PRE0007"
)

// IllegalCharacterMarker replaces single quotes in extracted strings and
// error messages. Legacy consumers of the error list expect it.
const IllegalCharacterMarker = "@Illegal@"

// Blob metadata keys passed between pipeline stages.
const (
	UniqueRunIdentifierKey = "UniqueRunIdentifier"
	ThumbprintKey          = "Thumbprint"
	ModelIDKey             = "ModelId"
	ModelVersionKey        = "ModelVersion"
	DocumentFormatKey      = "DocumentFormat"

	// Correlation ids for an external telemetry sink. Stamped at routing,
	// carried through every stage untouched.
	TelemetryOperationIDKey = "TelemetryOperationId"
	TelemetryParentIDKey    = "TelemetryParentId"
)

// Blob name suffixes for pipeline artifacts.
const (
	RecognizedExtension = "-recognized.json"
	DocumentExtension   = "-document.json"
	ExceptionExtension  = "-exception.json"
)

// Recognition service request plumbing.
const (
	APIKeyHeader            = "Ocp-Apim-Subscription-Key"
	OperationLocationHeader = "Operation-Location"
	LocationHeader          = "Location"
	RecognizerAPIPath       = "formrecognizer/v2.0-preview/custom/models"
	RecognizerAnalyzeVerb   = "analyze"
)
