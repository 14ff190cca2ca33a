package entity

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Document is the shredded result of one recognition run: header fields, an
// ordered list of line items and an ordered list of recorded errors. Validity
// is always derived from the live error list, never cached.
type Document struct {
	DocumentNumber string          `json:"DocumentNumber,omitempty"`
	TaxDate        *time.Time      `json:"TaxDate,omitempty"`
	OrderNumber    string          `json:"OrderNumber,omitempty"`
	OrderDate      *time.Time      `json:"OrderDate,omitempty"`
	Account        string          `json:"Account,omitempty"`
	PostCode       string          `json:"PostCode,omitempty"`
	NetTotal       decimal.Decimal `json:"NetTotal"`
	VatAmount      decimal.Decimal `json:"VatAmount"`
	GrandTotal     decimal.Decimal `json:"GrandTotal"`

	RecognizerStatus string `json:"RecognizerStatus,omitempty"`
	RecognizerErrors string `json:"RecognizerErrors,omitempty"`

	FileName            string    `json:"FileName,omitempty"`
	UniqueRunIdentifier string    `json:"UniqueRunIdentifier"`
	Thumbprint          string    `json:"Thumbprint,omitempty"`
	ModelID             string    `json:"ModelId,omitempty"`
	ModelVersion        string    `json:"ModelVersion,omitempty"`
	TaxPeriod           string    `json:"TaxPeriod,omitempty"`
	ShreddingUTCTime    time.Time `json:"ShreddingUtcDateTime"`
	TimeToShred         int64     `json:"TimeToShred"` // milliseconds

	LineItems []LineItem      `json:"LineItems"`
	Errors    []DocumentError `json:"Errors"`
}

// NewDocument creates an empty document for one shredding run with a fresh
// run identifier. Callers override the identifier from inbound metadata when
// one was assigned upstream.
func NewDocument(fileName string) *Document {
	return &Document{
		FileName:            fileName,
		UniqueRunIdentifier: uuid.New().String(),
		ShreddingUTCTime:    time.Now().UTC(),
		LineItems:           []LineItem{},
		Errors:              []DocumentError{},
	}
}

// AddError appends one error in discovery order. The message is sanitized for
// legacy consumers.
func (d *Document) AddError(code string, severity Severity, message string) {
	d.Errors = append(d.Errors, DocumentError{
		ErrorCode:     code,
		ErrorSeverity: severity,
		ErrorMessage:  SafeString(message),
	})
}

// TerminalErrorCount is derived from the live error list.
func (d *Document) TerminalErrorCount() int {
	n := 0
	for _, e := range d.Errors {
		if e.ErrorSeverity == SeverityTerminal {
			n++
		}
	}
	return n
}

// WarningErrorCount is derived from the live error list.
func (d *Document) WarningErrorCount() int {
	n := 0
	for _, e := range d.Errors {
		if e.ErrorSeverity == SeverityWarning {
			n++
		}
	}
	return n
}

// IsValid reports whether the document carries no Terminal errors.
func (d *Document) IsValid() bool {
	return d.TerminalErrorCount() == 0
}

// DeriveTaxPeriod sets TaxPeriod from TaxDate as year + unpadded month
// ("20203" for March 2020). The legacy format is preserved exactly.
func (d *Document) DeriveTaxPeriod() {
	if d.TaxDate == nil {
		return
	}
	d.TaxPeriod = strconv.Itoa(d.TaxDate.Year()) + strconv.Itoa(int(d.TaxDate.Month()))
}

// ToJSON serializes the document the way it is written to blob storage.
func (d *Document) ToJSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}
