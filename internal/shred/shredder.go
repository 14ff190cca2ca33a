// Package shred turns a terminal recognition payload into a structured
// document. Field-extraction failures never escape: each one becomes a
// DocumentError on the output and shredding continues. Only a payload with no
// locatable field bag is reported as an error.
package shred

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/formshred/formshred/internal/common"
	"github.com/formshred/formshred/internal/entity"
	"github.com/formshred/formshred/internal/fieldbag"
)

// Metadata carries the identifiers the caller read from inbound blob
// metadata before invoking the shredder.
type Metadata struct {
	UniqueRunIdentifier  string
	Thumbprint           string
	ModelID              string
	ModelVersion         string
	TelemetryOperationID string
	TelemetryParentID    string
}

type Shredder struct {
	fieldMap FieldMap
	logger   *slog.Logger
}

func NewShredder(fieldMap FieldMap, logger *slog.Logger) *Shredder {
	if logger == nil {
		logger = slog.Default()
	}
	if fieldMap.MaxLines <= 0 {
		fieldMap.MaxLines = DefaultFieldMap().MaxLines
	}
	return &Shredder{fieldMap: fieldMap, logger: logger}
}

// Shred populates doc from the raw terminal payload. The returned error is
// non-nil only when the payload carries no field bag at the expected path;
// every per-field failure is recorded on doc instead.
func (s *Shredder) Shred(raw []byte, doc *entity.Document, meta Metadata) error {
	start := time.Now()
	m := s.fieldMap

	if meta.UniqueRunIdentifier != "" {
		doc.UniqueRunIdentifier = meta.UniqueRunIdentifier
	}
	doc.Thumbprint = meta.Thumbprint
	doc.ModelID = meta.ModelID
	doc.ModelVersion = meta.ModelVersion

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return common.NewAppError(common.CodeContractViolation, "recognition payload is not valid JSON", err)
	}
	doc.RecognizerStatus = env.Status
	if len(env.Errors) > 0 && string(env.Errors) != "null" {
		doc.RecognizerErrors = string(env.Errors)
	}

	if env.AnalyzeResult == nil || len(env.AnalyzeResult.DocumentResults) == 0 {
		return common.NewAppError(common.CodeContractViolation, "recognition payload has no document results", nil)
	}
	bag, err := fieldbag.Parse(env.AnalyzeResult.DocumentResults[0].Fields)
	if err != nil {
		return common.NewAppError(common.CodeContractViolation, "recognition payload field bag is malformed", err)
	}

	acc := fieldbag.NewAccessor(bag, doc)

	doc.OrderNumber, _ = acc.GetString(m.OrderNumber, entity.SeverityWarning)
	if t, ok := acc.GetDate(m.OrderDate, entity.SeverityWarning); ok {
		doc.OrderDate = &t
	}
	if t, ok := acc.GetDate(m.TaxDate, entity.SeverityWarning); ok {
		doc.TaxDate = &t
	}
	doc.DocumentNumber, _ = acc.GetString(m.DocumentNumber, entity.SeverityWarning)
	doc.Account, _ = acc.GetString(m.Account, entity.SeverityWarning)
	// Totals stay at Warning severity: a missing total never blocks validity.
	doc.NetTotal, _ = acc.GetNumber(m.NetTotal, entity.SeverityWarning)
	doc.VatAmount, _ = acc.GetNumber(m.VatAmount, entity.SeverityWarning)
	doc.GrandTotal, _ = acc.GetNumber(m.GrandTotal, entity.SeverityWarning)
	doc.PostCode, _ = acc.GetString(m.PostCode, entity.SeverityWarning)
	doc.DeriveTaxPeriod()

	s.shredLines(bag, acc, doc)

	doc.TimeToShred = time.Since(start).Milliseconds()
	s.logger.Info("shred.complete",
		"run_id", doc.UniqueRunIdentifier,
		"operation_id", meta.TelemetryOperationID,
		"parent_id", meta.TelemetryParentID,
		"document_number", doc.DocumentNumber,
		"line_items", len(doc.LineItems),
		"terminal_errors", doc.TerminalErrorCount(),
		"warning_errors", doc.WarningErrorCount(),
		"is_valid", doc.IsValid(),
		"elapsed_ms", doc.TimeToShred,
	)
	return nil
}

// shredLines walks positional indexes 1..MaxLines-1 and stops at the first
// index with none of the unit/net/item keys present. Gaps are not permitted;
// discovery order is the only order.
func (s *Shredder) shredLines(bag fieldbag.Bag, acc *fieldbag.Accessor, doc *entity.Document) {
	m := s.fieldMap
	for i := 1; i < m.MaxLines; i++ {
		lineNumber := fmt.Sprintf("%02d", i)
		itemID := m.LineItemPrefix + lineNumber
		unitID := m.UnitPricePrefix + lineNumber
		quantityID := m.QuantityPrefix + lineNumber
		netID := m.NetPricePrefix + lineNumber
		vatID := m.VatCodePrefix + lineNumber

		// Presence of any one of unit, net or item means the line exists.
		if !bag.Has(unitID) && !bag.Has(netID) && !bag.Has(itemID) {
			break
		}

		li := entity.LineItem{DocumentLineNumber: lineNumber}
		li.ItemDescription, _ = acc.GetString(itemID, entity.SeverityTerminal)
		li.NetAmount, _ = acc.GetNumber(netID, entity.SeverityTerminal)
		li.UnitPrice, _ = acc.GetNumber(unitID, entity.SeverityTerminal)
		if qty, ok := acc.GetNumber(quantityID, entity.SeverityWarning); ok {
			li.LineQuantity = qty.String()
		}
		li.VATCode, _ = acc.GetString(vatID, entity.SeverityWarning)

		doc.LineItems = append(doc.LineItems, li)
	}
}
