// Package export produces XLSX workbooks from persisted documents for the
// people reviewing shredding output.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/formshred/formshred/internal/repository"
)

// Service is a tiny façade over the document repository that produces XLSX
// bytes for exports.
type Service struct {
	docs   repository.DocumentRepository
	logger *slog.Logger
}

func NewService(docs repository.DocumentRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{docs: docs, logger: logger}
}

// ExportDocumentsXLSX returns a workbook with one Documents sheet and one
// Line Items sheet for the given format (empty means all formats) and date
// window. If only from is provided -> from..today (inclusive).
func (s *Service) ExportDocumentsXLSX(ctx context.Context, format string, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		now := time.Now().UTC()
		t := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}

	docs, err := s.docs.ListDocuments(ctx, format, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}

	f := excelize.NewFile()
	const docSheet = "Documents"
	const lineSheet = "Line Items"
	if err := f.SetSheetName("Sheet1", docSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(lineSheet); err != nil {
		return nil, err
	}

	docHeaders := []string{
		"Shredded (UTC)", "Format", "File Name", "Invoice No", "PO No",
		"Tax Date", "Tax Period", "Net Total", "VAT Total", "Gross Total",
		"Valid", "Terminal Errors", "Warnings", "Run Identifier", "Model",
	}
	lineHeaders := []string{
		"Run Identifier", "File Name", "Line", "Description",
		"Quantity", "Unit Price", "Net Amount", "Calculated Quantity", "VAT Code",
	}
	writeRow(f, docSheet, 1, toAny(docHeaders))
	writeRow(f, lineSheet, 1, toAny(lineHeaders))

	docRow, lineRow := 2, 2
	lines := 0
	for _, d := range docs {
		writeRow(f, docSheet, docRow, []any{
			d.ShreddingUtcTime.UTC().Format("2006-01-02 15:04:05"),
			strDeref(d.DocumentFormat),
			d.FileName,
			strDeref(d.InvoiceNumber),
			strDeref(d.PoNumber),
			dateDeref(d.TaxDate),
			strDeref(d.TaxPeriod),
			floatDeref(d.NetTotal),
			floatDeref(d.VatTotal),
			floatDeref(d.GrossTotal),
			d.IsValid,
			d.TerminalErrorCount,
			d.WarningErrorCount,
			d.UniqueRunIdentifier,
			strDeref(d.ModelID),
		})
		docRow++

		for _, li := range d.Edges.LineItems {
			writeRow(f, lineSheet, lineRow, []any{
				d.UniqueRunIdentifier,
				d.FileName,
				li.LineNumber,
				strDeref(li.ItemDescription),
				strDeref(li.LineQuantity),
				floatDeref(li.UnitPrice),
				floatDeref(li.NetAmount),
				floatDeref(li.CalculatedQuantity),
				strDeref(li.VatCode),
			})
			lineRow++
			lines++
		}
	}

	_ = f.SetColWidth(docSheet, "A", "A", 20)
	_ = f.SetColWidth(docSheet, "C", "C", 32)
	_ = f.SetColWidth(docSheet, "N", "N", 38)
	_ = f.SetColWidth(lineSheet, "A", "A", 38)
	_ = f.SetColWidth(lineSheet, "D", "D", 40)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"format", format,
		"documents", len(docs),
		"lines", lines,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		_ = f.SetCellValue(sheet, cell, v)
	}
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func strDeref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func floatDeref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func dateDeref(p *time.Time) string {
	if p == nil {
		return ""
	}
	return p.Format("2006-01-02")
}
