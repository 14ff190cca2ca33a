package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/formshred/formshred/gen/ent"
	"github.com/formshred/formshred/gen/ent/document"
	"github.com/formshred/formshred/gen/ent/documentlineitem"
	"github.com/formshred/formshred/internal/entity"
)

// DocumentRepository persists shredded documents with their line items and
// recorded errors.
type DocumentRepository interface {
	// SaveDocument writes the document, its line items and its errors in one
	// transaction and returns the new row id.
	SaveDocument(ctx context.Context, doc *entity.Document, format string) (uuid.UUID, error)
	// ListDocuments returns documents for a format (empty means all) shredded
	// in the given window, line items loaded, oldest first.
	ListDocuments(ctx context.Context, format string, from, to *time.Time) ([]*ent.Document, error)
}

type documentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &documentRepository{client: client, logger: logger}
}

func (r *documentRepository) SaveDocument(ctx context.Context, doc *entity.Document, format string) (uuid.UUID, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("begin tx: %w", err)
	}

	builder := tx.Document.Create().
		SetFileName(doc.FileName).
		SetUniqueRunIdentifier(doc.UniqueRunIdentifier).
		SetIsValid(doc.IsValid()).
		SetTerminalErrorCount(doc.TerminalErrorCount()).
		SetWarningErrorCount(doc.WarningErrorCount()).
		SetShreddingUtcTime(doc.ShreddingUTCTime).
		SetTimeToShredMs(doc.TimeToShred).
		SetNetTotal(doc.NetTotal.InexactFloat64()).
		SetVatTotal(doc.VatAmount.InexactFloat64()).
		SetGrossTotal(doc.GrandTotal.InexactFloat64()).
		SetNillableDocumentFormat(nilIfEmpty(format)).
		SetNillableRecognizerStatus(nilIfEmpty(doc.RecognizerStatus)).
		SetNillableInvoiceNumber(nilIfEmpty(doc.DocumentNumber)).
		SetNillablePoNumber(nilIfEmpty(doc.OrderNumber)).
		SetNillableAccountNumber(nilIfEmpty(doc.Account)).
		SetNillableDeliveryPostCode(nilIfEmpty(doc.PostCode)).
		SetNillableTaxPeriod(nilIfEmpty(doc.TaxPeriod)).
		SetNillableThumbprint(nilIfEmpty(doc.Thumbprint)).
		SetNillableModelID(nilIfEmpty(doc.ModelID)).
		SetNillableModelVersion(nilIfEmpty(doc.ModelVersion)).
		SetNillableTaxDate(doc.TaxDate).
		SetNillableOrderDate(doc.OrderDate)
	if doc.RecognizerErrors != "" {
		builder = builder.SetRecognizerErrors(json.RawMessage(doc.RecognizerErrors))
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return uuid.Nil, rollback(tx, fmt.Errorf("save document: %w", err))
	}

	if len(doc.LineItems) > 0 {
		lines := make([]*ent.DocumentLineItemCreate, len(doc.LineItems))
		for i, li := range doc.LineItems {
			calc := li.CalculatedLineQuantity().InexactFloat64()
			lines[i] = tx.DocumentLineItem.Create().
				SetDocumentID(row.ID).
				SetLineNumber(li.DocumentLineNumber).
				SetNillableItemDescription(nilIfEmpty(li.ItemDescription)).
				SetNillableLineQuantity(nilIfEmpty(li.LineQuantity)).
				SetUnitPrice(li.UnitPrice.InexactFloat64()).
				SetNetAmount(li.NetAmount.InexactFloat64()).
				SetCalculatedQuantity(calc).
				SetNillableVatCode(nilIfEmpty(li.VATCode))
		}
		if _, err := tx.DocumentLineItem.CreateBulk(lines...).Save(ctx); err != nil {
			return uuid.Nil, rollback(tx, fmt.Errorf("save line items: %w", err))
		}
	}

	if len(doc.Errors) > 0 {
		errs := make([]*ent.DocumentErrorCreate, len(doc.Errors))
		for i, de := range doc.Errors {
			errs[i] = tx.DocumentError.Create().
				SetDocumentID(row.ID).
				SetErrorCode(de.ErrorCode).
				SetSeverity(de.ErrorSeverity.String()).
				SetMessage(de.ErrorMessage)
		}
		if _, err := tx.DocumentError.CreateBulk(errs...).Save(ctx); err != nil {
			return uuid.Nil, rollback(tx, fmt.Errorf("save errors: %w", err))
		}
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("commit: %w", err)
	}

	r.logger.Info("repository.document_saved",
		"document_id", row.ID, "run_id", doc.UniqueRunIdentifier,
		"lines", len(doc.LineItems), "errors", len(doc.Errors), "valid", doc.IsValid())
	return row.ID, nil
}

func (r *documentRepository) ListDocuments(ctx context.Context, format string, from, to *time.Time) ([]*ent.Document, error) {
	q := r.client.Document.Query()
	if format != "" {
		q = q.Where(document.DocumentFormat(format))
	}
	if from != nil {
		q = q.Where(document.ShreddingUtcTimeGTE(*from))
	}
	if to != nil {
		q = q.Where(document.ShreddingUtcTimeLTE(*to))
	}
	rows, err := q.
		WithLineItems(func(liq *ent.DocumentLineItemQuery) {
			liq.Order(documentlineitem.ByLineNumber())
		}).
		Order(document.ByShreddingUtcTime()).
		All(ctx)
	if err != nil {
		r.logger.Error("repository.list_documents_failed", "format", format, "error", err)
		return nil, err
	}
	return rows, nil
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w (rollback: %v)", err, rerr)
	}
	return err
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
