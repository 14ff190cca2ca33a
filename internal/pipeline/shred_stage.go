package pipeline

import (
	"context"
	"log/slog"
	"strings"

	"github.com/formshred/formshred/constants"
	"github.com/formshred/formshred/internal/common"
	"github.com/formshred/formshred/internal/entity"
	"github.com/formshred/formshred/internal/repository"
	"github.com/formshred/formshred/internal/shred"
	"github.com/formshred/formshred/internal/storage"
)

// ShredStage turns a recognition payload into a typed document: shred the
// field bag, write the document JSON next to the completed artifacts and
// persist it with its line items and errors. A document that shredded with
// terminal errors is still a shredding SUCCESS; it is persisted as invalid
// for a human to review. Only a payload the shredder cannot work with at all
// goes to exceptions.
type ShredStage struct {
	logger   *slog.Logger
	store    storage.BlobStore
	shredder *shred.Shredder
	docs     repository.DocumentRepository
	cfg      common.StorageConfig
}

func NewShredStage(logger *slog.Logger, store storage.BlobStore, shredder *shred.Shredder,
	docs repository.DocumentRepository, cfg common.StorageConfig) *ShredStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ShredStage{logger: logger, store: store, shredder: shredder, docs: docs, cfg: cfg}
}

func (s *ShredStage) Run(ctx context.Context, name string) error {
	raw, err := s.store.Read(ctx, s.cfg.OutboundJSON, name)
	if err != nil {
		return err
	}
	if err := shred.ValidateEnvelope(raw); err != nil {
		return err
	}
	meta, err := s.store.GetMetadata(ctx, s.cfg.OutboundJSON, name)
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(name, constants.RecognizedExtension)
	doc := entity.NewDocument(base)
	err = s.shredder.Shred(raw, doc, shred.Metadata{
		UniqueRunIdentifier:  meta[constants.UniqueRunIdentifierKey],
		Thumbprint:           meta[constants.ThumbprintKey],
		ModelID:              meta[constants.ModelIDKey],
		ModelVersion:         meta[constants.ModelVersionKey],
		TelemetryOperationID: meta[constants.TelemetryOperationIDKey],
		TelemetryParentID:    meta[constants.TelemetryParentIDKey],
	})
	if err != nil {
		return err
	}

	docJSON, err := doc.ToJSON()
	if err != nil {
		return err
	}
	if err := s.store.Save(ctx, s.cfg.ProcessingComplete, base+constants.DocumentExtension, docJSON, meta); err != nil {
		return err
	}

	docID, err := s.docs.SaveDocument(ctx, doc, meta[constants.DocumentFormatKey])
	if err != nil {
		return err
	}

	if err := s.store.Move(ctx, s.cfg.OutboundJSON, name, s.cfg.ProcessingComplete); err != nil {
		return err
	}

	s.logger.Info("pipeline.shred.complete",
		"run_id", doc.UniqueRunIdentifier, "name", name, "document_id", docID,
		"valid", doc.IsValid(), "lines", len(doc.LineItems),
		"terminal_errors", doc.TerminalErrorCount(), "warnings", doc.WarningErrorCount())
	return nil
}
