// Package pipeline drives a document through its stages: drop routing,
// recognition, shredding. Every stage has exactly two outcomes: hand the
// artifact to the next container, or serialize the failure into the
// exception container. Nothing is ever lost in between.
package pipeline

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/formshred/formshred/constants"
	"github.com/formshred/formshred/internal/common"
	"github.com/formshred/formshred/internal/entity"
	"github.com/formshred/formshred/internal/storage"
)

// Recognizer is the remote service surface the pipeline depends on.
type Recognizer interface {
	Analyze(ctx context.Context, image []byte, name, modelID string) ([]byte, error)
	Train(ctx context.Context, req entity.TrainingRequest) (*entity.TrainingResult, error)
}

// Processor coordinates the stages over a shared blob store.
type Processor struct {
	logger *slog.Logger
	store  storage.BlobStore
	cfg    common.StorageConfig

	route     *RouteStage
	recognize *RecognizeStage
	shred     *ShredStage
}

func NewProcessor(logger *slog.Logger, store storage.BlobStore, cfg common.StorageConfig,
	route *RouteStage, recognize *RecognizeStage, shred *ShredStage) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:    logger,
		store:     store,
		cfg:       cfg,
		route:     route,
		recognize: recognize,
		shred:     shred,
	}
}

// Process dispatches one blob to its stage based on the container it arrived
// in. Stage failures are routed to the exception container here, in one
// place; a non-nil return means even that routing failed.
func (p *Processor) Process(ctx context.Context, container, name string) error {
	var err error
	switch {
	case strings.HasPrefix(container, p.cfg.DropPrefix):
		format := strings.TrimPrefix(container, p.cfg.DropPrefix)
		err = p.route.Run(ctx, format, container, name)
	case container == p.cfg.InboundImages:
		err = p.recognize.Run(ctx, name)
	case container == p.cfg.OutboundJSON:
		err = p.shred.Run(ctx, name)
	default:
		p.logger.Warn("pipeline.unroutable_container", "container", container, "name", name)
		return nil
	}
	if err == nil {
		return nil
	}
	p.logger.Error("pipeline.stage_failed",
		"container", container, "name", name,
		"trace_id", common.TraceIDFromContext(ctx), "error", err)
	return p.toException(ctx, container, name, err)
}

// failureRecord is the serialized form of a hard failure, stored next to the
// offending blob in the exception container.
type failureRecord struct {
	Container  string `json:"Container"`
	BlobName   string `json:"BlobName"`
	Code       string `json:"Code"`
	Message    string `json:"Message"`
	RunID      string `json:"UniqueRunIdentifier,omitempty"`
	UTCTime    string `json:"UtcTime"`
	Thumbprint string `json:"Thumbprint,omitempty"`
}

func (p *Processor) toException(ctx context.Context, container, name string, cause error) error {
	meta, merr := p.store.GetMetadata(ctx, container, name)
	if merr != nil {
		meta = storage.Metadata{}
	}
	rec := failureRecord{
		Container:  container,
		BlobName:   name,
		Code:       common.CodeOf(cause),
		Message:    entity.SafeString(cause.Error()),
		RunID:      meta[constants.UniqueRunIdentifierKey],
		Thumbprint: meta[constants.ThumbprintKey],
		UTCTime:    time.Now().UTC().Format(time.RFC3339),
	}
	raw, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	if err := p.store.Save(ctx, p.cfg.ExceptionContainer, baseName(name)+constants.ExceptionExtension, raw, meta); err != nil {
		return err
	}
	if err := p.store.Move(ctx, container, name, p.cfg.ExceptionContainer); err != nil {
		return err
	}
	p.logger.Warn("pipeline.routed_to_exceptions",
		"container", container, "name", name, "code", rec.Code, "run_id", rec.RunID)
	return nil
}

// baseName strips the last extension from a blob name.
func baseName(name string) string {
	if i := strings.LastIndex(name, "."); i > 0 {
		return name[:i]
	}
	return name
}
