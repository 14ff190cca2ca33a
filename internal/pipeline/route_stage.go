package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/formshred/formshred/constants"
	"github.com/formshred/formshred/internal/common"
	"github.com/formshred/formshred/internal/repository"
	"github.com/formshred/formshred/internal/storage"
)

// RouteStage takes a freshly dropped document, stamps it with everything the
// later stages need (run id, content thumbprint, model selection) and hands
// it to the recognition container under its routed name "<format>-<name>".
type RouteStage struct {
	logger *slog.Logger
	store  storage.BlobStore
	models repository.ModelRepository
	cfg    common.StorageConfig
}

func NewRouteStage(logger *slog.Logger, store storage.BlobStore, models repository.ModelRepository, cfg common.StorageConfig) *RouteStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &RouteStage{logger: logger, store: store, models: models, cfg: cfg}
}

func (s *RouteStage) Run(ctx context.Context, format, container, name string) error {
	if format == "" {
		return common.NewAppError(common.CodeConfigError,
			fmt.Sprintf("container %q carries no document format after the drop prefix", container), nil)
	}
	if _, ok := constants.ContentTypeForName(name); !ok {
		return common.NewAppError(common.CodeUnsupportedFormat,
			fmt.Sprintf("incoming document %s has an unsupported format; supported types are jpeg, jpg, tiff and png", name), nil)
	}

	data, err := s.store.Read(ctx, container, name)
	if err != nil {
		return err
	}

	model, err := s.models.LatestModel(ctx, format)
	if err != nil {
		return err
	}

	runID := uuid.New().String()
	meta := storage.Metadata{
		constants.UniqueRunIdentifierKey: runID,
		constants.ThumbprintKey:          storage.Thumbprint(data),
		constants.DocumentFormatKey:      format,
		constants.ModelIDKey:             model.ModelID,
		constants.ModelVersionKey:        fmt.Sprintf("%d", model.ModelVersion),
	}

	// Telemetry correlation: pass the dropper's ids through when present,
	// otherwise open a fresh operation from the job's trace id.
	inbound, err := s.store.GetMetadata(ctx, container, name)
	if err != nil {
		return err
	}
	opID := inbound[constants.TelemetryOperationIDKey]
	if opID == "" {
		opID = common.TraceIDFromContext(ctx)
	}
	if opID == "" {
		opID = uuid.New().String()
	}
	meta[constants.TelemetryOperationIDKey] = opID
	if parent := inbound[constants.TelemetryParentIDKey]; parent != "" {
		meta[constants.TelemetryParentIDKey] = parent
	}
	if err := s.store.SetMetadata(ctx, container, name, meta); err != nil {
		return err
	}

	routed := format + "-" + name
	if err := s.store.MoveRename(ctx, container, name, s.cfg.InboundImages, routed); err != nil {
		return err
	}

	s.logger.Info("pipeline.route.complete",
		"run_id", runID, "name", name, "routed_name", routed,
		"format", format, "model_id", model.ModelID, "model_version", model.ModelVersion)
	return nil
}
