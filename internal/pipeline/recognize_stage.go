package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/formshred/formshred/constants"
	"github.com/formshred/formshred/internal/common"
	"github.com/formshred/formshred/internal/storage"
)

// RecognizeStage submits the routed image to the recognition service and, on
// a terminal success, writes the raw recognition payload to the outbound
// container as "<base>-recognized.json" with the image's metadata carried
// over. The source image moves to the completed container.
type RecognizeStage struct {
	logger     *slog.Logger
	store      storage.BlobStore
	recognizer Recognizer
	cfg        common.StorageConfig
}

func NewRecognizeStage(logger *slog.Logger, store storage.BlobStore, recognizer Recognizer, cfg common.StorageConfig) *RecognizeStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &RecognizeStage{logger: logger, store: store, recognizer: recognizer, cfg: cfg}
}

func (s *RecognizeStage) Run(ctx context.Context, name string) error {
	meta, err := s.store.GetMetadata(ctx, s.cfg.InboundImages, name)
	if err != nil {
		return err
	}
	modelID := meta[constants.ModelIDKey]
	if modelID == "" {
		return common.NewAppError(common.CodeConfigError,
			fmt.Sprintf("image %s carries no model id; was it routed through a drop container?", name), nil)
	}

	image, err := s.store.Read(ctx, s.cfg.InboundImages, name)
	if err != nil {
		return err
	}

	ctx = common.WithRunID(ctx, meta[constants.UniqueRunIdentifierKey])
	payload, err := s.recognizer.Analyze(ctx, image, name, modelID)
	if err != nil {
		return err
	}

	recognized := baseName(name) + constants.RecognizedExtension
	if err := s.store.Save(ctx, s.cfg.OutboundJSON, recognized, payload, meta); err != nil {
		return err
	}
	if err := s.store.Move(ctx, s.cfg.InboundImages, name, s.cfg.ProcessingComplete); err != nil {
		return err
	}

	s.logger.Info("pipeline.recognize.complete",
		"run_id", meta[constants.UniqueRunIdentifierKey], "name", name,
		"recognized_name", recognized, "model_id", modelID, "bytes", len(payload))
	return nil
}
