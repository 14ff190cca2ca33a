package pipeline

import (
	"context"
	"log/slog"

	"github.com/formshred/formshred/internal/common"
	"github.com/formshred/formshred/internal/entity"
	"github.com/formshred/formshred/internal/repository"
)

// TrainStage drives one training run end to end: submit, wait for the model
// to come ready, register it in the model registry under the next version
// for its format.
type TrainStage struct {
	logger     *slog.Logger
	recognizer Recognizer
	models     repository.ModelRepository
}

func NewTrainStage(logger *slog.Logger, recognizer Recognizer, models repository.ModelRepository) *TrainStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &TrainStage{logger: logger, recognizer: recognizer, models: models}
}

func (s *TrainStage) Run(ctx context.Context, req entity.TrainingRequest) (*entity.FormatModel, error) {
	if req.DocumentFormat == "" {
		return nil, common.NewAppError(common.CodeConfigError, "training request carries no document format", nil)
	}

	result, err := s.recognizer.Train(ctx, req)
	if err != nil {
		s.logger.Error("pipeline.train.failed", "format", req.DocumentFormat, "error", err)
		return nil, err
	}

	model, err := s.models.RecordTraining(ctx, req.DocumentFormat, result)
	if err != nil {
		return nil, err
	}

	s.logger.Info("pipeline.train.complete",
		"format", model.DocumentFormat, "model_id", model.ModelID,
		"version", model.ModelVersion, "accuracy", model.AverageModelAccuracy)
	return model, nil
}
