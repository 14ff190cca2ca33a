package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/shopspring/decimal"

	"github.com/formshred/formshred/gen/ent"
	"github.com/formshred/formshred/gen/ent/modeltraining"
	"github.com/formshred/formshred/internal/common"
	"github.com/formshred/formshred/internal/entity"
)

// ModelRepository is the trained-model registry: which recognition model
// handles which document format, versions counting up per format.
type ModelRepository interface {
	// LatestModel returns the highest-version model for a format.
	LatestModel(ctx context.Context, format string) (*entity.FormatModel, error)
	// RecordTraining registers a finished training run under the next version
	// for its format and returns the new registry row.
	RecordTraining(ctx context.Context, format string, result *entity.TrainingResult) (*entity.FormatModel, error)
}

type modelRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewModelRepository(client *ent.Client, logger *slog.Logger) ModelRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &modelRepository{client: client, logger: logger}
}

func (r *modelRepository) LatestModel(ctx context.Context, format string) (*entity.FormatModel, error) {
	row, err := r.client.ModelTraining.Query().
		Where(modeltraining.DocumentFormat(format)).
		Order(modeltraining.ByModelVersion(entsql.OrderDesc())).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, common.NewAppError(common.CodeConfigError,
			fmt.Sprintf("no trained model is registered for document format %q", format), err)
	}
	if err != nil {
		return nil, err
	}
	return toFormatModel(row), nil
}

func (r *modelRepository) RecordTraining(ctx context.Context, format string, result *entity.TrainingResult) (*entity.FormatModel, error) {
	version := 1
	latest, err := r.client.ModelTraining.Query().
		Where(modeltraining.DocumentFormat(format)).
		Order(modeltraining.ByModelVersion(entsql.OrderDesc())).
		First(ctx)
	switch {
	case err == nil:
		version = latest.ModelVersion + 1
	case !ent.IsNotFound(err):
		return nil, err
	}

	builder := r.client.ModelTraining.Create().
		SetDocumentFormat(format).
		SetModelID(result.ModelID).
		SetModelVersion(version).
		SetAverageModelAccuracy(result.AverageModelAccuracy.InexactFloat64()).
		SetTrainedAt(result.UpdatedDateTime)
	if result.TrainingDocuments != "" {
		builder = builder.SetTrainingDocuments(json.RawMessage(result.TrainingDocuments))
	}

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("repository.record_training_failed", "format", format, "error", err)
		return nil, err
	}
	r.logger.Info("repository.model_registered",
		"format", format, "model_id", row.ModelID, "version", row.ModelVersion)
	return toFormatModel(row), nil
}

func toFormatModel(row *ent.ModelTraining) *entity.FormatModel {
	m := &entity.FormatModel{
		DocumentFormat:  row.DocumentFormat,
		ModelID:         row.ModelID,
		ModelVersion:    row.ModelVersion,
		UpdatedDateTime: row.TrainedAt,
	}
	if row.AverageModelAccuracy != nil {
		m.AverageModelAccuracy = decimal.NewFromFloat(*row.AverageModelAccuracy)
	}
	return m
}
