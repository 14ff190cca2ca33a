package server

import (
	"context"
	"strconv"

	"github.com/formshred/formshred/internal/entity"
	"github.com/formshred/formshred/internal/pipeline"
)

// TrainStageAdapter bridges the gRPC training surface onto the pipeline's
// train stage. The remote service takes its boolean knobs as strings; that
// quirk stays here, not in the wire contract.
type TrainStageAdapter struct {
	Stage *pipeline.TrainStage
}

func (a *TrainStageAdapter) Run(ctx context.Context, req TrainRequest) (TrainResult, error) {
	model, err := a.Stage.Run(ctx, entity.TrainingRequest{
		DocumentFormat:    req.DocumentFormat,
		BlobSasURL:        req.BlobSasURL,
		BlobFolderName:    req.BlobFolderName,
		IncludeSubFolders: strconv.FormatBool(req.IncludeSubFolders),
		UseLabelFile:      strconv.FormatBool(req.UseLabelFile),
	})
	if err != nil {
		return TrainResult{}, err
	}
	return TrainResult{
		ModelID:              model.ModelID,
		ModelVersion:         model.ModelVersion,
		AverageModelAccuracy: model.AverageModelAccuracy.String(),
	}, nil
}
