package recognizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/formshred/formshred/constants"
	"github.com/formshred/formshred/internal/common"
	"github.com/formshred/formshred/internal/entity"
)

// trainingRequestBody is the wire shape of a training submission.
type trainingRequestBody struct {
	Source       string             `json:"source"`
	SourceFilter trainingFilterBody `json:"sourceFilter"`
	UseLabelFile string             `json:"useLabelFile"`
}

type trainingFilterBody struct {
	Prefix            string `json:"prefix"`
	IncludeSubFolders string `json:"includeSubFolders"`
}

// Train submits a model-training request and polls its job handle until the
// model is ready, then extracts the training summary from the terminal
// payload. Same submit+poll shape as Analyze; only the status path and the
// terminal payload differ.
func (c *Client) Train(ctx context.Context, req entity.TrainingRequest) (*entity.TrainingResult, error) {
	reqID := uuid.New().String()

	body, err := json.Marshal(trainingRequestBody{
		Source: req.BlobSasURL,
		SourceFilter: trainingFilterBody{
			Prefix:            req.BlobFolderName,
			IncludeSubFolders: req.IncludeSubFolders,
		},
		UseLabelFile: req.UseLabelFile,
	})
	if err != nil {
		return nil, common.NewAppError(common.CodeContractViolation, "encode training request", err)
	}

	uri := fmt.Sprintf("%s/%s", c.baseURL, constants.RecognizerAPIPath)
	c.logger.Info("recognizer.train.submit",
		"req_id", reqID, "document_format", req.DocumentFormat, "prefix", req.BlobFolderName)

	handle, err := c.submit(ctx, uri, "application/json", bytes.NewReader(body), constants.LocationHeader)
	if err != nil {
		c.logger.Error("recognizer.train.submit_failed", "req_id", reqID, "error", err)
		return nil, err
	}

	payload, err := c.poll(ctx, reqID, handle, readTrainingStatus)
	if err != nil {
		return nil, err
	}

	result := parseTrainingResult(payload)
	c.logger.Info("recognizer.train.complete",
		"req_id", reqID, "model_id", result.ModelID, "accuracy", result.AverageModelAccuracy)
	return result, nil
}

// parseTrainingResult extracts the terminal summary with the same null-safe
// discipline as field extraction: missing or unparsable values degrade to
// defaults instead of failing a training run that already succeeded.
func parseTrainingResult(payload []byte) *entity.TrainingResult {
	var body struct {
		ModelInfo struct {
			ModelID             string `json:"modelId"`
			CreatedDateTime     string `json:"createdDateTime"`
			LastUpdatedDateTime string `json:"lastUpdatedDateTime"`
		} `json:"modelInfo"`
		TrainResult struct {
			AverageModelAccuracy json.Number     `json:"averageModelAccuracy"`
			TrainingDocuments    json.RawMessage `json:"trainingDocuments"`
		} `json:"trainResult"`
	}
	_ = json.Unmarshal(payload, &body)

	result := &entity.TrainingResult{
		ModelID:         body.ModelInfo.ModelID,
		CreatedDateTime: time.Now().UTC(),
		UpdatedDateTime: time.Now().UTC(),
	}
	if t, err := time.Parse(time.RFC3339, body.ModelInfo.CreatedDateTime); err == nil {
		result.CreatedDateTime = t
	}
	if t, err := time.Parse(time.RFC3339, body.ModelInfo.LastUpdatedDateTime); err == nil {
		result.UpdatedDateTime = t
	}
	if acc, err := decimal.NewFromString(body.TrainResult.AverageModelAccuracy.String()); err == nil {
		result.AverageModelAccuracy = acc
	}
	if len(body.TrainResult.TrainingDocuments) > 0 {
		result.TrainingDocuments = string(body.TrainResult.TrainingDocuments)
	}
	return result
}
