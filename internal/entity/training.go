package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrainingRequest is the inbound message asking for a model to be trained
// from a labeled sample set in blob storage.
type TrainingRequest struct {
	DocumentFormat    string `json:"DocumentFormat"`
	BlobSasURL        string `json:"BlobSasUrl"`
	BlobFolderName    string `json:"BlobFolderName"`
	IncludeSubFolders string `json:"IncludeSubFolders"`
	UseLabelFile      string `json:"UseLabelFile"`
}

// TrainingResult is the terminal payload of a successful training run.
type TrainingResult struct {
	ModelID              string
	CreatedDateTime      time.Time
	UpdatedDateTime      time.Time
	AverageModelAccuracy decimal.Decimal
	TrainingDocuments    string // raw per-document summary echo
}

// FormatModel is the model registry row selected for a document format.
type FormatModel struct {
	DocumentFormat       string
	ModelID              string
	ModelVersion         int
	AverageModelAccuracy decimal.Decimal
	UpdatedDateTime      time.Time
}
