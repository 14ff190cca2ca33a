// Command train runs one model-training cycle and registers the result in
// the model registry.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/formshred/formshred/internal/common"
	"github.com/formshred/formshred/internal/entity"
	"github.com/formshred/formshred/internal/pipeline"
	"github.com/formshred/formshred/internal/recognizer"
	repo "github.com/formshred/formshred/internal/repository"
)

func main() {
	var (
		format     = flag.String("format", "", "document format to train (required)")
		sasURL     = flag.String("sas-url", "", "blob container SAS URL holding the samples (required)")
		folder     = flag.String("folder", "", "sample folder prefix inside the container")
		subFolders = flag.Bool("sub-folders", false, "include sub folders in the sample set")
		labels     = flag.Bool("labels", true, "train with a label file")
	)
	flag.Parse()

	logger := common.NewLogger()
	slog.SetDefault(logger)

	if *format == "" || *sasURL == "" {
		fmt.Fprintln(os.Stderr, "usage: train -format <name> -sas-url <url> [-folder <prefix>] [-sub-folders] [-labels=false]")
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		logger.Error("DB_URL env var is required")
		os.Exit(1)
	}
	if cfg.Recognizer.BaseURL == "" || cfg.Recognizer.APIKey == "" {
		logger.Error("RECOGNIZER_BASE_URL and RECOGNIZER_API_KEY are required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	defer cancel()

	entc, pool, err := repo.OpenFromDSN(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	client := recognizer.NewClient(cfg.Recognizer, nil, logger)
	stage := pipeline.NewTrainStage(logger, client, repo.NewModelRepository(entc, logger))

	model, err := stage.Run(ctx, entity.TrainingRequest{
		DocumentFormat:    *format,
		BlobSasURL:        *sasURL,
		BlobFolderName:    *folder,
		IncludeSubFolders: strconv.FormatBool(*subFolders),
		UseLabelFile:      strconv.FormatBool(*labels),
	})
	if err != nil {
		logger.Error("training failed", "format", *format, "error", err)
		os.Exit(1)
	}

	logger.Info("training complete",
		"format", model.DocumentFormat,
		"model_id", model.ModelID,
		"version", model.ModelVersion,
		"accuracy", model.AverageModelAccuracy)
}
