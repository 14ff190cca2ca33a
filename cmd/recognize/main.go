// Command recognize submits one image to the recognition service and prints
// the terminal payload. Useful for checking a model against a sample without
// the full pipeline.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/formshred/formshred/internal/common"
	"github.com/formshred/formshred/internal/recognizer"
)

func main() {
	var (
		file    = flag.String("file", "", "image file to recognize (required)")
		modelID = flag.String("model", "", "recognition model id (required)")
		out     = flag.String("out", "", "output JSON path (defaults to <file>-recognized.json)")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if *file == "" || *modelID == "" {
		fmt.Fprintln(os.Stderr, "usage: recognize -file <image> -model <model-id> [-out <path>]")
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if cfg.Recognizer.BaseURL == "" || cfg.Recognizer.APIKey == "" {
		logger.Error("RECOGNIZER_BASE_URL and RECOGNIZER_API_KEY are required")
		os.Exit(1)
	}

	image, err := os.ReadFile(*file)
	if err != nil {
		logger.Error("read image", "file", *file, "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	client := recognizer.NewClient(cfg.Recognizer, nil, logger)
	start := time.Now()
	payload, err := client.Analyze(ctx, image, filepath.Base(*file), *modelID)
	if err != nil {
		logger.Error("recognition failed", "file", *file, "error", err)
		os.Exit(1)
	}

	dest := *out
	if dest == "" {
		base := *file
		if ext := filepath.Ext(base); ext != "" {
			base = base[:len(base)-len(ext)]
		}
		dest = base + "-recognized.json"
	}
	if err := os.WriteFile(dest, payload, 0o644); err != nil {
		logger.Error("write payload", "out", dest, "error", err)
		os.Exit(1)
	}

	logger.Info("recognition complete",
		"file", *file, "model_id", *modelID, "out", dest,
		"bytes", len(payload), "elapsed", time.Since(start).Round(time.Millisecond))
}
