// Package server adapts the pipeline, repositories and export service onto
// the ShredderService gRPC surface.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	v1 "github.com/formshred/formshred/gen/proto/shredder/v1"
	"github.com/formshred/formshred/internal/common"
	"github.com/formshred/formshred/internal/export"
	"github.com/formshred/formshred/internal/repository"
)

type DocumentService struct {
	v1.UnimplementedShredderServiceServer
	docs     repository.DocumentRepository
	exporter *export.Service
	pipeline PipelineRunner
	trainer  Trainer
	logger   *slog.Logger
}

// PipelineRunner is the slice of the pipeline processor the server needs.
type PipelineRunner interface {
	Process(ctx context.Context, container, name string) error
}

// Trainer is the slice of the training stage the server needs.
type Trainer interface {
	Run(ctx context.Context, req TrainRequest) (TrainResult, error)
}

// TrainRequest and TrainResult decouple the wire types from the pipeline
// types; see trainer.go for the adapter.
type TrainRequest struct {
	DocumentFormat    string
	BlobSasURL        string
	BlobFolderName    string
	IncludeSubFolders bool
	UseLabelFile      bool
}

type TrainResult struct {
	ModelID              string
	ModelVersion         int
	AverageModelAccuracy string
}

func NewDocumentService(docs repository.DocumentRepository, exporter *export.Service,
	pipeline PipelineRunner, trainer Trainer, logger *slog.Logger) *DocumentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentService{docs: docs, exporter: exporter, pipeline: pipeline, trainer: trainer, logger: logger}
}

func (s *DocumentService) ProcessBlob(ctx context.Context, req *v1.ProcessBlobRequest) (*v1.ProcessBlobResponse, error) {
	container := strings.TrimSpace(req.GetContainer())
	name := strings.TrimSpace(req.GetName())
	if container == "" || name == "" {
		return nil, common.InvalidArgumentError("container and name are required")
	}

	s.logger.Info("server.process_blob", "container", container, "name", name)
	if err := s.pipeline.Process(ctx, container, name); err != nil {
		s.logger.Error("server.process_blob_failed", "container", container, "name", name, "error", err)
		return nil, common.InternalErrorf("process %s/%s: %v", container, name, err)
	}
	return &v1.ProcessBlobResponse{}, nil
}

func (s *DocumentService) Train(ctx context.Context, req *v1.TrainRequest) (*v1.TrainResponse, error) {
	if strings.TrimSpace(req.GetDocumentFormat()) == "" {
		return nil, common.InvalidArgumentError("document_format is required")
	}
	if strings.TrimSpace(req.GetBlobSasUrl()) == "" {
		return nil, common.InvalidArgumentError("blob_sas_url is required")
	}

	result, err := s.trainer.Run(ctx, TrainRequest{
		DocumentFormat:    req.GetDocumentFormat(),
		BlobSasURL:        req.GetBlobSasUrl(),
		BlobFolderName:    req.GetBlobFolderName(),
		IncludeSubFolders: req.GetIncludeSubFolders(),
		UseLabelFile:      req.GetUseLabelFile(),
	})
	if err != nil {
		s.logger.Error("server.train_failed", "format", req.GetDocumentFormat(), "error", err)
		return nil, common.InternalErrorf("train %s: %v", req.GetDocumentFormat(), err)
	}

	return &v1.TrainResponse{
		ModelId:              result.ModelID,
		ModelVersion:         int32(result.ModelVersion),
		AverageModelAccuracy: result.AverageModelAccuracy,
	}, nil
}

func (s *DocumentService) ListDocuments(ctx context.Context, req *v1.ListDocumentsRequest) (*v1.ListDocumentsResponse, error) {
	from, to, err := parseWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, common.InvalidArgumentError(err.Error())
	}

	rows, err := s.docs.ListDocuments(ctx, strings.TrimSpace(req.GetDocumentFormat()), from, to)
	if err != nil {
		return nil, common.InternalErrorf("list documents: %v", err)
	}

	out := make([]*v1.Document, 0, len(rows))
	for _, d := range rows {
		doc := &v1.Document{
			Id:                  d.ID.String(),
			FileName:            d.FileName,
			DocumentFormat:      strDeref(d.DocumentFormat),
			InvoiceNumber:       strDeref(d.InvoiceNumber),
			PoNumber:            strDeref(d.PoNumber),
			TaxPeriod:           strDeref(d.TaxPeriod),
			NetTotal:            floatStr(d.NetTotal),
			VatTotal:            floatStr(d.VatTotal),
			GrossTotal:          floatStr(d.GrossTotal),
			IsValid:             d.IsValid,
			TerminalErrorCount:  int32(d.TerminalErrorCount),
			WarningErrorCount:   int32(d.WarningErrorCount),
			UniqueRunIdentifier: d.UniqueRunIdentifier,
			ShreddingUtcTime:    d.ShreddingUtcTime.UTC().Format(time.RFC3339),
			LineItemCount:       int32(len(d.Edges.LineItems)),
		}
		if d.TaxDate != nil {
			doc.TaxDate = d.TaxDate.Format("2006-01-02")
		}
		out = append(out, doc)
	}
	return &v1.ListDocumentsResponse{Documents: out}, nil
}

func (s *DocumentService) ExportDocuments(ctx context.Context, req *v1.ExportDocumentsRequest) (*v1.ExportDocumentsResponse, error) {
	from, to, err := parseWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, common.InvalidArgumentError(err.Error())
	}

	xlsx, err := s.exporter.ExportDocumentsXLSX(ctx, strings.TrimSpace(req.GetDocumentFormat()), from, to)
	if err != nil {
		s.logger.Error("server.export_failed", "format", req.GetDocumentFormat(), "error", err)
		return nil, common.InternalErrorf("export: %v", err)
	}
	return &v1.ExportDocumentsResponse{Xlsx: xlsx}, nil
}

func parseWindow(fromStr, toStr string) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if fd := strings.TrimSpace(fromStr); fd != "" {
		t, err := time.ParseInLocation("2006-01-02", fd, time.UTC)
		if err != nil {
			return nil, nil, fmt.Errorf("from_date invalid (YYYY-MM-DD): %v", err)
		}
		from = &t
	}
	if td := strings.TrimSpace(toStr); td != "" {
		t, err := time.ParseInLocation("2006-01-02", td, time.UTC)
		if err != nil {
			return nil, nil, fmt.Errorf("to_date invalid (YYYY-MM-DD): %v", err)
		}
		to = &t
	}
	return from, to, nil
}

func strDeref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func floatStr(p *float64) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *p)
}
