package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/formshred/formshred/gen/ent"
	v1 "github.com/formshred/formshred/gen/proto/shredder/v1"
	"github.com/formshred/formshred/internal/entity"
)

type fakeRunner struct {
	container, name string
	err             error
}

func (f *fakeRunner) Process(_ context.Context, container, name string) error {
	f.container, f.name = container, name
	return f.err
}

type fakeTrainer struct {
	got    TrainRequest
	result TrainResult
	err    error
}

func (f *fakeTrainer) Run(_ context.Context, req TrainRequest) (TrainResult, error) {
	f.got = req
	return f.result, f.err
}

type fakeDocRepo struct {
	rows []*ent.Document
	err  error
}

func (f *fakeDocRepo) SaveDocument(context.Context, *entity.Document, string) (uuid.UUID, error) {
	panic("not used")
}

func (f *fakeDocRepo) ListDocuments(_ context.Context, _ string, _, _ *time.Time) ([]*ent.Document, error) {
	return f.rows, f.err
}

func TestProcessBlobValidation(t *testing.T) {
	svc := NewDocumentService(nil, nil, &fakeRunner{}, &fakeTrainer{}, nil)
	_, err := svc.ProcessBlob(context.Background(), &v1.ProcessBlobRequest{Container: "", Name: "x"})
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("code = %v, want InvalidArgument", status.Code(err))
	}
}

func TestProcessBlobDelegates(t *testing.T) {
	runner := &fakeRunner{}
	svc := NewDocumentService(nil, nil, runner, &fakeTrainer{}, nil)
	if _, err := svc.ProcessBlob(context.Background(), &v1.ProcessBlobRequest{Container: "drop-acme", Name: "scan.png"}); err != nil {
		t.Fatalf("ProcessBlob: %v", err)
	}
	if runner.container != "drop-acme" || runner.name != "scan.png" {
		t.Errorf("delegated (%q, %q)", runner.container, runner.name)
	}
}

func TestProcessBlobFailureIsInternal(t *testing.T) {
	svc := NewDocumentService(nil, nil, &fakeRunner{err: errors.New("boom")}, &fakeTrainer{}, nil)
	_, err := svc.ProcessBlob(context.Background(), &v1.ProcessBlobRequest{Container: "c", Name: "n"})
	if status.Code(err) != codes.Internal {
		t.Errorf("code = %v, want Internal", status.Code(err))
	}
}

func TestTrainValidationAndMapping(t *testing.T) {
	trainer := &fakeTrainer{result: TrainResult{ModelID: "m-1", ModelVersion: 2, AverageModelAccuracy: "0.94"}}
	svc := NewDocumentService(nil, nil, &fakeRunner{}, trainer, nil)

	if _, err := svc.Train(context.Background(), &v1.TrainRequest{DocumentFormat: ""}); status.Code(err) != codes.InvalidArgument {
		t.Errorf("missing format: code = %v", status.Code(err))
	}
	if _, err := svc.Train(context.Background(), &v1.TrainRequest{DocumentFormat: "acme"}); status.Code(err) != codes.InvalidArgument {
		t.Errorf("missing sas url: code = %v", status.Code(err))
	}

	resp, err := svc.Train(context.Background(), &v1.TrainRequest{
		DocumentFormat: "acme", BlobSasUrl: "https://store/sas", IncludeSubFolders: true,
	})
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	if trainer.got.DocumentFormat != "acme" || !trainer.got.IncludeSubFolders {
		t.Errorf("trainer got %+v", trainer.got)
	}
	if resp.GetModelId() != "m-1" || resp.GetModelVersion() != 2 || resp.GetAverageModelAccuracy() != "0.94" {
		t.Errorf("response = %+v", resp)
	}
}

func TestListDocumentsBadDateIsInvalidArgument(t *testing.T) {
	svc := NewDocumentService(&fakeDocRepo{}, nil, &fakeRunner{}, &fakeTrainer{}, nil)
	_, err := svc.ListDocuments(context.Background(), &v1.ListDocumentsRequest{FromDate: "03/11/2020"})
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("code = %v, want InvalidArgument", status.Code(err))
	}
}

func TestListDocumentsMapsFields(t *testing.T) {
	taxDate := time.Date(2020, 11, 3, 0, 0, 0, 0, time.UTC)
	format := "acme"
	inv := "INV1"
	net := 125.5
	repo := &fakeDocRepo{rows: []*ent.Document{{
		ID:                  uuid.New(),
		FileName:            "acme-scan",
		DocumentFormat:      &format,
		InvoiceNumber:       &inv,
		TaxDate:             &taxDate,
		NetTotal:            &net,
		IsValid:             true,
		UniqueRunIdentifier: "run-1",
		ShreddingUtcTime:    time.Date(2020, 11, 3, 12, 0, 0, 0, time.UTC),
	}}}
	svc := NewDocumentService(repo, nil, &fakeRunner{}, &fakeTrainer{}, nil)

	resp, err := svc.ListDocuments(context.Background(), &v1.ListDocumentsRequest{DocumentFormat: "acme"})
	if err != nil {
		t.Fatalf("ListDocuments: %v", err)
	}
	if len(resp.GetDocuments()) != 1 {
		t.Fatalf("documents = %d", len(resp.GetDocuments()))
	}
	d := resp.GetDocuments()[0]
	if d.GetInvoiceNumber() != "INV1" || d.GetTaxDate() != "2020-11-03" || d.GetNetTotal() != "125.50" {
		t.Errorf("document = %+v", d)
	}
	if !d.GetIsValid() || d.GetUniqueRunIdentifier() != "run-1" {
		t.Errorf("document = %+v", d)
	}
}
