package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/formshred/formshred/constants"
	"github.com/formshred/formshred/gen/ent"
	"github.com/formshred/formshred/internal/common"
	"github.com/formshred/formshred/internal/entity"
	"github.com/formshred/formshred/internal/shred"
	"github.com/formshred/formshred/internal/storage"
)

// fakeStore is an in-memory BlobStore.
type fakeStore struct {
	blobs map[string][]byte
	metas map[string]storage.Metadata
}

func newFakeStore() *fakeStore {
	return &fakeStore{blobs: map[string][]byte{}, metas: map[string]storage.Metadata{}}
}

func key(container, name string) string { return container + "/" + name }

func (s *fakeStore) Save(_ context.Context, container, name string, data []byte, meta storage.Metadata) error {
	s.blobs[key(container, name)] = data
	if meta != nil {
		s.metas[key(container, name)] = meta
	}
	return nil
}

func (s *fakeStore) Read(_ context.Context, container, name string) ([]byte, error) {
	data, ok := s.blobs[key(container, name)]
	if !ok {
		return nil, common.NewAppError(common.CodeStorageFailure, "no such blob "+key(container, name), nil)
	}
	return data, nil
}

func (s *fakeStore) Move(ctx context.Context, container, name, dst string) error {
	return s.MoveRename(ctx, container, name, dst, name)
}

func (s *fakeStore) MoveRename(_ context.Context, container, name, dstContainer, dstName string) error {
	src := key(container, name)
	data, ok := s.blobs[src]
	if !ok {
		return common.NewAppError(common.CodeStorageFailure, "no such blob "+src, nil)
	}
	dst := key(dstContainer, dstName)
	s.blobs[dst] = data
	delete(s.blobs, src)
	if meta, ok := s.metas[src]; ok {
		s.metas[dst] = meta
		delete(s.metas, src)
	}
	return nil
}

func (s *fakeStore) GetMetadata(_ context.Context, container, name string) (storage.Metadata, error) {
	if meta, ok := s.metas[key(container, name)]; ok {
		return meta, nil
	}
	return storage.Metadata{}, nil
}

func (s *fakeStore) SetMetadata(_ context.Context, container, name string, meta storage.Metadata) error {
	s.metas[key(container, name)] = meta
	return nil
}

func (s *fakeStore) List(_ context.Context, container string) ([]string, error) {
	var names []string
	for k := range s.blobs {
		if strings.HasPrefix(k, container+"/") {
			names = append(names, strings.TrimPrefix(k, container+"/"))
		}
	}
	return names, nil
}

func (s *fakeStore) Delete(_ context.Context, container, name string) error {
	delete(s.blobs, key(container, name))
	delete(s.metas, key(container, name))
	return nil
}

type fakeRecognizer struct {
	payload  []byte
	err      error
	train    *entity.TrainingResult
	trainErr error

	analyzedName  string
	analyzedModel string
}

func (r *fakeRecognizer) Analyze(_ context.Context, _ []byte, name, modelID string) ([]byte, error) {
	r.analyzedName = name
	r.analyzedModel = modelID
	return r.payload, r.err
}

func (r *fakeRecognizer) Train(_ context.Context, _ entity.TrainingRequest) (*entity.TrainingResult, error) {
	return r.train, r.trainErr
}

type fakeModels struct {
	latest   *entity.FormatModel
	err      error
	recorded []*entity.TrainingResult
}

func (m *fakeModels) LatestModel(_ context.Context, _ string) (*entity.FormatModel, error) {
	return m.latest, m.err
}

func (m *fakeModels) RecordTraining(_ context.Context, format string, result *entity.TrainingResult) (*entity.FormatModel, error) {
	m.recorded = append(m.recorded, result)
	return &entity.FormatModel{
		DocumentFormat: format,
		ModelID:        result.ModelID,
		ModelVersion:   len(m.recorded),
	}, nil
}

type fakeDocs struct {
	saved  []*entity.Document
	format string
	err    error
}

func (d *fakeDocs) SaveDocument(_ context.Context, doc *entity.Document, format string) (uuid.UUID, error) {
	if d.err != nil {
		return uuid.Nil, d.err
	}
	d.saved = append(d.saved, doc)
	d.format = format
	return uuid.New(), nil
}

func (d *fakeDocs) ListDocuments(_ context.Context, _ string, _, _ *time.Time) ([]*ent.Document, error) {
	return nil, nil
}

var testCfg = common.StorageConfig{
	Root:               "unused",
	DropPrefix:         "drop-",
	InboundImages:      "recognize-in-image",
	OutboundJSON:       "process-in-json",
	ProcessingComplete: "processing-complete",
	ExceptionContainer: "exceptions",
}

func newTestProcessor(store storage.BlobStore, rec Recognizer, models *fakeModels, docs *fakeDocs) *Processor {
	route := NewRouteStage(nil, store, models, testCfg)
	recognize := NewRecognizeStage(nil, store, rec, testCfg)
	shredder := shred.NewShredder(shred.DefaultFieldMap(), nil)
	shredStage := NewShredStage(nil, store, shredder, docs, testCfg)
	return NewProcessor(nil, store, testCfg, route, recognize, shredStage)
}

func recognizedPayload(fields map[string]string) []byte {
	bag := map[string]any{}
	for k, v := range fields {
		bag[k] = map[string]any{"text": v}
	}
	payload := map[string]any{
		"status": "succeeded",
		"analyzeResult": map[string]any{
			"documentResults": []any{map[string]any{"fields": bag}},
		},
	}
	raw, _ := json.Marshal(payload)
	return raw
}

func TestRouteStageStampsAndMoves(t *testing.T) {
	store := newFakeStore()
	models := &fakeModels{latest: &entity.FormatModel{DocumentFormat: "acme", ModelID: "m-1", ModelVersion: 3}}
	p := newTestProcessor(store, &fakeRecognizer{}, models, &fakeDocs{})
	ctx := context.Background()

	if err := store.Save(ctx, "drop-acme", "scan.png", []byte("img"), nil); err != nil {
		t.Fatal(err)
	}
	if err := p.Process(ctx, "drop-acme", "scan.png"); err != nil {
		t.Fatalf("Process: %v", err)
	}

	if _, ok := store.blobs[key("drop-acme", "scan.png")]; ok {
		t.Error("drop blob should have moved")
	}
	meta, _ := store.GetMetadata(ctx, "recognize-in-image", "acme-scan.png")
	if meta[constants.ModelIDKey] != "m-1" || meta[constants.ModelVersionKey] != "3" {
		t.Errorf("model metadata = %v", meta)
	}
	if meta[constants.DocumentFormatKey] != "acme" {
		t.Errorf("format metadata = %v", meta)
	}
	if meta[constants.UniqueRunIdentifierKey] == "" {
		t.Error("run id not stamped")
	}
	if meta[constants.ThumbprintKey] != storage.Thumbprint([]byte("img")) {
		t.Errorf("thumbprint = %q", meta[constants.ThumbprintKey])
	}
	if meta[constants.TelemetryOperationIDKey] == "" {
		t.Error("telemetry operation id not stamped")
	}
}

// Correlation ids already present on the dropped blob survive routing; the
// router never mints new ones over the dropper's.
func TestRouteStagePassesTelemetryIDsThrough(t *testing.T) {
	store := newFakeStore()
	models := &fakeModels{latest: &entity.FormatModel{DocumentFormat: "acme", ModelID: "m-1", ModelVersion: 1}}
	p := newTestProcessor(store, &fakeRecognizer{}, models, &fakeDocs{})
	ctx := context.Background()

	inbound := storage.Metadata{
		constants.TelemetryOperationIDKey: "op-11",
		constants.TelemetryParentIDKey:    "parent-3",
	}
	if err := store.Save(ctx, "drop-acme", "scan.png", []byte("img"), inbound); err != nil {
		t.Fatal(err)
	}
	if err := p.Process(ctx, "drop-acme", "scan.png"); err != nil {
		t.Fatalf("Process: %v", err)
	}

	meta, _ := store.GetMetadata(ctx, "recognize-in-image", "acme-scan.png")
	if meta[constants.TelemetryOperationIDKey] != "op-11" {
		t.Errorf("operation id = %q", meta[constants.TelemetryOperationIDKey])
	}
	if meta[constants.TelemetryParentIDKey] != "parent-3" {
		t.Errorf("parent id = %q", meta[constants.TelemetryParentIDKey])
	}
}

func TestRouteStageUnsupportedExtensionGoesToExceptions(t *testing.T) {
	store := newFakeStore()
	models := &fakeModels{latest: &entity.FormatModel{ModelID: "m-1", ModelVersion: 1}}
	p := newTestProcessor(store, &fakeRecognizer{}, models, &fakeDocs{})
	ctx := context.Background()

	_ = store.Save(ctx, "drop-acme", "scan.gif", []byte("img"), nil)
	if err := p.Process(ctx, "drop-acme", "scan.gif"); err != nil {
		t.Fatalf("Process: %v", err)
	}

	raw, ok := store.blobs[key("exceptions", "scan-exception.json")]
	if !ok {
		t.Fatal("exception record not written")
	}
	var rec failureRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		t.Fatalf("exception record not JSON: %v", err)
	}
	if rec.Code != common.CodeUnsupportedFormat {
		t.Errorf("exception code = %q", rec.Code)
	}
	if _, ok := store.blobs[key("exceptions", "scan.gif")]; !ok {
		t.Error("offending blob should move to exceptions")
	}
}

func TestRecognizeStageWritesPayloadAndCompletesImage(t *testing.T) {
	store := newFakeStore()
	rec := &fakeRecognizer{payload: recognizedPayload(map[string]string{"Inv": "INV-1"})}
	p := newTestProcessor(store, rec, &fakeModels{}, &fakeDocs{})
	ctx := context.Background()

	meta := storage.Metadata{
		constants.ModelIDKey:             "m-1",
		constants.UniqueRunIdentifierKey: "run-1",
	}
	_ = store.Save(ctx, "recognize-in-image", "acme-scan.png", []byte("img"), meta)

	if err := p.Process(ctx, "recognize-in-image", "acme-scan.png"); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if rec.analyzedModel != "m-1" || rec.analyzedName != "acme-scan.png" {
		t.Errorf("analyze call = (%q, %q)", rec.analyzedName, rec.analyzedModel)
	}
	if _, ok := store.blobs[key("process-in-json", "acme-scan-recognized.json")]; !ok {
		t.Error("recognized payload not written")
	}
	got, _ := store.GetMetadata(ctx, "process-in-json", "acme-scan-recognized.json")
	if got[constants.UniqueRunIdentifierKey] != "run-1" {
		t.Errorf("metadata not carried over: %v", got)
	}
	if _, ok := store.blobs[key("processing-complete", "acme-scan.png")]; !ok {
		t.Error("image should move to processing-complete")
	}
}

func TestRecognizeStageMissingModelGoesToExceptions(t *testing.T) {
	store := newFakeStore()
	p := newTestProcessor(store, &fakeRecognizer{}, &fakeModels{}, &fakeDocs{})
	ctx := context.Background()

	_ = store.Save(ctx, "recognize-in-image", "scan.png", []byte("img"), nil)
	if err := p.Process(ctx, "recognize-in-image", "scan.png"); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if _, ok := store.blobs[key("exceptions", "scan.png")]; !ok {
		t.Error("unrouted image should land in exceptions")
	}
}

func TestShredStagePersistsDocument(t *testing.T) {
	store := newFakeStore()
	docs := &fakeDocs{}
	p := newTestProcessor(store, &fakeRecognizer{}, &fakeModels{}, docs)
	ctx := context.Background()

	meta := storage.Metadata{
		constants.UniqueRunIdentifierKey: "run-7",
		constants.DocumentFormatKey:      "acme",
		constants.ModelIDKey:             "m-1",
		constants.ModelVersionKey:        "2",
	}
	payload := recognizedPayload(map[string]string{
		"OrderNO": "PO1", "Inv": "INV1",
		"Drug01": "Widget", "Unit01": "10", "Net01": "50", "Qty01": "5",
	})
	_ = store.Save(ctx, "process-in-json", "acme-scan-recognized.json", payload, meta)

	if err := p.Process(ctx, "process-in-json", "acme-scan-recognized.json"); err != nil {
		t.Fatalf("Process: %v", err)
	}

	if len(docs.saved) != 1 {
		t.Fatalf("saved %d documents, want 1", len(docs.saved))
	}
	doc := docs.saved[0]
	if doc.UniqueRunIdentifier != "run-7" || docs.format != "acme" {
		t.Errorf("saved run=%q format=%q", doc.UniqueRunIdentifier, docs.format)
	}
	if len(doc.LineItems) != 1 || !doc.LineItems[0].CalculatedLineQuantity().Equal(decimal.NewFromInt(5)) {
		t.Errorf("line items = %+v", doc.LineItems)
	}
	if !doc.IsValid() {
		t.Errorf("document should be valid, errors = %+v", doc.Errors)
	}
	if _, ok := store.blobs[key("processing-complete", "acme-scan-document.json")]; !ok {
		t.Error("document JSON not written")
	}
	if _, ok := store.blobs[key("processing-complete", "acme-scan-recognized.json")]; !ok {
		t.Error("recognized payload should move to processing-complete")
	}
}

func TestShredStageInvalidDocumentIsStillSuccess(t *testing.T) {
	store := newFakeStore()
	docs := &fakeDocs{}
	p := newTestProcessor(store, &fakeRecognizer{}, &fakeModels{}, docs)
	ctx := context.Background()

	// Net01 missing: a terminal extraction error, but shredding succeeds.
	payload := recognizedPayload(map[string]string{
		"Drug01": "Widget", "Unit01": "10",
	})
	_ = store.Save(ctx, "process-in-json", "x-recognized.json", payload, nil)

	if err := p.Process(ctx, "process-in-json", "x-recognized.json"); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(docs.saved) != 1 {
		t.Fatalf("saved %d documents, want 1", len(docs.saved))
	}
	if docs.saved[0].IsValid() {
		t.Error("document with a terminal error should persist as invalid")
	}
	if _, ok := store.blobs[key("exceptions", "x-exception.json")]; ok {
		t.Error("invalid-but-shredded document must not go to exceptions")
	}
}

func TestShredStageContractViolationGoesToExceptions(t *testing.T) {
	store := newFakeStore()
	docs := &fakeDocs{}
	p := newTestProcessor(store, &fakeRecognizer{}, &fakeModels{}, docs)
	ctx := context.Background()

	_ = store.Save(ctx, "process-in-json", "bad-recognized.json", []byte(`{"status":"succeeded"}`), nil)
	if err := p.Process(ctx, "process-in-json", "bad-recognized.json"); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(docs.saved) != 0 {
		t.Error("nothing should persist for a contract violation")
	}
	raw, ok := store.blobs[key("exceptions", "bad-recognized-exception.json")]
	if !ok {
		t.Fatal("exception record not written")
	}
	var rec failureRecord
	_ = json.Unmarshal(raw, &rec)
	if rec.Code != common.CodeContractViolation {
		t.Errorf("exception code = %q", rec.Code)
	}
}

// The payload shape is checked before the shredder runs: a response with no
// document results is rejected at the gate, not deep inside field extraction.
func TestShredStageValidatesShapeBeforeShredding(t *testing.T) {
	store := newFakeStore()
	docs := &fakeDocs{}
	p := newTestProcessor(store, &fakeRecognizer{}, &fakeModels{}, docs)
	ctx := context.Background()

	payload := []byte(`{"status":"succeeded","analyzeResult":{"documentResults":[]}}`)
	_ = store.Save(ctx, "process-in-json", "empty-recognized.json", payload, nil)
	if err := p.Process(ctx, "process-in-json", "empty-recognized.json"); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(docs.saved) != 0 {
		t.Error("nothing should persist for a rejected payload")
	}
	raw, ok := store.blobs[key("exceptions", "empty-recognized-exception.json")]
	if !ok {
		t.Fatal("exception record not written")
	}
	var rec failureRecord
	_ = json.Unmarshal(raw, &rec)
	if rec.Code != common.CodeContractViolation {
		t.Errorf("exception code = %q", rec.Code)
	}
}

func TestProcessUnroutableContainerIsIgnored(t *testing.T) {
	p := newTestProcessor(newFakeStore(), &fakeRecognizer{}, &fakeModels{}, &fakeDocs{})
	if err := p.Process(context.Background(), "somewhere-else", "x"); err != nil {
		t.Errorf("unroutable container should be a no-op, got %v", err)
	}
}

func TestTrainStageRegistersModel(t *testing.T) {
	rec := &fakeRecognizer{train: &entity.TrainingResult{ModelID: "m-9"}}
	models := &fakeModels{}
	stage := NewTrainStage(nil, rec, models)

	model, err := stage.Run(context.Background(), entity.TrainingRequest{DocumentFormat: "acme"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if model.ModelID != "m-9" || model.ModelVersion != 1 {
		t.Errorf("model = %+v", model)
	}
	if len(models.recorded) != 1 {
		t.Errorf("recorded %d trainings", len(models.recorded))
	}
}

func TestTrainStageFailureDoesNotRegister(t *testing.T) {
	rec := &fakeRecognizer{trainErr: errors.New("remote says no")}
	models := &fakeModels{}
	stage := NewTrainStage(nil, rec, models)

	if _, err := stage.Run(context.Background(), entity.TrainingRequest{DocumentFormat: "acme"}); err == nil {
		t.Fatal("expected error")
	}
	if len(models.recorded) != 0 {
		t.Error("failed training must not be registered")
	}
}
