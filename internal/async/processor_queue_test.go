package async

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/formshred/formshred/internal/common"
	"github.com/formshred/formshred/internal/pipeline"
)

// recordingHandler captures log records so tests can assert on the
// attributes the queue reports for each job.
type recordingHandler struct {
	mu      sync.Mutex
	records []map[string]any
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := map[string]any{"msg": r.Message}
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})
	h.mu.Lock()
	h.records = append(h.records, attrs)
	h.mu.Unlock()
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func (h *recordingHandler) find(msg string) (map[string]any, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, r := range h.records {
		if r["msg"] == msg {
			return r, true
		}
	}
	return nil, false
}

func TestQueueCarriesTraceID(t *testing.T) {
	h := &recordingHandler{}
	logger := slog.New(h)

	proc := pipeline.NewProcessor(logger, nil, common.StorageConfig{DropPrefix: "drop-"}, nil, nil, nil)
	q := NewProcessorQueue(proc, logger, WithWorkers(1), WithQueueSize(4))

	if err := q.Enqueue(context.Background(), Job{
		Container:   "somewhere-else",
		Name:        "x",
		SubmittedAt: time.Now().UTC(),
		TraceID:     "trace-99",
	}); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	rec, ok := h.find("queue.processed")
	if !ok {
		t.Fatal("job was never processed")
	}
	if rec["trace_id"] != "trace-99" {
		t.Errorf("trace_id = %v", rec["trace_id"])
	}
}

func TestShutdownIsIdempotent(t *testing.T) {
	q := NewProcessorQueue(pipeline.NewProcessor(nil, nil, common.StorageConfig{DropPrefix: "drop-"}, nil, nil, nil), nil, WithWorkers(1))
	ctx := context.Background()
	q.Shutdown(ctx)
	q.Shutdown(ctx)
	if err := q.Enqueue(ctx, Job{Container: "c", Name: "n"}); err != nil {
		t.Errorf("enqueue after shutdown should drop, got %v", err)
	}
}
