// Package async decouples blob arrival from pipeline processing with a
// bounded in-process worker queue.
package async

import (
	"context"
	"time"
)

// Job names one blob awaiting processing.
type Job struct {
	Container   string
	Name        string
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
