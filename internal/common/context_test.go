package common

import (
	"context"
	"testing"
	"time"
)

func TestRunIDRoundTrip(t *testing.T) {
	ctx := context.Background()
	if got := RunIDFromContext(ctx); got != "" {
		t.Errorf("empty context run id = %q", got)
	}
	ctx = WithRunID(ctx, "run-42")
	if got := RunIDFromContext(ctx); got != "run-42" {
		t.Errorf("run id = %q, want run-42", got)
	}
}

func TestTraceIDRoundTrip(t *testing.T) {
	ctx := WithTraceID(context.Background(), "trace-7")
	if got := TraceIDFromContext(ctx); got != "trace-7" {
		t.Errorf("trace id = %q, want trace-7", got)
	}
	if got := TraceIDFromContext(context.Background()); got != "" {
		t.Errorf("empty context trace id = %q", got)
	}
}

func TestWithTimeoutExpires(t *testing.T) {
	ctx, cancel := WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context never expired")
	}
}
