// Package recognizer talks to the remote recognition/training HTTP service:
// it submits a unit of work, extracts the asynchronous job handle from the
// response, and polls with linear backoff until a terminal status. One Client
// is safe for concurrent use; each submit+poll cycle is independent.
package recognizer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/formshred/formshred/constants"
	"github.com/formshred/formshred/internal/common"
)

type Client struct {
	httpClient   *http.Client
	baseURL      string
	apiKey       string
	maxRetries   int
	pollInterval time.Duration
	logger       *slog.Logger
}

// NewClient builds a recognition client from explicit configuration. No
// process-wide state: the HTTP client is injected (nil gets a default with
// the configured timeout).
func NewClient(cfg common.RecognizerConfig, httpClient *http.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if httpClient == nil {
		timeout := cfg.HTTPTimeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = 3 * time.Second
	}
	retries := cfg.MaxRetries
	if retries <= 0 {
		retries = 10
	}
	return &Client{
		httpClient:   httpClient,
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:       cfg.APIKey,
		maxRetries:   retries,
		pollInterval: interval,
		logger:       logger,
	}
}

// Analyze submits an image for recognition by the given model and polls the
// returned job handle until the service reports a terminal status. The full
// terminal payload is returned on success.
func (c *Client) Analyze(ctx context.Context, image []byte, name, modelID string) ([]byte, error) {
	reqID := uuid.New().String()

	contentType, ok := constants.ContentTypeForName(name)
	if !ok {
		return nil, common.NewAppError(common.CodeUnsupportedFormat,
			fmt.Sprintf("incoming document %s has an unsupported format; supported types are jpeg, jpg, tiff and png", name), nil)
	}

	q := url.Values{}
	q.Set("includeTextDetails", "true")
	uri := fmt.Sprintf("%s/%s/%s/%s?%s",
		c.baseURL, constants.RecognizerAPIPath, modelID, constants.RecognizerAnalyzeVerb, q.Encode())

	c.logger.Info("recognizer.analyze.submit",
		"req_id", reqID, "run_id", common.RunIDFromContext(ctx),
		"name", name, "model_id", modelID,
		"content_type", contentType, "bytes", len(image),
	)

	handle, err := c.submit(ctx, uri, contentType, bytes.NewReader(image), constants.OperationLocationHeader)
	if err != nil {
		c.logger.Error("recognizer.analyze.submit_failed", "req_id", reqID, "name", name, "error", err)
		return nil, err
	}
	c.logger.Debug("recognizer.analyze.accepted", "req_id", reqID, "handle", handle)

	payload, err := c.poll(ctx, reqID, handle, readAnalyzeStatus)
	if err != nil {
		return nil, err
	}
	c.logger.Info("recognizer.analyze.complete", "req_id", reqID, "name", name, "bytes", len(payload))
	return payload, nil
}

// submit POSTs the body and returns the async job handle from the designated
// response header. A missing header after a 2xx is not an error here; the
// poll step fails fast on the empty handle.
func (c *Client) submit(ctx context.Context, uri, contentType string, body io.Reader, handleHeader string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uri, body)
	if err != nil {
		return "", common.NewAppError(common.CodeRemoteFailure, "build submit request", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set(constants.APIKeyHeader, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", common.NewAppError(common.CodeCancelled, "submit cancelled", ctx.Err())
		}
		return "", common.NewAppError(common.CodeRemoteFailure, "submit request failed", err)
	}
	defer closeBody(resp.Body, c.logger)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		return "", common.NewAppError(common.CodeRemoteFailure,
			fmt.Sprintf("submit to %s returned status %d: %s", uri, resp.StatusCode, string(raw)), nil)
	}
	return resp.Header.Get(handleHeader), nil
}

func closeBody(body io.ReadCloser, logger *slog.Logger) {
	if err := body.Close(); err != nil {
		logger.Warn("recognizer.response_body_close_error", "error", err)
	}
}
