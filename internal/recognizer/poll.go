package recognizer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/formshred/formshred/constants"
	"github.com/formshred/formshred/internal/common"
)

// jobState is the orchestrator's view of one poll response.
type jobState int

const (
	statePending jobState = iota
	stateSucceeded
	stateFailed
	stateUnknown
)

// statusReader maps a 2xx poll payload onto a jobState. Recognition and
// training differ only in where the status lives and what its terminal
// values are.
type statusReader func(payload []byte) (jobState, string, error)

// job tracks one submit+poll cycle. It exists only for the duration of the
// cycle and is discarded afterwards.
type job struct {
	handle      string
	attempt     int
	lastStatus  string
	lastPayload []byte
}

// poll GETs the job handle until a terminal state, with linear backoff
// between attempts: (attempt+1) * pollInterval. The budget is maxRetries
// attempts; running out of attempts with a non-terminal status is an
// "abandoned" failure, never a silent return.
func (c *Client) poll(ctx context.Context, reqID, handle string, read statusReader) ([]byte, error) {
	if handle == "" {
		return nil, common.NewAppError(common.CodeRemoteFailure,
			"service accepted the submission but returned no job handle", nil)
	}

	j := &job{handle: handle}
	for j.attempt = 0; j.attempt < c.maxRetries; j.attempt++ {
		payload, err := c.get(ctx, handle)
		if err != nil {
			return nil, err
		}
		j.lastPayload = payload

		state, status, err := read(payload)
		if err != nil {
			return nil, err
		}
		j.lastStatus = status

		switch state {
		case stateSucceeded:
			return payload, nil
		case stateFailed:
			return nil, common.NewAppError(common.CodeRemoteFailure,
				fmt.Sprintf("job reported %q; response body: %s", status, string(payload)), nil)
		case stateUnknown:
			return nil, common.NewAppError(common.CodeContractViolation,
				fmt.Sprintf("job status %q is not one of the documented values", status), nil)
		}

		// pending: wait and retry, unless the budget is spent
		if j.attempt == c.maxRetries-1 {
			break
		}
		delay := backoffDelay(j.attempt, c.pollInterval)
		c.logger.Debug("recognizer.poll.waiting",
			"req_id", reqID, "attempt", j.attempt, "status", status, "delay", delay)
		select {
		case <-ctx.Done():
			return nil, common.NewAppError(common.CodeCancelled, "poll cancelled during backoff", ctx.Err())
		case <-time.After(delay):
		}
	}

	return nil, common.NewAppError(common.CodeAbandoned,
		fmt.Sprintf("job did not complete within %d attempts and was abandoned; last status %q", c.maxRetries, j.lastStatus), nil)
}

// backoffDelay is the linear backoff between poll attempts: the first wait
// is one interval, the second two, and so on (1-based multiplier).
func backoffDelay(attempt int, interval time.Duration) time.Duration {
	return time.Duration(attempt+1) * interval
}

func (c *Client) get(ctx context.Context, handle string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, handle, nil)
	if err != nil {
		return nil, common.NewAppError(common.CodeRemoteFailure, "build poll request", err)
	}
	req.Header.Set(constants.APIKeyHeader, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, common.NewAppError(common.CodeCancelled, "poll cancelled", ctx.Err())
		}
		return nil, common.NewAppError(common.CodeRemoteFailure, "poll request failed", err)
	}
	defer closeBody(resp.Body, c.logger)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		return nil, common.NewAppError(common.CodeRemoteFailure,
			fmt.Sprintf("poll of %s returned status %d: %s", handle, resp.StatusCode, string(raw)), nil)
	}
	return raw, nil
}

// readAnalyzeStatus reads the top-level "status" of a recognition job.
func readAnalyzeStatus(payload []byte) (jobState, string, error) {
	var body struct {
		Status *string `json:"status"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return stateUnknown, "", common.NewAppError(common.CodeContractViolation, "poll response is not valid JSON", err)
	}
	if body.Status == nil {
		return stateUnknown, "", common.NewAppError(common.CodeContractViolation, "poll request succeeded but the status element is null", nil)
	}
	status := constants.RecognitionStatus(*body.Status)
	switch status {
	case constants.RecognitionSucceeded:
		return stateSucceeded, *body.Status, nil
	case constants.RecognitionFailed:
		return stateFailed, *body.Status, nil
	case constants.RecognitionNotStarted, constants.RecognitionRunning:
		return statePending, *body.Status, nil
	}
	return stateUnknown, *body.Status, nil
}

// readTrainingStatus reads the nested "modelInfo.status" of a training job.
// Anything other than ready/invalid is treated as still in progress, which is
// what the service documents.
func readTrainingStatus(payload []byte) (jobState, string, error) {
	var body struct {
		ModelInfo *struct {
			Status *string `json:"status"`
		} `json:"modelInfo"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return stateUnknown, "", common.NewAppError(common.CodeContractViolation, "poll response is not valid JSON", err)
	}
	if body.ModelInfo == nil || body.ModelInfo.Status == nil {
		return stateUnknown, "", common.NewAppError(common.CodeContractViolation, "poll request succeeded but modelInfo.status is null", nil)
	}
	switch constants.TrainingStatus(*body.ModelInfo.Status) {
	case constants.TrainingReady:
		return stateSucceeded, *body.ModelInfo.Status, nil
	case constants.TrainingInvalid:
		return stateFailed, *body.ModelInfo.Status, nil
	}
	return statePending, *body.ModelInfo.Status, nil
}
