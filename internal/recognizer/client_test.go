package recognizer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/formshred/formshred/internal/common"
	"github.com/formshred/formshred/internal/entity"
)

func testClient(t *testing.T, baseURL string, maxRetries int) *Client {
	t.Helper()
	return NewClient(common.RecognizerConfig{
		BaseURL:      baseURL,
		APIKey:       "test-key",
		MaxRetries:   maxRetries,
		PollInterval: time.Millisecond,
		HTTPTimeout:  5 * time.Second,
	}, nil, nil)
}

func TestAnalyzeSubmitAndPoll(t *testing.T) {
	var polls atomic.Int32
	mux := http.NewServeMux()
	var server *httptest.Server

	mux.HandleFunc("POST /formrecognizer/v2.0-preview/custom/models/model-1/analyze", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Ocp-Apim-Subscription-Key"); got != "test-key" {
			t.Errorf("subscription key header = %q", got)
		}
		if got := r.Header.Get("Content-Type"); got != "image/png" {
			t.Errorf("content type = %q, want image/png", got)
		}
		if got := r.URL.Query().Get("includeTextDetails"); got != "true" {
			t.Errorf("includeTextDetails = %q, want true", got)
		}
		w.Header().Set("Operation-Location", server.URL+"/operations/op-1")
		w.WriteHeader(http.StatusAccepted)
	})
	mux.HandleFunc("GET /operations/op-1", func(w http.ResponseWriter, r *http.Request) {
		n := polls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		switch n {
		case 1:
			fmt.Fprint(w, `{"status":"notStarted"}`)
		case 2:
			fmt.Fprint(w, `{"status":"running"}`)
		default:
			fmt.Fprint(w, `{"status":"succeeded","analyzeResult":{"documentResults":[{"fields":{}}]}}`)
		}
	})
	server = httptest.NewServer(mux)
	defer server.Close()

	c := testClient(t, server.URL, 10)
	payload, err := c.Analyze(context.Background(), []byte("img"), "acme-0001.png", "model-1")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(payload, &body); err != nil {
		t.Fatalf("terminal payload not JSON: %v", err)
	}
	if body["status"] != "succeeded" {
		t.Errorf("payload status = %v", body["status"])
	}
	if got := polls.Load(); got != 3 {
		t.Errorf("polls = %d, want 3", got)
	}
}

func TestAnalyzeUnsupportedExtensionIsHardFailure(t *testing.T) {
	c := testClient(t, "http://unused.invalid", 3)
	_, err := c.Analyze(context.Background(), nil, "scan.gif", "model-1")
	if common.CodeOf(err) != common.CodeUnsupportedFormat {
		t.Errorf("code = %q, want %q (err=%v)", common.CodeOf(err), common.CodeUnsupportedFormat, err)
	}
}

func TestAnalyzeSubmitNon2xxCarriesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	c := testClient(t, server.URL, 3)
	_, err := c.Analyze(context.Background(), nil, "a.jpg", "model-1")
	if common.CodeOf(err) != common.CodeRemoteFailure {
		t.Fatalf("code = %q, want remote failure", common.CodeOf(err))
	}
	var ae *common.AppError
	if !errors.As(err, &ae) || ae.Message == "" {
		t.Fatal("expected AppError with diagnostic message")
	}
	if want := "quota exceeded"; !strings.Contains(ae.Message, want) {
		t.Errorf("message %q should carry response body %q", ae.Message, want)
	}
}

func TestAnalyzeMissingHandleFailsFast(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted) // 2xx but no Operation-Location
	}))
	defer server.Close()

	c := testClient(t, server.URL, 3)
	_, err := c.Analyze(context.Background(), nil, "a.jpg", "model-1")
	if common.CodeOf(err) != common.CodeRemoteFailure {
		t.Errorf("code = %q, want remote failure for missing handle", common.CodeOf(err))
	}
}

func TestPollTerminalFailure(t *testing.T) {
	server := pollServer(t, `{"status":"failed","errors":["bad scan"]}`)
	defer server.Close()

	c := testClient(t, server.URL, 3)
	_, err := c.Analyze(context.Background(), nil, "a.jpg", "model-1")
	if common.CodeOf(err) != common.CodeRemoteFailure {
		t.Fatalf("code = %q, want remote failure", common.CodeOf(err))
	}
	var ae *common.AppError
	errors.As(err, &ae)
	if !strings.Contains(ae.Message, "bad scan") {
		t.Errorf("failure should carry the terminal payload, got %q", ae.Message)
	}
}

func TestPollUnrecognizedStatusIsContractViolation(t *testing.T) {
	server := pollServer(t, `{"status":"paused"}`)
	defer server.Close()

	c := testClient(t, server.URL, 3)
	_, err := c.Analyze(context.Background(), nil, "a.jpg", "model-1")
	if common.CodeOf(err) != common.CodeContractViolation {
		t.Errorf("code = %q, want contract violation", common.CodeOf(err))
	}
}

func TestPollNullStatusIsContractViolation(t *testing.T) {
	server := pollServer(t, `{"analyzeResult":{}}`)
	defer server.Close()

	c := testClient(t, server.URL, 3)
	_, err := c.Analyze(context.Background(), nil, "a.jpg", "model-1")
	if common.CodeOf(err) != common.CodeContractViolation {
		t.Errorf("code = %q, want contract violation", common.CodeOf(err))
	}
}

func TestPollExhaustionIsAbandoned(t *testing.T) {
	var polls atomic.Int32
	server := pollServerFunc(t, func(w http.ResponseWriter) {
		polls.Add(1)
		fmt.Fprint(w, `{"status":"running"}`)
	})
	defer server.Close()

	c := testClient(t, server.URL, 3)
	_, err := c.Analyze(context.Background(), nil, "a.jpg", "model-1")
	if common.CodeOf(err) != common.CodeAbandoned {
		t.Fatalf("code = %q, want abandoned", common.CodeOf(err))
	}
	if got := polls.Load(); got != 3 {
		t.Errorf("polls = %d, want exactly maxRetries (3)", got)
	}
}

func TestPollCancellationDuringBackoff(t *testing.T) {
	server := pollServer(t, `{"status":"running"}`)
	defer server.Close()

	c := NewClient(common.RecognizerConfig{
		BaseURL:      server.URL,
		APIKey:       "k",
		MaxRetries:   5,
		PollInterval: time.Hour, // cancellation must interrupt the sleep
	}, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := c.Analyze(ctx, nil, "a.jpg", "model-1")
		done <- err
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if common.CodeOf(err) != common.CodeCancelled {
			t.Errorf("code = %q, want cancelled", common.CodeOf(err))
		}
	case <-time.After(5 * time.Second):
		t.Fatal("cancellation did not interrupt the backoff sleep")
	}
}

func TestBackoffDelaySequence(t *testing.T) {
	for attempt, want := range []time.Duration{3 * time.Second, 6 * time.Second, 9 * time.Second} {
		if got := backoffDelay(attempt, 3*time.Second); got != want {
			t.Errorf("backoffDelay(%d) = %v, want %v", attempt, got, want)
		}
	}
}

func TestTrainSubmitAndPoll(t *testing.T) {
	mux := http.NewServeMux()
	var server *httptest.Server
	var polls atomic.Int32

	mux.HandleFunc("POST /formrecognizer/v2.0-preview/custom/models", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode training body: %v", err)
		}
		if body["source"] != "https://store/sas" {
			t.Errorf("source = %v", body["source"])
		}
		filter, _ := body["sourceFilter"].(map[string]any)
		if filter["prefix"] != "acme" || filter["includeSubFolders"] != "false" {
			t.Errorf("sourceFilter = %v", filter)
		}
		w.Header().Set("Location", server.URL+"/models/m-9")
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("GET /models/m-9", func(w http.ResponseWriter, r *http.Request) {
		if polls.Add(1) == 1 {
			fmt.Fprint(w, `{"modelInfo":{"status":"creating"}}`)
			return
		}
		fmt.Fprint(w, `{
			"modelInfo": {
				"status": "ready",
				"modelId": "m-9",
				"createdDateTime": "2020-03-01T10:00:00Z",
				"lastUpdatedDateTime": "2020-03-01T10:05:00Z"
			},
			"trainResult": {
				"averageModelAccuracy": 0.94,
				"trainingDocuments": [{"documentName":"a.jpg","status":"succeeded"}]
			}
		}`)
	})
	server = httptest.NewServer(mux)
	defer server.Close()

	c := testClient(t, server.URL, 5)
	result, err := c.Train(context.Background(), entity.TrainingRequest{
		DocumentFormat:    "acme",
		BlobSasURL:        "https://store/sas",
		BlobFolderName:    "acme",
		IncludeSubFolders: "false",
		UseLabelFile:      "true",
	})
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	if result.ModelID != "m-9" {
		t.Errorf("ModelID = %q", result.ModelID)
	}
	if result.AverageModelAccuracy.String() != "0.94" {
		t.Errorf("accuracy = %s, want 0.94", result.AverageModelAccuracy)
	}
	if result.CreatedDateTime.IsZero() || result.UpdatedDateTime.Before(result.CreatedDateTime) {
		t.Errorf("timestamps not parsed: %v / %v", result.CreatedDateTime, result.UpdatedDateTime)
	}
	if !strings.Contains(result.TrainingDocuments, "a.jpg") {
		t.Errorf("training documents echo missing: %q", result.TrainingDocuments)
	}
}

func TestTrainInvalidModelIsFailure(t *testing.T) {
	mux := http.NewServeMux()
	var server *httptest.Server
	mux.HandleFunc("POST /formrecognizer/v2.0-preview/custom/models", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Location", server.URL+"/models/m-bad")
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("GET /models/m-bad", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"modelInfo":{"status":"invalid"}}`)
	})
	server = httptest.NewServer(mux)
	defer server.Close()

	c := testClient(t, server.URL, 3)
	_, err := c.Train(context.Background(), entity.TrainingRequest{DocumentFormat: "acme"})
	if common.CodeOf(err) != common.CodeRemoteFailure {
		t.Errorf("code = %q, want remote failure", common.CodeOf(err))
	}
}

// pollServer accepts any submit and always answers polls with the given body.
func pollServer(t *testing.T, pollBody string) *httptest.Server {
	t.Helper()
	return pollServerFunc(t, func(w http.ResponseWriter) {
		fmt.Fprint(w, pollBody)
	})
}

func pollServerFunc(t *testing.T, poll func(http.ResponseWriter)) *httptest.Server {
	t.Helper()
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.Header().Set("Operation-Location", server.URL+"/op")
			w.WriteHeader(http.StatusAccepted)
			return
		}
		poll(w)
	}))
	return server
}
