package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/formshred/formshred/internal/common"
)

var cfg = common.StorageConfig{
	DropPrefix:         "drop-",
	InboundImages:      "recognize-in-image",
	OutboundJSON:       "process-in-json",
	ProcessingComplete: "processing-complete",
	ExceptionContainer: "exceptions",
}

func TestToArrivalFiltering(t *testing.T) {
	wc := WatchConfig{Root: "/srv/blobs", Storage: cfg}

	tests := []struct {
		path string
		want bool
	}{
		{"/srv/blobs/drop-acme/scan.png", true},
		{"/srv/blobs/recognize-in-image/acme-scan.png", true},
		{"/srv/blobs/process-in-json/acme-scan-recognized.json", true},
		{"/srv/blobs/processing-complete/acme-scan-document.json", false}, // terminal container
		{"/srv/blobs/exceptions/x-exception.json", false},
		{"/srv/blobs/drop-acme/scan.png.meta.json", false}, // sidecar
		{"/srv/blobs/drop-acme/.hidden", false},
		{"/srv/blobs/drop-acme", false},                // the container itself
		{"/srv/blobs/drop-acme/sub/nested.png", false}, // containers are flat
	}
	for _, tt := range tests {
		a, ok := toArrival(wc, tt.path)
		if ok != tt.want {
			t.Errorf("toArrival(%q) ok = %v, want %v", tt.path, ok, tt.want)
		}
		if ok && (a.Container == "" || a.Name == "") {
			t.Errorf("toArrival(%q) = %+v", tt.path, a)
		}
	}
}

// A bursty drop used to race the debounce flush against the event loop's
// map writes; the flush now runs on the loop goroutine. Every file in the
// burst must still come out exactly once.
func TestWatcherDebouncedBurst(t *testing.T) {
	root := t.TempDir()
	drop := filepath.Join(root, "drop-acme")
	if err := os.Mkdir(drop, 0o755); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	arrivals, _, err := StartWatcher(ctx, WatchConfig{
		Root:     root,
		Storage:  cfg,
		Debounce: 20 * time.Millisecond,
	}, nil)
	if err != nil {
		t.Fatalf("StartWatcher: %v", err)
	}

	const n = 200
	seen := make(map[string]bool, n)
	done := make(chan struct{})
	go func() {
		defer close(done)
		deadline := time.After(10 * time.Second)
		for len(seen) < n {
			select {
			case a := <-arrivals:
				if a.Container != "drop-acme" {
					continue
				}
				seen[a.Name] = true
			case <-deadline:
				return
			}
		}
	}()

	for i := 0; i < n; i++ {
		name := filepath.Join(drop, fmt.Sprintf("scan-%03d.png", i))
		if err := os.WriteFile(name, []byte{0x89, 'P', 'N', 'G'}, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	<-done
	if len(seen) != n {
		t.Fatalf("received %d of %d burst arrivals", len(seen), n)
	}
}

func TestRoutable(t *testing.T) {
	if !Routable(cfg, "drop-anything") {
		t.Error("drop containers should be routable")
	}
	if Routable(cfg, "processing-complete") || Routable(cfg, "exceptions") {
		t.Error("terminal containers must not be routable")
	}
}
