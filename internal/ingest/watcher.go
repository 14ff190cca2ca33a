// Package ingest feeds the pipeline: it watches the storage root for blobs
// arriving in routable containers and turns each arrival into a queue job.
package ingest

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/formshred/formshred/internal/common"
)

// Arrival names one blob seen in a watched container.
type Arrival struct {
	Container string
	Name      string
}

type WatchConfig struct {
	Root        string // storage root; each subdirectory is a container
	Storage     common.StorageConfig
	InitialScan bool          // if true, walk containers and emit existing blobs
	Debounce    time.Duration // coalesce rapid update/rename bursts
}

// StartWatcher watches the storage root until ctx is done. Only blobs in
// routable containers (drop-*, inbound images, outbound JSON) are emitted;
// metadata sidecars and completed artifacts never are.
func StartWatcher(ctx context.Context, cfg WatchConfig, logger *slog.Logger) (<-chan Arrival, <-chan error, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if strings.TrimSpace(cfg.Root) == "" {
		logger.Error("watcher.start_failed", "error", "no root provided")
		return nil, nil, errors.New("no root provided")
	}
	evCh := make(chan Arrival, 256)
	errCh := make(chan error, 1)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Error("watcher.create_failed", "error", err)
		return nil, nil, err
	}

	emit := func(path string) {
		if a, ok := toArrival(cfg, path); ok {
			select {
			case evCh <- a:
			default:
			}
		}
	}

	// Watch the root and every existing container directory.
	addAll := func() error {
		return filepath.WalkDir(cfg.Root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if d.IsDir() {
				return w.Add(path)
			}
			if cfg.InitialScan {
				emit(path)
			}
			return nil
		})
	}
	if err := addAll(); err != nil {
		logger.Error("watcher.add_root_failed", "root", cfg.Root, "error", err)
		_ = w.Close()
		return nil, nil, err
	}

	go func() {
		defer close(evCh)
		defer close(errCh)
		defer func() {
			if err := w.Close(); err != nil {
				logger.Warn("watcher.close_failed", "error", err)
			}
		}()

		// pending is only ever touched on this goroutine: the debounce
		// timer fires into the select below instead of running its own
		// callback, so a burst of events cannot race the flush.
		var (
			timer  *time.Timer
			timerC <-chan time.Time
		)
		pending := map[string]struct{}{}

		flush := func() {
			for p := range pending {
				emit(p)
				delete(pending, p)
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-timerC:
				timerC = nil
				flush()
			case e := <-w.Events:
				if e.Op&fsnotify.Create == fsnotify.Create {
					// a new container directory needs its own watch
					_ = w.Add(e.Name)
				}
				if (e.Op & (fsnotify.Create | fsnotify.Write | fsnotify.Rename)) != 0 {
					pending[e.Name] = struct{}{}
					if cfg.Debounce > 0 {
						if timer == nil {
							timer = time.NewTimer(cfg.Debounce)
						} else {
							if !timer.Stop() && timerC != nil {
								<-timer.C
							}
							timer.Reset(cfg.Debounce)
						}
						timerC = timer.C
					} else {
						flush()
					}
				}
			case err := <-w.Errors:
				logger.Error("watcher.error", "error", err)
				select {
				case errCh <- err:
				default:
				}
			}
		}
	}()

	return evCh, errCh, nil
}

// toArrival maps an absolute path onto (container, blob name), filtering out
// sidecars, hidden files and containers the pipeline does not route.
func toArrival(cfg WatchConfig, path string) (Arrival, bool) {
	rel, err := filepath.Rel(cfg.Root, path)
	if err != nil {
		return Arrival{}, false
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	if len(parts) != 2 {
		return Arrival{}, false
	}
	container, name := parts[0], parts[1]
	if strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".meta.json") {
		return Arrival{}, false
	}
	if !Routable(cfg.Storage, container) {
		return Arrival{}, false
	}
	return Arrival{Container: container, Name: name}, true
}

// Routable reports whether the pipeline has a stage for blobs arriving in
// the given container.
func Routable(cfg common.StorageConfig, container string) bool {
	switch {
	case strings.HasPrefix(container, cfg.DropPrefix):
		return true
	case container == cfg.InboundImages, container == cfg.OutboundJSON:
		return true
	}
	return false
}
