package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/formshred/formshred/internal/common"
)

// metaSuffix marks the sidecar file that carries a blob's metadata.
const metaSuffix = ".meta.json"

// FSStore keeps each container as a directory under a single root and each
// blob's metadata in a JSON sidecar next to the blob.
type FSStore struct {
	root   string
	logger *slog.Logger
}

func NewFSStore(root string, logger *slog.Logger) (*FSStore, error) {
	if strings.TrimSpace(root) == "" {
		return nil, common.NewAppError(common.CodeConfigError, "storage root is required", nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, common.NewAppError(common.CodeConfigError, "resolve storage root", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, common.NewAppError(common.CodeStorageFailure, "create storage root", err)
	}
	return &FSStore{root: abs, logger: logger}, nil
}

func (s *FSStore) blobPath(container, name string) string {
	return filepath.Join(s.root, container, filepath.Base(name))
}

func (s *FSStore) Save(ctx context.Context, container, name string, data []byte, meta Metadata) error {
	if err := ctx.Err(); err != nil {
		return common.NewAppError(common.CodeCancelled, "save cancelled", err)
	}
	path := s.blobPath(container, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return common.NewAppError(common.CodeStorageFailure, fmt.Sprintf("create container %s", container), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return common.NewAppError(common.CodeStorageFailure, fmt.Sprintf("write blob %s/%s", container, name), err)
	}
	if meta != nil {
		if err := s.SetMetadata(ctx, container, name, meta); err != nil {
			return err
		}
	}
	s.logger.Debug("storage.save", "container", container, "name", name, "bytes", len(data))
	return nil
}

func (s *FSStore) Read(ctx context.Context, container, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, common.NewAppError(common.CodeCancelled, "read cancelled", err)
	}
	data, err := os.ReadFile(s.blobPath(container, name))
	if err != nil {
		return nil, common.NewAppError(common.CodeStorageFailure, fmt.Sprintf("read blob %s/%s", container, name), err)
	}
	return data, nil
}

func (s *FSStore) Move(ctx context.Context, container, name, dstContainer string) error {
	return s.MoveRename(ctx, container, name, dstContainer, name)
}

func (s *FSStore) MoveRename(ctx context.Context, container, name, dstContainer, dstName string) error {
	if err := ctx.Err(); err != nil {
		return common.NewAppError(common.CodeCancelled, "move cancelled", err)
	}
	src := s.blobPath(container, name)
	dst := s.blobPath(dstContainer, dstName)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return common.NewAppError(common.CodeStorageFailure, fmt.Sprintf("create container %s", dstContainer), err)
	}
	if err := os.Rename(src, dst); err != nil {
		return common.NewAppError(common.CodeStorageFailure,
			fmt.Sprintf("move blob %s/%s to %s/%s", container, name, dstContainer, dstName), err)
	}
	// the sidecar travels with the blob
	if err := os.Rename(src+metaSuffix, dst+metaSuffix); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return common.NewAppError(common.CodeStorageFailure,
			fmt.Sprintf("move metadata for %s/%s", container, name), err)
	}
	s.logger.Debug("storage.move",
		"from", container+"/"+name, "to", dstContainer+"/"+dstName)
	return nil
}

func (s *FSStore) GetMetadata(ctx context.Context, container, name string) (Metadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, common.NewAppError(common.CodeCancelled, "metadata read cancelled", err)
	}
	raw, err := os.ReadFile(s.blobPath(container, name) + metaSuffix)
	if errors.Is(err, fs.ErrNotExist) {
		return Metadata{}, nil
	}
	if err != nil {
		return nil, common.NewAppError(common.CodeStorageFailure, fmt.Sprintf("read metadata for %s/%s", container, name), err)
	}
	var meta Metadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, common.NewAppError(common.CodeStorageFailure, fmt.Sprintf("decode metadata for %s/%s", container, name), err)
	}
	return meta, nil
}

func (s *FSStore) SetMetadata(ctx context.Context, container, name string, meta Metadata) error {
	if err := ctx.Err(); err != nil {
		return common.NewAppError(common.CodeCancelled, "metadata write cancelled", err)
	}
	raw, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return common.NewAppError(common.CodeStorageFailure, "encode metadata", err)
	}
	path := s.blobPath(container, name) + metaSuffix
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return common.NewAppError(common.CodeStorageFailure, fmt.Sprintf("write metadata for %s/%s", container, name), err)
	}
	return nil
}

func (s *FSStore) List(ctx context.Context, container string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, common.NewAppError(common.CodeCancelled, "list cancelled", err)
	}
	entries, err := os.ReadDir(filepath.Join(s.root, container))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, common.NewAppError(common.CodeStorageFailure, fmt.Sprintf("list container %s", container), err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || strings.HasSuffix(e.Name(), metaSuffix) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

func (s *FSStore) Delete(ctx context.Context, container, name string) error {
	if err := ctx.Err(); err != nil {
		return common.NewAppError(common.CodeCancelled, "delete cancelled", err)
	}
	path := s.blobPath(container, name)
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return common.NewAppError(common.CodeStorageFailure, fmt.Sprintf("delete blob %s/%s", container, name), err)
	}
	if err := os.Remove(path + metaSuffix); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return common.NewAppError(common.CodeStorageFailure, fmt.Sprintf("delete metadata for %s/%s", container, name), err)
	}
	return nil
}
