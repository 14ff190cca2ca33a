// Package storage abstracts the blob containers the pipeline moves documents
// through. A container is a flat namespace of named blobs with string
// metadata; the pipeline only ever saves, reads, moves and stamps metadata,
// so that is the whole surface.
package storage

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// Metadata is the free-form string annotations carried alongside a blob.
type Metadata map[string]string

// BlobStore is the behavior the pipeline depends on.
type BlobStore interface {
	// Save writes data as container/name, replacing any existing blob, and
	// stamps the given metadata (nil means none).
	Save(ctx context.Context, container, name string, data []byte, meta Metadata) error
	// Read returns the blob's contents.
	Read(ctx context.Context, container, name string) ([]byte, error)
	// Move relocates container/name to dstContainer under the same name.
	Move(ctx context.Context, container, name, dstContainer string) error
	// MoveRename relocates container/name to dstContainer/dstName.
	MoveRename(ctx context.Context, container, name, dstContainer, dstName string) error
	// GetMetadata returns the blob's metadata (empty map when none was set).
	GetMetadata(ctx context.Context, container, name string) (Metadata, error)
	// SetMetadata replaces the blob's metadata.
	SetMetadata(ctx context.Context, container, name string, meta Metadata) error
	// List returns the blob names in a container, lexically sorted.
	List(ctx context.Context, container string) ([]string, error)
	// Delete removes the blob and its metadata. Missing blobs are not an error.
	Delete(ctx context.Context, container, name string) error
}

// Thumbprint is the content fingerprint stamped onto every document as it
// enters the pipeline: uppercase hex MD5 of the raw bytes.
func Thumbprint(data []byte) string {
	sum := md5.Sum(data)
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}
