// Package storage is the blob store used for media files and JSON content
// documents. Every driver overwrites whole objects; there are no
// preconditions on writes.
package storage

import (
	"context"
	"errors"
	"io"
	"strings"
)

var (
	ErrNotExist   = errors.New("storage: object does not exist")
	ErrForeignURL = errors.New("storage: url does not belong to this store")
)

type Object struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType,omitempty"`
}

type BlobStore interface {
	List(ctx context.Context, prefix string) ([]Object, error)
	// Get returns ErrNotExist when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put writes or overwrites key and returns its public URL.
	Put(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	URL(key string) string
	KeyFromURL(raw string) (string, error)
}

// Opener is implemented by drivers whose objects are served by this
// process under /media.
type Opener interface {
	Open(ctx context.Context, key string) ([]byte, string, error)
}

// keyUnder strips base+"/" from raw and rejects empty or relative keys.
func keyUnder(base, raw string) (string, error) {
	if base == "" || !strings.HasPrefix(raw, base+"/") {
		return "", ErrForeignURL
	}
	key := strings.TrimPrefix(raw, base+"/")
	if i := strings.IndexAny(key, "?#"); i >= 0 {
		key = key[:i]
	}
	if key == "" || strings.Contains(key, "..") {
		return "", ErrForeignURL
	}
	return key, nil
}
