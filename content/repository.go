// Package content persists the editable page collections as whole JSON
// documents in the blob store, one object per content type.
package content

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/princinho/estudiobackend/storage"
	"go.uber.org/zap"
)

var ErrNotFound = errors.New("content: document not stored yet")

// Key returns the object key a content type is stored under.
func Key(contentType string) string { return "content/" + contentType + ".json" }

// Repository reads and overwrites one content document. A missing object
// is reported as ErrNotFound; only FetchOrDefault substitutes the default.
type Repository[T any] struct {
	store       storage.BlobStore
	name        string
	failMessage string
	newDefault  func() T
	prepare     func(*T) error
	// required lists the top-level keys a posted document must carry.
	required    []string
}

func (r *Repository[T]) Name() string { return r.name }

// FailMessage is the client-facing error for a failed save.
func (r *Repository[T]) FailMessage() string { return r.failMessage }

func (r *Repository[T]) Default() T { return r.newDefault() }

func (r *Repository[T]) Fetch(ctx context.Context) (T, error) {
	var doc T
	data, err := r.store.Get(ctx, Key(r.name))
	if errors.Is(err, storage.ErrNotExist) {
		return doc, ErrNotFound
	}
	if err != nil {
		return doc, errors.Wrapf(err, "read %s", Key(r.name))
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, errors.Wrapf(err, "decode %s", Key(r.name))
	}
	return doc, nil
}

// FetchOrDefault never fails. Storage and decode errors are logged.
func (r *Repository[T]) FetchOrDefault(ctx context.Context) T {
	doc, err := r.Fetch(ctx)
	if err == nil {
		return doc
	}
	if !errors.Is(err, ErrNotFound) {
		zap.S().Warnw("content fetch failed, serving default", "type", r.name, "error", err)
	}
	return r.newDefault()
}

// Save validates doc, assigns ids to new items and overwrites the stored
// document. The saved document is returned.
func (r *Repository[T]) Save(ctx context.Context, doc T) (T, error) {
	if err := r.prepare(&doc); err != nil {
		return doc, err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return doc, errors.Wrapf(err, "encode %s", r.name)
	}
	if _, err := r.store.Put(ctx, Key(r.name), bytes.NewReader(data), "application/json"); err != nil {
		return doc, errors.Wrapf(err, "write %s", Key(r.name))
	}
	return doc, nil
}

// Document is the type-erased view used by the JSON API.
type Document interface {
	Name() string
	FailMessage() string
	Load(ctx context.Context) any
	SaveJSON(ctx context.Context, body []byte) (any, error)
}

func (r *Repository[T]) Load(ctx context.Context) any { return r.FetchOrDefault(ctx) }

// SaveJSON decodes a posted document and saves it. Every collection key
// must be present; an explicit empty array clears that collection.
func (r *Repository[T]) SaveJSON(ctx context.Context, body []byte) (any, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return nil, &ValidationError{Msg: "invalid JSON document"}
	}
	for _, key := range r.required {
		raw, ok := fields[key]
		if !ok {
			return nil, &ValidationError{Field: key, Msg: "missing"}
		}
		if v := bytes.TrimSpace(raw); len(v) == 0 || v[0] != '[' {
			return nil, &ValidationError{Field: key, Msg: "must be an array"}
		}
	}
	var doc T
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &ValidationError{Msg: "invalid JSON document"}
	}
	return r.Save(ctx, doc)
}
