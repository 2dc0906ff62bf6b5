// Package upload stores one media file per call in the blob store and
// reports the public URL and media kind of the new object.
package upload

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/princinho/estudiobackend/models"
	"github.com/princinho/estudiobackend/storage"
	"github.com/princinho/estudiobackend/utils"
)

var (
	ErrUnsupportedType = errors.New("only image and video files are accepted")
	ErrImageOnly       = errors.New("only image files are accepted here")
)

type Result struct {
	URL       string           `json:"url"`
	MediaType models.MediaKind `json:"mediaType"`
	Key       string           `json:"key"`
}

type Gateway struct {
	store storage.BlobStore
	now   func() time.Time
}

func NewGateway(store storage.BlobStore) *Gateway {
	return &Gateway{store: store, now: time.Now}
}

// ObjectKey builds <folder>/<unix>-<uuid>-<name><ext>. Keys never repeat,
// so earlier uploads for the same slot are never overwritten.
func (g *Gateway) ObjectKey(folder, filename string) string {
	base, ext := utils.SplitFilename(filename)
	return fmt.Sprintf("%s/%d-%s-%s%s", utils.CleanFolder(folder), g.now().Unix(), uuid.NewString(), base, ext)
}

// Store writes body under folder. declaredType is the part's Content-Type
// header; when it is missing or generic the content is sniffed.
func (g *Gateway) Store(ctx context.Context, body io.Reader, filename, declaredType, folder string, imageOnly bool) (Result, error) {
	br := bufio.NewReaderSize(body, 3072)
	head, _ := br.Peek(3072)
	ct, err := utils.DetectMIME(declaredType, bytes.NewReader(head))
	if err != nil {
		return Result{}, errors.Wrap(err, "detect content type")
	}
	if !utils.IsMedia(ct) {
		return Result{}, ErrUnsupportedType
	}
	kind := utils.MediaKindFor(ct)
	if imageOnly && kind != models.MediaImage {
		return Result{}, ErrImageOnly
	}

	key := g.ObjectKey(folder, filename)
	url, err := g.store.Put(ctx, key, br, ct)
	if err != nil {
		return Result{}, errors.Wrapf(err, "put %s", key)
	}
	return Result{URL: url, MediaType: kind, Key: key}, nil
}

// StoreFile is Store for a multipart file header.
func (g *Gateway) StoreFile(ctx context.Context, fh *multipart.FileHeader, folder string, imageOnly bool) (Result, error) {
	f, err := fh.Open()
	if err != nil {
		return Result{}, errors.Wrap(err, "open file")
	}
	defer f.Close()
	return g.Store(ctx, f, fh.Filename, fh.Header.Get("Content-Type"), folder, imageOnly)
}

// Remove deletes the object a public URL points at.
func (g *Gateway) Remove(ctx context.Context, url string) error {
	key, err := g.store.KeyFromURL(url)
	if err != nil {
		return err
	}
	return g.store.Delete(ctx, key)
}

// List returns the stored objects under folder, or every object when
// folder is empty.
func (g *Gateway) List(ctx context.Context, folder string) ([]storage.Object, error) {
	if folder == "" {
		return g.store.List(ctx, "")
	}
	return g.store.List(ctx, utils.CleanFolder(folder)+"/")
}
