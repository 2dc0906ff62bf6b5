package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	gcs "cloud.google.com/go/storage"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// GCS stores objects in a Google Cloud Storage bucket with public reads.
type GCS struct {
	Client *gcs.Client
	Bucket string
}

// NewGCS uses the service account file when given, otherwise the default
// application credentials.
func NewGCS(ctx context.Context, bucket, credentialsFile string) (*GCS, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithAuthCredentialsFile(option.ServiceAccount, credentialsFile))
	}
	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "storage.NewClient")
	}
	return &GCS{Client: client, Bucket: bucket}, nil
}

func (g *GCS) List(ctx context.Context, prefix string) ([]Object, error) {
	out := make([]Object, 0)
	it := g.Client.Bucket(g.Bucket).Objects(ctx, &gcs.Query{Prefix: prefix})
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "list %s", prefix)
		}
		out = append(out, Object{Key: attrs.Name, URL: g.URL(attrs.Name), Size: attrs.Size, ContentType: attrs.ContentType})
	}
	return out, nil
}

func (g *GCS) Get(ctx context.Context, key string) ([]byte, error) {
	r, err := g.Client.Bucket(g.Bucket).Object(key).NewReader(ctx)
	if err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return nil, ErrNotExist
		}
		return nil, errors.Wrapf(err, "get %s", key)
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", key)
	}
	return data, nil
}

func (g *GCS) Put(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	w := g.Client.Bucket(g.Bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType
	w.CacheControl = "no-cache"

	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()
		return "", errors.Wrapf(err, "upload copy %s", key)
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "upload close %s", key)
	}
	return g.URL(key), nil
}

func (g *GCS) Delete(ctx context.Context, key string) error {
	err := g.Client.Bucket(g.Bucket).Object(key).Delete(ctx)
	if err != nil && !errors.Is(err, gcs.ErrObjectNotExist) {
		return errors.Wrapf(err, "delete %s", key)
	}
	return nil
}

func (g *GCS) URL(key string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", g.Bucket, key)
}

// KeyFromURL accepts both storage.googleapis.com/<bucket>/<object> and
// <bucket>.storage.googleapis.com/<object>.
func (g *GCS) KeyFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", ErrForeignURL
	}
	host := strings.ToLower(u.Host)
	path := strings.TrimPrefix(u.Path, "/")

	switch host {
	case "storage.googleapis.com":
		prefix := g.Bucket + "/"
		if !strings.HasPrefix(path, prefix) || path == prefix {
			return "", ErrForeignURL
		}
		return strings.TrimPrefix(path, prefix), nil
	case strings.ToLower(g.Bucket) + ".storage.googleapis.com":
		if path == "" {
			return "", ErrForeignURL
		}
		return path, nil
	}
	return "", ErrForeignURL
}
