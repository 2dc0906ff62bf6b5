package storage

import (
	"bytes"
	"context"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

var (
	objectsBucket = []byte("objects")
	typesBucket   = []byte("content_types")
)

// Local keeps objects in a single bbolt file. It is meant for development:
// objects are served by this process under baseURL.
type Local struct {
	db      *bolt.DB
	baseURL string
}

func NewLocal(path, baseURL string) (*Local, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(objectsBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(typesBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "create buckets")
	}
	return &Local{db: db, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (l *Local) Close() error { return l.db.Close() }

func (l *Local) List(_ context.Context, prefix string) ([]Object, error) {
	out := make([]Object, 0)
	err := l.db.View(func(tx *bolt.Tx) error {
		types := tx.Bucket(typesBucket)
		c := tx.Bucket(objectsBucket).Cursor()
		p := []byte(prefix)
		for k, v := c.Seek(p); k != nil && bytes.HasPrefix(k, p); k, v = c.Next() {
			key := string(k)
			out = append(out, Object{
				Key:         key,
				URL:         l.URL(key),
				Size:        int64(len(v)),
				ContentType: string(types.Get(k)),
			})
		}
		return nil
	})
	return out, err
}

func (l *Local) Get(ctx context.Context, key string) ([]byte, error) {
	data, _, err := l.Open(ctx, key)
	return data, err
}

func (l *Local) Open(_ context.Context, key string) ([]byte, string, error) {
	var data []byte
	var ct string
	err := l.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(objectsBucket).Get([]byte(key))
		if v == nil {
			return ErrNotExist
		}
		// values are only valid inside the transaction
		data = append([]byte(nil), v...)
		ct = string(tx.Bucket(typesBucket).Get([]byte(key)))
		return nil
	})
	return data, ct, err
}

func (l *Local) Put(_ context.Context, key string, body io.Reader, contentType string) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	err = l.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(objectsBucket).Put([]byte(key), data); err != nil {
			return err
		}
		return tx.Bucket(typesBucket).Put([]byte(key), []byte(contentType))
	})
	if err != nil {
		return "", errors.Wrapf(err, "put %s", key)
	}
	return l.URL(key), nil
}

func (l *Local) Delete(_ context.Context, key string) error {
	return l.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(objectsBucket).Delete([]byte(key)); err != nil {
			return err
		}
		return tx.Bucket(typesBucket).Delete([]byte(key))
	})
}

func (l *Local) URL(key string) string { return l.baseURL + "/" + key }

func (l *Local) KeyFromURL(raw string) (string, error) { return keyUnder(l.baseURL, raw) }
