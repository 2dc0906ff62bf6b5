package storage

import (
	"context"
	"io"
	"sort"
	"strings"
	"sync"
)

type memObject struct {
	data        []byte
	contentType string
}

// Memory keeps objects in process. Objects are served under baseURL, which
// normally points at this app's /media route.
type Memory struct {
	mu      sync.RWMutex
	objects map[string]memObject
	baseURL string
}

func NewMemory(baseURL string) *Memory {
	return &Memory{
		objects: make(map[string]memObject),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (m *Memory) List(_ context.Context, prefix string) ([]Object, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Object, 0)
	for k, o := range m.objects {
		if strings.HasPrefix(k, prefix) {
			out = append(out, Object{Key: k, URL: m.URL(k), Size: int64(len(o.data)), ContentType: o.contentType})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	data, _, err := m.Open(ctx, key)
	return data, err
}

func (m *Memory) Open(_ context.Context, key string) ([]byte, string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	o, ok := m.objects[key]
	if !ok {
		return nil, "", ErrNotExist
	}
	data := make([]byte, len(o.data))
	copy(data, o.data)
	return data, o.contentType, nil
}

func (m *Memory) Put(_ context.Context, key string, body io.Reader, contentType string) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	m.objects[key] = memObject{data: data, contentType: contentType}
	m.mu.Unlock()
	return m.URL(key), nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.objects, key)
	m.mu.Unlock()
	return nil
}

func (m *Memory) URL(key string) string { return m.baseURL + "/" + key }

func (m *Memory) KeyFromURL(raw string) (string, error) { return keyUnder(m.baseURL, raw) }

// Len reports the number of stored objects.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}
