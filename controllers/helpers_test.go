package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/princinho/estudiobackend/admin"
	"github.com/princinho/estudiobackend/cart"
	"github.com/princinho/estudiobackend/content"
	"github.com/princinho/estudiobackend/models"
	"github.com/princinho/estudiobackend/storage"
	"github.com/princinho/estudiobackend/upload"
	"github.com/princinho/estudiobackend/web"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var errBoom = errors.New("boom")

type fakeRows[T any, PT rowModel[T]] struct {
	mu    sync.Mutex
	items []T
	err   error
	seq   int
}

func (f *fakeRows[T, PT]) List(context.Context) ([]T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]T{}, f.items...), nil
}

func (f *fakeRows[T, PT]) Create(_ context.Context, row *T) (*T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.seq++
	PT(row).SetRowID(fmt.Sprintf("row-%d", f.seq))
	f.items = append(f.items, *row)
	out := *row
	return &out, nil
}

func (f *fakeRows[T, PT]) Update(_ context.Context, row *T) (*T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.items {
		if PT(&f.items[i]).RowID() == PT(row).RowID() {
			f.items[i] = *row
			out := *row
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeRows[T, PT]) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i := range f.items {
		if PT(&f.items[i]).RowID() == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			break
		}
	}
	return nil
}

type fakeOrders struct {
	mu     sync.Mutex
	orders []models.Order
	err    error
}

func (f *fakeOrders) Create(_ context.Context, o *models.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	o.ID = bson.NewObjectID()
	f.orders = append(f.orders, *o)
	return nil
}

type stubNotifier struct {
	mu       sync.Mutex
	contacts []models.ContactMessage
	orders   []models.Order
	err      error
}

func (s *stubNotifier) ContactReceived(m models.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts = append(s.contacts, m)
	return s.err
}

func (s *stubNotifier) OrderPlaced(o models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, o)
	return s.err
}

// flakyStore fails writes while failPut is set and reads while failGet is
// set.
type flakyStore struct {
	*storage.Memory
	failPut bool
	failGet bool
}

func (f *flakyStore) Get(ctx context.Context, key string) ([]byte, error) {
	if f.failGet {
		return nil, errBoom
	}
	return f.Memory.Get(ctx, key)
}

func (f *flakyStore) Put(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	if f.failPut {
		return "", errBoom
	}
	return f.Memory.Put(ctx, key, body, contentType)
}

type harness struct {
	app      *App
	router   *gin.Engine
	store    *flakyStore
	orders   *fakeOrders
	notifier *stubNotifier
	contacts *fakeRows[models.ContactMessage, *models.ContactMessage]
	logos    *fakeRows[models.Logo, *models.Logo]
	services *fakeRows[models.StudioService, *models.StudioService]
	cookies  []*http.Cookie
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := &flakyStore{Memory: storage.NewMemory("http://media.test/media")}
	collections := content.NewCollections(store)
	uploads := upload.NewGateway(store)
	h := &harness{
		store:    store,
		orders:   &fakeOrders{},
		notifier: &stubNotifier{},
		contacts: &fakeRows[models.ContactMessage, *models.ContactMessage]{},
		logos:    &fakeRows[models.Logo, *models.Logo]{},
		services: &fakeRows[models.StudioService, *models.StudioService]{},
	}
	h.app = &App{
		Content: collections,
		Store:   store,
		Uploads: uploads,
		Carts:   cart.NewSessionStore([]byte("test-session-secret"), false),
		Catalog: cart.NewCatalog(collections),
		Orders:  h.orders,
		Admin:   admin.NewRegistry(collections, uploads),
		Notify:  h.notifier,

		Contacts:     h.contacts,
		Logos:        h.logos,
		LeftPhotos:   &fakeRows[models.LeftPhoto, *models.LeftPhoto]{},
		AboutPhotos:  &fakeRows[models.AboutPhoto, *models.AboutPhoto]{},
		Materials:    &fakeRows[models.EngravingMaterial, *models.EngravingMaterial]{},
		Services:     h.services,
		WorkExamples: &fakeRows[models.WorkExample, *models.WorkExample]{},
	}

	renderer, err := LoadTemplates(web.FS)
	require.NoError(t, err)
	r := gin.New()
	r.HTMLRender = renderer
	h.app.Routes(r)
	h.router = r

	return h
}

// do sends req through the router and keeps the session cookie between
// calls.
func (h *harness) do(req *http.Request) *httptest.ResponseRecorder {
	for _, c := range h.cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	if set := w.Result().Cookies(); len(set) > 0 {
		h.cookies = set
	}
	return w
}

func (h *harness) json(method, path string, body any) *httptest.ResponseRecorder {
	var r io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	return h.do(req)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")

// multipartRequest builds a form post with an optional "file" part whose
// Content-Type header is partType.
func multipartRequest(t *testing.T, path string, values map[string]string, filename, partType string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range values {
		require.NoError(t, mw.WriteField(k, v))
	}
	if filename != "" {
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
		hdr.Set("Content-Type", partType)
		part, err := mw.CreatePart(hdr)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func formRequest(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func httptestGet(path string) *http.Request {
	return httptest.NewRequest(http.MethodGet, path, nil)
}
