package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/princinho/estudiobackend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPing(t *testing.T) {
	h := newHarness(t)
	w := h.json(http.MethodGet, "/ping", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", decode(t, w)["message"])
}

func TestContentDefaultsThenOverwrite(t *testing.T) {
	h := newHarness(t)

	w := h.json(http.MethodGet, "/api/content/products", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["products"], 12)

	w = h.json(http.MethodPost, "/api/content/products", map[string]any{
		"products": []map[string]any{{"name": "Taza", "price": 12.5, "category": "Regalos"}},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	saved := body["products"].([]any)
	require.Len(t, saved, 1)
	assert.NotEmpty(t, saved[0].(map[string]any)["id"])

	w = h.json(http.MethodGet, "/api/content/products", nil)
	products := decode(t, w)["products"].([]any)
	require.Len(t, products, 1)
	assert.Equal(t, "Taza", products[0].(map[string]any)["name"])
}

func TestContentRejectsInvalidDocument(t *testing.T) {
	h := newHarness(t)

	w := h.json(http.MethodPost, "/api/content/products", map[string]any{
		"products": []map[string]any{{"id": "a", "name": "x", "price": -1}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.json(http.MethodPost, "/api/content/portfolio", map[string]any{
		"projects": []map[string]any{{"id": 1, "title": "a"}, {"id": 1, "title": "b"}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	for _, body := range []any{map[string]any{"items": []any{map[string]any{"id": "a"}}}, map[string]any{}, nil} {
		w = h.json(http.MethodPost, "/api/content/products", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	}
	w = h.json(http.MethodPost, "/api/content/laser", map[string]any{"materials": []any{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "products: missing", decode(t, w)["error"])

	// the rejected writes left the defaults in place
	w = h.json(http.MethodGet, "/api/content/products", nil)
	assert.Len(t, decode(t, w)["products"], 12)
	w = h.json(http.MethodGet, "/api/content/laser", nil)
	assert.Len(t, decode(t, w)["products"], 8)
}

func TestContentUnknownType(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, http.StatusNotFound, h.json(http.MethodGet, "/api/content/recetas", nil).Code)
	assert.Equal(t, http.StatusNotFound, h.json(http.MethodPost, "/api/content/recetas", map[string]any{}).Code)
}

func TestContentSaveFailure(t *testing.T) {
	h := newHarness(t)
	h.store.failPut = true

	w := h.json(http.MethodPost, "/api/content/laser", map[string]any{"materials": []any{}, "products": []any{}})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to save laser content", decode(t, w)["error"])

	// reads still answer with the default
	w = h.json(http.MethodGet, "/api/content/laser", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["products"], 8)
}

func TestRowsLifecycle(t *testing.T) {
	h := newHarness(t)

	w := h.json(http.MethodPost, "/api/logo", map[string]any{"foto": "http://media.test/media/logo/a.png"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	item := decode(t, w)["item"].(map[string]any)
	id := item["id"].(string)
	assert.NotEmpty(t, id)

	w = h.json(http.MethodGet, "/api/logo", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["items"], 1)

	w = h.json(http.MethodPut, "/api/logo", map[string]any{"id": id, "foto": "http://media.test/media/logo/b.png"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://media.test/media/logo/b.png", decode(t, w)["item"].(map[string]any)["foto"])

	w = h.json(http.MethodDelete, "/api/logo", map[string]any{"id": id})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["success"])
	assert.Empty(t, h.logos.items)
}

func TestRowsMissingID(t *testing.T) {
	h := newHarness(t)
	foto := "x"
	h.logos.items = []models.Logo{{Photo: models.Photo{ID: "keep", Foto: &foto}}}

	w := h.json(http.MethodPut, "/api/logo", map[string]any{"foto": "y"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing id", decode(t, w)["error"])

	w = h.json(http.MethodDelete, "/api/logo", map[string]any{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing id", decode(t, w)["error"])

	require.Len(t, h.logos.items, 1)
	assert.Equal(t, "x", *h.logos.items[0].Foto)
}

func TestRowsUnknownIDIsLenient(t *testing.T) {
	h := newHarness(t)

	w := h.json(http.MethodPut, "/api/nuestros-servicios", map[string]any{"id": "ghost", "nombre": "x"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Contains(t, body, "item")
	assert.Nil(t, body["item"])

	w = h.json(http.MethodDelete, "/api/nuestros-servicios", map[string]any{"id": "ghost"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["success"])
}

func TestRowsListFailure(t *testing.T) {
	h := newHarness(t)
	h.services.err = errBoom

	w := h.json(http.MethodGet, "/api/nuestros-servicios", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.Equal(t, []any{}, body["items"])
	assert.NotEmpty(t, body["error"])
}

func TestUploadVideo(t *testing.T) {
	h := newHarness(t)

	req := multipartRequest(t, "/api/upload", map[string]string{"folder": "Portafolio"}, "Mi Clip.mp4", "video/mp4", []byte("not really mp4"))
	w := h.do(req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "video", body["mediaType"])
	assert.True(t, strings.HasPrefix(body["url"].(string), "http://media.test/media/portafolio/"))
	assert.True(t, strings.HasSuffix(body["key"].(string), "-mi-clip.mp4"))
	assert.Equal(t, 1, h.store.Len())
}

func TestUploadSniffsGenericType(t *testing.T) {
	h := newHarness(t)

	req := multipartRequest(t, "/api/upload", map[string]string{"folder": "products", "accept": "image"}, "a.png", "application/octet-stream", pngHeader)
	w := h.do(req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "image", decode(t, w)["mediaType"])
}

func TestUploadRejections(t *testing.T) {
	h := newHarness(t)

	w := h.do(multipartRequest(t, "/api/upload", nil, "notes.txt", "text/plain", []byte("hola")))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(multipartRequest(t, "/api/upload", map[string]string{"accept": "image"}, "clip.mp4", "video/mp4", []byte("x")))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(multipartRequest(t, "/api/upload", nil, "", "", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, 0, h.store.Len())
}

func TestUploadStorageFailure(t *testing.T) {
	h := newHarness(t)
	h.store.failPut = true

	w := h.do(multipartRequest(t, "/api/upload", nil, "a.png", "image/png", pngHeader))
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "upload failed", decode(t, w)["error"])
}

func TestDeleteAndListMedia(t *testing.T) {
	h := newHarness(t)

	w := h.do(multipartRequest(t, "/api/upload", map[string]string{"folder": "laser/products"}, "a.png", "image/png", pngHeader))
	require.Equal(t, http.StatusOK, w.Code)
	url := decode(t, w)["url"].(string)

	w = h.json(http.MethodGet, "/api/files?folder=laser/products", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["items"], 1)

	w = h.json(http.MethodDelete, "/api/delete", map[string]any{"url": "https://elsewhere.example/a.png"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.json(http.MethodDelete, "/api/delete", map[string]any{"url": url})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, h.store.Len())
}

func TestServeMediaHidesContentDocuments(t *testing.T) {
	h := newHarness(t)
	h.router.GET("/media/*key", ServeMedia(h.store.Memory))

	w := h.do(multipartRequest(t, "/api/upload", map[string]string{"folder": "uploads"}, "a.png", "image/png", pngHeader))
	require.Equal(t, http.StatusOK, w.Code)
	key := decode(t, w)["key"].(string)

	w = h.do(httptest.NewRequest(http.MethodGet, "/media/"+key, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

	require.Equal(t, http.StatusOK, h.json(http.MethodPost, "/api/content/homepage", map[string]any{"projects": []any{}}).Code)
	w = h.do(httptest.NewRequest(http.MethodGet, "/media/content/homepage.json", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateContact(t *testing.T) {
	h := newHarness(t)

	w := h.json(http.MethodPost, "/api/contacto", map[string]any{
		"nombreCompleto": "Ana Pérez",
		"email":          "ana@example.com",
		"tipoConsulta":   "Invitaciones",
		"mensaje":        "Hola",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "row-1", body["id"])

	require.Len(t, h.contacts.items, 1)
	assert.Equal(t, "Ana Pérez", *h.contacts.items[0].NombreCompleto)
	assert.Nil(t, h.contacts.items[0].Telefono)
	assert.Len(t, h.notifier.contacts, 1)
}

func TestCreateContactNotificationFailureStillSucceeds(t *testing.T) {
	h := newHarness(t)
	h.notifier.err = errBoom

	w := h.json(http.MethodPost, "/api/contacto", map[string]any{"mensaje": "Hola"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, h.contacts.items, 1)
}

func TestCreateContactStoreFailure(t *testing.T) {
	h := newHarness(t)
	h.contacts.err = errBoom

	w := h.json(http.MethodPost, "/api/contacto", map[string]any{"mensaje": "Hola"})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to send message", decode(t, w)["error"])
	assert.Empty(t, h.notifier.contacts)
}

func TestUnknownAPIRoute(t *testing.T) {
	h := newHarness(t)
	w := h.json(http.MethodGet, "/api/nada", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not found", decode(t, w)["error"])
}
