package controllers

import (
	"net/http"
	"net/url"
	"testing"
	"testing/fstest"

	"github.com/princinho/estudiobackend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTemplates(t *testing.T) {
	h := newHarness(t)
	r, ok := h.router.HTMLRender.(*HTMLRenderer)
	require.True(t, ok)
	for _, name := range []string{"pages/home.html", "pages/shop.html", "pages/404.html", "admin/section.html"} {
		assert.Contains(t, r.Templates, name)
	}
}

func TestLoadTemplatesReportsBrokenPage(t *testing.T) {
	fsys := fstest.MapFS{
		"templates/layout.html":     {Data: []byte(`{{define "layout.html"}}{{block "content" .}}{{end}}{{end}}`)},
		"templates/pages/home.html": {Data: []byte(`{{define "content"}}ok{{end}}`)},
		"templates/pages/shop.html": {Data: []byte(`{{define "content"}}{{if}}{{end}}`)},
	}
	_, err := LoadTemplates(fsys)
	require.ErrorContains(t, err, "parse pages/shop.html")
}

func TestPublicPages(t *testing.T) {
	h := newHarness(t)
	pages := map[string]string{
		"/":                  "Cómo trabajamos",
		"/tienda":            "Diseño personalizado para redes.",
		"/producto/1":        "Revisión y aprobación",
		"/portafolio":        "Portafolio",
		"/diseno-grafico":    "Diseño para redes sociales",
		"/grabado-laser":     "Madera",
		"/invitaciones":      "Invitaciones para eventos",
		"/sobre-nosotros":    "Sobre nosotros",
		"/contacto":          "Tipo de consulta",
		"/carrito":           "Tu carrito está vacío.",
		"/legal/aviso-legal": "Datos identificativos",
	}
	for path, want := range pages {
		w := h.do(httptestGet(path))
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), want, path)
		assert.Contains(t, w.Body.String(), "/static/site.css", path)
	}
}

func TestEveryLegalPageIsRouted(t *testing.T) {
	h := newHarness(t)
	for _, p := range LegalPages {
		w := h.do(httptestGet("/legal/" + p.Slug))
		require.Equal(t, http.StatusOK, w.Code, p.Slug)
		assert.Contains(t, w.Body.String(), p.Title)
	}
}

func TestNotFoundPages(t *testing.T) {
	h := newHarness(t)

	w := h.do(httptestGet("/producto/no-existe"))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Página no encontrada")

	w = h.do(httptestGet("/no-existe"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestShopCategoryFilter(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, http.StatusOK, h.json(http.MethodPost, "/api/content/products", map[string]any{
		"products": []map[string]any{
			{"id": "a", "name": "Taza grabada", "price": 10, "category": "Regalos"},
			{"id": "b", "name": "Cartel", "price": 20, "category": "Diseño"},
		},
	}).Code)

	w := h.do(httptestGet("/tienda?categoria=Regalos"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Taza grabada")
	assert.NotContains(t, w.Body.String(), "<h3>Cartel</h3>")
	assert.Contains(t, w.Body.String(), "10,00 €")

	w = h.do(httptestGet("/tienda?categoria=Otra"))
	assert.Contains(t, w.Body.String(), "No hay productos en esta categoría.")
}

func TestPagesSurviveStoreFailures(t *testing.T) {
	h := newHarness(t)
	h.services.err = errBoom
	h.logos.err = errBoom

	w := h.do(httptestGet("/diseno-grafico"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Diseño para redes sociales")
	assert.NotContains(t, w.Body.String(), "Nuestros servicios")
}

func TestGraphicDesignRendersRows(t *testing.T) {
	h := newHarness(t)
	name, foto := "Branding", "http://media.test/media/servicios/a.png"
	h.services.items = []models.StudioService{{NamedPhoto: models.NamedPhoto{ID: "s1", Nombre: &name, Foto: &foto}}}

	w := h.do(httptestGet("/diseno-grafico"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Nuestros servicios")
	assert.Contains(t, w.Body.String(), "Branding")
	assert.Contains(t, w.Body.String(), foto)
}

func TestFooterLogoFromRows(t *testing.T) {
	h := newHarness(t)
	foto := "http://media.test/media/logo/footer.png"
	h.logos.items = []models.Logo{{Photo: models.Photo{ID: "l1", Foto: &foto}}}

	w := h.do(httptestGet("/"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `class="footer-logo" src="`+foto+`"`)
}

func TestCartBadge(t *testing.T) {
	h := newHarness(t)
	h.do(formRequest("/carrito/agregar", url.Values{"id": {"1"}}))
	h.do(formRequest("/carrito/agregar", url.Values{"id": {"1"}}))

	w := h.do(httptestGet("/carrito"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `<span class="badge">2</span>`)
	assert.Contains(t, w.Body.String(), "100,00 €")
}

func TestContactForm(t *testing.T) {
	h := newHarness(t)

	w := h.do(formRequest("/contacto", url.Values{"nombreCompleto": {"Ana"}, "email": {"no-es-email"}}))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Revisa los datos del formulario.")
	assert.Empty(t, h.contacts.items)

	w = h.do(formRequest("/contacto", url.Values{"nombreCompleto": {"Ana"}, "mensaje": {"Hola"}}))
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/contacto?enviado=1", w.Header().Get("Location"))
	assert.Len(t, h.contacts.items, 1)

	w = h.do(httptestGet("/contacto?enviado=1"))
	assert.Contains(t, w.Body.String(), "Hemos recibido tu mensaje")
}
