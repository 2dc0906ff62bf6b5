package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/princinho/estudiobackend/dto"
	"github.com/princinho/estudiobackend/models"
	"go.uber.org/zap"
)

type homeService struct {
	Title, Description, Href string
}

var homeServices = []homeService{
	{"Invitaciones para eventos", "Invitaciones para bodas, celebraciones, cumpleaños y eventos especiales - con diseño personal y único.", "/invitaciones"},
	{"Diseño gráfico", "Fotocalls, posts, tarjetas de visita, roll-ups, carteles, pegatinas y eventos especiales con diseño personal y único.", "/diseno-grafico"},
	{"Grabado láser", "Grabado en madera, acrílico y otros materiales - regalos personales con significado.", "/grabado-laser"},
}

var homeSteps = []string{
	"Eliges el diseño o producto",
	"Envías detalles y personalizaciones",
	"Recibes aprobación del diseño",
	"Pagas online",
	"Producimos y enviamos",
}

var productSteps = []string{
	"Realizas el pedido",
	"Enviamos propuesta de diseño",
	"Revisión y aprobación",
	"Producción y entrega",
}

// Layout is the data every page shares: header logo, footer logo and the
// cart badge.
type Layout struct {
	Logo       string
	FooterLogo string
	CartCount  int
	Admin      bool
}

// rowsOrEmpty hides row store failures from public pages.
func rowsOrEmpty[T any](name string, list func() ([]T, error)) []T {
	items, err := list()
	if err != nil {
		zap.S().Warnw("row fetch failed, rendering empty list", "table", name, "error", err)
		return []T{}
	}
	return items
}

func (a *App) layout(c *gin.Context) Layout {
	ctx := c.Request.Context()
	l := Layout{
		Logo:      a.Content.Homepage.FetchOrDefault(ctx).HeroAssets.Logo,
		CartCount: a.Carts.Load(c.Request).TotalItems(),
	}
	if a.Logos != nil {
		logos := rowsOrEmpty("logo", func() ([]models.Logo, error) { return a.Logos.List(ctx) })
		if len(logos) > 0 && logos[0].Foto != nil {
			l.FooterLogo = *logos[0].Foto
		}
	}
	return l
}

func (a *App) render(c *gin.Context, status int, name, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = title
	data["Layout"] = a.layout(c)
	c.HTML(status, name, data)
}

func (a *App) renderNotFound(c *gin.Context) {
	a.render(c, http.StatusNotFound, "pages/404.html", "Página no encontrada", nil)
}

func (a *App) renderError(c *gin.Context, err error) {
	_ = c.Error(err)
	zap.S().Errorw("page failed", "path", c.Request.URL.Path, "error", err)
	a.render(c, http.StatusInternalServerError, "pages/error.html", "Error", gin.H{"Message": "No pudimos completar la acción. Inténtalo de nuevo."})
}

func (a *App) HomePage() gin.HandlerFunc {
	return func(c *gin.Context) {
		home := a.Content.Homepage.FetchOrDefault(c.Request.Context())
		a.render(c, http.StatusOK, "pages/home.html", "DESIGNOVA", gin.H{
			"Projects": home.Projects,
			"Hero":     home.HeroAssets,
			"Services": homeServices,
			"Steps":    homeSteps,
		})
	}
}

func (a *App) ShopPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc := a.Content.Products.FetchOrDefault(c.Request.Context())
		category := strings.TrimSpace(c.Query("categoria"))
		products := doc.Products
		if category != "" {
			products = make([]models.Product, 0, len(doc.Products))
			for _, p := range doc.Products {
				if p.Category == category {
					products = append(products, p)
				}
			}
		}
		categories := []string{}
		seen := map[string]bool{}
		for _, p := range doc.Products {
			if p.Category != "" && !seen[p.Category] {
				seen[p.Category] = true
				categories = append(categories, p.Category)
			}
		}
		a.render(c, http.StatusOK, "pages/shop.html", "Tienda", gin.H{
			"Products":   products,
			"Categories": categories,
			"Category":   category,
		})
	}
}

func (a *App) ProductPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		for _, p := range a.Content.Products.FetchOrDefault(c.Request.Context()).Products {
			if p.ID == id {
				a.render(c, http.StatusOK, "pages/product.html", p.Name, gin.H{"Product": p, "Steps": productSteps})
				return
			}
		}
		a.renderNotFound(c)
	}
}

func (a *App) PortfolioPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc := a.Content.Portfolio.FetchOrDefault(c.Request.Context())
		a.render(c, http.StatusOK, "pages/portfolio.html", "Portafolio", gin.H{"Projects": doc.Projects})
	}
}

func (a *App) GraphicDesignPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		doc := a.Content.GraphicDesign.FetchOrDefault(ctx)
		data := gin.H{"Services": doc.Services, "StudioServices": []models.StudioService{}, "Examples": []models.WorkExample{}}
		if a.Services != nil {
			data["StudioServices"] = rowsOrEmpty("nuestros_servicios", func() ([]models.StudioService, error) { return a.Services.List(ctx) })
		}
		if a.WorkExamples != nil {
			data["Examples"] = rowsOrEmpty("ejemplos_trabajos", func() ([]models.WorkExample, error) { return a.WorkExamples.List(ctx) })
		}
		a.render(c, http.StatusOK, "pages/graphic_design.html", "Diseño gráfico", data)
	}
}

func (a *App) LaserPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc := a.Content.Laser.FetchOrDefault(c.Request.Context())
		a.render(c, http.StatusOK, "pages/laser.html", "Grabado láser", gin.H{"Materials": doc.Materials, "Products": doc.Products})
	}
}

func (a *App) InvitationsPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc := a.Content.Portfolio.FetchOrDefault(c.Request.Context())
		projects := make([]models.PortfolioProject, 0)
		for _, p := range doc.Projects {
			if p.Category == "Invitaciones" {
				projects = append(projects, p)
			}
		}
		a.render(c, http.StatusOK, "pages/invitations.html", "Invitaciones", gin.H{"Projects": projects})
	}
}

func (a *App) AboutPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		photos := []models.AboutPhoto{}
		if a.AboutPhotos != nil {
			photos = rowsOrEmpty("sobre_nosotros", func() ([]models.AboutPhoto, error) { return a.AboutPhotos.List(ctx) })
		}
		a.render(c, http.StatusOK, "pages/about.html", "Sobre nosotros", gin.H{"Photos": photos})
	}
}

func (a *App) ContactPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		a.render(c, http.StatusOK, "pages/contact.html", "Contacto", gin.H{"Sent": c.Query("enviado") == "1"})
	}
}

// ContactForm is the HTML form version of POST /api/contacto.
func (a *App) ContactForm() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CreateContactDTO
		if err := c.ShouldBind(&body); err != nil {
			a.render(c, http.StatusBadRequest, "pages/contact.html", "Contacto", gin.H{"Error": "Revisa los datos del formulario.", "Form": body})
			return
		}
		if _, err := a.saveContact(c.Request.Context(), body); err != nil {
			_ = c.Error(err)
			zap.S().Errorw("contact form failed", "error", err)
			a.render(c, http.StatusInternalServerError, "pages/contact.html", "Contacto", gin.H{"Error": "No pudimos enviar tu mensaje. Inténtalo de nuevo.", "Form": body})
			return
		}
		c.Redirect(http.StatusSeeOther, "/contacto?enviado=1")
	}
}

func (a *App) CartPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		a.render(c, http.StatusOK, "pages/cart.html", "Carrito", gin.H{"Cart": a.Carts.Load(c.Request).Summary()})
	}
}

func (a *App) CheckoutPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		ct := a.Carts.Load(c.Request)
		if ct.IsEmpty() && c.Query("pedido") == "" {
			c.Redirect(http.StatusSeeOther, "/carrito")
			return
		}
		a.render(c, http.StatusOK, "pages/checkout.html", "Finalizar pedido", gin.H{
			"Cart":  ct.Summary(),
			"Order": c.Query("pedido"),
		})
	}
}

// CheckoutForm is the HTML form version of POST /api/pedidos. The card
// fields are never echoed back into the form.
func (a *App) CheckoutForm() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CheckoutDTO
		bindErr := c.ShouldBind(&body)
		ct := a.Carts.Load(c.Request)
		form := body
		form.NombreTarjeta, form.NumeroTarjeta, form.FechaVencimiento, form.CVV = "", "", "", ""

		if bindErr != nil {
			a.render(c, http.StatusBadRequest, "pages/checkout.html", "Finalizar pedido", gin.H{
				"Cart": ct.Summary(), "Form": form, "Error": "Completa todos los campos obligatorios.",
			})
			return
		}
		order, err := a.placeOrder(c.Request.Context(), c, body)
		if errors.Is(err, ErrEmptyCart) {
			a.render(c, http.StatusBadRequest, "pages/checkout.html", "Finalizar pedido", gin.H{
				"Cart": ct.Summary(), "Form": form, "Error": err.Error(),
			})
			return
		}
		if err != nil {
			_ = c.Error(err)
			zap.S().Errorw("checkout failed", "error", err)
			a.render(c, http.StatusInternalServerError, "pages/checkout.html", "Finalizar pedido", gin.H{
				"Cart": ct.Summary(), "Form": form, "Error": "No pudimos registrar tu pedido. Inténtalo de nuevo.",
			})
			return
		}
		c.Redirect(http.StatusSeeOther, "/finalizar-pedido?pedido="+order.ID.Hex())
	}
}

func (a *App) LegalPage(p legalPage) gin.HandlerFunc {
	return func(c *gin.Context) {
		a.render(c, http.StatusOK, "pages/legal.html", p.Title, gin.H{"Page": p, "Legal": LegalPages})
	}
}
