package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/princinho/estudiobackend/models"
)

// Routes mounts the JSON API, the public pages and the admin pages.
func (a *App) Routes(r *gin.Engine) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	api := r.Group("/api")
	{
		api.GET("/content/:type", a.GetContent())
		api.POST("/content/:type", a.SaveContent())

		RegisterRows[models.Logo](api, "/logo", a.Logos)
		RegisterRows[models.LeftPhoto](api, "/foto-izq", a.LeftPhotos)
		RegisterRows[models.AboutPhoto](api, "/sobre-nosotros", a.AboutPhotos)
		RegisterRows[models.EngravingMaterial](api, "/materiales-grabado", a.Materials)
		RegisterRows[models.StudioService](api, "/nuestros-servicios", a.Services)
		RegisterRows[models.WorkExample](api, "/ejemplos-trabajos", a.WorkExamples)

		api.POST("/upload", a.UploadMedia())
		api.DELETE("/delete", a.DeleteMedia())
		api.GET("/files", a.ListFiles())

		api.POST("/contacto", a.CreateContact())

		api.GET("/cart", a.GetCart())
		api.DELETE("/cart", a.ClearCart())
		api.POST("/cart/items", a.AddCartItem())
		api.PUT("/cart/items/:id", a.UpdateCartItem())
		api.DELETE("/cart/items/:id", a.RemoveCartItem())

		api.POST("/pedidos", a.Checkout())
	}

	r.GET("/", a.HomePage())
	r.GET("/tienda", a.ShopPage())
	r.GET("/producto/:id", a.ProductPage())
	r.GET("/portafolio", a.PortfolioPage())
	r.GET("/diseno-grafico", a.GraphicDesignPage())
	r.GET("/grabado-laser", a.LaserPage())
	r.GET("/invitaciones", a.InvitationsPage())
	r.GET("/sobre-nosotros", a.AboutPage())
	r.GET("/contacto", a.ContactPage())
	r.POST("/contacto", a.ContactForm())
	r.GET("/carrito", a.CartPage())
	r.POST("/carrito/agregar", a.CartFormAdd())
	r.POST("/carrito/actualizar", a.CartFormUpdate())
	r.POST("/carrito/eliminar", a.CartFormRemove())
	r.GET("/finalizar-pedido", a.CheckoutPage())
	r.POST("/finalizar-pedido", a.CheckoutForm())
	for _, p := range LegalPages {
		r.GET("/legal/"+p.Slug, a.LegalPage(p))
	}

	adm := r.Group("/admin")
	{
		adm.GET("", a.AdminDashboard())
		adm.GET("/:section", a.AdminSection())
		adm.POST("/:section/items", a.AdminCreateItem())
		adm.POST("/:section/items/:key", a.AdminUpdateItem())
		adm.POST("/:section/items/:key/delete", a.AdminDeleteItem())
		adm.POST("/:section/hero/:slot", a.AdminHeroSlot())
	}

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		a.renderNotFound(c)
	})
}
