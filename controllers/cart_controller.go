package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/princinho/estudiobackend/cart"
	"github.com/princinho/estudiobackend/dto"
)

// withCart loads the session cart, applies fn and writes the cookie back.
func (a *App) withCart(c *gin.Context, fn func(*cart.Cart)) (*cart.Cart, error) {
	ct := a.Carts.Load(c.Request)
	fn(ct)
	return ct, a.Carts.Save(c.Writer, c.Request, ct)
}

func (a *App) GetCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, a.Carts.Load(c.Request).Summary())
	}
}

func (a *App) AddCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.AddCartItemDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			respondError(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		item, ok := a.Catalog.Lookup(c.Request.Context(), body.ID)
		if !ok {
			respondError(c, http.StatusNotFound, "product not found", nil)
			return
		}
		ct, err := a.withCart(c, func(ct *cart.Cart) { ct.AddItem(item) })
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to update cart", err)
			return
		}
		c.JSON(http.StatusOK, ct.Summary())
	}
}

func (a *App) UpdateCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.UpdateCartItemDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			respondError(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		id := c.Param("id")
		ct, err := a.withCart(c, func(ct *cart.Cart) { ct.UpdateQuantity(id, *body.Quantity) })
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to update cart", err)
			return
		}
		c.JSON(http.StatusOK, ct.Summary())
	}
}

func (a *App) RemoveCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		ct, err := a.withCart(c, func(ct *cart.Cart) { ct.RemoveItem(id) })
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to update cart", err)
			return
		}
		c.JSON(http.StatusOK, ct.Summary())
	}
}

func (a *App) ClearCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		ct, err := a.withCart(c, func(ct *cart.Cart) { ct.Clear() })
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to update cart", err)
			return
		}
		c.JSON(http.StatusOK, ct.Summary())
	}
}

// Form posts from the cart and product pages redirect back to /carrito.

func (a *App) CartFormAdd() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.AddCartItemDTO
		if err := c.ShouldBind(&body); err != nil {
			c.Redirect(http.StatusSeeOther, "/carrito")
			return
		}
		item, ok := a.Catalog.Lookup(c.Request.Context(), body.ID)
		if !ok {
			a.renderNotFound(c)
			return
		}
		if _, err := a.withCart(c, func(ct *cart.Cart) { ct.AddItem(item) }); err != nil {
			a.renderError(c, err)
			return
		}
		c.Redirect(http.StatusSeeOther, "/carrito")
	}
}

func (a *App) CartFormUpdate() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.UpdateCartItemDTO
		if err := c.ShouldBind(&body); err != nil || body.ID == "" {
			c.Redirect(http.StatusSeeOther, "/carrito")
			return
		}
		if _, err := a.withCart(c, func(ct *cart.Cart) { ct.UpdateQuantity(body.ID, *body.Quantity) }); err != nil {
			a.renderError(c, err)
			return
		}
		c.Redirect(http.StatusSeeOther, "/carrito")
	}
}

func (a *App) CartFormRemove() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.RemoveCartItemDTO
		if err := c.ShouldBind(&body); err != nil {
			c.Redirect(http.StatusSeeOther, "/carrito")
			return
		}
		if _, err := a.withCart(c, func(ct *cart.Cart) { ct.RemoveItem(body.ID) }); err != nil {
			a.renderError(c, err)
			return
		}
		c.Redirect(http.StatusSeeOther, "/carrito")
	}
}
