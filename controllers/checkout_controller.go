package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/princinho/estudiobackend/cart"
	"github.com/princinho/estudiobackend/dto"
	"github.com/princinho/estudiobackend/models"
	"go.uber.org/zap"
)

var ErrEmptyCart = errors.New("el carrito está vacío")

func newOrder(body dto.CheckoutDTO, ct *cart.Cart) *models.Order {
	items := make([]models.OrderItem, len(ct.Items))
	for i, it := range ct.Items {
		items[i] = models.OrderItem{ProductID: it.ID, Name: it.Name, UnitPrice: it.Price, Quantity: it.Quantity}
	}
	return &models.Order{
		Contact: models.OrderContact{
			Nombre:   strings.TrimSpace(body.Nombre),
			Apellido: strings.TrimSpace(body.Apellido),
			Email:    strings.TrimSpace(body.Email),
			Telefono: strings.TrimSpace(body.Telefono),
		},
		Shipping: models.OrderShipping{
			Direccion:    strings.TrimSpace(body.Direccion),
			Ciudad:       strings.TrimSpace(body.Ciudad),
			Provincia:    strings.TrimSpace(body.Provincia),
			CodigoPostal: strings.TrimSpace(body.CodigoPostal),
		},
		Notes:      strings.TrimSpace(body.Notas),
		Items:      items,
		TotalItems: ct.TotalItems(),
		TotalPrice: ct.TotalPrice(),
		Status:     models.OrderStatusNew,
		CreatedAt:  time.Now().UTC(),
	}
}

// placeOrder stores the order and only then clears the cart. Card fields
// of body are dropped here.
func (a *App) placeOrder(ctx context.Context, c *gin.Context, body dto.CheckoutDTO) (*models.Order, error) {
	ct := a.Carts.Load(c.Request)
	if ct.IsEmpty() {
		return nil, ErrEmptyCart
	}
	order := newOrder(body, ct)
	if err := a.Orders.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "store order")
	}
	zap.S().Infow("order placed", "id", order.ID.Hex(), "items", order.TotalItems, "total", order.TotalPrice)
	if err := a.Notify.OrderPlaced(*order); err != nil {
		zap.S().Warnw("order notification failed", "id", order.ID.Hex(), "error", err)
	}

	ct.Clear()
	if err := a.Carts.Save(c.Writer, c.Request, ct); err != nil {
		zap.S().Warnw("clear cart failed", "order", order.ID.Hex(), "error", err)
	}
	return order, nil
}

func (a *App) Checkout() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CheckoutDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			respondError(c, http.StatusBadRequest, "Completa todos los campos obligatorios", nil)
			return
		}
		order, err := a.placeOrder(c.Request.Context(), c, body)
		if errors.Is(err, ErrEmptyCart) {
			respondError(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to place order", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
	}
}
