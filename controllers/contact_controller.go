package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/princinho/estudiobackend/dto"
	"github.com/princinho/estudiobackend/models"
	"go.uber.org/zap"
)

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// saveContact stores the row first; the notification email never changes
// the outcome.
func (a *App) saveContact(ctx context.Context, body dto.CreateContactDTO) (*models.ContactMessage, error) {
	row := &models.ContactMessage{
		NombreCompleto: optional(body.NombreCompleto),
		Email:          optional(body.Email),
		Telefono:       optional(body.Telefono),
		TipoConsulta:   optional(body.TipoConsulta),
		Mensaje:        optional(body.Mensaje),
		CreatedAt:      time.Now().UTC(),
	}
	saved, err := a.Contacts.Create(ctx, row)
	if err != nil {
		return nil, err
	}
	if err := a.Notify.ContactReceived(*saved); err != nil {
		zap.S().Warnw("contact notification failed", "id", saved.ID, "error", err)
	}
	return saved, nil
}

func (a *App) CreateContact() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CreateContactDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			respondError(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		saved, err := a.saveContact(c.Request.Context(), body)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to send message", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "id": saved.ID})
	}
}
