package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/princinho/estudiobackend/admin"
	"github.com/princinho/estudiobackend/cart"
	"github.com/princinho/estudiobackend/content"
	"github.com/princinho/estudiobackend/database"
	"github.com/princinho/estudiobackend/models"
	"github.com/princinho/estudiobackend/notify"
	"github.com/princinho/estudiobackend/storage"
	"github.com/princinho/estudiobackend/upload"
	"go.uber.org/zap"
)

// App carries the collaborators shared by the handlers.
type App struct {
	Content *content.Collections
	Store   storage.BlobStore
	Uploads *upload.Gateway
	Carts   *cart.SessionStore
	Catalog *cart.Catalog
	Orders  database.OrderRepository
	Admin   *admin.Registry
	Notify  notify.Notifier

	Contacts     database.RowRepository[models.ContactMessage]
	Logos        database.RowRepository[models.Logo]
	LeftPhotos   database.RowRepository[models.LeftPhoto]
	AboutPhotos  database.RowRepository[models.AboutPhoto]
	Materials    database.RowRepository[models.EngravingMaterial]
	Services     database.RowRepository[models.StudioService]
	WorkExamples database.RowRepository[models.WorkExample]
}

// respondError logs err and writes the {error} envelope. A nil err logs
// nothing and sends msg alone.
func respondError(c *gin.Context, status int, msg string, err error) {
	if err != nil {
		_ = c.Error(err)
		if status >= http.StatusInternalServerError {
			zap.S().Errorw(msg, "path", c.Request.URL.Path, "error", err)
		}
	}
	c.JSON(status, gin.H{"error": msg})
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	var verr *content.ValidationError
	var ferr *admin.FieldError
	switch {
	case errors.As(err, &verr), errors.As(err, &ferr):
		return http.StatusBadRequest
	case errors.Is(err, admin.ErrUnknownItem), errors.Is(err, admin.ErrUnknownSlot):
		return http.StatusNotFound
	case errors.Is(err, admin.ErrBusy):
		return http.StatusConflict
	case errors.Is(err, upload.ErrUnsupportedType), errors.Is(err, upload.ErrImageOnly):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
