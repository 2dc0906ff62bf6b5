package controllers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/princinho/estudiobackend/content"
)

// GetContent serves /api/content/:type. Misses and storage failures fall
// back to the compiled-in default.
func (a *App) GetContent() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, ok := a.Content.ByType(c.Param("type"))
		if !ok {
			respondError(c, http.StatusNotFound, "unknown content type", nil)
			return
		}
		c.JSON(http.StatusOK, doc.Load(c.Request.Context()))
	}
}

// SaveContent overwrites the whole document and echoes it back next to
// success:true.
func (a *App) SaveContent() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, ok := a.Content.ByType(c.Param("type"))
		if !ok {
			respondError(c, http.StatusNotFound, "unknown content type", nil)
			return
		}
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid body", err)
			return
		}

		saved, err := doc.SaveJSON(c.Request.Context(), body)
		if err != nil {
			var verr *content.ValidationError
			if errors.As(err, &verr) {
				respondError(c, http.StatusBadRequest, verr.Error(), err)
				return
			}
			respondError(c, http.StatusInternalServerError, doc.FailMessage(), err)
			return
		}

		out, err := successEnvelope(saved)
		if err != nil {
			respondError(c, http.StatusInternalServerError, doc.FailMessage(), err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// successEnvelope flattens doc into a map carrying success:true.
func successEnvelope(doc any) (map[string]any, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	out["success"] = true
	return out, nil
}
