package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/princinho/estudiobackend/dto"
	"github.com/princinho/estudiobackend/storage"
	"github.com/princinho/estudiobackend/upload"
)

// UploadMedia stores the multipart "file" under "folder". accept=image
// restricts the call to images.
func (a *App) UploadMedia() gin.HandlerFunc {
	return func(c *gin.Context) {
		fh, err := c.FormFile("file")
		if err != nil {
			respondError(c, http.StatusBadRequest, "missing file", nil)
			return
		}
		imageOnly := c.PostForm("accept") == "image"

		res, err := a.Uploads.StoreFile(c.Request.Context(), fh, c.PostForm("folder"), imageOnly)
		if err != nil {
			if errors.Is(err, upload.ErrUnsupportedType) || errors.Is(err, upload.ErrImageOnly) {
				respondError(c, http.StatusBadRequest, err.Error(), nil)
				return
			}
			respondError(c, http.StatusInternalServerError, "upload failed", err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

func (a *App) DeleteMedia() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.DeleteMediaDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			respondError(c, http.StatusBadRequest, "missing url", nil)
			return
		}
		if err := a.Uploads.Remove(c.Request.Context(), body.URL); err != nil {
			if errors.Is(err, storage.ErrForeignURL) {
				respondError(c, http.StatusBadRequest, "url does not belong to this store", nil)
				return
			}
			respondError(c, http.StatusInternalServerError, "delete failed", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func (a *App) ListFiles() gin.HandlerFunc {
	return func(c *gin.Context) {
		objs, err := a.Uploads.List(c.Request.Context(), c.Query("folder"))
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to list files", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": objs})
	}
}

// ServeMedia streams objects of stores that are not publicly hosted
// (local and memory drivers).
func ServeMedia(o storage.Opener) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := strings.TrimPrefix(c.Param("key"), "/")
		if key == "" || strings.HasPrefix(key, "content/") || strings.Contains(key, "..") {
			c.Status(http.StatusNotFound)
			return
		}
		data, ct, err := o.Open(c.Request.Context(), key)
		if errors.Is(err, storage.ErrNotExist) {
			c.Status(http.StatusNotFound)
			return
		}
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to read file", err)
			return
		}
		if ct == "" {
			ct = "application/octet-stream"
		}
		c.Header("Cache-Control", "public, max-age=86400")
		c.Data(http.StatusOK, ct, data)
	}
}
