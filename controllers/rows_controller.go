package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/princinho/estudiobackend/database"
	"github.com/princinho/estudiobackend/dto"
	"github.com/princinho/estudiobackend/models"
)

type rowModel[T any] interface {
	*T
	models.Row
}

// RegisterRows mounts GET, POST, PUT and DELETE for one row resource.
func RegisterRows[T any, PT rowModel[T]](r gin.IRouter, path string, repo database.RowRepository[T]) {
	r.GET(path, ListRows(repo))
	r.POST(path, CreateRow[T, PT](repo))
	r.PUT(path, UpdateRow[T, PT](repo))
	r.DELETE(path, DeleteRow(repo))
}

func ListRows[T any](repo database.RowRepository[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := repo.List(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"items": []T{}, "error": "Failed to fetch items"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

func CreateRow[T any, PT rowModel[T]](repo database.RowRepository[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		var row T
		if err := c.ShouldBindJSON(&row); err != nil {
			respondError(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		item, err := repo.Create(c.Request.Context(), &row)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to create item", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"item": item})
	}
}

// UpdateRow replaces every column of the row. An unknown id answers
// {item:null} rather than 404.
func UpdateRow[T any, PT rowModel[T]](repo database.RowRepository[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		var row T
		bindErr := c.ShouldBindJSON(&row)
		if PT(&row).RowID() == "" {
			respondError(c, http.StatusBadRequest, "Missing id", nil)
			return
		}
		if bindErr != nil {
			respondError(c, http.StatusBadRequest, bindErr.Error(), nil)
			return
		}
		item, err := repo.Update(c.Request.Context(), &row)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to update item", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"item": item})
	}
}

func DeleteRow[T any](repo database.RowRepository[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.DeleteRowDTO
		_ = c.ShouldBindJSON(&body)
		if body.ID == "" {
			respondError(c, http.StatusBadRequest, "Missing id", nil)
			return
		}
		if err := repo.Delete(c.Request.Context(), body.ID); err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to delete item", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
