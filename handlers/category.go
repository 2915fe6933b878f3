package handlers

import (
	"net/http"

	"planbuilder/models"

	"github.com/gin-gonic/gin"
)

// ListCategoriesHandler returns the fixed category catalog.
func ListCategoriesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": models.Categories})
}
