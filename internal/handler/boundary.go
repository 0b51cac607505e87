package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"greenfitness-api/internal/boundary"

	"github.com/gin-gonic/gin"
)

// BoundaryHandler serves administrative-area boundary geometries.
type BoundaryHandler struct {
	store BoundaryStore
}

// BoundaryStore interface for dependency injection.
type BoundaryStore interface {
	Find(name, countryCode string) (json.RawMessage, error)
}

// NewBoundaryHandler creates a new boundary handler.
func NewBoundaryHandler(store BoundaryStore) *BoundaryHandler {
	return &BoundaryHandler{store: store}
}

// Boundary handles GET /boundary requests.
func (h *BoundaryHandler) Boundary(c *gin.Context) {
	name := c.Query("name")
	country := c.Query("country")
	if name == "" || country == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameters 'name' and 'country' are required"})
		return
	}

	geom, err := h.store.Find(name, country)
	if err != nil {
		if errors.Is(err, boundary.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "boundary not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Data(http.StatusOK, "application/geo+json", geom)
}
