package handler

import (
	"context"
	"errors"
	"net/http"

	"greenfitness-api/internal/geocode"
	"greenfitness-api/internal/models"

	"github.com/gin-gonic/gin"
)

// GeoCodeHandler handles geocoding requests.
type GeoCodeHandler struct {
	service Geocoder
}

// Geocoder interface for dependency injection.
type Geocoder interface {
	Geocode(ctx context.Context, query, countryCode string) (models.Coordinate, error)
}

// NewGeoCodeHandler creates a new geocode handler.
func NewGeoCodeHandler(svc Geocoder) *GeoCodeHandler {
	return &GeoCodeHandler{service: svc}
}

// GeoCode handles GET /geocode requests.
func (h *GeoCodeHandler) GeoCode(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'q'"})
		return
	}

	coord, err := h.service.Geocode(c.Request.Context(), query, c.Query("country"))
	if err != nil {
		if errors.Is(err, geocode.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, coord)
}
