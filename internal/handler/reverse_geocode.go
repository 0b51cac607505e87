package handler

import (
	"context"
	"errors"
	"net/http"

	"greenfitness-api/internal/geocode"
	"greenfitness-api/internal/models"

	"github.com/gin-gonic/gin"
)

// ReverseGeocodeHandler handles reverse geocoding requests.
type ReverseGeocodeHandler struct {
	service ReverseGeocoder
}

// ReverseGeocoder interface for dependency injection.
type ReverseGeocoder interface {
	Reverse(ctx context.Context, coord models.Coordinate) (string, error)
}

// NewReverseGeocodeHandler creates a new reverse geocode handler.
func NewReverseGeocodeHandler(svc ReverseGeocoder) *ReverseGeocodeHandler {
	return &ReverseGeocodeHandler{service: svc}
}

// ReverseGeocode handles GET /reverse-geocode requests.
func (h *ReverseGeocodeHandler) ReverseGeocode(c *gin.Context) {
	coord, ok := parseLatLon(c, c.Query("lat"), c.Query("lon"))
	if !ok {
		return
	}

	name, err := h.service.Reverse(c.Request.Context(), coord)
	if err != nil {
		if errors.Is(err, geocode.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "address not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"display_name": name})
}
