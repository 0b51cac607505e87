package handler

import (
	"context"
	"net/http"
	"strconv"

	"greenfitness-api/internal/models"

	"github.com/gin-gonic/gin"
)

const defaultMaxStations = 100

// StationsHandler handles charging station lookups around a coordinate.
type StationsHandler struct {
	service StationService
}

// Service interface for dependency injection.
type StationService interface {
	Nearby(ctx context.Context, coord models.Coordinate, radiusKm float64, maxResults int, countryCode string) []models.ChargingStation
}

// NewStationsHandler creates a new stations handler.
func NewStationsHandler(svc StationService) *StationsHandler {
	return &StationsHandler{service: svc}
}

// Stations handles GET /stations requests. Upstream POI failures degrade to
// an empty list, so this endpoint never returns a 5xx for them.
func (h *StationsHandler) Stations(c *gin.Context) {
	coord, ok := parseLatLon(c, c.Query("lat"), c.Query("lon"))
	if !ok {
		return
	}

	radius, err := strconv.ParseFloat(c.Query("radius_km"), 64)
	if err != nil || radius <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'radius_km' must be a positive number"})
		return
	}

	max := defaultMaxStations
	if maxStr := c.Query("max"); maxStr != "" {
		max, err = strconv.Atoi(maxStr)
		if err != nil || max <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'max' must be a positive integer"})
			return
		}
	}

	stations := h.service.Nearby(c.Request.Context(), coord, radius, max, c.Query("country"))
	c.JSON(http.StatusOK, stations)
}
