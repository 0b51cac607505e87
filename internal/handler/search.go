package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"greenfitness-api/internal/geocode"
	"greenfitness-api/internal/models"

	"github.com/gin-gonic/gin"
)

// SearchHandler handles catalog search requests.
type SearchHandler struct {
	service SearchService
}

// Service interface for dependency injection.
type SearchService interface {
	Search(ctx context.Context, req models.SearchRequest) (*models.SearchResult, error)
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(svc SearchService) *SearchHandler {
	return &SearchHandler{service: svc}
}

// Search handles GET /search requests. The query is either free text (q) or
// a direct coordinate (lat, lon); country and radius_km are required. A
// location that does not resolve yields 404, an empty match set yields 200
// with an empty list.
func (h *SearchHandler) Search(c *gin.Context) {
	req, ok := parseSearchRequest(c)
	if !ok {
		return
	}

	result, err := h.service.Search(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, geocode.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func parseSearchRequest(c *gin.Context) (models.SearchRequest, bool) {
	req := models.SearchRequest{
		Location:    c.Query("q"),
		CountryCode: c.Query("country"),
	}
	if req.CountryCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'country'"})
		return req, false
	}

	radius, err := strconv.ParseFloat(c.Query("radius_km"), 64)
	if err != nil || radius <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'radius_km' must be a positive number"})
		return req, false
	}
	req.RadiusKm = radius

	latStr, lonStr := c.Query("lat"), c.Query("lon")
	if latStr != "" || lonStr != "" {
		coord, ok := parseLatLon(c, latStr, lonStr)
		if !ok {
			return req, false
		}
		req.Coordinate = &coord
	} else if req.Location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "either 'q' or 'lat'/'lon' is required"})
		return req, false
	}

	return req, true
}

func parseLatLon(c *gin.Context, latStr, lonStr string) (models.Coordinate, bool) {
	lat, latErr := strconv.ParseFloat(latStr, 64)
	lon, lonErr := strconv.ParseFloat(lonStr, 64)
	if latErr != nil || lonErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'lat' and 'lon' must be numbers"})
		return models.Coordinate{}, false
	}
	return models.Coordinate{Lat: lat, Lon: lon}, true
}
