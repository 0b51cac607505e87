package handler

import (
	"context"
	"errors"
	"net/http"

	"greenfitness-api/internal/geocode"
	"greenfitness-api/internal/models"
	"greenfitness-api/internal/service"

	"github.com/gin-gonic/gin"
)

// SessionHandler manages per-connection interaction state: current query,
// result set, selection and studio filters.
type SessionHandler struct {
	store    *service.SessionStore
	search   SessionSearchService
	stations StationService
}

// SessionSearchService interface for dependency injection.
type SessionSearchService interface {
	Search(ctx context.Context, req models.SearchRequest) (*models.SearchResult, error)
	StudioNames(result *models.SearchResult) map[string]struct{}
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(store *service.SessionStore, search SessionSearchService, stations StationService) *SessionHandler {
	return &SessionHandler{store: store, search: search, stations: stations}
}

// Create handles POST /sessions.
func (h *SessionHandler) Create(c *gin.Context) {
	s := h.store.Create()
	c.JSON(http.StatusCreated, s.View())
}

// Get handles GET /sessions/:id.
func (h *SessionHandler) Get(c *gin.Context) {
	s, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, s.View())
}

// Search handles POST /sessions/:id/search. A resolution failure leaves the
// session exactly as it was before the request.
func (h *SessionHandler) Search(c *gin.Context) {
	s, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	var req models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.RadiusKm <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'radius_km' must be a positive number"})
		return
	}
	if req.Coordinate == nil && req.Location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "either 'location' or 'coordinate' is required"})
		return
	}

	result, err := h.search.Search(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, geocode.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	s.ApplySearch(req, result, h.search.StudioNames(result))
	c.JSON(http.StatusOK, s.View())
}

type selectRequest struct {
	Entry    models.CatalogEntry `json:"entry"`
	RadiusKm float64             `json:"radius_km"`
	Max      int                 `json:"max"`
}

// Select handles POST /sessions/:id/select: records the chosen entry and
// fetches the charging stations around it.
func (h *SessionHandler) Select(c *gin.Context) {
	s, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	var req selectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if !req.Entry.HasCoordinate() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "selected entry has no coordinate"})
		return
	}
	if req.RadiusKm <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'radius_km' must be a positive number"})
		return
	}
	if req.Max <= 0 {
		req.Max = defaultMaxStations
	}

	stations := h.stations.Nearby(c.Request.Context(), *req.Entry.Coordinate, req.RadiusKm, req.Max, req.Entry.CountryCode)
	s.ApplySelection(req.Entry, stations)
	c.JSON(http.StatusOK, s.View())
}

// ClearSelection handles DELETE /sessions/:id/selection.
func (h *SessionHandler) ClearSelection(c *gin.Context) {
	s, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	s.ClearSelection()
	c.JSON(http.StatusOK, s.View())
}

type filterRequest struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// SetFilter handles PUT /sessions/:id/filters.
func (h *SessionHandler) SetFilter(c *gin.Context) {
	s, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	var req filterRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	s.SetStudioFilter(req.Name, req.Enabled)
	c.JSON(http.StatusOK, s.View())
}
