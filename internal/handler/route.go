package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"greenfitness-api/internal/models"

	"github.com/gin-gonic/gin"
)

// RouteHandler handles driving-route requests for map display.
type RouteHandler struct {
	service Router
}

// Router interface for dependency injection.
type Router interface {
	Directions(ctx context.Context, start, end models.Coordinate) (json.RawMessage, error)
}

// NewRouteHandler creates a new route handler.
func NewRouteHandler(svc Router) *RouteHandler {
	return &RouteHandler{service: svc}
}

// Route handles GET /route requests. Routing failures are independent of
// search and map to 502: the caller's map simply renders without the route
// overlay.
func (h *RouteHandler) Route(c *gin.Context) {
	start, ok := parseLatLon(c, c.Query("start_lat"), c.Query("start_lon"))
	if !ok {
		return
	}
	end, ok := parseLatLon(c, c.Query("end_lat"), c.Query("end_lon"))
	if !ok {
		return
	}

	route, err := h.service.Directions(c.Request.Context(), start, end)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "routing service unavailable"})
		return
	}

	c.Data(http.StatusOK, "application/geo+json", route)
}
