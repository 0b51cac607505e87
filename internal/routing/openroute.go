package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"greenfitness-api/internal/models"

	"github.com/rs/zerolog/log"
)

// Client computes driving routes via the OpenRouteService directions API.
// Routing is independent of search: a failure here degrades the map overlay
// and nothing else.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New builds a Client. The key may be empty; requests will then fail at call
// time, which handlers surface as a degraded-routing response.
func New(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// ORS wants [lon, lat] pairs.
func lonLat(c models.Coordinate) [2]float64 {
	return [2]float64{c.Lon, c.Lat}
}

type snapRequest struct {
	Locations [][2]float64 `json:"locations"`
	Radius    int          `json:"radius"`
}

type snapResponse struct {
	Locations []*struct {
		Location [2]float64 `json:"location"`
	} `json:"locations"`
}

// snapToRoad moves coord to the nearest routable point. Any failure falls
// back to the original coordinate; snapping is an accuracy improvement, not
// a requirement.
func (c *Client) snapToRoad(ctx context.Context, coord models.Coordinate) models.Coordinate {
	body, err := json.Marshal(snapRequest{Locations: [][2]float64{lonLat(coord)}, Radius: 350})
	if err != nil {
		return coord
	}

	var result snapResponse
	if err := c.post(ctx, "/v2/snap/driving-car", body, &result); err != nil {
		log.Warn().Err(err).Msg("road snap failed, using raw coordinate")
		return coord
	}
	if len(result.Locations) == 0 || result.Locations[0] == nil {
		return coord
	}
	loc := result.Locations[0].Location
	return models.Coordinate{Lat: loc[1], Lon: loc[0]}
}

type directionsRequest struct {
	Coordinates [][2]float64 `json:"coordinates"`
	Radiuses    []int        `json:"radiuses"`
}

// Directions returns the driving route between start and end as a GeoJSON
// document, ready for map display. Both endpoints are snapped to the road
// network first.
func (c *Client) Directions(ctx context.Context, start, end models.Coordinate) (json.RawMessage, error) {
	start = c.snapToRoad(ctx, start)
	end = c.snapToRoad(ctx, end)

	body, err := json.Marshal(directionsRequest{
		Coordinates: [][2]float64{lonLat(start), lonLat(end)},
		Radiuses:    []int{1000, 1000},
	})
	if err != nil {
		return nil, fmt.Errorf("routing: failed to encode request: %w", err)
	}

	var route json.RawMessage
	if err := c.post(ctx, "/v2/directions/driving-car/geojson", body, &route); err != nil {
		return nil, err
	}
	return route, nil
}

func (c *Client) post(ctx context.Context, path string, body []byte, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("routing: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("routing: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("routing: unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("routing: failed to decode response: %w", err)
	}
	return nil
}
