package charging

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"greenfitness-api/internal/geo"
	"greenfitness-api/internal/models"
)

// Unknown is the marker substituted for text fields the POI API omits, so
// downstream code can rely on every field being present.
const Unknown = "unknown"

// Client queries the Open Charge Map POI API for charging stations around a
// coordinate. The API key is required; construction fails without one so a
// misconfigured deployment dies at startup rather than per request.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New builds a Client. An empty apiKey is a configuration error.
func New(baseURL, apiKey string, timeout time.Duration) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("charging: API key is not configured")
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

// Wire shape of one POI. Only the fields the catalog surface needs.
type poi struct {
	AddressInfo struct {
		Title        string  `json:"Title"`
		AddressLine1 string  `json:"AddressLine1"`
		Town         string  `json:"Town"`
		Latitude     float64 `json:"Latitude"`
		Longitude    float64 `json:"Longitude"`
		Country      *struct {
			Title string `json:"Title"`
		} `json:"Country"`
	} `json:"AddressInfo"`
	Distance float64 `json:"Distance"`
}

// Nearby fetches charging stations around coord. The radius is passed to the
// API in plain kilometers (distanceunit=KM, no scaling); the API's own radius
// handling is advisory only and callers re-filter locally with the distance
// engine. Stations without a usable coordinate are dropped.
func (c *Client) Nearby(ctx context.Context, coord models.Coordinate, radiusKm float64, maxResults int, countryCode string) ([]models.ChargingStation, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(coord.Lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(coord.Lon, 'f', -1, 64))
	params.Set("distance", strconv.FormatFloat(radiusKm, 'f', -1, 64))
	params.Set("distanceunit", "KM")
	params.Set("maxresults", strconv.Itoa(maxResults))
	params.Set("compact", "true")
	params.Set("verbose", "false")
	params.Set("key", c.apiKey)
	if countryCode != "" {
		params.Set("countrycode", countryCode)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v3/poi/?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("charging: failed to build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("charging: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("charging: unexpected status %d", resp.StatusCode)
	}

	var points []poi
	if err := json.NewDecoder(resp.Body).Decode(&points); err != nil {
		return nil, fmt.Errorf("charging: failed to decode response: %w", err)
	}

	stations := make([]models.ChargingStation, 0, len(points))
	for _, p := range points {
		if !geo.ValidLatLon(p.AddressInfo.Latitude, p.AddressInfo.Longitude) {
			continue
		}
		country := Unknown
		if p.AddressInfo.Country != nil && p.AddressInfo.Country.Title != "" {
			country = p.AddressInfo.Country.Title
		}
		stations = append(stations, models.ChargingStation{
			Name:       orUnknown(p.AddressInfo.Title),
			Address:    orUnknown(p.AddressInfo.AddressLine1),
			City:       orUnknown(p.AddressInfo.Town),
			Country:    country,
			Latitude:   p.AddressInfo.Latitude,
			Longitude:  p.AddressInfo.Longitude,
			DistanceKm: p.Distance,
		})
	}
	return stations, nil
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return Unknown
	}
	return s
}
