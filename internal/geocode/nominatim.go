package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"greenfitness-api/internal/geo"
	"greenfitness-api/internal/models"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog/log"
)

// ErrNotFound means the input text did not resolve to any location. Callers
// must surface this as a resolution failure, never substitute a default
// coordinate.
var ErrNotFound = errors.New("geocode: location not found")

const userAgent = "greenfitness-api"

// Client geocodes free text via a Nominatim-compatible endpoint. Successful
// resolutions are cached in a bounded LRU keyed by query+country for the
// process lifetime.
type Client struct {
	baseURL string
	http    *http.Client
	cache   *lru.Cache[string, models.Coordinate]
}

// New builds a Client. cacheSize bounds the geocode cache; timeout applies to
// every outbound call.
func New(baseURL string, timeout time.Duration, cacheSize int) (*Client, error) {
	if cacheSize <= 0 {
		cacheSize = 32
	}
	cache, err := lru.New[string, models.Coordinate](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("geocode: failed to create cache: %w", err)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		cache:   cache,
	}, nil
}

type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode resolves query to a coordinate, scoped to countryCode when set.
// Returns ErrNotFound when the service has no match.
func (c *Client) Geocode(ctx context.Context, query, countryCode string) (models.Coordinate, error) {
	if strings.TrimSpace(query) == "" {
		return models.Coordinate{}, fmt.Errorf("geocode: query cannot be empty")
	}

	key := strings.ToLower(strings.TrimSpace(query)) + "|" + countryCode
	if coord, ok := c.cache.Get(key); ok {
		return coord, nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")
	if countryCode != "" {
		params.Set("countrycodes", strings.ToLower(countryCode))
	}

	var results []searchResult
	if err := c.get(ctx, "/search", params, &results); err != nil {
		return models.Coordinate{}, err
	}
	if len(results) == 0 {
		return models.Coordinate{}, ErrNotFound
	}

	coord := geo.ParseCoordinate(results[0].Lat, results[0].Lon)
	if coord == nil {
		log.Warn().Str("query", query).Msg("geocoder returned unusable coordinate")
		return models.Coordinate{}, ErrNotFound
	}

	c.cache.Add(key, *coord)
	return *coord, nil
}

type reverseResult struct {
	DisplayName string `json:"display_name"`
}

// Reverse resolves a coordinate to a display address. Used for presentation
// only; a failure here never affects search results.
func (c *Client) Reverse(ctx context.Context, coord models.Coordinate) (string, error) {
	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", coord.Lat))
	params.Set("lon", fmt.Sprintf("%f", coord.Lon))
	params.Set("format", "json")

	var result reverseResult
	if err := c.get(ctx, "/reverse", params, &result); err != nil {
		return "", err
	}
	if result.DisplayName == "" {
		return "", ErrNotFound
	}
	return result.DisplayName, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("geocode: failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("geocode: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("geocode: unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("geocode: failed to decode response: %w", err)
	}
	return nil
}
