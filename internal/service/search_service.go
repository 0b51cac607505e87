package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"greenfitness-api/internal/catalog"
	"greenfitness-api/internal/geo"
	"greenfitness-api/internal/models"
)

// SearchService contains the core geo-search pipeline: resolve the query to
// a coordinate, filter the catalog by country and radius, annotate distances
// and sort ascending.
type SearchService struct {
	table    *catalog.Table
	geocoder Geocoder
}

// Geocoder interface for dependency injection.
type Geocoder interface {
	Geocode(ctx context.Context, query, countryCode string) (models.Coordinate, error)
}

// NewSearchService creates a new search service over the loaded catalog.
func NewSearchService(table *catalog.Table, geocoder Geocoder) *SearchService {
	return &SearchService{table: table, geocoder: geocoder}
}

// Search runs one pipeline pass. A free-text location that fails to resolve
// aborts the whole search (the geocoder's ErrNotFound stays unwrappable via
// errors.Is); there is no fallback coordinate. An empty Entries slice is a
// valid outcome, distinct from that failure.
//
// Entries are kept when their country code matches req.CountryCode exactly,
// their coordinate is valid, and their distance from the center is at most
// req.RadiusKm (closed interval). The sort is stable, so entries at equal
// distance keep catalog load order.
func (s *SearchService) Search(ctx context.Context, req models.SearchRequest) (*models.SearchResult, error) {
	if req.RadiusKm <= 0 {
		return nil, fmt.Errorf("service: radius must be positive, got %f", req.RadiusKm)
	}

	var center models.Coordinate
	switch {
	case req.Coordinate != nil:
		center = *req.Coordinate
	case strings.TrimSpace(req.Location) != "":
		coord, err := s.geocoder.Geocode(ctx, req.Location, req.CountryCode)
		if err != nil {
			return nil, fmt.Errorf("service: failed to resolve location %q: %w", req.Location, err)
		}
		center = coord
	default:
		return nil, fmt.Errorf("service: either a location or a coordinate is required")
	}

	entries := make([]models.CatalogEntry, 0)
	for _, e := range s.table.FilterCountry(req.CountryCode) {
		if !e.HasCoordinate() {
			continue
		}
		dist := geo.DistanceKm(center, *e.Coordinate)
		if dist > req.RadiusKm {
			continue
		}
		e.DistanceKm = &dist
		entries = append(entries, e)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return *entries[i].DistanceKm < *entries[j].DistanceKm
	})

	return &models.SearchResult{Center: center, Entries: entries}, nil
}

// StudioNames returns the distinct studio chain names in the result, for
// filter population.
func (s *SearchService) StudioNames(result *models.SearchResult) map[string]struct{} {
	names := make(map[string]struct{})
	if result == nil {
		return names
	}
	for _, e := range result.Entries {
		if e.Name != "" {
			names[e.Name] = struct{}{}
		}
	}
	return names
}
