package service

import (
	"context"
	"sort"

	"greenfitness-api/internal/geo"
	"greenfitness-api/internal/models"

	"github.com/rs/zerolog/log"
)

// StationService fetches charging stations around a selected catalog entry.
type StationService struct {
	client StationClient
}

// StationClient interface for dependency injection.
type StationClient interface {
	Nearby(ctx context.Context, coord models.Coordinate, radiusKm float64, maxResults int, countryCode string) ([]models.ChargingStation, error)
}

// NewStationService creates a new station service.
func NewStationService(client StationClient) *StationService {
	return &StationService{client: client}
}

// Nearby returns charging stations within radiusKm of coord, nearest first.
// The upstream API's radius handling is advisory, so every station's distance
// is recomputed locally and the radius re-applied. A failed upstream call is
// logged and degrades to an empty list; it never aborts the interaction.
func (s *StationService) Nearby(ctx context.Context, coord models.Coordinate, radiusKm float64, maxResults int, countryCode string) []models.ChargingStation {
	fetched, err := s.client.Nearby(ctx, coord, radiusKm, maxResults, countryCode)
	if err != nil {
		log.Error().Err(err).
			Float64("lat", coord.Lat).
			Float64("lon", coord.Lon).
			Msg("charging station lookup degraded to empty result")
		return []models.ChargingStation{}
	}

	stations := make([]models.ChargingStation, 0, len(fetched))
	for _, st := range fetched {
		if !geo.ValidLatLon(st.Latitude, st.Longitude) {
			continue
		}
		dist := geo.DistanceKm(coord, models.Coordinate{Lat: st.Latitude, Lon: st.Longitude})
		if dist > radiusKm {
			continue
		}
		st.DistanceKm = dist
		stations = append(stations, st)
	}

	sort.SliceStable(stations, func(i, j int) bool {
		return stations[i].DistanceKm < stations[j].DistanceKm
	})

	if maxResults > 0 && len(stations) > maxResults {
		stations = stations[:maxResults]
	}
	return stations
}
