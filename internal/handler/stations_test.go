package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"greenfitness-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockStationService is a mock implementation of the StationService interface.
type MockStationService struct {
	mock.Mock
}

func (m *MockStationService) Nearby(ctx context.Context, coord models.Coordinate, radiusKm float64, maxResults int, countryCode string) []models.ChargingStation {
	args := m.Called(ctx, coord, radiusKm, maxResults, countryCode)
	return args.Get(0).([]models.ChargingStation)
}

func performStations(t *testing.T, svc StationService, query string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	req := httptest.NewRequest(http.MethodGet, "/stations?"+query, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	NewStationsHandler(svc).Stations(c)
	return w
}

func TestStationsHandler(t *testing.T) {
	mockSvc := new(MockStationService)
	mockSvc.On("Nearby", mock.Anything, models.Coordinate{Lat: 52.52, Lon: 13.405}, 5.0, 25, "DE").
		Return([]models.ChargingStation{
			{Name: "Ladepark Mitte", Latitude: 52.521, Longitude: 13.406, DistanceKm: 0.13},
		})

	w := performStations(t, mockSvc, "lat=52.52&lon=13.405&radius_km=5&max=25&country=DE")

	require.Equal(t, http.StatusOK, w.Code)
	var stations []models.ChargingStation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stations))
	require.Len(t, stations, 1)
	assert.Equal(t, "Ladepark Mitte", stations[0].Name)
	mockSvc.AssertExpectations(t)
}

func TestStationsHandlerDefaultsMax(t *testing.T) {
	mockSvc := new(MockStationService)
	mockSvc.On("Nearby", mock.Anything, mock.Anything, 5.0, defaultMaxStations, "").
		Return([]models.ChargingStation{})

	w := performStations(t, mockSvc, "lat=52.52&lon=13.405&radius_km=5")

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestStationsHandlerValidation(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "missing coordinates", query: "radius_km=5"},
		{name: "bad latitude", query: "lat=abc&lon=13.4&radius_km=5"},
		{name: "missing radius", query: "lat=52.52&lon=13.405"},
		{name: "negative radius", query: "lat=52.52&lon=13.405&radius_km=-2"},
		{name: "bad max", query: "lat=52.52&lon=13.405&radius_km=5&max=zero"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performStations(t, new(MockStationService), tt.query)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
