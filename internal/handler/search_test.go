package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"greenfitness-api/internal/geocode"
	"greenfitness-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSearchService is a mock implementation of the SearchService interface.
type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) Search(ctx context.Context, req models.SearchRequest) (*models.SearchResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SearchResult), args.Error(1)
}

func performSearch(t *testing.T, svc SearchService, query string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	req := httptest.NewRequest(http.MethodGet, "/search?"+query, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	NewSearchHandler(svc).Search(c)
	return w
}

func TestSearchHandler(t *testing.T) {
	dist := 0.0
	okResult := &models.SearchResult{
		Center: models.Coordinate{Lat: 52.52, Lon: 13.405},
		Entries: []models.CatalogEntry{
			{Name: "studioa", City: "Berlin", CountryCode: "DE", DistanceKm: &dist},
		},
	}

	tests := []struct {
		name           string
		query          string
		mockResult     *models.SearchResult
		mockError      error
		expectService  bool
		expectedStatus int
	}{
		{
			name:           "missing country",
			query:          "q=Berlin&radius_km=5",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing radius",
			query:          "q=Berlin&country=DE",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "non-numeric radius",
			query:          "q=Berlin&country=DE&radius_km=abc",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "neither text nor coordinate",
			query:          "country=DE&radius_km=5",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad coordinate pair",
			query:          "lat=52.52&lon=abc&country=DE&radius_km=5",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "successful text search",
			query:          "q=Berlin&country=DE&radius_km=5",
			mockResult:     okResult,
			expectService:  true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "successful coordinate search",
			query:          "lat=52.52&lon=13.405&country=DE&radius_km=5",
			mockResult:     okResult,
			expectService:  true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "location not found",
			query:          "q=Zzzzznotacity&country=DE&radius_km=5",
			mockError:      geocode.ErrNotFound,
			expectService:  true,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "service error",
			query:          "q=Berlin&country=DE&radius_km=5",
			mockError:      assert.AnError,
			expectService:  true,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockSearchService)
			if tt.expectService {
				mockSvc.On("Search", mock.Anything, mock.Anything).Return(tt.mockResult, tt.mockError)
			}

			w := performSearch(t, mockSvc, tt.query)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestSearchHandlerEmptyResultIsOK(t *testing.T) {
	mockSvc := new(MockSearchService)
	mockSvc.On("Search", mock.Anything, mock.Anything).Return(&models.SearchResult{
		Center:  models.Coordinate{Lat: 52.52, Lon: 13.405},
		Entries: []models.CatalogEntry{},
	}, nil)

	w := performSearch(t, mockSvc, "q=Berlin&country=FR&radius_km=5")

	require.Equal(t, http.StatusOK, w.Code)
	var result models.SearchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.NotNil(t, result.Entries)
	assert.Empty(t, result.Entries)
}

func TestSearchHandlerPassesParsedRequest(t *testing.T) {
	mockSvc := new(MockSearchService)
	mockSvc.On("Search", mock.Anything, models.SearchRequest{
		Coordinate:  &models.Coordinate{Lat: 52.52, Lon: 13.405},
		CountryCode: "DE",
		RadiusKm:    2.5,
	}).Return(&models.SearchResult{Entries: []models.CatalogEntry{}}, nil)

	w := performSearch(t, mockSvc, "lat=52.52&lon=13.405&country=DE&radius_km=2.5")

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}
