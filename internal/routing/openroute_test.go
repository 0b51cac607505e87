package routing

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"greenfitness-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirections(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v2/snap/driving-car":
			w.Write([]byte(`{"locations":[{"location":[13.406,52.521]}]}`))
		case "/v2/directions/driving-car/geojson":
			assert.Equal(t, "test-key", r.Header.Get("Authorization"))
			body, _ := io.ReadAll(r.Body)
			var req struct {
				Coordinates [][2]float64 `json:"coordinates"`
			}
			require.NoError(t, json.Unmarshal(body, &req))
			require.Len(t, req.Coordinates, 2)
			// Snapped coordinate, in lon/lat order.
			assert.Equal(t, [2]float64{13.406, 52.521}, req.Coordinates[0])
			w.Write([]byte(`{"type":"FeatureCollection","features":[]}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	client := New(srv.URL, "test-key", 5*time.Second)
	route, err := client.Directions(context.Background(),
		models.Coordinate{Lat: 52.52, Lon: 13.405},
		models.Coordinate{Lat: 52.53, Lon: 13.41})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"FeatureCollection","features":[]}`, string(route))
}

func TestDirectionsSnapFailureFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v2/snap/driving-car":
			w.WriteHeader(http.StatusBadGateway)
		case "/v2/directions/driving-car/geojson":
			body, _ := io.ReadAll(r.Body)
			var req struct {
				Coordinates [][2]float64 `json:"coordinates"`
			}
			require.NoError(t, json.Unmarshal(body, &req))
			// Raw coordinates survive a failed snap.
			assert.Equal(t, [2]float64{13.405, 52.52}, req.Coordinates[0])
			w.Write([]byte(`{"type":"FeatureCollection"}`))
		}
	}))
	defer srv.Close()

	client := New(srv.URL, "test-key", 5*time.Second)
	_, err := client.Directions(context.Background(),
		models.Coordinate{Lat: 52.52, Lon: 13.405},
		models.Coordinate{Lat: 52.53, Lon: 13.41})
	require.NoError(t, err)
}

func TestDirectionsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(srv.URL, "test-key", 5*time.Second)
	_, err := client.Directions(context.Background(),
		models.Coordinate{Lat: 52.52, Lon: 13.405},
		models.Coordinate{Lat: 52.53, Lon: 13.41})
	assert.Error(t, err)
}
