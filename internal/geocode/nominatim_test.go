package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"greenfitness-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(srv.URL, 5*time.Second, 8)
	require.NoError(t, err)
	return client
}

func TestGeocode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Berlin", r.URL.Query().Get("q"))
		assert.Equal(t, "de", r.URL.Query().Get("countrycodes"))
		w.Write([]byte(`[{"lat":"52.52","lon":"13.405","display_name":"Berlin, Deutschland"}]`))
	})

	coord, err := client.Geocode(context.Background(), "Berlin", "DE")
	require.NoError(t, err)
	assert.Equal(t, models.Coordinate{Lat: 52.52, Lon: 13.405}, coord)
}

func TestGeocodeNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	_, err := client.Geocode(context.Background(), "Zzzzznotacity", "DE")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGeocodeEmptyQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for empty query")
	})

	_, err := client.Geocode(context.Background(), "  ", "DE")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestGeocodeServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.Geocode(context.Background(), "Berlin", "DE")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestGeocodeCachesRepeatedQueries(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`[{"lat":"52.52","lon":"13.405"}]`))
	})

	for i := 0; i < 3; i++ {
		_, err := client.Geocode(context.Background(), "Berlin", "DE")
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), calls.Load())

	// Same text, different country scope is a different cache key.
	_, err := client.Geocode(context.Background(), "Berlin", "FR")
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestReverse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		w.Write([]byte(`{"display_name":"Alexanderplatz, Berlin"}`))
	})

	name, err := client.Reverse(context.Background(), models.Coordinate{Lat: 52.52, Lon: 13.405})
	require.NoError(t, err)
	assert.Equal(t, "Alexanderplatz, Berlin", name)
}
