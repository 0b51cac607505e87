package geo

import (
	"testing"

	"greenfitness-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidCoordinate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "empty string", value: "", want: false},
		{name: "non-numeric", value: "abc", want: false},
		{name: "zero", value: "0", want: false},
		{name: "zero float", value: "0.0", want: false},
		{name: "positive", value: "52.52", want: true},
		{name: "negative", value: "-13.405", want: true},
		{name: "whitespace padded", value: " 48.85 ", want: true},
		{name: "integer", value: "7", want: true},
		{name: "trailing garbage", value: "52.52abc", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidCoordinate(tt.value))
		})
	}
}

func TestParseCoordinate(t *testing.T) {
	c := ParseCoordinate("52.52", "13.405")
	require.NotNil(t, c)
	assert.Equal(t, 52.52, c.Lat)
	assert.Equal(t, 13.405, c.Lon)

	assert.Nil(t, ParseCoordinate("0", "13.405"))
	assert.Nil(t, ParseCoordinate("52.52", ""))
	assert.Nil(t, ParseCoordinate("none", "13.405"))
}

func TestDistanceKm(t *testing.T) {
	berlin := models.Coordinate{Lat: 52.52, Lon: 13.405}
	nearby := models.Coordinate{Lat: 52.53, Lon: 13.41}
	paris := models.Coordinate{Lat: 48.8566, Lon: 2.3522}

	// Reflexivity and symmetry.
	assert.Zero(t, DistanceKm(berlin, berlin))
	assert.Equal(t, DistanceKm(berlin, paris), DistanceKm(paris, berlin))

	// Roughly 1.1-1.2km between the two Berlin points.
	assert.InDelta(t, 1.16, DistanceKm(berlin, nearby), 0.03)

	// Berlin-Paris is about 878km.
	assert.InDelta(t, 878, DistanceKm(berlin, paris), 5)
}

func TestValidLatLon(t *testing.T) {
	assert.True(t, ValidLatLon(52.52, 13.405))
	assert.False(t, ValidLatLon(0, 13.405))
	assert.False(t, ValidLatLon(52.52, 0))
}
