package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the service, read from configs/app.env
// and overridable through environment variables.
type Config struct {
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`

	// Comma-separated list of catalog CSV files, one per country.
	CatalogSources string `mapstructure:"CATALOG_SOURCES"`
	BoundaryDir    string `mapstructure:"BOUNDARY_DIR"`

	GeocodeBaseURL   string `mapstructure:"GEOCODE_BASE_URL"`
	GeocodeCacheSize int    `mapstructure:"GEOCODE_CACHE_SIZE"`

	ChargingBaseURL string `mapstructure:"CHARGING_BASE_URL"`
	// Open Charge Map credential. Required: startup fails without it.
	OpenMapAPIKey string `mapstructure:"OPEN_MAP_API_KEY"`

	RoutingBaseURL  string `mapstructure:"ROUTING_BASE_URL"`
	OpenRouteAPIKey string `mapstructure:"OPEN_ROUTE_API_KEY"`

	// Applied to every outbound HTTP call.
	HTTPTimeout time.Duration `mapstructure:"HTTP_TIMEOUT"`
}

// LoadConfig reads configuration from the given directory and the
// environment.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("CATALOG_SOURCES", "")
	v.SetDefault("BOUNDARY_DIR", "data/boundaries")
	v.SetDefault("GEOCODE_BASE_URL", "https://nominatim.openstreetmap.org")
	v.SetDefault("GEOCODE_CACHE_SIZE", 32)
	v.SetDefault("CHARGING_BASE_URL", "https://api.openchargemap.io")
	v.SetDefault("OPEN_MAP_API_KEY", "")
	v.SetDefault("ROUTING_BASE_URL", "https://api.openrouteservice.org")
	v.SetDefault("OPEN_ROUTE_API_KEY", "")
	v.SetDefault("HTTP_TIMEOUT", "10s")

	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		// A missing file is fine; defaults plus environment still apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = v.Unmarshal(&config)
	return
}
