package main

import (
	"net/http"
	"strings"

	"greenfitness-api/internal/boundary"
	"greenfitness-api/internal/catalog"
	"greenfitness-api/internal/charging"
	"greenfitness-api/internal/config"
	"greenfitness-api/internal/geocode"
	"greenfitness-api/internal/handler"
	"greenfitness-api/internal/routing"
	"greenfitness-api/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// Credentials may live in a local .env; a missing file is fine.
	_ = godotenv.Load()

	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	// The catalog is loaded once and read-only afterwards.
	table, report, err := catalog.Load(splitSources(config.CatalogSources))
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load catalog")
	}
	log.Info().
		Int("rows", report.LoadedRows).
		Int("sources", report.SourcesLoaded).
		Int("skipped_sources", len(report.SkippedSources)).
		Int("malformed_rows", report.MalformedRows).
		Int("rows_without_coordinate", report.NoCoordinate).
		Msg("catalog loaded")

	geocoder, err := geocode.New(config.GeocodeBaseURL, config.HTTPTimeout, config.GeocodeCacheSize)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create geocoder")
	}

	// A missing POI credential is a configuration error: fail at startup,
	// not per request.
	chargingClient, err := charging.New(config.ChargingBaseURL, config.OpenMapAPIKey, config.HTTPTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create charging station client")
	}

	routingClient := routing.New(config.RoutingBaseURL, config.OpenRouteAPIKey, config.HTTPTimeout)
	boundaries := boundary.NewStore(config.BoundaryDir)

	// Initialize layers
	searchService := service.NewSearchService(table, geocoder)
	stationService := service.NewStationService(chargingClient)
	sessions := service.NewSessionStore()

	searchHandler := handler.NewSearchHandler(searchService)
	stationsHandler := handler.NewStationsHandler(stationService)
	geoCodeHandler := handler.NewGeoCodeHandler(geocoder)
	reverseGeocodeHandler := handler.NewReverseGeocodeHandler(geocoder)
	routeHandler := handler.NewRouteHandler(routingClient)
	boundaryHandler := handler.NewBoundaryHandler(boundaries)
	catalogHandler := handler.NewCatalogHandler(table, report)
	sessionHandler := handler.NewSessionHandler(sessions, searchService, stationService)

	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/search", searchHandler.Search)
	r.GET("/stations", stationsHandler.Stations)
	r.GET("/geocode", geoCodeHandler.GeoCode)
	r.GET("/reverse-geocode", reverseGeocodeHandler.ReverseGeocode)
	r.GET("/route", routeHandler.Route)
	r.GET("/boundary", boundaryHandler.Boundary)
	r.GET("/studios", catalogHandler.Studios)
	r.GET("/towns", catalogHandler.Towns)
	r.GET("/catalog/report", catalogHandler.LoadReport)

	r.POST("/sessions", sessionHandler.Create)
	r.GET("/sessions/:id", sessionHandler.Get)
	r.POST("/sessions/:id/search", sessionHandler.Search)
	r.POST("/sessions/:id/select", sessionHandler.Select)
	r.DELETE("/sessions/:id/selection", sessionHandler.ClearSelection)
	r.PUT("/sessions/:id/filters", sessionHandler.SetFilter)

	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func splitSources(sources string) []string {
	var out []string
	for _, s := range strings.Split(sources, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
