package handler

import (
	"net/http"
	"sort"

	"greenfitness-api/internal/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the loaded catalog's filter indexes and load
// diagnostics.
type CatalogHandler struct {
	table  *catalog.Table
	report catalog.Report
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(table *catalog.Table, report catalog.Report) *CatalogHandler {
	return &CatalogHandler{table: table, report: report}
}

// Studios handles GET /studios: the distinct studio chain names. The index
// itself is unordered; sorted here only for stable display.
func (h *CatalogHandler) Studios(c *gin.Context) {
	c.JSON(http.StatusOK, sortedKeys(h.table.DistinctNames()))
}

// Towns handles GET /towns: the distinct town names.
func (h *CatalogHandler) Towns(c *gin.Context) {
	c.JSON(http.StatusOK, sortedKeys(h.table.DistinctTowns()))
}

// LoadReport handles GET /catalog/report: load diagnostics (skipped sources,
// dropped rows).
func (h *CatalogHandler) LoadReport(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"sources_loaded":  h.report.SourcesLoaded,
		"skipped_sources": len(h.report.SkippedSources),
		"malformed_rows":  h.report.MalformedRows,
		"no_coordinate":   h.report.NoCoordinate,
		"loaded_rows":     h.report.LoadedRows,
	})
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
