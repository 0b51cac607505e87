package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"greenfitness-api/internal/geo"
	"greenfitness-api/internal/models"

	"github.com/rs/zerolog/log"
)

// Required column headers. The catalog files are exported from OSM extracts
// and keep the OSM tag names.
var requiredColumns = []string{
	"name",
	"addr:city",
	"longitude",
	"latitude",
	"opening_hours",
	"addr:country",
	"contact:phone",
	"website",
	"addr:street",
	"addr:housenumber",
	"addr:postcode",
}

// Report describes what happened during a load: which sources were skipped
// and how many rows were dropped or kept. Exposed for diagnostics so a bad
// source file degrades visibly instead of silently.
type Report struct {
	SourcesLoaded  int
	SkippedSources []SkippedSource
	MalformedRows  int
	NoCoordinate   int
	LoadedRows     int
}

// SkippedSource records one source that failed to load and why.
type SkippedSource struct {
	Path   string
	Reason string
}

// Table is the in-memory catalog. It is built once at startup and read-only
// afterwards; filter methods return fresh slices and never mutate the table.
type Table struct {
	entries []models.CatalogEntry
}

// Load reads every source file, keeping only the required column set, and
// concatenates them in argument order. A source missing a required column is
// skipped and reported, not fatal; the remaining sources still load. Zero
// sources yields an empty, valid table.
func Load(sources []string) (*Table, Report, error) {
	var (
		table  Table
		report Report
	)

	for _, src := range sources {
		entries, malformed, noCoord, err := loadSource(src)
		if err != nil {
			log.Error().Err(err).Str("source", src).Msg("skipping catalog source")
			report.SkippedSources = append(report.SkippedSources, SkippedSource{Path: src, Reason: err.Error()})
			continue
		}
		table.entries = append(table.entries, entries...)
		report.SourcesLoaded++
		report.MalformedRows += malformed
		report.NoCoordinate += noCoord
	}

	report.LoadedRows = len(table.entries)
	return &table, report, nil
}

func loadSource(path string) (entries []models.CatalogEntry, malformed, noCoord int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("catalog: failed to open source: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, 0, 0, fmt.Errorf("catalog: failed to read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.TrimSpace(col)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, 0, 0, fmt.Errorf("catalog: source missing required column %q", col)
		}
	}

	field := func(record []string, col string) string {
		i := index[col]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			malformed++
			continue
		}

		entry := models.CatalogEntry{
			Name:         NormalizeName(field(record, "name")),
			City:         field(record, "addr:city"),
			CountryCode:  field(record, "addr:country"),
			Street:       optional(field(record, "addr:street")),
			HouseNumber:  optional(field(record, "addr:housenumber")),
			PostalCode:   optional(field(record, "addr:postcode")),
			Phone:        optional(field(record, "contact:phone")),
			Website:      optional(field(record, "website")),
			OpeningHours: optional(field(record, "opening_hours")),
			Coordinate:   geo.ParseCoordinate(field(record, "latitude"), field(record, "longitude")),
		}
		if entry.Coordinate == nil {
			noCoord++
		}
		entries = append(entries, entry)
	}

	return entries, malformed, noCoord, nil
}

// NormalizeName trims and lowercases a studio name. Idempotent; applied once
// at load so every later name comparison is a plain equality check.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns the table rows in load order. Callers must not mutate the
// returned slice.
func (t *Table) Entries() []models.CatalogEntry {
	return t.entries
}

// FilterCountry returns the entries whose country code matches exactly.
// The match is deliberately case- and whitespace-sensitive: catalog sources
// carry clean ISO codes and the query side passes them through verbatim.
func (t *Table) FilterCountry(countryCode string) []models.CatalogEntry {
	var out []models.CatalogEntry
	for _, e := range t.entries {
		if e.CountryCode == countryCode {
			out = append(out, e)
		}
	}
	return out
}

// FilterByName returns entries whose normalized name equals name (after
// normalizing the argument too).
func (t *Table) FilterByName(name string) []models.CatalogEntry {
	name = NormalizeName(name)
	var out []models.CatalogEntry
	for _, e := range t.entries {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}

// FilterByTown returns entries whose city contains town, case-insensitively.
func (t *Table) FilterByTown(town string) []models.CatalogEntry {
	town = strings.ToLower(strings.TrimSpace(town))
	if town == "" {
		return nil
	}
	var out []models.CatalogEntry
	for _, e := range t.entries {
		if strings.Contains(strings.ToLower(e.City), town) {
			out = append(out, e)
		}
	}
	return out
}
