package boundary

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrNotFound means no administrative area matched the requested name.
var ErrNotFound = errors.New("boundary: no matching area")

// Property keys checked for an area name, in match order.
var nameKeys = []string{"name", "name:de", "name:fr", "alt_name"}

// Store serves administrative-area boundary polygons for map display.
// One GeoJSON FeatureCollection per country, loaded lazily on first lookup
// and kept for the process lifetime.
type Store struct {
	dir string

	mu      sync.Mutex
	loaded  map[string][]area
	missing map[string]struct{}
}

type area struct {
	names    []string
	geometry json.RawMessage
}

// NewStore creates a Store reading boundary files from dir. Files are named
// boundaries_<lowercase country code>.geojson.
func NewStore(dir string) *Store {
	return &Store{
		dir:     dir,
		loaded:  make(map[string][]area),
		missing: make(map[string]struct{}),
	}
}

// Find returns the boundary geometry for the named administrative area in
// the given country. Matching is fuzzy: case-insensitive, accent-insensitive
// and substring-based, so "munchen" finds "München". The first matching
// feature wins.
func (s *Store) Find(name, countryCode string) (json.RawMessage, error) {
	query := fold(name)
	if query == "" {
		return nil, fmt.Errorf("boundary: name cannot be empty")
	}

	areas, err := s.country(countryCode)
	if err != nil {
		return nil, err
	}

	for _, a := range areas {
		for _, candidate := range a.names {
			if strings.Contains(candidate, query) {
				return a.geometry, nil
			}
		}
	}
	return nil, ErrNotFound
}

func (s *Store) country(countryCode string) ([]area, error) {
	code := strings.ToLower(strings.TrimSpace(countryCode))
	if code == "" {
		return nil, fmt.Errorf("boundary: country code cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if areas, ok := s.loaded[code]; ok {
		return areas, nil
	}
	if _, ok := s.missing[code]; ok {
		return nil, ErrNotFound
	}

	path := filepath.Join(s.dir, "boundaries_"+code+".geojson")
	areas, err := loadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.missing[code] = struct{}{}
			return nil, ErrNotFound
		}
		return nil, err
	}

	s.loaded[code] = areas
	return areas, nil
}

func loadFile(path string) ([]area, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var fc struct {
		Features []struct {
			Properties map[string]any  `json:"properties"`
			Geometry   json.RawMessage `json:"geometry"`
		} `json:"features"`
	}
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("boundary: failed to parse %s: %w", path, err)
	}

	areas := make([]area, 0, len(fc.Features))
	for _, f := range fc.Features {
		var names []string
		for _, key := range nameKeys {
			if v, ok := f.Properties[key].(string); ok && v != "" {
				names = append(names, fold(v))
			}
		}
		if len(names) == 0 || len(f.Geometry) == 0 {
			continue
		}
		areas = append(areas, area{names: names, geometry: f.Geometry})
	}
	return areas, nil
}

// fold lowercases s and strips diacritics, so comparisons ignore both case
// and accents.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
