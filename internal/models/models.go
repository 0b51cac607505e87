package models

// Coordinate is a WGS84 latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64 `json:"latitude"`
	Lon float64 `json:"longitude"`
}

// CatalogEntry represents a single fitness studio loaded from a catalog source.
// Optional fields are pointers: nil means the source had no value, which keeps
// "absent" distinct from an empty or placeholder string. Name is stored
// normalized (trimmed, lowercased) so all matching is case-insensitive.
type CatalogEntry struct {
	Name         string      `json:"name"`
	City         string      `json:"city"`
	CountryCode  string      `json:"country_code"`
	Street       *string     `json:"street,omitempty"`
	HouseNumber  *string     `json:"house_number,omitempty"`
	PostalCode   *string     `json:"postal_code,omitempty"`
	Phone        *string     `json:"phone,omitempty"`
	Website      *string     `json:"website,omitempty"`
	OpeningHours *string     `json:"opening_hours,omitempty"`
	Coordinate   *Coordinate `json:"coordinate,omitempty"`
	// DistanceKm is set only on entries returned from a coordinate-based
	// search. nil means "distance unknown", never zero.
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

// HasCoordinate reports whether the entry carries a usable coordinate.
func (e *CatalogEntry) HasCoordinate() bool {
	return e.Coordinate != nil
}

// ChargingStation is a request-scoped record returned by the external POI API.
// It is never persisted. Text fields are always present; upstream omissions
// are normalized to the charging package's Unknown marker.
type ChargingStation struct {
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	City       string  `json:"city"`
	Country    string  `json:"country"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	DistanceKm float64 `json:"distance_km"`
}

// SearchRequest describes one catalog search. Either Location (free text, to
// be geocoded) or Coordinate must be set; Coordinate wins when both are.
type SearchRequest struct {
	Location    string      `json:"location,omitempty"`
	Coordinate  *Coordinate `json:"coordinate,omitempty"`
	CountryCode string      `json:"country_code"`
	RadiusKm    float64     `json:"radius_km"`
}

// SearchResult is the outcome of a successful search: the resolved query
// center and the matching entries, distance-annotated and sorted ascending.
// An empty Entries slice is a valid result, distinct from a resolution
// failure (which surfaces as an error, not a result).
type SearchResult struct {
	Center  Coordinate     `json:"center"`
	Entries []CatalogEntry `json:"entries"`
}
