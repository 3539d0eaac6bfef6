package domain

import "time"

// NatalRequest is sent to the ephemeris service to compute a natal chart.
type NatalRequest struct {
	Name      string    `json:"name"`
	Datetime  time.Time `json:"datetime"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timezone  string    `json:"timezone"`
	// HouseSystem is a single-letter Swiss Ephemeris house system code.
	HouseSystem string `json:"house_system,omitempty"`
}

// NatalPositions is the raw ephemeris answer: longitudes per planet plus
// house cusps and angles. Cusps is 13 entries with index 1..12 meaningful;
// it is empty when the birth time was unknown.
type NatalPositions struct {
	JulianDay float64                    `json:"jd"`
	Planets   map[string]EphemerisPlanet `json:"planets"`
	Cusps     []float64                  `json:"cusps,omitempty"`
	Ascendant *float64                   `json:"ascendant,omitempty"`
	MC        *float64                   `json:"mc,omitempty"`
}

// EphemerisPlanet is one body as returned by the ephemeris service.
type EphemerisPlanet struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Distance  float64 `json:"distance"`
}

// GeoPlace is a resolved place from the geocoder.
type GeoPlace struct {
	DisplayName string  `json:"display_name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Timezone    string  `json:"timezone,omitempty"`
}
