package domain

// PlanetPosition is one row of the natal positions table.
type PlanetPosition struct {
	Planet    string  `json:"planet"`
	Longitude float64 `json:"longitude"`
	Sign      string  `json:"sign"`
	Degree    float64 `json:"degree"`
	SignIndex int     `json:"sign_index"`
	House     int     `json:"house,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Distance  float64 `json:"distance,omitempty"`
}

// Aspect is an angular relation between two planets within orb.
type Aspect struct {
	First  string  `json:"first"`
	Second string  `json:"second"`
	Name   string  `json:"name"`
	Angle  float64 `json:"angle"`
	Orb    float64 `json:"orb"`
}

// HouseCusp describes one house cusp of a natal chart.
type HouseCusp struct {
	House     int     `json:"house"`
	Longitude float64 `json:"cusp_longitude"`
	Sign      string  `json:"cusp_sign"`
	Degree    float64 `json:"cusp_degree"`
}

// ChartPoint is a single computed chart point such as the ascendant or MC.
type ChartPoint struct {
	Longitude float64 `json:"longitude"`
	Sign      string  `json:"sign"`
	Degree    float64 `json:"degree_in_sign"`
}

// ChartSummary is the structured natal chart: positions, houses, aspects.
// Cusps, Ascendant and MC are nil when the birth time is unknown.
type ChartSummary struct {
	JulianDay float64          `json:"jd"`
	Planets   []PlanetPosition `json:"planets"`
	Cusps     []HouseCusp      `json:"cusps,omitempty"`
	Ascendant *ChartPoint      `json:"ascendant,omitempty"`
	MC        *ChartPoint      `json:"mc,omitempty"`
	Aspects   []Aspect         `json:"aspects"`
}

// PlanetInterpretation holds the short and long reading for one placement.
type PlanetInterpretation struct {
	Planet string `json:"planet"`
	Short  string `json:"short"`
	Long   string `json:"long"`
}

// InterpretationStyle selects the voice of placement texts.
type InterpretationStyle string

const (
	StyleTechnical InterpretationStyle = "technical"
	StylePoetic    InterpretationStyle = "poetic"
)
