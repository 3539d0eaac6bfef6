package domain

// Arcanum is a major arcana card correlated with a planet or sign.
type Arcanum struct {
	Number   int      `json:"arcano"`
	Name     string   `json:"name"`
	Keywords []string `json:"keywords,omitempty"`
}

// ArcanumReading is an arcanum with its rendered texts, optionally bound to
// the natal house it influences.
type ArcanumReading struct {
	Arcanum    Arcanum `json:"arcanum"`
	House      int     `json:"house,omitempty"`
	HouseTheme string  `json:"house_theme,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
	Short      string  `json:"short"`
	Long       string  `json:"long"`
}
