package domain

// PlanetPeriod is one block of a planetary life cycle: the years and ages
// during which a planet rules.
type PlanetPeriod struct {
	Planet    string `json:"planet"`
	StartYear int    `json:"start_year"`
	EndYear   int    `json:"end_year"`
	StartAge  int    `json:"start_age"`
	EndAge    int    `json:"end_age"`
}

// InfluenceSources are the per-source planets feeding the combined
// influence: ruling planet of the year, of the hour and of the weekday.
type InfluenceSources struct {
	Year    string `json:"year,omitempty"`
	Hour    string `json:"hour,omitempty"`
	Weekday string `json:"weekday,omitempty"`
}

// InfluenceTexts are the three rendering levels of a combined influence.
type InfluenceTexts struct {
	Short  string `json:"short"`
	Medium string `json:"medium"`
	Long   string `json:"long"`
}

// TattvicReport is the weighted combination of influence sources with the
// dominant planet, its tattva and the life phase for the person's age.
type TattvicReport struct {
	Sources        InfluenceSources `json:"sources"`
	Combined       map[string]int   `json:"combined"`
	Dominant       string           `json:"dominant"`
	Tattva         string           `json:"tattva"`
	Phase          string           `json:"phase"`
	Interpretation InfluenceTexts   `json:"interpretation"`
}
