package domain

// CycleMode selects the regent sequence used for year cycles.
type CycleMode string

const (
	CycleAstrological CycleMode = "astrologico"
	CycleTheosophical CycleMode = "teosofico"
	CycleMajor        CycleMode = "maior"
)

// Regency names the planetary regent of a given year within a cycle.
type Regency struct {
	Mode        CycleMode `json:"mode"`
	Year        int       `json:"year"`
	Planet      string    `json:"planet"`
	Description string    `json:"description,omitempty"`
}

// CycleReading is the regent for a person's age inside a repeating wheel
// (35-year minor wheel or 252-year major wheel).
type CycleReading struct {
	Mode      CycleMode `json:"mode"`
	Age       int       `json:"age"`
	CycleYear int       `json:"cycle_year"`
	Planet    string    `json:"planet"`
}

// FirstCycleReading is the one-year cycle derived from the inverted weekday
// of the birth day/month anchored to year 2000.
type FirstCycleReading struct {
	Planet        string `json:"planet"`
	WeekdayIndex  int    `json:"weekday_index"`
	InvertedIndex int    `json:"inverted_index"`
	Mode          string `json:"mode"`
}
