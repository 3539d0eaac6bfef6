package readings

// CreateReadingRequest is the inbound payload for generating a reading.
type CreateReadingRequest struct {
	Name       string   `json:"name" binding:"required"`
	BirthDate  string   `json:"birth_date" binding:"required"` // 2006-01-02
	BirthTime  string   `json:"birth_time,omitempty"`          // 15:04
	BirthPlace string   `json:"birth_place,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	Timezone   string   `json:"timezone,omitempty"`
	Method     string   `json:"method,omitempty"`     // pythagorean | cabalistic
	CycleMode  string   `json:"cycle_mode,omitempty"` // astrologico | teosofico | maior
}
