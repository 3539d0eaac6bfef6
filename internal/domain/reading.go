package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReadingRequest is the input for a full reading: who, born when and where.
// BirthTime and BirthPlace are optional; without a birth time the chart
// carries no houses or ascendant.
type ReadingRequest struct {
	Name       string           `json:"name"`
	BirthDate  time.Time        `json:"birth_date"`
	BirthTime  *time.Time       `json:"birth_time,omitempty"`
	BirthPlace string           `json:"birth_place,omitempty"`
	Latitude   *float64         `json:"latitude,omitempty"`
	Longitude  *float64         `json:"longitude,omitempty"`
	Timezone   string           `json:"timezone,omitempty"`
	Method     NumerologyMethod `json:"method,omitempty"`
	CycleMode  CycleMode        `json:"cycle_mode,omitempty"`
}

// ReadingReport aggregates every esoteric computation for one person.
type ReadingReport struct {
	Age        int                `json:"age"`
	Numerology *NumerologyReport  `json:"numerology"`
	Cabalistic *NumerologyReport  `json:"cabalistic,omitempty"`
	FirstCycle *FirstCycleReading `json:"first_cycle"`
	Cycle      *CycleReading      `json:"cycle"`
	CycleText  string             `json:"cycle_description,omitempty"`
	Arcanum    *ArcanumReading    `json:"arcanum"`
	Influences *TattvicReport     `json:"influences,omitempty"`
	Chart      *ChartSummary      `json:"chart,omitempty"`
	Potential  *PotentialReading  `json:"potential,omitempty"`
	Meanings   map[string]string  `json:"meanings,omitempty"`
}

// PotentialReading is the quantic potential: the raw quantic total with the
// meaning of its reduction.
type PotentialReading struct {
	Value   int    `json:"value"`
	Meaning string `json:"meaning"`
}

// Reading is the persisted record of a generated reading.
type Reading struct {
	ID             uuid.UUID      `db:"id" json:"id"`
	PersonName     string         `db:"person_name" json:"person_name"`
	BirthDate      time.Time      `db:"birth_date" json:"birth_date"`
	BirthTime      *time.Time     `db:"birth_time" json:"birth_time,omitempty"`
	BirthPlace     *string        `db:"birth_place" json:"birth_place,omitempty"`
	Latitude       *float64       `db:"latitude" json:"latitude,omitempty"`
	Longitude      *float64       `db:"longitude" json:"longitude,omitempty"`
	Report         *ReadingReport `db:"-" json:"report,omitempty"`
	ChartObjectKey *string        `db:"chart_object_key" json:"chart_object_key,omitempty"`
	Narrative      *string        `db:"narrative" json:"narrative,omitempty"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
}

// ReadingCreatedEvent is published to Kafka after a reading is stored.
type ReadingCreatedEvent struct {
	ReadingID  uuid.UUID `json:"reading_id"`
	PersonName string    `json:"person_name"`
	BirthDate  string    `json:"birth_date"`
	Method     string    `json:"method"`
	OccurredAt time.Time `json:"occurred_at"`
}
