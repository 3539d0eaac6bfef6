package influences

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbautistacode/etheria/internal/domain"
)

func TestToCanonical(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Lua", "Moon"},
		{"lua", "Moon"},
		{"Mercúrio", "Mercury"},
		{"mercurio", "Mercury"},
		{"Júpiter", "Jupiter"},
		{"SATURNO", "Saturn"},
		{"Moon", "Moon"},
		{"moon", "Moon"},
		{"Plutão", "Pluto"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, toCanonical(tt.in), tt.in)
	}
}

func TestBuildMajorCycles(t *testing.T) {
	svc := New(slog.Default())

	periods, err := svc.BuildMajorCycles(1990, 40, "")
	require.NoError(t, err)
	require.NotEmpty(t, periods)

	// First block: Moon for 10 years.
	first := periods[0]
	assert.Equal(t, "Moon", first.Planet)
	assert.Equal(t, 1990, first.StartYear)
	assert.Equal(t, 1999, first.EndYear)
	assert.Equal(t, 0, first.StartAge)
	assert.Equal(t, 9, first.EndAge)

	// Second block: Mercury for 8 years.
	second := periods[1]
	assert.Equal(t, "Mercury", second.Planet)
	assert.Equal(t, 2000, second.StartYear)
	assert.Equal(t, 10, second.StartAge)
	assert.Equal(t, 17, second.EndAge)

	// Blocks are contiguous.
	for i := 1; i < len(periods); i++ {
		assert.Equal(t, periods[i-1].EndAge+1, periods[i].StartAge)
		assert.Equal(t, periods[i-1].EndYear+1, periods[i].StartYear)
	}

	assert.Equal(t, "Moon", PlanetForAge(periods, 5))
	assert.Equal(t, "Mercury", PlanetForAge(periods, 12))
	assert.Equal(t, "Mercury", PlanetForYear(periods, 2003))
}

func TestBuildMajorCyclesStartPlanet(t *testing.T) {
	svc := New(slog.Default())

	periods, err := svc.BuildMajorCycles(1990, 10, "Marte")
	require.NoError(t, err)
	assert.Equal(t, "Mars", periods[0].Planet)

	_, err = svc.BuildMajorCycles(1990, 10, "Cometa")
	assert.True(t, domain.IsBusinessError(err))
}

func TestPhaseForAge(t *testing.T) {
	assert.Equal(t, "Física", PhaseForAge(0))
	assert.Equal(t, "Física", PhaseForAge(39))
	assert.Equal(t, "Psíquica", PhaseForAge(40))
	assert.Equal(t, "Espiritual", PhaseForAge(80))
	assert.Equal(t, "Espiritual", PhaseForAge(200))
}

func TestHourAndWeekdayPlanets(t *testing.T) {
	assert.Equal(t, "Sun", WeekdayPlanet(time.Sunday))
	assert.Equal(t, "Moon", WeekdayPlanet(time.Monday))
	assert.Equal(t, "Saturn", WeekdayPlanet(time.Saturday))

	// The planetary day opens with its own ruler at 06:00.
	assert.Equal(t, "Sun", HourPlanet(time.Sunday, 6))
	assert.Equal(t, "Moon", HourPlanet(time.Monday, 6))
	// 07:00 advances one step in the Chaldean order after Sun.
	assert.Equal(t, "Venus", HourPlanet(time.Sunday, 7))
	// Sequence wraps every seven hours.
	assert.Equal(t, "Sun", HourPlanet(time.Sunday, 13))
}

func TestHourPlanetBeforeDayStart(t *testing.T) {
	// Hours 00..05 still run on the previous weekday's sequence.
	// Monday 03:00 is the 21st hour of Sunday's day: Sun again.
	assert.Equal(t, "Sun", HourPlanet(time.Monday, 3))
	// Sunday 05:00 is the 23rd hour of Saturday's day: Saturn + 23 = Mars.
	assert.Equal(t, "Mars", HourPlanet(time.Sunday, 5))
	// Sunday 00:00 is the 18th hour of Saturday's day: Saturn + 18 = Venus.
	assert.Equal(t, "Venus", HourPlanet(time.Sunday, 0))
}

func TestInterpretAtEarlyMorning(t *testing.T) {
	svc := New(slog.Default())

	// Monday 2026-01-05 03:00: the hour source comes from Sunday's
	// planetary day, the weekday source from the calendar Monday.
	at := time.Date(2026, time.January, 5, 3, 0, 0, 0, time.UTC)
	rep, err := svc.InterpretAt(1990, at, 36)
	require.NoError(t, err)

	assert.Equal(t, "Sun", rep.Sources.Hour)
	assert.Equal(t, "Moon", rep.Sources.Weekday)
	assert.Equal(t, "Saturn", rep.Sources.Year)
	assert.Equal(t, "Saturn", rep.Dominant)
}

func TestCombine(t *testing.T) {
	svc := New(slog.Default())

	tally, dominant := svc.Combine(domain.InfluenceSources{
		Year:    "Lua",
		Hour:    "Lua",
		Weekday: "Mercúrio",
	}, nil)

	assert.Equal(t, "Moon", dominant)
	assert.Equal(t, 5, tally["Moon"]) // year 3 + hour 2
	assert.Equal(t, 1, tally["Mercury"])
}

func TestInterpret(t *testing.T) {
	svc := New(slog.Default())

	rep := svc.Interpret(domain.InfluenceSources{Year: "Saturno"}, 45)

	assert.Equal(t, "Saturn", rep.Dominant)
	assert.Equal(t, "Vayu", rep.Tattva)
	assert.Equal(t, "Psíquica", rep.Phase)
	assert.Contains(t, rep.Interpretation.Short, "Planeta dominante: Saturno")
	assert.Contains(t, rep.Interpretation.Medium, "tatwa Vayu")
	assert.Contains(t, rep.Interpretation.Long, "Fase atual: Psíquica (idade 45)")
}

func TestInterpretNoSources(t *testing.T) {
	svc := New(slog.Default())

	rep := svc.Interpret(domain.InfluenceSources{}, 10)
	assert.Empty(t, rep.Dominant)
	assert.Equal(t, "Nenhum planeta dominante identificado.", rep.Interpretation.Short)
}
