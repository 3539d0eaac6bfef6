package cycles

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbautistacode/etheria/internal/domain"
)

func newService() *Service {
	return New(Config{BaseYearAstro: 2025, BaseYearTeos: 2025, BaseYearMajor: 2017}, slog.Default())
}

func TestRegentByYear(t *testing.T) {
	svc := newService()

	tests := []struct {
		name   string
		year   int
		mode   domain.CycleMode
		planet string
	}{
		{"astro base year", 2025, domain.CycleAstrological, "Jupiter"},
		{"astro next year", 2026, domain.CycleAstrological, "Saturn"},
		{"astro wraps after seven", 2032, domain.CycleAstrological, "Jupiter"},
		{"astro before base", 2024, domain.CycleAstrological, "Mars"},
		{"theosophical base year", 2025, domain.CycleTheosophical, "Venus"},
		{"theosophical second", 2026, domain.CycleTheosophical, "Saturn"},
		{"major base year", 2017, domain.CycleMajor, "Saturn"},
		{"major second block", 2053, domain.CycleMajor, "Venus"},
		{"major last block", 2017 + 6*36, domain.CycleMajor, "Moon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := svc.RegentByYear(tt.year, tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.planet, reg.Planet)
			assert.NotEmpty(t, reg.Description)
		})
	}

	_, err := svc.RegentByYear(0, domain.CycleAstrological)
	assert.True(t, domain.IsBusinessError(err))
}

func TestCycleForAge(t *testing.T) {
	svc := newService()

	c, err := svc.CycleForAge(0, domain.CycleAstrological)
	require.NoError(t, err)
	assert.Equal(t, 1, c.CycleYear)

	c, err = svc.CycleForAge(35, domain.CycleAstrological)
	require.NoError(t, err)
	assert.Equal(t, 35, c.CycleYear)

	c, err = svc.CycleForAge(36, domain.CycleAstrological)
	require.NoError(t, err)
	assert.Equal(t, 1, c.CycleYear)

	_, err = svc.CycleForAge(-1, domain.CycleAstrological)
	assert.True(t, domain.IsBusinessError(err))
}

func TestMajorCycleForAge(t *testing.T) {
	svc := newService()

	c, err := svc.MajorCycleForAge(1)
	require.NoError(t, err)
	assert.Equal(t, 1, c.CycleYear)

	c, err = svc.MajorCycleForAge(253)
	require.NoError(t, err)
	assert.Equal(t, 1, c.CycleYear)
}

func TestFirstCycle(t *testing.T) {
	svc := newService()

	// 2000-01-03 was a Monday: weekday 0, inverted 6 -> Mars in the
	// astrological sequence.
	fc, err := svc.FirstCycle(time.January, 3, domain.CycleAstrological)
	require.NoError(t, err)
	assert.Equal(t, 0, fc.WeekdayIndex)
	assert.Equal(t, 6, fc.InvertedIndex)
	assert.Equal(t, "Mars", fc.Planet)

	// 2000-01-02 was a Sunday: weekday 6, inverted 0 -> Jupiter.
	fc, err = svc.FirstCycle(time.January, 2, domain.CycleAstrological)
	require.NoError(t, err)
	assert.Equal(t, 6, fc.WeekdayIndex)
	assert.Equal(t, "Jupiter", fc.Planet)

	_, err = svc.FirstCycle(time.February, 31, domain.CycleAstrological)
	assert.True(t, domain.IsBusinessError(err))
}

func TestPersonalYear(t *testing.T) {
	svc := newService()

	// 10/05/2025 -> 10 + 5 + 2025 = 2040 -> 6
	py := svc.PersonalYear(time.Date(1980, 5, 10, 0, 0, 0, 0, time.UTC), 2025)
	assert.Equal(t, "10/05/2025", py.Date)
	assert.Equal(t, 2040, py.RawSum)
	assert.Equal(t, 6, py.ReducedNumber)
	assert.NotEmpty(t, py.BaseMeaning)
	assert.NotEmpty(t, py.Short)
	assert.NotEmpty(t, py.Long)
}
