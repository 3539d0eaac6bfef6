package cycles

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/vbautistacode/etheria/internal/domain"
)

// Regent sequences. The major wheel assigns each planet a 36-year block
// inside a 252-year cycle; the minor wheels cycle one planet per year.
var (
	planetsAstrological = []string{"Jupiter", "Saturn", "Moon", "Mercury", "Venus", "Sun", "Mars"}
	planetsTheosophical = []string{"Venus", "Saturn", "Sun", "Moon", "Mars", "Mercury", "Jupiter"}
	planetsMajor        = []string{"Saturn", "Venus", "Jupiter", "Sun", "Mercury", "Mars", "Moon"}
)

const (
	majorStep  = 36
	majorBlock = majorStep * 7 // 252
	minorWheel = 35
)

// Config aligns the regent sequences historically.
type Config struct {
	BaseYearAstro int `envconfig:"BASE_YEAR_ASTRO" default:"2025"`
	BaseYearTeos  int `envconfig:"BASE_YEAR_TEOS" default:"2025"`
	BaseYearMajor int `envconfig:"BASE_YEAR_MAJOR" default:"2017"`
}

// Service computes planetary regencies for years and ages.
type Service struct {
	cfg Config
	log *slog.Logger
}

func New(cfg Config, log *slog.Logger) *Service {
	if cfg.BaseYearAstro == 0 {
		cfg.BaseYearAstro = 2025
	}
	if cfg.BaseYearTeos == 0 {
		cfg.BaseYearTeos = 2025
	}
	if cfg.BaseYearMajor == 0 {
		cfg.BaseYearMajor = 2017
	}
	return &Service{cfg: cfg, log: log}
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// RegentByYear returns the planetary regent of a civil year for the chosen
// cycle mode.
func (s *Service) RegentByYear(year int, mode domain.CycleMode) (domain.Regency, error) {
	if year < 1 {
		return domain.Regency{}, domain.BusinessErrorf("year must be >= 1, got %d", year)
	}

	var planet string
	switch mode {
	case domain.CycleTheosophical:
		planet = planetsTheosophical[mod(year-s.cfg.BaseYearTeos, len(planetsTheosophical))]
	case domain.CycleMajor:
		offset := mod(year-s.cfg.BaseYearMajor, majorBlock)
		planet = planetsMajor[offset/majorStep]
	default:
		mode = domain.CycleAstrological
		planet = planetsAstrological[mod(year-s.cfg.BaseYearAstro, len(planetsAstrological))]
	}

	return domain.Regency{
		Mode:        mode,
		Year:        year,
		Planet:      planet,
		Description: Description(mode),
	}, nil
}

// CycleForAge maps an age onto the 35-year minor wheel and returns the
// regent of the resulting cycle year.
func (s *Service) CycleForAge(age int, mode domain.CycleMode) (domain.CycleReading, error) {
	if age < 0 {
		return domain.CycleReading{}, domain.BusinessErrorf("age must be >= 0, got %d", age)
	}
	cycleYear := 1
	if age >= 1 {
		cycleYear = mod(age-1, minorWheel) + 1
	}
	reg, err := s.RegentByYear(cycleYear, domain.CycleMajor)
	if err != nil {
		return domain.CycleReading{}, err
	}
	return domain.CycleReading{Mode: mode, Age: age, CycleYear: cycleYear, Planet: reg.Planet}, nil
}

// MajorCycleForAge maps an age onto the 252-year major wheel.
func (s *Service) MajorCycleForAge(age int) (domain.CycleReading, error) {
	if age < 0 {
		return domain.CycleReading{}, domain.BusinessErrorf("age must be >= 0, got %d", age)
	}
	majorYear := 1
	if age >= 1 {
		majorYear = mod(age-1, majorBlock) + 1
	}
	reg, err := s.RegentByYear(majorYear, domain.CycleMajor)
	if err != nil {
		return domain.CycleReading{}, err
	}
	return domain.CycleReading{Mode: domain.CycleMajor, Age: age, CycleYear: majorYear, Planet: reg.Planet}, nil
}

// FirstCycle determines the one-year cycle regent from the inverted weekday
// of the birth day/month anchored to year 2000.
func (s *Service) FirstCycle(month time.Month, day int, mode domain.CycleMode) (domain.FirstCycleReading, error) {
	anchor := time.Date(2000, month, day, 0, 0, 0, 0, time.UTC)
	if anchor.Month() != month || anchor.Day() != day {
		return domain.FirstCycleReading{}, domain.BusinessErrorf("invalid day/month: %02d/%02d", day, month)
	}

	// time.Weekday is 0=Sunday; the rule counts 0=Monday..6=Sunday.
	weekday := mod(int(anchor.Weekday())-1, 7)
	inv := 6 - weekday

	list := planetsAstrological
	if mode == domain.CycleTheosophical {
		list = planetsTheosophical
	}

	return domain.FirstCycleReading{
		Planet:        list[inv%len(list)],
		WeekdayIndex:  weekday,
		InvertedIndex: inv,
		Mode:          string(mode),
	}, nil
}

// PersonalYear computes the personal-year number for the birthday in the
// target year: day + month + full year, reduced to a single digit.
func (s *Service) PersonalYear(dob time.Time, targetYear int) domain.PersonalYearReading {
	ann := time.Date(targetYear, dob.Month(), dob.Day(), 0, 0, 0, 0, time.UTC)
	rawSum := ann.Day() + int(ann.Month()) + ann.Year()

	reduced := rawSum
	for reduced > 9 {
		sum := 0
		for n := reduced; n > 0; n /= 10 {
			sum += n % 10
		}
		reduced = sum
	}

	tpl := personalYearTemplates[reduced]
	return domain.PersonalYearReading{
		Date:          ann.Format("02/01/2006"),
		RawSum:        rawSum,
		ReducedNumber: reduced,
		BaseMeaning:   personalYearBase[reduced],
		Short:         tpl.Short,
		Long:          tpl.Long,
	}
}

// Description returns the narrative blurb for a cycle mode.
func Description(mode domain.CycleMode) string {
	switch mode {
	case domain.CycleMajor:
		return majorCycleDesc
	case domain.CycleTheosophical:
		return theosophicalCycleDesc
	default:
		return astrologicalCycleDesc
	}
}

// ShortRegentLabel formats a regency for compact display.
func ShortRegentLabel(r domain.Regency) string {
	if r.Planet == "" {
		return "—"
	}
	return fmt.Sprintf("%s (%d)", r.Planet, r.Year)
}
