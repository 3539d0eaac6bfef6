package influences

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/vbautistacode/etheria/internal/domain"
)

// canonicalPlanets are the internal English names; PT input is accepted and
// normalized through toCanonical.
var canonicalPlanets = []string{
	"Sun", "Moon", "Mercury", "Venus", "Mars", "Jupiter", "Saturn", "Uranus", "Neptune", "Pluto",
}

var ptToCanonical = map[string]string{
	"sol":      "Sun",
	"lua":      "Moon",
	"mercurio": "Mercury",
	"venus":    "Venus",
	"marte":    "Mars",
	"jupiter":  "Jupiter",
	"saturno":  "Saturn",
	"urano":    "Uranus",
	"netuno":   "Neptune",
	"plutao":   "Pluto",
}

var canonicalToPT = map[string]string{
	"Sun":     "Sol",
	"Moon":    "Lua",
	"Mercury": "Mercúrio",
	"Venus":   "Vênus",
	"Mars":    "Marte",
	"Jupiter": "Júpiter",
	"Saturn":  "Saturno",
	"Uranus":  "Urano",
	"Neptune": "Netuno",
	"Pluto":   "Plutão",
}

// planetOrder and planetYears define the sequential life-cycle blocks.
var (
	planetOrder = []string{"Moon", "Mercury", "Venus", "Sun", "Mars", "Jupiter", "Saturn"}
	planetYears = map[string]int{
		"Moon":    10,
		"Mercury": 8,
		"Venus":   4,
		"Sun":     3,
		"Mars":    2,
		"Jupiter": 7,
		"Saturn":  6,
	}
)

var defaultWeights = map[string]int{"year": 3, "hour": 2, "weekday": 1}

type phase struct {
	Name   string
	Lo, Hi int
}

var phases = []phase{
	{"Física", 0, 39},
	{"Psíquica", 40, 79},
	{"Espiritual", 80, 120},
}

// Weekday rulers and the Chaldean hour sequence drive the hour/weekday
// influence sources.
var (
	weekdayRulers = [7]string{"Sun", "Moon", "Mars", "Mercury", "Jupiter", "Venus", "Saturn"}
	chaldeanOrder = [7]string{"Saturn", "Jupiter", "Mars", "Sun", "Venus", "Mercury", "Moon"}
)

func stripAccents(s string) string {
	decomposed := norm.NFKD.String(s)
	var b strings.Builder
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func normKey(s string) string {
	return strings.ToLower(strings.TrimSpace(stripAccents(s)))
}

func toCanonical(name string) string {
	s := strings.TrimSpace(name)
	if s == "" {
		return ""
	}
	for _, can := range canonicalPlanets {
		if strings.EqualFold(can, s) {
			return can
		}
	}
	if can, ok := ptToCanonical[normKey(s)]; ok {
		return can
	}
	return s
}

// PTLabel returns the Portuguese display name of a canonical planet.
func PTLabel(planet string) string {
	if pt, ok := canonicalToPT[planet]; ok {
		return pt
	}
	return planet
}

// Service computes tattvic influences.
type Service struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Service {
	return &Service{log: log}
}

// BuildMajorCycles lays the planetary periods sequentially from the birth
// year, cycling planetOrder with each planet's duration, up to maxAge.
func (s *Service) BuildMajorCycles(birthYear, maxAge int, startPlanet string) ([]domain.PlanetPeriod, error) {
	order := planetOrder
	if startPlanet != "" {
		can := toCanonical(startPlanet)
		idx := -1
		for i, p := range planetOrder {
			if p == can {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, domain.BusinessErrorf("unknown start planet %q", startPlanet)
		}
		order = append(append([]string{}, planetOrder[idx:]...), planetOrder[:idx]...)
	}

	var periods []domain.PlanetPeriod
	age, year, i := 0, birthYear, 0
	for age <= maxAge {
		planet := order[i%len(order)]
		dur := planetYears[planet]
		periods = append(periods, domain.PlanetPeriod{
			Planet:    planet,
			StartYear: year,
			EndYear:   year + dur - 1,
			StartAge:  age,
			EndAge:    age + dur - 1,
		})
		year += dur
		age += dur
		i++
	}
	return periods, nil
}

// PlanetForAge scans the cycle periods for the one covering the given age.
func PlanetForAge(periods []domain.PlanetPeriod, age int) string {
	for _, p := range periods {
		if p.StartAge <= age && age <= p.EndAge {
			return p.Planet
		}
	}
	return ""
}

// PlanetForYear scans the cycle periods for the one covering the given year.
func PlanetForYear(periods []domain.PlanetPeriod, year int) string {
	for _, p := range periods {
		if p.StartYear <= year && year <= p.EndYear {
			return p.Planet
		}
	}
	return ""
}

// PhaseForAge maps an age onto the three tattvic life phases.
func PhaseForAge(age int) string {
	for _, ph := range phases {
		if ph.Lo <= age && age <= ph.Hi {
			return ph.Name
		}
	}
	return phases[len(phases)-1].Name
}

// WeekdayPlanet returns the classical ruler of a weekday.
func WeekdayPlanet(wd time.Weekday) string {
	return weekdayRulers[int(wd)]
}

// HourPlanet returns the planetary-hour ruler: the Chaldean sequence
// advanced hour by hour from the weekday ruler. The planetary day runs
// 06:00 through 05:59, so hours before six belong to the previous weekday
// and offsets count from the six o'clock start.
func HourPlanet(wd time.Weekday, hour int) string {
	if hour < 6 {
		wd = (wd + 6) % 7
		hour += 24
	}
	ruler := weekdayRulers[int(wd)]
	start := 0
	for i, p := range chaldeanOrder {
		if p == ruler {
			start = i
			break
		}
	}
	return chaldeanOrder[(start+hour-6)%7]
}

// Combine tallies the weighted sources and picks the dominant planet.
// Sources accept PT or canonical names.
func (s *Service) Combine(sources domain.InfluenceSources, weights map[string]int) (map[string]int, string) {
	if weights == nil {
		weights = defaultWeights
	}
	tally := map[string]int{}
	add := func(key, planet string) {
		if planet == "" {
			return
		}
		w := weights[key]
		if w == 0 {
			w = 1
		}
		tally[toCanonical(planet)] += w
	}
	add("year", sources.Year)
	add("hour", sources.Hour)
	add("weekday", sources.Weekday)

	dominant := ""
	best := 0
	for planet, score := range tally {
		if score > best || (score == best && planet < dominant) {
			dominant = planet
			best = score
		}
	}
	return tally, dominant
}

func renderShort(planet string) string {
	if planet == "" {
		return "Nenhum planeta dominante identificado."
	}
	txt := planetTexts[planet]
	tattva := planetToTattva[planet]
	if tattva == "" {
		tattva = "—"
	}
	return fmt.Sprintf("Planeta dominante: %s. Tatwa: %s. Tema: %s", PTLabel(planet), tattva, txt.Summary)
}

func renderMedium(planet string) string {
	if planet == "" {
		return "Nenhum planeta dominante identificado."
	}
	txt := planetTexts[planet]
	return fmt.Sprintf("O planeta predominante é %s (tatwa %s). Isso indica ênfase em: %s Recomendações: %s",
		PTLabel(planet), planetToTattva[planet], txt.Summary, txt.Advice)
}

func renderLong(planet string, age int) string {
	if planet == "" {
		return "Nenhum planeta dominante identificado."
	}
	txt := planetTexts[planet]
	return fmt.Sprintf("%s\n\nFase atual: %s (idade %d). Recomendações práticas: %s",
		txt.Long, PhaseForAge(age), age, txt.Advice)
}

// Interpret runs the full flow: combine sources, pick the dominant planet
// and render the three interpretation levels.
func (s *Service) Interpret(sources domain.InfluenceSources, age int) *domain.TattvicReport {
	tally, dominant := s.Combine(sources, nil)
	return &domain.TattvicReport{
		Sources:  sources,
		Combined: tally,
		Dominant: dominant,
		Tattva:   planetToTattva[dominant],
		Phase:    PhaseForAge(age),
		Interpretation: domain.InfluenceTexts{
			Short:  renderShort(dominant),
			Medium: renderMedium(dominant),
			Long:   renderLong(dominant, age),
		},
	}
}

// InterpretAt derives the three sources for a moment in time: the ruling
// planet of the person's life-cycle year, the planetary hour and the
// weekday ruler.
func (s *Service) InterpretAt(birthYear int, at time.Time, age int) (*domain.TattvicReport, error) {
	periods, err := s.BuildMajorCycles(birthYear, 120, "")
	if err != nil {
		return nil, err
	}
	sources := domain.InfluenceSources{
		Year:    PlanetForYear(periods, at.Year()),
		Hour:    HourPlanet(at.Weekday(), at.Hour()),
		Weekday: WeekdayPlanet(at.Weekday()),
	}
	return s.Interpret(sources, age), nil
}
