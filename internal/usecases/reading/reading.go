package reading

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vbautistacode/etheria/internal/domain"
	"github.com/vbautistacode/etheria/internal/pkg/metrics"
	kafkaport "github.com/vbautistacode/etheria/internal/ports/kafka"
	"github.com/vbautistacode/etheria/internal/ports/repository"
	"github.com/vbautistacode/etheria/internal/ports/service"
	storageport "github.com/vbautistacode/etheria/internal/ports/storage"
	"github.com/vbautistacode/etheria/internal/usecases/arcana"
	"github.com/vbautistacode/etheria/internal/usecases/astro"
	"github.com/vbautistacode/etheria/internal/usecases/cycles"
	"github.com/vbautistacode/etheria/internal/usecases/influences"
	"github.com/vbautistacode/etheria/internal/usecases/numerology"
)

// Deps carries the collaborators of the reading orchestrator. Ephemeris,
// geocoder, generator, producer and store are optional; without them the
// reading simply omits the corresponding enrichment.
type Deps struct {
	Numerology *numerology.Service
	Cycles     *cycles.Service
	Influences *influences.Service
	Arcana     *arcana.Service
	Astro      *astro.Service

	Repo      repository.ReadingRepo
	Ephemeris service.Ephemeris
	Geocoder  service.Geocoder
	Generator service.NarrativeGenerator
	Producer  kafkaport.Producer
	Store     storageport.ObjectStore
}

// Service builds, persists and enriches full readings.
type Service struct {
	deps Deps
	log  *slog.Logger
	now  func() time.Time
}

func New(deps Deps, log *slog.Logger) *Service {
	return &Service{deps: deps, log: log, now: time.Now}
}

func ageAt(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	anniversary := time.Date(now.Year(), dob.Month(), dob.Day(), 0, 0, 0, 0, time.UTC)
	if now.Before(anniversary) {
		age--
	}
	if age < 0 {
		age = 0
	}
	return age
}

// Generate runs the full pipeline: numerology on both methods, cycles,
// arcanum, tattvic influences and, when coordinates can be resolved, the
// natal chart with its SVG and narrative. The reading is persisted and a
// creation event is published.
func (s *Service) Generate(ctx context.Context, req domain.ReadingRequest) (*domain.Reading, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, domain.ErrEmptyName
	}
	if req.BirthDate.IsZero() {
		return nil, domain.ErrInvalidBirthDate
	}
	if req.Method == "" {
		req.Method = domain.MethodPythagorean
	}
	if req.CycleMode == "" {
		req.CycleMode = domain.CycleAstrological
	}

	now := s.now().UTC()
	age := ageAt(req.BirthDate, now)

	report := &domain.ReadingReport{Age: age}

	numReport, err := s.deps.Numerology.FullReport(req.Name, req.BirthDate, domain.MethodPythagorean, now)
	if err != nil {
		return nil, err
	}
	report.Numerology = numReport

	cabReport, err := s.deps.Numerology.FullReport(req.Name, req.BirthDate, domain.MethodCabalistic, now)
	if err != nil {
		return nil, err
	}
	report.Cabalistic = cabReport

	firstCycle, err := s.deps.Cycles.FirstCycle(req.BirthDate.Month(), req.BirthDate.Day(), req.CycleMode)
	if err != nil {
		return nil, err
	}
	report.FirstCycle = &firstCycle

	var cycle domain.CycleReading
	if req.CycleMode == domain.CycleMajor {
		cycle, err = s.deps.Cycles.MajorCycleForAge(age)
	} else {
		cycle, err = s.deps.Cycles.CycleForAge(age, req.CycleMode)
	}
	if err != nil {
		return nil, err
	}
	report.Cycle = &cycle
	report.CycleText = cycles.Description(req.CycleMode)

	arcNumber := arcana.FromDOB(req.BirthDate)
	arc, ok := arcana.ByNumber(arcNumber)
	if !ok {
		arc = domain.Arcanum{Number: arcNumber}
	}
	arcReading := s.deps.Arcana.Reading(arc, 0, 0, req.Name)
	report.Arcanum = &arcReading

	tattvic, err := s.deps.Influences.InterpretAt(req.BirthDate.Year(), now, age)
	if err != nil {
		return nil, err
	}
	report.Influences = tattvic

	report.Potential = s.potential(numReport)
	report.Meanings = s.meanings(numReport, cabReport)

	s.enrichWithChart(ctx, &req, report)

	reading := &domain.Reading{
		ID:         uuid.New(),
		PersonName: req.Name,
		BirthDate:  req.BirthDate,
		BirthTime:  req.BirthTime,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Report:     report,
		CreatedAt:  now,
	}
	if req.BirthPlace != "" {
		reading.BirthPlace = &req.BirthPlace
	}

	if err := s.deps.Repo.Create(ctx, reading); err != nil {
		return nil, fmt.Errorf("persist reading: %w", err)
	}
	metrics.ReadingsGenerated.WithLabelValues(string(req.Method)).Inc()

	s.publishCreated(ctx, reading, req.Method)
	s.storeChartSVG(ctx, reading)
	s.attachNarrative(ctx, reading)

	return reading, nil
}

func (s *Service) potential(report *domain.NumerologyReport) *domain.PotentialReading {
	total := report.Quantics.DayMonth + report.Quantics.DayYear + report.Quantics.MonthYear
	return &domain.PotentialReading{
		Value:   total,
		Meaning: numerology.PitagoricMeaning(numerology.Reduce(total, true, 11)),
	}
}

func (s *Service) meanings(num, cab *domain.NumerologyReport) map[string]string {
	return map[string]string{
		"life_path":        numerology.PitagoricMeaning(num.LifePath.Value),
		"expression":       numerology.PitagoricMeaning(num.Expression.Value),
		"cabalistic":       numerology.CabalisticMeaning(cab.Expression.Value),
		"quantic_daymonth": numerology.PitagoricMeaning(num.Quantics.DayMonth),
		"quantic_dayyear":  numerology.PitagoricMeaning(num.Quantics.DayYear),
		"quantic_monthyr":  numerology.PitagoricMeaning(num.Quantics.MonthYear),
	}
}

// enrichWithChart resolves coordinates, asks the ephemeris for the natal
// positions and attaches the structured chart. Failures degrade to a
// chart-less reading.
func (s *Service) enrichWithChart(ctx context.Context, req *domain.ReadingRequest, report *domain.ReadingReport) {
	if s.deps.Ephemeris == nil {
		return
	}

	if req.Latitude == nil || req.Longitude == nil {
		if req.BirthPlace == "" || s.deps.Geocoder == nil {
			return
		}
		place, err := s.deps.Geocoder.Resolve(ctx, req.BirthPlace)
		if err != nil {
			s.log.WarnContext(ctx, "geocoding failed, skipping chart",
				"place", req.BirthPlace, "error", err)
			return
		}
		req.Latitude, req.Longitude = &place.Latitude, &place.Longitude
		if req.Timezone == "" {
			req.Timezone = place.Timezone
		}
	}

	// Without a birth time the chart is cast for noon UTC and carries no
	// houses or ascendant.
	dt := time.Date(req.BirthDate.Year(), req.BirthDate.Month(), req.BirthDate.Day(), 12, 0, 0, 0, time.UTC)
	if req.BirthTime != nil {
		t := *req.BirthTime
		dt = time.Date(dt.Year(), dt.Month(), dt.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
	}

	natal, err := s.deps.Ephemeris.NatalPositions(ctx, domain.NatalRequest{
		Name:      req.Name,
		Datetime:  dt,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Timezone:  req.Timezone,
	})
	if err != nil {
		s.log.WarnContext(ctx, "ephemeris request failed, skipping chart", "error", err)
		return
	}
	if req.BirthTime == nil {
		natal.Cusps = nil
		natal.Ascendant = nil
		natal.MC = nil
	}
	report.Chart = astro.BuildChartSummary(natal)
}

func (s *Service) publishCreated(ctx context.Context, reading *domain.Reading, method domain.NumerologyMethod) {
	if s.deps.Producer == nil {
		return
	}
	event := domain.ReadingCreatedEvent{
		ReadingID:  reading.ID,
		PersonName: reading.PersonName,
		BirthDate:  reading.BirthDate.Format("2006-01-02"),
		Method:     string(method),
		OccurredAt: reading.CreatedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.log.ErrorContext(ctx, "marshal reading event", "error", err)
		return
	}
	if err := s.deps.Producer.Send(ctx, reading.ID.String(), payload); err != nil {
		s.log.WarnContext(ctx, "publish reading event failed", "reading_id", reading.ID, "error", err)
	}
}

func (s *Service) storeChartSVG(ctx context.Context, reading *domain.Reading) {
	if s.deps.Store == nil || reading.Report == nil || reading.Report.Chart == nil {
		return
	}
	key := fmt.Sprintf("charts/%s.svg", reading.ID)
	svg := astro.RenderWheelSVG(reading.Report.Chart)
	if err := s.deps.Store.PutObject(ctx, key, svg, "image/svg+xml"); err != nil {
		s.log.WarnContext(ctx, "store chart svg failed", "reading_id", reading.ID, "error", err)
		return
	}
	if err := s.deps.Repo.SetChartObjectKey(ctx, reading.ID, key); err != nil {
		s.log.WarnContext(ctx, "set chart object key failed", "reading_id", reading.ID, "error", err)
		return
	}
	reading.ChartObjectKey = &key
}

func (s *Service) attachNarrative(ctx context.Context, reading *domain.Reading) {
	if s.deps.Generator == nil || reading.Report == nil || reading.Report.Chart == nil {
		return
	}
	narrative, err := s.deps.Generator.Generate(ctx, reading.PersonName, reading.Report.Chart)
	if err != nil {
		s.log.WarnContext(ctx, "narrative generation failed", "reading_id", reading.ID, "error", err)
		return
	}
	if err := s.deps.Repo.SetNarrative(ctx, reading.ID, narrative); err != nil {
		s.log.WarnContext(ctx, "set narrative failed", "reading_id", reading.ID, "error", err)
		return
	}
	reading.Narrative = &narrative
}

// GetByID loads a stored reading.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reading, error) {
	return s.deps.Repo.GetByID(ctx, id)
}

// ListByName returns the most recent readings for a person name.
func (s *Service) ListByName(ctx context.Context, name string, limit int) ([]domain.Reading, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrEmptyName
	}
	return s.deps.Repo.ListByName(ctx, name, limit)
}

// ListRecent returns the latest readings across all persons.
func (s *Service) ListRecent(ctx context.Context, limit int) ([]domain.Reading, error) {
	return s.deps.Repo.ListRecent(ctx, limit)
}
