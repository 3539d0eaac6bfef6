package reading

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbautistacode/etheria/internal/domain"
	"github.com/vbautistacode/etheria/internal/ports/persistence"
	"github.com/vbautistacode/etheria/internal/usecases/arcana"
	"github.com/vbautistacode/etheria/internal/usecases/astro"
	"github.com/vbautistacode/etheria/internal/usecases/cycles"
	"github.com/vbautistacode/etheria/internal/usecases/influences"
	"github.com/vbautistacode/etheria/internal/usecases/numerology"
)

type fakeRepo struct {
	created   *domain.Reading
	narrative string
	chartKey  string
}

func (r *fakeRepo) Create(_ context.Context, reading *domain.Reading) error {
	r.created = reading
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Reading, error) {
	if r.created != nil && r.created.ID == id {
		return r.created, nil
	}
	return nil, domain.ErrReadingNotFound
}

func (r *fakeRepo) ListByName(context.Context, string, int) ([]domain.Reading, error) {
	if r.created == nil {
		return nil, nil
	}
	return []domain.Reading{*r.created}, nil
}

func (r *fakeRepo) ListRecent(context.Context, int) ([]domain.Reading, error) {
	return r.ListByName(context.Background(), "", 0)
}

func (r *fakeRepo) SetNarrative(_ context.Context, _ uuid.UUID, narrative string) error {
	r.narrative = narrative
	return nil
}

func (r *fakeRepo) SetChartObjectKey(_ context.Context, _ uuid.UUID, key string) error {
	r.chartKey = key
	return nil
}

func (r *fakeRepo) BeginTx(context.Context) (persistence.Tx, error) {
	return nil, errors.New("not supported")
}

func (r *fakeRepo) WithTransaction(ctx context.Context, fn func(tx persistence.Persistence) error) error {
	return fn(nil)
}

func (r *fakeRepo) CreateTx(ctx context.Context, _ persistence.Persistence, reading *domain.Reading) error {
	return r.Create(ctx, reading)
}

type fakeEphemeris struct {
	err error
	req domain.NatalRequest
}

func (e *fakeEphemeris) NatalPositions(_ context.Context, req domain.NatalRequest) (*domain.NatalPositions, error) {
	e.req = req
	if e.err != nil {
		return nil, e.err
	}
	asc := 100.0
	return &domain.NatalPositions{
		JulianDay: 2448000.5,
		Planets: map[string]domain.EphemerisPlanet{
			"Sun":  {Longitude: 54.2},
			"Moon": {Longitude: 234.2},
		},
		Cusps:     []float64{0, 100, 130, 160, 190, 220, 250, 280, 310, 340, 10, 40, 70},
		Ascendant: &asc,
	}, nil
}

func (e *fakeEphemeris) CurrentPositions(ctx context.Context) (*domain.NatalPositions, error) {
	return e.NatalPositions(ctx, domain.NatalRequest{})
}

type fakeGeocoder struct {
	err error
}

func (g *fakeGeocoder) Resolve(context.Context, string) (*domain.GeoPlace, error) {
	if g.err != nil {
		return nil, g.err
	}
	return &domain.GeoPlace{DisplayName: "São Paulo, Brasil", Latitude: -23.55, Longitude: -46.63, Timezone: "America/Sao_Paulo"}, nil
}

type fakeGenerator struct{}

func (fakeGenerator) Generate(context.Context, string, *domain.ChartSummary) (string, error) {
	return "1) O palco está montado.", nil
}

type fakeProducer struct {
	key   string
	value []byte
}

func (p *fakeProducer) Send(_ context.Context, key string, value []byte) error {
	p.key, p.value = key, value
	return nil
}

func (p *fakeProducer) Close() error { return nil }

type fakeStore struct {
	key         string
	contentType string
	data        []byte
}

func (s *fakeStore) PutObject(_ context.Context, key string, data []byte, contentType string) error {
	s.key, s.data, s.contentType = key, data, contentType
	return nil
}

func (s *fakeStore) GetObject(context.Context, string) ([]byte, error) { return s.data, nil }

func (s *fakeStore) ListObjects(context.Context, string) ([]string, error) { return nil, nil }

func (s *fakeStore) GetPresignedURL(context.Context, string, time.Duration) (string, error) {
	return "https://example.test/" + s.key, nil
}

func newService(deps Deps) *Service {
	log := slog.Default()
	deps.Numerology = numerology.New(log)
	deps.Cycles = cycles.New(cycles.Config{}, log)
	deps.Influences = influences.New(log)
	deps.Arcana = arcana.New(log)
	deps.Astro = astro.New(log)

	svc := New(deps, log)
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestGenerate(t *testing.T) {
	repo := &fakeRepo{}
	producer := &fakeProducer{}
	store := &fakeStore{}
	svc := newService(Deps{
		Repo:      repo,
		Ephemeris: &fakeEphemeris{},
		Geocoder:  &fakeGeocoder{},
		Generator: fakeGenerator{},
		Producer:  producer,
		Store:     store,
	})

	birthTime := time.Date(1990, 5, 15, 14, 30, 0, 0, time.UTC)
	reading, err := svc.Generate(context.Background(), domain.ReadingRequest{
		Name:       "Ana Lima",
		BirthDate:  time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC),
		BirthTime:  &birthTime,
		BirthPlace: "São Paulo",
	})
	require.NoError(t, err)
	require.NotNil(t, repo.created)

	report := reading.Report
	require.NotNil(t, report)
	assert.Equal(t, 35, report.Age)
	require.NotNil(t, report.Numerology)
	assert.Equal(t, domain.MethodPythagorean, report.Numerology.Method)
	require.NotNil(t, report.Cabalistic)
	assert.Equal(t, domain.MethodCabalistic, report.Cabalistic.Method)
	require.NotNil(t, report.FirstCycle)
	require.NotNil(t, report.Cycle)
	assert.NotEmpty(t, report.CycleText)

	// 15/05/1990 reduces to arcanum 3.
	require.NotNil(t, report.Arcanum)
	assert.Equal(t, 3, report.Arcanum.Arcanum.Number)
	assert.Contains(t, report.Arcanum.Short, "Ana Lima, o Arcano 3")

	require.NotNil(t, report.Influences)
	assert.NotEmpty(t, report.Influences.Dominant)

	// Quantics 2+7+6 = 15 -> reduced 6.
	require.NotNil(t, report.Potential)
	assert.Equal(t, 15, report.Potential.Value)
	assert.Equal(t, "Conciliador | Justo", report.Potential.Meaning)
	assert.Equal(t, "Conciliador | Justo", report.Meanings["quantic_monthyr"])

	// Geocoded coordinates produced a chart.
	require.NotNil(t, report.Chart)
	require.NotNil(t, report.Chart.Ascendant)

	// SVG stored and narrative attached.
	assert.Equal(t, "charts/"+reading.ID.String()+".svg", store.key)
	assert.Equal(t, "image/svg+xml", store.contentType)
	require.NotNil(t, reading.ChartObjectKey)
	require.NotNil(t, reading.Narrative)
	assert.Equal(t, "1) O palco está montado.", *reading.Narrative)
	assert.Equal(t, repo.narrative, *reading.Narrative)

	// Creation event keyed by the reading id.
	assert.Equal(t, reading.ID.String(), producer.key)
	assert.Contains(t, string(producer.value), "Ana Lima")
}

func TestGenerateValidation(t *testing.T) {
	svc := newService(Deps{Repo: &fakeRepo{}})

	_, err := svc.Generate(context.Background(), domain.ReadingRequest{
		BirthDate: time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, domain.ErrEmptyName)

	_, err = svc.Generate(context.Background(), domain.ReadingRequest{Name: "Ana"})
	assert.ErrorIs(t, err, domain.ErrInvalidBirthDate)
}

func TestGenerateWithoutOptionalDeps(t *testing.T) {
	repo := &fakeRepo{}
	svc := newService(Deps{Repo: repo})

	reading, err := svc.Generate(context.Background(), domain.ReadingRequest{
		Name:      "Ana Lima",
		BirthDate: time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Nil(t, reading.Report.Chart)
	assert.Nil(t, reading.Narrative)
	assert.Nil(t, reading.ChartObjectKey)
}

func TestGenerateGeocoderFailure(t *testing.T) {
	repo := &fakeRepo{}
	svc := newService(Deps{
		Repo:      repo,
		Ephemeris: &fakeEphemeris{},
		Geocoder:  &fakeGeocoder{err: domain.ErrPlaceNotFound},
	})

	reading, err := svc.Generate(context.Background(), domain.ReadingRequest{
		Name:       "Ana Lima",
		BirthDate:  time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC),
		BirthPlace: "Lugar Nenhum",
	})
	require.NoError(t, err)
	assert.Nil(t, reading.Report.Chart)
}

func TestGenerateWithExplicitCoordinates(t *testing.T) {
	repo := &fakeRepo{}
	lat, lon := -23.55, -46.63
	svc := newService(Deps{
		Repo:      repo,
		Ephemeris: &fakeEphemeris{},
	})

	reading, err := svc.Generate(context.Background(), domain.ReadingRequest{
		Name:      "Ana Lima",
		BirthDate: time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC),
		Latitude:  &lat,
		Longitude: &lon,
	})
	require.NoError(t, err)
	require.NotNil(t, reading.Report.Chart)
}

func TestGenerateWithoutBirthTime(t *testing.T) {
	eph := &fakeEphemeris{}
	lat, lon := -23.55, -46.63
	svc := newService(Deps{
		Repo:      &fakeRepo{},
		Ephemeris: eph,
	})

	reading, err := svc.Generate(context.Background(), domain.ReadingRequest{
		Name:      "Ana Lima",
		BirthDate: time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC),
		Latitude:  &lat,
		Longitude: &lon,
	})
	require.NoError(t, err)

	// The chart is cast for noon UTC when the birth time is unknown.
	assert.Equal(t, 12, eph.req.Datetime.Hour())
	assert.Equal(t, 0, eph.req.Datetime.Minute())
	assert.Equal(t, time.UTC, eph.req.Datetime.Location())

	// Houses, ascendant and MC are unknowable without a birth time.
	chart := reading.Report.Chart
	require.NotNil(t, chart)
	assert.Empty(t, chart.Cusps)
	assert.Nil(t, chart.Ascendant)
	assert.Nil(t, chart.MC)
	for _, p := range chart.Planets {
		assert.Zero(t, p.House, p.Planet)
	}
}

func TestListByNameValidation(t *testing.T) {
	svc := newService(Deps{Repo: &fakeRepo{}})

	_, err := svc.ListByName(context.Background(), "  ", 10)
	assert.ErrorIs(t, err, domain.ErrEmptyName)
}

func TestAgeAt(t *testing.T) {
	dob := time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 35, ageAt(dob, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 34, ageAt(dob, time.Date(2025, 5, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 35, ageAt(dob, time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, ageAt(dob, time.Date(1989, 1, 1, 0, 0, 0, 0, time.UTC)))
}
