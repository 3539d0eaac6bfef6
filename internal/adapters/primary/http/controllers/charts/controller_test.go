package charts

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbautistacode/etheria/internal/domain"
	astroUsecase "github.com/vbautistacode/etheria/internal/usecases/astro"
)

type fakeEphemeris struct {
	req domain.NatalRequest
}

func (e *fakeEphemeris) NatalPositions(_ context.Context, req domain.NatalRequest) (*domain.NatalPositions, error) {
	e.req = req
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

func (e *fakeEphemeris) CurrentPositions(context.Context) (*domain.NatalPositions, error) {
	return e.NatalPositions(context.Background(), domain.NatalRequest{})
}

func newRouter(t *testing.T, eph *fakeEphemeris) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	New(astroUsecase.New(slog.Default()), eph, nil, slog.Default()).RegisterRoutes(router)
	return router
}

func postNatal(t *testing.T, router *gin.Engine, payload string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/charts/natal", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	return rec
}

func TestNatalWithBirthTime(t *testing.T) {
	eph := &fakeEphemeris{}
	router := newRouter(t, eph)

	rec := postNatal(t, router, `{"name":"Ana Lima","birth_date":"1990-05-15","birth_time":"14:30","latitude":-23.55,"longitude":-46.63}`)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, 14, eph.req.Datetime.Hour())
	assert.Equal(t, 30, eph.req.Datetime.Minute())

	var body struct {
		Chart  domain.ChartSummary `json:"chart"`
		Prompt string              `json:"prompt"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Chart.Ascendant)
	assert.Len(t, body.Chart.Cusps, 12)
	assert.NotEmpty(t, body.Prompt)
}

func TestNatalWithoutBirthTime(t *testing.T) {
	eph := &fakeEphemeris{}
	router := newRouter(t, eph)

	rec := postNatal(t, router, `{"name":"Ana Lima","birth_date":"1990-05-15","latitude":-23.55,"longitude":-46.63}`)
	require.Equal(t, http.StatusOK, rec.Code)

	// Chart cast for noon UTC; houses and ascendant omitted.
	assert.Equal(t, 12, eph.req.Datetime.Hour())
	assert.Equal(t, time.UTC, eph.req.Datetime.Location())

	var body struct {
		Chart domain.ChartSummary `json:"chart"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Nil(t, body.Chart.Ascendant)
	assert.Empty(t, body.Chart.Cusps)
	for _, p := range body.Chart.Planets {
		assert.Zero(t, p.House, p.Planet)
	}
}

func TestNatalRejectsMissingCoordinates(t *testing.T) {
	router := newRouter(t, &fakeEphemeris{})

	rec := postNatal(t, router, `{"name":"Ana Lima","birth_date":"1990-05-15"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
