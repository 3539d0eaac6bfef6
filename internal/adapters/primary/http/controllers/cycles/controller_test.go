package cycles

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cyclesUsecase "github.com/vbautistacode/etheria/internal/usecases/cycles"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	svc := cyclesUsecase.New(cyclesUsecase.Config{}, slog.Default())
	New(svc, slog.Default()).RegisterRoutes(router)
	return router
}

func TestRegentByYear(t *testing.T) {
	router := newRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cycles/regents?year=2025&mode=astrologico", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "regency")
	assert.Contains(t, body, "label")
	assert.Contains(t, body, "description")
}

func TestRegentByYearRejectsUnknownMode(t *testing.T) {
	router := newRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cycles/regents?mode=vedic", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCycleForAge(t *testing.T) {
	router := newRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cycles/age/36?mode=maior", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "planet")
}

func TestPersonalYearRequiresBirthDate(t *testing.T) {
	router := newRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cycles/personal-year", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPersonalYear(t *testing.T) {
	router := newRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cycles/personal-year?birth_date=1990-05-14&year=2026", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "reduced_number")
}
