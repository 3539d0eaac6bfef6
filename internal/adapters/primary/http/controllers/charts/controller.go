package charts

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vbautistacode/etheria/internal/domain"
	cacheport "github.com/vbautistacode/etheria/internal/ports/cache"
	"github.com/vbautistacode/etheria/internal/ports/service"
	astroUsecase "github.com/vbautistacode/etheria/internal/usecases/astro"
)

type Controller struct {
	Astro     *astroUsecase.Service
	Ephemeris service.Ephemeris
	Cache     cacheport.Cache
	Log       *slog.Logger
}

func New(astro *astroUsecase.Service, eph service.Ephemeris, cache cacheport.Cache, log *slog.Logger) *Controller {
	return &Controller{
		Astro:     astro,
		Ephemeris: eph,
		Cache:     cache,
		Log:       log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")
	v1.POST("/charts/natal", c.natal)
	v1.POST("/charts/natal/svg", c.natalSVG)
	v1.GET("/positions/current", c.currentPositions)
}

// NatalChartRequest is the inbound payload for natal chart endpoints.
type NatalChartRequest struct {
	Name      string   `json:"name"`
	BirthDate string   `json:"birth_date" binding:"required"` // 2006-01-02
	BirthTime string   `json:"birth_time,omitempty"`          // 15:04
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
	Timezone  string   `json:"timezone,omitempty"`
}

func (c *Controller) computeSummary(ctx *gin.Context) (*domain.ChartSummary, bool) {
	if c.Ephemeris == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "ephemeris service not configured"})
		return nil, false
	}

	var payload NatalChartRequest
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		c.Log.Warn("failed to bind natal chart request", "error", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return nil, false
	}

	birthDate, err := time.Parse("2006-01-02", payload.BirthDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "birth_date must be YYYY-MM-DD"})
		return nil, false
	}
	// Without a birth time the chart is cast for noon UTC and carries no
	// houses or ascendant.
	dt := time.Date(birthDate.Year(), birthDate.Month(), birthDate.Day(), 12, 0, 0, 0, time.UTC)
	if payload.BirthTime != "" {
		birthTime, err := time.Parse("15:04", payload.BirthTime)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "birth_time must be HH:MM"})
			return nil, false
		}
		dt = time.Date(birthDate.Year(), birthDate.Month(), birthDate.Day(),
			birthTime.Hour(), birthTime.Minute(), 0, 0, time.UTC)
	}

	natal, err := c.Ephemeris.NatalPositions(ctx.Request.Context(), domain.NatalRequest{
		Name:      payload.Name,
		Datetime:  dt,
		Latitude:  *payload.Latitude,
		Longitude: *payload.Longitude,
		Timezone:  payload.Timezone,
	})
	if err != nil {
		c.Log.Error("ephemeris request failed", "error", err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "ephemeris service unavailable"})
		return nil, false
	}
	if payload.BirthTime == "" {
		natal.Cusps = nil
		natal.Ascendant = nil
		natal.MC = nil
	}

	return astroUsecase.BuildChartSummary(natal), true
}

// natal computes the structured chart summary with its narrative prompt.
func (c *Controller) natal(ctx *gin.Context) {
	summary, ok := c.computeSummary(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"chart":  summary,
		"prompt": astroUsecase.BuildPrompt(summary),
	})
}

// natalSVG renders the chart wheel as SVG.
func (c *Controller) natalSVG(ctx *gin.Context) {
	summary, ok := c.computeSummary(ctx)
	if !ok {
		return
	}

	ctx.Data(http.StatusOK, "image/svg+xml", astroUsecase.RenderWheelSVG(summary))
}

// currentPositions serves the daily-cached positions, falling back to a
// live ephemeris call on cache miss.
func (c *Controller) currentPositions(ctx *gin.Context) {
	if c.Cache != nil {
		if cached, err := c.Cache.Get(ctx.Request.Context(), astroUsecase.PositionsCacheKey); err == nil && cached != "" {
			var summary domain.ChartSummary
			if err := json.Unmarshal([]byte(cached), &summary); err == nil {
				ctx.JSON(http.StatusOK, gin.H{"positions": summary, "cached": true})
				return
			}
		}
	}

	if c.Ephemeris == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "ephemeris service not configured"})
		return
	}

	natal, err := c.Ephemeris.CurrentPositions(ctx.Request.Context())
	if err != nil {
		c.Log.Error("current positions request failed", "error", err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "ephemeris service unavailable"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"positions": astroUsecase.BuildChartSummary(natal), "cached": false})
}
