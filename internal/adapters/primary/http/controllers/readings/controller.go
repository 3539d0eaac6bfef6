package readings

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vbautistacode/etheria/internal/domain"
	readingUsecase "github.com/vbautistacode/etheria/internal/usecases/reading"
)

const defaultListLimit = 20

type Controller struct {
	Readings *readingUsecase.Service
	Log      *slog.Logger
}

func New(readings *readingUsecase.Service, log *slog.Logger) *Controller {
	return &Controller{
		Readings: readings,
		Log:      log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")
	v1.POST("/readings", c.create)
	v1.GET("/readings", c.list)
	v1.GET("/readings/:id", c.getByID)
}

func (c *Controller) create(ctx *gin.Context) {
	var payload CreateReadingRequest
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		c.Log.Warn("failed to bind reading request", "error", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	req, err := c.toDomain(payload)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reading, err := c.Readings.Generate(ctx.Request.Context(), req)
	if err != nil {
		if domain.IsBusinessError(err) {
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.Log.Error("failed to generate reading", "error", err, "person_name", payload.Name)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, reading)
}

func (c *Controller) toDomain(payload CreateReadingRequest) (domain.ReadingRequest, error) {
	req := domain.ReadingRequest{
		Name:       payload.Name,
		BirthPlace: payload.BirthPlace,
		Latitude:   payload.Latitude,
		Longitude:  payload.Longitude,
		Timezone:   payload.Timezone,
		Method:     domain.NumerologyMethod(payload.Method),
		CycleMode:  domain.CycleMode(payload.CycleMode),
	}

	birthDate, err := time.Parse("2006-01-02", payload.BirthDate)
	if err != nil {
		return req, errors.New("birth_date must be YYYY-MM-DD")
	}
	req.BirthDate = birthDate

	if payload.BirthTime != "" {
		birthTime, err := time.Parse("15:04", payload.BirthTime)
		if err != nil {
			return req, errors.New("birth_time must be HH:MM")
		}
		t := time.Date(birthDate.Year(), birthDate.Month(), birthDate.Day(),
			birthTime.Hour(), birthTime.Minute(), 0, 0, time.UTC)
		req.BirthTime = &t
	}

	switch req.Method {
	case "", domain.MethodPythagorean, domain.MethodCabalistic:
	default:
		return req, errors.New("method must be pythagorean or cabalistic")
	}

	switch req.CycleMode {
	case "", domain.CycleAstrological, domain.CycleTheosophical, domain.CycleMajor:
	default:
		return req, errors.New("cycle_mode must be astrologico, teosofico or maior")
	}

	return req, nil
}

func (c *Controller) getByID(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid reading id"})
		return
	}

	reading, err := c.Readings.GetByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrReadingNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "reading not found"})
			return
		}
		c.Log.Error("failed to get reading", "error", err, "reading_id", id)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, reading)
}

func (c *Controller) list(ctx *gin.Context) {
	limit := defaultListLimit
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	var (
		readings []domain.Reading
		err      error
	)
	if name := ctx.Query("name"); name != "" {
		readings, err = c.Readings.ListByName(ctx.Request.Context(), name, limit)
	} else {
		readings, err = c.Readings.ListRecent(ctx.Request.Context(), limit)
	}
	if err != nil {
		if domain.IsBusinessError(err) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.Log.Error("failed to list readings", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": readings, "count": len(readings)})
}
