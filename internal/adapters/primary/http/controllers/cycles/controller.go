package cycles

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vbautistacode/etheria/internal/domain"
	cyclesUsecase "github.com/vbautistacode/etheria/internal/usecases/cycles"
)

type Controller struct {
	Cycles *cyclesUsecase.Service
	Log    *slog.Logger
}

func New(cycles *cyclesUsecase.Service, log *slog.Logger) *Controller {
	return &Controller{
		Cycles: cycles,
		Log:    log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1/cycles")
	v1.GET("/regents", c.regentByYear)
	v1.GET("/age/:age", c.cycleForAge)
	v1.GET("/first", c.firstCycle)
	v1.GET("/personal-year", c.personalYear)
}

func parseMode(ctx *gin.Context) (domain.CycleMode, bool) {
	mode := domain.CycleMode(ctx.DefaultQuery("mode", string(domain.CycleAstrological)))
	switch mode {
	case domain.CycleAstrological, domain.CycleTheosophical, domain.CycleMajor:
		return mode, true
	default:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "mode must be astrologico, teosofico or maior"})
		return "", false
	}
}

func (c *Controller) regentByYear(ctx *gin.Context) {
	year, err := strconv.Atoi(ctx.DefaultQuery("year", strconv.Itoa(time.Now().Year())))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "year must be an integer"})
		return
	}

	mode, ok := parseMode(ctx)
	if !ok {
		return
	}

	regency, err := c.Cycles.RegentByYear(year, mode)
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"regency":     regency,
		"label":       cyclesUsecase.ShortRegentLabel(regency),
		"description": cyclesUsecase.Description(mode),
	})
}

func (c *Controller) cycleForAge(ctx *gin.Context) {
	age, err := strconv.Atoi(ctx.Param("age"))
	if err != nil || age < 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "age must be a non-negative integer"})
		return
	}

	mode, ok := parseMode(ctx)
	if !ok {
		return
	}

	var cycle domain.CycleReading
	if mode == domain.CycleMajor {
		cycle, err = c.Cycles.MajorCycleForAge(age)
	} else {
		cycle, err = c.Cycles.CycleForAge(age, mode)
	}
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, cycle)
}

func (c *Controller) firstCycle(ctx *gin.Context) {
	birthDate, err := time.Parse("2006-01-02", ctx.Query("birth_date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "birth_date must be YYYY-MM-DD"})
		return
	}

	mode, ok := parseMode(ctx)
	if !ok {
		return
	}

	first, err := c.Cycles.FirstCycle(birthDate.Month(), birthDate.Day(), mode)
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, first)
}

func (c *Controller) personalYear(ctx *gin.Context) {
	birthDate, err := time.Parse("2006-01-02", ctx.Query("birth_date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "birth_date must be YYYY-MM-DD"})
		return
	}

	year := time.Now().Year()
	if raw := ctx.Query("year"); raw != "" {
		year, err = strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "year must be an integer"})
			return
		}
	}

	ctx.JSON(http.StatusOK, c.Cycles.PersonalYear(birthDate, year))
}
