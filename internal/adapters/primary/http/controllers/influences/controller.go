package influences

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vbautistacode/etheria/internal/domain"
	influencesUsecase "github.com/vbautistacode/etheria/internal/usecases/influences"
)

type Controller struct {
	Influences *influencesUsecase.Service
	Log        *slog.Logger
}

func New(influences *influencesUsecase.Service, log *slog.Logger) *Controller {
	return &Controller{
		Influences: influences,
		Log:        log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1/influences")
	v1.GET("/combined", c.combined)
}

// combined weighs the major-cycle, phase, weekday and hour planets for a
// person at the current moment.
func (c *Controller) combined(ctx *gin.Context) {
	birthDate, err := time.Parse("2006-01-02", ctx.Query("birth_date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "birth_date must be YYYY-MM-DD"})
		return
	}

	now := time.Now()
	age := now.Year() - birthDate.Year()
	anniversary := time.Date(now.Year(), birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, time.UTC)
	if now.Before(anniversary) {
		age--
	}
	if raw := ctx.Query("age"); raw != "" {
		age, err = strconv.Atoi(raw)
		if err != nil || age < 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "age must be a non-negative integer"})
			return
		}
	}

	report, err := c.Influences.InterpretAt(birthDate.Year(), now, age)
	if err != nil {
		if domain.IsBusinessError(err) {
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.Log.Error("failed to interpret influences", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, report)
}
