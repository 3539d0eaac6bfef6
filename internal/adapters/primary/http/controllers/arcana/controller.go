package arcana

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vbautistacode/etheria/internal/domain"
	arcanaUsecase "github.com/vbautistacode/etheria/internal/usecases/arcana"
)

type Controller struct {
	Arcana *arcanaUsecase.Service
	Log    *slog.Logger
}

func New(arcana *arcanaUsecase.Service, log *slog.Logger) *Controller {
	return &Controller{
		Arcana: arcana,
		Log:    log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1/arcana")
	v1.GET("", c.lookup)
	v1.GET("/reading", c.reading)
	v1.GET("/correlate", c.correlate)
}

// lookup finds an arcanum by planet/sign name, card number or birth date.
func (c *Controller) lookup(ctx *gin.Context) {
	if name := ctx.Query("name"); name != "" {
		arc, ok := arcanaUsecase.ByName(name)
		if !ok {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "no arcanum for " + name})
			return
		}
		ctx.JSON(http.StatusOK, arc)
		return
	}

	if raw := ctx.Query("number"); raw != "" {
		number, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "number must be an integer"})
			return
		}
		arc, ok := arcanaUsecase.ByNumber(number)
		if !ok {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "no arcanum for number " + raw})
			return
		}
		ctx.JSON(http.StatusOK, arc)
		return
	}

	if raw := ctx.Query("birth_date"); raw != "" {
		birthDate, err := time.Parse("2006-01-02", raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "birth_date must be YYYY-MM-DD"})
			return
		}
		number := arcanaUsecase.FromDOB(birthDate)
		arc, ok := arcanaUsecase.ByNumber(number)
		if !ok {
			arc = domain.Arcanum{Number: number}
		}
		ctx.JSON(http.StatusOK, arc)
		return
	}

	ctx.JSON(http.StatusBadRequest, gin.H{"error": "name, number or birth_date is required"})
}

// reading renders the arcanum texts, optionally bound to a natal house.
func (c *Controller) reading(ctx *gin.Context) {
	raw := ctx.Query("number")
	number, err := strconv.Atoi(raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "number must be an integer"})
		return
	}
	arc, ok := arcanaUsecase.ByNumber(number)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "no arcanum for number " + raw})
		return
	}

	house := 0
	if rawHouse := ctx.Query("house"); rawHouse != "" {
		house, err = strconv.Atoi(rawHouse)
		if err != nil || house < 1 || house > 12 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "house must be 1..12"})
			return
		}
	}

	name := ctx.Query("person")
	reading := c.Arcana.Reading(arc, house, 0, name)

	response := gin.H{"reading": reading}
	if house > 0 {
		response["rendered"] = c.Arcana.RenderHouse(arc, house, name)
	}
	ctx.JSON(http.StatusOK, response)
}

// correlate maps a planet and its longitude onto an arcanum with a
// confidence score.
func (c *Controller) correlate(ctx *gin.Context) {
	planet := ctx.Query("planet")
	longitude, err := strconv.ParseFloat(ctx.Query("longitude"), 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "longitude must be a number"})
		return
	}

	arc, confidence, err := c.Arcana.Correlate(planet, longitude)
	if err != nil {
		if domain.IsBusinessError(err) {
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.Log.Error("failed to correlate arcanum", "error", err, "planet", planet)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"arcanum": arc, "confidence": confidence})
}
