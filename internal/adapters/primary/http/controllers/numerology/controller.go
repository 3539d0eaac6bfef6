package numerology

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vbautistacode/etheria/internal/domain"
	numerologyUsecase "github.com/vbautistacode/etheria/internal/usecases/numerology"
)

type Controller struct {
	Numerology *numerologyUsecase.Service
	Log        *slog.Logger
}

func New(numerology *numerologyUsecase.Service, log *slog.Logger) *Controller {
	return &Controller{
		Numerology: numerology,
		Log:        log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1/numerology")
	v1.GET("/report", c.report)
	v1.GET("/annual", c.annual)
}

// report computes the full numerology map for a name and birth date.
func (c *Controller) report(ctx *gin.Context) {
	name := ctx.Query("name")
	if name == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	birthDate, err := time.Parse("2006-01-02", ctx.Query("birth_date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "birth_date must be YYYY-MM-DD"})
		return
	}

	method := domain.NumerologyMethod(ctx.DefaultQuery("method", string(domain.MethodPythagorean)))
	if method != domain.MethodPythagorean && method != domain.MethodCabalistic {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "method must be pythagorean or cabalistic"})
		return
	}

	report, err := c.Numerology.FullReport(name, birthDate, method, time.Now().UTC())
	if err != nil {
		if domain.IsBusinessError(err) {
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.Log.Error("failed to build numerology report", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, report)
}

// annual returns the letters-count influence with its chakra quadrant.
func (c *Controller) annual(ctx *gin.Context) {
	name := ctx.Query("name")
	if name == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	ctx.JSON(http.StatusOK, c.Numerology.AnnualInfluence(name))
}
