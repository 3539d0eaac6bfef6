package therapies

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vbautistacode/etheria/internal/domain"
	therapyUsecase "github.com/vbautistacode/etheria/internal/usecases/therapy"
)

type Controller struct {
	Therapy *therapyUsecase.Service
	Log     *slog.Logger
}

func New(therapy *therapyUsecase.Service, log *slog.Logger) *Controller {
	return &Controller{
		Therapy: therapy,
		Log:     log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")
	v1.GET("/therapies", c.list)
	v1.GET("/therapies/:kind", c.content)
	v1.GET("/chakras/:number", c.chakraByNumber)
	v1.GET("/chakras", c.chakraPanel)
}

func (c *Controller) list(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"kinds": c.Therapy.Kinds()})
}

func (c *Controller) content(ctx *gin.Context) {
	sheet, err := c.Therapy.Content(domain.TherapyKind(ctx.Param("kind")))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, sheet)
}

func (c *Controller) chakraByNumber(ctx *gin.Context) {
	number, err := strconv.Atoi(ctx.Param("number"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "number must be an integer"})
		return
	}

	panel, err := c.Therapy.ChakraByNumber(ctx.Request.Context(), number)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, panel)
}

// chakraPanel derives a person's chakra panel from their full name.
func (c *Controller) chakraPanel(ctx *gin.Context) {
	name := ctx.Query("name")
	panel, err := c.Therapy.ChakraPanelFor(ctx.Request.Context(), name)
	if err != nil {
		if domain.IsBusinessError(err) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.Log.Error("failed to build chakra panel", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	ctx.JSON(http.StatusOK, panel)
}
