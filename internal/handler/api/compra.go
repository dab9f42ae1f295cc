package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "compras-service/internal/handler/dto/request"
	resdto "compras-service/internal/handler/dto/response"
	"compras-service/internal/handler/middleware"
	"compras-service/internal/usecase/commands"
	"compras-service/internal/usecase/queries"
)

type CompraHandler struct {
	compraCommands commands.CompraCommands
	compraQueries  queries.CompraQueries
}

func NewCompraHandler(compraCommands commands.CompraCommands, compraQueries queries.CompraQueries) *CompraHandler {
	return &CompraHandler{
		compraCommands: compraCommands,
		compraQueries:  compraQueries,
	}
}

// @Summary Register course purchase
// @Description Validate the course against the directory and commit a purchase record
// @Tags compras
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.CreateCompraRequest true "Purchase request"
// @Success 201 {object} resdto.CreateCompraResponse
// @Failure 400 {object} map[string]any
// @Failure 401 {object} map[string]any
// @Failure 403 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Failure 409 {object} map[string]any
// @Failure 502 {object} map[string]any
// @Router /compras [post]
func (h *CompraHandler) CreateCompra(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{"message": "Internal server error"},
		})
		return
	}

	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"message": err.Error()},
		})
		return
	}

	var req reqdto.CreateCompraRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"message": "curso_id is required"},
		})
		return
	}

	result, err := h.compraCommands.CreateCompra(c.Request.Context(), actor, commands.CreateCompraParams{
		CursoID: req.CursoID,
	}, idempotencyKey)
	if err != nil {
		h.rejectCreate(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromCompraView(result.Compra))
}

func (h *CompraHandler) rejectCreate(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrCursoNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": gin.H{"message": "Curso not found"},
		})
	case errors.Is(err, commands.ErrTenantMismatch):
		c.JSON(http.StatusForbidden, gin.H{
			"error": gin.H{"message": "Curso belongs to another tenant"},
		})
	case errors.Is(err, commands.ErrMontoInvalido):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"message": "Curso price is invalid"},
		})
	case errors.Is(err, commands.ErrCatalogUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": gin.H{"message": "Course directory unavailable"},
		})
	case errors.Is(err, commands.ErrDuplicateCompra):
		c.JSON(http.StatusConflict, gin.H{
			"error": gin.H{"message": "Duplicate purchase request with different parameters"},
		})
	case errors.Is(err, commands.ErrDomainValidationFailed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": gin.H{"message": "Domain validation failed"},
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{"message": "Internal server error"},
		})
	}
}

// @Summary List purchases
// @Description List the caller's purchases enriched with live course detail
// @Tags compras
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CompraListResponse
// @Failure 401 {object} map[string]any
// @Router /compras [get]
func (h *CompraHandler) ListCompras(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{"message": "Internal server error"},
		})
		return
	}

	enriched, err := h.compraQueries.ListByUsuario(c.Request.Context(), actor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{"message": "Internal server error"},
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromEnrichedCompras(enriched))
}

func getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	keyStr := c.GetHeader("Idempotency-Key")
	if keyStr == "" {
		return uuid.Nil, commands.ErrIdempotencyKeyRequired
	}

	key, err := uuid.Parse(keyStr)
	if err != nil {
		return uuid.Nil, errors.New("invalid idempotency key format")
	}

	return key, nil
}
