package handler

import (
	"github.com/gin-gonic/gin"

	ledgerapp "github.com/retailops/backend/internal/application/ledger"
)

// MovementHandler handles the append-only movement ledger API endpoints.
// Movements have no update or delete routes; corrections are booked as
// counter-movements.
type MovementHandler struct {
	BaseHandler
	movementService *ledgerapp.MovementService
}

// NewMovementHandler creates a new MovementHandler
func NewMovementHandler(movementService *ledgerapp.MovementService) *MovementHandler {
	return &MovementHandler{movementService: movementService}
}

// List godoc
// @Summary      List movements
// @Description  Returns movements for an inclusive day range, optionally narrowed to a district or store
// @Tags         movements
// @Produce      json
// @Param        from query string false "Start day (yyyy-MM-dd, inclusive)"
// @Param        to query string false "End day (yyyy-MM-dd, inclusive)"
// @Param        districtId query string false "District filter" format(uuid)
// @Param        storeId query string false "Store filter" format(uuid)
// @Success      200 {object} dto.Response{data=[]ledger.MovementResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /movements [get]
func (h *MovementHandler) List(c *gin.Context) {
	filter, err := parsePeriodFilter(c)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	movements, err := h.movementService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithTotal(c, movements, int64(len(movements)))
}

// Record godoc
// @Summary      Record a movement
// @Description  Appends a movement fact. Consuming operations (sale, exchange, bonus, writeoff) are rejected when they would exceed the day's recorded production for the product.
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        request body ledger.RecordMovementRequest true "Movement to record"
// @Success      201 {object} dto.Response{data=ledger.MovementResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /movements [post]
func (h *MovementHandler) Record(c *gin.Context) {
	var req ledgerapp.RecordMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	movement, err := h.movementService.Record(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, movement)
}

// RegisterRoutes registers all movement routes
func (h *MovementHandler) RegisterRoutes(rg *gin.RouterGroup) {
	movements := rg.Group("/movements")
	{
		movements.GET("", h.List)
		movements.POST("", h.Record)
	}
}
