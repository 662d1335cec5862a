package handler

import (
	"github.com/gin-gonic/gin"

	productionapp "github.com/retailops/backend/internal/application/production"
)

// ProductionBatchHandler handles production batch API endpoints
type ProductionBatchHandler struct {
	BaseHandler
	batchService *productionapp.BatchService
}

// NewProductionBatchHandler creates a new ProductionBatchHandler
func NewProductionBatchHandler(batchService *productionapp.BatchService) *ProductionBatchHandler {
	return &ProductionBatchHandler{batchService: batchService}
}

// List godoc
// @Summary      List recent production batches
// @Description  Returns the most recent 500 batches ordered by date, then creation time, descending
// @Tags         production-batches
// @Produce      json
// @Success      200 {object} dto.Response{data=[]production.BatchResponse}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /production-batches [get]
func (h *ProductionBatchHandler) List(c *gin.Context) {
	batches, err := h.batchService.ListRecent(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithTotal(c, batches, int64(len(batches)))
}

// Record godoc
// @Summary      Record a production batch
// @Description  Records a day's output for a product, optionally setting aside a bonus pool
// @Tags         production-batches
// @Accept       json
// @Produce      json
// @Param        request body production.RecordBatchRequest true "Batch to record"
// @Success      201 {object} dto.Response{data=production.BatchResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /production-batches [post]
func (h *ProductionBatchHandler) Record(c *gin.Context) {
	var req productionapp.RecordBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	batch, err := h.batchService.Record(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, batch)
}

// RegisterRoutes registers all production batch routes
func (h *ProductionBatchHandler) RegisterRoutes(rg *gin.RouterGroup) {
	batches := rg.Group("/production-batches")
	{
		batches.GET("", h.List)
		batches.POST("", h.Record)
	}
}
