package handler

import (
	"github.com/gin-gonic/gin"

	ledgerapp "github.com/retailops/backend/internal/application/ledger"
)

// StorePaymentHandler handles the append-only store payment API endpoints
type StorePaymentHandler struct {
	BaseHandler
	paymentService *ledgerapp.PaymentService
}

// NewStorePaymentHandler creates a new StorePaymentHandler
func NewStorePaymentHandler(paymentService *ledgerapp.PaymentService) *StorePaymentHandler {
	return &StorePaymentHandler{paymentService: paymentService}
}

// List godoc
// @Summary      List store payments
// @Description  Returns payments for an inclusive day range, optionally narrowed to a district or store
// @Tags         store-payments
// @Produce      json
// @Param        from query string false "Start day (yyyy-MM-dd, inclusive)"
// @Param        to query string false "End day (yyyy-MM-dd, inclusive)"
// @Param        districtId query string false "District filter" format(uuid)
// @Param        storeId query string false "Store filter" format(uuid)
// @Success      200 {object} dto.Response{data=[]ledger.PaymentResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /store-payments [get]
func (h *StorePaymentHandler) List(c *gin.Context) {
	filter, err := parsePeriodFilter(c)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	payments, err := h.paymentService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithTotal(c, payments, int64(len(payments)))
}

// Record godoc
// @Summary      Record a store payment
// @Description  Appends a cash inflow against a store's debt. The district defaults to the store's assignment when omitted.
// @Tags         store-payments
// @Accept       json
// @Produce      json
// @Param        request body ledger.RecordPaymentRequest true "Payment to record"
// @Success      201 {object} dto.Response{data=ledger.PaymentResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /store-payments [post]
func (h *StorePaymentHandler) Record(c *gin.Context) {
	var req ledgerapp.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	payment, err := h.paymentService.Record(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, payment)
}

// RegisterRoutes registers all store payment routes
func (h *StorePaymentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	payments := rg.Group("/store-payments")
	{
		payments.GET("", h.List)
		payments.POST("", h.Record)
	}
}
