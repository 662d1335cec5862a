package handler

import (
	"github.com/gin-gonic/gin"

	planningapp "github.com/retailops/backend/internal/application/planning"
)

// RevenuePlanHandler handles revenue plan API endpoints
type RevenuePlanHandler struct {
	BaseHandler
	planService *planningapp.PlanService
}

// NewRevenuePlanHandler creates a new RevenuePlanHandler
func NewRevenuePlanHandler(planService *planningapp.PlanService) *RevenuePlanHandler {
	return &RevenuePlanHandler{planService: planService}
}

// List godoc
// @Summary      List revenue plans
// @Description  Returns all revenue plans
// @Tags         revenue-plans
// @Produce      json
// @Success      200 {object} dto.Response{data=[]planning.PlanResponse}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /revenue-plans [get]
func (h *RevenuePlanHandler) List(c *gin.Context) {
	plans, err := h.planService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithTotal(c, plans, int64(len(plans)))
}

// Create godoc
// @Summary      Create a revenue plan
// @Description  Sets a revenue target for a district over an inclusive day period
// @Tags         revenue-plans
// @Accept       json
// @Produce      json
// @Param        request body planning.CreatePlanRequest true "Plan creation request"
// @Success      201 {object} dto.Response{data=planning.PlanResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /revenue-plans [post]
func (h *RevenuePlanHandler) Create(c *gin.Context) {
	var req planningapp.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	plan, err := h.planService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, plan)
}

// RegisterRoutes registers all revenue plan routes
func (h *RevenuePlanHandler) RegisterRoutes(rg *gin.RouterGroup) {
	plans := rg.Group("/revenue-plans")
	{
		plans.GET("", h.List)
		plans.POST("", h.Create)
	}
}
