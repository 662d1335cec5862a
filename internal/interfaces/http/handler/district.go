package handler

import (
	"github.com/gin-gonic/gin"

	networkapp "github.com/retailops/backend/internal/application/network"
)

// DistrictHandler handles district-related API endpoints
type DistrictHandler struct {
	BaseHandler
	districtService *networkapp.DistrictService
}

// NewDistrictHandler creates a new DistrictHandler
func NewDistrictHandler(districtService *networkapp.DistrictService) *DistrictHandler {
	return &DistrictHandler{districtService: districtService}
}

// List godoc
// @Summary      List districts
// @Description  Returns all districts
// @Tags         districts
// @Produce      json
// @Success      200 {object} dto.Response{data=[]network.DistrictResponse}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /districts [get]
func (h *DistrictHandler) List(c *gin.Context) {
	districts, err := h.districtService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithTotal(c, districts, int64(len(districts)))
}

// Create godoc
// @Summary      Create a district
// @Description  Creates a new district with a unique name
// @Tags         districts
// @Accept       json
// @Produce      json
// @Param        request body network.CreateDistrictRequest true "District creation request"
// @Success      201 {object} dto.Response{data=network.DistrictResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /districts [post]
func (h *DistrictHandler) Create(c *gin.Context) {
	var req networkapp.CreateDistrictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	district, err := h.districtService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, district)
}

// Update godoc
// @Summary      Rename a district
// @Description  Replaces the district name
// @Tags         districts
// @Accept       json
// @Produce      json
// @Param        id path string true "District ID" format(uuid)
// @Param        request body network.UpdateDistrictRequest true "District update request"
// @Success      200 {object} dto.Response{data=network.DistrictResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /districts/{id} [put]
func (h *DistrictHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	var req networkapp.UpdateDistrictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	district, err := h.districtService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, district)
}

// Delete godoc
// @Summary      Delete a district
// @Description  Deletes a district. Stores assigned to it become unassigned; movement history is untouched.
// @Tags         districts
// @Produce      json
// @Param        id path string true "District ID" format(uuid)
// @Success      204 "No Content"
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /districts/{id} [delete]
func (h *DistrictHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	if err := h.districtService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterRoutes registers all district routes
func (h *DistrictHandler) RegisterRoutes(rg *gin.RouterGroup) {
	districts := rg.Group("/districts")
	{
		districts.GET("", h.List)
		districts.POST("", h.Create)
		districts.PUT("/:id", h.Update)
		districts.DELETE("/:id", h.Delete)
	}
}
