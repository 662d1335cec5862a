package handler

import (
	"github.com/gin-gonic/gin"

	networkapp "github.com/retailops/backend/internal/application/network"
)

// StoreHandler handles store-related API endpoints
type StoreHandler struct {
	BaseHandler
	storeService *networkapp.StoreService
}

// NewStoreHandler creates a new StoreHandler
func NewStoreHandler(storeService *networkapp.StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

// List godoc
// @Summary      List stores
// @Description  Returns all stores with their district assignment
// @Tags         stores
// @Produce      json
// @Success      200 {object} dto.Response{data=[]network.StoreResponse}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /stores [get]
func (h *StoreHandler) List(c *gin.Context) {
	stores, err := h.storeService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithTotal(c, stores, int64(len(stores)))
}

// Create godoc
// @Summary      Create a store
// @Description  Creates a new store, optionally assigned to a district
// @Tags         stores
// @Accept       json
// @Produce      json
// @Param        request body network.CreateStoreRequest true "Store creation request"
// @Success      201 {object} dto.Response{data=network.StoreResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /stores [post]
func (h *StoreHandler) Create(c *gin.Context) {
	var req networkapp.CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	store, err := h.storeService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, store)
}

// Update godoc
// @Summary      Update a store
// @Description  Partially updates a store. Absent fields are unchanged; an explicit null districtId clears the district assignment.
// @Tags         stores
// @Accept       json
// @Produce      json
// @Param        id path string true "Store ID" format(uuid)
// @Param        request body network.UpdateStoreRequest true "Partial store update"
// @Success      200 {object} dto.Response{data=network.StoreResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /stores/{id} [patch]
func (h *StoreHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	var req networkapp.UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	store, err := h.storeService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, store)
}

// Delete godoc
// @Summary      Delete a store
// @Description  Deletes a store. Historical movements keep their store reference; reports resolve it to a placeholder.
// @Tags         stores
// @Produce      json
// @Param        id path string true "Store ID" format(uuid)
// @Success      204 "No Content"
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /stores/{id} [delete]
func (h *StoreHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	if err := h.storeService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterRoutes registers all store routes
func (h *StoreHandler) RegisterRoutes(rg *gin.RouterGroup) {
	stores := rg.Group("/stores")
	{
		stores.GET("", h.List)
		stores.POST("", h.Create)
		stores.PATCH("/:id", h.Update)
		stores.DELETE("/:id", h.Delete)
	}
}
