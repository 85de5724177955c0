package workorder

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cmms/internal/middleware"
	"cmms/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/workorders", h.List)
	rg.GET("/workorders/:id", h.Get)
	rg.POST("/workorders", middleware.ManagerOrAdmin(), h.Create)
	// technicians also hit update; the service gates their field set
	rg.PUT("/workorders/:id", h.Update)
	rg.DELETE("/workorders/:id", middleware.ManagerOrAdmin(), h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	ident := middleware.CurrentIdentity(c)

	filters := ListFilters{
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
	}
	if v := c.Query("building"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid building id")
			return
		}
		filters.Building = &id
	}

	orders, err := h.service.List(c.Request.Context(), ident, filters)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(orders),
		"data":    orders,
	})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	wo, err := h.service.Get(c.Request.Context(), middleware.CurrentIdentity(c), id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, wo)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	wo, err := h.service.Create(c.Request.Context(), middleware.CurrentIdentity(c), req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, wo)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	wo, err := h.service.Update(c.Request.Context(), middleware.CurrentIdentity(c), id, req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, wo)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.CurrentIdentity(c), id); err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

func (h *Handler) renderError(c *gin.Context, err error) {
	var validationErr *ValidationError
	var stockErr *InsufficientStockError
	var refErr *ReferenceNotFoundError

	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Work order not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not authorized for this work order")
	case errors.As(err, &validationErr):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", validationErr.Error())
	case errors.As(err, &stockErr):
		response.ErrorWithDetails(c, http.StatusBadRequest, "INSUFFICIENT_STOCK", stockErr.Error(), gin.H{
			"partId":    stockErr.PartID,
			"available": stockErr.Available,
			"requested": stockErr.Requested,
		})
	case errors.As(err, &refErr):
		response.Error(c, http.StatusBadRequest, "REFERENCE_NOT_FOUND", refErr.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process work order")
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid work order id")
		return 0, false
	}
	return id, true
}
