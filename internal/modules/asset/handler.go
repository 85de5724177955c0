package asset

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
	rg.GET("/assets", h.List)
	rg.GET("/assets/:id", h.Get)
	rg.GET("/assets/:id/history", h.History)

	guarded := rg.Group("/assets", middleware.ManagerOrAdmin())
	guarded.POST("", h.Create)
	guarded.PUT("/:id", h.Update)
	guarded.DELETE("/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	ident := middleware.CurrentIdentity(c)

	assets, err := h.service.List(c.Request.Context(), ident)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, assets)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ident := middleware.CurrentIdentity(c)

	a, err := h.service.Get(c.Request.Context(), ident, id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, a)
}

func (h *Handler) History(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ident := middleware.CurrentIdentity(c)

	history, err := h.service.History(c.Request.Context(), ident, id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, history)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	ident := middleware.CurrentIdentity(c)

	a, err := h.service.Create(c.Request.Context(), ident, req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, a)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	ident := middleware.CurrentIdentity(c)

	a, err := h.service.Update(c.Request.Context(), ident, id, req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, a)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ident := middleware.CurrentIdentity(c)

	if err := h.service.Delete(c.Request.Context(), ident, id); err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{})
}

func (h *Handler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Asset not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not have access to this asset")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process asset")
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid asset id")
		return 0, false
	}
	return id, true
}
