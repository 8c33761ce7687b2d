package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/truthdare/core/internal/application/services"
	"github.com/truthdare/core/internal/infrastructure/logger"
)

// TruthHandler handles truth-related requests
type TruthHandler struct {
	truthService *services.TruthService
	logger       *logger.Logger
}

// NewTruthHandler creates a new truth handler
func NewTruthHandler(truthService *services.TruthService, logger *logger.Logger) *TruthHandler {
	return &TruthHandler{
		truthService: truthService,
		logger:       logger,
	}
}

type truthCategoryRequest struct {
	Category string `param:"category" validate:"required"`
}

// GetRandomTruth handles getting a random truth question
func (h *TruthHandler) GetRandomTruth(c echo.Context) error {
	truth, err := h.truthService.GetRandomTruth(c.Request().Context())
	if err != nil {
		h.logger.Error("Get random truth failed", "error", err)
		status, resp := mapDomainError(err)
		return c.JSON(status, resp)
	}

	return c.JSON(http.StatusOK, newTruthResponse(truth))
}

// GetTruthByCategory handles getting a random truth from a category
func (h *TruthHandler) GetTruthByCategory(c echo.Context) error {
	req := truthCategoryRequest{Category: c.Param("category")}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "invalid_input",
			Message: "category is required",
		})
	}

	truth, err := h.truthService.GetTruthByCategory(c.Request().Context(), req.Category)
	if err != nil {
		h.logger.Error("Get truth by category failed", "category", req.Category, "error", err)
		status, resp := mapDomainError(err)
		return c.JSON(status, resp)
	}

	return c.JSON(http.StatusOK, newTruthResponse(truth))
}

// GetCategories handles listing available truth categories
func (h *TruthHandler) GetCategories(c echo.Context) error {
	categories, err := h.truthService.GetAvailableCategories(c.Request().Context())
	if err != nil {
		h.logger.Error("Get categories failed", "error", err)
		status, resp := mapDomainError(err)
		return c.JSON(status, resp)
	}

	return c.JSON(http.StatusOK, categories)
}
