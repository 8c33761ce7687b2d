package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/truthdare/core/internal/application/services"
	"github.com/truthdare/core/internal/infrastructure/logger"
)

// DareHandler handles dare-related requests
type DareHandler struct {
	dareService *services.DareService
	logger      *logger.Logger
}

// NewDareHandler creates a new dare handler
func NewDareHandler(dareService *services.DareService, logger *logger.Logger) *DareHandler {
	return &DareHandler{
		dareService: dareService,
		logger:      logger,
	}
}

type dareDifficultyRequest struct {
	Difficulty string `param:"difficulty" validate:"required"`
}

// GetRandomDare handles getting a random dare challenge
func (h *DareHandler) GetRandomDare(c echo.Context) error {
	dare, err := h.dareService.GetRandomDare(c.Request().Context())
	if err != nil {
		h.logger.Error("Get random dare failed", "error", err)
		status, resp := mapDomainError(err)
		return c.JSON(status, resp)
	}

	return c.JSON(http.StatusOK, newDareResponse(dare))
}

// GetDareByDifficulty handles getting a random dare at a difficulty
func (h *DareHandler) GetDareByDifficulty(c echo.Context) error {
	req := dareDifficultyRequest{Difficulty: c.Param("difficulty")}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "invalid_input",
			Message: "difficulty is required",
		})
	}

	dare, err := h.dareService.GetDareByDifficulty(c.Request().Context(), req.Difficulty)
	if err != nil {
		h.logger.Error("Get dare by difficulty failed", "difficulty", req.Difficulty, "error", err)
		status, resp := mapDomainError(err)
		return c.JSON(status, resp)
	}

	return c.JSON(http.StatusOK, newDareResponse(dare))
}

// GetDifficulties handles listing available dare difficulties
func (h *DareHandler) GetDifficulties(c echo.Context) error {
	difficulties, err := h.dareService.GetAvailableDifficulties(c.Request().Context())
	if err != nil {
		h.logger.Error("Get difficulties failed", "error", err)
		status, resp := mapDomainError(err)
		return c.JSON(status, resp)
	}

	return c.JSON(http.StatusOK, difficulties)
}
