package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/truthdare/core/internal/application/services"
	"github.com/truthdare/core/internal/infrastructure/logger"
)

// GameHandler handles game-level requests: the random truth-or-dare
// choice, health checks and combined statistics
type GameHandler struct {
	gameService *services.GameService
	logger      *logger.Logger
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameService *services.GameService, logger *logger.Logger) *GameHandler {
	return &GameHandler{
		gameService: gameService,
		logger:      logger,
	}
}

// GetRandomGame handles the 50/50 truth-or-dare choice
func (h *GameHandler) GetRandomGame(c echo.Context) error {
	item, err := h.gameService.GetRandomChoice(c.Request().Context())
	if err != nil {
		h.logger.Error("Get random game failed", "error", err)
		status, resp := mapDomainError(err)
		return c.JSON(status, resp)
	}

	return c.JSON(http.StatusOK, GameResponse{
		ID:         item.ID,
		Type:       item.Type,
		Content:    item.Content,
		Category:   item.Category,
		Difficulty: item.Difficulty,
	})
}

// HealthCheck reports the health of the content corpus. Always responds
// 200; degradation is expressed in the payload, never as an error status.
func (h *GameHandler) HealthCheck(c echo.Context) error {
	health := h.gameService.GetHealthStatus(c.Request().Context())
	return c.JSON(http.StatusOK, health)
}

// GetStats handles the combined statistics endpoint
func (h *GameHandler) GetStats(c echo.Context) error {
	stats, err := h.gameService.GetGameStats(c.Request().Context())
	if err != nil {
		h.logger.Error("Get stats failed", "error", err)
		status, resp := mapDomainError(err)
		return c.JSON(status, resp)
	}

	return c.JSON(http.StatusOK, newStatsResponse(stats))
}
