package services

import (
	"context"
	"math/rand"
	"time"

	"github.com/truthdare/core/internal/domain/entities"
	"github.com/truthdare/core/internal/infrastructure/logger"
)

// GameService composes truth and dare results into cross-cutting views:
// the 50/50 random choice, the health probe and combined statistics.
type GameService struct {
	truthService *TruthService
	dareService  *DareService
	logger       *logger.Logger
}

// NewGameService creates a new game service
func NewGameService(truthService *TruthService, dareService *DareService, logger *logger.Logger) *GameService {
	return &GameService{
		truthService: truthService,
		dareService:  dareService,
		logger:       logger,
	}
}

// GetRandomChoice returns a random truth or dare with equal probability
func (s *GameService) GetRandomChoice(ctx context.Context) (*entities.GameItem, error) {
	if rand.Intn(2) == 0 {
		truth, err := s.truthService.GetRandomTruth(ctx)
		if err != nil {
			return nil, err
		}
		return &entities.GameItem{
			ID:       truth.ID,
			Type:     entities.GameTypeTruth,
			Content:  truth.Content,
			Category: truth.Category,
		}, nil
	}

	dare, err := s.dareService.GetRandomDare(ctx)
	if err != nil {
		return nil, err
	}
	return &entities.GameItem{
		ID:         dare.ID,
		Type:       entities.GameTypeDare,
		Content:    dare.Content,
		Difficulty: dare.Difficulty,
	}, nil
}

// GetHealthStatus derives the health of the content corpus. It never
// returns an error: any internal failure is reported as an unhealthy
// payload so the probe always has a renderable result.
func (s *GameService) GetHealthStatus(ctx context.Context) *entities.HealthStatus {
	now := time.Now().UTC().Format(time.RFC3339)

	truthStats, err := s.truthService.GetCategoryStats(ctx)
	if err != nil {
		return s.unhealthy(now, err)
	}

	dareStats, err := s.dareService.GetDifficultyStats(ctx)
	if err != nil {
		return s.unhealthy(now, err)
	}

	totalTruths := 0
	for _, count := range truthStats {
		totalTruths += count
	}
	totalDares := 0
	for _, count := range dareStats {
		totalDares += count
	}

	status := entities.HealthStatusHealthy
	switch {
	case totalTruths == 0 && totalDares == 0:
		status = entities.HealthStatusUnhealthy
	case totalTruths == 0 || totalDares == 0:
		status = entities.HealthStatusDegraded
	}

	s.logger.Debug("Health check completed", "status", status)

	return &entities.HealthStatus{
		Status:    status,
		Timestamp: now,
		Data: entities.HealthData{
			TotalTruths:      totalTruths,
			TotalDares:       totalDares,
			TruthCategories:  len(truthStats),
			DareDifficulties: len(dareStats),
		},
		Categories:   truthStats,
		Difficulties: dareStats,
	}
}

func (s *GameService) unhealthy(timestamp string, err error) *entities.HealthStatus {
	s.logger.Error("Health check failed", "error", err)
	return &entities.HealthStatus{
		Status:       entities.HealthStatusUnhealthy,
		Timestamp:    timestamp,
		Error:        err.Error(),
		Categories:   map[string]int{},
		Difficulties: map[string]int{},
	}
}

// GetGameStats merges per-kind statistics into one combined view
func (s *GameService) GetGameStats(ctx context.Context) (*entities.GameStats, error) {
	truthStats, err := s.truthService.GetCategoryStats(ctx)
	if err != nil {
		return nil, err
	}

	dareStats, err := s.dareService.GetDifficultyStats(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := s.truthService.GetAvailableCategories(ctx)
	if err != nil {
		return nil, err
	}

	difficulties, err := s.dareService.GetAvailableDifficulties(ctx)
	if err != nil {
		return nil, err
	}

	totalTruths := 0
	for _, count := range truthStats {
		totalTruths += count
	}
	totalDares := 0
	for _, count := range dareStats {
		totalDares += count
	}

	return &entities.GameStats{
		Truths: entities.KindStats{
			Total:     totalTruths,
			Counts:    truthStats,
			Available: categories,
		},
		Dares: entities.KindStats{
			Total:     totalDares,
			Counts:    dareStats,
			Available: difficulties,
		},
		TotalItems: totalTruths + totalDares,
	}, nil
}
