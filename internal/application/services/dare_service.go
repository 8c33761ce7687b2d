package services

import (
	"context"
	"errors"
	"strings"

	"github.com/truthdare/core/internal/domain/entities"
	"github.com/truthdare/core/internal/infrastructure/logger"
	"github.com/truthdare/core/internal/ports"
)

// DareService handles dare challenge operations
type DareService struct {
	repo   ports.ContentRepository
	logger *logger.Logger
}

// NewDareService creates a new dare service
func NewDareService(repo ports.ContentRepository, logger *logger.Logger) *DareService {
	return &DareService{
		repo:   repo,
		logger: logger,
	}
}

// GetRandomDare returns a random dare challenge from all difficulties
func (s *DareService) GetRandomDare(ctx context.Context) (*entities.Dare, error) {
	dare, err := s.repo.RandomDare(ctx)
	if err != nil {
		s.logger.Error("Failed to get random dare", "error", err)
		return nil, err
	}

	s.logger.Debug("Retrieved random dare", "id", dare.ID)
	return dare, nil
}

// GetDareByDifficulty returns a random dare at the given difficulty. The
// difficulty is trimmed and lowercased before lookup; a blank difficulty
// is rejected before normalization.
func (s *DareService) GetDareByDifficulty(ctx context.Context, difficulty string) (*entities.Dare, error) {
	if strings.TrimSpace(difficulty) == "" {
		return nil, &entities.InvalidInputError{
			Field:  "difficulty",
			Value:  difficulty,
			Reason: "difficulty cannot be empty",
		}
	}

	normalized := strings.ToLower(strings.TrimSpace(difficulty))

	dare, err := s.repo.DareByDifficulty(ctx, normalized)
	if err != nil {
		var notFound *entities.KeyNotFoundError
		if errors.As(err, &notFound) {
			available, listErr := s.GetAvailableDifficulties(ctx)
			if listErr != nil {
				available = notFound.Available
			}
			return nil, &entities.KeyNotFoundError{
				Kind:      "difficulty",
				Requested: difficulty,
				Available: available,
			}
		}
		s.logger.Error("Failed to get dare by difficulty", "difficulty", normalized, "error", err)
		return nil, err
	}

	s.logger.Debug("Retrieved dare by difficulty", "difficulty", normalized, "id", dare.ID)
	return dare, nil
}

// GetAvailableDifficulties returns all difficulty keys. Present members of
// {easy, medium, hard} come first in that order, followed by any remaining
// keys in index-creation order.
func (s *DareService) GetAvailableDifficulties(ctx context.Context) ([]string, error) {
	difficulties, err := s.repo.Difficulties(ctx)
	if err != nil {
		s.logger.Error("Failed to get available difficulties", "error", err)
		return nil, err
	}

	present := make(map[string]bool, len(difficulties))
	for _, d := range difficulties {
		present[d] = true
	}

	ordered := make([]string, 0, len(difficulties))
	for _, level := range entities.StandardDifficulties {
		if present[level] {
			ordered = append(ordered, level)
		}
	}
	for _, d := range difficulties {
		if !contains(ordered, d) {
			ordered = append(ordered, d)
		}
	}

	return ordered, nil
}

// GetDifficultyStats returns the dare count per difficulty
func (s *DareService) GetDifficultyStats(ctx context.Context) (map[string]int, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		s.logger.Error("Failed to get difficulty stats", "error", err)
		return nil, err
	}

	return stats.Difficulties, nil
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
