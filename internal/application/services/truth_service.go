package services

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/truthdare/core/internal/domain/entities"
	"github.com/truthdare/core/internal/infrastructure/logger"
	"github.com/truthdare/core/internal/ports"
)

// TruthService handles truth question operations
type TruthService struct {
	repo   ports.ContentRepository
	logger *logger.Logger
}

// NewTruthService creates a new truth service
func NewTruthService(repo ports.ContentRepository, logger *logger.Logger) *TruthService {
	return &TruthService{
		repo:   repo,
		logger: logger,
	}
}

// GetRandomTruth returns a random truth question from all categories
func (s *TruthService) GetRandomTruth(ctx context.Context) (*entities.Truth, error) {
	truth, err := s.repo.RandomTruth(ctx)
	if err != nil {
		s.logger.Error("Failed to get random truth", "error", err)
		return nil, err
	}

	s.logger.Debug("Retrieved random truth", "id", truth.ID)
	return truth, nil
}

// GetTruthByCategory returns a random truth from the given category. The
// category is trimmed and lowercased before lookup; a blank category is
// rejected before normalization.
func (s *TruthService) GetTruthByCategory(ctx context.Context, category string) (*entities.Truth, error) {
	if strings.TrimSpace(category) == "" {
		return nil, &entities.InvalidInputError{
			Field:  "category",
			Value:  category,
			Reason: "category cannot be empty",
		}
	}

	normalized := strings.ToLower(strings.TrimSpace(category))

	truth, err := s.repo.TruthByCategory(ctx, normalized)
	if err != nil {
		var notFound *entities.KeyNotFoundError
		if errors.As(err, &notFound) {
			// Rewrap with the caller's original input and a sorted key set
			available, listErr := s.GetAvailableCategories(ctx)
			if listErr != nil {
				available = notFound.Available
			}
			return nil, &entities.KeyNotFoundError{
				Kind:      "category",
				Requested: category,
				Available: available,
			}
		}
		s.logger.Error("Failed to get truth by category", "category", normalized, "error", err)
		return nil, err
	}

	s.logger.Debug("Retrieved truth by category", "category", normalized, "id", truth.ID)
	return truth, nil
}

// GetAvailableCategories returns all category keys, lexicographically sorted
func (s *TruthService) GetAvailableCategories(ctx context.Context) ([]string, error) {
	categories, err := s.repo.Categories(ctx)
	if err != nil {
		s.logger.Error("Failed to get available categories", "error", err)
		return nil, err
	}

	sort.Strings(categories)
	return categories, nil
}

// GetCategoryStats returns the truth count per category
func (s *TruthService) GetCategoryStats(ctx context.Context) (map[string]int, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		s.logger.Error("Failed to get category stats", "error", err)
		return nil, err
	}

	return stats.Categories, nil
}
