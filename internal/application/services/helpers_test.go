package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/truthdare/core/internal/adapters/repository"
	"github.com/truthdare/core/internal/domain/entities"
	"github.com/truthdare/core/internal/infrastructure/logger"
)

const testTruths = `[
	{"id": 1, "content": "Truth one", "category": "general"},
	{"id": 2, "content": "Truth two", "category": "funny"},
	{"id": 3, "content": "Truth three", "category": "funny"},
	{"id": 4, "content": "Truth four", "category": "deep"}
]`

const testDares = `[
	{"id": 1, "content": "Dare one", "difficulty": "medium"},
	{"id": 2, "content": "Dare two", "difficulty": "extreme"},
	{"id": 3, "content": "Dare three", "difficulty": "easy"},
	{"id": 4, "content": "Dare four", "difficulty": "insane"},
	{"id": 5, "content": "Dare five", "difficulty": "hard"}
]`

func newFixtureRepo(t *testing.T, truths, dares string) *repository.ContentRepository {
	t.Helper()
	dir := t.TempDir()
	truthsPath := filepath.Join(dir, "truths.json")
	daresPath := filepath.Join(dir, "dares.json")
	require.NoError(t, os.WriteFile(truthsPath, []byte(truths), 0o644))
	require.NoError(t, os.WriteFile(daresPath, []byte(dares), 0o644))
	return repository.NewContentRepository(truthsPath, daresPath, logger.NewNop())
}

// stubRepo lets individual tests fail specific repository calls
type stubRepo struct {
	ensureLoadedFn     func(ctx context.Context) error
	randomTruthFn      func(ctx context.Context) (*entities.Truth, error)
	truthByCategoryFn  func(ctx context.Context, category string) (*entities.Truth, error)
	categoriesFn       func(ctx context.Context) ([]string, error)
	randomDareFn       func(ctx context.Context) (*entities.Dare, error)
	dareByDifficultyFn func(ctx context.Context, difficulty string) (*entities.Dare, error)
	difficultiesFn     func(ctx context.Context) ([]string, error)
	statsFn            func(ctx context.Context) (*entities.ContentStats, error)
}

func (s *stubRepo) EnsureLoaded(ctx context.Context) error {
	if s.ensureLoadedFn != nil {
		return s.ensureLoadedFn(ctx)
	}
	return nil
}

func (s *stubRepo) RandomTruth(ctx context.Context) (*entities.Truth, error) {
	return s.randomTruthFn(ctx)
}

func (s *stubRepo) TruthByCategory(ctx context.Context, category string) (*entities.Truth, error) {
	return s.truthByCategoryFn(ctx, category)
}

func (s *stubRepo) Categories(ctx context.Context) ([]string, error) {
	return s.categoriesFn(ctx)
}

func (s *stubRepo) RandomDare(ctx context.Context) (*entities.Dare, error) {
	return s.randomDareFn(ctx)
}

func (s *stubRepo) DareByDifficulty(ctx context.Context, difficulty string) (*entities.Dare, error) {
	return s.dareByDifficultyFn(ctx, difficulty)
}

func (s *stubRepo) Difficulties(ctx context.Context) ([]string, error) {
	return s.difficultiesFn(ctx)
}

func (s *stubRepo) Stats(ctx context.Context) (*entities.ContentStats, error) {
	return s.statsFn(ctx)
}
