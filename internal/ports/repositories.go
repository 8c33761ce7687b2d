package ports

import (
	"context"

	"github.com/truthdare/core/internal/domain/entities"
)

// ContentRepository defines the read-only interface over the loaded
// truth/dare corpus. Implementations load lazily on first use; every
// method may therefore fail with SourceMissingError or
// SourceMalformedError in addition to the errors it documents.
type ContentRepository interface {
	// EnsureLoaded loads the corpus if it is not loaded yet. Idempotent.
	EnsureLoaded(ctx context.Context) error

	// RandomTruth picks uniformly over all truths.
	// Fails with NoDataAvailableError when none are loaded.
	RandomTruth(ctx context.Context) (*entities.Truth, error)

	// TruthByCategory picks uniformly within one category bucket. The
	// category must already be normalized (lowercase, trimmed). Fails
	// with KeyNotFoundError when the bucket does not exist.
	TruthByCategory(ctx context.Context, category string) (*entities.Truth, error)

	// Categories returns the category keys in index-creation order.
	Categories(ctx context.Context) ([]string, error)

	// RandomDare picks uniformly over all dares.
	RandomDare(ctx context.Context) (*entities.Dare, error)

	// DareByDifficulty picks uniformly within one difficulty bucket.
	DareByDifficulty(ctx context.Context, difficulty string) (*entities.Dare, error)

	// Difficulties returns the difficulty keys in index-creation order.
	Difficulties(ctx context.Context) ([]string, error)

	// Stats returns totals and per-bucket counts for both kinds.
	Stats(ctx context.Context) (*entities.ContentStats, error)
}
