package repository

import (
	"context"
	"encoding/json"
	"math/rand"
	"os"
	"strings"
	"sync"

	"github.com/truthdare/core/internal/domain/entities"
	"github.com/truthdare/core/internal/infrastructure/logger"
)

// truthRecord and dareRecord mirror the raw JSON shape of the data files.
// Missing category/difficulty fields decode to "" and are substituted with
// defaults at ingestion (lenient accept policy: a record is never rejected
// for a missing bucket key).
type truthRecord struct {
	ID       int    `json:"id"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

type dareRecord struct {
	ID         int    `json:"id"`
	Content    string `json:"content"`
	Difficulty string `json:"difficulty"`
}

// ContentRepository holds the immutable truth/dare corpus and its
// secondary indexes. The corpus is loaded lazily on first use and never
// mutated afterwards, so concurrent reads need no locking; the mutex only
// guards the not-loaded to loaded transition so concurrent first calls
// collapse into a single load.
type ContentRepository struct {
	truthsPath string
	daresPath  string
	logger     *logger.Logger

	mu     sync.Mutex
	loaded bool

	truths []entities.Truth
	dares  []entities.Dare

	byCategory   map[string][]entities.Truth
	byDifficulty map[string][]entities.Dare

	// bucket keys in creation order
	categoryOrder   []string
	difficultyOrder []string
}

// NewContentRepository creates a repository backed by the given JSON files.
// No I/O happens until the first operation.
func NewContentRepository(truthsPath, daresPath string, logger *logger.Logger) *ContentRepository {
	return &ContentRepository{
		truthsPath: truthsPath,
		daresPath:  daresPath,
		logger:     logger,
	}
}

// EnsureLoaded loads the corpus if needed. A failed load leaves the
// repository unloaded so a later call retries.
func (r *ContentRepository) EnsureLoaded(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.loaded {
		return nil
	}
	return r.load(ctx)
}

// load reads and indexes both data files. All-or-nothing: the in-memory
// state is replaced only after both files parsed and both indexes built.
// Caller must hold r.mu.
func (r *ContentRepository) load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var truths []entities.Truth
	if err := readRecords(r.truthsPath, func(rec truthRecord) {
		truths = append(truths, entities.Truth{
			ID:       rec.ID,
			Content:  rec.Content,
			Category: normalizeKey(rec.Category, entities.DefaultCategory),
		})
	}); err != nil {
		r.logger.LogDataLoad(r.truthsPath, 0, err)
		return err
	}

	var dares []entities.Dare
	if err := readRecords(r.daresPath, func(rec dareRecord) {
		dares = append(dares, entities.Dare{
			ID:         rec.ID,
			Content:    rec.Content,
			Difficulty: normalizeKey(rec.Difficulty, entities.DefaultDifficulty),
		})
	}); err != nil {
		r.logger.LogDataLoad(r.daresPath, 0, err)
		return err
	}

	byCategory := make(map[string][]entities.Truth)
	var categoryOrder []string
	for _, t := range truths {
		if _, ok := byCategory[t.Category]; !ok {
			categoryOrder = append(categoryOrder, t.Category)
		}
		byCategory[t.Category] = append(byCategory[t.Category], t)
	}

	byDifficulty := make(map[string][]entities.Dare)
	var difficultyOrder []string
	for _, d := range dares {
		if _, ok := byDifficulty[d.Difficulty]; !ok {
			difficultyOrder = append(difficultyOrder, d.Difficulty)
		}
		byDifficulty[d.Difficulty] = append(byDifficulty[d.Difficulty], d)
	}

	r.truths = truths
	r.dares = dares
	r.byCategory = byCategory
	r.byDifficulty = byDifficulty
	r.categoryOrder = categoryOrder
	r.difficultyOrder = difficultyOrder
	r.loaded = true

	r.logger.Info("Content loaded",
		"truths", len(truths),
		"dares", len(dares),
		"categories", len(categoryOrder),
		"difficulties", len(difficultyOrder),
	)

	return nil
}

// readRecords decodes one JSON file into records via the collect callback
func readRecords[T any](path string, collect func(T)) error {
	if _, err := os.Stat(path); err != nil {
		return &entities.SourceMissingError{Path: path}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return &entities.SourceMissingError{Path: path}
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return &entities.SourceMalformedError{Path: path, Err: err}
	}

	for _, rec := range records {
		collect(rec)
	}
	return nil
}

// RandomTruth picks uniformly over the full truth list
func (r *ContentRepository) RandomTruth(ctx context.Context) (*entities.Truth, error) {
	if err := r.EnsureLoaded(ctx); err != nil {
		return nil, err
	}

	if len(r.truths) == 0 {
		return nil, &entities.NoDataAvailableError{Kind: "truths", Filter: "any"}
	}

	truth := r.truths[rand.Intn(len(r.truths))]
	return &truth, nil
}

// TruthByCategory picks uniformly within one category bucket. The category
// is expected to be normalized already.
func (r *ContentRepository) TruthByCategory(ctx context.Context, category string) (*entities.Truth, error) {
	if err := r.EnsureLoaded(ctx); err != nil {
		return nil, err
	}

	bucket, ok := r.byCategory[category]
	if !ok {
		return nil, &entities.KeyNotFoundError{
			Kind:      "category",
			Requested: category,
			Available: append([]string(nil), r.categoryOrder...),
		}
	}
	if len(bucket) == 0 {
		return nil, &entities.NoDataAvailableError{Kind: "category", Filter: category}
	}

	truth := bucket[rand.Intn(len(bucket))]
	return &truth, nil
}

// Categories returns the category keys in index-creation order
func (r *ContentRepository) Categories(ctx context.Context) ([]string, error) {
	if err := r.EnsureLoaded(ctx); err != nil {
		return nil, err
	}
	return append([]string(nil), r.categoryOrder...), nil
}

// RandomDare picks uniformly over the full dare list
func (r *ContentRepository) RandomDare(ctx context.Context) (*entities.Dare, error) {
	if err := r.EnsureLoaded(ctx); err != nil {
		return nil, err
	}

	if len(r.dares) == 0 {
		return nil, &entities.NoDataAvailableError{Kind: "dares", Filter: "any"}
	}

	dare := r.dares[rand.Intn(len(r.dares))]
	return &dare, nil
}

// DareByDifficulty picks uniformly within one difficulty bucket
func (r *ContentRepository) DareByDifficulty(ctx context.Context, difficulty string) (*entities.Dare, error) {
	if err := r.EnsureLoaded(ctx); err != nil {
		return nil, err
	}

	bucket, ok := r.byDifficulty[difficulty]
	if !ok {
		return nil, &entities.KeyNotFoundError{
			Kind:      "difficulty",
			Requested: difficulty,
			Available: append([]string(nil), r.difficultyOrder...),
		}
	}
	if len(bucket) == 0 {
		return nil, &entities.NoDataAvailableError{Kind: "difficulty", Filter: difficulty}
	}

	dare := bucket[rand.Intn(len(bucket))]
	return &dare, nil
}

// Difficulties returns the difficulty keys in index-creation order
func (r *ContentRepository) Difficulties(ctx context.Context) ([]string, error) {
	if err := r.EnsureLoaded(ctx); err != nil {
		return nil, err
	}
	return append([]string(nil), r.difficultyOrder...), nil
}

// Stats returns totals and per-bucket counts for both kinds
func (r *ContentRepository) Stats(ctx context.Context) (*entities.ContentStats, error) {
	if err := r.EnsureLoaded(ctx); err != nil {
		return nil, err
	}

	categories := make(map[string]int, len(r.byCategory))
	for key, bucket := range r.byCategory {
		categories[key] = len(bucket)
	}

	difficulties := make(map[string]int, len(r.byDifficulty))
	for key, bucket := range r.byDifficulty {
		difficulties[key] = len(bucket)
	}

	return &entities.ContentStats{
		TotalTruths:  len(r.truths),
		TotalDares:   len(r.dares),
		Categories:   categories,
		Difficulties: difficulties,
	}, nil
}

// normalizeKey lowercases and trims a bucket key, substituting the default
// when the result is empty
func normalizeKey(key, fallback string) string {
	normalized := strings.ToLower(strings.TrimSpace(key))
	if normalized == "" {
		return fallback
	}
	return normalized
}
