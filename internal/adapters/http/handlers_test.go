package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truthdare/core/internal/adapters/repository"
	"github.com/truthdare/core/internal/application/services"
	"github.com/truthdare/core/internal/infrastructure/logger"
)

const testTruths = `[
	{"id": 1, "content": "Truth one", "category": "general"},
	{"id": 2, "content": "Truth two", "category": "funny"}
]`

const testDares = `[
	{"id": 1, "content": "Dare one", "difficulty": "easy"},
	{"id": 2, "content": "Dare two", "difficulty": "hard"}
]`

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

type fixture struct {
	echo  *echo.Echo
	truth *TruthHandler
	dare  *DareHandler
	game  *GameHandler
}

func newFixture(t *testing.T, truths, dares string) *fixture {
	t.Helper()

	dir := t.TempDir()
	truthsPath := filepath.Join(dir, "truths.json")
	daresPath := filepath.Join(dir, "dares.json")
	require.NoError(t, os.WriteFile(truthsPath, []byte(truths), 0o644))
	require.NoError(t, os.WriteFile(daresPath, []byte(dares), 0o644))

	log := logger.NewNop()
	repo := repository.NewContentRepository(truthsPath, daresPath, log)
	truthService := services.NewTruthService(repo, log)
	dareService := services.NewDareService(repo, log)
	gameService := services.NewGameService(truthService, dareService, log)

	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}

	return &fixture{
		echo:  e,
		truth: NewTruthHandler(truthService, log),
		dare:  NewDareHandler(dareService, log),
		game:  NewGameHandler(gameService, log),
	}
}

func (f *fixture) request(t *testing.T, path string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	return f.echo.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestGetRandomTruthHandler(t *testing.T) {
	f := newFixture(t, testTruths, testDares)
	c, rec := f.request(t, "/api/v1/truth")

	require.NoError(t, f.truth.GetRandomTruth(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp TruthResponse
	decode(t, rec, &resp)
	assert.Equal(t, "truth", string(resp.Type))
	assert.NotEmpty(t, resp.Content)
	assert.NotEmpty(t, resp.Category)
}

func TestGetRandomTruthHandlerNoData(t *testing.T) {
	f := newFixture(t, `[]`, testDares)
	c, rec := f.request(t, "/api/v1/truth")

	require.NoError(t, f.truth.GetRandomTruth(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp ErrorResponse
	decode(t, rec, &resp)
	assert.Equal(t, "no_data_available", resp.Error)
}

func TestGetTruthByCategoryHandler(t *testing.T) {
	f := newFixture(t, testTruths, testDares)
	c, rec := f.request(t, "/api/v1/truth/FUNNY")
	c.SetParamNames("category")
	c.SetParamValues(" FUNNY ")

	require.NoError(t, f.truth.GetTruthByCategory(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp TruthResponse
	decode(t, rec, &resp)
	assert.Equal(t, "funny", resp.Category)
}

func TestGetTruthByCategoryHandlerNotFound(t *testing.T) {
	f := newFixture(t, testTruths, testDares)
	c, rec := f.request(t, "/api/v1/truth/nonexistent")
	c.SetParamNames("category")
	c.SetParamValues("nonexistent")

	require.NoError(t, f.truth.GetTruthByCategory(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp ErrorResponse
	decode(t, rec, &resp)
	assert.Equal(t, "not_found", resp.Error)
	assert.Equal(t, "nonexistent", resp.Details["requested"])
	assert.Equal(t, []interface{}{"funny", "general"}, resp.Details["available"])
}

func TestGetTruthByCategoryHandlerBlankInput(t *testing.T) {
	f := newFixture(t, testTruths, testDares)
	c, rec := f.request(t, "/api/v1/truth/%20")
	c.SetParamNames("category")
	c.SetParamValues("   ")

	require.NoError(t, f.truth.GetTruthByCategory(c))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp ErrorResponse
	decode(t, rec, &resp)
	assert.Equal(t, "invalid_input", resp.Error)
}

func TestGetCategoriesHandlerSorted(t *testing.T) {
	f := newFixture(t, testTruths, testDares)
	c, rec := f.request(t, "/api/v1/truth/categories/list")

	require.NoError(t, f.truth.GetCategories(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var categories []string
	decode(t, rec, &categories)
	assert.Equal(t, []string{"funny", "general"}, categories)
}

func TestGetDareByDifficultyHandlerNotFound(t *testing.T) {
	f := newFixture(t, testTruths, testDares)
	c, rec := f.request(t, "/api/v1/dare/extreme")
	c.SetParamNames("difficulty")
	c.SetParamValues("extreme")

	require.NoError(t, f.dare.GetDareByDifficulty(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetDifficultiesHandlerOrdering(t *testing.T) {
	f := newFixture(t, testTruths, testDares)
	c, rec := f.request(t, "/api/v1/dare/difficulties/list")

	require.NoError(t, f.dare.GetDifficulties(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var difficulties []string
	decode(t, rec, &difficulties)
	assert.Equal(t, []string{"easy", "hard"}, difficulties)
}

func TestGetRandomGameHandler(t *testing.T) {
	f := newFixture(t, testTruths, testDares)
	c, rec := f.request(t, "/api/v1/game/random")

	require.NoError(t, f.game.GetRandomGame(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp GameResponse
	decode(t, rec, &resp)
	assert.Contains(t, []string{"truth", "dare"}, string(resp.Type))
	if resp.Type == "truth" {
		assert.NotEmpty(t, resp.Category)
		assert.Empty(t, resp.Difficulty)
	} else {
		assert.NotEmpty(t, resp.Difficulty)
		assert.Empty(t, resp.Category)
	}
}

func TestHealthCheckHandlerAlwaysOK(t *testing.T) {
	tests := []struct {
		name     string
		truths   string
		dares    string
		expected string
	}{
		{"healthy", testTruths, testDares, "healthy"},
		{"degraded", `[]`, testDares, "degraded"},
		{"unhealthy", `[]`, `[]`, "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.truths, tt.dares)
			c, rec := f.request(t, "/health")

			require.NoError(t, f.game.HealthCheck(c))

			assert.Equal(t, http.StatusOK, rec.Code)

			var resp map[string]interface{}
			decode(t, rec, &resp)
			assert.Equal(t, tt.expected, resp["status"])
		})
	}
}

func TestHealthCheckHandlerLoadFailureStillOK(t *testing.T) {
	log := logger.NewNop()
	repo := repository.NewContentRepository("/nonexistent/truths.json", "/nonexistent/dares.json", log)
	truthService := services.NewTruthService(repo, log)
	dareService := services.NewDareService(repo, log)
	game := NewGameHandler(services.NewGameService(truthService, dareService, log), log)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, game.HealthCheck(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	decode(t, rec, &resp)
	assert.Equal(t, "unhealthy", resp["status"])
	assert.NotEmpty(t, resp["error"])
}

func TestGetStatsHandler(t *testing.T) {
	f := newFixture(t, testTruths, testDares)
	c, rec := f.request(t, "/api/v1/stats")

	require.NoError(t, f.game.GetStats(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp StatsResponse
	decode(t, rec, &resp)
	assert.Equal(t, 2, resp.Truths.Total)
	assert.Equal(t, 2, resp.Dares.Total)
	assert.Equal(t, resp.Truths.Total+resp.Dares.Total, resp.TotalItems)
	assert.Equal(t, []string{"funny", "general"}, resp.Truths.AvailableCategories)
}
