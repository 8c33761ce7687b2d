package http

import (
	"errors"
	"net/http"

	"github.com/truthdare/core/internal/domain/entities"
)

// TruthResponse is the payload for truth endpoints
type TruthResponse struct {
	ID       int               `json:"id"`
	Type     entities.GameType `json:"type"`
	Content  string            `json:"content"`
	Category string            `json:"category"`
}

// DareResponse is the payload for dare endpoints
type DareResponse struct {
	ID         int               `json:"id"`
	Type       entities.GameType `json:"type"`
	Content    string            `json:"content"`
	Difficulty string            `json:"difficulty"`
}

// GameResponse is the payload for the random truth-or-dare endpoint.
// Category is present only for truths, Difficulty only for dares.
type GameResponse struct {
	ID         int               `json:"id"`
	Type       entities.GameType `json:"type"`
	Content    string            `json:"content"`
	Category   string            `json:"category,omitempty"`
	Difficulty string            `json:"difficulty,omitempty"`
}

// TruthStatsResponse summarizes the truth side of StatsResponse
type TruthStatsResponse struct {
	Total               int            `json:"total"`
	Categories          map[string]int `json:"categories"`
	AvailableCategories []string       `json:"available_categories"`
}

type DareStatsResponse struct {
	Total                 int            `json:"total"`
	Difficulties          map[string]int `json:"difficulties"`
	AvailableDifficulties []string       `json:"available_difficulties"`
}

// StatsResponse is the combined statistics payload
type StatsResponse struct {
	Truths     TruthStatsResponse `json:"truths"`
	Dares      DareStatsResponse  `json:"dares"`
	TotalItems int                `json:"total_items"`
}

// ErrorResponse is the payload for all error statuses
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// MessageResponse is a simple message payload
type MessageResponse struct {
	Message string `json:"message"`
}

func newTruthResponse(truth *entities.Truth) TruthResponse {
	return TruthResponse{
		ID:       truth.ID,
		Type:     entities.GameTypeTruth,
		Content:  truth.Content,
		Category: truth.Category,
	}
}

func newDareResponse(dare *entities.Dare) DareResponse {
	return DareResponse{
		ID:         dare.ID,
		Type:       entities.GameTypeDare,
		Content:    dare.Content,
		Difficulty: dare.Difficulty,
	}
}

func newStatsResponse(stats *entities.GameStats) StatsResponse {
	return StatsResponse{
		Truths: TruthStatsResponse{
			Total:               stats.Truths.Total,
			Categories:          stats.Truths.Counts,
			AvailableCategories: stats.Truths.Available,
		},
		Dares: DareStatsResponse{
			Total:                 stats.Dares.Total,
			Difficulties:          stats.Dares.Counts,
			AvailableDifficulties: stats.Dares.Available,
		},
		TotalItems: stats.TotalItems,
	}
}

// mapDomainError converts a domain error into an HTTP status and error
// payload: KeyNotFound and NoDataAvailable map to 404, InvalidInput to
// 422, SourceMissing and SourceMalformed to 500.
func mapDomainError(err error) (int, ErrorResponse) {
	var keyNotFound *entities.KeyNotFoundError
	if errors.As(err, &keyNotFound) {
		return http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: keyNotFound.Error(),
			Details: map[string]interface{}{
				"requested": keyNotFound.Requested,
				"available": keyNotFound.Available,
			},
		}
	}

	var noData *entities.NoDataAvailableError
	if errors.As(err, &noData) {
		return http.StatusNotFound, ErrorResponse{
			Error:   "no_data_available",
			Message: noData.Error(),
			Details: map[string]interface{}{
				"filter_type":  noData.Kind,
				"filter_value": noData.Filter,
			},
		}
	}

	var invalidInput *entities.InvalidInputError
	if errors.As(err, &invalidInput) {
		return http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "invalid_input",
			Message: invalidInput.Error(),
			Details: map[string]interface{}{
				"field":  invalidInput.Field,
				"value":  invalidInput.Value,
				"reason": invalidInput.Reason,
			},
		}
	}

	var sourceMissing *entities.SourceMissingError
	var sourceMalformed *entities.SourceMalformedError
	if errors.As(err, &sourceMissing) || errors.As(err, &sourceMalformed) {
		return http.StatusInternalServerError, ErrorResponse{
			Error:   "data_load_failed",
			Message: err.Error(),
		}
	}

	return http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "Internal server error",
	}
}
