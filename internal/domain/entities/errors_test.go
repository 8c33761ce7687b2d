package entities

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyNotFoundErrorMessage(t *testing.T) {
	err := &KeyNotFoundError{
		Kind:      "category",
		Requested: "Nonexistent",
		Available: []string{"funny", "general"},
	}

	assert.Equal(t, `category "Nonexistent" not found, available: funny, general`, err.Error())
}

func TestSourceMalformedErrorUnwraps(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := &SourceMalformedError{Path: "dares.json", Err: cause}

	assert.ErrorIs(t, err, cause)
}

func TestErrorKindsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("loading content: %w", &SourceMissingError{Path: "truths.json"})

	var missing *SourceMissingError
	require.ErrorAs(t, wrapped, &missing)
	assert.Equal(t, "truths.json", missing.Path)
}
