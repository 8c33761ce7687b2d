package entities

import (
	"fmt"
	"strings"
)

// SourceMissingError is returned when a data file path does not resolve to
// a readable file. The load attempt is aborted and may be retried.
type SourceMissingError struct {
	Path string
}

func (e *SourceMissingError) Error() string {
	return fmt.Sprintf("data source missing: %s", e.Path)
}

// SourceMalformedError is returned when a data file exists but cannot be
// parsed as JSON.
type SourceMalformedError struct {
	Path string
	Err  error
}

func (e *SourceMalformedError) Error() string {
	return fmt.Sprintf("data source malformed: %s: %v", e.Path, e.Err)
}

func (e *SourceMalformedError) Unwrap() error {
	return e.Err
}

// KeyNotFoundError is returned when a requested category or difficulty has
// no bucket. Requested carries the caller's original input; Available
// carries the sorted key set for a helpful message.
type KeyNotFoundError struct {
	Kind      string // "category" or "difficulty"
	Requested string
	Available []string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found, available: %s",
		e.Kind, e.Requested, strings.Join(e.Available, ", "))
}

// NoDataAvailableError is returned when a collection or bucket is empty
type NoDataAvailableError struct {
	Kind   string // "truths", "dares", "category" or "difficulty"
	Filter string
}

func (e *NoDataAvailableError) Error() string {
	return fmt.Sprintf("no data available for %s: %q", e.Kind, e.Filter)
}

// InvalidInputError is returned when a caller passes an empty or blank
// lookup key. Validated at the service boundary, before normalization.
type InvalidInputError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}
