package domain

import "errors"

var (
	// ErrUnbalanced is returned when a repaired or checked file still has a
	// non-zero net balance.
	ErrUnbalanced = errors.New("unbalanced braces")

	// ErrIncomplete is returned when at least one file in a batch failed.
	ErrIncomplete = errors.New("batch incomplete")

	// ErrMissingMarkers is returned when a marker strategy is requested without markers.
	ErrMissingMarkers = errors.New("strategy requires at least one marker")
)
