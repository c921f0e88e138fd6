package brace

import "errors"

// Sentinel errors returned by the repair operations.
var (
	// ErrMarkerNotFound is returned when none of the supplied markers occurs in the text.
	ErrMarkerNotFound = errors.New("marker not found")

	// ErrNoCorruptionFound is returned when depth never drops below zero.
	ErrNoCorruptionFound = errors.New("no corruption found")

	// ErrUnrepairableCorruption is returned when removing a single line does not
	// keep the remaining depth non-negative.
	ErrUnrepairableCorruption = errors.New("unrepairable corruption")
)
