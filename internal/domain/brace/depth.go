package brace

import (
	"fmt"
	"strings"
)

// RepairNegativeDepth removes the first line at which the cumulative depth
// drops below zero. Exactly one line is ever removed.
func RepairNegativeDepth(text string) (string, error) {
	out, _, err := RepairNegativeDepthDetail(text)

	return out, err
}

// RepairNegativeDepthDetail is RepairNegativeDepth that also returns the
// zero-based index of the removed line (-1 when nothing was removed).
//
// A text whose depth stays positive, such as "{ { {", is not corrupt under
// this model and yields ErrNoCorruptionFound.
func RepairNegativeDepthDetail(text string) (string, int, error) {
	lines := splitLines(text)

	bad := firstNegative(lines)
	if bad < 0 {
		return "", -1, fmt.Errorf("%w: depth never drops below zero", ErrNoCorruptionFound)
	}

	kept := make([]string, 0, len(lines)-1)
	kept = append(kept, lines[:bad]...)
	kept = append(kept, lines[bad+1:]...)

	if still := firstNegative(kept); still >= 0 {
		// Lines before bad never went negative, so still maps to still+1 in
		// the original numbering.
		return "", bad, fmt.Errorf("%w: removing line %d leaves negative depth at line %d",
			ErrUnrepairableCorruption, bad+1, still+2)
	}

	return strings.Join(kept, string(lineFeed)) + string(lineFeed), bad, nil
}
