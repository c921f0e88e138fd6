package brace

import (
	"fmt"
	"strings"
	"unicode"
)

const markerPreviewLen = 40

// TruncateAfter keeps text up to and including the first occurrence of
// marker and normalizes the tail to exactly one line break.
func TruncateAfter(text, marker string) (string, error) {
	idx, err := locate(text, marker)
	if err != nil {
		return "", err
	}

	return normalizeTail(text[:idx+len(marker)]), nil
}

// TruncateBefore keeps text up to the start of the first occurrence of
// marker. Use it when the marker is the first fragment of the orphaned tail.
func TruncateBefore(text, marker string) (string, error) {
	idx, err := locate(text, marker)
	if err != nil {
		return "", err
	}

	return normalizeTail(text[:idx]), nil
}

// TruncateAfterAny applies TruncateAfter with the first marker that occurs
// in text and returns that marker alongside the output.
func TruncateAfterAny(text string, markers []string) (string, string, error) {
	return firstMatching(text, markers, TruncateAfter)
}

// TruncateBeforeAny is the TruncateBefore counterpart of TruncateAfterAny.
func TruncateBeforeAny(text string, markers []string) (string, string, error) {
	return firstMatching(text, markers, TruncateBefore)
}

func firstMatching(text string, markers []string, cut func(string, string) (string, error)) (string, string, error) {
	if len(markers) == 0 {
		return "", "", fmt.Errorf("%w: no markers supplied", ErrMarkerNotFound)
	}

	for _, marker := range markers {
		out, err := cut(text, marker)
		if err == nil {
			return out, marker, nil
		}
	}

	return "", "", fmt.Errorf("%w: tried %d marker(s)", ErrMarkerNotFound, len(markers))
}

func locate(text, marker string) (int, error) {
	// An empty marker matches at offset zero and identifies nothing.
	if marker == "" {
		return -1, fmt.Errorf("%w: empty marker", ErrMarkerNotFound)
	}

	idx := strings.Index(text, marker)
	if idx < 0 {
		return -1, fmt.Errorf("%w: %s", ErrMarkerNotFound, preview(marker))
	}

	return idx, nil
}

func normalizeTail(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace) + string(lineFeed)
}

func preview(marker string) string {
	runes := []rune(marker)
	if len(runes) > markerPreviewLen {
		return fmt.Sprintf("%q…", string(runes[:markerPreviewLen]))
	}

	return fmt.Sprintf("%q", marker)
}
