package brace

import (
	"strings"

	m "github.com/mouse-blink/bracemend/internal/model"
)

const (
	openBrace      = '{'
	closeBrace     = '}'
	lineFeed       = '\n'
	carriageReturn = '\r'
)

// Scan walks text once, left to right, and records the cumulative depth at
// the end of every line. Opens add one, closes subtract one, nothing else
// counts. "\n", "\r\n" and a lone "\r" each end a line. An empty text
// produces no samples and a zero net depth.
func Scan(text string) m.DepthTrace {
	var trace m.DepthTrace

	depth, line := 0, 0

	// Byte iteration is safe for UTF-8: the bytes we care about never
	// occur inside a multi-byte sequence.
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case openBrace:
			depth++
		case closeBrace:
			depth--
		case carriageReturn, lineFeed:
			i = skipLineEnd(text, i)
			trace.Samples = append(trace.Samples, m.DepthSample{Line: line, Depth: depth})
			line++
		}
	}

	if len(text) > 0 && !isLineEnd(text[len(text)-1]) {
		trace.Samples = append(trace.Samples, m.DepthSample{Line: line, Depth: depth})
	}

	trace.Net = depth

	return trace
}

// LineDelta returns how much a single line moves the depth.
func LineDelta(line string) int {
	return strings.Count(line, string(openBrace)) - strings.Count(line, string(closeBrace))
}

// splitLines splits on "\n", "\r\n" and "\r" without producing a
// trailing empty segment for text that ends in a line break.
func splitLines(text string) []string {
	var lines []string

	start := 0

	for i := 0; i < len(text); i++ {
		if !isLineEnd(text[i]) {
			continue
		}

		lines = append(lines, text[start:i])
		i = skipLineEnd(text, i)
		start = i + 1
	}

	if start < len(text) {
		lines = append(lines, text[start:])
	}

	return lines
}

func isLineEnd(b byte) bool {
	return b == lineFeed || b == carriageReturn
}

// skipLineEnd returns the index of the last byte of the line break at i,
// folding "\r\n" into one break.
func skipLineEnd(text string, i int) int {
	if text[i] == carriageReturn && i+1 < len(text) && text[i+1] == lineFeed {
		return i + 1
	}

	return i
}

// firstNegative replays depth line by line and returns the index of the
// first line that ends below zero, or -1.
func firstNegative(lines []string) int {
	depth := 0

	for i, line := range lines {
		depth += LineDelta(line)
		if depth < 0 {
			return i
		}
	}

	return -1
}
