package brace

import (
	m "github.com/mouse-blink/bracemend/internal/model"
)

// Summarize reports the line count and net balance of text.
func Summarize(text string) m.RepairReport {
	return m.RepairReport{
		LineCount:  len(splitLines(text)),
		NetBalance: Scan(text).Net,
	}
}

// Diagnose summarizes text and, when depth goes negative, captures radius
// lines of context on each side of the first offending line.
func Diagnose(text string, radius int) m.Diagnosis {
	diag := m.Diagnosis{
		Report:       Summarize(text),
		NegativeLine: -1,
	}

	sample, ok := Scan(text).FirstNegative()
	if !ok {
		return diag
	}

	radius = max(radius, 0)
	diag.NegativeLine = sample.Line
	diag.Excerpt = excerpt(splitLines(text), sample.Line-radius, sample.Line+radius+1)

	return diag
}

// Tail returns the last n lines of text, numbered from one.
func Tail(text string, n int) []m.ExcerptLine {
	lines := splitLines(text)

	return excerpt(lines, len(lines)-n, len(lines))
}

func excerpt(lines []string, from, to int) []m.ExcerptLine {
	from = max(from, 0)
	to = min(to, len(lines))

	if from >= to {
		return nil
	}

	out := make([]m.ExcerptLine, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, m.ExcerptLine{Number: i + 1, Text: lines[i]})
	}

	return out
}
