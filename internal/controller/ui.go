// Package controller provides output adapters for displaying repair results.
package controller

import (
	"fmt"

	m "github.com/mouse-blink/bracemend/internal/model"
)

// UI defines how results reach the operator.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayRepairResults(results []m.Result) error
	DisplayDiagnoses(diags []m.Diagnosis) error
	DisplayWatchEvent(diag m.Diagnosis)
}

// Result statuses shown to the operator.
const (
	StatusRepaired  = "repaired"
	StatusForced    = "forced"
	StatusDryRun    = "dry-run"
	StatusUnchanged = "unchanged"
	StatusFailed    = "failed"
)

// Diagnosis statuses shown to the operator.
const (
	StatusOK         = "ok"
	StatusNegative   = "negative depth"
	StatusUnbalanced = "unbalanced"
	StatusUnreadable = "error"
)

const (
	excerptHighlight = ">"
	excerptPlain     = " "
)

func resultStatus(r m.Result) string {
	switch {
	case r.Err != nil:
		return StatusFailed
	case !r.Changed:
		return StatusUnchanged
	case r.Written && r.Accepted():
		return StatusRepaired
	case r.Written:
		return StatusForced
	default:
		return StatusDryRun
	}
}

func diagnosisStatus(d m.Diagnosis) string {
	switch {
	case d.Err != nil:
		return StatusUnreadable
	case d.NegativeLine >= 0:
		return StatusNegative
	case !d.Report.Balanced():
		return StatusUnbalanced
	default:
		return StatusOK
	}
}

func strategyLabel(r m.Result) string {
	if r.Applied == "" {
		return "-"
	}

	return string(r.Applied)
}

func linesLabel(r m.Result) string {
	if r.Err != nil || !r.Changed {
		return fmt.Sprintf("%d", r.Before.LineCount)
	}

	return fmt.Sprintf("%d → %d", r.Before.LineCount, r.After.LineCount)
}

func netLabel(r m.Result) string {
	if r.Err != nil || !r.Changed {
		return fmt.Sprintf("%d", r.Before.NetBalance)
	}

	return fmt.Sprintf("%d → %d", r.Before.NetBalance, r.After.NetBalance)
}

func negativeLabel(d m.Diagnosis) string {
	if d.NegativeLine < 0 {
		return "-"
	}

	return fmt.Sprintf("%d", d.NegativeLine+1)
}

// resultDetails lists the lines worth showing under the summary table.
func resultDetails(results []m.Result) []string {
	var details []string

	for _, r := range results {
		switch {
		case r.Err != nil:
			details = append(details, fmt.Sprintf("%s: %v", r.Job.Path, r.Err))
			details = append(details, formatExcerpt(r.Tail, -1)...)
		case r.RemovedLine >= 0:
			details = append(details, fmt.Sprintf("%s: removed line %d", r.Job.Path, r.RemovedLine+1))
		}
	}

	return details
}

func diagnosisDetails(diags []m.Diagnosis) []string {
	var details []string

	for _, d := range diags {
		switch {
		case d.Err != nil:
			details = append(details, fmt.Sprintf("%s: %v", d.Path, d.Err))
		case d.NegativeLine >= 0:
			details = append(details, fmt.Sprintf("%s: depth goes negative at line %d", d.Path, d.NegativeLine+1))
			details = append(details, formatExcerpt(d.Excerpt, d.NegativeLine+1)...)
		}
	}

	return details
}

func formatExcerpt(lines []m.ExcerptLine, highlight int) []string {
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		mark := excerptPlain
		if line.Number == highlight {
			mark = excerptHighlight
		}

		out = append(out, fmt.Sprintf("  %s %4d | %s", mark, line.Number, line.Text))
	}

	return out
}

func countStatus[T any](items []T, status func(T) string, want ...string) int {
	n := 0

	for _, item := range items {
		s := status(item)
		for _, w := range want {
			if s == w {
				n++

				break
			}
		}
	}

	return n
}
