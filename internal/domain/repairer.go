package domain

import (
	"errors"
	"fmt"

	"github.com/mouse-blink/bracemend/internal/domain/brace"
	m "github.com/mouse-blink/bracemend/internal/model"
)

const tailLines = 10

// Repairer turns a file's text into a repair Result according to the job's
// strategy. It is pure: it never touches the filesystem.
type Repairer interface {
	Repair(job m.Job, text string) m.Result
}

type repairer struct{}

// NewRepairer constructs the default Repairer.
func NewRepairer() Repairer {
	return &repairer{}
}

// Repair applies the job's strategy and fills in before/after reports.
// Failures are reported through Result.Err so that one bad file never stops
// a batch.
func (r *repairer) Repair(job m.Job, text string) m.Result {
	result := m.Result{
		Job:         job,
		Before:      brace.Summarize(text),
		RemovedLine: -1,
	}

	out, applied, removed, err := r.apply(job, text)
	result.Applied = applied

	if err != nil {
		result.Err = err
		if errors.Is(err, brace.ErrMarkerNotFound) {
			result.Tail = brace.Tail(text, tailLines)
		}

		return result
	}

	result.Output = out
	result.After = brace.Summarize(out)
	result.RemovedLine = removed
	result.Changed = out != text

	return result
}

func (r *repairer) apply(job m.Job, text string) (string, m.Strategy, int, error) {
	switch job.Strategy {
	case m.StrategyMarker:
		out, _, err := brace.TruncateAfterAny(text, job.Markers)
		return out, m.StrategyMarker, -1, err

	case m.StrategyMarkerBefore:
		out, _, err := brace.TruncateBeforeAny(text, job.Markers)
		return out, m.StrategyMarkerBefore, -1, err

	case m.StrategyDepth:
		out, removed, err := brace.RepairNegativeDepthDetail(text)
		return out, m.StrategyDepth, removed, err

	case m.StrategyAuto, "":
		if len(job.Markers) > 0 {
			out, _, err := brace.TruncateAfterAny(text, job.Markers)
			if !errors.Is(err, brace.ErrMarkerNotFound) {
				return out, m.StrategyMarker, -1, err
			}
		}

		out, removed, err := brace.RepairNegativeDepthDetail(text)

		return out, m.StrategyDepth, removed, err

	default:
		return "", job.Strategy, -1, fmt.Errorf("unknown strategy %q", job.Strategy)
	}
}
