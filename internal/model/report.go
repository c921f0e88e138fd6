package model

// DepthSample is the cumulative brace depth at the end of one line.
type DepthSample struct {
	Line  int // zero-based
	Depth int
}

// DepthTrace holds one sample per line plus the final depth.
type DepthTrace struct {
	Samples []DepthSample
	Net     int
}

// FirstNegative returns the first sample whose depth dropped below zero.
func (t DepthTrace) FirstNegative() (DepthSample, bool) {
	for _, s := range t.Samples {
		if s.Depth < 0 {
			return s, true
		}
	}

	return DepthSample{}, false
}

// RepairReport summarizes a text: how many lines and the net brace balance.
type RepairReport struct {
	LineCount  int
	NetBalance int
}

// Balanced reports whether opens and closes cancel out.
func (r RepairReport) Balanced() bool {
	return r.NetBalance == 0
}

// Result holds the outcome of repairing a single file.
type Result struct {
	Job     Job
	Applied Strategy // strategy that produced the output
	Before  RepairReport
	After   RepairReport
	// RemovedLine is the zero-based index removed by depth repair, -1 otherwise.
	RemovedLine int
	Changed     bool
	Written     bool
	Output      string // repaired text, not persisted when the result is rejected
	// Tail holds the last lines of the input when no marker matched.
	Tail []ExcerptLine
	Err  error
}

// Accepted reports whether the repair produced a balanced text.
func (r Result) Accepted() bool {
	return r.Err == nil && r.After.Balanced()
}

// ExcerptLine is a numbered line shown in diagnostics.
type ExcerptLine struct {
	Number int // one-based
	Text   string
}

// Diagnosis describes the brace health of a file without changing it.
type Diagnosis struct {
	Path   Path
	Report RepairReport
	// NegativeLine is the zero-based first line where depth went negative, -1 if none.
	NegativeLine int
	Excerpt      []ExcerptLine
	Err          error
}

// Healthy reports whether the file is balanced and never goes negative.
func (d Diagnosis) Healthy() bool {
	return d.Err == nil && d.NegativeLine < 0 && d.Report.Balanced()
}
