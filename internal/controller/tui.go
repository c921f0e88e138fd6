package controller

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/bracemend/internal/model"
	"golang.org/x/term"
)

// TUI implements UI with lipgloss styling and a Bubble Tea pager for long lists.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayRepairResults shows per-file repair outcomes.
func (t *TUI) DisplayRepairResults(results []m.Result) error {
	rows := make([]resultItem, 0, len(results))
	for _, r := range results {
		rows = append(rows, resultItem{
			path:     string(r.Job.Path),
			strategy: strategyLabel(r),
			lines:    linesLabel(r),
			net:      netLabel(r),
			status:   resultStatus(r),
		})
	}

	repaired := countStatus(results, resultStatus, StatusRepaired, StatusForced)
	failed := countStatus(results, resultStatus, StatusFailed)
	summary := fmt.Sprintf("Files: %d   Repaired: %d   Failed: %d", len(results), repaired, failed)

	model := newResultModel("Brace Repair", summary, [3]string{"Strategy", "Lines", "Net"}, rows, resultDetails(results))

	return t.show(model)
}

// DisplayDiagnoses shows the brace health of checked files.
func (t *TUI) DisplayDiagnoses(diags []m.Diagnosis) error {
	rows := make([]resultItem, 0, len(diags))
	for _, d := range diags {
		rows = append(rows, resultItem{
			path:     string(d.Path),
			strategy: negativeLabel(d),
			lines:    fmt.Sprintf("%d", d.Report.LineCount),
			net:      fmt.Sprintf("%d", d.Report.NetBalance),
			status:   diagnosisStatus(d),
		})
	}

	healthy := countStatus(diags, diagnosisStatus, StatusOK)
	summary := fmt.Sprintf("Files: %d   Balanced: %d   Unbalanced: %d", len(diags), healthy, len(diags)-healthy)

	model := newResultModel("Brace Check", summary, [3]string{"First Neg.", "Lines", "Net"}, rows, diagnosisDetails(diags))

	return t.show(model)
}

// DisplayWatchEvent prints a styled one-line status for a changed file.
func (t *TUI) DisplayWatchEvent(d m.Diagnosis) {
	status := diagnosisStatus(d)
	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	_, _ = fmt.Fprintf(t.output, "%s %s (%d lines, net %d)\n",
		statusStyle(status).Render(status),
		pathStyle.Render(string(d.Path)),
		d.Report.LineCount,
		d.Report.NetBalance,
	)

	for _, line := range formatExcerpt(d.Excerpt, d.NegativeLine+1) {
		_, _ = fmt.Fprintln(t.output, line)
	}
}

func (t *TUI) show(model resultModel) error {
	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.width = width
			model.height = height
		}
	}

	// If the list is small, just print and exit
	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.View())
		return err
	}

	model.interactive = true
	model.fileList.SetShowFilter(true)

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}
