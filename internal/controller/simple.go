package controller

import (
	"bytes"
	"fmt"

	m "github.com/mouse-blink/bracemend/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using plain tables on the command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayRepairResults prints one row per file followed by failure details.
func (s *SimpleUI) DisplayRepairResults(results []m.Result) error {
	if len(results) == 0 {
		s.printf("No files to repair.\n")
		return nil
	}

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			string(r.Job.Path),
			strategyLabel(r),
			linesLabel(r),
			netLabel(r),
			resultStatus(r),
		})
	}

	repaired := countStatus(results, resultStatus, StatusRepaired, StatusForced)

	s.printTable(
		[]string{"Path", "Strategy", "Lines", "Net", "Status"},
		rows,
		[]string{fmt.Sprintf("Total Files %d", len(results)), "", "", "", fmt.Sprintf("%d repaired", repaired)},
	)
	s.printDetails(resultDetails(results))

	return nil
}

// DisplayDiagnoses prints the brace health of every checked file.
func (s *SimpleUI) DisplayDiagnoses(diags []m.Diagnosis) error {
	if len(diags) == 0 {
		s.printf("No files to check.\n")
		return nil
	}

	rows := make([][]string, 0, len(diags))
	for _, d := range diags {
		rows = append(rows, []string{
			string(d.Path),
			fmt.Sprintf("%d", d.Report.LineCount),
			fmt.Sprintf("%d", d.Report.NetBalance),
			negativeLabel(d),
			diagnosisStatus(d),
		})
	}

	unhealthy := len(diags) - countStatus(diags, diagnosisStatus, StatusOK)

	s.printTable(
		[]string{"Path", "Lines", "Net", "First Negative", "Status"},
		rows,
		[]string{fmt.Sprintf("Total Files %d", len(diags)), "", "", "", fmt.Sprintf("%d unbalanced", unhealthy)},
	)
	s.printDetails(diagnosisDetails(diags))

	return nil
}

// DisplayWatchEvent prints a one-line status for a changed file.
func (s *SimpleUI) DisplayWatchEvent(d m.Diagnosis) {
	s.printf("%s: %s (%d lines, net %d)\n", d.Path, diagnosisStatus(d), d.Report.LineCount, d.Report.NetBalance)

	for _, line := range formatExcerpt(d.Excerpt, d.NegativeLine+1) {
		s.printf("%s\n", line)
	}
}

func (s *SimpleUI) printTable(header []string, rows [][]string, footer []string) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.SetFooter(footer)
	table.Render()

	s.printf("\n%s", tableBuffer.String())
}

func (s *SimpleUI) printDetails(details []string) {
	if len(details) == 0 {
		return
	}

	s.printf("\n")

	for _, line := range details {
		s.printf("%s\n", line)
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
