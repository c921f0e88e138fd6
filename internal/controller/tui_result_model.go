package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	statusWidth   = 14
	// title, summary, header, footer and spacing around the list.
	chromeHeight = 8
)

var statusColors = map[string]lipgloss.Color{
	StatusRepaired:   lipgloss.Color("10"),
	StatusOK:         lipgloss.Color("10"),
	StatusUnchanged:  lipgloss.Color("8"),
	StatusDryRun:     lipgloss.Color("11"),
	StatusForced:     lipgloss.Color("11"),
	StatusUnbalanced: lipgloss.Color("11"),
	StatusFailed:     lipgloss.Color("9"),
	StatusNegative:   lipgloss.Color("9"),
	StatusUnreadable: lipgloss.Color("9"),
}

func statusStyle(status string) lipgloss.Style {
	color, ok := statusColors[status]
	if !ok {
		color = lipgloss.Color("7")
	}

	return lipgloss.NewStyle().Foreground(color).Bold(true).Width(statusWidth)
}

type resultDelegate struct{}

func (d resultDelegate) Height() int  { return 1 }
func (d resultDelegate) Spacing() int { return 0 }
func (d resultDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d resultDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	row, ok := item.(resultItem)
	if !ok {
		return
	}

	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	if index == m.Index() {
		pathStyle = pathStyle.Bold(true)
	}

	meta := fmt.Sprintf("%-14s %-10s %-10s", row.strategy, row.lines, row.net)
	width := m.Width() - statusWidth - lipgloss.Width(meta) - 2

	line := fmt.Sprintf("%s%s %s",
		statusStyle(row.status).Render(row.status),
		meta,
		pathStyle.Render(truncateToWidth(row.path, width)),
	)
	_, _ = fmt.Fprint(w, line)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// resultModel renders a titled list of per-file rows followed by details.
// It is printed once when everything fits and run as a pager otherwise.
type resultModel struct {
	title       string
	columns     [3]string
	summary     string
	details     []string
	items       int
	fileList    list.Model
	width       int
	height      int
	interactive bool
}

func newResultModel(title, summary string, columns [3]string, rows []resultItem, details []string) resultModel {
	items := make([]list.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, row)
	}

	fileList := list.New(items, resultDelegate{}, defaultWidth, max(len(items), 1))
	fileList.SetShowPagination(false)
	fileList.SetShowFilter(false)
	fileList.SetShowHelp(false)
	fileList.SetShowTitle(false)
	fileList.SetShowStatusBar(false)
	fileList.FilterInput.Placeholder = "Filter by path…"

	return resultModel{
		title:    title,
		columns:  columns,
		summary:  summary,
		details:  details,
		items:    len(items),
		fileList: fileList,
		width:    defaultWidth,
		height:   defaultHeight,
	}
}

func (m resultModel) needsPagination() bool {
	return m.items+len(m.details)+chromeHeight > m.height
}

func (m resultModel) Init() tea.Cmd {
	return nil
}

func (m resultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.fileList.SetWidth(m.width)

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			if m.fileList.FilterState() != list.Filtering {
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd

	m.fileList, cmd = m.fileList.Update(msg)

	return m, cmd
}

func (m resultModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	sections := []string{
		titleStyle.Render(m.title),
		summaryStyle.Render(m.summary),
	}

	if m.items > 0 {
		sections = append(sections, m.renderTable())
	}

	if len(m.details) > 0 {
		detailStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Padding(1, 0, 0, 2)
		sections = append(sections, detailStyle.Render(strings.Join(m.details, "\n")))
	}

	if m.interactive {
		footerStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Align(lipgloss.Center).
			Width(m.width)
		sections = append(sections, footerStyle.Render("↑/k up • ↓/j down • / filter • q quit"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m resultModel) renderTable() string {
	listHeight := m.items
	if m.interactive {
		listHeight = max(m.height-chromeHeight-len(m.details), 5)
	}

	listWidth := max(m.width-6, 20)

	m.fileList.SetHeight(listHeight)
	m.fileList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%-*s%-14s %-10s %-10s %s",
		statusWidth, "Status", m.columns[0], m.columns[1], m.columns[2], "Path"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			m.fileList.View(),
		),
	)
}
