package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"issue-tracker/internal/tracker"
	"issue-tracker/pkg/issueclient"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusStyle returns the style for a status label.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case tracker.StatusNew:
		return StyleBlue
	case tracker.StatusOnGoing:
		return StyleYellow
	case tracker.StatusCompleted:
		return StyleGreen
	default:
		return StyleDim
	}
}

var columns = []struct {
	title string
	width int
}{
	{"ID", 0},
	{"STATUS", 10},
	{"EFFORT", 6},
	{"OWNER", 12},
	{"DUE", 10},
	{"TITLE", 0},
}

func pad(s string, width int) string {
	if width == 0 {
		return s
	}
	if n := lipgloss.Width(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return truncate(s, width)
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}

// idWidth is the width of the widest id, so ids are never cut.
func idWidth(issues []issueclient.Issue) int {
	w := len(columns[0].title)
	for _, i := range issues {
		w = max(w, lipgloss.Width(i.ID))
	}
	return w
}

// FormatIssueRow renders one issue as a table row with the id column
// padded to idW.
func FormatIssueRow(i issueclient.Issue, idW int) string {
	cells := []string{
		pad(i.ID, idW),
		StatusStyle(i.Status).Render(pad(i.Status, columns[1].width)),
		pad(strconv.Itoa(i.Effort), columns[2].width),
		pad(i.Owner, columns[3].width),
		pad(i.DueDate, columns[4].width),
		i.Title,
	}
	return strings.Join(cells, "  ")
}

// FormatIssueTable renders issues under a header line.
func FormatIssueTable(issues []issueclient.Issue) string {
	if len(issues) == 0 {
		return StyleDim.Render("No issues.") + "\n"
	}

	var b strings.Builder
	idW := idWidth(issues)
	heads := make([]string, len(columns))
	for i, col := range columns {
		heads[i] = pad(col.title, col.width)
	}
	heads[0] = pad(columns[0].title, idW)
	b.WriteString(StyleHeader.Render(strings.Join(heads, "  ")))
	b.WriteString("\n")
	for _, i := range issues {
		b.WriteString(FormatIssueRow(i, idW))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatIssue renders every field of one issue.
func FormatIssue(i issueclient.Issue) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", StyleBold.Render(i.Title), StyleDim.Render("("+i.ID+")"))
	fmt.Fprintf(&b, "  status:      %s\n", StatusStyle(i.Status).Render(i.Status))
	fmt.Fprintf(&b, "  owner:       %s\n", i.Owner)
	fmt.Fprintf(&b, "  effort:      %d\n", i.Effort)
	fmt.Fprintf(&b, "  created:     %s\n", i.Created.Local().Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "  due:         %s\n", i.DueDate)
	fmt.Fprintf(&b, "  completed:   %s\n", i.CompletionDate)
	if i.Description != "" {
		fmt.Fprintf(&b, "  description: %s\n", i.Description)
	}
	return b.String()
}
