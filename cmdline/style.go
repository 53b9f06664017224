package main

import "fmt"
import "strconv"
import "strings"

import "github.com/charmbracelet/lipgloss"
import "github.com/charmbracelet/lipgloss/table"

import "github.com/pwiecz/redelca/lib"

var (
	accent = lipgloss.Color("99")
	dim    = lipgloss.Color("243")
	faint  = lipgloss.Color("238")
	red    = lipgloss.Color("204")

	failedStyle = lipgloss.NewStyle().Foreground(red)
)

var reportHeaders = []string{"Node", "Position", "Received", "Status", "Ring", "Power", "Heard by", "Heard"}

func statusCell(r lib.Result) string {
	if r.Err == nil {
		return "ok"
	}
	return failedStyle.Render(fmt.Sprintf("%d", int(r.Status)))
}

func powerCell(r lib.Result) string {
	if r.Default {
		return strconv.Itoa(r.Power) + "*"
	}
	return strconv.Itoa(r.Power)
}

func idsCell(ids []int) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.Itoa(id))
	}
	return strings.Join(parts, ",")
}

func reportRows(reports []lib.NodeReport) [][]string {
	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, []string{
			strconv.Itoa(r.Node.ID),
			lib.FormatPosition(r.Node.Pos.X, r.Node.Pos.Y),
			strconv.Itoa(r.NumReceived),
			statusCell(r.Result),
			strconv.Itoa(r.Result.Ring.Degree()),
			powerCell(r.Result),
			idsCell(r.HeardBy),
			strconv.Itoa(r.NumHeard),
		})
	}
	return rows
}

// reportTable renders simulation reports as a table with rounded borders.
func reportTable(reports []lib.NodeReport) string {
	headerStyle := lipgloss.NewStyle().
		Foreground(accent).
		Bold(true).
		Padding(0, 1)

	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	oddStyle := cellStyle.Foreground(dim)
	evenStyle := cellStyle

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(faint)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 0:
				return evenStyle
			default:
				return oddStyle
			}
		}).
		Headers(reportHeaders...).
		Rows(reportRows(reports)...)

	return t.String()
}
