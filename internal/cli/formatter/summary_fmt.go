package formatter

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/logbook/internal/i18n"
	"github.com/alexanderramin/logbook/internal/report"
)

const shareWidth = 10

// FormatSummary renders a report table for the terminal: one row per
// category with its share of the total, then the two summary lines.
func FormatSummary(t report.Table, l i18n.Labels) string {
	headers := []string{l.Category, l.Detail, l.Hours, l.Minutes, l.Share}
	rows := make([][]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		share := 0.0
		if t.TotalMinutes > 0 {
			share = float64(r.Minutes) / float64(t.TotalMinutes)
		}
		style := CategoryStyle(r.Category)
		rows = append(rows, []string{
			style.Render(r.Category),
			r.Detail,
			r.Hours,
			strconv.Itoa(r.Minutes),
			RenderShare(share, shareWidth, style),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows, 2, 3))
	b.WriteString("\n")
	b.WriteString(Bold(t.ActualLine(l)) + "\n")
	b.WriteString(Dim(t.TotalLine(l)) + "\n")
	return b.String()
}
