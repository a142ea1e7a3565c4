// Package report renders parsed logs as HTML and Markdown tables.
//
// Rows are always emitted in byte-wise category order, independent of the
// order categories appear in the log. Each renderer closes with two
// summary lines: actual work (break categories excluded) and the total.
package report

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/logbook/internal/domain"
	"github.com/alexanderramin/logbook/internal/i18n"
	"github.com/alexanderramin/logbook/internal/logparse"
)

// Row is one rendered category.
type Row struct {
	Category string
	Detail   string
	Hours    string
	Minutes  int
}

// Table is the display form of a summary: sorted rows plus totals.
type Table struct {
	Rows         []Row
	SumMinutes   int
	SumHours     string
	TotalMinutes int
	TotalHours   string
	Unit         int
}

// Build converts a summary into display rows using the rounding unit for
// the totals.
func Build(s *domain.Summary, unit int) Table {
	unit = logparse.NormalizeRoundingUnit(unit)
	t := Table{Unit: unit}
	for _, c := range s.Sorted() {
		t.Rows = append(t.Rows, Row{
			Category: c.Name,
			Detail:   c.Detail(),
			Hours:    logparse.FormatHours(c.RoundedHours),
			Minutes:  c.TotalMinutes,
		})
		if !domain.IsBreak(c.Name) {
			t.SumMinutes += c.TotalMinutes
		}
		t.TotalMinutes += c.TotalMinutes
	}
	t.SumHours = logparse.FormatHours(logparse.RoundHours(t.SumMinutes, unit))
	t.TotalHours = logparse.FormatHours(logparse.RoundHours(t.TotalMinutes, unit))
	return t
}

// Totals returns actual-work and total minutes for a summary.
func Totals(s *domain.Summary) (sum, total int) {
	return s.Totals()
}

// ActualLine renders the "actual work" summary line.
func (t Table) ActualLine(l i18n.Labels) string {
	return summaryLine(l.Actual, l, t.SumHours, t.SumMinutes)
}

// TotalLine renders the "total" summary line.
func (t Table) TotalLine(l i18n.Labels) string {
	return summaryLine(l.Total, l, t.TotalHours, t.TotalMinutes)
}

func summaryLine(title string, l i18n.Labels, hours string, mins int) string {
	return fmt.Sprintf("%s%s%s h (%d %s)", title, l.Colon, hours, mins, l.MinsUnit)
}

// ToHTML parses text and renders the summary as an HTML table followed by
// a paragraph with both totals. Category and detail text is escaped.
func ToHTML(text string, unit int, l i18n.Labels) string {
	return HTML(Build(logparse.Parse(text, unit), unit), l)
}

// HTML renders an already built table.
func HTML(t Table, l i18n.Labels) string {
	var b strings.Builder
	b.WriteString(`<table class="table table-striped-columns"><thead class="table-light">` + "\n")
	b.WriteString("<tr>\n")
	for _, h := range []string{l.Category, l.Detail, l.Hours, l.Minutes} {
		fmt.Fprintf(&b, "<th class=\"text-center\">%s</th>\n", EscapeHTML(h))
	}
	b.WriteString("</tr>\n")
	b.WriteString(`</thead><tbody id="html-log-source" class="table-group-divider">`)
	for _, r := range t.Rows {
		b.WriteString("<tr>\n")
		fmt.Fprintf(&b, "<td>%s</td>\n", EscapeHTML(r.Category))
		fmt.Fprintf(&b, "<td>%s</td>\n", EscapeHTML(r.Detail))
		fmt.Fprintf(&b, "<td class=\"text-end\">%s</td>\n", r.Hours)
		fmt.Fprintf(&b, "<td class=\"text-end\">%d</td>\n", r.Minutes)
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>\n<p>\n")
	b.WriteString(EscapeHTML(t.ActualLine(l)) + "<br>\n")
	b.WriteString(EscapeHTML(t.TotalLine(l)) + "</p>\n")
	return b.String()
}

// ToMarkdown parses text and renders the summary as a pipe table followed
// by the two totals on their own lines.
func ToMarkdown(text string, unit int, l i18n.Labels) string {
	return Markdown(Build(logparse.Parse(text, unit), unit), l)
}

// Markdown renders an already built table.
func Markdown(t Table, l i18n.Labels) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s | %s | %s | %s\n", l.Category, l.Detail, l.Hours, l.Minutes)
	b.WriteString("--- | --- | --: | --:\n")
	for _, r := range t.Rows {
		fmt.Fprintf(&b, "%s | %s | %s | %d\n", r.Category, r.Detail, r.Hours, r.Minutes)
	}
	b.WriteString("\n" + t.ActualLine(l))
	b.WriteString("\n" + t.TotalLine(l))
	return b.String()
}

// ToPlaintext returns the raw log unchanged.
func ToPlaintext(text string) string {
	return text
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML escapes the five HTML special characters.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
