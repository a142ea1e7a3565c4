package formatter

import (
	"strings"
	"time"

	"github.com/alexanderramin/logbook/internal/domain"
)

// FormatExports renders the export history, newest first. empty is shown
// when there is no history.
func FormatExports(records []*domain.ExportRecord, now time.Time, empty string) string {
	if len(records) == 0 {
		return Dim(empty) + "\n"
	}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			TruncID(r.ID),
			r.Filename,
			string(r.Format),
			FormatBytes(r.Bytes),
			HumanTimestamp(r.CreatedAt, now),
		})
	}
	return RenderTable([]string{"ID", "FILE", "FORMAT", "SIZE", "CREATED"}, rows, 3)
}

// FormatSettings renders the rounding unit and the shortcut slots.
func FormatSettings(unitLabel string, unit int, shortcutsTitle string, shortcuts []string) string {
	var b strings.Builder
	b.WriteString(Header(unitLabel) + "\n")
	b.WriteString(formatUnit(unit) + "\n\n")
	b.WriteString(Header(shortcutsTitle) + "\n")
	rows := make([][]string, 0, len(shortcuts))
	for i, s := range shortcuts {
		if s == "" {
			s = Dim("(empty)")
		}
		rows = append(rows, []string{StyleHeader.Render(string(rune('1' + i))), s})
	}
	for _, row := range rows {
		b.WriteString(row[0] + "  " + row[1] + "\n")
	}
	return b.String()
}

func formatUnit(unit int) string {
	return StyleBlue.Render(FormatMinutes(unit))
}
