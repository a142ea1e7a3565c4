package domain

// ReportFormat selects how a summary is rendered.
type ReportFormat string

const (
	FormatTable    ReportFormat = "table"
	FormatHTML     ReportFormat = "html"
	FormatMarkdown ReportFormat = "markdown"
	FormatText     ReportFormat = "text"
	FormatPage     ReportFormat = "page"
)

// ParseReportFormat maps user input (including short aliases) to a format.
func ParseReportFormat(s string) (ReportFormat, bool) {
	switch s {
	case "table", "":
		return FormatTable, true
	case "html":
		return FormatHTML, true
	case "markdown", "md":
		return FormatMarkdown, true
	case "text", "txt", "plain":
		return FormatText, true
	case "page":
		return FormatPage, true
	default:
		return "", false
	}
}

// Extension returns the file extension used when a format is exported.
func (f ReportFormat) Extension() string {
	switch f {
	case FormatHTML, FormatPage:
		return "html"
	case FormatMarkdown:
		return "md"
	default:
		return "txt"
	}
}

// MIMEType returns the content type of the rendered output.
func (f ReportFormat) MIMEType() string {
	switch f {
	case FormatHTML, FormatPage:
		return "text/html"
	case FormatMarkdown:
		return "text/markdown"
	default:
		return "text/plain"
	}
}
