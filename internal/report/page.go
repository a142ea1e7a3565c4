package report

import (
	"html/template"
	"strings"

	"github.com/alexanderramin/logbook/internal/i18n"
	"github.com/alexanderramin/logbook/internal/logparse"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html><head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Labels.Viewer}}</title>
<link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/bootstrap/5.3.0-alpha1/css/bootstrap.min.css">
</head><body class="container py-3">
<h2>{{.Labels.HTMLSummary}}</h2>
<div>
{{.Table}}
</div>
<h2 class="pt-5">{{.Labels.Plaintext}}</h2>
<div class="form-control"><pre><code id="plain-text-log-source">
{{.Log}}
</code></pre></div>
<h2 class="pt-5">{{.Labels.MarkdownSummary}}</h2>
<div class="form-control"><pre><code id="markdown-log-source">
{{.Markdown}}
</code></pre></div>
</body></html>
`))

type pageData struct {
	Labels   i18n.Labels
	Table    template.HTML
	Log      string
	Markdown string
}

// Page renders a standalone HTML document with the HTML table, the raw
// log and the Markdown table, the way the log viewer shows it.
func Page(text string, unit int, l i18n.Labels) string {
	t := Build(logparse.Parse(text, unit), unit)
	data := pageData{
		Labels: l,
		// HTML escapes every user supplied string itself.
		Table:    template.HTML(HTML(t, l)),
		Log:      ToPlaintext(text),
		Markdown: Markdown(t, l),
	}
	var b strings.Builder
	if err := pageTemplate.Execute(&b, data); err != nil {
		// Executing into a strings.Builder only fails on template bugs.
		panic(err)
	}
	return b.String()
}
