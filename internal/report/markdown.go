package report

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	domainstats "sportstat/domain/stats"
)

// Markdown renders the result as a two-column markdown table
func Markdown(r *domainstats.AnalysisResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "### %s\n\n", escape(r.Column))
	b.WriteString("| Statistic | Value |\n|---|---|\n")
	for _, row := range Rows(r) {
		fmt.Fprintf(&b, "| %s | %s |\n", escape(row.Label), escape(row.Display))
	}
	return b.String()
}

// HTML renders the markdown table to an HTML fragment
func HTML(r *domainstats.AnalysisResult) template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.SkipHTML})
	return template.HTML(markdown.ToHTML([]byte(Markdown(r)), p, renderer))
}

// escape neutralises characters that carry meaning inside a table cell.
// Column names come from user files.
var escaper = strings.NewReplacer(
	"|", "\\|",
	"<", "&lt;",
	">", "&gt;",
	"*", "\\*",
	"_", "\\_",
	"`", "\\`",
	"[", "\\[",
	"]", "\\]",
)

func escape(s string) string {
	return escaper.Replace(s)
}
