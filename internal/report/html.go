package report

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// PageData holds data passed to the HTML template.
type PageData struct {
	Title   string
	Content template.HTML
}

const pageTemplate = `<!DOCTYPE html>
<html lang="ru">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; max-width: 60rem; margin: 2rem auto; color: #222; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ddd; padding: 0.3rem 0.6rem; }
</style>
</head>
<body>
{{.Content}}
</body>
</html>
`

var page = template.Must(template.New("report").Parse(pageTemplate))

var md = goldmark.New(
	goldmark.WithExtensions(extension.Table),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// HTML converts a Markdown report into a complete HTML page.
// Raw HTML in the source is escaped.
func HTML(markdown string) ([]byte, error) {
	var body bytes.Buffer
	if err := md.Convert([]byte(markdown), &body); err != nil {
		return nil, fmt.Errorf("converting report: %w", err)
	}

	data := PageData{
		Title:   ExtractTitle(markdown),
		Content: template.HTML(body.String()),
	}

	var out bytes.Buffer
	if err := page.Execute(&out, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}
	return out.Bytes(), nil
}

var (
	h1Regex      = regexp.MustCompile(`(?m)^#\s+(.+)$`)
	escapedRegex = regexp.MustCompile("\\\\([!-/:-@\\[-`{-~])")
)

// ExtractTitle returns the first H1 heading with Markdown escapes removed,
// or "Отчёт" if there is none.
func ExtractTitle(markdown string) string {
	if m := h1Regex.FindStringSubmatch(markdown); len(m) > 1 {
		return escapedRegex.ReplaceAllString(strings.TrimSpace(m[1]), "$1")
	}
	return "Отчёт"
}
