package server

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"go.uber.org/zap"

	"github.com/zocatelli/equity/yahoo"
)

// markdown converts report markdown to HTML. GFM is needed for the pipe
// tables every report is made of.
var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

var layout = template.Must(template.New("layout").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}} · ert</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 60rem; margin: 2rem auto; padding: 0 1rem; color: #222; }
table { border-collapse: collapse; margin: 1rem 0; }
th, td { border: 1px solid #ccc; padding: .35rem .7rem; text-align: left; }
th { background: #f4f4f4; }
nav a { margin-right: 1rem; }
blockquote { color: #888; border-left: 3px solid #ddd; margin-left: 0; padding-left: 1rem; }
form input { margin-right: .5rem; }
</style>
</head>
<body>
<nav>
<a href="/">home</a>
<a href="/screener">screener</a>
<a href="/macro">macro</a>
</nav>
{{.Body}}
</body>
</html>
`))

// quickForm is the single-stock analysis form shown on the home page. It
// submits to /stock, which redirects to the stock page.
func quickForm() template.HTML {
	var b strings.Builder
	b.WriteString("<form action=\"/stock\" method=\"get\">\n")
	b.WriteString("<input name=\"t\" placeholder=\"ITUB4\" required>\n")
	b.WriteString("<select name=\"range\">\n")
	for _, rng := range yahoo.Ranges {
		selected := ""
		if rng == yahoo.DefaultRange {
			selected = " selected"
		}
		fmt.Fprintf(&b, "<option%s>%s</option>\n", selected, rng)
	}
	b.WriteString("</select>\n<button>Analyze</button>\n</form>\n")
	return template.HTML(b.String())
}

// renderPage converts the report markdown to HTML and writes it inside the
// layout.
func (s *Server) renderPage(w http.ResponseWriter, title, md string) {
	body, ok := s.convert(w, md)
	if !ok {
		return
	}
	s.renderHTML(w, title, body)
}

// renderPageWithForm is renderPage with the quick analysis form on top.
func (s *Server) renderPageWithForm(w http.ResponseWriter, title, md string) {
	body, ok := s.convert(w, md)
	if !ok {
		return
	}
	s.renderHTML(w, title, quickForm()+body)
}

func (s *Server) convert(w http.ResponseWriter, md string) (template.HTML, bool) {
	var body bytes.Buffer
	if err := markdown.Convert([]byte(md), &body); err != nil {
		s.logger.Error("markdown conversion failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return "", false
	}
	return template.HTML(body.String()), true
}

func (s *Server) renderHTML(w http.ResponseWriter, title string, body template.HTML) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := layout.Execute(w, struct {
		Title string
		Body  template.HTML
	}{Title: title, Body: body})
	if err != nil {
		s.logger.Error("layout rendering failed", zap.Error(err))
	}
}
