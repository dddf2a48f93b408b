package view

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"

	"gitlab.com/tinyland/lab/linechart/pkg/scene"
)

//go:embed page.css
var pageCSS string

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>{{.CSS}}</style>
</head>
<body>
<main class="chart-list" data-max-width="{{.MaxWidth}}">
{{- range .Charts}}
<section class="chart-container" data-chart="{{.Index}}">
<h2 class="chart-title">{{.Title}}</h2>
{{- if .Placeholder}}
<p class="chart-empty">{{.Placeholder}}</p>
{{- else}}
<div class="chart-svg">{{.SVG}}</div>
{{- end}}
</section>
{{- end}}
</main>
{{- if .Live}}
<script>
(function () {
  var list = document.querySelector(".chart-list");
  var pending = 0;
  function redraw() {
    pending = 0;
    document.querySelectorAll(".chart-container").forEach(function (el) {
      var target = el.querySelector(".chart-svg");
      if (!target) { return; }
      var w = Math.floor(el.clientWidth);
      fetch("/charts/" + el.dataset.chart + ".svg?width=" + w)
        .then(function (r) { return r.ok ? r.text() : ""; })
        .then(function (svg) { if (svg) { target.innerHTML = svg; } });
    });
  }
  window.addEventListener("resize", function () {
    if (!pending) { pending = window.requestAnimationFrame(redraw); }
  });
})();
</script>
{{- end}}
</body>
</html>
`))

// PageChart is one chart section of a page.
type PageChart struct {
	Index       int
	Title       string
	Placeholder string
	SVG         template.HTML
}

// Page is the HTML document listing every chart.
type Page struct {
	Title    string
	MaxWidth int
	// Live adds the script that refetches each chart at its container
	// width on resize.
	Live   bool
	Charts []PageChart
}

// NewPage builds a page from rendered views.
func NewPage(title string, maxWidth int, views []View) Page {
	p := Page{Title: title, MaxWidth: maxWidth, Charts: make([]PageChart, 0, len(views))}
	for i, v := range views {
		pc := PageChart{Index: i, Title: v.Title, Placeholder: v.Placeholder}
		if v.HasDrawing() {
			// The encoder escapes every attribute and text node.
			pc.SVG = template.HTML(scene.SVG(v.Canvas))
		}
		p.Charts = append(p.Charts, pc)
	}
	return p
}

// Write renders the page as HTML.
func (p Page) Write(w io.Writer) error {
	data := struct {
		Page
		CSS template.CSS
	}{p, template.CSS(pageCSS)}
	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("view: render page: %w", err)
	}
	return nil
}
