// Package view lays out one chart per definition and keeps every chart in
// step with its container.
package view

import (
	"gitlab.com/tinyland/lab/linechart/pkg/chartdata"
	"gitlab.com/tinyland/lab/linechart/pkg/render"
	"gitlab.com/tinyland/lab/linechart/pkg/scene"
	"gitlab.com/tinyland/lab/linechart/pkg/viewport"
)

// Placeholder replaces the drawing of a chart without data.
const Placeholder = "No data available"

// View is the rendered state of one chart: its heading and either a drawn
// canvas or the placeholder text.
type View struct {
	Title       string
	Kind        string
	Placeholder string
	Canvas      *scene.Canvas
}

// HasDrawing reports whether the view carries a drawn canvas.
func (v View) HasDrawing() bool {
	return v.Placeholder == "" && v.Canvas != nil
}

// ChartView renders def at dims onto a fresh canvas.
func ChartView(def chartdata.Definition, dims viewport.Dimensions, opts render.Options) View {
	return renderInto(render.NewRenderer(opts, nil), def, dims, opts)
}

// renderInto draws def with r. Empty definitions leave the canvas cleared
// and only carry the placeholder.
func renderInto(r *render.Renderer, def chartdata.Definition, dims viewport.Dimensions, opts render.Options) View {
	v := View{Title: def.Title, Kind: def.Kind()}
	if def.Empty() {
		r.Canvas().Reset(dims.Width, dims.Height)
		v.Placeholder = Placeholder
		v.Canvas = r.Canvas()
		return v
	}

	switch def.Series.(type) {
	case chartdata.Single:
		r.SetOptions(opts.WithColor(def.Color))
	default:
		r.SetOptions(opts)
	}
	v.Canvas = r.Draw(def.Series, dims)
	return v
}
