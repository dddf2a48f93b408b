package view

import (
	"log/slog"

	"gitlab.com/tinyland/lab/linechart/pkg/chartdata"
	"gitlab.com/tinyland/lab/linechart/pkg/render"
	"gitlab.com/tinyland/lab/linechart/pkg/viewport"
)

// Chart is one mounted definition. Its view is rebuilt synchronously each
// time the definition or the container size changes.
type Chart struct {
	Index int

	renderer *render.Renderer
	binding  *viewport.Binding[chartdata.Definition]
	unmount  func()
	view     View
}

// View returns the chart's latest rendered state.
func (c *Chart) View() View { return c.view }

// Dimensions returns the size the chart was last drawn at.
func (c *Chart) Dimensions() viewport.Dimensions { return c.binding.Dimensions() }

// Redraws returns how many times the chart has been drawn.
func (c *Chart) Redraws() int { return c.binding.Redraws() }

// SetDefinition replaces the chart's data and redraws it.
func (c *Chart) SetDefinition(def chartdata.Definition) bool {
	return c.binding.SetData(&def)
}

// App mounts one chart per definition against a shared window. It is not
// safe for concurrent use; drive it from a single goroutine.
type App struct {
	window *viewport.Window
	policy viewport.Policy
	opts   render.Options
	logger *slog.Logger
	charts []*Chart
}

// NewApp returns an app sizing its charts from w.
func NewApp(w *viewport.Window, policy viewport.Policy, opts render.Options, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{window: w, policy: policy, opts: opts, logger: logger}
}

// Load unmounts the current charts and mounts one chart per definition,
// in order. Each chart is drawn once on mount.
func (a *App) Load(defs []chartdata.Definition) {
	a.Close()

	charts := make([]*Chart, 0, len(defs))
	for i := range defs {
		charts = append(charts, a.mount(i, defs[i]))
	}

	a.charts = charts
	a.logger.Info("charts mounted", "count", len(charts), "width", a.window.Width())
}

func (a *App) mount(i int, def chartdata.Definition) *Chart {
	c := &Chart{Index: i, renderer: render.NewRenderer(a.opts, a.logger.With("chart", i))}
	c.binding, c.unmount = viewport.Mount(a.window, a.policy, &def, func(d *chartdata.Definition, dims viewport.Dimensions) {
		c.view = renderInto(c.renderer, *d, dims, a.opts)
	})
	return c
}

// Resize changes the container width and redraws every chart whose
// dimensions changed.
func (a *App) Resize(width int) {
	a.logger.Debug("container resized", "width", width)
	a.window.Resize(width)
}

// Charts returns the mounted charts in definition order.
func (a *App) Charts() []*Chart {
	return append([]*Chart(nil), a.charts...)
}

// Views returns the latest view of every chart.
func (a *App) Views() []View {
	charts := a.Charts()
	views := make([]View, len(charts))
	for i, c := range charts {
		views[i] = c.View()
	}
	return views
}

// Close unmounts every chart. Later resizes no longer redraw them.
func (a *App) Close() {
	for _, c := range a.charts {
		c.unmount()
	}
	a.charts = nil
}

// Window returns the container the charts are sized from.
func (a *App) Window() *viewport.Window { return a.window }
