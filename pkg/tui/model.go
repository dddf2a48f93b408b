// Package tui is an interactive terminal browser for a set of charts.
// Charts are drawn as Braille text and follow the terminal width: every
// window resize is fed to the shared container, so only charts whose
// dimensions actually change are redrawn.
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	bubblesvp "github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/linechart/pkg/braille"
	"gitlab.com/tinyland/lab/linechart/pkg/chartdata"
	"gitlab.com/tinyland/lab/linechart/pkg/render"
	"gitlab.com/tinyland/lab/linechart/pkg/terminal"
	"gitlab.com/tinyland/lab/linechart/pkg/theme"
	"gitlab.com/tinyland/lab/linechart/pkg/view"
	"gitlab.com/tinyland/lab/linechart/pkg/viewport"
)

// LoadFunc reads the chart definitions again.
type LoadFunc func() ([]chartdata.Definition, error)

// Config configures a Model.
type Config struct {
	Policy  viewport.Policy
	Options render.Options
	Theme   theme.Theme
	Profile termenv.Profile

	// CellW and CellH are the pixel size of a terminal cell, used to map
	// between chart pixels and cells. Zero means 8x16.
	CellW, CellH int

	// Width is the initial container width in pixels.
	Width  int
	Labels bool

	// Load is called on the reload key. Nil disables reloading.
	Load   LoadFunc
	Logger *slog.Logger
}

// loadedMsg delivers the result of a reload.
type loadedMsg struct {
	defs []chartdata.Definition
	err  error
}

// Model is the bubbletea model of the chart browser.
type Model struct {
	cfg    Config
	app    *view.App
	keys   keyMap
	help   help.Model
	styles Styles
	vp     bubblesvp.Model

	labels        bool
	width, height int
	ready         bool
	err           error
}

// New mounts defs and returns the browser model.
func New(defs []chartdata.Definition, cfg Config) Model {
	if cfg.CellW <= 0 {
		cfg.CellW = terminal.DefaultCellW
	}
	if cfg.CellH <= 0 {
		cfg.CellH = terminal.DefaultCellH
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	app := view.NewApp(viewport.NewWindow(cfg.Width), cfg.Policy, cfg.Options, cfg.Logger)
	app.Load(defs)

	return Model{
		cfg:    cfg,
		app:    app,
		keys:   defaultKeyMap(),
		help:   help.New(),
		styles: StylesFromTheme(cfg.Theme),
		labels: cfg.Labels,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.app.Resize(msg.Width * m.cfg.CellW)
		m.help.Width = msg.Width
		m.ready = true
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Labels):
			m.labels = !m.labels
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Reload):
			if m.cfg.Load == nil {
				return m, nil
			}
			return m, loadCmd(m.cfg.Load)
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.refresh()
			return m, nil
		}

	case loadedMsg:
		m.err = msg.err
		if msg.err != nil {
			m.cfg.Logger.Warn("chart reload failed", "error", msg.err)
		} else {
			m.app.Load(msg.defs)
		}
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading charts..."
	}
	return m.vp.View() + "\n" + m.footer()
}

// App returns the mounted charts.
func (m Model) App() *view.App { return m.app }

// Labels reports whether axis labels are shown.
func (m Model) Labels() bool { return m.labels }

// Err returns the last reload error.
func (m Model) Err() error { return m.err }

func loadCmd(load LoadFunc) tea.Cmd {
	return func() tea.Msg {
		defs, err := load()
		return loadedMsg{defs: defs, err: err}
	}
}

func (m Model) footer() string {
	if m.err != nil {
		return m.styles.Error.Render(fmt.Sprintf("reload failed: %v", m.err))
	}
	return m.styles.Status.Render(m.help.View(m.keys))
}

// refresh lays out the viewport and redraws its content from the current
// chart views.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	h := max(m.height-lipgloss.Height(m.footer()), 1)
	if m.vp.Width == 0 && m.vp.Height == 0 {
		m.vp = bubblesvp.New(m.width, h)
	} else {
		m.vp.Width, m.vp.Height = m.width, h
	}
	m.vp.SetContent(m.content())
}

func (m *Model) content() string {
	views := m.app.Views()
	if len(views) == 0 {
		return m.styles.Placeholder.Render(view.Placeholder)
	}
	blocks := make([]string, len(views))
	for i, v := range views {
		blocks[i] = m.chart(v)
	}
	return strings.Join(blocks, "\n\n")
}

func (m *Model) chart(v view.View) string {
	var lines []string
	if v.Title != "" {
		lines = append(lines, m.styles.Title.Render(v.Title))
	}
	if !v.HasDrawing() {
		lines = append(lines, m.styles.Placeholder.Render(v.Placeholder))
		return strings.Join(lines, "\n")
	}
	lines = append(lines, braille.Render(v.Canvas, braille.Options{
		Cols:    max(v.Canvas.Width/m.cfg.CellW, 1),
		Rows:    max(v.Canvas.Height/m.cfg.CellH, 1),
		Profile: m.cfg.Profile,
		Labels:  m.labels,
	}))
	return strings.Join(lines, "\n")
}
