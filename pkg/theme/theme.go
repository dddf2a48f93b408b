package theme

import (
	"sort"
	"strings"
	"sync"

	"gitlab.com/tinyland/lab/linechart/pkg/render"
)

// Theme defines the colors a chart is drawn with. Colors are any string
// ParseColor accepts.
type Theme struct {
	Name string

	// Page colors
	Background  string // canvas background, empty for transparent
	Foreground  string // surrounding text
	Title       string // chart headings
	Placeholder string // "No data available"

	// Chart colors
	Axis    string    // axis domain, ticks and labels
	Single  string    // single-series stroke
	Palette [3]string // multi-series strokes by index
}

// Current holds the active theme (set via SetCurrent).
var Current Theme

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	registerBuiltins()
	Current = defaultTheme()
}

// Get returns a named theme, falling back to default if not found.
func Get(name string) Theme {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[strings.ToLower(name)]; ok {
		return t
	}
	return registry["default"]
}

// Lookup returns a named theme and whether it exists.
func Lookup(name string) (Theme, bool) {
	mu.RLock()
	defer mu.RUnlock()
	t, ok := registry[strings.ToLower(name)]
	return t, ok
}

// Names returns all available theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetCurrent sets the active theme by name.
func SetCurrent(name string) {
	Current = Get(name)
}

// Register adds a validated theme to the registry, replacing any theme
// of the same name.
func Register(t Theme) error {
	if err := validateTheme(t); err != nil {
		return err
	}
	register(t)
	return nil
}

func register(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}

// Apply returns opts restyled with the theme's chart colors.
func (t Theme) Apply(opts render.Options) render.Options {
	opts.Background = t.Background
	opts.AxisColor = t.Axis
	opts.SingleColor = t.Single
	opts.Palette = t.Palette[:]
	return opts
}
