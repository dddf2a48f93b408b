// Package viewport sizes charts from their container and redraws them when
// the container is resized.
//
// A Window is the resize source. A Binding registers a redraw function
// against three named inputs (data, width, height) and calls it
// synchronously whenever one of them changes. Mount ties the two together
// and returns the function that detaches the chart again.
package viewport

import "sync"

const (
	// DefaultMaxWidth caps the chart width regardless of container size.
	DefaultMaxWidth = 800
	// DefaultHeight is the fixed chart height.
	DefaultHeight = 400
)

// Dimensions is a chart size in pixels.
type Dimensions struct {
	Width, Height int
}

// Policy derives chart dimensions from a container width.
type Policy struct {
	MaxWidth int
	Height   int
}

// DefaultPolicy caps width at 800 and fixes height at 400.
func DefaultPolicy() Policy {
	return Policy{MaxWidth: DefaultMaxWidth, Height: DefaultHeight}
}

// FromContainer returns the dimensions for a container of the given width.
// Non-positive widths collapse to zero; a non-positive MaxWidth disables
// the cap.
func (p Policy) FromContainer(width int) Dimensions {
	if width < 0 {
		width = 0
	}
	if p.MaxWidth > 0 && width > p.MaxWidth {
		width = p.MaxWidth
	}
	height := p.Height
	if height <= 0 {
		height = DefaultHeight
	}
	return Dimensions{Width: width, Height: height}
}

// FromContainer applies DefaultPolicy.
func FromContainer(width int) Dimensions {
	return DefaultPolicy().FromContainer(width)
}

// Listener is notified with the new container width.
type Listener func(width int)

type subscription struct {
	id int
	fn Listener
}

// Window is a resizable container. Listeners run synchronously on the
// goroutine calling Resize, in subscription order.
type Window struct {
	mu        sync.Mutex
	width     int
	nextID    int
	listeners []subscription
}

// NewWindow returns a window of the given width.
func NewWindow(width int) *Window {
	return &Window{width: width}
}

// Width returns the current container width.
func (w *Window) Width() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width
}

// Listeners returns the number of registered listeners.
func (w *Window) Listeners() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.listeners)
}

// Subscribe registers fn and returns a function that removes it. Calling
// the returned function more than once is harmless.
func (w *Window) Subscribe(fn Listener) func() {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := w.nextID
	w.nextID++
	w.listeners = append(w.listeners, subscription{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { w.unsubscribe(id) })
	}
}

func (w *Window) unsubscribe(id int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i, s := range w.listeners {
		if s.id == id {
			w.listeners = append(w.listeners[:i], w.listeners[i+1:]...)
			return
		}
	}
}

// Resize sets the container width and notifies every listener.
func (w *Window) Resize(width int) {
	w.mu.Lock()
	w.width = width
	listeners := append([]subscription(nil), w.listeners...)
	w.mu.Unlock()

	for _, s := range listeners {
		s.fn(width)
	}
}
