package viewport

// Input names reported by Binding.LastChange.
const (
	InputData   = "data"
	InputWidth  = "width"
	InputHeight = "height"
)

// RedrawFunc renders data at the given dimensions.
type RedrawFunc[T any] func(data *T, dims Dimensions)

// Binding calls its redraw function once per change of its inputs. Data
// changes are detected by pointer identity, the same way a new slice of
// definitions replaces the old one rather than mutating it.
type Binding[T any] struct {
	data       *T
	dims       Dimensions
	redraw     RedrawFunc[T]
	redraws    int
	lastChange []string
}

// Bind returns a binding over the initial inputs. It does not draw; call
// Draw for the initial render.
func Bind[T any](data *T, dims Dimensions, redraw RedrawFunc[T]) *Binding[T] {
	return &Binding[T]{data: data, dims: dims, redraw: redraw}
}

// Draw renders the current inputs unconditionally.
func (b *Binding[T]) Draw() {
	b.redraws++
	if b.redraw != nil {
		b.redraw(b.data, b.dims)
	}
}

// Set replaces every input and redraws if any of them changed. It reports
// whether a redraw happened.
func (b *Binding[T]) Set(data *T, dims Dimensions) bool {
	var changed []string
	if data != b.data {
		changed = append(changed, InputData)
	}
	if dims.Width != b.dims.Width {
		changed = append(changed, InputWidth)
	}
	if dims.Height != b.dims.Height {
		changed = append(changed, InputHeight)
	}
	if len(changed) == 0 {
		return false
	}
	b.data, b.dims = data, dims
	b.lastChange = changed
	b.Draw()
	return true
}

// SetData replaces the data input.
func (b *Binding[T]) SetData(data *T) bool {
	return b.Set(data, b.dims)
}

// SetDimensions replaces the width and height inputs.
func (b *Binding[T]) SetDimensions(dims Dimensions) bool {
	return b.Set(b.data, dims)
}

// Data returns the current data input.
func (b *Binding[T]) Data() *T { return b.data }

// Dimensions returns the current size inputs.
func (b *Binding[T]) Dimensions() Dimensions { return b.dims }

// Redraws returns how many times the redraw function has run.
func (b *Binding[T]) Redraws() int { return b.redraws }

// LastChange returns the names of the inputs that triggered the latest
// redraw by Set.
func (b *Binding[T]) LastChange() []string { return b.lastChange }

// Mount sizes a binding from w, draws it once and redraws it on every
// resize of w. The returned function unsubscribes from w.
func Mount[T any](w *Window, policy Policy, data *T, redraw RedrawFunc[T]) (*Binding[T], func()) {
	b := Bind(data, policy.FromContainer(w.Width()), redraw)
	b.Draw()
	unmount := w.Subscribe(func(width int) {
		b.SetDimensions(policy.FromContainer(width))
	})
	return b, unmount
}
