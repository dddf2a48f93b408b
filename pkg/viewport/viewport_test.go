package viewport

import (
	"reflect"
	"testing"
)

func TestFromContainerCapsWidth(t *testing.T) {
	tests := []struct {
		width int
		want  Dimensions
	}{
		{1000, Dimensions{800, 400}},
		{800, Dimensions{800, 400}},
		{400, Dimensions{400, 400}},
		{-5, Dimensions{0, 400}},
	}
	for _, tt := range tests {
		if got := FromContainer(tt.width); got != tt.want {
			t.Errorf("FromContainer(%d) = %+v, want %+v", tt.width, got, tt.want)
		}
	}
}

func TestPolicyWithoutCap(t *testing.T) {
	got := Policy{MaxWidth: 0, Height: 300}.FromContainer(2000)
	if got != (Dimensions{2000, 300}) {
		t.Errorf("uncapped = %+v, want {2000 300}", got)
	}
}

func TestBindingRedrawsOnlyOnChange(t *testing.T) {
	data := []int{1, 2, 3}
	var seen []Dimensions
	b := Bind(&data, Dimensions{800, 400}, func(_ *[]int, d Dimensions) {
		seen = append(seen, d)
	})

	if b.SetDimensions(Dimensions{800, 400}) {
		t.Error("unchanged dimensions triggered a redraw")
	}
	if !b.SetDimensions(Dimensions{600, 400}) {
		t.Error("width change did not redraw")
	}
	if got := b.LastChange(); !reflect.DeepEqual(got, []string{InputWidth}) {
		t.Errorf("LastChange = %v, want [width]", got)
	}

	other := []int{4}
	if !b.SetData(&other) {
		t.Error("new data reference did not redraw")
	}
	if got := b.LastChange(); !reflect.DeepEqual(got, []string{InputData}) {
		t.Errorf("LastChange = %v, want [data]", got)
	}
	if b.SetData(&other) {
		t.Error("same data reference redrew")
	}

	if !b.Set(&data, Dimensions{500, 300}) {
		t.Error("Set with all inputs changed did not redraw")
	}
	if got := b.LastChange(); !reflect.DeepEqual(got, []string{InputData, InputWidth, InputHeight}) {
		t.Errorf("LastChange = %v", got)
	}
	if b.Redraws() != 3 || len(seen) != 3 {
		t.Errorf("redraws = %d (seen %d), want 3", b.Redraws(), len(seen))
	}
}

func TestMountResizeSequence(t *testing.T) {
	w := NewWindow(1200)
	data := "chart"
	var widths []int
	b, unmount := Mount(w, DefaultPolicy(), &data, func(_ *string, d Dimensions) {
		widths = append(widths, d.Width)
	})
	if b.Redraws() != 1 {
		t.Fatalf("initial redraws = %d, want 1", b.Redraws())
	}

	w.Resize(1000)
	// 1200 and 1000 both cap to 800: no change, no redraw.
	if b.Redraws() != 1 {
		t.Errorf("redraws after capped resize = %d, want 1", b.Redraws())
	}

	w.Resize(400)
	if b.Dimensions() != (Dimensions{400, 400}) {
		t.Errorf("dimensions = %+v, want {400 400}", b.Dimensions())
	}
	if b.Redraws() != 2 {
		t.Errorf("redraws = %d, want 2", b.Redraws())
	}
	if !reflect.DeepEqual(widths, []int{800, 400}) {
		t.Errorf("drawn widths = %v, want [800 400]", widths)
	}

	unmount()
	unmount()
	if w.Listeners() != 0 {
		t.Errorf("listeners after unmount = %d, want 0", w.Listeners())
	}
	w.Resize(300)
	if b.Redraws() != 2 {
		t.Error("unmounted binding redrew")
	}
}

func TestMountOneRedrawPerResize(t *testing.T) {
	w := NewWindow(0)
	data := 1
	b, unmount := Mount(w, DefaultPolicy(), &data, nil)
	defer unmount()

	w.Resize(1000)
	if b.Dimensions().Width != 800 || b.Redraws() != 2 {
		t.Errorf("after 1000px: width=%d redraws=%d, want 800 and 2", b.Dimensions().Width, b.Redraws())
	}
	w.Resize(400)
	if b.Dimensions().Width != 400 || b.Redraws() != 3 {
		t.Errorf("after 400px: width=%d redraws=%d, want 400 and 3", b.Dimensions().Width, b.Redraws())
	}
}

func TestWindowListenerOrderAndRemovalDuringNotify(t *testing.T) {
	w := NewWindow(100)
	var order []string
	var unsubB func()
	w.Subscribe(func(int) { order = append(order, "a"); unsubB() })
	unsubB = w.Subscribe(func(int) { order = append(order, "b") })

	w.Resize(200)
	if !reflect.DeepEqual(order, []string{"a", "b"}) {
		t.Errorf("first notify order = %v, want [a b]", order)
	}
	w.Resize(300)
	if !reflect.DeepEqual(order, []string{"a", "b", "a"}) {
		t.Errorf("second notify order = %v, want [a b a]", order)
	}
	if w.Width() != 300 {
		t.Errorf("Width() = %d, want 300", w.Width())
	}
}
