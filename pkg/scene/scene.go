// Package scene holds the drawable element tree produced by the chart
// renderers. A Canvas owns one tree; every redraw resets it and builds a
// new one, so no element survives from a previous render.
package scene

import "gitlab.com/tinyland/lab/linechart/pkg/shape"

// Kind identifies a node type.
type Kind int

const (
	KindGroup Kind = iota
	KindPath
	KindLine
	KindText
)

var kindNames = [...]string{
	KindGroup: "group",
	KindPath:  "path",
	KindLine:  "line",
	KindText:  "text",
}

// String returns the lowercase node type name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Node is any element of the tree.
type Node interface {
	Kind() Kind
}

// Offset is a translation applied to a group's children.
type Offset struct {
	X, Y float64
}

// Add returns the sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Group is a container translating its children.
type Group struct {
	Class     string
	Translate Offset
	Children  []Node
}

func (*Group) Kind() Kind { return KindGroup }

// Append adds children and returns g for chaining.
func (g *Group) Append(nodes ...Node) *Group {
	g.Children = append(g.Children, nodes...)
	return g
}

// Path is a stroked or filled shape.
type Path struct {
	Class       string
	Data        shape.Path
	Stroke      string
	StrokeWidth float64
	Fill        string // "none" for lines
}

func (*Path) Kind() Kind { return KindPath }

// Line is a single straight segment, used for axis ticks.
type Line struct {
	Class          string
	X1, Y1, X2, Y2 float64
	Stroke         string
}

func (*Line) Kind() Kind { return KindLine }

// Anchor is the horizontal text alignment.
type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// Baseline is the vertical text alignment relative to Y.
type Baseline string

const (
	// BaselineAlphabetic places the text baseline at Y.
	BaselineAlphabetic Baseline = ""
	// BaselineHanging places the top of the text at Y.
	BaselineHanging Baseline = "hanging"
	// BaselineMiddle centers the text on Y.
	BaselineMiddle Baseline = "middle"
)

// Text is a label.
type Text struct {
	Class    string
	X, Y     float64
	Anchor   Anchor
	Baseline Baseline
	Fill     string
	FontSize float64
	Content  string
}

func (*Text) Kind() Kind { return KindText }

// Canvas is a drawing surface of fixed pixel size.
type Canvas struct {
	Width, Height int
	Background    string
	Root          *Group
}

// NewCanvas returns an empty canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{Width: width, Height: height, Root: &Group{}}
}

// Reset clears every element and resizes the canvas.
func (c *Canvas) Reset(width, height int) {
	c.Width, c.Height = width, height
	c.Root = &Group{}
}

// Empty reports whether the canvas holds no elements.
func (c *Canvas) Empty() bool {
	return c.Root == nil || len(c.Root.Children) == 0
}

// Walk visits every node depth-first with the offset accumulated from its
// ancestors' translations (excluding the node's own).
func (c *Canvas) Walk(fn func(n Node, off Offset)) {
	if c.Root == nil {
		return
	}
	walk(c.Root, Offset{}, fn)
}

func walk(n Node, off Offset, fn func(Node, Offset)) {
	fn(n, off)
	if g, ok := n.(*Group); ok {
		inner := off.Add(g.Translate)
		for _, child := range g.Children {
			walk(child, inner, fn)
		}
	}
}

// Count returns the number of nodes of kind k, excluding the root group.
func (c *Canvas) Count(k Kind) int {
	n := 0
	c.Walk(func(node Node, _ Offset) {
		if node.Kind() == k && node != Node(c.Root) {
			n++
		}
	})
	return n
}

// Paths returns every path node whose class contains class, or all paths
// when class is empty.
func (c *Canvas) Paths(class string) []*Path {
	var out []*Path
	c.Walk(func(node Node, _ Offset) {
		if p, ok := node.(*Path); ok && hasClass(p.Class, class) {
			out = append(out, p)
		}
	})
	return out
}

// Groups returns every group whose class contains class.
func (c *Canvas) Groups(class string) []*Group {
	var out []*Group
	c.Walk(func(node Node, _ Offset) {
		if g, ok := node.(*Group); ok && class != "" && hasClass(g.Class, class) {
			out = append(out, g)
		}
	})
	return out
}

func hasClass(list, class string) bool {
	if class == "" {
		return true
	}
	start := 0
	for i := 0; i <= len(list); i++ {
		if i == len(list) || list[i] == ' ' {
			if list[start:i] == class {
				return true
			}
			start = i + 1
		}
	}
	return false
}
