package scene

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"gitlab.com/tinyland/lab/linechart/pkg/shape"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// EncodeSVG writes c as a standalone SVG document.
func EncodeSVG(w io.Writer, c *Canvas) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="%s" width="%d" height="%d" viewBox="0 0 %d %d">`,
		svgNamespace, c.Width, c.Height, c.Width, c.Height)
	if c.Background != "" {
		fmt.Fprintf(bw, `<rect width="100%%" height="100%%" fill="%s"/>`, attr(c.Background))
	}
	if c.Root != nil {
		for _, child := range c.Root.Children {
			encodeNode(bw, child)
		}
	}
	bw.WriteString("</svg>")
	return bw.Flush()
}

// SVG returns c as an SVG document string.
func SVG(c *Canvas) string {
	var b strings.Builder
	_ = EncodeSVG(&b, c)
	return b.String()
}

func encodeNode(w *bufio.Writer, n Node) {
	switch n := n.(type) {
	case *Group:
		w.WriteString("<g")
		writeClass(w, n.Class)
		if n.Translate != (Offset{}) {
			fmt.Fprintf(w, ` transform="translate(%s,%s)"`, coord(n.Translate.X), coord(n.Translate.Y))
		}
		w.WriteString(">")
		for _, child := range n.Children {
			encodeNode(w, child)
		}
		w.WriteString("</g>")

	case *Path:
		w.WriteString("<path")
		writeClass(w, n.Class)
		fill := n.Fill
		if fill == "" {
			fill = "none"
		}
		fmt.Fprintf(w, ` fill="%s"`, attr(fill))
		if n.Stroke != "" {
			fmt.Fprintf(w, ` stroke="%s"`, attr(n.Stroke))
		}
		if n.StrokeWidth > 0 {
			fmt.Fprintf(w, ` stroke-width="%s"`, coord(n.StrokeWidth))
		}
		fmt.Fprintf(w, ` d="%s"/>`, n.Data.String())

	case *Line:
		w.WriteString("<line")
		writeClass(w, n.Class)
		if n.Stroke != "" {
			fmt.Fprintf(w, ` stroke="%s"`, attr(n.Stroke))
		}
		fmt.Fprintf(w, ` x1="%s" y1="%s" x2="%s" y2="%s"/>`,
			coord(n.X1), coord(n.Y1), coord(n.X2), coord(n.Y2))

	case *Text:
		w.WriteString("<text")
		writeClass(w, n.Class)
		if n.Fill != "" {
			fmt.Fprintf(w, ` fill="%s"`, attr(n.Fill))
		}
		fmt.Fprintf(w, ` x="%s" y="%s"`, coord(n.X), coord(n.Y))
		if n.Anchor != "" && n.Anchor != AnchorStart {
			fmt.Fprintf(w, ` text-anchor="%s"`, n.Anchor)
		}
		switch n.Baseline {
		case BaselineHanging:
			w.WriteString(` dy="0.71em"`)
		case BaselineMiddle:
			w.WriteString(` dy="0.32em"`)
		}
		if n.FontSize > 0 {
			fmt.Fprintf(w, ` font-size="%s"`, coord(n.FontSize))
		}
		w.WriteString(">")
		w.WriteString(attr(n.Content))
		w.WriteString("</text>")
	}
}

func writeClass(w *bufio.Writer, class string) {
	if class != "" {
		fmt.Fprintf(w, ` class="%s"`, attr(class))
	}
}

func coord(v float64) string {
	return shape.FormatCoord(v)
}

func attr(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
