package timeline

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/ganttline/pkg/timeline"
)

const (
	majorRowHeight = 24.0
	minorRowHeight = 22.0
	headerHeight   = majorRowHeight + minorRowHeight
	titleHeight    = 32.0
	labelPadding   = 6.0
	defaultColor   = "#4a7bd0"
)

const timelineCSS = `
    .major-header rect, .minor-header rect { fill: #f6f7f9; stroke: #d0d4da; stroke-width: 1; }
    .major-header text { font: bold 12px sans-serif; fill: #333; }
    .minor-header text { font: 11px sans-serif; fill: #555; }
    .weekend { fill: #f0f1f4; }
    .grid-line { stroke: #e4e6ea; stroke-width: 1; }
    .grid-line.major { stroke: #c2c7cf; }
    .bar { stroke: #2d4f8c; stroke-width: 1; }
    .bar.read-only { stroke-dasharray: 4 2; }
    .bar-progress { fill: #000; fill-opacity: 0.18; }
    .bar-label { font: 11px sans-serif; fill: #222; dominant-baseline: middle; }
    .dependency { fill: none; stroke: #7a8391; stroke-width: 1.5; }
    .today { stroke: #e0463d; stroke-width: 2; }
    .title { font: bold 16px sans-serif; fill: #222; }`

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	title      string
	weekends   bool
	today      bool
	connectors bool
}

// WithTitle adds a title line above the headers.
func WithTitle(s string) SVGOption { return func(r *svgRenderer) { r.title = s } }

// WithoutWeekends omits weekend shading.
func WithoutWeekends() SVGOption { return func(r *svgRenderer) { r.weekends = false } }

// WithoutToday omits the today marker.
func WithoutToday() SVGOption { return func(r *svgRenderer) { r.today = false } }

// WithoutConnectors omits dependency curves.
func WithoutConnectors() SVGOption { return func(r *svgRenderer) { r.connectors = false } }

// RenderSVG draws l as a standalone SVG document.
func RenderSVG(l *timeline.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{weekends: true, today: true, connectors: true}
	for _, opt := range opts {
		opt(&r)
	}

	top := 0.0
	if r.title != "" {
		top = titleHeight
	}
	width := max(l.Width, 1)
	height := top + headerHeight + l.Height

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", timelineCSS)
	renderDefs(&buf)

	if r.title != "" {
		fmt.Fprintf(&buf, `  <text class="title" x="%.1f" y="%.1f">%s</text>`+"\n", labelPadding, titleHeight*0.65, escapeXML(r.title))
	}

	fmt.Fprintf(&buf, `  <g class="headers" transform="translate(0,%.1f)">`+"\n", top)
	renderHeaders(&buf, "major-header", l.MajorHeaders, 0, majorRowHeight)
	renderHeaders(&buf, "minor-header", l.MinorHeaders, majorRowHeight, minorRowHeight)
	buf.WriteString("  </g>\n")

	fmt.Fprintf(&buf, `  <g class="body" transform="translate(0,%.1f)">`+"\n", top+headerHeight)
	if r.weekends {
		for _, w := range l.Weekends {
			if w.X >= l.Width {
				continue
			}
			fmt.Fprintf(&buf, `    <rect class="weekend" x="%.2f" y="0" width="%.2f" height="%.2f"/>`+"\n", w.X, w.Width, l.Height)
		}
	}
	for _, g := range l.GridLines {
		class := "grid-line"
		if g.IsMajor {
			class += " major"
		}
		fmt.Fprintf(&buf, `    <line class="%s" x1="%.2f" y1="0" x2="%.2f" y2="%.2f"/>`+"\n", class, g.X, g.X, l.Height)
	}
	if r.connectors {
		for _, c := range l.Connectors {
			fmt.Fprintf(&buf, `    <path class="dependency" data-from="%s" data-to="%s" data-type="%s" d="%s" marker-end="url(#arrow)"/>`+"\n",
				escapeXML(c.From), escapeXML(c.To), c.Type, c.D)
		}
	}
	for _, b := range l.Bars {
		renderBar(&buf, b)
	}
	if r.today && l.TodayVisible {
		fmt.Fprintf(&buf, `    <line class="today" x1="%.2f" y1="0" x2="%.2f" y2="%.2f"/>`+"\n", l.TodayX, l.TodayX, l.Height)
	}
	buf.WriteString("  </g>\n")

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderDefs(buf *bytes.Buffer) {
	buf.WriteString(`  <defs>
    <marker id="arrow" viewBox="0 0 10 10" refX="9" refY="5" markerWidth="6" markerHeight="6" orient="auto-start-reverse">
      <path d="M 0 0 L 10 5 L 0 10 z" fill="#7a8391"/>
    </marker>
  </defs>
`)
}

func renderHeaders(buf *bytes.Buffer, class string, headers []timeline.Header, y, h float64) {
	for _, hd := range headers {
		fmt.Fprintf(buf, `    <g class="%s"><rect x="%.2f" y="%.1f" width="%.2f" height="%.1f"/>`, class, hd.X, y, hd.Width, h)
		fmt.Fprintf(buf, `<text x="%.2f" y="%.1f">%s</text></g>`+"\n", hd.X+4, y+h*0.7, escapeXML(hd.Label))
	}
}

func renderBar(buf *bytes.Buffer, b timeline.Bar) {
	color := b.Color
	if color == "" {
		color = defaultColor
	}
	cy := b.Y + b.Height/2
	class := "bar"
	if b.ReadOnly {
		class += " read-only"
	}

	fmt.Fprintf(buf, `    <g class="task" id="task-%s">`, escapeXML(b.TaskID))
	if b.Milestone {
		half := b.Height / 2
		fmt.Fprintf(buf, `<polygon class="%s" points="%.2f,%.2f %.2f,%.2f %.2f,%.2f %.2f,%.2f" fill="%s"/>`,
			class, b.X, b.Y, b.X+half, cy, b.X, b.Y+b.Height, b.X-half, cy, escapeXML(color))
		fmt.Fprintf(buf, `<text class="bar-label" x="%.2f" y="%.2f">%s</text>`, b.X+half+labelPadding, cy, escapeXML(b.Label))
	} else {
		fmt.Fprintf(buf, `<rect class="%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="3" fill="%s"/>`,
			class, b.X, b.Y, b.Width, b.Height, escapeXML(color))
		if b.ProgressWidth > 0 {
			fmt.Fprintf(buf, `<rect class="bar-progress" x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="3"/>`,
				b.X, b.Y, b.ProgressWidth, b.Height)
		}
		fmt.Fprintf(buf, `<text class="bar-label" x="%.2f" y="%.2f">%s</text>`, b.X+b.Width+labelPadding, cy, escapeXML(b.Label))
	}
	buf.WriteString("</g>\n")
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
