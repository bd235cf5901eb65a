package timeline

import (
	"time"

	gerrors "github.com/matzehuels/ganttline/pkg/errors"
	"github.com/matzehuels/ganttline/pkg/task"
)

// Layout defaults.
const (
	DefaultColumnWidth   = 40.0
	DefaultRowHeight     = 36.0
	DefaultBarHeight     = 24.0
	DefaultViewportWidth = 1200.0
)

// Options controls [Compute]. Zero sizes select the defaults; a zero Range
// covers the schedule, aligned to the start of the mode's period.
type Options struct {
	Mode          ViewMode
	Range         Range
	ColumnWidth   float64
	RowHeight     float64
	BarHeight     float64
	ViewportWidth float64
	Today         time.Time
}

func (o Options) withDefaults() Options {
	if o.ColumnWidth <= 0 {
		o.ColumnWidth = DefaultColumnWidth
	}
	if o.RowHeight <= 0 {
		o.RowHeight = DefaultRowHeight
	}
	if o.BarHeight <= 0 {
		o.BarHeight = DefaultBarHeight
	}
	if o.BarHeight > o.RowHeight {
		o.BarHeight = o.RowHeight
	}
	if o.ViewportWidth <= 0 {
		o.ViewportWidth = DefaultViewportWidth
	}
	if o.Today.IsZero() {
		o.Today = time.Now().UTC()
	}
	return o
}

// Bar is the rectangle of one task.
type Bar struct {
	TaskID        string  `json:"task_id"`
	Label         string  `json:"label"`
	Row           int     `json:"row"`
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	ProgressWidth float64 `json:"progress_width"`
	Milestone     bool    `json:"milestone,omitempty"`
	ReadOnly      bool    `json:"read_only,omitempty"`
	Color         string  `json:"color,omitempty"`
}

// Connector is the drawn form of one dependency.
type Connector struct {
	From string              `json:"from"`
	To   string              `json:"to"`
	Type task.DependencyType `json:"type"`
	Path
}

// Layout holds every primitive needed to draw one timeline.
type Layout struct {
	Mode         ViewMode       `json:"mode"`
	Range        Range          `json:"range"`
	ColumnWidth  float64        `json:"column_width"`
	RowHeight    float64        `json:"row_height"`
	Width        float64        `json:"width"`
	Height       float64        `json:"height"`
	GridLines    []GridLine     `json:"grid_lines"`
	MajorHeaders []Header       `json:"major_headers"`
	MinorHeaders []Header       `json:"minor_headers"`
	Weekends     []WeekendShade `json:"weekends"`
	Bars         []Bar          `json:"bars"`
	Connectors   []Connector    `json:"connectors"`
	TodayVisible bool           `json:"today_visible"`
	TodayX       float64        `json:"today_x"`
	ScrollX      float64        `json:"scroll_x"`
}

// BarGeometry places t in the given row of a timeline starting at start.
func BarGeometry(t task.Task, row int, start time.Time, mode ViewMode, columnWidth, rowHeight, barHeight float64) Bar {
	x := TimeToX(start, t.Start, mode, columnWidth)
	width := max(0, TimeToX(start, t.End, mode, columnWidth)-x)
	return Bar{
		TaskID:        t.ID,
		Label:         t.Name,
		Row:           row,
		X:             x,
		Y:             float64(row)*rowHeight + (rowHeight-barHeight)/2,
		Width:         width,
		Height:        barHeight,
		ProgressWidth: width * task.ClampProgress(t.Progress),
		Milestone:     t.IsMilestone(),
		ReadOnly:      t.ReadOnly,
		Color:         t.Color,
	}
}

// Compute lays out s. Tasks keep their order, one per row. Dependencies
// whose endpoints are not both in s are skipped.
func Compute(s task.Schedule, opts Options) (*Layout, error) {
	if !opts.Mode.IsValid() {
		return nil, gerrors.New(gerrors.ErrCodeInvalidViewMode, "invalid view mode %d", int(opts.Mode))
	}
	opts = opts.withDefaults()

	r := opts.Range
	if r.IsZero() {
		start, end, ok := s.Span()
		if !ok {
			return nil, gerrors.New(gerrors.ErrCodeInvalidRange, "no range given and schedule is empty")
		}
		r = Range{Start: opts.Mode.Align(start.UTC()), End: end.UTC()}
	}
	r, err := NewRange(r.Start, r.End)
	if err != nil {
		return nil, err
	}

	l := &Layout{
		Mode:         opts.Mode,
		Range:        r,
		ColumnWidth:  opts.ColumnWidth,
		RowHeight:    opts.RowHeight,
		GridLines:    GridLines(r.Start, r.End, opts.Mode, opts.ColumnWidth),
		MajorHeaders: MajorHeaders(r.Start, r.End, opts.Mode, opts.ColumnWidth),
		MinorHeaders: MinorHeaders(r.Start, r.End, opts.Mode, opts.ColumnWidth),
		Weekends:     WeekendShading(r.Start, r.End, opts.ColumnWidth),
		Bars:         make([]Bar, 0, len(s.Tasks)),
		Connectors:   []Connector{},
		TodayVisible: IsTodayVisible(r, opts.Today),
	}
	l.Width = float64(len(l.MinorHeaders)) * opts.ColumnWidth
	l.Height = float64(len(s.Tasks)) * opts.RowHeight

	bars := make(map[string]Bar, len(s.Tasks))
	for i, t := range s.Tasks {
		b := BarGeometry(t, i, r.Start, opts.Mode, opts.ColumnWidth, opts.RowHeight, opts.BarHeight)
		l.Bars = append(l.Bars, b)
		if _, dup := bars[t.ID]; !dup {
			bars[t.ID] = b
		}
	}

	for _, d := range s.Dependencies {
		d = d.Normalize()
		src, okS := bars[d.From]
		dst, okT := bars[d.To]
		if !okS || !okT {
			continue
		}
		l.Connectors = append(l.Connectors, Connector{
			From: d.From,
			To:   d.To,
			Type: d.Type,
			Path: DependencyPath(d.Type, src.X, src.Y, src.Width, dst.X, dst.Y, dst.Width, opts.BarHeight),
		})
	}

	l.TodayX = TimeToX(r.Start, opts.Today, opts.Mode, opts.ColumnWidth)
	l.ScrollX = ScrollToCenter(l.TodayX, opts.ViewportWidth)
	return l, nil
}
