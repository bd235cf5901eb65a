// Package pipeline provides the load → check → layout → render pipeline for
// ganttline.
//
// The CLI and any embedding program use the same [Runner], so caching,
// validation and logging behave the same everywhere.
//
// # Stages
//
//  1. Load: read a schedule file (JSON, TOML or BSON) or take a schedule
//     given in memory
//  2. Check: audit the schedule; error-severity problems abort the run
//  3. Layout: compute the timeline geometry for the requested view mode
//  4. Render: produce the requested formats (timeline SVG, PDF, PNG, the
//     layout as JSON, and the dependency graph as DOT or SVG)
//
// Layouts and artifacts are cached under keys derived from a hash of the
// schedule and the options that affect the result.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	defer runner.Close()
//
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Path:    "plan.json",
//	    View:    "week",
//	    Formats: []string{"svg", "json"},
//	})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"fmt"
	"slices"
	"time"

	"github.com/matzehuels/ganttline/pkg/cache"
	gerrors "github.com/matzehuels/ganttline/pkg/errors"
	"github.com/matzehuels/ganttline/pkg/task"
	"github.com/matzehuels/ganttline/pkg/timeline"
	"github.com/matzehuels/ganttline/pkg/validate"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultView is the zoom level used when Options.View is empty.
	DefaultView = "day"

	// DefaultScale is the PNG scale factor.
	DefaultScale = 2.0
)

// Format constants for output formats.
const (
	FormatSVG      = "svg"       // timeline chart
	FormatPNG      = "png"       // timeline chart, rasterized
	FormatPDF      = "pdf"       // timeline chart
	FormatJSON     = "json"      // computed layout
	FormatDOT      = "dot"       // dependency graph source
	FormatGraphSVG = "graph-svg" // dependency graph drawn by Graphviz
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:      true,
	FormatPNG:      true,
	FormatPDF:      true,
	FormatJSON:     true,
	FormatDOT:      true,
	FormatGraphSVG: true,
}

// FormatExt maps each format to its file extension.
var FormatExt = map[string]string{
	FormatSVG:      ".svg",
	FormatPNG:      ".png",
	FormatPDF:      ".pdf",
	FormatJSON:     ".json",
	FormatDOT:      ".dot",
	FormatGraphSVG: ".graph.svg",
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
type Options struct {
	// Load options. Schedule, when set, is used instead of reading Path.
	Path     string         `json:"path,omitempty"`
	Schedule *task.Schedule `json:"-"`

	// Check options
	SkipCheck bool `json:"skip_check,omitempty"`

	// Layout options
	View          string    `json:"view,omitempty"`
	Start         time.Time `json:"start,omitempty"`
	End           time.Time `json:"end,omitempty"`
	ColumnWidth   float64   `json:"column_width,omitempty"`
	RowHeight     float64   `json:"row_height,omitempty"`
	BarHeight     float64   `json:"bar_height,omitempty"`
	ViewportWidth float64   `json:"viewport_width,omitempty"`
	Today         time.Time `json:"today,omitempty"`

	// Render options
	Formats      []string `json:"formats,omitempty"`
	Title        string   `json:"title,omitempty"`
	HideWeekends bool     `json:"hide_weekends,omitempty"`
	HideToday    bool     `json:"hide_today,omitempty"`
	Detailed     bool     `json:"detailed,omitempty"` // detailed node labels in graph formats
	Scale        float64  `json:"scale,omitempty"`

	// Refresh skips cache reads; results are still written.
	Refresh bool `json:"refresh,omitempty"`

	mode      timeline.ViewMode
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Schedule is the loaded, normalized schedule.
	Schedule task.Schedule

	// ScheduleHash is the content hash used in cache keys.
	ScheduleHash string

	// Problems holds the warnings the check stage found.
	Problems []validate.Problem

	// Layout is the computed timeline.
	Layout *timeline.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	TaskCount  int
	EdgeCount  int
	LoadTime   time.Duration
	CheckTime  time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	CheckHit  bool // Whether the audit came from cache
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// CheckError is returned when the check stage finds error-severity
// problems. It carries every problem found, warnings included.
type CheckError struct {
	Problems []validate.Problem
}

func (e *CheckError) Error() string {
	n := 0
	for _, p := range e.Problems {
		if p.Severity == validate.SeverityError {
			n++
		}
	}
	if n == 1 {
		return "schedule has 1 error"
	}
	return fmt.Sprintf("schedule has %d errors", n)
}

// Code returns the code of the first error-severity problem.
func (e *CheckError) Code() gerrors.Code {
	for _, p := range e.Problems {
		if p.Severity == validate.SeverityError {
			return p.Code
		}
	}
	return gerrors.ErrCodeInvalidInput
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return gerrors.New(gerrors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, json, dot, graph-svg)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Path == "" && o.Schedule == nil {
		return gerrors.New(gerrors.ErrCodeInvalidInput, "path or schedule is required")
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.View == "" {
		o.View = DefaultView
	}
	if o.ColumnWidth <= 0 {
		o.ColumnWidth = timeline.DefaultColumnWidth
	}
	if o.RowHeight <= 0 {
		o.RowHeight = timeline.DefaultRowHeight
	}
	if o.BarHeight <= 0 {
		o.BarHeight = timeline.DefaultBarHeight
	}
	if o.ViewportWidth <= 0 {
		o.ViewportWidth = timeline.DefaultViewportWidth
	}
	if o.Today.IsZero() {
		o.Today = time.Now().UTC().Truncate(24 * time.Hour)
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	mode, err := timeline.ParseViewMode(o.View)
	if err != nil {
		return err
	}
	o.mode = mode
	o.View = mode.String()
	if o.Start.IsZero() != o.End.IsZero() {
		return gerrors.New(gerrors.ErrCodeInvalidRange, "start and end must be given together")
	}
	if !o.Start.IsZero() && o.End.Before(o.Start) {
		return gerrors.New(gerrors.ErrCodeInvalidRange, "end %s is before start %s",
			o.End.Format(time.DateOnly), o.Start.Format(time.DateOnly))
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	return ValidateFormats(o.Formats)
}

// Mode returns the parsed view mode. Valid after ValidateForLayout.
func (o *Options) Mode() timeline.ViewMode { return o.mode }

// NeedsLayout reports whether any requested format is drawn from the
// timeline layout. The graph formats need only the schedule.
func (o *Options) NeedsLayout() bool {
	return slices.ContainsFunc(o.Formats, func(f string) bool {
		return f != FormatDOT && f != FormatGraphSVG
	})
}

// TimelineOptions returns the options passed to [timeline.Compute].
func (o *Options) TimelineOptions() timeline.Options {
	opts := timeline.Options{
		Mode:          o.mode,
		ColumnWidth:   o.ColumnWidth,
		RowHeight:     o.RowHeight,
		BarHeight:     o.BarHeight,
		ViewportWidth: o.ViewportWidth,
		Today:         o.Today,
	}
	if !o.Start.IsZero() {
		opts.Range = timeline.Range{Start: o.Start, End: o.End}
	}
	return opts
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		View:        o.View,
		Start:       formatTime(o.Start),
		End:         formatTime(o.End),
		ColumnWidth: o.ColumnWidth,
		RowHeight:   o.RowHeight,
		BarHeight:   o.BarHeight,
		Today:       formatTime(o.Today),
	}
}

// ArtifactKeyOpts returns cache key options for one rendered format.
// layoutKey ties timeline formats to the layout they were drawn from.
func (o *Options) ArtifactKeyOpts(format, layoutKey string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{Format: format, View: o.View}
	switch format {
	case FormatDOT, FormatGraphSVG:
		if o.Detailed {
			opts.Layout = "detailed"
		}
	default:
		opts.Layout = fmt.Sprintf("%s|%s|%t|%t|%g", layoutKey, o.Title, o.HideWeekends, o.HideToday, o.Scale)
	}
	return opts
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
