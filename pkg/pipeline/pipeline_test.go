package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	gerrors "github.com/matzehuels/ganttline/pkg/errors"
	"github.com/matzehuels/ganttline/pkg/observability"
	"github.com/matzehuels/ganttline/pkg/task"
	"github.com/matzehuels/ganttline/pkg/timeline"
	"github.com/matzehuels/ganttline/pkg/validate"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleSchedule() *task.Schedule {
	return &task.Schedule{
		Tasks: []task.Task{
			{ID: "A", Name: "Design", Start: date(2024, 1, 3), End: date(2024, 1, 8), Progress: 0.5},
			{ID: "B", Name: "Build", Start: date(2024, 1, 8), End: date(2024, 1, 18)},
			{ID: "M", Name: "Launch", Start: date(2024, 1, 18), End: date(2024, 1, 18), Kind: task.KindMilestone},
		},
		Dependencies: []task.Dependency{
			{From: "A", To: "B", Type: task.FinishToStart},
			{From: "B", To: "M", Type: task.FinishToStart},
			{From: "B", To: "ghost", Type: task.FinishToStart},
		},
	}
}

// memCache is an in-memory cache.Cache for tests.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemCache() *memCache { return &memCache{data: make(map[string][]byte)} }

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *memCache) Close() error { return nil }

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"dot", false},
		{"graph-svg", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "dot"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{Path: "plan.json"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Valid options should pass: %v", err)
	}

	if opts.View != DefaultView {
		t.Errorf("View should be %s, got %s", DefaultView, opts.View)
	}
	if opts.Mode() != timeline.Day {
		t.Errorf("Mode should be day, got %v", opts.Mode())
	}
	if opts.ColumnWidth != timeline.DefaultColumnWidth {
		t.Errorf("ColumnWidth should be %v, got %v", timeline.DefaultColumnWidth, opts.ColumnWidth)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats should be [svg], got %v", opts.Formats)
	}
	if opts.Scale != DefaultScale {
		t.Errorf("Scale should be %v, got %v", DefaultScale, opts.Scale)
	}
	if opts.Today.IsZero() {
		t.Error("Today should default to the current day")
	}
}

func TestOptionsValidation(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code gerrors.Code
	}{
		{"no input", Options{}, gerrors.ErrCodeInvalidInput},
		{"bad view", Options{Path: "p.json", View: "fortnight"}, gerrors.ErrCodeInvalidViewMode},
		{"half range", Options{Path: "p.json", Start: date(2024, 1, 1)}, gerrors.ErrCodeInvalidRange},
		{"inverted range", Options{Path: "p.json", Start: date(2024, 2, 1), End: date(2024, 1, 1)}, gerrors.ErrCodeInvalidRange},
		{"bad format", Options{Path: "p.json", Formats: []string{"gif"}}, gerrors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if err == nil {
				t.Fatal("expected error")
			}
			if got := gerrors.GetCode(err); got != tt.code {
				t.Errorf("code: got %q, want %q", got, tt.code)
			}
		})
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{Path: "plan.json", View: "WEEK"}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("First validation failed: %v", err)
	}
	view, today := opts.View, opts.Today

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Second validation failed: %v", err)
	}
	if opts.View != view || view != "week" {
		t.Errorf("View: got %q, want week", opts.View)
	}
	if !opts.Today.Equal(today) {
		t.Error("Today changed on second call")
	}
}

func TestOptionsNeedsLayout(t *testing.T) {
	tests := []struct {
		formats []string
		want    bool
	}{
		{[]string{"svg"}, true},
		{[]string{"dot"}, false},
		{[]string{"dot", "graph-svg"}, false},
		{[]string{"dot", "json"}, true},
	}
	for _, tt := range tests {
		opts := Options{Formats: tt.formats}
		if got := opts.NeedsLayout(); got != tt.want {
			t.Errorf("NeedsLayout(%v) = %v, want %v", tt.formats, got, tt.want)
		}
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	opts := Options{View: "day", Scale: 2}
	svg := opts.ArtifactKeyOpts(FormatSVG, "layout:1")
	dot := opts.ArtifactKeyOpts(FormatDOT, "layout:1")
	if svg.Layout == "" || !strings.HasPrefix(svg.Layout, "layout:1") {
		t.Errorf("timeline artifact should depend on the layout key, got %q", svg.Layout)
	}
	if dot.Layout != "" {
		t.Errorf("graph artifact should not depend on the layout, got %q", dot.Layout)
	}
}

func TestExecute(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	result, err := runner.Execute(context.Background(), Options{
		Schedule:    sampleSchedule(),
		ColumnWidth: 10,
		Today:       date(2024, 1, 13),
		Formats:     []string{FormatSVG, FormatJSON, FormatDOT},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.Stats.TaskCount != 3 || result.Stats.EdgeCount != 2 {
		t.Errorf("stats: %d tasks, %d edges; want 3, 2", result.Stats.TaskCount, result.Stats.EdgeCount)
	}
	if result.ScheduleHash == "" {
		t.Error("ScheduleHash should be set")
	}
	if len(result.Problems) != 1 || result.Problems[0].Code != gerrors.ErrCodeDanglingDependency {
		t.Errorf("Problems: got %+v, want one dangling warning", result.Problems)
	}
	if result.Layout == nil || len(result.Layout.Bars) != 3 {
		t.Fatalf("Layout: got %+v", result.Layout)
	}

	if svg := result.Artifacts[FormatSVG]; !bytes.HasPrefix(svg, []byte("<svg")) {
		t.Errorf("svg artifact: %.40q", svg)
	}
	var decoded timeline.Layout
	if err := json.Unmarshal(result.Artifacts[FormatJSON], &decoded); err != nil {
		t.Fatalf("json artifact: %v", err)
	}
	if len(decoded.Bars) != 3 || decoded.Mode != timeline.Day {
		t.Errorf("decoded layout: %d bars, mode %v", len(decoded.Bars), decoded.Mode)
	}
	if dot := string(result.Artifacts[FormatDOT]); !strings.HasPrefix(dot, "digraph") {
		t.Errorf("dot artifact: %.40q", dot)
	}
	if result.CacheInfo.LayoutHit || result.CacheInfo.RenderHit {
		t.Error("null cache should never hit")
	}
}

func TestExecuteCaches(t *testing.T) {
	runner := NewRunner(newMemCache(), nil, nil)
	opts := Options{
		Schedule: sampleSchedule(),
		Today:    date(2024, 1, 13),
		Formats:  []string{FormatSVG, FormatJSON},
	}

	first, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheInfo.CheckHit || first.CacheInfo.LayoutHit || first.CacheInfo.RenderHit {
		t.Error("first run should miss")
	}

	second, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheInfo.CheckHit || !second.CacheInfo.LayoutHit || !second.CacheInfo.RenderHit {
		t.Errorf("second run should hit: %+v", second.CacheInfo)
	}
	if !bytes.Equal(first.Artifacts[FormatSVG], second.Artifacts[FormatSVG]) {
		t.Error("cached svg differs")
	}
	if len(second.Layout.Bars) != len(first.Layout.Bars) {
		t.Error("cached layout differs")
	}

	// A changed schedule changes every key.
	changed := sampleSchedule()
	changed.Tasks[0].Progress = 1
	opts.Schedule = changed
	third, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("third Execute: %v", err)
	}
	if third.CacheInfo.LayoutHit || third.ScheduleHash == first.ScheduleHash {
		t.Error("edited schedule should miss")
	}

	// Refresh skips reads.
	opts.Refresh = true
	fourth, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("fourth Execute: %v", err)
	}
	if fourth.CacheInfo.LayoutHit || fourth.CacheInfo.RenderHit {
		t.Error("refresh should not read the cache")
	}
}

func TestExecuteCheckError(t *testing.T) {
	s := sampleSchedule()
	s.Dependencies = append(s.Dependencies, task.Dependency{From: "A", To: "A", Type: task.FinishToStart})

	_, err := NewRunner(nil, nil, nil).Execute(context.Background(), Options{Schedule: s})
	var checkErr *CheckError
	if !errors.As(err, &checkErr) {
		t.Fatalf("got %v, want *CheckError", err)
	}
	if gerrors.GetCode(err) != gerrors.ErrCodeSelfDependency {
		t.Errorf("code: got %q", gerrors.GetCode(err))
	}
	if err.Error() != "schedule has 1 error" {
		t.Errorf("message: %q", err.Error())
	}
	if !validate.HasErrors(checkErr.Problems) {
		t.Error("problems should include the error")
	}

	// SkipCheck lets the run through.
	if _, err := NewRunner(nil, nil, nil).Execute(context.Background(), Options{Schedule: s, SkipCheck: true, Formats: []string{FormatDOT}}); err != nil {
		t.Errorf("SkipCheck: %v", err)
	}
}

func TestExecuteGraphOnly(t *testing.T) {
	result, err := NewRunner(nil, nil, nil).Execute(context.Background(), Options{
		Schedule: sampleSchedule(),
		Formats:  []string{FormatDOT},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Layout != nil {
		t.Error("graph-only run should not compute a layout")
	}
	if !strings.Contains(string(result.Artifacts[FormatDOT]), `"A" -> "B"`) {
		t.Errorf("dot artifact missing edge:\n%s", result.Artifacts[FormatDOT])
	}
}

func TestExecuteFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	doc := `{
  "tasks": [
    {"id": "a", "name": "One", "start": "2024-03-04T00:00:00Z", "end": "2024-03-06T00:00:00Z", "progress": 0},
    {"id": "b", "name": "Two", "start": "2024-03-06T00:00:00Z", "end": "2024-03-08T00:00:00Z", "progress": 0}
  ],
  "dependencies": [{"from": "a", "to": "b", "type": "FS"}]
}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := NewRunner(nil, nil, nil).Execute(context.Background(), Options{
		Path:    path,
		Today:   date(2024, 3, 5),
		Formats: []string{FormatJSON},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(result.Schedule.Tasks) != 2 || len(result.Layout.Connectors) != 1 {
		t.Errorf("got %d tasks, %d connectors", len(result.Schedule.Tasks), len(result.Layout.Connectors))
	}
	if len(result.Problems) != 0 {
		t.Errorf("Problems: %+v", result.Problems)
	}

	_, err = NewRunner(nil, nil, nil).Execute(context.Background(), Options{Path: filepath.Join(t.TempDir(), "missing.json")})
	if !gerrors.Is(err, gerrors.ErrCodeFileNotFound) {
		t.Errorf("missing file: got %v", err)
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	mu     sync.Mutex
	events []string
}

func (h *recordingHooks) add(e string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, e)
}

func (h *recordingHooks) OnLoadStart(context.Context, string) { h.add("load") }
func (h *recordingHooks) OnCheckComplete(context.Context, int, time.Duration, error) {
	h.add("check")
}
func (h *recordingHooks) OnLayoutStart(context.Context, string, int) { h.add("layout") }
func (h *recordingHooks) OnRenderStart(context.Context, []string)    { h.add("render") }

func TestExecuteCallsHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	defer observability.Reset()

	_, err := NewRunner(nil, nil, nil).Execute(context.Background(), Options{Schedule: sampleSchedule(), Today: date(2024, 1, 13)})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	want := []string{"load", "check", "layout", "render"}
	if strings.Join(hooks.events, ",") != strings.Join(want, ",") {
		t.Errorf("hook order: got %v, want %v", hooks.events, want)
	}
}
