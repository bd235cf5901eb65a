package timeline

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/ganttline/pkg/task"
	"github.com/matzehuels/ganttline/pkg/timeline"
)

func sampleLayout(t *testing.T) *timeline.Layout {
	t.Helper()
	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }
	s := task.Schedule{
		Tasks: []task.Task{
			{ID: "a", Name: "Design & <plan>", Start: day(1), End: day(5), Progress: 0.5},
			{ID: "b", Name: "Build", Start: day(5), End: day(12), ReadOnly: true, Color: "#aa3300"},
			{ID: "m", Name: "Ship", Start: day(12), End: day(12), Kind: task.KindMilestone},
		},
		Dependencies: []task.Dependency{
			{From: "a", To: "b", Type: task.FinishToStart},
			{From: "b", To: "m", Type: task.FinishToStart},
		},
	}
	l, err := timeline.Compute(s, timeline.Options{Mode: timeline.Day, Today: day(8)})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	return l
}

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG(sampleLayout(t), WithTitle("Q1 plan")))

	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg"`,
		`class="title"`,
		`January 2024`,
		`class="weekend"`,
		`class="grid-line major"`,
		`class="dependency" data-from="a" data-to="b" data-type="FS"`,
		`id="task-a"`,
		`class="bar read-only"`,
		`fill="#aa3300"`,
		`<polygon class="bar"`,
		`class="bar-progress"`,
		`class="today"`,
		`Design &amp; &lt;plan&gt;`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
}

func TestRenderSVG_WellFormed(t *testing.T) {
	dec := xml.NewDecoder(bytes.NewReader(RenderSVG(sampleLayout(t))))
	for {
		_, err := dec.Token()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				t.Fatalf("SVG is not well-formed XML: %v", err)
			}
			break
		}
	}
}

func TestRenderSVG_Options(t *testing.T) {
	svg := string(RenderSVG(sampleLayout(t), WithoutWeekends(), WithoutToday(), WithoutConnectors()))

	for _, unwanted := range []string{`class="weekend"`, `class="today"`, `class="dependency"`, `class="title"`} {
		if strings.Contains(svg, unwanted) {
			t.Errorf("SVG contains %q", unwanted)
		}
	}
}
