package task

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestClampProgress(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"inside", 0.4, 0.4},
		{"zero", 0, 0},
		{"one", 1, 1},
		{"negative", -0.5, 0},
		{"above one", 1.7, 1},
		{"NaN", math.NaN(), 0},
		{"positive infinity", math.Inf(1), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampProgress(tt.in); got != tt.want {
				t.Errorf("ClampProgress(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, loc)
	end := start.Add(48 * time.Hour)

	got := New("design", start, end)

	if _, err := uuid.Parse(got.ID); err != nil {
		t.Errorf("ID %q is not a UUID: %v", got.ID, err)
	}
	if got.Start.Location() != time.UTC || got.End.Location() != time.UTC {
		t.Error("New() should convert times to UTC")
	}
	if !got.Start.Equal(start) {
		t.Errorf("Start = %v, want instant %v", got.Start, start)
	}
	if got.Kind != KindTask {
		t.Errorf("Kind = %q, want %q", got.Kind, KindTask)
	}
	if other := New("design", start, end); other.ID == got.ID {
		t.Error("New() should generate distinct ids")
	}
}

func TestNewMilestone(t *testing.T) {
	at := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	m := NewMilestone("launch", at)

	if !m.IsMilestone() {
		t.Error("IsMilestone() = false")
	}
	if m.Duration() != 0 {
		t.Errorf("Duration() = %v, want 0", m.Duration())
	}
}

func TestNormalize(t *testing.T) {
	in := Task{ID: "a", Progress: 3, Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.FixedZone("X", 3600))}
	got := in.Normalize()

	if got.Progress != 1 {
		t.Errorf("Progress = %v, want 1", got.Progress)
	}
	if got.Kind != KindTask {
		t.Errorf("Kind = %q, want %q", got.Kind, KindTask)
	}
	if got.Start.Location() != time.UTC {
		t.Error("Start not converted to UTC")
	}
	if in.Progress != 3 {
		t.Error("Normalize() mutated its receiver")
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := Task{ID: "a", Assignees: []string{"ana"}, Meta: Metadata{"team": "core"}}
	c := orig.Clone()
	c.Assignees[0] = "bo"
	c.Meta["team"] = "infra"

	if orig.Assignees[0] != "ana" || orig.Meta["team"] != "core" {
		t.Error("Clone() shares state with the original")
	}
}

func TestIsInverted(t *testing.T) {
	day := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	if (Task{Start: day, End: day.AddDate(0, 0, -1)}).IsInverted() != true {
		t.Error("end before start should be inverted")
	}
	if (Task{Start: day, End: day}).IsInverted() {
		t.Error("zero-length task should not be inverted")
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"", KindTask, false},
		{"task", KindTask, false},
		{"Milestone", KindMilestone, false},
		{" project ", KindProject, false},
		{"epic", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKind(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIndex(t *testing.T) {
	tasks := []Task{{ID: "a", Name: "first"}, {ID: "b"}, {ID: "a", Name: "second"}}
	idx := Index(tasks)

	if len(idx) != 2 {
		t.Fatalf("len = %d, want 2", len(idx))
	}
	if idx["a"].Name != "second" {
		t.Errorf("duplicate id should resolve to the later task, got %q", idx["a"].Name)
	}
}

func TestScheduleSortedIsOrderIndependent(t *testing.T) {
	a := Task{ID: "a"}
	b := Task{ID: "b", Meta: Metadata{"k": "v"}}
	ab := Dependency{From: "a", To: "b", Type: FinishToStart}
	abSS := Dependency{From: "a", To: "b", Type: StartToStart}

	s1 := Schedule{Tasks: []Task{b, a}, Dependencies: []Dependency{abSS, ab}}
	s2 := Schedule{Tasks: []Task{a, b}, Dependencies: []Dependency{ab, abSS}}

	if !reflect.DeepEqual(s1.Sorted(), s2.Sorted()) {
		t.Errorf("Sorted() differs:\n%+v\n%+v", s1.Sorted(), s2.Sorted())
	}
	if s1.Tasks[0].ID != "b" {
		t.Error("Sorted() reordered the receiver")
	}
}

func TestScheduleSpan(t *testing.T) {
	d := func(day int) time.Time { return time.Date(2024, 5, day, 0, 0, 0, 0, time.UTC) }
	s := Schedule{Tasks: []Task{
		{ID: "a", Start: d(3), End: d(9)},
		{ID: "b", Start: d(1), End: d(4)},
		{ID: "c", Start: d(5), End: d(12)},
	}}

	start, end, ok := s.Span()
	if !ok {
		t.Fatal("Span() ok = false")
	}
	if !start.Equal(d(1)) || !end.Equal(d(12)) {
		t.Errorf("Span() = %v..%v, want %v..%v", start, end, d(1), d(12))
	}

	if _, _, ok := (Schedule{}).Span(); ok {
		t.Error("empty schedule should report ok = false")
	}
}

func TestScheduleNormalizeDefaultsType(t *testing.T) {
	s := Schedule{Dependencies: []Dependency{{From: "a", To: "b"}}}
	if got := s.Normalize().Dependencies[0].Type; got != FinishToStart {
		t.Errorf("Type = %q, want %q", got, FinishToStart)
	}
	if s.Dependencies[0].Type != "" {
		t.Error("Normalize() mutated its receiver")
	}
}
