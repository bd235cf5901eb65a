package transform

import (
	"reflect"
	"testing"

	"github.com/matzehuels/ganttline/pkg/task"
)

func TestAssignLevels(t *testing.T) {
	//   a
	//  / \
	// b   c
	//  \ / \
	//   d   |
	//    \ /
	//     e
	ts := ids("a", "b", "c", "d", "e")
	deps := []task.Dependency{
		edge("a", "b"), edge("a", "c"),
		edge("b", "d"), edge("c", "d"),
		edge("d", "e"), edge("c", "e"),
	}

	got := AssignLevels(ts, deps)
	want := map[string]int{"a": 0, "b": 1, "c": 1, "d": 2, "e": 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AssignLevels() = %v, want %v", got, want)
	}
	if MaxLevel(got) != 3 {
		t.Errorf("MaxLevel() = %d, want 3", MaxLevel(got))
	}
}

func TestAssignLevels_Disconnected(t *testing.T) {
	got := AssignLevels(ids("a", "b"), nil)
	want := map[string]int{"a": 0, "b": 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AssignLevels() = %v, want %v", got, want)
	}
}

func TestAssignLevels_CycleStaysAtZero(t *testing.T) {
	got := AssignLevels(ids("a", "b"), []task.Dependency{edge("a", "b"), edge("b", "a")})
	if got["a"] != 0 || got["b"] != 0 {
		t.Errorf("AssignLevels() = %v, want cycle members at 0", got)
	}
}

func TestMaxLevel_Empty(t *testing.T) {
	if MaxLevel(nil) != 0 {
		t.Error("MaxLevel(nil) != 0")
	}
}
