package transform_test

import (
	"fmt"

	"github.com/matzehuels/ganttline/pkg/dag/transform"
	"github.com/matzehuels/ganttline/pkg/task"
)

func ExampleBreakCycles() {
	tasks := []task.Task{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	deps := []task.Dependency{
		{From: "a", To: "b", Type: task.FinishToStart},
		{From: "b", To: "c", Type: task.FinishToStart},
		{From: "c", To: "a", Type: task.FinishToStart},
	}

	kept, removed := transform.BreakCycles(tasks, deps)
	fmt.Println("kept:", len(kept))
	fmt.Println("removed:", removed)
	// Output:
	// kept: 2
	// removed: [c -FS-> a]
}

func ExampleAssignLevels() {
	tasks := []task.Task{{ID: "plan"}, {ID: "build"}, {ID: "test"}}
	deps := []task.Dependency{
		{From: "plan", To: "build", Type: task.FinishToStart},
		{From: "build", To: "test", Type: task.FinishToStart},
	}

	levels := transform.AssignLevels(tasks, deps)
	fmt.Println(levels["plan"], levels["build"], levels["test"])
	// Output:
	// 0 1 2
}
