package validate_test

import (
	"fmt"

	"github.com/matzehuels/ganttline/pkg/task"
	"github.com/matzehuels/ganttline/pkg/validate"
)

func ExampleValidate() {
	tasks := []task.Task{{ID: "A"}, {ID: "B"}, {ID: "C"}}
	deps := []task.Dependency{
		{From: "A", To: "B", Type: task.FinishToStart},
		{From: "B", To: "C", Type: task.FinishToStart},
	}

	res := validate.Validate(tasks, deps, "C", "A", task.FinishToStart)
	fmt.Println(res.Outcome)
	fmt.Println(res.Message())
	// Output:
	// circular_dependency
	// Would create circular dependency: C -> A -> B -> C
}

func ExampleCreate() {
	tasks := []task.Task{{ID: "design"}, {ID: "build"}}

	dep, res := validate.Create(tasks, nil, "design", "build", task.FinishToStart, 2)
	fmt.Println(res.OK(), dep)
	// Output:
	// true design -FS+2d-> build
}
