package readonly_test

import (
	"fmt"

	"github.com/matzehuels/ganttline/pkg/readonly"
	"github.com/matzehuels/ganttline/pkg/task"
)

func ExampleBuilder() {
	policy := readonly.NewBuilder().
		RequireRole("planner").
		DeleteTask(false).
		Build()

	fmt.Println(policy.IsEditAllowed(readonly.EditContext{Type: readonly.EditTimeline, Role: "planner"}))
	fmt.Println(policy.IsEditAllowed(readonly.EditContext{Type: readonly.EditDeleteTask, Role: "planner"}))
	fmt.Println(policy.IsEditAllowed(readonly.EditContext{Type: readonly.EditTimeline, Role: "guest"}))
	// Output:
	// true
	// false
	// false
}

func ExamplePermit() {
	locked := task.Task{ID: "release", ReadOnly: true}
	ctx := readonly.EditContext{TaskID: "release", Type: readonly.EditProgress}

	fmt.Println(readonly.Permit(locked, readonly.Editable(), ctx))
	fmt.Println(readonly.Permit(task.Task{ID: "qa"}, readonly.GridOnly(), ctx))
	// Output:
	// false
	// true
}
