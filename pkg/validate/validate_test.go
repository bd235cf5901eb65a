package validate

import (
	"reflect"
	"slices"
	"testing"

	"github.com/matzehuels/ganttline/pkg/dag"
	gerrors "github.com/matzehuels/ganttline/pkg/errors"
	"github.com/matzehuels/ganttline/pkg/task"
)

func abc() ([]task.Task, []task.Dependency) {
	tasks := []task.Task{{ID: "A"}, {ID: "B"}, {ID: "C"}}
	deps := []task.Dependency{
		{From: "A", To: "B", Type: task.FinishToStart},
		{From: "B", To: "C", Type: task.FinishToStart},
	}
	return tasks, deps
}

func TestValidate(t *testing.T) {
	tasks, deps := abc()

	tests := []struct {
		name     string
		from, to string
		typ      task.DependencyType
		want     Result
	}{
		{"valid", "A", "C", task.FinishToStart, Result{Outcome: Valid}},
		{"self", "A", "A", task.FinishToStart, Result{Outcome: SelfDependency}},
		{"self unknown", "X", "X", task.FinishToStart, Result{Outcome: SelfDependency}},
		{"missing source", "X", "A", task.FinishToStart, Result{Outcome: TaskNotFound, TaskID: "X"}},
		{"missing target", "A", "Y", task.FinishToStart, Result{Outcome: TaskNotFound, TaskID: "Y"}},
		{"missing both", "X", "Y", task.FinishToStart, Result{Outcome: TaskNotFound, TaskID: "X"}},
		{"duplicate", "A", "B", task.FinishToStart, Result{Outcome: DuplicateDependency}},
		{"same pair other type", "A", "B", task.StartToStart, Result{Outcome: Valid}},
		{"empty type is FS", "A", "B", "", Result{Outcome: DuplicateDependency}},
		{"cycle", "C", "A", task.FinishToStart, Result{Outcome: CircularDependency, Path: []string{"C", "A", "B", "C"}}},
		{"short cycle", "B", "A", task.StartToStart, Result{Outcome: CircularDependency, Path: []string{"B", "A", "B"}}},
		{"unknown type", "A", "C", "XX", Result{Outcome: InvalidDependencyType, Type: "XX"}},
		{"lowercase type", "A", "C", "fs", Result{Outcome: InvalidDependencyType, Type: "fs"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tasks, deps, tt.from, tt.to, tt.typ)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Validate(%s, %s, %s) = %+v, want %+v", tt.from, tt.to, tt.typ, got, tt.want)
			}
		})
	}
}

func TestValidate_UntypedExistingIsFS(t *testing.T) {
	tasks := []task.Task{{ID: "A"}, {ID: "B"}}
	deps := []task.Dependency{{From: "A", To: "B"}}

	for _, typ := range []task.DependencyType{"", task.FinishToStart} {
		if got := Validate(tasks, deps, "A", "B", typ); got.Outcome != DuplicateDependency {
			t.Errorf("Validate(A, B, %q) = %v, want DuplicateDependency", typ, got.Outcome)
		}
	}
	if got := Validate(tasks, deps, "A", "B", task.FinishToFinish); got.Outcome != Valid {
		t.Errorf("Validate(A, B, FF) = %v, want Valid", got.Outcome)
	}
}

func TestValidate_DuplicateBeforeCycle(t *testing.T) {
	tasks, deps := abc()
	deps = append(deps, task.Dependency{From: "C", To: "A", Type: task.FinishToStart})

	if got := Validate(tasks, deps, "C", "A", task.FinishToStart); got.Outcome != DuplicateDependency {
		t.Errorf("Validate() = %v, want DuplicateDependency", got.Outcome)
	}
}

func TestValidate_DoesNotMutateInput(t *testing.T) {
	tasks, deps := abc()
	before := slices.Clone(deps)

	Validate(tasks, deps, "C", "A", task.FinishToStart)
	Create(tasks, deps, "A", "C", task.FinishToStart, 2)

	if !slices.Equal(deps, before) {
		t.Errorf("deps modified: %v", deps)
	}
	order, err := dag.New(tasks, deps).TopologicalSort()
	if err != nil || !slices.Equal(order, []string{"A", "B", "C"}) {
		t.Errorf("TopologicalSort() = %v, %v", order, err)
	}
}

func TestCreate(t *testing.T) {
	tasks, deps := abc()

	dep, res := Create(tasks, deps, "A", "C", "", -2)
	if !res.OK() {
		t.Fatalf("Create() = %v, want valid", res.Outcome)
	}
	want := task.Dependency{From: "A", To: "C", Type: task.FinishToStart, LagDays: -2}
	if dep != want {
		t.Errorf("Create() = %+v, want %+v", dep, want)
	}

	dep, res = Create(tasks, deps, "C", "A", task.FinishToStart, 0)
	if res.OK() || dep != (task.Dependency{}) {
		t.Errorf("Create(C, A) = %+v, %v; want rejection", dep, res.Outcome)
	}

	dep, res = Create(tasks, nil, "A", "B", "XX", 0)
	if res.Outcome != InvalidDependencyType || dep != (task.Dependency{}) {
		t.Errorf("Create(A, B, XX) = %+v, %v; want InvalidDependencyType", dep, res.Outcome)
	}
	if !gerrors.Is(res.Err(), gerrors.ErrCodeInvalidDependency) {
		t.Errorf("Err() = %v, want INVALID_DEPENDENCY", res.Err())
	}
}

func TestResultMessage(t *testing.T) {
	tests := []struct {
		res  Result
		want string
	}{
		{Result{Outcome: Valid}, "Dependency is valid"},
		{Result{Outcome: SelfDependency}, "A task cannot depend on itself"},
		{Result{Outcome: TaskNotFound, TaskID: "x"}, "Task not found: x"},
		{Result{Outcome: DuplicateDependency}, "Dependency already exists"},
		{Result{Outcome: CircularDependency, Path: []string{"A", "B", "C"}}, "Would create circular dependency: A -> B -> C"},
		{Result{Outcome: InvalidDependencyType, Type: "XX"}, `Unknown dependency type "XX" (want FS, SS, FF or SF)`},
	}
	for _, tt := range tests {
		if got := tt.res.Message(); got != tt.want {
			t.Errorf("%v.Message() = %q, want %q", tt.res.Outcome, got, tt.want)
		}
	}
}

func TestResultErr(t *testing.T) {
	if err := (Result{Outcome: Valid}).Err(); err != nil {
		t.Errorf("Valid.Err() = %v, want nil", err)
	}

	tests := []struct {
		outcome Outcome
		code    gerrors.Code
	}{
		{SelfDependency, gerrors.ErrCodeSelfDependency},
		{TaskNotFound, gerrors.ErrCodeTaskNotFound},
		{DuplicateDependency, gerrors.ErrCodeDuplicateDependency},
		{CircularDependency, gerrors.ErrCodeCircularDependency},
		{InvalidDependencyType, gerrors.ErrCodeInvalidDependency},
	}
	for _, tt := range tests {
		err := Result{Outcome: tt.outcome}.Err()
		if !gerrors.Is(err, tt.code) {
			t.Errorf("%v.Err() code = %q, want %q", tt.outcome, gerrors.GetCode(err), tt.code)
		}
	}
}

func TestOutcomeString(t *testing.T) {
	if got := CircularDependency.String(); got != "circular_dependency" {
		t.Errorf("String() = %q", got)
	}
	if got := Outcome(42).String(); got != "outcome(42)" {
		t.Errorf("String() = %q", got)
	}
}

func TestValidator_Memo(t *testing.T) {
	tasks, deps := abc()
	v := Validator{Memo: dag.NewMemo(2)}

	for _, to := range []string{"A", "B"} {
		if res := v.Validate(tasks, deps, "C", to, task.FinishToStart); res.Outcome != CircularDependency {
			t.Errorf("Validate(C, %s) = %v, want CircularDependency", to, res.Outcome)
		}
	}
	if hits, misses := v.Memo.Stats(); hits != 1 || misses != 1 {
		t.Errorf("Stats() = %d hits, %d misses; want 1, 1", hits, misses)
	}
}
