package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/matzehuels/ganttline/pkg/dag"
	gerrors "github.com/matzehuels/ganttline/pkg/errors"
	"github.com/matzehuels/ganttline/pkg/task"
)

// Outcome is the verdict on a proposed dependency.
type Outcome int

const (
	Valid Outcome = iota
	SelfDependency
	TaskNotFound
	DuplicateDependency
	CircularDependency
	InvalidDependencyType
)

var outcomeNames = [...]string{
	Valid:                 "valid",
	SelfDependency:        "self_dependency",
	TaskNotFound:          "task_not_found",
	DuplicateDependency:   "duplicate_dependency",
	CircularDependency:    "circular_dependency",
	InvalidDependencyType: "invalid_dependency_type",
}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// MarshalText encodes the outcome by name.
func (o Outcome) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// Result is the outcome of validating one dependency. TaskID is set for
// [TaskNotFound]; Path holds the cycle for [CircularDependency], starting and
// ending at the proposed source; Type holds the rejected value for
// [InvalidDependencyType].
type Result struct {
	Outcome Outcome             `json:"outcome"`
	TaskID  string              `json:"task_id,omitempty"`
	Path    []string            `json:"path,omitempty"`
	Type    task.DependencyType `json:"type,omitempty"`
}

// OK reports whether the dependency may be added.
func (r Result) OK() bool { return r.Outcome == Valid }

// Message returns text suitable for showing to the user.
func (r Result) Message() string {
	switch r.Outcome {
	case Valid:
		return "Dependency is valid"
	case SelfDependency:
		return "A task cannot depend on itself"
	case TaskNotFound:
		return fmt.Sprintf("Task not found: %s", r.TaskID)
	case DuplicateDependency:
		return "Dependency already exists"
	case CircularDependency:
		return fmt.Sprintf("Would create circular dependency: %s", strings.Join(r.Path, " -> "))
	case InvalidDependencyType:
		return fmt.Sprintf("Unknown dependency type %q (want FS, SS, FF or SF)", r.Type)
	}
	return r.Outcome.String()
}

// Code returns the error code for the outcome, or "" for [Valid].
func (r Result) Code() gerrors.Code {
	switch r.Outcome {
	case SelfDependency:
		return gerrors.ErrCodeSelfDependency
	case TaskNotFound:
		return gerrors.ErrCodeTaskNotFound
	case DuplicateDependency:
		return gerrors.ErrCodeDuplicateDependency
	case CircularDependency:
		return gerrors.ErrCodeCircularDependency
	case InvalidDependencyType:
		return gerrors.ErrCodeInvalidDependency
	}
	return ""
}

// Err returns the result as a coded error, or nil if it is [Valid].
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return gerrors.New(r.Code(), "%s", r.Message())
}

// Validator validates dependencies, optionally reusing graphs through Memo.
// The zero value is ready to use.
type Validator struct {
	Memo *dag.Memo
}

// Validate checks whether from -> to of type typ may be added to deps.
func Validate(tasks []task.Task, deps []task.Dependency, from, to string, typ task.DependencyType) Result {
	return Validator{}.Validate(tasks, deps, from, to, typ)
}

// Create validates the edge and returns it on success. The returned
// dependency is not added to deps. An empty typ means [task.FinishToStart].
func Create(tasks []task.Task, deps []task.Dependency, from, to string, typ task.DependencyType, lagDays int) (task.Dependency, Result) {
	return Validator{}.Create(tasks, deps, from, to, typ, lagDays)
}

// Validate checks whether from -> to of type typ may be added to deps.
func (v Validator) Validate(tasks []task.Task, deps []task.Dependency, from, to string, typ task.DependencyType) Result {
	if typ == "" {
		typ = task.FinishToStart
	}
	if !typ.IsValid() {
		return Result{Outcome: InvalidDependencyType, Type: typ}
	}
	if from == to {
		return Result{Outcome: SelfDependency}
	}

	known := make(map[string]struct{}, len(tasks))
	for _, t := range tasks {
		known[t.ID] = struct{}{}
	}
	for _, id := range []string{from, to} {
		if _, ok := known[id]; !ok {
			return Result{Outcome: TaskNotFound, TaskID: id}
		}
	}

	want := task.Key{From: from, To: to, Type: typ}
	for _, d := range deps {
		if d.Key() == want {
			return Result{Outcome: DuplicateDependency}
		}
	}

	return fromGraphError(v.Memo.Graph(tasks, deps).ValidateDependency(from, to))
}

// Create validates the edge and returns it on success.
func (v Validator) Create(tasks []task.Task, deps []task.Dependency, from, to string, typ task.DependencyType, lagDays int) (task.Dependency, Result) {
	if typ == "" {
		typ = task.FinishToStart
	}
	res := v.Validate(tasks, deps, from, to, typ)
	if !res.OK() {
		return task.Dependency{}, res
	}
	return task.Dependency{From: from, To: to, Type: typ, LagDays: lagDays}, res
}

func fromGraphError(err error) Result {
	if err == nil {
		return Result{Outcome: Valid}
	}

	var (
		cycle    *dag.CycleError
		notFound *dag.NotFoundError
	)
	switch {
	case errors.As(err, &cycle):
		return Result{Outcome: CircularDependency, Path: cycle.Cycle}
	case errors.As(err, &notFound):
		return Result{Outcome: TaskNotFound, TaskID: notFound.ID}
	case errors.Is(err, dag.ErrInvalidDependency):
		return Result{Outcome: SelfDependency}
	}
	// ValidateDependency reports nothing else.
	return Result{Outcome: CircularDependency}
}
