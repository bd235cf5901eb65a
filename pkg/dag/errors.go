package dag

import (
	"errors"
	"fmt"
	"strings"

	gerrors "github.com/matzehuels/ganttline/pkg/errors"
)

var (
	// ErrCircularDependency matches any [*CycleError]. It is reported when
	// the graph, or the graph plus a proposed edge, contains a directed cycle.
	ErrCircularDependency = errors.New("circular dependency")

	// ErrTaskNotFound matches any [*NotFoundError]. It is reported when a
	// query names a task id that is not part of the graph.
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidDependency matches any [*InvalidDependencyError]. It is
	// reported for a dependency from a task to itself.
	ErrInvalidDependency = errors.New("invalid dependency")
)

// CycleError reports a directed cycle. Cycle is the witness: either the
// [from, to] pair of the back-edge that closes the cycle (FindCycles,
// TopologicalSort), or the full path from the proposed edge's source back to
// itself (ValidateDependency).
type CycleError struct {
	Cycle []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("circular dependency: %s", strings.Join(e.Cycle, " -> "))
}

// Is reports whether target is [ErrCircularDependency].
func (e *CycleError) Is(target error) bool { return target == ErrCircularDependency }

// Code returns the machine-readable error code.
func (e *CycleError) Code() gerrors.Code { return gerrors.ErrCodeCircularDependency }

// NotFoundError reports a task id that is not part of the graph.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("task not found: %s", e.ID) }

// Is reports whether target is [ErrTaskNotFound].
func (e *NotFoundError) Is(target error) bool { return target == ErrTaskNotFound }

// Code returns the machine-readable error code.
func (e *NotFoundError) Code() gerrors.Code { return gerrors.ErrCodeTaskNotFound }

// InvalidDependencyError reports a dependency that can never be valid,
// which is a task depending on itself.
type InvalidDependencyError struct {
	From, To string
}

func (e *InvalidDependencyError) Error() string {
	return fmt.Sprintf("invalid dependency: %s -> %s", e.From, e.To)
}

// Is reports whether target is [ErrInvalidDependency].
func (e *InvalidDependencyError) Is(target error) bool { return target == ErrInvalidDependency }

// Code returns the machine-readable error code.
func (e *InvalidDependencyError) Code() gerrors.Code { return gerrors.ErrCodeInvalidDependency }
