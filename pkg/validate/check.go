package validate

import (
	"fmt"
	"strings"

	"github.com/matzehuels/ganttline/pkg/dag"
	gerrors "github.com/matzehuels/ganttline/pkg/errors"
	"github.com/matzehuels/ganttline/pkg/task"
)

// Severity grades a [Problem].
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Problem is one structural issue found by [Check].
type Problem struct {
	Severity   Severity         `json:"severity"`
	Code       gerrors.Code     `json:"code"`
	Message    string           `json:"message"`
	TaskID     string           `json:"task_id,omitempty"`
	Dependency *task.Dependency `json:"dependency,omitempty"`
	Path       []string         `json:"path,omitempty"`
}

func (p Problem) Error() string { return fmt.Sprintf("%s: %s", p.Severity, p.Message) }

// HasErrors reports whether any problem is an error rather than a warning.
func HasErrors(problems []Problem) bool {
	for _, p := range problems {
		if p.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Check audits s and returns its problems in a stable order: task problems
// in task order, then edge problems in edge order, then cycles.
func Check(s task.Schedule) []Problem {
	var problems []Problem

	known := make(map[string]struct{}, len(s.Tasks))
	for _, t := range s.Tasks {
		if _, dup := known[t.ID]; dup {
			problems = append(problems, Problem{
				Severity: SeverityError,
				Code:     gerrors.ErrCodeDuplicateTask,
				Message:  fmt.Sprintf("duplicate task id %q", t.ID),
				TaskID:   t.ID,
			})
			continue
		}
		known[t.ID] = struct{}{}
		if t.IsInverted() {
			problems = append(problems, Problem{
				Severity: SeverityWarning,
				Code:     gerrors.ErrCodeInvertedTaskInterval,
				Message:  fmt.Sprintf("task %q ends before it starts", t.ID),
				TaskID:   t.ID,
			})
		}
	}

	seen := make(map[task.Key]struct{}, len(s.Dependencies))
	for _, d := range s.Dependencies {
		switch {
		case d.IsSelf():
			problems = append(problems, Problem{
				Severity:   SeverityError,
				Code:       gerrors.ErrCodeSelfDependency,
				Message:    fmt.Sprintf("task %q depends on itself", d.From),
				TaskID:     d.From,
				Dependency: &d,
			})
			continue
		case !has(known, d.From) || !has(known, d.To):
			missing := d.From
			if has(known, d.From) {
				missing = d.To
			}
			problems = append(problems, Problem{
				Severity:   SeverityWarning,
				Code:       gerrors.ErrCodeDanglingDependency,
				Message:    fmt.Sprintf("dependency %s references unknown task %q", d, missing),
				TaskID:     missing,
				Dependency: &d,
			})
			continue
		}
		if _, dup := seen[d.Key()]; dup {
			problems = append(problems, Problem{
				Severity:   SeverityError,
				Code:       gerrors.ErrCodeDuplicateDependency,
				Message:    fmt.Sprintf("duplicate dependency %s", d),
				Dependency: &d,
			})
			continue
		}
		seen[d.Key()] = struct{}{}
	}

	g := dag.New(s.Tasks, s.Dependencies)
	for _, w := range g.FindCycles() {
		from, to := w[0], w[1]
		if from == to {
			// Reported above as a self dependency.
			continue
		}
		path := append(g.DependencyChain(to, from), to)
		problems = append(problems, Problem{
			Severity: SeverityError,
			Code:     gerrors.ErrCodeCircularDependency,
			Message:  fmt.Sprintf("circular dependency: %s", strings.Join(path, " -> ")),
			TaskID:   to,
			Path:     path,
		})
	}

	return problems
}

func has(set map[string]struct{}, id string) bool {
	_, ok := set[id]
	return ok
}
