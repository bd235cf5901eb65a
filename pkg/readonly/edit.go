package readonly

import (
	"fmt"
	"strings"
)

// EditType tags the kind of edit being attempted.
type EditType string

const (
	EditTaskProperties EditType = "task_properties"
	EditTimeline       EditType = "timeline"
	EditProgress       EditType = "progress"
	EditDependencies   EditType = "dependencies"
	EditMetadata       EditType = "metadata"
	EditCreateTask     EditType = "create_task"
	EditDeleteTask     EditType = "delete_task"
	EditMoveTask       EditType = "move_task"
)

// EditTypes lists every edit type.
var EditTypes = []EditType{
	EditTaskProperties,
	EditTimeline,
	EditProgress,
	EditDependencies,
	EditMetadata,
	EditCreateTask,
	EditDeleteTask,
	EditMoveTask,
}

// IsValid reports whether e is a known edit type.
func (e EditType) IsValid() bool {
	for _, known := range EditTypes {
		if e == known {
			return true
		}
	}
	return false
}

// ParseEditType accepts the snake_case tag, the kebab-case form or the
// CamelCase name ("TaskProperties").
func ParseEditType(s string) (EditType, error) {
	norm := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
	if e := EditType(norm); e.IsValid() {
		return e, nil
	}
	for _, e := range EditTypes {
		if strings.ReplaceAll(string(e), "_", "") == norm {
			return e, nil
		}
	}
	return "", fmt.Errorf("unknown edit type %q", s)
}

// EditContext describes one attempted edit. It is input to a policy and is
// never stored.
type EditContext struct {
	TaskID  string
	Type    EditType
	Role    string // empty when the actor has no role
	ActorID string
	Meta    map[string]string
}

// HasRole reports whether the actor has the given role.
func (c EditContext) HasRole(role string) bool {
	return c.Role != "" && c.Role == role
}
