// Package readonly decides which edits a timeline accepts.
//
// A [Mode] is a policy. The fixed policies are [Editable] (allow
// everything), [Full] (deny everything), [TimelineOnly] (allow only
// dragging and resizing bars) and [GridOnly] (allow only task property,
// progress and metadata edits in the task grid). [Custom] delegates to a
// [Predicate], and [Builder] assembles a custom policy from one allow flag
// per [EditType] plus an optional required role.
//
// Policies never look at the task being edited. Each task carries its own
// ReadOnly flag, and an edit is permitted only when the task is not
// read-only and the policy allows it; [Permit] applies both rules.
package readonly
