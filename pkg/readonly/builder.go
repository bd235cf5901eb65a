package readonly

// Builder assembles a [Custom] policy. Every edit type starts allowed and
// no role is required. The zero value is ready to use; [NewBuilder] returns
// one for chaining.
type Builder struct {
	deny map[EditType]bool
	role string
}

// NewBuilder returns a builder that allows everything.
func NewBuilder() *Builder { return &Builder{} }

// Allow sets the flag for one edit type.
func (b *Builder) Allow(e EditType, allowed bool) *Builder {
	if allowed {
		delete(b.deny, e)
		return b
	}
	if b.deny == nil {
		b.deny = make(map[EditType]bool)
	}
	b.deny[e] = true
	return b
}

// Deny is shorthand for Allow(e, false) over several types.
func (b *Builder) Deny(types ...EditType) *Builder {
	for _, e := range types {
		b.Allow(e, false)
	}
	return b
}

// TaskProperties sets whether names, colors and other task fields may change.
func (b *Builder) TaskProperties(allowed bool) *Builder { return b.Allow(EditTaskProperties, allowed) }

// Timeline sets whether start and end dates may change.
func (b *Builder) Timeline(allowed bool) *Builder { return b.Allow(EditTimeline, allowed) }

// Progress sets whether completion may change.
func (b *Builder) Progress(allowed bool) *Builder { return b.Allow(EditProgress, allowed) }

// Dependencies sets whether links may be added or removed.
func (b *Builder) Dependencies(allowed bool) *Builder { return b.Allow(EditDependencies, allowed) }

// Metadata sets whether the free-form metadata map may change.
func (b *Builder) Metadata(allowed bool) *Builder { return b.Allow(EditMetadata, allowed) }

// CreateTask sets whether tasks may be added.
func (b *Builder) CreateTask(allowed bool) *Builder { return b.Allow(EditCreateTask, allowed) }

// DeleteTask sets whether tasks may be removed.
func (b *Builder) DeleteTask(allowed bool) *Builder { return b.Allow(EditDeleteTask, allowed) }

// MoveTask sets whether tasks may be moved to another row or parent.
func (b *Builder) MoveTask(allowed bool) *Builder { return b.Allow(EditMoveTask, allowed) }

// RequireRole makes the policy deny any actor whose role is not role.
// An empty role clears the requirement.
func (b *Builder) RequireRole(role string) *Builder {
	b.role = role
	return b
}

// Build returns the policy. Later changes to b do not affect it. Edit types
// outside [EditTypes] are always denied.
func (b *Builder) Build() Mode {
	deny := make(map[EditType]bool, len(b.deny))
	for e := range b.deny {
		deny[e] = true
	}
	role := b.role

	return Custom(PredicateFunc(func(ctx EditContext) bool {
		if role != "" && !ctx.HasRole(role) {
			return false
		}
		return ctx.Type.IsValid() && !deny[ctx.Type]
	}))
}
