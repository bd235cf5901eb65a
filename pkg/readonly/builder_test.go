package readonly

import "testing"

func TestBuilder_DefaultsAllowEverything(t *testing.T) {
	m := NewBuilder().Build()
	if m.Kind() != KindCustom {
		t.Errorf("Kind() = %s, want custom", m.Kind())
	}
	if got := allowedSet(m, EditContext{}); len(got) != len(EditTypes) {
		t.Errorf("allowed = %v, want all", got)
	}
}

func TestBuilder_Flags(t *testing.T) {
	m := NewBuilder().
		Timeline(false).
		DeleteTask(false).
		Deny(EditMoveTask).
		Build()

	got := allowedSet(m, EditContext{})
	for _, e := range []EditType{EditTimeline, EditDeleteTask, EditMoveTask} {
		if got[e] {
			t.Errorf("%s allowed, want denied", e)
		}
	}
	if len(got) != len(EditTypes)-3 {
		t.Errorf("allowed = %v", got)
	}
}

func TestBuilder_RequireRole(t *testing.T) {
	m := NewBuilder().RequireRole("admin").Build()

	for _, e := range EditTypes {
		if m.IsEditAllowed(EditContext{Type: e}) {
			t.Errorf("%s allowed with no role", e)
		}
		if m.IsEditAllowed(EditContext{Type: e, Role: "viewer"}) {
			t.Errorf("%s allowed for viewer", e)
		}
		if !m.IsEditAllowed(EditContext{Type: e, Role: "admin"}) {
			t.Errorf("%s denied for admin", e)
		}
	}
}

func TestBuilder_RoleThenFlag(t *testing.T) {
	m := NewBuilder().RequireRole("pm").Progress(false).Build()

	if m.IsEditAllowed(EditContext{Type: EditProgress, Role: "pm"}) {
		t.Error("progress allowed for pm despite flag")
	}
	if !m.IsEditAllowed(EditContext{Type: EditTimeline, Role: "pm"}) {
		t.Error("timeline denied for pm")
	}
}

func TestBuilder_BuildIsSnapshot(t *testing.T) {
	b := NewBuilder()
	m := b.Build()
	b.Timeline(false).RequireRole("x")

	if !m.IsEditAllowed(EditContext{Type: EditTimeline}) {
		t.Error("built policy changed after builder was modified")
	}
}

func TestBuilder_ZeroValue(t *testing.T) {
	var b Builder
	if got := allowedSet(b.Build(), EditContext{}); len(got) != len(EditTypes) {
		t.Errorf("zero builder allowed = %v, want all", got)
	}

	m := b.Timeline(false).Build()
	if m.IsEditAllowed(EditContext{Type: EditTimeline}) {
		t.Error("timeline allowed after Timeline(false)")
	}
	if !m.IsEditAllowed(EditContext{Type: EditProgress}) {
		t.Error("progress denied on zero builder")
	}
}

func TestBuilder_ReAllow(t *testing.T) {
	m := NewBuilder().Deny(EditMetadata, EditProgress).Metadata(true).Build()

	if !m.IsEditAllowed(EditContext{Type: EditMetadata}) {
		t.Error("metadata denied after Metadata(true)")
	}
	if m.IsEditAllowed(EditContext{Type: EditProgress}) {
		t.Error("progress allowed after Deny")
	}
	if m.IsEditAllowed(EditContext{Type: "rename_project"}) {
		t.Error("unknown edit type allowed")
	}
}
