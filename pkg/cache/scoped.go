package cache

import "strings"

// ScopedKeyer namespaces every key of an inner Keyer, so that several
// projects can share one Redis or cache directory. A scope without a
// trailing colon gets one.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "roadmap")
//	keyer.GraphKey("ab12") // "roadmap:graph:ab12"
type ScopedKeyer struct {
	inner Keyer
	scope string
}

// NewScopedKeyer wraps inner, or the default keyer when inner is nil.
func NewScopedKeyer(inner Keyer, scope string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	if scope != "" && !strings.HasSuffix(scope, ":") {
		scope += ":"
	}
	return &ScopedKeyer{inner: inner, scope: scope}
}

func (k *ScopedKeyer) GraphKey(scheduleHash string) string {
	return k.scope + k.inner.GraphKey(scheduleHash)
}

func (k *ScopedKeyer) LayoutKey(scheduleHash string, opts LayoutKeyOpts) string {
	return k.scope + k.inner.LayoutKey(scheduleHash, opts)
}

func (k *ScopedKeyer) ArtifactKey(scheduleHash string, opts ArtifactKeyOpts) string {
	return k.scope + k.inner.ArtifactKey(scheduleHash, opts)
}
