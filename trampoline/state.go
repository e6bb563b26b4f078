package trampoline

// State is a matcher's per-attempt progress record. It must be
// comparable, because the cached trampoline uses it as part of a map
// key (see Cache) and the spec requires states to be "compared by
// value for cache identity".
//
// Matcher kinds that need more than the two canonical singletons
// define their own comparable state types (small structs of plain
// fields) and type-switch on them inside Execute/OnSuccess/OnFailure.
type State any

type cleanState struct{}
type dirtyState struct{}

// Clean is the canonical "never executed" state.
var Clean State = cleanState{}

// Dirty is the canonical "exhausted, no further alternatives" state.
var Dirty State = dirtyState{}

// IsClean reports whether s is the Clean singleton.
func IsClean(s State) bool {
	_, ok := s.(cleanState)
	return ok
}

// IsDirty reports whether s is the Dirty singleton.
func IsDirty(s State) bool {
	_, ok := s.(dirtyState)
	return ok
}
