package trampoline

// TryState wraps the inner matcher's own state while a Try scope is
// active, so re-entry (requesting the next alternative from within
// the try) resumes the inner matcher exactly where it left off.
type TryState struct {
	Inner State
}

// tryMatcher demarcates a region in which expiration is suspended:
// entering it freezes the Source, and leaving it (by success or
// failure) unfreezes it. Because expiration is suppressed for its
// whole extent, a Try region may consume input, fail, and be retried
// from before the region — the Source still holds those lines. See
// §4.5.
type tryMatcher struct {
	id    MatcherID
	inner Matcher
}

// NewTry wraps inner in a Try scope.
func NewTry(inner Matcher) Matcher {
	return &tryMatcher{id: NewMatcherID(), inner: inner}
}

func (t *tryMatcher) ID() MatcherID       { return t.id }
func (t *tryMatcher) Name() string        { return "Try" }
func (t *tryMatcher) Children() []Matcher { return []Matcher{t.inner} }

func (t *tryMatcher) Execute(cfg *Config, state State, iter Iter) (Message, error) {
	if !cfg.Options.Try {
		return Message{}, &ConfigError{Message: "Try matcher used without try:on"}
	}

	var innerState State
	switch s := state.(type) {
	case cleanState:
		innerState = Clean
	case TryState:
		innerState = s.Inner
	default:
		return Message{}, &ConfigError{Message: "Try: unexpected state"}
	}

	cfg.Source.Freeze()
	return NewExecute(t, state, t.inner, innerState, iter), nil
}

func (t *tryMatcher) OnSuccess(cfg *Config, state State, childState State, iter Iter, result Value) (Message, error) {
	cfg.Source.Unfreeze()
	return NewSuccess(TryState{Inner: childState}, iter, result), nil
}

func (t *tryMatcher) OnFailure(cfg *Config, state State) (Message, error) {
	cfg.Source.Unfreeze()
	return FailureMessage, nil
}
