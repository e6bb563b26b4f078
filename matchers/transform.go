package matchers

import "github.com/clarete/trample/trampoline"

// TransformFn maps a successful match's Value into another. Returning
// a non-nil error aborts the whole parse as a ParserError — a
// transform failing is a programmer mistake (a malformed literal, a
// number that doesn't parse), not an ordinary backtracking failure.
type TransformFn func(trampoline.Value) (trampoline.Value, error)

// transform runs inner and, on success, passes its Value through fn.
type transform struct {
	id    trampoline.MatcherID
	inner trampoline.Matcher
	fn    TransformFn
}

// Transform builds a matcher that runs inner and maps its result
// through fn.
func Transform(inner trampoline.Matcher, fn TransformFn) trampoline.Matcher {
	return &transform{id: trampoline.NewMatcherID(), inner: inner, fn: fn}
}

func (t *transform) ID() trampoline.MatcherID       { return t.id }
func (t *transform) Name() string                   { return "Transform" }
func (t *transform) Children() []trampoline.Matcher { return []trampoline.Matcher{t.inner} }

func (t *transform) Execute(cfg *trampoline.Config, state trampoline.State, iter trampoline.Iter) (trampoline.Message, error) {
	if trampoline.IsDirty(state) {
		return trampoline.FailureMessage, nil
	}
	return trampoline.NewExecute(t, trampoline.Clean, t.inner, trampoline.Clean, iter), nil
}

func (t *transform) OnSuccess(cfg *trampoline.Config, state, childState trampoline.State, iter trampoline.Iter, result trampoline.Value) (trampoline.Message, error) {
	out, err := t.fn(result)
	if err != nil {
		return trampoline.Message{}, &trampoline.ParserError{Message: err.Error(), Iter: iter}
	}
	return trampoline.NewSuccess(trampoline.Dirty, iter, out), nil
}

func (t *transform) OnFailure(cfg *trampoline.Config, state trampoline.State) (trampoline.Message, error) {
	return trampoline.FailureMessage, nil
}
