package matchers

import "github.com/clarete/trample/trampoline"

// AlternativeState threads which child is currently being attempted
// and the cursor the whole alternative started from, so every child
// is tried from the same position, like the teacher's Choice.
type AlternativeState struct {
	Index int
	Start trampoline.Iter
}

// alternative tries each child in order at the same starting cursor,
// committing to the first one that succeeds (ordered choice, not
// longest match). A later request for the next solution from the same
// position — Execute re-entered with the AlternativeState this matcher
// reported on success — resumes at Index+1 rather than Index 0.
type alternative struct {
	id       trampoline.MatcherID
	children []trampoline.Matcher
}

// Alternative builds an ordered-choice matcher over children.
func Alternative(children ...trampoline.Matcher) trampoline.Matcher {
	return &alternative{id: trampoline.NewMatcherID(), children: children}
}

func (a *alternative) ID() trampoline.MatcherID       { return a.id }
func (a *alternative) Name() string                   { return "Alternative" }
func (a *alternative) Children() []trampoline.Matcher { return a.children }

func (a *alternative) Execute(cfg *trampoline.Config, state trampoline.State, iter trampoline.Iter) (trampoline.Message, error) {
	var idx int
	var start trampoline.Iter

	switch s := state.(type) {
	case AlternativeState:
		idx, start = s.Index, s.Start
	default:
		idx, start = 0, iter
	}

	if idx >= len(a.children) {
		return trampoline.FailureMessage, nil
	}
	return trampoline.NewExecute(a, AlternativeState{Index: idx, Start: start}, a.children[idx], trampoline.Clean, start), nil
}

func (a *alternative) OnSuccess(cfg *trampoline.Config, state, childState trampoline.State, iter trampoline.Iter, result trampoline.Value) (trampoline.Message, error) {
	as, ok := state.(AlternativeState)
	if !ok {
		return trampoline.Message{}, &trampoline.ConfigError{Message: "Alternative: unexpected state"}
	}
	return trampoline.NewSuccess(AlternativeState{Index: as.Index + 1, Start: as.Start}, iter, result), nil
}

func (a *alternative) OnFailure(cfg *trampoline.Config, state trampoline.State) (trampoline.Message, error) {
	as, ok := state.(AlternativeState)
	if !ok {
		return trampoline.Message{}, &trampoline.ConfigError{Message: "Alternative: unexpected state"}
	}
	return a.Execute(cfg, AlternativeState{Index: as.Index + 1, Start: as.Start}, as.Start)
}
