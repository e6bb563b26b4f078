package matchers

import "github.com/clarete/trample/trampoline"

// SequenceState threads the index of the child currently in flight and
// the accumulated Value of the children already matched.
type SequenceState struct {
	Index int
	Acc   trampoline.Value
}

// sequence matches every child in order, failing as soon as one does,
// like the teacher's implicit PEG sequencing. Unlike Alternative, a
// failed sequence has no internal fallback: backtracking across a
// sequence is the job of whatever wraps it.
type sequence struct {
	id       trampoline.MatcherID
	children []trampoline.Matcher
}

// Sequence builds a matcher requiring every child to match in order,
// concatenating their produced values.
func Sequence(children ...trampoline.Matcher) trampoline.Matcher {
	return &sequence{id: trampoline.NewMatcherID(), children: children}
}

func (s *sequence) ID() trampoline.MatcherID       { return s.id }
func (s *sequence) Name() string                   { return "Sequence" }
func (s *sequence) Children() []trampoline.Matcher { return s.children }

func (s *sequence) Execute(cfg *trampoline.Config, state trampoline.State, iter trampoline.Iter) (trampoline.Message, error) {
	if trampoline.IsDirty(state) {
		return trampoline.FailureMessage, nil
	}
	if len(s.children) == 0 {
		return trampoline.NewSuccess(trampoline.Dirty, iter, trampoline.EmptyValue()), nil
	}
	start := SequenceState{Index: 0, Acc: trampoline.EmptyValue()}
	return trampoline.NewExecute(s, start, s.children[0], trampoline.Clean, iter), nil
}

func (s *sequence) OnSuccess(cfg *trampoline.Config, state, childState trampoline.State, iter trampoline.Iter, result trampoline.Value) (trampoline.Message, error) {
	ss, ok := state.(SequenceState)
	if !ok {
		return trampoline.Message{}, &trampoline.ConfigError{Message: "Sequence: unexpected state"}
	}
	acc := ss.Acc.Append(result)
	next := ss.Index + 1
	if next >= len(s.children) {
		return trampoline.NewSuccess(trampoline.Dirty, iter, acc), nil
	}
	return trampoline.NewExecute(s, SequenceState{Index: next, Acc: acc}, s.children[next], trampoline.Clean, iter), nil
}

func (s *sequence) OnFailure(cfg *trampoline.Config, state trampoline.State) (trampoline.Message, error) {
	return trampoline.FailureMessage, nil
}
