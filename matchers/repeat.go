package matchers

import "github.com/clarete/trample/trampoline"

// repeatState threads how many times inner has matched so far, the
// values accumulated, and the cursor before the attempt currently in
// flight, so a failed attempt can backtrack to it.
type repeatState struct {
	count int
	acc   trampoline.Value
	iter  trampoline.Iter
}

// repeat matches inner between min and max times (max < 0 meaning
// unbounded), like the teacher's ZeroOrMore/OneOrMore family. A
// repetition that falls short of min fails; one that reaches max stops
// requesting more, rather than trying inner again.
type repeat struct {
	id       trampoline.MatcherID
	min, max int
	inner    trampoline.Matcher
}

// Repeat builds a matcher requiring inner to match between min and
// max times (max < 0 for unbounded).
func Repeat(min, max int, inner trampoline.Matcher) trampoline.Matcher {
	return &repeat{id: trampoline.NewMatcherID(), min: min, max: max, inner: inner}
}

// ZeroOrMore matches inner as many times as possible, zero included.
func ZeroOrMore(inner trampoline.Matcher) trampoline.Matcher { return Repeat(0, -1, inner) }

// OneOrMore matches inner at least once, and as many times as possible.
func OneOrMore(inner trampoline.Matcher) trampoline.Matcher { return Repeat(1, -1, inner) }

// Optional matches inner zero or one times.
func Optional(inner trampoline.Matcher) trampoline.Matcher { return Repeat(0, 1, inner) }

func (r *repeat) ID() trampoline.MatcherID       { return r.id }
func (r *repeat) Name() string                   { return "Repeat" }
func (r *repeat) Children() []trampoline.Matcher { return []trampoline.Matcher{r.inner} }

func (r *repeat) Execute(cfg *trampoline.Config, state trampoline.State, iter trampoline.Iter) (trampoline.Message, error) {
	if trampoline.IsDirty(state) {
		return trampoline.FailureMessage, nil
	}
	start := repeatState{count: 0, acc: trampoline.EmptyValue(), iter: iter}
	return trampoline.NewExecute(r, start, r.inner, trampoline.Clean, iter), nil
}

func (r *repeat) OnSuccess(cfg *trampoline.Config, state, childState trampoline.State, iter trampoline.Iter, result trampoline.Value) (trampoline.Message, error) {
	rs, ok := state.(repeatState)
	if !ok {
		return trampoline.Message{}, &trampoline.ConfigError{Message: "Repeat: unexpected state"}
	}
	acc := rs.acc.Append(result)
	count := rs.count + 1
	if r.max >= 0 && count >= r.max {
		return trampoline.NewSuccess(trampoline.Dirty, iter, acc), nil
	}
	next := repeatState{count: count, acc: acc, iter: iter}
	return trampoline.NewExecute(r, next, r.inner, trampoline.Clean, iter), nil
}

func (r *repeat) OnFailure(cfg *trampoline.Config, state trampoline.State) (trampoline.Message, error) {
	rs, ok := state.(repeatState)
	if !ok {
		return trampoline.Message{}, &trampoline.ConfigError{Message: "Repeat: unexpected state"}
	}
	if rs.count < r.min {
		return trampoline.FailureMessage, nil
	}
	return trampoline.NewSuccess(trampoline.Dirty, rs.iter, rs.acc), nil
}
