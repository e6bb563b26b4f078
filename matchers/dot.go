package matchers

import "github.com/clarete/trample/trampoline"

// dot matches any single character, like the teacher's vm opAny / the
// base parser's Any().
type dot struct {
	id trampoline.MatcherID
}

// Dot builds a matcher for any single character.
func Dot() trampoline.Matcher {
	return &dot{id: trampoline.NewMatcherID()}
}

func (m *dot) ID() trampoline.MatcherID       { return m.id }
func (m *dot) Name() string                   { return "." }
func (m *dot) Children() []trampoline.Matcher { return nil }

func (m *dot) Execute(cfg *trampoline.Config, state trampoline.State, iter trampoline.Iter) (trampoline.Message, error) {
	if trampoline.IsDirty(state) {
		return trampoline.FailureMessage, nil
	}
	r, next, err := cfg.Source.Next(iter)
	if err != nil {
		if err == trampoline.ErrExpiredContent {
			return trampoline.Message{}, err
		}
		cfg.NoteExpected(iter, "any character")
		return trampoline.FailureMessage, nil
	}
	return trampoline.NewSuccess(trampoline.Dirty, next, trampoline.NewValue(string(r))), nil
}

func (m *dot) OnSuccess(cfg *trampoline.Config, state, childState trampoline.State, iter trampoline.Iter, result trampoline.Value) (trampoline.Message, error) {
	return trampoline.Message{}, &trampoline.ConfigError{Message: "Dot has no children"}
}

func (m *dot) OnFailure(cfg *trampoline.Config, state trampoline.State) (trampoline.Message, error) {
	return trampoline.Message{}, &trampoline.ConfigError{Message: "Dot has no children"}
}

// charRange matches a single character between lo and hi inclusive,
// like the teacher's ExpectRange.
type charRange struct {
	id     trampoline.MatcherID
	lo, hi rune
}

// CharRange builds a matcher for any character in [lo, hi].
func CharRange(lo, hi rune) trampoline.Matcher {
	return &charRange{id: trampoline.NewMatcherID(), lo: lo, hi: hi}
}

func (m *charRange) ID() trampoline.MatcherID      { return m.id }
func (m *charRange) Name() string                  { return "CharRange" }
func (m *charRange) Children() []trampoline.Matcher { return nil }

func (m *charRange) Execute(cfg *trampoline.Config, state trampoline.State, iter trampoline.Iter) (trampoline.Message, error) {
	if trampoline.IsDirty(state) {
		return trampoline.FailureMessage, nil
	}
	r, next, err := cfg.Source.Next(iter)
	if err != nil {
		if err == trampoline.ErrExpiredContent {
			return trampoline.Message{}, err
		}
		cfg.NoteExpected(iter, "character in range")
		return trampoline.FailureMessage, nil
	}
	if r < m.lo || r > m.hi {
		cfg.NoteExpected(iter, "character in range")
		return trampoline.FailureMessage, nil
	}
	return trampoline.NewSuccess(trampoline.Dirty, next, trampoline.NewValue(string(r))), nil
}

func (m *charRange) OnSuccess(cfg *trampoline.Config, state, childState trampoline.State, iter trampoline.Iter, result trampoline.Value) (trampoline.Message, error) {
	return trampoline.Message{}, &trampoline.ConfigError{Message: "CharRange has no children"}
}

func (m *charRange) OnFailure(cfg *trampoline.Config, state trampoline.State) (trampoline.Message, error) {
	return trampoline.Message{}, &trampoline.ConfigError{Message: "CharRange has no children"}
}
