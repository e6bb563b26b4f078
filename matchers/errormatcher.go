package matchers

import "github.com/clarete/trample/trampoline"

// errorMatcher unconditionally raises a ParserError, like the
// teacher's labeled Throw: a grammar reaching this point has found a
// situation worth aborting the whole parse over, not backtracking
// past.
type errorMatcher struct {
	id      trampoline.MatcherID
	label   string
	message string
}

// Error builds a matcher that always aborts the parse with a
// ParserError, tagged with label and defaulting to message when the
// running Config has no translation for that label.
func Error(label, message string) trampoline.Matcher {
	return &errorMatcher{id: trampoline.NewMatcherID(), label: label, message: message}
}

func (m *errorMatcher) ID() trampoline.MatcherID       { return m.id }
func (m *errorMatcher) Name() string                   { return "Error(" + m.label + ")" }
func (m *errorMatcher) Children() []trampoline.Matcher { return nil }

func (m *errorMatcher) Execute(cfg *trampoline.Config, state trampoline.State, iter trampoline.Iter) (trampoline.Message, error) {
	msg := cfg.Label(m.label)
	if msg == m.label && m.message != "" {
		msg = m.message
	}
	return trampoline.Message{}, &trampoline.ParserError{Message: msg, Label: m.label, Iter: iter}
}

func (m *errorMatcher) OnSuccess(cfg *trampoline.Config, state, childState trampoline.State, iter trampoline.Iter, result trampoline.Value) (trampoline.Message, error) {
	return trampoline.Message{}, &trampoline.ConfigError{Message: "Error has no children"}
}

func (m *errorMatcher) OnFailure(cfg *trampoline.Config, state trampoline.State) (trampoline.Message, error) {
	return trampoline.Message{}, &trampoline.ConfigError{Message: "Error has no children"}
}
