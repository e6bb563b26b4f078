// Package matchers is a reference implementation of the matcher
// protocol defined by the trampoline package's core engine. It is
// deliberately outside that package's scope — §1 of the spec treats
// the matcher library as an open extension point — but every matcher
// here is grounded in the same vocabulary the teacher engine's own
// BaseParser exposes: ExpectRune, ExpectRange, ExpectLiteral, Choice,
// ZeroOrMore/OneOrMore, And/Not, re-expressed as message-protocol
// matchers instead of direct recursive calls.
package matchers

import (
	"strings"

	"github.com/clarete/trample/trampoline"
)

// literal matches a fixed string rune-by-rune, like the teacher's
// ExpectLiteral. It has no internal alternatives, so it never
// re-enters Execute with a non-clean state.
type literal struct {
	id   trampoline.MatcherID
	text string
}

// Literal builds a matcher for the exact string s.
func Literal(s string) trampoline.Matcher {
	return &literal{id: trampoline.NewMatcherID(), text: s}
}

func (m *literal) ID() trampoline.MatcherID       { return m.id }
func (m *literal) Name() string                   { return "Literal(" + m.text + ")" }
func (m *literal) Children() []trampoline.Matcher { return nil }

func (m *literal) Execute(cfg *trampoline.Config, state trampoline.State, iter trampoline.Iter) (trampoline.Message, error) {
	if trampoline.IsDirty(state) {
		return trampoline.FailureMessage, nil
	}

	var s strings.Builder
	cursor := iter
	for _, want := range m.text {
		r, next, err := cfg.Source.Next(cursor)
		if err != nil {
			if err == trampoline.ErrExpiredContent {
				return trampoline.Message{}, err
			}
			cfg.NoteExpected(iter, "`"+m.text+"`")
			return trampoline.FailureMessage, nil
		}
		if r != want {
			cfg.NoteExpected(iter, "`"+m.text+"`")
			return trampoline.FailureMessage, nil
		}
		s.WriteRune(r)
		cursor = next
	}
	return trampoline.NewSuccess(trampoline.Dirty, cursor, trampoline.NewValue(s.String())), nil
}

func (m *literal) OnSuccess(cfg *trampoline.Config, state, childState trampoline.State, iter trampoline.Iter, result trampoline.Value) (trampoline.Message, error) {
	return trampoline.Message{}, &trampoline.ConfigError{Message: "Literal has no children"}
}

func (m *literal) OnFailure(cfg *trampoline.Config, state trampoline.State) (trampoline.Message, error) {
	return trampoline.Message{}, &trampoline.ConfigError{Message: "Literal has no children"}
}
