package trampoline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLit is a minimal hand-rolled leaf matcher, local to this test
// file, that matches a fixed string and counts how many times Execute
// actually ran — kept separate from the matchers package so these
// tests exercise only the trampoline's own dispatch mechanics.
type testLit struct {
	id    MatcherID
	text  string
	execs *int
}

func newTestLit(text string, execs *int) *testLit {
	return &testLit{id: NewMatcherID(), text: text, execs: execs}
}

func (m *testLit) ID() MatcherID      { return m.id }
func (m *testLit) Name() string       { return "testLit(" + m.text + ")" }
func (m *testLit) Children() []Matcher { return nil }

func (m *testLit) Execute(cfg *Config, state State, iter Iter) (Message, error) {
	if m.execs != nil {
		*m.execs++
	}
	if IsDirty(state) {
		return FailureMessage, nil
	}
	cursor := iter
	for _, want := range m.text {
		r, next, err := cfg.Source.Next(cursor)
		if err != nil {
			if err == ErrExpiredContent {
				return Message{}, err
			}
			return FailureMessage, nil
		}
		if r != want {
			return FailureMessage, nil
		}
		cursor = next
	}
	return NewSuccess(Dirty, cursor, NewValue(m.text)), nil
}

func (m *testLit) OnSuccess(cfg *Config, state, childState State, iter Iter, result Value) (Message, error) {
	return Message{}, &ConfigError{Message: "testLit has no children"}
}

func (m *testLit) OnFailure(cfg *Config, state State) (Message, error) {
	return Message{}, &ConfigError{Message: "testLit has no children"}
}

// testAlt tries its children in order at the same start cursor,
// mirroring just enough of an ordered-choice matcher to exercise
// OnFailure delegation and cache re-entry without depending on the
// matchers package.
type testAlt struct {
	id       MatcherID
	children []Matcher
}

type testAltState struct {
	index int
	start Iter
}

func newTestAlt(children ...Matcher) *testAlt {
	return &testAlt{id: NewMatcherID(), children: children}
}

func (a *testAlt) ID() MatcherID      { return a.id }
func (a *testAlt) Name() string       { return "testAlt" }
func (a *testAlt) Children() []Matcher { return a.children }

func (a *testAlt) Execute(cfg *Config, state State, iter Iter) (Message, error) {
	idx, start := 0, iter
	if s, ok := state.(testAltState); ok {
		idx, start = s.index, s.start
	}
	if idx >= len(a.children) {
		return FailureMessage, nil
	}
	return NewExecute(a, testAltState{idx, start}, a.children[idx], Clean, start), nil
}

func (a *testAlt) OnSuccess(cfg *Config, state, childState State, iter Iter, result Value) (Message, error) {
	return NewSuccess(Dirty, iter, result), nil
}

func (a *testAlt) OnFailure(cfg *Config, state State) (Message, error) {
	s := state.(testAltState)
	return a.Execute(cfg, testAltState{s.index + 1, s.start}, s.start)
}

func runWith(t *testing.T, grammar Matcher, input string, opts Options) Result {
	t.Helper()
	res, err := ParseString(grammar, input, opts)
	require.NoError(t, err)
	return res
}

func TestDeterminism(t *testing.T) {
	g := newTestAlt(newTestLit("ab", nil), newTestLit("ac", nil))
	r1 := runWith(t, g, "ac", Options{})
	r2 := runWith(t, g, "ac", Options{})
	assert.Equal(t, r1.Ok, r2.Ok)
	assert.Equal(t, r1.Value, r2.Value)
}

func TestCacheTransparency(t *testing.T) {
	build := func() Matcher {
		shared := newTestLit("ab", nil)
		return newTestAlt(shared, newTestLit("ac", nil))
	}
	cached := runWith(t, build(), "ac", Options{Cache: true})
	uncached := runWith(t, build(), "ac", Options{Cache: false})
	assert.Equal(t, uncached.Ok, cached.Ok)
	assert.Equal(t, uncached.Value, cached.Value)
}

func TestCacheKeySoundness(t *testing.T) {
	var execs int
	shared := newTestLit("ab", &execs)
	// Two independent alternatives both try the shared child at the
	// same cursor: with cache on, the second visit must not dispatch
	// Execute again.
	outer := newTestAlt(newTestAlt(shared), newTestAlt(shared))

	execs = 0
	res := runWith(t, outer, "xx", Options{Cache: true})
	assert.False(t, res.Ok)
	assert.Equal(t, 1, execs, "cached dispatch should only Execute the shared child once")

	execs = 0
	res = runWith(t, outer, "xx", Options{Cache: false})
	assert.False(t, res.Ok)
	assert.Equal(t, 2, execs, "uncached dispatch re-executes the shared child on every visit")
}

func TestTryBalance(t *testing.T) {
	inner := newTestLit("ab", nil)
	g := newTestAlt(NewTry(inner), newTestLit("ac", nil))

	src := NewSourceFromString("ac")
	cfg := newConfig(src, Options{Try: true})
	_, ok, err := run(cfg, g)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint32(0), src.Frozen())
}

func TestExpirationSafety(t *testing.T) {
	src := NewSourceFromString("abc")
	start := src.Start()

	_, next, err := src.Next(start)
	require.NoError(t, err)
	src.Expire(next)

	_, _, err = src.Next(start)
	assert.ErrorIs(t, err, ErrExpiredContent)
}

// backrefMatcher matches "abc" then, outside any Try, re-reads the
// start of input directly — content the successful "abc" step has
// already expired. It exercises the fold from ErrExpiredContent to an
// ordinary Failure (S4): the lookback never escapes as an error, and
// a surrounding alternative still gets to try its next branch — which,
// restarting at the same expired cursor, fails the same way.
type backrefMatcher struct {
	id    MatcherID
	start Iter
}

func newBackrefMatcher(start Iter) *backrefMatcher {
	return &backrefMatcher{id: NewMatcherID(), start: start}
}

func (m *backrefMatcher) ID() MatcherID      { return m.id }
func (m *backrefMatcher) Name() string       { return "backref" }
func (m *backrefMatcher) Children() []Matcher { return []Matcher{newTestLit("abc", nil)} }

func (m *backrefMatcher) Execute(cfg *Config, state State, iter Iter) (Message, error) {
	return NewExecute(m, nil, newTestLit("abc", nil), Clean, iter), nil
}

func (m *backrefMatcher) OnSuccess(cfg *Config, state, childState State, iter Iter, result Value) (Message, error) {
	_, _, err := cfg.Source.Next(m.start)
	if err != nil {
		return Message{}, err
	}
	return NewSuccess(Dirty, iter, result), nil
}

func (m *backrefMatcher) OnFailure(cfg *Config, state State) (Message, error) {
	return FailureMessage, nil
}

func TestExpiredContentFoldsToFailure(t *testing.T) {
	g := newTestAlt(newBackrefMatcher(Iter{Line: 1, Col: 1}), newTestLit("abc", nil))
	res, err := ParseString(g, "abc", Options{Try: false})
	require.NoError(t, err)
	assert.False(t, res.Ok, "the lookback folds to Failure, and the next branch restarts at the expired (1,1) and fails too")
}

func TestParseOneFailureSummary(t *testing.T) {
	g := newTestLit("hello", nil)
	_, err := ParseOne(g, "goodbye")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "@")
}

func TestIdempotence(t *testing.T) {
	g := newTestLit("abc", nil)
	v1, err := ParseOne(g, "abc")
	require.NoError(t, err)
	v2, err := ParseOne(g, "abc")
	require.NoError(t, err)
	assert.Equal(t, v1, v2)
}

func TestValueAbsentVsEmpty(t *testing.T) {
	var zero Value
	assert.True(t, zero.IsAbsent())
	assert.False(t, EmptyValue().IsAbsent())
	assert.Equal(t, []any{}, EmptyValue().Items())
}

func TestSourceMultilineReadsWrapWithSyntheticNewline(t *testing.T) {
	src := NewSourceFromString("ab\ncd")
	r, next, err := src.Next(Iter{Line: 1, Col: 3})
	require.NoError(t, err)
	assert.Equal(t, '\n', r)
	assert.Equal(t, Iter{Line: 2, Col: 1}, next)
}

func TestParseAcceptsReader(t *testing.T) {
	g := newTestLit("ok", nil)
	res, err := Parse(g, strings.NewReader("ok"), Options{})
	require.NoError(t, err)
	assert.True(t, res.Ok)
}
