package trampoline

import (
	"fmt"
	"io"
	"strings"
)

// Result is the outcome of a parse: either a produced Value (Ok), or
// a farthest-failure report a caller can turn into a diagnostic. The
// core only guarantees the boolean outcome plus, on success, the
// produced Value — any further heuristics are the caller's (or a
// matcher library's) to build on top, per §7.
type Result struct {
	Value    Value
	Ok       bool
	Farthest Iter
	Expected []string
}

// FailureSummary renders a human-readable description of why a failed
// Result didn't match, in the style of the teacher's own
// "Expected X but got Y @ span" messages.
func (r Result) FailureSummary() string {
	if r.Ok {
		return ""
	}
	if len(r.Expected) == 0 {
		return fmt.Sprintf("parse failed @ %s", r.Farthest)
	}
	return fmt.Sprintf("expected %s @ %s", strings.Join(r.Expected, " or "), r.Farthest)
}

// Parse runs grammar over input under the dispatch mode selected by
// opts, implementing the four enumerated combinations from §6 plus
// the debug overlay. It returns a ParserError/ConfigError verbatim
// when the grammar raises one; an ordinary non-match is reported via
// Result.Ok, never as an error.
func Parse(grammar Matcher, input io.Reader, opts Options) (Result, error) {
	src := NewSource(input)
	cfg := newConfig(src, opts)

	value, ok, err := run(cfg, grammar)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Value:    value,
		Ok:       ok,
		Farthest: cfg.Farthest(),
		Expected: cfg.Expected(),
	}, nil
}

// ParseString is Parse over an in-memory string, the common case for
// configuration formats and small DSLs.
func ParseString(grammar Matcher, input string, opts Options) (Result, error) {
	return Parse(grammar, strings.NewReader(input), opts)
}

// ParseOne is the shorthand for "give me the first successful parse":
// it fails with the parser's farthest failure if none succeeds. It
// runs with caching and Try both off, to keep its error contract
// simple; callers who need those should call Parse directly.
func ParseOne(grammar Matcher, input string) (Value, error) {
	res, err := ParseString(grammar, input, Options{})
	if err != nil {
		return Value{}, err
	}
	if !res.Ok {
		return Value{}, fmt.Errorf("%s", res.FailureSummary())
	}
	return res.Value, nil
}
