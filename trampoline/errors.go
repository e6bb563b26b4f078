package trampoline

import "fmt"

// ParserError is raised by an Error matcher, or by a Transform whose
// callback returns an error. It aborts the parse: the trampoline
// propagates it straight to the caller instead of folding it into an
// ordinary Failure, mirroring the teacher's split between a
// propagating ParsingError and a backtrackable error.
type ParserError struct {
	Message string
	Label   string
	Iter    Iter
}

func (e *ParserError) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("%s @ %s", e.Label, e.Iter)
	}
	return fmt.Sprintf("%s @ %s", e.Message, e.Iter)
}

// ConfigError marks a grammar/dispatch-mode mismatch discovered at
// construction or first dispatch: a Try matcher used without try:on,
// or a range slice request spanning more than one line. It is a
// programming error, never a parse outcome, so it propagates exactly
// like ParserError.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Message
}

// ErrExpiredContent is returned by Source reads that land on a cursor
// whose prefix has already been discarded. It is caught at every
// trampoline dispatch step and converted to an ordinary Failure
// message; it must never escape the engine. Matchers that read from
// Source should return this error verbatim (not wrap it) so the
// trampoline's check via errors.Is succeeds.
var ErrExpiredContent = &expiredContentError{}

type expiredContentError struct{}

func (e *expiredContentError) Error() string { return "expired content" }
