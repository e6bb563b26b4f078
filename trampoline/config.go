package trampoline

// Options selects one of the dispatch modes enumerated in §6: whether
// sub-parses are memoized, whether Try scopes are honored (and hence
// whether consumed input is ever discarded), and whether a debug
// trace is emitted alongside the normal result.
type Options struct {
	// Cache turns on the memoizing trampoline variant (§4.4). Off by
	// default: the uncached variant (§4.3).
	Cache bool

	// Try turns on Try-scope/expiration semantics (§4.5). With Try
	// off, the Source still expires eagerly after every successful
	// step but no matcher may freeze it — using a Try matcher while
	// Try is off is a ConfigError.
	Try bool

	// Trace, if non-nil, receives one TraceEvent per dispatch step
	// regardless of Cache/Try, turning on the debug overlay from §6.
	// Left nil, tracing has zero cost.
	Trace TraceFunc

	// LabelMessages translates a label thrown by an Error matcher
	// into a user-facing message (failure reports recorded through
	// NoteExpected are not translated), mirroring the teacher's
	// SetLabelMessages/Throw pairing so one grammar's labels can mean
	// different things to different callers.
	LabelMessages map[string]string
}

// TraceFunc receives one event per dispatch step when Options.Trace
// is set.
type TraceFunc func(TraceEvent)

// TraceEvent is a single step of the debug trace described in §6.
type TraceEvent struct {
	Kind   MessageKind
	Depth  int
	Parent Matcher
	Child  Matcher
	Iter   Iter
	Result Value
}

// Config is the execution context threaded through every Matcher
// protocol call: the spec's "config" parameter. It bundles the
// Source being parsed, the selected Options, the sub-parse cache
// (nil when caching is off), and the running farthest-failure report.
type Config struct {
	Source  *Source
	Options Options

	cache *Cache
	depth int

	farthest Iter
	expected []string
}

func newConfig(src *Source, opts Options) *Config {
	var cache *Cache
	if opts.Cache {
		cache = newCache()
	}
	return &Config{
		Source:   src,
		Options:  opts,
		cache:    cache,
		farthest: src.Start(),
	}
}

// NoteExpected records that, while attempting to match at iter, a
// matcher expected `what`. It feeds the farthest-failure report
// surfaced on an unsuccessful parse: only the deepest cursor reached
// is kept, mirroring the teacher's ffp/lastErr pairing. Reference
// matchers call this from Execute; matchers that don't care to report
// diagnostics simply never call it.
func (c *Config) NoteExpected(iter Iter, what string) {
	switch {
	case c.farthest.Less(iter):
		c.farthest = iter
		c.expected = []string{what}
	case iter == c.farthest && what != "":
		for _, e := range c.expected {
			if e == what {
				return
			}
		}
		c.expected = append(c.expected, what)
	}
}

// Farthest returns the deepest cursor the parse reached.
func (c *Config) Farthest() Iter { return c.farthest }

// Expected returns the distinct expectations recorded at Farthest.
func (c *Config) Expected() []string { return c.expected }

// Label resolves a label through Options.LabelMessages, falling back
// to the label itself when no translation is configured.
func (c *Config) Label(label string) string {
	if c.Options.LabelMessages != nil {
		if msg, ok := c.Options.LabelMessages[label]; ok {
			return msg
		}
	}
	return label
}
