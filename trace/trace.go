// Package trace renders the debug trace overlay described by the core
// engine's TraceFunc hook: one line per dispatch step, in the
// teacher's own terse line-based diagnostic style (go/base_parser.go's
// TracerSpan stack and go/vm_program.go's column-padded listings),
// rather than a structured log record per event.
package trace

import (
	"fmt"
	"io"
	"strings"

	"github.com/clarete/trample/trampoline"
)

const previewWidth = 16

// NewWriter builds a TraceFunc that writes one line per dispatch step
// to w, in the form:
//
//	<line>,<col>:<src-preview> <depth> <indent><parent>-><child>   (Execute)
//	<line>,<col>:<src-preview> <depth> <indent><parent><-<result>  (Success)
//	<line>,<col>:<src-preview> <depth> <indent><parent><-!!!       (Failure)
//
// src is read for the preview only — Source.Next does not mutate the
// expiration frontier, so tracing never perturbs the parse it watches.
func NewWriter(w io.Writer, src *trampoline.Source) trampoline.TraceFunc {
	return func(ev trampoline.TraceEvent) {
		fmt.Fprintln(w, line(src, ev))
	}
}

func line(src *trampoline.Source, ev trampoline.TraceEvent) string {
	indent := strings.Repeat("  ", ev.Depth)
	head := fmt.Sprintf("%d,%d:%s %d %s", ev.Iter.Line, ev.Iter.Col, preview(src, ev.Iter), ev.Depth, indent)

	switch ev.Kind {
	case trampoline.KindExecute:
		return head + name(ev.Parent) + "->" + name(ev.Child)
	case trampoline.KindSuccess:
		return head + name(ev.Parent) + "<-" + short(ev.Result)
	case trampoline.KindFailure:
		return head + name(ev.Parent) + "<-!!!"
	default:
		return head + "?"
	}
}

func name(m trampoline.Matcher) string {
	if m == nil {
		return "<root>"
	}
	return m.Name()
}

// short renders a produced Value truncated to a fixed, readable width.
func short(v trampoline.Value) string {
	s := fmt.Sprintf("%v", v.Items())
	if len(s) > previewWidth {
		return s[:previewWidth-1] + "…"
	}
	return s
}

// preview reads up to previewWidth runes forward from iter, escaping
// control characters, and pads the result to a fixed width so trace
// lines stay column-aligned.
func preview(src *trampoline.Source, iter trampoline.Iter) string {
	var b strings.Builder
	cursor := iter
	for b.Len() < previewWidth {
		r, next, err := src.Next(cursor)
		if err != nil {
			break
		}
		b.WriteString(escape(r))
		cursor = next
	}
	out := b.String()
	rs := []rune(out)
	if len(rs) > previewWidth {
		rs = rs[:previewWidth]
	}
	out = string(rs)
	return out + strings.Repeat(" ", previewWidth-len(rs))
}

func escape(r rune) string {
	switch r {
	case '\n':
		return `\n`
	case '\t':
		return `\t`
	case '\r':
		return `\r`
	default:
		return string(r)
	}
}
