// Package value renders a parsed trampoline.Value as a readable tree,
// grounded on the teacher's go/tree_printer.go TreePrinter and its
// FormatToken ANSI theming — the one piece of that file's pretty-
// printing machinery that survives the bytecode VM it was built for.
package value

import (
	"fmt"
	"io"
	"strings"

	"github.com/clarete/trample/trampoline"
)

// Theme selects how tokens are highlighted. The zero Theme disables
// color entirely, matching a non-interactive writer.
type Theme struct {
	Enabled bool
	Literal string // e.g. "\x1b[32m" for strings
	Nested  string // e.g. "\x1b[36m" for non-string items and <absent>
	Reset   string
}

// Plain is the colorless theme.
var Plain = Theme{}

// ANSI is a small default color theme for terminal output.
var ANSI = Theme{
	Enabled: true,
	Literal: "\x1b[32m",
	Nested:  "\x1b[36m",
	Reset:   "\x1b[0m",
}

func (t Theme) wrap(color, s string) string {
	if !t.Enabled {
		return s
	}
	return color + s + t.Reset
}

// Sprint renders v as a single-line tree, e.g. ("a", ("b", "c")).
func Sprint(v trampoline.Value, theme Theme) string {
	var b strings.Builder
	fprint(&b, v, theme)
	return b.String()
}

// Fprint writes Sprint's rendering of v to w.
func Fprint(w io.Writer, v trampoline.Value, theme Theme) {
	fmt.Fprint(w, Sprint(v, theme))
}

func fprint(b *strings.Builder, v trampoline.Value, theme Theme) {
	if v.IsAbsent() {
		b.WriteString(theme.wrap(theme.Nested, "<absent>"))
		return
	}
	items := v.Items()
	b.WriteByte('(')
	for i, item := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		fprintItem(b, item, theme)
	}
	b.WriteByte(')')
}

func fprintItem(b *strings.Builder, item any, theme Theme) {
	switch it := item.(type) {
	case trampoline.Value:
		fprint(b, it, theme)
	case string:
		b.WriteString(theme.wrap(theme.Literal, fmt.Sprintf("%q", it)))
	default:
		b.WriteString(theme.wrap(theme.Nested, fmt.Sprintf("%v", it)))
	}
}
