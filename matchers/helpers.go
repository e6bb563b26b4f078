package matchers

import (
	"fmt"
	"strings"

	"github.com/clarete/trample/trampoline"
)

// Join wraps inner, whose produced Value must be a sequence of
// strings (as Sequence or Repeat over string-producing matchers
// yields), concatenating it into a single string Value.
func Join(inner trampoline.Matcher) trampoline.Matcher {
	return Transform(inner, func(v trampoline.Value) (trampoline.Value, error) {
		var b strings.Builder
		for _, item := range v.Items() {
			s, ok := item.(string)
			if !ok {
				return trampoline.Value{}, fmt.Errorf("Join: non-string item %v", item)
			}
			b.WriteString(s)
		}
		return trampoline.NewValue(b.String()), nil
	})
}
