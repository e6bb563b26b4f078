package trace

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clarete/trample/matchers"
	"github.com/clarete/trample/trampoline"
)

func TestWriterEmitsOneLinePerDispatchStep(t *testing.T) {
	var buf bytes.Buffer
	src := trampoline.NewSourceFromString("a")
	opts := trampoline.Options{Trace: NewWriter(&buf, src)}

	res, err := trampoline.Parse(matchers.Literal("a"), strings.NewReader("a"), opts)
	require.NoError(t, err)
	require.True(t, res.Ok)

	out := buf.String()
	assert.NotEmpty(t, out)
	assert.Contains(t, out, "1,1:")
	assert.Contains(t, out, "->")
}

func TestPreviewPadsToFixedWidth(t *testing.T) {
	src := trampoline.NewSourceFromString("ab")
	p := preview(src, trampoline.Iter{Line: 1, Col: 1})
	assert.Len(t, []rune(p), previewWidth)
	assert.True(t, strings.HasPrefix(p, "ab"))
}
