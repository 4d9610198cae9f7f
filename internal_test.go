package tabwriter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeWidthsRagged(t *testing.T) {
	t.Parallel()
	lines := [][]Cell{
		{{Width: 1}, {Width: 5}},
		{{Width: 3}},
		{{Width: 2}, {Width: 0}, {Width: 4}},
	}
	assert.Equal(t, []int{3, 5, 4}, computeWidths(lines))
}

func TestComputeWidthsEmpty(t *testing.T) {
	t.Parallel()
	assert.Nil(t, computeWidths(nil))
}

func TestPadCell(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab  ", padCell([]rune("ab"), 4))
	assert.Equal(t, "ab", padCell([]rune("ab"), 2))
	assert.Equal(t, "", padCell(nil, 0))
}

func TestSpanBounds(t *testing.T) {
	t.Parallel()
	w := New("")
	w.output = []rune("abcdef")
	got, err := w.span(2, 3)
	require.NoError(t, err)
	assert.Equal(t, "cde", string(got))

	_, err = w.span(4, 3)
	assert.ErrorIs(t, err, ErrCorruptBuffer)
	_, err = w.span(-1, 1)
	assert.ErrorIs(t, err, ErrCorruptBuffer)
}

func TestFlushCorruptBuffer(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	w := New("|", WithOutput(&buf))
	require.NoError(t, w.WriteLine("ab\tc"))
	w.lines = append(w.lines, []Cell{{Width: 10}})

	err := w.Flush()
	assert.ErrorIs(t, err, ErrCorruptBuffer)
	assert.Contains(t, err.Error(), "line 2, cell 0")
	assert.Empty(t, buf.String())
	assert.Nil(t, w.lines)
	assert.Nil(t, w.output)
}

func TestTerminateResetsPending(t *testing.T) {
	t.Parallel()
	w := New("")
	w.pending = []rune("xyz")
	line := w.terminate(nil)
	assert.Equal(t, []Cell{{Width: 3}}, line)
	assert.Empty(t, w.pending)
	assert.Equal(t, "xyz", string(w.output))
}
