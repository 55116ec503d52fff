package freq

import (
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableObserve(t *testing.T) {
	tbl := NewTable()
	assert.Equal(t, 0, tbl.Len())

	for _, w := range []string{"b", "a", "b", "c", "b", "a"} {
		tbl.Observe(w)
	}

	assert.Equal(t, 3, tbl.Len())
	assert.Equal(t, 6, tbl.Total())
	assert.Equal(t, 3, tbl.Count("b"))
	assert.Equal(t, 2, tbl.Count("a"))
	assert.Equal(t, 1, tbl.Count("c"))
	assert.Equal(t, 0, tbl.Count("d"))

	// first-occurrence order
	want := []Entry{{"b", 3}, {"a", 2}, {"c", 1}}
	assert.Equal(t, want, tbl.Entries())
}

func TestTableEntriesCopy(t *testing.T) {
	tbl := NewTable()
	tbl.Observe("x")

	entries := tbl.Entries()
	entries[0].Count = 42
	assert.Equal(t, 1, tbl.Count("x"))
}

func TestTableRankKeepsIndex(t *testing.T) {
	tbl := NewTable()
	for _, w := range []string{"a", "b", "b", "c", "c", "c"} {
		tbl.Observe(w)
	}

	tbl.Rank()
	tbl.Observe("a")
	tbl.Observe("c")

	assert.Equal(t, 3, tbl.Len())
	assert.Equal(t, 2, tbl.Count("a"))
	assert.Equal(t, 2, tbl.Count("b"))
	assert.Equal(t, 4, tbl.Count("c"))
}

func TestCount(t *testing.T) {
	tbl, err := Count(strings.NewReader("the cat sat on the mat. The Cat ran."))
	require.NoError(t, err)

	want := []Entry{
		{"the", 3},
		{"cat", 2},
		{"sat", 1},
		{"on", 1},
		{"mat", 1},
		{"ran", 1},
	}
	assert.Equal(t, want, tbl.Entries())
	assert.Equal(t, 9, tbl.Total())
}

func TestCountEmpty(t *testing.T) {
	for _, input := range []string{"", "123 ... !!!\n"} {
		tbl, err := Count(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, 0, tbl.Len(), "input %q", input)
	}
}

func TestCountError(t *testing.T) {
	_, err := Count(iotest.ErrReader(iotest.ErrTimeout))
	assert.ErrorIs(t, err, iotest.ErrTimeout)
}

func TestEntryString(t *testing.T) {
	assert.Equal(t, "word 7", Entry{Word: "word", Count: 7}.String())
}
