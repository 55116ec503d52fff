package freq

import (
	"bytes"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wordRe = regexp.MustCompile(`[a-zA-Z]+`)

const (
	letters    = "abcABC"
	delimiters = " \t\n.,;'-0123456789\xc3\xa9"
)

// randomText mixes short letter runs from a small alphabet, so words repeat,
// with runs of delimiters.
func randomText(rnd *rand.Rand) string {
	var sb strings.Builder
	n := rnd.Intn(200)
	for i := 0; i < n; i++ {
		src := delimiters
		if rnd.Intn(2) == 0 {
			src = letters
		}
		for j := 0; j <= rnd.Intn(4); j++ {
			sb.WriteByte(src[rnd.Intn(len(src))])
		}
	}
	return sb.String()
}

type line struct {
	word  string
	count int
}

func parseReport(t *testing.T, out string) []line {
	t.Helper()
	var lines []line
	for _, l := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		if l == "" {
			continue
		}
		fields := strings.Fields(l)
		require.Len(t, fields, 2, "line %q", l)
		n, err := strconv.Atoi(fields[1])
		require.NoError(t, err)
		lines = append(lines, line{fields[0], n})
	}
	return lines
}

func TestEmitRandomInput(t *testing.T) {
	rnd := rand.New(rand.NewSource(12345))

	for i := 0; i < 500; i++ {
		text := randomText(rnd)

		// reference count: every maximal letter run, lowercased
		runs := wordRe.FindAllString(text, -1)
		counts := make(map[string]int)
		first := make(map[string]int)
		for j, r := range runs {
			w := strings.ToLower(r)
			if _, ok := counts[w]; !ok {
				first[w] = j
			}
			counts[w]++
		}

		tbl, err := Count(strings.NewReader(text))
		require.NoError(t, err)
		var buf bytes.Buffer
		require.NoError(t, Emit(&buf, tbl))
		lines := parseReport(t, buf.String())

		require.Len(t, lines, len(counts), "input %q", text)

		total := 0
		for j, l := range lines {
			total += l.count
			assert.Equal(t, counts[l.word], l.count, "word %q in %q", l.word, text)
			if j == 0 {
				continue
			}
			prev := lines[j-1]
			assert.GreaterOrEqual(t, prev.count, l.count, "input %q", text)
			if prev.count == l.count {
				assert.Less(t, first[prev.word], first[l.word], "tie order in %q", text)
			}
		}
		assert.Equal(t, len(runs), total, "input %q", text)

		tbl, err = Count(strings.NewReader(text))
		require.NoError(t, err)
		var again bytes.Buffer
		require.NoError(t, Emit(&again, tbl))
		assert.Equal(t, buf.String(), again.String())
	}
}
