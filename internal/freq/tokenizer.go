// Package freq counts word frequencies in a byte stream and reports them
// ordered by descending count.
package freq

import (
	"bufio"
	"io"
	"math"
	"strings"

	"github.com/pkg/errors"
)

const initialBufSize = 4096

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// ScanLetters is a bufio.SplitFunc that returns each maximal run of ASCII
// letters. Every other byte is a delimiter.
func ScanLetters(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && !isLetter(data[start]) {
		start++
	}

	for i := start; i < len(data); i++ {
		if !isLetter(data[i]) {
			return i + 1, data[start:i], nil
		}
	}

	// Flush the pending word, the stream need not end with a delimiter.
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}

	return start, nil, nil
}

// Tokenizer reads lowercase words from a stream. It makes a single forward
// pass and can't be restarted.
type Tokenizer struct {
	s    *bufio.Scanner
	word string
}

// NewTokenizer returns a Tokenizer reading from r. Words may be of any
// length.
func NewTokenizer(r io.Reader) *Tokenizer {
	return NewTokenizerSize(r, math.MaxInt)
}

// NewTokenizerSize returns a Tokenizer reading from r with a scan buffer of
// at most maxWordLen bytes. A word that doesn't fit in the buffer together
// with the delimiter ending it fails with bufio.ErrTooLong.
func NewTokenizerSize(r io.Reader, maxWordLen int) *Tokenizer {
	size := initialBufSize
	if maxWordLen < size {
		size = maxWordLen
	}

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, size), maxWordLen)
	s.Split(ScanLetters)
	return &Tokenizer{s: s}
}

// Scan advances to the next word. It returns false at end of stream or on
// error.
func (t *Tokenizer) Scan() bool {
	if !t.s.Scan() {
		t.word = ""
		return false
	}

	t.word = strings.ToLower(t.s.Text())
	return true
}

// Word returns the most recent word found by Scan.
func (t *Tokenizer) Word() string {
	return t.word
}

// Err returns the first non-EOF error hit by the tokenizer.
func (t *Tokenizer) Err() error {
	if err := t.s.Err(); err != nil {
		return errors.Wrap(err, "read input")
	}
	return nil
}
