package freq

import (
	"fmt"
	"io"
)

// Entry is a word and the number of times it was seen.
type Entry struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// String implements fmt.Stringer using the report line format.
func (e Entry) String() string {
	return fmt.Sprintf("%s %d", e.Word, e.Count)
}

// Table accumulates word counts. Entries stay in first-occurrence order
// until the table is ranked.
type Table struct {
	entries []Entry
	index   map[string]int // word -> position in entries
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{index: make(map[string]int)}
}

// Observe records one occurrence of word, appending a new entry the first
// time the word is seen.
func (t *Table) Observe(word string) {
	if i, ok := t.index[word]; ok {
		t.entries[i].Count++
		return
	}

	t.index[word] = len(t.entries)
	t.entries = append(t.entries, Entry{Word: word, Count: 1})
}

// Len returns the number of distinct words.
func (t *Table) Len() int {
	return len(t.entries)
}

// Count returns the number of occurrences of word, 0 if it was never seen.
func (t *Table) Count(word string) int {
	i, ok := t.index[word]
	if !ok {
		return 0
	}
	return t.entries[i].Count
}

// Total returns the number of words observed.
func (t *Table) Total() int {
	total := 0
	for _, e := range t.entries {
		total += e.Count
	}
	return total
}

// Entries returns a copy of the entries in their current order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Rank orders the entries by ascending count, see Rank.
func (t *Table) Rank() {
	Rank(t.entries)
	for i, e := range t.entries {
		t.index[e.Word] = i
	}
}

// release drops all entries. The table is empty afterwards.
func (t *Table) release() {
	t.entries = nil
	t.index = make(map[string]int)
}

// Count builds a table from all the words in r.
func Count(r io.Reader) (*Table, error) {
	t := NewTable()
	tok := NewTokenizer(r)
	for tok.Scan() {
		t.Observe(tok.Word())
	}

	if err := tok.Err(); err != nil {
		return nil, err
	}
	return t, nil
}
