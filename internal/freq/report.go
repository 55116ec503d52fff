package freq

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// Format is a report output format.
type Format string

// Supported formats
const (
	Text Format = "text" // "<word> <count>" per line
	CSV  Format = "csv"  // word,count records
	JSON Format = "json" // array of {"word", "count"} objects
)

// Formats lists the supported formats.
var Formats = []Format{Text, CSV, JSON}

// ParseFormat returns the Format named s.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", errors.Errorf("unknown format - %q", s)
}

type report struct {
	top    int
	format Format
}

// Option configures Emit.
type Option func(*report)

// WithTop limits the report to the n most frequent words. 0 means all.
func WithTop(n int) Option {
	return func(r *report) {
		r.top = n
	}
}

// WithFormat sets the output format, the default is Text.
func WithFormat(f Format) Option {
	return func(r *report) {
		r.format = f
	}
}

// Emit ranks t and writes its entries to w from most to least frequent.
// Entries with equal counts appear in first-occurrence order. The table is
// released once Emit returns.
func Emit(w io.Writer, t *Table, opts ...Option) error {
	defer t.release()

	r := &report{format: Text}
	for _, opt := range opts {
		opt(r)
	}

	t.Rank()
	entries := descending(t.entries, r.top)

	bw := bufio.NewWriter(w)
	var err error
	switch r.format {
	case Text:
		err = writeText(bw, entries)
	case CSV:
		err = writeCSV(bw, entries)
	case JSON:
		err = writeJSON(bw, entries)
	default:
		return errors.Errorf("unknown format - %q", r.format)
	}
	if err != nil {
		return errors.Wrap(err, "write report")
	}

	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "write report")
	}
	return nil
}

// descending returns up to top entries of an ascending slice, last first.
func descending(entries []Entry, top int) []Entry {
	n := len(entries)
	if top > 0 && top < n {
		n = top
	}

	out := make([]Entry, 0, n)
	for i := len(entries) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, entries[i])
	}
	return out
}

func writeText(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s %d\n", e.Word, e.Count); err != nil {
			return err
		}
	}
	return nil
}

func writeCSV(w io.Writer, entries []Entry) error {
	out := csv.NewWriter(w)
	for _, e := range entries {
		if err := out.Write([]string{e.Word, strconv.Itoa(e.Count)}); err != nil {
			return err
		}
	}
	out.Flush()
	return out.Error()
}

func writeJSON(w io.Writer, entries []Entry) error {
	return json.NewEncoder(w).Encode(entries)
}
