package main

import (
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/BryanBennett/WordFreqCount/internal/freq"
)

const defaultSuffix = ".frq"

type config struct {
	suffix   string
	output   string
	top      int
	format   freq.Format
	progress bool
	plot     string
	hist     string
	verbose  bool
}

// defaultConfig returns the configuration before flags are applied.
func defaultConfig() config {
	cfg := config{
		suffix: defaultSuffix,
		format: freq.Text,
	}

	if s := os.Getenv("WORDFREQ_SUFFIX"); len(s) > 0 {
		cfg.suffix = s
	}

	if f, err := freq.ParseFormat(os.Getenv("WORDFREQ_FORMAT")); err == nil {
		cfg.format = f
	}

	return cfg
}

// outputPath is the input path with suffix appended.
func outputPath(input, suffix string) string {
	return input + suffix
}

// TopVar returns a flag.Value holding a non-negative word limit.
func TopVar(top *int) *topVar {
	return &topVar{top}
}

type topVar struct {
	top *int
}

func (t *topVar) String() string {
	if t.top == nil {
		return ""
	}

	return strconv.Itoa(*t.top)
}

func (t *topVar) Set(s string) error {
	val, err := strconv.Atoi(s)
	if err != nil {
		return err
	}

	if val < 0 {
		return errors.Errorf("top %d must be >= 0", val)
	}

	*t.top = val
	return nil
}

// FormatVar returns a flag.Value holding a report format.
func FormatVar(f *freq.Format) *formatVar {
	return &formatVar{f}
}

type formatVar struct {
	format *freq.Format
}

func (f *formatVar) String() string {
	if f.format == nil {
		return ""
	}

	return string(*f.format)
}

func (f *formatVar) Set(s string) error {
	val, err := freq.ParseFormat(s)
	if err != nil {
		return errors.Wrapf(err, "valid formats are %v", freq.Formats)
	}

	*f.format = val
	return nil
}
