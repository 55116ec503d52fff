// wordfreq counts the words in a text file and writes them to a new file,
// most frequent first.
//
// Usage:
//
//	wordfreq [options] FILE
package main

import (
	"compress/gzip"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/BryanBennett/WordFreqCount/internal/chart"
	"github.com/BryanBennett/WordFreqCount/internal/freq"
)

const usage = `usage: %s [options] FILE

Count word frequencies in FILE and write one "word count" line per word,
most frequent first, to FILE%s.
Gzip compressed input (*.gz) is decompressed on the fly.

Options:
`

var errUsage = errors.New("wrong number of arguments")

func main() {
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	if err := run(os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("error: %s", err)
	}
}

func run(args []string, stderr io.Writer) error {
	cfg := defaultConfig()

	fs := flag.NewFlagSet("wordfreq", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.suffix, "suffix", cfg.suffix, "suffix appended to FILE to name the output")
	fs.StringVar(&cfg.output, "o", "", "output file (default FILE + suffix)")
	fs.Var(TopVar(&cfg.top), "top", "write only the N most frequent words (0 for all)")
	fs.Var(FormatVar(&cfg.format), "format", "output format: text, csv or json")
	fs.BoolVar(&cfg.progress, "progress", false, "show a progress bar while reading")
	fs.StringVar(&cfg.plot, "plot", "", "save a rank/frequency plot to this PNG file")
	fs.StringVar(&cfg.hist, "hist", "", "save a word length histogram to this PNG file")
	fs.BoolVar(&cfg.verbose, "v", false, "verbose logging")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), usage, fs.Name(), cfg.suffix)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}

	log.SetOutput(stderr)
	log.SetLevel(log.InfoLevel)
	if cfg.verbose {
		log.SetLevel(log.DebugLevel)
	}

	input := fs.Arg(0)
	output := cfg.output
	if output == "" {
		output = outputPath(input, cfg.suffix)
	}

	r, closeInput, err := openInput(input, cfg.progress, stderr)
	if err != nil {
		return err
	}

	t, err := freq.Count(r)
	closeInput()
	if err != nil {
		return errors.Wrapf(err, "%s", input)
	}

	words, unique := t.Total(), t.Len()
	log.WithField("input", input).Debug("counted")

	if err := savePlots(t, cfg); err != nil {
		return err
	}

	if err := writeReport(output, t, cfg); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"input":  input,
		"output": output,
		"words":  words,
		"unique": unique,
	}).Info("done")
	return nil
}

// openInput opens path for reading. The returned func releases everything
// openInput acquired.
func openInput(path string, progress bool, stderr io.Writer) (io.Reader, func(), error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "file does not exist or cannot be read")
	}

	var r io.Reader = file
	closers := []func(){func() { file.Close() }}

	if progress {
		pr, finish, err := progressReader(file, stderr)
		if err != nil {
			file.Close()
			return nil, nil, errors.Wrap(err, "can't stat input")
		}
		r = pr
		closers = append(closers, finish)
	}

	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(r)
		if err != nil {
			closeAll(closers)
			return nil, nil, errors.Wrapf(err, "%s", path)
		}
		r = zr
		closers = append(closers, func() { zr.Close() })
	}

	return r, func() { closeAll(closers) }, nil
}

// closeAll runs closers last to first.
func closeAll(closers []func()) {
	for i := len(closers) - 1; i >= 0; i-- {
		closers[i]()
	}
}

func savePlots(t *freq.Table, cfg config) error {
	if cfg.plot == "" && cfg.hist == "" {
		return nil
	}

	entries := t.Entries()
	if len(entries) == 0 {
		log.Warn("no words found, skipping plots")
		return nil
	}

	if cfg.plot != "" {
		if err := chart.RankFrequency(entries, cfg.plot); err != nil {
			return err
		}
		log.WithField("file", cfg.plot).Debug("rank plot saved")
	}

	if cfg.hist != "" {
		if err := chart.LengthHistogram(entries, cfg.hist); err != nil {
			return err
		}
		log.WithField("file", cfg.hist).Debug("length histogram saved")
	}

	return nil
}

func writeReport(path string, t *freq.Table, cfg config) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "can't create output")
	}

	if err := freq.Emit(file, t, freq.WithTop(cfg.top), freq.WithFormat(cfg.format)); err != nil {
		file.Close()
		return errors.Wrapf(err, "%s", path)
	}

	if err := file.Close(); err != nil {
		return errors.Wrapf(err, "%s", path)
	}
	return nil
}
