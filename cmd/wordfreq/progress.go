package main

import (
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
)

// progressReader wraps f so reads advance a byte progress bar written to w.
// The returned func stops the bar.
func progressReader(f *os.File, w io.Writer) (io.Reader, func(), error) {
	fi, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}

	bar := pb.New64(fi.Size())
	bar.Set(pb.Bytes, true)
	bar.SetWriter(w)
	bar.Start()

	return bar.NewProxyReader(f), func() { bar.Finish() }, nil
}
