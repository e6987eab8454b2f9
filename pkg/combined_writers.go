package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter writes the same bytes to every underlying writer,
// e.g. to both stdout and the rotated log file.
// A failing writer does not stop the others, all errors are combined.
type CombinedWriter struct {
	Writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{
		Writers: append([]io.Writer(nil), writers...),
	}
}

func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var (
		total int
		errs  error
	)
	for _, w := range cw.Writers {
		n, err := w.Write(p)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		total += n
	}
	return total, errs
}
