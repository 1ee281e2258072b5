// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"seqlab/internal/output"
	"seqlab/pkg/api"
)

// Options shared by all writers.
type Options struct {
	Sort   bool
	Header bool
	Pretty bool

	// Timestamp is the run's timestamp, written as the JSON batch export date.
	Timestamp string

	// Term is used only to detect terminal colour support for --pretty
	// (the real stdout, not a buffer around it). Nil means the output itself.
	Term io.Writer
}

func (o Options) term(w io.Writer) io.Writer {
	if o.Term != nil {
		return o.Term
	}
	return w
}

// Writer registries (format → handler). Handlers consume in until it is
// closed. Register in init() blocks of report.go and orf.go.
var (
	ReportWriters = map[string]func(w io.Writer, in <-chan api.ExportV1, o Options) error{}
	ORFWriters    = map[string]func(w io.Writer, in <-chan output.ORFRecord, o Options) error{}
)

// Register helpers (idempotent last-wins)
func RegisterReport(format string, fn func(io.Writer, <-chan api.ExportV1, Options) error) {
	ReportWriters[format] = fn
}

func RegisterORF(format string, fn func(io.Writer, <-chan output.ORFRecord, Options) error) {
	ORFWriters[format] = fn
}

// start runs handler fn in a goroutine. A nil fn drains the channel and
// reports err.
func start[T any](out io.Writer, fn func(io.Writer, <-chan T, Options) error, missing error, o Options, bufSize int) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	errCh := make(chan error, 1)
	go func() {
		if fn == nil {
			for range in {
			}
			errCh <- missing
			return
		}
		err := fn(out, in, o)
		// Drain so senders never block after a write error.
		for range in {
		}
		errCh <- err
	}()
	return in, errCh
}

// StartReportWriter spins up the writer registered for format.
func StartReportWriter(out io.Writer, format string, o Options, bufSize int) (chan<- api.ExportV1, <-chan error) {
	fn := ReportWriters[format]
	return start(out, fn, fmt.Errorf("unknown report format %q (no writer registered)", format), o, bufSize)
}

// StartORFWriter spins up the ORF writer registered for format.
func StartORFWriter(out io.Writer, format string, o Options, bufSize int) (chan<- output.ORFRecord, <-chan error) {
	fn := ORFWriters[format]
	return start(out, fn, fmt.Errorf("unknown orf format %q (no writer registered)", format), o, bufSize)
}

// collect drains in into a slice.
func collect[T any](in <-chan T) []T {
	var buf []T
	for v := range in {
		buf = append(buf, v)
	}
	return buf
}
