// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"seqlab/internal/pipeline"
	"seqlab/internal/runutil"
	"seqlab/internal/writers"
)

// Exit codes shared by every tool.
const (
	ExitOK       = 0
	ExitNoMatch  = 1
	ExitUsage    = 2
	ExitIO       = 3
	ExitCanceled = 130
)

type Options struct {
	SeqFiles []string
	Threads  int

	NoMatchExitCode int
	Logger          *log.Logger
}

// Visitor turns one record into at most one output value. Hit decides
// whether a kept value counts towards a successful (exit 0) run.
type Visitor[T any] interface {
	Visit(pipeline.Item) (keep bool, out T, err error)
	Hit(T) bool
}

type WriterFactory[T any] interface {
	Start(out io.Writer, bufSize int) (chan<- T, <-chan error)
}

func Run[T any](
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	v Visitor[T],
	wf WriterFactory[T],
) int {
	lg := o.Logger
	if lg == nil {
		lg = log.New(stderr)
	}
	outw := bufio.NewWriter(stdout)

	thr := runutil.EffectiveThreads(o.Threads)
	inCh, writeErr := wf.Start(outw, runutil.WriterBuffer(thr))

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	type kept struct {
		ok  bool
		val T
	}
	hits := 0 // visit runs on the single collector goroutine
	perr := pipeline.ForEach(
		ctx,
		pipeline.Config{Threads: thr},
		o.SeqFiles,
		func(it pipeline.Item) (kept, error) {
			ok, val, err := v.Visit(it)
			return kept{ok: ok, val: val}, err
		},
		func(k kept) error {
			if !k.ok {
				return nil
			}
			if v.Hit(k.val) {
				hits++
			}
			select {
			case inCh <- k.val:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		lg.Error("write failed", "err", werr)
		return ExitIO
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		lg.Error("flush failed", "err", e)
		return ExitIO
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return ExitCanceled
		}
		lg.Error(perr.Error())
		return ExitIO
	}
	lg.Debug("done", "files", len(o.SeqFiles), "hits", hits, "threads", thr)
	if hits == 0 {
		return o.NoMatchExitCode
	}
	return ExitOK
}

// Flush writes any buffered help/version text and maps the error to an exit
// code (broken pipes count as success).
func Flush(w *bufio.Writer, stderr io.Writer, code int) int {
	if err := w.Flush(); writers.IsBrokenPipe(err) {
		return code
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitIO
	}
	return code
}
