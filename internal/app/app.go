// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"seqlab-core/seq"
	"seqlab/internal/appcore"
	"seqlab/internal/cli"
	"seqlab/internal/clibase"
	"seqlab/internal/logging"
	"seqlab/internal/version"
	"seqlab/internal/visitors"
	"seqlab/internal/writers"
	"seqlab/pkg/api"
)

// RunContext is the seqlab entry point. The clock is read once; every
// bundle of the run carries the same timestamp.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet("seqlab")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return appcore.Flush(outw, stderr, appcore.ExitOK)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, clibase.ErrPrintedAndExitOK) {
			cli.PrintExamples(outw)
			return appcore.Flush(outw, stderr, appcore.ExitOK)
		}
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return appcore.Flush(outw, stderr, appcore.ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, "error:", err)
		fs.SetOutput(stderr)
		fs.Usage()
		return appcore.ExitUsage
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "seqlab version %s\n", version.Version)
		return appcore.Flush(outw, stderr, appcore.ExitOK)
	}

	lg, err := logging.New(stderr, logging.Options{
		Prefix:  "seqlab",
		Level:   opts.LogLevel,
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	})
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return appcore.ExitUsage
	}
	if opts.Type != cli.TypeAuto {
		// ParseArgs already validated it; normalise the spelling.
		a, _ := seq.ParseAlphabet(opts.Type)
		opts.Type = a.String()
	}

	now := time.Now().UTC().Format(time.RFC3339)
	v := visitors.Analyze{
		Type:      opts.Type,
		RevComp:   opts.RevComp,
		Translate: opts.Translate,
		ORFs:      opts.ORFs,
		MinORF:    opts.MinORF,
		Timestamp: now,
		Logger:    lg,
	}
	coreOpts := appcore.Options{
		SeqFiles:        opts.SeqFiles,
		Threads:         opts.Threads,
		NoMatchExitCode: opts.NoMatchExitCode,
		Logger:          lg,
	}
	writer := appcore.NewReportWriterFactory(opts.Output, writers.Options{
		Sort:      opts.Sort,
		Header:    opts.Header,
		Pretty:    opts.Pretty,
		Timestamp: now,
		Term:      stdout,
	})
	return appcore.Run[api.ExportV1](parent, stdout, stderr, coreOpts, v, writer)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
