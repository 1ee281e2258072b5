// internal/orfapp/orfapp.go
package orfapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"seqlab/internal/appcore"
	"seqlab/internal/clibase"
	"seqlab/internal/logging"
	"seqlab/internal/orfcli"
	"seqlab/internal/output"
	"seqlab/internal/version"
	"seqlab/internal/visitors"
	"seqlab/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := orfcli.NewFlagSet("seqlab-orf")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = orfcli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return appcore.Flush(outw, stderr, appcore.ExitOK)
	}

	opts, err := orfcli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			orfcli.PrintExamples(outw)
			return appcore.Flush(outw, stderr, appcore.ExitOK)
		case errors.Is(err, flag.ErrHelp):
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
		_, _ = fmt.Fprintf(outw, "seqlab-orf version %s\n", version.Version)
		return appcore.Flush(outw, stderr, appcore.ExitOK)
	}

	lg, err := logging.New(stderr, logging.Options{
		Prefix:  "seqlab-orf",
		Level:   opts.LogLevel,
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	})
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return appcore.ExitUsage
	}

	coreOpts := appcore.Options{
		SeqFiles:        opts.SeqFiles,
		Threads:         opts.Threads,
		NoMatchExitCode: opts.NoMatchExitCode,
		Logger:          lg,
	}
	v := visitors.ORFScan{MinLen: opts.MinORF, Logger: lg}
	writer := appcore.NewORFWriterFactory(opts.Output, writers.Options{
		Sort:   opts.Sort,
		Header: opts.Header,
		Pretty: opts.Pretty,
		Term:   stdout,
	})
	return appcore.Run[output.ORFRecord](parent, stdout, stderr, coreOpts, v, writer)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
