package orfcli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"seqlab-core/orf"
	"seqlab/internal/clibase"
	"seqlab/internal/cliutil"
)

// Options holds seqlab-orf flags.
type Options struct {
	clibase.Common

	MinORF int
}

// Formats accepted by --output.
var Formats = []string{"text", "json", "jsonl", "fasta"}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "six-frame open reading frame scan", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] genome.fa\n", name)
		_, _ = fmt.Fprintln(out, "\nOutput formats: text | json | jsonl | fasta (ORF proteins)")

		_, _ = fmt.Fprintln(out, "\nORF:")
		_, _ = fmt.Fprintf(out, "  -m, --min-orf int           Minimum ORF length in nt, stop codon excluded [%s]\n", def("min-orf"))
	})
	return fs
}

// PrintExamples prints a short quickstart for seqlab-orf.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "seqlab-orf",
		clibase.Example{Title: "List ORFs of at least 300 nt", Commands: []string{"seqlab-orf -m 300 contigs.fa.gz"}},
		clibase.Example{Title: "Export ORF proteins as FASTA", Commands: []string{"seqlab-orf --output fasta --sort contigs.fa > orfs.faa"}},
	)
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool

	var c clibase.Common
	noHeader := clibase.Register(fs, &c)

	fs.IntVar(&o.MinORF, "min-orf", orf.DefaultMinLength, "minimum ORF length in nt")
	fs.IntVar(&o.MinORF, "m", orf.DefaultMinLength, "alias of --min-orf")

	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if showExamples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	if c.Version {
		o.Common = c
		return o, nil
	}

	if err := clibase.AfterParse(fs, &c, noHeader, posArgs, Formats...); err != nil {
		return o, err
	}
	o.Common = c

	if cfg := c.Config; cfg != nil && cfg.MinORF != 0 && !clibase.IsSet(clibase.SetFlags(fs), "min-orf", "m") {
		o.MinORF = cfg.MinORF
	}
	if o.MinORF < 1 {
		return o, errors.New("--min-orf must be ≥ 1")
	}
	return o, nil
}
