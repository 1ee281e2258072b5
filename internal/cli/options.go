// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"seqlab-core/orf"
	"seqlab-core/seq"
	"seqlab/internal/clibase"
	"seqlab/internal/cliutil"
)

// TypeAuto asks for per-record alphabet detection.
const TypeAuto = "auto"

// Options holds all seqlab flags.
type Options struct {
	clibase.Common

	Type      string // auto | dna | rna | protein
	RevComp   bool
	Translate int // frame 0..2, -1 = off
	ORFs      bool
	MinORF    int
}

// NewFlagSet returns a FlagSet with seqlab's usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "sequence composition and property analysis", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] seqs.fa [more.fa.gz ...]\n", name)
		_, _ = fmt.Fprintln(out, "\nOutput formats: text | json | jsonl")

		_, _ = fmt.Fprintln(out, "\nAnalysis:")
		_, _ = fmt.Fprintf(out, "      --type string           auto | dna | rna | protein [%s]\n", def("type"))
		_, _ = fmt.Fprintf(out, "      --revcomp               Add the reverse complement (DNA) [%s]\n", def("revcomp"))
		_, _ = fmt.Fprintf(out, "      --translate int         Add the translation of frame 0..2 (DNA, -1=off) [%s]\n", def("translate"))
		_, _ = fmt.Fprintf(out, "      --orfs                  Add six-frame ORFs (DNA) [%s]\n", def("orfs"))
		_, _ = fmt.Fprintf(out, "      --min-orf int           Minimum ORF length in nt [%s]\n", def("min-orf"))
	})
	return fs
}

// PrintExamples prints a short quickstart for seqlab.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "seqlab",
		clibase.Example{Title: "Analyse every record of a FASTA file", Commands: []string{"seqlab reads.fa"}},
		clibase.Example{Title: "DNA extras and JSON export, deterministic order", Commands: []string{
			`seqlab --type dna --revcomp --translate 0 --orfs --min-orf 60 \`,
			"--output json --sort 'data/*.fa.gz'",
		}},
		clibase.Example{Title: "Human-readable report from STDIN", Commands: []string{"cat plasmid.txt | seqlab --pretty -"}},
	)
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool

	var c clibase.Common
	noHeader := clibase.Register(fs, &c)

	fs.StringVar(&o.Type, "type", TypeAuto, "sequence type: auto | dna | rna | protein [auto]")
	fs.BoolVar(&o.RevComp, "revcomp", false, "add reverse complement (DNA) [false]")
	fs.IntVar(&o.Translate, "translate", -1, "add translation of frame 0..2 (DNA, -1=off) [-1]")
	fs.BoolVar(&o.ORFs, "orfs", false, "add six-frame ORFs (DNA) [false]")
	fs.IntVar(&o.MinORF, "min-orf", orf.DefaultMinLength, "minimum ORF length in nt")

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

	if err := clibase.AfterParse(fs, &c, noHeader, posArgs); err != nil {
		return o, err
	}
	o.Common = c

	set := clibase.SetFlags(fs)
	if cfg := c.Config; cfg != nil {
		if cfg.Type != "" && !set["type"] {
			o.Type = cfg.Type
		}
		if cfg.MinORF != 0 && !set["min-orf"] {
			o.MinORF = cfg.MinORF
		}
	}

	if o.Type != TypeAuto {
		if _, err := seq.ParseAlphabet(o.Type); err != nil {
			return o, fmt.Errorf("invalid --type: %w", err)
		}
	}
	if o.Translate < -1 || o.Translate > 2 {
		return o, errors.New("--translate must be a frame 0..2 (or -1 for off)")
	}
	if o.MinORF < 1 {
		return o, errors.New("--min-orf must be ≥ 1")
	}
	return o, nil
}
