// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"

	"seqlab/internal/cliutil"
	"seqlab/internal/config"
	"seqlab/internal/logging"
)

// Common holds CLI fields shared by seqlab and seqlab-orf.
type Common struct {
	// Input
	SeqFiles []string

	// Performance
	Threads int

	// Output
	Output          string // text|json|jsonl (+ fasta for seqlab-orf)
	Pretty          bool
	Sort            bool
	Header          bool
	NoMatchExitCode int

	// Misc
	ConfigPath string
	LogLevel   string
	Verbose    bool
	Quiet      bool
	Version    bool

	// Config is the loaded --config file (never nil after AfterParse).
	Config *config.Config
}

// sliceValue appends each value to a *[]string (for --sequences/-s)
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return fmt.Sprint(*s.dst)
}

func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}

// Register wires shared flags onto fs and returns a pointer to the “no-header” bool
// that the caller can use to set Common.Header = !noHeader after parsing.
func Register(fs *flag.FlagSet, c *Common) *bool {
	seqVal := &sliceValue{dst: &c.SeqFiles}
	fs.Var(seqVal, "sequences", "FASTA file(s) (repeatable) or '-'")
	fs.Var(seqVal, "s", "alias of --sequences")

	fs.IntVar(&c.Threads, "threads", 0, "worker threads (0=all CPUs) [0]")
	fs.IntVar(&c.Threads, "t", 0, "alias of --threads")

	fs.StringVar(&c.Output, "output", "text", "output: text | json | jsonl [text]")
	fs.StringVar(&c.Output, "o", "text", "alias of --output")
	fs.BoolVar(&c.Pretty, "pretty", false, "styled report block per record (text) [false]")
	fs.BoolVar(&c.Sort, "sort", false, "sort outputs by source file and record index [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")
	fs.IntVar(&c.NoMatchExitCode, "no-match-exit-code", 1, "exit code when nothing was found [1]")

	fs.StringVar(&c.ConfigPath, "config", "", "JSON config supplying flag defaults")
	fs.StringVar(&c.LogLevel, "log-level", "info", "log level: debug | info | warn | error [info]")
	fs.BoolVar(&c.Verbose, "verbose", false, "debug logging [false]")
	fs.BoolVar(&c.Quiet, "quiet", false, "only log errors [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")

	return &noHeader
}

// AfterParse finalizes header, loads --config and applies it to flags the
// user left unset, expands positionals, then runs shared validation.
// formats lists the --output values the tool accepts.
func AfterParse(fs *flag.FlagSet, c *Common, noHeader *bool, posArgs []string, formats ...string) error {
	c.Header = !*noHeader

	cfg, err := config.Load(c.ConfigPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	ApplyConfig(c, SetFlags(fs), cfg)

	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return err
		}
		c.SeqFiles = append(c.SeqFiles, exp...)
	}
	c.SeqFiles = cliutil.DedupePaths(c.SeqFiles)
	return Validate(c, formats...)
}

// SetFlags returns the names of flags given explicitly on the command line.
func SetFlags(fs *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// IsSet reports whether any of names was given explicitly.
func IsSet(set map[string]bool, names ...string) bool {
	for _, n := range names {
		if set[n] {
			return true
		}
	}
	return false
}

// ApplyConfig copies configured values into c for flags not set explicitly.
func ApplyConfig(c *Common, set map[string]bool, cfg *config.Config) {
	if cfg == nil {
		return
	}
	if cfg.Threads != 0 && !IsSet(set, "threads", "t") {
		c.Threads = cfg.Threads
	}
	if cfg.Output != "" && !IsSet(set, "output", "o") {
		c.Output = cfg.Output
	}
	if cfg.LogLevel != "" && !IsSet(set, "log-level") {
		c.LogLevel = cfg.LogLevel
	}
	if cfg.Sort && !IsSet(set, "sort") {
		c.Sort = true
	}
	if cfg.Pretty && !IsSet(set, "pretty") {
		c.Pretty = true
	}
	if cfg.NoMatchExitCode != nil && !IsSet(set, "no-match-exit-code") {
		c.NoMatchExitCode = *cfg.NoMatchExitCode
	}
}

// Validate applies shared CLI invariants used by all tools.
func Validate(c *Common, formats ...string) error {
	if len(c.SeqFiles) == 0 {
		return errors.New("at least one sequence file is required")
	}
	if c.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if len(formats) == 0 {
		formats = []string{"text", "json", "jsonl"}
	}
	ok := false
	for _, f := range formats {
		if c.Output == f {
			ok = true
			break
		}
	}
	if !ok {
		return fmt.Errorf("invalid --output %q", c.Output)
	}
	if c.NoMatchExitCode < 0 || c.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
