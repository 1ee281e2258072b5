// internal/clibase/examples.go
package clibase

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrPrintedAndExitOK tells the app that --examples was given: print the
// examples and exit 0.
var ErrPrintedAndExitOK = errors.New("examples requested")

// Example is one quickstart entry: a caption and the command lines under it.
type Example struct {
	Title    string
	Commands []string
}

// PrintExamples writes the quickstart for tool name. Command lines are
// indented two spaces and continuation lines ending in `\` four.
func PrintExamples(out io.Writer, name string, examples ...Example) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s: quickstart\n", name)
	for _, ex := range examples {
		_, _ = fmt.Fprintf(out, "\n%s:\n", ex.Title)
		cont := false
		for _, c := range ex.Commands {
			pad := "  "
			if cont {
				pad = "    "
			}
			_, _ = fmt.Fprintln(out, pad+c)
			cont = strings.HasSuffix(c, `\`)
		}
	}
	_, _ = fmt.Fprintln(out, "\nRun with --help for all flags.")
}
