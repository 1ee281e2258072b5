package clibase

import (
	"bytes"
	"testing"
)

func TestPrintExamples(t *testing.T) {
	var b bytes.Buffer
	PrintExamples(&b, "tool",
		Example{Title: "One", Commands: []string{"tool a.fa"}},
		Example{Title: "Two", Commands: []string{`tool --x \`, "--y b.fa"}},
	)
	want := "tool: quickstart\n\nOne:\n  tool a.fa\n\nTwo:\n  tool --x \\\n    --y b.fa\n\nRun with --help for all flags.\n"
	if b.String() != want {
		t.Fatalf("got %q\nwant %q", b.String(), want)
	}
	PrintExamples(nil, "tool") // no panic
}
