// core/fasta/parse.go
package fasta

import (
	"strings"

	"seqlab-core/seq"
)

// Parse splits text into records. Lines are separated by '\n'. A line
// starting with '>' opens a record whose header is the rest of the line,
// trimmed; every other line is trimmed and appended to the pending sequence.
// A pending record is kept only when both its header and its accumulated
// sequence text are non-empty. Text before the first header is discarded.
func Parse(text string) []Record {
	var (
		out    []Record
		header string
		body   strings.Builder
	)
	flush := func() {
		if header != "" && body.Len() > 0 {
			out = append(out, Record{Header: header, Sequence: seq.Clean(body.String())})
		}
	}
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, ">") {
			flush()
			header = strings.TrimSpace(line[1:])
			body.Reset()
			continue
		}
		body.WriteString(strings.TrimSpace(line))
	}
	flush()
	return out
}
