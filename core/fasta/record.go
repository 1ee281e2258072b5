// core/fasta/record.go
package fasta

import "strings"

// Record is one FASTA entry. Sequence is cleaned (upper-case letters only)
// unless Whole is set.
type Record struct {
	Header   string
	Sequence string
	// Whole marks a record synthesized from a file that held no FASTA
	// header. Sequence then carries the file text as read, and Header the
	// file's base name without extension.
	Whole bool
}

// ID returns the first whitespace-delimited token of the header.
func (r Record) ID() string {
	if i := strings.IndexAny(r.Header, " \t"); i >= 0 {
		return r.Header[:i]
	}
	return r.Header
}
