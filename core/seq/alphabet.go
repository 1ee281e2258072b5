// core/seq/alphabet.go
package seq

import (
	"fmt"
	"strings"
)

// Alphabet names the residue set a sequence is declared over.
type Alphabet int

const (
	DNA Alphabet = iota
	RNA
	Protein
)

func (a Alphabet) String() string {
	switch a {
	case DNA:
		return "dna"
	case RNA:
		return "rna"
	case Protein:
		return "protein"
	default:
		return "unknown"
	}
}

// IsNucleotide reports whether a is DNA or RNA.
func (a Alphabet) IsNucleotide() bool { return a == DNA || a == RNA }

// ParseAlphabet accepts "dna", "rna" or "protein" (any case).
func ParseAlphabet(s string) (Alphabet, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dna":
		return DNA, nil
	case "rna":
		return RNA, nil
	case "protein":
		return Protein, nil
	}
	return DNA, fmt.Errorf("unknown alphabet %q; allowed: dna rna protein", s)
}

// Membership tables, indexed by upper-case ASCII byte.
var (
	dnaSet     [256]bool
	rnaSet     [256]bool
	proteinSet [256]bool
)

func init() {
	for _, c := range []byte("ATGC") {
		dnaSet[c] = true
	}
	for _, c := range []byte("AUGC") {
		rnaSet[c] = true
	}
	for _, c := range []byte("ACDEFGHIKLMNPQRSTVWY*") {
		proteinSet[c] = true
	}
}

func (a Alphabet) table() *[256]bool {
	switch a {
	case RNA:
		return &rnaSet
	case Protein:
		return &proteinSet
	default:
		return &dnaSet
	}
}
