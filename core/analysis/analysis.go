// Package analysis bundles the per-sequence measurements into one value.
package analysis

import (
	"seqlab-core/composition"
	"seqlab-core/physchem"
	"seqlab-core/seq"
)

// SequenceAnalysis summarises a DNA or RNA sequence.
type SequenceAnalysis struct {
	Sequence        string
	Length          int
	GCContent       float64
	ATContent       float64
	Composition     composition.Composition
	MolecularWeight float64
	// MeltingTemperature is nil for an empty sequence.
	MeltingTemperature *float64
}

// ProteinAnalysis summarises a protein sequence. GC/AT and Tm do not apply.
type ProteinAnalysis struct {
	Sequence        string
	Length          int
	MolecularWeight float64
	Composition     composition.Composition
}

// AnalyzeSequence cleans raw and measures it as a nucleotide sequence.
func AnalyzeSequence(raw string, isRNA bool) SequenceAnalysis {
	clean := seq.Clean(raw)
	a := SequenceAnalysis{
		Sequence:        clean,
		Length:          len(clean),
		GCContent:       composition.GCContent(clean),
		ATContent:       composition.ATContent(clean),
		Composition:     composition.Nucleotide(clean),
		MolecularWeight: physchem.NucleotideWeight(clean, isRNA),
	}
	if len(clean) > 0 {
		tm := physchem.MeltingTemperature(clean)
		a.MeltingTemperature = &tm
	}
	return a
}

// AnalyzeProtein cleans raw and measures it as a protein.
func AnalyzeProtein(raw string) ProteinAnalysis {
	clean := seq.Clean(raw)
	return ProteinAnalysis{
		Sequence:        clean,
		Length:          len(clean),
		MolecularWeight: physchem.ProteinWeight(clean),
		Composition:     composition.Protein(clean),
	}
}

// Result holds exactly one of Nucleotide or Protein, chosen by Alphabet.
type Result struct {
	Alphabet   seq.Alphabet
	Nucleotide *SequenceAnalysis
	Protein    *ProteinAnalysis
}

// Analyze dispatches on s.Alphabet.
func Analyze(s seq.Sequence) Result {
	r := Result{Alphabet: s.Alphabet}
	switch s.Alphabet {
	case seq.Protein:
		p := AnalyzeProtein(s.Raw)
		r.Protein = &p
	default:
		n := AnalyzeSequence(s.Raw, s.Alphabet == seq.RNA)
		r.Nucleotide = &n
	}
	return r
}

// Length returns the cleaned length of whichever analysis is set.
func (r Result) Length() int {
	switch {
	case r.Nucleotide != nil:
		return r.Nucleotide.Length
	case r.Protein != nil:
		return r.Protein.Length
	}
	return 0
}
