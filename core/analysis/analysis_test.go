package analysis

import (
	"math"
	"testing"

	"seqlab-core/seq"
)

func TestAnalyzeSequenceDNA(t *testing.T) {
	a := AnalyzeSequence("atgc\n", false)
	if a.Sequence != "ATGC" || a.Length != 4 {
		t.Fatalf("unexpected cleaned sequence %+v", a)
	}
	if a.GCContent != 50 || a.ATContent != 50 {
		t.Fatalf("gc/at = %v/%v", a.GCContent, a.ATContent)
	}
	if a.MeltingTemperature == nil || *a.MeltingTemperature != 12 {
		t.Fatalf("Tm = %v, want 12", a.MeltingTemperature)
	}
	if want := 331.2 + 322.2 + 347.2 + 307.2; math.Abs(a.MolecularWeight-want) > 1e-9 {
		t.Fatalf("MW = %v, want %v", a.MolecularWeight, want)
	}
	if a.Composition.Total() != a.Length || a.Composition["U"] != 0 {
		t.Fatalf("composition %v", a.Composition)
	}
}

func TestAnalyzeSequenceRNA(t *testing.T) {
	a := AnalyzeSequence("AUGC", true)
	if a.Composition["U"] != 1 || a.ATContent != 25 {
		t.Fatalf("RNA composition/at: %v %v", a.Composition, a.ATContent)
	}
	if want := 331.2 + 308.2 + 347.2 + 307.2; math.Abs(a.MolecularWeight-want) > 1e-9 {
		t.Fatalf("MW = %v", a.MolecularWeight)
	}
}

func TestAnalyzeSequenceEmpty(t *testing.T) {
	a := AnalyzeSequence(" 12 ", false)
	if a.Length != 0 || a.GCContent != 0 || a.MolecularWeight != 0 || a.MeltingTemperature != nil {
		t.Fatalf("empty analysis = %+v", a)
	}
}

func TestAnalyzeProtein(t *testing.T) {
	// Clean drops the stop symbol along with every other non-letter.
	p := AnalyzeProtein("mk*")
	if p.Sequence != "MK" || p.Length != 2 {
		t.Fatalf("protein = %+v", p)
	}
	if _, ok := p.Composition["*"]; ok || p.Composition["M"] != 1 || p.Composition["K"] != 1 || len(p.Composition) != 2 {
		t.Fatalf("composition %v", p.Composition)
	}
	if math.Abs(p.MolecularWeight-(149.2+146.2)) > 1e-9 {
		t.Fatalf("MW = %v", p.MolecularWeight)
	}
}

func TestAnalyzeDispatch(t *testing.T) {
	r := Analyze(seq.New("MKV", seq.Protein))
	if r.Protein == nil || r.Nucleotide != nil || r.Length() != 3 {
		t.Fatalf("protein dispatch: %+v", r)
	}
	r = Analyze(seq.New("AUGC", seq.RNA))
	if r.Nucleotide == nil || r.Protein != nil || r.Nucleotide.Composition["U"] != 1 {
		t.Fatalf("rna dispatch: %+v", r)
	}
	if (Result{}).Length() != 0 {
		t.Fatalf("zero result length")
	}
}
