package pretty

import (
	"bytes"
	"strings"
	"testing"

	"seqlab/pkg/api"
)

func f(v float64) *float64 { return &v }

func sample() api.ExportV1 {
	return api.ExportV1{
		Sequence:     "ATGC",
		SequenceType: "dna",
		Header:       "s1",
		Valid:        true,
		AnalysisResult: &api.AnalysisV1{
			Sequence:           "ATGC",
			Length:             4,
			GCContent:          f(50),
			ATContent:          f(50),
			Composition:        map[string]int{"A": 1, "T": 1, "G": 1, "C": 1, "U": 0},
			MolecularWeight:    1307.8,
			MeltingTemperature: f(12),
		},
	}
}

func TestReport_PlainOutputLayout(t *testing.T) {
	// A bytes.Buffer is not a terminal, so no escape codes are emitted.
	r := NewRenderer(&bytes.Buffer{}, DefaultOptions)
	got := r.Report(sample())
	for _, want := range []string{
		"# === s1 ===\n",
		"# Sequence type: DNA\n",
		"# GC content: 50.00%\n",
		"# Molecular weight: 1307.80 Da\n",
		"# Melting temperature: 12.00°C\n",
		"# A: 1 (25.00%)\n",
		"# === Sequence ===\n# ATGC\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "U:") {
		t.Errorf("zero counts must be skipped:\n%s", got)
	}
	if strings.Contains(got, "\x1b[") {
		t.Errorf("unexpected ANSI codes for non-terminal output")
	}
	for _, line := range strings.Split(strings.TrimSuffix(got, "\n"), "\n") {
		if !strings.HasPrefix(line, "# ") {
			t.Fatalf("line without prefix: %q", line)
		}
	}
}

func TestReport_Invalid(t *testing.T) {
	e := api.ExportV1{SequenceType: "rna", Header: "x"}
	got := NewRenderer(&bytes.Buffer{}, DefaultOptions).Report(e)
	if !strings.Contains(got, "invalid rna sequence") || strings.Contains(got, "Statistics") {
		t.Fatalf("invalid block:\n%s", got)
	}
}

func TestReport_WrapsAndExtras(t *testing.T) {
	e := sample()
	e.AnalysisResult.Sequence = strings.Repeat("A", 130)
	e.ReverseComplement = "GCAT"
	e.Translation = &api.TranslationV1{Frame: 1, Protein: "M*"}
	e.ORFs = []api.ORFV1{{Start: 1, End: 9, Frame: -1, Length: 9, Protein: "MK"}}
	got := NewRenderer(&bytes.Buffer{}, Options{Wrap: 60}).Report(e)
	if !strings.Contains(got, "# "+strings.Repeat("A", 60)+"\n# "+strings.Repeat("A", 60)+"\n# AAAAAAAAAA\n") {
		t.Errorf("sequence not wrapped at 60:\n%s", got)
	}
	for _, want := range []string{"=== Reverse complement ===", "=== Translation (frame 1) ===", "=== ORFs (1) ===", "frame -1  1-9  9 nt  2 aa"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q", want)
		}
	}
}

func TestORFSummary(t *testing.T) {
	got := NewRenderer(&bytes.Buffer{}, DefaultOptions).ORFSummary("chr1", []api.ORFV1{
		{Frame: 1, Length: 9}, {Frame: 1, Length: 30}, {Frame: -2, Length: 12},
	})
	want := "# === chr1: 3 ORFs ===\n# frame +1: 2 ORFs, longest 30 nt\n# frame -2: 1 ORFs, longest 12 nt\n# \n"
	if got != want {
		t.Fatalf("got %q\nwant %q", got, want)
	}
}

func TestDefaultOptions_Stable(t *testing.T) {
	if DefaultOptions.Wrap != 60 || DefaultOptions.NoSequence {
		t.Fatalf("DefaultOptions changed: %+v", DefaultOptions)
	}
}
