package translate

import (
	"strings"
	"testing"

	"github.com/bebop/poly/synthesis/codon"
)

func TestTranslateFrame0(t *testing.T) {
	if got := Translate("ATGGCGTAG", 0); got != "MA*" {
		t.Fatalf("Translate(ATGGCGTAG,0) = %q, want MA*", got)
	}
}

func TestTranslateFramesAndLeftovers(t *testing.T) {
	s := "AATGGCGTAGC" // 11 nt
	cases := []struct {
		frame int
		want  string
	}{
		{0, "NGV"}, // AAT GGC GTA GC
		{1, "MA*"}, // ATG GCG TAG C
		{2, "WRS"}, // TGG CGT AGC
	}
	for _, c := range cases {
		if got := Translate(s, c.frame); got != c.want {
			t.Errorf("Translate(%s,%d) = %q, want %q", s, c.frame, got, c.want)
		}
	}
	if got := Frames(s); got != [3]string{"NGV", "MA*", "WRS"} {
		t.Fatalf("Frames = %v", got)
	}
}

func TestTranslateShortAndInvalidFrames(t *testing.T) {
	for _, c := range []struct {
		s     string
		frame int
	}{{"", 0}, {"AT", 0}, {"ATG", 1}, {"ATGATG", -1}, {"ATGATG", 3}} {
		if got := Translate(c.s, c.frame); got != "" {
			t.Errorf("Translate(%q,%d) = %q, want empty", c.s, c.frame, got)
		}
	}
}

func TestTranslateUnknownCodon(t *testing.T) {
	if got := Translate("ATGAUGNNN", 0); got != "MXX" {
		t.Fatalf("unknown codons should become X, got %q", got)
	}
}

func TestTableShape(t *testing.T) {
	tab := Codons()
	if len(tab) != 64 {
		t.Fatalf("codon table has %d entries, want 64", len(tab))
	}
	stops := 0
	aas := map[byte]bool{}
	for c, aa := range tab {
		if len(c) != 3 || strings.Trim(c, "ACGT") != "" {
			t.Fatalf("bad codon key %q", c)
		}
		if aa == Stop {
			stops++
			continue
		}
		aas[aa] = true
	}
	if stops != 3 || len(aas) != 20 {
		t.Fatalf("want 3 stops and 20 amino acids, got %d and %d", stops, len(aas))
	}
	if aa, ok := Codon("ATG"); !ok || aa != 'M' {
		t.Fatalf("ATG must be M")
	}
	if _, ok := Codon("AUG"); ok {
		t.Fatalf("RNA codons are not in the table")
	}
}

// Compare against poly's NCBI table 1. Each codon is placed after ATG so
// poly's alternative-start handling never applies to it.
func TestTableMatchesPolyStandardCode(t *testing.T) {
	table, err := codon.NewTranslationTable(1)
	if err != nil {
		t.Fatalf("poly table: %v", err)
	}
	for c, aa := range Codons() {
		got, err := table.Translate("ATG" + c)
		if err != nil {
			t.Fatalf("poly translate %s: %v", c, err)
		}
		if len(got) != 2 || got[1] != aa {
			t.Errorf("codon %s: ours %c, poly %q", c, aa, got)
		}
	}
}
