// Package orf scans all six reading frames of a DNA sequence for open
// reading frames.
//
// Policy: within one frame the scan keeps at most one open start. The first
// 'M' opens it, the next '*' closes it, and any 'M' seen in between is
// ignored. A start with no downstream stop is discarded. This is neither a
// longest-ORF nor an all-candidates search.
package orf

import (
	"seqlab-core/seq"
	"seqlab-core/translate"
)

// DefaultMinLength is the default minimum ORF length in nucleotides.
const DefaultMinLength = 100

// ORF is one hit. Start and End are 0-based inclusive positions on the
// forward strand; Frame is 1..3 for forward frames and -1..-3 for reverse.
// Protein excludes the terminating stop.
type ORF struct {
	Start   int
	End     int
	Frame   int
	Protein string
}

// Len returns End-Start+1.
func (o ORF) Len() int { return o.End - o.Start + 1 }

// Strand returns "+" or "-".
func (o ORF) Strand() string {
	if o.Frame < 0 {
		return "-"
	}
	return "+"
}

// Find returns the ORFs of clean whose coding length (start codon up to, not
// including, the stop) is at least minLen nucleotides. Results come in frame
// order +1, +2, +3, -1, -2, -3, each frame left to right in its own
// translation.
func Find(clean string, minLen int) []ORF {
	var out []ORF
	n := len(clean)
	for frame := 0; frame < 3; frame++ {
		scanFrame(translate.Translate(clean, frame), minLen, func(start, stop int, protein string) {
			out = append(out, ORF{
				Start:   start*3 + frame,
				End:     stop*3 + frame + 2,
				Frame:   frame + 1,
				Protein: protein,
			})
		})
	}
	rc := seq.ReverseComplement(clean)
	for frame := 0; frame < 3; frame++ {
		scanFrame(translate.Translate(rc, frame), minLen, func(start, stop int, protein string) {
			out = append(out, ORF{
				Start:   n - (stop*3 + frame + 2),
				End:     n - (start*3 + frame),
				Frame:   -(frame + 1),
				Protein: protein,
			})
		})
	}
	return out
}

// scanFrame walks one translated frame. start and stop are amino-acid indexes.
func scanFrame(protein string, minLen int, emit func(start, stop int, protein string)) {
	open := -1
	for i := 0; i < len(protein); i++ {
		switch protein[i] {
		case 'M':
			if open < 0 {
				open = i
			}
		case translate.Stop:
			if open < 0 {
				continue
			}
			if (i-open)*3 >= minLen {
				emit(open, i, protein[open:i])
			}
			open = -1
		}
	}
}
