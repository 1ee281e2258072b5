// Package composition counts residues and derives GC/AT content.
package composition

import "seqlab-core/seq"

// Composition maps a one-letter symbol to its count.
type Composition map[string]int

// Total sums all counts.
func (c Composition) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Nucleotide counts A, T, G, C and U in clean. All five keys are always
// present; any other symbol is ignored.
func Nucleotide(clean string) Composition {
	var a, t, g, c, u int
	for i := 0; i < len(clean); i++ {
		switch clean[i] {
		case 'A':
			a++
		case 'T':
			t++
		case 'G':
			g++
		case 'C':
			c++
		case 'U':
			u++
		}
	}
	return Composition{"A": a, "T": t, "G": g, "C": c, "U": u}
}

// Protein counts every distinct symbol that occurs in clean, '*' included.
func Protein(clean string) Composition {
	var counts [256]int
	for i := 0; i < len(clean); i++ {
		counts[clean[i]]++
	}
	out := make(Composition)
	for b, n := range counts {
		if n > 0 {
			out[string(rune(b))] = n
		}
	}
	return out
}

// Of dispatches on the alphabet.
func Of(clean string, a seq.Alphabet) Composition {
	if a == seq.Protein {
		return Protein(clean)
	}
	return Nucleotide(clean)
}

// GCContent is 100 * (G+C) / len(clean), or 0 for an empty sequence.
func GCContent(clean string) float64 {
	return percentOf(clean, 'G', 'C')
}

// ATContent is 100 * (A+T) / len(clean), or 0 for an empty sequence.
func ATContent(clean string) float64 {
	return percentOf(clean, 'A', 'T')
}

func percentOf(clean string, x, y byte) float64 {
	if len(clean) == 0 {
		return 0
	}
	n := 0
	for i := 0; i < len(clean); i++ {
		if c := clean[i]; c == x || c == y {
			n++
		}
	}
	return 100 * float64(n) / float64(len(clean))
}
