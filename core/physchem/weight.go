// core/physchem/weight.go
// Average-residue molecular weights in daltons. Terminal groups and the water
// lost per bond are ignored, so results are approximations.
package physchem

var (
	dnaMass [256]float64
	rnaMass [256]float64
	aaMass  [256]float64
)

func init() {
	dnaMass['A'], dnaMass['T'], dnaMass['G'], dnaMass['C'] = 331.2, 322.2, 347.2, 307.2
	rnaMass['A'], rnaMass['U'], rnaMass['G'], rnaMass['C'] = 331.2, 308.2, 347.2, 307.2

	for aa, m := range map[byte]float64{
		'A': 89.1, 'R': 174.2, 'N': 132.1, 'D': 133.1, 'C': 121.2,
		'E': 147.1, 'Q': 146.2, 'G': 75.1, 'H': 155.2, 'I': 131.2,
		'L': 131.2, 'K': 146.2, 'M': 149.2, 'F': 165.2, 'P': 115.1,
		'S': 105.1, 'T': 119.1, 'W': 204.2, 'Y': 181.2, 'V': 117.1,
	} {
		aaMass[aa] = m
	}
}

// NucleotideWeight sums per-base masses over clean. With isRNA, U is weighed
// and T contributes nothing; without it the reverse holds.
func NucleotideWeight(clean string, isRNA bool) float64 {
	tab := &dnaMass
	if isRNA {
		tab = &rnaMass
	}
	return sum(clean, tab)
}

// ProteinWeight sums average amino-acid masses over clean. Symbols outside
// the 20 standard residues ('*' included) weigh nothing.
func ProteinWeight(clean string) float64 {
	return sum(clean, &aaMass)
}

func sum(s string, tab *[256]float64) float64 {
	var w float64
	for i := 0; i < len(s); i++ {
		w += tab[s[i]]
	}
	return w
}
