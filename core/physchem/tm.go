package physchem

import "seqlab-core/composition"

// WallaceMaxLen is the length below which the Wallace rule applies.
const WallaceMaxLen = 14

// MeltingTemperature estimates Tm in °C.
//
//	len < 14: Tm = 2*(A+T) + 4*(G+C)                  (Wallace rule)
//	else:     Tm = 64.9 + 41*(GC%/100) - 675/len
//
// Both are empirical shortcuts, not a nearest-neighbour model.
func MeltingTemperature(clean string) float64 {
	n := len(clean)
	if n < WallaceMaxLen {
		var at, gc int
		for i := 0; i < n; i++ {
			switch clean[i] {
			case 'A', 'T':
				at++
			case 'G', 'C':
				gc++
			}
		}
		return float64(2*at + 4*gc)
	}
	return 64.9 + 41*(composition.GCContent(clean)/100) - 675/float64(n)
}
