// core/seq/revcomp.go
package seq

var complement [256]byte

func init() {
	for i := range complement {
		complement[i] = byte(i)
	}
	for _, p := range []string{"AT", "TA", "GC", "CG", "at", "ta", "gc", "cg"} {
		complement[p[0]] = p[1]
	}
}

// ReverseComplement reverses s and swaps A<->T, G<->C.
// Bytes without a Watson–Crick partner (U included) are copied unchanged.
func ReverseComplement(s string) string {
	n := len(s)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complement[s[n-1-i]]
	}
	return string(out)
}
