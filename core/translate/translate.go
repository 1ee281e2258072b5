// Package translate turns DNA into protein using the standard genetic code.
package translate

// Translate reads non-overlapping codons of clean starting at frame (0, 1 or 2)
// and returns one amino-acid letter per codon, '*' for stops and 'X' for codons
// the table does not know. Trailing bases that do not fill a codon are dropped.
// Any other frame yields "".
func Translate(clean string, frame int) string {
	if frame < 0 || frame > 2 || len(clean)-frame < 3 {
		return ""
	}
	out := make([]byte, 0, (len(clean)-frame)/3)
	for i := frame; i+3 <= len(clean); i += 3 {
		aa, ok := standard[clean[i:i+3]]
		if !ok {
			aa = Unknown
		}
		out = append(out, aa)
	}
	return string(out)
}

// Frames translates clean in all three forward frames.
func Frames(clean string) [3]string {
	return [3]string{Translate(clean, 0), Translate(clean, 1), Translate(clean, 2)}
}
