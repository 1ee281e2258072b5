// core/seq/clean.go
package seq

import (
	"unicode"
	"unicode/utf8"
)

// Clean drops every byte that is not an ASCII letter and upper-cases the rest.
// Digits, punctuation, whitespace and line breaks all disappear.
func Clean(raw string) string {
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c >= 'A' && c <= 'Z':
			out = append(out, c)
		case c >= 'a' && c <= 'z':
			out = append(out, c-'a'+'A')
		}
	}
	return string(out)
}

// Validate checks raw (not pre-cleaned) text against alphabet a.
// Unicode whitespace (including no-break and em spaces, and the BOM) is
// tolerated anywhere; any other rune outside the alphabet, digits included,
// rejects the input. Blank input is never valid.
func Validate(raw string, a Alphabet) bool {
	set := a.table()
	n := 0
	for _, r := range raw {
		if isSpace(r) {
			continue
		}
		if r >= utf8.RuneSelf {
			return false
		}
		c := byte(r)
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if !set[c] {
			return false
		}
		n++
	}
	return n > 0
}

func ValidateDNA(raw string) bool     { return Validate(raw, DNA) }
func ValidateRNA(raw string) bool     { return Validate(raw, RNA) }
func ValidateProtein(raw string) bool { return Validate(raw, Protein) }

// Detect guesses the alphabet of raw by trying DNA, then RNA, then Protein.
// When nothing validates it falls back to DNA and reports ok=false.
func Detect(raw string) (a Alphabet, ok bool) {
	for _, cand := range []Alphabet{DNA, RNA, Protein} {
		if Validate(raw, cand) {
			return cand, true
		}
	}
	return DNA, false
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
