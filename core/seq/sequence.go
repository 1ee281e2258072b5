package seq

// Sequence pairs raw input with its cleaned form and declared alphabet.
// Treat it as a value; nothing in this module mutates one after New.
type Sequence struct {
	Raw      string
	Clean    string
	Alphabet Alphabet
}

// New cleans raw and tags it with a.
func New(raw string, a Alphabet) Sequence {
	return Sequence{Raw: raw, Clean: Clean(raw), Alphabet: a}
}

// Valid reports whether the raw text conforms to the declared alphabet.
func (s Sequence) Valid() bool { return Validate(s.Raw, s.Alphabet) }

func (s Sequence) Len() int { return len(s.Clean) }
