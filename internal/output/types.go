package output

import "seqlab-core/orf"

// ORFRecord is the ORF scan result of one record.
type ORFRecord struct {
	SourceFile  string
	Header      string
	RecordIndex int
	ORFs        []orf.ORF
}

// ID returns the first word of the header.
func (r ORFRecord) ID() string { return firstWord(r.Header) }
