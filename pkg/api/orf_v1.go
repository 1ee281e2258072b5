// pkg/api/orf_v1.go
package api

// ORFV1 is one open reading frame. Coordinates are 0-based inclusive on the
// forward strand; frame is 1..3 (forward) or -1..-3 (reverse).
type ORFV1 struct {
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Frame   int    `json:"frame"`
	Strand  string `json:"strand"` // "+" | "-"
	Length  int    `json:"length"`
	Protein string `json:"protein"`
}

// ORFHitV1 is the flattened per-ORF schema written by seqlab-orf.
type ORFHitV1 struct {
	SourceFile  string `json:"sourceFile,omitempty"`
	SequenceID  string `json:"sequenceId"`
	RecordIndex int    `json:"recordIndex"`
	ORFIndex    int    `json:"orfIndex"` // 1-based within the record
	ORFV1
}
