// pkg/api/export_v1.go
package api

// ExportV1 is the stable JSON/JSONL schema for one analysed record.
// The first four fields are the export bundle; keep their names and types
// stable. Add new fields only with ",omitempty" (recordIndex and valid are
// always written so that zero values stay visible).
type ExportV1 struct {
	Sequence       string      `json:"sequence"` // record text as read
	SequenceType   string      `json:"sequenceType"` // "dna" | "rna" | "protein"
	AnalysisResult *AnalysisV1 `json:"analysisResult"`
	Timestamp      string      `json:"timestamp"` // RFC 3339, UTC

	Header            string         `json:"header,omitempty"`
	SourceFile        string         `json:"sourceFile,omitempty"`
	RecordIndex       int            `json:"recordIndex"`
	Valid             bool           `json:"valid"`
	ReverseComplement string         `json:"reverseComplement,omitempty"`
	Translation       *TranslationV1 `json:"translation,omitempty"`
	ORFs              []ORFV1        `json:"orfs,omitempty"`
}

// AnalysisV1 carries either a nucleotide or a protein analysis. GC/AT and
// Tm are absent for proteins; Tm is absent for empty sequences.
type AnalysisV1 struct {
	Sequence           string         `json:"sequence"`
	Length             int            `json:"length"`
	GCContent          *float64       `json:"gcContent,omitempty"`
	ATContent          *float64       `json:"atContent,omitempty"`
	Composition        map[string]int `json:"composition"`
	MolecularWeight    float64        `json:"molecularWeight"`
	MeltingTemperature *float64       `json:"meltingTemperature,omitempty"`
}

// TranslationV1 is a single-frame translation.
type TranslationV1 struct {
	Frame   int    `json:"frame"` // 0..2
	Protein string `json:"protein"`
}
