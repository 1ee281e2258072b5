package api

// BatchV1 is the --output json document: every bundle of a run together
// with its totals. ExportDate is the run timestamp shared by the bundles.
type BatchV1 struct {
	Sequences      []ExportV1 `json:"sequences"`
	TotalSequences int        `json:"totalSequences"`
	ValidSequences int        `json:"validSequences"`
	ExportDate     string     `json:"exportDate"`
}
