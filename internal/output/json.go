// internal/output/json.go
package output

import (
	"io"

	"seqlab/internal/jsonutil"
	"seqlab/pkg/api"
)

// NewBatch wraps list with its total and valid counts. A nil list becomes
// an empty one so "sequences" is never null.
func NewBatch(list []api.ExportV1, exportDate string) api.BatchV1 {
	if list == nil {
		list = []api.ExportV1{}
	}
	valid := 0
	for _, e := range list {
		if e.Valid {
			valid++
		}
	}
	return api.BatchV1{
		Sequences:      list,
		TotalSequences: len(list),
		ValidSequences: valid,
		ExportDate:     exportDate,
	}
}

// WriteReportJSON writes list as one pretty-indented BatchV1 document.
func WriteReportJSON(w io.Writer, list []api.ExportV1, exportDate string) error {
	return jsonutil.EncodePretty(w, NewBatch(list, exportDate))
}

// WriteORFJSON writes all ORFs of list as one flat JSON array.
func WriteORFJSON(w io.Writer, list []ORFRecord) error {
	hits := []api.ORFHitV1{}
	for _, r := range list {
		hits = append(hits, ToAPIHits(r)...)
	}
	return jsonutil.EncodePretty(w, hits)
}
