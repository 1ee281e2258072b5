// internal/common/sort.go
package common

import (
	"sort"

	"seqlab/internal/output"
	"seqlab/pkg/api"
)

// lessSource orders by source file, then record index.
func lessSource(fa string, ia int, fb string, ib int) bool {
	if fa != fb {
		return fa < fb
	}
	return ia < ib
}

// SortReports orders bundles by (SourceFile, RecordIndex) for --sort.
func SortReports(list []api.ExportV1) {
	sort.SliceStable(list, func(i, j int) bool {
		return lessSource(list[i].SourceFile, list[i].RecordIndex, list[j].SourceFile, list[j].RecordIndex)
	})
}

// SortORFRecords orders ORF records the same way; ORFs inside a record keep
// their scan order.
func SortORFRecords(list []output.ORFRecord) {
	sort.SliceStable(list, func(i, j int) bool {
		return lessSource(list[i].SourceFile, list[i].RecordIndex, list[j].SourceFile, list[j].RecordIndex)
	})
}
