// internal/output/rows.go
package output

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"seqlab/pkg/api"
)

// CompositionCSV renders counts as "A:3,C:1" with keys sorted; zero counts
// are skipped.
func CompositionCSV(c map[string]int) string {
	keys := make([]string, 0, len(c))
	for k, v := range c {
		if v > 0 {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ":" + strconv.Itoa(c[k])
	}
	return strings.Join(parts, ",")
}

func fixed2(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

func optFixed2(p *float64) string {
	if p == nil {
		return ""
	}
	return fixed2(*p)
}

// FormatReportRowTSV returns the ReportTSVHeader columns for e (no trailing newline).
// Columns that do not apply are left empty.
func FormatReportRowTSV(e api.ExportV1) string {
	var length, mw, gc, at, tm, comp string
	if a := e.AnalysisResult; a != nil {
		length = strconv.Itoa(a.Length)
		mw = fixed2(a.MolecularWeight)
		gc, at, tm = optFixed2(a.GCContent), optFixed2(a.ATContent), optFixed2(a.MeltingTemperature)
		comp = CompositionCSV(a.Composition)
	}
	translation := ""
	if e.Translation != nil {
		translation = e.Translation.Protein
	}
	orfs := ""
	if e.ORFs != nil {
		orfs = strconv.Itoa(len(e.ORFs))
	}
	return strings.Join([]string{
		e.SourceFile, firstWord(e.Header), strconv.Itoa(e.RecordIndex),
		e.SequenceType, strconv.FormatBool(e.Valid),
		length, gc, at, mw, tm, comp,
		e.ReverseComplement, translation, orfs,
	}, "\t")
}

// FormatORFRowsTSV returns one ORFTSVHeader row per ORF of r.
func FormatORFRowsTSV(r ORFRecord) []string {
	rows := make([]string, 0, len(r.ORFs))
	for _, h := range ToAPIHits(r) {
		rows = append(rows, fmt.Sprintf("%s\t%s\t%d\t%d\t%d\t%d\t%d\t%s\t%d\t%s",
			h.SourceFile, h.SequenceID, h.RecordIndex, h.ORFIndex,
			h.Start, h.End, h.Frame, h.Strand, h.Length, h.Protein,
		))
	}
	return rows
}

func firstWord(s string) string {
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i]
	}
	return s
}
