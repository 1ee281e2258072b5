// internal/writers/report.go
package writers

import (
	"io"

	"seqlab/internal/common"
	"seqlab/internal/output"
	"seqlab/internal/pretty"
	"seqlab/pkg/api"
)

func init() {
	RegisterReport(output.FormatText, writeReportText)
	RegisterReport(output.FormatJSON, writeReportJSON)
	RegisterReport(output.FormatJSONL, writeReportJSONL)
}

func writeReportText(w io.Writer, in <-chan api.ExportV1, o Options) error {
	var render func(api.ExportV1) string
	if o.Pretty {
		render = pretty.NewRenderer(o.term(w), pretty.DefaultOptions).Report
	}
	if !o.Sort {
		return output.StreamReportText(w, in, o.Header, o.Pretty, render)
	}
	buf := collect(in)
	common.SortReports(buf)
	return output.WriteReportText(w, buf, o.Header, o.Pretty, render)
}

func writeReportJSON(w io.Writer, in <-chan api.ExportV1, o Options) error {
	buf := collect(in)
	if o.Sort {
		common.SortReports(buf)
	}
	return output.WriteReportJSON(w, buf, o.Timestamp)
}

func writeReportJSONL(w io.Writer, in <-chan api.ExportV1, o Options) error {
	if !o.Sort {
		return pumpJSONL(w, in, StartReportJSONLWriter)
	}
	buf := collect(in)
	common.SortReports(buf)
	return pumpSlice(w, buf, StartReportJSONLWriter)
}
