// internal/writers/orf.go
package writers

import (
	"io"

	"seqlab/internal/common"
	"seqlab/internal/output"
	"seqlab/internal/pretty"
)

func init() {
	RegisterORF(output.FormatText, writeORFText)
	RegisterORF(output.FormatJSON, writeORFJSON)
	RegisterORF(output.FormatJSONL, writeORFJSONL)
	RegisterORF(output.FormatFASTA, writeORFFASTA)
}

func orfRenderer(w io.Writer, o Options) func(output.ORFRecord) string {
	if !o.Pretty {
		return nil
	}
	r := pretty.NewRenderer(o.term(w), pretty.DefaultOptions)
	return func(rec output.ORFRecord) string {
		return r.ORFSummary(rec.Header, output.ToAPIORFs(rec.ORFs))
	}
}

func writeORFText(w io.Writer, in <-chan output.ORFRecord, o Options) error {
	render := orfRenderer(w, o)
	if !o.Sort {
		return output.StreamORFText(w, in, o.Header, o.Pretty, render)
	}
	buf := collect(in)
	common.SortORFRecords(buf)
	return output.WriteORFText(w, buf, o.Header, o.Pretty, render)
}

func writeORFJSON(w io.Writer, in <-chan output.ORFRecord, o Options) error {
	buf := collect(in)
	if o.Sort {
		common.SortORFRecords(buf)
	}
	return output.WriteORFJSON(w, buf)
}

func writeORFJSONL(w io.Writer, in <-chan output.ORFRecord, o Options) error {
	if !o.Sort {
		return pumpJSONL(w, in, StartORFJSONLWriter)
	}
	buf := collect(in)
	common.SortORFRecords(buf)
	return pumpSlice(w, buf, StartORFJSONLWriter)
}

func writeORFFASTA(w io.Writer, in <-chan output.ORFRecord, o Options) error {
	if !o.Sort {
		return output.StreamORFFASTA(w, in)
	}
	buf := collect(in)
	common.SortORFRecords(buf)
	return output.WriteORFFASTA(w, buf)
}
