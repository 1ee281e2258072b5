// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"seqlab/internal/jsonlutil"
	"seqlab/internal/output"
	"seqlab/pkg/api"
)

// StartReportJSONLWriter streams each bundle as one JSON line (v1).
func StartReportJSONLWriter(out io.Writer, bufSize int) (chan<- api.ExportV1, <-chan error) {
	return jsonlutil.Start[api.ExportV1](out, bufSize,
		func(enc *json.Encoder, e api.ExportV1) error {
			return enc.Encode(e)
		},
		IsBrokenPipe,
	)
}

// StartORFJSONLWriter streams one JSON line per ORF (v1), flattening records.
func StartORFJSONLWriter(out io.Writer, bufSize int) (chan<- output.ORFRecord, <-chan error) {
	return jsonlutil.Start[output.ORFRecord](out, bufSize,
		func(enc *json.Encoder, r output.ORFRecord) error {
			for _, h := range output.ToAPIHits(r) {
				if err := enc.Encode(h); err != nil {
					return err
				}
			}
			return nil
		},
		IsBrokenPipe,
	)
}

// pumpJSONL forwards in to a JSONL writer started with startFn.
func pumpJSONL[T any](w io.Writer, in <-chan T, startFn func(io.Writer, int) (chan<- T, <-chan error)) error {
	dst, done := startFn(w, cap(in))
	for v := range in {
		dst <- v
	}
	close(dst)
	return <-done
}

func pumpSlice[T any](w io.Writer, list []T, startFn func(io.Writer, int) (chan<- T, <-chan error)) error {
	dst, done := startFn(w, len(list))
	for _, v := range list {
		dst <- v
	}
	close(dst)
	return <-done
}
