// core/fasta/stream.go
package fasta

import (
	"context"
	"path/filepath"
	"strings"
)

// StreamPathCtx opens path and emits every record in input order.
// Cancellation via ctx is checked between records.
//
// A file holding no FASTA record is emitted as a single Whole record carrying
// the raw text, blank or not, named after the file's base name without
// extension ("stdin" for "-", UnnamedHeader when that leaves nothing).
//
// emit may return a non-nil error to stop early; it is returned unchanged.
func StreamPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()

	sc := NewScanner(rc)
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := emit(sc.Record()); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	if sc.Count() > 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	name := BaseName(path)
	if name == "" {
		name = UnnamedHeader
	}
	return emit(Record{Header: name, Sequence: sc.Text(), Whole: true})
}

// UnnamedHeader names a Whole record whose file name is all extension.
const UnnamedHeader = "sequence1"

// BaseName is the file name of path without directory or last extension.
// A dot-file such as ".hidden" is all extension and yields "". A trailing
// lone dot is not an extension.
func BaseName(path string) string {
	if path == "-" {
		return "stdin"
	}
	b := filepath.Base(path)
	if ext := filepath.Ext(b); len(ext) > 1 {
		b = strings.TrimSuffix(b, ext)
	}
	return b
}
