package visitors

import (
	"github.com/charmbracelet/log"

	"seqlab-core/orf"
	"seqlab-core/seq"
	"seqlab/internal/output"
	"seqlab/internal/pipeline"
)

// ORFScan runs the six-frame scan on valid DNA records. Other records are
// skipped with a warning; records without ORFs are dropped.
type ORFScan struct {
	MinLen int
	Logger *log.Logger
}

func (v ORFScan) Visit(it pipeline.Item) (bool, output.ORFRecord, error) {
	rec := it.Record
	if !seq.ValidateDNA(rec.Sequence) {
		if v.Logger != nil {
			v.Logger.Warn("skipping non-DNA record", "file", it.SourceFile, "record", rec.ID())
		}
		return false, output.ORFRecord{}, nil
	}
	if rec.Whole && v.Logger != nil {
		v.Logger.Warn("no FASTA header found; treating file as one sequence", "file", it.SourceFile, "name", rec.Header)
	}
	orfs := orf.Find(seq.Clean(rec.Sequence), v.MinLen)
	if v.Logger != nil {
		v.Logger.Debug("scanned", "file", it.SourceFile, "record", rec.ID(), "orfs", len(orfs))
	}
	if len(orfs) == 0 {
		return false, output.ORFRecord{}, nil
	}
	return true, output.ORFRecord{
		SourceFile:  it.SourceFile,
		Header:      rec.Header,
		RecordIndex: it.RecordIndex,
		ORFs:        orfs,
	}, nil
}

func (ORFScan) Hit(r output.ORFRecord) bool { return len(r.ORFs) > 0 }
