// internal/visitors/analyze.go
package visitors

import (
	"github.com/charmbracelet/log"

	"seqlab-core/analysis"
	"seqlab-core/orf"
	"seqlab-core/seq"
	"seqlab-core/translate"
	"seqlab/internal/output"
	"seqlab/internal/pipeline"
	"seqlab/pkg/api"
)

// Analyze turns one record into an export bundle.
//
// Type "auto" (or "") detects the alphabet per record; otherwise it names the
// alphabet every record is checked against. Invalid records are kept with
// Valid=false and no analysis. The bundle's Sequence is the record text as
// read; the cleaned form lives in AnalysisResult. RevComp, Translate (frame 0..2, -1 = off) and
// ORFs apply to valid DNA records only.
type Analyze struct {
	Type      string
	RevComp   bool
	Translate int
	ORFs      bool
	MinORF    int
	Timestamp string
	Logger    *log.Logger
}

// Visit analyses it. It never drops a record.
func (v Analyze) Visit(it pipeline.Item) (bool, api.ExportV1, error) {
	rec := it.Record
	if rec.Whole && v.Logger != nil {
		v.Logger.Warn("no FASTA header found; treating file as one sequence", "file", it.SourceFile, "name", rec.Header)
	}

	alpha, err := v.alphabet(rec.Sequence)
	if err != nil {
		return false, api.ExportV1{}, err
	}
	s := seq.New(rec.Sequence, alpha)
	e := api.ExportV1{
		Sequence:     rec.Sequence,
		SequenceType: alpha.String(),
		Timestamp:    v.Timestamp,
		Header:       rec.Header,
		SourceFile:   it.SourceFile,
		RecordIndex:  it.RecordIndex,
		Valid:        s.Valid(),
	}
	if !e.Valid {
		if v.Logger != nil {
			v.Logger.Warn("invalid sequence", "file", it.SourceFile, "record", rec.ID(), "type", e.SequenceType)
		}
		return true, e, nil
	}

	e.AnalysisResult = output.ToAPIAnalysis(analysis.Analyze(s))
	if alpha == seq.DNA {
		if v.RevComp {
			e.ReverseComplement = seq.ReverseComplement(s.Clean)
		}
		if v.Translate >= 0 {
			e.Translation = &api.TranslationV1{Frame: v.Translate, Protein: translate.Translate(s.Clean, v.Translate)}
		}
		if v.ORFs {
			e.ORFs = output.ToAPIORFs(orf.Find(s.Clean, v.MinORF))
			if e.ORFs == nil {
				e.ORFs = []api.ORFV1{}
			}
		}
	}
	if v.Logger != nil {
		v.Logger.Debug("analysed", "file", it.SourceFile, "record", rec.ID(), "type", e.SequenceType, "length", e.AnalysisResult.Length)
	}
	return true, e, nil
}

// Hit reports whether e counts as a result for the no-match exit code.
func (Analyze) Hit(e api.ExportV1) bool { return e.Valid }

func (v Analyze) alphabet(text string) (seq.Alphabet, error) {
	if v.Type == "" || v.Type == "auto" {
		a, _ := seq.Detect(text)
		return a, nil
	}
	return seq.ParseAlphabet(v.Type)
}
