// internal/output/api_conv.go
package output

import (
	"seqlab-core/analysis"
	"seqlab-core/orf"
	"seqlab/pkg/api"
)

// ToAPIAnalysis converts an analysis result to the v1 wire schema.
// It returns nil when neither side of r is set.
func ToAPIAnalysis(r analysis.Result) *api.AnalysisV1 {
	switch {
	case r.Nucleotide != nil:
		n := r.Nucleotide
		gc, at := n.GCContent, n.ATContent
		return &api.AnalysisV1{
			Sequence:           n.Sequence,
			Length:             n.Length,
			GCContent:          &gc,
			ATContent:          &at,
			Composition:        map[string]int(n.Composition),
			MolecularWeight:    n.MolecularWeight,
			MeltingTemperature: n.MeltingTemperature,
		}
	case r.Protein != nil:
		p := r.Protein
		return &api.AnalysisV1{
			Sequence:        p.Sequence,
			Length:          p.Length,
			Composition:     map[string]int(p.Composition),
			MolecularWeight: p.MolecularWeight,
		}
	}
	return nil
}

// ToAPIORF converts one ORF.
func ToAPIORF(o orf.ORF) api.ORFV1 {
	return api.ORFV1{
		Start:   o.Start,
		End:     o.End,
		Frame:   o.Frame,
		Strand:  o.Strand(),
		Length:  o.Len(),
		Protein: o.Protein,
	}
}

// ToAPIORFs converts a slice, preserving order. nil stays nil.
func ToAPIORFs(list []orf.ORF) []api.ORFV1 {
	if list == nil {
		return nil
	}
	out := make([]api.ORFV1, 0, len(list))
	for _, o := range list {
		out = append(out, ToAPIORF(o))
	}
	return out
}

// ToAPIHits flattens an ORF record into per-ORF wire rows (1-based orfIndex).
func ToAPIHits(r ORFRecord) []api.ORFHitV1 {
	out := make([]api.ORFHitV1, 0, len(r.ORFs))
	for i, o := range r.ORFs {
		out = append(out, api.ORFHitV1{
			SourceFile:  r.SourceFile,
			SequenceID:  r.ID(),
			RecordIndex: r.RecordIndex,
			ORFIndex:    i + 1,
			ORFV1:       ToAPIORF(o),
		})
	}
	return out
}
