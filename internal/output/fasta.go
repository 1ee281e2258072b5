package output

import (
	"fmt"
	"io"
)

// LineWidth is the residue count per FASTA sequence line.
const LineWidth = 60

// WriteORFFASTA writes the protein of every ORF as a FASTA record named
// {id}_orf{n}, n counting from 1 within each record.
func WriteORFFASTA(w io.Writer, list []ORFRecord) error {
	for _, r := range list {
		if err := writeORFFASTA(w, r); err != nil {
			return err
		}
	}
	return nil
}

// StreamORFFASTA is the streaming form of WriteORFFASTA.
func StreamORFFASTA(w io.Writer, in <-chan ORFRecord) error {
	for r := range in {
		if err := writeORFFASTA(w, r); err != nil {
			return err
		}
	}
	return nil
}

func writeORFFASTA(w io.Writer, r ORFRecord) error {
	for _, h := range ToAPIHits(r) {
		if _, err := fmt.Fprintf(w, ">%s_orf%d start=%d end=%d frame=%d len=%d\n",
			h.SequenceID, h.ORFIndex, h.Start, h.End, h.Frame, h.Length,
		); err != nil {
			return err
		}
		if err := writeWrapped(w, h.Protein, LineWidth); err != nil {
			return err
		}
	}
	return nil
}

func writeWrapped(w io.Writer, s string, width int) error {
	for len(s) > width {
		if _, err := io.WriteString(w, s[:width]+"\n"); err != nil {
			return err
		}
		s = s[width:]
	}
	_, err := io.WriteString(w, s+"\n")
	return err
}
