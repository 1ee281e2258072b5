// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"seqlab/pkg/api"
)

// StreamReportText writes one TSV row per bundle as it arrives. With
// prettyMode, render(e) is printed after each row.
func StreamReportText(w io.Writer, in <-chan api.ExportV1, header, prettyMode bool, render func(api.ExportV1) string) error {
	if header {
		if _, err := fmt.Fprintln(w, ReportTSVHeader); err != nil {
			return err
		}
	}
	for e := range in {
		if err := writeReportRow(w, e, prettyMode, render); err != nil {
			return err
		}
	}
	return nil
}

// WriteReportText is the buffered form of StreamReportText.
func WriteReportText(w io.Writer, list []api.ExportV1, header, prettyMode bool, render func(api.ExportV1) string) error {
	if header {
		if _, err := fmt.Fprintln(w, ReportTSVHeader); err != nil {
			return err
		}
	}
	for _, e := range list {
		if err := writeReportRow(w, e, prettyMode, render); err != nil {
			return err
		}
	}
	return nil
}

func writeReportRow(w io.Writer, e api.ExportV1, prettyMode bool, render func(api.ExportV1) string) error {
	if _, err := fmt.Fprintln(w, FormatReportRowTSV(e)); err != nil {
		return err
	}
	if prettyMode && render != nil {
		if _, err := io.WriteString(w, render(e)); err != nil {
			return err
		}
	}
	return nil
}

// WriteORFText writes ORF rows for every record of list.
func WriteORFText(w io.Writer, list []ORFRecord, header, prettyMode bool, render func(ORFRecord) string) error {
	if header {
		if _, err := fmt.Fprintln(w, ORFTSVHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		if err := writeORFRows(w, r, prettyMode, render); err != nil {
			return err
		}
	}
	return nil
}

// StreamORFText is the streaming form of WriteORFText.
func StreamORFText(w io.Writer, in <-chan ORFRecord, header, prettyMode bool, render func(ORFRecord) string) error {
	if header {
		if _, err := fmt.Fprintln(w, ORFTSVHeader); err != nil {
			return err
		}
	}
	for r := range in {
		if err := writeORFRows(w, r, prettyMode, render); err != nil {
			return err
		}
	}
	return nil
}

func writeORFRows(w io.Writer, r ORFRecord, prettyMode bool, render func(ORFRecord) string) error {
	for _, row := range FormatORFRowsTSV(r) {
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	if prettyMode && render != nil {
		if _, err := io.WriteString(w, render(r)); err != nil {
			return err
		}
	}
	return nil
}
