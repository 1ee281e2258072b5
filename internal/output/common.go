package output

// Output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatFASTA = "fasta"
)

// ReportTSVHeader is the header row for seqlab text output.
// Keep this as the single source of truth; all writers should use it.
const ReportTSVHeader = "source_file\tsequence_id\trecord\ttype\tvalid\tlength\tgc_content\tat_content\tmolecular_weight\tmelting_temp\tcomposition\treverse_complement\ttranslation\torfs"

// ORFTSVHeader is the header row for seqlab-orf text output.
const ORFTSVHeader = "source_file\tsequence_id\trecord\torf\tstart\tend\tframe\tstrand\tlength\tprotein"
