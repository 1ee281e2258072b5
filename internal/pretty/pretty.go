// Package pretty renders human-readable report blocks for --pretty text
// output. Every line starts with "# " so the surrounding TSV stays easy to
// filter (grep -v '^#').
package pretty

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"seqlab/pkg/api"
)

// Options control the rendering.
type Options struct {
	// Residues per sequence line. If <=0, the sequence is printed on one line.
	Wrap int

	// Hide the trailing sequence section.
	NoSequence bool
}

// DefaultOptions matches the plain-text report layout.
var DefaultOptions = Options{Wrap: 60}

const linePrefix = "# "

// Renderer holds styles bound to one output. Colours and bold only appear
// when that output is a terminal.
type Renderer struct {
	opt     Options
	title   lipgloss.Style
	section lipgloss.Style
	label   lipgloss.Style
	bad     lipgloss.Style
}

// NewRenderer builds styles for out.
func NewRenderer(out io.Writer, opt Options) *Renderer {
	r := lipgloss.NewRenderer(out)
	return &Renderer{
		opt:     opt,
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		section: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981")),
		label:   r.NewStyle().Foreground(lipgloss.Color("#9CA3AF")),
		bad:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444")),
	}
}

type block struct {
	b strings.Builder
}

func (k *block) line(s string) {
	k.b.WriteString(linePrefix)
	k.b.WriteString(s)
	k.b.WriteByte('\n')
}

func (r *Renderer) kv(k *block, key, val string) {
	k.line(r.label.Render(key+":") + " " + val)
}

// Report renders one analysed record: basic statistics, the non-zero
// composition with percentages, then the sequence.
func (r *Renderer) Report(e api.ExportV1) string {
	var k block
	k.line(r.title.Render("=== " + e.Header + " ==="))
	r.kv(&k, "Sequence type", strings.ToUpper(e.SequenceType))
	if e.Timestamp != "" {
		r.kv(&k, "Analysed", e.Timestamp)
	}
	a := e.AnalysisResult
	if !e.Valid || a == nil {
		k.line(r.bad.Render("invalid " + e.SequenceType + " sequence"))
		k.line("")
		return k.b.String()
	}

	k.line("")
	k.line(r.section.Render("=== Statistics ==="))
	r.kv(&k, "Length", fmt.Sprint(a.Length))
	if a.GCContent != nil && a.ATContent != nil {
		r.kv(&k, "GC content", fmt.Sprintf("%.2f%%", *a.GCContent))
		r.kv(&k, "AT content", fmt.Sprintf("%.2f%%", *a.ATContent))
	}
	if a.MolecularWeight > 0 {
		r.kv(&k, "Molecular weight", fmt.Sprintf("%.2f Da", a.MolecularWeight))
	}
	if a.MeltingTemperature != nil && *a.MeltingTemperature != 0 {
		r.kv(&k, "Melting temperature", fmt.Sprintf("%.2f°C", *a.MeltingTemperature))
	}

	k.line("")
	k.line(r.section.Render("=== Composition ==="))
	for _, sym := range sortedKeys(a.Composition) {
		n := a.Composition[sym]
		if n <= 0 {
			continue
		}
		k.line(fmt.Sprintf("%s: %d (%.2f%%)", sym, n, 100*float64(n)/float64(a.Length)))
	}

	if e.ReverseComplement != "" {
		k.line("")
		k.line(r.section.Render("=== Reverse complement ==="))
		r.wrapped(&k, e.ReverseComplement)
	}
	if t := e.Translation; t != nil {
		k.line("")
		k.line(r.section.Render(fmt.Sprintf("=== Translation (frame %d) ===", t.Frame)))
		r.wrapped(&k, t.Protein)
	}
	if e.ORFs != nil {
		k.line("")
		k.line(r.section.Render(fmt.Sprintf("=== ORFs (%d) ===", len(e.ORFs))))
		for _, o := range e.ORFs {
			k.line(fmt.Sprintf("frame %+d  %d-%d  %d nt  %d aa", o.Frame, o.Start, o.End, o.Length, len(o.Protein)))
		}
	}

	if !r.opt.NoSequence {
		k.line("")
		k.line(r.section.Render("=== Sequence ==="))
		r.wrapped(&k, a.Sequence)
	}
	k.line("")
	return k.b.String()
}

// ORFSummary renders a per-frame ORF count for one record.
func (r *Renderer) ORFSummary(header string, orfs []api.ORFV1) string {
	var k block
	k.line(r.title.Render(fmt.Sprintf("=== %s: %d ORFs ===", header, len(orfs))))
	counts := map[int]int{}
	longest := map[int]int{}
	for _, o := range orfs {
		counts[o.Frame]++
		if o.Length > longest[o.Frame] {
			longest[o.Frame] = o.Length
		}
	}
	for _, f := range []int{1, 2, 3, -1, -2, -3} {
		if counts[f] == 0 {
			continue
		}
		k.line(fmt.Sprintf("%s %d ORFs, longest %d nt", r.label.Render(fmt.Sprintf("frame %+d:", f)), counts[f], longest[f]))
	}
	k.line("")
	return k.b.String()
}

func (r *Renderer) wrapped(k *block, s string) {
	w := r.opt.Wrap
	if w <= 0 {
		k.line(s)
		return
	}
	for len(s) > w {
		k.line(s[:w])
		s = s[w:]
	}
	k.line(s)
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
