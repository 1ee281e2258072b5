// internal/jsonutil/json.go
package jsonutil

import (
	"encoding/json"
	"io"
)

// Indent is the per-level indent of pretty output.
const Indent = "  "

// NewEncoder returns an encoder that leaves '<', '>' and '&' literal (FASTA
// headers are full of them). indent "" gives compact one-line values.
func NewEncoder(w io.Writer, indent string) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc
}

// EncodePretty writes v followed by a newline.
func EncodePretty(w io.Writer, v any) error {
	return NewEncoder(w, Indent).Encode(v)
}
