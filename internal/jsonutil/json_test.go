package jsonutil

import (
	"bytes"
	"testing"
)

func TestEncodeKeepsHTMLLiteral(t *testing.T) {
	var b bytes.Buffer
	if err := NewEncoder(&b, "").Encode(map[string]string{"h": "<chr1> & co"}); err != nil {
		t.Fatal(err)
	}
	if got := b.String(); got != "{\"h\":\"<chr1> & co\"}\n" {
		t.Fatalf("compact = %q", got)
	}
}

func TestEncodePrettyIndents(t *testing.T) {
	var b bytes.Buffer
	if err := EncodePretty(&b, map[string]int{"n": 1}); err != nil {
		t.Fatal(err)
	}
	if got := b.String(); got != "{\n  \"n\": 1\n}\n" {
		t.Fatalf("pretty = %q", got)
	}
}
