// core/fasta/scanner.go
package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"seqlab-core/seq"
)

// MaxLine bounds a single input line (long single-line sequences are common).
const MaxLine = 64 * 1024 * 1024

// Scanner reads records from a stream with the same rules as Parse.
//
// Until the first record is produced it also keeps the raw text it has
// consumed, so callers can fall back to treating a header-less input as one
// sequence (see Text).
type Scanner struct {
	sc *bufio.Scanner

	header  string
	hasHdr  bool
	body    []byte
	rec     Record
	emitted int
	err     error
	eof     bool

	raw strings.Builder
}

// NewScanner wraps r.
func NewScanner(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), MaxLine)
	return &Scanner{sc: sc, body: make([]byte, 0, 1<<16)}
}

// Scan advances to the next record.
func (s *Scanner) Scan() bool {
	if s.eof || s.err != nil {
		return false
	}
	for s.sc.Scan() {
		line := s.sc.Bytes()
		if s.emitted == 0 {
			if s.raw.Len() > 0 {
				s.raw.WriteByte('\n')
			}
			s.raw.Write(line)
		}
		if len(line) > 0 && line[0] == '>' {
			ok := s.take()
			s.header = string(bytes.TrimSpace(line[1:]))
			s.hasHdr = true
			s.body = s.body[:0]
			if ok {
				return true
			}
			continue
		}
		s.body = append(s.body, bytes.TrimSpace(line)...)
	}
	s.eof = true
	if err := s.sc.Err(); err != nil {
		s.err = fmt.Errorf("fasta scan: %w", err)
		return false
	}
	return s.take()
}

// take moves the pending record into s.rec when it qualifies.
func (s *Scanner) take() bool {
	if !s.hasHdr || s.header == "" || len(s.body) == 0 {
		return false
	}
	s.rec = Record{Header: s.header, Sequence: seq.Clean(string(s.body))}
	s.emitted++
	s.raw.Reset()
	return true
}

// Record returns the record produced by the last successful Scan.
func (s *Scanner) Record() Record { return s.rec }

// Err returns the first read error, if any.
func (s *Scanner) Err() error { return s.err }

// Count reports how many records were produced so far.
func (s *Scanner) Count() int { return s.emitted }

// Text returns the complete input when the stream ended without producing any
// record, and "" otherwise.
func (s *Scanner) Text() string {
	if !s.eof || s.emitted > 0 {
		return ""
	}
	return s.raw.String()
}
