package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmptyPath(t *testing.T) {
	c, err := Load("")
	if err != nil || c == nil || c.Threads != 0 || c.NoMatchExitCode != nil {
		t.Fatalf("Load(\"\") = %+v, %v", c, err)
	}
}

func TestLoadFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "seqlab.json")
	data := `{"threads": 3, "type": "rna", "min_orf": 30, "output": "jsonl", "log_level": "debug", "sort": true, "no_match_exit_code": 0}`
	if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Threads != 3 || c.Type != "rna" || c.MinORF != 30 || c.Output != "jsonl" || c.LogLevel != "debug" || !c.Sort {
		t.Fatalf("unexpected config %+v", c)
	}
	if c.NoMatchExitCode == nil || *c.NoMatchExitCode != 0 {
		t.Fatalf("explicit zero exit code must be kept")
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("missing explicit config must fail")
	}
	p := filepath.Join(t.TempDir(), "bad.json")
	_ = os.WriteFile(p, []byte(`{"threads": 1, "colour": "red"}`), 0o644)
	if _, err := Load(p); err == nil {
		t.Fatal("unknown keys must fail")
	}
}
