package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

func writeFA(t *testing.T, name, data string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestForEach_ItemsCarryProvenance(t *testing.T) {
	a := writeFA(t, "a.fa", ">a1\nACGT\n>a2\nGG\n")
	b := writeFA(t, "b.txt", "ttgca\n")

	var got []string
	err := ForEach(context.Background(), Config{Threads: 4}, []string{a, b},
		func(it Item) (string, error) {
			return strings.Join([]string{
				filepath.Base(it.SourceFile), it.Record.Header,
				string(rune('0' + it.FileIndex)), string(rune('0' + it.RecordIndex)),
			}, "|"), nil
		},
		func(s string) error { got = append(got, s); return nil },
	)
	if err != nil {
		t.Fatalf("pipeline err: %v", err)
	}
	sort.Strings(got)
	want := []string{"a.fa|a1|0|0", "a.fa|a2|0|1", "b.txt|b|1|0"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestForEach_MissingFileDoesNotStopOthers(t *testing.T) {
	a := writeFA(t, "a.fa", ">a\nACGT\n")
	missing := filepath.Join(t.TempDir(), "nope.fa")
	n := 0
	err := ForEach(context.Background(), Config{Threads: 2}, []string{missing, a},
		func(it Item) (int, error) { return 1, nil },
		func(int) error { n++; return nil },
	)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("want ErrNotExist, got %v", err)
	}
	if n != 1 {
		t.Fatalf("remaining file should still be processed, n=%d", n)
	}
}

func TestForEach_WorkErrorReturned(t *testing.T) {
	a := writeFA(t, "a.fa", ">a\nACGT\n>b\nAC\n")
	boom := errors.New("boom")
	err := ForEach(context.Background(), Config{Threads: 1}, []string{a},
		func(it Item) (int, error) { return 0, boom },
		func(int) error { return nil },
	)
	if !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}
}

func TestForEach_Canceled(t *testing.T) {
	a := writeFA(t, "a.fa", ">a\nACGT\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := ForEach(ctx, Config{}, []string{a},
		func(it Item) (int, error) { return 1, nil },
		func(int) error { return nil },
	)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}
