package integration

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"seqlab/internal/app"
)

func TestCtrlC_MidScan_Exit130(t *testing.T) {
	// Many records so the scan is still running when cancel lands.
	var b strings.Builder
	rec := ">r\n" + strings.Repeat("ACGT", 2048) + "\n"
	for i := 0; i < 4000; i++ {
		b.WriteString(rec)
	}
	fn := write(t, "cancel_big.fa", b.String())

	argv := []string{"--orfs", "--min-orf", "3", fn}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	code := app.RunContext(ctx, argv, io.Discard, io.Discard)
	if code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d", code)
	}
}

func TestCanceledBeforeStart(t *testing.T) {
	fn := write(t, "c.fa", ">a\nACGT\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if code := app.RunContext(ctx, []string{fn}, io.Discard, io.Discard); code != 130 {
		t.Fatalf("exit %d, want 130", code)
	}
}
