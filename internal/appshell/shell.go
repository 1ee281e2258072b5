// internal/appshell/shell.go
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Tool is an app entry point such as app.RunContext.
type Tool func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// exitCanceled is the shell convention for death by SIGINT.
const exitCanceled = 130

// Main runs tool on the process arguments and exits with its status.
// SIGINT and SIGTERM cancel the tool's context.
func Main(tool Tool) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := Exec(ctx, tool, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// Exec runs tool once. An empty argv shows help; a tool that still reports
// success after ctx was cancelled gets 130.
func Exec(ctx context.Context, tool Tool, argv []string, stdout, stderr io.Writer) int {
	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	code := tool(ctx, argv, stdout, stderr)
	if code == 0 && ctx.Err() != nil {
		return exitCanceled
	}
	return code
}
