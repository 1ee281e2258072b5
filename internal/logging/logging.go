// internal/logging/logging.go
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Options select the logger's verbosity. Verbose wins over Quiet, and both
// win over Level.
type Options struct {
	Prefix  string
	Level   string // debug | info | warn | error; "" means info
	Verbose bool
	Quiet   bool
}

// New returns a leveled key/value logger writing to w (normally stderr).
func New(w io.Writer, o Options) (*log.Logger, error) {
	lvl, err := ParseLevel(o.Level)
	if err != nil {
		return nil, err
	}
	switch {
	case o.Verbose:
		lvl = log.DebugLevel
	case o.Quiet:
		lvl = log.ErrorLevel
	}
	l := log.NewWithOptions(w, log.Options{
		Prefix:          o.Prefix,
		Level:           lvl,
		ReportTimestamp: false,
	})
	return l, nil
}

// ParseLevel accepts debug, info, warn (or warning) and error, case-insensitively.
func ParseLevel(s string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return log.InfoLevel, nil
	case "debug":
		return log.DebugLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	}
	return log.InfoLevel, fmt.Errorf("invalid log level %q; allowed: debug info warn error", s)
}

// Discard is a logger that drops everything; handy in tests.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
