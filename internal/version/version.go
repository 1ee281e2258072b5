// Package version holds the release string printed by --version.
package version

// Version can be overridden at build time with
// -ldflags "-X seqlab/internal/version.Version=...".
var Version = "0.3.0"
