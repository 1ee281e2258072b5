// Package pipeline streams FASTA records through a pool of workers and hands
// each worker result to a single collector callback.
//
// Workers run the per-record work function concurrently; visit is always
// called from one goroutine, so callers need no locking there.
package pipeline
