// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"seqlab-core/fasta"
)

// Config controls the pipeline.
type Config struct {
	Threads int // number of worker goroutines (>=1)
}

// Item is one record together with where it came from.
type Item struct {
	Record      fasta.Record
	SourceFile  string
	FileIndex   int // position of SourceFile in the input list
	RecordIndex int // 0-based position of the record within its file
}

// ForEach reads records from seqFiles in order, runs work on them across
// cfg.Threads workers and calls visit with every result. Result order across
// records is not defined.
//
// A file that cannot be opened or read does not stop the others; the first
// such error is returned at the end. An error from work or visit stops
// further visits and is returned, as is context cancellation.
func ForEach[T any](
	ctx context.Context,
	cfg Config,
	seqFiles []string,
	work func(Item) (T, error),
	visit func(T) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}

	type result struct {
		v   T
		err error
	}
	jobs := make(chan Item, cfg.Threads*2)
	results := make(chan result, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case it, ok := <-jobs:
					if !ok {
						return
					}
					v, err := work(it)
					select {
					case results <- result{v: v, err: err}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for r := range results {
			if cerr != nil {
				continue
			}
			if r.err != nil {
				cerr = r.err
				continue
			}
			if err := visit(r.v); err != nil {
				cerr = err
			}
		}
	}()

	// Feed work
	var ferr error
	for fi, fa := range seqFiles {
		ri := 0
		err := fasta.StreamPathCtx(ctx, fa, func(rec fasta.Record) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case jobs <- Item{Record: rec, SourceFile: fa, FileIndex: fi, RecordIndex: ri}:
			}
			ri++
			return nil
		})
		if ctx.Err() != nil {
			break
		}
		if err != nil && ferr == nil {
			// Keep scanning other files; first error will be returned.
			ferr = err
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if cerr != nil {
		return cerr
	}
	return ferr
}
