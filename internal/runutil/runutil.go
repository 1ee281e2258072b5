// internal/runutil/runutil.go
package runutil

import "runtime"

// EffectiveThreads resolves --threads: values <= 0 mean one worker per CPU.
func EffectiveThreads(threads int) int {
	if threads <= 0 {
		return runtime.NumCPU()
	}
	return threads
}

// WriterBuffer sizes the channel between the collector and a writer.
func WriterBuffer(threads int) int {
	return EffectiveThreads(threads) * 4
}
