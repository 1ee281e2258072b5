// Package writers turns analysis results into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (pretty blocks, TSV, JSON/JSONL/FASTA).
//   - Core packages stay domain-only; pipeline stays orchestration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
