// Package cli implements the tqueue command tree: push, read, stats, and gc
// over a local data directory. Every command opens the runtime (replaying the
// binlog), performs its operation, and closes the store again.
package cli
