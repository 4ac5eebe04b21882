// Package binlog implements the durable append-only log behind the event
// queue engine, and the storage adapter that connects the two.
//
// # Overview
//
// A Binlog is a named sequence of opaque records persisted in Pebble. Keys are
// lexicographically ordered so a full scan replays records in append order:
//   - bl/{name}/m           (metadata: last appended sequence)
//   - bl/{name}/e/{seq_be8} (records)
//
// Records are framed as payload | crc32c(payload); a frame failing its
// checksum aborts iteration.
//
// API surface (internal)
//
//	bl, _ := binlog.Open(db, "tqueue")
//	seq, _ := bl.Append(ctx, payload)
//	_ = bl.ForEach(func(seq uint64, payload []byte) error { ... })
//
// Storage adapts a Binlog to the engine's Callback capability: every push is
// serialized into one record and appended synchronously; Replay scans the log
// from the start and reissues each record through the engine's normal push
// path. A record that cannot be parsed or applied aborts the whole replay.
package binlog
