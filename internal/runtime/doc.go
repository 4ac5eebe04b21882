// Package runtime wires storage, binlog, and the event queue engine into a
// single-node instance. It exposes Open/Close, a basic health check, and the
// Engine accessor used by embedding code and the CLI.
//
// Example:
//
//	cfg := config.Default()
//	rt, _ := runtime.Open(runtime.Options{DataDir: "./data", Sync: pebblestore.SyncAlways, Config: cfg})
//	defer rt.Close()
//	_ = rt.CheckHealth(context.Background())
//	id, _ := rt.Engine().Push(12, []byte("hello"), expiresAtMs)
//
// Open replays the persisted binlog into a fresh engine through the normal
// push path, so a restarted process resumes exactly where the log left off.
// The runtime inherits the engine's single-owner discipline: one logical
// actor issues operations sequentially.
package runtime
