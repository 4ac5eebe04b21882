// Package pebblestore wraps Pebble with a fixed fsync policy, batch helpers,
// and an optional metrics hook.
//
// Usage:
//
//	db, err := pebblestore.Open(pebblestore.Options{
//	    Dir:  "./data",
//	    Sync: pebblestore.SyncAlways,
//	})
//	if err != nil { /* handle */ }
//	defer db.Close()
//
//	b := db.NewBatch()
//	_ = b.Set([]byte("k"), []byte("v"), nil)
//	_ = db.CommitBatch(context.Background(), b)
//	b.Close()
//
// The durable binlog commits every append through this wrapper so that
// sync-to-disk behavior is decided in one place.
package pebblestore
