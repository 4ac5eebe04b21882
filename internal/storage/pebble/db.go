package pebblestore

import (
	"context"
	"errors"
	"time"

	"github.com/cockroachdb/pebble"
)

// SyncMode selects when committed writes are fsynced to the WAL.
type SyncMode int

const (
	// SyncAlways fsyncs on every committed batch.
	SyncAlways SyncMode = iota
	// SyncInterval lets Pebble coalesce WAL syncs within SyncEvery.
	SyncInterval
	// SyncNever leaves syncing to Pebble's own policies. Trades durability
	// for throughput.
	SyncNever
)

// ErrNotFound is returned by Get for missing keys.
var ErrNotFound = pebble.ErrNotFound

// Options configures the wrapper.
type Options struct {
	// Dir is the Pebble database directory.
	Dir string
	// Sync selects the WAL fsync policy.
	Sync SyncMode
	// SyncEvery is the group-commit window when Sync == SyncInterval.
	SyncEvery time.Duration
	// Tuning allows advanced Pebble configuration. Nil uses defaults.
	Tuning *pebble.Options
	// Metrics observes read and commit latencies and sizes. Optional.
	Metrics MetricsHook
}

// MetricsHook observes storage operations.
type MetricsHook interface {
	ObserveRead(elapsed time.Duration, bytes int)
	ObserveCommit(elapsed time.Duration, bytes int)
}

type noopMetrics struct{}

func (noopMetrics) ObserveRead(time.Duration, int)   {}
func (noopMetrics) ObserveCommit(time.Duration, int) {}

// DB is a Pebble handle with a fixed fsync policy.
type DB struct {
	inner   *pebble.DB
	sync    bool
	metrics MetricsHook
}

// Open creates or opens the database at opts.Dir.
func Open(opts Options) (*DB, error) {
	if opts.Dir == "" {
		return nil, errors.New("pebblestore: Options.Dir is required")
	}
	po := opts.Tuning
	if po == nil {
		po = &pebble.Options{}
	}
	if opts.Sync == SyncInterval {
		every := opts.SyncEvery
		if every <= 0 {
			every = 5 * time.Millisecond
		}
		po.WALMinSyncInterval = func() time.Duration { return every }
	}
	inner, err := pebble.Open(opts.Dir, po)
	if err != nil {
		return nil, err
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &DB{inner: inner, sync: opts.Sync == SyncAlways, metrics: metrics}, nil
}

// Close closes the database.
func (db *DB) Close() error {
	if db == nil || db.inner == nil {
		return nil
	}
	return db.inner.Close()
}

// NewBatch creates a batch for atomic multi-key updates.
func (db *DB) NewBatch() *pebble.Batch { return db.inner.NewBatch() }

// CommitBatch commits b under the configured fsync policy.
func (db *DB) CommitBatch(_ context.Context, b *pebble.Batch) error {
	if b == nil {
		return errors.New("pebblestore: nil batch")
	}
	start := time.Now()
	size := b.Len()
	mode := pebble.NoSync
	if db.sync {
		mode = pebble.Sync
	}
	err := b.Commit(mode)
	db.metrics.ObserveCommit(time.Since(start), size)
	return err
}

// Set writes a single key through a small batch, honoring the fsync policy.
func (db *DB) Set(key, value []byte) error {
	b := db.inner.NewBatch()
	defer b.Close()
	if err := b.Set(key, value, nil); err != nil {
		return err
	}
	return db.CommitBatch(context.Background(), b)
}

// Delete removes a single key through a small batch.
func (db *DB) Delete(key []byte) error {
	b := db.inner.NewBatch()
	defer b.Close()
	if err := b.Delete(key, nil); err != nil {
		return err
	}
	return db.CommitBatch(context.Background(), b)
}

// Get returns a copy of the value for key, or ErrNotFound.
func (db *DB) Get(key []byte) ([]byte, error) {
	start := time.Now()
	val, closer, err := db.inner.Get(key)
	if err != nil {
		return nil, err
	}
	defer closer.Close()
	out := append([]byte(nil), val...)
	db.metrics.ObserveRead(time.Since(start), len(out))
	return out, nil
}

// NewIter creates a raw Pebble iterator with the provided options.
func (db *DB) NewIter(opts *pebble.IterOptions) (*pebble.Iterator, error) {
	return db.inner.NewIter(opts)
}
