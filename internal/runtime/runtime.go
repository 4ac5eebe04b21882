package runtime

import (
	"context"
	"errors"
	"time"

	"github.com/c-h3xcode/td/internal/binlog"
	cfgpkg "github.com/c-h3xcode/td/internal/config"
	pebblestore "github.com/c-h3xcode/td/internal/storage/pebble"
	"github.com/c-h3xcode/td/internal/tqueue"
	logpkg "github.com/c-h3xcode/td/pkg/log"
)

// binlogName is the log every engine mutation is appended to.
const binlogName = "tqueue"

// Options for building the Runtime.
type Options struct {
	DataDir   string
	Sync      pebblestore.SyncMode
	SyncEvery time.Duration
	Config    cfgpkg.Config
	Logger    logpkg.Logger
}

// Runtime owns the store, the binlog, and the engine reconstructed from it.
type Runtime struct {
	db     *pebblestore.DB
	engine *tqueue.Engine
	config cfgpkg.Config
	logger logpkg.Logger
}

// Open initializes storage, replays the binlog into a fresh engine, and
// attaches the binlog storage callback. A corrupt record aborts the open:
// refusing to start beats diverging from the durable log.
func Open(opts Options) (*Runtime, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logpkg.NewLogger()
	}
	logger = logger.With(logpkg.Component("runtime"))

	db, err := pebblestore.Open(pebblestore.Options{Dir: opts.DataDir, Sync: opts.Sync, SyncEvery: opts.SyncEvery})
	if err != nil {
		return nil, err
	}
	bl, err := binlog.Open(db, binlogName)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	storage := binlog.NewStorage(bl)
	engine := tqueue.New()
	start := time.Now()
	if err := storage.Replay(engine); err != nil {
		_ = db.Close()
		return nil, err
	}
	engine.SetCallback(storage)
	logger.Info("binlog replayed",
		logpkg.Uint64("records", bl.LastSeq()),
		logpkg.Dur("elapsed", time.Since(start)))

	return &Runtime{db: db, engine: engine, config: opts.Config, logger: logger}, nil
}

// Engine returns the event queue engine.
func (r *Runtime) Engine() *tqueue.Engine { return r.engine }

// Config returns the runtime configuration.
func (r *Runtime) Config() cfgpkg.Config { return r.config }

// RunGC sweeps expired events out of every queue and returns the count.
func (r *Runtime) RunGC(nowMs int64) int {
	removed := r.engine.RunGC(nowMs)
	if removed > 0 {
		r.logger.Debug("gc swept events", logpkg.Int("removed", removed))
	}
	return removed
}

// CheckHealth performs a simple storage health check.
func (r *Runtime) CheckHealth(ctx context.Context) error {
	if r.db == nil {
		return errors.New("runtime: db not open")
	}
	it, err := r.db.NewIter(nil)
	if err != nil {
		return err
	}
	return it.Close()
}

// Close closes underlying resources.
func (r *Runtime) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}
