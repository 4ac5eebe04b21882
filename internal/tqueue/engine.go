package tqueue

import (
	"fmt"

	"github.com/c-h3xcode/td/pkg/eventid"
)

// Engine orchestrates per-queue event stores: it allocates IDs, applies the
// attached storage Callback on every committed push, and answers head, tail,
// range-read and GC requests. Not safe for concurrent use.
type Engine struct {
	queues map[QueueID]*store
	cb     Callback
}

// New returns an empty Engine with no attached storage callback.
func New() *Engine {
	return &Engine{queues: make(map[QueueID]*store)}
}

// Push stores data under the next ID for the queue. The first push to a fresh
// queue gets the smallest valid ID. Fails with ErrExhausted once the queue's
// ID space is spent, and with ErrDurability if the attached callback rejects
// the append; neither failure leaves any visible state change.
func (e *Engine) Push(queueID QueueID, data []byte, expiresAtMs int64) (eventid.ID, error) {
	return e.PushWithID(queueID, 0, data, expiresAtMs)
}

// PushWithID is the single mutation entry point, shared by live pushes and
// replay. An empty newID allocates; a non-empty one is used as-is so replay
// reproduces the original IDs exactly, and must be a valid ID strictly greater
// than the queue's tail.
func (e *Engine) PushWithID(queueID QueueID, newID eventid.ID, data []byte, expiresAtMs int64) (eventid.ID, error) {
	st := e.queues[queueID]
	tail := eventid.ID(0)
	if st != nil {
		tail = st.tail
	}

	id := newID
	if id.IsEmpty() {
		next, err := tail.Next()
		if err != nil {
			return 0, fmt.Errorf("%w: queue %d", ErrExhausted, queueID)
		}
		id = next
	} else {
		if _, err := eventid.FromInt32(id.Int32()); err != nil {
			return 0, err
		}
		if id <= tail {
			return 0, fmt.Errorf("%w: explicit id %v not past tail %v of queue %d", eventid.ErrInvalid, id, tail, queueID)
		}
	}

	ev := Event{ID: id, Data: append([]byte(nil), data...), ExpiresAt: expiresAtMs}
	if e.cb != nil {
		if err := e.cb.OnPush(queueID, ev); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrDurability, err)
		}
	}
	if st == nil {
		st = &store{}
		e.queues[queueID] = st
	}
	st.push(ev)
	return id, nil
}

// Head returns the cursor strictly before the oldest retained event. Empty for
// a queue that has never been touched.
func (e *Engine) Head(queueID QueueID) eventid.ID {
	if st := e.queues[queueID]; st != nil {
		return st.head
	}
	return 0
}

// Tail returns the last allocated ID for the queue, whether or not the event
// is still retained. Empty for a queue that has never been touched.
func (e *Engine) Tail(queueID QueueID) eventid.ID {
	if st := e.queues[queueID]; st != nil {
		return st.tail
	}
	return 0
}

// Get fills buf, in ID order, with up to len(buf) unexpired events whose ID is
// greater than from. With forgetPrevious the read also drives eviction: events
// at or before from, and expired ones, are physically discarded and the head
// advances. A zero-capacity buf is an error only when matches were available.
func (e *Engine) Get(queueID QueueID, from eventid.ID, forgetPrevious bool, nowMs int64, buf []Event) (int, error) {
	st := e.queues[queueID]
	if st == nil {
		return 0, nil
	}
	return st.get(from, forgetPrevious, nowMs, buf)
}

// RunGC sweeps expired events out of every queue and returns the number
// removed. Idempotent; tails are preserved so ID allocation never restarts.
func (e *Engine) RunGC(nowMs int64) int {
	removed := 0
	for _, st := range e.queues {
		removed += st.runGC(nowMs)
	}
	return removed
}

// SetCallback attaches a storage callback, taking ownership. A previously
// attached callback is dropped; extract it first if retention is wanted.
func (e *Engine) SetCallback(cb Callback) { e.cb = cb }

// ExtractCallback detaches and returns the current callback. Subsequent
// mutations produce no persistence notifications until a new one is attached.
func (e *Engine) ExtractCallback() Callback {
	cb := e.cb
	e.cb = nil
	return cb
}

// EmulateRestart rebuilds the Engine the way a process restart would: detach
// the callback, drop all in-memory state, replay every persisted record
// through PushWithID, then reattach. A no-op without a callback. A replay
// failure aborts the restart and leaves the Engine without persistence.
func (e *Engine) EmulateRestart() error {
	if e.cb == nil {
		return nil
	}
	cb := e.ExtractCallback()
	e.queues = make(map[QueueID]*store)
	if err := cb.Replay(e); err != nil {
		return err
	}
	e.SetCallback(cb)
	return nil
}
