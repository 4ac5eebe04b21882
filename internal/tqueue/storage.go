package tqueue

import "fmt"

// Callback is the pluggable persistence capability. The Engine invokes OnPush
// for every committed push; Replay reissues the persisted history, in original
// order, against a fresh Engine via PushWithID. Implementations receive copies
// of mutation arguments and must not reach back into Engine state.
type Callback interface {
	OnPush(queueID QueueID, ev Event) error
	Replay(target *Engine) error
}

// MemoryStorage mirrors every notified push in its own ordered log. It backs
// the restart-equivalence checks: replaying it into a fresh Engine must
// reproduce the original Engine's observable state.
type MemoryStorage struct {
	records []memRecord
}

type memRecord struct {
	queueID QueueID
	ev      Event
}

// NewMemoryStorage returns an empty in-memory mirror.
func NewMemoryStorage() *MemoryStorage { return &MemoryStorage{} }

// OnPush appends the mutation to the mirror's log. Never fails.
func (m *MemoryStorage) OnPush(queueID QueueID, ev Event) error {
	m.records = append(m.records, memRecord{queueID: queueID, ev: ev})
	return nil
}

// Replay reissues every recorded push against target with the original IDs.
func (m *MemoryStorage) Replay(target *Engine) error {
	for _, r := range m.records {
		if _, err := target.PushWithID(r.queueID, r.ev.ID, r.ev.Data, r.ev.ExpiresAt); err != nil {
			return fmt.Errorf("%w: %v", ErrCorruptReplay, err)
		}
	}
	return nil
}

// Len returns the number of recorded pushes.
func (m *MemoryStorage) Len() int { return len(m.records) }
