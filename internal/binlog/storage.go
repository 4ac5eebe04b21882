package binlog

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/c-h3xcode/td/internal/tqueue"
	"github.com/c-h3xcode/td/pkg/eventid"
)

// Storage adapts a Binlog to the engine's storage Callback: one serialized
// record per committed push, appended synchronously. The engine treats a
// failed append as a failed push.
type Storage struct {
	bl *Binlog
}

// NewStorage wraps bl. The Binlog is passed in explicitly so multiple engines
// (one per shard) stay independently testable.
func NewStorage(bl *Binlog) *Storage { return &Storage{bl: bl} }

// OnPush serializes the push and appends it to the log.
func (s *Storage) OnPush(queueID tqueue.QueueID, ev tqueue.Event) error {
	_, err := s.bl.Append(context.Background(), encodePush(queueID, ev))
	return err
}

// Replay scans the log from the beginning and reissues every record against
// target through the normal push path with the original IDs. Any record that
// cannot be parsed or applied aborts the restart.
func (s *Storage) Replay(target *tqueue.Engine) error {
	err := s.bl.ForEach(func(seq uint64, payload []byte) error {
		queueID, ev, err := decodePush(payload)
		if err != nil {
			return fmt.Errorf("%w: seq %d: %v", tqueue.ErrCorruptReplay, seq, err)
		}
		if _, err := target.PushWithID(queueID, ev.ID, ev.Data, ev.ExpiresAt); err != nil {
			return fmt.Errorf("%w: seq %d: %v", tqueue.ErrCorruptReplay, seq, err)
		}
		return nil
	})
	if err != nil && !errors.Is(err, tqueue.ErrCorruptReplay) {
		return fmt.Errorf("%w: %v", tqueue.ErrCorruptReplay, err)
	}
	return err
}

// Push record encoding: varint queue_id | uvarint id | varint expires_at_ms |
// data (to end of record).

func encodePush(queueID tqueue.QueueID, ev tqueue.Event) []byte {
	out := make([]byte, 0, 3*binary.MaxVarintLen64+len(ev.Data))
	out = binary.AppendVarint(out, int64(queueID))
	out = binary.AppendUvarint(out, uint64(ev.ID.Int32()))
	out = binary.AppendVarint(out, ev.ExpiresAt)
	return append(out, ev.Data...)
}

func decodePush(b []byte) (tqueue.QueueID, tqueue.Event, error) {
	queueID, n := binary.Varint(b)
	if n <= 0 {
		return 0, tqueue.Event{}, errors.New("binlog: truncated queue id")
	}
	b = b[n:]
	rawID, n := binary.Uvarint(b)
	if n <= 0 || rawID > uint64(eventid.MaxID) {
		return 0, tqueue.Event{}, errors.New("binlog: bad event id")
	}
	b = b[n:]
	id, err := eventid.FromInt32(int32(rawID))
	if err != nil {
		return 0, tqueue.Event{}, err
	}
	expiresAt, n := binary.Varint(b)
	if n <= 0 {
		return 0, tqueue.Event{}, errors.New("binlog: truncated expiry")
	}
	b = b[n:]
	ev := tqueue.Event{ID: id, Data: append([]byte(nil), b...), ExpiresAt: expiresAt}
	return tqueue.QueueID(queueID), ev, nil
}
