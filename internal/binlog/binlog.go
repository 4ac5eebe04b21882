package binlog

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"

	pebblestore "github.com/c-h3xcode/td/internal/storage/pebble"
)

// ErrCorrupt reports a record that failed its checksum during a scan.
var ErrCorrupt = errors.New("binlog: corrupt record")

// Binlog is a named append-only record log persisted in Pebble. Appends are
// synchronous under the store's fsync policy; scans visit records in append
// order from the beginning. No in-place edits, no compaction.
type Binlog struct {
	db      *pebblestore.DB
	name    string
	lastSeq uint64
}

// Open initializes a Binlog and loads the last appended sequence, if any.
func Open(db *pebblestore.DB, name string) (*Binlog, error) {
	bl := &Binlog{db: db, name: name}
	meta, err := db.Get(keyMeta(name))
	if err == nil && len(meta) >= 8 {
		bl.lastSeq = binary.BigEndian.Uint64(meta[:8])
	} else if err != nil && !errors.Is(err, pebblestore.ErrNotFound) {
		return nil, err
	}
	return bl, nil
}

// LastSeq returns the sequence of the most recently appended record, 0 if none.
func (bl *Binlog) LastSeq() uint64 { return bl.lastSeq }

// Append writes one record atomically and returns its sequence. A failed
// append leaves the log unchanged.
func (bl *Binlog) Append(ctx context.Context, payload []byte) (uint64, error) {
	seq := bl.lastSeq + 1

	b := bl.db.NewBatch()
	defer b.Close()
	if err := b.Set(keyEntry(bl.name, seq), encodeFrame(payload), nil); err != nil {
		return 0, err
	}
	var meta [8]byte
	binary.BigEndian.PutUint64(meta[:], seq)
	if err := b.Set(keyMeta(bl.name), meta[:], nil); err != nil {
		return 0, err
	}
	if err := bl.db.CommitBatch(ctx, b); err != nil {
		return 0, err
	}
	bl.lastSeq = seq
	return seq, nil
}

// ForEach scans every record from the beginning in append order. A frame
// failing its checksum aborts the scan with ErrCorrupt; an error from fn
// aborts with that error.
func (bl *Binlog) ForEach(fn func(seq uint64, payload []byte) error) error {
	low := keyEntry(bl.name, 0)
	hi := keyEntry(bl.name, ^uint64(0))
	iter, err := bl.db.NewIter(&pebble.IterOptions{LowerBound: low, UpperBound: append(hi, 0x00)})
	if err != nil {
		return err
	}
	defer iter.Close()

	for ok := iter.First(); ok; ok = iter.Next() {
		seq := binary.BigEndian.Uint64(iter.Key()[len(low)-8:])
		payload, valid := decodeFrame(iter.Value())
		if !valid {
			return fmt.Errorf("%w: seq %d", ErrCorrupt, seq)
		}
		if err := fn(seq, payload); err != nil {
			return err
		}
	}
	return nil
}
