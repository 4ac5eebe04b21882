package binlog

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/c-h3xcode/td/internal/tqueue"
	"github.com/c-h3xcode/td/pkg/eventid"
)

func TestPushRecordRoundTrip(t *testing.T) {
	ev := tqueue.Event{ID: 42, Data: []byte("payload"), ExpiresAt: -12345}
	queueID, got, err := decodePush(encodePush(7, ev))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if queueID != 7 || got.ID != ev.ID || got.ExpiresAt != ev.ExpiresAt || !bytes.Equal(got.Data, ev.Data) {
		t.Fatalf("round trip mismatch: q=%d ev=%+v", queueID, got)
	}
}

func TestDecodePushRejectsTruncated(t *testing.T) {
	if _, _, err := decodePush(nil); err == nil {
		t.Fatalf("expected error for empty record")
	}
	ev := tqueue.Event{ID: 1, Data: []byte("d"), ExpiresAt: 9}
	rec := encodePush(1, ev)
	if _, _, err := decodePush(rec[:1]); err == nil {
		t.Fatalf("expected error for truncated record")
	}
}

func TestStorageReplayRebuildsEngine(t *testing.T) {
	bl, err := Open(newTestDB(t), "tqueue")
	if err != nil {
		t.Fatalf("open binlog: %v", err)
	}
	e := tqueue.New()
	e.SetCallback(NewStorage(bl))

	if _, err := e.Push(12, []byte("hello"), 100); err != nil {
		t.Fatalf("push: %v", err)
	}
	if _, err := e.Push(12, []byte("world"), 100); err != nil {
		t.Fatalf("push: %v", err)
	}
	if _, err := e.Push(99, []byte("other"), 100); err != nil {
		t.Fatalf("push: %v", err)
	}

	fresh := tqueue.New()
	if err := NewStorage(bl).Replay(fresh); err != nil {
		t.Fatalf("replay: %v", err)
	}
	if fresh.Tail(12) != 2 || fresh.Tail(99) != 1 {
		t.Fatalf("tails after replay: %v, %v", fresh.Tail(12), fresh.Tail(99))
	}
	buf := make([]tqueue.Event, 8)
	n, err := fresh.Get(12, 0, false, 0, buf)
	if err != nil || n != 2 {
		t.Fatalf("get after replay: n=%d err=%v", n, err)
	}
	if !bytes.Equal(buf[0].Data, []byte("hello")) || !bytes.Equal(buf[1].Data, []byte("world")) {
		t.Fatalf("replayed data mismatch: %q, %q", buf[0].Data, buf[1].Data)
	}
}

func TestStorageRestartPreservesAllocation(t *testing.T) {
	bl, err := Open(newTestDB(t), "tqueue")
	if err != nil {
		t.Fatalf("open binlog: %v", err)
	}
	e := tqueue.New()
	e.SetCallback(NewStorage(bl))

	if _, err := e.PushWithID(5, 1000, []byte("seeded"), 100); err != nil {
		t.Fatalf("seed push: %v", err)
	}
	if err := e.EmulateRestart(); err != nil {
		t.Fatalf("restart: %v", err)
	}
	id, err := e.Push(5, []byte("next"), 100)
	if err != nil {
		t.Fatalf("push after restart: %v", err)
	}
	if id != 1001 {
		t.Fatalf("id after restart = %v, want 1001 (no duplicate or skipped ids)", id)
	}
}

func TestStorageReplayCorruptRecordIsFatal(t *testing.T) {
	db := newTestDB(t)
	bl, err := Open(db, "tqueue")
	if err != nil {
		t.Fatalf("open binlog: %v", err)
	}
	e := tqueue.New()
	e.SetCallback(NewStorage(bl))
	if _, err := e.Push(1, []byte("ok"), 100); err != nil {
		t.Fatalf("push: %v", err)
	}
	// A frame with a valid checksum but an unparseable payload.
	if _, err := bl.Append(context.Background(), []byte{0xff}); err != nil {
		t.Fatalf("append bad payload: %v", err)
	}
	if err := NewStorage(bl).Replay(tqueue.New()); !errors.Is(err, tqueue.ErrCorruptReplay) {
		t.Fatalf("expected ErrCorruptReplay, got %v", err)
	}
}

func TestStorageReplayChecksumFailureIsFatal(t *testing.T) {
	db := newTestDB(t)
	bl, err := Open(db, "tqueue")
	if err != nil {
		t.Fatalf("open binlog: %v", err)
	}
	e := tqueue.New()
	e.SetCallback(NewStorage(bl))
	if _, err := e.Push(1, []byte("ok"), 100); err != nil {
		t.Fatalf("push: %v", err)
	}
	if err := db.Set(keyEntry("tqueue", 1), []byte("scribble")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := NewStorage(bl).Replay(tqueue.New()); !errors.Is(err, tqueue.ErrCorruptReplay) {
		t.Fatalf("expected ErrCorruptReplay, got %v", err)
	}
}

func TestStorageReplaySeedNearCeiling(t *testing.T) {
	bl, err := Open(newTestDB(t), "tqueue")
	if err != nil {
		t.Fatalf("open binlog: %v", err)
	}
	e := tqueue.New()
	e.SetCallback(NewStorage(bl))

	first := eventid.ID(eventid.MaxID - 2)
	if _, err := e.PushWithID(3, first, []byte("a"), 100); err != nil {
		t.Fatalf("seed: %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := e.Push(3, []byte("b"), 100); err != nil {
			t.Fatalf("push %d: %v", i, err)
		}
	}
	if _, err := e.Push(3, []byte("over"), 100); !errors.Is(err, tqueue.ErrExhausted) {
		t.Fatalf("expected ErrExhausted at ceiling, got %v", err)
	}
	if err := e.EmulateRestart(); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if e.Tail(3) != eventid.ID(eventid.MaxID) {
		t.Fatalf("tail after restart = %v, want MaxID", e.Tail(3))
	}
	// Exhaustion is permanent: no recycling after restart either.
	if _, err := e.Push(3, []byte("again"), 100); !errors.Is(err, tqueue.ErrExhausted) {
		t.Fatalf("expected ErrExhausted after restart, got %v", err)
	}
}
