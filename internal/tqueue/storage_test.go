package tqueue

import (
	"bytes"
	"testing"
)

func TestMemoryStorageReplayReproducesState(t *testing.T) {
	e := New()
	m := NewMemoryStorage()
	e.SetCallback(m)

	queues := []QueueID{1, 2, 7}
	for i := 0; i < 9; i++ {
		q := queues[i%len(queues)]
		if _, err := e.Push(q, []byte{byte('a' + i)}, int64(50+i)); err != nil {
			t.Fatalf("push %d: %v", i, err)
		}
	}

	fresh := New()
	if err := m.Replay(fresh); err != nil {
		t.Fatalf("replay: %v", err)
	}
	for _, q := range queues {
		if fresh.Head(q) != e.Head(q) || fresh.Tail(q) != e.Tail(q) {
			t.Fatalf("queue %d head/tail diverged after replay", q)
		}
		a := make([]Event, 16)
		b := make([]Event, 16)
		na, err := e.Get(q, e.Head(q), false, 0, a)
		if err != nil {
			t.Fatalf("get original: %v", err)
		}
		nb, err := fresh.Get(q, fresh.Head(q), false, 0, b)
		if err != nil {
			t.Fatalf("get replayed: %v", err)
		}
		if na != nb {
			t.Fatalf("queue %d: %d vs %d events after replay", q, na, nb)
		}
		for i := 0; i < na; i++ {
			if a[i].ID != b[i].ID || !bytes.Equal(a[i].Data, b[i].Data) {
				t.Fatalf("queue %d event %d diverged: %v vs %v", q, i, a[i], b[i])
			}
		}
	}
}

func TestMemoryStorageRestart(t *testing.T) {
	e := New()
	e.SetCallback(NewMemoryStorage())
	id, err := e.Push(3, []byte("survives"), 100)
	if err != nil {
		t.Fatalf("push: %v", err)
	}
	if err := e.EmulateRestart(); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if e.Tail(3) != id {
		t.Fatalf("tail = %v after restart, want %v", e.Tail(3), id)
	}
	buf := make([]Event, 4)
	n, err := e.Get(3, 0, false, 0, buf)
	if err != nil || n != 1 || !bytes.Equal(buf[0].Data, []byte("survives")) {
		t.Fatalf("event lost across restart: n=%d err=%v", n, err)
	}
	// Pushes after the restart keep notifying the reattached mirror.
	if _, err := e.Push(3, []byte("more"), 100); err != nil {
		t.Fatalf("push after restart: %v", err)
	}
	if err := e.EmulateRestart(); err != nil {
		t.Fatalf("second restart: %v", err)
	}
	if e.Tail(3) != id+1 {
		t.Fatalf("post-restart push not replayed, tail=%v", e.Tail(3))
	}
}
