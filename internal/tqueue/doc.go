// Package tqueue implements the per-queue event log engine.
//
// # Overview
//
// An Engine groups short-lived events into independently addressed queues.
// Within a queue, events carry strictly increasing eventid.IDs, expire at a
// caller-supplied deadline, and are swept by forget-reads or RunGC. Every
// committed push is notified to an attached storage Callback, which is also
// the source for replaying persisted history back into a fresh Engine; replay
// goes through the same PushWithID entry point as live traffic.
//
// API surface (internal)
//
//	e := tqueue.New()
//	id, _ := e.Push(12, []byte("hello"), expiresAtMs)
//	head := e.Head(12)                     // cursor before the oldest event
//	buf := make([]tqueue.Event, 100)
//	n, _ := e.Get(12, head, true, nowMs, buf)
//	e.RunGC(nowMs)
//
// Persistence is pluggable:
//
//	e.SetCallback(tqueue.NewMemoryStorage())
//	_ = e.EmulateRestart() // drop state, replay, reattach
//
// An Engine is owned by a single logical actor: there is no internal locking
// and no support for concurrent mutation. All operations are synchronous.
package tqueue
