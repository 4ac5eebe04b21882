package tqueue

import (
	"fmt"

	"github.com/c-h3xcode/td/pkg/eventid"
)

// store is the ordered collection of live events for one queue.
//
// Invariants: events are sorted by ID, IDs strictly increase across pushes,
// head <= tail, and head sits strictly before the oldest retained event (it
// equals tail when the store is empty but has been used).
type store struct {
	events []Event
	head   eventid.ID
	tail   eventid.ID
}

// push appends an event. The caller guarantees ev.ID is strictly greater than
// every previously stored ID; a violation means allocation or replay state is
// corrupt and is not recoverable.
func (s *store) push(ev Event) {
	if !s.tail.IsEmpty() && ev.ID <= s.tail {
		panic(fmt.Sprintf("tqueue: non-increasing event id %v (tail %v)", ev.ID, s.tail))
	}
	if s.tail.IsEmpty() {
		s.head = ev.ID - 1
	}
	s.events = append(s.events, ev)
	s.tail = ev.ID
}

// get fills buf, in ID order, with events whose ID is greater than from and
// that are not expired at nowMs. With forgetPrevious it additionally discards
// every retained event with ID <= from or already expired, advancing head.
func (s *store) get(from eventid.ID, forgetPrevious bool, nowMs int64, buf []Event) (int, error) {
	n := 0
	matched := false
	for _, ev := range s.events {
		if ev.ID <= from || ev.expired(nowMs) {
			continue
		}
		matched = true
		if n == len(buf) {
			break
		}
		buf[n] = Event{ID: ev.ID, Data: append([]byte(nil), ev.Data...), ExpiresAt: ev.ExpiresAt}
		n++
	}
	if matched && len(buf) == 0 {
		return 0, ErrNoCapacity
	}
	if forgetPrevious {
		s.discard(func(ev Event) bool { return ev.ID <= from || ev.expired(nowMs) })
		s.advanceHead(from)
	}
	return n, nil
}

// runGC discards every expired event and returns the count removed.
func (s *store) runGC(nowMs int64) int {
	removed := s.discard(func(ev Event) bool { return ev.expired(nowMs) })
	s.advanceHead(s.head)
	return removed
}

// discard removes events matching drop in place, preserving order.
func (s *store) discard(drop func(Event) bool) int {
	kept := s.events[:0]
	for _, ev := range s.events {
		if !drop(ev) {
			kept = append(kept, ev)
		}
	}
	removed := len(s.events) - len(kept)
	s.events = kept
	return removed
}

// advanceHead moves head forward to floor (clamped to tail) and then past any
// gap left by discarded events. Head never regresses.
func (s *store) advanceHead(floor eventid.ID) {
	if floor > s.tail {
		floor = s.tail
	}
	if floor > s.head {
		s.head = floor
	}
	if len(s.events) > 0 {
		if before := s.events[0].ID - 1; before > s.head {
			s.head = before
		}
	} else if s.tail > s.head {
		s.head = s.tail
	}
}
