package tqueue

import (
	"github.com/c-h3xcode/td/pkg/eventid"
)

// QueueID addresses one independently ordered backlog of events.
type QueueID int64

// Event is a single stored record. Immutable once pushed; expiration and
// removal are its only lifecycle transitions.
type Event struct {
	ID        eventid.ID
	Data      []byte
	ExpiresAt int64 // unix ms; the event stays live through ExpiresAt itself
}

// expired reports whether the event is unreachable at the given time. An
// event expiring exactly at nowMs is still retrievable.
func (ev Event) expired(nowMs int64) bool { return ev.ExpiresAt < nowMs }
