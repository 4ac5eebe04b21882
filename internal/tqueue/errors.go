package tqueue

import "errors"

var (
	// ErrExhausted reports a push that would need an ID beyond eventid.MaxID.
	ErrExhausted = errors.New("tqueue: event id space exhausted")

	// ErrDurability reports a push whose storage append failed. The event is
	// not retained: a push that cannot be persisted must not become visible.
	ErrDurability = errors.New("tqueue: storage append failed")

	// ErrCorruptReplay reports a persisted record that could not be parsed or
	// applied during replay. Fatal for the whole restart; partial replay is
	// worse than refusing to start.
	ErrCorruptReplay = errors.New("tqueue: corrupt replay record")

	// ErrNoCapacity reports a Get into a zero-capacity buffer while matching
	// events were available. A short (non-zero) buffer only truncates.
	ErrNoCapacity = errors.New("tqueue: zero-capacity buffer with events available")
)
