// Package eventid defines the bounded, strictly increasing identifier used to
// order events within a single queue.
//
// # Overview
//
// An ID is an integer in the closed range [1, MaxID]. The zero value is the
// distinguished empty cursor: it compares less than every valid ID and marks
// a queue position before the first event. IDs are allocated monotonically and
// never wrap; once a queue reaches MaxID further allocation fails.
//
// Quick start
//
//	id, err := eventid.FromInt32(42)
//	next, err := id.Next()
//	probe, err := head.Advance(-3)
package eventid
