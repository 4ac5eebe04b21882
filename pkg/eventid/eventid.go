package eventid

import (
	"errors"
	"fmt"
)

// MaxID is the largest allocatable ID. Allocation past it fails; IDs never
// wrap around.
const MaxID int32 = 2000000000

// ErrInvalid reports an ID constructed or advanced outside [1, MaxID].
var ErrInvalid = errors.New("eventid: id out of range")

// ErrOverflow reports a successor request at MaxID.
var ErrOverflow = errors.New("eventid: id overflow")

// ID identifies an event's position within its queue. The zero value is the
// empty cursor, ordered before every valid ID.
type ID int32

// FromInt32 validates n and returns it as an ID.
func FromInt32(n int32) (ID, error) {
	if n < 1 || n > MaxID {
		return 0, fmt.Errorf("%w: %d", ErrInvalid, n)
	}
	return ID(n), nil
}

// IsEmpty reports whether the ID is the empty cursor.
func (i ID) IsEmpty() bool { return i == 0 }

// Int32 returns the underlying integer value. Zero for the empty cursor.
func (i ID) Int32() int32 { return int32(i) }

// Next returns the successor ID. The empty cursor's successor is the smallest
// valid ID. Fails with ErrOverflow at MaxID.
func (i ID) Next() (ID, error) {
	if int32(i) >= MaxID {
		return 0, fmt.Errorf("%w: next of %d", ErrOverflow, i)
	}
	return i + 1, nil
}

// Advance adds a signed delta and validates the result. Advancing the empty
// cursor by a positive delta lands that many steps past the virtual zero.
func (i ID) Advance(delta int) (ID, error) {
	v := int64(i) + int64(delta)
	if v < 1 || v > int64(MaxID) {
		return 0, fmt.Errorf("%w: %d%+d", ErrInvalid, i, delta)
	}
	return ID(v), nil
}

// Less reports whether i orders before other. The empty cursor orders before
// every valid ID.
func (i ID) Less(other ID) bool { return i < other }

// String formats the ID for logs and CLI output.
func (i ID) String() string {
	if i.IsEmpty() {
		return "empty"
	}
	return fmt.Sprintf("%d", int32(i))
}
