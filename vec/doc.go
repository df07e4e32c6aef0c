// Package vec provides a growable array with a draining cursor.
//
// Vec keeps an occupancy bit for every slot of its buffer. A value is
// moved out of a slot, or dropped, by vacating the slot: the slot is
// zeroed and its bit is cleared. Vacating a slot twice is a bug in this
// package and panics, so a value can never be handed out twice or be
// cleaned up twice.
//
// Drain removes a range of elements while closing the gap:
//
//	v := vec.Of(1, 2, 3, 4, 5, 6, 7)
//	d := v.Drain(vec.Range(1, 4))
//	defer d.Close()
//	for x := range d.All() {
//		... x is 2, then 3, then 4 ...
//	}
//	// v is now {1, 5, 6, 7}
//
// While a Drain is live, the Vec it came from is borrowed: any call on
// the Vec other than Len and Cap panics. The borrow ends when the Drain
// runs out of elements or is closed. Closing a Drain early drops every
// element it did not yield.
package vec

import "errors"

// The values this package panics with wrap one of these.
var (
	ErrRange    = errors.New("vec: drain range out of bounds")
	ErrIndex    = errors.New("vec: index out of range")
	ErrBorrowed = errors.New("vec: borrowed by a live drain")
	ErrVacant   = errors.New("vec: slot is vacant")
)

// ErrSyntax is returned by ParseBounds.
var ErrSyntax = errors.New("vec: invalid range syntax")
