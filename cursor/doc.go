// Package cursor provides double-ended cursors over slices.
//
// A cursor owns a region of a slice and hands out its elements one at
// a time from either end. Every step splits the region: the element
// handed out is removed from the region before it is returned, so the
// cursor never yields the same element twice, even when NextFront and
// NextBack calls are interleaved.
//
// The usual usage looks like this:
//
//	c := cursor.NewMut(s)
//	for p, ok := c.NextFront(); ok; p, ok = c.NextFront() {
//		... do stuff with *p ...
//	}
//
// Cursors are not restartable. Once the region is empty, every call
// from either end reports false forever.
// The cursor may be abandoned at any time.
// The result of touching the slice through another path while a
// cursor is live is undefined.
package cursor

import "errors"

// ErrNegative is wrapped by the value a cursor panics with when it is
// asked to skip a negative number of elements.
var ErrNegative = errors.New("cursor: negative count")
