package slices

import (
	"errors"
	"fmt"

	"go.lepak.sg/safer/cursor"
)

// ErrRotation is wrapped by the value RotateLeft and RotateRight panic
// with when the rotation amount does not fit the slice.
var ErrRotation = errors.New("slices: rotation out of range")

// Reverse reverses s in place.
// Example:
// {1, 2, 3, 4, 5} -> {5, 4, 3, 2, 1}
func Reverse[E any, S ~[]E](s S) {
	c := cursor.NewMut([]E(s))
	for a, ok := c.NextFront(); ok; a, ok = c.NextFront() {
		b, ok := c.NextBack()
		if !ok {
			// odd length, a is the middle
			break
		}
		*a, *b = *b, *a
	}
}

// RotateRight rotates s in place so that the last k elements come first.
// Example, with k = 3:
// {1, 2, 3, 4, 5, 6, 7} -> {5, 6, 7, 1, 2, 3, 4}
// RotateRight panics unless 0 <= k <= len(s).
func RotateRight[E any, S ~[]E](s S, k int) {
	checkRotation(len(s), k)
	Reverse(s)
	Reverse(s[:k])
	Reverse(s[k:])
}

// RotateLeft rotates s in place so that the first k elements come last.
// Example, with k = 3:
// {1, 2, 3, 4, 5, 6, 7} -> {4, 5, 6, 7, 1, 2, 3}
// RotateLeft panics unless 0 <= k <= len(s).
func RotateLeft[E any, S ~[]E](s S, k int) {
	checkRotation(len(s), k)
	RotateRight(s, len(s)-k)
}

func checkRotation(n, k int) {
	if k < 0 || k > n {
		panic(fmt.Errorf("%w: k=%d len=%d", ErrRotation, k, n))
	}
}
