package cursor

import "fmt"

// region is the half-open span [lo, hi) of base that a cursor still owns.
// It only ever shrinks. Offsets are relative to base[0], which is the
// first element of the slice the cursor was built from.
type region[T any] struct {
	base   []T
	lo, hi int
}

func newRegion[T any](s []T) region[T] {
	return region[T]{
		base: s,
		hi:   len(s),
	}
}

func (r *region[T]) len() int {
	return r.hi - r.lo
}

func (r *region[T]) check() {
	if r.lo < 0 || r.lo > r.hi || r.hi > len(r.base) {
		panic(fmt.Sprintf("cursor: region invariant broken: lo=%d hi=%d len=%d",
			r.lo, r.hi, len(r.base)))
	}
}

// splitFirst gives up the leading element and returns its offset.
func (r *region[T]) splitFirst() (int, bool) {
	if r.lo >= r.hi {
		return 0, false
	}
	off := r.lo
	r.lo++
	r.check()
	return off, true
}

// splitLast gives up the trailing element and returns its offset.
func (r *region[T]) splitLast() (int, bool) {
	if r.lo >= r.hi {
		return 0, false
	}
	r.hi--
	r.check()
	return r.hi, true
}

// splitFront gives up the leading k elements, clamped to what is left,
// and returns the offsets [from, to) that were given up.
func (r *region[T]) splitFront(k int) (from, to int) {
	if k < 0 {
		panic(fmt.Errorf("%w: %d", ErrNegative, k))
	}
	if k > r.len() {
		k = r.len()
	}
	from = r.lo
	r.lo += k
	r.check()
	return from, r.lo
}

// splitBack gives up the trailing k elements, clamped to what is left,
// and returns the offsets [from, to) that were given up.
func (r *region[T]) splitBack(k int) (from, to int) {
	if k < 0 {
		panic(fmt.Errorf("%w: %d", ErrNegative, k))
	}
	if k > r.len() {
		k = r.len()
	}
	to = r.hi
	r.hi -= k
	r.check()
	return r.hi, to
}

// rest returns what is left as a slice and empties the region.
func (r *region[T]) rest() []T {
	s := r.base[r.lo:r.hi:r.hi]
	r.lo = r.hi
	return s
}

// view returns what is left as a slice without giving it up.
func (r *region[T]) view() []T {
	return r.base[r.lo:r.hi:r.hi]
}
