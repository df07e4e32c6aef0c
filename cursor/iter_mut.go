package cursor

import "iter"

// IterMut is a double-ended cursor that hands out pointers into a slice.
// A pointer returned by NextFront or NextBack refers to an element the
// cursor no longer owns; the caller may read and write through it.
// No two pointers returned by the same cursor refer to the same element.
type IterMut[T any] struct {
	r region[T]
}

// NewMut returns a cursor over all of s.
func NewMut[T any](s []T) *IterMut[T] {
	return &IterMut[T]{
		r: newRegion(s),
	}
}

// Len returns the exact number of elements left.
func (i *IterMut[T]) Len() int {
	if i == nil {
		return 0
	}
	return i.r.len()
}

// NextFront takes the first remaining element.
// If ok is false, the cursor is exhausted.
func (i *IterMut[T]) NextFront() (p *T, ok bool) {
	_, p, ok = i.NextFrontAt()
	return
}

// NextBack takes the last remaining element.
// If ok is false, the cursor is exhausted.
func (i *IterMut[T]) NextBack() (p *T, ok bool) {
	_, p, ok = i.NextBackAt()
	return
}

// NextFrontAt is like NextFront, but it also returns the offset of the
// element within the slice given to NewMut.
func (i *IterMut[T]) NextFrontAt() (off int, p *T, ok bool) {
	off, ok = i.r.splitFirst()
	if !ok {
		return
	}
	return off, &i.r.base[off], true
}

// NextBackAt is like NextBack, but it also returns the offset of the
// element within the slice given to NewMut.
func (i *IterMut[T]) NextBackAt() (off int, p *T, ok bool) {
	off, ok = i.r.splitLast()
	if !ok {
		return
	}
	return off, &i.r.base[off], true
}

// AdvanceFront skips k elements from the front.
// If fewer than k elements were left, the cursor is now exhausted and
// AdvanceFront returns false. Negative k panics.
func (i *IterMut[T]) AdvanceFront(k int) bool {
	from, to := i.r.splitFront(k)
	return to-from == k
}

// AdvanceBack skips k elements from the back.
// If fewer than k elements were left, the cursor is now exhausted and
// AdvanceBack returns false. Negative k panics.
func (i *IterMut[T]) AdvanceBack(k int) bool {
	from, to := i.r.splitBack(k)
	return to-from == k
}

// NthFront skips n elements from the front, then takes the next one.
func (i *IterMut[T]) NthFront(n int) (*T, bool) {
	i.AdvanceFront(n)
	return i.NextFront()
}

// NthBack skips n elements from the back, then takes the next one.
func (i *IterMut[T]) NthBack(n int) (*T, bool) {
	i.AdvanceBack(n)
	return i.NextBack()
}

// IntoSlice gives up the remaining elements as a slice.
// The cursor is exhausted afterwards.
func (i *IterMut[T]) IntoSlice() []T {
	return i.r.rest()
}

// All returns a sequence that takes elements from the front until the
// cursor is exhausted or the loop body breaks.
//
//	for p := range c.All() {
//		*p *= 2
//	}
func (i *IterMut[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for p, ok := i.NextFront(); ok; p, ok = i.NextFront() {
			if !yield(p) {
				return
			}
		}
	}
}

// Backward is like All, but takes elements from the back.
func (i *IterMut[T]) Backward() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for p, ok := i.NextBack(); ok; p, ok = i.NextBack() {
			if !yield(p) {
				return
			}
		}
	}
}
