package cursor

import "iter"

// Iter is the read-only counterpart of IterMut. It hands out copies of
// the elements instead of pointers to them.
type Iter[T any] struct {
	r region[T]
}

// New returns a read-only cursor over all of s.
func New[T any](s []T) *Iter[T] {
	return &Iter[T]{
		r: newRegion(s),
	}
}

// Len returns the exact number of elements left.
func (i *Iter[T]) Len() int {
	if i == nil {
		return 0
	}
	return i.r.len()
}

// NextFront returns the first remaining element.
func (i *Iter[T]) NextFront() (v T, ok bool) {
	off, ok := i.r.splitFirst()
	if !ok {
		return
	}
	return i.r.base[off], true
}

// NextBack returns the last remaining element.
func (i *Iter[T]) NextBack() (v T, ok bool) {
	off, ok := i.r.splitLast()
	if !ok {
		return
	}
	return i.r.base[off], true
}

// AdvanceFront skips k elements from the front. See IterMut.AdvanceFront.
func (i *Iter[T]) AdvanceFront(k int) bool {
	from, to := i.r.splitFront(k)
	return to-from == k
}

// AdvanceBack skips k elements from the back. See IterMut.AdvanceBack.
func (i *Iter[T]) AdvanceBack(k int) bool {
	from, to := i.r.splitBack(k)
	return to-from == k
}

// NthFront skips n elements from the front, then returns the next one.
func (i *Iter[T]) NthFront(n int) (T, bool) {
	i.AdvanceFront(n)
	return i.NextFront()
}

// NthBack skips n elements from the back, then returns the next one.
func (i *Iter[T]) NthBack(n int) (T, bool) {
	i.AdvanceBack(n)
	return i.NextBack()
}

// AsSlice returns the remaining elements without consuming them.
func (i *Iter[T]) AsSlice() []T {
	return i.r.view()
}

// All returns a sequence of the remaining elements, front to back.
// Elements yielded are consumed.
func (i *Iter[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, ok := i.NextFront(); ok; v, ok = i.NextFront() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward returns a sequence of the remaining elements, back to front.
func (i *Iter[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, ok := i.NextBack(); ok; v, ok = i.NextBack() {
			if !yield(v) {
				return
			}
		}
	}
}
