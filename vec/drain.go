package vec

import (
	"fmt"
	"iter"

	"go.lepak.sg/safer/cursor"
	"go.lepak.sg/safer/slices"
)

// State is the lifecycle state of a Drain.
type State int

const (
	// Elements are left to yield.
	Draining State = iota
	// Every element was yielded or skipped.
	Finished
	// Close was called while elements were left. They were dropped.
	Abandoned
)

func (s State) String() string {
	switch s {
	case Draining:
		return "Draining"
	case Finished:
		return "Finished"
	case Abandoned:
		return "Abandoned"
	default:
		return "<invalid vec.State>"
	}
}

// Drain is a cursor that moves a range of elements out of a Vec.
// Elements can be taken from either end. See Vec.Drain.
type Drain[T any] struct {
	vec *Vec[T]
	// cur runs over vec.buf[base:], the drained range.
	cur   *cursor.IterMut[T]
	base  int
	state State
}

// Drain removes the range b from v and returns a cursor over the
// removed elements. It panics with an error wrapping ErrRange if b does
// not fit v.
//
// The elements after the range are shifted into place right away, so
// v.Len() is already reduced when Drain returns. The Drain owns the
// removed elements: those it does not yield are dropped when it is
// closed. Until the Drain is finished or closed, v is borrowed.
//
// The usual usage is:
//
//	d := v.Drain(vec.Range(start, end))
//	defer d.Close()
//	for x, ok := d.Next(); ok; x, ok = d.Next() {
//		... do stuff with x, or break ...
//	}
func (v *Vec[T]) Drain(b Bounds) *Drain[T] {
	v.checkBorrow()
	start, end := b.Resolve(v.n)
	k := end - start

	// Rotating [start, n) left by k moves the range to the tail and
	// keeps the rest in order.
	slices.RotateLeft(v.buf[start:v.n], k)

	old := v.n
	v.n = old - k
	v.borrowed = true

	d := &Drain[T]{
		vec:  v,
		cur:  cursor.NewMut(v.buf[v.n:old]),
		base: v.n,
	}
	d.settle()
	return d
}

// settle finishes d once nothing is left.
func (d *Drain[T]) settle() {
	if d.state == Draining && d.cur.Len() == 0 {
		d.state = Finished
		d.vec.release()
	}
}

// Len returns the exact number of elements left.
func (d *Drain[T]) Len() int {
	return d.cur.Len()
}

// State returns the lifecycle state of d.
func (d *Drain[T]) State() State {
	return d.state
}

// Next moves the first remaining element out and returns it.
// If ok is false, d is exhausted.
func (d *Drain[T]) Next() (x T, ok bool) {
	if d.state != Draining {
		return
	}
	defer d.settle()

	off, _, ok := d.cur.NextFrontAt()
	if !ok {
		return
	}
	return d.vec.vacate(d.base + off), true
}

// NextBack moves the last remaining element out and returns it.
// If ok is false, d is exhausted.
func (d *Drain[T]) NextBack() (x T, ok bool) {
	if d.state != Draining {
		return
	}
	defer d.settle()

	off, _, ok := d.cur.NextBackAt()
	if !ok {
		return
	}
	return d.vec.vacate(d.base + off), true
}

// Skip drops the first n remaining elements, then behaves like Next.
// n is clamped to what is left.
func (d *Drain[T]) Skip(n int) (T, bool) {
	d.skip(n, d.cur.NextFrontAt)
	return d.Next()
}

// SkipBack drops the last n remaining elements, then behaves like
// NextBack. n is clamped to what is left.
func (d *Drain[T]) SkipBack(n int) (T, bool) {
	d.skip(n, d.cur.NextBackAt)
	return d.NextBack()
}

func (d *Drain[T]) skip(n int, take func() (int, *T, bool)) {
	if n < 0 {
		panic(fmt.Errorf("%w: skip %d", cursor.ErrNegative, n))
	}
	if d.state != Draining {
		return
	}
	defer d.settle()

	d.vec.dropAll(d.slots(n, take))
}

// slots hands out at most n slot indices taken from the cursor.
// Negative n means no limit.
func (d *Drain[T]) slots(n int, take func() (int, *T, bool)) func() (int, bool) {
	return func() (int, bool) {
		if n == 0 {
			return 0, false
		}
		off, _, ok := take()
		if !ok {
			return 0, false
		}
		n--
		return d.base + off, true
	}
}

// Close drops the elements d did not yield and ends the borrow of the
// Vec. After Close, d yields nothing. Close may be called any number
// of times, and runs even if a cleanup panics.
func (d *Drain[T]) Close() {
	if d.state != Draining {
		return
	}
	d.state = Abandoned
	defer d.vec.release()

	d.vec.dropAll(d.slots(-1, d.cur.NextFrontAt))
}

// All returns a sequence that yields the remaining elements front to
// back. d is closed when the loop ends, however it ends.
func (d *Drain[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer d.Close()
		for x, ok := d.Next(); ok; x, ok = d.Next() {
			if !yield(x) {
				return
			}
		}
	}
}

// Backward is like All, but yields back to front.
func (d *Drain[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer d.Close()
		for x, ok := d.NextBack(); ok; x, ok = d.NextBack() {
			if !yield(x) {
				return
			}
		}
	}
}
