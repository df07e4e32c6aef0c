package vec

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/exp/slices"
)

// Vec is a growable array. The zero value is an empty Vec ready for use.
// Vec is not safe for concurrent use.
type Vec[T any] struct {
	// buf[:n] holds the elements. While a drain is live, buf[n:] holds
	// the drained range, which the Vec never touches.
	buf []T
	n   int

	// live has bit i set iff buf[i] holds a value.
	live bitset.BitSet

	drop     func(T)
	borrowed bool
}

// New returns an empty Vec with room for capacity elements.
func New[T any](capacity int) *Vec[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Vec[T]{
		buf: make([]T, 0, capacity),
	}
}

// Of returns a Vec holding xs, in order. xs is copied.
func Of[T any](xs ...T) *Vec[T] {
	v := New[T](len(xs))
	for _, x := range xs {
		v.Push(x)
	}
	return v
}

func (v *Vec[T]) checkBorrow() {
	if v.borrowed {
		panic(ErrBorrowed)
	}
}

func (v *Vec[T]) checkIndex(i int) {
	if i < 0 || i >= v.n {
		panic(fmt.Errorf("%w: %d with len %d", ErrIndex, i, v.n))
	}
}

// vacate moves the value out of slot i.
func (v *Vec[T]) vacate(i int) T {
	if !v.live.Test(uint(i)) {
		panic(fmt.Errorf("%w: %d", ErrVacant, i))
	}
	v.live.Clear(uint(i))

	x := v.buf[i]
	var zero T
	v.buf[i] = zero
	return x
}

// release ends a drain's borrow. Every slot past n must be vacant by now.
func (v *Vec[T]) release() {
	if i, ok := v.live.NextSet(uint(v.n)); ok && i < uint(len(v.buf)) {
		panic(fmt.Sprintf("vec: slot %d still occupied after drain", i))
	}
	v.buf = v.buf[:v.n]
	v.borrowed = false
}

// Len returns the number of elements. During a drain, this excludes
// the drained range.
func (v *Vec[_]) Len() int {
	return v.n
}

// Cap returns the number of slots in the buffer.
func (v *Vec[_]) Cap() int {
	return cap(v.buf)
}

// Push appends x.
func (v *Vec[T]) Push(x T) {
	v.checkBorrow()
	v.buf = append(v.buf, x)
	v.live.Set(uint(v.n))
	v.n++
}

// Pop removes and returns the last element.
// If ok is false, v was empty.
func (v *Vec[T]) Pop() (x T, ok bool) {
	v.checkBorrow()
	if v.n == 0 {
		return
	}
	v.n--
	x = v.vacate(v.n)
	v.buf = v.buf[:v.n]
	return x, true
}

// Get returns the element at i.
func (v *Vec[T]) Get(i int) T {
	v.checkBorrow()
	v.checkIndex(i)
	return v.buf[i]
}

// Set replaces the element at i with x and drops the old element.
func (v *Vec[T]) Set(i int, x T) {
	v.checkBorrow()
	v.checkIndex(i)

	old := v.vacate(i)
	v.buf[i] = x
	v.live.Set(uint(i))
	v.dropValue(old)
}

// Slice returns the elements as a slice sharing v's buffer.
// It is only valid until the next call that changes v.
func (v *Vec[T]) Slice() []T {
	v.checkBorrow()
	return v.buf[:v.n:v.n]
}

// ToSlice returns a copy of the elements.
func (v *Vec[T]) ToSlice() []T {
	v.checkBorrow()
	return slices.Clone(v.buf[:v.n])
}

// Truncate drops every element from index n on, front to back.
// It does nothing if n >= v.Len().
func (v *Vec[T]) Truncate(n int) {
	v.checkBorrow()
	if n < 0 {
		panic(fmt.Errorf("%w: truncate to %d", ErrIndex, n))
	}
	if n >= v.n {
		return
	}

	old := v.n
	v.n = n
	defer func() {
		v.buf = v.buf[:n]
	}()

	i := n
	v.dropAll(func() (int, bool) {
		if i >= old {
			return 0, false
		}
		i++
		return i - 1, true
	})
}

// Clear drops every element.
func (v *Vec[T]) Clear() {
	v.Truncate(0)
}

// Remove removes the element at i and returns it. The elements after i
// shift down by one.
func (v *Vec[T]) Remove(i int) T {
	v.checkBorrow()
	v.checkIndex(i)

	d := v.Drain(Range(i, i+1))
	defer d.Close()
	x, _ := d.Next()
	return x
}

func (v *Vec[T]) String() string {
	if v.borrowed {
		return fmt.Sprintf("%v (draining)", v.buf[:v.n])
	}
	return fmt.Sprint(v.buf[:v.n])
}
