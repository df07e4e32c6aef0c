package testutils

import (
	"github.com/stretchr/testify/assert"
)

type TestT interface {
	Log(...any)
	Logf(string, ...any)
	Error(...any)
	Errorf(string, ...any) // also used by testify/assert
}

// Drain expects next to return data in order, then expects next
// to report exhaustion. next is usually a method value such as
// c.NextFront or d.Next.
// Drain calls next exactly len(data)+1 times.
func Drain[T any](t TestT, data []T, next func() (T, bool)) {
	t.Logf("draining: expecting %v", data)
	for i, datum := range data {
		el, ok := next()
		if !ok {
			t.Errorf("exhausted early, expecting i=%d %v", i, datum)
			return
		}
		assert.Equal(t, datum, el)
	}

	if el, ok := next(); ok {
		t.Errorf("should be exhausted, but received: %v", el)
	}
}

// Deref adapts a pointer-yielding next func to Drain.
func Deref[T any](next func() (*T, bool)) func() (T, bool) {
	return func() (v T, ok bool) {
		p, ok := next()
		if !ok {
			return
		}
		return *p, true
	}
}
