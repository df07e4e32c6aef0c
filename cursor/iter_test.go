package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lepak.sg/safer/testutils"
)

func TestIter(t *testing.T) {
	tests := []struct {
		name string
		s    []string
		post func(t *testing.T, c *Iter[string])
	}{
		{
			name: "empty",
			s:    []string{},
			post: func(t *testing.T, c *Iter[string]) {
				testutils.Drain(t, nil, c.NextBack)
				assert.Empty(t, c.AsSlice())
			},
		},
		{
			name: "front",
			s:    []string{"a", "b", "c"},
			post: func(t *testing.T, c *Iter[string]) {
				testutils.Drain(t, []string{"a", "b", "c"}, c.NextFront)
			},
		},
		{
			name: "both ends",
			s:    []string{"a", "b", "c", "d"},
			post: func(t *testing.T, c *Iter[string]) {
				v, ok := c.NextBack()
				require.True(t, ok)
				assert.Equal(t, "d", v)
				assert.Equal(t, []string{"a", "b", "c"}, c.AsSlice())
				// AsSlice does not consume
				assert.Equal(t, 3, c.Len())
				testutils.Drain(t, []string{"a", "b", "c"}, c.NextFront)
			},
		},
		{
			name: "nth",
			s:    []string{"a", "b", "c", "d", "e"},
			post: func(t *testing.T, c *Iter[string]) {
				v, ok := c.NthFront(1)
				require.True(t, ok)
				assert.Equal(t, "b", v)
				v, ok = c.NthBack(0)
				require.True(t, ok)
				assert.Equal(t, "e", v)
				_, ok = c.NthBack(2)
				assert.False(t, ok)
				assert.Equal(t, 0, c.Len())
			},
		},
		{
			name: "advance past end",
			s:    []string{"a"},
			post: func(t *testing.T, c *Iter[string]) {
				assert.False(t, c.AdvanceFront(2))
				assert.True(t, c.AdvanceBack(0))
				_, ok := c.NextFront()
				assert.False(t, ok)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.post(t, New(tt.s))
		})
	}
}

func TestIter_Seq(t *testing.T) {
	var got []int
	for v := range New(seq(4)).All() {
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3, 4}, got)

	got = nil
	c := New(seq(4))
	for v := range c.Backward() {
		got = append(got, v)
		if v == 3 {
			break
		}
	}
	assert.Equal(t, []int{4, 3}, got)
	assert.Equal(t, []int{1, 2}, c.AsSlice())
}

func TestIter_NilLen(t *testing.T) {
	var c *Iter[int]
	assert.Equal(t, 0, c.Len())
}
