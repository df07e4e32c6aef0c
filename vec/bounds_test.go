package vec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBounds_Resolve(t *testing.T) {
	tests := []struct {
		name       string
		b          Bounds
		n          int
		start, end int
	}{
		{"range", Range(1, 4), 7, 1, 4},
		{"inclusive", RangeInclusive(1, 3), 7, 1, 4},
		{"from", RangeFrom(5), 7, 5, 7},
		{"to", RangeTo(2), 7, 0, 2},
		{"to inclusive", RangeToInclusive(2), 7, 0, 3},
		{"full", RangeFull(), 7, 0, 7},
		{"zero value", Bounds{}, 3, 0, 3},
		{"excluded start", Bounds{Excluded(1), Excluded(4)}, 7, 2, 4},
		{"empty at end", Range(7, 7), 7, 7, 7},
		{"empty vec", RangeFull(), 0, 0, 0},
		// End must come from the end bound, not the start bound.
		{"end bound", Bounds{Included(0), Excluded(5)}, 9, 0, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.b.Resolve(tt.n)
			assert.Equal(t, tt.start, start, "start")
			assert.Equal(t, tt.end, end, "end")
		})
	}
}

func TestBounds_ResolvePanics(t *testing.T) {
	tests := []struct {
		name string
		b    Bounds
		n    int
		msg  string
	}{
		{"start past len", RangeFrom(4), 3, "vec: drain range out of bounds: start 4 > len 3"},
		{"end past len", Range(0, 4), 3, "vec: drain range out of bounds: end 4 > len 3"},
		{"inclusive end past len", RangeInclusive(0, 3), 3, "vec: drain range out of bounds: end 4 > len 3"},
		{"backwards", Range(2, 1), 3, "vec: drain range out of bounds: end 1 < start 2"},
		{"negative", Range(-1, 1), 3, "vec: drain range out of bounds: start -1 < 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.PanicsWithError(t, tt.msg, func() {
				tt.b.Resolve(tt.n)
			})
		})
	}
}

func TestParseBounds(t *testing.T) {
	tests := []struct {
		in   string
		want Bounds
	}{
		{"1..4", Range(1, 4)},
		{"1..=3", RangeInclusive(1, 3)},
		{"2..", RangeFrom(2)},
		{"..3", RangeTo(3)},
		{"..=3", RangeToInclusive(3)},
		{"..", RangeFull()},
		{" 0..0 ", Range(0, 0)},
		{"1<..4", Bounds{Excluded(1), Excluded(4)}},
		{"5", RangeInclusive(5, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBounds(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			// String writes what ParseBounds reads, except for the
			// single index shorthand
			if tt.in != "5" {
				again, err := ParseBounds(got.String())
				require.NoError(t, err)
				assert.Equal(t, got, again)
			}
		})
	}
}

func TestParseBounds_Errors(t *testing.T) {
	for _, in := range []string{"", "a..b", "1..=", "-1..3", "1...3", "1..+3", "..=", "x"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseBounds(in)
			assert.True(t, errors.Is(err, ErrSyntax), "%q: %v", in, err)
		})
	}
}

func TestBounds_String(t *testing.T) {
	assert.Equal(t, "1..4", Range(1, 4).String())
	assert.Equal(t, "..=2", RangeToInclusive(2).String())
	assert.Equal(t, "..", RangeFull().String())
	assert.Equal(t, "3<..", Bounds{Start: Excluded(3)}.String())
	assert.Equal(t, Exclusive, RangeTo(2).End.Kind())
	assert.Equal(t, 2, RangeTo(2).End.Index())
	assert.Equal(t, Unbounded, NoBound().Kind())
}
