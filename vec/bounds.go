package vec

import (
	"fmt"
	"strconv"
	"strings"
)

// BoundKind says how a Bound limits a range.
type BoundKind int

const (
	// No limit: the range runs from the start or to the end.
	Unbounded BoundKind = iota
	// The index itself is in the range.
	Inclusive
	// The index itself is not in the range.
	Exclusive
)

// Bound is one end of a range of indices.
// The zero value is unbounded.
type Bound struct {
	kind BoundKind
	n    int
}

// Included returns a bound that includes n.
func Included(n int) Bound { return Bound{Inclusive, n} }

// Excluded returns a bound that excludes n.
func Excluded(n int) Bound { return Bound{Exclusive, n} }

// NoBound returns an unbounded bound.
func NoBound() Bound { return Bound{} }

// Kind returns the kind of b.
func (b Bound) Kind() BoundKind { return b.kind }

// Index returns the index of b. It is 0 for an unbounded bound.
func (b Bound) Index() int { return b.n }

// Bounds is a range of indices given by its two ends.
// The zero value is the full range.
type Bounds struct {
	Start, End Bound
}

// Range returns the half-open range [start, end).
func Range(start, end int) Bounds {
	return Bounds{Included(start), Excluded(end)}
}

// RangeInclusive returns the closed range [start, end].
func RangeInclusive(start, end int) Bounds {
	return Bounds{Included(start), Included(end)}
}

// RangeFrom returns the range from start to the end.
func RangeFrom(start int) Bounds {
	return Bounds{Start: Included(start)}
}

// RangeTo returns the range from the beginning up to, but excluding, end.
func RangeTo(end int) Bounds {
	return Bounds{End: Excluded(end)}
}

// RangeToInclusive returns the range from the beginning up to and
// including end.
func RangeToInclusive(end int) Bounds {
	return Bounds{End: Included(end)}
}

// RangeFull returns the range of every index.
func RangeFull() Bounds {
	return Bounds{}
}

// Resolve turns b into the half-open range [start, end) within a
// sequence of length n. It panics with an error wrapping ErrRange if b
// does not fit.
func (b Bounds) Resolve(n int) (start, end int) {
	switch b.Start.kind {
	case Unbounded:
		start = 0
	case Inclusive:
		start = b.Start.n
	case Exclusive:
		start = b.Start.n + 1
	}

	switch b.End.kind {
	case Unbounded:
		end = n
	case Inclusive:
		end = b.End.n + 1
	case Exclusive:
		end = b.End.n
	}

	switch {
	case start < 0:
		panic(fmt.Errorf("%w: start %d < 0", ErrRange, start))
	case start > n:
		panic(fmt.Errorf("%w: start %d > len %d", ErrRange, start, n))
	case end > n:
		panic(fmt.Errorf("%w: end %d > len %d", ErrRange, end, n))
	case end < start:
		panic(fmt.Errorf("%w: end %d < start %d", ErrRange, end, start))
	}
	return
}

// String formats b the way ParseBounds reads it.
func (b Bounds) String() string {
	var sb strings.Builder
	switch b.Start.kind {
	case Inclusive:
		sb.WriteString(strconv.Itoa(b.Start.n))
	case Exclusive:
		sb.WriteString(strconv.Itoa(b.Start.n))
		sb.WriteByte('<')
	}
	sb.WriteString("..")
	switch b.End.kind {
	case Inclusive:
		sb.WriteByte('=')
		sb.WriteString(strconv.Itoa(b.End.n))
	case Exclusive:
		sb.WriteString(strconv.Itoa(b.End.n))
	}
	return sb.String()
}

// ParseBounds reads a range written as one of:
//
//	"a..b"  [a, b)
//	"a..=b" [a, b]
//	"a.."   [a, len)
//	"..b"   [0, b)
//	"..=b"  [0, b]
//	".."    [0, len)
//	"a<..b" (a, b)
//	"a"     [a, a]
//
// Indices must be non-negative integers. Whether the range fits a
// particular Vec is only checked when it is used.
func ParseBounds(s string) (Bounds, error) {
	s = strings.TrimSpace(s)
	lhs, rhs, found := strings.Cut(s, "..")
	if !found {
		n, err := parseIndex(s)
		if err != nil {
			return Bounds{}, err
		}
		return RangeInclusive(n, n), nil
	}

	var b Bounds
	switch {
	case lhs == "":
	case strings.HasSuffix(lhs, "<"):
		n, err := parseIndex(lhs[:len(lhs)-1])
		if err != nil {
			return Bounds{}, err
		}
		b.Start = Excluded(n)
	default:
		n, err := parseIndex(lhs)
		if err != nil {
			return Bounds{}, err
		}
		b.Start = Included(n)
	}

	switch {
	case rhs == "":
	case strings.HasPrefix(rhs, "="):
		n, err := parseIndex(rhs[1:])
		if err != nil {
			return Bounds{}, err
		}
		b.End = Included(n)
	default:
		n, err := parseIndex(rhs)
		if err != nil {
			return Bounds{}, err
		}
		b.End = Excluded(n)
	}

	return b, nil
}

func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || strings.HasPrefix(s, "+") {
		return 0, fmt.Errorf("%w: bad index %q", ErrSyntax, s)
	}
	return n, nil
}
