package testutils

import (
	"fmt"
	"sort"
)

// DropLedger counts how many times each Tracked value was dropped.
// It is not safe for concurrent use.
type DropLedger struct {
	drops map[int]int
	order []int
}

// NewLedger returns an empty ledger.
func NewLedger() *DropLedger {
	return &DropLedger{
		drops: make(map[int]int),
	}
}

// Tracked is an element that records its own Drop in a ledger.
type Tracked struct {
	ID int
	l  *DropLedger
}

// Drop records that t was dropped.
func (t Tracked) Drop() {
	if t.l == nil {
		panic(fmt.Sprintf("drop of untracked value %d", t.ID))
	}
	t.l.drops[t.ID]++
	t.l.order = append(t.l.order, t.ID)
}

func (t Tracked) String() string {
	return fmt.Sprintf("#%d", t.ID)
}

// Track returns a Tracked value for each id.
func (l *DropLedger) Track(ids ...int) []Tracked {
	out := make([]Tracked, len(ids))
	for i, id := range ids {
		out[i] = Tracked{ID: id, l: l}
	}
	return out
}

// Seq returns Tracked values with ids 1 to n.
func (l *DropLedger) Seq(n int) []Tracked {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i + 1
	}
	return l.Track(ids...)
}

// Count returns how many times id was dropped.
func (l *DropLedger) Count(id int) int {
	return l.drops[id]
}

// Dropped returns the ids dropped so far, sorted.
func (l *DropLedger) Dropped() []int {
	ids := make([]int, 0, len(l.drops))
	for id := range l.drops {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Order returns the ids in the order their drops happened.
func (l *DropLedger) Order() []int {
	return l.order
}

// AssertExactlyOnce checks that every id in ids was dropped exactly once
// and that nothing else was dropped at all.
func (l *DropLedger) AssertExactlyOnce(t TestT, ids ...int) bool {
	ok := true
	want := make(map[int]bool, len(ids))
	for _, id := range ids {
		want[id] = true
		if n := l.drops[id]; n != 1 {
			t.Errorf("id %d dropped %d times, want 1", id, n)
			ok = false
		}
	}
	for id, n := range l.drops {
		if !want[id] {
			t.Errorf("id %d dropped %d times, want 0", id, n)
			ok = false
		}
	}
	return ok
}

// IDs extracts the ids of ts in order.
func IDs(ts []Tracked) []int {
	ids := make([]int, len(ts))
	for i, t := range ts {
		ids[i] = t.ID
	}
	return ids
}
