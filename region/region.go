package region

import (
	"cmp"
	"slices"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/gridwalk/grid"
)

const unlabelled = -1

// Find partitions g into maximal 4-connected regions of equal values.
//
// Behavior:
//  1. Scan cells row-major; skip any cell already labelled.
//  2. From an unlabelled cell, flood fill over equal-valued cardinal
//     neighbours, labelling each cell as it is pushed so that no cell is
//     pushed twice.
//  3. Record the region with a fresh id and sorted members.
//
// Returns ErrNilGrid when g is nil.
// Time: O(W·H), Memory: O(W·H).
func Find[T comparable](g *grid.Grid[T], opts ...Option) (*Partition[T], error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	labels, err := grid.New(g.Width(), g.Height(), unlabelled)
	if err != nil {
		return nil, err
	}
	part := &Partition[T]{labels: labels, opts: cfg}

	for start, value := range g.All() {
		if labels.At(start) != unlabelled {
			continue
		}
		id := len(part.Regions)
		members := fill(g, labels, start, value, id, newWorklist(cfg.Worklist))
		slices.SortFunc(members, rowMajor)

		set := mapset.New[grid.Point]()
		for _, p := range members {
			set.Put(p)
		}
		part.Regions = append(part.Regions, &Region[T]{
			ID:      id,
			Value:   value,
			Members: members,
			set:     set,
		})
	}
	return part, nil
}

// fill labels every cell reachable from start through cells equal to value
// and returns them in discovery order.
func fill[T comparable](g *grid.Grid[T], labels *grid.Grid[int], start grid.Point, value T, id int, work worklist) []grid.Point {
	var members []grid.Point
	labels.Set(start, id)
	work.push(start)
	for !work.empty() {
		u := work.pop()
		members = append(members, u)
		for _, v := range u.Neighbors() {
			cell, ok := g.Get(v)
			if !ok || cell != value || labels.At(v) != unlabelled {
				continue
			}
			labels.Set(v, id)
			work.push(v)
		}
	}
	return members
}

// Len returns the number of regions.
func (p *Partition[T]) Len() int { return len(p.Regions) }

// Of returns the region containing pt, or false when pt is off the grid.
func (p *Partition[T]) Of(pt grid.Point) (*Region[T], bool) {
	id, ok := p.labels.Get(pt)
	if !ok {
		return nil, false
	}
	return p.Regions[id], true
}

// Label returns the region id of pt; pt must be on the grid.
func (p *Partition[T]) Label(pt grid.Point) int {
	return p.labels.At(pt)
}

// SameMembership reports whether a and b group cells identically,
// regardless of how their region ids were assigned.
func SameMembership[T comparable](a, b *Partition[T]) bool {
	if a.Len() != b.Len() || a.labels.Size() != b.labels.Size() {
		return false
	}
	for _, ra := range a.Regions {
		rb, ok := b.Of(ra.Members[0])
		if !ok || !slices.Equal(ra.Members, rb.Members) {
			return false
		}
	}
	return true
}

func rowMajor(a, b grid.Point) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}

// worklist abstracts the flood-fill frontier.
type worklist interface {
	push(grid.Point)
	pop() grid.Point
	empty() bool
}

func newWorklist(w Worklist) worklist {
	if w == Queue {
		return fifo{q: queue.New[grid.Point]()}
	}
	return &lifo{}
}

type lifo struct{ items []grid.Point }

func (s *lifo) push(p grid.Point) { s.items = append(s.items, p) }
func (s *lifo) empty() bool       { return len(s.items) == 0 }
func (s *lifo) pop() grid.Point {
	p := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return p
}

type fifo struct{ q *queue.Queue[grid.Point] }

func (f fifo) push(p grid.Point) { f.q.Enqueue(p) }
func (f fifo) pop() grid.Point   { return f.q.Dequeue() }
func (f fifo) empty() bool       { return f.q.Empty() }
