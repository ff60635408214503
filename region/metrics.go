package region

import (
	"context"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/parallel"
)

// Contains reports whether p is a member of r.
func (r *Region[T]) Contains(p grid.Point) bool {
	return r.set.Has(p)
}

// Area is the number of member cells.
func (r *Region[T]) Area() int {
	return len(r.Members)
}

// Perimeter counts member sides that do not touch another member:
// Σ (4 − member neighbours).
func (r *Region[T]) Perimeter() int {
	n := 0
	for _, p := range r.Members {
		n += 4
		for _, q := range p.Neighbors() {
			if r.set.Has(q) {
				n--
			}
		}
	}
	return n
}

// Edges lists every boundary marker, member by member in row-major order,
// directions in grid.Directions order.
func (r *Region[T]) Edges() []Edge {
	var out []Edge
	for _, p := range r.Members {
		for _, d := range grid.Directions() {
			if !r.set.Has(d.Step(p)) {
				out = append(out, Edge{At: p, Facing: d})
			}
		}
	}
	return out
}

// Sides counts maximal straight boundary segments. A straight wall run of
// any length contributes one: an edge is counted only when the marker with
// the same facing on its perpendicular successor (right for horizontal
// walls, below for vertical ones) is absent.
func (r *Region[T]) Sides() int {
	edges := r.Edges()
	set := mapset.New[Edge]()
	for _, e := range edges {
		set.Put(e)
	}
	n := 0
	for _, e := range edges {
		next := grid.Right
		if e.Facing == grid.Left || e.Facing == grid.Right {
			next = grid.Down
		}
		if !set.Has(Edge{At: next.Step(e.At), Facing: e.Facing}) {
			n++
		}
	}
	return n
}

// FencePrice totals area×perimeter over all regions.
func (p *Partition[T]) FencePrice() int {
	return p.price(func(r *Region[T]) int { return r.Area() * r.Perimeter() })
}

// BulkPrice totals area×sides over all regions.
func (p *Partition[T]) BulkPrice() int {
	return p.price(func(r *Region[T]) int { return r.Area() * r.Sides() })
}

func (p *Partition[T]) price(metric func(*Region[T]) int) int {
	// metric cannot fail, so neither can the reduction.
	total, _ := parallel.Sum(context.Background(), p.Regions, p.opts.Workers,
		func(_ context.Context, r *Region[T]) (int, error) {
			return metric(r), nil
		})
	return total
}
