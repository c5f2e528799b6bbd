// Package spatial provides an immutable nearest-neighbor index over a
// fixed coordinate set. An Index is built once per point set (atoms,
// or alpha-sphere centers), then queried many times; it is never
// mutated after construction and is safe for concurrent queries.
package spatial

import (
	"sort"

	"gonum.org/v1/gonum/spatial/kdtree"

	"pocketscan/internal/geometry"
)

// indexedPoint is a kd-tree element carrying its original slice index.
type indexedPoint struct {
	pos geometry.Vec3
	id  int
}

func (p indexedPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(indexedPoint)
	return p.pos[d] - q.pos[d]
}

func (p indexedPoint) Dims() int { return 3 }

// Distance returns the squared Euclidean distance, per the kdtree
// contract.
func (p indexedPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(indexedPoint)
	return p.pos.Dist2(q.pos)
}

type pointSet []indexedPoint

func (s pointSet) Index(i int) kdtree.Comparable         { return s[i] }
func (s pointSet) Len() int                              { return len(s) }
func (s pointSet) Pivot(d kdtree.Dim) int                { return plane{Dim: d, pointSet: s}.Pivot() }
func (s pointSet) Slice(start, end int) kdtree.Interface { return s[start:end] }

type plane struct {
	kdtree.Dim
	pointSet
}

func (p plane) Less(i, j int) bool {
	return p.pointSet[i].pos[p.Dim] < p.pointSet[j].pos[p.Dim]
}
func (p plane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }
func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.pointSet = p.pointSet[start:end]
	return p
}
func (p plane) Swap(i, j int) {
	p.pointSet[i], p.pointSet[j] = p.pointSet[j], p.pointSet[i]
}

// Index is a balanced kd-tree over a fixed set of 3D points.
type Index struct {
	tree *kdtree.Tree
	n    int
}

// NewIndex builds an Index over points. The point slice is not
// retained.
func NewIndex(points []geometry.Vec3) *Index {
	if len(points) == 0 {
		return &Index{}
	}
	set := make(pointSet, len(points))
	for i, p := range points {
		set[i] = indexedPoint{pos: p, id: i}
	}
	return &Index{tree: kdtree.New(set, false), n: len(points)}
}

// Len returns the number of indexed points.
func (x *Index) Len() int { return x.n }

// Within returns the original indices of all points within distance r
// of p, inclusive, sorted ascending so that callers iterating the
// result are order-deterministic.
func (x *Index) Within(p geometry.Vec3, r float64) []int {
	if x.tree == nil {
		return nil
	}
	keep := kdtree.NewDistKeeper(r * r)
	x.tree.NearestSet(keep, indexedPoint{pos: p, id: -1})

	ids := make([]int, 0, keep.Len())
	for _, c := range keep.Heap {
		if c.Comparable == nil {
			continue
		}
		ids = append(ids, c.Comparable.(indexedPoint).id)
	}
	sort.Ints(ids)
	return ids
}

// CountWithin returns the number of points within distance r of p.
func (x *Index) CountWithin(p geometry.Vec3, r float64) int {
	if x.tree == nil {
		return 0
	}
	keep := kdtree.NewDistKeeper(r * r)
	x.tree.NearestSet(keep, indexedPoint{pos: p, id: -1})
	n := 0
	for _, c := range keep.Heap {
		if c.Comparable != nil {
			n++
		}
	}
	return n
}
