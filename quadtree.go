// Package quadtree implements a point-region quadtree over unsigned integer
// coordinates: each leaf stores exactly one point and each populated region
// subdivides its bounds into four quadrants. Nodes live in a page-based pool
// owned by the tree, so building and discarding large point sets costs no
// per-node allocation and Reset is O(1).
package quadtree

import "fmt"

// InsertResult reports the outcome of QuadTree.Insert.
type InsertResult uint8

const (
	InsertOutOfRegionBounds InsertResult = iota
	InsertDuplicateEntry
	InsertSuccess
)

func (r InsertResult) String() string {
	switch r {
	case InsertOutOfRegionBounds:
		return "OutOfRegionBounds"
	case InsertDuplicateEntry:
		return "DuplicateEntry"
	case InsertSuccess:
		return "Success"
	}
	return fmt.Sprintf("InsertResult(%d)", uint8(r))
}

// FindResult reports the outcome of QuadTree.Find.
type FindResult uint8

const (
	FindOutOfRegionBounds FindResult = iota
	FindNoEntry
	FindSuccess
)

func (r FindResult) String() string {
	switch r {
	case FindOutOfRegionBounds:
		return "OutOfRegionBounds"
	case FindNoEntry:
		return "NoEntry"
	case FindSuccess:
		return "Success"
	}
	return fmt.Sprintf("FindResult(%d)", uint8(r))
}

// QuadTree is a point-region quadtree for distinct points. Worst-case cost
// of Insert and Find is one node visit per bit of the scalar, independent of
// the number of stored points.
//
// A QuadTree is not safe for concurrent use. Insert and Reset need exclusive
// access; Find and SanityCheck may run concurrently with each other, but
// never with a writer.
type QuadTree[TScalar uint32 | uint64] struct {
	pool   *pool[TScalar]
	domain Bounds[TScalar]
	root   nodeAddr
	count  int
}

// New creates a tree indexing the scalar's full coordinate range. pageSize
// governs pool page granularity and must be positive.
func New[TScalar uint32 | uint64](pageSize int) *QuadTree[TScalar] {
	return NewWithBounds(FullRange[TScalar](), pageSize)
}

// NewWithBounds creates a tree indexing only the given sub-domain; points
// outside it are reported as out of region bounds. The domain must be square
// with a power-of-two extent so that quadrant subdivision stays exact all
// the way down to unit cells, and must not be the zero rectangle, which is
// reserved as the uninitialized sentinel.
func NewWithBounds[TScalar uint32 | uint64](bounds Bounds[TScalar], pageSize int) *QuadTree[TScalar] {
	var zero Bounds[TScalar]
	if bounds == zero {
		panic("quadtree: zero bounds are reserved as the uninitialized sentinel")
	}
	if bounds.Max.X < bounds.Min.X || bounds.Max.Y < bounds.Min.Y {
		panic("quadtree: bounds must satisfy min <= max on both axes")
	}
	w := bounds.Max.X - bounds.Min.X
	h := bounds.Max.Y - bounds.Min.Y
	if w != h || w&(w+1) != 0 {
		panic("quadtree: domain must be square with a power-of-two extent")
	}

	t := &QuadTree[TScalar]{
		pool:   newPool[TScalar](pageSize),
		domain: bounds,
	}
	t.Reset()
	return t
}

// Insert adds point to the index. It returns InsertDuplicateEntry without
// mutating anything if the exact point is already present, and
// InsertOutOfRegionBounds if the point lies outside the tree's domain.
func (t *QuadTree[TScalar]) Insert(point Coord[TScalar]) InsertResult {
	if !t.domain.Contains(point) {
		return InsertOutOfRegionBounds
	}

	addr, found := t.descend(point)
	if found == FindSuccess {
		return InsertDuplicateEntry
	}

	if n := t.pool.node(addr); n.kind == kindLeaf {
		// Collision with a different point. Split until the existing point
		// and the new one land in different quadrants: each split halves the
		// remaining extent, so two unequal points diverge within the
		// scalar's bit width.
		existing := n.point
		cur := addr
		var existingAddr, newAddr nodeAddr
		for {
			t.split(cur)
			existingAddr = t.childContaining(cur, existing)
			newAddr = t.childContaining(cur, point)
			if existingAddr != newAddr {
				break
			}
			cur = newAddr
		}
		t.pool.node(existingAddr).toLeaf(existing)
		t.pool.node(newAddr).toLeaf(point)
	} else {
		// A never-split region: claim it as the leaf.
		n.toLeaf(point)
	}

	t.count++
	return InsertSuccess
}

// Find reports whether point is present. It performs no mutation and is safe
// to call repeatedly.
func (t *QuadTree[TScalar]) Find(point Coord[TScalar]) FindResult {
	if !t.domain.Contains(point) {
		return FindOutOfRegionBounds
	}
	_, found := t.descend(point)
	return found
}

// Reset discards every stored point at once, rewinding the pool and
// reinitializing the root as an empty region spanning the domain. Page
// memory is retained for reuse.
func (t *QuadTree[TScalar]) Reset() {
	t.pool.reset()
	t.root = t.pool.allocRegion(t.domain)
	t.count = 0
}

// Len returns the number of points currently stored.
func (t *QuadTree[TScalar]) Len() int {
	return t.count
}

// Bounds returns the tree's indexable domain.
func (t *QuadTree[TScalar]) Bounds() Bounds[TScalar] {
	return t.domain
}

// Stats returns pool occupancy counters.
func (t *QuadTree[TScalar]) Stats() Stats {
	return t.pool.stats()
}

// descend walks from the root to the terminal node for point, which must lie
// inside the domain. It returns the terminal node's address and whether the
// point was found there.
func (t *QuadTree[TScalar]) descend(point Coord[TScalar]) (nodeAddr, FindResult) {
	cur := t.root
	n := t.pool.node(cur)
	for n.hasChildren() {
		cur = t.childContaining(cur, point)
		n = t.pool.node(cur)
	}
	if n.kind == kindLeaf && n.point == point {
		return cur, FindSuccess
	}
	return cur, FindNoEntry
}

// childContaining returns the child of the split region at addr whose bounds
// contain point, checking NW, NE, SE, SW in order. The quadrants partition
// the parent exactly, so for an in-bounds point exactly one matches.
func (t *QuadTree[TScalar]) childContaining(addr nodeAddr, point Coord[TScalar]) nodeAddr {
	n := t.pool.node(addr)
	for _, child := range n.children {
		if t.pool.node(child).bounds.Contains(point) {
			return child
		}
	}
	panic(fmt.Sprintf("quadtree: point (%d,%d) escaped every quadrant of a split region", point.X, point.Y))
}

// split subdivides a childless node into four empty region children using
// truncating midpoint bisection. centerMax sits one unit past centerMin on
// each axis, so adjacent quadrants abut without overlapping and cover the
// parent exactly. The node's extent must be at least 2 on both axes.
func (t *QuadTree[TScalar]) split(addr nodeAddr) {
	n := t.pool.node(addr)
	min, max := n.bounds.Min, n.bounds.Max
	if max.X == min.X || max.Y == min.Y {
		panic("quadtree: cannot split a region of unit extent")
	}

	centerMin := min.add(max.sub(min).div(Coord[TScalar]{2, 2}))
	centerMax := centerMin.add(Coord[TScalar]{1, 1})

	nw := t.pool.allocRegion(Bounds[TScalar]{min, centerMin})
	ne := t.pool.allocRegion(Bounds[TScalar]{Coord[TScalar]{centerMax.X, min.Y}, Coord[TScalar]{max.X, centerMin.Y}})
	se := t.pool.allocRegion(Bounds[TScalar]{centerMax, max})
	sw := t.pool.allocRegion(Bounds[TScalar]{Coord[TScalar]{min.X, centerMax.Y}, Coord[TScalar]{centerMin.X, max.Y}})

	n.children = [4]nodeAddr{nw, ne, se, sw}
	n.kind = kindRegion
	n.point = Coord[TScalar]{}
}
