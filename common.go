package quadtree

// Coord is a 2D point with unsigned integer coordinates.
type Coord[TScalar uint32 | uint64] struct {
	X TScalar
	Y TScalar
}

func (a Coord[TScalar]) add(b Coord[TScalar]) Coord[TScalar] {
	return Coord[TScalar]{a.X + b.X, a.Y + b.Y}
}

func (a Coord[TScalar]) sub(b Coord[TScalar]) Coord[TScalar] {
	return Coord[TScalar]{a.X - b.X, a.Y - b.Y}
}

// div divides component-wise, truncating toward zero. Only used for midpoint
// computation during a split.
func (a Coord[TScalar]) div(b Coord[TScalar]) Coord[TScalar] {
	return Coord[TScalar]{a.X / b.X, a.Y / b.Y}
}

// Bounds is an axis-aligned rectangle. Both Min and Max are inclusive.
type Bounds[TScalar uint32 | uint64] struct {
	Min Coord[TScalar]
	Max Coord[TScalar]
}

// Contains reports whether p lies inside b.
func (b Bounds[TScalar]) Contains(p Coord[TScalar]) bool {
	return p.X >= b.Min.X && p.Y >= b.Min.Y && p.X <= b.Max.X && p.Y <= b.Max.Y
}

// FullRange spans the entire representable coordinate domain.
func FullRange[TScalar uint32 | uint64]() Bounds[TScalar] {
	max := ^TScalar(0)
	return Bounds[TScalar]{Max: Coord[TScalar]{max, max}}
}

type nodeKind uint8

const (
	kindUndefined nodeKind = iota
	kindLeaf
	kindRegion
)

// Canonical child order. Descent checks quadrants in exactly this order, so
// behavior at quadrant boundaries is deterministic. The quadrants never
// overlap, so the order is a documented contract rather than a tie-break.
const (
	quadNW = iota
	quadNE
	quadSE
	quadSW
)

var quadrantNames = [4]string{"north-west", "north-east", "south-east", "south-west"}

// node is a tagged slot in the pool: either a leaf holding one point, or a
// region with zero or exactly four children. A node owns no memory of its
// own; storage belongs to the pool.
type node[TScalar uint32 | uint64] struct {
	bounds   Bounds[TScalar]
	point    Coord[TScalar]
	children [4]nodeAddr

	kind nodeKind

	// nextFree threads the pool's free list. It survives allocation so that
	// a pool reset can rewind to the first slot and reuse the whole chain.
	nextFree nodeAddr
}

func (n *node[TScalar]) hasChildren() bool {
	return !n.children[quadNW].isNull()
}

func (n *node[TScalar]) initRegion(bounds Bounds[TScalar]) {
	n.bounds = bounds
	n.kind = kindRegion
}

// toLeaf converts a childless node in place into a leaf holding p.
func (n *node[TScalar]) toLeaf(p Coord[TScalar]) {
	n.kind = kindLeaf
	n.point = p
}
