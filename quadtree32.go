package quadtree

// QuadTree32 indexes points with 32-bit unsigned coordinates.
type QuadTree32 = QuadTree[uint32]

// Coord32 is a point with 32-bit unsigned coordinates.
type Coord32 = Coord[uint32]

// Bounds32 is a rectangle with 32-bit unsigned coordinates.
type Bounds32 = Bounds[uint32]

// NewQuadTree32 creates a QuadTree32 spanning the full uint32 range.
func NewQuadTree32(pageSize int) *QuadTree32 {
	return New[uint32](pageSize)
}
