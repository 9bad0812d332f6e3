package quadtree

// QuadTree64 indexes points with 64-bit unsigned coordinates.
type QuadTree64 = QuadTree[uint64]

// Coord64 is a point with 64-bit unsigned coordinates.
type Coord64 = Coord[uint64]

// Bounds64 is a rectangle with 64-bit unsigned coordinates.
type Bounds64 = Bounds[uint64]

// NewQuadTree64 creates a QuadTree64 spanning the full uint64 range.
func NewQuadTree64(pageSize int) *QuadTree64 {
	return New[uint64](pageSize)
}
