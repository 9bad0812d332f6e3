package quadtree

import "github.com/pkg/errors"

// SanityCheck verifies the tree's structural invariants, recursing from the
// root. It panics on the first violation: a failure means the tree has been
// corrupted by an implementation bug, not a runtime condition to recover
// from. Debug and test facility, not meant for hot paths.
func (t *QuadTree[TScalar]) SanityCheck() {
	if err := t.checkNode(t.root); err != nil {
		panic(errors.Wrap(err, "quadtree: sanity check failed"))
	}
}

func (t *QuadTree[TScalar]) checkNode(addr nodeAddr) error {
	if addr.isNull() {
		return errors.New("null node address")
	}
	n := t.pool.node(addr)

	// No zero-bounds sentinel check here: the unit cell at the origin is a
	// legitimate node with bounds {(0,0),(0,0)}. Initialization is tracked
	// by the node tag instead.
	if n.bounds.Max.X < n.bounds.Min.X || n.bounds.Max.Y < n.bounds.Min.Y {
		return errors.Errorf("inverted bounds: min (%d,%d) max (%d,%d)",
			n.bounds.Min.X, n.bounds.Min.Y, n.bounds.Max.X, n.bounds.Max.Y)
	}

	switch n.kind {
	case kindLeaf:
		for i, c := range n.children {
			if !c.isNull() {
				return errors.Errorf("leaf has a %s child", quadrantNames[i])
			}
		}
		if !n.bounds.Contains(n.point) {
			return errors.Errorf("leaf point (%d,%d) outside its bounds", n.point.X, n.point.Y)
		}
		return nil

	case kindRegion:
		if (n.point != Coord[TScalar]{}) {
			return errors.Errorf("region stores a point (%d,%d)", n.point.X, n.point.Y)
		}
		if !n.hasChildren() {
			for i, c := range n.children {
				if !c.isNull() {
					return errors.Errorf("region has a partial child set: %s present without north-west", quadrantNames[i])
				}
			}
			return nil
		}
		return t.checkChildren(n)

	default:
		return errors.Errorf("undefined node type %d", n.kind)
	}
}

func (t *QuadTree[TScalar]) checkChildren(parent *node[TScalar]) error {
	for i, c := range parent.children {
		if c.isNull() {
			return errors.Errorf("%s child missing from split region", quadrantNames[i])
		}
		b := t.pool.node(c).bounds
		if !parent.bounds.Contains(b.Min) || !parent.bounds.Contains(b.Max) {
			return errors.Errorf("%s child bounds escape the parent", quadrantNames[i])
		}
	}

	nw := t.pool.node(parent.children[quadNW]).bounds
	ne := t.pool.node(parent.children[quadNE]).bounds
	se := t.pool.node(parent.children[quadSE]).bounds
	sw := t.pool.node(parent.children[quadSW]).bounds

	// The split formula aligns shared edges exactly and leaves a one-unit
	// gap between each low quadrant edge and the matching high edge.
	switch {
	case nw.Min.Y != ne.Min.Y || nw.Max.Y != ne.Max.Y || nw.Max.X >= ne.Min.X:
		return errors.New("north-west and north-east quadrants misaligned")
	case ne.Min.X != se.Min.X || ne.Max.X != se.Max.X || ne.Max.Y >= se.Min.Y:
		return errors.New("north-east and south-east quadrants misaligned")
	case sw.Min.Y != se.Min.Y || sw.Max.Y != se.Max.Y || sw.Max.X >= se.Min.X:
		return errors.New("south-west and south-east quadrants misaligned")
	case nw.Min.X != sw.Min.X || nw.Max.X != sw.Max.X || nw.Max.Y >= sw.Min.Y:
		return errors.New("north-west and south-west quadrants misaligned")
	}

	for i, c := range parent.children {
		if err := t.checkNode(c); err != nil {
			return errors.Wrapf(err, "in %s child", quadrantNames[i])
		}
	}
	return nil
}
