package quadtree

import "math"

// nodeAddr is a dense handle into pool pages: a page index plus a slot offset
// within the page. Handles are stable for the life of the pool. The zero
// value addresses a real slot, so null is an explicit sentinel.
type nodeAddr struct {
	page uint32
	slot uint32
}

var nullAddr = nodeAddr{math.MaxUint32, math.MaxUint32}

func (a nodeAddr) isNull() bool {
	return a == nullAddr
}

// Stats describes pool occupancy.
type Stats struct {
	Pages    int // pages allocated so far
	Capacity int // total node slots across all pages
	InUse    int // slots handed out since the last reset
}

// pool is a page-based arena of node slots threaded by an intrusive free
// list. Allocation never fails: when the list runs out, the pool grows by
// one page. Pages are never released; reset rewinds the free-list head to
// the first slot ever allocated, which makes every handle issued since then
// logically invalid. It is the caller's obligation not to dereference a
// stale handle after a reset.
type pool[TScalar uint32 | uint64] struct {
	pageSize  int
	pages     [][]node[TScalar]
	allocated int

	head nodeAddr // next slot to hand out
	root nodeAddr // first slot of the first page, the reset target
	tail nodeAddr // last slot of the newest page, the growth splice point
}

func newPool[TScalar uint32 | uint64](pageSize int) *pool[TScalar] {
	if pageSize <= 0 {
		panic("quadtree: pool page size must be positive")
	}
	return &pool[TScalar]{
		pageSize: pageSize,
		pages:    make([][]node[TScalar], 0, 8),
		head:     nullAddr,
		root:     nullAddr,
		tail:     nullAddr,
	}
}

// grow appends one page and threads its slots onto the free list.
func (p *pool[TScalar]) grow() {
	pageIdx := uint32(len(p.pages))
	page := make([]node[TScalar], p.pageSize)
	last := p.pageSize - 1
	for i := 0; i < last; i++ {
		page[i].nextFree = nodeAddr{pageIdx, uint32(i + 1)}
	}
	page[last].nextFree = nullAddr
	p.pages = append(p.pages, page)

	first := nodeAddr{page: pageIdx}
	if p.root.isNull() {
		p.root = first
	} else {
		// Splice the new page onto the existing chain so that a later reset
		// walks every page.
		p.node(p.tail).nextFree = first
	}
	p.head = first
	p.tail = nodeAddr{page: pageIdx, slot: uint32(last)}
}

// node resolves a handle. Each page has its own backing array, so the
// returned pointer stays valid as the pool grows.
func (p *pool[TScalar]) node(a nodeAddr) *node[TScalar] {
	return &p.pages[a.page][a.slot]
}

// alloc hands out a blank slot: the tree state is zeroed and the children
// are null, while the free-list linkage is preserved.
func (p *pool[TScalar]) alloc() (nodeAddr, *node[TScalar]) {
	if p.head.isNull() {
		p.grow()
	}
	addr := p.head
	n := p.node(addr)
	p.head = n.nextFree

	next := n.nextFree
	*n = node[TScalar]{
		children: [4]nodeAddr{nullAddr, nullAddr, nullAddr, nullAddr},
		nextFree: next,
	}
	p.allocated++
	return addr, n
}

func (p *pool[TScalar]) allocRegion(bounds Bounds[TScalar]) nodeAddr {
	addr, n := p.alloc()
	n.initRegion(bounds)
	return addr
}

// reset rewinds the free list to the first slot ever allocated. O(1): the
// intrusive links persist through allocation, so the whole chain is reusable
// without touching page memory.
func (p *pool[TScalar]) reset() {
	p.head = p.root
	p.allocated = 0
}

func (p *pool[TScalar]) stats() Stats {
	return Stats{
		Pages:    len(p.pages),
		Capacity: len(p.pages) * p.pageSize,
		InUse:    p.allocated,
	}
}
