package layout

// Solver computes rectangles for one ItemTree against one terminal rectangle.
// It memoizes by arena index, so each node's rect is computed at most once
// per Solver even though it may be probed as a parent or as a preceding
// sibling before it is reached directly. A Solver is single-use: create a new
// one (or call Compute) for every resize.
type Solver struct {
	tree     *ItemTree
	terminal Rect
	rects    []Rect
	done     []bool
}

// NewSolver returns a Solver with an empty memo.
func NewSolver(tree *ItemTree, terminal Rect) *Solver {
	return &Solver{
		tree:     tree,
		terminal: terminal,
		rects:    make([]Rect, tree.Len()),
		done:     make([]bool, tree.Len()),
	}
}

// Compute lays out the whole tree inside terminal and returns one rect per
// node. The root always fills terminal exactly, whatever its declared size.
func Compute(tree *ItemTree, terminal Rect) Rects {
	s := NewSolver(tree, terminal)
	s.Compute(tree.Root())
	return s.Rects()
}

// Compute fully computes node i and every descendant of it.
func (s *Solver) Compute(i int) {
	s.computeOne(i, true)
}

// Rect returns the memoized rect of node i.
func (s *Solver) Rect(i int) (Rect, bool) {
	return s.rects[i], s.done[i]
}

// Rects returns the memoized rects keyed by identifier.
func (s *Solver) Rects() Rects {
	out := make(Rects, len(s.rects))
	for i, ok := range s.done {
		if ok {
			out[s.tree.nodes[i].Item.Identifier] = s.rects[i]
		}
	}
	return out
}

// computeOne memoizes node i's own rect and, when recurse is set, descends
// into its children in declaration order. Probing a parent or a sibling uses
// recurse=false so that only that one box is computed.
func (s *Solver) computeOne(i int, recurse bool) {
	if !s.done[i] {
		s.rects[i] = s.place(i)
		s.done[i] = true
	}
	if !recurse {
		return
	}
	for _, c := range s.tree.nodes[i].Children {
		s.computeOne(c, true)
	}
}

// place derives node i's rect from its parent's rect and the end of its
// preceding sibling along the parent's split axis. The cross axis always
// spans the whole parent.
func (s *Solver) place(i int) Rect {
	node := s.tree.nodes[i]
	p := node.Parent
	if p == NoParent {
		return s.terminal
	}

	if !s.done[p] {
		s.computeOne(p, false)
	}
	parent := s.rects[p]
	split := s.tree.nodes[p].Item.Split

	start := parent.Y
	if split == Horizontal {
		start = parent.X
	}
	offset, net := start, 0
	if prev := s.precedingSibling(p, i); prev >= 0 {
		if !s.done[prev] {
			s.computeOne(prev, false)
		}
		sib := s.rects[prev]
		end := sib.Bottom()
		if split == Horizontal {
			end = sib.Right()
		}
		offset, net = end, end-start
	}

	size := node.Item.Size
	if split == Horizontal {
		return Rect{X: offset, Y: parent.Y, Width: size.Resolve(parent.Width, net), Height: parent.Height}
	}
	return Rect{X: parent.X, Y: offset, Width: parent.Width, Height: size.Resolve(parent.Height, net)}
}

// precedingSibling returns the child of p declared just before i, or -1.
func (s *Solver) precedingSibling(p, i int) int {
	prev := -1
	for _, c := range s.tree.nodes[p].Children {
		if c == i {
			return prev
		}
		prev = c
	}
	return -1
}
