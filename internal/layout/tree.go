package layout

import (
	"fmt"
	"strings"
)

// NoParent is the Parent index of the super-root.
const NoParent = -1

// Node is one linked node of an ItemTree. Parent and Children are indices into
// the tree's arena.
type Node struct {
	Item     Item
	Parent   int
	Children []int
}

// ItemTree is the linked form of a flat Item list. Nodes are stored in
// depth-first declaration order, so the super-root is always index 0 and a
// parent always precedes its children. The tree is immutable once built.
type ItemTree struct {
	nodes []Node
	index map[Identifier]int
}

// Build links a flat Item list into an ItemTree. The first item is the
// super-root. Container children are looked up by identifier; gadget children
// are looked up as "Parent->gadget" first and then as the bare gadget, cloned,
// and renamed to their disambiguated identifier so every node in the tree has
// a unique identifier.
func Build(items []Item) (*ItemTree, error) {
	if len(items) == 0 {
		return nil, ErrEmptyItemSet
	}

	defs := make(map[Identifier]Item, len(items))
	for _, it := range items {
		if _, dup := defs[it.Identifier]; dup {
			return nil, fmt.Errorf("%w: %q is defined more than once", ErrDuplicateIdentifier, it.Identifier)
		}
		defs[it.Identifier] = it
	}

	root := items[0]
	if !root.Identifier.IsContainer() {
		return nil, fmt.Errorf("%w: got gadget %q", ErrRootNotContainer, root.Identifier)
	}

	b := &builder{
		defs:   defs,
		onPath: map[Identifier]bool{root.Identifier: true},
		tree: &ItemTree{
			nodes: make([]Node, 0, len(items)),
			index: make(map[Identifier]int, len(items)),
		},
	}
	if _, err := b.link(root, NoParent); err != nil {
		return nil, err
	}
	return b.tree, nil
}

type builder struct {
	defs   map[Identifier]Item
	onPath map[Identifier]bool
	tree   *ItemTree
}

// link appends item to the arena under parent and recursively links its
// children. It returns the new node's index.
func (b *builder) link(item Item, parent int) (int, error) {
	t := b.tree
	id := item.Identifier
	if _, dup := t.index[id]; dup {
		return 0, fmt.Errorf("%w: %q appears more than once in the tree", ErrDuplicateIdentifier, id)
	}

	idx := len(t.nodes)
	t.nodes = append(t.nodes, Node{Item: item.clone(), Parent: parent})
	t.index[id] = idx

	if id.IsGadget() {
		return idx, nil
	}

	for _, childID := range item.Children {
		var (
			ci  int
			err error
		)
		if childID.IsContainer() {
			ci, err = b.linkContainer(id, childID, idx)
		} else {
			ci, err = b.linkGadget(id, childID, idx)
		}
		if err != nil {
			return 0, err
		}
		t.nodes[idx].Children = append(t.nodes[idx].Children, ci)
	}
	return idx, nil
}

func (b *builder) linkContainer(parentID, childID Identifier, parent int) (int, error) {
	def, ok := b.defs[childID]
	if !ok {
		return 0, fmt.Errorf("%w: %q (child of %q)", ErrUnknownIdentifier, childID, parentID)
	}
	if b.onPath[childID] {
		return 0, fmt.Errorf("%w: %q contains itself (via %q)", ErrCyclicReference, childID, parentID)
	}
	b.onPath[childID] = true
	defer delete(b.onPath, childID)
	return b.link(def, parent)
}

func (b *builder) linkGadget(parentID, childID Identifier, parent int) (int, error) {
	if childID.Base() != childID.Name {
		return 0, fmt.Errorf("%w: %q under %q (list the bare gadget %q; overrides are picked by parent)",
			ErrInvalidIdentifier, childID, parentID, childID.Base())
	}
	final := Disambiguate(parentID, childID)
	def, ok := b.defs[final]
	if !ok {
		def, ok = b.defs[Gadget(childID.Base())]
	}
	if !ok {
		return 0, fmt.Errorf("%w: one of %q or %q must be defined", ErrMissingGadgetDefinition, final, childID.Base())
	}
	leaf := def.clone()
	leaf.Identifier = final
	leaf.Children = nil
	return b.link(leaf, parent)
}

// Len returns the number of nodes in the tree.
func (t *ItemTree) Len() int { return len(t.nodes) }

// Root returns the index of the super-root.
func (t *ItemTree) Root() int { return 0 }

// Node returns the node at index i.
func (t *ItemTree) Node(i int) Node { return t.nodes[i] }

// Parent returns the parent index of node i, or NoParent for the root.
func (t *ItemTree) Parent(i int) int { return t.nodes[i].Parent }

// Children returns the child indices of node i in declaration order.
func (t *ItemTree) Children(i int) []int { return t.nodes[i].Children }

// Lookup returns the index of the node named id.
func (t *ItemTree) Lookup(id Identifier) (int, bool) {
	i, ok := t.index[id]
	return i, ok
}

// SuperRoot follows parent links upward from node i.
func (t *ItemTree) SuperRoot(i int) int {
	for t.nodes[i].Parent != NoParent {
		i = t.nodes[i].Parent
	}
	return i
}

// Gadgets returns the disambiguated identifiers of every gadget leaf, in
// depth-first declaration order.
func (t *ItemTree) Gadgets() []Identifier {
	var out []Identifier
	for _, n := range t.nodes {
		if n.Item.Identifier.IsGadget() {
			out = append(out, n.Item.Identifier)
		}
	}
	return out
}

// Flatten converts the tree back to a flat list of container items, starting
// at the super-root and visiting children in declaration order. Gadget leaves
// are synthesized during Build and are never emitted.
func (t *ItemTree) Flatten() []Item {
	var out []Item
	var walk func(i int)
	walk = func(i int) {
		n := t.nodes[i]
		if n.Item.Identifier.IsGadget() {
			return
		}
		out = append(out, n.Item.clone())
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(t.Root())
	return out
}

// String renders the tree as an indented diagram. Gadgets are listed after
// the container that holds them.
func (t *ItemTree) String() string {
	var sb strings.Builder
	var walk func(i, depth int)
	walk = func(i, depth int) {
		n := t.nodes[i]
		id := n.Item.Identifier
		if id.IsGadget() {
			fmt.Fprintf(&sb, " => %s", id.Base())
			return
		}
		if depth == 0 {
			fmt.Fprintf(&sb, "⊚ %s", id)
		} else {
			fmt.Fprintf(&sb, "\n%s↳ %s", strings.Repeat("    ", depth), id)
		}
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	walk(t.Root(), 0)
	return sb.String()
}
