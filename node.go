package radix

// Node is a single edge-labeled radix node. Its label is the window
// [start,end) into sequence; the label of the path root->node concatenates to
// sequence[0:end).
//
// There are three kinds of nodes:
//
//   - the root: no parent, start == end == 0, never carries a value;
//   - a naked branch: no value, two or more children - it exists only
//     because keys diverge there, and its sequence is an artifact of radix
//     compression, not a retrievable key;
//   - a valued node: sequence[0:end) is exactly a key put into the trie and
//     value is the payload stored under it.
type Node[S, T any] struct {
	parent   *Node[S, T]
	sequence S
	start    int
	end      int
	value    T
	hasValue bool
	children *childMap[S, T]
	size     int
}

// Parent returns the parent node, or nil for the root.
func (n *Node[S, T]) Parent() *Node[S, T] { return n.parent }

// Sequence returns the full sequence this node's label windows into. For a
// valued node this is the exact key the value was stored under; for a naked
// branch only the first End elements are meaningful.
func (n *Node[S, T]) Sequence() S { return n.sequence }

// Start returns the inclusive start of the label window.
func (n *Node[S, T]) Start() int { return n.start }

// End returns the exclusive end of the label window. For a valued node End
// equals the length of the stored key.
func (n *Node[S, T]) End() int { return n.end }

// Value returns the value stored at this node, or the zero value when the
// node is naked.
func (n *Node[S, T]) Value() T { return n.value }

// HasValue reports whether this node carries a value.
func (n *Node[S, T]) HasValue() bool { return n.hasValue }

// IsNaked reports whether this node is a root or branching-only node.
func (n *Node[S, T]) IsNaked() bool { return !n.hasValue }

// IsRoot reports whether this node is the root of its trie.
func (n *Node[S, T]) IsRoot() bool { return n.parent == nil }

// Size returns the number of valued nodes in the subtree rooted here,
// including this node.
func (n *Node[S, T]) Size() int { return n.size }

// ChildCount returns the number of direct children.
func (n *Node[S, T]) ChildCount() int {
	if n.children == nil {
		return 0
	}
	return n.children.size()
}

// HasChildren reports whether this node has at least one child.
func (n *Node[S, T]) HasChildren() bool {
	return n.children != nil && n.children.size() > 0
}

// Root walks the parent chain up to the root of the owning trie.
func (n *Node[S, T]) Root() *Node[S, T] {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// SetValue replaces the value of this node and returns the previous one.
// Giving a value to a naked branch grows the subtree size of every ancestor.
func (n *Node[S, T]) SetValue(value T) (prev T, had bool) {
	prev, had = n.value, n.hasValue
	n.value = value
	if !had {
		n.hasValue = true
		n.addSize(1)
	}
	return prev, had
}

// clearValue drops the value, shrinking ancestor sizes when one was present.
func (n *Node[S, T]) clearValue() (prev T, had bool) {
	prev, had = n.value, n.hasValue
	if had {
		var zero T
		n.value = zero
		n.hasValue = false
		n.addSize(-1)
	}
	return prev, had
}

func (n *Node[S, T]) addSize(amount int) {
	for cur := n; cur != nil; cur = cur.parent {
		cur.size += amount
	}
}

// add attaches child under the hash of the first element of its label.
// The child must already have its parent field pointing at n so that size
// walks started from the child reach the root.
func (n *Node[S, T]) add(child *Node[S, T], sequencer Sequencer[S]) {
	hash := sequencer.HashOf(child.sequence, n.end)

	if n.children == nil {
		n.children = newChildMap(hash, child)
	} else {
		n.children.put(hash, child)
	}
}

// split breaks this node's edge at the given relative index. The suffix
// [start+index,end) moves into a new child together with the value and the
// children; this node keeps the prefix [start,start+index) and becomes naked
// with the new child as its only entry. The child is returned.
func (n *Node[S, T]) split(index int, sequencer Sequencer[S]) *Node[S, T] {
	c := &Node[S, T]{
		parent:   n,
		sequence: n.sequence,
		start:    n.start + index,
		end:      n.end,
		value:    n.value,
		hasValue: n.hasValue,
		children: n.children,
		size:     n.size,
	}
	c.reparentChildren()

	var zero T
	n.value, n.hasValue = zero, false
	n.end = n.start + index
	n.children = nil
	n.add(c, sequencer)

	return c
}

// remove deletes this node's value and compacts the structure: a node left
// childless is detached from its parent, a node left with a single child
// absorbs it. A parent turned into a single-child naked branch by the
// detachment is compacted as well, so naked branches always keep at least
// two children.
func (n *Node[S, T]) remove(sequencer Sequencer[S]) {
	n.clearValue()

	switch n.ChildCount() {
	case 0:
		parent := n.parent
		parent.children.remove(sequencer.HashOf(n.sequence, n.start))

		if parent.parent != nil && !parent.hasValue && parent.ChildCount() == 1 {
			parent.mergeChild()
		}
	case 1:
		n.mergeChild()
	}
}

// mergeChild absorbs the sole remaining child into n, extending n's label to
// cover the child's former contribution. The child's links are dropped for
// prompt reclamation.
func (n *Node[S, T]) mergeChild() {
	child := n.children.first()

	n.children = child.children
	n.value, n.hasValue = child.value, child.hasValue
	n.sequence = child.sequence
	n.end = child.end

	var zeroS S
	var zeroT T
	child.children = nil
	child.parent = nil
	child.sequence = zeroS
	child.value, child.hasValue = zeroT, false

	n.reparentChildren()
}

func (n *Node[S, T]) reparentChildren() {
	if n.children == nil {
		return
	}
	for i := 0; i < n.children.capacity(); i++ {
		if c := n.children.valueAt(i); c != nil {
			c.parent = n
		}
	}
}
